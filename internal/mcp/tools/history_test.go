package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gahoccode/vnprices-mcp/internal/market"
)

// fakeHistory records the call it receives and plays back a canned outcome.
type fakeHistory struct {
	table market.Table
	err   error

	called   bool
	symbol   string
	start    string
	end      string
	interval string
}

func (f *fakeHistory) History(ctx context.Context, symbol, startDate, endDate, interval string) (market.Table, error) {
	f.called = true
	f.symbol = symbol
	f.start = startDate
	f.end = endDate
	f.interval = interval
	return f.table, f.err
}

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatalf("result has no content")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func ohlcTable() market.Table {
	return market.Table{
		Columns: []market.Column{
			{Name: "time"}, {Name: "open"}, {Name: "high"},
			{Name: "low"}, {Name: "close"}, {Name: "volume"},
		},
		Rows: [][]any{
			{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 100.0, 103.0, 99.0, 102.0, 150000.0},
			{time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), 102.0, 104.5, 101.0, 104.0, 180000.0},
		},
	}
}

func TestStockHistory_RendersJSONRecords(t *testing.T) {
	fake := &fakeHistory{table: ohlcTable()}
	handler := &StockHistoryHandler{Service: fake}

	res, err := handler.ToolAdapter(context.Background(), callReq(map[string]any{
		"symbol":     "VCI",
		"start_date": "2024-01-02",
		"end_date":   "2024-01-03",
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	out := resultText(t, res)

	var records []map[string]any
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for _, rec := range records {
		closePrice, ok := rec["close"].(float64)
		if !ok || closePrice <= 0 {
			t.Fatalf("close must be a positive number, got %v", rec["close"])
		}
		low := rec["low"].(float64)
		high := rec["high"].(float64)
		open := rec["open"].(float64)
		if low > open || open > high || low > closePrice || closePrice > high {
			t.Fatalf("OHLC bounds violated in %v", rec)
		}
	}
	if fake.interval != market.IntervalDaily {
		t.Fatalf("expected default interval 1D, got %q", fake.interval)
	}
}

func TestStockHistory_EmptySentinelExactText(t *testing.T) {
	fake := &fakeHistory{}
	handler := &StockHistoryHandler{Service: fake}

	res, err := handler.ToolAdapter(context.Background(), callReq(map[string]any{
		"symbol":     "INVALID",
		"start_date": "2024-01-01",
		"end_date":   "2024-01-31",
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	out := resultText(t, res)
	want := "No data found for INVALID between 2024-01-01 and 2024-01-31"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
	if json.Valid([]byte(out)) {
		t.Fatalf("sentinel must not be valid JSON")
	}
}

func TestStockHistory_AdapterErrorBecomesSentinel(t *testing.T) {
	fake := &fakeHistory{err: market.Errorf(market.KindRequest, "connection refused")}
	handler := &StockHistoryHandler{Service: fake}

	res, err := handler.ToolAdapter(context.Background(), callReq(map[string]any{
		"symbol":     "VCI",
		"start_date": "2024-01-01",
		"end_date":   "2024-01-31",
	}))
	if err != nil {
		t.Fatalf("adapter error must not propagate, got %v", err)
	}
	out := resultText(t, res)
	if !strings.Contains(out, "Error fetching") {
		t.Fatalf("expected error sentinel, got %q", out)
	}
	if !strings.Contains(out, "connection refused") {
		t.Fatalf("sentinel must embed the adapter message, got %q", out)
	}
}

func TestStockHistory_MissingSymbolIsToolError(t *testing.T) {
	handler := &StockHistoryHandler{Service: &fakeHistory{}}
	res, err := handler.ToolAdapter(context.Background(), callReq(map[string]any{
		"start_date": "2024-01-01",
		"end_date":   "2024-01-31",
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected tool error for missing symbol")
	}
}

func TestForexHistory_SentinelWording(t *testing.T) {
	handler := &ForexHistoryHandler{Service: &fakeHistory{}}
	res, _ := handler.ToolAdapter(context.Background(), callReq(map[string]any{
		"symbol":     "USDVND",
		"start_date": "2024-01-01",
		"end_date":   "2024-01-31",
	}))
	want := "No forex data found for USDVND between 2024-01-01 and 2024-01-31"
	if out := resultText(t, res); out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}

	handler = &ForexHistoryHandler{Service: &fakeHistory{err: errors.New("boom")}}
	res, _ = handler.ToolAdapter(context.Background(), callReq(map[string]any{
		"symbol":     "USDVND",
		"start_date": "2024-01-01",
		"end_date":   "2024-01-31",
	}))
	if out := resultText(t, res); out != "Error fetching forex data: boom" {
		t.Fatalf("unexpected sentinel %q", out)
	}
}

func TestCryptoHistory_PassesArgumentsThrough(t *testing.T) {
	fake := &fakeHistory{table: ohlcTable()}
	handler := &CryptoHistoryHandler{Service: fake}
	_, err := handler.ToolAdapter(context.Background(), callReq(map[string]any{
		"symbol":     "BTC",
		"start_date": "not-a-date",
		"end_date":   "2024-01-31",
		"interval":   "1W",
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	// Malformed dates are the adapter's problem, not the router's.
	if fake.start != "not-a-date" || fake.interval != "1W" {
		t.Fatalf("arguments were altered: start=%q interval=%q", fake.start, fake.interval)
	}
}

func TestIndexHistory_RoutesDomesticIndices(t *testing.T) {
	for _, symbol := range []string{"VNINDEX", "vnindex", "HNXIndex", "UPCOMINDEX"} {
		domestic := &fakeHistory{table: ohlcTable()}
		world := &fakeHistory{table: ohlcTable()}
		handler := &IndexHistoryHandler{Domestic: domestic, World: world}

		_, err := handler.ToolAdapter(context.Background(), callReq(map[string]any{
			"symbol":     symbol,
			"start_date": "2024-01-01",
			"end_date":   "2024-01-31",
		}))
		if err != nil {
			t.Fatalf("handler failed: %v", err)
		}
		if !domestic.called || world.called {
			t.Fatalf("symbol %q should route to the domestic adapter", symbol)
		}
	}
}

func TestIndexHistory_RoutesWorldIndices(t *testing.T) {
	for _, symbol := range []string{"DJI", "SP500", "N225"} {
		domestic := &fakeHistory{table: ohlcTable()}
		world := &fakeHistory{table: ohlcTable()}
		handler := &IndexHistoryHandler{Domestic: domestic, World: world}

		_, err := handler.ToolAdapter(context.Background(), callReq(map[string]any{
			"symbol":     symbol,
			"start_date": "2024-01-01",
			"end_date":   "2024-01-31",
		}))
		if err != nil {
			t.Fatalf("handler failed: %v", err)
		}
		if domestic.called || !world.called {
			t.Fatalf("symbol %q should route to the world adapter", symbol)
		}
	}
}

func TestIndexHistory_ErrorSentinelWording(t *testing.T) {
	handler := &IndexHistoryHandler{
		Domestic: &fakeHistory{},
		World:    &fakeHistory{err: errors.New("no such index")},
	}
	res, _ := handler.ToolAdapter(context.Background(), callReq(map[string]any{
		"symbol":     "NOPE",
		"start_date": "2024-01-01",
		"end_date":   "2024-01-31",
	}))
	if out := resultText(t, res); out != "Error fetching index data: no such index" {
		t.Fatalf("unexpected sentinel %q", out)
	}
}
