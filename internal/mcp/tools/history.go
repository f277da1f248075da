package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gahoccode/vnprices-mcp/internal/market"
)

// HistoryProvider is the capability every price-history adapter exposes. Dates
// and interval travel as the caller typed them: the adapter owns all
// rejection, this layer validates nothing beyond parameter presence.
type HistoryProvider interface {
	History(ctx context.Context, symbol, startDate, endDate, interval string) (market.Table, error)
}

// historyArgs pulls the shared price-history parameters out of a request.
// Interval defaults to daily when the caller omits it.
func historyArgs(req mcp.CallToolRequest) (symbol, startDate, endDate, interval string, bad *mcp.CallToolResult) {
	args := req.GetArguments()
	symbol, _ = args["symbol"].(string)
	if symbol == "" {
		return "", "", "", "", mcp.NewToolResultError("symbol parameter is required")
	}
	startDate, _ = args["start_date"].(string)
	if startDate == "" {
		return "", "", "", "", mcp.NewToolResultError("start_date parameter is required")
	}
	endDate, _ = args["end_date"].(string)
	if endDate == "" {
		return "", "", "", "", mcp.NewToolResultError("end_date parameter is required")
	}
	interval, _ = args["interval"].(string)
	if interval == "" {
		interval = market.IntervalDaily
	}
	return symbol, startDate, endDate, interval, nil
}

type StockHistoryHandler struct {
	Service HistoryProvider
}

func (h *StockHistoryHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, startDate, endDate, interval, bad := historyArgs(req)
	if bad != nil {
		return bad, nil
	}
	table, err := h.Service.History(ctx, symbol, startDate, endDate, interval)
	return mcp.NewToolResultText(renderHistory(stockText, symbol, startDate, endDate, table, err)), nil
}

type ForexHistoryHandler struct {
	Service HistoryProvider
}

func (h *ForexHistoryHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, startDate, endDate, interval, bad := historyArgs(req)
	if bad != nil {
		return bad, nil
	}
	table, err := h.Service.History(ctx, symbol, startDate, endDate, interval)
	return mcp.NewToolResultText(renderHistory(forexText, symbol, startDate, endDate, table, err)), nil
}

type CryptoHistoryHandler struct {
	Service HistoryProvider
}

func (h *CryptoHistoryHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, startDate, endDate, interval, bad := historyArgs(req)
	if bad != nil {
		return bad, nil
	}
	table, err := h.Service.History(ctx, symbol, startDate, endDate, interval)
	return mcp.NewToolResultText(renderHistory(cryptoText, symbol, startDate, endDate, table, err)), nil
}

// domesticIndices is the fixed set of Vietnamese indices that route to the
// domestic-exchange adapter. Everything else goes to the world adapter.
var domesticIndices = map[string]bool{
	"VNINDEX":    true,
	"HNXINDEX":   true,
	"UPCOMINDEX": true,
}

// IndexHistoryHandler routes index requests between the two adapters based on
// symbol membership in the Vietnamese-index set. This is the only branching
// policy in the tool layer.
type IndexHistoryHandler struct {
	Domestic HistoryProvider
	World    HistoryProvider
}

func (h *IndexHistoryHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, startDate, endDate, interval, bad := historyArgs(req)
	if bad != nil {
		return bad, nil
	}
	service := h.World
	if domesticIndices[strings.ToUpper(symbol)] {
		service = h.Domestic
	}
	table, err := service.History(ctx, symbol, startDate, endDate, interval)
	return mcp.NewToolResultText(renderHistory(indexText, symbol, startDate, endDate, table, err)), nil
}
