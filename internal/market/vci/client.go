// Package vci implements the domestic-exchange adapter backed by the VCI
// (Vietcap) public endpoints: intraday-to-monthly OHLC history and yearly
// financial reports for Vietnamese-listed symbols and indices.
package vci

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/gahoccode/vnprices-mcp/internal/logging"
	"github.com/gahoccode/vnprices-mcp/internal/market"
)

const (
	chartPath   = "/api/chart/OHLCChart/gap-chart"
	financePath = "/data-mp/api/company/financial-reports"
	dateLayout  = "2006-01-02"
)

// timeFrames maps tool intervals to the chart endpoint's frame identifiers.
var timeFrames = map[string]string{
	market.IntervalDaily:   "ONE_DAY",
	market.IntervalWeekly:  "ONE_WEEK",
	market.IntervalMonthly: "ONE_MONTH",
}

// Config carries the endpoints and HTTP tuning for the VCI client.
type Config struct {
	ChartBaseURL   string
	FinanceBaseURL string
	Timeout        time.Duration
	UserAgent      string
	Logger         logging.Logger
}

// Client talks to the VCI endpoints. It holds no per-request state and is safe
// for concurrent use.
type Client struct {
	http        *resty.Client
	chartBase   string
	financeBase string
	log         logging.Logger
}

// NewClient builds a VCI client. The provider rejects requests carrying the
// default Go user agent, so Config.UserAgent should look like a browser.
func NewClient(cfg Config) *Client {
	httpClient := resty.New()
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		httpClient.SetHeader("User-Agent", cfg.UserAgent)
	}
	httpClient.SetHeader("Accept", "application/json")
	return &Client{
		http:        httpClient,
		chartBase:   cfg.ChartBaseURL,
		financeBase: cfg.FinanceBaseURL,
		log:         cfg.Logger,
	}
}

// History fetches OHLC bars for one symbol. Dates arrive as the caller typed
// them; parsing failures become tagged adapter errors rather than being
// rejected earlier (the tool layer performs no validation of its own). An
// unknown symbol yields an empty table, not an error.
func (c *Client) History(ctx context.Context, symbol, startDate, endDate, interval string) (market.Table, error) {
	frame, ok := timeFrames[interval]
	if !ok {
		return market.Table{}, market.Errorf(market.KindBadInput, "unsupported interval %q", interval)
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return market.Table{}, market.Errorf(market.KindBadInput, "invalid start date %q: %v", startDate, err)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return market.Table{}, market.Errorf(market.KindBadInput, "invalid end date %q: %v", endDate, err)
	}

	body := map[string]any{
		"timeFrame": frame,
		"symbols":   []string{symbol},
		"from":      start.Unix(),
		// The endpoint treats "to" as exclusive.
		"to": end.AddDate(0, 0, 1).Unix(),
	}

	c.log.Debug("fetching VCI history", "symbol", symbol, "from", startDate, "to", endDate, "frame", frame)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.chartBase + chartPath)
	if err != nil {
		return market.Table{}, market.WrapError(market.KindRequest, fmt.Errorf("fetch history for %s: %w", symbol, err))
	}
	if resp.IsError() {
		return market.Table{}, market.Errorf(market.KindStatus, "fetch history for %s: provider returned status %d", symbol, resp.StatusCode())
	}
	return decodeChart(resp.Body(), symbol)
}

// decodeChart turns the columnar t/o/h/l/c/v arrays of the chart endpoint into
// a row-oriented table.
func decodeChart(payload []byte, symbol string) (market.Table, error) {
	if !gjson.ValidBytes(payload) {
		return market.Table{}, market.Errorf(market.KindDecode, "fetch history for %s: provider returned malformed JSON", symbol)
	}
	series := gjson.GetBytes(payload, "0")
	if !series.Exists() {
		return market.Table{}, nil
	}

	stamps := series.Get("t").Array()
	table := market.Table{
		Columns: []market.Column{
			{Name: "time"}, {Name: "open"}, {Name: "high"},
			{Name: "low"}, {Name: "close"}, {Name: "volume"},
		},
	}
	opens := series.Get("o").Array()
	highs := series.Get("h").Array()
	lows := series.Get("l").Array()
	closes := series.Get("c").Array()
	volumes := series.Get("v").Array()
	for i, ts := range stamps {
		row := []any{
			time.Unix(ts.Int(), 0).UTC(),
			numberAt(opens, i),
			numberAt(highs, i),
			numberAt(lows, i),
			numberAt(closes, i),
			numberAt(volumes, i),
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// numberAt reads one value from a columnar array, tolerating ragged series.
func numberAt(values []gjson.Result, i int) any {
	if i >= len(values) || values[i].Type == gjson.Null {
		return nil
	}
	return values[i].Num
}
