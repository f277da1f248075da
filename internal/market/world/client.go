// Package world implements the synthetic-instrument adapter for forex pairs,
// crypto and non-Vietnamese indices, backed by the Yahoo chart API through
// piquette/finance-go.
package world

import (
	"context"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"

	"github.com/gahoccode/vnprices-mcp/internal/logging"
	"github.com/gahoccode/vnprices-mcp/internal/market"
)

const dateLayout = "2006-01-02"

// intervals maps tool intervals to the provider's bar sizes. The datetime
// package carries no weekly constant, but the provider accepts "1wk".
var intervals = map[string]datetime.Interval{
	market.IntervalDaily:   datetime.OneDay,
	market.IntervalWeekly:  datetime.Interval("1wk"),
	market.IntervalMonthly: datetime.OneMonth,
}

// Client fetches bar history for one instrument kind. Construct one per kind
// and hand them to the tool layer as interchangeable history providers.
type Client struct {
	kind Instrument
	log  logging.Logger
}

// NewClient builds a synthetic-instrument adapter for the given kind.
func NewClient(kind Instrument, log logging.Logger) *Client {
	return &Client{kind: kind, log: log}
}

// History fetches bars between the given dates. Date strings arrive untouched
// from the caller; malformed ones become tagged adapter errors here. An
// unknown symbol surfaces as a provider error or an empty table depending on
// how the provider answers, both of which the tool layer handles.
func (c *Client) History(ctx context.Context, symbol, startDate, endDate, interval string) (market.Table, error) {
	barSize, ok := intervals[interval]
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
	if err := ctx.Err(); err != nil {
		return market.Table{}, market.WrapError(market.KindRequest, err)
	}

	providerSymbol := ProviderSymbol(c.kind, symbol)
	c.log.Debug("fetching world history", "symbol", symbol, "provider_symbol", providerSymbol, "interval", string(barSize))

	params := &chart.Params{
		Params:   finance.Params{Context: &ctx},
		Symbol:   providerSymbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: barSize,
	}
	iter := chart.Get(params)

	table := market.Table{
		Columns: []market.Column{
			{Name: "time"}, {Name: "open"}, {Name: "high"},
			{Name: "low"}, {Name: "close"}, {Name: "volume"},
		},
	}
	for iter.Next() {
		bar := iter.Bar()
		table.Rows = append(table.Rows, barRow(bar))
	}
	if err := iter.Err(); err != nil {
		return market.Table{}, market.WrapError(market.KindRequest, fmt.Errorf("fetch history for %s: %w", symbol, err))
	}
	return table, nil
}

func barRow(bar *finance.ChartBar) []any {
	return []any{
		time.Unix(int64(bar.Timestamp), 0).UTC(),
		price(bar.Open),
		price(bar.High),
		price(bar.Low),
		price(bar.Close),
		float64(bar.Volume),
	}
}

// price converts the provider's fixed-point values into the float cells the
// table encoder renders.
func price(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
