package vci

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/gahoccode/vnprices-mcp/internal/market"
)

// reportTypes maps statement kinds to the finance endpoint's report selector.
var reportTypes = map[market.StatementKind]string{
	market.IncomeStatement: "INCOME_STATEMENT",
	market.BalanceSheet:    "BALANCE_SHEET",
	market.CashFlow:        "CASH_FLOW",
	market.Ratios:          "RATIOS",
}

// levelSeparator splits the composite keys the ratio report uses for grouped
// metrics, e.g. "Profitability|ROE (%)".
const levelSeparator = "|"

// Statement fetches one yearly financial report. The ratio report comes back
// with grouped column keys; those are preserved as column levels so the tool
// layer can flatten them. Language is forwarded untouched; the provider
// rejects values it does not serve.
func (c *Client) Statement(ctx context.Context, symbol string, kind market.StatementKind, period, lang string) (market.Table, error) {
	reportType, ok := reportTypes[kind]
	if !ok {
		return market.Table{}, market.Errorf(market.KindBadInput, "unsupported statement kind %q", kind)
	}

	c.log.Debug("fetching VCI statement", "symbol", symbol, "type", reportType, "period", period, "lang", lang)
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ticker": symbol,
			"type":   reportType,
			"period": period,
			"lang":   lang,
		}).
		Get(c.financeBase + financePath)
	if err != nil {
		return market.Table{}, market.WrapError(market.KindRequest, fmt.Errorf("fetch %s for %s: %w", reportType, symbol, err))
	}
	if resp.IsError() {
		return market.Table{}, market.Errorf(market.KindStatus, "fetch %s for %s: provider returned status %d", reportType, symbol, resp.StatusCode())
	}
	return decodeReport(resp.Body(), symbol, reportType)
}

// decodeReport builds a table from the report's record array. Column order
// follows the first record; gjson iterates keys in document order, which is
// what keeps the rendered JSON stable across calls.
func decodeReport(payload []byte, symbol, reportType string) (market.Table, error) {
	if !gjson.ValidBytes(payload) {
		return market.Table{}, market.Errorf(market.KindDecode, "fetch %s for %s: provider returned malformed JSON", reportType, symbol)
	}
	records := gjson.GetBytes(payload, "data")
	if !records.Exists() || !records.IsArray() {
		return market.Table{}, market.Errorf(market.KindDecode, "fetch %s for %s: response carries no data array", reportType, symbol)
	}

	var table market.Table
	records.ForEach(func(_, record gjson.Result) bool {
		if len(table.Columns) == 0 {
			record.ForEach(func(key, _ gjson.Result) bool {
				table.Columns = append(table.Columns, reportColumn(key.String()))
				return true
			})
		}
		row := make([]any, len(table.Columns))
		for i, col := range table.Columns {
			key := col.Name
			if len(col.Levels) > 0 {
				key = strings.Join(col.Levels, levelSeparator)
			}
			row[i] = cellValue(record.Get(escapeKey(key)))
		}
		table.Rows = append(table.Rows, row)
		return true
	})
	return table, nil
}

func reportColumn(key string) market.Column {
	if !strings.Contains(key, levelSeparator) {
		return market.Column{Name: key}
	}
	return market.Column{Name: key, Levels: strings.Split(key, levelSeparator)}
}

// escapeKey protects gjson path characters occurring in metric names, such as
// the dots in "P/E (TTM)"-style labels.
func escapeKey(key string) string {
	replacer := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`, "|", `\|`)
	return replacer.Replace(key)
}

func cellValue(v gjson.Result) any {
	switch v.Type {
	case gjson.Number:
		return v.Num
	case gjson.String:
		return v.Str
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Null:
		return nil
	default:
		if !v.Exists() {
			return nil
		}
		return v.Raw
	}
}
