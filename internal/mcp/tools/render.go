package tools

import (
	"fmt"

	"github.com/gahoccode/vnprices-mcp/internal/market"
)

// historyText carries the per-tool sentinel formats for the price-history
// tools. The formats are part of the wire contract: existing callers pattern
// match on these prefixes, so the wording is not free to drift.
type historyText struct {
	noData   string
	fetchErr string
}

var (
	stockText  = historyText{"No data found for %s between %s and %s", "Error fetching stock data: %v"}
	forexText  = historyText{"No forex data found for %s between %s and %s", "Error fetching forex data: %v"}
	cryptoText = historyText{"No crypto data found for %s between %s and %s", "Error fetching crypto data: %v"}
	indexText  = historyText{"No index data found for %s between %s and %s", "Error fetching index data: %v"}
)

// statementText carries the per-tool sentinel formats for the statement tools.
type statementText struct {
	noData   string
	fetchErr string
}

var (
	incomeText   = statementText{"No income statement data found for %s", "Error fetching income statement data: %v"}
	balanceText  = statementText{"No balance sheet data found for %s", "Error fetching balance sheet data: %v"}
	cashFlowText = statementText{"No cash flow data found for %s", "Error fetching cash flow data: %v"}
	ratiosText   = statementText{"No financial ratio data found for %s", "Error fetching financial ratio data: %v"}
)

// renderHistory shapes one price-history outcome into the tool's text payload:
// adapter errors and empty tables become sentinel strings, everything else is
// the table rendered as indented row-oriented JSON. Errors never propagate
// past this point.
func renderHistory(text historyText, symbol, startDate, endDate string, table market.Table, err error) string {
	if err != nil {
		return fmt.Sprintf(text.fetchErr, err)
	}
	if table.Empty() {
		return fmt.Sprintf(text.noData, symbol, startDate, endDate)
	}
	encoded, err := table.EncodeRecords()
	if err != nil {
		return fmt.Sprintf(text.fetchErr, err)
	}
	return encoded
}

// renderStatement shapes one financial-statement outcome. Rows are ordered
// ascending by reporting year before rendering; the ratio report is flattened
// first so the year column is addressable by its single-level name.
func renderStatement(text statementText, symbol string, table market.Table, err error, flatten bool) string {
	if err != nil {
		return fmt.Sprintf(text.fetchErr, err)
	}
	if table.Empty() {
		return fmt.Sprintf(text.noData, symbol)
	}
	if flatten {
		table = table.FlattenColumns()
	}
	if err := table.SortByColumn(market.YearColumn); err != nil {
		return fmt.Sprintf(text.fetchErr, err)
	}
	encoded, err := table.EncodeRecords()
	if err != nil {
		return fmt.Sprintf(text.fetchErr, err)
	}
	return encoded
}
