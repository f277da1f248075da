// Package market holds the data model shared by the backend adapters and the
// tool layer: tabular results, intervals, statement kinds and tagged errors.
package market

// Interval identifiers accepted by the price-history tools. Adapters translate
// them into whatever their provider expects; an unknown interval is rejected by
// the adapter, not here.
const (
	IntervalDaily   = "1D"
	IntervalWeekly  = "1W"
	IntervalMonthly = "1M"
)

// StatementKind selects one of the financial reports served by the
// domestic-exchange adapter.
type StatementKind string

const (
	IncomeStatement StatementKind = "income_statement"
	BalanceSheet    StatementKind = "balance_sheet"
	CashFlow        StatementKind = "cash_flow"
	Ratios          StatementKind = "ratios"
)

// PeriodYear is the only reporting period the statement tools use.
const PeriodYear = "year"

// YearColumn names the reporting-year column present in every statement table.
// Statement tools sort rows ascending by this column before rendering.
const YearColumn = "yearReport"
