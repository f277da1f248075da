package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gahoccode/vnprices-mcp/internal/market"
)

// StatementProvider is the capability the financial-statement adapter exposes.
// Period is always yearly for these tools; language passes through untouched.
type StatementProvider interface {
	Statement(ctx context.Context, symbol string, kind market.StatementKind, period, lang string) (market.Table, error)
}

func statementArgs(req mcp.CallToolRequest) (symbol, lang string, bad *mcp.CallToolResult) {
	args := req.GetArguments()
	symbol, _ = args["symbol"].(string)
	if symbol == "" {
		return "", "", mcp.NewToolResultError("symbol parameter is required")
	}
	lang, _ = args["lang"].(string)
	if lang == "" {
		lang = "en"
	}
	return symbol, lang, nil
}

type IncomeStatementHandler struct {
	Service StatementProvider
}

func (h *IncomeStatementHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, lang, bad := statementArgs(req)
	if bad != nil {
		return bad, nil
	}
	table, err := h.Service.Statement(ctx, symbol, market.IncomeStatement, market.PeriodYear, lang)
	return mcp.NewToolResultText(renderStatement(incomeText, symbol, table, err, false)), nil
}

type BalanceSheetHandler struct {
	Service StatementProvider
}

func (h *BalanceSheetHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, lang, bad := statementArgs(req)
	if bad != nil {
		return bad, nil
	}
	table, err := h.Service.Statement(ctx, symbol, market.BalanceSheet, market.PeriodYear, lang)
	return mcp.NewToolResultText(renderStatement(balanceText, symbol, table, err, false)), nil
}

type CashFlowHandler struct {
	Service StatementProvider
}

func (h *CashFlowHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, lang, bad := statementArgs(req)
	if bad != nil {
		return bad, nil
	}
	table, err := h.Service.Statement(ctx, symbol, market.CashFlow, market.PeriodYear, lang)
	return mcp.NewToolResultText(renderStatement(cashFlowText, symbol, table, err, false)), nil
}

// FinancialRatiosHandler is the one statement tool whose table arrives with
// grouped columns; rendering flattens them before ordering by year.
type FinancialRatiosHandler struct {
	Service StatementProvider
}

func (h *FinancialRatiosHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, lang, bad := statementArgs(req)
	if bad != nil {
		return bad, nil
	}
	table, err := h.Service.Statement(ctx, symbol, market.Ratios, market.PeriodYear, lang)
	return mcp.NewToolResultText(renderStatement(ratiosText, symbol, table, err, true)), nil
}
