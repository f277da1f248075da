package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/gahoccode/vnprices-mcp/internal/config"
	"github.com/gahoccode/vnprices-mcp/internal/logging"
	"github.com/gahoccode/vnprices-mcp/internal/market/vci"
	"github.com/gahoccode/vnprices-mcp/internal/market/world"
	"github.com/gahoccode/vnprices-mcp/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

// DefaultConfig wires the production adapter set: the VCI client for
// Vietnamese stocks, indices and statements, and one world client per
// synthetic instrument kind. Tests build their own Config with fakes instead
// of relying on process-level state.
func DefaultConfig() Config {
	baseLogger := logging.New(logging.DefaultLogger(config.LogLevel()))

	vciClient := vci.NewClient(vci.Config{
		ChartBaseURL:   config.VCIChartURL(),
		FinanceBaseURL: config.VCIFinanceURL(),
		Timeout:        config.ProviderTimeout(),
		UserAgent:      config.ProviderUserAgent(),
		Logger:         baseLogger.WithName("vci"),
	})
	worldLogger := baseLogger.WithName("world")

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"get_stock_history":  &tools.StockHistoryHandler{Service: vciClient},
			"get_forex_history":  &tools.ForexHistoryHandler{Service: world.NewClient(world.FX, worldLogger)},
			"get_crypto_history": &tools.CryptoHistoryHandler{Service: world.NewClient(world.Crypto, worldLogger)},
			"get_index_history": &tools.IndexHistoryHandler{
				Domestic: vciClient,
				World:    world.NewClient(world.Index, worldLogger),
			},
			"get_income_statement": &tools.IncomeStatementHandler{Service: vciClient},
			"get_balance_sheet":    &tools.BalanceSheetHandler{Service: vciClient},
			"get_cash_flow":        &tools.CashFlowHandler{Service: vciClient},
			"get_financial_ratios": &tools.FinancialRatiosHandler{Service: vciClient},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath(config.MCPEndpointPath()),
			server.WithStateLess(true),
		},
	}
}
