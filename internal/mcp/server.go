package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"vnprices",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"get_stock_history": mcp.NewTool("get_stock_history",
			mcp.WithDescription("Get historical stock price data for Vietnamese stocks. Returns JSON with time, open, high, low, close, volume."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Stock ticker symbol (e.g., 'VCI', 'VNM', 'HPG')"),
			),
			mcp.WithString("start_date",
				mcp.Required(),
				mcp.Description("Start date in YYYY-MM-DD format (e.g., '2024-01-01')"),
			),
			mcp.WithString("end_date",
				mcp.Required(),
				mcp.Description("End date in YYYY-MM-DD format (e.g., '2024-12-31')"),
			),
			mcp.WithString("interval",
				mcp.Description("Data interval (default: 1D)"),
				mcp.Enum("1D", "1W", "1M"),
			),
		),
		"get_forex_history": mcp.NewTool("get_forex_history",
			mcp.WithDescription("Get historical forex exchange rate data. Returns JSON with time, open, high, low, close."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Forex pair symbol (e.g., 'USDVND', 'JPYVND', 'EURVND')"),
			),
			mcp.WithString("start_date",
				mcp.Required(),
				mcp.Description("Start date in YYYY-MM-DD format"),
			),
			mcp.WithString("end_date",
				mcp.Required(),
				mcp.Description("End date in YYYY-MM-DD format"),
			),
			mcp.WithString("interval",
				mcp.Description("Data interval (default: 1D)"),
				mcp.Enum("1D", "1W", "1M"),
			),
		),
		"get_crypto_history": mcp.NewTool("get_crypto_history",
			mcp.WithDescription("Get historical cryptocurrency price data. Returns JSON with time, open, high, low, close, volume."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Crypto symbol (e.g., 'BTC', 'ETH')"),
			),
			mcp.WithString("start_date",
				mcp.Required(),
				mcp.Description("Start date in YYYY-MM-DD format"),
			),
			mcp.WithString("end_date",
				mcp.Required(),
				mcp.Description("End date in YYYY-MM-DD format"),
			),
			mcp.WithString("interval",
				mcp.Description("Data interval (default: 1D)"),
				mcp.Enum("1D", "1W", "1M"),
			),
		),
		"get_index_history": mcp.NewTool("get_index_history",
			mcp.WithDescription("Get historical market index data. Vietnamese indices (VNINDEX, HNXINDEX, UPCOMINDEX) are served from the domestic exchange, everything else (DJI, SP500, ...) from the international source."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Index symbol, e.g. 'VNINDEX', 'HNXINDEX', 'UPCOMINDEX', 'DJI', 'SP500'"),
			),
			mcp.WithString("start_date",
				mcp.Required(),
				mcp.Description("Start date in YYYY-MM-DD format"),
			),
			mcp.WithString("end_date",
				mcp.Required(),
				mcp.Description("End date in YYYY-MM-DD format"),
			),
			mcp.WithString("interval",
				mcp.Description("Data interval (default: 1D)"),
				mcp.Enum("1D", "1W", "1M"),
			),
		),
		"get_income_statement": mcp.NewTool("get_income_statement",
			mcp.WithDescription("Get the yearly income statement for a Vietnamese stock, rows ordered by reporting year."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Stock ticker symbol (e.g., 'VCI', 'FPT')"),
			),
			mcp.WithString("lang",
				mcp.Description("Report language (default: en)"),
				mcp.Enum("en", "vi"),
			),
		),
		"get_balance_sheet": mcp.NewTool("get_balance_sheet",
			mcp.WithDescription("Get the yearly balance sheet for a Vietnamese stock, rows ordered by reporting year."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Stock ticker symbol (e.g., 'VCI', 'FPT')"),
			),
			mcp.WithString("lang",
				mcp.Description("Report language (default: en)"),
				mcp.Enum("en", "vi"),
			),
		),
		"get_cash_flow": mcp.NewTool("get_cash_flow",
			mcp.WithDescription("Get the yearly cash flow statement for a Vietnamese stock, rows ordered by reporting year."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Stock ticker symbol (e.g., 'VCI', 'FPT')"),
			),
			mcp.WithString("lang",
				mcp.Description("Report language (default: en)"),
				mcp.Enum("en", "vi"),
			),
		),
		"get_financial_ratios": mcp.NewTool("get_financial_ratios",
			mcp.WithDescription("Get yearly financial ratios for a Vietnamese stock. Grouped ratio columns are flattened to single-level names."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Stock ticker symbol (e.g., 'VCI', 'FPT')"),
			),
			mcp.WithString("lang",
				mcp.Description("Report language (default: en)"),
				mcp.Enum("en", "vi"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			// An adapter without a schema would register as a nameless
			// tool; skip it instead.
			continue
		}
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio blocks serving the MCP protocol over stdin/stdout, the default
// transport for local tool hosts.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
