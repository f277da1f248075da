package config

const (
	KeyLogLevel        = "log_level"
	KeyVCIChartURL     = "vci_chart_url"
	KeyVCIFinanceURL   = "vci_finance_url"
	KeyProviderTimeout = "provider_timeout"
	KeyProviderAgent   = "provider_user_agent"
	KeyMCPEndpointPath = "mcp_endpoint_path"
	KeyShutdownTimeout = "shutdown_timeout"
)
