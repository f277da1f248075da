package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Init wires environment variables, an optional .env file and the root
// command's override flags into viper. Changed flags win over environment
// values, environment values win over defaults.
func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		bindFlag(KeyLogLevel, root, "log-level")
		bindFlag(KeyVCIChartURL, root, "vci-chart-url")
		bindFlag(KeyVCIFinanceURL, root, "vci-finance-url")
	}
	setDefaults()
}

func bindFlag(key string, root *cobra.Command, name string) {
	if flag := root.PersistentFlags().Lookup(name); flag != nil {
		_ = viper.BindPFlag(key, flag)
	}
}

func setDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyVCIChartURL, "https://trading.vietcap.com.vn")
	viper.SetDefault(KeyVCIFinanceURL, "https://api.vietcap.com.vn")
	viper.SetDefault(KeyProviderTimeout, 30*time.Second)
	viper.SetDefault(KeyProviderAgent, "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	viper.SetDefault(KeyMCPEndpointPath, "/mcp")
	viper.SetDefault(KeyShutdownTimeout, 5*time.Second)
}

func LogLevel() string               { return viper.GetString(KeyLogLevel) }
func VCIChartURL() string            { return viper.GetString(KeyVCIChartURL) }
func VCIFinanceURL() string          { return viper.GetString(KeyVCIFinanceURL) }
func ProviderTimeout() time.Duration { return viper.GetDuration(KeyProviderTimeout) }
func ProviderUserAgent() string      { return viper.GetString(KeyProviderAgent) }
func MCPEndpointPath() string        { return viper.GetString(KeyMCPEndpointPath) }
func ShutdownTimeout() time.Duration { return viper.GetDuration(KeyShutdownTimeout) }
