package world

import "strings"

// Instrument selects the symbol-mapping rule for the synthetic-instrument
// adapter. The upstream chart provider keys everything off one namespace, so
// the caller-facing symbols ("USDVND", "BTC", "DJI") have to be translated
// into provider tickers before fetching.
type Instrument int

const (
	FX Instrument = iota
	Crypto
	Index
)

// indexAliases maps common index names onto provider tickers that do not
// follow the generic caret rule.
var indexAliases = map[string]string{
	"SP500":   "^GSPC",
	"NASDAQ":  "^IXIC",
	"FTSE100": "^FTSE",
	"NIKKEI":  "^N225",
	"DAX":     "^GDAXI",
	"HSI":     "^HSI",
	"KOSPI":   "^KS11",
}

// ProviderSymbol translates a caller-facing symbol into the provider's ticker.
// Symbols already in provider form pass through unchanged.
func ProviderSymbol(kind Instrument, symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	switch kind {
	case FX:
		if strings.HasSuffix(s, "=X") {
			return s
		}
		return s + "=X"
	case Crypto:
		if strings.Contains(s, "-") {
			return s
		}
		return s + "-USD"
	case Index:
		if strings.HasPrefix(s, "^") {
			return s
		}
		if alias, ok := indexAliases[s]; ok {
			return alias
		}
		return "^" + s
	}
	return s
}
