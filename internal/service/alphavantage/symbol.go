package alphavantage

import "strings"

// MapSymbol converts a local stock code plus market type into the vendor
// ticker. A-share codes starting with 6 trade in Shanghai, the rest in
// Shenzhen; Hong Kong codes get the HKG suffix; US codes pass through.
func MapSymbol(stockCode, marketType string) string {
	code := strings.ToUpper(strings.TrimSpace(stockCode))
	switch marketType {
	case "A-share":
		if strings.HasPrefix(code, "6") {
			return code + ".SHH"
		}
		return code + ".SHZ"
	case "HK":
		return code + ".HKG"
	default:
		return code
	}
}
