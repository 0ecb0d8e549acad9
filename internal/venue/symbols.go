package venue

import "strings"

// Per-venue instrument naming quirks. This table is configuration data, not
// logic: it is what makes multi-venue fallback work against real venues.
//
//	default            {COIN}/USDT:USDT   (unified perpetual naming)
//	okx                {COIN}-USDT-SWAP
//	bybit (BTC, ETH)   {COIN}USDT
var bybitBareSymbols = map[string]bool{"BTC": true, "ETH": true}

// PerpSymbol returns the perpetual swap instrument identifier for a coin on
// the given venue. Pure function of (venue, coin).
func PerpSymbol(venue, coin string) string {
	switch venue {
	case VenueOKX:
		return coin + "-USDT-SWAP"
	case VenueBybit:
		if bybitBareSymbols[coin] {
			return coin + "USDT"
		}
		return coin + "/USDT:USDT"
	default:
		return coin + "/USDT:USDT"
	}
}

// SpotSymbol returns the unified spot market identifier for a coin.
func SpotSymbol(coin string) string {
	return coin + "/USDT"
}

// baseCoin recovers the coin from any of the unified or venue-specific
// symbol formats.
func baseCoin(symbol string) string {
	s := symbol
	if i := strings.IndexAny(s, "/-"); i > 0 {
		return s[:i]
	}
	return strings.TrimSuffix(s, "USDT")
}

// isPerp reports whether the unified symbol names a perpetual instrument
// rather than a spot market.
func isPerp(symbol string) bool {
	return strings.Contains(symbol, ":USDT") ||
		strings.HasSuffix(symbol, "-SWAP") ||
		(!strings.Contains(symbol, "/") && strings.HasSuffix(symbol, "USDT"))
}
