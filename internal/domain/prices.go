package domain

// ReferencePrices are rough USD price anchors used by the simulated data
// sources to produce plausible position and liquidation prices. They do not
// feed any aggregated metric.
var ReferencePrices = map[string]float64{
	"BTC": 67000, "ETH": 2650, "SOL": 178, "AVAX": 35,
	"MATIC": 0.85, "ARB": 1.2, "OP": 2.1, "DOGE": 0.16,
	"ADA": 0.45, "DOT": 7.2, "LINK": 14.5, "UNI": 8.9,
}
