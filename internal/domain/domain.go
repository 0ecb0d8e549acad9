package domain

import "time"

// SupportedCoins lists every asset the dashboard tracks. Order matters:
// it is the display order and the order coins are refreshed in.
var SupportedCoins = []string{
	"BTC", "ETH", "SOL", "AVAX", "MATIC", "ARB", "OP", "DOGE",
	"ADA", "DOT", "LINK", "UNI", "AAVE", "COMP", "MKR", "SNX",
	"CRV", "SUSHI", "YFI", "BAL", "REN", "KNC", "ZRX", "BAND",
	"ALGO", "ATOM", "NEAR", "FTM", "LUNA", "ICP", "VET", "TRX",
	"EOS", "XTZ", "THETA", "FIL", "EGLD", "HBAR", "FLOW", "MANA",
	"XRP", "LTC", "BCH", "ETC", "XLM", "DASH", "ZEC", "XMR",
}

var supportedSet map[string]bool

func init() {
	supportedSet = make(map[string]bool, len(SupportedCoins))
	for _, c := range SupportedCoins {
		supportedSet[c] = true
	}
}

// IsSupported reports whether the coin is in the tracked registry.
func IsSupported(coin string) bool {
	return supportedSet[coin]
}

// FilterSupported drops coins outside the registry, preserving input order
// and removing duplicates. Unsupported coins are skipped, never an error.
func FilterSupported(coins []string) []string {
	seen := make(map[string]bool, len(coins))
	out := make([]string, 0, len(coins))
	for _, c := range coins {
		if !supportedSet[c] || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// PerpetualData bundles the per-coin perpetual futures metrics the dashboard
// renders on the markets tab.
type PerpetualData struct {
	FundingRates    map[string]float64    `json:"funding_rates"`
	OpenInterest    map[string]float64    `json:"open_interest"`
	Volume24h       map[string]float64    `json:"volume_24h"`
	MarkPrices      map[string]float64    `json:"mark_prices"`
	NextFundingTime map[string]*time.Time `json:"next_funding_time"`
}

// NewPerpetualData returns a PerpetualData with all maps initialized.
func NewPerpetualData() *PerpetualData {
	return &PerpetualData{
		FundingRates:    map[string]float64{},
		OpenInterest:    map[string]float64{},
		Volume24h:       map[string]float64{},
		MarkPrices:      map[string]float64{},
		NextFundingTime: map[string]*time.Time{},
	}
}

// MarketSummary is the full payload for one dashboard render cycle.
// A failed metric shows up as an empty map, never as a missing field.
type MarketSummary struct {
	FundingRates map[string]float64 `json:"funding_rates"`
	OpenInterest map[string]float64 `json:"open_interest"`
	Perpetuals   *PerpetualData     `json:"perpetual_data"`
	BasisData    map[string]float64 `json:"basis_data"`
	Timestamp    time.Time          `json:"timestamp"`
}

// FundingPoint is one observation in a coin's funding rate history,
// rate already normalized to a percentage.
type FundingPoint struct {
	Timestamp   time.Time `json:"timestamp"`
	FundingRate float64   `json:"funding_rate"`
}

type AnomalySeverity string

const (
	SeverityMedium AnomalySeverity = "MEDIUM"
	SeverityHigh   AnomalySeverity = "HIGH"
)

type AnomalyDirection string

const (
	DirectionBullish AnomalyDirection = "BULLISH"
	DirectionBearish AnomalyDirection = "BEARISH"
)

// Anomaly flags a coin whose funding rate exceeds the alert threshold.
type Anomaly struct {
	Coin        string           `json:"coin"`
	FundingRate float64          `json:"funding_rate"`
	Severity    AnomalySeverity  `json:"severity"`
	Direction   AnomalyDirection `json:"direction"`
	Timestamp   time.Time        `json:"timestamp"`
	Description string           `json:"description"`
}

// NewsItem is a single article from the news feed provider.
type NewsItem struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Currencies  []string  `json:"currencies,omitempty"`
}
