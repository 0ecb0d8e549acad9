package domain

import "time"

// WhaleActivityTypes are the position actions the tracker reports.
var WhaleActivityTypes = []string{
	"Open Long", "Open Short", "Close Long", "Close Short",
	"Add to Long", "Add to Short", "Reduce Long", "Reduce Short",
}

// WhaleActivity is one large-position event attributed to a tracked address.
type WhaleActivity struct {
	Timestamp    time.Time `json:"timestamp"`
	Address      string    `json:"address"`
	Symbol       string    `json:"symbol"`
	Activity     string    `json:"activity"`
	PositionSize float64   `json:"position_size"`
	Price        float64   `json:"price"`
	Exchange     string    `json:"exchange"`
}

// WhalePositionSummary aggregates open whale positions for one coin.
type WhalePositionSummary struct {
	TotalLongPositions  float64 `json:"total_long_positions"`
	TotalShortPositions float64 `json:"total_short_positions"`
	NetPosition         float64 `json:"net_position"`
	LongShortRatio      float64 `json:"long_short_ratio"`
	WhaleCount          int     `json:"whale_count"`
}

// WhaleFlow describes whale money movement for one coin over a timeframe.
type WhaleFlow struct {
	Inflow    float64 `json:"inflow"`
	Outflow   float64 `json:"outflow"`
	NetFlow   float64 `json:"net_flow"`
	FlowRatio float64 `json:"flow_ratio"`
	Trend     string  `json:"trend"`
}

// WhalePattern is a detected behavioral pattern for a coin.
type WhalePattern struct {
	Coin        string    `json:"coin"`
	PatternType string    `json:"pattern_type"`
	Confidence  float64   `json:"confidence"`
	Timeframe   string    `json:"timeframe"`
	Description string    `json:"description"`
	DetectedAt  time.Time `json:"detected_at"`
}

// WhaleStats is the tracked-address detail view.
type WhaleStats struct {
	Address             string    `json:"address"`
	TotalPortfolioValue float64   `json:"total_portfolio_value"`
	ActivePositions     int       `json:"active_positions"`
	PnL24h              float64   `json:"pnl_24h"`
	LastActivity        time.Time `json:"last_activity"`
	RiskScore           float64   `json:"risk_score"`
}

// WhaleLeaderboardEntry ranks a whale by 24h performance.
type WhaleLeaderboardEntry struct {
	Rank            int     `json:"rank"`
	Address         string  `json:"address"`
	PnL24h          float64 `json:"pnl_24h"`
	PnL7d           float64 `json:"pnl_7d"`
	TotalVolume     float64 `json:"total_volume"`
	WinRate         float64 `json:"win_rate"`
	ActivePositions int     `json:"active_positions"`
}
