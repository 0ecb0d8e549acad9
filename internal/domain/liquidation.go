package domain

import "time"

// Liquidations aggregates liquidation volume for one coin.
type Liquidations struct {
	Total              float64 `json:"total"`
	LongLiquidations   float64 `json:"long_liquidations"`
	ShortLiquidations  float64 `json:"short_liquidations"`
	LiquidationRatio   float64 `json:"liquidation_ratio"`
	AvgLiquidationSize float64 `json:"avg_liquidation_size"`
	LiquidationCount   int     `json:"liquidation_count"`
}

// LiquidationEvent is one forced position close.
type LiquidationEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Symbol    string    `json:"symbol"`
	Side      string    `json:"side"`
	Size      float64   `json:"size"`
	Price     float64   `json:"price"`
	Exchange  string    `json:"exchange"`
	Leverage  int       `json:"leverage"`
}

// LiquidationLevel is the liquidation concentration at one price level,
// used by the heatmap view.
type LiquidationLevel struct {
	LongLiquidations  float64 `json:"long_liquidations"`
	ShortLiquidations float64 `json:"short_liquidations"`
	TotalLiquidations float64 `json:"total_liquidations"`
	PriceDistance     float64 `json:"price_distance"`
}

// HeatmapPriceLevels are the buckets the heatmap reports, nearest first.
var HeatmapPriceLevels = []string{"Support 1", "Support 2", "Current", "Resistance 1", "Resistance 2"}

// LiquidationStats summarizes liquidations across all requested coins.
type LiquidationStats struct {
	TotalLiquidations  float64 `json:"total_liquidations"`
	LongPercentage     float64 `json:"long_percentage"`
	ShortPercentage    float64 `json:"short_percentage"`
	LargestLiquidation float64 `json:"largest_liquidation"`
	MostLiquidatedCoin string  `json:"most_liquidated_coin"`
	LiquidationTrend   string  `json:"liquidation_trend"`
}

// LiquidationZone marks a price area with clustered liquidation liquidity.
type LiquidationZone struct {
	Price             float64 `json:"price"`
	LiquidationAmount float64 `json:"liquidation_amount"`
	Side              string  `json:"side"`
	Strength          string  `json:"strength"`
}

// LiquidationZones groups predicted zones around the current price.
type LiquidationZones struct {
	SupportZones    []LiquidationZone `json:"support_zones"`
	ResistanceZones []LiquidationZone `json:"resistance_zones"`
}
