package liquidations

import "crypto-market-hub/internal/domain"

// DataSource supplies liquidation data. Public liquidation feeds are not
// freely available, so the default implementation simulates records that
// satisfy the same invariants a live feed would; swapping in a real feed is
// a configuration change, not a code change for callers.
type DataSource interface {
	Data(coins []string) map[string]domain.Liquidations
	HeatmapData(coins []string) map[string]map[string]domain.LiquidationLevel
	RecentEvents(coins []string, limit int) []domain.LiquidationEvent
	PredictZones(coin string) domain.LiquidationZones
}
