package whales

import "crypto-market-hub/internal/domain"

// DataSource supplies whale position data. The simulated variant generates
// structurally valid records so the dashboard and alerting can run without
// a live on-chain feed; a live implementation can be swapped in via
// configuration without touching callers.
type DataSource interface {
	RecentActivity(coins []string, minPositionUSD float64) []domain.WhaleActivity
	PositionsSummary(coins []string) map[string]domain.WhalePositionSummary
	FlowData(coins []string, timeframe string) map[string]domain.WhaleFlow
	DetectPatterns(coins []string) []domain.WhalePattern
	TrackAddress(address string) domain.WhaleStats
	Leaderboard() []domain.WhaleLeaderboardEntry
}
