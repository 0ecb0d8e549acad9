package whales

import (
	"context"
	"testing"

	"crypto-market-hub/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("test")

// spySource records the arguments the tracker forwards.
type spySource struct {
	coins   []string
	minSize float64
	address string
}

func (s *spySource) RecentActivity(coins []string, minPositionUSD float64) []domain.WhaleActivity {
	s.coins, s.minSize = coins, minPositionUSD
	return nil
}

func (s *spySource) PositionsSummary(coins []string) map[string]domain.WhalePositionSummary {
	s.coins = coins
	return nil
}

func (s *spySource) FlowData(coins []string, _ string) map[string]domain.WhaleFlow {
	s.coins = coins
	return nil
}

func (s *spySource) DetectPatterns(coins []string) []domain.WhalePattern {
	s.coins = coins
	return nil
}

func (s *spySource) TrackAddress(address string) domain.WhaleStats {
	s.address = address
	return domain.WhaleStats{Address: address}
}

func (s *spySource) Leaderboard() []domain.WhaleLeaderboardEntry { return nil }

func TestTrackerFiltersUnsupportedCoins(t *testing.T) {
	t.Parallel()

	source := &spySource{}
	tracker := NewTracker(testTracer, source)

	tracker.RecentActivity(context.Background(), []string{"BTC", "FAKECOIN", "ETH"}, 2_000_000)
	if len(source.coins) != 2 || source.coins[0] != "BTC" || source.coins[1] != "ETH" {
		t.Fatalf("unsupported coin should be filtered, got %v", source.coins)
	}
	if source.minSize != 2_000_000 {
		t.Fatalf("minimum size should be forwarded, got %v", source.minSize)
	}
}

func TestTrackerDefaultMinimumSize(t *testing.T) {
	t.Parallel()

	source := &spySource{}
	tracker := NewTracker(testTracer, source)

	tracker.RecentActivity(context.Background(), []string{"BTC"}, 0)
	if source.minSize != 1_000_000 {
		t.Fatalf("zero minimum should default to $1M, got %v", source.minSize)
	}
}

func TestTrackerForwardsAddress(t *testing.T) {
	t.Parallel()

	source := &spySource{}
	tracker := NewTracker(testTracer, source)

	stats := tracker.TrackAddress(context.Background(), "0xf84.dd")
	if source.address != "0xf84.dd" || stats.Address != "0xf84.dd" {
		t.Fatalf("address not forwarded: %s / %s", source.address, stats.Address)
	}
}
