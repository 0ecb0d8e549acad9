package whales

import (
	"context"

	"crypto-market-hub/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// Tracker exposes whale data to handlers and jobs, filtering requests
// against the supported registry and tracing each call. The backing
// DataSource is chosen at startup (simulated today, live later).
type Tracker struct {
	tracer trace.Tracer
	source DataSource
}

func NewTracker(tracer trace.Tracer, source DataSource) *Tracker {
	return &Tracker{tracer: tracer, source: source}
}

// RecentActivity returns the latest whale position events above the minimum
// position size, most recent first.
func (t *Tracker) RecentActivity(ctx context.Context, coins []string, minPositionUSD float64) []domain.WhaleActivity {
	_, span := t.tracer.Start(ctx, "whales.recent-activity")
	defer span.End()

	if minPositionUSD <= 0 {
		minPositionUSD = 1_000_000
	}
	return t.source.RecentActivity(domain.FilterSupported(coins), minPositionUSD)
}

func (t *Tracker) PositionsSummary(ctx context.Context, coins []string) map[string]domain.WhalePositionSummary {
	_, span := t.tracer.Start(ctx, "whales.positions-summary")
	defer span.End()

	return t.source.PositionsSummary(domain.FilterSupported(coins))
}

func (t *Tracker) FlowData(ctx context.Context, coins []string, timeframe string) map[string]domain.WhaleFlow {
	_, span := t.tracer.Start(ctx, "whales.flow-data")
	defer span.End()

	if timeframe == "" {
		timeframe = "24h"
	}
	return t.source.FlowData(domain.FilterSupported(coins), timeframe)
}

func (t *Tracker) DetectPatterns(ctx context.Context, coins []string) []domain.WhalePattern {
	_, span := t.tracer.Start(ctx, "whales.detect-patterns")
	defer span.End()

	return t.source.DetectPatterns(domain.FilterSupported(coins))
}

func (t *Tracker) TrackAddress(ctx context.Context, address string) domain.WhaleStats {
	_, span := t.tracer.Start(ctx, "whales.track-address")
	defer span.End()

	return t.source.TrackAddress(address)
}

func (t *Tracker) Leaderboard(ctx context.Context) []domain.WhaleLeaderboardEntry {
	_, span := t.tracer.Start(ctx, "whales.leaderboard")
	defer span.End()

	return t.source.Leaderboard()
}
