package liquidations

import (
	"context"
	"testing"

	"crypto-market-hub/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("test")

type stubSource struct {
	data map[string]domain.Liquidations
}

func (s *stubSource) Data(coins []string) map[string]domain.Liquidations {
	out := make(map[string]domain.Liquidations, len(coins))
	for _, c := range coins {
		if liq, ok := s.data[c]; ok {
			out[c] = liq
		}
	}
	return out
}

func (s *stubSource) HeatmapData([]string) map[string]map[string]domain.LiquidationLevel {
	return nil
}

func (s *stubSource) RecentEvents([]string, int) []domain.LiquidationEvent { return nil }

func (s *stubSource) PredictZones(string) domain.LiquidationZones {
	return domain.LiquidationZones{}
}

func TestStatsAggregates(t *testing.T) {
	t.Parallel()

	source := &stubSource{data: map[string]domain.Liquidations{
		"BTC": {Total: 30_000_000, LongLiquidations: 25_000_000, ShortLiquidations: 5_000_000, AvgLiquidationSize: 400_000},
		"ETH": {Total: 10_000_000, LongLiquidations: 5_000_000, ShortLiquidations: 5_000_000, AvgLiquidationSize: 200_000},
	}}
	tracker := NewTracker(testTracer, source)

	stats := tracker.Stats(context.Background(), []string{"BTC", "ETH"})
	if stats.TotalLiquidations != 40_000_000 {
		t.Fatalf("total: %v", stats.TotalLiquidations)
	}
	if stats.MostLiquidatedCoin != "BTC" {
		t.Fatalf("most liquidated: %s", stats.MostLiquidatedCoin)
	}
	if stats.LargestLiquidation != 400_000 {
		t.Fatalf("largest: %v", stats.LargestLiquidation)
	}
	// 30M of 40M liquidated on the long side.
	if stats.LongPercentage != 75 || stats.ShortPercentage != 25 {
		t.Fatalf("percentages: %v / %v", stats.LongPercentage, stats.ShortPercentage)
	}
	if stats.LiquidationTrend != "BEARISH" {
		t.Fatalf("75%% longs liquidated should read bearish, got %s", stats.LiquidationTrend)
	}
}

func TestStatsBullishTrend(t *testing.T) {
	t.Parallel()

	source := &stubSource{data: map[string]domain.Liquidations{
		"BTC": {Total: 10_000_000, LongLiquidations: 2_000_000, ShortLiquidations: 8_000_000},
	}}
	tracker := NewTracker(testTracer, source)

	stats := tracker.Stats(context.Background(), []string{"BTC"})
	if stats.LiquidationTrend != "BULLISH" {
		t.Fatalf("80%% shorts liquidated should read bullish, got %s", stats.LiquidationTrend)
	}
}

func TestStatsNeutralWhenBalanced(t *testing.T) {
	t.Parallel()

	source := &stubSource{data: map[string]domain.Liquidations{
		"BTC": {Total: 10_000_000, LongLiquidations: 5_000_000, ShortLiquidations: 5_000_000},
	}}
	tracker := NewTracker(testTracer, source)

	if trend := tracker.Stats(context.Background(), []string{"BTC"}).LiquidationTrend; trend != "NEUTRAL" {
		t.Fatalf("balanced liquidations should read neutral, got %s", trend)
	}
}

func TestStatsEmptyData(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(testTracer, &stubSource{})
	stats := tracker.Stats(context.Background(), []string{"BTC"})
	if stats.TotalLiquidations != 0 || stats.LiquidationTrend != "NEUTRAL" {
		t.Fatalf("unexpected empty stats: %+v", stats)
	}
}

func TestTrackerFiltersUnsupportedCoins(t *testing.T) {
	t.Parallel()

	source := &stubSource{data: map[string]domain.Liquidations{
		"BTC": {Total: 1_000_000},
	}}
	tracker := NewTracker(testTracer, source)

	data := tracker.Data(context.Background(), []string{"BTC", "FAKECOIN"})
	if len(data) != 1 {
		t.Fatalf("expected only supported coins, got %v", data)
	}
}
