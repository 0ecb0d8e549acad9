package liquidations

import (
	"context"

	"crypto-market-hub/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// Tracker exposes liquidation data to handlers and jobs and derives the
// cross-coin statistics the overview tab shows.
type Tracker struct {
	tracer trace.Tracer
	source DataSource
}

func NewTracker(tracer trace.Tracer, source DataSource) *Tracker {
	return &Tracker{tracer: tracer, source: source}
}

func (t *Tracker) Data(ctx context.Context, coins []string) map[string]domain.Liquidations {
	_, span := t.tracer.Start(ctx, "liquidations.data")
	defer span.End()

	return t.source.Data(domain.FilterSupported(coins))
}

func (t *Tracker) HeatmapData(ctx context.Context, coins []string) map[string]map[string]domain.LiquidationLevel {
	_, span := t.tracer.Start(ctx, "liquidations.heatmap")
	defer span.End()

	return t.source.HeatmapData(domain.FilterSupported(coins))
}

func (t *Tracker) RecentEvents(ctx context.Context, coins []string, limit int) []domain.LiquidationEvent {
	_, span := t.tracer.Start(ctx, "liquidations.recent-events")
	defer span.End()

	return t.source.RecentEvents(domain.FilterSupported(coins), limit)
}

func (t *Tracker) PredictZones(ctx context.Context, coin string) domain.LiquidationZones {
	_, span := t.tracer.Start(ctx, "liquidations.predict-zones")
	defer span.End()

	return t.source.PredictZones(coin)
}

// Stats aggregates per-coin liquidation data into the overview summary.
// More longs than shorts liquidated reads as bearish, and vice versa.
func (t *Tracker) Stats(ctx context.Context, coins []string) domain.LiquidationStats {
	ctx, span := t.tracer.Start(ctx, "liquidations.stats")
	defer span.End()

	data := t.Data(ctx, coins)

	stats := domain.LiquidationStats{LiquidationTrend: "NEUTRAL"}
	var totalLongs, totalShorts float64
	for coin, liq := range data {
		stats.TotalLiquidations += liq.Total
		totalLongs += liq.LongLiquidations
		totalShorts += liq.ShortLiquidations
		if liq.Total > 0 && (stats.MostLiquidatedCoin == "" || liq.Total > data[stats.MostLiquidatedCoin].Total) {
			stats.MostLiquidatedCoin = coin
		}
		if liq.AvgLiquidationSize > stats.LargestLiquidation {
			stats.LargestLiquidation = liq.AvgLiquidationSize
		}
	}

	if stats.TotalLiquidations > 0 {
		stats.LongPercentage = totalLongs / stats.TotalLiquidations * 100
		stats.ShortPercentage = totalShorts / stats.TotalLiquidations * 100
	}
	if stats.LongPercentage > 60 {
		stats.LiquidationTrend = "BEARISH"
	} else if stats.ShortPercentage > 60 {
		stats.LiquidationTrend = "BULLISH"
	}
	return stats
}
