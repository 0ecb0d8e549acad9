package derivatives

import (
	"fmt"
	"math"
	"sort"
	"time"

	"crypto-market-hub/internal/domain"
)

// DefaultAnomalyThreshold is the funding rate percentage above which a coin
// is flagged.
const DefaultAnomalyThreshold = 0.5

// DetectAnomalies flags coins whose absolute funding rate exceeds the
// threshold, sorted by absolute rate descending. Pure function: no I/O, no
// mutation of the input. Ties keep registry order.
func DetectAnomalies(rates map[string]float64, threshold float64) []domain.Anomaly {
	if threshold <= 0 {
		threshold = DefaultAnomalyThreshold
	}

	now := time.Now().UTC()
	anomalies := make([]domain.Anomaly, 0)
	for _, coin := range domain.SupportedCoins {
		rate, ok := rates[coin]
		if !ok || math.Abs(rate) <= threshold {
			continue
		}

		severity := domain.SeverityMedium
		if math.Abs(rate) > 1.0 {
			severity = domain.SeverityHigh
		}
		direction := domain.DirectionBearish
		pressure := "bearish"
		if rate > 0 {
			direction = domain.DirectionBullish
			pressure = "bullish"
		}

		anomalies = append(anomalies, domain.Anomaly{
			Coin:        coin,
			FundingRate: rate,
			Severity:    severity,
			Direction:   direction,
			Timestamp:   now,
			Description: fmt.Sprintf("%s funding rate at %.4f%% (%s pressure)", coin, rate, pressure),
		})
	}

	sort.SliceStable(anomalies, func(i, j int) bool {
		return math.Abs(anomalies[i].FundingRate) > math.Abs(anomalies[j].FundingRate)
	})
	return anomalies
}
