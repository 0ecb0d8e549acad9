package liquidations

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"crypto-market-hub/internal/domain"
)

var liqExchanges = []string{"Binance", "Bybit", "OKX"}

// Simulated generates randomized liquidation records from a seeded source.
type Simulated struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewSimulated creates a simulated source. Seed zero selects a time-based
// seed.
func NewSimulated(seed int64) *Simulated {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulated{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

func (s *Simulated) Data(coins []string) map[string]domain.Liquidations {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := make(map[string]domain.Liquidations, len(coins))
	for _, coin := range coins {
		longs := (1 + s.rng.Float64()*49) * 1_000_000
		shorts := (1 + s.rng.Float64()*29) * 1_000_000
		total := longs + shorts

		ratio := 0.5
		if total > 0 {
			ratio = longs / total
		}
		data[coin] = domain.Liquidations{
			Total:              total,
			LongLiquidations:   longs,
			ShortLiquidations:  shorts,
			LiquidationRatio:   ratio,
			AvgLiquidationSize: 10_000 + s.rng.Float64()*490_000,
			LiquidationCount:   50 + s.rng.Intn(451),
		}
	}
	return data
}

func (s *Simulated) HeatmapData(coins []string) map[string]map[string]domain.LiquidationLevel {
	s.mu.Lock()
	defer s.mu.Unlock()

	heatmap := make(map[string]map[string]domain.LiquidationLevel, len(coins))
	for _, coin := range coins {
		levels := make(map[string]domain.LiquidationLevel, len(domain.HeatmapPriceLevels))
		for _, level := range domain.HeatmapPriceLevels {
			longs := s.rng.Float64() * 100 * 1_000_000
			shorts := s.rng.Float64() * 80 * 1_000_000
			levels[level] = domain.LiquidationLevel{
				LongLiquidations:  longs,
				ShortLiquidations: shorts,
				TotalLiquidations: longs + shorts,
				PriceDistance:     s.rng.Float64()*20 - 10,
			}
		}
		heatmap[coin] = levels
	}
	return heatmap
}

func (s *Simulated) RecentEvents(coins []string, limit int) []domain.LiquidationEvent {
	if len(coins) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = 20
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	events := make([]domain.LiquidationEvent, 0, limit)
	for i := 0; i < limit; i++ {
		coin := coins[s.rng.Intn(len(coins))]

		var size float64
		if coin == "BTC" || coin == "ETH" {
			size = 50_000 + s.rng.Float64()*1_950_000
		} else {
			size = 10_000 + s.rng.Float64()*490_000
		}

		side := "Long"
		if s.rng.Intn(2) == 1 {
			side = "Short"
		}

		events = append(events, domain.LiquidationEvent{
			Timestamp: now.Add(-time.Duration(1+s.rng.Intn(60)) * time.Minute),
			Symbol:    coin + "/USDT",
			Side:      side,
			Size:      size,
			Price:     s.price(coin, 0.02),
			Exchange:  liqExchanges[s.rng.Intn(len(liqExchanges))],
			Leverage:  5 + s.rng.Intn(46),
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return events
}

func (s *Simulated) PredictZones(coin string) domain.LiquidationZones {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := domain.ReferencePrices[coin]
	if !ok {
		current = 50 + s.rng.Float64()*69950
	}

	return domain.LiquidationZones{
		SupportZones: []domain.LiquidationZone{
			{
				Price:             current * 0.95,
				LiquidationAmount: (10 + s.rng.Float64()*90) * 1_000_000,
				Side:              "Long",
				Strength:          "Strong",
			},
			{
				Price:             current * 0.90,
				LiquidationAmount: (20 + s.rng.Float64()*130) * 1_000_000,
				Side:              "Long",
				Strength:          "Very Strong",
			},
		},
		ResistanceZones: []domain.LiquidationZone{
			{
				Price:             current * 1.05,
				LiquidationAmount: (15 + s.rng.Float64()*65) * 1_000_000,
				Side:              "Short",
				Strength:          "Moderate",
			},
			{
				Price:             current * 1.10,
				LiquidationAmount: (25 + s.rng.Float64()*95) * 1_000_000,
				Side:              "Short",
				Strength:          "Strong",
			},
		},
	}
}

func (s *Simulated) price(coin string, variation float64) float64 {
	base, ok := domain.ReferencePrices[coin]
	if !ok {
		base = 1 + s.rng.Float64()*99
	}
	return base * (1 + (s.rng.Float64()*2-1)*variation)
}
