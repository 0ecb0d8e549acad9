package whales

import (
	"crypto/md5"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"crypto-market-hub/internal/domain"
)

var (
	addressPrefixes = []string{"0xf84", "0x8f0f", "0xd643", "0x9db9", "0x349", "0x8e80", "0x48cd", "0x52b3", "0xec77", "0x359e"}
	addressSuffixes = []string{".dd", ".42", ".2a", ".6a", ".6f", ".04", ".71", ".fa", ".1a", ".e9"}

	simExchanges = []string{"Binance", "Bybit", "OKX", "Hyperliquid"}

	patternTypes = []string{
		"Accumulation Phase",
		"Distribution Phase",
		"Squeeze Pattern",
		"Breakout Setup",
		"Divergence Alert",
	}
)

const maxActivities = 12

// Simulated generates randomized whale records from a seeded source, so
// output is reproducible for a fixed seed.
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

// Address derives a deterministic whale address for an index, matching the
// shortened display format of on-chain trackers.
func Address(index int) string {
	if index < len(addressPrefixes) {
		return addressPrefixes[index] + addressSuffixes[index]
	}
	base := fmt.Sprintf("%x", md5.Sum([]byte(fmt.Sprint(index))))[:4]
	suffix := fmt.Sprintf("%x", md5.Sum([]byte(fmt.Sprint(index+100))))[:2]
	return "0x" + base + "." + suffix
}

func (s *Simulated) RecentActivity(coins []string, minPositionUSD float64) []domain.WhaleActivity {
	if len(coins) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	activities := make([]domain.WhaleActivity, 0, maxActivities)
	for i := 0; i < 15; i++ {
		coin := coins[s.rng.Intn(len(coins))]

		var size float64
		if coin == "BTC" || coin == "ETH" {
			size = (1.0 + s.rng.Float64()*9.0) * 1_000_000
		} else {
			size = (0.1 + s.rng.Float64()*4.9) * 1_000_000
		}
		if size < minPositionUSD {
			continue
		}

		activities = append(activities, domain.WhaleActivity{
			Timestamp:    now.Add(-time.Duration(1+s.rng.Intn(120)) * time.Minute),
			Address:      Address(i),
			Symbol:       coin,
			Activity:     domain.WhaleActivityTypes[s.rng.Intn(len(domain.WhaleActivityTypes))],
			PositionSize: size,
			Price:        s.price(coin, 0.05),
			Exchange:     simExchanges[s.rng.Intn(len(simExchanges))],
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > maxActivities {
		activities = activities[:maxActivities]
	}
	return activities
}

func (s *Simulated) PositionsSummary(coins []string) map[string]domain.WhalePositionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := make(map[string]domain.WhalePositionSummary, len(coins))
	for _, coin := range coins {
		longs := (50 + s.rng.Float64()*450) * 1_000_000
		shorts := (30 + s.rng.Float64()*270) * 1_000_000

		ratio := math.Inf(1)
		if shorts > 0 {
			ratio = longs / shorts
		}
		summary[coin] = domain.WhalePositionSummary{
			TotalLongPositions:  longs,
			TotalShortPositions: shorts,
			NetPosition:         longs - shorts,
			LongShortRatio:      ratio,
			WhaleCount:          5 + s.rng.Intn(21),
		}
	}
	return summary
}

func (s *Simulated) FlowData(coins []string, _ string) map[string]domain.WhaleFlow {
	s.mu.Lock()
	defer s.mu.Unlock()

	flows := make(map[string]domain.WhaleFlow, len(coins))
	for _, coin := range coins {
		inflow := (1 + s.rng.Float64()*49) * 1_000_000
		outflow := (1 + s.rng.Float64()*39) * 1_000_000

		ratio := math.Inf(1)
		if outflow > 0 {
			ratio = inflow / outflow
		}
		trend := "BEARISH"
		if inflow > outflow {
			trend = "BULLISH"
		}
		flows[coin] = domain.WhaleFlow{
			Inflow:    inflow,
			Outflow:   outflow,
			NetFlow:   inflow - outflow,
			FlowRatio: ratio,
			Trend:     trend,
		}
	}
	return flows
}

func (s *Simulated) DetectPatterns(coins []string) []domain.WhalePattern {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(coins) > 3 {
		coins = coins[:3]
	}

	interests := []string{"strong", "moderate", "weak"}
	sides := []string{"buying", "selling"}
	timeframes := []string{"4h", "1d", "3d"}

	var patterns []domain.WhalePattern
	for _, coin := range coins {
		if s.rng.Float64() <= 0.7 {
			continue
		}
		patterns = append(patterns, domain.WhalePattern{
			Coin:        coin,
			PatternType: patternTypes[s.rng.Intn(len(patternTypes))],
			Confidence:  0.6 + s.rng.Float64()*0.35,
			Timeframe:   timeframes[s.rng.Intn(len(timeframes))],
			Description: fmt.Sprintf("Whales showing %s %s interest",
				interests[s.rng.Intn(len(interests))], sides[s.rng.Intn(len(sides))]),
			DetectedAt: s.now(),
		})
	}
	return patterns
}

func (s *Simulated) TrackAddress(address string) domain.WhaleStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.WhaleStats{
		Address:             address,
		TotalPortfolioValue: (10 + s.rng.Float64()*90) * 1_000_000,
		ActivePositions:     3 + s.rng.Intn(13),
		PnL24h:              (-5 + s.rng.Float64()*20) * 100_000,
		LastActivity:        s.now().Add(-time.Duration(5+s.rng.Intn(176)) * time.Minute),
		RiskScore:           1 + s.rng.Float64()*9,
	}
}

func (s *Simulated) Leaderboard() []domain.WhaleLeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]domain.WhaleLeaderboardEntry, 0, 10)
	for i := 0; i < 10; i++ {
		entries = append(entries, domain.WhaleLeaderboardEntry{
			Address:         Address(i),
			PnL24h:          (-2 + s.rng.Float64()*17) * 100_000,
			PnL7d:           (-5 + s.rng.Float64()*35) * 100_000,
			TotalVolume:     (10 + s.rng.Float64()*190) * 1_000_000,
			WinRate:         0.4 + s.rng.Float64()*0.5,
			ActivePositions: 2 + s.rng.Intn(11),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PnL24h > entries[j].PnL24h
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func (s *Simulated) price(coin string, variation float64) float64 {
	base, ok := domain.ReferencePrices[coin]
	if !ok {
		base = 1 + s.rng.Float64()*99
	}
	return base * (1 + (s.rng.Float64()*2-1)*variation)
}
