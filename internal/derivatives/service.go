package derivatives

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"crypto-market-hub/internal/cache"
	"crypto-market-hub/internal/domain"
	"crypto-market-hub/internal/venue"

	"go.opentelemetry.io/otel/trace"
)

// Cache keys, one per multi-coin metric.
const (
	metricFundingRates = "funding_rates"
	metricOpenInterest = "open_interest"
	metricPerpetual    = "perpetual_data"
	metricBasis        = "basis_data"
)

// Options tunes the aggregator. RequestDelay is the pause between coins when
// iterating sequentially against the venues (rate-limit courtesy); zero
// disables it. Debug enables per-venue failure logging.
type Options struct {
	RequestDelay time.Duration
	Debug        bool
}

// Service aggregates derivatives metrics across venues with ordered
// fallback, per-coin failure isolation, and TTL caching. It owns its cache
// store and adapter set exclusively.
type Service struct {
	tracer trace.Tracer
	venues []venue.Adapter
	store  cache.Store
	opts   Options
}

// NewService creates the aggregator. Venues are tried in the given order;
// the first venue is also the primary for basis and funding history.
func NewService(tracer trace.Tracer, venues []venue.Adapter, store cache.Store, opts Options) *Service {
	return &Service{tracer: tracer, venues: venues, store: store, opts: opts}
}

// FundingRates returns the current funding rate per requested coin, as a
// percentage. Unsupported coins are dropped; a coin all venues fail for
// maps to 0.0. The result is cached for the store's TTL.
func (s *Service) FundingRates(ctx context.Context, coins []string) (map[string]float64, error) {
	ctx, span := s.tracer.Start(ctx, "derivatives.funding-rates")
	defer span.End()

	coins = domain.FilterSupported(coins)
	key := cache.Key(metricFundingRates, coins)
	if cached, ok := s.getFloatMap(ctx, key); ok {
		return cached, nil
	}

	rates := make(map[string]float64, len(coins))
	for i, coin := range coins {
		if i > 0 {
			if err := s.pause(ctx); err != nil {
				return rates, err
			}
		}
		rates[coin] = s.fundingRateForCoin(ctx, coin)
	}

	s.setJSON(ctx, key, rates)
	return rates, nil
}

// fundingRateForCoin tries each venue in priority order and normalizes the
// raw fractional rate to a percentage. Returns 0.0 when every venue fails.
func (s *Service) fundingRateForCoin(ctx context.Context, coin string) float64 {
	for _, v := range s.venues {
		symbol := venue.PerpSymbol(v.Name(), coin)
		rate, err := v.FetchFundingRate(ctx, symbol)
		if err != nil {
			s.debugf("funding rate for %s on %s: %v", coin, v.Name(), err)
			continue
		}
		if rate == nil || rate.FundingRate == nil {
			continue
		}
		return *rate.FundingRate * 100
	}
	log.Printf("Warning: could not fetch funding rate for %s from any venue", coin)
	return 0.0
}

// OpenInterest returns the USD open interest per requested coin, with the
// same fallback, default, and caching behavior as FundingRates.
func (s *Service) OpenInterest(ctx context.Context, coins []string) (map[string]float64, error) {
	ctx, span := s.tracer.Start(ctx, "derivatives.open-interest")
	defer span.End()

	coins = domain.FilterSupported(coins)
	key := cache.Key(metricOpenInterest, coins)
	if cached, ok := s.getFloatMap(ctx, key); ok {
		return cached, nil
	}

	oi := make(map[string]float64, len(coins))
	for i, coin := range coins {
		if i > 0 {
			if err := s.pause(ctx); err != nil {
				return oi, err
			}
		}
		oi[coin] = s.openInterestForCoin(ctx, coin)
	}

	s.setJSON(ctx, key, oi)
	return oi, nil
}

func (s *Service) openInterestForCoin(ctx context.Context, coin string) float64 {
	for _, v := range s.venues {
		symbol := venue.PerpSymbol(v.Name(), coin)
		oi, err := v.FetchOpenInterest(ctx, symbol)
		if err != nil {
			s.debugf("open interest for %s on %s: %v", coin, v.Name(), err)
			continue
		}
		if oi == nil || oi.OpenInterestValue == nil {
			continue
		}
		return *oi.OpenInterestValue
	}
	log.Printf("Warning: could not fetch open interest for %s from any venue", coin)
	return 0.0
}

// PerpetualData bundles funding rates, open interest, volume, mark prices,
// and next funding times for the requested coins.
func (s *Service) PerpetualData(ctx context.Context, coins []string) (*domain.PerpetualData, error) {
	ctx, span := s.tracer.Start(ctx, "derivatives.perpetual-data")
	defer span.End()

	coins = domain.FilterSupported(coins)
	key := cache.Key(metricPerpetual, coins)
	if raw, ok := s.store.Get(ctx, key); ok {
		var cached domain.PerpetualData
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}

	data := domain.NewPerpetualData()

	rates, err := s.FundingRates(ctx, coins)
	if err != nil {
		return data, err
	}
	oi, err := s.OpenInterest(ctx, coins)
	if err != nil {
		return data, err
	}
	data.FundingRates = rates
	data.OpenInterest = oi

	for _, coin := range coins {
		volume, mark, next := s.tickerDataForCoin(ctx, coin)
		data.Volume24h[coin] = volume
		data.MarkPrices[coin] = mark
		data.NextFundingTime[coin] = next
	}

	s.setJSON(ctx, key, data)
	return data, nil
}

// tickerDataForCoin falls back through venues for 24h volume and mark
// price. The mark price falls back to last when the venue omits it.
func (s *Service) tickerDataForCoin(ctx context.Context, coin string) (volume, mark float64, next *time.Time) {
	for _, v := range s.venues {
		symbol := venue.PerpSymbol(v.Name(), coin)
		ticker, err := v.FetchTicker(ctx, symbol)
		if err != nil {
			s.debugf("ticker for %s on %s: %v", coin, v.Name(), err)
			continue
		}
		if ticker == nil {
			continue
		}
		mark = ticker.Last
		if ticker.Mark != nil {
			mark = *ticker.Mark
		}
		return ticker.QuoteVolume, mark, nil
	}
	return 0, 0, nil
}

// BasisData computes the futures-over-spot premium percentage per coin.
// Both prices come from the primary venue only; a cross-venue basis would
// be meaningless given differing fee and funding structures.
func (s *Service) BasisData(ctx context.Context, coins []string) (map[string]float64, error) {
	ctx, span := s.tracer.Start(ctx, "derivatives.basis-data")
	defer span.End()

	coins = domain.FilterSupported(coins)
	key := cache.Key(metricBasis, coins)
	if cached, ok := s.getFloatMap(ctx, key); ok {
		return cached, nil
	}

	basis := make(map[string]float64, len(coins))
	for i, coin := range coins {
		if i > 0 {
			if err := s.pause(ctx); err != nil {
				return basis, err
			}
		}
		basis[coin] = s.basisForCoin(ctx, coin)
	}

	s.setJSON(ctx, key, basis)
	return basis, nil
}

func (s *Service) basisForCoin(ctx context.Context, coin string) float64 {
	if len(s.venues) == 0 {
		return 0.0
	}
	primary := s.venues[0]

	futures, err := primary.FetchTicker(ctx, venue.PerpSymbol(primary.Name(), coin))
	if err != nil {
		s.debugf("basis futures ticker for %s: %v", coin, err)
		return 0.0
	}
	spot, err := primary.FetchTicker(ctx, venue.SpotSymbol(coin))
	if err != nil {
		s.debugf("basis spot ticker for %s: %v", coin, err)
		return 0.0
	}

	if futures == nil || spot == nil || futures.Last <= 0 || spot.Last <= 0 {
		return 0.0
	}
	return (futures.Last - spot.Last) / spot.Last * 100
}

// FundingHistory returns past funding settlements for one coin from the
// primary venue, oldest first, rates normalized to percentages.
func (s *Service) FundingHistory(ctx context.Context, coin string, days int) ([]domain.FundingPoint, error) {
	ctx, span := s.tracer.Start(ctx, "derivatives.funding-history")
	defer span.End()

	if !domain.IsSupported(coin) || len(s.venues) == 0 {
		return nil, nil
	}
	if days <= 0 {
		days = 7
	}

	primary := s.venues[0]
	since := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
	points, err := primary.FetchFundingRateHistory(ctx, venue.PerpSymbol(primary.Name(), coin), since, 1000)
	if err != nil {
		log.Printf("funding history for %s: %v", coin, err)
		return nil, nil
	}

	out := make([]domain.FundingPoint, 0, len(points))
	for _, p := range points {
		out = append(out, domain.FundingPoint{
			Timestamp:   p.Timestamp,
			FundingRate: p.FundingRate * 100,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

// MarketSummary fetches all dashboard metrics together. The four fetches
// are launched concurrently and joined; a failed metric is replaced with an
// empty result so one bad feed never fails the whole render.
func (s *Service) MarketSummary(ctx context.Context, coins []string) *domain.MarketSummary {
	ctx, span := s.tracer.Start(ctx, "derivatives.market-summary")
	defer span.End()

	summary := &domain.MarketSummary{
		FundingRates: map[string]float64{},
		OpenInterest: map[string]float64{},
		Perpetuals:   domain.NewPerpetualData(),
		BasisData:    map[string]float64{},
		Timestamp:    time.Now().UTC(),
	}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		if rates, err := s.FundingRates(ctx, coins); err == nil {
			summary.FundingRates = rates
		} else {
			log.Printf("market summary: funding rates failed: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if oi, err := s.OpenInterest(ctx, coins); err == nil {
			summary.OpenInterest = oi
		} else {
			log.Printf("market summary: open interest failed: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if perp, err := s.PerpetualData(ctx, coins); err == nil {
			summary.Perpetuals = perp
		} else {
			log.Printf("market summary: perpetual data failed: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if basis, err := s.BasisData(ctx, coins); err == nil {
			summary.BasisData = basis
		} else {
			log.Printf("market summary: basis data failed: %v", err)
		}
	}()
	wg.Wait()

	return summary
}

// OrderBook returns the order book for a coin's spot market from the first
// venue that answers.
func (s *Service) OrderBook(ctx context.Context, coin string) (*venue.OrderBook, error) {
	ctx, span := s.tracer.Start(ctx, "derivatives.order-book")
	defer span.End()

	var lastErr error
	for _, v := range s.venues {
		book, err := v.FetchOrderBook(ctx, venue.SpotSymbol(coin))
		if err != nil {
			s.debugf("order book for %s on %s: %v", coin, v.Name(), err)
			lastErr = err
			continue
		}
		return book, nil
	}
	return nil, lastErr
}

// HealthCheck probes each venue with a BTC ticker fetch.
func (s *Service) HealthCheck(ctx context.Context) map[string]bool {
	ctx, span := s.tracer.Start(ctx, "derivatives.health-check")
	defer span.End()

	health := make(map[string]bool, len(s.venues))
	for _, v := range s.venues {
		ticker, err := v.FetchTicker(ctx, venue.SpotSymbol("BTC"))
		health[v.Name()] = err == nil && ticker != nil && ticker.Last > 0
	}
	return health
}

// ClearCache drops all cached aggregates.
func (s *Service) ClearCache(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	log.Println("Cache cleared")
	return nil
}

func (s *Service) pause(ctx context.Context) error {
	if s.opts.RequestDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.opts.RequestDelay):
		return nil
	}
}

func (s *Service) getFloatMap(ctx context.Context, key string) (map[string]float64, bool) {
	raw, ok := s.store.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var m map[string]float64
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return m, true
}

func (s *Service) setJSON(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		log.Printf("cache write error for %s: %v", key, err)
	}
}

func (s *Service) debugf(format string, args ...interface{}) {
	if s.opts.Debug {
		log.Printf("debug: "+format, args...)
	}
}
