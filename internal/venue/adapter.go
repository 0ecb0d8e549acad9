package venue

import (
	"context"
	"time"
)

// Venue names, in default fallback priority order.
const (
	VenueBinance = "binance"
	VenueBybit   = "bybit"
	VenueOKX     = "okx"
)

// FallbackOrder is the order venues are tried when aggregating a metric.
var FallbackOrder = []string{VenueBinance, VenueBybit, VenueOKX}

// FundingRate is the typed result of a funding rate lookup. FundingRate is
// the raw fractional rate as reported by the venue (e.g. 0.0004), nil when
// the venue omits it.
type FundingRate struct {
	Symbol          string
	FundingRate     *float64
	MarkPrice       *float64
	NextFundingTime *time.Time
}

// OpenInterest is the typed result of an open interest lookup.
// OpenInterestValue is the USD notional, nil when unavailable.
type OpenInterest struct {
	Symbol            string
	OpenInterestValue *float64
}

// Ticker is the typed result of a ticker lookup. Mark is nil for spot
// instruments.
type Ticker struct {
	Symbol      string
	Last        float64
	QuoteVolume float64
	Mark        *float64
}

// OrderBookLevel is one price level of an order book side.
type OrderBookLevel struct {
	Price float64 `json:"price"`
	Qty   float64 `json:"qty"`
}

// OrderBook holds both sides of a venue order book, best prices first.
type OrderBook struct {
	Bids []OrderBookLevel `json:"bids"`
	Asks []OrderBookLevel `json:"asks"`
}

// FundingHistoryPoint is one past funding settlement, raw fractional rate.
type FundingHistoryPoint struct {
	Timestamp   time.Time
	FundingRate float64
}

// Adapter is the uniform boundary to one external venue. Symbols are in the
// unified format produced by PerpSymbol/SpotSymbol; each adapter translates
// to its own wire format. Any call may fail with a network or venue error;
// callers treat every failure identically (fall back or substitute a default).
type Adapter interface {
	Name() string
	FetchFundingRate(ctx context.Context, symbol string) (*FundingRate, error)
	FetchOpenInterest(ctx context.Context, symbol string) (*OpenInterest, error)
	FetchTicker(ctx context.Context, symbol string) (*Ticker, error)
	FetchOrderBook(ctx context.Context, symbol string) (*OrderBook, error)
	FetchFundingRateHistory(ctx context.Context, symbol string, since time.Time, limit int) ([]FundingHistoryPoint, error)
}

// Credentials holds per-venue API credentials. Market data endpoints work
// without them; they are optional and absence never fails startup.
type Credentials struct {
	APIKey     string
	Secret     string
	Passphrase string
}
