package venue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const (
	binanceFuturesBaseURL = "https://fapi.binance.com"
	binanceSpotBaseURL    = "https://api.binance.com"
)

// BinanceAdapter fetches perpetual futures and spot market data from Binance.
type BinanceAdapter struct {
	client     *http.Client
	futuresURL string
	spotURL    string
	tracer     trace.Tracer
	limiter    *RateLimiter
	creds      Credentials
}

// NewBinanceAdapter creates the adapter with built-in rate limiting.
// Binance allows a generous weight budget; 20 requests per second is safe
// for the public market data endpoints used here.
func NewBinanceAdapter(tracer trace.Tracer, creds Credentials) *BinanceAdapter {
	return &BinanceAdapter{
		client:     &http.Client{Timeout: 10 * time.Second},
		futuresURL: binanceFuturesBaseURL,
		spotURL:    binanceSpotBaseURL,
		tracer:     tracer,
		limiter:    NewRateLimiter(20, 50*time.Millisecond),
		creds:      creds,
	}
}

func (a *BinanceAdapter) Name() string { return VenueBinance }

// wireSymbol converts a unified symbol like "BTC/USDT:USDT" or "BTC/USDT"
// into Binance's bare "BTCUSDT" form.
func binanceWireSymbol(symbol string) string {
	s := strings.TrimSuffix(symbol, ":USDT")
	return strings.ReplaceAll(s, "/", "")
}

func (a *BinanceAdapter) FetchFundingRate(ctx context.Context, symbol string) (*FundingRate, error) {
	_, span := a.tracer.Start(ctx, "binance.fetch-funding-rate")
	defer span.End()

	url := fmt.Sprintf("%s/fapi/v1/premiumIndex?symbol=%s", a.futuresURL, binanceWireSymbol(symbol))
	body, err := a.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("binance funding rate %s: %w", symbol, err)
	}

	var raw struct {
		Symbol          string `json:"symbol"`
		MarkPrice       string `json:"markPrice"`
		LastFundingRate string `json:"lastFundingRate"`
		NextFundingTime int64  `json:"nextFundingTime"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse binance premium index for %s: %w", symbol, err)
	}

	out := &FundingRate{Symbol: symbol}
	if v, err := strconv.ParseFloat(raw.LastFundingRate, 64); err == nil {
		out.FundingRate = &v
	}
	if v, err := strconv.ParseFloat(raw.MarkPrice, 64); err == nil {
		out.MarkPrice = &v
	}
	if raw.NextFundingTime > 0 {
		t := time.UnixMilli(raw.NextFundingTime).UTC()
		out.NextFundingTime = &t
	}
	return out, nil
}

func (a *BinanceAdapter) FetchOpenInterest(ctx context.Context, symbol string) (*OpenInterest, error) {
	_, span := a.tracer.Start(ctx, "binance.fetch-open-interest")
	defer span.End()

	wire := binanceWireSymbol(symbol)
	url := fmt.Sprintf("%s/fapi/v1/openInterest?symbol=%s", a.futuresURL, wire)
	body, err := a.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("binance open interest %s: %w", symbol, err)
	}

	var raw struct {
		OpenInterest string `json:"openInterest"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse binance open interest for %s: %w", symbol, err)
	}

	contracts, err := strconv.ParseFloat(raw.OpenInterest, 64)
	if err != nil {
		return &OpenInterest{Symbol: symbol}, nil
	}

	// Binance reports OI in contracts (base units); convert to USD notional
	// with the current mark price.
	rate, err := a.FetchFundingRate(ctx, symbol)
	if err != nil || rate.MarkPrice == nil {
		return &OpenInterest{Symbol: symbol}, nil
	}
	value := contracts * *rate.MarkPrice
	return &OpenInterest{Symbol: symbol, OpenInterestValue: &value}, nil
}

func (a *BinanceAdapter) FetchTicker(ctx context.Context, symbol string) (*Ticker, error) {
	_, span := a.tracer.Start(ctx, "binance.fetch-ticker")
	defer span.End()

	base := a.spotURL + "/api/v3"
	if isPerp(symbol) {
		base = a.futuresURL + "/fapi/v1"
	}
	url := fmt.Sprintf("%s/ticker/24hr?symbol=%s", base, binanceWireSymbol(symbol))
	body, err := a.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("binance ticker %s: %w", symbol, err)
	}

	var raw struct {
		LastPrice   string `json:"lastPrice"`
		QuoteVolume string `json:"quoteVolume"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse binance ticker for %s: %w", symbol, err)
	}

	out := &Ticker{Symbol: symbol}
	out.Last, _ = strconv.ParseFloat(raw.LastPrice, 64)
	out.QuoteVolume, _ = strconv.ParseFloat(raw.QuoteVolume, 64)
	return out, nil
}

func (a *BinanceAdapter) FetchOrderBook(ctx context.Context, symbol string) (*OrderBook, error) {
	_, span := a.tracer.Start(ctx, "binance.fetch-order-book")
	defer span.End()

	base := a.spotURL + "/api/v3"
	if isPerp(symbol) {
		base = a.futuresURL + "/fapi/v1"
	}
	url := fmt.Sprintf("%s/depth?symbol=%s&limit=50", base, binanceWireSymbol(symbol))
	body, err := a.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("binance order book %s: %w", symbol, err)
	}

	var raw struct {
		Bids [][]string `json:"bids"`
		Asks [][]string `json:"asks"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse binance order book for %s: %w", symbol, err)
	}

	return &OrderBook{
		Bids: parseStringLevels(raw.Bids),
		Asks: parseStringLevels(raw.Asks),
	}, nil
}

func (a *BinanceAdapter) FetchFundingRateHistory(ctx context.Context, symbol string, since time.Time, limit int) ([]FundingHistoryPoint, error) {
	_, span := a.tracer.Start(ctx, "binance.fetch-funding-history")
	defer span.End()

	if limit <= 0 || limit > 1000 {
		limit = 1000
	}
	url := fmt.Sprintf("%s/fapi/v1/fundingRate?symbol=%s&startTime=%d&limit=%d",
		a.futuresURL, binanceWireSymbol(symbol), since.UnixMilli(), limit)
	body, err := a.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("binance funding history %s: %w", symbol, err)
	}

	var raw []struct {
		FundingTime int64  `json:"fundingTime"`
		FundingRate string `json:"fundingRate"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse binance funding history for %s: %w", symbol, err)
	}

	points := make([]FundingHistoryPoint, 0, len(raw))
	for _, row := range raw {
		rate, err := strconv.ParseFloat(row.FundingRate, 64)
		if err != nil {
			continue
		}
		points = append(points, FundingHistoryPoint{
			Timestamp:   time.UnixMilli(row.FundingTime).UTC(),
			FundingRate: rate,
		})
	}
	return points, nil
}

func (a *BinanceAdapter) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if a.creds.APIKey != "" {
		req.Header.Set("X-MBX-APIKEY", a.creds.APIKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("binance API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// parseStringLevels converts [["price","qty"], ...] rows into typed levels,
// skipping malformed rows.
func parseStringLevels(rows [][]string) []OrderBookLevel {
	levels := make([]OrderBookLevel, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		price, err1 := strconv.ParseFloat(row[0], 64)
		qty, err2 := strconv.ParseFloat(row[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		levels = append(levels, OrderBookLevel{Price: price, Qty: qty})
	}
	return levels
}
