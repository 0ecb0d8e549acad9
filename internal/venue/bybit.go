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

const bybitBaseURL = "https://api.bybit.com"

// BybitAdapter fetches linear perpetual and spot market data from Bybit v5.
type BybitAdapter struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
	creds   Credentials
}

func NewBybitAdapter(tracer trace.Tracer, creds Credentials) *BybitAdapter {
	return &BybitAdapter{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: bybitBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(10, 100*time.Millisecond),
		creds:   creds,
	}
}

func (a *BybitAdapter) Name() string { return VenueBybit }

func bybitWireSymbol(symbol string) string {
	s := strings.TrimSuffix(symbol, ":USDT")
	return strings.ReplaceAll(s, "/", "")
}

func bybitCategory(symbol string) string {
	if isPerp(symbol) {
		return "linear"
	}
	return "spot"
}

// tickerRow is the shared shape of Bybit's v5 tickers response; the one
// endpoint covers funding rate, open interest, and price data.
type bybitTickerRow struct {
	Symbol            string `json:"symbol"`
	LastPrice         string `json:"lastPrice"`
	MarkPrice         string `json:"markPrice"`
	FundingRate       string `json:"fundingRate"`
	NextFundingTime   string `json:"nextFundingTime"`
	OpenInterestValue string `json:"openInterestValue"`
	Turnover24h       string `json:"turnover24h"`
}

func (a *BybitAdapter) fetchTickerRow(ctx context.Context, symbol string) (*bybitTickerRow, error) {
	url := fmt.Sprintf("%s/v5/market/tickers?category=%s&symbol=%s",
		a.baseURL, bybitCategory(symbol), bybitWireSymbol(symbol))
	body, err := a.doRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	var raw struct {
		RetCode int    `json:"retCode"`
		RetMsg  string `json:"retMsg"`
		Result  struct {
			List []bybitTickerRow `json:"list"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse bybit tickers for %s: %w", symbol, err)
	}
	if raw.RetCode != 0 {
		return nil, fmt.Errorf("bybit error %d: %s", raw.RetCode, raw.RetMsg)
	}
	if len(raw.Result.List) == 0 {
		return nil, fmt.Errorf("bybit: no ticker rows for %s", symbol)
	}
	return &raw.Result.List[0], nil
}

func (a *BybitAdapter) FetchFundingRate(ctx context.Context, symbol string) (*FundingRate, error) {
	_, span := a.tracer.Start(ctx, "bybit.fetch-funding-rate")
	defer span.End()

	row, err := a.fetchTickerRow(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("bybit funding rate %s: %w", symbol, err)
	}

	out := &FundingRate{Symbol: symbol}
	if v, err := strconv.ParseFloat(row.FundingRate, 64); err == nil {
		out.FundingRate = &v
	}
	if v, err := strconv.ParseFloat(row.MarkPrice, 64); err == nil {
		out.MarkPrice = &v
	}
	if ms, err := strconv.ParseInt(row.NextFundingTime, 10, 64); err == nil && ms > 0 {
		t := time.UnixMilli(ms).UTC()
		out.NextFundingTime = &t
	}
	return out, nil
}

func (a *BybitAdapter) FetchOpenInterest(ctx context.Context, symbol string) (*OpenInterest, error) {
	_, span := a.tracer.Start(ctx, "bybit.fetch-open-interest")
	defer span.End()

	row, err := a.fetchTickerRow(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("bybit open interest %s: %w", symbol, err)
	}

	out := &OpenInterest{Symbol: symbol}
	if v, err := strconv.ParseFloat(row.OpenInterestValue, 64); err == nil {
		out.OpenInterestValue = &v
	}
	return out, nil
}

func (a *BybitAdapter) FetchTicker(ctx context.Context, symbol string) (*Ticker, error) {
	_, span := a.tracer.Start(ctx, "bybit.fetch-ticker")
	defer span.End()

	row, err := a.fetchTickerRow(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("bybit ticker %s: %w", symbol, err)
	}

	out := &Ticker{Symbol: symbol}
	out.Last, _ = strconv.ParseFloat(row.LastPrice, 64)
	out.QuoteVolume, _ = strconv.ParseFloat(row.Turnover24h, 64)
	if v, err := strconv.ParseFloat(row.MarkPrice, 64); err == nil && v > 0 {
		out.Mark = &v
	}
	return out, nil
}

func (a *BybitAdapter) FetchOrderBook(ctx context.Context, symbol string) (*OrderBook, error) {
	_, span := a.tracer.Start(ctx, "bybit.fetch-order-book")
	defer span.End()

	url := fmt.Sprintf("%s/v5/market/orderbook?category=%s&symbol=%s&limit=50",
		a.baseURL, bybitCategory(symbol), bybitWireSymbol(symbol))
	body, err := a.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("bybit order book %s: %w", symbol, err)
	}

	var raw struct {
		RetCode int    `json:"retCode"`
		RetMsg  string `json:"retMsg"`
		Result  struct {
			Bids [][]string `json:"b"`
			Asks [][]string `json:"a"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse bybit order book for %s: %w", symbol, err)
	}
	if raw.RetCode != 0 {
		return nil, fmt.Errorf("bybit error %d: %s", raw.RetCode, raw.RetMsg)
	}

	return &OrderBook{
		Bids: parseStringLevels(raw.Result.Bids),
		Asks: parseStringLevels(raw.Result.Asks),
	}, nil
}

func (a *BybitAdapter) FetchFundingRateHistory(ctx context.Context, symbol string, since time.Time, limit int) ([]FundingHistoryPoint, error) {
	_, span := a.tracer.Start(ctx, "bybit.fetch-funding-history")
	defer span.End()

	if limit <= 0 || limit > 200 {
		limit = 200
	}
	url := fmt.Sprintf("%s/v5/market/funding/history?category=linear&symbol=%s&startTime=%d&limit=%d",
		a.baseURL, bybitWireSymbol(symbol), since.UnixMilli(), limit)
	body, err := a.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("bybit funding history %s: %w", symbol, err)
	}

	var raw struct {
		RetCode int    `json:"retCode"`
		RetMsg  string `json:"retMsg"`
		Result  struct {
			List []struct {
				FundingRate          string `json:"fundingRate"`
				FundingRateTimestamp string `json:"fundingRateTimestamp"`
			} `json:"list"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse bybit funding history for %s: %w", symbol, err)
	}
	if raw.RetCode != 0 {
		return nil, fmt.Errorf("bybit error %d: %s", raw.RetCode, raw.RetMsg)
	}

	points := make([]FundingHistoryPoint, 0, len(raw.Result.List))
	for _, row := range raw.Result.List {
		rate, err1 := strconv.ParseFloat(row.FundingRate, 64)
		ms, err2 := strconv.ParseInt(row.FundingRateTimestamp, 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		points = append(points, FundingHistoryPoint{
			Timestamp:   time.UnixMilli(ms).UTC(),
			FundingRate: rate,
		})
	}
	return points, nil
}

func (a *BybitAdapter) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("bybit API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
