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

const okxBaseURL = "https://www.okx.com"

// OKXAdapter fetches swap and spot market data from OKX v5.
type OKXAdapter struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
	creds   Credentials
}

func NewOKXAdapter(tracer trace.Tracer, creds Credentials) *OKXAdapter {
	return &OKXAdapter{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: okxBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(10, 100*time.Millisecond),
		creds:   creds,
	}
}

func (a *OKXAdapter) Name() string { return VenueOKX }

// okxWireSymbol converts any unified symbol into OKX's instId form:
// "BTC/USDT:USDT" -> "BTC-USDT-SWAP", "BTC/USDT" -> "BTC-USDT".
func okxWireSymbol(symbol string) string {
	if strings.HasSuffix(symbol, "-SWAP") {
		return symbol
	}
	if strings.HasSuffix(symbol, ":USDT") {
		return baseCoin(symbol) + "-USDT-SWAP"
	}
	if strings.Contains(symbol, "/") {
		return strings.ReplaceAll(symbol, "/", "-")
	}
	return baseCoin(symbol) + "-USDT-SWAP"
}

// okxData decodes the common {code, msg, data: [...]} envelope.
func okxData(body []byte, out interface{}) error {
	var raw struct {
		Code string          `json:"code"`
		Msg  string          `json:"msg"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return err
	}
	if raw.Code != "0" {
		return fmt.Errorf("okx error %s: %s", raw.Code, raw.Msg)
	}
	return json.Unmarshal(raw.Data, out)
}

func (a *OKXAdapter) FetchFundingRate(ctx context.Context, symbol string) (*FundingRate, error) {
	_, span := a.tracer.Start(ctx, "okx.fetch-funding-rate")
	defer span.End()

	url := fmt.Sprintf("%s/api/v5/public/funding-rate?instId=%s", a.baseURL, okxWireSymbol(symbol))
	body, err := a.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("okx funding rate %s: %w", symbol, err)
	}

	var rows []struct {
		FundingRate     string `json:"fundingRate"`
		NextFundingTime string `json:"nextFundingTime"`
	}
	if err := okxData(body, &rows); err != nil {
		return nil, fmt.Errorf("parse okx funding rate for %s: %w", symbol, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("okx: no funding rate rows for %s", symbol)
	}

	out := &FundingRate{Symbol: symbol}
	if v, err := strconv.ParseFloat(rows[0].FundingRate, 64); err == nil {
		out.FundingRate = &v
	}
	if ms, err := strconv.ParseInt(rows[0].NextFundingTime, 10, 64); err == nil && ms > 0 {
		t := time.UnixMilli(ms).UTC()
		out.NextFundingTime = &t
	}
	return out, nil
}

func (a *OKXAdapter) FetchOpenInterest(ctx context.Context, symbol string) (*OpenInterest, error) {
	_, span := a.tracer.Start(ctx, "okx.fetch-open-interest")
	defer span.End()

	url := fmt.Sprintf("%s/api/v5/public/open-interest?instType=SWAP&instId=%s", a.baseURL, okxWireSymbol(symbol))
	body, err := a.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("okx open interest %s: %w", symbol, err)
	}

	var rows []struct {
		OIUsd string `json:"oiUsd"`
	}
	if err := okxData(body, &rows); err != nil {
		return nil, fmt.Errorf("parse okx open interest for %s: %w", symbol, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("okx: no open interest rows for %s", symbol)
	}

	out := &OpenInterest{Symbol: symbol}
	if v, err := strconv.ParseFloat(rows[0].OIUsd, 64); err == nil {
		out.OpenInterestValue = &v
	}
	return out, nil
}

func (a *OKXAdapter) FetchTicker(ctx context.Context, symbol string) (*Ticker, error) {
	_, span := a.tracer.Start(ctx, "okx.fetch-ticker")
	defer span.End()

	url := fmt.Sprintf("%s/api/v5/market/ticker?instId=%s", a.baseURL, okxWireSymbol(symbol))
	body, err := a.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("okx ticker %s: %w", symbol, err)
	}

	var rows []struct {
		Last      string `json:"last"`
		VolCcy24h string `json:"volCcy24h"`
	}
	if err := okxData(body, &rows); err != nil {
		return nil, fmt.Errorf("parse okx ticker for %s: %w", symbol, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("okx: no ticker rows for %s", symbol)
	}

	out := &Ticker{Symbol: symbol}
	out.Last, _ = strconv.ParseFloat(rows[0].Last, 64)
	out.QuoteVolume, _ = strconv.ParseFloat(rows[0].VolCcy24h, 64)
	return out, nil
}

func (a *OKXAdapter) FetchOrderBook(ctx context.Context, symbol string) (*OrderBook, error) {
	_, span := a.tracer.Start(ctx, "okx.fetch-order-book")
	defer span.End()

	url := fmt.Sprintf("%s/api/v5/market/books?instId=%s&sz=50", a.baseURL, okxWireSymbol(symbol))
	body, err := a.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("okx order book %s: %w", symbol, err)
	}

	var rows []struct {
		Bids [][]string `json:"bids"`
		Asks [][]string `json:"asks"`
	}
	if err := okxData(body, &rows); err != nil {
		return nil, fmt.Errorf("parse okx order book for %s: %w", symbol, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("okx: no order book rows for %s", symbol)
	}

	return &OrderBook{
		Bids: parseStringLevels(rows[0].Bids),
		Asks: parseStringLevels(rows[0].Asks),
	}, nil
}

func (a *OKXAdapter) FetchFundingRateHistory(ctx context.Context, symbol string, since time.Time, limit int) ([]FundingHistoryPoint, error) {
	_, span := a.tracer.Start(ctx, "okx.fetch-funding-history")
	defer span.End()

	if limit <= 0 || limit > 100 {
		limit = 100
	}
	url := fmt.Sprintf("%s/api/v5/public/funding-rate-history?instId=%s&limit=%d",
		a.baseURL, okxWireSymbol(symbol), limit)
	body, err := a.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("okx funding history %s: %w", symbol, err)
	}

	var rows []struct {
		FundingRate string `json:"fundingRate"`
		FundingTime string `json:"fundingTime"`
	}
	if err := okxData(body, &rows); err != nil {
		return nil, fmt.Errorf("parse okx funding history for %s: %w", symbol, err)
	}

	points := make([]FundingHistoryPoint, 0, len(rows))
	for _, row := range rows {
		rate, err1 := strconv.ParseFloat(row.FundingRate, 64)
		ms, err2 := strconv.ParseInt(row.FundingTime, 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		ts := time.UnixMilli(ms).UTC()
		if ts.Before(since) {
			continue
		}
		points = append(points, FundingHistoryPoint{Timestamp: ts, FundingRate: rate})
	}
	return points, nil
}

func (a *OKXAdapter) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if a.creds.APIKey != "" {
		req.Header.Set("OK-ACCESS-KEY", a.creds.APIKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("okx API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
