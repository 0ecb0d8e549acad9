package venue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestBybitCategory(t *testing.T) {
	t.Parallel()

	if got := bybitCategory("BTCUSDT"); got != "linear" {
		t.Fatalf("bare perp symbol should be linear, got %s", got)
	}
	if got := bybitCategory("SOL/USDT:USDT"); got != "linear" {
		t.Fatalf("unified perp symbol should be linear, got %s", got)
	}
	if got := bybitCategory("BTC/USDT"); got != "spot" {
		t.Fatalf("spot symbol should be spot, got %s", got)
	}
}

const bybitTickerPayload = `{
	"retCode": 0,
	"retMsg": "OK",
	"result": {
		"list": [{
			"symbol": "BTCUSDT",
			"lastPrice": "67500.5",
			"markPrice": "67501.0",
			"fundingRate": "0.0001",
			"nextFundingTime": "1756713600000",
			"openInterestValue": "1500000000",
			"turnover24h": "9000000000"
		}]
	}
}`

func TestBybitFetchFundingRate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v5/market/tickers" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("category"); got != "linear" {
			t.Errorf("unexpected category: %s", got)
		}
		_, _ = w.Write([]byte(bybitTickerPayload))
	}))
	defer srv.Close()

	a := NewBybitAdapter(testTracer, Credentials{})
	a.baseURL = srv.URL

	rate, err := a.FetchFundingRate(context.Background(), "BTCUSDT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate.FundingRate == nil || *rate.FundingRate != 0.0001 {
		t.Fatalf("funding rate: %v", rate.FundingRate)
	}
	if rate.NextFundingTime == nil {
		t.Fatal("next funding time not parsed")
	}
}

func TestBybitFetchOpenInterestUsesUSDValue(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(bybitTickerPayload))
	}))
	defer srv.Close()

	a := NewBybitAdapter(testTracer, Credentials{})
	a.baseURL = srv.URL

	oi, err := a.FetchOpenInterest(context.Background(), "BTCUSDT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if oi.OpenInterestValue == nil || *oi.OpenInterestValue != 1_500_000_000 {
		t.Fatalf("open interest: %v", oi.OpenInterestValue)
	}
}

func TestBybitFetchTickerIncludesMark(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(bybitTickerPayload))
	}))
	defer srv.Close()

	a := NewBybitAdapter(testTracer, Credentials{})
	a.baseURL = srv.URL

	ticker, err := a.FetchTicker(context.Background(), "BTCUSDT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticker.Last != 67500.5 || ticker.QuoteVolume != 9_000_000_000 {
		t.Fatalf("unexpected ticker: %+v", ticker)
	}
	if ticker.Mark == nil || *ticker.Mark != 67501.0 {
		t.Fatalf("mark: %v", ticker.Mark)
	}
}

func TestBybitRetCodeErrorSurfaces(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"retCode": 10001, "retMsg": "params error", "result": {}}`))
	}))
	defer srv.Close()

	a := NewBybitAdapter(testTracer, Credentials{})
	a.baseURL = srv.URL

	if _, err := a.FetchFundingRate(context.Background(), "BTCUSDT"); err == nil {
		t.Fatal("expected error for non-zero retCode")
	}
}

func TestBybitFetchOrderBook(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"retCode": 0,
			"result": {
				"b": [["67000.5", "1.2"]],
				"a": [["67001.0", "2.0"], ["67002.0", "0.5"]]
			}
		}`))
	}))
	defer srv.Close()

	a := NewBybitAdapter(testTracer, Credentials{})
	a.baseURL = srv.URL

	book, err := a.FetchOrderBook(context.Background(), "BTC/USDT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(book.Bids) != 1 || len(book.Asks) != 2 {
		t.Fatalf("unexpected book: %+v", book)
	}
}

func TestBybitFetchFundingRateHistory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("category"); got != "linear" {
			t.Errorf("history must use linear category, got %s", got)
		}
		_, _ = w.Write([]byte(`{
			"retCode": 0,
			"result": {
				"list": [
					{"fundingRate": "0.0002", "fundingRateTimestamp": "1756713600000"},
					{"fundingRate": "bad", "fundingRateTimestamp": "1756684800000"}
				]
			}
		}`))
	}))
	defer srv.Close()

	a := NewBybitAdapter(testTracer, Credentials{})
	a.baseURL = srv.URL

	points, err := a.FetchFundingRateHistory(context.Background(), "BTCUSDT", time.Now().Add(-24*time.Hour), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("unparsable rows should be skipped, got %d", len(points))
	}
	if points[0].FundingRate != 0.0002 {
		t.Fatalf("rate: %v", points[0].FundingRate)
	}
}
