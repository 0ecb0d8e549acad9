package venue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOKXWireSymbol(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"BTC-USDT-SWAP": "BTC-USDT-SWAP",
		"BTC/USDT:USDT": "BTC-USDT-SWAP",
		"BTC/USDT":      "BTC-USDT",
		"ETHUSDT":       "ETH-USDT-SWAP",
	}
	for in, want := range cases {
		if got := okxWireSymbol(in); got != want {
			t.Errorf("okxWireSymbol(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOKXFetchFundingRate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v5/public/funding-rate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("instId"); got != "BTC-USDT-SWAP" {
			t.Errorf("unexpected instId: %s", got)
		}
		_, _ = w.Write([]byte(`{
			"code": "0",
			"data": [{"fundingRate": "0.00025", "nextFundingTime": "1756713600000"}]
		}`))
	}))
	defer srv.Close()

	a := NewOKXAdapter(testTracer, Credentials{})
	a.baseURL = srv.URL

	rate, err := a.FetchFundingRate(context.Background(), "BTC-USDT-SWAP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate.FundingRate == nil || *rate.FundingRate != 0.00025 {
		t.Fatalf("funding rate: %v", rate.FundingRate)
	}
}

func TestOKXFetchOpenInterest(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code": "0", "data": [{"oiUsd": "2500000000"}]}`))
	}))
	defer srv.Close()

	a := NewOKXAdapter(testTracer, Credentials{})
	a.baseURL = srv.URL

	oi, err := a.FetchOpenInterest(context.Background(), "BTC-USDT-SWAP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if oi.OpenInterestValue == nil || *oi.OpenInterestValue != 2_500_000_000 {
		t.Fatalf("open interest: %v", oi.OpenInterestValue)
	}
}

func TestOKXErrorEnvelopeSurfaces(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code": "51001", "msg": "Instrument ID does not exist", "data": []}`))
	}))
	defer srv.Close()

	a := NewOKXAdapter(testTracer, Credentials{})
	a.baseURL = srv.URL

	if _, err := a.FetchFundingRate(context.Background(), "BTC-USDT-SWAP"); err == nil {
		t.Fatal("expected error for non-zero code")
	}
}

func TestOKXFetchFundingRateHistoryFiltersBySince(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"code": "0",
			"data": [
				{"fundingRate": "0.0003", "fundingTime": "1756713600000"},
				{"fundingRate": "0.0001", "fundingTime": "1500000000000"}
			]
		}`))
	}))
	defer srv.Close()

	a := NewOKXAdapter(testTracer, Credentials{})
	a.baseURL = srv.URL

	since := time.UnixMilli(1600000000000)
	points, err := a.FetchFundingRateHistory(context.Background(), "BTC-USDT-SWAP", since, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("rows before since must be dropped, got %d", len(points))
	}
	if points[0].FundingRate != 0.0003 {
		t.Fatalf("rate: %v", points[0].FundingRate)
	}
}
