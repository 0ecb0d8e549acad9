package domain

import (
	"reflect"
	"testing"
)

func TestIsSupported(t *testing.T) {
	t.Parallel()

	if !IsSupported("BTC") {
		t.Fatal("BTC should be supported")
	}
	if IsSupported("FAKECOIN") {
		t.Fatal("FAKECOIN should not be supported")
	}
	if IsSupported("btc") {
		t.Fatal("lookups are case sensitive, lowercase should not match")
	}
}

func TestFilterSupportedPreservesOrderAndDedupes(t *testing.T) {
	t.Parallel()

	got := FilterSupported([]string{"ETH", "FAKECOIN", "BTC", "ETH", "SOL"})
	want := []string{"ETH", "BTC", "SOL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterSupportedEmptyInput(t *testing.T) {
	t.Parallel()

	if got := FilterSupported(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if got := FilterSupported([]string{"NOPE"}); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestNewPerpetualDataInitializesMaps(t *testing.T) {
	t.Parallel()

	data := NewPerpetualData()
	if data.FundingRates == nil || data.OpenInterest == nil ||
		data.Volume24h == nil || data.MarkPrices == nil || data.NextFundingTime == nil {
		t.Fatal("all maps should be initialized")
	}
}
