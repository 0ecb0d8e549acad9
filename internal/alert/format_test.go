package alert

import (
	"strings"
	"testing"
	"time"

	"crypto-market-hub/internal/domain"
)

func TestFormatFundingPositiveRate(t *testing.T) {
	t.Parallel()

	msg := FormatFunding("BTC", 0.75, 0.5)
	for _, want := range []string{"FUNDING RATE ALERT", "BTC/USDT", "0.7500%", "HIGH", "Bullish sentiment detected"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatFundingNegativeRate(t *testing.T) {
	t.Parallel()

	msg := FormatFunding("ETH", -1.2, 0.5)
	if !strings.Contains(msg, "LOW") || !strings.Contains(msg, "Bearish sentiment detected") {
		t.Fatalf("negative rate should read bearish:\n%s", msg)
	}
}

func TestFormatWhale(t *testing.T) {
	t.Parallel()

	msg := FormatWhale(domain.WhaleActivity{
		Timestamp:    time.Now(),
		Address:      "0xf84.dd",
		Symbol:       "BTC",
		Activity:     "Opened Long",
		PositionSize: 5_000_000,
		Price:        67_000,
		Exchange:     "Binance",
	})
	for _, want := range []string{"WHALE ACTIVITY DETECTED", "Opened Long", "$5000000", "0xf84.dd"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatLiquidation(t *testing.T) {
	t.Parallel()

	msg := FormatLiquidation(domain.Liquidations{
		Total:             30_000_000,
		LongLiquidations:  20_000_000,
		ShortLiquidations: 10_000_000,
		LiquidationRatio:  0.667,
		LiquidationCount:  120,
	})
	for _, want := range []string{"MASS LIQUIDATION ALERT", "$30.0M", "$20.0M", "120 trades"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}
