package bot

import (
	"strings"
	"testing"
)

func TestParseCoinArgUsage(t *testing.T) {
	t.Parallel()

	coin, msg := parseCoinArg(nil, "/funding BTC")
	if coin != "" || !strings.Contains(msg, "Usage: /funding BTC") {
		t.Fatalf("expected usage message, got coin=%q msg=%q", coin, msg)
	}
}

func TestParseCoinArgUnknownCoin(t *testing.T) {
	t.Parallel()

	coin, msg := parseCoinArg([]string{"FAKECOIN"}, "/funding BTC")
	if coin != "" || !strings.Contains(msg, "Unknown coin: FAKECOIN") {
		t.Fatalf("expected unknown-coin message, got coin=%q msg=%q", coin, msg)
	}
}

func TestParseCoinArgUpcases(t *testing.T) {
	t.Parallel()

	coin, msg := parseCoinArg([]string{"btc"}, "/funding BTC")
	if coin != "BTC" || msg != "" {
		t.Fatalf("expected BTC, got coin=%q msg=%q", coin, msg)
	}
}

func TestFormatFundingReply(t *testing.T) {
	t.Parallel()

	msg := FormatFundingReply("BTC", 0.045)
	if !strings.Contains(msg, "BTC/USDT") || !strings.Contains(msg, "0.0450%") {
		t.Fatalf("unexpected reply: %s", msg)
	}
	if !strings.Contains(msg, "longs paying shorts") {
		t.Fatalf("positive rate sentiment missing: %s", msg)
	}

	if !strings.Contains(FormatFundingReply("BTC", -0.045), "shorts paying longs") {
		t.Fatal("negative rate sentiment missing")
	}
	if !strings.Contains(FormatFundingReply("BTC", 0.005), "neutral") {
		t.Fatal("near-zero rate should read neutral")
	}
}

func TestFormatOpenInterestReply(t *testing.T) {
	t.Parallel()

	msg := FormatOpenInterestReply("ETH", 2_500_000_000)
	if !strings.Contains(msg, "ETH Open Interest") || !strings.Contains(msg, "$2500.0M") {
		t.Fatalf("unexpected reply: %s", msg)
	}
}

func TestFormatBasisReply(t *testing.T) {
	t.Parallel()

	if !strings.Contains(FormatBasisReply("BTC", 0.8), "contango") {
		t.Fatal("positive basis should read contango")
	}
	if !strings.Contains(FormatBasisReply("BTC", -0.3), "backwardation") {
		t.Fatal("negative basis should read backwardation")
	}
}
