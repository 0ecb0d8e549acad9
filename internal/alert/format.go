package alert

import (
	"fmt"
	"strings"
	"time"

	"crypto-market-hub/internal/domain"
)

// FormatFunding builds the funding rate alert message.
func FormatFunding(coin string, fundingRate, threshold float64) string {
	direction := "LOW"
	sentiment := "Bearish sentiment detected"
	if fundingRate > 0 {
		direction = "HIGH"
		sentiment = "Bullish sentiment detected"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "FUNDING RATE ALERT\n\n")
	fmt.Fprintf(&b, "Asset: %s/USDT\n", coin)
	fmt.Fprintf(&b, "Current Rate: %.4f%%\n", fundingRate)
	fmt.Fprintf(&b, "Threshold: ±%.2f%%\n", threshold)
	fmt.Fprintf(&b, "Direction: %s\n", direction)
	fmt.Fprintf(&b, "Time: %s\n\n", time.Now().UTC().Format("2006-01-02 15:04:05 UTC"))
	b.WriteString(sentiment)
	return b.String()
}

// FormatWhale builds the whale activity alert message.
func FormatWhale(activity domain.WhaleActivity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "WHALE ACTIVITY DETECTED\n\n")
	fmt.Fprintf(&b, "Action: %s\n", activity.Activity)
	fmt.Fprintf(&b, "Asset: %s\n", activity.Symbol)
	fmt.Fprintf(&b, "Size: $%.0f\n", activity.PositionSize)
	fmt.Fprintf(&b, "Price: $%.2f\n", activity.Price)
	fmt.Fprintf(&b, "Exchange: %s\n", activity.Exchange)
	fmt.Fprintf(&b, "Time: %s\n\n", activity.Timestamp.UTC().Format("15:04:05 UTC"))
	fmt.Fprintf(&b, "Address: %s", activity.Address)
	return b.String()
}

// FormatLiquidation builds the mass liquidation alert message.
func FormatLiquidation(liq domain.Liquidations) string {
	var b strings.Builder
	fmt.Fprintf(&b, "MASS LIQUIDATION ALERT\n\n")
	fmt.Fprintf(&b, "Total Liquidated: $%.1fM\n", liq.Total/1_000_000)
	fmt.Fprintf(&b, "Long Liquidations: $%.1fM\n", liq.LongLiquidations/1_000_000)
	fmt.Fprintf(&b, "Short Liquidations: $%.1fM\n", liq.ShortLiquidations/1_000_000)
	fmt.Fprintf(&b, "Ratio: %.1f%% Long\n", liq.LiquidationRatio*100)
	fmt.Fprintf(&b, "Events: %d trades\n", liq.LiquidationCount)
	fmt.Fprintf(&b, "Time: %s\n\n", time.Now().UTC().Format("15:04:05 UTC"))
	b.WriteString("High volatility expected")
	return b.String()
}

// FormatAnomaly builds the alert message for a detected funding anomaly.
func FormatAnomaly(a domain.Anomaly, threshold float64) string {
	return FormatFunding(a.Coin, a.FundingRate, threshold)
}
