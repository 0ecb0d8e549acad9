package job

import (
	"context"
	"fmt"
	"log"
	"time"

	"crypto-market-hub/internal/alert"
	"crypto-market-hub/internal/derivatives"
	"crypto-market-hub/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// FundingFetcher is the slice of the derivatives service the poller needs.
type FundingFetcher interface {
	FundingRates(ctx context.Context, coins []string) (map[string]float64, error)
	MarketSummary(ctx context.Context, coins []string) *domain.MarketSummary
}

// AlertSender dispatches an alert subject/body through configured transports.
type AlertSender interface {
	Send(ctx context.Context, alertType, subject, body string) bool
}

// MarketPoller periodically refreshes the market summary (warming the cache)
// and dispatches funding rate alerts for detected anomalies.
type MarketPoller struct {
	tracer       trace.Tracer
	derivatives  FundingFetcher
	dispatcher   AlertSender
	coins        []string
	threshold    float64
	pollInterval time.Duration
}

func NewMarketPoller(
	tracer trace.Tracer,
	fetcher FundingFetcher,
	dispatcher AlertSender,
	coins []string,
	threshold float64,
	pollIntervalSecs int,
) *MarketPoller {
	if threshold <= 0 {
		threshold = derivatives.DefaultAnomalyThreshold
	}
	if pollIntervalSecs <= 0 {
		pollIntervalSecs = 60
	}
	return &MarketPoller{
		tracer:       tracer,
		derivatives:  fetcher,
		dispatcher:   dispatcher,
		coins:        coins,
		threshold:    threshold,
		pollInterval: time.Duration(pollIntervalSecs) * time.Second,
	}
}

// Start launches the polling loop. Blocks until ctx is cancelled.
func (p *MarketPoller) Start(ctx context.Context) {
	log.Println("Market poller starting...")

	// Run immediately on start
	p.runOnce(ctx)

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Market poller stopped")
			return
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

func (p *MarketPoller) runOnce(ctx context.Context) {
	ctx, span := p.tracer.Start(ctx, "job.market-poll")
	defer span.End()

	// MarketSummary warms every per-metric cache entry in one pass.
	p.derivatives.MarketSummary(ctx, p.coins)

	rates, err := p.derivatives.FundingRates(ctx, p.coins)
	if err != nil {
		log.Printf("poller funding refresh error: %v", err)
		return
	}

	for _, anomaly := range derivatives.DetectAnomalies(rates, p.threshold) {
		subject := fmt.Sprintf("Funding Rate Alert - %s", anomaly.Coin)
		body := alert.FormatAnomaly(anomaly, p.threshold)
		if p.dispatcher.Send(ctx, alert.TypeFunding, subject, body) {
			log.Printf("Funding alert dispatched for %s (%.4f%%)", anomaly.Coin, anomaly.FundingRate)
		}
	}
}
