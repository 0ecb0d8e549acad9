package alert

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

const (
	historyWindow   = time.Hour
	duplicateWindow = 15 * time.Minute

	// DefaultMaxPerHour caps total alerts across all types.
	DefaultMaxPerHour = 10
)

// Alert types for rate-limit bookkeeping.
const (
	TypeFunding     = "funding"
	TypeWhale       = "whale"
	TypeLiquidation = "liquidation"
)

// Transport delivers one formatted alert. Implementations fail
// independently; a failed transport never blocks the others.
type Transport interface {
	Name() string
	Send(ctx context.Context, subject, body string) error
}

type historyRecord struct {
	alertType string
	timestamp time.Time
}

// Stats reports recent alert volume for the dashboard.
type Stats struct {
	TotalLastHour int            `json:"total_alerts_last_hour"`
	ByType        map[string]int `json:"alerts_by_type"`
	RateLimit     string         `json:"rate_limit_status"`
	LastAlert     *time.Time     `json:"last_alert,omitempty"`
}

// Dispatcher fans alerts out to its transports, enforcing an hourly cap and
// per-type duplicate suppression over an in-memory sliding window. All
// history access is mutex-guarded so concurrent refresh cycles cannot
// double-send.
type Dispatcher struct {
	mu         sync.Mutex
	history    []historyRecord
	maxPerHour int
	transports []Transport
	now        func() time.Time
}

func NewDispatcher(maxPerHour int, transports ...Transport) *Dispatcher {
	if maxPerHour <= 0 {
		maxPerHour = DefaultMaxPerHour
	}
	return &Dispatcher{
		maxPerHour: maxPerHour,
		transports: transports,
		now:        time.Now,
	}
}

// ShouldSend reports whether an alert of this type would pass rate
// limiting right now. The hourly cap is checked before duplicate
// suppression. Does not record anything.
func (d *Dispatcher) ShouldSend(alertType string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.allowLocked(alertType)
}

// Send checks rate limits, records the alert, and delivers it through all
// transports. The check and the history append are atomic. Returns false
// when suppressed. Transport failures are logged and swallowed.
func (d *Dispatcher) Send(ctx context.Context, alertType, subject, body string) bool {
	d.mu.Lock()
	if !d.allowLocked(alertType) {
		d.mu.Unlock()
		return false
	}
	d.history = append(d.history, historyRecord{alertType: alertType, timestamp: d.now()})
	d.mu.Unlock()

	for _, t := range d.transports {
		if err := t.Send(ctx, subject, body); err != nil {
			log.Printf("alert transport %s failed: %v", t.Name(), err)
		}
	}
	return true
}

// allowLocked prunes expired history and applies the cap, then the
// duplicate window. Callers hold d.mu.
func (d *Dispatcher) allowLocked(alertType string) bool {
	now := d.now()

	kept := d.history[:0]
	for _, rec := range d.history {
		if now.Sub(rec.timestamp) < historyWindow {
			kept = append(kept, rec)
		}
	}
	d.history = kept

	if len(d.history) >= d.maxPerHour {
		return false
	}
	for _, rec := range d.history {
		if rec.alertType == alertType && now.Sub(rec.timestamp) < duplicateWindow {
			return false
		}
	}
	return true
}

// Stats summarizes the last hour of alert history.
func (d *Dispatcher) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	stats := Stats{ByType: map[string]int{}}
	var last time.Time
	for _, rec := range d.history {
		if now.Sub(rec.timestamp) >= historyWindow {
			continue
		}
		stats.TotalLastHour++
		stats.ByType[rec.alertType]++
		if rec.timestamp.After(last) {
			last = rec.timestamp
		}
	}
	stats.RateLimit = fmt.Sprintf("%d/%d", stats.TotalLastHour, d.maxPerHour)
	if !last.IsZero() {
		stats.LastAlert = &last
	}
	return stats
}
