package cache

import (
	"context"
	"sort"
	"strings"
)

// Store is a byte-value cache with a fixed TTL per instance. Entries are
// visible until the TTL elapses, then behave as absent. Implementations are
// safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
}

// Key builds a deterministic cache key from a metric name and coin set.
// Coins are sorted so request order never creates duplicate entries.
func Key(metric string, coins []string) string {
	sorted := append([]string(nil), coins...)
	sort.Strings(sorted)
	return metric + ":" + strings.Join(sorted, ":")
}
