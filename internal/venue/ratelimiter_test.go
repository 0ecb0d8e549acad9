package venue

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToMaxTokens(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(3, time.Hour)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := rl.Wait(ctx); err != nil {
			t.Fatalf("wait %d: unexpected error: %v", i, err)
		}
	}
}

func TestRateLimiterBlocksWhenExhausted(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Hour)
	ctx := context.Background()
	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cancelled, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := rl.Wait(cancelled); err == nil {
		t.Fatal("expected context error when bucket is empty")
	}
}

func TestRateLimiterRefills(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 5*time.Millisecond)
	ctx := context.Background()
	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Second call should succeed once a token refills.
	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("expected refill to allow second call: %v", err)
	}
}
