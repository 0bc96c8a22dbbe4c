package workflow

import (
	"math/rand"
	"testing"
	"time"
)

func TestDelay_MonotonicBounds(t *testing.T) {
	cfg := BackoffConfig{BaseDelay: 1 * time.Second, MaxDelay: 60 * time.Second}

	for attempt, ceiling := range map[int]time.Duration{
		1: 1 * time.Second,
		2: 2 * time.Second,
		6: 32 * time.Second,
	} {
		rng := rand.New(rand.NewSource(1))
		d := Delay(attempt, cfg, rng)
		if d < 0 || d > ceiling {
			t.Fatalf("attempt %d out of range: %s", attempt, d)
		}
	}
}

func TestDelay_Capped(t *testing.T) {
	cfg := BackoffConfig{BaseDelay: 10 * time.Second, MaxDelay: 60 * time.Second}

	// attempt=10 => 10s * 2^9 = 5120s, capped to 60s
	rng := rand.New(rand.NewSource(42))
	if d := Delay(10, cfg, rng); d < 0 || d > 60*time.Second {
		t.Fatalf("capped out of range: %s", d)
	}

	// large attempts must not overflow the shift
	if d := Delay(200, cfg, rng); d < 0 || d > 60*time.Second {
		t.Fatalf("overflowed: %s", d)
	}
}

func TestDelay_AttemptLessThanOne(t *testing.T) {
	cfg := DefaultBackoff()
	rng := rand.New(rand.NewSource(7))

	if d := Delay(0, cfg, rng); d < 0 || d > cfg.BaseDelay {
		t.Fatalf("attempt 0 should behave like attempt 1: %s", d)
	}
}

func TestDelay_ZeroConfigUsesDefaults(t *testing.T) {
	if d := Delay(1, BackoffConfig{}, nil); d < 0 || d > DefaultBackoff().BaseDelay {
		t.Fatalf("zero config out of range: %s", d)
	}
}
