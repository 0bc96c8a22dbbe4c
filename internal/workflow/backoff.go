package workflow

import (
	"math/rand"
	"time"
)

// BackoffConfig bounds the delay between attempts of a step.
type BackoffConfig struct {
	BaseDelay time.Duration // delay ceiling of the first retry
	MaxDelay  time.Duration
}

// DefaultBackoff matches the documented WORKFLOW_BACKOFF_* defaults.
func DefaultBackoff() BackoffConfig {
	return BackoffConfig{
		BaseDelay: 500 * time.Millisecond,
		MaxDelay:  30 * time.Second,
	}
}

// Delay computes the wait before the next attempt using exponential
// backoff with full jitter. attempt is 1-based (1 => up to BaseDelay).
func Delay(attempt int, cfg BackoffConfig, rng *rand.Rand) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBackoff().BaseDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultBackoff().MaxDelay
	}

	// exponential: base * 2^(attempt-1), guarded against shift overflow
	delay := cfg.MaxDelay
	if attempt <= 32 {
		if d := cfg.BaseDelay << (attempt - 1); d > 0 && d < cfg.MaxDelay {
			delay = d
		}
	}

	// full jitter: random in [0, delay]
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return time.Duration(rng.Int63n(int64(delay) + 1))
}
