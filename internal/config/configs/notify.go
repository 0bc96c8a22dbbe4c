package configs

import "time"

// AdPlatform configures the server-side conversion API client. Pixel ids
// and access tokens are stored per tenant.
type AdPlatform struct {
	BaseURL  string        `env:"BASE_URL" envDefault:"https://graph.facebook.com/v21.0"`
	Currency string        `env:"CURRENCY" envDefault:"USD"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Alert configures the high-value conversion notifier. An empty
// WebhookURL disables delivery.
type Alert struct {
	WebhookURL              string        `env:"WEBHOOK_URL"`
	HighValueThresholdCents int64         `env:"HIGH_VALUE_THRESHOLD_CENTS" envDefault:"5000"`
	Timeout                 time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

// Postback configures outbound calls to tenant postback URLs.
type Postback struct {
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"10s"`
	RatePerHost  float64       `env:"RATE_PER_HOST" envDefault:"20"`
	BurstPerHost int           `env:"BURST_PER_HOST" envDefault:"40"`
}

// Sentry enables error reporting when DSN is set.
type Sentry struct {
	DSN string `env:"DSN"`
}
