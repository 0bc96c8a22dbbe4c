package port

import (
	"context"
	"time"
)

// CounterStore keeps advisory per-tenant daily aggregates in a fast
// key-value store. Only atomic increments are used.
type CounterStore interface {
	// RecordConversion applies inc once per conversion id. applied is
	// false when the conversion was already counted.
	RecordConversion(ctx context.Context, inc CounterIncrement) (applied bool, err error)
	DailyStats(ctx context.Context, tenantID string, day time.Time) (DailyStats, error)
	Ping(ctx context.Context) error
}

// CounterIncrement is the delta contributed by one conversion.
type CounterIncrement struct {
	TenantID     string
	ConversionID string
	Day          time.Time
	RevenueCents int64
	Subscriber   bool
}

// DailyStats contains a tenant's counters for one UTC day.
type DailyStats struct {
	TenantID     string `json:"tenant_id"`
	Date         string `json:"date"`
	Conversions  int64  `json:"conversions"`
	RevenueCents int64  `json:"revenue_cents"`
	Subscribers  int64  `json:"subscribers"`
}
