package port

import (
	"context"
	"time"
)

// AdPlatformEvent is a server-side conversion event for the ad platform.
type AdPlatformEvent struct {
	PixelID     string
	AccessToken string
	EventName   string
	EventID     string
	EventTime   time.Time
	ExternalID  string
	ValueCents  int64
}

// AdPlatformClient sends conversion events to the ad platform. Any error
// is considered retryable by the caller.
type AdPlatformClient interface {
	SendConversion(ctx context.Context, ev AdPlatformEvent) error
}

// PostbackClient calls tenant-configured postback URLs.
type PostbackClient interface {
	Fire(ctx context.Context, url string) error
}

// AlertNotifier delivers human readable alerts to an operations channel.
type AlertNotifier interface {
	Enabled() bool
	Notify(ctx context.Context, text string) error
}
