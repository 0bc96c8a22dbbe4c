package domain

import "time"

// Tenant is the organisation that owns creators and links. Ad platform
// credentials are optional; a tenant without them gets no server-side
// conversion events.
type Tenant struct {
	ID            string
	Name          string
	AdPixelID     string
	AdAccessToken string
	// AlertThresholdCents overrides the configured high-value threshold
	// when set.
	AlertThresholdCents *int64
	CreatedAt           time.Time
}

// HasAdPlatform reports whether server-side conversion events can be sent.
func (t Tenant) HasAdPlatform() bool {
	return t.AdPixelID != "" && t.AdAccessToken != ""
}
