package domain

import "time"

// Link is a trackable smart link owned by a tenant and a creator.
// Aggregate totals are advisory and updated by side effects.
type Link struct {
	ID         string
	TenantID   string
	CreatorID  string
	Name       string
	ExternalID string // identifier the traffic source echoes as link_id
	// TrackingURL is the destination the visitor is redirected to.
	TrackingURL       string
	PostbackURL       string
	IsActive          bool
	TotalClicks       int64
	TotalConversions  int64
	TotalRevenueCents int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// LandingPage fronts a link with a slug route. When Interstitial is set the
// visitor sees a page with a call to action instead of a redirect.
type LandingPage struct {
	ID           string
	Slug         string
	LinkID       string
	Title        string
	IsPublished  bool
	Interstitial bool
	ViewCount    int64
}
