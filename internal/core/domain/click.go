package domain

import "time"

// Click is a record of a visitor passing through a tracked redirect. It is
// written once during capture and never mutated.
type Click struct {
	ClickID       string
	TenantID      string
	LinkID        string
	LandingPageID *string
	UTMSource     string
	UTMMedium     string
	UTMCampaign   string
	UTMContent    string
	Country       string
	DeviceType    string
	Browser       string
	Referrer      string
	CreatedAt     time.Time
}

// RequestContext carries the parts of an inbound request that click
// capture classifies and stores.
type RequestContext struct {
	UserAgent string
	Referrer  string
	Country   string
	Query     map[string]string
}

// Redirect is the outcome of click capture. ClickID is empty when the link
// could not be resolved and URL points at the not-found destination.
type Redirect struct {
	URL          string
	ClickID      string
	LinkID       string
	Interstitial *LandingPage
}
