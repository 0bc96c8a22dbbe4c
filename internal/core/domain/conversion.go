package domain

import "time"

// EventType is the conversion taxonomy stored on a Conversion.
type EventType string

const (
	EventSubscribe EventType = "subscribe"
	EventPurchase  EventType = "purchase"
	EventRebill    EventType = "rebill"
	EventClick     EventType = "click"
)

// SideEffectStatus records what a fan-out step did for a conversion.
type SideEffectStatus string

const (
	SideEffectSent    SideEffectStatus = "sent"
	SideEffectSkipped SideEffectStatus = "skipped"
	SideEffectFailed  SideEffectStatus = "failed"
)

// Conversion is the durable record of an attributed revenue event. Amounts
// are stored in cents. ClickID is nil when attribution fell back to the
// link.
type Conversion struct {
	ID               string    `json:"id"`
	TenantID         string    `json:"tenant_id"`
	CreatorID        string    `json:"creator_id"`
	LinkID           string    `json:"link_id"`
	ClickID          *string   `json:"click_id"`
	ExternalEventKey string    `json:"external_event_key"`
	EventType        EventType `json:"event_type"`
	TransactionType  string    `json:"transaction_type,omitempty"`
	AmountGrossCents int64     `json:"amount_gross_cents"`
	AmountNetCents   int64     `json:"amount_net_cents"`
	FanIdentifier    string    `json:"fan_identifier,omitempty"`
	FanUsername      string    `json:"fan_username,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
	CreatedAt        time.Time `json:"created_at"`
}

// AttributionSource tells how a conversion was tied to its owner.
type AttributionSource string

const (
	AttributedByClick AttributionSource = "click"
	AttributedByLink  AttributionSource = "link"
)

// Ownership is the resolved tenant/creator/link tuple for a conversion.
type Ownership struct {
	TenantID     string            `json:"tenant_id"`
	CreatorID    string            `json:"creator_id"`
	LinkID       string            `json:"link_id"`
	ClickID      *string           `json:"click_id,omitempty"`
	AttributedBy AttributionSource `json:"attributed_by"`
}
