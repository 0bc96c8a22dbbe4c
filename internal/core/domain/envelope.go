package domain

import (
	"strings"
	"time"
)

// Postback conversion types as sent by the traffic source.
const (
	ConversionNewSubscriber  = "new_subscriber"
	ConversionNewTransaction = "new_transaction"
	ConversionClick          = "click"
)

// Envelope is the normalised postback event published to the bus. Amounts
// are in cents. ExternalEventKey collapses duplicate deliveries onto one
// workflow run.
type Envelope struct {
	ClickID          string    `json:"click_id"`
	ExternalClickID  string    `json:"external_click_id,omitempty"`
	ConversionType   string    `json:"conversion_type"`
	TransactionType  string    `json:"transaction_type,omitempty"`
	TransactionID    string    `json:"transaction_id,omitempty"`
	AmountGrossCents int64     `json:"amount_gross,omitempty"`
	AmountNetCents   int64     `json:"amount_net,omitempty"`
	FanOfID          string    `json:"fan_of_id,omitempty"`
	FanUsername      string    `json:"fan_username,omitempty"`
	CreatorAcctID    string    `json:"creator_acct_id"`
	CreatorUsername  string    `json:"creator_username,omitempty"`
	SmartLinkID      string    `json:"smart_link_id"`
	SmartLinkName    string    `json:"smart_link_name,omitempty"`
	ConversionAt     time.Time `json:"conversion_at"`
	ExternalEventKey string    `json:"external_event_key"`
}

// ClickRef returns the identifier used to find the originating click. The
// echoed external click id is our own minted id and wins over the traffic
// source's click id.
func (e Envelope) ClickRef() string {
	if e.ExternalClickID != "" {
		return e.ExternalClickID
	}
	return e.ClickID
}

// EventType maps the traffic source's conversion type to the stored
// taxonomy.
func (e Envelope) EventType() EventType {
	switch e.ConversionType {
	case ConversionNewSubscriber:
		return EventSubscribe
	case ConversionClick:
		return EventClick
	}
	switch strings.ToLower(e.TransactionType) {
	case "rebill", "recurring", "renewal":
		return EventRebill
	}
	return EventPurchase
}
