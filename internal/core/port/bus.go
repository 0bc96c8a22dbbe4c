package port

import (
	"context"

	"smartlink/internal/core/domain"
)

// EventPublisher publishes normalised postback envelopes. Implementations
// key messages by the envelope's external event key.
type EventPublisher interface {
	Publish(ctx context.Context, env domain.Envelope) error
}

// Delivery is one envelope received from the bus. Ack must be called once
// processing reached a durable outcome; unacknowledged deliveries are
// redelivered.
type Delivery struct {
	Envelope domain.Envelope
	Ack      func(ctx context.Context) error
}

// EventConsumer receives envelopes from the bus. Fetch blocks until a
// delivery is available or ctx is done.
type EventConsumer interface {
	Fetch(ctx context.Context) (Delivery, error)
	Close() error
}
