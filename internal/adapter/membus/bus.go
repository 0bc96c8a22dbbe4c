// Package membus is an in-process event bus for single-process setups and
// tests. Deliveries are not persisted: an envelope whose processing is
// interrupted by a shutdown is lost, which is why the bus is only accepted
// with MODE=all.
package membus

import (
	"context"
	"errors"
	"sync"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
)

// ErrClosed is returned by Publish and Fetch after Close.
var ErrClosed = errors.New("membus: closed")

// Bus implements port.EventPublisher and port.EventConsumer over a
// buffered channel.
type Bus struct {
	ch        chan domain.Envelope
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a bus buffering up to size envelopes.
func New(size int) *Bus {
	return &Bus{
		ch:   make(chan domain.Envelope, size),
		done: make(chan struct{}),
	}
}

// Publish enqueues env, blocking while the buffer is full.
func (b *Bus) Publish(ctx context.Context, env domain.Envelope) error {
	select {
	case <-b.done:
		return ErrClosed
	default:
	}
	select {
	case b.ch <- env:
		return nil
	case <-b.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Fetch blocks until an envelope is available.
func (b *Bus) Fetch(ctx context.Context) (port.Delivery, error) {
	select {
	case env := <-b.ch:
		return port.Delivery{
			Envelope: env,
			Ack:      func(context.Context) error { return nil },
		}, nil
	case <-b.done:
		return port.Delivery{}, ErrClosed
	case <-ctx.Done():
		return port.Delivery{}, ctx.Err()
	}
}

// Close stops the bus. Buffered envelopes are dropped.
func (b *Bus) Close() error {
	b.closeOnce.Do(func() { close(b.done) })
	return nil
}
