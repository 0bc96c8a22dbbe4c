package membus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartlink/internal/core/domain"
)

func TestPublishFetch(t *testing.T) {
	b := New(2)
	ctx := context.Background()

	require.NoError(t, b.Publish(ctx, domain.Envelope{ExternalEventKey: "tx:1"}))
	require.NoError(t, b.Publish(ctx, domain.Envelope{ExternalEventKey: "tx:2"}))

	d, err := b.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tx:1", d.Envelope.ExternalEventKey)
	require.NoError(t, d.Ack(ctx))

	d, err = b.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tx:2", d.Envelope.ExternalEventKey)
}

func TestPublishRespectsContextWhenFull(t *testing.T) {
	b := New(1)
	require.NoError(t, b.Publish(context.Background(), domain.Envelope{}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, b.Publish(ctx, domain.Envelope{}), context.DeadlineExceeded)
}

func TestClose(t *testing.T) {
	b := New(1)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	assert.ErrorIs(t, b.Publish(context.Background(), domain.Envelope{}), ErrClosed)
	_, err := b.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}
