package workflow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartlink/internal/adapter/memory"
	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/metrics"
)

// queueConsumer hands out a fixed set of deliveries and then blocks.
type queueConsumer struct {
	mu    sync.Mutex
	queue []domain.Envelope
	acked []string
}

func (c *queueConsumer) Fetch(ctx context.Context) (port.Delivery, error) {
	c.mu.Lock()
	if len(c.queue) == 0 {
		c.mu.Unlock()
		<-ctx.Done()
		return port.Delivery{}, ctx.Err()
	}
	env := c.queue[0]
	c.queue = c.queue[1:]
	c.mu.Unlock()
	return port.Delivery{Envelope: env, Ack: func(context.Context) error {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.acked = append(c.acked, env.ExternalEventKey)
		return nil
	}}, nil
}

func (c *queueConsumer) Close() error { return nil }

func (c *queueConsumer) ackedKeys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.acked...)
}

type flakyExecutor struct {
	failures atomic.Int32
	calls    atomic.Int32
}

func (f *flakyExecutor) Execute(_ context.Context, env domain.Envelope) (Result, error) {
	f.calls.Add(1)
	if f.failures.Add(-1) >= 0 {
		return Result{}, errors.New("database unavailable")
	}
	return Result{RunID: RunID(env.ExternalEventKey), Status: domain.RunSucceeded}, nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestDispatcherAcksAfterExecution(t *testing.T) {
	store := memory.NewStore()
	a := okStep("a")
	e := testEngine(t, store, Plan{Sequential: []Step{a}}, nil)
	consumer := &queueConsumer{queue: []domain.Envelope{envelope("tx:1"), envelope("tx:2"), envelope("tx:1")}}
	d := NewDispatcher(consumer, e, 2, BackoffConfig{BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}, discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	require.Eventually(t, func() bool { return len(consumer.ackedKeys()) == 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.ElementsMatch(t, []string{"tx:1", "tx:2", "tx:1"}, consumer.ackedKeys())
	assert.Equal(t, int32(2), a.calls.Load())
}

func TestDispatcherRetriesInfrastructureErrors(t *testing.T) {
	exec := &flakyExecutor{}
	exec.failures.Store(2)
	consumer := &queueConsumer{queue: []domain.Envelope{envelope("tx:retry")}}
	d := NewDispatcher(consumer, exec, 1, BackoffConfig{BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}, discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	require.Eventually(t, func() bool { return len(consumer.ackedKeys()) == 1 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, int32(3), exec.calls.Load())
}

func TestDispatcherLeavesDeliveryUnackedOnShutdown(t *testing.T) {
	exec := &flakyExecutor{}
	exec.failures.Store(1 << 20)
	consumer := &queueConsumer{queue: []domain.Envelope{envelope("tx:stuck")}}
	d := NewDispatcher(consumer, exec, 1, BackoffConfig{BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}, discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	require.Eventually(t, func() bool { return exec.calls.Load() > 1 }, 2*time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	assert.Empty(t, consumer.ackedKeys())
}

func TestDispatcherAcksEnvelopesThatCannotRun(t *testing.T) {
	store := memory.NewStore()
	a := okStep("a")
	e := testEngine(t, store, Plan{Sequential: []Step{a}}, nil)

	bad := envelope("tx:bad")
	bad.ConversionAt = time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)
	consumer := &queueConsumer{queue: []domain.Envelope{bad, envelope("tx:good")}}
	d := NewDispatcher(consumer, e, 1, BackoffConfig{BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}, discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	require.Eventually(t, func() bool { return len(consumer.ackedKeys()) == 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, []string{"tx:bad", "tx:good"}, consumer.ackedKeys())
	assert.Equal(t, int32(1), a.calls.Load())
}

type failingConsumer struct{}

func (failingConsumer) Fetch(context.Context) (port.Delivery, error) {
	return port.Delivery{}, errors.New("broker gone")
}
func (failingConsumer) Close() error { return nil }

func TestDispatcherStopsOnFetchError(t *testing.T) {
	d := NewDispatcher(failingConsumer{}, &flakyExecutor{}, 3, DefaultBackoff(), discard())
	err := d.Run(context.Background())
	assert.EqualError(t, err, "broker gone")
}

func TestRecoverySweepResumesStaleRuns(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	a, b := okStep("a"), okStep("b")
	e := testEngine(t, store, Plan{Sequential: []Step{a, b}}, nil)

	// A worker died after creating the run and finishing "a".
	env := envelope("tx:stale")
	runID := RunID(env.ExternalEventKey)
	old := time.Now().UTC().Add(-time.Hour)
	payload := []byte(`{"click_id":"abc123","conversion_type":"new_subscriber","smart_link_id":"link_1","external_event_key":"tx:stale","creator_acct_id":"","conversion_at":"2026-01-02T03:04:05Z"}`)
	_, _, err := store.CreateOrGetRun(ctx, domain.WorkflowRun{RunID: runID, ExternalEventKey: env.ExternalEventKey, Payload: payload, Status: domain.RunRunning, CreatedAt: old, UpdatedAt: old}, []string{"a", "b"})
	require.NoError(t, err)
	claim, _, err := store.ClaimStep(ctx, runID, "a", old, old.Add(time.Minute))
	require.NoError(t, err)
	require.NoError(t, store.CompleteStep(ctx, runID, "a", claim.Attempts, []byte(`null`)))
	store.SetRunUpdatedAt(runID, old)

	// A fresh run must not be touched.
	_, _, err = store.CreateOrGetRun(ctx, domain.WorkflowRun{RunID: "fresh", Status: domain.RunRunning, CreatedAt: time.Now(), UpdatedAt: time.Now()}, []string{"a", "b"})
	require.NoError(t, err)

	rec, err := NewRecovery("@every 1m", store, e, 5*time.Minute, 10, discard(), metrics.New())
	require.NoError(t, err)

	n, err := rec.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Zero(t, a.calls.Load())
	assert.Equal(t, int32(1), b.calls.Load())

	run, _ := store.GetRun(ctx, runID)
	assert.Equal(t, domain.RunSucceeded, run.Status)
}

func TestRecoveryRejectsBadSchedule(t *testing.T) {
	_, err := NewRecovery("every minute", memory.NewStore(), &flakyExecutor{}, time.Minute, 10, discard(), metrics.New())
	assert.Error(t, err)
}
