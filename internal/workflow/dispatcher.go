package workflow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
)

// Executor runs a workflow for one envelope.
type Executor interface {
	Execute(ctx context.Context, env domain.Envelope) (Result, error)
}

// Dispatcher feeds envelopes from the bus to the engine with a fixed
// number of workers. A delivery is acknowledged only once Execute reached a
// durable outcome or was rejected as invalid; infrastructure errors are
// retried in place with backoff and the delivery stays unacknowledged if the
// dispatcher stops first.
type Dispatcher struct {
	consumer port.EventConsumer
	exec     Executor
	workers  int
	backoff  BackoffConfig
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher with workers concurrent executions.
func NewDispatcher(consumer port.EventConsumer, exec Executor, workers int, backoff BackoffConfig, logger *slog.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	return &Dispatcher{consumer: consumer, exec: exec, workers: workers, backoff: backoff, logger: logger}
}

// Run blocks until ctx is cancelled or the consumer fails permanently.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Info("workflow dispatcher started", slog.Int("workers", d.workers))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		fetchErr error
	)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)))
			for {
				del, err := d.consumer.Fetch(ctx)
				if err != nil {
					if ctx.Err() != nil || errIsContext(err) {
						return
					}
					errOnce.Do(func() {
						fetchErr = err
						cancel()
					})
					return
				}
				d.handle(ctx, del, rng)
			}
		}(i)
	}
	wg.Wait()

	d.logger.Info("workflow dispatcher stopped")
	return fetchErr
}

func (d *Dispatcher) handle(ctx context.Context, del port.Delivery, rng *rand.Rand) {
	env := del.Envelope
	log := d.logger.With(slog.String("external_event_key", env.ExternalEventKey))

	for attempt := 1; ; attempt++ {
		res, err := d.exec.Execute(ctx, env)
		if err == nil {
			log.Debug("delivery processed",
				slog.String("run_id", res.RunID),
				slog.String("status", string(res.Status)),
				slog.Bool("duplicate", res.Duplicate),
				slog.Bool("busy", res.Busy))
			break
		}
		if errors.Is(err, ErrInvalidEnvelope) {
			log.Error("dropping delivery that cannot be processed", slog.Any("error", err))
			break
		}
		if ctx.Err() != nil {
			log.Info("dispatcher stopping, delivery left for redelivery", slog.Any("error", err))
			return
		}
		delay := Delay(attempt, d.backoff, rng)
		log.Error("workflow execution failed", slog.Int("attempt", attempt), slog.Duration("backoff", delay), slog.Any("error", err))
		if sleepCtx(ctx, delay) != nil {
			return
		}
	}

	if err := del.Ack(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("acknowledging delivery", slog.Any("error", err))
	}
}
