package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/metrics"
)

// Recovery periodically re-executes runs that are still running but have
// not been touched for a while, e.g. because the worker owning them died.
type Recovery struct {
	cron       *cron.Cron
	repo       port.WorkflowRepository
	exec       Executor
	staleAfter time.Duration
	batch      int
	timeout    time.Duration
	logger     *slog.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewRecovery runs the sweep on schedule, a robfig/cron expression such
// as "@every 1m".
func NewRecovery(schedule string, repo port.WorkflowRepository, exec Executor, staleAfter time.Duration, batch int, logger *slog.Logger, m *metrics.Metrics) (*Recovery, error) {
	if batch < 1 {
		batch = 100
	}
	r := &Recovery{
		cron:       cron.New(),
		repo:       repo,
		exec:       exec,
		staleAfter: staleAfter,
		batch:      batch,
		timeout:    5 * time.Minute,
		logger:     logger,
		metrics:    m,
		now:        func() time.Time { return time.Now().UTC() },
	}
	if _, err := r.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if _, err := r.Sweep(ctx); err != nil {
			r.logger.Error("recovery sweep failed", slog.Any("error", err))
		}
	}); err != nil {
		return nil, fmt.Errorf("schedule recovery %q: %w", schedule, err)
	}
	return r, nil
}

// Start starts the scheduler in its own goroutine.
func (r *Recovery) Start() {
	r.logger.Info("recovery sweep scheduled", slog.Duration("stale_after", r.staleAfter))
	r.cron.Start()
}

// Stop stops the scheduler and waits for a running sweep to finish or ctx
// to expire.
func (r *Recovery) Stop(ctx context.Context) {
	done := r.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

// Sweep re-executes one batch of stale runs and returns how many were
// picked up.
func (r *Recovery) Sweep(ctx context.Context) (int, error) {
	runs, err := r.repo.ListStaleRuns(ctx, r.now().Add(-r.staleAfter), r.batch)
	if err != nil {
		return 0, fmt.Errorf("list stale runs: %w", err)
	}
	for _, run := range runs {
		log := r.logger.With(slog.String("run_id", run.RunID))
		var env domain.Envelope
		if err = json.Unmarshal(run.Payload, &env); err != nil {
			log.Error("stale run has unreadable payload", slog.Any("error", err))
			continue
		}
		res, err := r.exec.Execute(ctx, env)
		if err != nil {
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			log.Warn("recovering run failed", slog.Any("error", err))
			continue
		}
		r.metrics.RunsRecovered.Inc()
		log.Info("stale run recovered", slog.String("status", string(res.Status)), slog.Bool("busy", res.Busy))
	}
	return len(runs), nil
}
