package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/metrics"
)

// runNamespace scopes the name-based UUIDs derived from event keys.
var runNamespace = uuid.MustParse("6f1c2b9e-4a7d-5e3f-9b0c-2d8e7a6f5c41")

// RunID derives the deterministic run id of an external event key, so every
// delivery of the same event maps to the same run.
func RunID(externalEventKey string) string {
	return uuid.NewSHA1(runNamespace, []byte(externalEventKey)).String()
}

// Config tunes retries and timeouts of the engine.
type Config struct {
	MaxAttempts int
	StepTimeout time.Duration
	// Lease is how long a claimed step is reserved for this execution.
	// It must exceed StepTimeout.
	Lease   time.Duration
	Backoff BackoffConfig
}

// Reporter receives terminal step failures, e.g. for error tracking.
type Reporter interface {
	ReportFailure(ctx context.Context, run *Run, step string, err error)
}

type nopReporter struct{}

func (nopReporter) ReportFailure(context.Context, *Run, string, error) {}

type outcome int

const (
	outcomeSucceeded outcome = iota
	outcomeTerminal
	outcomeBusy
)

// Engine executes a Plan for envelopes with exactly-once step semantics
// backed by the idempotency ledger in port.WorkflowRepository.
type Engine struct {
	repo        port.WorkflowRepository
	deadLetters port.DeadLetterRepository
	plan        Plan
	cfg         Config
	logger      *slog.Logger
	metrics     *metrics.Metrics
	reporter    Reporter

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewEngine creates an engine for plan. A nil reporter disables failure
// reporting.
func NewEngine(repo port.WorkflowRepository, deadLetters port.DeadLetterRepository, plan Plan, cfg Config, logger *slog.Logger, m *metrics.Metrics, reporter Reporter) *Engine {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.StepTimeout <= 0 {
		cfg.StepTimeout = 10 * time.Second
	}
	if cfg.Lease <= cfg.StepTimeout {
		cfg.Lease = cfg.StepTimeout * 2
	}
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Engine{
		repo:        repo,
		deadLetters: deadLetters,
		plan:        plan,
		cfg:         cfg,
		logger:      logger,
		metrics:     m,
		reporter:    reporter,
		now:         func() time.Time { return time.Now().UTC() },
		sleep:       sleepCtx,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Execute runs the plan for env. Re-executing an envelope resumes the same
// run: succeeded steps are skipped and their stored outputs reused. The
// returned error is reserved for infrastructure failures that leave the run
// unfinished; step failures are reflected in the result status.
func (e *Engine) Execute(ctx context.Context, env domain.Envelope) (Result, error) {
	runID := RunID(env.ExternalEventKey)
	res := Result{RunID: runID, Status: domain.RunRunning}

	if env.ExternalEventKey == "" {
		return res, fmt.Errorf("%w: missing external event key", ErrInvalidEnvelope)
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return res, fmt.Errorf("%w: encode: %v", ErrInvalidEnvelope, err)
	}
	now := e.now()
	stored, created, err := e.repo.CreateOrGetRun(ctx, domain.WorkflowRun{
		RunID:            runID,
		ExternalEventKey: env.ExternalEventKey,
		Payload:          payload,
		Status:           domain.RunRunning,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, e.plan.StepNames())
	if err != nil {
		return res, fmt.Errorf("create run %s: %w", runID, err)
	}

	log := e.logger.With(slog.String("run_id", runID), slog.String("external_event_key", env.ExternalEventKey))
	if stored.Status != domain.RunRunning {
		log.Info("duplicate delivery for finished run", slog.String("status", string(stored.Status)))
		res.Status = stored.Status
		res.Duplicate = true
		return res, nil
	}
	if !created {
		log.Info("resuming run")
	}

	run := newRun(runID, env)
	for name, rec := range stored.Steps {
		if rec.State == domain.StepSucceeded {
			run.setOutput(name, rec.Output)
		}
	}

	for _, step := range e.plan.Sequential {
		out, err := e.runStep(ctx, run, step)
		if err != nil {
			return res, err
		}
		switch out {
		case outcomeBusy:
			res.Busy = true
			return res, nil
		case outcomeTerminal:
			if err = e.halt(ctx, run, step.Name(), log); err != nil {
				return res, err
			}
			res.Status = domain.RunFailed
			return res, nil
		}
	}

	outcomes := make([]outcome, len(e.plan.FanOut))
	// Plain group: a failing sibling must not cancel the others.
	var g errgroup.Group
	for i, step := range e.plan.FanOut {
		i, step := i, step
		g.Go(func() error {
			out, err := e.runStep(ctx, run, step)
			outcomes[i] = out
			return err
		})
	}
	if err = g.Wait(); err != nil {
		return res, err
	}

	status := domain.RunSucceeded
	for _, out := range outcomes {
		switch out {
		case outcomeBusy:
			res.Busy = true
			return res, nil
		case outcomeTerminal:
			status = domain.RunPartial
		}
	}
	if err = e.finish(ctx, runID, status); err != nil {
		return res, err
	}
	res.Status = status
	log.Info("run finished", slog.String("status", string(status)))
	return res, nil
}

// runStep drives one step to a durable outcome. Errors returned are ledger
// or context failures; step errors are retried or recorded.
func (e *Engine) runStep(ctx context.Context, run *Run, step Step) (outcome, error) {
	name := step.Name()
	maxAttempts := e.cfg.MaxAttempts
	if l, ok := step.(AttemptLimiter); ok && l.MaxAttempts() > 0 && l.MaxAttempts() < maxAttempts {
		maxAttempts = l.MaxAttempts()
	}
	log := e.logger.With(slog.String("run_id", run.ID), slog.String("step", name))

	for {
		now := e.now()
		rec, claimed, err := e.repo.ClaimStep(ctx, run.ID, name, now, now.Add(e.cfg.Lease))
		if err != nil {
			return outcomeBusy, fmt.Errorf("claim step %s of run %s: %w", name, run.ID, err)
		}
		if !claimed {
			switch rec.State {
			case domain.StepSucceeded:
				run.setOutput(name, rec.Output)
				e.metrics.StepExecutions.WithLabelValues(name, "skipped").Inc()
				return outcomeSucceeded, nil
			case domain.StepFailedTerminal:
				return outcomeTerminal, nil
			default:
				log.Info("step is owned by another execution", slog.Any("error", ErrStepBusy))
				return outcomeBusy, nil
			}
		}

		if rec.Attempts > maxAttempts {
			// Ceiling reached by earlier executions, e.g. before a restart.
			err = fmt.Errorf("attempt ceiling %d exhausted", maxAttempts)
			if ferr := e.repo.FailStep(ctx, run.ID, name, rec.Attempts, err.Error(), true); ferr != nil {
				return e.ledgerError(ferr, "fail", run, name, log)
			}
			e.recordTerminal(ctx, run, step, err, log)
			return outcomeTerminal, nil
		}

		output, stepErr := e.attempt(ctx, run, step)
		if stepErr == nil {
			raw, err := json.Marshal(output)
			if err != nil {
				stepErr = Terminal(fmt.Errorf("encode output: %w", err))
			} else {
				if err = e.repo.CompleteStep(ctx, run.ID, name, rec.Attempts, raw); err != nil {
					return e.ledgerError(err, "complete", run, name, log)
				}
				run.setOutput(name, raw)
				e.metrics.StepExecutions.WithLabelValues(name, "succeeded").Inc()
				log.Debug("step succeeded", slog.Int("attempt", rec.Attempts))
				return outcomeSucceeded, nil
			}
		}

		terminal := IsTerminal(stepErr) || rec.Attempts >= maxAttempts
		if err = e.repo.FailStep(ctx, run.ID, name, rec.Attempts, stepErr.Error(), terminal); err != nil {
			return e.ledgerError(err, "fail", run, name, log)
		}
		if terminal {
			e.metrics.StepExecutions.WithLabelValues(name, "terminal").Inc()
			e.recordTerminal(ctx, run, step, stepErr, log.With(slog.Int("attempt", rec.Attempts)))
			return outcomeTerminal, nil
		}

		e.metrics.StepExecutions.WithLabelValues(name, "retryable").Inc()
		delay := e.backoff(rec.Attempts)
		log.Warn("step failed, retrying",
			slog.Int("attempt", rec.Attempts),
			slog.Duration("backoff", delay),
			slog.Any("error", stepErr))
		if err = e.sleep(ctx, delay); err != nil {
			return outcomeBusy, err
		}
	}
}

// ledgerError maps a failed ledger write. Losing the step to another
// execution after the lease expired is not an error: the new owner decides
// the outcome.
func (e *Engine) ledgerError(err error, op string, run *Run, step string, log *slog.Logger) (outcome, error) {
	if errors.Is(err, port.ErrStepNotOwned) {
		log.Warn("step was reclaimed by another execution", slog.Any("error", err))
		return outcomeBusy, nil
	}
	return outcomeBusy, fmt.Errorf("%s step %s of run %s: %w", op, step, run.ID, err)
}

// attempt executes step once under the step timeout. Panics are converted
// into retryable errors.
func (e *Engine) attempt(ctx context.Context, run *Run, step Step) (out any, err error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.StepTimeout)
	defer cancel()

	start := time.Now()
	defer func() {
		e.metrics.StepDuration.WithLabelValues(step.Name()).Observe(time.Since(start).Seconds())
		if r := recover(); r != nil {
			err = fmt.Errorf("step panicked: %v", r)
		}
	}()
	return step.Execute(ctx, run)
}

func (e *Engine) recordTerminal(ctx context.Context, run *Run, step Step, err error, log *slog.Logger) {
	log.Error("step failed terminally", slog.Any("error", err))
	e.reporter.ReportFailure(ctx, run, step.Name(), err)
	if fr, ok := step.(FailureRecorder); ok {
		if rerr := fr.RecordFailure(ctx, run, err); rerr != nil {
			log.Warn("recording step failure", slog.Any("error", rerr))
		}
	}
}

// halt finishes a run whose sequential step failed and keeps its payload
// for manual reconciliation.
func (e *Engine) halt(ctx context.Context, run *Run, step string, log *slog.Logger) error {
	payload, _ := json.Marshal(run.Envelope)
	reason := "step failed terminally"
	if stored, err := e.repo.GetRun(ctx, run.ID); err == nil && stored != nil {
		if rec, ok := stored.Steps[step]; ok && rec.LastError != "" {
			reason = rec.LastError
		}
	}
	dl := domain.DeadLetter{
		ID:               uuid.NewString(),
		RunID:            run.ID,
		ExternalEventKey: run.Envelope.ExternalEventKey,
		StepName:         step,
		Reason:           reason,
		Payload:          payload,
		CreatedAt:        e.now(),
	}
	if err := e.deadLetters.CreateDeadLetter(ctx, dl); err != nil {
		return fmt.Errorf("dead letter run %s: %w", run.ID, err)
	}
	e.metrics.DeadLetters.Inc()
	log.Error("run dead-lettered", slog.String("step", step), slog.String("reason", reason))
	return e.finish(ctx, run.ID, domain.RunFailed)
}

func (e *Engine) finish(ctx context.Context, runID string, status domain.RunStatus) error {
	if err := e.repo.FinishRun(ctx, runID, status, e.now()); err != nil {
		return fmt.Errorf("finish run %s: %w", runID, err)
	}
	e.metrics.RunsCompleted.WithLabelValues(string(status)).Inc()
	return nil
}

func (e *Engine) backoff(attempt int) time.Duration {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return Delay(attempt, e.cfg.Backoff, e.rng)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// errIsContext reports whether err stems from the caller's context rather
// than the infrastructure.
func errIsContext(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
