package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"smartlink/internal/core/domain"
)

// Step is one unit of work of a plan. Execute returns a JSON-serialisable
// output that is persisted in the ledger and exposed to later steps. A
// step is re-executed only after a failure, so side effects performed
// before a successful return are never repeated by the engine.
type Step interface {
	Name() string
	Execute(ctx context.Context, run *Run) (any, error)
}

// AttemptLimiter lets a step run fewer attempts than the engine default.
type AttemptLimiter interface {
	MaxAttempts() int
}

// FailureRecorder is implemented by steps that persist their own outcome
// when they fail terminally.
type FailureRecorder interface {
	RecordFailure(ctx context.Context, run *Run, err error) error
}

// Plan is the ordered shape of a run: Sequential steps run one after the
// other and gate FanOut, whose steps run concurrently and fail
// independently.
type Plan struct {
	Sequential []Step
	FanOut     []Step
}

// StepNames lists every step of the plan in declaration order.
func (p Plan) StepNames() []string {
	names := make([]string, 0, len(p.Sequential)+len(p.FanOut))
	for _, s := range p.Sequential {
		names = append(names, s.Name())
	}
	for _, s := range p.FanOut {
		names = append(names, s.Name())
	}
	return names
}

// Run is the in-memory view of a workflow run handed to steps.
type Run struct {
	ID       string
	Envelope domain.Envelope

	mu      sync.RWMutex
	outputs map[string]json.RawMessage
}

func newRun(id string, env domain.Envelope) *Run {
	return &Run{ID: id, Envelope: env, outputs: make(map[string]json.RawMessage)}
}

// Output decodes the stored output of a succeeded step into v.
func (r *Run) Output(step string, v any) error {
	r.mu.RLock()
	raw, ok := r.outputs[step]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no output recorded for step %q", step)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode output of step %q: %w", step, err)
	}
	return nil
}

func (r *Run) setOutput(step string, raw json.RawMessage) {
	r.mu.Lock()
	r.outputs[step] = raw
	r.mu.Unlock()
}

// Result summarises one Execute call.
type Result struct {
	RunID  string
	Status domain.RunStatus
	// Duplicate is set when the run had already finished and nothing was
	// executed.
	Duplicate bool
	// Busy is set when another execution owns one of the steps; the run is
	// left for that execution or the recovery sweep.
	Busy bool
}
