package domain

import (
	"encoding/json"
	"time"
)

// StepState is the persisted state of one step in a run.
type StepState string

const (
	StepPending         StepState = "pending"
	StepRunning         StepState = "running"
	StepSucceeded       StepState = "succeeded"
	StepFailedRetryable StepState = "failed_retryable"
	StepFailedTerminal  StepState = "failed_terminal"
)

// Terminal reports whether the state can no longer change.
func (s StepState) Terminal() bool {
	return s == StepSucceeded || s == StepFailedTerminal
}

// RunStatus summarises a workflow run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunSucceeded RunStatus = "succeeded"
	RunPartial   RunStatus = "partial"
	RunFailed    RunStatus = "failed"
)

// WorkflowRun is the durable execution record for one ingested event.
type WorkflowRun struct {
	RunID            string
	ExternalEventKey string
	Payload          json.RawMessage
	Status           RunStatus
	Steps            map[string]StepRecord
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CompletedAt      *time.Time
}

// StepRecord is one row of the idempotency ledger.
type StepRecord struct {
	RunID          string
	Name           string
	State          StepState
	Attempts       int
	LastError      string
	Output         json.RawMessage
	LeaseExpiresAt *time.Time
	UpdatedAt      time.Time
}

// DeadLetter is kept for manual reconciliation when a run cannot be
// attributed or persisted.
type DeadLetter struct {
	ID               string
	RunID            string
	ExternalEventKey string
	StepName         string
	Reason           string
	Payload          json.RawMessage
	CreatedAt        time.Time
}
