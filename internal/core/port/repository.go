package port

import (
	"context"
	"encoding/json"
	"time"

	"smartlink/internal/core/domain"
)

// Lookup methods in this file return (nil, nil) when the record does not
// exist; errors are reserved for datastore failures.

// LinkRepository reads links and landing pages and applies monotonic
// counter updates to them.
type LinkRepository interface {
	// GetLink returns a link by its id.
	GetLink(ctx context.Context, id string) (*domain.Link, error)
	// FindLinkByRef returns a link whose id or external id equals ref.
	FindLinkByRef(ctx context.Context, ref string) (*domain.Link, error)
	// GetLandingPageBySlug returns a landing page by slug.
	GetLandingPageBySlug(ctx context.Context, slug string) (*domain.LandingPage, error)
	IncrementLandingPageViews(ctx context.Context, pageID string) error
	IncrementLinkClicks(ctx context.Context, linkID string) error
	// AddConversionTotals bumps the advisory conversion aggregates.
	AddConversionTotals(ctx context.Context, linkID string, revenueCents int64) error
}

// TenantRepository reads tenant settings.
type TenantRepository interface {
	GetTenant(ctx context.Context, id string) (*domain.Tenant, error)
}

// ClickRepository persists clicks. Clicks are immutable once created.
type ClickRepository interface {
	CreateClick(ctx context.Context, click *domain.Click) error
	GetClick(ctx context.Context, clickID string) (*domain.Click, error)
}

// ConversionRepository persists conversions. Implementations must make
// InsertOrGetConversion atomic on (tenant_id, external_event_key).
type ConversionRepository interface {
	// InsertOrGetConversion inserts c unless a conversion with the same
	// tenant and external event key exists, in which case the existing
	// row is returned with created=false.
	InsertOrGetConversion(ctx context.Context, c domain.Conversion) (conv domain.Conversion, created bool, err error)
	GetConversion(ctx context.Context, id string) (*domain.Conversion, error)
	// SetSideEffectStatus records the outcome of a fan-out adapter. A
	// status already recorded as sent is never overwritten.
	SetSideEffectStatus(ctx context.Context, conversionID, adapter string, status domain.SideEffectStatus, detail string) error
	SideEffectStatuses(ctx context.Context, conversionID string) (map[string]domain.SideEffectStatus, error)
}

// WorkflowRepository is the idempotency ledger of the workflow engine. All
// state transitions are conditional writes so concurrent executions of the
// same run cannot both own a step.
type WorkflowRepository interface {
	// CreateOrGetRun creates run together with a pending row per step, or
	// returns the existing run for the same id with created=false.
	CreateOrGetRun(ctx context.Context, run domain.WorkflowRun, steps []string) (domain.WorkflowRun, bool, error)
	GetRun(ctx context.Context, runID string) (*domain.WorkflowRun, error)
	// ClaimStep moves a step to running if it is pending, failed_retryable
	// or running with an expired lease, incrementing attempts. When the
	// claim is refused the current record is returned with claimed=false.
	ClaimStep(ctx context.Context, runID, step string, now, leaseUntil time.Time) (rec domain.StepRecord, claimed bool, err error)
	// CompleteStep stores output and moves a running step to succeeded.
	// attempt is the attempts value returned by the claim; when the step is
	// no longer running under it ErrStepNotOwned is returned.
	CompleteStep(ctx context.Context, runID, step string, attempt int, output json.RawMessage) error
	// FailStep moves a running step to failed_retryable or
	// failed_terminal, with the same ownership check as CompleteStep.
	FailStep(ctx context.Context, runID, step string, attempt int, lastErr string, terminal bool) error
	// FinishRun marks a run terminal. A finished run is never reopened.
	FinishRun(ctx context.Context, runID string, status domain.RunStatus, at time.Time) error
	// ListStaleRuns returns running runs not updated since before.
	ListStaleRuns(ctx context.Context, before time.Time, limit int) ([]domain.WorkflowRun, error)
}

// DeadLetterRepository stores events that could not be processed.
type DeadLetterRepository interface {
	CreateDeadLetter(ctx context.Context, dl domain.DeadLetter) error
}
