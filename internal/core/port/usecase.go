package port

import (
	"context"
	"errors"
	"time"

	"smartlink/internal/core/domain"
)

var (
	// ErrLinkNotFound is returned when a link or landing page is unknown
	// or inactive.
	ErrLinkNotFound = errors.New("link not found")
	// ErrInvalidPostback is returned for postbacks failing validation.
	ErrInvalidPostback = errors.New("invalid postback")
	// ErrRunNotFound is returned for unknown workflow runs.
	ErrRunNotFound = errors.New("workflow run not found")
	// ErrNoAttribution is returned when neither the click nor the link of
	// a postback can be found.
	ErrNoAttribution = errors.New("no click or active link matches the postback")
	// ErrStepNotOwned is returned by the ledger when a step is no longer
	// running under the attempt that is trying to finish it.
	ErrStepNotOwned = errors.New("workflow step is not owned by this attempt")
	// ErrInvalidPostbackURL is returned for tenant postback URLs that cannot
	// be requested.
	ErrInvalidPostbackURL = errors.New("invalid postback url")
)

// ClickUseCase captures clicks and returns where the visitor goes next.
// Capture never fails because the click could not be stored: the redirect
// is still returned and the failure is logged.
type ClickUseCase interface {
	// CaptureLink handles the lightweight /r/{link_id} route.
	CaptureLink(ctx context.Context, linkID string, rc domain.RequestContext) (domain.Redirect, error)
	// CaptureLanding handles the /go/{slug} landing page route.
	CaptureLanding(ctx context.Context, slug string, rc domain.RequestContext) (domain.Redirect, error)
}

// PostbackParams are the raw query parameters of a conversion postback.
// The param tag names the query parameter in validation errors.
type PostbackParams struct {
	ClickID         string `param:"click_id" validate:"required_without=ExternalClickID,max=128"`
	ExternalClickID string `param:"ecid" validate:"required_without=ClickID,max=128"`
	ConversionType  string `param:"type" validate:"required,oneof=new_subscriber new_transaction click"`
	TransactionType string `param:"tx_type" validate:"max=64"`
	TransactionID   string `param:"tx_id" validate:"max=128"`
	Gross           string `param:"gross" validate:"omitempty,amount"`
	Net             string `param:"net" validate:"omitempty,amount"`
	FanID           string `param:"fan_id" validate:"max=128"`
	FanUsername     string `param:"fan_user" validate:"max=128"`
	CreatorAcctID   string `param:"creator_acct" validate:"max=128"`
	CreatorUsername string `param:"creator_user" validate:"max=128"`
	LinkID          string `param:"link_id" validate:"required,max=128"`
	LinkName        string `param:"link_name" validate:"max=256"`
	Timestamp       string `param:"ts" validate:"omitempty,timestamp"`
}

// PostbackUseCase validates postbacks and publishes them to the bus. It
// performs no attribution itself.
type PostbackUseCase interface {
	Ingest(ctx context.Context, p PostbackParams) (domain.Envelope, error)
}

// ReportingUseCase exposes read-only operator views.
type ReportingUseCase interface {
	GetRun(ctx context.Context, runID string) (*domain.WorkflowRun, error)
	DailyStats(ctx context.Context, tenantID string, day time.Time) (DailyStats, error)
}
