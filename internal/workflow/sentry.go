package workflow

import (
	"context"

	"github.com/getsentry/sentry-go"
)

// SentryReporter forwards terminal step failures to Sentry. sentry.Init
// must have been called; without a client the hub drops events.
type SentryReporter struct{}

// ReportFailure captures err tagged with the run and step.
func (SentryReporter) ReportFailure(_ context.Context, run *Run, step string, err error) {
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("workflow.step", step)
		scope.SetTag("workflow.run_id", run.ID)
		scope.SetTag("external_event_key", run.Envelope.ExternalEventKey)
		scope.SetContext("envelope", sentry.Context{
			"smart_link_id":   run.Envelope.SmartLinkID,
			"conversion_type": run.Envelope.ConversionType,
			"click_ref":       run.Envelope.ClickRef(),
		})
	})
	hub.CaptureException(err)
}
