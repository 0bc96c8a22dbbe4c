package pipeline

import (
	"context"
	"fmt"
	"strings"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/workflow"
)

// AlertStep notifies the operations channel about high-value conversions.
// It runs once: a missed alert is not worth delaying the run.
type AlertStep struct {
	sideEffects
	tenants        port.TenantRepository
	notifier       port.AlertNotifier
	thresholdCents int64
}

func (s *AlertStep) Name() string { return StepSendAlert }

func (s *AlertStep) MaxAttempts() int { return 1 }

func (s *AlertStep) Execute(ctx context.Context, run *workflow.Run) (any, error) {
	conv, err := s.conversion(run)
	if err != nil {
		return nil, err
	}
	if s.alreadySent(ctx, conv, StepSendAlert) {
		return sent("delivered by an earlier execution"), nil
	}

	threshold := s.thresholdCents
	tenant, err := s.tenants.GetTenant(ctx, conv.TenantID)
	if err != nil {
		return nil, fmt.Errorf("get tenant %q: %w", conv.TenantID, err)
	}
	if tenant != nil && tenant.AlertThresholdCents != nil {
		threshold = *tenant.AlertThresholdCents
	}

	if conv.AmountNetCents < threshold {
		return s.record(ctx, conv, StepSendAlert, skipped("below threshold "+FormatCents(threshold))), nil
	}
	if !s.notifier.Enabled() {
		return s.record(ctx, conv, StepSendAlert, skipped("alert webhook not configured")), nil
	}

	if err = s.notifier.Notify(ctx, AlertText(run.Envelope, conv, tenant)); err != nil {
		return nil, fmt.Errorf("send alert: %w", err)
	}
	return s.record(ctx, conv, StepSendAlert, sent("")), nil
}

func (s *AlertStep) RecordFailure(ctx context.Context, run *workflow.Run, err error) error {
	return s.recordFailure(ctx, run, StepSendAlert, err)
}

// AlertText renders the operations message for a high-value conversion.
func AlertText(env domain.Envelope, conv domain.Conversion, tenant *domain.Tenant) string {
	var b strings.Builder
	fmt.Fprintf(&b, ":moneybag: High-value %s: $%s net", conv.EventType, FormatCents(conv.AmountNetCents))
	if conv.AmountGrossCents > 0 {
		fmt.Fprintf(&b, " ($%s gross)", FormatCents(conv.AmountGrossCents))
	}
	if tenant != nil && tenant.Name != "" {
		fmt.Fprintf(&b, "\nTenant: %s", tenant.Name)
	}
	creator := env.CreatorUsername
	if creator == "" {
		creator = conv.CreatorID
	}
	fmt.Fprintf(&b, "\nCreator: %s", creator)
	link := env.SmartLinkName
	if link == "" {
		link = conv.LinkID
	}
	fmt.Fprintf(&b, "\nLink: %s", link)
	if env.FanUsername != "" {
		fmt.Fprintf(&b, "\nFan: %s", env.FanUsername)
	}
	return b.String()
}
