package pipeline

import (
	"context"
	"fmt"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/workflow"
)

// AdPlatformStep reports the conversion to the tenant's ad platform pixel.
// The conversion id is sent as event id, letting the platform discard
// duplicates.
type AdPlatformStep struct {
	sideEffects
	tenants port.TenantRepository
	client  port.AdPlatformClient
}

func (s *AdPlatformStep) Name() string { return StepNotifyAdPlatform }

func (s *AdPlatformStep) Execute(ctx context.Context, run *workflow.Run) (any, error) {
	conv, err := s.conversion(run)
	if err != nil {
		return nil, err
	}
	if s.alreadySent(ctx, conv, StepNotifyAdPlatform) {
		return sent("delivered by an earlier execution"), nil
	}

	tenant, err := s.tenants.GetTenant(ctx, conv.TenantID)
	if err != nil {
		return nil, fmt.Errorf("get tenant %q: %w", conv.TenantID, err)
	}
	if tenant == nil || !tenant.HasAdPlatform() {
		return s.record(ctx, conv, StepNotifyAdPlatform, skipped("ad platform not configured")), nil
	}

	ev := port.AdPlatformEvent{
		PixelID:     tenant.AdPixelID,
		AccessToken: tenant.AdAccessToken,
		EventName:   AdPlatformEventName(conv.EventType),
		EventID:     conv.ID,
		EventTime:   conv.OccurredAt,
		ExternalID:  run.Envelope.ClickRef(),
		ValueCents:  conv.AmountNetCents,
	}
	if err = s.client.SendConversion(ctx, ev); err != nil {
		return nil, fmt.Errorf("send %s event: %w", ev.EventName, err)
	}
	return s.record(ctx, conv, StepNotifyAdPlatform, sent(ev.EventName)), nil
}

func (s *AdPlatformStep) RecordFailure(ctx context.Context, run *workflow.Run, err error) error {
	return s.recordFailure(ctx, run, StepNotifyAdPlatform, err)
}

// AdPlatformEventName maps the conversion taxonomy to standard ad platform
// event names.
func AdPlatformEventName(t domain.EventType) string {
	switch t {
	case domain.EventSubscribe:
		return "Subscribe"
	case domain.EventClick:
		return "ViewContent"
	default:
		return "Purchase"
	}
}
