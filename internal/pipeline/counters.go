package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/workflow"
)

// CounterStep bumps the tenant's daily counters and the link aggregates.
// The counter store applies each conversion at most once.
type CounterStep struct {
	sideEffects
	counters port.CounterStore
	links    port.LinkRepository
}

func (s *CounterStep) Name() string { return StepUpdateCounters }

func (s *CounterStep) Execute(ctx context.Context, run *workflow.Run) (any, error) {
	conv, err := s.conversion(run)
	if err != nil {
		return nil, err
	}

	applied, err := s.counters.RecordConversion(ctx, port.CounterIncrement{
		TenantID:     conv.TenantID,
		ConversionID: conv.ID,
		Day:          conv.OccurredAt.UTC(),
		RevenueCents: conv.AmountNetCents,
		Subscriber:   conv.EventType == domain.EventSubscribe,
	})
	if err != nil {
		return nil, fmt.Errorf("record counters: %w", err)
	}
	if !applied {
		return s.record(ctx, conv, StepUpdateCounters, sent("already counted")), nil
	}

	if err = s.links.AddConversionTotals(ctx, conv.LinkID, conv.AmountNetCents); err != nil {
		// Link totals are advisory; retrying would skip them anyway since
		// the counters are already applied.
		s.logger.Warn("updating link totals",
			slog.String("link_id", conv.LinkID),
			slog.String("conversion_id", conv.ID),
			slog.Any("error", err))
	}
	return s.record(ctx, conv, StepUpdateCounters, sent("")), nil
}

func (s *CounterStep) RecordFailure(ctx context.Context, run *workflow.Run, err error) error {
	return s.recordFailure(ctx, run, StepUpdateCounters, err)
}
