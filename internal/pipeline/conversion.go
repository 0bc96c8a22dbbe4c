package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/workflow"
)

// ConversionWriter persists the attributed conversion. The insert is keyed
// on (tenant, external event key), so repeated executions converge on one
// row.
type ConversionWriter struct {
	conversions port.ConversionRepository
	logger      *slog.Logger
	now         func() time.Time
}

func NewConversionWriter(conversions port.ConversionRepository, logger *slog.Logger) *ConversionWriter {
	return &ConversionWriter{
		conversions: conversions,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *ConversionWriter) Name() string { return StepWriteConversion }

func (s *ConversionWriter) Execute(ctx context.Context, run *workflow.Run) (any, error) {
	var own domain.Ownership
	if err := run.Output(StepResolveAttribution, &own); err != nil {
		return nil, workflow.Terminal(err)
	}
	env := run.Envelope

	occurred := env.ConversionAt
	if occurred.IsZero() {
		occurred = s.now()
	}
	fan := env.FanOfID
	if fan == "" {
		fan = env.FanUsername
	}

	conv, created, err := s.conversions.InsertOrGetConversion(ctx, domain.Conversion{
		ID:               uuid.NewString(),
		TenantID:         own.TenantID,
		CreatorID:        own.CreatorID,
		LinkID:           own.LinkID,
		ClickID:          own.ClickID,
		ExternalEventKey: env.ExternalEventKey,
		EventType:        env.EventType(),
		TransactionType:  env.TransactionType,
		AmountGrossCents: env.AmountGrossCents,
		AmountNetCents:   env.AmountNetCents,
		FanIdentifier:    fan,
		FanUsername:      env.FanUsername,
		OccurredAt:       occurred,
		CreatedAt:        s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert conversion: %w", err)
	}
	if !created {
		s.logger.Info("conversion already recorded",
			slog.String("run_id", run.ID), slog.String("conversion_id", conv.ID))
	}
	return conv, nil
}
