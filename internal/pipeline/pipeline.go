// Package pipeline implements the attribution workflow: resolving a
// postback to its owner, recording the conversion and fanning out the
// side effects.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/workflow"
)

// Step names double as ledger keys and side-effect adapter names.
const (
	StepResolveAttribution = "resolve_attribution"
	StepWriteConversion    = "write_conversion"
	StepNotifyAdPlatform   = "notify_ad_platform"
	StepFirePostback       = "fire_custom_postback"
	StepSendAlert          = "send_alert"
	StepUpdateCounters     = "update_counters"
)

// Deps are the collaborators of the attribution plan.
type Deps struct {
	Links       port.LinkRepository
	Tenants     port.TenantRepository
	Clicks      port.ClickRepository
	Conversions port.ConversionRepository
	Counters    port.CounterStore
	AdPlatform  port.AdPlatformClient
	Postbacks   port.PostbackClient
	Alerts      port.AlertNotifier
	// AlertThresholdCents applies to tenants without an override.
	AlertThresholdCents int64
	Logger              *slog.Logger
}

// NewPlan assembles the attribution workflow.
func NewPlan(d Deps) workflow.Plan {
	effects := sideEffects{conversions: d.Conversions, logger: d.Logger}
	return workflow.Plan{
		Sequential: []workflow.Step{
			NewAttributionResolver(d.Clicks, d.Links, d.Logger),
			NewConversionWriter(d.Conversions, d.Logger),
		},
		FanOut: []workflow.Step{
			&AdPlatformStep{sideEffects: effects, tenants: d.Tenants, client: d.AdPlatform},
			&PostbackStep{sideEffects: effects, links: d.Links, client: d.Postbacks},
			&AlertStep{sideEffects: effects, tenants: d.Tenants, notifier: d.Alerts, thresholdCents: d.AlertThresholdCents},
			&CounterStep{sideEffects: effects, counters: d.Counters, links: d.Links},
		},
	}
}

// SideEffectResult is the ledger output of a fan-out step.
type SideEffectResult struct {
	Status domain.SideEffectStatus `json:"status"`
	Detail string                  `json:"detail,omitempty"`
}

// sideEffects holds what all fan-out steps share: access to the written
// conversion and the per-adapter status record.
type sideEffects struct {
	conversions port.ConversionRepository
	logger      *slog.Logger
}

func (s sideEffects) conversion(run *workflow.Run) (domain.Conversion, error) {
	var conv domain.Conversion
	if err := run.Output(StepWriteConversion, &conv); err != nil {
		return conv, workflow.Terminal(err)
	}
	return conv, nil
}

// alreadySent reports whether an earlier execution delivered the side
// effect but died before the ledger recorded it.
func (s sideEffects) alreadySent(ctx context.Context, conv domain.Conversion, adapter string) bool {
	statuses, err := s.conversions.SideEffectStatuses(ctx, conv.ID)
	if err != nil {
		s.logger.Warn("reading side effect status", slog.String("conversion_id", conv.ID), slog.Any("error", err))
		return false
	}
	return statuses[adapter] == domain.SideEffectSent
}

// record stores the adapter outcome. The status table is advisory, the
// ledger is authoritative, so a failed write is logged instead of retried.
func (s sideEffects) record(ctx context.Context, conv domain.Conversion, adapter string, res SideEffectResult) SideEffectResult {
	if err := s.conversions.SetSideEffectStatus(ctx, conv.ID, adapter, res.Status, res.Detail); err != nil {
		s.logger.Warn("recording side effect status",
			slog.String("conversion_id", conv.ID),
			slog.String("adapter", adapter),
			slog.String("status", string(res.Status)),
			slog.Any("error", err))
	}
	return res
}

func (s sideEffects) recordFailure(ctx context.Context, run *workflow.Run, adapter string, cause error) error {
	var conv domain.Conversion
	if err := run.Output(StepWriteConversion, &conv); err != nil {
		return err
	}
	return s.conversions.SetSideEffectStatus(ctx, conv.ID, adapter, domain.SideEffectFailed, cause.Error())
}

func sent(detail string) SideEffectResult {
	return SideEffectResult{Status: domain.SideEffectSent, Detail: detail}
}

func skipped(detail string) SideEffectResult {
	return SideEffectResult{Status: domain.SideEffectSkipped, Detail: detail}
}

// FormatCents renders cents as a decimal amount, e.g. 7500 -> "75.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s.%02d", sign, strconv.FormatInt(cents/100, 10), cents%100)
}
