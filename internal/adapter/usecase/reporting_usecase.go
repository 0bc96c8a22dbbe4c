package usecase

import (
	"context"
	"fmt"
	"time"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
)

// ReportingUseCase serves operator read models: workflow runs from the
// ledger and daily counters from the counter store.
type ReportingUseCase struct {
	runs     port.WorkflowRepository
	counters port.CounterStore
}

// NewReportingUseCase creates a reporting use case.
func NewReportingUseCase(runs port.WorkflowRepository, counters port.CounterStore) *ReportingUseCase {
	return &ReportingUseCase{runs: runs, counters: counters}
}

// GetRun returns a run with its steps or port.ErrRunNotFound.
func (u *ReportingUseCase) GetRun(ctx context.Context, runID string) (*domain.WorkflowRun, error) {
	run, err := u.runs.GetRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", runID, err)
	}
	if run == nil {
		return nil, port.ErrRunNotFound
	}
	return run, nil
}

// DailyStats returns a tenant's counters for the UTC day containing day.
func (u *ReportingUseCase) DailyStats(ctx context.Context, tenantID string, day time.Time) (port.DailyStats, error) {
	stats, err := u.counters.DailyStats(ctx, tenantID, day.UTC())
	if err != nil {
		return port.DailyStats{}, fmt.Errorf("daily stats for tenant %s: %w", tenantID, err)
	}
	return stats, nil
}
