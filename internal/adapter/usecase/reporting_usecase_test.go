package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/core/port/mocks"
)

func TestGetRun(t *testing.T) {
	runs := mocks.NewMockWorkflowRepository(t)
	u := NewReportingUseCase(runs, mocks.NewMockCounterStore(t))

	run := &domain.WorkflowRun{RunID: "r1", Status: domain.RunSucceeded}
	runs.EXPECT().GetRun(mock.Anything, "r1").Return(run, nil)
	runs.EXPECT().GetRun(mock.Anything, "r2").Return(nil, nil)
	runs.EXPECT().GetRun(mock.Anything, "r3").Return(nil, errors.New("timeout"))

	got, err := u.GetRun(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, run, got)

	_, err = u.GetRun(context.Background(), "r2")
	assert.ErrorIs(t, err, port.ErrRunNotFound)

	_, err = u.GetRun(context.Background(), "r3")
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrRunNotFound)
}

func TestDailyStatsUsesUTCDay(t *testing.T) {
	counters := mocks.NewMockCounterStore(t)
	u := NewReportingUseCase(mocks.NewMockWorkflowRepository(t), counters)

	local := time.Date(2026, 5, 1, 1, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	want := port.DailyStats{TenantID: "t1", Date: "2026-04-30", Conversions: 3, RevenueCents: 12000}
	counters.EXPECT().DailyStats(mock.Anything, "t1", local.UTC()).Return(want, nil)

	got, err := u.DailyStats(context.Background(), "t1", local)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
