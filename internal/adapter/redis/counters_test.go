package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartlink/internal/core/port"
)

func newTestStore(t *testing.T) (*CounterStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewCounterStore(client, 90*24*time.Hour), mr
}

func TestRecordConversionCountsOnce(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 4, 22, 30, 0, 0, time.UTC)

	inc := port.CounterIncrement{TenantID: "t1", ConversionID: "c1", Day: day, RevenueCents: 1999, Subscriber: true}
	applied, err := store.RecordConversion(ctx, inc)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = store.RecordConversion(ctx, inc)
	require.NoError(t, err)
	assert.False(t, applied, "retried step must not double count")

	_, err = store.RecordConversion(ctx, port.CounterIncrement{TenantID: "t1", ConversionID: "c2", Day: day, RevenueCents: 500})
	require.NoError(t, err)

	stats, err := store.DailyStats(ctx, "t1", day)
	require.NoError(t, err)
	assert.Equal(t, port.DailyStats{TenantID: "t1", Date: "2025-03-04", Conversions: 2, RevenueCents: 2499, Subscribers: 1}, stats)

	assert.True(t, mr.Exists("tenant:t1:stats:2025-03-04"))
	assert.Greater(t, mr.TTL("tenant:t1:stats:2025-03-04"), time.Duration(0))
	assert.Greater(t, mr.TTL("counted:c1"), time.Duration(0))
}

func TestRecordConversionFailureLeavesNothingCounted(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	inc := port.CounterIncrement{TenantID: "t1", ConversionID: "c1", Day: day, RevenueCents: 700}

	// A key of the wrong type makes the script fail.
	require.NoError(t, mr.Set("tenant:t1:stats:2025-03-04", "not a hash"))
	_, err := store.RecordConversion(ctx, inc)
	require.Error(t, err)
	assert.False(t, mr.Exists("counted:c1"), "a failed attempt must stay retryable")

	mr.Del("tenant:t1:stats:2025-03-04")
	applied, err := store.RecordConversion(ctx, inc)
	require.NoError(t, err)
	assert.True(t, applied)

	stats, err := store.DailyStats(ctx, "t1", day)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Conversions)
	assert.Equal(t, int64(700), stats.RevenueCents)
}

func TestDailyStatsEmptyDay(t *testing.T) {
	store, _ := newTestStore(t)

	stats, err := store.DailyStats(context.Background(), "t9", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, port.DailyStats{TenantID: "t9", Date: "2025-01-01"}, stats)
}

func TestStoreUnavailable(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	assert.Error(t, store.Ping(context.Background()))
	_, err := store.RecordConversion(context.Background(), port.CounterIncrement{TenantID: "t1", ConversionID: "c1", Day: time.Now()})
	assert.Error(t, err)
}

func TestConnectParsesURL(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer client.Close()
	assert.NoError(t, client.Ping(context.Background()).Err())

	_, err = Connect(context.Background(), "redis://localhost:6379/notanumber")
	assert.Error(t, err)
}
