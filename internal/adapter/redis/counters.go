// Package redis keeps per-tenant daily conversion counters.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"smartlink/internal/core/port"
)

const (
	fieldConversions = "conversions"
	fieldRevenue     = "revenue_cents"
	fieldSubscribers = "subscribers"
)

// recordScript counts a conversion at most once. The marker is written
// last, so a script aborted by an error leaves nothing counted and the
// caller can retry.
//
// KEYS: marker, daily hash. ARGV: tenant id, retention ms, revenue cents,
// subscriber flag.
var recordScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  return 0
end
redis.call('HINCRBY', KEYS[2], '` + fieldConversions + `', 1)
redis.call('HINCRBY', KEYS[2], '` + fieldRevenue + `', ARGV[3])
if ARGV[4] == '1' then
  redis.call('HINCRBY', KEYS[2], '` + fieldSubscribers + `', 1)
end
redis.call('PEXPIRE', KEYS[2], ARGV[2])
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
return 1
`)

// Connect returns a client for addr, which may be a redis:// URL or a
// plain host:port pair.
func Connect(_ context.Context, addr string) (*goredis.Client, error) {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := goredis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return goredis.NewClient(opt), nil
	}
	return goredis.NewClient(&goredis.Options{Addr: addr}), nil
}

// CounterStore implements port.CounterStore.
type CounterStore struct {
	client    *goredis.Client
	retention time.Duration
}

func NewCounterStore(client *goredis.Client, retention time.Duration) *CounterStore {
	if retention < time.Millisecond {
		retention = 90 * 24 * time.Hour
	}
	return &CounterStore{client: client, retention: retention}
}

func statsKey(tenantID string, day time.Time) string {
	return fmt.Sprintf("tenant:%s:stats:%s", tenantID, day.UTC().Format(time.DateOnly))
}

func countedKey(conversionID string) string {
	return "counted:" + conversionID
}

// RecordConversion increments the daily hash and writes the conversion's
// marker in one script. It reports false when the marker already exists,
// i.e. an earlier attempt counted the conversion.
func (s *CounterStore) RecordConversion(ctx context.Context, inc port.CounterIncrement) (bool, error) {
	subscriber := "0"
	if inc.Subscriber {
		subscriber = "1"
	}
	n, err := recordScript.Run(ctx, s.client,
		[]string{countedKey(inc.ConversionID), statsKey(inc.TenantID, inc.Day)},
		inc.TenantID, s.retention.Milliseconds(), inc.RevenueCents, subscriber,
	).Int()
	if err != nil {
		return false, fmt.Errorf("record conversion %s: %w", inc.ConversionID, err)
	}
	return n == 1, nil
}

func (s *CounterStore) DailyStats(ctx context.Context, tenantID string, day time.Time) (port.DailyStats, error) {
	stats := port.DailyStats{TenantID: tenantID, Date: day.UTC().Format(time.DateOnly)}
	values, err := s.client.HGetAll(ctx, statsKey(tenantID, day)).Result()
	if err != nil {
		return stats, fmt.Errorf("read counters: %w", err)
	}
	for field, dst := range map[string]*int64{
		fieldConversions: &stats.Conversions,
		fieldRevenue:     &stats.RevenueCents,
		fieldSubscribers: &stats.Subscribers,
	} {
		raw, ok := values[field]
		if !ok {
			continue
		}
		if *dst, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return stats, fmt.Errorf("parse %s: %w", field, err)
		}
	}
	return stats, nil
}

func (s *CounterStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
