package postgres

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartlink/internal/config/configs"
	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/db"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set (integration test)")
	}
	_, err := db.Migrate(addr)
	require.NoError(t, err)

	u, err := url.Parse(addr)
	require.NoError(t, err)
	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedLink(t *testing.T, pool *pgxpool.Pool) domain.Link {
	t.Helper()
	ctx := context.Background()
	suffix := uuid.NewString()[:8]
	link := domain.Link{
		ID: "link-" + suffix, TenantID: "tenant-" + suffix, CreatorID: "creator",
		ExternalID: "ext-" + suffix, TrackingURL: "https://example.com/c", IsActive: true,
	}
	_, err := pool.Exec(ctx, `INSERT INTO tenants (id, name) VALUES ($1, 'Acme')`, link.TenantID)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO links (id, tenant_id, creator_id, external_id, tracking_url)
VALUES ($1,$2,$3,$4,$5)`, link.ID, link.TenantID, link.CreatorID, link.ExternalID, link.TrackingURL)
	require.NoError(t, err)
	return link
}

func TestLinkRepository(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	link := seedLink(t, pool)
	repo := NewLinkRepository(pool)

	got, err := repo.FindLinkByRef(ctx, link.ExternalID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, link.ID, got.ID)

	missing, err := repo.GetLink(ctx, "nope-"+link.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.IncrementLinkClicks(ctx, link.ID))
	require.NoError(t, repo.AddConversionTotals(ctx, link.ID, 1999))
	got, err = repo.GetLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.TotalClicks)
	assert.Equal(t, int64(1), got.TotalConversions)
	assert.Equal(t, int64(1999), got.TotalRevenueCents)

	tenant, err := repo.GetTenant(ctx, link.TenantID)
	require.NoError(t, err)
	require.NotNil(t, tenant)
	assert.Nil(t, tenant.AlertThresholdCents)
}

func TestInsertOrGetConversionIsAtomic(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	link := seedLink(t, pool)
	repo := NewConversionRepository(pool)

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		ids     = map[string]struct{}{}
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conv, ok, err := repo.InsertOrGetConversion(ctx, domain.Conversion{
				ID: uuid.NewString(), TenantID: link.TenantID, CreatorID: link.CreatorID, LinkID: link.ID,
				ExternalEventKey: "tx:race", EventType: domain.EventPurchase, AmountNetCents: 100,
				OccurredAt: time.Now().UTC(),
			})
			assert.NoError(t, err)
			mu.Lock()
			defer mu.Unlock()
			if ok {
				created++
			}
			ids[conv.ID] = struct{}{}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Len(t, ids, 1, "every caller sees the same row")

	var convID string
	for id := range ids {
		convID = id
	}
	stored, err := repo.GetConversion(ctx, convID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "tx:race", stored.ExternalEventKey)
	missing, err := repo.GetConversion(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.SetSideEffectStatus(ctx, convID, "ad_platform", domain.SideEffectSent, ""))
	require.NoError(t, repo.SetSideEffectStatus(ctx, convID, "ad_platform", domain.SideEffectFailed, "late retry"))
	statuses, err := repo.SideEffectStatuses(ctx, convID)
	require.NoError(t, err)
	assert.Equal(t, domain.SideEffectSent, statuses["ad_platform"])
}

func TestClaimStepOnlyOneWorkerWins(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewWorkflowRepository(pool)
	now := time.Now().UTC()

	run := domain.WorkflowRun{
		RunID: uuid.NewString(), ExternalEventKey: "ev:" + uuid.NewString(),
		Payload: json.RawMessage(`{"a":1}`), Status: domain.RunRunning, CreatedAt: now,
	}
	stored, created, err := repo.CreateOrGetRun(ctx, run, []string{"first", "second"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, stored.Steps, 2)

	_, created, err = repo.CreateOrGetRun(ctx, run, []string{"first", "second"})
	require.NoError(t, err)
	assert.False(t, created)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok, err := repo.ClaimStep(ctx, run.RunID, "first", now, now.Add(time.Minute))
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)

	require.NoError(t, repo.CompleteStep(ctx, run.RunID, "first", 1, json.RawMessage(`{"ok":true}`)))
	rec, claimed, err := repo.ClaimStep(ctx, run.RunID, "first", now, now.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Equal(t, domain.StepSucceeded, rec.State)
	assert.JSONEq(t, `{"ok":true}`, string(rec.Output))

	// An expired lease can be taken over.
	_, ok, err := repo.ClaimStep(ctx, run.RunID, "second", now, now.Add(-time.Second))
	require.NoError(t, err)
	require.True(t, ok)
	rec, ok, err = repo.ClaimStep(ctx, run.RunID, "second", now, now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, rec.Attempts)

	// The first claimant lost its lease and can no longer finish the step.
	require.ErrorIs(t, repo.FailStep(ctx, run.RunID, "second", 1, "late", false), port.ErrStepNotOwned)
	require.NoError(t, repo.FailStep(ctx, run.RunID, "second", rec.Attempts, "boom", true))
	require.ErrorIs(t, repo.CompleteStep(ctx, run.RunID, "second", rec.Attempts, json.RawMessage(`null`)), port.ErrStepNotOwned)
	require.NoError(t, repo.FinishRun(ctx, run.RunID, domain.RunFailed, now))
	require.NoError(t, repo.FinishRun(ctx, run.RunID, domain.RunSucceeded, now), "no-op on finished run")

	got, err := repo.GetRun(ctx, run.RunID)
	require.NoError(t, err)
	assert.Equal(t, domain.RunFailed, got.Status)
	assert.Equal(t, domain.StepFailedTerminal, got.Steps["second"].State)
	assert.Equal(t, "boom", got.Steps["second"].LastError)

	dl := domain.DeadLetter{ID: uuid.NewString(), RunID: run.RunID, ExternalEventKey: run.ExternalEventKey,
		StepName: "second", Reason: "boom", Payload: run.Payload, CreatedAt: now}
	require.NoError(t, repo.CreateDeadLetter(ctx, dl))
	dl.ID = uuid.NewString()
	require.NoError(t, repo.CreateDeadLetter(ctx, dl))
	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM dead_letters WHERE run_id = $1`, run.RunID).Scan(&n))
	assert.Equal(t, 1, n)
}
