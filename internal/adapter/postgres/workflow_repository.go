package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// WorkflowRepository implements port.WorkflowRepository and
// port.DeadLetterRepository. Every state transition is a single
// conditional UPDATE, so the row itself arbitrates between workers.
type WorkflowRepository struct {
	pool *pgxpool.Pool
}

func NewWorkflowRepository(pool *pgxpool.Pool) *WorkflowRepository {
	return &WorkflowRepository{pool: pool}
}

// CreateOrGetRun inserts the run and its pending steps in one transaction.
func (r *WorkflowRepository) CreateOrGetRun(ctx context.Context, run domain.WorkflowRun, steps []string) (domain.WorkflowRun, bool, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.WorkflowRun{}, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `INSERT INTO workflow_runs (run_id, external_event_key, payload, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$5)
ON CONFLICT (run_id) DO NOTHING`,
		run.RunID, run.ExternalEventKey, run.Payload, string(run.Status), run.CreatedAt)
	if err != nil {
		return domain.WorkflowRun{}, false, err
	}
	created := tag.RowsAffected() == 1
	if created {
		for i, name := range steps {
			_, err = tx.Exec(ctx, `INSERT INTO workflow_steps (run_id, step_name, position, state, updated_at)
VALUES ($1,$2,$3,'pending',$4)`, run.RunID, name, i, run.CreatedAt)
			if err != nil {
				return domain.WorkflowRun{}, false, err
			}
		}
	}

	stored, err := loadRun(ctx, tx, run.RunID)
	if err != nil {
		return domain.WorkflowRun{}, false, err
	}
	if stored == nil {
		err = fmt.Errorf("run %s vanished during creation", run.RunID)
		return domain.WorkflowRun{}, false, err
	}
	if err = tx.Commit(ctx); err != nil {
		return domain.WorkflowRun{}, false, err
	}
	return *stored, created, nil
}

func (r *WorkflowRepository) GetRun(ctx context.Context, runID string) (*domain.WorkflowRun, error) {
	return loadRun(ctx, r.pool, runID)
}

const runColumns = `run_id, external_event_key, payload, status, created_at, updated_at, completed_at`

func scanRun(row pgx.Row) (domain.WorkflowRun, error) {
	var (
		run     domain.WorkflowRun
		payload []byte
		status  string
	)
	err := row.Scan(&run.RunID, &run.ExternalEventKey, &payload, &status, &run.CreatedAt, &run.UpdatedAt, &run.CompletedAt)
	run.Payload = payload
	run.Status = domain.RunStatus(status)
	return run, err
}

func loadRun(ctx context.Context, q querier, runID string) (*domain.WorkflowRun, error) {
	run, err := scanRun(q.QueryRow(ctx, `SELECT `+runColumns+` FROM workflow_runs WHERE run_id = $1`, runID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	steps, err := loadSteps(ctx, q, []string{runID})
	if err != nil {
		return nil, err
	}
	run.Steps = steps[runID]
	return &run, nil
}

const stepColumns = `run_id, step_name, state, attempts, last_error, output, lease_expires_at, updated_at`

func scanStep(row pgx.Row) (domain.StepRecord, error) {
	var (
		rec    domain.StepRecord
		state  string
		output []byte
	)
	err := row.Scan(&rec.RunID, &rec.Name, &state, &rec.Attempts, &rec.LastError, &output, &rec.LeaseExpiresAt, &rec.UpdatedAt)
	rec.State = domain.StepState(state)
	if len(output) > 0 {
		rec.Output = output
	}
	return rec, err
}

func loadSteps(ctx context.Context, q querier, runIDs []string) (map[string]map[string]domain.StepRecord, error) {
	rows, err := q.Query(ctx, `SELECT `+stepColumns+` FROM workflow_steps
WHERE run_id = ANY($1) ORDER BY run_id, position`, runIDs)
	if err != nil {
		return nil, err
	}
	recs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StepRecord, error) {
		return scanStep(row)
	})
	if err != nil {
		return nil, err
	}
	out := make(map[string]map[string]domain.StepRecord, len(runIDs))
	for _, rec := range recs {
		if out[rec.RunID] == nil {
			out[rec.RunID] = make(map[string]domain.StepRecord)
		}
		out[rec.RunID][rec.Name] = rec
	}
	return out, nil
}

// ClaimStep takes the step when it is pending, failed_retryable or
// running under an expired lease, and touches the run so recovery sees
// progress.
func (r *WorkflowRepository) ClaimStep(ctx context.Context, runID, step string, now, leaseUntil time.Time) (domain.StepRecord, bool, error) {
	rec, err := scanStep(r.pool.QueryRow(ctx, `WITH claimed AS (
    UPDATE workflow_steps
    SET state = 'running', attempts = attempts + 1, lease_expires_at = $4, updated_at = $3
    WHERE run_id = $1 AND step_name = $2
      AND (state IN ('pending', 'failed_retryable')
           OR (state = 'running' AND lease_expires_at <= $3))
    RETURNING `+stepColumns+`
), touched AS (
    UPDATE workflow_runs SET updated_at = $3
    WHERE run_id = $1 AND EXISTS (SELECT 1 FROM claimed)
)
SELECT `+stepColumns+` FROM claimed`, runID, step, now, leaseUntil))
	if err == nil {
		return rec, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.StepRecord{}, false, err
	}

	rec, err = scanStep(r.pool.QueryRow(ctx, `SELECT `+stepColumns+` FROM workflow_steps
WHERE run_id = $1 AND step_name = $2`, runID, step))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.StepRecord{}, false, fmt.Errorf("step %s of run %s does not exist", step, runID)
	}
	if err != nil {
		return domain.StepRecord{}, false, err
	}
	return rec, false, nil
}

func (r *WorkflowRepository) CompleteStep(ctx context.Context, runID, step string, attempt int, output json.RawMessage) error {
	tag, err := r.pool.Exec(ctx, `WITH done AS (
    UPDATE workflow_steps
    SET state = 'succeeded', output = $4, last_error = '', lease_expires_at = NULL, updated_at = now()
    WHERE run_id = $1 AND step_name = $2 AND state = 'running' AND attempts = $3
    RETURNING run_id
)
UPDATE workflow_runs SET updated_at = now() WHERE run_id IN (SELECT run_id FROM done)`,
		runID, step, attempt, output)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("complete step %s of run %s attempt %d: %w", step, runID, attempt, port.ErrStepNotOwned)
	}
	return nil
}

func (r *WorkflowRepository) FailStep(ctx context.Context, runID, step string, attempt int, lastErr string, terminal bool) error {
	state := domain.StepFailedRetryable
	if terminal {
		state = domain.StepFailedTerminal
	}
	tag, err := r.pool.Exec(ctx, `WITH failed AS (
    UPDATE workflow_steps
    SET state = $4, last_error = $5, lease_expires_at = NULL, updated_at = now()
    WHERE run_id = $1 AND step_name = $2 AND state = 'running' AND attempts = $3
    RETURNING run_id
)
UPDATE workflow_runs SET updated_at = now() WHERE run_id IN (SELECT run_id FROM failed)`,
		runID, step, attempt, string(state), lastErr)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("fail step %s of run %s attempt %d: %w", step, runID, attempt, port.ErrStepNotOwned)
	}
	return nil
}

func (r *WorkflowRepository) FinishRun(ctx context.Context, runID string, status domain.RunStatus, at time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE workflow_runs
SET status = $2, updated_at = $3, completed_at = $3
WHERE run_id = $1 AND status = 'running'`, runID, string(status), at)
	return err
}

func (r *WorkflowRepository) ListStaleRuns(ctx context.Context, before time.Time, limit int) ([]domain.WorkflowRun, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+runColumns+` FROM workflow_runs
WHERE status = 'running' AND updated_at < $1
ORDER BY updated_at
LIMIT NULLIF($2::int, 0)`, before, limit)
	if err != nil {
		return nil, err
	}
	runs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WorkflowRun, error) {
		return scanRun(row)
	})
	if err != nil || len(runs) == 0 {
		return runs, err
	}

	ids := make([]string, len(runs))
	for i, run := range runs {
		ids[i] = run.RunID
	}
	steps, err := loadSteps(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range runs {
		runs[i].Steps = steps[runs[i].RunID]
	}
	return runs, nil
}

// CreateDeadLetter stores at most one dead letter per run.
func (r *WorkflowRepository) CreateDeadLetter(ctx context.Context, dl domain.DeadLetter) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO dead_letters (id, run_id, external_event_key, step_name, reason, payload, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (run_id) DO NOTHING`,
		dl.ID, dl.RunID, dl.ExternalEventKey, dl.StepName, dl.Reason, dl.Payload, dl.CreatedAt)
	return err
}
