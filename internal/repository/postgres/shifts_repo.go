package postgres

import (
	"context"
	"errors"

	"github.com/baharkarakas/pos-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type shiftsRepo struct{ pool *pgxpool.Pool }

const shiftCols = `id::text, worker_id::text, start_time, end_time, duration_ms, active, created_at`

// queryOne treats "no row" as absence; every other error is returned.
func (r *shiftsRepo) queryOne(ctx context.Context, q string, args ...any) (*models.Shift, error) {
	var s models.Shift
	err := r.pool.QueryRow(ctx, q, args...).
		Scan(&s.ID, &s.WorkerID, &s.StartTime, &s.EndTime, &s.DurationMS, &s.Active, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *shiftsRepo) Active(ctx context.Context, workerID string) (*models.Shift, error) {
	return r.queryOne(ctx,
		`SELECT `+shiftCols+`
		   FROM worker_shifts
		  WHERE worker_id=$1 AND active
		  ORDER BY start_time DESC
		  LIMIT 1`,
		workerID)
}

func (r *shiftsRepo) LastFinished(ctx context.Context, workerID string) (*models.Shift, error) {
	return r.queryOne(ctx,
		`SELECT `+shiftCols+`
		   FROM worker_shifts
		  WHERE worker_id=$1 AND NOT active
		  ORDER BY created_at DESC
		  LIMIT 1`,
		workerID)
}
