package postgres

import (
	"context"

	"github.com/baharkarakas/pos-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type expendituresRepo struct{ pool *pgxpool.Pool }

func (r *expendituresRepo) ListByWorker(ctx context.Context, workerID string) ([]models.Expenditure, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id::text, worker_id::text, COALESCE(amount::text, ''), COALESCE(description, ''), created_at
		   FROM expenditures
		  WHERE worker_id=$1
		  ORDER BY created_at`,
		workerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Expenditure
	for rows.Next() {
		var e models.Expenditure
		if err := rows.Scan(&e.ID, &e.WorkerID, &e.Amount, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
