package postgres

import (
	"context"

	"github.com/baharkarakas/pos-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type transactionsRepo struct{ pool *pgxpool.Pool }

// ListByWorker returns every sale of the worker. total is read as text and
// NULL becomes "", so the caller sees bad rows instead of a scan failure.
func (r *transactionsRepo) ListByWorker(ctx context.Context, workerID string) ([]models.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id::text, worker_id::text, COALESCE(total::text, ''), created_at
		   FROM transactions
		  WHERE worker_id=$1
		  ORDER BY created_at`,
		workerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.WorkerID, &tx.Total, &tx.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}
