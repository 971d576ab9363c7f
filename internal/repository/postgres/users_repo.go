package postgres

import (
	"context"

	"github.com/baharkarakas/pos-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usersRepo struct{ pool *pgxpool.Pool }

const userCols = `id::text, username, email, password_hash, role, active, created_at, updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	return u, mapErr(err)
}

func (r *usersRepo) Create(ctx context.Context, username, email, hash, role string) (models.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`INSERT INTO users(id, username, email, password_hash, role, active)
		 VALUES($1,$2,$3,$4,$5,true)
		 RETURNING `+userCols,
		uuid.NewString(), username, email, hash, role,
	))
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id=$1`, id))
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE lower(email)=lower($1)`, email))
}

func (r *usersRepo) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userCols+` FROM users WHERE role=$1 ORDER BY username`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) SetActive(ctx context.Context, id string, active bool) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE users SET active=$2, updated_at=now() WHERE id=$1`, id, active))
}

func (r *usersRepo) Delete(ctx context.Context, id string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id))
}
