package postgres

import (
	"context"

	"github.com/baharkarakas/pos-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Prices travel as text in both directions so no numeric codec is needed.

type productsRepo struct{ pool *pgxpool.Pool }

const productCols = `id::text, name, stock, price::text, created_by::text, created_at`

func scanProduct(row pgx.Row) (models.Product, error) {
	var (
		p     models.Product
		price string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Stock, &price, &p.CreatedBy, &p.CreatedAt); err != nil {
		return models.Product{}, mapErr(err)
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return models.Product{}, err
	}
	p.Price = d
	return p, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *productsRepo) Create(ctx context.Context, name string, stock int, price decimal.Decimal, createdBy string) (models.Product, error) {
	return scanProduct(r.pool.QueryRow(ctx,
		`INSERT INTO products(id, name, stock, price, created_by)
		 VALUES($1,$2,$3,$4::numeric,$5)
		 RETURNING `+productCols,
		uuid.NewString(), name, stock, price.String(), nullable(createdBy),
	))
}

func (r *productsRepo) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productCols+` FROM products ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *productsRepo) Update(ctx context.Context, id, name string, stock int, price decimal.Decimal) (models.Product, error) {
	return scanProduct(r.pool.QueryRow(ctx,
		`UPDATE products SET name=$2, stock=$3, price=$4::numeric
		  WHERE id=$1
		  RETURNING `+productCols,
		id, name, stock, price.String(),
	))
}

func (r *productsRepo) Delete(ctx context.Context, id string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id))
}

type servicesRepo struct{ pool *pgxpool.Pool }

const serviceCols = `id::text, name, price::text, created_by::text, created_at`

func scanService(row pgx.Row) (models.Service, error) {
	var (
		s     models.Service
		price string
	)
	if err := row.Scan(&s.ID, &s.Name, &price, &s.CreatedBy, &s.CreatedAt); err != nil {
		return models.Service{}, mapErr(err)
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return models.Service{}, err
	}
	s.Price = d
	return s, nil
}

func (r *servicesRepo) Create(ctx context.Context, name string, price decimal.Decimal, createdBy string) (models.Service, error) {
	return scanService(r.pool.QueryRow(ctx,
		`INSERT INTO services(id, name, price, created_by)
		 VALUES($1,$2,$3::numeric,$4)
		 RETURNING `+serviceCols,
		uuid.NewString(), name, price.String(), nullable(createdBy),
	))
}

func (r *servicesRepo) List(ctx context.Context) ([]models.Service, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+serviceCols+` FROM services ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *servicesRepo) Update(ctx context.Context, id, name string, price decimal.Decimal) (models.Service, error) {
	return scanService(r.pool.QueryRow(ctx,
		`UPDATE services SET name=$2, price=$3::numeric
		  WHERE id=$1
		  RETURNING `+serviceCols,
		id, name, price.String(),
	))
}

func (r *servicesRepo) Delete(ctx context.Context, id string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM services WHERE id=$1`, id))
}
