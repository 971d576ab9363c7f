package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/pos-backend/internal/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a lookup or mutation matches no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate")
)

type Users interface {
	Create(ctx context.Context, username, email, passwordHash, role string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type Transactions interface {
	ListByWorker(ctx context.Context, workerID string) ([]models.Transaction, error)
}

type Expenditures interface {
	ListByWorker(ctx context.Context, workerID string) ([]models.Expenditure, error)
}

// Shifts lookups return (nil, nil) when no row matches.
type Shifts interface {
	Active(ctx context.Context, workerID string) (*models.Shift, error)
	LastFinished(ctx context.Context, workerID string) (*models.Shift, error)
}

type Products interface {
	Create(ctx context.Context, name string, stock int, price decimal.Decimal, createdBy string) (models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id, name string, stock int, price decimal.Decimal) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

type Services interface {
	Create(ctx context.Context, name string, price decimal.Decimal, createdBy string) (models.Service, error)
	List(ctx context.Context) ([]models.Service, error)
	Update(ctx context.Context, id, name string, price decimal.Decimal) (models.Service, error)
	Delete(ctx context.Context, id string) error
}
