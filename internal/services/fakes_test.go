package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/baharkarakas/pos-backend/internal/models"
	repo "github.com/baharkarakas/pos-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fakeTransactions struct {
	rows  map[string][]models.Transaction
	err   error
	calls int
	mu    sync.Mutex
}

func (f *fakeTransactions) ListByWorker(ctx context.Context, workerID string) ([]models.Transaction, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[workerID], nil
}

type fakeExpenditures struct {
	rows  map[string][]models.Expenditure
	err   error
	calls int
	mu    sync.Mutex
}

func (f *fakeExpenditures) ListByWorker(ctx context.Context, workerID string) ([]models.Expenditure, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[workerID], nil
}

func sales(workerID string, totals ...string) []models.Transaction {
	out := make([]models.Transaction, 0, len(totals))
	for _, t := range totals {
		out = append(out, models.Transaction{ID: uuid.NewString(), WorkerID: workerID, Total: t})
	}
	return out
}

func spends(workerID string, amounts ...string) []models.Expenditure {
	out := make([]models.Expenditure, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, models.Expenditure{ID: uuid.NewString(), WorkerID: workerID, Amount: a})
	}
	return out
}

type fakeUsers struct {
	mu      sync.Mutex
	byID    map[string]models.User
	listErr error
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{byID: map[string]models.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(ctx context.Context, username, email, hash, role string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if strings.EqualFold(u.Email, email) {
			return models.User{}, repo.ErrDuplicate
		}
	}
	u := models.User{ID: uuid.NewString(), Username: username, Email: email, PasswordHash: hash, Role: role, Active: true}
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (f *fakeUsers) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.byID {
		if u.Role == role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (f *fakeUsers) SetActive(ctx context.Context, id string, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.Active = active
	f.byID[id] = u
	return nil
}

func (f *fakeUsers) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeShifts struct {
	active map[string]*models.Shift
	last   map[string]*models.Shift
	err    error
}

func (f *fakeShifts) Active(ctx context.Context, workerID string) (*models.Shift, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.active[workerID], nil
}

func (f *fakeShifts) LastFinished(ctx context.Context, workerID string) (*models.Shift, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.last[workerID], nil
}

type fakeProducts struct {
	items map[string]models.Product
	err   error
}

func (f *fakeProducts) Create(ctx context.Context, name string, stock int, price decimal.Decimal, createdBy string) (models.Product, error) {
	p := models.Product{ID: uuid.NewString(), Name: name, Stock: stock, Price: price}
	if createdBy != "" {
		p.CreatedBy = &createdBy
	}
	f.items[p.ID] = p
	return p, nil
}

func (f *fakeProducts) List(ctx context.Context) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Product
	for _, p := range f.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeProducts) Update(ctx context.Context, id, name string, stock int, price decimal.Decimal) (models.Product, error) {
	p, ok := f.items[id]
	if !ok {
		return models.Product{}, repo.ErrNotFound
	}
	p.Name, p.Stock, p.Price = name, stock, price
	f.items[id] = p
	return p, nil
}

func (f *fakeProducts) Delete(ctx context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeServices struct {
	items map[string]models.Service
}

func (f *fakeServices) Create(ctx context.Context, name string, price decimal.Decimal, createdBy string) (models.Service, error) {
	s := models.Service{ID: uuid.NewString(), Name: name, Price: price}
	f.items[s.ID] = s
	return s, nil
}

func (f *fakeServices) List(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeServices) Update(ctx context.Context, id, name string, price decimal.Decimal) (models.Service, error) {
	s, ok := f.items[id]
	if !ok {
		return models.Service{}, repo.ErrNotFound
	}
	s.Name, s.Price = name, price
	f.items[id] = s
	return s, nil
}

func (f *fakeServices) Delete(ctx context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.items, id)
	return nil
}
