package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/baharkarakas/pos-backend/internal/api/validate"
	"github.com/baharkarakas/pos-backend/internal/auth"
	"github.com/baharkarakas/pos-backend/internal/models"
	repo "github.com/baharkarakas/pos-backend/internal/repository"
	"github.com/baharkarakas/pos-backend/internal/worker"
)

const collShifts = "worker_shifts"

type WorkerService struct {
	users  repo.Users
	shifts repo.Shifts
	fin    *FinancialsService
	wp     *worker.Pool
	now    func() time.Time
}

func NewWorkerService(u repo.Users, sh repo.Shifts, fin *FinancialsService, wp *worker.Pool) *WorkerService {
	return &WorkerService{users: u, shifts: sh, fin: fin, wp: wp, now: time.Now}
}

// ----------------- Accounts -----------------

func (s *WorkerService) AddWorker(ctx context.Context, username, email, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if err := validate.Collect(
		validate.MinLen("username", username, 3),
		validate.Email("email", email),
		validate.MinLen("password", password, auth.MinPasswordLen),
	); err != nil {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	u, err := s.users.Create(ctx, username, email, hash, models.RoleWorker)
	if errors.Is(err, repo.ErrDuplicate) {
		return models.User{}, ErrConflict
	}
	return u, err
}

// EnsureAdmin creates the bootstrap admin unless an account with that email
// already exists.
func (s *WorkerService) EnsureAdmin(ctx context.Context, username, email, password string) (bool, error) {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return false, err
	}

	u := models.User{Username: username, Email: email, Role: models.RoleAdmin}
	if err := u.Validate(); err != nil {
		return false, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}
	if _, err := s.users.Create(ctx, u.Username, u.Email, hash, u.Role); err != nil {
		return false, err
	}
	return true, nil
}

func (s *WorkerService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if !auth.PasswordMatches(password, u.PasswordHash) {
		return models.User{}, ErrInvalidCredentials
	}
	if !u.Active {
		return models.User{}, ErrInactive
	}
	return u, nil
}

// ActiveUser loads a user for token refresh; disabled accounts are refused.
func (s *WorkerService) ActiveUser(ctx context.Context, id string) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	if !u.Active {
		return models.User{}, ErrInactive
	}
	return u, nil
}

func (s *WorkerService) getWorker(ctx context.Context, id string) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	if u.Role != models.RoleWorker {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

// ToggleStatus flips the worker between enabled and disabled.
func (s *WorkerService) ToggleStatus(ctx context.Context, id string) (models.User, error) {
	u, err := s.getWorker(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if err := s.users.SetActive(ctx, id, !u.Active); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	u.Active = !u.Active
	return u, nil
}

// DeleteWorker removes the account. Shifts go with it; recorded sales and
// expenditures stay.
func (s *WorkerService) DeleteWorker(ctx context.Context, id string) error {
	if _, err := s.getWorker(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ----------------- Overviews -----------------

// ListOverviews returns every worker, ordered by username, with balance and
// shift information. Workers are processed on the pool; the first failure
// is returned and no partial list is produced.
func (s *WorkerService) ListOverviews(ctx context.Context) ([]models.WorkerOverview, error) {
	users, err := s.users.ListByRole(ctx, models.RoleWorker)
	if err != nil {
		return nil, dataSource("users", err)
	}

	out := make([]models.WorkerOverview, len(users))
	errs := make([]error, len(users))
	var wg sync.WaitGroup
	for i := range users {
		i := i
		wg.Add(1)
		s.wp.Submit(func() {
			defer wg.Done()
			out[i], errs[i] = s.overview(ctx, users[i])
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *WorkerService) overview(ctx context.Context, u models.User) (models.WorkerOverview, error) {
	if err := ctx.Err(); err != nil {
		return models.WorkerOverview{}, err
	}
	bal, err := s.fin.ComputeBalance(ctx, u.ID)
	if err != nil {
		return models.WorkerOverview{}, err
	}
	ov := models.WorkerOverview{User: u, Balance: bal}

	active, err := s.shifts.Active(ctx, u.ID)
	if err != nil {
		return models.WorkerOverview{}, dataSource(collShifts, err)
	}
	if active != nil {
		d := s.now().Sub(active.StartTime)
		if d < 0 {
			d = 0
		}
		ov.CurrentShift = &d
	}

	last, err := s.shifts.LastFinished(ctx, u.ID)
	if err != nil {
		return models.WorkerOverview{}, dataSource(collShifts, err)
	}
	if last != nil {
		if d, ok := last.Duration(); ok {
			ov.LastShift = &d
		}
	}
	return ov, nil
}
