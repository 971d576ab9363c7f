package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/baharkarakas/pos-backend/internal/metrics"
	"github.com/baharkarakas/pos-backend/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
)

type stubLister struct {
	ovs []models.WorkerOverview
	err error
}

func (s *stubLister) ListOverviews(ctx context.Context) ([]models.WorkerOverview, error) {
	return s.ovs, s.err
}

func overview(id, balance string) models.WorkerOverview {
	return models.WorkerOverview{
		User:    models.User{ID: id, Role: models.RoleWorker},
		Balance: models.WorkerBalance{WorkerID: id, Balance: decimal.RequireFromString(balance)},
	}
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRefresh_SetsGauge(t *testing.T) {
	lister := &stubLister{ovs: []models.WorkerOverview{overview("w1", "130.5"), overview("w2", "-40")}}
	r := NewBalanceRefresher(lister, quietLogger())

	if err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := testutil.ToFloat64(metrics.WorkerBalance.WithLabelValues("w1")); got != 130.5 {
		t.Errorf("w1: expected 130.5, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.WorkerBalance.WithLabelValues("w2")); got != -40 {
		t.Errorf("w2: expected -40, got %v", got)
	}

	// deleted workers drop out on the next refresh
	lister.ovs = lister.ovs[:1]
	if err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if n := testutil.CollectAndCount(metrics.WorkerBalance); n != 1 {
		t.Errorf("expected 1 series, got %d", n)
	}
}

func TestRefresh_FailureKeepsPreviousValues(t *testing.T) {
	lister := &stubLister{ovs: []models.WorkerOverview{overview("w9", "10")}}
	r := NewBalanceRefresher(lister, quietLogger())
	if err := r.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	lister.err = errors.New("db down")
	if err := r.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if got := testutil.ToFloat64(metrics.WorkerBalance.WithLabelValues("w9")); got != 10 {
		t.Errorf("expected stale value 10, got %v", got)
	}
}

func TestStart(t *testing.T) {
	r := NewBalanceRefresher(&stubLister{}, quietLogger())
	if err := r.Start(""); err != nil {
		t.Fatalf("empty schedule: %v", err)
	}
	r.Stop()

	if err := r.Start("not a schedule"); err == nil {
		t.Fatal("expected parse error")
	}

	if err := r.Start("@every 1h"); err != nil {
		t.Fatalf("start: %v", err)
	}
	r.Stop()
}
