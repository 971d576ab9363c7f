package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/baharkarakas/pos-backend/internal/metrics"
	"github.com/baharkarakas/pos-backend/internal/models"
	"github.com/robfig/cron/v3"
)

type overviewLister interface {
	ListOverviews(ctx context.Context) ([]models.WorkerOverview, error)
}

// BalanceRefresher publishes every worker's balance to the
// pos_worker_balance gauge on a cron schedule.
type BalanceRefresher struct {
	workers overviewLister
	log     *slog.Logger
	timeout time.Duration
	c       *cron.Cron
}

func NewBalanceRefresher(workers overviewLister, log *slog.Logger) *BalanceRefresher {
	return &BalanceRefresher{workers: workers, log: log, timeout: time.Minute}
}

// Start schedules the refresh. An empty schedule disables it.
func (b *BalanceRefresher) Start(schedule string) error {
	if schedule == "" {
		b.log.Info("balance refresh disabled")
		return nil
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(schedule, b.run); err != nil {
		return fmt.Errorf("balance refresh schedule %q: %w", schedule, err)
	}
	b.c = c
	c.Start()
	b.log.Info("balance refresh scheduled", "schedule", schedule)
	return nil
}

// Stop waits for a running refresh to finish.
func (b *BalanceRefresher) Stop() {
	if b.c == nil {
		return
	}
	<-b.c.Stop().Done()
}

func (b *BalanceRefresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()
	if err := b.Refresh(ctx); err != nil {
		b.log.Error("balance refresh", "err", err)
	}
}

// Refresh recomputes all balances once. On failure the gauge keeps the
// previous values.
func (b *BalanceRefresher) Refresh(ctx context.Context) error {
	start := time.Now()
	ovs, err := b.workers.ListOverviews(ctx)
	if err != nil {
		return err
	}
	metrics.WorkerBalance.Reset()
	for _, ov := range ovs {
		metrics.WorkerBalance.WithLabelValues(ov.User.ID).Set(ov.Balance.Balance.InexactFloat64())
	}
	b.log.Debug("balances refreshed", "workers", len(ovs), "duration_ms", time.Since(start).Milliseconds())
	return nil
}
