package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/baharkarakas/pos-backend/internal/metrics"
	"github.com/baharkarakas/pos-backend/internal/models"
	"github.com/baharkarakas/pos-backend/internal/money"
	repo "github.com/baharkarakas/pos-backend/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	collTransactions = "transactions"
	collExpenditures = "expenditures"
)

// FinancialsService derives worker balances from recorded sales and
// expenditures. Nothing is cached; every call rescans both collections.
type FinancialsService struct {
	trx repo.Transactions
	exp repo.Expenditures
	log *slog.Logger
}

func NewFinancialsService(t repo.Transactions, e repo.Expenditures, log *slog.Logger) *FinancialsService {
	if log == nil {
		log = slog.Default()
	}
	return &FinancialsService{trx: t, exp: e, log: log}
}

// ComputeBalance returns sales, expenses and sales minus expenses for the
// worker. A failed read of either collection fails the whole call with a
// *DataSourceError; rows whose amount cannot be parsed count as zero.
func (s *FinancialsService) ComputeBalance(ctx context.Context, workerID string) (models.WorkerBalance, error) {
	if strings.TrimSpace(workerID) == "" {
		return models.WorkerBalance{}, ErrInvalidInput
	}

	var (
		txs  []models.Transaction
		exps []models.Expenditure
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.trx.ListByWorker(gctx, workerID)
		txs = rows
		return dataSource(collTransactions, err)
	})
	g.Go(func() error {
		rows, err := s.exp.ListByWorker(gctx, workerID)
		exps = rows
		return dataSource(collExpenditures, err)
	})
	if err := g.Wait(); err != nil {
		metrics.BalanceComputations.WithLabelValues("error").Inc()
		return models.WorkerBalance{}, err
	}

	sales := decimal.Zero
	for _, t := range txs {
		sales = sales.Add(s.amount(ctx, collTransactions, t.ID, t.Total))
	}
	expenses := decimal.Zero
	for _, e := range exps {
		expenses = expenses.Add(s.amount(ctx, collExpenditures, e.ID, e.Amount))
	}

	metrics.BalanceComputations.WithLabelValues("ok").Inc()
	return models.WorkerBalance{
		WorkerID: workerID,
		Sales:    sales,
		Expenses: expenses,
		Balance:  sales.Sub(expenses),
	}, nil
}

func (s *FinancialsService) amount(ctx context.Context, collection, rowID, raw string) decimal.Decimal {
	d, err := money.Parse(raw)
	if err != nil {
		metrics.MalformedRows.WithLabelValues(collection).Inc()
		s.log.DebugContext(ctx, "malformed amount counted as zero",
			"collection", collection, "row_id", rowID, "raw", raw)
		return decimal.Zero
	}
	return d
}
