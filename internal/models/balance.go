package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkerBalance is derived on every read and never persisted.
type WorkerBalance struct {
	WorkerID string          `json:"worker_id"`
	Sales    decimal.Decimal `json:"sales"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// WorkerOverview is one worker with the numbers the admin list shows.
// CurrentShift is the elapsed time of the active shift, LastShift the
// duration of the latest finished one; nil means there is none.
type WorkerOverview struct {
	User         User
	Balance      WorkerBalance
	CurrentShift *time.Duration
	LastShift    *time.Duration
}
