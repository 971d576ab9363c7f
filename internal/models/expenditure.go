package models

import "time"

type Expenditure struct {
	ID          string    `json:"id"`
	WorkerID    string    `json:"worker_id"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
