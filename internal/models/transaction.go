package models

import "time"

// Transaction is a recorded sale. Total is kept as the stored text so a
// malformed value can be told apart from a failed read.
type Transaction struct {
	ID        string    `json:"id"`
	WorkerID  string    `json:"worker_id"`
	Total     string    `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
