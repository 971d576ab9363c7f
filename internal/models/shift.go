package models

import "time"

type Shift struct {
	ID         string     `json:"id"`
	WorkerID   string     `json:"worker_id"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	DurationMS *int64     `json:"duration_ms,omitempty"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Duration returns the recorded length of a finished shift.
func (s Shift) Duration() (time.Duration, bool) {
	if s.DurationMS == nil {
		return 0, false
	}
	return time.Duration(*s.DurationMS) * time.Millisecond, true
}
