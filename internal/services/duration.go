package services

import (
	"fmt"
	"time"
)

// FormatDuration renders shift lengths as "2h 5m", or "5m 10s" under an hour.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	sec := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%dm %ds", m, sec)
}
