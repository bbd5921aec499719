package timeutil

import (
	"fmt"
	"time"
)

// FormatClock formats a duration as MM:SS. Minutes do not wrap into hours, so
// a 90-minute phase renders as "90:00". Negative durations clamp to "00:00".
func FormatClock(d time.Duration) string {
	seconds := int64(d.Round(time.Second).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatDuration formats seconds as a human-readable string like "1h 40m" or "45m" or "30s".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// LastResetBoundary returns the most recent occurrence of hour:00 at or
// before now, in now's location. With hour=4, any time between 04:00 today
// and 03:59 tomorrow maps to 04:00 today.
func LastResetBoundary(now time.Time, hour int) time.Time {
	boundary := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if boundary.After(now) {
		boundary = boundary.AddDate(0, 0, -1)
	}
	return boundary
}
