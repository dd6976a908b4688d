package timeutil

import (
	"fmt"
	"time"
)

// Indonesian short month names, indexed by time.Month
var shortMonths = [...]string{
	"", "Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// ParseTimestamp parses an ISO-8601 timestamp string.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %q", value)
	}
	return t, nil
}

// DurationSeconds computes a session duration in whole seconds.
// A negative interval (end before start) clamps to zero instead of failing.
func DurationSeconds(start, end time.Time) int {
	sec := int(end.Sub(start) / time.Second)
	if sec < 0 {
		return 0
	}
	return sec
}

// SecondsToString renders seconds as "{h}h {m}m {s}s". Zero formats as "0s".
func SecondsToString(sec int) string {
	if sec <= 0 {
		return "0s"
	}
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// DayWindow returns the local-midnight window [start, end) containing now.
func DayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// WeekStart returns the most recent Sunday at 00:00 in now's location.
func WeekStart(now time.Time) time.Time {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start.AddDate(0, 0, -int(now.Weekday()))
}

// DateKey returns the UTC calendar date of t as "YYYY-MM-DD".
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DateLabel renders a date key for display: "Hari Ini" when the key is
// today's UTC date, otherwise an Indonesian "d mon yyyy" string.
func DateLabel(key string, now time.Time) string {
	if key == DateKey(now) {
		return "Hari Ini"
	}
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%d %s %d", t.Day(), shortMonths[t.Month()], t.Year())
}
