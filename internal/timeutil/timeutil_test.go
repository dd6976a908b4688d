package timeutil

import (
	"testing"
	"time"
)

func TestDurationSeconds(t *testing.T) {
	start := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"zero interval", start, 0},
		{"whole seconds", start.Add(90 * time.Second), 90},
		{"fraction floors", start.Add(90*time.Second + 999*time.Millisecond), 90},
		{"negative clamps to zero", start.Add(-time.Minute), 0},
		{"hours", start.Add(2 * time.Hour), 7200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationSeconds(start, tt.end); got != tt.want {
				t.Fatalf("DurationSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSecondsToString(t *testing.T) {
	tests := []struct {
		sec  int
		want string
	}{
		{0, "0s"},
		{-5, "0s"},
		{30, "0h 0m 30s"},
		{65, "0h 1m 5s"},
		{3661, "1h 1m 1s"},
		{3665, "1h 1m 5s"},
		{7200, "2h 0m 0s"},
	}

	for _, tt := range tests {
		if got := SecondsToString(tt.sec); got != tt.want {
			t.Fatalf("SecondsToString(%d) = %q, want %q", tt.sec, got, tt.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	for _, valid := range []string{
		"2025-08-01T09:00:00Z",
		"2025-08-01T09:00:00.123Z",
		"2025-08-01T16:00:00+07:00",
	} {
		if _, err := ParseTimestamp(valid); err != nil {
			t.Fatalf("ParseTimestamp(%q) failed: %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "yesterday", "2025-08-01", "01/08/2025"} {
		if _, err := ParseTimestamp(invalid); err == nil {
			t.Fatalf("ParseTimestamp(%q) should have failed", invalid)
		}
	}
}

func TestDayWindow(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	now := time.Date(2025, 8, 5, 15, 30, 0, 0, loc)

	start, end := DayWindow(now)
	if !start.Equal(time.Date(2025, 8, 5, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected window start %v", start)
	}
	if !end.Equal(time.Date(2025, 8, 6, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected window end %v", end)
	}
}

func TestWeekStart(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)

	// 2025-08-05 is a Tuesday; the week began Sunday 2025-08-03.
	now := time.Date(2025, 8, 5, 15, 30, 0, 0, loc)
	if got := WeekStart(now); !got.Equal(time.Date(2025, 8, 3, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected week start %v", got)
	}

	// A Sunday is its own week start.
	sunday := time.Date(2025, 8, 3, 10, 0, 0, 0, loc)
	if got := WeekStart(sunday); !got.Equal(time.Date(2025, 8, 3, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected week start on sunday %v", got)
	}
}

func TestDateKeyUsesUTC(t *testing.T) {
	// 23:30 UTC-5 is already the next day in UTC.
	loc := time.FixedZone("EST", -5*3600)
	local := time.Date(2025, 8, 5, 23, 30, 0, 0, loc)
	if got := DateKey(local); got != "2025-08-06" {
		t.Fatalf("DateKey() = %q, want 2025-08-06", got)
	}
}

func TestDateLabel(t *testing.T) {
	now := time.Date(2025, 8, 5, 12, 0, 0, 0, time.UTC)

	if got := DateLabel("2025-08-05", now); got != "Hari Ini" {
		t.Fatalf("expected Hari Ini, got %q", got)
	}
	if got := DateLabel("2025-08-04", now); got != "4 Agu 2025" {
		t.Fatalf("expected 4 Agu 2025, got %q", got)
	}
	if got := DateLabel("2024-12-25", now); got != "25 Des 2024" {
		t.Fatalf("expected 25 Des 2024, got %q", got)
	}
}
