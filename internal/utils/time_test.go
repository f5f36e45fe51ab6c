package utils

import (
	"testing"
	"time"
)

func TestDayString(t *testing.T) {
	at := time.Date(2026, 3, 5, 23, 59, 0, 0, time.UTC)
	if got := DayString(at); got != "2026-03-05" {
		t.Errorf("DayString() = %q, want 2026-03-05", got)
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2026-03-05")
	if err != nil {
		t.Fatalf("ParseDay() failed: %v", err)
	}
	if day.Year() != 2026 || day.Month() != time.March || day.Day() != 5 {
		t.Errorf("ParseDay() = %v, want 2026-03-05", day)
	}

	for _, bad := range []string{"03/05/2026", "2026-3-5", "yesterday", ""} {
		if _, err := ParseDay(bad); err == nil {
			t.Errorf("ParseDay(%q) should fail", bad)
		}
	}
}

func TestLastNDays(t *testing.T) {
	end := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	days := LastNDays(end, 7)
	if len(days) != 7 {
		t.Fatalf("LastNDays() = %d days, want 7", len(days))
	}
	if days[0] != "2026-03-04" {
		t.Errorf("first day = %q, want 2026-03-04", days[0])
	}
	if days[6] != "2026-03-10" {
		t.Errorf("last day = %q, want the end date", days[6])
	}

	// Ascending, no gaps.
	for i := 1; i < len(days); i++ {
		prev, _ := ParseDay(days[i-1])
		cur, _ := ParseDay(days[i])
		if !cur.Equal(prev.AddDate(0, 0, 1)) {
			t.Errorf("days %q -> %q are not consecutive", days[i-1], days[i])
		}
	}
}

func TestLastNDaysCrossesMonthBoundary(t *testing.T) {
	end := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	days := LastNDays(end, 7)
	if days[0] != "2026-02-24" {
		t.Errorf("first day = %q, want 2026-02-24", days[0])
	}
	if days[6] != "2026-03-02" {
		t.Errorf("last day = %q, want 2026-03-02", days[6])
	}
}

func TestWeekWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	window := WeekWindow(now)
	if len(window) != 7 {
		t.Fatalf("WeekWindow() = %d days, want 7", len(window))
	}
	if window[6] != DayString(now) {
		t.Errorf("window ends at %q, want today", window[6])
	}
}
