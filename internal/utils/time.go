package utils

import (
	"fmt"
	"time"

	"github.com/wellandco/wishwell/internal/constants"
)

// DayString formats a time as a local calendar date (YYYY-MM-DD).
func DayString(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a calendar date string (YYYY-MM-DD).
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// LastNDays returns the n calendar dates ending at end (inclusive), oldest
// first. AddDate is used per step so DST transitions can't skip a day.
func LastNDays(end time.Time, n int) []string {
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, DayString(end.AddDate(0, 0, -i)))
	}
	return days
}

// WeekWindow returns the trailing activity window (today minus 6 .. today),
// oldest first.
func WeekWindow(now time.Time) []string {
	return LastNDays(now, constants.WeekWindowDays)
}
