package task

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the fixed textual date pattern used for display and storage.
const DateFormat = "2006-01-02"

// FormatDate renders a date in the fixed format.
func FormatDate(d time.Time) string {
	return d.Format(DateFormat)
}

// ParseDate parses text in the fixed format into a calendar date
// (midnight UTC). Impossible calendar dates are rejected.
func ParseDate(text string) (time.Time, error) {
	d, err := time.Parse(DateFormat, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected %s: %w", text, DateFormat, err)
	}
	return d, nil
}

// DateOnly strips the time component, mapping any instant to its calendar
// date at midnight UTC. Comparisons between due dates and the current day
// all happen in this space. The zero time maps to itself.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
