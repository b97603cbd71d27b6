package calendar

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical day format used in files and output.
const DateLayout = "2006-01-02"

// TruncateToDay drops the time-of-day from t. The calendar date t carries in
// its own location is kept and returned as UTC midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate parses a date expression relative to the current time.
func ParseDate(s string) (time.Time, error) {
	return parseDate(s, time.Now())
}

// parseDate parses a date expression relative to now.
// Supports: "today", "tomorrow", "yesterday", "monday", "next tuesday",
// "on Monday", "2024-01-15", "Jan 2", "Jan 2 2006", "January 2",
// "January 2 2006", "2 Jan", "2 Jan 2006", "2 January", "2 January 2006".
func parseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSpace(strings.TrimPrefix(s, "on "))

	switch s {
	case "today":
		return TruncateToDay(now), nil
	case "tomorrow":
		return TruncateToDay(now).AddDate(0, 0, 1), nil
	case "yesterday":
		return TruncateToDay(now).AddDate(0, 0, -1), nil
	}

	cleaned := strings.TrimPrefix(s, "next ")
	if wd, ok := weekdays[cleaned]; ok {
		return nextWeekday(now, wd), nil
	}

	layouts := []string{
		DateLayout,
		"jan 2",
		"jan 2 2006",
		"january 2",
		"january 2 2006",
		"2 jan",
		"2 jan 2006",
		"2 january",
		"2 january 2006",
	}

	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err != nil {
			continue
		}
		// For layouts without a year, use the current year
		if !strings.Contains(layout, "2006") {
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// nextWeekday returns the next occurrence of the given weekday after now.
// If now is that weekday, it returns the following week.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	today := TruncateToDay(now)
	daysAhead := int(wd) - int(today.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return today.AddDate(0, 0, daysAhead)
}
