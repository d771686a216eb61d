package engine

import (
	"fmt"
	"math"
	"time"
)

// Calendar keys are computed in UTC so a device moving between zones does
// not split one day into two.

const dayLayout = "2006-01-02"

// DayKey returns the calendar date (YYYY-MM-DD) for t.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// MonthKey returns the league month identifier (YYYY-MM) for t.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// WeekKey returns the raid week identifier (e.g. "2025-W14"). The week
// number is ISO-8601, so weeks spanning year-end key consistently.
func WeekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week)
}

// daysBetween returns the whole calendar days from one day key to another.
func daysBetween(from, to string) (int, error) {
	a, err := time.Parse(dayLayout, from)
	if err != nil {
		return 0, fmt.Errorf("parse day %q: %w", from, err)
	}
	b, err := time.Parse(dayLayout, to)
	if err != nil {
		return 0, fmt.Errorf("parse day %q: %w", to, err)
	}
	return int(math.Floor(b.Sub(a).Hours() / 24)), nil
}

// DaysUntilMonthEnd returns the calendar days remaining until the last day
// of the current month, ceiling-rounded and floored at zero.
func DaysUntilMonthEnd(now time.Time) int {
	now = now.UTC()
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	days := int(math.Ceil(lastDay.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
