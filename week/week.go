package week

import (
	"fmt"
	"time"
)

// ReferenceYear is the calendar year all week numbers refer to.
const ReferenceYear = 2026

const isoDate = "2006-01-02"

// Start returns the Monday of the given ISO week in the reference year,
// at midnight UTC. The first ISO week is the one containing January 4th:
// anchor there, walk back to that week's Monday, then add whole weeks.
func Start(week int) time.Time {
	anchor := time.Date(ReferenceYear, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(anchor.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday counts as 7 in ISO numbering
	}
	monday := anchor.AddDate(0, 0, -(weekday - 1))
	return monday.AddDate(0, 0, (week-1)*7)
}

// Range returns the inclusive Monday..Sunday span of the given week.
func Range(week int) (time.Time, time.Time) {
	start := Start(week)
	return start, start.AddDate(0, 0, 6)
}

// FormatRange returns a label like "Week 05 (Jan 26 - Feb 01)".
func FormatRange(week int) string {
	return fmt.Sprintf("Week %02d (%s)", week, RangeLabel(week))
}

// RangeLabel returns just the date span, like "Jan 26 - Feb 01".
func RangeLabel(week int) string {
	start, end := Range(week)
	return fmt.Sprintf("%s - %s", start.Format("Jan 02"), end.Format("Jan 02"))
}

// IsDateInWeek reports whether a YYYY-MM-DD date falls inside the given
// week, inclusive on both ends. Empty or unparseable dates are never in
// any week.
func IsDateInWeek(date string, week int) bool {
	if date == "" {
		return false
	}
	d, err := time.ParseInLocation(isoDate, date, time.UTC)
	if err != nil {
		return false
	}
	start, end := Range(week)
	return !d.Before(start) && !d.After(end)
}

// DateBounds returns the week's ISO date bounds for input-range
// constraints. Both strings are empty when no week is selected.
func DateBounds(week int) (min, max string) {
	if week <= 0 {
		return "", ""
	}
	start, end := Range(week)
	return start.Format(isoDate), end.Format(isoDate)
}

// All returns the valid week numbers, 1 through 52. The year is modeled
// as exactly 52 weeks; there is no week 53.
func All() []int {
	weeks := make([]int, 52)
	for i := range weeks {
		weeks[i] = i + 1
	}
	return weeks
}

// Clamp restricts a week number to the valid 1..52 range.
func Clamp(week int) int {
	if week < 1 {
		return 1
	}
	if week > 52 {
		return 52
	}
	return week
}
