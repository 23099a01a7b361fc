// Package derive computes everything a timesheet entry does not store:
// validation advisories, overlap with sibling entries, duration and
// totals. All functions are pure; inputs arrive as parameters and the
// entry collection is never mutated here.
package derive

import (
	"strconv"

	"timesheet/models"
	"timesheet/timeslot"
	"timesheet/week"
)

// Advisory messages, keyed per field. They never block a mutation; they
// only gate which actions the caller chooses to enable.
const (
	MsgRequired        = "Required"
	MsgEndBeforeStart  = "End must be after start"
	MsgNegativeTravel  = "Must be >= 0"
	MsgDateOutsideWeek = "Date must be inside the week"
	MsgOverlap         = "Overlapping entry"
)

// Daily-hours advisory thresholds, in decimal hours.
const (
	WarnDailyHours = 10
	WarnMaxHours   = 24
)

const (
	WarningLongDay = "More than 10h logged for this day"
	WarningOverMax = "Maximum 24h per day exceeded"
)

// Validate computes the per-field advisory map for one entry. Checks
// run in a fixed order (required, temporal, travel, week containment)
// and the last one to fire for a field wins, so the temporal and
// containment messages replace a plain Required on the same field.
func Validate(e models.TimesheetEntry, weekNumber int) map[string]string {
	errs := map[string]string{}

	required := []struct{ field, value string }{
		{"date", e.Date},
		{"project", e.Project},
		{"scope", e.Scope},
		{"serviceCategory", e.ServiceCategory},
		{"serviceType", e.ServiceType},
		{"startTime", e.StartTime},
		{"endTime", e.EndTime},
	}
	for _, r := range required {
		if r.value == "" {
			errs[r.field] = MsgRequired
		}
	}

	startIdx := timeslot.Index(e.StartTime)
	endIdx := timeslot.Index(e.EndTime)
	if startIdx >= 0 && endIdx >= 0 && endIdx <= startIdx {
		errs["endTime"] = MsgEndBeforeStart
	}

	if e.TravelTime != "" {
		if v, err := strconv.ParseFloat(e.TravelTime, 64); err == nil && v < 0 {
			errs["travelTime"] = MsgNegativeTravel
		}
	}

	if e.Date != "" && weekNumber > 0 && !week.IsDateInWeek(e.Date, weekNumber) {
		errs["date"] = MsgDateOutsideWeek
	}

	return errs
}

// HasOverlap reports whether the entry's half-open [start, end) slot
// interval crosses any same-date sibling with a different id. Unset
// times keep their -1 sentinel in the comparison; the literal
// arithmetic is intentional.
func HasOverlap(e models.TimesheetEntry, siblings []models.TimesheetEntry) bool {
	if e.Date == "" {
		return false
	}
	startIdx := timeslot.Index(e.StartTime)
	endIdx := timeslot.Index(e.EndTime)
	for _, other := range siblings {
		if other.ID == e.ID || other.Date != e.Date {
			continue
		}
		oStart := timeslot.Index(other.StartTime)
		oEnd := timeslot.Index(other.EndTime)
		if startIdx < oEnd && endIdx > oStart {
			return true
		}
	}
	return false
}

// Errors merges Validate with the overlap check. An overlap overwrites
// whatever message startTime carried.
func Errors(e models.TimesheetEntry, weekNumber int, siblings []models.TimesheetEntry) map[string]string {
	errs := Validate(e, weekNumber)
	if HasOverlap(e, siblings) {
		errs["startTime"] = MsgOverlap
	}
	return errs
}

// Duration is the entry's worked time in decimal hours, clamped at zero
// when the end does not follow the start. Unset times yield zero;
// flagging them is Validate's job.
func Duration(e models.TimesheetEntry) float64 {
	startIdx := timeslot.Index(e.StartTime)
	endIdx := timeslot.Index(e.EndTime)
	if startIdx < 0 || endIdx < 0 {
		return 0
	}
	minutes := (endIdx - startIdx) * 15
	if minutes < 0 {
		minutes = 0
	}
	return float64(minutes) / 60
}

// Travel is the parsed travel time in hours. Absent or malformed input
// counts as zero; a negative value passes through so the advisory can
// flag it.
func Travel(e models.TimesheetEntry) float64 {
	if e.TravelTime == "" {
		return 0
	}
	v, err := strconv.ParseFloat(e.TravelTime, 64)
	if err != nil {
		return 0
	}
	return v
}

// Total is worked hours plus travel.
func Total(e models.TimesheetEntry) float64 {
	return Duration(e) + Travel(e)
}

// Warning returns the daily-hours advisory for a computed duration, or
// an empty string below the 10h threshold. Warnings never block
// anything.
func Warning(hours float64) string {
	switch {
	case hours > WarnMaxHours:
		return WarningOverMax
	case hours > WarnDailyHours:
		return WarningLongDay
	default:
		return ""
	}
}
