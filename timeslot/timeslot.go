package timeslot

import "fmt"

// Unset is the sentinel index for an empty or unparseable time.
const Unset = -1

// SlotsPerDay is the number of quarter-hour slots in a day.
const SlotsPerDay = 24 * 4

// Index maps a quarter-hour "HH:MM" clock string to its ordinal slot
// within the day: 0 for "00:00", 95 for "23:45". Empty or malformed
// input maps to Unset; callers must treat negative results as not
// comparable.
func Index(t string) int {
	if t == "" {
		return Unset
	}
	var h, m int
	if _, err := fmt.Sscanf(t, "%d:%d", &h, &m); err != nil {
		return Unset
	}
	return h*4 + m/15
}

// Valid reports whether t is one of the enumerated quarter-hour clock
// strings.
func Valid(t string) bool {
	if len(t) != 5 || t[2] != ':' {
		return false
	}
	var h, m int
	if _, err := fmt.Sscanf(t, "%d:%d", &h, &m); err != nil {
		return false
	}
	return h >= 0 && h < 24 && m >= 0 && m < 60 && m%15 == 0
}

// Options returns the full day's quarter-hour clock strings in order,
// "00:00" through "23:45". Start and end selectors both draw from this
// same domain; ordering constraints are validation's job.
func Options() []string {
	opts := make([]string, 0, SlotsPerDay)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 15 {
			opts = append(opts, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return opts
}
