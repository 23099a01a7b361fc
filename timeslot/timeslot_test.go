package timeslot_test

import (
	"testing"

	"timesheet/timeslot"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"00:15", 1},
		{"09:00", 36},
		{"12:30", 50},
		{"23:45", 95},
		{"", timeslot.Unset},
		{"garbage", timeslot.Unset},
	}
	for _, tt := range tests {
		if got := timeslot.Index(tt.in); got != tt.want {
			t.Errorf("Index(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestOptions(t *testing.T) {
	opts := timeslot.Options()
	if len(opts) != timeslot.SlotsPerDay {
		t.Fatalf("Options() returned %d slots, want %d", len(opts), timeslot.SlotsPerDay)
	}
	if opts[0] != "00:00" || opts[95] != "23:45" {
		t.Errorf("Options() = [%q..%q], want [00:00..23:45]", opts[0], opts[95])
	}
	for i, opt := range opts {
		if got := timeslot.Index(opt); got != i {
			t.Errorf("Index(%q) = %d, want %d", opt, got, i)
		}
		if !timeslot.Valid(opt) {
			t.Errorf("Valid(%q) = false, want true", opt)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"23:45", true},
		{"09:10", false}, // off the quarter-hour grid
		{"24:00", false},
		{"9:00", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := timeslot.Valid(tt.in); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
