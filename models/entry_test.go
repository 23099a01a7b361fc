package models

import "testing"

func TestNewEntry(t *testing.T) {
	a := NewEntry(7, 5)
	b := NewEntry(7, 5)

	if a.ID == "" || b.ID == "" {
		t.Fatal("NewEntry: expected non-empty ids")
	}
	if a.ID == b.ID {
		t.Errorf("NewEntry: ids collide: %q", a.ID)
	}
	if a.EngineerID != 7 || a.Week != 5 {
		t.Errorf("NewEntry: got engineer %d week %d, want 7 and 5", a.EngineerID, a.Week)
	}
	if a.Date != "" || a.Project != "" || a.StartTime != "" {
		t.Error("NewEntry: expected all editable fields empty")
	}
}

func TestDuplicate(t *testing.T) {
	src := NewEntry(7, 5)
	src.Date = "2026-01-28"
	src.Project = "SIR-001"
	src.Scope = "Commissioning"
	src.ServiceCategory = "Field Service"
	src.ServiceType = "On-site Support"
	src.StartTime = "09:00"
	src.EndTime = "12:00"
	src.TravelTime = "1.5"
	src.Comments = "panel checks"

	dup := src.Duplicate()

	if dup.ID == src.ID {
		t.Error("Duplicate: expected a fresh id")
	}
	if dup.Week != src.Week || dup.Date != src.Date {
		t.Error("Duplicate: week and date must be copied verbatim")
	}
	if dup.Project != src.Project || dup.Scope != src.Scope ||
		dup.ServiceCategory != src.ServiceCategory || dup.ServiceType != src.ServiceType ||
		dup.StartTime != src.StartTime || dup.EndTime != src.EndTime ||
		dup.TravelTime != src.TravelTime || dup.Comments != src.Comments {
		t.Error("Duplicate: expected a field-for-field copy")
	}
}

// A duplicate of an entry whose date is outside its own week keeps that
// date; duplication does not repair the source.
func TestDuplicateKeepsOutOfRangeDate(t *testing.T) {
	src := NewEntry(7, 5)
	src.Date = "2026-06-15" // nowhere near week 5

	dup := src.Duplicate()
	if dup.Date != "2026-06-15" || dup.Week != 5 {
		t.Errorf("Duplicate: got date %q week %d, want the source values", dup.Date, dup.Week)
	}
}
