package export_test

import (
	"encoding/csv"
	"strings"
	"testing"

	"timesheet/export"
	"timesheet/models"
)

func entry(date, project, start, end, travel string) models.TimesheetEntry {
	e := models.NewEntry(1, 5)
	e.Date = date
	e.Project = project
	e.Scope = "Commissioning"
	e.ServiceCategory = "Field Service"
	e.ServiceType = "On-site Support"
	e.StartTime = start
	e.EndTime = end
	e.TravelTime = travel
	return e
}

func TestAggregate(t *testing.T) {
	entries := []models.TimesheetEntry{
		entry("2026-01-26", "SIR-001", "09:00", "11:00", "0.5"), // 2h
		entry("2026-01-27", "SIR-002", "09:00", "12:00", ""),    // 3h
	}
	got := export.Aggregate(entries)

	if got.Hours != 5 || got.Travel != 0.5 || got.Total != 5.5 {
		t.Errorf("Aggregate = hours %v travel %v total %v, want 5, 0.5, 5.5",
			got.Hours, got.Travel, got.Total)
	}
	if len(got.Projects) != 2 || got.Projects[0] != "SIR-001" || got.Projects[1] != "SIR-002" {
		t.Errorf("Aggregate projects = %v, want [SIR-001 SIR-002]", got.Projects)
	}
}

func TestAggregateDistinctProjects(t *testing.T) {
	entries := []models.TimesheetEntry{
		entry("2026-01-26", "SIR-001", "09:00", "10:00", ""),
		entry("2026-01-26", "", "10:00", "11:00", ""),
		entry("2026-01-27", "SIR-001", "09:00", "10:00", ""),
	}
	got := export.Aggregate(entries)
	if len(got.Projects) != 1 || got.Projects[0] != "SIR-001" {
		t.Errorf("Aggregate projects = %v, want [SIR-001]", got.Projects)
	}
}

func TestCSV(t *testing.T) {
	e := entry("2026-01-28", "SIR-001", "09:00", "12:00", "1")
	e.Comments = "before\nafter"
	doc := export.CSV([]models.TimesheetEntry{e}, 5)

	lines := strings.Split(doc, "\n")
	if len(lines) != 2 {
		t.Fatalf("CSV produced %d lines, want 2:\n%s", len(lines), doc)
	}
	wantHeader := `"Week","Date","Project","Scope","Service Category","Service Type","Start Time","End Time","Hours (decimal)","Travel Time","Total Hours","Comments"`
	if lines[0] != wantHeader {
		t.Errorf("header = %s, want %s", lines[0], wantHeader)
	}
	wantRow := `"Week 05","2026-01-28","SIR-001","Commissioning","Field Service","On-site Support","09:00","12:00","3.00","1.00","4.00","before after"`
	if lines[1] != wantRow {
		t.Errorf("row = %s, want %s", lines[1], wantRow)
	}
}

func TestCSVEmptyCellsQuoted(t *testing.T) {
	e := models.NewEntry(1, 5)
	doc := export.CSV([]models.TimesheetEntry{e}, 5)
	row := strings.Split(doc, "\n")[1]
	want := `"Week 05","","","","","","","","0.00","0.00","0.00",""`
	if row != want {
		t.Errorf("row = %s, want %s", row, want)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	e := entry("2026-01-28", "SIR-001", "09:00", "12:00", "0.25")
	e.Comments = `has, comma and "quotes"`
	doc := export.CSV([]models.TimesheetEntry{e}, 5)

	records, err := csv.NewReader(strings.NewReader(doc)).ReadAll()
	if err != nil {
		t.Fatalf("standard reader rejected the document: %v", err)
	}
	if len(records) != 2 || len(records[1]) != len(export.Header) {
		t.Fatalf("parsed %d records, row width %d", len(records), len(records[1]))
	}
	if got := records[1][11]; got != `has, comma and "quotes"` {
		t.Errorf("comments cell = %q, want the original value", got)
	}
	if got := records[1][8]; got != "3.00" {
		t.Errorf("hours cell = %q, want 3.00", got)
	}
}

func TestEmail(t *testing.T) {
	totals := export.Totals{Total: 4, Projects: []string{"SIR-001"}}
	d := export.Email("Jane Doe", 5, totals)

	wantSubject := "Timesheet Submission - Jane Doe - Week 05 - 2026"
	if d.Subject != wantSubject {
		t.Errorf("subject = %q, want %q", d.Subject, wantSubject)
	}

	wantBody := "Dear Manager,%0D%0A" +
		"Please find attached my timesheet for Week 05 (Jan 26 - Feb 01).%0D%0A" +
		"%0D%0A" +
		"Summary:%0D%0A" +
		"%0D%0A" +
		"Total Hours: 4.00 hours%0D%0A" +
		"Projects: SIR-001%0D%0A" +
		"Period: 2026-01-26 to 2026-02-01%0D%0A" +
		"Week: Week 05 of 2026%0D%0A" +
		"%0D%0A" +
		"Best regards,%0D%0A" +
		"Jane Doe"
	if d.Body != wantBody {
		t.Errorf("body =\n%s\nwant\n%s", d.Body, wantBody)
	}
}

func TestEmailUnset(t *testing.T) {
	if d := export.Email("", 5, export.Totals{}); d.Subject != "" || d.Body != "" {
		t.Errorf("Email without engineer = %+v, want empty draft", d)
	}
	if d := export.Email("Jane Doe", 0, export.Totals{}); d.Subject != "" || d.Body != "" {
		t.Errorf("Email without week = %+v, want empty draft", d)
	}
}

func TestEmailNoProjects(t *testing.T) {
	d := export.Email("Jane Doe", 5, export.Totals{})
	if !strings.Contains(d.Body, "Projects: N/A") {
		t.Errorf("body should fall back to N/A, got:\n%s", d.Body)
	}
}

func TestMailtoURL(t *testing.T) {
	d := export.Email("Jane Doe", 5, export.Totals{})
	u := export.MailtoURL(d)

	if !strings.HasPrefix(u, "mailto:?subject=Timesheet%20Submission%20-%20Jane%20Doe%20-%20Week%2005%20-%202026&body=") {
		t.Errorf("unexpected mailto prefix: %s", u)
	}
	if !strings.Contains(u, "%0D%0A") {
		t.Error("mailto body lost its %0D%0A line breaks")
	}
	if export.MailtoURL(export.Draft{}) != "" {
		t.Error("empty draft should render an empty mailto")
	}
}

func TestClipboardText(t *testing.T) {
	d := export.Email("Jane Doe", 5, export.Totals{Total: 4})
	text := export.ClipboardText(d)

	if !strings.HasPrefix(text, "Subject: Timesheet Submission - Jane Doe - Week 05 - 2026\n\nDear Manager,\n") {
		t.Errorf("unexpected clipboard prefix:\n%s", text)
	}
	if strings.Contains(text, "%0D%0A") {
		t.Error("clipboard text should carry literal newlines")
	}
	if !strings.HasSuffix(text, "Best regards,\nJane Doe") {
		t.Errorf("unexpected clipboard suffix:\n%s", text)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		engineer string
		week     int
		want     string
	}{
		{"Jane Doe", 5, "Timesheet_JaneDoe_Week05_2026.csv"},
		{"Ana Maria da Silva", 12, "Timesheet_AnaMariadaSilva_Week12_2026.csv"},
		{"Solo", 52, "Timesheet_Solo_Week52_2026.csv"},
	}
	for _, tt := range tests {
		if got := export.Filename(tt.engineer, tt.week); got != tt.want {
			t.Errorf("Filename(%q, %d) = %q, want %q", tt.engineer, tt.week, got, tt.want)
		}
	}
}

// Full export flow: Jane Doe, week 5, one 09:00-12:00 entry with an
// hour of travel.
func TestEndToEndScenario(t *testing.T) {
	e := entry("2026-01-28", "SIR-001", "09:00", "12:00", "1")
	entries := []models.TimesheetEntry{e}

	totals := export.Aggregate(entries)
	if totals.Hours != 3 || totals.Total != 4 {
		t.Errorf("totals = %+v, want hours 3 total 4", totals)
	}

	records, err := csv.NewReader(strings.NewReader(export.CSV(entries, 5))).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if records[1][8] != "3.00" || records[1][10] != "4.00" {
		t.Errorf("csv hours/total = %q/%q, want 3.00/4.00", records[1][8], records[1][10])
	}

	if got := export.Filename("Jane Doe", 5); got != "Timesheet_JaneDoe_Week05_2026.csv" {
		t.Errorf("filename = %q", got)
	}
}
