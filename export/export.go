// Package export renders a week's entries into their outward-facing
// artifacts: aggregate totals, the CSV document and the email draft.
package export

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"timesheet/derive"
	"timesheet/models"
	"timesheet/week"
)

// Totals are the weekly aggregates over a filtered entry collection.
type Totals struct {
	Hours    float64  `json:"hours"`
	Travel   float64  `json:"travel"`
	Total    float64  `json:"total"`
	Projects []string `json:"projects"`
}

// Aggregate sums duration, travel and total over the entries and
// collects the distinct non-empty project codes in first-seen order.
func Aggregate(entries []models.TimesheetEntry) Totals {
	t := Totals{Projects: []string{}}
	seen := map[string]bool{}
	for _, e := range entries {
		hours := derive.Duration(e)
		travel := derive.Travel(e)
		t.Hours += hours
		t.Travel += travel
		t.Total += hours + travel
		if e.Project != "" && !seen[e.Project] {
			seen[e.Project] = true
			t.Projects = append(t.Projects, e.Project)
		}
	}
	return t
}

// Header is the fixed CSV column order.
var Header = []string{
	"Week", "Date", "Project", "Scope", "Service Category", "Service Type",
	"Start Time", "End Time", "Hours (decimal)", "Travel Time", "Total Hours", "Comments",
}

// CSV renders the complete file payload: the header plus one row per
// entry in the given order. Every cell is quoted, hour columns carry
// two decimals, comment newlines collapse to spaces. Rows are joined
// by \n with no trailing newline.
func CSV(entries []models.TimesheetEntry, weekNumber int) string {
	rows := make([]string, 0, len(entries)+1)
	rows = append(rows, joinRow(Header))
	for _, e := range entries {
		hours := derive.Duration(e)
		travel := derive.Travel(e)
		rows = append(rows, joinRow([]string{
			fmt.Sprintf("Week %02d", weekNumber),
			e.Date,
			e.Project,
			e.Scope,
			e.ServiceCategory,
			e.ServiceType,
			e.StartTime,
			e.EndTime,
			fmt.Sprintf("%.2f", hours),
			fmt.Sprintf("%.2f", travel),
			fmt.Sprintf("%.2f", hours+travel),
			strings.ReplaceAll(e.Comments, "\n", " "),
		}))
	}
	return strings.Join(rows, "\n")
}

// quote wraps a cell in double quotes, doubling internal quotes so a
// standard CSV reader parses the cell back verbatim.
func quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

func joinRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = quote(c)
	}
	return strings.Join(quoted, ",")
}

// crlf is the pre-encoded line break mail clients expect in a mailto
// body.
const crlf = "%0D%0A"

// Draft is a ready-to-send email subject and body. The body carries
// pre-encoded %0D%0A line breaks.
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Email builds the weekly submission draft. Both fields stay empty
// until an engineer and a week are selected.
func Email(engineer string, weekNumber int, totals Totals) Draft {
	if engineer == "" || weekNumber <= 0 {
		return Draft{}
	}
	min, max := week.DateBounds(weekNumber)
	projects := "N/A"
	if len(totals.Projects) > 0 {
		projects = strings.Join(totals.Projects, ", ")
	}
	subject := fmt.Sprintf("Timesheet Submission - %s - Week %02d - %d",
		engineer, weekNumber, week.ReferenceYear)
	lines := []string{
		"Dear Manager,",
		fmt.Sprintf("Please find attached my timesheet for Week %02d (%s).", weekNumber, week.RangeLabel(weekNumber)),
		"",
		"Summary:",
		"",
		fmt.Sprintf("Total Hours: %.2f hours", totals.Total),
		"Projects: " + projects,
		fmt.Sprintf("Period: %s to %s", min, max),
		fmt.Sprintf("Week: Week %02d of %d", weekNumber, week.ReferenceYear),
		"",
		"Best regards,",
		engineer,
	}
	return Draft{Subject: subject, Body: strings.Join(lines, crlf)}
}

// MailtoURL renders the draft as a mailto target. The body already
// carries its %0D%0A escapes, so only the subject is encoded here.
func MailtoURL(d Draft) string {
	if d.Subject == "" && d.Body == "" {
		return ""
	}
	subject := strings.ReplaceAll(url.QueryEscape(d.Subject), "+", "%20")
	return "mailto:?subject=" + subject + "&body=" + d.Body
}

// ClipboardText is the plain-text rendering of the draft.
func ClipboardText(d Draft) string {
	if d.Subject == "" && d.Body == "" {
		return ""
	}
	body := strings.ReplaceAll(d.Body, crlf, "\n")
	if decoded, err := url.PathUnescape(body); err == nil {
		body = decoded
	}
	return "Subject: " + d.Subject + "\n\n" + body
}

var whitespace = regexp.MustCompile(`\s+`)

// Filename is the CSV download name, with all whitespace stripped from
// the engineer's name.
func Filename(engineer string, weekNumber int) string {
	return fmt.Sprintf("Timesheet_%s_Week%02d_%d.csv",
		whitespace.ReplaceAllString(engineer, ""), weekNumber, week.ReferenceYear)
}
