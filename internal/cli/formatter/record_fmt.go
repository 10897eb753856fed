package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/campusadmin/internal/admin"
	"github.com/alexanderramin/campusadmin/internal/domain"
)

// maxCellWidth keeps long links from pushing tables off screen.
const maxCellWidth = 48

// RecordRow renders the field values of item in kind field order. Date
// fields are shown as calendar dates.
func RecordRow[T domain.Record](kind admin.Kind[T], item T) []string {
	v := kind.Extract(item)
	row := make([]string, 0, len(kind.Fields))
	for _, f := range kind.Fields {
		cell := v[f.Key]
		if f.Date {
			cell = TaskDate(cell)
		}
		row = append(row, cell)
	}
	return row
}

// FormatRecords renders one kind's records as a table with an ID column.
func FormatRecords[T domain.Record](kind admin.Kind[T], items []T) string {
	if len(items) == 0 {
		return Dim(fmt.Sprintf("No %s.", strings.ToLower(kind.Label))) + "\n"
	}
	headers := []string{"ID"}
	for _, f := range kind.Fields {
		headers = append(headers, strings.ToUpper(f.Key))
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, append([]string{string(it.RecordID())}, RecordRow(kind, it)...))
	}
	return RenderTableMax(headers, rows, maxCellWidth)
}

// FormatCatalog renders the college catalog, one row per entry.
func FormatCatalog(entries []domain.CollegeProgram) string {
	if len(entries) == 0 {
		return Dim("Catalog is empty.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		programs := Dim("—")
		if len(e.Program) > 0 {
			programs = strings.Join(e.Program, ", ")
		}
		rows = append(rows, []string{e.College, programs})
	}
	return RenderTable([]string{"COLLEGE", "PROGRAMS"}, rows)
}

// FormatFeedback renders feedback entries one per line.
func FormatFeedback(entries []domain.Feedback) string {
	if len(entries) == 0 {
		return Dim("No feedback submitted.") + "\n"
	}
	var b strings.Builder
	for _, f := range entries {
		b.WriteString(admin.DescribeFeedback(f))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatJournal renders journal entries newest first, with times relative
// to now.
func FormatJournal(entries []*domain.JournalEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No activity recorded yet.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		target := journalTarget(e)
		result := ResultPill(e.OK)
		if !e.OK && e.Error != "" {
			result += " " + Dim(Truncate(e.Error, 40))
		}
		rows = append(rows, []string{
			Ago(e.At, now),
			OpBadge(e.Op),
			e.Kind,
			target,
			Truncate(e.Summary, 40),
			result,
		})
	}
	return RenderTable([]string{"WHEN", "OP", "KIND", "PAIR", "SUMMARY", "RESULT"}, rows)
}

// FormatJournalEntry renders one entry as label/value lines, skipping
// empty values.
func FormatJournalEntry(e *domain.JournalEntry) string {
	result := ResultPill(e.OK)
	if !e.OK && e.Error != "" {
		result += " " + e.Error
	}
	fields := [][2]string{
		{"ID", e.ID},
		{"At", e.At.Local().Format(time.RFC3339)},
		{"Op", OpBadge(e.Op)},
		{"Kind", e.Kind},
		{"Pair", journalTarget(e)},
		{"Record", string(e.RecordID)},
		{"Summary", e.Summary},
		{"Result", result},
		{"API", e.BaseURL},
	}
	var b strings.Builder
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		b.WriteString(Dim(PadRight(f[0], 8)) + " " + f[1] + "\n")
	}
	return b.String()
}

func journalTarget(e *domain.JournalEntry) string {
	if e.Program == "" {
		return e.College
	}
	return e.College + " / " + e.Program
}

// FormatOverview renders one section per kind for a pair.
func FormatOverview(ov *admin.Overview) string {
	var b strings.Builder
	b.WriteString(Bold(ov.Pair.String()) + "\n\n")
	section := func(label string, n int, table string) {
		b.WriteString(StyleHeader.Render(strings.ToUpper(label)) + " " + Dim("("+Count(n, "record")+")") + "\n")
		b.WriteString(table + "\n")
	}
	section(admin.PrerequisiteKind.Label, len(ov.Prerequisites), FormatRecords(admin.PrerequisiteKind, ov.Prerequisites))
	section(admin.TaskKind.Label, len(ov.Tasks), FormatRecords(admin.TaskKind, ov.Tasks))
	section(admin.NoteKind.Label, len(ov.Notes), FormatRecords(admin.NoteKind, ov.Notes))
	section(admin.ResourceKind.Label, len(ov.Resources), FormatRecords(admin.ResourceKind, ov.Resources))
	return b.String()
}
