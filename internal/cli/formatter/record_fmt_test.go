package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/campusadmin/internal/admin"
	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatRecords_TaskDatesAreHumanized(t *testing.T) {
	tasks := []domain.Task{
		{ID: "t1", College: "MIT", Program: "CS", Task: "Apply", Date: "2024-05-01T00:00:00.000Z"},
	}

	out := stripANSI(FormatRecords(admin.TaskKind, tasks))

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "TASK")
	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "t1")
	assert.Contains(t, out, "May 1, 2024")
}

func TestFormatRecords_Empty(t *testing.T) {
	assert.Equal(t, "No notes.\n", stripANSI(FormatRecords(admin.NoteKind, nil)))
}

func TestFormatCatalog(t *testing.T) {
	out := stripANSI(FormatCatalog([]domain.CollegeProgram{
		{College: "MIT", Program: []string{"CS", "EE"}},
		{College: "Empty U"},
	}))

	assert.Contains(t, out, "CS, EE")
	assert.Contains(t, out, "Empty U")
	assert.Contains(t, out, "—")
}

func TestFormatFeedback(t *testing.T) {
	out := FormatFeedback([]domain.Feedback{{College: "MIT", Program: "CS", Content: "Great", Rating: "4"}})
	assert.Equal(t, "MIT - CS: Great (Rating: 4)\n", out)
}

func TestFormatJournal(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	entries := []*domain.JournalEntry{
		{At: now.Add(-3 * time.Minute), Op: domain.OpDelete, Kind: "note", College: "MIT", Program: "CS", Summary: "Syllabus", OK: false, Error: "status 500"},
		{At: now.Add(-time.Hour), Op: domain.OpAddCollege, Kind: "college", College: "Yale", Program: "Art", Summary: "Yale: Art", OK: true},
	}

	out := stripANSI(FormatJournal(entries, now))

	assert.Contains(t, out, "3 minutes ago")
	assert.Contains(t, out, "MIT / CS")
	assert.Contains(t, out, "✖ failed status 500")
	assert.Contains(t, out, "✔ ok")
	assert.Contains(t, out, "+ college")
}

func TestFormatOverview(t *testing.T) {
	ov := &admin.Overview{
		Pair:  domain.Pair{College: "MIT", Program: "CS"},
		Tasks: []domain.Task{{ID: "t1", College: "MIT", Program: "CS", Task: "Apply", Date: "2024-05-01T00:00:00.000Z"}},
	}

	out := stripANSI(FormatOverview(ov))

	assert.Contains(t, out, "MIT / CS")
	assert.Contains(t, out, "PREREQUISITES (0 records)")
	assert.Contains(t, out, "TASKS (1 record)")
	assert.Contains(t, out, "No resources.")
}
