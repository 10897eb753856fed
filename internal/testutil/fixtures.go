package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/google/uuid"
)

var recordCounter atomic.Int64

// NextID returns a fresh record id, unique within the test binary.
func NextID() domain.ID {
	return domain.ID(fmt.Sprintf("r%04d", recordCounter.Add(1)))
}

// MIT/CS is the pair most tests select.
var PairMITCS = domain.Pair{College: "MIT", Program: "CS"}

// Catalog returns a small catalog with one college lacking a program list.
func Catalog() []domain.CollegeProgram {
	return []domain.CollegeProgram{
		{ID: "c1", College: "MIT", Program: []string{"CS", "EE"}},
		{ID: "c2", College: "Stanford", Program: []string{"CS", "Law"}},
		{ID: "c3", College: "Empty U"},
	}
}

func NewPrerequisite(p domain.Pair, msg string) domain.Prerequisite {
	return domain.Prerequisite{ID: NextID(), College: p.College, Program: p.Program, Msg: msg, Src: "https://example.edu/" + msg}
}

func NewTask(p domain.Pair, task, date string) domain.Task {
	return domain.Task{ID: NextID(), College: p.College, Program: p.Program, Task: task, Date: date}
}

func NewNote(p domain.Pair, title string) domain.Note {
	return domain.Note{ID: NextID(), College: p.College, Program: p.Program, Title: title, Link: "https://notes.example/" + title}
}

func NewResource(p domain.Pair, title string) domain.Resource {
	return domain.Resource{ID: NextID(), College: p.College, Program: p.Program, Title: title, Link: "https://res.example/" + title}
}

// JournalOption customizes a test journal entry.
type JournalOption func(*domain.JournalEntry)

func WithAt(at time.Time) JournalOption {
	return func(e *domain.JournalEntry) { e.At = at }
}

func WithFailure(msg string) JournalOption {
	return func(e *domain.JournalEntry) {
		e.OK = false
		e.Error = msg
	}
}

func WithOp(op domain.Op) JournalOption {
	return func(e *domain.JournalEntry) { e.Op = op }
}

func NewTestJournalEntry(kind, summary string, opts ...JournalOption) *domain.JournalEntry {
	e := &domain.JournalEntry{
		ID:       uuid.New().String(),
		At:       time.Now().UTC(),
		Op:       domain.OpAdd,
		Kind:     kind,
		College:  PairMITCS.College,
		Program:  PairMITCS.Program,
		RecordID: NextID(),
		Summary:  summary,
		OK:       true,
		BaseURL:  "http://api.test",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
