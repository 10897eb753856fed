package domain

import "time"

// JournalEntry records one mutation the operator attempted against the
// remote service, whether or not it succeeded.
type JournalEntry struct {
	ID       string
	At       time.Time
	Op       Op
	Kind     string
	College  string
	Program  string
	RecordID ID
	Summary  string
	OK       bool
	Error    string
	BaseURL  string
}
