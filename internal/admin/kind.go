// Package admin holds the client-side state of the dashboard: the catalog
// selector, one generic list editor per resource kind, the feedback reader
// and the activity journal. It has no UI; the TUI and CLI drive it.
package admin

import (
	"strings"

	"github.com/alexanderramin/campusadmin/internal/domain"
)

// Field describes one operator-entered field of a resource kind.
type Field struct {
	Key         string // JSON key and CLI flag name
	Title       string
	Placeholder string
	Date        bool // normalized to the task date wire format on submit
}

// Values maps field keys to raw operator input.
type Values map[string]string

// Kind describes one remote resource collection. It is the only thing that
// differs between the prerequisite, task, note and resource editors.
type Kind[T domain.Record] struct {
	Name   string // singular, e.g. "task"
	Label  string // heading, e.g. "Tasks"
	Path   string // collection path, e.g. "/api/task"
	Fields []Field

	// Build turns operator input into a create body for pair p.
	Build func(p domain.Pair, v Values) (T, error)

	// Extract returns the field values of a record, keyed like Fields.
	Extract func(T) Values
}

// Describe renders a record as a single line of its field values.
func (k Kind[T]) Describe(item T) string {
	v := k.Extract(item)
	parts := make([]string, 0, len(k.Fields))
	for _, f := range k.Fields {
		if s := v[f.Key]; s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " - ")
}

// summarize is the journal summary for an add that may have failed before
// a record existed.
func (k Kind[T]) summarize(v Values) string {
	if len(k.Fields) == 0 {
		return ""
	}
	return v[k.Fields[0].Key]
}
