package admin

import (
	"fmt"

	"github.com/alexanderramin/campusadmin/internal/domain"
)

// Outcome is the explicit result of one fetch, add or delete, surfaced to
// the shell so it can decide what the operator sees.
type Outcome struct {
	Op       domain.Op
	Kind     string
	Pair     domain.Pair
	RecordID domain.ID
	Err      error

	// Stale is set when the response belonged to a selection that is no
	// longer active and was therefore not applied to the list.
	Stale bool
}

// OK reports whether the operation succeeded and was applied.
func (o Outcome) OK() bool { return o.Err == nil && !o.Stale }

// Message renders the outcome for a status line.
func (o Outcome) Message() string {
	if o.Err != nil {
		return fmt.Sprintf("Failed to %s %s: %v", verb(o.Op), o.Kind, o.Err)
	}
	if o.Stale {
		return fmt.Sprintf("Ignored %s %s response for %s (selection changed)", o.Kind, o.Op, o.Pair)
	}
	switch o.Op {
	case domain.OpAdd:
		return fmt.Sprintf("Added %s", o.Kind)
	case domain.OpDelete:
		return fmt.Sprintf("Deleted %s %s", o.Kind, o.RecordID)
	case domain.OpAddCollege:
		return fmt.Sprintf("Added %s", o.Pair)
	default:
		return fmt.Sprintf("Loaded %s", o.Kind)
	}
}

func verb(op domain.Op) string {
	switch op {
	case domain.OpAdd:
		return "add"
	case domain.OpDelete:
		return "delete"
	case domain.OpAddCollege:
		return "add college"
	default:
		return "load"
	}
}
