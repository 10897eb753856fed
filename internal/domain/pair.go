package domain

// Pair is the operator's active (college, program) selection.
type Pair struct {
	College string
	Program string
}

// Complete reports whether both halves of the pair are selected.
func (p Pair) Complete() bool {
	return p.College != "" && p.Program != ""
}

func (p Pair) String() string {
	if p.Program == "" {
		return p.College
	}
	return p.College + " / " + p.Program
}

// Scoped is implemented by every record that belongs to a single pair.
type Scoped interface {
	ScopedTo() Pair
}

// Record is a scoped record with a server-assigned identifier.
type Record interface {
	Scoped
	RecordID() ID
}

// FilterByPair returns the elements of items whose college and program equal
// p exactly. Order is preserved. The result is never nil so that an empty
// selection renders as an empty list rather than a missing one.
func FilterByPair[T Scoped](items []T, p Pair) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.ScopedTo() == p {
			out = append(out, it)
		}
	}
	return out
}
