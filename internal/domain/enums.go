package domain

// Op names an operation issued against the remote service.
type Op string

const (
	OpFetch      Op = "fetch"
	OpAdd        Op = "add"
	OpDelete     Op = "delete"
	OpAddCollege Op = "add_college"
)

// Mutating reports whether the operation changes remote state.
func (o Op) Mutating() bool {
	return o == OpAdd || o == OpDelete || o == OpAddCollege
}

// ViewMode is the shell's top-level toggle.
type ViewMode string

const (
	ModeManage   ViewMode = "manage"
	ModeFeedback ViewMode = "feedback"
)
