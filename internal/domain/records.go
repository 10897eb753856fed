package domain

// CollegeProgram is one catalog entry: a college and its programs.
type CollegeProgram struct {
	ID      ID       `json:"id,omitempty"`
	College string   `json:"college"`
	Program []string `json:"program"`
}

// Programs returns the entry's program list. A missing list yields nil.
func (c CollegeProgram) Programs() []string { return c.Program }

type Prerequisite struct {
	ID      ID     `json:"id,omitempty"`
	College string `json:"college"`
	Program string `json:"program"`
	Msg     string `json:"msg"`
	Src     string `json:"src"`
}

func (p Prerequisite) ScopedTo() Pair { return Pair{College: p.College, Program: p.Program} }
func (p Prerequisite) RecordID() ID   { return p.ID }

// Task is a dated to-do for a program. Date is kept as the wire string
// (ISO 8601) so the record round-trips exactly as the server sent it.
type Task struct {
	ID      ID     `json:"id,omitempty"`
	College string `json:"college"`
	Program string `json:"program"`
	Task    string `json:"task"`
	Date    string `json:"date"`
}

func (t Task) ScopedTo() Pair { return Pair{College: t.College, Program: t.Program} }
func (t Task) RecordID() ID   { return t.ID }

type Note struct {
	ID      ID     `json:"id,omitempty"`
	College string `json:"college"`
	Program string `json:"program"`
	Title   string `json:"title"`
	Link    string `json:"link"`
}

func (n Note) ScopedTo() Pair { return Pair{College: n.College, Program: n.Program} }
func (n Note) RecordID() ID   { return n.ID }

type Resource struct {
	ID      ID     `json:"id,omitempty"`
	College string `json:"college"`
	Program string `json:"program"`
	Title   string `json:"title"`
	Link    string `json:"link"`
}

func (r Resource) ScopedTo() Pair { return Pair{College: r.College, Program: r.Program} }
func (r Resource) RecordID() ID   { return r.ID }

// Feedback is read-only from this client's perspective.
type Feedback struct {
	ID      ID     `json:"id,omitempty"`
	College string `json:"college"`
	Program string `json:"program"`
	Content string `json:"content"`
	Rating  Rating `json:"rating"`
}

func (f Feedback) ScopedTo() Pair { return Pair{College: f.College, Program: f.Program} }
