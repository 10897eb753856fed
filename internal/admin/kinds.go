package admin

import (
	"github.com/alexanderramin/campusadmin/internal/domain"
)

// CatalogPath and FeedbackPath are the two collections that are not
// scoped to a pair.
const (
	CatalogPath  = "/api/college"
	FeedbackPath = "/api/feedback"
)

var PrerequisiteKind = Kind[domain.Prerequisite]{
	Name:  "prerequisite",
	Label: "Prerequisites",
	Path:  "/api/prerequisite",
	Fields: []Field{
		{Key: "msg", Title: "Message", Placeholder: "Message"},
		{Key: "src", Title: "Source URL", Placeholder: "https://"},
	},
	Build: func(p domain.Pair, v Values) (domain.Prerequisite, error) {
		return domain.Prerequisite{College: p.College, Program: p.Program, Msg: v["msg"], Src: v["src"]}, nil
	},
	Extract: func(r domain.Prerequisite) Values {
		return Values{"msg": r.Msg, "src": r.Src}
	},
}

var TaskKind = Kind[domain.Task]{
	Name:  "task",
	Label: "Tasks",
	Path:  "/api/task",
	Fields: []Field{
		{Key: "task", Title: "Task", Placeholder: "Task"},
		{Key: "date", Title: "Date (YYYY-MM-DD)", Placeholder: "2024-05-01", Date: true},
	},
	Build: func(p domain.Pair, v Values) (domain.Task, error) {
		date, err := domain.NormalizeTaskDate(v["date"])
		if err != nil {
			return domain.Task{}, err
		}
		return domain.Task{College: p.College, Program: p.Program, Task: v["task"], Date: date}, nil
	},
	Extract: func(r domain.Task) Values {
		return Values{"task": r.Task, "date": r.Date}
	},
}

var NoteKind = Kind[domain.Note]{
	Name:  "note",
	Label: "Notes",
	Path:  "/api/notes",
	Fields: []Field{
		{Key: "title", Title: "Title", Placeholder: "Title"},
		{Key: "link", Title: "Link", Placeholder: "https://"},
	},
	Build: func(p domain.Pair, v Values) (domain.Note, error) {
		return domain.Note{College: p.College, Program: p.Program, Title: v["title"], Link: v["link"]}, nil
	},
	Extract: func(r domain.Note) Values {
		return Values{"title": r.Title, "link": r.Link}
	},
}

var ResourceKind = Kind[domain.Resource]{
	Name:  "resource",
	Label: "Resources",
	Path:  "/api/resource",
	Fields: []Field{
		{Key: "title", Title: "Title", Placeholder: "Title"},
		{Key: "link", Title: "Link", Placeholder: "https://"},
	},
	Build: func(p domain.Pair, v Values) (domain.Resource, error) {
		return domain.Resource{College: p.College, Program: p.Program, Title: v["title"], Link: v["link"]}, nil
	},
	Extract: func(r domain.Resource) Values {
		return Values{"title": r.Title, "link": r.Link}
	},
}
