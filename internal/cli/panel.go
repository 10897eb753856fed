package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/campusadmin/internal/admin"
	"github.com/alexanderramin/campusadmin/internal/cli/formatter"
	"github.com/alexanderramin/campusadmin/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// panel is one resource editor as the shell sees it.
type panel interface {
	Label() string
	// Mount starts a new generation for p and returns the fetch command.
	Mount(p domain.Pair) tea.Cmd
	// Apply handles a background result addressed to this panel.
	Apply(msg tea.Msg) (admin.Outcome, bool)
	Move(delta int)
	// AddCmd opens the add form. The submit command is bound to the
	// selection that is current when the form completes.
	AddCmd() tea.Cmd
	// DeleteCmd deletes the row under the cursor, or returns nil.
	DeleteCmd() tea.Cmd
	View(focused bool, width int) string
}

type fetchedMsg[T domain.Record] struct {
	editor *admin.Editor[T]
	res    admin.FetchResult[T]
}

type addedMsg[T domain.Record] struct {
	editor *admin.Editor[T]
	res    admin.AddResult[T]
}

type deletedMsg[T domain.Record] struct {
	editor *admin.Editor[T]
	res    admin.DeleteResult
}

func (fetchedMsg[T]) background() {}
func (addedMsg[T]) background()   {}
func (deletedMsg[T]) background() {}

// orphanedMsg is a mutation result whose editor was unmounted before it
// arrived. It is reported but never applied.
type orphanedMsg interface {
	orphan() admin.Outcome
}

func (m addedMsg[T]) orphan() admin.Outcome {
	out := admin.Outcome{Op: domain.OpAdd, Kind: m.editor.Kind().Name, Pair: m.res.Ticket.Pair, Err: m.res.Err}
	if m.res.Err == nil {
		out.Stale = true
		out.RecordID = m.res.Item.RecordID()
	}
	return out
}

func (m deletedMsg[T]) orphan() admin.Outcome {
	return admin.Outcome{
		Op:       domain.OpDelete,
		Kind:     m.editor.Kind().Name,
		Pair:     m.res.Ticket.Pair,
		RecordID: m.res.ID,
		Err:      m.res.Err,
		Stale:    m.res.Err == nil,
	}
}

// editorPanel renders an admin.Editor and keeps the add form's draft.
// The draft survives a failed submit and is cleared by a successful one.
type editorPanel[T domain.Record] struct {
	editor *admin.Editor[T]
	cursor int
	draft  []string
}

func newEditorPanel[T domain.Record](kind admin.Kind[T], store admin.Store[T], app *App) *editorPanel[T] {
	return &editorPanel[T]{
		editor: admin.NewEditor(kind, store, app.recorder(), app.logger()),
		draft:  make([]string, len(kind.Fields)),
	}
}

func (p *editorPanel[T]) Label() string { return p.editor.Kind().Label }

func (p *editorPanel[T]) Mount(pair domain.Pair) tea.Cmd {
	p.cursor = 0
	e := p.editor
	ticket := e.Select(pair)
	return func() tea.Msg {
		return fetchedMsg[T]{editor: e, res: e.Fetch(context.Background(), ticket)}
	}
}

func (p *editorPanel[T]) Apply(msg tea.Msg) (admin.Outcome, bool) {
	switch msg := msg.(type) {
	case fetchedMsg[T]:
		if msg.editor != p.editor {
			return admin.Outcome{}, false
		}
		out := p.editor.ApplyFetch(msg.res)
		p.clampCursor()
		return out, true
	case addedMsg[T]:
		if msg.editor != p.editor {
			return admin.Outcome{}, false
		}
		out := p.editor.ApplyAdd(msg.res)
		if msg.res.Err == nil {
			clear(p.draft)
		}
		return out, true
	case deletedMsg[T]:
		if msg.editor != p.editor {
			return admin.Outcome{}, false
		}
		out := p.editor.ApplyDelete(msg.res)
		p.clampCursor()
		return out, true
	}
	return admin.Outcome{}, false
}

func (p *editorPanel[T]) Move(delta int) {
	p.cursor += delta
	p.clampCursor()
}

func (p *editorPanel[T]) clampCursor() {
	if n := p.editor.Len(); p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *editorPanel[T]) AddCmd() tea.Cmd {
	kind := p.editor.Kind()
	form := wizardAddRecord(strings.ToLower(kind.Name), kind.Fields, p.draft)
	return startWizardCmd("Add "+kind.Name, form, p.submitCmd)
}

// submitCmd snapshots the draft and the current ticket. It runs inside
// Update, so reading editor state here is safe.
func (p *editorPanel[T]) submitCmd() tea.Cmd {
	e := p.editor
	ticket := e.Ticket()
	values := make(admin.Values, len(p.draft))
	for i, f := range e.Kind().Fields {
		values[f.Key] = p.draft[i]
	}
	return func() tea.Msg {
		return addedMsg[T]{editor: e, res: e.Submit(context.Background(), ticket, values)}
	}
}

func (p *editorPanel[T]) DeleteCmd() tea.Cmd {
	items := p.editor.Items()
	if p.cursor >= len(items) {
		return nil
	}
	e := p.editor
	ticket := e.Ticket()
	item := items[p.cursor]
	return func() tea.Msg {
		return deletedMsg[T]{editor: e, res: e.Remove(context.Background(), ticket, item)}
	}
}

func (p *editorPanel[T]) View(focused bool, width int) string {
	kind := p.editor.Kind()
	title := formatter.StyleHeader.Render(strings.ToUpper(kind.Label))
	if !focused {
		title = formatter.Dim(strings.ToUpper(kind.Label))
	}

	var b strings.Builder
	b.WriteString(title + " " + formatter.Dim(fmt.Sprintf("(%d)", p.editor.Len())) + "\n")

	switch p.editor.State() {
	case admin.StateIdle, admin.StateLoading:
		b.WriteString("  " + formatter.Dim("Loading...") + "\n")
		return b.String()
	case admin.StateFailed:
		b.WriteString("  " + formatter.StyleRed.Render("Could not load "+strings.ToLower(kind.Label)) + "\n")
		return b.String()
	}

	items := p.editor.Items()
	if len(items) == 0 {
		b.WriteString("  " + formatter.Dim("None yet. Press a to add.") + "\n")
		return b.String()
	}

	lineWidth := max(width-4, 20)
	for i, it := range items {
		cursor := "  "
		style := formatter.StyleFg
		if focused && i == p.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		line := strings.Join(formatter.RecordRow(kind, it), "  ·  ")
		b.WriteString(cursor + style.Render(formatter.Truncate(line, lineWidth)) + "\n")
	}
	return b.String()
}
