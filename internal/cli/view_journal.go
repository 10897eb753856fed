package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/campusadmin/internal/cli/formatter"
	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const journalViewLimit = 200

type journalLoadedMsg struct {
	entries []*domain.JournalEntry
	err     error
}

func (journalLoadedMsg) background() {}

// journalView shows the local activity journal in a scrollable viewport.
type journalView struct {
	state   *SharedState
	vp      viewport.Model
	entries []*domain.JournalEntry
	loading bool
	err     error
	now     func() time.Time
}

func newJournalView(state *SharedState) *journalView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	vp.KeyMap = journalViewportKeyMap()
	return &journalView{state: state, vp: vp, loading: true, now: time.Now}
}

func (v *journalView) ID() ViewID    { return ViewJournal }
func (v *journalView) Title() string { return "Journal" }

func (v *journalView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}

func (v *journalView) Init() tea.Cmd {
	return v.load()
}

func (v *journalView) load() tea.Cmd {
	journal := v.state.App.Journal
	return func() tea.Msg {
		if journal == nil {
			return journalLoadedMsg{}
		}
		entries, err := journal.ListRecent(context.Background(), journalViewLimit)
		return journalLoadedMsg{entries: entries, err: err}
	}
}

func (v *journalView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case journalLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.entries = msg.entries
		v.render()
		return v, nil

	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		v.render()
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			return v, v.load()
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *journalView) render() {
	switch {
	case v.err != nil:
		v.vp.SetContent("\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()))
	case v.state.App.Journal == nil:
		v.vp.SetContent("\n  " + formatter.Dim("Journal is disabled."))
	default:
		v.vp.SetContent("\n" + formatter.FormatJournal(v.entries, v.now()))
	}
}

func (v *journalView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading journal...")
	}
	return v.vp.View()
}

// journalViewportKeyMap leaves letter keys free for global shortcuts.
func journalViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
