package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/campusadmin/internal/admin"
	"github.com/alexanderramin/campusadmin/internal/cli/formatter"
	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type catalogLoadedMsg struct {
	entries []domain.CollegeProgram
	err     error
}

type catalogAddedMsg struct {
	res admin.CatalogResult
}

type feedbackLoadedMsg struct {
	gen     int
	entries []domain.Feedback
	err     error
}

type collegeChosenMsg struct{ college string }
type programChosenMsg struct{ program string }

func (catalogLoadedMsg) background()  {}
func (catalogAddedMsg) background()   {}
func (feedbackLoadedMsg) background() {}

type shellKeys struct {
	College  key.Binding
	Program  key.Binding
	AddPair  key.Binding
	Add      key.Binding
	Delete   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Up       key.Binding
	Down     key.Binding
	Reload   key.Binding
	Feedback key.Binding
}

var keys = shellKeys{
	College:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "college")),
	Program:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "program")),
	AddPair:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new college")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Delete:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
	Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next list")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab")),
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Feedback: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "feedback")),
}

// shellView is the home view. In manage mode it shows the selector and,
// once a pair is complete, one panel per resource kind. In feedback mode
// it shows only the feedback list.
type shellView struct {
	state *SharedState

	catalogErr error

	// panels exist only while the pair is complete and the shell is in
	// manage mode; they are rebuilt on every mount.
	panels []panel
	focus  int

	feedbackGen     int
	feedback        []domain.Feedback
	feedbackLoading bool
	feedbackErr     error

	// Scratch values written by the selection forms.
	pick       string
	newCollege string
	newProgram string
}

func newShellView(state *SharedState) *shellView {
	return &shellView{state: state}
}

func (v *shellView) ID() ViewID    { return ViewShell }
func (v *shellView) Title() string { return "" }

func (v *shellView) ShortHelp() []key.Binding {
	if v.state.Mode == domain.ModeFeedback {
		return []key.Binding{keys.Feedback, keys.Reload}
	}
	hints := []key.Binding{keys.College, keys.Program, keys.AddPair}
	if len(v.panels) > 0 {
		hints = append(hints, keys.Add, keys.Delete, keys.Next)
	}
	return append(hints, keys.Feedback)
}

func (v *shellView) Init() tea.Cmd {
	return v.loadCatalog()
}

func (v *shellView) loadCatalog() tea.Cmd {
	catalog := v.state.App.Catalog
	return func() tea.Msg {
		entries, err := catalog.List(context.Background())
		return catalogLoadedMsg{entries: entries, err: err}
	}
}

// mountPanels rebuilds the editors for the current pair and fetches each
// collection independently.
func (v *shellView) mountPanels() tea.Cmd {
	v.panels = nil
	v.focus = 0
	pair := v.state.Selector.Pair()
	if v.state.Mode != domain.ModeManage || !pair.Complete() {
		return nil
	}
	app := v.state.App
	v.panels = []panel{
		newEditorPanel(admin.PrerequisiteKind, app.Stores.Prerequisites, app),
		newEditorPanel(admin.TaskKind, app.Stores.Tasks, app),
		newEditorPanel(admin.NoteKind, app.Stores.Notes, app),
		newEditorPanel(admin.ResourceKind, app.Stores.Resources, app),
	}
	return v.reloadPanels()
}

func (v *shellView) reloadPanels() tea.Cmd {
	pair := v.state.Selector.Pair()
	cmds := make([]tea.Cmd, 0, len(v.panels))
	for _, p := range v.panels {
		cmds = append(cmds, p.Mount(pair))
	}
	return tea.Batch(cmds...)
}

func (v *shellView) loadFeedback() tea.Cmd {
	v.feedbackGen++
	v.feedbackLoading = true
	gen := v.feedbackGen
	svc := v.state.App.Feedback
	return func() tea.Msg {
		entries, err := svc.List(context.Background())
		return feedbackLoadedMsg{gen: gen, entries: entries, err: err}
	}
}

func (v *shellView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.err != nil {
			v.catalogErr = msg.err
			v.state.Report(admin.Outcome{Op: domain.OpFetch, Kind: "catalog", Err: msg.err})
			return v, nil
		}
		v.catalogErr = nil
		v.state.Selector.SetCatalog(msg.entries)
		return v, nil

	case catalogAddedMsg:
		v.state.Report(admin.ApplyCatalogAdd(&v.state.Selector, msg.res))
		return v, nil

	case feedbackLoadedMsg:
		if msg.gen != v.feedbackGen {
			return v, nil
		}
		v.feedbackLoading = false
		v.feedbackErr = msg.err
		v.feedback = msg.entries
		if msg.err != nil {
			v.state.App.logger().Warn("feedback fetch failed", zap.Error(msg.err))
			v.state.Report(admin.Outcome{Op: domain.OpFetch, Kind: "feedback", Err: msg.err})
		}
		return v, nil

	case collegeChosenMsg:
		v.state.Selector.SelectCollege(msg.college)
		return v, v.mountPanels()

	case programChosenMsg:
		v.state.Selector.SelectProgram(msg.program)
		return v, v.mountPanels()

	case backgroundMsg:
		for _, p := range v.panels {
			if out, ok := p.Apply(msg); ok {
				v.state.Report(out)
				return v, nil
			}
		}
		if o, ok := msg.(orphanedMsg); ok {
			v.state.Report(o.orphan())
		}
		return v, nil

	case tea.KeyMsg:
		if v.state.Mode == domain.ModeFeedback {
			return v.updateFeedbackKeys(msg)
		}
		return v.updateManageKeys(msg)
	}
	return v, nil
}

func (v *shellView) updateManageKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Feedback):
		v.state.Mode = domain.ModeFeedback
		v.panels = nil
		return v, v.loadFeedback()

	case key.Matches(msg, keys.College):
		if !v.state.Selector.Loaded() {
			return v, v.loadCatalog()
		}
		v.pick = v.state.Selector.Pair().College
		form := wizardSelectOption("College", v.state.Selector.CollegeOptions(), &v.pick)
		if form == nil {
			return v, setStatus(formatter.Dim("Catalog is empty. Press n to add a college."))
		}
		return v, startWizardCmd("Select college", form, func() tea.Cmd {
			college := v.pick
			return func() tea.Msg { return collegeChosenMsg{college: college} }
		})

	case key.Matches(msg, keys.Program):
		pair := v.state.Selector.Pair()
		if pair.College == "" {
			return v, setStatus(formatter.Dim("Select a college first."))
		}
		v.pick = pair.Program
		form := wizardSelectOption("Program", v.state.Selector.ProgramOptions(), &v.pick)
		if form == nil {
			return v, setStatus(formatter.Dim("No programs listed for " + pair.College + "."))
		}
		return v, startWizardCmd("Select program", form, func() tea.Cmd {
			program := v.pick
			return func() tea.Msg { return programChosenMsg{program: program} }
		})

	case key.Matches(msg, keys.AddPair):
		v.newCollege, v.newProgram = "", ""
		return v, startWizardCmd("Add college", wizardAddCollege(&v.newCollege, &v.newProgram), v.addCollegeCmd)

	case key.Matches(msg, keys.Reload):
		if !v.state.Selector.Loaded() || v.catalogErr != nil {
			return v, v.loadCatalog()
		}
		return v, v.reloadPanels()
	}

	if len(v.panels) == 0 {
		return v, nil
	}
	focused := v.panels[v.focus]
	switch {
	case key.Matches(msg, keys.Next):
		v.focus = (v.focus + 1) % len(v.panels)
	case key.Matches(msg, keys.Prev):
		v.focus = (v.focus + len(v.panels) - 1) % len(v.panels)
	case key.Matches(msg, keys.Up):
		focused.Move(-1)
	case key.Matches(msg, keys.Down):
		focused.Move(1)
	case key.Matches(msg, keys.Add):
		return v, focused.AddCmd()
	case key.Matches(msg, keys.Delete):
		return v, focused.DeleteCmd()
	}
	return v, nil
}

func (v *shellView) addCollegeCmd() tea.Cmd {
	college, program := v.newCollege, v.newProgram
	catalog := v.state.App.Catalog
	return func() tea.Msg {
		entry, err := catalog.Add(context.Background(), college, program)
		return catalogAddedMsg{res: admin.CatalogResult{
			Pair:  domain.Pair{College: college, Program: program},
			Entry: entry,
			Err:   err,
		}}
	}
}

func (v *shellView) updateFeedbackKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Feedback):
		v.state.Mode = domain.ModeManage
		v.feedback = nil
		v.feedbackErr = nil
		return v, v.mountPanels()
	case key.Matches(msg, keys.Reload):
		return v, v.loadFeedback()
	}
	return v, nil
}

func (v *shellView) View() string {
	if v.state.Mode == domain.ModeFeedback {
		return v.viewFeedback()
	}
	return v.viewManage()
}

func (v *shellView) viewManage() string {
	var b strings.Builder
	b.WriteString("\n")

	pair := v.state.Selector.Pair()
	switch {
	case v.catalogErr != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Catalog unavailable.") + " " + formatter.Dim("Press r to retry.") + "\n")
	case !v.state.Selector.Loaded():
		b.WriteString("  " + formatter.Dim("Loading catalog...") + "\n")
	default:
		b.WriteString("  " + formatter.Dim("College: ") + orPlaceholder(pair.College) + "\n")
		b.WriteString("  " + formatter.Dim("Program: ") + orPlaceholder(pair.Program) + "\n")
	}
	b.WriteString("\n")

	if len(v.panels) == 0 {
		b.WriteString("  " + formatter.Dim("Choose a college (c) and a program (p) to manage its records.") + "\n")
		return b.String()
	}

	width := max(v.state.Width, 40)
	for i, p := range v.panels {
		for _, line := range strings.Split(strings.TrimRight(p.View(i == v.focus, width), "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v *shellView) viewFeedback() string {
	var content string
	switch {
	case v.feedbackLoading:
		content = formatter.Dim("Loading feedback...")
	case v.feedbackErr != nil:
		content = formatter.StyleRed.Render("Could not load feedback.")
	default:
		content = strings.TrimRight(formatter.FormatFeedback(v.feedback), "\n")
	}
	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(formatter.RenderBox("Feedback", content), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func orPlaceholder(s string) string {
	if s == "" {
		return formatter.Dim("(none)")
	}
	return formatter.Bold(s)
}
