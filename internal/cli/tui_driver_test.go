package cli

import (
	"testing"

	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/alexanderramin/campusadmin/internal/teatest"
)

// TestDriver wraps teatest.Driver with inspection methods for the
// appModel internals (view stack, shared state, shell panels) that the
// generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel for app, sets the terminal size
// and drains Init, which loads the catalog from the fake.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// SelectPair delivers the results of the college and program pickers.
func (d *TestDriver) SelectPair(p domain.Pair) {
	d.T.Helper()
	d.Send(collegeChosenMsg{college: p.College})
	d.Send(programChosenMsg{program: p.Program})
}

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	v := d.appModel().activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Shell returns the view at the bottom of the stack.
func (d *TestDriver) Shell() *shellView {
	return d.appModel().viewStack[0].(*shellView)
}

// Prerequisites returns the prerequisite panel, which is mounted first.
func (d *TestDriver) Prerequisites() *editorPanel[domain.Prerequisite] {
	d.T.Helper()
	panels := d.Shell().panels
	if len(panels) == 0 {
		d.T.Fatal("no panels mounted")
	}
	return panels[0].(*editorPanel[domain.Prerequisite])
}

// Status returns the status line without styling.
func (d *TestDriver) Status() string {
	return teatest.StripANSI(d.State().Status)
}

// IsQuitting reports whether the model or the driver saw a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
