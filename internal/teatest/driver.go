// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and returned Cmds are executed inline, so a
// test observes the model exactly as the event loop would leave it, with
// no tea.Program and no sleeps. Cmds that block (cursor blink timers) are
// abandoned after a short timeout.
//
// Besides Send, which drains everything, the driver can Step a message
// without running its Cmd and Collect a Cmd's messages without delivering
// them. Tests use that to deliver background results out of order.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds recursive draining so a Cmd loop fails a test
// instead of hanging it.
const MaxDrainDepth = 100

// DefaultCmdTimeout separates fast Cmds (fakes, in-memory SQLite) from
// blink timers, which block for about half a second.
const DefaultCmdTimeout = 50 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.QuitMsg is seen. The runtime normally
	// intercepts it, so the model may never handle it itself.
	Quitting bool

	cmdTimeout time.Duration
}

// Option configures the Driver during construction.
type Option func(*Driver)

// New creates a Driver for model. Call DrainInit afterwards to run Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, cmdTimeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize sends a WindowSizeMsg before anything else and drains it.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		d.Send(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout overrides how long a single Cmd may block.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.cmdTimeout = timeout }
}

// DrainInit runs the model's Init command and drains the results.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send dispatches msg through Update and drains every resulting Cmd.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.drain(d.Step(msg), 0)
}

// Step dispatches msg through Update once and returns the Cmd unexecuted.
func (d *Driver) Step(msg tea.Msg) tea.Cmd {
	d.T.Helper()
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	return cmd
}

// Collect executes cmd, flattening batches, and returns the messages it
// produced without delivering them.
func (d *Driver) Collect(cmd tea.Cmd) []tea.Msg {
	d.T.Helper()
	var out []tea.Msg
	d.collect(cmd, 0, &out)
	return out
}

func (d *Driver) collect(cmd tea.Cmd, depth int, out *[]tea.Msg) {
	if cmd == nil || depth >= MaxDrainDepth {
		return
	}
	msg := d.exec(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			d.collect(sub, depth+1, out)
		}
		return
	}
	*out = append(*out, msg)
}

// Deliver sends each message in order, draining after each.
func (d *Driver) Deliver(msgs ...tea.Msg) {
	d.T.Helper()
	for _, m := range msgs {
		d.Send(m)
	}
}

// ── Key event helpers ────────────────────────────────────────────────────────

// PressKey sends a character key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

func (d *Driver) PressTab() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyTab})
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyDown})
}

func (d *Driver) PressUp() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyUp})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// View returns the full rendered output of the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// ViewContains reports whether the rendered view contains substr once
// styling escapes are removed.
func (d *Driver) ViewContains(substr string) bool {
	return strings.Contains(StripANSI(d.View()), substr)
}

// ── Command draining ─────────────────────────────────────────────────────────

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := d.exec(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			d.drain(sub, depth+1)
		}
		return
	}

	if _, isQuit := msg.(tea.QuitMsg); isQuit {
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

// exec runs cmd with the driver's timeout and returns nil if it blocks.
func (d *Driver) exec(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d.cmdTimeout):
		return nil
	}
}

// isCursorBlink detects the unexported blink messages of bubbles/cursor,
// which chain into blocking timer Cmds.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
