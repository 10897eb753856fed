package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

type pushViewMsg struct {
	view View
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel pops the wizard view, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// statusMsg replaces the status line text.
type statusMsg struct {
	text string
}

// backgroundMsg is implemented by the results of network and journal
// requests. The appModel delivers them to every view on the stack so a
// result is not lost when a form is open on top of the view that asked.
type backgroundMsg interface {
	background()
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func setStatus(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}
