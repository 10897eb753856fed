package cli

import (
	"github.com/alexanderramin/campusadmin/internal/admin"
	"github.com/alexanderramin/campusadmin/internal/cli/formatter"
	"github.com/alexanderramin/campusadmin/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	Selector admin.Selector
	Mode     domain.ViewMode

	// Status is the styled text of the last reported outcome.
	Status string

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	return &SharedState{App: app, Mode: domain.ModeManage}
}

// Report turns an operation outcome into status line text. Failures are
// suppressed when quiet_errors is set; the editors have already logged them.
func (s *SharedState) Report(out admin.Outcome) {
	switch {
	case out.Err != nil:
		if s.App.Config.QuietErrors {
			return
		}
		s.Status = formatter.StyleRed.Render(out.Message())
	case out.Stale:
		s.Status = formatter.Dim(out.Message())
	case out.Op.Mutating():
		s.Status = formatter.StyleGreen.Render(out.Message())
	}
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (3 lines: separator + status + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
