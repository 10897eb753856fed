package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// OpBadge renders a journal operation in a fixed-width colored label.
func OpBadge(op domain.Op) string {
	switch op {
	case domain.OpAdd:
		return StyleGreen.Render("+ add")
	case domain.OpDelete:
		return StyleRed.Render("- delete")
	case domain.OpAddCollege:
		return StyleBlue.Render("+ college")
	default:
		return StyleDim.Render(string(op))
	}
}

// ResultPill renders the success flag of a journal entry.
func ResultPill(ok bool) string {
	if ok {
		return StyleGreen.Render("✔ ok")
	}
	return StyleRed.Render("✖ failed")
}

// ModeBadge renders the shell's view mode.
func ModeBadge(mode domain.ViewMode) string {
	if mode == domain.ModeFeedback {
		return StylePurple.Render("● FEEDBACK")
	}
	return StyleGreen.Render("● MANAGE")
}
