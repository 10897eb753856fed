package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(1).
		PaddingRight(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n" + content)
	}
	return boxStyle.Render(content)
}

// Truncate shortens plain text to width runes, ending with an ellipsis.
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// PadRight pads s with spaces to a visible width, truncating if needed.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// TaskDate renders a wire-format task date as a calendar date. Values that
// do not parse are shown as sent by the server.
func TaskDate(s string) string {
	t, ok := domain.ParseTaskDate(s)
	if !ok {
		return s
	}
	return t.UTC().Format("Jan 2, 2006")
}

// Ago renders t relative to now, e.g. "3 minutes ago".
func Ago(t, now time.Time) string {
	if now.Sub(t) < time.Second {
		return "just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// Count renders n with thousands separators and a pluralized noun.
func Count(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%s %ss", humanize.Comma(int64(n)), noun)
}
