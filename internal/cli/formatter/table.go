package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the number of spaces between table columns.
const colGap = 2

// RenderTable renders an aligned table with a header separator line.
// Widths are measured on visible text, so cells may carry ANSI styling.
func RenderTable(headers []string, rows [][]string) string {
	return RenderTableMax(headers, rows, 0)
}

// RenderTableMax is RenderTable with every cell truncated to maxCol
// visible characters. A maxCol of zero disables truncation.
func RenderTableMax(headers []string, rows [][]string, maxCol int) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, cols)
		for i := 0; i < cols && i < len(row); i++ {
			cells[r][i] = row[i]
			if maxCol > 0 && lipgloss.Width(row[i]) > maxCol {
				cells[r][i] = Truncate(row[i], maxCol)
			}
		}
	}

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	var b strings.Builder
	writeRow := func(row []string, style func(string) string) {
		for i, c := range row {
			b.WriteString(style(c))
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(c)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
	for _, row := range cells {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}
