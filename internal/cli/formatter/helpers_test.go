package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated text", 6, "trunc…"},
		{"héllo wörld", 5, "héll…"},
		{"x", 0, "x"},
		{"abc", 1, "…"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.width))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcd…", PadRight("abcdefgh", 5))
}

func TestTaskDate(t *testing.T) {
	assert.Equal(t, "May 1, 2024", TaskDate("2024-05-01T00:00:00.000Z"))
	assert.Equal(t, "May 1, 2024", TaskDate("2024-05-01T00:00:00Z"))
	assert.Equal(t, "someday", TaskDate("someday"))
}

func TestAgo(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", Ago(now, now))
	assert.Equal(t, "5 minutes ago", Ago(now.Add(-5*time.Minute), now))
	assert.Equal(t, "2 hours ago", Ago(now.Add(-2*time.Hour), now))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1 record", Count(1, "record"))
	assert.Equal(t, "0 records", Count(0, "record"))
	assert.Equal(t, "1,200 records", Count(1200, "record"))
}

func TestOpBadge(t *testing.T) {
	assert.Contains(t, OpBadge(domain.OpAdd), "add")
	assert.Contains(t, OpBadge(domain.OpDelete), "delete")
	assert.Contains(t, OpBadge(domain.OpAddCollege), "college")
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("Tasks", "content here")
	assert.Contains(t, result, "TASKS")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B"},
		[][]string{{StyleGreen.Render("long cell"), "x"}, {"s", "y"}},
	))

	assert.Equal(t, "A          B\n─────────  ─\nlong cell  x\ns          y\n", out)
}

func TestRenderTableMax_Truncates(t *testing.T) {
	out := stripANSI(RenderTableMax([]string{"LINK"}, [][]string{{"https://example.edu/very/long"}}, 10))
	assert.Contains(t, out, "https://e…")
	assert.NotContains(t, out, "very")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}
