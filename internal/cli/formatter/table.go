package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column describes one table column. Max > 0 truncates longer cells with
// an ellipsis.
type Column struct {
	Title string
	Right bool
	Max   int
}

const tableGap = "  "

// RenderTable lays rows out under cols. Widths are measured in terminal
// cells, so styled and Hangul cells line up.
func RenderTable(cols []Column, rows [][]string) string {
	if len(cols) == 0 {
		return ""
	}

	cells := make([][]string, len(rows))
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = lipgloss.Width(c.Title)
	}
	for r, row := range rows {
		cells[r] = make([]string, len(cols))
		for i, c := range cols {
			if i >= len(row) {
				continue
			}
			cell := row[i]
			if c.Max > 0 && lipgloss.Width(cell) > c.Max {
				cell = truncateCells(cell, c.Max)
			}
			cells[r][i] = cell
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	line := func(vals []string, style func(...string) string) string {
		parts := make([]string, len(cols))
		for i, c := range cols {
			st := lipgloss.NewStyle().Width(widths[i])
			if c.Right {
				st = st.Align(lipgloss.Right)
			}
			v := vals[i]
			if style != nil {
				v = style(v)
			}
			parts[i] = st.Render(v)
		}
		return strings.TrimRight(strings.Join(parts, tableGap), " ")
	}

	titles := make([]string, len(cols))
	rules := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
		rules[i] = strings.Repeat("─", widths[i])
	}

	var b strings.Builder
	b.WriteString(line(titles, StyleHeader.Render) + "\n")
	b.WriteString(line(rules, StyleDim.Render) + "\n")
	for _, r := range cells {
		b.WriteString(line(r, nil) + "\n")
	}
	return b.String()
}

// truncateCells cuts s to at most n terminal cells, ending in "…".
func truncateCells(s string, n int) string {
	if n <= 1 {
		return "…"
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > n-1 {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + "…"
}
