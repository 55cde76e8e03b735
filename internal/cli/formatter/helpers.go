package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	return renderBorder(ColorDim, title, content)
}

// RenderHighlightBox is RenderBox with the accent border used for the
// competition month.
func RenderHighlightBox(title string, content string) string {
	return renderBorder(ColorHeader, title, content)
}

func renderBorder(border lipgloss.Color, title, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		titleRendered := StyleHeader.Render(title)
		return boxStyle.Render(titleRendered + "\n" + content)
	}
	return boxStyle.Render(content)
}

// Chip renders a small tag such as a technology name.
func Chip(label string) string {
	return StyleBlue.Render("[" + label + "]")
}

// Chips renders labels as space-separated chips. Empty labels are skipped.
func Chips(labels []string) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		if strings.TrimSpace(l) == "" {
			continue
		}
		parts = append(parts, Chip(l))
	}
	return strings.Join(parts, " ")
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return HumanDate(t)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t)
	}
}

// RunStatusPill returns a colored indicator for a generation run status.
func RunStatusPill(status generation.RunStatus) string {
	switch status {
	case generation.RunOK:
		return StyleGreen.Render("● ok")
	case generation.RunFailed:
		return StyleRed.Render("✖ failed")
	default:
		return StyleDim.Render(string(status))
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatLatency converts milliseconds into a short human-friendly duration.
func FormatLatency(ms int64) string {
	if ms <= 0 {
		return "0ms"
	}
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	if ms < 60_000 {
		return fmt.Sprintf("%.1fs", float64(ms)/1000)
	}
	m := ms / 60_000
	s := (ms % 60_000) / 1000
	if s == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dm %ds", m, s)
}
