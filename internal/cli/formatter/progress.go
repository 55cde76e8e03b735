package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// progressStyle picks the bar colour for a completion fraction.
func progressStyle(frac float64) lipgloss.Style {
	switch {
	case frac >= 2.0/3:
		return StyleGreen
	case frac >= 1.0/3:
		return StyleYellow
	default:
		return StyleRed
	}
}

// RenderProgress draws a width-cell bar for done out of total followed by
// the percentage, e.g. "[██░░░░░░]  25%". A zero total is 0%.
func RenderProgress(done, total, width int) string {
	width = max(width, 2)
	frac := 0.0
	if total > 0 {
		frac = min(max(float64(done)/float64(total), 0), 1)
	}

	filled := int(frac * float64(width))
	bar := progressStyle(frac).Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("[%s] %3.0f%%", bar, frac*100)
}

// RenderRoadmapProgress is RenderProgress plus a "done/total 완료" count.
func RenderRoadmapProgress(done, total, width int) string {
	return RenderProgress(done, total, width) + " " + Dim(fmt.Sprintf("%d/%d 완료", done, total))
}
