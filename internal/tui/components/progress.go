package components

import (
	"fmt"

	"github.com/theirongolddev/hustle/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForLoad returns green/yellow/orange/red based on how much of the
// available time a plan uses.
func ColorForLoad(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct > 1:
		return t.Red
	case pct >= 0.9:
		return t.Orange
	case pct >= 0.7:
		return t.Yellow
	default:
		return t.Green
	}
}

// CapacityBar renders a labelled bar for the share of weekly hours a plan
// needs. pct above 1 fills the bar and is reported as-is.
func CapacityBar(label string, pct float64, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	color := ColorForLoad(pct)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(barWidth, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return labelStyle.Render(label) + " " +
		bar.ViewAs(min(pct, 1)) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
