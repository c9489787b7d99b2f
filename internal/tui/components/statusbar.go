package components

import (
	"strings"

	"github.com/theirongolddev/hustle/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar with left and right aligned text.
func RenderStatusBar(width int, left, right string) string {
	t := theme.Active

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	bar := " " + left + strings.Repeat(" ", padding) + right + " "

	return lipgloss.NewStyle().Foreground(t.TextMuted).Render(bar)
}
