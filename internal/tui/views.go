package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/hustle/internal/cli"
	"github.com/theirongolddev/hustle/internal/model"
	"github.com/theirongolddev/hustle/internal/pricing"
	"github.com/theirongolddev/hustle/internal/tui/components"
	"github.com/theirongolddev/hustle/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const fallbackWidth = 80

func (a App) viewWidth() int {
	if w := a.contentWidth(); w > 0 {
		return w
	}
	return fallbackWidth
}

func (a App) header() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  🔧 Side Hustle Income & Time Calculator"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  Estimate how much to charge and how many projects you need to reach your monthly goal."))
	b.WriteString("\n\n")
	return b.String()
}

func (a App) viewForm() string {
	return a.header() + a.form.View()
}

func (a App) viewResult() string {
	t := theme.Active
	w := a.viewWidth()
	res := a.result

	var b strings.Builder
	b.WriteString(a.header())

	if summary := answersSummary(a.values.answers()); summary != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render("  " + summary))
		b.WriteString("\n\n")
	}

	for _, n := range res.Notices {
		b.WriteString(renderNotice(n))
		b.WriteString("\n")
	}
	if len(res.Notices) > 0 {
		b.WriteString("\n")
	}

	if res.Plan != nil {
		b.WriteString(a.renderPlan(*res.Plan, w))
		b.WriteString("\n")
	}

	b.WriteString(components.RenderStatusBar(w, a.help.View(a.keys), a.cfg.General.CurrencySymbol+" · "+t.Name))
	return b.String()
}

func (a App) renderPlan(p model.Plan, w int) string {
	t := theme.Active
	symbol := a.cfg.General.CurrencySymbol

	lines := cli.PlanLines(p, symbol)
	metrics := make([]components.Metric, len(lines))
	for i, l := range lines {
		metrics[i] = components.Metric{Label: l.Icon + " " + l.Label, Value: l.Value}
	}
	metrics[1].Hint = fmt.Sprintf("%d hrs per project", p.Input.ProjectDurationHours)
	metrics[3].Hint = fmt.Sprintf("of %d hrs/week available", p.Input.WeeklyHoursAvailable)

	perRow := 2
	if w < 70 {
		perRow = 1
	}

	var body strings.Builder
	body.WriteString(components.MetricGrid(metrics, perRow, components.CardInnerWidth(w)))
	body.WriteString("\n\n")
	if pct, ok := pricing.Capacity(p); ok {
		const label = "Hours at rounded price"
		barW := components.CardInnerWidth(w) - lipgloss.Width(label) - 7
		body.WriteString(components.CapacityBar(label, pct, barW))
		body.WriteString("\n\n")
	}
	body.WriteString(lipgloss.NewStyle().
		Foreground(t.TextDim).
		Width(components.CardInnerWidth(w)).
		Render(cli.Caption))

	return components.ContentCard("💡 Your Suggested Plan", body.String(), w)
}

func renderNotice(n model.Notice) string {
	t := theme.Active

	color := t.Blue
	switch n.Level {
	case model.LevelWarning:
		color = t.Orange
	case model.LevelError:
		color = t.Red
	}
	return lipgloss.NewStyle().Foreground(color).Render("  " + cli.NoticePrefix(n.Level) + " " + n.Message)
}

// answersSummary echoes the free-text answers, which the calculation ignores.
func answersSummary(a model.Answers) string {
	switch {
	case a.CurrentJob != "" && a.TargetWork != "":
		return fmt.Sprintf("From %s to %s.", a.CurrentJob, a.TargetWork)
	case a.TargetWork != "":
		return fmt.Sprintf("Earning from %s.", a.TargetWork)
	case a.CurrentJob != "":
		return fmt.Sprintf("Currently: %s.", a.CurrentJob)
	}
	return ""
}

func (a App) viewTooNarrow() string {
	return fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  hustle needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
}
