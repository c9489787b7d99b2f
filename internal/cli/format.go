// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"

	"github.com/theirongolddev/hustle/internal/model"
	"github.com/theirongolddev/hustle/internal/money"
)

// Line is one labelled figure of a plan.
type Line struct {
	Icon  string
	Label string
	Value string
}

// FormatCount formats a fractional count with one decimal, e.g. 8 -> "8.0".
func FormatCount(f float64) string {
	return fmt.Sprintf("%.1f", f)
}

// FormatWeeklyHours formats hours per week, e.g. 10 -> "10.0 hrs/week".
func FormatWeeklyHours(h float64) string {
	return fmt.Sprintf("%.1f hrs/week", h)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// PlanLines returns the four headline figures of a plan in display order.
func PlanLines(p model.Plan, symbol string) []Line {
	return []Line{
		{"📌", "Suggested Hourly Rate", money.Format(symbol, p.RoundedHourlyRate)},
		{"📦", "Suggested Price per Project", money.Format(symbol, p.RoundedProjectPrice)},
		{"📈", "Projects Needed per Month", FormatCount(p.ProjectsNeeded)},
		{"🕒", "Weekly Hours Needed to Reach Goal", FormatWeeklyHours(p.WeeklyHoursNeeded)},
	}
}

// NoticePrefix returns the marker shown before a notice of the given level.
func NoticePrefix(l model.Level) string {
	switch l {
	case model.LevelError:
		return "⚠️"
	case model.LevelWarning:
		return "❗"
	default:
		return "ℹ"
	}
}
