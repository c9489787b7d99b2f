package cmd

import (
	"fmt"
	"log"

	"github.com/theirongolddev/hustle/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Fill in the calculator form interactively (default)",
	RunE:  runForm,
}

func init() {
	rootCmd.AddCommand(formCmd)
}

func runForm(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	// Force TrueColor profile so themed styles produce ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(cfg)
	final, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if a, ok := final.(tui.App); ok {
		if res := a.Result(); res.Plan != nil {
			log.Printf("plan: hourly=%s project=%s projects=%.1f weekly=%.1f",
				res.Plan.RoundedHourlyRate, res.Plan.RoundedProjectPrice,
				res.Plan.ProjectsNeeded, res.Plan.WeeklyHoursNeeded)
		}
	}
	return nil
}
