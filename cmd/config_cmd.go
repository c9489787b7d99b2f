package cmd

import (
	"fmt"

	"github.com/theirongolddev/hustle/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency symbol:          %s\n", cfg.General.CurrencySymbol)
	fmt.Printf("    Default weekly hours:     %d\n", cfg.General.DefaultWeeklyHours)
	fmt.Printf("    Default project duration: %d\n", cfg.General.DefaultProjectDuration)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `hustle setup` to reconfigure.")
	return nil
}
