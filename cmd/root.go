// Package cmd implements the hustle CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/theirongolddev/hustle/internal/config"
	"github.com/theirongolddev/hustle/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagCurrency string
	flagTheme    string
	flagQuiet    bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "hustle",
	Short: "Side Hustle Income & Time Calculator",
	Long:  "Estimate how much to charge and how many projects you need to reach your monthly goal.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		log.SetFlags(log.Ltime)
		log.SetPrefix("hustle: ")
		if flagVerbose {
			log.SetOutput(os.Stderr)
		} else {
			log.SetOutput(io.Discard)
		}
	},
	SilenceUsage: true,
	RunE:         runForm,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagCurrency, "currency", "c", "", "Currency symbol (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress notices on stderr")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
}

// loadConfig is the shared config path used by all commands: the config
// file, then flag overrides. A broken config file falls back to defaults.
func loadConfig() config.Config {
	cfg := readConfig()
	if flagCurrency != "" {
		cfg.General.CurrencySymbol = flagCurrency
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}
	theme.SetActive(cfg.Appearance.Theme)
	return cfg
}

// readConfig loads the saved config without applying flag overrides.
func readConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		}
	}
	log.Printf("config: %s (exists=%v)", config.Path(), config.Exists())
	return cfg
}
