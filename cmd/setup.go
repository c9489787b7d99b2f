package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/hustle/internal/config"
	"github.com/theirongolddev/hustle/internal/pricing"
	"github.com/theirongolddev/hustle/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose currency, form defaults and theme",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues is bound to the setup wizard fields.
type setupValues struct {
	currency string
	hours    string
	duration string
	theme    string
}

func newSetupValues(cfg config.Config) *setupValues {
	return &setupValues{
		currency: cfg.General.CurrencySymbol,
		hours:    strconv.Itoa(cfg.General.DefaultWeeklyHours),
		duration: strconv.Itoa(cfg.General.DefaultProjectDuration),
		theme:    cfg.Appearance.Theme,
	}
}

// seed pre-fills the prompts from one-off flags. Nothing reaches the saved
// config unless the wizard is submitted.
func (v *setupValues) seed(currency, themeName string) {
	if currency != "" {
		v.currency = currency
	}
	if themeName != "" {
		v.theme = theme.ByName(themeName).Name
	}
}

// apply copies validated wizard values onto cfg.
func (v *setupValues) apply(cfg *config.Config) {
	cfg.General.CurrencySymbol = strings.TrimSpace(v.currency)
	if h, err := strconv.Atoi(strings.TrimSpace(v.hours)); err == nil {
		cfg.General.DefaultWeeklyHours = h
	}
	if d, err := strconv.Atoi(strings.TrimSpace(v.duration)); err == nil {
		cfg.General.DefaultProjectDuration = d
	}
	cfg.Appearance.Theme = theme.ByName(v.theme).Name
}

func intRange(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a whole number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func newSetupForm(v *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to hustle!").
				Description("Pick the defaults the calculator form starts with."),
			huh.NewInput().
				Title("Currency symbol").
				Placeholder("₦").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("currency symbol is required")
					}
					return nil
				}).
				Value(&v.currency),
			huh.NewInput().
				Title("Default hours per week").
				Validate(intRange(pricing.MinWeeklyHours, pricing.MaxWeeklyHours)).
				Value(&v.hours),
			huh.NewInput().
				Title("Default hours per project").
				Validate(intRange(pricing.MinProjectDuration, pricing.MaxProjectDuration)).
				Value(&v.duration),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&v.theme),
		),
	).WithTheme(theme.Active.Huh())
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg := readConfig()
	vals := newSetupValues(cfg)
	vals.seed(flagCurrency, flagTheme)
	theme.SetActive(vals.theme)

	if err := newSetupForm(vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	vals.apply(&cfg)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `hustle setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
