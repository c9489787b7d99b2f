package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/theirongolddev/hustle/internal/cli"
	"github.com/theirongolddev/hustle/internal/model"
	"github.com/theirongolddev/hustle/internal/pricing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagIncome   string
	flagExpenses string
	flagHours    int
	flagDuration int
	flagOutput   string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate a plan from flags without the form",
	Example: `  hustle calc --income 200,000 --hours 10 --duration 5
  hustle calc --income 150000 --expenses 50,000 --output json`,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVar(&flagIncome, "income", "", "Ideal monthly income, e.g. 200,000")
	calcCmd.Flags().StringVar(&flagExpenses, "expenses", "", "Estimated monthly expenses (optional)")
	calcCmd.Flags().IntVar(&flagHours, "hours", 0, "Hours per week you can dedicate (1-60, default from config)")
	calcCmd.Flags().IntVar(&flagDuration, "duration", 0, "Hours to complete one project (1-40, default from config)")
	calcCmd.Flags().StringVarP(&flagOutput, "output", "o", "table", "Output format: table, json, yaml")
	rootCmd.AddCommand(calcCmd)
}

// planOutput is the machine-readable form of a calculation.
type planOutput struct {
	Input             model.Input `json:"input" yaml:"input"`
	HourlyRate        *int64      `json:"hourly_rate,omitempty" yaml:"hourly_rate,omitempty"`
	ProjectPrice      *int64      `json:"project_price,omitempty" yaml:"project_price,omitempty"`
	ProjectsNeeded    *float64    `json:"projects_needed,omitempty" yaml:"projects_needed,omitempty"`
	WeeklyHoursNeeded *float64    `json:"weekly_hours_needed,omitempty" yaml:"weekly_hours_needed,omitempty"`
	Notices           []notice    `json:"notices,omitempty" yaml:"notices,omitempty"`
}

type notice struct {
	Level   string `json:"level" yaml:"level"`
	Message string `json:"message" yaml:"message"`
}

func newPlanOutput(res pricing.Result) planOutput {
	out := planOutput{Input: res.Input}
	if p := res.Plan; p != nil {
		hourly := p.RoundedHourlyRate.IntPart()
		price := p.RoundedProjectPrice.IntPart()
		out.HourlyRate = &hourly
		out.ProjectPrice = &price
		out.ProjectsNeeded = &p.ProjectsNeeded
		out.WeeklyHoursNeeded = &p.WeeklyHoursNeeded
	}
	for _, n := range res.Notices {
		out.Notices = append(out.Notices, notice{Level: n.Level.String(), Message: n.Message})
	}
	return out
}

func runCalc(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	answers := model.Answers{
		MonthlyIncomeGoal:    flagIncome,
		MonthlyExpenses:      flagExpenses,
		WeeklyHoursAvailable: cfg.General.DefaultWeeklyHours,
		ProjectDurationHours: cfg.General.DefaultProjectDuration,
	}
	if cmd.Flags().Changed("hours") {
		answers.WeeklyHoursAvailable = flagHours
	}
	if cmd.Flags().Changed("duration") {
		answers.ProjectDurationHours = flagDuration
	}

	in, notices := pricing.FromAnswers(answers)
	if err := pricing.Validate(in); err != nil {
		return err
	}

	res := pricing.Evaluate(in)
	res.Notices = append(notices, res.Notices...)
	log.Printf("calc: input=%+v notices=%d", res.Input, len(res.Notices))

	return writeResult(os.Stdout, os.Stderr, res, cfg.General.CurrencySymbol, flagOutput)
}

// writeResult renders res in the requested format. Table output sends
// notices to errOut; structured formats carry them inline.
func writeResult(out, errOut io.Writer, res pricing.Result, symbol, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(newPlanOutput(res))
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(newPlanOutput(res)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "table", "":
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}

	if !flagQuiet {
		for _, n := range res.Notices {
			fmt.Fprintln(errOut, cli.RenderNotice(n))
		}
	}
	if res.Plan == nil {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("SIDE HUSTLE PLAN"))
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderPlan(*res.Plan, symbol))
	return nil
}
