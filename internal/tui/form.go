package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/hustle/internal/model"
	"github.com/theirongolddev/hustle/internal/pricing"
	"github.com/theirongolddev/hustle/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// formValues is bound to the huh fields. It outlives a single form so that
// editing starts from the previous answers.
type formValues struct {
	currentJob  string
	targetWork  string
	income      string
	expenses    string
	weeklyHours int
	duration    string
}

func newFormValues(defaultHours, defaultDuration int) *formValues {
	return &formValues{
		weeklyHours: defaultHours,
		duration:    strconv.Itoa(defaultDuration),
	}
}

// answers converts the bound values. duration has already passed
// validateDuration by the time the form completes.
func (v *formValues) answers() model.Answers {
	d, _ := strconv.Atoi(strings.TrimSpace(v.duration))
	return model.Answers{
		CurrentJob:           strings.TrimSpace(v.currentJob),
		TargetWork:           strings.TrimSpace(v.targetWork),
		MonthlyIncomeGoal:    v.income,
		MonthlyExpenses:      v.expenses,
		WeeklyHoursAvailable: v.weeklyHours,
		ProjectDurationHours: d,
	}
}

func validateDuration(s string) error {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a whole number of hours")
	}
	if d < pricing.MinProjectDuration || d > pricing.MaxProjectDuration {
		return fmt.Errorf("must be between %d and %d", pricing.MinProjectDuration, pricing.MaxProjectDuration)
	}
	return nil
}

func hourOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, pricing.MaxWeeklyHours)
	for h := pricing.MinWeeklyHours; h <= pricing.MaxWeeklyHours; h++ {
		label := strconv.Itoa(h) + " hrs/week"
		if h == 1 {
			label = "1 hr/week"
		}
		opts = append(opts, huh.NewOption(label, h))
	}
	return opts
}

// newPlanForm builds the calculator form. Money fields are never validated
// here: bad input is reported next to the results instead of blocking.
func newPlanForm(v *formValues, symbol string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("1. What do you currently do?").
				Placeholder("e.g. Accountant, Student, Customer Service Rep").
				Value(&v.currentJob),
			huh.NewInput().
				Title("2. What kind of work do you want to earn income from?").
				Placeholder("e.g. Graphic Design, Hair Styling, Copywriting").
				Value(&v.targetWork),
		),
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("3. What is your ideal monthly income? (%s)", symbol)).
				Description("Think about the total amount you would love to earn each month from your side hustle or service.").
				Placeholder("e.g. 200,000").
				Value(&v.income),
			huh.NewInput().
				Title(fmt.Sprintf("4. Optional: Add your estimated monthly expenses (%s)", symbol)).
				Description("This helps the calculator recommend a price that covers your needs.").
				Placeholder("e.g. 200,000").
				Value(&v.expenses),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("5. How many hours per week can you realistically dedicate to this work?").
				Description("Consider your current schedule. Be honest with the time you can consistently give.").
				Options(hourOptions()...).
				Height(8).
				Value(&v.weeklyHours),
			huh.NewInput().
				Title("6. On average, how many hours does it take you to complete one project?").
				Description("If one job/task takes you a full day (e.g. 5 hours), type that here.").
				Placeholder(fmt.Sprintf("%d-%d", pricing.MinProjectDuration, pricing.MaxProjectDuration)).
				Validate(validateDuration).
				Value(&v.duration),
		),
	).WithTheme(theme.Active.Huh()).WithShowHelp(true)
}
