// Package pricing turns an income goal and available time into a suggested
// hourly rate, price per project, and workload.
package pricing

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/hustle/internal/model"
	"github.com/theirongolddev/hustle/internal/money"
)

const (
	weeksPerMonth = 4

	MinWeeklyHours     = 1
	MaxWeeklyHours     = 60
	MinProjectDuration = 1
	MaxProjectDuration = 40
)

var (
	ErrNoHours        = errors.New("pricing: no weekly hours available")
	ErrNoDuration     = errors.New("pricing: project duration is zero")
	ErrNoIncome       = errors.New("pricing: no income goal or expenses")
	ErrDivisionByZero = errors.New("pricing: division by zero")
	ErrOutOfRange     = errors.New("pricing: value out of range")
)

// Calculate derives a plan from in. Guards are checked in order: hours,
// project duration, money amounts, then total income. A guard failure
// returns no plan.
func Calculate(in model.Input) (model.Plan, error) {
	monthlyHours := in.MonthlyHoursAvailable()

	switch {
	case monthlyHours == 0:
		return model.Plan{}, ErrNoHours
	case in.ProjectDurationHours == 0:
		return model.Plan{}, ErrNoDuration
	}
	if err := checkAmount("monthly income", in.MonthlyIncomeGoal); err != nil {
		return model.Plan{}, err
	}
	if err := checkAmount("monthly expenses", in.MonthlyExpenses); err != nil {
		return model.Plan{}, err
	}

	// both amounts are capped, so the sum cannot overflow
	total := in.TotalNeededIncome()
	if total == 0 {
		return model.Plan{}, ErrNoIncome
	}

	hourlyRate := float64(total) / float64(monthlyHours)
	projectPrice := hourlyRate * float64(in.ProjectDurationHours)
	if projectPrice == 0 {
		return model.Plan{}, ErrDivisionByZero
	}

	// projects needed uses the unrounded price
	projectsNeeded := float64(total) / projectPrice
	weeklyHoursNeeded := projectsNeeded * float64(in.ProjectDurationHours) / weeksPerMonth

	return model.Plan{
		Input:               in,
		HourlyRate:          hourlyRate,
		ProjectPrice:        projectPrice,
		RoundedHourlyRate:   money.RoundToHundreds(hourlyRate),
		RoundedProjectPrice: money.RoundToHundreds(projectPrice),
		ProjectsNeeded:      projectsNeeded,
		WeeklyHoursNeeded:   weeklyHoursNeeded,
	}, nil
}

// Validate checks the bounded fields against the ranges the form allows.
func Validate(in model.Input) error {
	if in.WeeklyHoursAvailable < MinWeeklyHours || in.WeeklyHoursAvailable > MaxWeeklyHours {
		return fmt.Errorf("%w: weekly hours must be between %d and %d, got %d",
			ErrOutOfRange, MinWeeklyHours, MaxWeeklyHours, in.WeeklyHoursAvailable)
	}
	if in.ProjectDurationHours < MinProjectDuration || in.ProjectDurationHours > MaxProjectDuration {
		return fmt.Errorf("%w: project duration must be between %d and %d, got %d",
			ErrOutOfRange, MinProjectDuration, MaxProjectDuration, in.ProjectDurationHours)
	}
	return nil
}

func checkAmount(name string, v int64) error {
	if v < 0 || v > money.MaxAmount {
		return fmt.Errorf("%w: %s must be between 0 and %d, got %d",
			ErrOutOfRange, name, money.MaxAmount, v)
	}
	return nil
}

// Capacity returns the share of available weekly hours needed when charging
// the rounded project price instead of the exact one. Rounding down pushes it
// above 1, rounding up pulls it below. ok is false when the rounded price is
// zero or no hours are available.
func Capacity(p model.Plan) (pct float64, ok bool) {
	price := p.RoundedProjectPrice.InexactFloat64()
	if price <= 0 || p.Input.WeeklyHoursAvailable <= 0 {
		return 0, false
	}
	projects := float64(p.Input.TotalNeededIncome()) / price
	weeklyHours := projects * float64(p.Input.ProjectDurationHours) / weeksPerMonth
	return weeklyHours / float64(p.Input.WeeklyHoursAvailable), true
}
