// Package model defines the data types shared by the calculator and its presenters.
package model

import "github.com/shopspring/decimal"

// Answers holds the form answers exactly as the user typed them.
type Answers struct {
	CurrentJob           string
	TargetWork           string
	MonthlyIncomeGoal    string
	MonthlyExpenses      string
	WeeklyHoursAvailable int
	ProjectDurationHours int
}

// Input is the normalized record a plan is computed from.
type Input struct {
	MonthlyIncomeGoal    int64 `json:"monthly_income_goal" yaml:"monthly_income_goal"`
	MonthlyExpenses      int64 `json:"monthly_expenses" yaml:"monthly_expenses"`
	WeeklyHoursAvailable int   `json:"weekly_hours_available" yaml:"weekly_hours_available"`
	ProjectDurationHours int   `json:"project_duration_hours" yaml:"project_duration_hours"`
}

// MonthlyHoursAvailable treats a month as four working weeks.
func (in Input) MonthlyHoursAvailable() int {
	return in.WeeklyHoursAvailable * 4
}

// TotalNeededIncome is the income goal plus expenses.
func (in Input) TotalNeededIncome() int64 {
	return in.MonthlyIncomeGoal + in.MonthlyExpenses
}

// Plan holds the figures derived from an Input.
type Plan struct {
	Input Input

	HourlyRate          float64
	ProjectPrice        float64
	RoundedHourlyRate   decimal.Decimal
	RoundedProjectPrice decimal.Decimal
	ProjectsNeeded      float64
	WeeklyHoursNeeded   float64
}

// Level classifies a Notice.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notice is an inline message shown instead of (or next to) a plan.
type Notice struct {
	Level   Level
	Message string
}
