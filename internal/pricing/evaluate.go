package pricing

import (
	"errors"

	"github.com/theirongolddev/hustle/internal/model"
	"github.com/theirongolddev/hustle/internal/money"
)

// Field labels used to prefix money parse warnings.
const (
	LabelIncome   = "Monthly income"
	LabelExpenses = "Monthly expenses"
)

// Result is the outcome of one pass through the calculator. Plan is nil when
// a guard stopped the computation; Notices explains why.
type Result struct {
	Input   model.Input
	Plan    *model.Plan
	Notices []model.Notice
}

// NoticeFor maps a calculation error to the inline message shown to the user.
func NoticeFor(err error) model.Notice {
	switch {
	case errors.Is(err, ErrNoHours):
		return model.Notice{Level: model.LevelWarning, Message: "Please enter a valid number of weekly hours."}
	case errors.Is(err, ErrNoDuration):
		return model.Notice{Level: model.LevelWarning, Message: "Project duration must be greater than zero."}
	case errors.Is(err, ErrNoIncome):
		return model.Notice{Level: model.LevelInfo, Message: "Please enter an income goal or expense to proceed."}
	case errors.Is(err, ErrDivisionByZero):
		return model.Notice{Level: model.LevelError, Message: "Error: Make sure your inputs are not zero in any critical field like hours or income."}
	case errors.Is(err, ErrOutOfRange):
		return model.Notice{Level: model.LevelWarning, Message: err.Error()}
	default:
		return model.Notice{Level: model.LevelError, Message: err.Error()}
	}
}

// FromAnswers normalizes raw form answers. Unparseable money fields become 0
// and add a warning.
func FromAnswers(a model.Answers) (model.Input, []model.Notice) {
	var notices []model.Notice

	income, n := money.ParseField(LabelIncome, a.MonthlyIncomeGoal)
	if n != nil {
		notices = append(notices, *n)
	}
	expenses, n := money.ParseField(LabelExpenses, a.MonthlyExpenses)
	if n != nil {
		notices = append(notices, *n)
	}

	return model.Input{
		MonthlyIncomeGoal:    income,
		MonthlyExpenses:      expenses,
		WeeklyHoursAvailable: a.WeeklyHoursAvailable,
		ProjectDurationHours: a.ProjectDurationHours,
	}, notices
}

// Evaluate runs Calculate and folds any error into a notice.
func Evaluate(in model.Input) Result {
	res := Result{Input: in}
	plan, err := Calculate(in)
	if err != nil {
		res.Notices = append(res.Notices, NoticeFor(err))
		return res
	}
	res.Plan = &plan
	return res
}

// EvaluateAnswers is FromAnswers followed by Evaluate; parse warnings come
// first in the returned notices.
func EvaluateAnswers(a model.Answers) Result {
	in, notices := FromAnswers(a)
	res := Evaluate(in)
	res.Notices = append(notices, res.Notices...)
	return res
}
