package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/hustle/internal/model"
	"github.com/theirongolddev/hustle/internal/money"

	"github.com/shopspring/decimal"
)

func TestCalculate_ReferencePlan(t *testing.T) {
	// 100,000 over 40 monthly hours (10/week), 5-hour projects.
	in := model.Input{
		MonthlyIncomeGoal:    100000,
		WeeklyHoursAvailable: 10,
		ProjectDurationHours: 5,
	}

	p, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.HourlyRate != 2500 {
		t.Errorf("HourlyRate = %v, want 2500", p.HourlyRate)
	}
	if !p.RoundedHourlyRate.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("RoundedHourlyRate = %s, want 2500", p.RoundedHourlyRate)
	}
	if p.ProjectPrice != 12500 {
		t.Errorf("ProjectPrice = %v, want 12500", p.ProjectPrice)
	}
	if !p.RoundedProjectPrice.Equal(decimal.NewFromInt(12500)) {
		t.Errorf("RoundedProjectPrice = %s, want 12500", p.RoundedProjectPrice)
	}
	if p.ProjectsNeeded != 8.0 {
		t.Errorf("ProjectsNeeded = %v, want 8.0", p.ProjectsNeeded)
	}
	if p.WeeklyHoursNeeded != 10.0 {
		t.Errorf("WeeklyHoursNeeded = %v, want 10.0", p.WeeklyHoursNeeded)
	}
	if p.Input != in {
		t.Errorf("Input = %+v, want %+v", p.Input, in)
	}
}

func TestCalculate_ProjectsNeededUsesUnroundedPrice(t *testing.T) {
	// 250,000 needed over 48 monthly hours: 5208.33/h, 15625 per 3h project.
	in := model.Input{
		MonthlyIncomeGoal:    200000,
		MonthlyExpenses:      50000,
		WeeklyHoursAvailable: 12,
		ProjectDurationHours: 3,
	}

	p, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !p.RoundedHourlyRate.Equal(decimal.NewFromInt(5200)) {
		t.Errorf("RoundedHourlyRate = %s, want 5200", p.RoundedHourlyRate)
	}
	if math.Abs(p.ProjectPrice-15625) > 1e-9 {
		t.Errorf("ProjectPrice = %v, want 15625", p.ProjectPrice)
	}
	// 15625 -> 156.25 hundreds -> 156
	if !p.RoundedProjectPrice.Equal(decimal.NewFromInt(15600)) {
		t.Errorf("RoundedProjectPrice = %s, want 15600", p.RoundedProjectPrice)
	}
	if math.Abs(p.ProjectsNeeded-16) > 1e-9 {
		t.Errorf("ProjectsNeeded = %v, want 16 (from unrounded price)", p.ProjectsNeeded)
	}
	if math.Abs(p.WeeklyHoursNeeded-12) > 1e-9 {
		t.Errorf("WeeklyHoursNeeded = %v, want 12", p.WeeklyHoursNeeded)
	}
}

func TestCalculate_Guards(t *testing.T) {
	tests := []struct {
		name string
		in   model.Input
		want error
	}{
		{"zero hours", model.Input{MonthlyIncomeGoal: 1000, ProjectDurationHours: 5}, ErrNoHours},
		{"zero duration", model.Input{MonthlyIncomeGoal: 1000, WeeklyHoursAvailable: 10}, ErrNoDuration},
		{"zero income", model.Input{WeeklyHoursAvailable: 10, ProjectDurationHours: 5}, ErrNoIncome},
		{"hours checked before income", model.Input{ProjectDurationHours: 5}, ErrNoHours},
		{"duration checked before income", model.Input{WeeklyHoursAvailable: 10}, ErrNoDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Calculate(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if p != (model.Plan{}) {
				t.Errorf("expected zero plan, got %+v", p)
			}
		})
	}
}

func TestCalculate_ExpensesOnly(t *testing.T) {
	p, err := Calculate(model.Input{MonthlyExpenses: 40000, WeeklyHoursAvailable: 10, ProjectDurationHours: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.RoundedHourlyRate.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("RoundedHourlyRate = %s, want 1000", p.RoundedHourlyRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		hours, duration int
		ok              bool
	}{
		{1, 1, true},
		{60, 40, true},
		{10, 5, true},
		{0, 5, false},
		{61, 5, false},
		{10, 0, false},
		{10, 41, false},
	}

	for _, tt := range tests {
		err := Validate(model.Input{WeeklyHoursAvailable: tt.hours, ProjectDurationHours: tt.duration})
		if tt.ok && err != nil {
			t.Errorf("Validate(%d, %d) unexpected error: %v", tt.hours, tt.duration, err)
		}
		if !tt.ok && !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Validate(%d, %d) err = %v, want ErrOutOfRange", tt.hours, tt.duration, err)
		}
	}
}

func TestCalculate_RejectsAmountsPastCap(t *testing.T) {
	tests := []model.Input{
		{MonthlyIncomeGoal: math.MaxInt64, MonthlyExpenses: 1, WeeklyHoursAvailable: 10, ProjectDurationHours: 5},
		{MonthlyIncomeGoal: money.MaxAmount + 1, WeeklyHoursAvailable: 10, ProjectDurationHours: 5},
		{MonthlyExpenses: money.MaxAmount + 1, WeeklyHoursAvailable: 10, ProjectDurationHours: 5},
		{MonthlyIncomeGoal: -5, MonthlyExpenses: 5, WeeklyHoursAvailable: 10, ProjectDurationHours: 5},
	}

	for _, in := range tests {
		p, err := Calculate(in)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Calculate(%+v) err = %v, want ErrOutOfRange", in, err)
		}
		if p.ProjectPrice != 0 {
			t.Errorf("Calculate(%+v) returned a plan: %+v", in, p)
		}
	}

	// the cap itself is accepted for both fields
	p, err := Calculate(model.Input{
		MonthlyIncomeGoal:    money.MaxAmount,
		MonthlyExpenses:      money.MaxAmount,
		WeeklyHoursAvailable: 10,
		ProjectDurationHours: 5,
	})
	if err != nil {
		t.Fatalf("Calculate at cap: %v", err)
	}
	if p.HourlyRate <= 0 {
		t.Errorf("HourlyRate = %v, want positive", p.HourlyRate)
	}
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		name   string
		in     model.Input
		want   float64
		wantOK bool
	}{
		// 12,500 needs no rounding, so every available hour is used
		{"exact price", model.Input{MonthlyIncomeGoal: 100000, WeeklyHoursAvailable: 10, ProjectDurationHours: 5}, 1, true},
		// 250 rounds down to 200: 50 projects of one hour over 40 monthly hours
		{"rounded down", model.Input{MonthlyIncomeGoal: 10000, WeeklyHoursAvailable: 10, ProjectDurationHours: 1}, 1.25, true},
		// 15,625 rounds down to 15,600
		{"slightly under", model.Input{MonthlyIncomeGoal: 250000, WeeklyHoursAvailable: 12, ProjectDurationHours: 3}, 750000.0 / 748800.0, true},
		// 2,750 rounds up to 2,800
		{"rounded up", model.Input{MonthlyIncomeGoal: 110000, WeeklyHoursAvailable: 10, ProjectDurationHours: 1}, 110000.0 / 112000.0, true},
		// 2.5 rounds to 0
		{"price rounds to zero", model.Input{MonthlyIncomeGoal: 100, WeeklyHoursAvailable: 10, ProjectDurationHours: 1}, 0, false},
	}

	for _, tt := range tests {
		p, err := Calculate(tt.in)
		if err != nil {
			t.Fatalf("%s: Calculate: %v", tt.name, err)
		}
		got, ok := Capacity(p)
		if ok != tt.wantOK {
			t.Errorf("%s: Capacity ok = %v, want %v", tt.name, ok, tt.wantOK)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: Capacity = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, ok := Capacity(model.Plan{}); ok {
		t.Error("Capacity of empty plan should not be ok")
	}
}
