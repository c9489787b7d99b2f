package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/hustle/internal/config"
	"github.com/theirongolddev/hustle/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type noopMsg struct{}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// submitted returns an app whose form has just been completed with the
// given money answers.
func submitted(t *testing.T, income, expenses string, hours int, duration string) App {
	t.Helper()

	a := NewApp(config.DefaultConfig())
	a.values.income = income
	a.values.expenses = expenses
	a.values.weeklyHours = hours
	a.values.duration = duration
	a.form.State = huh.StateCompleted

	m, cmd := a.Update(noopMsg{})
	if cmd != nil {
		t.Fatalf("completion returned a command, want nil")
	}
	got, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return got
}

func TestNewApp_UsesConfigDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.DefaultWeeklyHours = 25
	cfg.General.DefaultProjectDuration = 3

	a := NewApp(cfg)
	if a.stage != stageForm {
		t.Fatalf("stage = %v, want form", a.stage)
	}
	ans := a.values.answers()
	if ans.WeeklyHoursAvailable != 25 {
		t.Errorf("WeeklyHoursAvailable = %d, want 25", ans.WeeklyHoursAvailable)
	}
	if ans.ProjectDurationHours != 3 {
		t.Errorf("ProjectDurationHours = %d, want 3", ans.ProjectDurationHours)
	}
}

func TestFormCompletionShowsPlan(t *testing.T) {
	a := submitted(t, "100,000", "", 10, "5")

	if a.stage != stageResult {
		t.Fatalf("stage = %v, want result", a.stage)
	}
	res := a.Result()
	if res.Plan == nil {
		t.Fatalf("expected a plan, notices: %+v", res.Notices)
	}
	if res.Plan.ProjectsNeeded != 8 {
		t.Errorf("ProjectsNeeded = %v, want 8", res.Plan.ProjectsNeeded)
	}

	view := a.View()
	for _, s := range []string{"₦2,500", "₦12,500", "8.0", "10.0 hrs/week", "100%"} {
		if !strings.Contains(view, s) {
			t.Errorf("result view missing %q", s)
		}
	}
}

func TestResultShowsHoursAtRoundedPrice(t *testing.T) {
	// 250 per project rounds down to 200, so hitting the goal takes 25% more time
	a := submitted(t, "10,000", "", 10, "1")

	view := a.View()
	for _, s := range []string{"Hours at rounded price", "125%"} {
		if !strings.Contains(view, s) {
			t.Errorf("result view missing %q", s)
		}
	}
}

func TestFormCompletionWithBadMoneyWarns(t *testing.T) {
	a := submitted(t, "abc", "", 10, "5")

	res := a.Result()
	if res.Plan != nil {
		t.Fatalf("expected no plan, got %+v", res.Plan)
	}
	if len(res.Notices) != 2 {
		t.Fatalf("notices = %+v, want warning + info", res.Notices)
	}

	view := a.View()
	if !strings.Contains(view, "only digits and commas") {
		t.Error("view missing invalid-number warning")
	}
	if !strings.Contains(view, "income goal or expense") {
		t.Error("view missing zero-income info")
	}
}

func TestResultKeys(t *testing.T) {
	a := submitted(t, "100,000", "", 10, "5")

	_, cmd := a.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}

	m, _ := a.Update(keyRunes("e"))
	edited := m.(App)
	if edited.stage != stageForm {
		t.Fatalf("stage after e = %v, want form", edited.stage)
	}
	if edited.values.income != "100,000" {
		t.Errorf("income after edit = %q, want previous answer kept", edited.values.income)
	}
	if edited.form.State != huh.StateNormal {
		t.Errorf("rebuilt form state = %v, want normal", edited.form.State)
	}
}

func TestFormAbortQuits(t *testing.T) {
	a := NewApp(config.DefaultConfig())
	a.form.State = huh.StateAborted

	_, cmd := a.Update(noopMsg{})
	if cmd == nil {
		t.Fatal("aborted form returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("aborted form did not quit")
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := NewApp(config.DefaultConfig())
	m, _ := a.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	if !strings.Contains(m.View(), "too narrow") {
		t.Error("expected too-narrow message")
	}
}

func TestValidateDuration(t *testing.T) {
	for _, ok := range []string{"1", "40", " 5 "} {
		if err := validateDuration(ok); err != nil {
			t.Errorf("validateDuration(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "0", "41", "five", "2.5"} {
		if err := validateDuration(bad); err == nil {
			t.Errorf("validateDuration(%q) = nil, want error", bad)
		}
	}
}

func TestHourOptions(t *testing.T) {
	opts := hourOptions()
	if len(opts) != 60 {
		t.Fatalf("len = %d, want 60", len(opts))
	}
	if opts[0].Value != 1 || opts[59].Value != 60 {
		t.Errorf("range = %d..%d, want 1..60", opts[0].Value, opts[59].Value)
	}
}

func TestAnswersSummary(t *testing.T) {
	tests := []struct {
		in   model.Answers
		want string
	}{
		{model.Answers{CurrentJob: "Accountant", TargetWork: "Copywriting"}, "From Accountant to Copywriting."},
		{model.Answers{TargetWork: "Hair Styling"}, "Earning from Hair Styling."},
		{model.Answers{CurrentJob: "Student"}, "Currently: Student."},
		{model.Answers{}, ""},
	}
	for _, tt := range tests {
		if got := answersSummary(tt.in); got != tt.want {
			t.Errorf("answersSummary(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
