// Package tui provides the interactive Bubble Tea calculator for hustle.
package tui

import (
	"github.com/theirongolddev/hustle/internal/config"
	"github.com/theirongolddev/hustle/internal/pricing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type stage int

const (
	stageForm stage = iota
	stageResult
)

const (
	minTerminalWidth = 50
	maxContentWidth  = 100
)

// App is the root Bubble Tea model: the form, then the plan it produces.
type App struct {
	cfg config.Config

	stage  stage
	form   *huh.Form
	values *formValues
	result pricing.Result

	keys resultKeys
	help help.Model

	width  int
	height int
}

// NewApp creates the calculator with form defaults taken from cfg.
func NewApp(cfg config.Config) App {
	values := newFormValues(cfg.General.DefaultWeeklyHours, cfg.General.DefaultProjectDuration)
	return App{
		cfg:    cfg,
		stage:  stageForm,
		form:   newPlanForm(values, cfg.General.CurrencySymbol),
		values: values,
		keys:   newResultKeys(),
		help:   help.New(),
	}
}

// Result returns the most recent calculation. Plan is nil until the form
// has been submitted at least once.
func (a App) Result() pricing.Result {
	return a.result
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.form.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.stage == stageForm {
			a.form = a.form.WithWidth(a.contentWidth())
			return a.updateForm(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.stage == stageResult {
			return a.updateResult(msg)
		}
	}

	if a.stage == stageForm {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.result = pricing.EvaluateAnswers(a.values.answers())
		a.stage = stageResult
		return a, nil
	case huh.StateAborted:
		return a, tea.Quit
	}

	return a, cmd
}

func (a App) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Edit):
		// Rebuild the form on the same values so the user edits, not retypes.
		a.form = newPlanForm(a.values, a.cfg.General.CurrencySymbol)
		if a.width > 0 {
			a.form = a.form.WithWidth(a.contentWidth())
		}
		a.stage = stageForm
		return a, a.form.Init()
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	}
	return a, nil
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width > 0 && a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.stage == stageForm {
		return a.viewForm()
	}
	return a.viewResult()
}
