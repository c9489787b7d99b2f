package tui

import "github.com/charmbracelet/bubbles/key"

// resultKeys are the bindings active on the results view.
type resultKeys struct {
	Edit key.Binding
	Quit key.Binding
}

func newResultKeys() resultKeys {
	return resultKeys{
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit answers"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k resultKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k resultKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
