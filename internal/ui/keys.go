package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the screen's key bindings.
type KeyMap struct {
	Focus   key.Binding
	Menu    key.Binding
	Attach  key.Binding
	Close   key.Binding
	Quit    key.Binding
	QuitAlt key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		Menu: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "menu"),
		),
		Attach: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "attach"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		// q quits only while the list has focus.
		QuitAlt: key.NewBinding(
			key.WithKeys("q"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Menu, k.Attach, k.Close, k.Quit}
}
