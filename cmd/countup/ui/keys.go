package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the page's key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Jump     key.Binding
	Signup   key.Binding
	Demo     key.Binding
	Replay   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns vim-style bindings plus arrows.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump to section"),
		),
		Signup: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "sign up"),
		),
		Demo: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "watch demo"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay counters"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Jump, k.Signup, k.Demo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Jump},
		{k.Signup, k.Demo, k.Replay},
		{k.Help, k.Quit},
	}
}
