package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Press  key.Binding
	Style  key.Binding
	Scheme key.Binding
	Toggle key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Press: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "press"),
		),
		Style: key.NewBinding(
			key.WithKeys("s", "tab"),
			key.WithHelp("s", "cycle style"),
		),
		Scheme: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle scheme"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "enable/disable"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Style, k.Scheme, k.Toggle, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Press, k.Style, k.Scheme},
		{k.Toggle, k.Help, k.Quit},
	}
}
