// Package tui hosts the interactive button preview. The model feeds key and
// mouse events into the button core and projects the resolved appearance with
// lipgloss. It is a pull-model host: the core never draws, the view reads
// Appearance on every frame.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/signet-ui/signet/pkg/appearance"
	"github.com/signet-ui/signet/pkg/button"
)

// Model contains the Bubbletea state for the preview.
type Model struct {
	btn  *button.Button
	keys keyMap
	help help.Model

	width  int
	height int

	// mouseDown tracks a left press that began on the button, so a later
	// release can be classified as inside (touch up) or outside (cancel).
	mouseDown bool

	presses  int
	status   string
	quitting bool
}

// NewModel constructs a preview model around an existing button.
func NewModel(btn *button.Button) Model {
	return Model{
		btn:  btn,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

// Init implements tea.Model. The preview is fully event-driven.
func (m Model) Init() tea.Cmd {
	return nil
}

// Presses returns how many presses completed during the session.
func (m Model) Presses() int {
	return m.presses
}

// Button exposes the previewed button, mainly for the host to snapshot it
// after the program exits.
func (m Model) Button() *button.Button {
	return m.btn
}

func nextStyle(s appearance.Style) appearance.Style {
	switch s {
	case appearance.StyleStandard:
		return appearance.StyleWide
	case appearance.StyleWide:
		return appearance.StyleIconOnly
	default:
		return appearance.StyleStandard
	}
}

func otherScheme(c appearance.ColorScheme) appearance.ColorScheme {
	if c == appearance.SchemeLight {
		return appearance.SchemeDark
	}
	return appearance.SchemeLight
}
