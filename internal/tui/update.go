package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/signet-ui/signet/pkg/appearance"
)

// pressHold is how long a keyboard press stays down before the synthetic
// release fires. The core never owns a timer; momentary presses are the
// host's concern.
const pressHold = 120 * time.Millisecond

type pressExpiredMsg struct{}

func pressExpireCmd() tea.Cmd {
	return tea.Tick(pressHold, func(time.Time) tea.Msg { return pressExpiredMsg{} })
}

// Update handles Bubbletea messages and drives the button state machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case pressExpiredMsg:
		return m.endPress(true), nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Style):
		_ = m.btn.SetStyle(nextStyle(m.btn.Style()))
		m.status = "style: " + m.btn.Style().String()
		return m, nil

	case key.Matches(msg, m.keys.Scheme):
		_ = m.btn.SetColorScheme(otherScheme(m.btn.ColorScheme()))
		m.status = "scheme: " + m.btn.ColorScheme().String()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.btn.SetEnabled(!m.btn.Enabled())
		if m.btn.Enabled() {
			m.status = "enabled"
		} else {
			m.status = "disabled"
		}
		return m, nil

	case key.Matches(msg, m.keys.Press):
		if !m.btn.Enabled() {
			m.status = "press ignored while disabled"
			return m, nil
		}
		m.btn.TouchDown()
		m.status = "pressing"
		return m, pressExpireCmd()
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if !m.hitButton(msg.X, msg.Y) {
			return m, nil
		}
		m.mouseDown = true
		m.btn.TouchDown()
		m.status = "pressing"
		return m, nil

	case tea.MouseActionRelease:
		if !m.mouseDown {
			return m, nil
		}
		m.mouseDown = false
		return m.endPress(m.hitButton(msg.X, msg.Y)), nil
	}

	return m, nil
}

// endPress finishes an in-flight press. A release inside the button completes
// it; anything else cancels. Both collapse to the normal state, the
// distinction only decides whether the press counts.
func (m Model) endPress(inside bool) Model {
	wasPressed := m.btn.State() == appearance.StatePressed

	if inside {
		m.btn.TouchUp()
		if wasPressed {
			m.presses++
			m.status = "press completed"
		}
		return m
	}

	m.btn.TouchCancel()
	if wasPressed {
		m.status = "press cancelled"
	}
	return m
}

// hitButton reports whether a terminal cell lies on the rendered button,
// border included.
func (m Model) hitButton(x, y int) bool {
	w, h := cellSize(m.btn.Appearance().Layout)
	return x >= buttonOriginX && x < buttonOriginX+w+2 &&
		y >= buttonOriginY && y < buttonOriginY+h+2
}
