package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/signet-ui/signet/pkg/appearance"
)

// View renders the current state of the preview.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	a := m.btn.Appearance()
	backdrop := BackdropFor(m.btn.ColorScheme())

	var sections []string
	sections = append(sections, titleStyle.Render("signet • sign-in button preview"))
	sections = append(sections, "")
	sections = append(sections, renderButton(a, backdrop))

	status := fmt.Sprintf("state %s • style %s • scheme %s • presses %d",
		m.btn.State(), m.btn.Style(), m.btn.ColorScheme(), m.presses)
	sections = append(sections, statusStyle.Render(status))
	if m.status != "" {
		sections = append(sections, eventStyle.Render(m.status))
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderButton projects the resolved appearance onto the cell grid: the box
// carries the composited background, the border ring stands in for the halo
// shadow, and a half-block row below stands in for the drop shadow.
func renderButton(a appearance.Appearance, backdrop appearance.RGBA) string {
	w, h := cellSize(a.Layout)
	bg := a.Background.Over(backdrop)
	fg := a.Foreground.Over(bg)

	box := lipgloss.NewStyle().
		Width(w).
		Height(h).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(bg.Hex())).
		Foreground(lipgloss.Color(fg.Hex()))

	if a.BorderWidth > 0 {
		halo := shadowTone(a.HaloShadow, backdrop)
		box = box.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(halo.Hex())).
			BorderBackground(lipgloss.Color(backdrop.Hex()))
	}

	rendered := box.Render(buttonContent(a, bg))

	if a.DropShadow.Alpha > 0 {
		drop := shadowTone(a.DropShadow, backdrop)
		shadow := lipgloss.NewStyle().
			Foreground(lipgloss.Color(drop.Hex())).
			Render(strings.Repeat("▀", lipgloss.Width(rendered)))
		rendered = lipgloss.JoinVertical(lipgloss.Left, rendered, shadow)
	}

	return lipgloss.NewStyle().MarginLeft(buttonOriginX).Render(rendered)
}

func buttonContent(a appearance.Appearance, bg appearance.RGBA) string {
	icon := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(iconTone(a, bg).Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Render(appearance.IconGlyph)

	if !a.Layout.HasText {
		return icon
	}

	// The label starts after the icon's reserved section.
	gap := a.Layout.IconSectionWidth/cellPointsX - lipgloss.Width(icon)
	if gap < 1 {
		gap = 1
	}
	return icon + strings.Repeat(" ", gap) + a.Label
}
