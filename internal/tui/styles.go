package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/signet-ui/signet/pkg/appearance"
)

// Terminal projection scale. Layout specs are in points; a cell covers about
// 8 points horizontally and twice that vertically.
const (
	cellPointsX = 8
	cellPointsY = 16
)

// The button box is rendered at a fixed origin so mouse hit testing and the
// view stay in agreement: one title row, one blank row, two columns of left
// margin.
const (
	buttonOriginX = 2
	buttonOriginY = 2
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginTop(1).MarginLeft(2)
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).MarginLeft(2)
	helpStyle   = lipgloss.NewStyle().MarginTop(1).MarginLeft(2)
)

// backdrops give each scheme a plausible host background to composite the
// translucent table colors against.
var backdrops = map[appearance.ColorScheme]appearance.RGBA{
	appearance.SchemeLight: 0xFAFAFAFF,
	appearance.SchemeDark:  0x202124FF,
}

// BackdropFor returns the canvas color the preview paints behind the
// button for a scheme. The render command shares it so static swatches
// composite against the same surface the interactive preview uses.
func BackdropFor(scheme appearance.ColorScheme) appearance.RGBA {
	return backdrops[scheme]
}

// cellSize converts a layout's point dimensions into terminal cells.
func cellSize(spec appearance.LayoutSpec) (w, h int) {
	return spec.Width / cellPointsX, spec.Height / cellPointsY
}

// shadowTone flattens a shadow (black at the shadow's alpha) onto the
// backdrop, yielding the opaque grey a terminal can actually show.
func shadowTone(shadow appearance.Shadow, backdrop appearance.RGBA) appearance.RGBA {
	alpha := uint8(math.Round(shadow.Alpha * 255))
	return appearance.RGBA(uint32(alpha)).Over(backdrop)
}

// iconTone dims the foreground toward the background by the icon alpha, the
// closest a cell grid gets to a translucent glyph.
func iconTone(a appearance.Appearance, bg appearance.RGBA) appearance.RGBA {
	fg := a.Foreground.Over(bg)
	if a.IconAlpha >= 1 {
		return fg
	}
	return appearance.FromColorful(bg.Colorful().BlendRgb(fg.Colorful(), a.IconAlpha), 0xFF)
}
