package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signet-ui/signet/pkg/appearance"
)

func TestViewShowsLabelAndStatus(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	require.Contains(t, out, appearance.DefaultLabel)
	require.Contains(t, out, appearance.IconGlyph)
	require.Contains(t, out, "state normal")
	require.Contains(t, out, "style standard")
	require.Contains(t, out, "scheme light")
}

func TestViewIconOnlyOmitsLabel(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.btn.SetStyle(appearance.StyleIconOnly))

	out := m.View()
	require.NotContains(t, out, appearance.DefaultLabel)
	require.Contains(t, out, appearance.IconGlyph)
}

func TestViewReactsToState(t *testing.T) {
	m := newTestModel(t)
	idle := m.View()

	m.btn.SetEnabled(false)
	disabled := m.View()
	require.NotEqual(t, idle, disabled, "disabled rendition must differ from the idle one")
	require.Contains(t, disabled, "state disabled")
}

func TestViewShowsHelpFooter(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	require.Contains(t, out, "press")
	require.Contains(t, out, "quit")
}

func TestViewEmptyAfterQuit(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyPress('q'))
	m = updated.(Model)
	require.Empty(t, m.View())
}

func TestMouseTargetMatchesRenderedBox(t *testing.T) {
	m := newTestModel(t)

	w, h := cellSize(m.btn.Appearance().Layout)
	require.Positive(t, w)
	require.Positive(t, h)

	// Corners of the bordered box must hit; one cell past must not.
	require.True(t, m.hitButton(buttonOriginX, buttonOriginY))
	require.True(t, m.hitButton(buttonOriginX+w+1, buttonOriginY+h+1))
	require.False(t, m.hitButton(buttonOriginX+w+2, buttonOriginY))
	require.False(t, m.hitButton(buttonOriginX, buttonOriginY+h+2))
	require.False(t, m.hitButton(0, 0))
}

func TestViewTracksStyleChanges(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyPress('s'))
	m = updated.(Model)

	out := m.View()
	require.Contains(t, out, "style wide")
	require.Contains(t, out, appearance.DefaultLabel)
}

func TestViewDarkSchemeChangesRendition(t *testing.T) {
	m := newTestModel(t)
	light := m.View()

	updated, _ := m.Update(keyPress('c'))
	m = updated.(Model)
	dark := m.View()

	require.NotEqual(t, light, dark)
	require.Contains(t, dark, "scheme dark")
}
