// Package appearance resolves the visual parameters of the sign-in button.
//
// The package is the pure half of the control: a validated color table keyed
// by (scheme, state, role), a style-driven layout calculator, and the
// Appearance bundle a rendering layer consumes. Nothing here mutates after
// construction and nothing depends on a UI framework; the interactive half
// lives in pkg/button.
package appearance

// Cosmetic constants. Border and shadows do not react to interaction state;
// only the icon dims while disabled.
const (
	BorderWidth       = 1.0
	DisabledIconAlpha = 0.4

	// IconGlyph is the character hosts draw inside IconFrame when no image
	// asset pipeline exists (terminal hosts).
	IconGlyph = "G"
)

// Shadow is one shadow pass: coverage, blur radius and vertical offset.
type Shadow struct {
	Alpha   float64
	Blur    float64
	YOffset float64
}

// The two shadow passes drawn under the enabled button.
var (
	HaloShadow = Shadow{Alpha: 0.12, Blur: 2}
	DropShadow = Shadow{Alpha: 0.24, Blur: 2, YOffset: 2}
)

// Appearance is the fully resolved visual parameter set for one combination
// of style, scheme and interaction state. It is rebuilt wholesale on every
// change, never patched field by field, so a reader can never observe a
// bundle that mixes two states.
type Appearance struct {
	Background RGBA
	Foreground RGBA

	BorderWidth float64
	HaloShadow  Shadow
	DropShadow  Shadow

	// IconAlpha is 1 except while disabled, when the icon dims to
	// DisabledIconAlpha.
	IconAlpha float64

	// Label is the text the style renders; empty for icon-only.
	Label string

	Layout LayoutSpec
}
