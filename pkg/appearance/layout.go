package appearance

import "fmt"

// Sizing constants, in points. The widths fit the longest translated label;
// height is shared by every style.
const (
	StandardWidth = 230
	WideWidth     = 312
	ButtonHeight  = 48

	CornerRadius     = 2
	IconSectionWidth = 40
	TextPadding      = 14
)

// Font identity for the label. Asset loading belongs to the host; the core
// only names the face.
const (
	FontName = "Roboto-Bold"
	FontSize = 14.0
)

// Rect is an offset and size in points.
type Rect struct {
	X, Y, W, H int
}

// IconFrame is the fixed frame of the icon within the button box.
var IconFrame = Rect{X: 8, Y: 8, W: 32, H: 32}

// LayoutSpec carries every geometry and text-metric parameter derived from a
// Style. HasText is false only for the icon-only style, whose font, padding
// and icon-section fields are zero.
type LayoutSpec struct {
	Width        int
	Height       int
	HasText      bool
	IconFrame    Rect
	CornerRadius int

	// IconSectionWidth is the span reserved for the icon before the label
	// starts. Zero for icon-only, where the whole box is the icon's.
	IconSectionWidth int

	TextPadding int
	FontName    string
	FontSize    float64
}

// layoutFor is total over the defined styles; the button layer validates
// external input before it can reach here.
func layoutFor(style Style) LayoutSpec {
	base := LayoutSpec{
		Height:       ButtonHeight,
		IconFrame:    IconFrame,
		CornerRadius: CornerRadius,
	}
	switch style {
	case StyleStandard:
		base.Width = StandardWidth
	case StyleWide:
		base.Width = WideWidth
	case StyleIconOnly:
		base.Width = ButtonHeight
		return base
	default:
		panic(fmt.Sprintf("appearance: layout for invalid style %d", int(style)))
	}
	base.HasText = true
	base.IconSectionWidth = IconSectionWidth
	base.TextPadding = TextPadding
	base.FontName = FontName
	base.FontSize = FontSize
	return base
}

// Labels drawn by the text-bearing styles. The wide style names the identity
// provider when one is configured.
const DefaultLabel = "Sign in"

// LabelFor returns the label text a style renders. Icon-only renders none;
// wide prefers the provider-qualified form.
func LabelFor(style Style, provider string) string {
	switch style {
	case StyleIconOnly:
		return ""
	case StyleWide:
		if provider != "" {
			return fmt.Sprintf("Sign in with %s", provider)
		}
		return DefaultLabel
	default:
		return DefaultLabel
	}
}
