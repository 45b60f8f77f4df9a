package appearance

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color packed as 0xRRGGBBAA. The low byte is the alpha channel, so
// opaque colors end in FF and the translucent greys carry their coverage in
// the final byte.
type RGBA uint32

// Named colors referenced by the style table.
const (
	White        RGBA = 0xFFFFFFFF
	LightestGrey RGBA = 0x00000014 // 8% black
	LightGrey    RGBA = 0xEEEEEEFF
	DisabledGrey RGBA = 0x00000066 // 40% black
	DarkestGrey  RGBA = 0x00000089 // 54% black
)

// Brand accents. These are referenced by individual table entries (the dark
// scheme's normal and pressed backgrounds), not an extra table dimension.
const (
	BrandBlue     RGBA = 0x4285F4FF
	BrandBlueDark RGBA = 0x3367D6FF
)

// R returns the red channel.
func (c RGBA) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c RGBA) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c RGBA) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func (c RGBA) A() uint8 { return uint8(c) }

// AlphaF returns the alpha channel mapped onto [0, 1].
func (c RGBA) AlphaF() float64 { return float64(c.A()) / 255 }

// Opaque reports whether the color has full coverage.
func (c RGBA) Opaque() bool { return c.A() == 0xFF }

// Hex renders the color channels as "#rrggbb". Alpha is dropped; callers that
// need coverage composite with Over first.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

// RGBA implements the image/color Color interface, returning
// alpha-premultiplied channels in the 16-bit range.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A())
	r = uint32(c.R()) * 0x101 * a / 0xFF
	g = uint32(c.G()) * 0x101 * a / 0xFF
	b = uint32(c.B()) * 0x101 * a / 0xFF
	a *= 0x101
	return r, g, b, a
}

// Colorful converts the color channels (ignoring alpha) for color math.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

// FromColorful packs a colorful color and an alpha byte back into an RGBA.
func FromColorful(c colorful.Color, alpha uint8) RGBA {
	r, g, b := c.Clamped().RGB255()
	return RGBA(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(alpha))
}

// Over composites c over an opaque base and returns the opaque result.
// Terminal cells cannot carry partial coverage, so the translucent table
// greys have to be flattened against a backdrop before rendering.
func (c RGBA) Over(base RGBA) RGBA {
	if c.Opaque() {
		return c
	}
	return FromColorful(base.Colorful().BlendRgb(c.Colorful(), c.AlphaF()), 0xFF)
}
