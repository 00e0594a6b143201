package ui2d

import "github.com/go-gl/mathgl/mgl32"

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors for UI theming.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}

	// Neon theme
	ColorCyan        = RGB(0x00, 0xf3, 0xff)
	ColorPurple      = RGB(0xbd, 0x00, 0xff)
	ColorText        = ColorWhite
	ColorTextSoft    = RGB(0xd1, 0xd5, 0xdb)
	ColorTextDim     = RGB(0x6b, 0x72, 0x80)
	ColorTextFaint   = RGB(0x4b, 0x55, 0x63)
	ColorBorder      = RGB(0x1f, 0x29, 0x37)
	ColorBorderLight = RGB(0x37, 0x41, 0x51)
	ColorPanelBg     = Color{0, 0, 0, 0.3}
	ColorNavBg       = Color{0, 0, 0, 0.2}
	ColorTrack       = RGB(0x22, 0x22, 0x22)
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// FromVec3 converts a linear colour vector to an opaque Color.
func FromVec3(v mgl32.Vec3) Color {
	return Color{v.X(), v.Y(), v.Z(), 1}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Darken returns a darker version of the color.
func (c Color) Darken(factor float32) Color {
	return Color{
		R: c.R * (1 - factor),
		G: c.G * (1 - factor),
		B: c.B * (1 - factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of the color.
func (c Color) Lighten(factor float32) Color {
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}
