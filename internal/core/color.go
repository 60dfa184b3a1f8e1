package core

import (
	"fmt"
	"image/color"
)

// Color is an RGBA color used by surfaces.
// The zero value means "no color" and leaves the terminal default in place.
type Color struct {
	R, G, B, A uint8
}

// Palette used by the scene and the shell.
var (
	ColorNone       = Color{}
	ColorSpace      = Hex(0x001033)
	ColorStar       = Hex(0xFFFF00)
	ColorObstacle   = Hex(0x8A2BE2)
	ColorBranch     = Hex(0x9370DB)
	ColorActor      = Hex(0xFFD23F)
	ColorActorEdge  = Hex(0xFF8C00)
	ColorBeak       = Hex(0xFF6A00)
	ColorEye        = Hex(0x111111)
	ColorText       = Hex(0xFFFFFF)
	ColorButton     = Hex(0xFACC15)
	ColorShade      = Color{R: 0, G: 0, B: 0, A: 128}
	ColorHint       = Hex(0xD1D5DB)
	ColorButtonText = Hex(0x000000)
)

// Hex builds an opaque color from a 0xRRGGBB value.
func Hex(v uint32) Color {
	return Color{
		R: uint8(v >> 16), //#nosec G115 -- masked by shift width
		G: uint8(v >> 8),  //#nosec G115 -- masked by shift width
		B: uint8(v),       //#nosec G115 -- masked by shift width
		A: 0xFF,
	}
}

// IsNone reports whether the color is fully transparent.
func (c Color) IsNone() bool {
	return c.A == 0
}

// String returns the color as "#rrggbb", or "" for ColorNone.
func (c Color) String() string {
	if c.IsNone() {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA converts to the image/color representation. Alpha is straight,
// not premultiplied.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Over composites c on top of dst using c's alpha.
func (c Color) Over(dst Color) Color {
	if c.A == 0xFF || dst.IsNone() {
		return Color{R: c.R, G: c.G, B: c.B, A: 0xFF}
	}
	a := uint32(c.A)
	mix := func(src, base uint8) uint8 {
		return uint8((uint32(src)*a + uint32(base)*(255-a)) / 255) //#nosec G115 -- result <= 255
	}
	return Color{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: 0xFF}
}
