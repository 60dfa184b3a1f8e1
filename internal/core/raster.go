package core

import (
	"math"
	"unicode/utf8"
)

// Glyphs used when a shape is too small to cover a whole cell.
const (
	GlyphDot  = '•'
	GlyphDisc = '●'
)

// Raster adapts a Screen into a Surface with the given logical size.
// Logical pixels are scaled onto cells; fills paint cell backgrounds and
// sub-cell shapes collapse into a single glyph.
type Raster struct {
	screen *Screen
	w, h   float64
}

// NewRaster creates a raster over screen with logical dimensions w×h.
func NewRaster(screen *Screen, w, h float64) *Raster {
	return &Raster{screen: screen, w: w, h: h}
}

// Size returns the logical dimensions.
func (r *Raster) Size() (float64, float64) {
	return r.w, r.h
}

// scale returns cells per logical pixel on each axis.
func (r *Raster) scale() (sx, sy float64) {
	if r.w <= 0 || r.h <= 0 {
		return 0, 0
	}
	return float64(r.screen.Width()) / r.w, float64(r.screen.Height()) / r.h
}

// span maps the logical interval [a, a+length) to a cell range [c0, c1).
// Any non-empty interval covers at least one cell.
func span(a, length, scale float64) (int, int) {
	c0 := int(math.Round(a * scale))
	c1 := int(math.Round((a + length) * scale))
	if c1 <= c0 && length > 0 {
		c1 = int(math.Floor(a*scale)) + 1
		c0 = c1 - 1
	}
	return c0, c1
}

// cellRect maps a logical rectangle to a cell rectangle.
func (r *Raster) cellRect(x, y, w, h float64) Rect {
	sx, sy := r.scale()
	x0, x1 := span(x, w, sx)
	y0, y1 := span(y, h, sy)
	x0, x1 = Clamp(x0, 0, r.screen.Width()), Clamp(x1, 0, r.screen.Width())
	y0, y1 = Clamp(y0, 0, r.screen.Height()), Clamp(y1, 0, r.screen.Height())
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// paint blends c into the background of one cell. Opaque paint also wipes
// whatever glyph was there.
func (r *Raster) paint(x, y int, c Color) {
	cell := r.screen.GetCell(x, y)
	cell.BG = c.Over(cell.BG)
	if c.A == 0xFF {
		cell.Rune = ' '
		cell.FG = ColorNone
	} else if !cell.FG.IsNone() {
		cell.FG = c.Over(cell.FG)
	}
	r.screen.SetCell(x, y, cell)
}

// glyph puts a colored rune on a cell, keeping its background.
func (r *Raster) glyph(x, y int, g rune, c Color) {
	cell := r.screen.GetCell(x, y)
	cell.Rune = g
	cell.FG = c
	r.screen.SetCell(x, y, cell)
}

// FillRect paints every cell the rectangle touches.
func (r *Raster) FillRect(x, y, w, h float64, c Color) {
	if c.IsNone() || w <= 0 || h <= 0 {
		return
	}
	cr := r.cellRect(x, y, w, h)
	for cy := cr.Y; cy < cr.Bottom(); cy++ {
		for cx := cr.X; cx < cr.Right(); cx++ {
			r.paint(cx, cy, c)
		}
	}
}

// FillCircle paints the cells whose centers fall inside the disc. A disc
// that covers no cell center is drawn as a single glyph.
func (r *Raster) FillCircle(cx, cy, radius float64, c Color) {
	if c.IsNone() || radius <= 0 {
		return
	}
	sx, sy := r.scale()
	if sx == 0 || sy == 0 {
		return
	}

	painted := false
	cr := r.cellRect(cx-radius, cy-radius, 2*radius, 2*radius)
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			dx := (float64(x)+0.5)/sx - cx
			dy := (float64(y)+0.5)/sy - cy
			if dx*dx+dy*dy <= radius*radius {
				r.paint(x, y, c)
				painted = true
			}
		}
	}
	if painted {
		return
	}

	g := GlyphDot
	if radius*sx >= 0.5 || radius*sy >= 0.5 {
		g = GlyphDisc
	}
	r.glyph(int(math.Floor(cx*sx)), int(math.Floor(cy*sy)), g, c)
}

// StrokeCircle paints the cells whose centers lie on the ring. Rings
// narrower than two cells on either axis cannot be resolved and are skipped.
func (r *Raster) StrokeCircle(cx, cy, radius, width float64, c Color) {
	if c.IsNone() || radius <= 0 {
		return
	}
	sx, sy := r.scale()
	if radius*sx < 2 || radius*sy < 2 {
		return
	}

	// Half a cell of tolerance keeps the ring connected.
	tol := math.Max(width/2, 0.5/math.Min(sx, sy))
	cr := r.cellRect(cx-radius-tol, cy-radius-tol, 2*(radius+tol), 2*(radius+tol))
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			dx := (float64(x)+0.5)/sx - cx
			dy := (float64(y)+0.5)/sy - cy
			if math.Abs(math.Hypot(dx, dy)-radius) <= tol {
				r.paint(x, y, c)
			}
		}
	}
}

// DrawText writes text centered on (cx, cy). Terminals have a single font
// size, so size is ignored.
func (r *Raster) DrawText(cx, cy float64, text string, _ float64, c Color) {
	sx, sy := r.scale()
	row := int(math.Floor(cy * sy))
	col := int(math.Round(cx*sx)) - utf8.RuneCountInString(text)/2
	r.screen.DrawText(col, row, text, c)
}
