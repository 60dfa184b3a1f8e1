package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/space-flappy/internal/core"
)

// Canvas draws onto an ebiten image in logical pixels.
// The image is rebound every frame; the Canvas itself stays the same
// surface for the whole run.
type Canvas struct {
	dst    *ebiten.Image
	w, h   float64
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewCanvas creates a canvas of the given logical size. A nil source
// disables text.
func NewCanvas(w, h float64, source *text.GoTextFaceSource) *Canvas {
	return &Canvas{
		w:      w,
		h:      h,
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}
}

// Bind sets the image the next draw calls paint onto.
func (c *Canvas) Bind(dst *ebiten.Image) {
	c.dst = dst
}

// Size returns the logical size.
func (c *Canvas) Size() (float64, float64) {
	return c.w, c.h
}

func (c *Canvas) FillRect(x, y, w, h float64, col core.Color) {
	if c.dst == nil || col.IsNone() {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col.NRGBA(), false)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col core.Color) {
	if c.dst == nil || col.IsNone() {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col.NRGBA(), true)
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col core.Color) {
	if c.dst == nil || col.IsNone() {
		return
	}
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(width), col.NRGBA(), true)
}

// DrawText draws s centered on (cx, cy).
func (c *Canvas) DrawText(cx, cy float64, s string, size float64, col core.Color) {
	if c.dst == nil || c.source == nil || col.IsNone() {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(col.NRGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, c.face(size), op)
}

// face returns a cached face for the size.
func (c *Canvas) face(size float64) *text.GoTextFace {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: c.source, Size: size}
	c.faces[size] = f
	return f
}
