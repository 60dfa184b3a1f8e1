// Package core provides fundamental types and utilities shared by the game
// and its hosts. It contains no external dependencies (especially no Bubble
// Tea or Ebitengine) to keep game logic pure and testable.
package core

import "math"

// Rect is an integer cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned box in logical pixels, used for hitboxes.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoxAround returns a square box of the given half-size centered on (cx, cy).
func BoxAround(cx, cy, half float64) Box {
	return Box{MinX: cx - half, MinY: cy - half, MaxX: cx + half, MaxY: cy + half}
}

// OverlapsX reports whether the box strictly overlaps the horizontal span [x0, x1].
func (b Box) OverlapsX(x0, x1 float64) bool {
	return x0 < b.MaxX && x1 > b.MinX
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
