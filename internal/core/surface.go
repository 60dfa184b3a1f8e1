package core

// Surface is a 2D drawing target in logical pixels.
// Coordinates grow right and down from the top-left corner.
type Surface interface {
	// Size returns the logical dimensions of the surface.
	Size() (w, h float64)

	// FillRect fills the rectangle with top-left (x, y).
	FillRect(x, y, w, h float64, c Color)

	// FillCircle fills a disc centered on (cx, cy).
	FillCircle(cx, cy, r float64, c Color)

	// StrokeCircle outlines a circle with the given line width.
	StrokeCircle(cx, cy, r, width float64, c Color)

	// DrawText draws text centered on (cx, cy) at the given font size.
	DrawText(cx, cy float64, text string, size float64, c Color)
}
