// Package display defines the drawing contract the scenes render through
// and an in-memory framebuffer implementation of it. The hardware raster
// driver that moves pixels over the display bus lives outside this module;
// anything that can satisfy Surface can stand in for it.
package display

import "github.com/vovakirdan/pocket-arcade/internal/core"

// Surface is the set of drawing primitives the scenes are written against.
// Coordinates are top-left origin; drawing outside the bounds is clipped,
// never an error. Implementations are not safe for concurrent use: the
// cooperative loop is the only writer.
type Surface interface {
	// Size returns the logical width and height in pixels.
	Size() (w, h int)

	// Clear fills the whole surface with the given color.
	Clear(c core.Color)

	// FillRect fills the rectangle at (x, y) with the given size.
	FillRect(x, y, w, h int, c core.Color)

	// FillCircle fills the circle centered at (cx, cy) with radius r.
	FillCircle(cx, cy, r int, c core.Color)

	// FillTriangle fills the triangle with the given corner points.
	FillTriangle(x0, y0, x1, y1, x2, y2 int, c core.Color)

	// DrawHLine draws a one-pixel horizontal line of the given length.
	DrawHLine(x, y, length int, c core.Color)

	// DrawText draws text with its top-left corner at (x, y) using the
	// built-in 5x7 font scaled by the integer factor scale.
	DrawText(x, y int, text string, c core.Color, scale int)

	// MeasureText returns the pixel size DrawText would cover.
	MeasureText(text string, scale int) (w, h int)
}

// DrawTextCentered draws text horizontally centered on the surface with its
// top edge at y.
func DrawTextCentered(s Surface, y int, text string, c core.Color, scale int) {
	sw, _ := s.Size()
	tw, _ := s.MeasureText(text, scale)
	s.DrawText((sw-tw)/2, y, text, c, scale)
}
