package display

import "github.com/vovakirdan/pocket-arcade/internal/core"

// Framebuffer is an in-memory Surface. It retains every pixel between
// frames, which is what makes the scenes' incremental erase-and-redraw
// strategy observable: nothing repaints unless a scene paints it.
type Framebuffer struct {
	w, h int
	pix  []core.Color
}

// NewFramebuffer creates a framebuffer of the given size, cleared to black.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{
		w:   w,
		h:   h,
		pix: make([]core.Color, w*h),
	}
}

// Size returns the framebuffer dimensions in pixels.
func (f *Framebuffer) Size() (int, int) {
	return f.w, f.h
}

// At returns the color of the pixel at (x, y).
// Out-of-bounds reads return black.
func (f *Framebuffer) At(x, y int) core.Color {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return core.ColorBlack
	}
	return f.pix[y*f.w+x]
}

func (f *Framebuffer) set(x, y int, c core.Color) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	f.pix[y*f.w+x] = c
}

// Clear fills the whole framebuffer with one color.
func (f *Framebuffer) Clear(c core.Color) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// FillRect fills a rectangle, clipped to the framebuffer bounds.
func (f *Framebuffer) FillRect(x, y, w, h int, c core.Color) {
	x0 := core.Max(x, 0)
	y0 := core.Max(y, 0)
	x1 := core.Min(x+w, f.w)
	y1 := core.Min(y+h, f.h)
	for py := y0; py < y1; py++ {
		row := f.pix[py*f.w : py*f.w+f.w]
		for px := x0; px < x1; px++ {
			row[px] = c
		}
	}
}

// FillCircle fills a circle centered at (cx, cy).
func (f *Framebuffer) FillCircle(cx, cy, r int, c core.Color) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				f.set(cx+dx, cy+dy, c)
			}
		}
	}
}

// FillTriangle fills the triangle (x0,y0)-(x1,y1)-(x2,y2) using edge
// sign tests over its bounding box.
func (f *Framebuffer) FillTriangle(x0, y0, x1, y1, x2, y2 int, c core.Color) {
	minX := core.Max(core.Min(x0, core.Min(x1, x2)), 0)
	maxX := core.Min(core.Max(x0, core.Max(x1, x2)), f.w-1)
	minY := core.Max(core.Min(y0, core.Min(y1, y2)), 0)
	maxY := core.Min(core.Max(y0, core.Max(y1, y2)), f.h-1)

	edge := func(ax, ay, bx, by, px, py int) int {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			e0 := edge(x0, y0, x1, y1, px, py)
			e1 := edge(x1, y1, x2, y2, px, py)
			e2 := edge(x2, y2, x0, y0, px, py)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				f.set(px, py, c)
			}
		}
	}
}

// DrawHLine draws a one-pixel horizontal line.
func (f *Framebuffer) DrawHLine(x, y, length int, c core.Color) {
	f.FillRect(x, y, length, 1, c)
}

// DrawText draws text using the built-in 5x7 font. Characters the font
// does not cover advance the cursor without drawing.
func (f *Framebuffer) DrawText(x, y int, text string, c core.Color, scale int) {
	if scale < 1 {
		scale = 1
	}
	cx := x
	for _, r := range text {
		cols, ok := glyph(r)
		if ok {
			for gx, col := range cols {
				for gy := 0; gy < glyphH; gy++ {
					if col&(1<<gy) == 0 {
						continue
					}
					f.FillRect(cx+gx*scale, y+gy*scale, scale, scale, c)
				}
			}
		}
		cx += advanceW * scale
	}
}

// MeasureText returns the pixel area DrawText would cover.
func (f *Framebuffer) MeasureText(text string, scale int) (int, int) {
	if scale < 1 {
		scale = 1
	}
	n := 0
	for range text {
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return n*advanceW*scale - scale, glyphH * scale
}
