package display

import (
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func TestNewFramebuffer(t *testing.T) {
	f := NewFramebuffer(core.ScreenW, core.ScreenH)

	w, h := f.Size()
	if w != 128 || h != 160 {
		t.Errorf("Size() = (%d, %d), expected (128, 160)", w, h)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if f.At(x, y) != core.ColorBlack {
				t.Fatalf("new framebuffer should be black, got %#04x at (%d, %d)", f.At(x, y), x, y)
			}
		}
	}
}

func TestFillRectClipping(t *testing.T) {
	f := NewFramebuffer(16, 16)

	// Partially off-screen rects must not panic and must clip.
	f.FillRect(-4, -4, 8, 8, core.ColorRed)
	f.FillRect(12, 12, 8, 8, core.ColorGreen)

	if f.At(0, 0) != core.ColorRed {
		t.Error("clipped rect should still paint the on-screen part")
	}
	if f.At(4, 4) != core.ColorBlack {
		t.Error("pixel outside the rect should be untouched")
	}
	if f.At(15, 15) != core.ColorGreen {
		t.Error("bottom-right clipped rect should paint up to the edge")
	}
	if f.At(-1, 0) != core.ColorBlack || f.At(16, 0) != core.ColorBlack {
		t.Error("out-of-bounds At should return black")
	}
}

func TestFillRectOverdraw(t *testing.T) {
	f := NewFramebuffer(16, 16)
	f.FillRect(2, 2, 4, 4, core.ColorRed)
	f.FillRect(2, 2, 4, 4, core.ColorBlack)

	// Erase-by-overdraw is how the scenes do incremental redraw.
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			if f.At(x, y) != core.ColorBlack {
				t.Fatalf("overdraw should erase, got %#04x at (%d, %d)", f.At(x, y), x, y)
			}
		}
	}
}

func TestFillCircle(t *testing.T) {
	f := NewFramebuffer(32, 32)
	f.FillCircle(16, 16, 5, core.ColorYellow)

	if f.At(16, 16) != core.ColorYellow {
		t.Error("circle center should be painted")
	}
	if f.At(16, 11) != core.ColorYellow || f.At(21, 16) != core.ColorYellow {
		t.Error("circle extremes on the axes should be painted")
	}
	if f.At(21, 21) != core.ColorBlack {
		t.Error("bounding-box corner outside the circle should be untouched")
	}
	if f.At(16, 10) != core.ColorBlack {
		t.Error("pixel just beyond the radius should be untouched")
	}
}

func TestFillTriangle(t *testing.T) {
	f := NewFramebuffer(32, 32)
	f.FillTriangle(4, 4, 28, 4, 4, 28, core.ColorCyan)

	if f.At(5, 5) != core.ColorCyan {
		t.Error("point near the right-angle corner should be inside")
	}
	if f.At(10, 10) != core.ColorCyan {
		t.Error("point well inside the triangle should be painted")
	}
	if f.At(27, 27) != core.ColorBlack {
		t.Error("point on the far side of the hypotenuse should be untouched")
	}
}

func TestDrawHLine(t *testing.T) {
	f := NewFramebuffer(16, 16)
	f.DrawHLine(2, 8, 10, core.ColorWhite)

	for x := 2; x < 12; x++ {
		if f.At(x, 8) != core.ColorWhite {
			t.Errorf("DrawHLine: expected white at (%d, 8)", x)
		}
	}
	if f.At(1, 8) != core.ColorBlack || f.At(12, 8) != core.ColorBlack {
		t.Error("DrawHLine painted outside its length")
	}
	if f.At(5, 9) != core.ColorBlack {
		t.Error("DrawHLine should be one pixel tall")
	}
}

func TestMeasureText(t *testing.T) {
	f := NewFramebuffer(128, 160)

	tests := []struct {
		text       string
		scale      int
		expW, expH int
	}{
		{"", 1, 0, 0},
		{"A", 1, 5, 7},
		{"AB", 1, 11, 7},
		{"SCORE", 1, 29, 7},
		{"A", 2, 10, 14},
		{"GO", 3, 33, 21},
	}

	for _, tc := range tests {
		w, h := f.MeasureText(tc.text, tc.scale)
		if w != tc.expW || h != tc.expH {
			t.Errorf("MeasureText(%q, %d) = (%d, %d), expected (%d, %d)",
				tc.text, tc.scale, w, h, tc.expW, tc.expH)
		}
	}
}

func TestDrawTextStaysInCell(t *testing.T) {
	f := NewFramebuffer(64, 32)
	f.DrawText(10, 10, "A", core.ColorWhite, 1)

	painted := 0
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if f.At(x, y) == core.ColorWhite {
				painted++
				if x < 10 || x >= 15 || y < 10 || y >= 17 {
					t.Fatalf("glyph pixel outside its 5x7 cell at (%d, %d)", x, y)
				}
			}
		}
	}
	if painted == 0 {
		t.Error("DrawText painted nothing")
	}
}

func TestDrawTextLowercaseMapsToUppercase(t *testing.T) {
	upper := NewFramebuffer(16, 16)
	lower := NewFramebuffer(16, 16)
	upper.DrawText(0, 0, "G", core.ColorWhite, 1)
	lower.DrawText(0, 0, "g", core.ColorWhite, 1)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if upper.At(x, y) != lower.At(x, y) {
				t.Fatalf("lowercase glyph differs from uppercase at (%d, %d)", x, y)
			}
		}
	}
}

func TestDrawTextCentered(t *testing.T) {
	f := NewFramebuffer(128, 160)
	DrawTextCentered(f, 20, "HI", core.ColorWhite, 1)

	// "HI" at scale 1 is 11px wide, so it starts at (128-11)/2 = 58.
	if f.At(58, 20) != core.ColorWhite {
		t.Error("centered text should start at x=58")
	}
	if f.At(50, 20) != core.ColorBlack {
		t.Error("pixel left of the centered text should be untouched")
	}
}
