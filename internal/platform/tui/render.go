package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/display"
)

// cellColors is a (top, bottom) pixel pair covered by one half-block.
type cellColors struct {
	top, bottom core.Color
}

// styleCache memoizes lipgloss styles per pixel pair. The palette is
// small, so the cache stays tiny across frames.
var styleCache = map[cellColors]lipgloss.Style{}

func styleFor(c cellColors) lipgloss.Style {
	if st, ok := styleCache[c]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor(c.top))).
		Background(lipgloss.Color(hexColor(c.bottom)))
	styleCache[c] = st
	return st
}

func hexColor(c core.Color) string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RenderFrame converts the framebuffer to a styled string. Each text
// row covers two pixel rows: the upper-half-block glyph carries the top
// pixel in its foreground and the bottom pixel in its background.
// Adjacent cells with the same pixel pair are grouped into one styled
// run to keep the ANSI output small.
func RenderFrame(fb *display.Framebuffer) string {
	w, h := fb.Size()

	var sb strings.Builder
	sb.Grow(w * h * 2)

	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < w {
			start := cellColors{top: fb.At(x, y), bottom: fb.At(x, y+1)}

			runLen := 0
			for x < w {
				cur := cellColors{top: fb.At(x, y), bottom: fb.At(x, y+1)}
				if cur != start {
					break
				}
				runLen++
				x++
			}

			sb.WriteString(styleFor(start).Render(strings.Repeat("▀", runLen)))
		}
	}
	return sb.String()
}
