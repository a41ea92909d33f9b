package core

// Color is an opaque RGB565 color token as understood by the display bus:
// 5 bits red, 6 bits green, 5 bits blue.
type Color uint16

// Palette used by the scenes. Exact values are cosmetic.
const (
	ColorBlack     Color = 0x0000
	ColorWhite     Color = 0xFFFF
	ColorRed       Color = 0xF800
	ColorGreen     Color = 0x07E0
	ColorBlue      Color = 0x001F
	ColorYellow    Color = 0xFFE0
	ColorCyan      Color = 0x07FF
	ColorMagenta   Color = 0xF81F
	ColorOrange    Color = 0xFD20
	ColorGray      Color = 0x8410
	ColorDarkGray  Color = 0x4208
	ColorNavy      Color = 0x000F
	ColorDarkGreen Color = 0x03E0
	ColorSky       Color = 0x867D
	ColorDeepBlue  Color = 0x0210
)

// RGB565 packs 8-bit channel values into a Color.
func RGB565(r, g, b uint8) Color {
	return Color(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// RGB expands a Color back to 8-bit channels. The low bits are
// replicated from the high bits so full-scale values round-trip
// (0x1F maps to 0xFF, not 0xF8).
func (c Color) RGB() (r, g, b uint8) {
	r5 := uint8(c >> 11)
	g6 := uint8(c >> 5 & 0x3F)
	b5 := uint8(c & 0x1F)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}
