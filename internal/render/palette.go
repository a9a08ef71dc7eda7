package render

import "image/color"

// DefaultPalette maps cell states 0, 1 and 2 to black, white and a dim blue.
// Higher states clamp to the last entry.
var DefaultPalette = []color.RGBA{
	{A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	{R: 0x30, G: 0x50, B: 0xa0, A: 0xff},
}

// Frame converts cells to RGBA, allocating or reusing buf as needed. With
// no palette any non-zero cell is white.
func Frame(buf []byte, cells []uint8, palette []color.RGBA) []byte {
	n := 4 * len(cells)
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	buf = buf[:n]
	if len(palette) == 0 {
		fillBinaryRGBA(buf, cells, color.White, color.Black)
		return buf
	}
	fillPaletteRGBA(buf, cells, palette)
	return buf
}
