package render

import "image/color"

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func put(buf []byte, i int, c color.RGBA) {
	buf[4*i], buf[4*i+1], buf[4*i+2], buf[4*i+3] = c.R, c.G, c.B, c.A
}

// fillBinaryRGBA paints non-zero cells with on and the rest with off.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	cOn, cOff := rgba(on), rgba(off)
	for i, c := range cells {
		if c != 0 {
			put(buf, i, cOn)
			continue
		}
		put(buf, i, cOff)
	}
}

// fillPaletteRGBA looks each state up in a non-empty palette, clamping to
// the last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	last := len(palette) - 1
	for i, c := range cells {
		put(buf, i, palette[min(int(c), last)])
	}
}
