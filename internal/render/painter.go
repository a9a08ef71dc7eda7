//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"planar/internal/core"
)

// GridPainter uploads a frame into an image sized to match it.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter using palette for cell states.
func NewGridPainter(palette []color.RGBA) *GridPainter {
	return &GridPainter{palette: palette}
}

// Blit uploads f and draws it at (dx, dy) scaled by scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, f *core.Frame, dx, dy float64, scale int) {
	if gp.img == nil || f.W != gp.w || f.H != gp.h {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.w, gp.h = f.W, f.H
		gp.img = ebiten.NewImage(f.W, f.H)
	}
	gp.buf = Frame(gp.buf, f.Cells(), gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(dx, dy)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
