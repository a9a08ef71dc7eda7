//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var axisColor = color.RGBA{R: 0xc0, G: 0x40, B: 0x40, A: 0xc0}

// Overlay draws the logical axes through (0, 0). A toggles it.
type Overlay struct {
	showAxes bool
}

// NewOverlay constructs an overlay with the axes visible.
func NewOverlay() *Overlay {
	return &Overlay{showAxes: true}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		o.showAxes = !o.showAxes
	}
}

// Draw renders the axes crossing at screen position (cx, cy).
func (o *Overlay) Draw(screen *ebiten.Image, cx, cy float64) {
	if !o.showAxes {
		return
	}
	b := screen.Bounds()
	vector.StrokeLine(screen, float32(cx), 0, float32(cx), float32(b.Dy()), 1, axisColor, false)
	vector.StrokeLine(screen, 0, float32(cy), float32(b.Dx()), float32(cy), 1, axisColor, false)
}
