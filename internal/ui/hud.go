//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"planar/internal/core"
)

const (
	hudMargin     = 8
	hudLineHeight = 14
)

// HUD prints the sim's parameters in the top-left corner. H toggles it.
type HUD struct {
	sim     core.Sim
	lines   []string
	hidden  bool
	backing *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim, backing: ebiten.NewImage(1, 1)}
	h.backing.Fill(color.RGBA{A: 0xa0})
	return h
}

// Update refreshes the text from the simulation and handles the toggle key.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.hidden = !h.hidden
	}
	if !h.hidden {
		h.lines = Lines(h.sim)
	}
}

// Draw renders the HUD onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h.hidden || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range h.lines {
		width = max(width, text.BoundString(face, line).Dx())
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*hudMargin), float64(len(h.lines)*hudLineHeight+hudMargin))
	screen.DrawImage(h.backing, op)

	for i, line := range h.lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight-4, color.White)
	}
}
