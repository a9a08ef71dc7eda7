//go:build !ebiten

package app

import (
	"github.com/pkg/errors"

	"planar/internal/core"
)

// ErrHeadless is returned by every Game method that needs a window.
var ErrHeadless = errors.New("app: built without the ebiten tag")

// Game stands in for the windowed game in headless builds.
type Game struct {
	sim core.Sim
}

// New wraps sim; the result can reset it but never draws.
func New(sim core.Sim, _ *Config) *Game { return &Game{sim: sim} }

func (g *Game) Reset(seed int64) error     { return g.sim.Reset(seed) }
func (g *Game) Update() error              { return errors.WithStack(ErrHeadless) }
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

func (g *Game) Draw(any) {}
