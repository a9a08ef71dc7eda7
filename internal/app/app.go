//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"planar/internal/core"
	"planar/internal/render"
	"planar/internal/ui"
)

// Game adapts a core simulation to the ebiten.Game interface. The logical
// origin of the sim's plane stays at the centre of the window.
type Game struct {
	sim     core.Sim
	frame   *core.Frame
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	stepper *core.FixedStep

	scale         int
	tps           int
	width, height int
	paused        bool
	tickOnce      bool
	seed          int64
	err           error
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	return &Game{
		sim:     sim,
		frame:   core.NewFrame(1, 1),
		painter: render.NewGridPainter(render.DefaultPalette),
		hud:     ui.NewHUD(sim),
		overlay: ui.NewOverlay(),
		stepper: core.NewFixedStep(cfg.TPS),
		scale:   cfg.Scale,
		tps:     cfg.TPS,
		width:   cfg.Width,
		height:  cfg.Height,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	g.tickOnce = false
	return g.sim.Reset(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.tps = min(max(g.tps, 1)*2, 480)
		g.stepper.SetTPS(g.tps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.tps = max(g.tps/2, 1)
		g.stepper.SetTPS(g.tps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	g.overlay.Update()

	ticks := g.stepper.Due()
	if g.paused {
		ticks = 0
	}
	if g.tickOnce {
		g.tickOnce = false
		ticks = max(ticks, 1)
	}
	for range ticks {
		if err := g.sim.Step(); err != nil {
			return err
		}
	}
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	p := g.sim.Plane()
	if _, err := g.frame.Load(p); err != nil {
		g.err = err
		return
	}
	cx := float64(g.width*g.scale) / 2
	cy := float64(g.height*g.scale) / 2
	dx := cx - float64(p.XOriginOffset()*g.scale)
	dy := cy - float64(p.YOriginOffset()*g.scale)

	g.painter.Blit(screen, g.frame, dx, dy, g.scale)
	g.overlay.Draw(screen, cx, cy)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width * g.scale, g.height * g.scale
}
