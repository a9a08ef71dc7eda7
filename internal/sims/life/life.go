package life

import (
	"strconv"

	"planar/internal/core"
	"planar/pkg/grid"
)

// Life implements Conway's Game of Life on a plane that grows with the
// pattern instead of wrapping.
type Life struct {
	cfg   Config
	plane *grid.Plane[uint8]
	gen   int
}

// New returns a Life simulation with an empty plane.
func New(cfg Config) *Life {
	return &Life{cfg: cfg, plane: grid.NewPlane[uint8]()}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Plane exposes the live cells; 1 is alive.
func (l *Life) Plane() *grid.Plane[uint8] { return l.plane }

// Generation returns the number of steps since the last reset.
func (l *Life) Generation() int { return l.gen }

// Reset scatters a random soup centred on the origin.
func (l *Life) Reset(seed int64) error {
	l.plane.Clear()
	l.gen = 0
	soup := core.NewRNG(seed).Patch(l.cfg.Width, l.cfg.Height, l.cfg.Density, 1)
	return l.plane.Place(soup, grid.Pt(-l.cfg.Width/2, -l.cfg.Height/2))
}

// Step advances the simulation by one generation.
func (l *Life) Step() error {
	limit := grid.Sz(l.cfg.MaxWidth, l.cfg.MaxHeight)
	if err := core.Advance(l.plane, limit, rule); err != nil {
		return err
	}
	l.gen++
	return core.Trim(l.plane, 1)
}

func rule(cells [][]uint8, x, y int) uint8 {
	neighbors := core.Moore(cells, x, y, 1)
	alive := cells[x][y] == 1
	if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
		return 1
	}
	return 0
}

// Parameters reports the generation and plane extent.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "life", Params: []core.Parameter{
			{Key: "generation", Label: "generation", Value: strconv.Itoa(l.gen)},
		}},
		core.PlaneParameters(l.plane),
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
