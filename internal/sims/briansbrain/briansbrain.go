package briansbrain

import (
	"strconv"

	"planar/internal/core"
	"planar/pkg/grid"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Config holds parameters for Brian's Brain.
type Config struct {
	Width, Height       int
	MaxWidth, MaxHeight int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 48, Height: 48, MaxWidth: 384, MaxHeight: 384}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	for key, dst := range map[string]*int{"w": &c.Width, "h": &c.Height, "maxw": &c.MaxWidth, "maxh": &c.MaxHeight} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	return c
}

// Brain implements Brian's Brain on a growing plane.
type Brain struct {
	cfg   Config
	plane *grid.Plane[uint8]
}

// New creates a Brain simulation with an empty plane.
func New(cfg Config) *Brain {
	return &Brain{cfg: cfg, plane: grid.NewPlane[uint8]()}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Plane exposes the cell states.
func (b *Brain) Plane() *grid.Plane[uint8] { return b.plane }

// Reset fires roughly one cell in eight around the origin.
func (b *Brain) Reset(seed int64) error {
	b.plane.Clear()
	soup := core.NewRNG(seed).Patch(b.cfg.Width, b.cfg.Height, 8, stateOn)
	return b.plane.Place(soup, grid.Pt(-b.cfg.Width/2, -b.cfg.Height/2))
}

// Step advances the automaton by one tick.
func (b *Brain) Step() error {
	if err := core.Advance(b.plane, grid.Sz(b.cfg.MaxWidth, b.cfg.MaxHeight), rule); err != nil {
		return err
	}
	return core.Trim(b.plane, 1)
}

func rule(cells [][]uint8, x, y int) uint8 {
	switch cells[x][y] {
	case stateOn:
		return stateDying
	case stateDying:
		return stateDead
	}
	if core.Moore(cells, x, y, stateOn) == 2 {
		return stateOn
	}
	return stateDead
}

// Parameters reports the plane extent.
func (b *Brain) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{core.PlaneParameters(b.plane)}}
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
