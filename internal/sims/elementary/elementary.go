package elementary

import (
	"strconv"

	"planar/internal/core"
	"planar/pkg/grid"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	// Width caps how wide a generation may grow.
	Width int
	// Height is the number of generations kept.
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary runs a one-dimensional Wolfram code. Generations grow sideways
// in both directions. Until Height is reached generation n lives at row n;
// after that the oldest row is dropped each step and the rest renumber, so
// row y holds generation FirstGeneration()+y.
type Elementary struct {
	cfg   Config
	plane *grid.Plane[uint8]
	row   []uint8
	first int
}

// New creates an automaton with the given configuration.
func New(cfg Config) *Elementary {
	return &Elementary{cfg: cfg, plane: grid.NewPlane[uint8]()}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Plane exposes the generation history.
func (e *Elementary) Plane() *grid.Plane[uint8] { return e.plane }

// FirstGeneration is the generation held in the top row.
func (e *Elementary) FirstGeneration() int { return e.first }

// Reset seeds generation 0 with a single active cell at the origin.
func (e *Elementary) Reset(int64) error {
	e.plane.Clear()
	e.first = 0
	e.plane.AddX()
	e.plane.AddY()
	return e.plane.Set(0, 0, 1)
}

// Step appends the next generation.
func (e *Elementary) Step() error {
	p := e.plane
	last := p.YEnd()
	if err := e.widen(last); err != nil {
		return err
	}

	prev, err := p.GetAtY(last)
	if err != nil {
		return err
	}
	e.row = e.row[:0]
	for v := range prev {
		e.row = append(e.row, v)
	}

	p.AddY()
	next := p.YEnd()
	at := func(i int) uint8 {
		if i < 0 || i >= len(e.row) {
			return 0
		}
		return e.row[i]
	}
	for i := range e.row {
		idx := (at(i-1) << 2) | (at(i) << 1) | at(i+1)
		if err := p.Set(p.XStart()+i, next, (e.cfg.Rule>>idx)&1); err != nil {
			return err
		}
	}

	if p.YSize() > e.cfg.Height {
		if err := p.RemoveAtY(p.YStart()); err != nil {
			return err
		}
		e.first++
	}
	return nil
}

// widen adds a column on each side where row y has an active edge cell.
func (e *Elementary) widen(y int) error {
	p := e.plane
	if p.XSize() < e.cfg.Width {
		if v, err := p.Get(p.XStart(), y); err != nil {
			return err
		} else if v != 0 {
			if err := p.InsertAtX(p.XStart()); err != nil {
				return err
			}
		}
	}
	if p.XSize() < e.cfg.Width {
		if v, err := p.Get(p.XEnd(), y); err != nil {
			return err
		} else if v != 0 {
			p.AddX()
		}
	}
	return nil
}

// Parameters reports the rule and plane extent.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "elementary", Params: []core.Parameter{
			{Key: "rule", Label: "rule", Value: strconv.Itoa(int(e.cfg.Rule))},
			{Key: "first", Label: "first generation", Value: strconv.Itoa(e.first)},
		}},
		core.PlaneParameters(e.plane),
	}}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
