package core

import (
	"slices"

	"github.com/pkg/errors"

	"planar/pkg/grid"
)

// Sim defines the minimal contract a cellular automaton must implement.
// The plane grows as the pattern does; logical (0, 0) stays put.
type Sim interface {
	Name() string
	Reset(seed int64) error
	Step() error
	Plane() *grid.Plane[uint8]
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New builds the named simulation.
func New(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, errors.Errorf("unknown sim %q (have %v)", name, Names())
	}
	return f(cfg), nil
}
