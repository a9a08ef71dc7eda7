package core

import (
	"fmt"
	"strconv"

	"planar/pkg/grid"
)

// Parameter is a single labelled value shown on the HUD.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures what a sim reports about itself.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that expose a snapshot.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// PlaneParameters describes the extent and origin of p.
func PlaneParameters(p *grid.Plane[uint8]) ParameterGroup {
	return ParameterGroup{
		Name: "plane",
		Params: []Parameter{
			{Key: "x", Label: "x", Value: fmt.Sprintf("%d..%d", p.XStart(), p.XEnd())},
			{Key: "y", Label: "y", Value: fmt.Sprintf("%d..%d", p.YStart(), p.YEnd())},
			{Key: "origin", Label: "origin", Value: p.OriginOffset().String()},
			{Key: "capacity", Label: "capacity", Value: grid.Sz(p.XCapacity(), p.YCapacity()).String()},
			{Key: "population", Label: "population", Value: strconv.Itoa(Population(p))},
		},
	}
}

// Lines flattens the snapshot into "label: value" lines under group headers.
func (s ParameterSnapshot) Lines() []string {
	var out []string
	for _, g := range s.Groups {
		out = append(out, "["+g.Name+"]")
		for _, p := range g.Params {
			out = append(out, p.Label+": "+p.Value)
		}
	}
	return out
}
