package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planar/internal/core"
	"planar/pkg/grid"
)

type plain struct{ p *grid.Plane[uint8] }

func (s plain) Name() string              { return "plain" }
func (s plain) Reset(int64) error         { return nil }
func (s plain) Step() error               { return nil }
func (s plain) Plane() *grid.Plane[uint8] { return s.p }

type reporting struct{ plain }

func (s reporting) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{core.PlaneParameters(s.p)}}
}

func TestLines(t *testing.T) {
	p := grid.NewPlane[uint8]()
	require.NoError(t, p.Place([][]uint8{{1}}, grid.Pt(-2, 0)))

	assert.Equal(t, []string{"plain"}, Lines(plain{p: p}))

	lines := Lines(reporting{plain{p: p}})
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "plain", lines[0])
	assert.Equal(t, "[plane]", lines[1])
	assert.Contains(t, lines, "x: -2..-1")
	assert.Contains(t, lines, "origin: (2, 0)")
}
