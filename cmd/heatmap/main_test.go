package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planar/pkg/grid"
)

func TestBlobPeaksAtCentre(t *testing.T) {
	b := blob(5, 2)
	require.Len(t, b, 5)
	assert.InDelta(t, 2.0, b[2][2], 1e-9)
	assert.Less(t, b[0][0], b[1][1])
	assert.InDelta(t, b[0][4], b[4][0], 1e-12)
}

func TestOverlappingBlobsKeepHigherValue(t *testing.T) {
	p := grid.NewPlane[float64]()
	higher := grid.PlaceOptions[float64]{
		Overwrite: func(existing, incoming float64) bool { return incoming > existing },
	}
	require.NoError(t, p.PlaceWith(blob(3, 5), grid.Pt(-1, -1), higher))
	require.NoError(t, p.PlaceWith(blob(3, 1), grid.Pt(-2, -2), higher))

	v, err := p.Get(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v, 1e-9)
	assert.Equal(t, grid.Pt(2, 2), p.OriginOffset())
}
