package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceGrowsToFit(t *testing.T) {
	g := New[int]()
	require.NoError(t, g.Place([][]int{{1, 2}}, Pt(2, 1)))
	assert.Equal(t, Sz(3, 3), g.Size())
	assert.Equal(t, 4, g.XCapacity())
	requireCells(t, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 1, 2}}, g)
}

func TestPlaceInsideKeepsSize(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, g.Place([][]int{{9}}, Pt(1, 1)))
	requireCells(t, [][]int{{1, 2, 3}, {4, 9, 6}}, g)
}

func TestPlaceBelowZeroShiftsExisting(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, g.Place([][]int{{9}}, Pt(-1, -1)))

	requireCells(t, [][]int{{9, 0, 0}, {0, 1, 2}, {0, 3, 4}}, g)
	assert.Equal(t, 3, g.XCapacity())
	assert.Equal(t, 3, g.YCapacity())
}

func TestPlaceBelowZeroOnOneAxisKeepsHeight(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2, 3, 4, 5}})
	require.NoError(t, g.Place([][]int{{9}}, Pt(-1, 0)))
	requireCells(t, [][]int{{9, 0, 0, 0, 0}, {1, 2, 3, 4, 5}}, g)

	h := mustGrid(t, [][]int{{1}, {2}, {3}})
	require.NoError(t, h.Place([][]int{{7, 8}}, Pt(2, -1)))
	requireCells(t, [][]int{{0, 1}, {0, 2}, {7, 8}}, h)
}

func TestPlaceOverwritePredicate(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 0}})
	emptyOnly := PlaceOptions[int]{Overwrite: func(existing, _ int) bool { return existing == 0 }}

	require.NoError(t, g.PlaceWith([][]int{{5, 6}}, Point{}, emptyOnly))
	requireCells(t, [][]int{{1, 6}}, g)

	var seen []int
	record := PlaceOptions[int]{Overwrite: func(existing, _ int) bool {
		seen = append(seen, existing)
		return true
	}}
	require.NoError(t, g.PlaceWith([][]int{{7, 8}}, Pt(1, 0), record))
	assert.Equal(t, []int{0, 0}, seen, "fresh cells present the zero value")
	requireCells(t, [][]int{{1, 6}, {7, 8}}, g)
}

func TestPlaceClip(t *testing.T) {
	g := New[int]()
	require.NoError(t, g.Expand(2, 2))
	patch := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}

	require.NoError(t, g.PlaceWith(patch, Pt(-1, -1), PlaceOptions[int]{Clip: true}))
	requireCells(t, [][]int{{5, 6}, {8, 9}}, g)

	require.NoError(t, g.PlaceWith(patch, Pt(1, 1), PlaceOptions[int]{Clip: true}))
	requireCells(t, [][]int{{5, 6}, {8, 1}}, g)
	assert.Equal(t, Sz(2, 2), g.Size())
}

func TestPlaceRejectsRaggedPatch(t *testing.T) {
	g := mustGrid(t, [][]int{{1}})
	err := g.Place([][]int{{1, 2}, {3}}, Pt(-1, -1))
	requireKind(t, err, ErrInvalidArgument, AxisY)
	requireCells(t, [][]int{{1}}, g)
}

func TestPlaceEmptyPatchAtOrigin(t *testing.T) {
	g := mustGrid(t, [][]int{{1}})
	require.NoError(t, g.Place(nil, Point{}))
	requireCells(t, [][]int{{1}}, g)
}

func TestPlaceGrid(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, g.PlaceGrid(g, Pt(1, 1)))
	requireCells(t, [][]int{{1, 2, 0}, {3, 1, 2}, {0, 3, 4}}, g)

	requireKind(t, g.PlaceGrid(nil, Point{}), ErrInvalidArgument, AxisNone)
}

func TestPointAndSize(t *testing.T) {
	p := Pt(3, -2)
	assert.Equal(t, Pt(4, 0), p.Add(Pt(1, 2)))
	assert.Equal(t, Pt(2, -4), p.Sub(Pt(1, 2)))
	assert.Equal(t, Pt(6, -6), p.Mul(Pt(2, 3)))
	assert.Equal(t, Pt(1, -1), p.Div(Pt(2, 2)))
	assert.Equal(t, Pt(5, 1), p.AddSize(Sz(2, 3)))
	assert.Equal(t, "(3, -2)", p.String())

	s := Sz(4, 5)
	assert.Equal(t, 20, s.Area())
	assert.Equal(t, Sz(5, 7), s.Add(Sz(1, 2)))
	assert.Equal(t, "(4, 5)", s.String())
}
