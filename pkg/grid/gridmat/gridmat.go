// Package gridmat moves float64 grids in and out of gonum matrices and
// exposes planes to gonum/plot.
package gridmat

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"planar/pkg/grid"
)

var _ grid.Matrix[float64] = (*mat.Dense)(nil)

// Source is a float64 container read over its bounds.
type Source interface {
	grid.Bounded
	Get(x, y int) (float64, error)
}

// ToDense copies src into a new matrix with row i holding column XStart+i.
// gonum has no zero-sized matrices, so an empty src is rejected.
func ToDense(src Source) (*mat.Dense, error) {
	xs, ys := src.XStart(), src.YStart()
	r, c := src.XEnd()-xs+1, src.YEnd()-ys+1
	if r <= 0 || c <= 0 {
		return nil, errors.Wrap(grid.ErrInvalidArgument, "gridmat: empty source")
	}
	d := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := src.Get(xs+i, ys+j)
			if err != nil {
				return nil, err
			}
			d.Set(i, j, v)
		}
	}
	return d, nil
}

// FromMatrix returns a grid with one column per matrix row.
func FromMatrix(m mat.Matrix) (*grid.Grid[float64], error) {
	r, c := m.Dims()
	cols := make([][]float64, r)
	for i := range cols {
		cols[i] = make([]float64, c)
		mat.Row(cols[i], i, m)
	}
	return grid.FromJagged(cols)
}
