package gridmat

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"planar/pkg/grid"
)

// XYZ adapts a plane to plotter.GridXYZ. Columns and rows are physical;
// X and Y report logical coordinates, so negative space plots left of and
// below the axes origin.
type XYZ struct {
	Plane *grid.Plane[float64]
}

var _ plotter.GridXYZ = XYZ{}

func (g XYZ) Dims() (c, r int) { return g.Plane.XSize(), g.Plane.YSize() }

func (g XYZ) Z(c, r int) float64 {
	v, err := g.Plane.UncoordinatedGet(c, r)
	if err != nil {
		panic(err)
	}
	return v
}

func (g XYZ) X(c int) float64 { return float64(g.Plane.XStart() + c) }
func (g XYZ) Y(r int) float64 { return float64(g.Plane.YStart() + r) }

// HeatMapOptions configure HeatMap.
type HeatMapOptions struct {
	Title  string
	Colors int // palette size, 12 when zero
}

// HeatMap builds a plot of p using the heat palette.
func HeatMap(p *grid.Plane[float64], opts HeatMapOptions) (*plot.Plot, error) {
	if p.XSize() == 0 || p.YSize() == 0 {
		return nil, errors.Wrap(grid.ErrInvalidArgument, "gridmat: empty plane")
	}
	n := opts.Colors
	if n <= 0 {
		n = 12
	}

	pl := plot.New()
	pl.Title.Text = opts.Title
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"
	hm := plotter.NewHeatMap(XYZ{Plane: p}, palette.Heat(n, 1))
	if hm.Max == hm.Min {
		// a flat plane would divide the palette by zero
		hm.Max++
	}
	pl.Add(hm)
	return pl, nil
}

// SaveHeatMap renders p to file; the format follows the file extension.
func SaveHeatMap(p *grid.Plane[float64], opts HeatMapOptions, w, h vg.Length, file string) error {
	pl, err := HeatMap(p, opts)
	if err != nil {
		return err
	}
	return errors.Wrapf(pl.Save(w, h, file), "save heat map %s", file)
}
