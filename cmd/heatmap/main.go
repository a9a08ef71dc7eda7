// Command heatmap scatters gaussian blobs around the origin of a plane,
// including negative coordinates, and saves the result as an image.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"

	"planar/pkg/grid"
	"planar/pkg/grid/gridmat"
)

func main() {
	out := flag.String("out", "heatmap.png", "output image; format follows the extension")
	blobs := flag.Int("blobs", 6, "number of blobs")
	seed := flag.Uint64("seed", 1, "random seed")
	size := flag.Int("size", 15, "blob diameter in cells")
	spread := flag.Int("spread", 40, "blob centres fall within +-spread of the origin")
	flag.Parse()
	log.SetFlags(0)

	if *size < 1 || *blobs < 1 || *spread < 0 {
		log.Fatal("heatmap: -size and -blobs must be positive, -spread non-negative")
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	p := grid.NewPlane[float64]()
	higher := grid.PlaceOptions[float64]{
		Overwrite: func(existing, incoming float64) bool { return incoming > existing },
	}
	r := *spread
	for i := 0; i < *blobs; i++ {
		at := grid.Pt(rng.IntN(2*r+1)-r, rng.IntN(2*r+1)-r)
		peak := 0.5 + rng.Float64()
		if err := p.PlaceWith(blob(*size, peak), at, higher); err != nil {
			log.Fatalf("place blob %d at %v: %v", i, at, err)
		}
	}

	d, err := gridmat.ToDense(p)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("x %d..%d y %d..%d origin %v\n", p.XStart(), p.XEnd(), p.YStart(), p.YEnd(), p.OriginOffset())
	fmt.Printf("min %.3f max %.3f sum %.3f\n", mat.Min(d), mat.Max(d), mat.Sum(d))

	opts := gridmat.HeatMapOptions{Title: fmt.Sprintf("%d blobs, seed %d", *blobs, *seed)}
	if err := gridmat.SaveHeatMap(p, opts, 6*vg.Inch, 6*vg.Inch, *out); err != nil {
		log.Fatal(err)
	}
	fmt.Println("wrote", *out)
}

// blob returns an n x n gaussian bump scaled to peak at its centre.
func blob(n int, peak float64) [][]float64 {
	c := float64(n-1) / 2
	sigma := max(float64(n)/4, 0.5)
	cells := make([][]float64, n)
	for x := range cells {
		cells[x] = make([]float64, n)
		for y := range cells[x] {
			dx, dy := float64(x)-c, float64(y)-c
			cells[x][y] = peak * math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma))
		}
	}
	return cells
}
