package core

import "math/rand/v2"

// RNG draws seeded random patches for simulation resets.
type RNG struct {
	r *rand.Rand
}

// NewRNG returns a PCG-backed RNG; equal seeds give equal patches.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Patch returns a w by h patch, addressed [x][y], where each cell is set to
// v with probability 1/oneIn.
func (r *RNG) Patch(w, h, oneIn int, v uint8) [][]uint8 {
	cols := make([][]uint8, w)
	for x := range cols {
		cols[x] = make([]uint8, h)
		for y := range cols[x] {
			if oneIn <= 1 || r.r.IntN(oneIn) == 0 {
				cols[x][y] = v
			}
		}
	}
	return cols
}
