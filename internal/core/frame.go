package core

import "planar/pkg/grid"

// Frame is a row-major raster of cell values, the shape renderers upload.
// It is filled from a plane through grid.Matrix, so (i, j) is (x, y).
type Frame struct {
	W, H int
	data []uint8
}

var _ grid.Matrix[uint8] = (*Frame)(nil)

// NewFrame allocates a frame; non-positive dimensions become 1.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice.
func (f *Frame) Cells() []uint8 { return f.data }

// Index returns the linear slice index for (x, y).
func (f *Frame) Index(x, y int) int { return y*f.W + x }

func (f *Frame) Dims() (r, c int) { return f.W, f.H }

func (f *Frame) Set(x, y int, v uint8) { f.data[y*f.W+x] = v }

// Clear fills the frame with zeros.
func (f *Frame) Clear() { clear(f.data) }

// Load resizes f to the physical extent of p and copies every cell in.
// Reports whether the dimensions changed.
func (f *Frame) Load(p *grid.Plane[uint8]) (bool, error) {
	w, h := max(p.XSize(), 1), max(p.YSize(), 1)
	resized := w != f.W || h != f.H
	if resized {
		f.W, f.H = w, h
		if cap(f.data) >= w*h {
			f.data = f.data[:w*h]
		} else {
			f.data = make([]uint8, w*h)
		}
	}
	f.Clear()
	return resized, p.CopyToMatrix(f, grid.Point{})
}
