package grid

import "fmt"

// Point is an (X, Y) coordinate or offset.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Mul multiplies component-wise.
func (p Point) Mul(q Point) Point { return Point{X: p.X * q.X, Y: p.Y * q.Y} }

// Div divides component-wise. It panics on a zero component like integer division does.
func (p Point) Div(q Point) Point { return Point{X: p.X / q.X, Y: p.Y / q.Y} }

// AddSize returns the point s further along both axes, i.e. the exclusive
// far corner of a rectangle of size s anchored at p.
func (p Point) AddSize(s Size) Point { return Point{X: p.X + s.X, Y: p.Y + s.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Size is an extent along the X and Y axes.
type Size struct {
	X, Y int
}

// Sz is shorthand for Size{X: x, Y: y}.
func Sz(x, y int) Size { return Size{X: x, Y: y} }

// Add returns s+o.
func (s Size) Add(o Size) Size { return Size{X: s.X + o.X, Y: s.Y + o.Y} }

// Sub returns s-o.
func (s Size) Sub(o Size) Size { return Size{X: s.X - o.X, Y: s.Y - o.Y} }

// Mul multiplies component-wise.
func (s Size) Mul(o Size) Size { return Size{X: s.X * o.X, Y: s.Y * o.Y} }

// Div divides component-wise.
func (s Size) Div(o Size) Size { return Size{X: s.X / o.X, Y: s.Y / o.Y} }

// Area returns X*Y.
func (s Size) Area() int { return s.X * s.Y }

func (s Size) String() string { return fmt.Sprintf("(%d, %d)", s.X, s.Y) }
