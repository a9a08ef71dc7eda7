package grid

import "iter"

// Enumerable yields a container column by column.
type Enumerable[T any] interface {
	Columns() iter.Seq[iter.Seq[T]]
}

// ReadOnlyCollection is an Enumerable with known axis counts.
type ReadOnlyCollection[T any] interface {
	Enumerable[T]
	Count() int
	XCount() int
	YCount() int
}

// ReadOnlyList adds indexed reads.
type ReadOnlyList[T any] interface {
	ReadOnlyCollection[T]
	Get(x, y int) (T, error)
}

// Bounded reports the inclusive index span accepted by Get on each axis.
// An empty axis has End == Start-1.
type Bounded interface {
	XStart() int
	XEnd() int
	YStart() int
	YEnd() int
}

// Collection is a growable container without positional inserts.
type Collection[T any] interface {
	ReadOnlyCollection[T]
	Clear()
	AddX()
	AddY()
	ShrinkX() error
	ShrinkY() error
	CopyTo(dst [][]T, at Point) error
	ContainsFunc(pred func(T) bool) bool
	ContainsAtXFunc(x int, pred func(T) bool) (bool, error)
	ContainsAtYFunc(y int, pred func(T) bool) (bool, error)
}

// List is a Collection with indexed writes and positional inserts/removals.
type List[T any] interface {
	Collection[T]
	Get(x, y int) (T, error)
	Set(x, y int, v T) error
	InsertAtX(x int) error
	InsertAtY(y int) error
	RemoveAtX(x int) error
	RemoveAtY(y int) error
}

// Matrix is a fixed-size destination addressed as (i, j) = (x, y).
// *mat.Dense from gonum satisfies Matrix[float64].
type Matrix[T any] interface {
	Dims() (r, c int)
	Set(i, j int, v T)
}

var (
	_ List[int]         = (*Grid[int])(nil)
	_ List[int]         = (*Plane[int])(nil)
	_ ReadOnlyList[int] = (*Grid[int])(nil)
	_ ReadOnlyList[int] = (*Plane[int])(nil)
	_ Bounded           = (*Grid[int])(nil)
	_ Bounded           = (*Plane[int])(nil)
)

// Contains reports whether v occurs anywhere in c.
func Contains[T comparable](c Collection[T], v T) bool {
	return c.ContainsFunc(func(e T) bool { return e == v })
}

// ContainsAtX reports whether v occurs in column x.
func ContainsAtX[T comparable](c Collection[T], x int, v T) (bool, error) {
	return c.ContainsAtXFunc(x, func(e T) bool { return e == v })
}

// ContainsAtY reports whether v occurs in row y.
func ContainsAtY[T comparable](c Collection[T], y int, v T) (bool, error) {
	return c.ContainsAtYFunc(y, func(e T) bool { return e == v })
}
