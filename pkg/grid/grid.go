package grid

import "iter"

const (
	initialCapacity = 4
	growthFactor    = 2.0
)

// Grid is a two-axis dynamic array. X is the outer axis: each column holds
// one cell per y and is reallocated on its own when the Y capacity changes.
//
// Slots beyond the logical extent always hold the zero value, so growing an
// axis without an explicit fill exposes zero cells.
type Grid[T any] struct {
	items [][]T // len == xCap; items[x] has len yCap for x < xSize, nil otherwise

	xSize, ySize int
	xCap, yCap   int
}

// New returns an empty grid with the default 4x4 capacity.
func New[T any]() *Grid[T] {
	return newGrid[T](initialCapacity, initialCapacity)
}

// NewWithCapacity returns an empty grid with the given capacities.
// Both capacities must be at least 1.
func NewWithCapacity[T any](xCap, yCap int) (*Grid[T], error) {
	if xCap < 1 {
		return nil, badArgument("new", AxisX, xCap, 1)
	}
	if yCap < 1 {
		return nil, badArgument("new", AxisY, yCap, 1)
	}
	return newGrid[T](xCap, yCap), nil
}

// FromJagged copies a rectangular src, addressed src[x][y], into a new grid
// whose sizes and capacities equal the source dimensions.
func FromJagged[T any](src [][]T) (*Grid[T], error) {
	n, err := rectSize("from", src)
	if err != nil {
		return nil, err
	}
	g := newGrid[T](n.X, n.Y)
	for x, col := range src {
		g.items[x] = make([]T, n.Y)
		copy(g.items[x], col)
	}
	g.xSize, g.ySize = n.X, n.Y
	return g, nil
}

func newGrid[T any](xCap, yCap int) *Grid[T] {
	return &Grid[T]{items: make([][]T, xCap), xCap: xCap, yCap: yCap}
}

// rectSize validates that src is rectangular and returns its dimensions.
func rectSize[T any](op string, src [][]T) (Size, error) {
	if len(src) == 0 {
		return Size{}, nil
	}
	ys := len(src[0])
	for _, col := range src[1:] {
		if len(col) != ys {
			return Size{}, badArgument(op, AxisY, len(col), ys)
		}
	}
	return Size{X: len(src), Y: ys}, nil
}

// grow applies the growth factor. A zero capacity, left behind by an empty
// source, becomes 1 so growth always makes room.
func grow(capacity int) int {
	n := int(float64(capacity) * growthFactor)
	if n < 1 {
		n = 1
	}
	return n
}

// XSize returns the number of columns.
func (g *Grid[T]) XSize() int { return g.xSize }

// YSize returns the number of rows.
func (g *Grid[T]) YSize() int { return g.ySize }

// Size returns both extents.
func (g *Grid[T]) Size() Size { return Size{X: g.xSize, Y: g.ySize} }

// XCapacity returns the allocated column count.
func (g *Grid[T]) XCapacity() int { return g.xCap }

// YCapacity returns the allocated cells per column.
func (g *Grid[T]) YCapacity() int { return g.yCap }

// Count returns XSize*YSize.
func (g *Grid[T]) Count() int { return g.xSize * g.ySize }

// XCount is XSize.
func (g *Grid[T]) XCount() int { return g.xSize }

// YCount is YSize.
func (g *Grid[T]) YCount() int { return g.ySize }

// XStart is the lowest valid x, always 0.
func (g *Grid[T]) XStart() int { return 0 }

// XEnd is the highest valid x, XSize-1.
func (g *Grid[T]) XEnd() int { return g.xSize - 1 }

// YStart is the lowest valid y, always 0.
func (g *Grid[T]) YStart() int { return 0 }

// YEnd is the highest valid y, YSize-1.
func (g *Grid[T]) YEnd() int { return g.ySize - 1 }

func (g *Grid[T]) check(op string, x, y int) error {
	if x < 0 || x >= g.xSize {
		return outOfRange(op, AxisX, x, g.xSize)
	}
	if y < 0 || y >= g.ySize {
		return outOfRange(op, AxisY, y, g.ySize)
	}
	return nil
}

// Get returns the cell at (x, y).
func (g *Grid[T]) Get(x, y int) (T, error) {
	if err := g.check("get", x, y); err != nil {
		var zero T
		return zero, err
	}
	return g.items[x][y], nil
}

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) error {
	if err := g.check("set", x, y); err != nil {
		return err
	}
	g.items[x][y] = v
	return nil
}

func (g *Grid[T]) reallocColumns() {
	next := make([][]T, g.xCap)
	copy(next, g.items[:g.xSize])
	g.items = next
}

func (g *Grid[T]) reallocRows() {
	for x := 0; x < g.xSize; x++ {
		col := make([]T, g.yCap)
		copy(col, g.items[x][:g.ySize])
		g.items[x] = col
	}
}

// AddX appends a zero column.
func (g *Grid[T]) AddX() {
	if g.xSize >= g.xCap {
		g.xCap = grow(g.xCap)
		g.reallocColumns()
	}
	g.items[g.xSize] = make([]T, g.yCap)
	g.xSize++
}

// AddY appends a zero row. Every column is reallocated when Y capacity grows.
func (g *Grid[T]) AddY() {
	if g.ySize >= g.yCap {
		g.yCap = grow(g.yCap)
		g.reallocRows()
	}
	g.ySize++
}

// InsertAtX inserts a zero column at x, shifting columns x.. up by one.
// x may equal XSize.
func (g *Grid[T]) InsertAtX(x int) error {
	if x < 0 || x > g.xSize {
		return outOfRange("insert", AxisX, x, g.xSize)
	}
	if g.xSize+1 >= g.xCap {
		g.xCap = grow(g.xCap)
		g.reallocColumns()
	}
	copy(g.items[x+1:g.xSize+1], g.items[x:g.xSize])
	g.items[x] = make([]T, g.yCap)
	g.xSize++
	return nil
}

// InsertAtY inserts a zero row at y in every column. y may equal YSize.
func (g *Grid[T]) InsertAtY(y int) error {
	if y < 0 || y > g.ySize {
		return outOfRange("insert", AxisY, y, g.ySize)
	}
	if g.ySize+1 >= g.yCap {
		g.yCap = grow(g.yCap)
		g.reallocRows()
	}
	var zero T
	for x := 0; x < g.xSize; x++ {
		col := g.items[x]
		copy(col[y+1:g.ySize+1], col[y:g.ySize])
		col[y] = zero
	}
	g.ySize++
	return nil
}

// RemoveAtX removes column x, shifting later columns down. Capacity is kept.
func (g *Grid[T]) RemoveAtX(x int) error {
	if g.xSize == 0 {
		return emptyAxis("remove", AxisX)
	}
	if x < 0 || x >= g.xSize {
		return outOfRange("remove", AxisX, x, g.xSize)
	}
	copy(g.items[x:], g.items[x+1:g.xSize])
	g.xSize--
	g.items[g.xSize] = nil
	return nil
}

// RemoveAtY removes row y from every column.
func (g *Grid[T]) RemoveAtY(y int) error {
	if g.ySize == 0 {
		return emptyAxis("remove", AxisY)
	}
	if y < 0 || y >= g.ySize {
		return outOfRange("remove", AxisY, y, g.ySize)
	}
	var zero T
	for x := 0; x < g.xSize; x++ {
		col := g.items[x]
		copy(col[y:], col[y+1:g.ySize])
		col[g.ySize-1] = zero
	}
	g.ySize--
	return nil
}

// ShrinkX drops the last column.
func (g *Grid[T]) ShrinkX() error {
	if g.xSize == 0 {
		return emptyAxis("shrink", AxisX)
	}
	g.xSize--
	g.items[g.xSize] = nil
	return nil
}

// ShrinkY drops the last row.
func (g *Grid[T]) ShrinkY() error {
	if g.ySize == 0 {
		return emptyAxis("shrink", AxisY)
	}
	g.ySize--
	var zero T
	for x := 0; x < g.xSize; x++ {
		g.items[x][g.ySize] = zero
	}
	return nil
}

// Clear drops all cells and restores the default capacity.
func (g *Grid[T]) Clear() {
	g.items = make([][]T, initialCapacity)
	g.xSize, g.ySize = 0, 0
	g.xCap, g.yCap = initialCapacity, initialCapacity
}

// Columns yields GetAtX(0) through GetAtX(XSize-1). The sequence reads the
// grid as it is when iterated and may be ranged over again.
func (g *Grid[T]) Columns() iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		for x := 0; x < g.xSize; x++ {
			if !yield(g.column(x)) {
				return
			}
		}
	}
}

func (g *Grid[T]) column(x int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for y := 0; y < g.ySize && x < g.xSize; y++ {
			if !yield(g.items[x][y]) {
				return
			}
		}
	}
}

func (g *Grid[T]) row(y int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := 0; x < g.xSize && y < g.ySize; x++ {
			if !yield(g.items[x][y]) {
				return
			}
		}
	}
}

// GetAtX returns the cells of column x in y order.
func (g *Grid[T]) GetAtX(x int) (iter.Seq[T], error) {
	if x < 0 || x >= g.xSize {
		return nil, outOfRange("column", AxisX, x, g.xSize)
	}
	return g.column(x), nil
}

// GetAtY returns the cells of row y in x order.
func (g *Grid[T]) GetAtY(y int) (iter.Seq[T], error) {
	if y < 0 || y >= g.ySize {
		return nil, outOfRange("row", AxisY, y, g.ySize)
	}
	return g.row(y), nil
}

// AllAtX reports whether pred holds for every cell of column x.
func (g *Grid[T]) AllAtX(x int, pred func(T) bool) (bool, error) {
	col, err := g.GetAtX(x)
	if err != nil {
		return false, err
	}
	return allOf(col, pred), nil
}

// AllAtY reports whether pred holds for every cell of row y.
func (g *Grid[T]) AllAtY(y int, pred func(T) bool) (bool, error) {
	row, err := g.GetAtY(y)
	if err != nil {
		return false, err
	}
	return allOf(row, pred), nil
}

// ContainsFunc reports whether any cell satisfies pred.
func (g *Grid[T]) ContainsFunc(pred func(T) bool) bool {
	for x := 0; x < g.xSize; x++ {
		if anyOf(g.column(x), pred) {
			return true
		}
	}
	return false
}

// ContainsAtXFunc reports whether any cell of column x satisfies pred.
func (g *Grid[T]) ContainsAtXFunc(x int, pred func(T) bool) (bool, error) {
	col, err := g.GetAtX(x)
	if err != nil {
		return false, err
	}
	return anyOf(col, pred), nil
}

// ContainsAtYFunc reports whether any cell of row y satisfies pred.
func (g *Grid[T]) ContainsAtYFunc(y int, pred func(T) bool) (bool, error) {
	row, err := g.GetAtY(y)
	if err != nil {
		return false, err
	}
	return anyOf(row, pred), nil
}

func allOf[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if !pred(v) {
			return false
		}
	}
	return true
}

func anyOf[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if pred(v) {
			return true
		}
	}
	return false
}
