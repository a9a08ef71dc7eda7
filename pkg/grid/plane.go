package grid

import "iter"

// Plane is a Grid addressed through a movable origin. Logical x maps to
// physical x+XOriginOffset (likewise y), so cells inserted or placed before
// the origin get negative logical coordinates while existing cells keep
// theirs.
//
// Get, Set and the positional operations take logical coordinates.
// UncoordinatedGet and UncoordinatedSet, the size, capacity and bulk
// operations (Expand, Resize, Shrink, Fill, CopyTo) work on physical storage.
type Plane[T any] struct {
	grid *Grid[T]

	xOrigin, yOrigin int
}

// NewPlane returns an empty plane with the default capacity.
func NewPlane[T any]() *Plane[T] {
	return &Plane[T]{grid: New[T]()}
}

// NewPlaneWithCapacity returns an empty plane with the given capacities.
func NewPlaneWithCapacity[T any](xCap, yCap int) (*Plane[T], error) {
	g, err := NewWithCapacity[T](xCap, yCap)
	if err != nil {
		return nil, err
	}
	return &Plane[T]{grid: g}, nil
}

// PlaneFromJagged copies src into a plane whose origin is src[0][0].
func PlaneFromJagged[T any](src [][]T) (*Plane[T], error) {
	g, err := FromJagged(src)
	if err != nil {
		return nil, err
	}
	return &Plane[T]{grid: g}, nil
}

// XOriginOffset returns the physical column of logical x = 0.
func (p *Plane[T]) XOriginOffset() int { return p.xOrigin }

// YOriginOffset returns the physical row of logical y = 0.
func (p *Plane[T]) YOriginOffset() int { return p.yOrigin }

// OriginOffset returns both offsets.
func (p *Plane[T]) OriginOffset() Point { return Point{X: p.xOrigin, Y: p.yOrigin} }

// XStart is the lowest valid logical x.
func (p *Plane[T]) XStart() int { return -p.xOrigin }

// YStart is the lowest valid logical y.
func (p *Plane[T]) YStart() int { return -p.yOrigin }

// XEnd is the highest valid logical x, XStart-1 when empty.
func (p *Plane[T]) XEnd() int { return p.grid.xSize - 1 - p.xOrigin }

// YEnd is the highest valid logical y, YStart-1 when empty.
func (p *Plane[T]) YEnd() int { return p.grid.ySize - 1 - p.yOrigin }

func (p *Plane[T]) XSize() int     { return p.grid.XSize() }
func (p *Plane[T]) YSize() int     { return p.grid.YSize() }
func (p *Plane[T]) Size() Size     { return p.grid.Size() }
func (p *Plane[T]) XCapacity() int { return p.grid.XCapacity() }
func (p *Plane[T]) YCapacity() int { return p.grid.YCapacity() }
func (p *Plane[T]) Count() int     { return p.grid.Count() }
func (p *Plane[T]) XCount() int    { return p.grid.XCount() }
func (p *Plane[T]) YCount() int    { return p.grid.YCount() }

// Get returns the cell at logical (x, y).
func (p *Plane[T]) Get(x, y int) (T, error) {
	return p.grid.Get(x+p.xOrigin, y+p.yOrigin)
}

// Set stores v at logical (x, y).
func (p *Plane[T]) Set(x, y int, v T) error {
	return p.grid.Set(x+p.xOrigin, y+p.yOrigin, v)
}

// UncoordinatedGet reads physical (x, y), ignoring the origin.
func (p *Plane[T]) UncoordinatedGet(x, y int) (T, error) {
	return p.grid.Get(x, y)
}

// UncoordinatedSet writes physical (x, y), ignoring the origin.
func (p *Plane[T]) UncoordinatedSet(x, y int, v T) error {
	return p.grid.Set(x, y, v)
}

func (p *Plane[T]) AddX()          { p.grid.AddX() }
func (p *Plane[T]) AddY()          { p.grid.AddY() }
func (p *Plane[T]) ShrinkX() error { return p.grid.ShrinkX() }
func (p *Plane[T]) ShrinkY() error { return p.grid.ShrinkY() }

// InsertAtX inserts a zero column at logical x. Inserting at or before the
// origin moves the origin along with the cells it referred to.
func (p *Plane[T]) InsertAtX(x int) error {
	if err := p.grid.InsertAtX(x + p.xOrigin); err != nil {
		return err
	}
	if x <= p.xOrigin {
		p.xOrigin++
	}
	return nil
}

// InsertAtY inserts a zero row at logical y.
func (p *Plane[T]) InsertAtY(y int) error {
	if err := p.grid.InsertAtY(y + p.yOrigin); err != nil {
		return err
	}
	if y <= p.yOrigin {
		p.yOrigin++
	}
	return nil
}

// RemoveAtX removes the column at logical x. Only removals strictly before
// the origin move it; removing the origin column itself leaves the next
// column at logical 0.
func (p *Plane[T]) RemoveAtX(x int) error {
	if err := p.grid.RemoveAtX(x + p.xOrigin); err != nil {
		return err
	}
	if x < p.xOrigin {
		p.xOrigin--
	}
	return nil
}

// RemoveAtY removes the row at logical y.
func (p *Plane[T]) RemoveAtY(y int) error {
	if err := p.grid.RemoveAtY(y + p.yOrigin); err != nil {
		return err
	}
	if y < p.yOrigin {
		p.yOrigin--
	}
	return nil
}

// GetAtX returns the cells of logical column x.
func (p *Plane[T]) GetAtX(x int) (iter.Seq[T], error) { return p.grid.GetAtX(x + p.xOrigin) }

// GetAtY returns the cells of logical row y.
func (p *Plane[T]) GetAtY(y int) (iter.Seq[T], error) { return p.grid.GetAtY(y + p.yOrigin) }

func (p *Plane[T]) AllAtX(x int, pred func(T) bool) (bool, error) {
	return p.grid.AllAtX(x+p.xOrigin, pred)
}

func (p *Plane[T]) AllAtY(y int, pred func(T) bool) (bool, error) {
	return p.grid.AllAtY(y+p.yOrigin, pred)
}

func (p *Plane[T]) ContainsFunc(pred func(T) bool) bool { return p.grid.ContainsFunc(pred) }

func (p *Plane[T]) ContainsAtXFunc(x int, pred func(T) bool) (bool, error) {
	return p.grid.ContainsAtXFunc(x+p.xOrigin, pred)
}

func (p *Plane[T]) ContainsAtYFunc(y int, pred func(T) bool) (bool, error) {
	return p.grid.ContainsAtYFunc(y+p.yOrigin, pred)
}

// Columns yields physical columns in order, i.e. logical XStart..XEnd.
func (p *Plane[T]) Columns() iter.Seq[iter.Seq[T]] { return p.grid.Columns() }

// Place merges patch with its first cell at logical at. Placing further
// left or down than XStart/YStart extends the plane and moves the origin so
// existing logical coordinates are preserved.
func (p *Plane[T]) Place(patch [][]T, at Point) error {
	return p.PlaceWith(patch, at, PlaceOptions[T]{})
}

// PlaceWith is Place with options.
func (p *Plane[T]) PlaceWith(patch [][]T, at Point, opts PlaceOptions[T]) error {
	if err := p.grid.PlaceWith(patch, at.Add(p.OriginOffset()), opts); err != nil {
		return err
	}
	p.followPlace(at, opts)
	return nil
}

// PlaceGrid is Place reading from a grid.
func (p *Plane[T]) PlaceGrid(patch *Grid[T], at Point) error {
	return p.PlaceGridWith(patch, at, PlaceOptions[T]{})
}

// PlaceGridWith is PlaceGrid with options.
func (p *Plane[T]) PlaceGridWith(patch *Grid[T], at Point, opts PlaceOptions[T]) error {
	if err := p.grid.PlaceGridWith(patch, at.Add(p.OriginOffset()), opts); err != nil {
		return err
	}
	p.followPlace(at, opts)
	return nil
}

func (p *Plane[T]) followPlace(at Point, opts PlaceOptions[T]) {
	if opts.Clip {
		return
	}
	if at.X < -p.xOrigin {
		p.xOrigin = -at.X
	}
	if at.Y < -p.yOrigin {
		p.yOrigin = -at.Y
	}
}

// MoveOrigin shifts which physical cell is logical (0, 0) without moving
// data. Offsets may not become negative.
func (p *Plane[T]) MoveOrigin(dx, dy int) error {
	if p.xOrigin+dx < 0 {
		return badArgument("move origin", AxisX, p.xOrigin+dx, 0)
	}
	if p.yOrigin+dy < 0 {
		return badArgument("move origin", AxisY, p.yOrigin+dy, 0)
	}
	p.xOrigin += dx
	p.yOrigin += dy
	return nil
}

// Clear empties the plane and resets the origin.
func (p *Plane[T]) Clear() {
	p.grid.Clear()
	p.xOrigin, p.yOrigin = 0, 0
}

func (p *Plane[T]) Expand(xs, ys int) error          { return p.grid.Expand(xs, ys) }
func (p *Plane[T]) ExpandWith(xs, ys int, v T) error { return p.grid.ExpandWith(xs, ys, v) }
func (p *Plane[T]) Resize(xs, ys int) error          { return p.grid.Resize(xs, ys) }
func (p *Plane[T]) ResizeWith(xs, ys int, v T) error { return p.grid.ResizeWith(xs, ys, v) }
func (p *Plane[T]) Shrink(xs, ys int) error          { return p.grid.Shrink(xs, ys) }
func (p *Plane[T]) Fill(v T)                         { p.grid.Fill(v) }
func (p *Plane[T]) FillFunc(f func() T)              { p.grid.FillFunc(f) }
func (p *Plane[T]) CopyTo(dst [][]T, at Point) error { return p.grid.CopyTo(dst, at) }
func (p *Plane[T]) ToJagged() [][]T                  { return p.grid.ToJagged() }

// CopyToGrid copies physical storage into dst at at.
func (p *Plane[T]) CopyToGrid(dst *Grid[T], at Point) error {
	return p.grid.CopyToGrid(dst, at)
}

// CopyToMatrix copies physical storage into dst at at.
func (p *Plane[T]) CopyToMatrix(dst Matrix[T], at Point) error {
	return p.grid.CopyToMatrix(dst, at)
}
