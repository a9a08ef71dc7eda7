package grid

// PlaceOptions tune how a patch is merged.
type PlaceOptions[T any] struct {
	// Clip keeps the current extents: patch cells that land outside them,
	// including at negative coordinates, are dropped.
	Clip bool
	// Overwrite decides per cell whether incoming replaces existing. Cells
	// created by the placement hold the zero value when asked. Nil always
	// overwrites.
	Overwrite func(existing, incoming T) bool
}

type source[T any] interface {
	dims() Size
	at(x, y int) T
}

type jaggedSource[T any] [][]T

func (s jaggedSource[T]) dims() Size {
	if len(s) == 0 {
		return Size{}
	}
	return Size{X: len(s), Y: len(s[0])}
}

func (s jaggedSource[T]) at(x, y int) T { return s[x][y] }

type gridSource[T any] struct{ g *Grid[T] }

func (s gridSource[T]) dims() Size    { return s.g.Size() }
func (s gridSource[T]) at(x, y int) T { return s.g.items[x][y] }

// Place merges patch, addressed patch[x][y], with its first cell at at.
// The grid grows as needed; a negative offset reallocates it to the
// bounding box of old and new content with existing cells shifted by the
// overhang.
func (g *Grid[T]) Place(patch [][]T, at Point) error {
	return g.PlaceWith(patch, at, PlaceOptions[T]{})
}

// PlaceWith is Place with options. A ragged patch is rejected before any
// change is made.
func (g *Grid[T]) PlaceWith(patch [][]T, at Point, opts PlaceOptions[T]) error {
	if _, err := rectSize("place", patch); err != nil {
		return err
	}
	g.place(jaggedSource[T](patch), at, opts)
	return nil
}

// PlaceGrid is Place reading from another grid's logical extent.
func (g *Grid[T]) PlaceGrid(patch *Grid[T], at Point) error {
	return g.PlaceGridWith(patch, at, PlaceOptions[T]{})
}

// PlaceGridWith is PlaceGrid with options.
func (g *Grid[T]) PlaceGridWith(patch *Grid[T], at Point, opts PlaceOptions[T]) error {
	if patch == nil {
		return badArgument("place", AxisNone, 0, 0)
	}
	if patch == g {
		patch = g.Clone()
	}
	g.place(gridSource[T]{g: patch}, at, opts)
	return nil
}

func (g *Grid[T]) place(src source[T], at Point, opts PlaceOptions[T]) {
	n := src.dims()
	far := at.AddSize(n)

	if !opts.Clip && (at.X < 0 || at.Y < 0) {
		g.placeBelow(src, n, at, far, opts.Overwrite)
		return
	}

	if !opts.Clip && (far.X > g.xSize || far.Y > g.ySize) {
		g.growTo(max(g.xSize, far.X), max(g.ySize, far.Y), nil)
	}

	for x := 0; x < n.X; x++ {
		tx := at.X + x
		if tx < 0 || tx >= g.xSize {
			continue
		}
		col := g.items[tx]
		for y := 0; y < n.Y; y++ {
			ty := at.Y + y
			if ty < 0 || ty >= g.ySize {
				continue
			}
			merge(col, ty, src.at(x, y), opts.Overwrite)
		}
	}
}

// placeBelow rebuilds storage at exactly the bounding box of the current
// content and a patch reaching below zero on at least one axis.
func (g *Grid[T]) placeBelow(src source[T], n Size, at, far Point, overwrite func(T, T) bool) {
	shift := Point{X: max(0, -at.X), Y: max(0, -at.Y)}
	box := Size{
		X: max(g.xSize, far.X) + shift.X,
		Y: max(g.ySize, far.Y) + shift.Y,
	}

	items := make([][]T, box.X)
	for x := range items {
		items[x] = make([]T, box.Y)
	}
	for x := 0; x < g.xSize; x++ {
		copy(items[x+shift.X][shift.Y:], g.items[x][:g.ySize])
	}

	dst := Point{X: max(0, at.X), Y: max(0, at.Y)}
	for x := 0; x < n.X; x++ {
		col := items[dst.X+x]
		for y := 0; y < n.Y; y++ {
			merge(col, dst.Y+y, src.at(x, y), overwrite)
		}
	}

	g.items = items
	g.xSize, g.ySize = box.X, box.Y
	g.xCap, g.yCap = box.X, box.Y
}

func merge[T any](col []T, y int, v T, overwrite func(T, T) bool) {
	if overwrite == nil || overwrite(col[y], v) {
		col[y] = v
	}
}
