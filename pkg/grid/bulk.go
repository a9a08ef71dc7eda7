package grid

// Expand grows the grid to xs by ys. Neither extent may be smaller than the
// current one. New cells are zero.
func (g *Grid[T]) Expand(xs, ys int) error {
	return g.expand("expand", xs, ys, nil)
}

// ExpandWith is Expand with new cells set to v.
func (g *Grid[T]) ExpandWith(xs, ys int, v T) error {
	return g.expand("expand", xs, ys, func() T { return v })
}

func (g *Grid[T]) expand(op string, xs, ys int, fill func() T) error {
	if xs < g.xSize {
		return badArgument(op, AxisX, xs, g.xSize)
	}
	if ys < g.ySize {
		return badArgument(op, AxisY, ys, g.ySize)
	}
	g.growTo(xs, ys, fill)
	return nil
}

// growTo requires xs >= xSize and ys >= ySize. A target above capacity sets
// the capacity to target+1.
func (g *Grid[T]) growTo(xs, ys int, fill func() T) {
	if xs == g.xSize && ys == g.ySize {
		return
	}
	if xs > g.xCap {
		g.xCap = xs + 1
		g.reallocColumns()
	}
	if ys > g.yCap {
		g.yCap = ys + 1
		g.reallocRows()
	}
	for x := g.xSize; x < xs; x++ {
		g.items[x] = make([]T, g.yCap)
	}
	if fill != nil {
		for x := 0; x < xs; x++ {
			from := g.ySize
			if x >= g.xSize {
				from = 0
			}
			col := g.items[x]
			for y := from; y < ys; y++ {
				col[y] = fill()
			}
		}
	}
	g.xSize, g.ySize = xs, ys
}

// shrinkTo requires xs <= xSize and ys <= ySize. Dropped slots are zeroed.
func (g *Grid[T]) shrinkTo(xs, ys int) {
	for x := xs; x < g.xSize; x++ {
		g.items[x] = nil
	}
	g.xSize = xs
	if ys < g.ySize {
		for x := 0; x < g.xSize; x++ {
			clear(g.items[x][ys:g.ySize])
		}
	}
	g.ySize = ys
}

// Resize sets exact extents, discarding cells that fall outside and zeroing
// cells that are added.
func (g *Grid[T]) Resize(xs, ys int) error {
	return g.resize("resize", xs, ys, nil)
}

// ResizeWith is Resize with added cells set to v.
func (g *Grid[T]) ResizeWith(xs, ys int, v T) error {
	return g.resize("resize", xs, ys, func() T { return v })
}

func (g *Grid[T]) resize(op string, xs, ys int, fill func() T) error {
	if xs < 0 {
		return badArgument(op, AxisX, xs, 0)
	}
	if ys < 0 {
		return badArgument(op, AxisY, ys, 0)
	}
	g.shrinkTo(min(xs, g.xSize), min(ys, g.ySize))
	g.growTo(xs, ys, fill)
	return nil
}

// Shrink reduces the grid to xs by ys. Neither may exceed the current extent.
func (g *Grid[T]) Shrink(xs, ys int) error {
	if xs < 0 || xs > g.xSize {
		return badArgument("shrink", AxisX, xs, g.xSize)
	}
	if ys < 0 || ys > g.ySize {
		return badArgument("shrink", AxisY, ys, g.ySize)
	}
	g.shrinkTo(xs, ys)
	return nil
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for x := 0; x < g.xSize; x++ {
		col := g.items[x][:g.ySize]
		for y := range col {
			col[y] = v
		}
	}
}

// FillFunc sets every cell to a fresh value from f, column by column.
func (g *Grid[T]) FillFunc(f func() T) {
	for x := 0; x < g.xSize; x++ {
		col := g.items[x][:g.ySize]
		for y := range col {
			col[y] = f()
		}
	}
}

// CopyTo writes every cell into dst[at.X+x][at.Y+y]. dst must be large
// enough on both axes; it is left untouched otherwise.
func (g *Grid[T]) CopyTo(dst [][]T, at Point) error {
	if err := g.checkDest("copy", at, len(dst), -1); err != nil {
		return err
	}
	for x := 0; x < g.xSize; x++ {
		if n := len(dst[at.X+x]); n < at.Y+g.ySize {
			return badArgument("copy", AxisY, n, at.Y+g.ySize)
		}
	}
	for x := 0; x < g.xSize; x++ {
		copy(dst[at.X+x][at.Y:], g.items[x][:g.ySize])
	}
	return nil
}

// CopyToMatrix writes every cell into dst at (at.X+x, at.Y+y).
func (g *Grid[T]) CopyToMatrix(dst Matrix[T], at Point) error {
	r, c := dst.Dims()
	if err := g.checkDest("copy", at, r, c); err != nil {
		return err
	}
	for x := 0; x < g.xSize; x++ {
		for y := 0; y < g.ySize; y++ {
			dst.Set(at.X+x, at.Y+y, g.items[x][y])
		}
	}
	return nil
}

// CopyToGrid writes every cell into the logical extent of dst.
func (g *Grid[T]) CopyToGrid(dst *Grid[T], at Point) error {
	if err := g.checkDest("copy", at, dst.xSize, dst.ySize); err != nil {
		return err
	}
	for x := 0; x < g.xSize; x++ {
		copy(dst.items[at.X+x][at.Y:], g.items[x][:g.ySize])
	}
	return nil
}

// checkDest validates a destination of xs by ys cells; ys < 0 skips the Y check.
func (g *Grid[T]) checkDest(op string, at Point, xs, ys int) error {
	if at.X < 0 {
		return badArgument(op, AxisX, at.X, 0)
	}
	if at.Y < 0 {
		return badArgument(op, AxisY, at.Y, 0)
	}
	if xs < at.X+g.xSize {
		return badArgument(op, AxisX, xs, at.X+g.xSize)
	}
	if ys >= 0 && ys < at.Y+g.ySize {
		return badArgument(op, AxisY, ys, at.Y+g.ySize)
	}
	return nil
}

// ToJagged returns a copy of the cells addressed [x][y].
func (g *Grid[T]) ToJagged() [][]T {
	out := make([][]T, g.xSize)
	for x := range out {
		out[x] = make([]T, g.ySize)
		copy(out[x], g.items[x])
	}
	return out
}

// Clone returns an independent copy with the same sizes and capacities.
func (g *Grid[T]) Clone() *Grid[T] {
	c := newGrid[T](g.xCap, g.yCap)
	for x := 0; x < g.xSize; x++ {
		c.items[x] = make([]T, g.yCap)
		copy(c.items[x], g.items[x])
	}
	c.xSize, c.ySize = g.xSize, g.ySize
	return c
}
