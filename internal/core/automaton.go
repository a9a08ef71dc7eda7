package core

import "planar/pkg/grid"

// Rule computes the next value of cells[x][y] from the current generation.
type Rule func(cells [][]uint8, x, y int) uint8

func isZero(v uint8) bool { return v == 0 }

// Pad grows p by one empty column or row on every side whose outermost line
// holds a live cell, so a rule reaching one cell outward sees the whole
// neighbourhood. No axis grows past limit.
func Pad(p *grid.Plane[uint8], limit grid.Size) error {
	if p.XSize() == 0 || p.YSize() == 0 {
		return nil
	}
	if p.XSize() < limit.X {
		ok, err := p.AllAtX(p.XStart(), isZero)
		if err != nil {
			return err
		}
		if !ok {
			if err := p.InsertAtX(p.XStart()); err != nil {
				return err
			}
		}
	}
	if p.XSize() < limit.X {
		ok, err := p.AllAtX(p.XEnd(), isZero)
		if err != nil {
			return err
		}
		if !ok {
			p.AddX()
		}
	}
	if p.YSize() < limit.Y {
		ok, err := p.AllAtY(p.YStart(), isZero)
		if err != nil {
			return err
		}
		if !ok {
			if err := p.InsertAtY(p.YStart()); err != nil {
				return err
			}
		}
	}
	if p.YSize() < limit.Y {
		ok, err := p.AllAtY(p.YEnd(), isZero)
		if err != nil {
			return err
		}
		if !ok {
			p.AddY()
		}
	}
	return nil
}

// Trim drops empty edge columns and rows while more than margin of them
// remain on a side. The low edges are only trimmed below the origin, so
// logical coordinates never change.
func Trim(p *grid.Plane[uint8], margin int) error {
	for p.XSize() > margin+1 {
		empty, err := emptyColumns(p, p.XEnd()-margin, margin+1)
		if err != nil {
			return err
		}
		if !empty {
			break
		}
		if err := p.ShrinkX(); err != nil {
			return err
		}
	}
	for p.XStart() < 0 && p.XSize() > margin+1 {
		empty, err := emptyColumns(p, p.XStart(), margin+1)
		if err != nil {
			return err
		}
		if !empty {
			break
		}
		if err := p.RemoveAtX(p.XStart()); err != nil {
			return err
		}
	}
	for p.YSize() > margin+1 {
		empty, err := emptyRows(p, p.YEnd()-margin, margin+1)
		if err != nil {
			return err
		}
		if !empty {
			break
		}
		if err := p.ShrinkY(); err != nil {
			return err
		}
	}
	for p.YStart() < 0 && p.YSize() > margin+1 {
		empty, err := emptyRows(p, p.YStart(), margin+1)
		if err != nil {
			return err
		}
		if !empty {
			break
		}
		if err := p.RemoveAtY(p.YStart()); err != nil {
			return err
		}
	}
	return nil
}

func emptyColumns(p *grid.Plane[uint8], from, n int) (bool, error) {
	for x := from; x < from+n; x++ {
		ok, err := p.AllAtX(x, isZero)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func emptyRows(p *grid.Plane[uint8], from, n int) (bool, error) {
	for y := from; y < from+n; y++ {
		ok, err := p.AllAtY(y, isZero)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// Advance pads p and replaces every cell with rule applied to a snapshot of
// the current generation.
func Advance(p *grid.Plane[uint8], limit grid.Size, rule Rule) error {
	if err := Pad(p, limit); err != nil {
		return err
	}
	cur := p.ToJagged()
	next := make([][]uint8, len(cur))
	for x := range cur {
		next[x] = make([]uint8, len(cur[x]))
		for y := range next[x] {
			next[x][y] = rule(cur, x, y)
		}
	}
	return p.Place(next, grid.Pt(p.XStart(), p.YStart()))
}

// Moore counts the eight neighbours of cells[x][y] equal to state. Cells
// outside the slice are empty.
func Moore(cells [][]uint8, x, y int, state uint8) int {
	n := 0
	for dx := -1; dx <= 1; dx++ {
		nx := x + dx
		if nx < 0 || nx >= len(cells) {
			continue
		}
		col := cells[nx]
		for dy := -1; dy <= 1; dy++ {
			ny := y + dy
			if (dx == 0 && dy == 0) || ny < 0 || ny >= len(col) {
				continue
			}
			if col[ny] == state {
				n++
			}
		}
	}
	return n
}

// Population counts non-zero cells.
func Population(p *grid.Plane[uint8]) int {
	n := 0
	for col := range p.Columns() {
		for v := range col {
			if v != 0 {
				n++
			}
		}
	}
	return n
}
