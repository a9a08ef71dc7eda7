// Package gridfmt renders grid containers as text.
package gridfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"planar/pkg/grid"
)

// Table is anything that can be read cell by cell over its bounds. Both
// *grid.Grid and *grid.Plane qualify.
type Table[T any] interface {
	grid.Bounded
	Get(x, y int) (T, error)
}

// WriteTable writes t as a table with logical x indices across the top and
// y indices down the left edge, both ends inclusive. Cells are printed with
// fmt.Sprint.
func WriteTable[T any](w io.Writer, t Table[T]) error {
	return WriteTableFunc(w, t, func(v T) string { return fmt.Sprint(v) })
}

// WriteTableFunc is WriteTable with a custom cell formatter. Columns are
// right-aligned to the display width of their widest entry.
func WriteTableFunc[T any](w io.Writer, t Table[T], format func(T) string) error {
	xs, ys := t.XStart(), t.YStart()
	nx, ny := t.XEnd()-xs+1, t.YEnd()-ys+1
	if nx <= 0 || ny <= 0 {
		return nil
	}

	cells := make([][]string, nx)
	widths := make([]int, nx)
	for i := range cells {
		cells[i] = make([]string, ny)
		widths[i] = runewidth.StringWidth(strconv.Itoa(xs + i))
		for j := range cells[i] {
			v, err := t.Get(xs+i, ys+j)
			if err != nil {
				return errors.Wrapf(err, "table cell (%d, %d)", xs+i, ys+j)
			}
			s := format(v)
			cells[i][j] = s
			widths[i] = max(widths[i], runewidth.StringWidth(s))
		}
	}
	yw := max(runewidth.StringWidth(strconv.Itoa(ys)), runewidth.StringWidth(strconv.Itoa(ys+ny-1)))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", yw+1))
	for i := range cells {
		b.WriteByte(' ')
		b.WriteString(runewidth.FillLeft(strconv.Itoa(xs+i), widths[i]))
	}
	b.WriteByte('\n')
	for j := 0; j < ny; j++ {
		b.WriteByte(' ')
		b.WriteString(runewidth.FillLeft(strconv.Itoa(ys+j), yw))
		for i := range cells {
			b.WriteByte(' ')
			b.WriteString(runewidth.FillLeft(cells[i][j], widths[i]))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "write table")
}
