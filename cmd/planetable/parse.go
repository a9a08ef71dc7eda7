package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"planar/pkg/grid"
)

// block is one rectangle of input cells and where it goes.
type block struct {
	at    grid.Point
	cells [][]string // [x][y]
}

// parseBlocks reads whitespace separated rows. A line "@ x y" starts a new
// block placed at (x, y); blank lines are ignored. Short rows are padded
// with empty cells.
func parseBlocks(r io.Reader) ([]block, error) {
	var (
		blocks []block
		at     grid.Point
		rows   [][]string
	)
	flush := func() {
		if len(rows) > 0 {
			blocks = append(blocks, block{at: at, cells: transpose(rows)})
		}
		rows = nil
	}

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		switch {
		case len(fields) == 0:
			continue
		case fields[0] == "@":
			if len(fields) != 3 {
				return nil, errors.Errorf("line %d: want \"@ x y\"", line)
			}
			x, errX := strconv.Atoi(fields[1])
			y, errY := strconv.Atoi(fields[2])
			if errX != nil || errY != nil {
				return nil, errors.Errorf("line %d: bad offset %q", line, sc.Text())
			}
			flush()
			at = grid.Pt(x, y)
		default:
			rows = append(rows, fields)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	flush()
	return blocks, nil
}

// transpose turns text rows into columns, padding short rows.
func transpose(rows [][]string) [][]string {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	cols := make([][]string, width)
	for x := range cols {
		cols[x] = make([]string, len(rows))
		for y, r := range rows {
			if x < len(r) {
				cols[x][y] = r[x]
			}
		}
	}
	return cols
}
