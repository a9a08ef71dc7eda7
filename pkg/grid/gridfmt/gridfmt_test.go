package gridfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planar/pkg/grid"
)

func TestWriteTableIncludesBothEnds(t *testing.T) {
	p, err := grid.PlaneFromJagged([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.NoError(t, p.MoveOrigin(1, 0))

	var buf bytes.Buffer
	require.NoError(t, WriteTable[int](&buf, p))
	want := "" +
		"   -1 0\n" +
		" 0  1 3\n" +
		" 1  2 4\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTableWideCells(t *testing.T) {
	g, err := grid.FromJagged([][]string{{"世界", "a"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTable[string](&buf, g))
	want := strings.Repeat(" ", 6) + "0\n" +
		" 0 世界\n" +
		" 1    a\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTableFuncFormatsCells(t *testing.T) {
	g, err := grid.FromJagged([][]bool{{true}, {false}})
	require.NoError(t, err)

	var buf bytes.Buffer
	mark := func(v bool) string {
		if v {
			return "#"
		}
		return "."
	}
	require.NoError(t, WriteTableFunc[bool](&buf, g, mark))
	assert.Equal(t, "   0 1\n 0 # .\n", buf.String())
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable[int](&buf, grid.NewPlane[int]()))
	assert.Empty(t, buf.String())
}

type brokenTable struct{}

func (brokenTable) XStart() int { return 0 }
func (brokenTable) XEnd() int   { return 0 }
func (brokenTable) YStart() int { return 0 }
func (brokenTable) YEnd() int   { return 0 }
func (brokenTable) Get(x, y int) (int, error) {
	return 0, grid.ErrOutOfRange
}

func TestWriteTablePropagatesReadErrors(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable[int](&buf, brokenTable{})
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	assert.Empty(t, buf.String())
}

func TestString(t *testing.T) {
	g, err := grid.FromJagged([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, "[\n   [ 1, 2 ],\n   [ 3, 4 ]\n]", String[int](g))
	assert.Equal(t, "[]", String[int](grid.New[int]()))

	var buf bytes.Buffer
	require.NoError(t, Write[int](&buf, g))
	assert.Equal(t, String[int](g)+"\n", buf.String())
}
