package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planar/pkg/grid"
	"planar/pkg/grid/gridfmt"
)

func TestParseBlocks(t *testing.T) {
	in := "a b\nc\n\n@ -2 -1\nx y z\n@ 1 1\ne\n"
	blocks, err := parseBlocks(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Equal(t, grid.Point{}, blocks[0].at)
	assert.Equal(t, [][]string{{"a", "c"}, {"b", ""}}, blocks[0].cells)
	assert.Equal(t, grid.Pt(-2, -1), blocks[1].at)
	assert.Equal(t, [][]string{{"x"}, {"y"}, {"z"}}, blocks[1].cells)
	assert.Equal(t, grid.Pt(1, 1), blocks[2].at)
}

func TestParseBlocksRejectsBadOffsets(t *testing.T) {
	for _, in := range []string{"@ 1\n", "@ a 2\n"} {
		_, err := parseBlocks(strings.NewReader(in))
		require.Error(t, err, in)
	}
}

func TestBlocksRenderAsTable(t *testing.T) {
	blocks, err := parseBlocks(strings.NewReader("1\n@ -1 -1\n2\n"))
	require.NoError(t, err)

	p := grid.NewPlane[string]()
	for _, b := range blocks {
		require.NoError(t, p.Place(b.cells, b.at))
	}
	var buf bytes.Buffer
	require.NoError(t, gridfmt.WriteTable[string](&buf, p))
	assert.Equal(t, "    -1 0\n -1  2  \n  0    1\n", buf.String())
}
