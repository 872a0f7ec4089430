// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/ajenhl/tile-images/pkg/types"
)

func scenarioPieces() ([]types.Piece, types.Dimensions, types.Dimensions, types.TileGrid) {
	// 1200x1000 image on 1000x1000 paper: grid (2,1), column 1 clamped
	// to 200 px wide.
	imageSize := types.Dimensions{Width: 1200, Height: 1000}
	paper := types.Dimensions{Width: 1000, Height: 1000}
	grid := types.TileGrid{Columns: 2, Rows: 1}
	col0 := types.Box{X0: 0, Y0: 0, X1: 1000, Y1: 1000}
	col1 := types.Box{X0: 1000, Y0: 0, X1: 1200, Y1: 1000}
	pieces := []types.Piece{
		{Sheet: 0, Side: types.SideFront, Column: 0, Row: 0, Box: col0},
		{Sheet: 0, Side: types.SideBack, Column: 0, Row: 0, Box: col0},
		{Sheet: 0, Side: types.SideFront, Column: 1, Row: 0, Box: col1},
		{Sheet: 0, Side: types.SideBack, Column: 1, Row: 0, Box: col1},
	}
	return pieces, imageSize, paper, grid
}

func TestBuild(t *testing.T) {
	pieces, imageSize, paper, grid := scenarioPieces()
	doc := Build(pieces, imageSize, paper, grid, 300)

	assert.Equal(t, 300, doc.DPI)
	assert.Equal(t, Grid{Columns: 2, Rows: 1}, doc.Grid)
	assert.Equal(t, 1200, doc.Image.WidthPx)
	assert.Equal(t, 240.0, doc.Printable.WidthPt)
	require.Len(t, doc.Pages, 4)

	// Pages number from 1 in piece order.
	for i, page := range doc.Pages {
		assert.Equal(t, i+1, page.Page)
	}
	assert.Equal(t, "front", doc.Pages[2].Side)
	assert.Equal(t, 1, doc.Pages[2].Column)
	assert.Equal(t, 1000, doc.Pages[2].Box.X0)
	assert.Equal(t, 200, doc.Pages[2].Size.WidthPx)
	assert.Equal(t, 48.0, doc.Pages[2].Size.WidthPt)
}

func TestWriteFileRoundTrip(t *testing.T) {
	pieces, imageSize, paper, grid := scenarioPieces()
	doc := Build(pieces, imageSize, paper, grid, 300)

	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, WriteFile(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Document
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, doc, got)
}
