// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajenhl/tile-images/pkg/types"
)

func testPiece(w, h int, c color.NRGBA, side types.Side) types.Piece {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return types.Piece{Image: img, Side: side, Box: types.Box{X1: w, Y1: h}}
}

func TestWrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.pdf")
	pieces := []types.Piece{
		testPiece(120, 160, color.NRGBA{R: 200, A: 255}, types.SideFront),
		testPiece(120, 160, color.NRGBA{B: 200, A: 255}, types.SideBack),
	}
	paper := types.Dimensions{Width: 120, Height: 160}

	err := Write(dest, pieces, paper, 300, io.Discard)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestWriteNoPieces(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.pdf")

	err := Write(dest, nil, types.Dimensions{Width: 100, Height: 100}, 300, io.Discard)
	require.Error(t, err)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no output file may exist after a failed run")
}
