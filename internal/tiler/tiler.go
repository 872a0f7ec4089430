// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tiler decomposes oversized page images into print-size
// tiles. Tiles are emitted column-major with the front and back piece
// of each cell adjacent, which is what makes the assembled PDF pair up
// correctly when printed double-sided, cut, and stacked.
package tiler

import (
	"fmt"
	"image"
	"io"

	"github.com/ajenhl/tile-images/internal/raster"
	"github.com/ajenhl/tile-images/internal/units"
	"github.com/ajenhl/tile-images/pkg/types"
)

// Plan returns the number of tiles needed along each axis to fit
// imageSize onto paper. An image that fits both axes needs no
// splitting; otherwise each axis gets its own ceiling division, so an
// axis that fits still yields exactly 1. Paper dimensions must be
// positive; the CLI validates that before any planning happens.
func Plan(imageSize, paper types.Dimensions) types.TileGrid {
	if imageSize.Fits(paper) {
		return types.TileGrid{Columns: 1, Rows: 1}
	}
	return types.TileGrid{
		Columns: ceilDiv(imageSize.Width, paper.Width),
		Rows:    ceilDiv(imageSize.Height, paper.Height),
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Split cuts a front/back image pair into ordered tile pieces. The
// traversal is column-major: all rows of column 0 before any row of
// column 1. Each cell emits the cropped front piece immediately
// followed by the cropped back piece, both from the identical box.
// Edge boxes are clamped to the image, so last-column and last-row
// pieces may be smaller than the nominal tile size.
func Split(front, back image.Image, grid types.TileGrid, paper types.Dimensions, sheet, dpi int, w io.Writer) []types.Piece {
	size := raster.Size(front)
	pieces := make([]types.Piece, 0, grid.Tiles()*2)
	for i := 0; i < grid.Columns; i++ {
		for j := 0; j < grid.Rows; j++ {
			box := types.Box{
				X0: i * paper.Width,
				Y0: j * paper.Height,
				X1: min((i+1)*paper.Width, size.Width),
				Y1: min((j+1)*paper.Height, size.Height),
			}
			pieces = append(pieces,
				types.Piece{Image: raster.Crop(front, box), Sheet: sheet, Side: types.SideFront, Column: i, Row: j, Box: box},
				types.Piece{Image: raster.Crop(back, box), Sheet: sheet, Side: types.SideBack, Column: i, Row: j, Box: box},
			)
			d := box.Dimensions()
			fmt.Fprintf(w, "sheet %d tile %d,%d: %d x %d px, %.1f x %.1f pt\n",
				sheet, i, j, d.Width, d.Height,
				units.PxToPt(d.Width, dpi), units.PxToPt(d.Height, dpi))
		}
	}
	return pieces
}

// Collate runs the whole batch. Images are consumed in consecutive
// front/back pairs; the tile grid is planned once from the common
// image size and reused for every pair. With a (1,1) grid each pair
// passes through unchanged; otherwise each pair is replaced by its
// split pieces, concatenated in pair order. The returned sequence maps
// position directly to physical PDF page order.
func Collate(images []image.Image, imageSize, paper types.Dimensions, dpi int, w io.Writer) ([]types.Piece, types.TileGrid) {
	grid := Plan(imageSize, paper)
	pieces := make([]types.Piece, 0, len(images)*grid.Tiles())
	full := types.Box{X1: imageSize.Width, Y1: imageSize.Height}
	for k := 0; 2*k+1 < len(images); k++ {
		front, back := images[2*k], images[2*k+1]
		if grid.Single() {
			pieces = append(pieces,
				types.Piece{Image: front, Sheet: k, Side: types.SideFront, Box: full},
				types.Piece{Image: back, Sheet: k, Side: types.SideBack, Box: full},
			)
			continue
		}
		pieces = append(pieces, Split(front, back, grid, paper, k, dpi, w)...)
	}
	return pieces, grid
}
