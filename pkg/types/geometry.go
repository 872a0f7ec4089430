// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"image"
)

// Dimensions is a width/height pair in pixels. It describes both page
// images and the printable paper area.
type Dimensions struct {
	Width  int
	Height int
}

// Positive reports whether both axes are greater than zero.
func (d Dimensions) Positive() bool {
	return d.Width > 0 && d.Height > 0
}

// Fits reports whether d fits within paper on both axes.
func (d Dimensions) Fits(paper Dimensions) bool {
	return d.Width <= paper.Width && d.Height <= paper.Height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// TileGrid is the number of tiles an image must be cut into along each
// axis. Both counts are at least 1; (1,1) means no splitting.
type TileGrid struct {
	Columns int
	Rows    int
}

// Single reports whether the grid requires no splitting.
func (g TileGrid) Single() bool {
	return g.Columns == 1 && g.Rows == 1
}

// Tiles returns the total number of tiles per image.
func (g TileGrid) Tiles() int {
	return g.Columns * g.Rows
}

func (g TileGrid) String() string {
	return fmt.Sprintf("%dx%d", g.Columns, g.Rows)
}

// Box is a half-open crop rectangle in image pixel coordinates:
// [X0,X1) horizontally, [Y0,Y1) vertically.
type Box struct {
	X0 int
	Y0 int
	X1 int
	Y1 int
}

// Dimensions returns the box size.
func (b Box) Dimensions() Dimensions {
	return Dimensions{Width: b.X1 - b.X0, Height: b.Y1 - b.Y0}
}

// Rect returns the box as an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X0, b.Y0, b.X1, b.Y1)
}

// Side identifies which face of a physical sheet an image belongs to.
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// Piece is one output PDF page: a raster plus the provenance needed to
// describe it in the cut-guide manifest. For an unsplit page the Box
// covers the whole source image and the grid cell is (0,0).
type Piece struct {
	// Image is the page raster. The piece owns its pixels; the source
	// image may be discarded once its pieces exist.
	Image image.Image

	// Sheet is the index of the physical sheet (input pair) the piece
	// derives from.
	Sheet int

	// Side is the face of the sheet.
	Side Side

	// Column and Row locate the piece in the tile grid.
	Column int
	Row    int

	// Box is the crop rectangle applied to the source image.
	Box Box
}
