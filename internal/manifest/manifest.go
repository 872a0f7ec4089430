// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest writes a YAML description of a run's tile geometry:
// the grid, and for every PDF page its sheet, side, grid cell, and
// clamped pixel box. Operators use it to lay out cut guides, including
// the undersized last row and column.
package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/ajenhl/tile-images/internal/units"
	"github.com/ajenhl/tile-images/pkg/types"
)

// Area holds one rectangle in both pixels and points.
type Area struct {
	WidthPx  int     `yaml:"width_px"`
	HeightPx int     `yaml:"height_px"`
	WidthPt  float64 `yaml:"width_pt"`
	HeightPt float64 `yaml:"height_pt"`
}

// Grid holds the tile counts per axis.
type Grid struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// Page describes one PDF page and the source region it carries.
type Page struct {
	Page   int    `yaml:"page"`
	Sheet  int    `yaml:"sheet"`
	Side   string `yaml:"side"`
	Column int    `yaml:"column"`
	Row    int    `yaml:"row"`

	// Box is the crop rectangle in source-image pixels.
	Box struct {
		X0 int `yaml:"x0"`
		Y0 int `yaml:"y0"`
		X1 int `yaml:"x1"`
		Y1 int `yaml:"y1"`
	} `yaml:"box"`

	Size Area `yaml:"size"`
}

// Document is the full manifest for one run.
type Document struct {
	DPI       int    `yaml:"dpi"`
	Printable Area   `yaml:"printable"`
	Image     Area   `yaml:"image"`
	Grid      Grid   `yaml:"grid"`
	Pages     []Page `yaml:"pages"`
}

func area(d types.Dimensions, dpi int) Area {
	return Area{
		WidthPx:  d.Width,
		HeightPx: d.Height,
		WidthPt:  units.PxToPt(d.Width, dpi),
		HeightPt: units.PxToPt(d.Height, dpi),
	}
}

// Build assembles the manifest document for a collated run.
func Build(pieces []types.Piece, imageSize, paper types.Dimensions, grid types.TileGrid, dpi int) Document {
	doc := Document{
		DPI:       dpi,
		Printable: area(paper, dpi),
		Image:     area(imageSize, dpi),
		Grid:      Grid{Columns: grid.Columns, Rows: grid.Rows},
		Pages:     make([]Page, len(pieces)),
	}
	for i, piece := range pieces {
		p := Page{
			Page:   i + 1,
			Sheet:  piece.Sheet,
			Side:   string(piece.Side),
			Column: piece.Column,
			Row:    piece.Row,
			Size:   area(piece.Box.Dimensions(), dpi),
		}
		p.Box.X0 = piece.Box.X0
		p.Box.Y0 = piece.Box.Y0
		p.Box.X1 = piece.Box.X1
		p.Box.Y1 = piece.Box.Y1
		doc.Pages[i] = p
	}
	return doc
}

// WriteFile marshals the document to YAML at path.
func WriteFile(path string, doc Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
