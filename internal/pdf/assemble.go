// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf assembles the collated piece sequence into a single PDF,
// one piece per page, at a constant page size derived from the
// printable area.
package pdf

import (
	"fmt"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/ajenhl/tile-images/internal/units"
	"github.com/ajenhl/tile-images/pkg/types"
)

const jpegQuality = 95

// Write encodes every piece to JPEG in a transient directory and
// imports them, one image per page, into a PDF at dest. Pages are
// paper-size in points at the given DPI, constant across the document;
// each image is placed centered at its DPI-true physical size, so
// clamped edge tiles occupy only part of their page. The PDF is built
// in the transient directory and copied to dest only on success, so a
// failed run leaves no output file behind.
func Write(dest string, pieces []types.Piece, paper types.Dimensions, dpi int, w io.Writer) error {
	if len(pieces) == 0 {
		return fmt.Errorf("no pages to write")
	}

	widthPt := units.PxToPt(paper.Width, dpi)
	heightPt := units.PxToPt(paper.Height, dpi)
	fmt.Fprintf(w, "printable paper size (width x height): %d x %d px, %.1f x %.1f pt\n",
		paper.Width, paper.Height, widthPt, heightPt)

	tmpDir, err := os.MkdirTemp("", "tile-images-")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	paths := make([]string, len(pieces))
	for i, piece := range pieces {
		path := filepath.Join(tmpDir, fmt.Sprintf("%04d.jpg", i))
		if err := writeJPEG(path, piece); err != nil {
			return fmt.Errorf("encoding page %d: %w", i+1, err)
		}
		paths[i] = path
	}

	imp, err := api.Import(
		fmt.Sprintf("dimensions:%.2f %.2f, position:c, dpi:%d", widthPt, heightPt, dpi),
		pdftypes.POINTS)
	if err != nil {
		return fmt.Errorf("building import config: %w", err)
	}

	tmpOut := filepath.Join(tmpDir, "out.pdf")
	if err := api.ImportImagesFile(paths, tmpOut, imp, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("assembling PDF: %w", err)
	}

	data, err := os.ReadFile(tmpOut)
	if err != nil {
		return fmt.Errorf("reading assembled PDF: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}

func writeJPEG(path string, piece types.Piece) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, piece.Image, &jpeg.Options{Quality: jpegQuality}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
