// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package units converts operator print geometry between millimetres,
// pixels, and PDF points.
package units

import (
	"errors"
	"math"

	"github.com/ajenhl/tile-images/pkg/types"
)

// mmPerInch: 25.4 mm to an inch.
const mmPerInch = 25.4

// ptPerInch: PDF user space runs at 72 points to an inch.
const ptPerInch = 72

// ErrDegenerateGeometry indicates a printable area that is empty on at
// least one axis after unit conversion.
var ErrDegenerateGeometry = errors.New("printable area must be positive in both dimensions")

// MMToPx converts a physical length in millimetres to a pixel count at
// the given resolution, rounding down.
func MMToPx(mm, dpi int) int {
	return int(math.Floor(float64(mm) / mmPerInch * float64(dpi)))
}

// PxToPt converts a pixel count to PDF points at the given resolution.
func PxToPt(px, dpi int) float64 {
	return float64(px) * ptPerInch / float64(dpi)
}

// PrintableArea converts the configured paper size to pixels.
func PrintableArea(cfg types.RenderConfig) types.Dimensions {
	return types.Dimensions{
		Width:  MMToPx(cfg.WidthMM, cfg.DPI),
		Height: MMToPx(cfg.HeightMM, cfg.DPI),
	}
}
