// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package raster loads page images and brings them into the common
// shape the tiling pipeline expects: decoded, portrait-oriented, and
// uniformly sized. It also provides the pixel-copying crop used by the
// tile splitter.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	// Input format support beyond the stdlib set; scanned pages are
	// commonly TIFF.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/ajenhl/tile-images/internal/units"
	"github.com/ajenhl/tile-images/pkg/types"
)

var (
	// ErrUnevenImageCount indicates an odd number of input images;
	// images pair up as front/back of a sheet.
	ErrUnevenImageCount = errors.New("an even number of images is required")

	// ErrSizeMismatch indicates an image whose post-normalization
	// dimensions differ from the first image's.
	ErrSizeMismatch = errors.New("the supplied images have different dimensions")
)

// Load decodes the image file at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Size returns the image dimensions in pixels.
func Size(img image.Image) types.Dimensions {
	b := img.Bounds()
	return types.Dimensions{Width: b.Dx(), Height: b.Dy()}
}

// Normalize brings an image into portrait orientation. Landscape
// images are rotated 90 degrees counter-clockwise and then resized so
// the reported canvas is exactly the swapped dimensions. Portrait and
// square images pass through unchanged.
func Normalize(img image.Image) image.Image {
	size := Size(img)
	if size.Height >= size.Width {
		return img
	}
	rotated := rotate90(img)
	return Resize(rotated, types.Dimensions{Width: size.Height, Height: size.Width})
}

// Resize scales img to want. Images already at the target size pass
// through unchanged.
func Resize(img image.Image, want types.Dimensions) image.Image {
	if Size(img) == want {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, want.Width, want.Height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// Crop copies the box sub-rectangle of img into a fresh raster. The
// returned image owns its pixels; the source may be discarded.
func Crop(img image.Image, box types.Box) image.Image {
	size := box.Dimensions()
	dst := image.NewNRGBA(image.Rect(0, 0, size.Width, size.Height))
	src := box.Rect().Add(img.Bounds().Min)
	draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
	return dst
}

// rotate90 rotates img 90 degrees counter-clockwise into a canvas of
// exactly the swapped dimensions.
func rotate90(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			// CCW: dst (x, y) takes src (w-1-y, x).
			dst.Set(x, y, img.At(b.Min.X+w-1-y, b.Min.Y+x))
		}
	}
	return dst
}

// LoadBatch loads and normalizes every path in order and validates the
// batch invariants: an even count and identical dimensions across all
// images. The common size and a progress report go to w.
func LoadBatch(paths []string, dpi int, w io.Writer) ([]image.Image, types.Dimensions, error) {
	if len(paths)%2 != 0 {
		return nil, types.Dimensions{}, ErrUnevenImageCount
	}

	images := make([]image.Image, 0, len(paths))
	var size types.Dimensions
	for i, path := range paths {
		img, err := Load(path)
		if err != nil {
			return nil, types.Dimensions{}, err
		}
		img = Normalize(img)
		if i == 0 {
			size = Size(img)
		} else if Size(img) != size {
			return nil, types.Dimensions{}, fmt.Errorf("%s is %s, expected %s: %w",
				path, Size(img), size, ErrSizeMismatch)
		}
		images = append(images, img)
	}

	fmt.Fprintf(w, "image size (width x height): %d x %d px, %.1f x %.1f pt\n",
		size.Width, size.Height,
		units.PxToPt(size.Width, dpi), units.PxToPt(size.Height, dpi))

	return images, size, nil
}
