package geometry

import (
	"math"

	"github.com/pkg/errors"

	"github.com/previewlab/thumbd/internal/formats"
)

// ErrInvalidSource -
var ErrInvalidSource = errors.New("invalid source dimensions")

// Size is a raster size in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FitVector computes the raster size for a vector source: the area is scaled
// to the VectorTargetPx budget while the source aspect ratio is preserved.
func FitVector(width, height float64) (Size, error) {
	if width <= 0 || height <= 0 {
		return Size{}, errors.Wrapf(ErrInvalidSource, "%gx%g", width, height)
	}

	scale := math.Sqrt(formats.VectorTargetPx / (width * height))
	return Size{
		Width:  int(math.Round(width * scale)),
		Height: int(math.Round(height * scale)),
	}, nil
}

// FitDocument computes the raster size for a document page: the width is
// pinned to DocumentRenderWidth and the height follows the page aspect
// ratio.
func FitDocument(width, height float64) (Size, error) {
	if width <= 0 || height <= 0 {
		return Size{}, errors.Wrapf(ErrInvalidSource, "%gx%g", width, height)
	}

	renderWidth := float64(formats.DocumentRenderWidth)
	return Size{
		Width:  formats.DocumentRenderWidth,
		Height: int(math.Round(renderWidth * height / width)),
	}, nil
}
