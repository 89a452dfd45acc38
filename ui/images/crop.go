package images

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// ErrEmptyCrop is returned when the requested region has no pixels inside
// the image.
var ErrEmptyCrop = errors.New("crop area empty or out of bounds")

// Crop copies region r (in image pixel coordinates relative to the image
// origin) out of img. The region is clamped to the image bounds.
func Crop(img image.Image, r image.Rectangle) (*image.NRGBA, error) {
	if img == nil {
		return nil, errors.New("nil image")
	}
	b := img.Bounds()
	r = r.Canon().Add(b.Min).Intersect(b)
	if r.Empty() {
		return nil, ErrEmptyCrop
	}
	return imaging.Crop(img, r), nil
}
