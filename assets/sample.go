// Package assets provides built-in images for running the tool without a
// source file.
package assets

import (
	"image"
	"image/color"
)

const checker = 32

// SampleImage returns a deterministic w x h test pattern: a checkerboard
// with a horizontal colour gradient and a one pixel frame, so that crop
// edges are easy to see. Non-positive sizes yield a 1x1 image.
func SampleImage(w, h int) *image.NRGBA {
	w, h = max(w, 1), max(h, 1)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, sampleAt(x, y, w, h))
		}
	}
	return img
}

func sampleAt(x, y, w, h int) color.NRGBA {
	if x == 0 || y == 0 || x == w-1 || y == h-1 {
		return color.NRGBA{A: 0xff}
	}
	r := uint8(x * 255 / max(w-1, 1))
	b := uint8(y * 255 / max(h-1, 1))
	g := uint8(0x60)
	if (x/checker+y/checker)%2 == 0 {
		g = 0xc0
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
