package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// painter draws crop primitives into an RGBA frame. Everything is clipped to
// the frame bounds.
type painter struct {
	dst *image.RGBA
}

// StrokeRect draws a 1px outline whose outermost pixels are r.Min and r.Max
// (both inclusive). A degenerate rectangle becomes a line.
func (p painter) StrokeRect(r image.Rectangle, c color.Color) {
	r = r.Canon()
	src := image.NewUniform(c)
	p.fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X+1, r.Min.Y+1), src)
	p.fill(image.Rect(r.Min.X, r.Max.Y, r.Max.X+1, r.Max.Y+1), src)
	p.fill(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y+1), src)
	p.fill(image.Rect(r.Max.X, r.Min.Y, r.Max.X+1, r.Max.Y+1), src)
}

func (p painter) fill(r image.Rectangle, src image.Image) {
	r = r.Intersect(p.dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(p.dst, r, src, image.Point{}, draw.Over)
}

// DrawImage stretches img onto dst. Only the destination pixels inside the
// frame are computed, so a large zoomed image costs no more than the
// viewport.
func (p painter) DrawImage(img image.Image, dst image.Rectangle) {
	sr := img.Bounds()
	if dst.Empty() || sr.Empty() || !dst.Overlaps(p.dst.Bounds()) {
		return
	}
	if dst.Size() == sr.Size() {
		draw.Draw(p.dst, dst, img, sr.Min, draw.Src)
		return
	}
	sx := float64(dst.Dx()) / float64(sr.Dx())
	sy := float64(dst.Dy()) / float64(sr.Dy())
	s2d := f64.Aff3{
		sx, 0, float64(dst.Min.X) - float64(sr.Min.X)*sx,
		0, sy, float64(dst.Min.Y) - float64(sr.Min.Y)*sy,
	}
	draw.ApproxBiLinear.Transform(p.dst, s2d, img, sr, draw.Src, nil)
}
