package crop

import "image"

// ImageDrawer paints the source image as the bottom layer, stretched to
// the size the handler sets for the current zoom.
type ImageDrawer struct {
	img  image.Image
	size image.Point
}

func NewImageDrawer(img image.Image) *ImageDrawer {
	return &ImageDrawer{img: img, size: img.Bounds().Size()}
}

func (d *ImageDrawer) Image() image.Image { return d.img }

// Size is the rendered size in screen pixels.
func (d *ImageDrawer) Size() image.Point { return d.size }

func (d *ImageDrawer) SetSize(s image.Point) { d.size = s }

func (d *ImageDrawer) Layer() int { return LayerImage }

func (d *ImageDrawer) Draw(p Painter, offset image.Point) {
	if d.size.X <= 0 || d.size.Y <= 0 {
		return
	}
	p.DrawImage(d.img, image.Rectangle{Max: d.size}.Sub(offset))
}
