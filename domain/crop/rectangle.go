package crop

import "image"

// SelectionRectangle draws the box spanned by two grips. It has no state of
// its own; everything is derived from the grips at draw time.
type SelectionRectangle struct {
	a, b    *Grip
	palette *Palette
}

// NewSelectionRectangle binds the rectangle to its two grips. Order does not
// matter.
func NewSelectionRectangle(a, b *Grip) *SelectionRectangle {
	return &SelectionRectangle{a: a, b: b}
}

// Bounds returns the normalised screen-space rectangle between the grips.
func (r *SelectionRectangle) Bounds() image.Rectangle {
	// image.Rectangle.Canon swaps min/max per axis.
	return image.Rectangle{Min: r.a.ScreenPosition(), Max: r.b.ScreenPosition()}.Canon()
}

func (r *SelectionRectangle) Layer() int { return LayerSelection }

func (r *SelectionRectangle) Draw(p Painter, offset image.Point) {
	pal := DefaultPalette()
	if r.palette != nil {
		pal = *r.palette
	}
	p.StrokeRect(r.Bounds().Sub(offset), pal.Rectangle)
}
