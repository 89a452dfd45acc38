package crop

import (
	"image"
	"image/color"
	"math"
)

// GripSize is the side length, in screen pixels, of the square hit area
// centred on a grip.
const GripSize = 40

// Grip is one of the two corner handles the user drags to define the crop.
// Its position lives in unscaled image pixels and is always kept inside
// [0, max.X] x [0, max.Y].
type Grip struct {
	pos      Point
	max      image.Point
	scale    float64
	palette  *Palette
	selected bool
	hover    bool
}

// NewGrip returns a grip at pos (clamped) bounded by max.
func NewGrip(pos Point, max image.Point) *Grip {
	g := &Grip{max: max, scale: 1}
	g.SetImagePosition(pos)
	return g
}

// ImagePosition returns the grip position in image pixels.
func (g *Grip) ImagePosition() Point { return g.pos }

// SetImagePosition stores p after saturating each axis into the image bounds.
func (g *Grip) SetImagePosition(p Point) {
	g.pos = Point{
		X: clamp(p.X, 0, float64(g.max.X)),
		Y: clamp(p.Y, 0, float64(g.max.Y)),
	}
}

// MaxPosition returns the bound the position is clamped to.
func (g *Grip) MaxPosition() image.Point { return g.max }

// Scale returns the zoom factor the grip projects with.
func (g *Grip) Scale() float64 { return g.scale }

// SetScale is called by the handler whenever the zoom changes.
func (g *Grip) SetScale(s float64) { g.scale = s }

// ScreenPosition projects the image position to integer screen pixels.
func (g *Grip) ScreenPosition() image.Point {
	return image.Pt(
		int(math.Round(g.scale*g.pos.X)),
		int(math.Round(g.scale*g.pos.Y)),
	)
}

// Area is the square hit area around the screen position.
func (g *Grip) Area() image.Rectangle {
	c := g.ScreenPosition()
	half := GripSize / 2
	return image.Rect(c.X-half, c.Y-half, c.X+half, c.Y+half)
}

// HitTest reports whether p lies inside the hit area, edges included.
func (g *Grip) HitTest(p Point) bool {
	a := g.Area()
	return float64(a.Min.X) <= p.X && p.X <= float64(a.Max.X) &&
		float64(a.Min.Y) <= p.Y && p.Y <= float64(a.Max.Y)
}

func (g *Grip) Selected() bool     { return g.selected }
func (g *Grip) SetSelected(b bool) { g.selected = b }
func (g *Grip) Hover() bool        { return g.hover }
func (g *Grip) SetHover(b bool)    { g.hover = b }

// Color picks the outline colour: selected wins over hover.
func (g *Grip) Color() color.Color {
	p := g.palette
	if p == nil {
		d := DefaultPalette()
		p = &d
	}
	switch {
	case g.selected:
		return p.GripSelected
	case g.hover:
		return p.GripHover
	default:
		return p.GripDefault
	}
}

func (g *Grip) Layer() int { return LayerGrips }

// Draw strokes the hit area outline.
func (g *Grip) Draw(p Painter, offset image.Point) {
	p.StrokeRect(g.Area().Sub(offset), g.Color())
}

func clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
