package crop

import (
	"image"
	"image/color"
)

// Point is a position in screen (or image) space. Pointer events carry
// fractional coordinates so the drag math keeps sub-pixel precision.
type Point struct{ X, Y float64 }

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Cursor enumerates the cursor identities the handler asks the surface for.
// The surface resolves them to native cursor handles.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorVisible
	CursorOnGrip
)

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorVisible:
		return "visible"
	case CursorOnGrip:
		return "on_grip"
	default:
		return "unknown"
	}
}

// Drawer layers. Lower layers are painted first.
const (
	LayerImage = iota * 10
	LayerSelection
	LayerGrips
)

// Painter is the drawing primitive set a Drawer paints with. Rectangles are
// in frame coordinates (content position minus the viewport offset).
type Painter interface {
	StrokeRect(r image.Rectangle, c color.Color)
	DrawImage(img image.Image, dst image.Rectangle)
}

// Drawer is a layer registered on a Surface.
type Drawer interface {
	Layer() int
	Draw(p Painter, offset image.Point)
}

// Sizer is implemented by drawers that contribute to the content size of
// the surface (the background image).
type Sizer interface {
	Size() image.Point
}

// Adjustment is one scrollable axis of the viewport.
type Adjustment interface {
	Lower() float64
	Upper() float64
	PageSize() float64
	Value() float64
	SetValue(v float64)
}

// PointerHandler receives pointer events in absolute content coordinates.
type PointerHandler interface {
	OnPointerPress(p Point)
	OnPointerMove(p Point)
	OnPointerRelease(p Point)
}

// Surface is the rendering collaborator: it owns the drawer registry, the
// scrollable viewport and the cursor, and delivers pointer events.
type Surface interface {
	SetPointerHandler(h PointerHandler)
	AddDrawer(d Drawer)
	RemoveAllDrawers()
	VisibleSize() image.Point
	HAdjustment() Adjustment
	VAdjustment() Adjustment
	RecomputeSize()
	SetCursor(c Cursor)
	Redraw()
}

// Palette holds the overlay colours.
type Palette struct {
	GripDefault  color.Color
	GripHover    color.Color
	GripSelected color.Color
	Rectangle    color.Color
}

// DefaultPalette returns blue grips that turn green on hover and red while
// dragged, with a blue selection rectangle.
func DefaultPalette() Palette {
	return Palette{
		GripDefault:  color.RGBA{B: 0xff, A: 0xff},
		GripHover:    color.RGBA{G: 0xff, A: 0xff},
		GripSelected: color.RGBA{R: 0xff, A: 0xff},
		Rectangle:    color.RGBA{B: 0xff, A: 0xff},
	}
}

// GripMovedListener is called once per completed drag. Observers re-query
// the handler for the crop rectangle.
type GripMovedListener func()
