// Package canvas is a software rendering surface for the crop overlay.
// Drawers paint into an *image.RGBA the size of the visible viewport; the
// finished frame is handed to whatever displays it (a Tk photo in the app).
package canvas

import (
	"image"
	"image/color"
	"log/slog"
	"slices"

	"golang.org/x/image/draw"

	"github.com/soocke/gripcrop/domain/crop"
)

// Canvas implements crop.Surface. It is not safe for concurrent use; all
// calls come from the UI event loop.
type Canvas struct {
	logger     *slog.Logger
	visible    image.Point
	content    image.Point
	background color.Color
	drawers    []crop.Drawer
	h, v       Adjustment
	handler    crop.PointerHandler
	cursor     crop.Cursor
	frame      *image.RGBA

	// OnFrame receives every rendered frame. The image is reused between
	// redraws, so callers must not retain it.
	OnFrame func(frame *image.RGBA)
	// OnCursor is called whenever the requested cursor changes.
	OnCursor func(c crop.Cursor)
}

// New returns a canvas showing a viewport of the given size.
func New(visible image.Point, logger *slog.Logger) *Canvas {
	return &Canvas{logger: logger, visible: visible, background: color.Gray{Y: 0x40}}
}

// SetBackground sets the colour painted behind the content.
func (c *Canvas) SetBackground(col color.Color) { c.background = col }

func (c *Canvas) SetPointerHandler(h crop.PointerHandler) { c.handler = h }

// AddDrawer registers d, keeping the registry ordered by layer. Drawers on
// the same layer paint in registration order.
func (c *Canvas) AddDrawer(d crop.Drawer) {
	c.drawers = append(c.drawers, d)
	slices.SortStableFunc(c.drawers, func(a, b crop.Drawer) int {
		return a.Layer() - b.Layer()
	})
	c.RecomputeSize()
}

func (c *Canvas) RemoveAllDrawers() {
	c.drawers = nil
	c.RecomputeSize()
}

func (c *Canvas) Drawers() []crop.Drawer { return c.drawers }

func (c *Canvas) VisibleSize() image.Point { return c.visible }

func (c *Canvas) ContentSize() image.Point { return c.content }

func (c *Canvas) HAdjustment() crop.Adjustment { return &c.h }
func (c *Canvas) VAdjustment() crop.Adjustment { return &c.v }

// Offset is the current scroll position in content pixels.
func (c *Canvas) Offset() image.Point {
	return image.Pt(int(c.h.value), int(c.v.value))
}

// RecomputeSize derives the content size from the drawers that report one
// and reconfigures both adjustments.
func (c *Canvas) RecomputeSize() {
	var size image.Point
	for _, d := range c.drawers {
		s, ok := d.(crop.Sizer)
		if !ok {
			continue
		}
		sz := s.Size()
		size.X = max(size.X, sz.X)
		size.Y = max(size.Y, sz.Y)
	}
	c.content = size
	c.h.configure(float64(size.X), float64(c.visible.X))
	c.v.configure(float64(size.Y), float64(c.visible.Y))
}

// Resize changes the viewport size and re-renders.
func (c *Canvas) Resize(visible image.Point) {
	c.visible = visible
	c.RecomputeSize()
	if c.logger != nil {
		c.logger.Debug("canvas resized", "w", visible.X, "h", visible.Y)
	}
	c.Redraw()
}

// ScrollBy moves the viewport by (dx, dy) content pixels.
func (c *Canvas) ScrollBy(dx, dy float64) {
	c.h.SetValue(c.h.value + dx)
	c.v.SetValue(c.v.value + dy)
	c.Redraw()
}

func (c *Canvas) Cursor() crop.Cursor { return c.cursor }

func (c *Canvas) SetCursor(cur crop.Cursor) {
	c.cursor = cur
	if c.OnCursor != nil {
		c.OnCursor(cur)
	}
}

// Frame returns the last rendered frame, or nil before the first redraw.
func (c *Canvas) Frame() *image.RGBA { return c.frame }

// Redraw renders all drawers into the frame and publishes it.
func (c *Canvas) Redraw() {
	if c.visible.X <= 0 || c.visible.Y <= 0 {
		return
	}
	bounds := image.Rectangle{Max: c.visible}
	if c.frame == nil || c.frame.Rect != bounds {
		c.frame = image.NewRGBA(bounds)
	}
	draw.Draw(c.frame, bounds, image.NewUniform(c.background), image.Point{}, draw.Src)
	p := painter{dst: c.frame}
	offset := c.Offset()
	for _, d := range c.drawers {
		d.Draw(p, offset)
	}
	if c.OnFrame != nil {
		c.OnFrame(c.frame)
	}
}

// Press, Motion and Release take viewport-relative coordinates and forward
// them to the pointer handler in absolute content coordinates.
func (c *Canvas) Press(x, y float64) {
	if c.handler != nil {
		c.handler.OnPointerPress(c.absolute(x, y))
	}
}

func (c *Canvas) Motion(x, y float64) {
	if c.handler != nil {
		c.handler.OnPointerMove(c.absolute(x, y))
	}
}

func (c *Canvas) Release(x, y float64) {
	if c.handler != nil {
		c.handler.OnPointerRelease(c.absolute(x, y))
	}
}

func (c *Canvas) absolute(x, y float64) crop.Point {
	return crop.Pt(x+c.h.value, y+c.v.value)
}

var _ crop.Surface = (*Canvas)(nil)
