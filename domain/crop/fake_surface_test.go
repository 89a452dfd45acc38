package crop

import (
	"image"
	"image/color"
)

type fakeAdjustment struct {
	lower, upper, page, value float64
}

func (a *fakeAdjustment) Lower() float64     { return a.lower }
func (a *fakeAdjustment) Upper() float64     { return a.upper }
func (a *fakeAdjustment) PageSize() float64  { return a.page }
func (a *fakeAdjustment) Value() float64     { return a.value }
func (a *fakeAdjustment) SetValue(v float64) { a.value = v }

// fakeSurface records the calls the handler makes. RecomputeSize mimics a
// scrolled window: upper follows the largest Sizer, page follows the
// visible size.
type fakeSurface struct {
	visible   image.Point
	h, v      fakeAdjustment
	handler   PointerHandler
	drawers   []Drawer
	cursors   []Cursor
	redraws   int
	recompute int
	cleared   int
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{visible: image.Pt(w, h)}
}

func (s *fakeSurface) SetPointerHandler(h PointerHandler) { s.handler = h }
func (s *fakeSurface) AddDrawer(d Drawer)                 { s.drawers = append(s.drawers, d) }
func (s *fakeSurface) RemoveAllDrawers()                  { s.drawers = nil; s.cleared++ }
func (s *fakeSurface) VisibleSize() image.Point           { return s.visible }
func (s *fakeSurface) HAdjustment() Adjustment            { return &s.h }
func (s *fakeSurface) VAdjustment() Adjustment            { return &s.v }
func (s *fakeSurface) SetCursor(c Cursor)                 { s.cursors = append(s.cursors, c) }
func (s *fakeSurface) Redraw()                            { s.redraws++ }

func (s *fakeSurface) RecomputeSize() {
	s.recompute++
	var size image.Point
	for _, d := range s.drawers {
		if sz, ok := d.(Sizer); ok {
			size = size.Add(sz.Size())
		}
	}
	s.h.upper, s.h.page = float64(size.X), float64(s.visible.X)
	s.v.upper, s.v.page = float64(size.Y), float64(s.visible.Y)
}

func (s *fakeSurface) lastCursor() Cursor {
	if len(s.cursors) == 0 {
		return CursorDefault
	}
	return s.cursors[len(s.cursors)-1]
}

// recordingPainter keeps every primitive it was asked to draw.
type recordingPainter struct {
	rects  []image.Rectangle
	colors []color.Color
	images []image.Rectangle
}

func (p *recordingPainter) StrokeRect(r image.Rectangle, c color.Color) {
	p.rects = append(p.rects, r)
	p.colors = append(p.colors, c)
}

func (p *recordingPainter) DrawImage(_ image.Image, dst image.Rectangle) {
	p.images = append(p.images, dst)
}

func newImage(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}
