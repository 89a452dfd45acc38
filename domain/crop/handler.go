package crop

import (
	"fmt"
	"image"
	"log/slog"
	"math"
)

// GripHandler owns the two grips of a crop session and turns pointer events
// from the surface into grip mutations. It is driven from the UI event loop
// only and does no locking.
//
// States: idle (selected == nil) and dragging (selected != nil). Hover
// flags are only maintained while idle.
type GripHandler struct {
	logger    *slog.Logger
	surface   Surface
	imgSize   image.Point
	scale     float64
	grips     [2]*Grip
	rect      *SelectionRectangle
	imgDrawer *ImageDrawer
	palette   Palette
	selected  *Grip
	visible   bool
	listeners []GripMovedListener
}

// NewGripHandler starts a crop session on img. The grips start at the image
// corners, the view is zoomed to fit and the drawers are registered on the
// surface (image, then rectangle, then grips).
//
// img must be at least 1x1; a zero-size image is a programming error.
func NewGripHandler(img image.Image, surface Surface, logger *slog.Logger) *GripHandler {
	size := img.Bounds().Size()
	if size.X < 1 || size.Y < 1 {
		panic(fmt.Sprintf("crop: image must be at least 1x1, got %dx%d", size.X, size.Y))
	}
	h := &GripHandler{
		logger:    logger,
		surface:   surface,
		imgSize:   size,
		scale:     1,
		imgDrawer: NewImageDrawer(img),
		palette:   DefaultPalette(),
	}
	h.grips = [2]*Grip{
		NewGrip(Pt(0, 0), size),
		NewGrip(Pt(float64(size.X), float64(size.Y)), size),
	}
	h.rect = NewSelectionRectangle(h.grips[0], h.grips[1])
	h.applyPalette()

	surface.SetPointerHandler(h)
	h.ToggleZoom(Pt(0, 0))

	surface.RemoveAllDrawers()
	surface.AddDrawer(h.imgDrawer)
	surface.AddDrawer(overlay{Drawer: h.rect, h: h})
	for _, g := range h.grips {
		surface.AddDrawer(overlay{Drawer: g, h: h})
	}
	return h
}

// overlay hides a drawer while the handler is not visible.
type overlay struct {
	Drawer
	h *GripHandler
}

func (o overlay) Draw(p Painter, offset image.Point) {
	if o.h.visible {
		o.Drawer.Draw(p, offset)
	}
}

// SetPalette replaces the overlay colours and redraws.
func (h *GripHandler) SetPalette(p Palette) {
	h.palette = p
	h.applyPalette()
	h.surface.Redraw()
}

func (h *GripHandler) applyPalette() {
	for _, g := range h.grips {
		g.palette = &h.palette
	}
	h.rect.palette = &h.palette
}

// AddListener registers a grip-moved observer.
func (h *GripHandler) AddListener(l GripMovedListener) {
	if l != nil {
		h.listeners = append(h.listeners, l)
	}
}

func (h *GripHandler) Grips() [2]*Grip                { return h.grips }
func (h *GripHandler) Rectangle() *SelectionRectangle { return h.rect }
func (h *GripHandler) ImageSize() image.Point         { return h.imgSize }
func (h *GripHandler) Scale() float64                 { return h.scale }
func (h *GripHandler) Dragging() bool                 { return h.selected != nil }
func (h *GripHandler) SelectedGrip() *Grip            { return h.selected }
func (h *GripHandler) ImageDrawer() *ImageDrawer      { return h.imgDrawer }

// ScreenToImage maps an absolute screen point to image pixels.
func (h *GripHandler) ScreenToImage(p Point) Point {
	return Pt(p.X/h.scale, p.Y/h.scale)
}

// ImageToScreen maps image pixels to integer screen pixels, the same way
// grips project themselves.
func (h *GripHandler) ImageToScreen(p Point) image.Point {
	return image.Pt(int(math.Round(p.X*h.scale)), int(math.Round(p.Y*h.scale)))
}

// OnPointerPress selects the first grip (in fixed order) under p.
func (h *GripHandler) OnPointerPress(p Point) {
	h.selected = nil
	for i, g := range h.grips {
		if g.HitTest(p) {
			h.selected = g
			g.SetSelected(true)
			if h.logger != nil {
				h.logger.Debug("grip selected", "grip", i, "x", p.X, "y", p.Y)
			}
			break
		}
	}
}

// OnPointerMove drags the selected grip, or refreshes hover state when idle.
func (h *GripHandler) OnPointerMove(p Point) {
	onGrip := false
	if h.selected != nil {
		h.selected.SetImagePosition(h.ScreenToImage(p))
		onGrip = true
	} else {
		for _, g := range h.grips {
			hit := g.HitTest(p)
			g.SetHover(hit)
			onGrip = onGrip || hit
		}
	}
	h.surface.Redraw()
	if onGrip {
		h.surface.SetCursor(CursorOnGrip)
	} else {
		h.surface.SetCursor(CursorVisible)
	}
}

// OnPointerRelease ends a drag and notifies listeners. A release that did
// not start on a grip toggles the zoom around the released point.
func (h *GripHandler) OnPointerRelease(p Point) {
	if h.selected != nil {
		h.selected.SetSelected(false)
		h.selected = nil
		if h.logger != nil {
			r := h.CropRectangle()
			h.logger.Debug("grip moved", "rect", r.String())
		}
		for _, l := range h.listeners {
			l()
		}
	} else {
		rel := Pt(
			p.X/(float64(h.imgSize.X)*h.scale),
			p.Y/(float64(h.imgSize.Y)*h.scale),
		)
		h.ToggleZoom(rel)
	}
	h.surface.Redraw()
}

// ToggleZoom switches between actual size and fit-to-view. rel is the
// focus point as a fraction of each scrollable axis.
func (h *GripHandler) ToggleZoom(rel Point) {
	scale := 1.0
	if h.scale == 1.0 {
		vis := h.surface.VisibleSize()
		scale = math.Min(
			float64(vis.X)/float64(h.imgSize.X),
			float64(vis.Y)/float64(h.imgSize.Y),
		)
	}
	h.SetScale(scale, rel)
}

// SetScale applies a new zoom factor and scrolls so that rel stays under
// the cursor. Non-positive scales are ignored.
func (h *GripHandler) SetScale(scale float64, rel Point) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		if h.logger != nil {
			h.logger.Warn("ignoring invalid scale", "scale", scale)
		}
		return
	}
	h.scale = scale
	h.imgDrawer.SetSize(image.Pt(
		int(math.Round(float64(h.imgSize.X)*scale)),
		int(math.Round(float64(h.imgSize.Y)*scale)),
	))
	for _, g := range h.grips {
		g.SetScale(scale)
	}
	h.surface.RecomputeSize()

	for _, a := range []struct {
		adj Adjustment
		rel float64
	}{
		{h.surface.HAdjustment(), rel.X},
		{h.surface.VAdjustment(), rel.Y},
	} {
		if a.adj == nil {
			continue
		}
		upper := a.adj.Upper() - a.adj.PageSize()
		lower := a.adj.Lower()
		a.adj.SetValue(math.Trunc(a.rel*(upper-lower) + lower))
	}
	if h.logger != nil {
		h.logger.Debug("scale changed", "scale", scale, "rel_x", rel.X, "rel_y", rel.Y)
	}
}

// CropRectangle returns the normalised bounding box of both grips in image
// pixels, truncated to integers.
func (h *GripHandler) CropRectangle() image.Rectangle {
	a, b := h.grips[0].ImagePosition(), h.grips[1].ImagePosition()
	return image.Rectangle{
		Min: image.Pt(int(math.Min(a.X, b.X)), int(math.Min(a.Y, b.Y))),
		Max: image.Pt(int(math.Max(a.X, b.X)), int(math.Max(a.Y, b.Y))),
	}
}

// Coords returns the crop rectangle as its two corners.
func (h *GripHandler) Coords() (min, max image.Point) {
	r := h.CropRectangle()
	return r.Min, r.Max
}

// SetCropRectangle moves the grips onto r's corners (clamped). Used to
// restore a previous session; it does not notify listeners.
func (h *GripHandler) SetCropRectangle(r image.Rectangle) {
	r = r.Canon()
	h.grips[0].SetImagePosition(Pt(float64(r.Min.X), float64(r.Min.Y)))
	h.grips[1].SetImagePosition(Pt(float64(r.Max.X), float64(r.Max.Y)))
	h.surface.Redraw()
}

func (h *GripHandler) Visible() bool { return h.visible }

// SetVisible shows or hides the grips and rectangle. It resets the cursor
// and redraws but does not touch the crop state.
func (h *GripHandler) SetVisible(v bool) {
	h.visible = v
	h.surface.SetCursor(CursorDefault)
	h.surface.Redraw()
}

var _ PointerHandler = (*GripHandler)(nil)
