package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soocke/gripcrop/domain/crop"
)

type recordedEvent struct {
	kind string
	p    crop.Point
}

type mockHandler struct{ events []recordedEvent }

func (h *mockHandler) OnPointerPress(p crop.Point)   { h.events = append(h.events, recordedEvent{"press", p}) }
func (h *mockHandler) OnPointerMove(p crop.Point)    { h.events = append(h.events, recordedEvent{"move", p}) }
func (h *mockHandler) OnPointerRelease(p crop.Point) { h.events = append(h.events, recordedEvent{"release", p}) }

// orderDrawer appends its name to a shared log when drawn.
type orderDrawer struct {
	name  string
	layer int
	log   *[]string
	size  image.Point
}

func (d *orderDrawer) Layer() int                         { return d.layer }
func (d *orderDrawer) Draw(_ crop.Painter, _ image.Point) { *d.log = append(*d.log, d.name) }

type sizedDrawer struct {
	orderDrawer
}

func (d *sizedDrawer) Size() image.Point { return d.size }

func TestAdjustment_SetValueClamps(t *testing.T) {
	a := &Adjustment{}
	a.configure(1000, 400)

	a.SetValue(250)
	require.Equal(t, 250.0, a.Value())
	a.SetValue(900)
	require.Equal(t, 600.0, a.Value())
	a.SetValue(-5)
	require.Equal(t, 0.0, a.Value())

	// page larger than content pins the value to lower
	a.SetValue(300)
	a.configure(200, 400)
	require.Equal(t, 0.0, a.Value())
}

func TestCanvas_AddDrawerOrdersByLayer(t *testing.T) {
	var log []string
	c := New(image.Pt(10, 10), nil)
	c.AddDrawer(&orderDrawer{name: "grip-a", layer: crop.LayerGrips, log: &log})
	c.AddDrawer(&orderDrawer{name: "image", layer: crop.LayerImage, log: &log})
	c.AddDrawer(&orderDrawer{name: "grip-b", layer: crop.LayerGrips, log: &log})
	c.AddDrawer(&orderDrawer{name: "rect", layer: crop.LayerSelection, log: &log})

	c.Redraw()
	require.Equal(t, []string{"image", "rect", "grip-a", "grip-b"}, log)

	c.RemoveAllDrawers()
	log = nil
	c.Redraw()
	require.Empty(t, log)
}

func TestCanvas_RecomputeSizeFromSizers(t *testing.T) {
	var log []string
	c := New(image.Pt(300, 200), nil)
	c.AddDrawer(&sizedDrawer{orderDrawer{layer: crop.LayerImage, log: &log, size: image.Pt(1000, 150)}})
	c.AddDrawer(&orderDrawer{layer: crop.LayerGrips, log: &log})
	c.RecomputeSize()

	require.Equal(t, image.Pt(1000, 150), c.ContentSize())
	h, v := c.HAdjustment(), c.VAdjustment()
	require.Equal(t, 1000.0, h.Upper())
	require.Equal(t, 300.0, h.PageSize())
	require.Equal(t, 150.0, v.Upper())
	require.Equal(t, 200.0, v.PageSize())

	h.SetValue(5000)
	require.Equal(t, 700.0, h.Value())
}

func TestCanvas_PointerEventsAreAbsolute(t *testing.T) {
	var log []string
	c := New(image.Pt(100, 100), nil)
	c.AddDrawer(&sizedDrawer{orderDrawer{log: &log, size: image.Pt(500, 500)}})
	c.RecomputeSize()
	m := &mockHandler{}
	c.SetPointerHandler(m)

	c.ScrollBy(40, 15)
	require.Equal(t, image.Pt(40, 15), c.Offset())

	c.Press(1, 2)
	c.Motion(3, 4)
	c.Release(5, 6)
	require.Equal(t, []recordedEvent{
		{"press", crop.Pt(41, 17)},
		{"move", crop.Pt(43, 19)},
		{"release", crop.Pt(45, 21)},
	}, m.events)
}

func TestCanvas_CursorHook(t *testing.T) {
	c := New(image.Pt(10, 10), nil)
	var got []crop.Cursor
	c.OnCursor = func(cur crop.Cursor) { got = append(got, cur) }
	c.SetCursor(crop.CursorOnGrip)
	c.SetCursor(crop.CursorDefault)
	require.Equal(t, []crop.Cursor{crop.CursorOnGrip, crop.CursorDefault}, got)
	require.Equal(t, crop.CursorDefault, c.Cursor())
}

func TestCanvas_RedrawSkipsEmptyViewport(t *testing.T) {
	c := New(image.Point{}, nil)
	called := false
	c.OnFrame = func(*image.RGBA) { called = true }
	c.Redraw()
	require.False(t, called)
	require.Nil(t, c.Frame())
}

func TestCanvas_RendersCropOverlay(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			src.SetRGBA(x, y, red)
		}
	}

	c := New(image.Pt(200, 200), nil)
	frames := 0
	c.OnFrame = func(f *image.RGBA) {
		frames++
		require.Equal(t, image.Rect(0, 0, 200, 200), f.Bounds())
	}
	h := crop.NewGripHandler(src, c, nil)
	require.Equal(t, 2.0, h.Scale())
	h.SetVisible(true)
	require.Greater(t, frames, 0)

	f := c.Frame()
	// image stretched over the whole viewport
	assert.Equal(t, red, f.RGBAAt(100, 100))
	// grip A outline (right edge of its hit square)
	assert.Equal(t, blue, f.RGBAAt(20, 10))
	// grip B outline (left edge of its hit square)
	assert.Equal(t, blue, f.RGBAAt(180, 190))
	// selection rectangle top edge
	assert.Equal(t, blue, f.RGBAAt(100, 0))

	// hovering grip A turns it green
	c.Motion(5, 5)
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, c.Frame().RGBAAt(20, 10))
	assert.Equal(t, crop.CursorOnGrip, c.Cursor())
}

func TestPainter_StrokeRectClipsToFrame(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	p := painter{dst: dst}
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	p.StrokeRect(image.Rect(-5, 2, 4, 20), white)

	assert.Equal(t, white, dst.RGBAAt(0, 2))
	assert.Equal(t, white, dst.RGBAAt(4, 2))
	assert.Equal(t, white, dst.RGBAAt(4, 9))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(2, 5))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(5, 2))
}

func TestPainter_DrawImageOneToOne(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	green := color.RGBA{G: 0xff, A: 0xff}
	src.SetRGBA(1, 1, green)
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	painter{dst: dst}.DrawImage(src, image.Rect(-1, -1, 3, 3))
	require.Equal(t, green, dst.RGBAAt(0, 0))
}
