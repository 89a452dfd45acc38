package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/gripcrop/domain/crop"
	"github.com/soocke/gripcrop/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Tk cursor names for the crop cursor kinds.
const (
	cursorHand  = "hand1"
	cursorCross = "tcross"
)

// CursorName maps a crop cursor kind to a Tk cursor name.
func CursorName(c crop.Cursor) string {
	if c == crop.CursorOnGrip {
		return cursorCross
	}
	return cursorHand
}

// PointerFunc receives widget-relative pointer coordinates.
type PointerFunc func(x, y float64)

// CropView shows the rendered crop viewport in a label and forwards mouse
// and keyboard input.
type CropView struct {
	logger *slog.Logger
	label  *LabelWidget
	photo  *Img // current Tk photo, deleted when replaced
	cursor string

	pending image.Image
	afterID string
}

// NewCropView creates the viewport label at the given grid row.
func NewCropView(row int, size image.Point, logger *slog.Logger) *CropView {
	placeholder := image.NewRGBA(image.Rectangle{Max: size})
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"), Cursor(cursorHand))
	Grid(label, Row(row), Column(0), Columnspan(5), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	return &CropView{logger: logger, label: label, photo: photo, cursor: cursorHand}
}

// frameInterval bounds how often a new photo is pushed to Tk. Frames
// arriving faster are coalesced; only the latest is shown.
const frameInterval = 15 * time.Millisecond

// ShowFrame schedules frame for display. The canvas reuses its frame
// buffer, so the pixels shown are those at flush time.
func (v *CropView) ShowFrame(frame image.Image) {
	if v == nil || v.label == nil || frame == nil {
		return
	}
	v.pending = frame
	if v.afterID != "" {
		return
	}
	v.afterID = TclAfter(frameInterval, v.flush)
}

func (v *CropView) flush() {
	v.afterID = ""
	frame := v.pending
	v.pending = nil
	if frame == nil {
		return
	}
	pngBytes := images.EncodePNG(frame)
	if len(pngBytes) == 0 {
		if v.logger != nil {
			v.logger.Warn("frame encode failed", "bounds", frame.Bounds().String())
		}
		return
	}
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.photo))
}

// Close cancels a pending frame update.
func (v *CropView) Close() {
	if v != nil && v.afterID != "" {
		TclAfterCancel(v.afterID)
		v.afterID = ""
	}
}

// SetCursor updates the label cursor if the kind changed.
func (v *CropView) SetCursor(c crop.Cursor) {
	if v == nil || v.label == nil {
		return
	}
	name := CursorName(c)
	if name == v.cursor {
		return
	}
	v.cursor = name
	v.label.Configure(Cursor(name))
}

// BindPointer routes button 1 press, drag and release plus plain motion.
func (v *CropView) BindPointer(press, motion, release PointerFunc) {
	if v == nil || v.label == nil {
		return
	}
	bind := func(seq string, f PointerFunc) {
		if f == nil {
			return
		}
		Bind(v.label, seq, Command(func(e *Event) { f(float64(e.X), float64(e.Y)) }))
	}
	bind("<ButtonPress-1>", press)
	bind("<B1-Motion>", motion)
	bind("<Motion>", motion)
	bind("<ButtonRelease-1>", release)
}

// BindScroll scrolls the viewport by step pixels on arrow keys.
func (v *CropView) BindScroll(scroll func(dx, dy float64), step int) {
	if scroll == nil {
		return
	}
	s := float64(step)
	for key, d := range map[string][2]float64{
		"<Left>":  {-s, 0},
		"<Right>": {s, 0},
		"<Up>":    {0, -s},
		"<Down>":  {0, s},
	} {
		Bind(App, key, Command(func() { scroll(d[0], d[1]) }))
	}
}
