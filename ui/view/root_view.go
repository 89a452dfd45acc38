package view

import (
	"image"
	"log/slog"

	"github.com/soocke/gripcrop/ui/images"
	"github.com/soocke/gripcrop/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Actions bundles the toolbar callbacks.
type Actions struct {
	Save    func()
	Zoom    func()
	Overlay func()
	Theme   func()
	Exit    func()
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Crop *CropView

	// Widgets
	StatusLabel  *TLabelWidget
	PreviewLabel *LabelWidget
	preview      *Img
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	SetStatus(text string)
	ShowCrop(img image.Image)
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout: toolbar and status on row 0, the crop
// viewport of the given size below.
func (rv *RootView) Build(viewport image.Point, actions Actions) {
	if rv == nil {
		return
	}
	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(0), Sticky("nw"), Padx("0.3m"), Pady("0.3m"))
	buttons := []struct {
		text  string
		style string
		fn    func()
	}{
		{"Save [Ctrl+S]", theme.StylePrimaryButton, actions.Save},
		{"Zoom [Z]", "", actions.Zoom},
		{"Overlay [O]", "", actions.Overlay},
		{"Theme", "", actions.Theme},
		{"Exit", theme.StyleDangerButton, actions.Exit},
	}
	for i, b := range buttons {
		if b.fn == nil {
			continue
		}
		opts := []Opt{Txt(b.text), Command(b.fn)}
		if b.style != "" {
			opts = append(opts, Style(b.style))
		}
		Grid(TButton(opts...), In(btnFrame), Row(0), Column(i), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	}
	rv.StatusLabel = TLabel(Txt("Drag the grips to select a region"), Style(theme.StyleStatusLabel))
	Grid(rv.StatusLabel, Row(0), Column(1), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	rv.Crop = NewCropView(1, viewport, rv.logger)
	rv.PreviewLabel = Label(Txt("No crop saved"), Borderwidth(1), Relief("groove"))
	Grid(rv.PreviewLabel, Row(1), Column(5), Sticky("n"), Padx("0.4m"), Pady("0.4m"))

	shortcut := func(seq string, fn func()) {
		if fn != nil {
			Bind(App, seq, Command(fn))
		}
	}
	shortcut("<Control-s>", actions.Save)
	shortcut("<KeyPress-z>", actions.Zoom)
	shortcut("<KeyPress-o>", actions.Overlay)
	shortcut("<Escape>", actions.Exit)
}

// SetStatus updates the status label text.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// Max thumbnail dimensions of the last saved crop.
const (
	maxPreviewW = 200
	maxPreviewH = 150
)

// ShowCrop shows a thumbnail of img next to the viewport.
func (rv *RootView) ShowCrop(img image.Image) {
	if rv == nil || rv.PreviewLabel == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(images.ScaleToFit(img, maxPreviewW, maxPreviewH))
	if rv.preview != nil {
		rv.preview.Delete()
	}
	rv.preview = NewPhoto(Data(pngBytes))
	rv.PreviewLabel.Configure(Image(rv.preview), Txt(""))
}

var _ UI = (*RootView)(nil)
