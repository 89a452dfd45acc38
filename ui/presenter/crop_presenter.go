package presenter

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/soocke/gripcrop/config"
	"github.com/soocke/gripcrop/domain/crop"
	"github.com/soocke/gripcrop/ui/images"
)

// CropController is the subset of *crop.GripHandler the presenter drives.
type CropController interface {
	CropRectangle() image.Rectangle
	ImageSize() image.Point
	Scale() float64
	ToggleZoom(rel crop.Point)
	Visible() bool
	SetVisible(bool)
}

// CropModel stores the confirmed crop rectangle.
type CropModel interface {
	SetRect(image.Rectangle)
	Rect() image.Rectangle
	Has() bool
}

// Viewport reports which part of the content is on screen.
type Viewport interface {
	Offset() image.Point
	VisibleSize() image.Point
}

// StatusView displays a one line status message and the last exported crop.
type StatusView interface {
	SetStatus(text string)
	ShowCrop(img image.Image)
}

// CropPresenter keeps the model, status line and config in step with the
// grip handler and exports the selected region on request.
type CropPresenter struct {
	ctrl     CropController
	model    CropModel
	viewport Viewport
	view     StatusView
	source   image.Image
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
}

// NewCropPresenter returns a presenter for the crop session on source. A
// blank cfgPath disables config persistence.
func NewCropPresenter(ctrl CropController, model CropModel, viewport Viewport, view StatusView, source image.Image, cfg *config.Config, cfgPath string, logger *slog.Logger) *CropPresenter {
	return &CropPresenter{
		ctrl:     ctrl,
		model:    model,
		viewport: viewport,
		view:     view,
		source:   source,
		cfg:      cfg,
		cfgPath:  cfgPath,
		logger:   logger,
	}
}

// OnGripMoved is registered as the handler's grip-moved listener.
func (p *CropPresenter) OnGripMoved() {
	if p == nil || p.ctrl == nil || p.model == nil {
		return
	}
	r := p.ctrl.CropRectangle()
	p.model.SetRect(r)
	p.setStatus(p.describe(r))
	if p.cfg == nil {
		return
	}
	p.cfg.SetLastCrop(r)
	if p.cfgPath == "" {
		return
	}
	if err := p.cfg.Save(p.cfgPath); err != nil && p.logger != nil {
		p.logger.Error("persist crop failed", "path", p.cfgPath, "error", err)
	}
}

// Refresh rewrites the status line from the controller's current state.
func (p *CropPresenter) Refresh() {
	if p == nil || p.ctrl == nil {
		return
	}
	p.setStatus(p.describe(p.ctrl.CropRectangle()))
}

// Save crops the source to the confirmed rectangle, falling back to the
// handler's current one, and writes it to the configured output path.
func (p *CropPresenter) Save() (string, error) {
	if p == nil || p.ctrl == nil || p.source == nil || p.cfg == nil {
		return "", fmt.Errorf("presenter not initialised")
	}
	r := p.ctrl.CropRectangle()
	if p.model != nil && p.model.Has() {
		r = p.model.Rect()
	}
	out, err := images.Crop(p.source, r)
	if err != nil {
		p.fail("crop", err)
		return "", err
	}
	path := p.cfg.OutputPath
	n, err := images.Save(out, path, p.cfg.JPEGQuality)
	if err != nil {
		p.fail("save", err)
		return "", err
	}
	size := humanize.Bytes(uint64(n))
	if p.logger != nil {
		p.logger.Info("crop saved", "path", path, "rect", r.String(), "size", size)
	}
	p.setStatus(fmt.Sprintf("Saved %dx%d to %s (%s)", r.Dx(), r.Dy(), path, size))
	if p.view != nil {
		p.view.ShowCrop(out)
	}
	return path, nil
}

// ToggleOverlay shows or hides the grips and rectangle.
func (p *CropPresenter) ToggleOverlay() {
	if p == nil || p.ctrl == nil {
		return
	}
	p.ctrl.SetVisible(!p.ctrl.Visible())
	if p.ctrl.Visible() {
		p.Refresh()
	} else {
		p.setStatus("Overlay hidden")
	}
}

// ZoomToggle switches zoom keeping the centre of the viewport in place.
func (p *CropPresenter) ZoomToggle() {
	if p == nil || p.ctrl == nil {
		return
	}
	rel := crop.Pt(0.5, 0.5)
	if p.viewport != nil {
		off, vis := p.viewport.Offset(), p.viewport.VisibleSize()
		size, scale := p.ctrl.ImageSize(), p.ctrl.Scale()
		rel = crop.Pt(
			min((float64(off.X)+float64(vis.X)/2)/(float64(size.X)*scale), 1),
			min((float64(off.Y)+float64(vis.Y)/2)/(float64(size.Y)*scale), 1),
		)
	}
	p.ctrl.ToggleZoom(rel)
	p.Refresh()
}

func (p *CropPresenter) describe(r image.Rectangle) string {
	return fmt.Sprintf("Crop %d,%d %dx%d  zoom %.0f%%", r.Min.X, r.Min.Y, r.Dx(), r.Dy(), p.ctrl.Scale()*100)
}

func (p *CropPresenter) fail(op string, err error) {
	if p.logger != nil {
		p.logger.Error("export failed", "op", op, "error", err)
	}
	p.setStatus(fmt.Sprintf("Export failed: %v", err))
}

func (p *CropPresenter) setStatus(text string) {
	if p.view != nil {
		p.view.SetStatus(text)
	}
}
