package app

import (
	"image"
	"log/slog"

	"github.com/soocke/gripcrop/capture"
	"github.com/soocke/gripcrop/config"
	"github.com/soocke/gripcrop/domain/crop"
	"github.com/soocke/gripcrop/ui/canvas"
	"github.com/soocke/gripcrop/ui/model"
	"github.com/soocke/gripcrop/ui/presenter"
	"github.com/soocke/gripcrop/ui/theme"
	"github.com/soocke/gripcrop/ui/view"
)

// AppContainer assembles the crop session, presenter and root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Source     *capture.Source
	Canvas     *canvas.Canvas
	Handler    *crop.GripHandler
	Crop       *model.CropModel
	RootView   *view.RootView
	UI         view.UI

	// Presenters
	CropPresenter *presenter.CropPresenter
}

// BuildContainer constructs all components. No Tk widgets are created here;
// RootView.Build runs later from the app.
func BuildContainer(cfg *config.Config, cfgPath string, src *capture.Source, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger, Source: src}
	c.Canvas = canvas.New(cfg.Viewport(), logger)
	c.Handler = crop.NewGripHandler(src.Image, c.Canvas, logger)
	c.applyPalette()
	c.Crop = model.NewCropModel()

	// View
	c.RootView = view.NewRootView(logger)
	c.UI = c.RootView

	c.CropPresenter = presenter.NewCropPresenter(c.Handler, c.Crop, c.Canvas, c.UI, src.Image, cfg, cfgPath, logger)
	c.Handler.AddListener(c.CropPresenter.OnGripMoved)
	c.restoreLastCrop()
	return c
}

func (c *AppContainer) applyPalette() {
	c.Canvas.SetBackground(theme.CurrentPalette().Canvas)
	c.Handler.SetPalette(theme.OverlayPalette())
}

// restoreLastCrop moves the grips to the persisted rectangle when it lies
// within the current image.
func (c *AppContainer) restoreLastCrop() {
	r := c.Config.LastCrop()
	if r.Empty() {
		return
	}
	bounds := image.Rectangle{Max: c.Handler.ImageSize()}
	if !r.In(bounds) {
		if c.Logger != nil {
			c.Logger.Info("stored crop does not fit image, ignoring", "rect", r.String(), "image", bounds.String())
		}
		return
	}
	c.Handler.SetCropRectangle(r)
	c.Crop.SetRect(r)
}
