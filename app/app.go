package app

import (
	"fmt"
	"image"
	"log/slog"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/gripcrop/capture"
	"github.com/soocke/gripcrop/config"
	"github.com/soocke/gripcrop/ui/theme"
	"github.com/soocke/gripcrop/ui/view"
)

type app struct {
	title  string
	c      *AppContainer
	logger *slog.Logger
}

// NewApp wires a crop session for src and prepares the main window.
func NewApp(title string, cfg *config.Config, cfgPath string, src *capture.Source, logger *slog.Logger) *app {
	a := &app{title: title, logger: logger}
	a.c = BuildContainer(cfg, cfgPath, src, logger)

	App.WmTitle(fmt.Sprintf("%s - %s", title, src.Name))
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	vp := cfg.Viewport()
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", vp.X+20, vp.Y+60))
	return a
}

// Start builds the UI, shows the overlay and blocks in the Tk event loop.
func (a *app) Start() {
	c := a.c
	theme.SetDark(c.Config.DarkMode)
	c.applyPalette()

	c.RootView.Build(c.Config.Viewport(), view.Actions{
		Save:    a.save,
		Zoom:    c.CropPresenter.ZoomToggle,
		Overlay: c.CropPresenter.ToggleOverlay,
		Theme:   a.toggleTheme,
		Exit:    a.exitHandler,
	})
	cv := c.RootView.Crop
	c.Canvas.OnFrame = func(f *image.RGBA) { cv.ShowFrame(f) }
	c.Canvas.OnCursor = cv.SetCursor
	cv.BindPointer(c.Canvas.Press, c.Canvas.Motion, c.Canvas.Release)
	cv.BindScroll(c.Canvas.ScrollBy, c.Config.ScrollStep)

	c.Handler.SetVisible(true)
	c.CropPresenter.Refresh()
	if a.logger != nil {
		size := c.Handler.ImageSize()
		a.logger.Info("crop session started", "source", c.Source.Name, "w", size.X, "h", size.Y, "scale", c.Handler.Scale())
	}
	App.Wait()
}

func (a *app) save() {
	// errors are already logged and shown by the presenter
	_, _ = a.c.CropPresenter.Save()
}

func (a *app) toggleTheme() {
	dark := theme.ToggleDark()
	a.c.applyPalette()
	a.c.Config.DarkMode = dark
	if a.c.ConfigPath == "" {
		return
	}
	if err := a.c.Config.Save(a.c.ConfigPath); err != nil && a.logger != nil {
		a.logger.Error("persist theme failed", "error", err)
	}
}

func (a *app) exitHandler() {
	if a.logger != nil {
		a.logger.Info("exit", "crop", a.c.Handler.CropRectangle().String())
	}
	a.c.RootView.Crop.Close()
	Destroy(App)
}
