// Package capture provides the source images for a crop session: files,
// screenshots and the built-in sample.
package capture

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// Grab returns a screen capture of the current active monitor.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	return img, nil
}

// GrabRect captures only r, clipped to the screen. An area outside the
// screen is an error.
func GrabRect(r image.Rectangle) (*image.RGBA, error) {
	screen, err := screenshot.ScreenRect()
	if err != nil {
		return nil, fmt.Errorf("screen bounds: %w", err)
	}
	area, err := clip(r, screen)
	if err != nil {
		return nil, err
	}
	img, err := screenshot.CaptureRect(area)
	if err != nil {
		return nil, fmt.Errorf("capture %v: %w", area, err)
	}
	return img, nil
}

func clip(r, screen image.Rectangle) (image.Rectangle, error) {
	area := r.Canon().Intersect(screen)
	if area.Empty() {
		return image.Rectangle{}, fmt.Errorf("capture area %v outside screen %v", r, screen)
	}
	return area, nil
}
