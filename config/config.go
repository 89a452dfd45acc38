package config

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
)

// Config holds runtime configuration for the crop tool.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Viewport size of the crop canvas in screen pixels.
	ViewportW int `json:"viewport_w"`
	ViewportH int `json:"viewport_h"`
	// Pixels scrolled per arrow key press.
	ScrollStep int `json:"scroll_step"`

	// Export
	OutputPath  string `json:"output_path"`
	JPEGQuality int    `json:"jpeg_quality"`
	DarkMode    bool   `json:"dark_mode"`

	// Last confirmed crop rectangle in image pixels (width/height 0 = none).
	LastCropX int `json:"last_crop_x"`
	LastCropY int `json:"last_crop_y"`
	LastCropW int `json:"last_crop_w"`
	LastCropH int `json:"last_crop_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:       false,
		ViewportW:   800,
		ViewportH:   600,
		ScrollStep:  40,
		OutputPath:  "crop.png",
		JPEGQuality: 90,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.ViewportW < 100 {
		c.ViewportW = 800
	}
	if c.ViewportH < 100 {
		c.ViewportH = 600
	}
	if c.ScrollStep <= 0 {
		c.ScrollStep = 40
	}
	if c.OutputPath == "" {
		c.OutputPath = "crop.png"
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = 90
	}
	if c.LastCropW < 0 || c.LastCropH < 0 || c.LastCropX < 0 || c.LastCropY < 0 {
		c.LastCropX, c.LastCropY, c.LastCropW, c.LastCropH = 0, 0, 0, 0
	}
	return nil
}

// Viewport returns the configured viewport size.
func (c *Config) Viewport() image.Point { return image.Pt(c.ViewportW, c.ViewportH) }

// LastCrop returns the persisted crop rectangle, or an empty one.
func (c *Config) LastCrop() image.Rectangle {
	if c.LastCropW <= 0 || c.LastCropH <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(c.LastCropX, c.LastCropY, c.LastCropX+c.LastCropW, c.LastCropY+c.LastCropH)
}

// SetLastCrop stores r; an empty rectangle clears it.
func (c *Config) SetLastCrop(r image.Rectangle) {
	if r.Empty() {
		c.LastCropX, c.LastCropY, c.LastCropW, c.LastCropH = 0, 0, 0, 0
		return
	}
	c.LastCropX, c.LastCropY = r.Min.X, r.Min.Y
	c.LastCropW, c.LastCropH = r.Dx(), r.Dy()
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode config %q: %w", path, err)
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
