package config

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_ClampsInvalid(t *testing.T) {
	c := &Config{ViewportW: 5, ViewportH: -1, JPEGQuality: 400, LastCropX: -3, LastCropW: 10, LastCropH: 10}
	require.NoError(t, c.Validate())
	require.Equal(t, 800, c.ViewportW)
	require.Equal(t, 600, c.ViewportH)
	require.Equal(t, 40, c.ScrollStep)
	require.Equal(t, "crop.png", c.OutputPath)
	require.Equal(t, 90, c.JPEGQuality)
	require.True(t, c.LastCrop().Empty())
}

func TestLastCrop_RoundTrip(t *testing.T) {
	c := DefaultConfig()
	require.True(t, c.LastCrop().Empty())

	c.SetLastCrop(image.Rect(10, 20, 110, 70))
	require.Equal(t, 100, c.LastCropW)
	require.Equal(t, 50, c.LastCropH)
	require.Equal(t, image.Rect(10, 20, 110, 70), c.LastCrop())

	c.SetLastCrop(image.Rectangle{})
	require.True(t, c.LastCrop().Empty())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	c := DefaultConfig()
	c.ViewportW = 1024
	c.OutputPath = "out/region.jpg"
	c.SetLastCrop(image.Rect(1, 2, 3, 4))
	require.NoError(t, c.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, c, got)
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	cfg, err := Load(path)
	require.Error(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}
