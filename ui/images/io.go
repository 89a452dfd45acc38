package images

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	// Extra decoders for image.Decode, which imaging.Open relies on.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load decodes the image at path, applying EXIF orientation.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	if s := img.Bounds().Size(); s.X < 1 || s.Y < 1 {
		return nil, fmt.Errorf("image %q is empty", path)
	}
	return img, nil
}

// Save encodes img to path; the format follows the file extension. quality
// only applies to JPEG output. It returns the number of bytes written.
func Save(img image.Image, path string, quality int) (int64, error) {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return 0, fmt.Errorf("output %q: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create dir %q: %w", dir, err)
		}
	}
	var opts []imaging.EncodeOption
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".jpg" || ext == ".jpeg" {
		opts = append(opts, imaging.JPEGQuality(quality))
	}
	if err := imaging.Save(img, path, opts...); err != nil {
		return 0, fmt.Errorf("save %q: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
