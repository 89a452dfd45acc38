package capture

import (
	"image"
	"log/slog"

	"github.com/soocke/gripcrop/assets"
	"github.com/soocke/gripcrop/ui/images"
)

// SampleSize is the size of the built-in image used when no source is given.
var SampleSize = image.Pt(1600, 1200)

// SourceOptions selects where the image to crop comes from. ImagePath wins
// over Screenshot; Region limits a screenshot to a WxH+X+Y geometry.
type SourceOptions struct {
	ImagePath  string
	Screenshot bool
	Region     string
}

// Source is an opened crop source.
type Source struct {
	Image image.Image
	// Name describes the origin for titles and logs.
	Name string
}

// Open resolves opts to an image.
func Open(opts SourceOptions, logger *slog.Logger) (*Source, error) {
	switch {
	case opts.ImagePath != "":
		img, err := images.Load(opts.ImagePath)
		if err != nil {
			return nil, err
		}
		return &Source{Image: img, Name: opts.ImagePath}, nil
	case opts.Screenshot && opts.Region != "":
		r, err := ParseGeometry(opts.Region)
		if err != nil {
			return nil, err
		}
		img, err := GrabRect(r)
		if err != nil {
			return nil, err
		}
		return &Source{Image: img, Name: "screenshot " + opts.Region}, nil
	case opts.Screenshot:
		img, err := Grab()
		if err != nil {
			return nil, err
		}
		return &Source{Image: img, Name: "screenshot"}, nil
	default:
		if logger != nil {
			logger.Info("no source given, using sample image", "w", SampleSize.X, "h", SampleSize.Y)
		}
		return &Source{Image: assets.SampleImage(SampleSize.X, SampleSize.Y), Name: "sample"}, nil
	}
}
