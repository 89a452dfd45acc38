package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/soocke/gripcrop/app"
	"github.com/soocke/gripcrop/capture"
	"github.com/soocke/gripcrop/config"
)

func main() {
	a := cli.NewApp()
	a.Name = "gripcrop"
	a.Usage = "Select a region of an image with two grips and export it"
	a.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "gripcrop.json",
			Usage: "Path of the JSON config file",
		},
		&cli.StringFlag{
			Name:    "image",
			Aliases: []string{"i"},
			Usage:   "Image file to crop",
		},
		&cli.BoolFlag{
			Name:  "screenshot",
			Usage: "Crop a screenshot of the current screen",
		},
		&cli.StringFlag{
			Name:  "region",
			Usage: "Limit --screenshot to a WxH+X+Y area",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Where Save writes the crop; the extension picks the format",
		},
		&cli.IntFlag{
			Name:  "quality",
			Usage: "JPEG quality (1-100)",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	a.Action = run

	if err := a.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfgPath := c.String("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if c.IsSet("quality") {
		cfg.JPEGQuality = c.Int("quality")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	_ = cfg.Validate()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level).With("session", uuid.NewString())

	src, err := capture.Open(capture.SourceOptions{
		ImagePath:  c.String("image"),
		Screenshot: c.Bool("screenshot"),
		Region:     c.String("region"),
	}, logger)
	if err != nil {
		return err
	}

	application := app.NewApp("Grip Crop", cfg, cfgPath, src, logger)
	application.Start()
	return nil
}
