package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/midbel/tinychart/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	var (
		kind    = flag.String("type", chartBars, "chart type (bars, lines, pie)")
		file    = flag.String("config", "", "canvas configuration file (yaml or toml)")
		style   = flag.String("style", "", "predefined style (black, paper, cake)")
		title   = flag.String("title", "", "chart title")
		width   = flag.Int("width", 0, "canvas width")
		height  = flag.Int("height", 0, "canvas height")
		padding = flag.Int("padding", -1, "canvas padding")
		xcol    = flag.Int("xcol", 0, "index of x column")
		ycol    = flag.Int("ycol", 1, "index of y column")
		lcol    = flag.Int("label", -1, "index of label column (pie)")
		lower   = flag.String("min", "", "lower bound of the vertical axis")
		upper   = flag.String("max", "", "upper bound of the vertical axis")
		format  = flag.String("format", formatSVG, "output format (svg, png)")
		output  = flag.String("file", "", "output file")
		watch   = flag.Bool("watch", false, "render again when an input changes")
		verbose = flag.Bool("verbose", false, "verbose logging")
	)
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "no input files given")
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.Default()
	if *file != "" {
		if cfg, err = config.Load(*file); err != nil {
			logger.Error("fail loading configuration", zap.Error(err))
			os.Exit(1)
		}
	}
	apply := func(c *config.Config) {
		override(c, *style, *title, *width, *height, *padding)
	}
	apply(&cfg)

	job := Job{
		Kind:     *kind,
		Format:   *format,
		Output:   *output,
		XCol:     *xcol,
		YCol:     *ycol,
		LabCol:   *lcol,
		Config:   cfg,
		Override: apply,
		Logger:   logger,
		Watched:  *file,
	}
	if job.Bounds, err = parseBounds(*lower, *upper); err != nil {
		logger.Error("invalid bounds", zap.Error(err))
		os.Exit(1)
	}
	if err := job.Validate(); err != nil {
		logger.Error("invalid arguments", zap.Error(err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := job.RenderAll(ctx, flag.Args()); err != nil {
		logger.Error("fail rendering chart", zap.Error(err))
		os.Exit(2)
	}
	if !*watch {
		return
	}
	if err := job.Watch(ctx, flag.Args()); err != nil {
		logger.Error("fail watching inputs", zap.Error(err))
		os.Exit(2)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func override(cfg *config.Config, style, title string, width, height, padding int) {
	if style != "" {
		cfg.Style = style
	}
	if title != "" {
		cfg.Title = title
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if padding >= 0 {
		cfg.Padding = padding
	}
}

func parseBounds(lower, upper string) (*Bounds, error) {
	if lower == "" && upper == "" {
		return nil, nil
	}
	var (
		b   Bounds
		err error
	)
	if lower != "" {
		if b.Min, err = strconv.ParseFloat(lower, 64); err != nil {
			return nil, errors.Wrapf(err, "min %s", lower)
		}
	}
	if upper == "" {
		return nil, errors.New("max is required when min is given")
	}
	if b.Max, err = strconv.ParseFloat(upper, 64); err != nil {
		return nil, errors.Wrapf(err, "max %s", upper)
	}
	return &b, nil
}
