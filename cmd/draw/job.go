package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/tinychart"
	"github.com/midbel/tinychart/config"
	"github.com/midbel/tinychart/raster"
	"github.com/midbel/tinychart/svgdisplay"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	chartBars  = "bars"
	chartLines = "lines"
	chartPie   = "pie"
)

const (
	formatSVG = "svg"
	formatPNG = "png"
)

type Bounds struct {
	Min float64
	Max float64
}

// Job renders CSV files with the same canvas configuration.
type Job struct {
	Kind   string
	Format string
	Output string

	XCol   int
	YCol   int
	LabCol int
	Bounds *Bounds

	Config   config.Config
	Override func(*config.Config)
	Logger   *zap.Logger
	Watched  string
}

func (j Job) Validate() error {
	switch j.Kind {
	case chartBars, chartLines, chartPie:
	default:
		return errors.Errorf("%s: unsupported chart type", j.Kind)
	}
	switch j.Format {
	case formatSVG, formatPNG:
	default:
		return errors.Errorf("%s: unsupported format", j.Format)
	}
	return nil
}

// RenderAll renders every file concurrently, each one on its own surface.
func (j Job) RenderAll(ctx context.Context, files []string) error {
	if j.Output != "" && len(files) > 1 {
		return errors.New("output file can only be given with one input file")
	}
	grp, ctx := errgroup.WithContext(ctx)
	for _, f := range files {
		f := f
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return j.Render(f)
		})
	}
	return grp.Wait()
}

func (j Job) Render(file string) error {
	xcol := j.XCol
	if j.Kind == chartPie {
		xcol = -1
	}
	data, err := readData(file, xcol, j.YCol, j.LabCol)
	if err != nil {
		return err
	}
	var (
		out     = j.outputName(file)
		surface = j.newSurface()
		logger  = j.logger().With(zap.String("file", file))
	)
	g, err := j.Config.Build(surface, tinychart.WithLogger(logger))
	if err != nil {
		return err
	}
	j.draw(g, data)

	w, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "create %s", out)
	}
	defer w.Close()
	if err := surface.Encode(w); err != nil {
		return errors.Wrapf(err, "write %s", out)
	}
	logger.Info("chart rendered",
		zap.String("chart", j.Kind),
		zap.String("output", out),
		zap.Int("samples", len(data.Y)),
	)
	return nil
}

func (j Job) draw(g *tinychart.Graph, data Data) {
	switch j.Kind {
	case chartBars:
		if j.Bounds != nil {
			g.BarsWithin(data.Y, j.Bounds.Min, j.Bounds.Max)
		} else {
			g.Bars(data.Y)
		}
	case chartLines:
		if j.Bounds != nil {
			g.LinesWithin(data.X, data.Y, j.Bounds.Min, j.Bounds.Max)
		} else {
			g.Lines(data.X, data.Y)
		}
	case chartPie:
		g.Pie(data.Percent(), data.Labels)
	}
}

func (j Job) outputName(file string) string {
	if j.Output != "" {
		return j.Output
	}
	return strings.TrimSuffix(file, filepath.Ext(file)) + "." + j.Format
}

func (j Job) logger() *zap.Logger {
	if j.Logger == nil {
		return zap.NewNop()
	}
	return j.Logger
}

type surface interface {
	tinychart.Display
	Encode(io.Writer) error
}

type svgSurface struct {
	*svgdisplay.Display
}

func (s svgSurface) Encode(w io.Writer) error {
	return s.Render(w)
}

type pngSurface struct {
	*raster.Framebuffer
}

func (s pngSurface) Encode(w io.Writer) error {
	return s.EncodePNG(w)
}

func (j Job) newSurface() surface {
	var (
		w = j.Config.X + j.Config.Width
		h = j.Config.Y + j.Config.Height
	)
	if j.Format == formatPNG {
		return pngSurface{raster.New(w, h)}
	}
	return svgSurface{svgdisplay.New(w, h)}
}
