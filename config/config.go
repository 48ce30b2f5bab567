// Package config reads the description of a chart canvas from YAML or TOML
// files.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/tinychart"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

type Toggle struct {
	X bool `yaml:"x" toml:"x"`
	Y bool `yaml:"y" toml:"y"`
}

type Divisions struct {
	X int `yaml:"x" toml:"x"`
	Y int `yaml:"y" toml:"y"`
}

type Config struct {
	File string `yaml:"-" toml:"-"`

	X        int    `yaml:"x" toml:"x"`
	Y        int    `yaml:"y" toml:"y"`
	Width    int    `yaml:"width" toml:"width"`
	Height   int    `yaml:"height" toml:"height"`
	Padding  int    `yaml:"padding" toml:"padding"`
	Radius   int    `yaml:"radius" toml:"radius"`
	TextSize int    `yaml:"text_size" toml:"text_size"`
	Title    string `yaml:"title" toml:"title"`

	Style      string `yaml:"style" toml:"style"`
	Background string `yaml:"background" toml:"background"`
	Color      string `yaml:"color" toml:"color"`
	Secondary  string `yaml:"secondary" toml:"secondary"`
	Marker     string `yaml:"marker" toml:"marker"`

	// Palette names the colors of the pie wedges. Slices, when given, lists
	// them explicitly instead.
	Palette string   `yaml:"palette" toml:"palette"`
	Slices  []string `yaml:"slices" toml:"slices"`

	Divisions Divisions `yaml:"divisions" toml:"divisions"`
	Axis      Toggle    `yaml:"axis" toml:"axis"`
	Labels    Toggle    `yaml:"labels" toml:"labels"`
}

// Default gives the configuration matching the defaults of tinychart.New.
func Default() Config {
	return Config{
		Width:    tinychart.DefaultWidth,
		Height:   tinychart.DefaultHeight,
		Padding:  tinychart.DefaultPadding,
		Radius:   tinychart.DefaultRadius,
		TextSize: tinychart.DefaultTextSize,
		Style:    tinychart.StyleBlack.String(),
		Axis:     Toggle{X: true, Y: true},
		Labels:   Toggle{X: true, Y: true},
	}
}

// Load reads file. Its extension selects the format. Keys missing from the file
// keep their default value.
func Load(file string) (Config, error) {
	r, err := os.Open(file)
	if err != nil {
		return Config{}, errors.Wrapf(err, "open config %s", file)
	}
	defer r.Close()

	format := FormatYAML
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yml", ".yaml":
	case ".toml":
		format = FormatTOML
	default:
		return Config{}, errors.Errorf("%s: unsupported config format", file)
	}
	cfg, err := Decode(r, format)
	if err != nil {
		return cfg, errors.Wrapf(err, "decode config %s", file)
	}
	cfg.File = file
	return cfg, nil
}

func Decode(r io.Reader, format string) (Config, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	cfg := Default()
	switch format {
	case FormatYAML:
		if buf.Len() == 0 {
			return cfg, nil
		}
		if err := yaml.Unmarshal(buf.Bytes(), &cfg); err != nil {
			return cfg, errors.Wrap(err, "yaml")
		}
	case FormatTOML:
		if err := toml.Unmarshal(buf.Bytes(), &cfg); err != nil {
			return cfg, errors.Wrap(err, "toml")
		}
	default:
		return cfg, errors.Errorf("%s: unknown format", format)
	}
	return cfg, nil
}

// CanvasStyle validates the configuration and turns it into a canvas style.
func (c Config) CanvasStyle() (tinychart.CanvasStyle, error) {
	cs := tinychart.DefaultCanvasStyle()
	cs.X = c.X
	cs.Y = c.Y
	cs.Width = c.Width
	cs.Height = c.Height
	cs.Padding = c.Padding
	cs.Radius = c.Radius
	cs.TextSize = c.TextSize
	cs.Axis.X, cs.Axis.Y = c.Axis.X, c.Axis.Y
	cs.Labels.X, cs.Labels.Y = c.Labels.X, c.Labels.Y
	cs.Div.X, cs.Div.Y = c.Divisions.X, c.Divisions.Y

	style, err := tinychart.ParseStyle(c.Style)
	if err != nil {
		return cs, c.optionError("style", c.Style)
	}
	cs.Palette = tinychart.Resolve(style)

	if c.Width <= 0 || c.Height <= 0 {
		return cs, c.optionError("width/height", "not positive")
	}
	if c.Padding < 0 || 2*c.Padding >= min(c.Width, c.Height) {
		return cs, c.optionError("padding", "larger than half the canvas")
	}

	colors := []struct {
		Option string
		Value  string
		Target *tinychart.Color
	}{
		{Option: "background", Value: c.Background, Target: &cs.Background},
		{Option: "color", Value: c.Color, Target: &cs.Draw},
		{Option: "secondary", Value: c.Secondary, Target: &cs.Draw2},
	}
	for _, x := range colors {
		if x.Value == "" {
			continue
		}
		col, err := tinychart.ParseColor(x.Value)
		if err != nil {
			return cs, c.optionError(x.Option, x.Value)
		}
		*x.Target = col
	}
	if c.Color != "" && c.Secondary == "" {
		cs.Draw2 = cs.Draw
	}
	return cs, nil
}

// Build creates a graph drawing on d according to the configuration. Extra
// options are applied last.
func (c Config) Build(d tinychart.Display, opts ...tinychart.Option) (*tinychart.Graph, error) {
	cs, err := c.CanvasStyle()
	if err != nil {
		return nil, err
	}
	marker, err := tinychart.ParseMarker(c.Marker)
	if err != nil {
		return nil, c.optionError("marker", c.Marker)
	}
	colors, err := c.SliceColors()
	if err != nil {
		return nil, err
	}
	list := []tinychart.Option{
		tinychart.WithCanvasStyle(cs),
		tinychart.WithMarker(marker),
	}
	g := tinychart.New(d, append(list, opts...)...)
	g.SetSliceColors(colors)
	if c.Title != "" {
		g.SetTitle(c.Title)
	}
	return g, nil
}

// SliceColors gives the colors of the pie wedges.
func (c Config) SliceColors() ([]tinychart.Color, error) {
	if len(c.Slices) == 0 {
		list, err := tinychart.ParsePalette(c.Palette)
		if err != nil {
			return nil, c.optionError("palette", c.Palette)
		}
		return list, nil
	}
	list := make([]tinychart.Color, 0, len(c.Slices))
	for _, str := range c.Slices {
		col, err := tinychart.ParseColor(str)
		if err != nil {
			return nil, c.optionError("slices", str)
		}
		list = append(list, col)
	}
	return list, nil
}

func (c Config) optionError(option, value string) error {
	return OptionError{
		Option: option,
		Value:  value,
		File:   c.File,
	}
}
