package tinychart

import (
	"fmt"
	"strings"
)

type Style int

const (
	StyleBlack Style = iota
	StylePaper
	StyleCake
)

func ParseStyle(str string) (Style, error) {
	switch strings.ToLower(str) {
	case "", "black":
		return StyleBlack, nil
	case "paper":
		return StylePaper, nil
	case "cake":
		return StyleCake, nil
	default:
		return StyleBlack, fmt.Errorf("%s: unknown style", str)
	}
}

func (s Style) String() string {
	switch s {
	case StylePaper:
		return "paper"
	case StyleCake:
		return "cake"
	default:
		return "black"
	}
}

// Palette is the set of colors a Style stands for. Draw is used for the frame,
// the axes and the text; Draw2 for the data marks.
type Palette struct {
	Background Color
	Draw       Color
	Draw2      Color
	Fill       bool
}

// Resolve gives the palette of a style. Unknown styles resolve to the palette
// of StyleBlack.
func Resolve(s Style) Palette {
	switch s {
	case StylePaper:
		return Palette{
			Background: Paper,
			Draw:       BlueInk,
			Draw2:      BlueInk,
		}
	case StyleCake:
		return Palette{
			Background: CakePink,
			Draw:       BlueInk,
			Draw2:      CakeBlue,
			Fill:       true,
		}
	default:
		return Palette{
			Background: Black,
			Draw:       White,
			Draw2:      White,
		}
	}
}

// CanvasStyle describes the canvas of a chart: its geometry, its colors and
// what is drawn around the data.
type CanvasStyle struct {
	X       int
	Y       int
	Width   int
	Height  int
	Padding int
	Radius  int

	Palette
	TextSize int

	Axis struct {
		X bool
		Y bool
	}
	Labels struct {
		X bool
		Y bool
	}
	Div struct {
		X int
		Y int
	}
}

const (
	DefaultWidth    = 128
	DefaultHeight   = 128
	DefaultPadding  = 10
	DefaultRadius   = 5
	DefaultTextSize = 1
)

// DefaultCanvasStyle returns the style used when no option is given to New.
func DefaultCanvasStyle() CanvasStyle {
	cs := CanvasStyle{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Padding:  DefaultPadding,
		Radius:   DefaultRadius,
		Palette:  Resolve(StyleBlack),
		TextSize: DefaultTextSize,
	}
	cs.Axis.X = true
	cs.Axis.Y = true
	cs.Labels.X = true
	cs.Labels.Y = true
	return cs
}

// normalize fills the unset fields of a style given in full by the caller. A
// zero Draw2 means the marks use the Draw color.
func (c CanvasStyle) normalize() CanvasStyle {
	if c.Draw2 == 0 {
		c.Draw2 = c.Draw
	}
	if c.TextSize <= 0 {
		c.TextSize = DefaultTextSize
	}
	return c
}
