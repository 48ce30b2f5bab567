package tinychart

import (
	"go.uber.org/zap"
)

// PlotRegion is the part of the canvas left once the padding is removed. The
// vertical axis grows upward: StartY is the baseline, EndY the top.
type PlotRegion struct {
	StartX int
	StartY int
	EndX   int
	EndY   int
	Width  int
	Height int
}

func computeRegion(cs CanvasStyle) PlotRegion {
	r := PlotRegion{
		StartX: cs.X + cs.Padding,
		EndX:   cs.X + cs.Width - cs.Padding,
		EndY:   cs.Y + cs.Padding,
		StartY: cs.Y + cs.Height - cs.Padding,
	}
	r.Width = r.EndX - r.StartX
	r.Height = r.StartY - r.EndY
	return r
}

// Valid reports whether the region has room to draw anything.
func (r PlotRegion) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

func (r PlotRegion) Center() (int, int) {
	return r.StartX + r.Width/2, r.EndY + r.Height/2
}

type Option func(*Graph)

func WithOrigin(x, y int) Option {
	return func(g *Graph) {
		g.style.X = x
		g.style.Y = y
	}
}

func WithSize(w, h int) Option {
	return func(g *Graph) {
		g.style.Width = w
		g.style.Height = h
	}
}

func WithPadding(p int) Option {
	return func(g *Graph) {
		g.style.Padding = p
	}
}

func WithRadius(r int) Option {
	return func(g *Graph) {
		g.style.Radius = r
	}
}

func WithStyle(s Style) Option {
	return func(g *Graph) {
		g.style.Palette = Resolve(s)
	}
}

// WithCanvasStyle replaces the whole canvas style, geometry included.
func WithCanvasStyle(cs CanvasStyle) Option {
	return func(g *Graph) {
		g.style = cs
	}
}

func WithMarker(m Marker) Option {
	return func(g *Graph) {
		if m != nil {
			g.marker = m
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(g *Graph) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Graph draws bars, lines and pie charts on a region of a Display. Samples are
// never retained between two calls and a Graph must not be used concurrently.
type Graph struct {
	display Display
	style   CanvasStyle
	region  PlotRegion
	title   string
	marker  Marker
	colors  []Color
	logger  *zap.Logger
}

// New prepares a graph and draws its empty canvas.
func New(d Display, opts ...Option) *Graph {
	g := Graph{
		display: d,
		style:   DefaultCanvasStyle(),
		marker:  CircleMarker,
		colors:  Category10,
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(&g)
	}
	g.style = g.style.normalize()
	g.setCanvas()
	g.drawBackground()
	return &g
}

func (g *Graph) Width() int {
	return g.style.Width
}

func (g *Graph) Height() int {
	return g.style.Height
}

func (g *Graph) Region() PlotRegion {
	return g.region
}

func (g *Graph) Style() CanvasStyle {
	return g.style
}

func (g *Graph) Title() string {
	return g.title
}

// SetStyle switches to a predefined palette and redraws the empty canvas.
func (g *Graph) SetStyle(s Style) {
	g.style.Palette = Resolve(s)
	g.setCanvas()
	g.drawBackground()
}

func (g *Graph) SetTitle(str string) {
	g.title = str
	g.drawTitle()
}

func (g *Graph) SetBackground(c Color) {
	g.style.Background = c
	g.setText()
}

// SetDrawColor sets the color of the frame, the axes, the labels and the marks.
func (g *Graph) SetDrawColor(c Color) {
	g.SetDrawColors(c, c)
}

// SetDrawColors sets the color of the frame, axes and labels (primary) apart
// from the color of the marks (secondary).
func (g *Graph) SetDrawColors(primary, secondary Color) {
	g.style.Draw = primary
	g.style.Draw2 = secondary
	g.setText()
}

// SetSliceColors sets the colors cycled through by the wedges of a pie chart.
func (g *Graph) SetSliceColors(colors []Color) {
	if len(colors) == 0 {
		return
	}
	g.colors = append([]Color(nil), colors...)
}

func (g *Graph) SliceColors() []Color {
	return g.colors
}

func (g *Graph) SetAxisDiv(x, y int) {
	g.style.Div.X = x
	g.style.Div.Y = y
}

func (g *Graph) SetAxisVisible(x, y bool) {
	g.style.Axis.X = x
	g.style.Axis.Y = y
}

func (g *Graph) SetLabelsVisible(x, y bool) {
	g.style.Labels.X = x
	g.style.Labels.Y = y
}

func (g *Graph) SetOrigin(x, y int) {
	g.style.X = x
	g.style.Y = y
	g.setRegion()
}

func (g *Graph) SetSize(w, h int) {
	g.style.Width = w
	g.style.Height = h
	g.setRegion()
}

func (g *Graph) SetPadding(p int) {
	g.style.Padding = p
	g.setRegion()
}

func (g *Graph) SetRadius(r int) {
	g.style.Radius = r
	g.setRegion()
}

func (g *Graph) setCanvas() {
	g.setText()
	g.setRegion()
}

func (g *Graph) setText() {
	g.display.SetTextSize(g.style.TextSize)
	g.display.SetTextColor(g.style.Draw, g.style.Background)
}

func (g *Graph) setRegion() {
	g.region = computeRegion(g.style)
	if !g.region.Valid() {
		g.logger.Debug("plot region is empty",
			zap.Int("padding", g.style.Padding),
			zap.Int("width", g.style.Width),
			zap.Int("height", g.style.Height),
		)
	}
}

func (g *Graph) drawFrame() {
	cs := g.style
	g.display.FillRoundRect(cs.X, cs.Y, cs.Width, cs.Height, cs.Radius, cs.Background)
	if !cs.Fill {
		g.display.DrawRoundRect(cs.X, cs.Y, cs.Width, cs.Height, cs.Radius, cs.Draw)
	}
}

func (g *Graph) drawAxis() {
	r := g.region
	if !r.Valid() {
		return
	}
	if g.style.Axis.Y {
		g.display.DrawLine(r.StartX, r.StartY, r.StartX, r.EndY, g.style.Draw)
	}
	if g.style.Axis.X {
		g.display.DrawLine(r.StartX, r.StartY, r.EndX, r.StartY, g.style.Draw)
	}
}

func (g *Graph) drawBackground() {
	g.drawFrame()
	g.drawAxis()
}

func (g *Graph) drawTitle() {
	if g.title == "" {
		return
	}
	g.display.DrawString(g.title, g.style.X+g.style.Padding*2, g.style.Y+g.style.Padding)
}
