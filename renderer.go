package tinychart

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/midbel/slices"
	"go.uber.org/zap"
)

const (
	chartBars  = "bars"
	chartLines = "lines"
	chartPie   = "pie"
)

// Bars draws one bar per value, in the given order. The range of the bars goes
// from 0, or the lowest value when negative, to the highest value. So equal
// positive values give bars of the full plot height, while equal values that
// are zero or negative give a range of zero span and no bar is drawn.
func (g *Graph) Bars(values []float64) {
	values = truncate(values)
	rg := Bounds(values)
	if rg.F > 0 {
		rg.F = 0
	}
	g.bars(values, rg)
}

// BarsWithin draws the bars with an explicit range. Values outside of the range
// are clamped to the baseline or the top of the plot region.
func (g *Graph) BarsWithin(values []float64, lo, hi float64) {
	g.bars(truncate(values), NewRange(lo, hi))
}

func (g *Graph) bars(values []float64, rg Range) {
	g.prepare()
	if !g.region.Valid() {
		g.skip(chartBars, "empty plot region")
		return
	}
	if len(values) == 0 {
		g.skip(chartBars, "no samples")
		return
	}
	slot := SlotWidth(g.region.Width, len(values))
	if slot == 0 {
		g.skip(chartBars, "no room for slots", zap.Int("samples", len(values)))
		return
	}
	sy, ok := NewScaler(rg, g.region.Height)
	if !ok {
		g.skip(chartBars, "zero span range", zap.Float64("min", rg.F), zap.Float64("max", rg.T))
		return
	}
	for i, v := range values {
		h := sy.Scale(v)
		if h == 0 {
			continue
		}
		x := g.region.StartX + slotOffset(i, slot)
		if g.style.Fill {
			g.display.FillRect(x, g.region.StartY-h, slot, h, g.style.Draw2)
		} else {
			g.display.DrawRect(x, g.region.StartY-h, slot, h, g.style.Draw2)
		}
	}
	g.drawLabelsX(LabelsX(g.region, slot, len(values), g.style.Div.X, nil))
	g.drawLabelsY(LabelsY(g.region, sy, g.style.Div.Y))
}

// Lines joins the points formed by xs and ys from left to right. The range of
// the vertical axis is given by the lowest and highest values of ys.
func (g *Graph) Lines(xs, ys []float64) {
	points := Pair(xs, ys)
	g.lines(points, Bounds(valuesY(points)))
}

func (g *Graph) LinesWithin(xs, ys []float64, lo, hi float64) {
	g.lines(Pair(xs, ys), NewRange(lo, hi))
}

func (g *Graph) lines(points []Point, rg Range) {
	g.prepare()
	if !g.region.Valid() {
		g.skip(chartLines, "empty plot region")
		return
	}
	if len(points) == 0 {
		g.skip(chartLines, "no samples")
		return
	}
	sy, ok := NewScaler(rg, g.region.Height)
	if !ok {
		g.skip(chartLines, "zero span range", zap.Float64("min", rg.F), zap.Float64("max", rg.T))
		return
	}
	slot := SlotWidth(g.region.Width, len(points))
	if slot == 0 {
		g.skip(chartLines, "no room for slots", zap.Int("samples", len(points)))
		return
	}
	points = SortPoints(points)

	px, py := g.linePosition(0, slot, sy, slices.Fst(points))
	for i, pt := range slices.Rest(points) {
		x, y := g.linePosition(i+1, slot, sy, pt)
		g.display.DrawLine(px, py, x, y, g.style.Draw2)
		px, py = x, y
	}
	for i, pt := range points {
		x, y := g.linePosition(i, slot, sy, pt)
		g.marker(g.display, x, y, MarkerRadius, g.style.Draw2, g.style.Fill)
	}

	xs := make([]float64, len(points))
	for i := range points {
		xs[i] = points[i].X
	}
	g.drawLabelsX(LabelsX(g.region, slot, len(points), g.style.Div.X, xs))
	g.drawLabelsY(LabelsY(g.region, sy, g.style.Div.Y))
}

func (g *Graph) linePosition(i, slot int, sy Scaler, pt Point) (int, int) {
	var (
		x = g.region.StartX + slotOffset(i, slot) + slot/2
		y = g.region.StartY - sy.Scale(pt.Y)
	)
	return x, y
}

// Pie draws one wedge per percentage. Nothing but the canvas and the title is
// drawn when the percentages do not add up to exactly 100. labels is optional
// and may be shorter than percent. As for the other charts, the axes are drawn
// when the style enables them.
func (g *Graph) Pie(percent []int, labels []string) {
	g.prepare()
	if len(percent) > MaxSamples {
		percent = percent[:MaxSamples]
	}
	parts, ok := PieSlices(percent)
	if !ok {
		g.skip(chartPie, "percentages do not sum to 100", zap.Int("sum", sumPercent(percent)))
		return
	}
	radius := min(g.region.Width, g.region.Height) / 2
	if !g.region.Valid() || radius <= 0 {
		g.skip(chartPie, "empty plot region")
		return
	}
	var (
		cx, cy = g.region.Center()
		outer  = float32(radius) * labelRadius
		size   = g.style.TextSize
	)
	for i, s := range parts {
		g.drawWedge(cx, cy, radius, s, g.colors[i%len(g.colors)])

		x, y := polar(cx, cy, outer, s.Mid())
		g.display.DrawNumber(s.Percent, x, y)
		if i < len(labels) && labels[i] != "" {
			g.display.DrawString(labels[i], x, y+glyphHeight*size)
		}
	}
}

const (
	fullcircle    = 2 * math.Pi
	degree        = math.Pi / 180
	radPerPercent = fullcircle / 100
	labelRadius   = 1.1
)

// Slice is the angular span, in radians, of one wedge of a pie chart.
type Slice struct {
	Percent int
	Start   float32
	End     float32
}

func (s Slice) Sweep() float32 {
	return s.End - s.Start
}

func (s Slice) Mid() float32 {
	return (s.Start + s.End) / 2
}

// Triangles gives the number of one degree wide triangles needed to fill the
// wedge. The last one may be narrower.
func (s Slice) Triangles() int {
	n := math32.Ceil(s.Sweep()/degree - 1e-3)
	if n < 0 {
		return 0
	}
	return int(n)
}

// PieSlices computes the span of each wedge. It fails when a percentage is
// negative or when they do not sum to 100.
func PieSlices(percent []int) ([]Slice, bool) {
	if len(percent) == 0 || sumPercent(percent) != 100 {
		return nil, false
	}
	var (
		list = make([]Slice, 0, len(percent))
		acc  int
	)
	for _, p := range percent {
		if p < 0 {
			return nil, false
		}
		s := Slice{
			Percent: p,
			Start:   float32(acc) * radPerPercent,
			End:     float32(acc+p) * radPerPercent,
		}
		list = append(list, s)
		acc += p
	}
	return list, true
}

func (g *Graph) drawWedge(cx, cy, radius int, s Slice, c Color) {
	r := float32(radius)
	for i, n := 0, s.Triangles(); i < n; i++ {
		var (
			a = s.Start + float32(i)*degree
			b = math32.Min(a+degree, s.End)
		)
		x0, y0 := polar(cx, cy, r, a)
		x1, y1 := polar(cx, cy, r, b)
		g.display.FillTriangle(cx, cy, x0, y0, x1, y1, c)
	}
}

func polar(cx, cy int, radius, angle float32) (int, int) {
	sin, cos := math32.Sincos(angle)
	var (
		x = cx + int(math32.Round(radius*cos))
		y = cy + int(math32.Round(radius*sin))
	)
	return x, y
}

func sumPercent(percent []int) int {
	var sum int
	for _, p := range percent {
		sum += p
	}
	return sum
}

func (g *Graph) prepare() {
	g.drawBackground()
	g.drawTitle()
}

func (g *Graph) skip(chart, reason string, fields ...zap.Field) {
	fields = append(fields, zap.String("chart", chart), zap.String("reason", reason))
	g.logger.Debug("chart not drawn", fields...)
}

func truncate(values []float64) []float64 {
	if len(values) > MaxSamples {
		return values[:MaxSamples]
	}
	return values
}
