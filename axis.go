package tinychart

import (
	"math"
	"strconv"
)

// size of a glyph of the builtin font of the panels at text size 1.
const (
	glyphWidth  = 6
	glyphHeight = 8
	labelGap    = 2
)

// Label is a tick of an axis: X, Y is the point on the axis the label refers to.
type Label struct {
	X     int
	Y     int
	Value int
}

// LabelsX places a label every div slots, starting at the center of the first
// slot. The label shows the index of the slot unless values is given.
func LabelsX(r PlotRegion, slot, n, div int, values []float64) []Label {
	if div <= 0 || slot <= 0 || n <= 0 {
		return nil
	}
	var (
		list []Label
		step = (slot + 1) * div
		x    = r.StartX + slotOffset(0, slot) + slot/2
	)
	for i := 0; i < n; i += div {
		lb := Label{
			X:     x,
			Y:     r.StartY,
			Value: i,
		}
		if i < len(values) {
			lb.Value = int(math.Round(values[i]))
		}
		list = append(list, lb)
		x += step
	}
	return list
}

// LabelsY places a label every div units of the scaler, starting at its lower
// bound. No more labels than pixel rows are returned.
func LabelsY(r PlotRegion, sy Scaler, div int) []Label {
	if div <= 0 || sy.Degenerate() {
		return nil
	}
	c := math.Min(math.Floor(sy.Len()/float64(div)), float64(max(r.Height, 0)))
	if math.IsNaN(c) {
		return nil
	}
	count := int(c)
	list := make([]Label, 0, count+1)
	for i := 0; i <= count; i++ {
		v := sy.Min() + float64(i)*float64(div)
		list = append(list, Label{
			X:     r.StartX,
			Y:     r.StartY - sy.Scale(v),
			Value: int(math.Round(v)),
		})
	}
	return list
}

func (g *Graph) drawLabelsX(list []Label) {
	if !g.style.Labels.X {
		return
	}
	size := g.style.TextSize
	for _, lb := range list {
		w := textWidth(lb.Value, size)
		g.display.DrawNumber(lb.Value, lb.X-w/2, lb.Y+labelGap)
	}
}

func (g *Graph) drawLabelsY(list []Label) {
	if !g.style.Labels.Y {
		return
	}
	var (
		size = g.style.TextSize
		half = glyphHeight * size / 2
	)
	for _, lb := range list {
		w := textWidth(lb.Value, size)
		g.display.DrawLine(lb.X-labelGap, lb.Y, lb.X-1, lb.Y, g.style.Draw)
		g.display.DrawNumber(lb.Value, lb.X-labelGap-w-1, lb.Y-half)
	}
}

func textWidth(n, size int) int {
	return len(strconv.Itoa(n)) * glyphWidth * size
}
