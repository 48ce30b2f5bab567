// Package svgdisplay implements a tinychart.Display that keeps every primitive
// as an SVG element, handy to look at a chart without a panel at hand.
package svgdisplay

import (
	"bufio"
	"io"
	"strconv"

	"github.com/midbel/svg"
	"github.com/midbel/tinychart"
	"github.com/pkg/errors"
)

// FontSize is the height, in pixels, of the text at size 1.
const FontSize = 8.0

const rendering = "crispEdges"

type Display struct {
	width  int
	height int

	fg   tinychart.Color
	bg   tinychart.Color
	size int

	elements []svg.Element
}

func New(width, height int) *Display {
	return &Display{
		width:  width,
		height: height,
		fg:     tinychart.White,
		bg:     tinychart.Black,
		size:   1,
	}
}

func (d *Display) Len() int {
	return len(d.elements)
}

// Reset forgets all the elements drawn so far.
func (d *Display) Reset() {
	d.elements = d.elements[:0]
}

// Render writes a standalone SVG document.
func (d *Display) Render(w io.Writer) error {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(float64(d.width), float64(d.height))
	for _, e := range d.elements {
		el.Append(e)
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return errors.Wrap(bw.Flush(), "write svg")
}

func (d *Display) FillRoundRect(x, y, w, h, r int, c tinychart.Color) {
	pat := roundRect(x, y, w, h, r)
	pat.Fill = svg.NewFill(c.Hex())
	d.append(pat.AsElement())
}

func (d *Display) DrawRoundRect(x, y, w, h, r int, c tinychart.Color) {
	pat := roundRect(x, y, w, h, r)
	pat.Fill = svg.NewFill("none")
	pat.Stroke = svg.NewStroke(c.Hex(), 1)
	d.append(pat.AsElement())
}

func (d *Display) DrawLine(x0, y0, x1, y1 int, c tinychart.Color) {
	li := svg.NewLine(pos(x0, y0), pos(x1, y1))
	li.Stroke = svg.NewStroke(c.Hex(), 1)
	d.append(li.AsElement())
}

func (d *Display) FillRect(x, y, w, h int, c tinychart.Color) {
	var el svg.Rect
	el.Pos = pos(x, y)
	el.Dim = svg.NewDim(float64(w), float64(h))
	el.Fill = svg.NewFill(c.Hex())
	d.append(el.AsElement())
}

func (d *Display) DrawRect(x, y, w, h int, c tinychart.Color) {
	var pat svg.Path
	pat.Rendering = rendering
	pat.Fill = svg.NewFill("none")
	pat.Stroke = svg.NewStroke(c.Hex(), 1)
	pat.AbsMoveTo(pos(x, y))
	pat.AbsLineTo(pos(x+w, y))
	pat.AbsLineTo(pos(x+w, y+h))
	pat.AbsLineTo(pos(x, y+h))
	pat.ClosePath()
	d.append(pat.AsElement())
}

func (d *Display) FillCircle(x, y, r int, c tinychart.Color) {
	var el svg.Circle
	el.Pos = pos(x, y)
	el.Radius = float64(r)
	el.Fill = svg.NewFill(c.Hex())
	d.append(el.AsElement())
}

func (d *Display) DrawCircle(x, y, r int, c tinychart.Color) {
	var (
		grp svg.Group
		el  svg.Circle
	)
	el.Pos = pos(x, y)
	el.Radius = float64(r)
	el.Fill = svg.NewFill("none")
	grp.Stroke = svg.NewStroke(c.Hex(), 1)
	grp.Append(el.AsElement())
	d.append(grp.AsElement())
}

func (d *Display) FillTriangle(x0, y0, x1, y1, x2, y2 int, c tinychart.Color) {
	var pat svg.Path
	pat.Rendering = rendering
	pat.Fill = svg.NewFill(c.Hex())
	pat.AbsMoveTo(pos(x0, y0))
	pat.AbsLineTo(pos(x1, y1))
	pat.AbsLineTo(pos(x2, y2))
	pat.ClosePath()
	d.append(pat.AsElement())
}

func (d *Display) DrawNumber(n, x, y int) {
	d.DrawString(strconv.Itoa(n), x, y)
}

// DrawString writes str with its top left corner at x, y. The background color
// set with SetTextColor is ignored.
func (d *Display) DrawString(str string, x, y int) {
	var grp svg.Group
	grp.Fill = svg.NewFill(d.fg.Hex())

	txt := svg.NewText(str)
	txt.Pos = pos(x, y)
	txt.Font = svg.NewFont(FontSize * float64(d.size))
	txt.Baseline = "hanging"
	grp.Append(txt.AsElement())
	d.append(grp.AsElement())
}

func (d *Display) SetTextColor(fg, bg tinychart.Color) {
	d.fg = fg
	d.bg = bg
}

func (d *Display) SetTextSize(size int) {
	if size <= 0 {
		size = 1
	}
	d.size = size
}

func (d *Display) append(el svg.Element) {
	d.elements = append(d.elements, el)
}

func roundRect(x, y, w, h, r int) svg.Path {
	r = min(r, w/2, h/2)
	if r < 0 {
		r = 0
	}
	var (
		pat    svg.Path
		radius = float64(r)
	)
	pat.Rendering = rendering
	pat.AbsMoveTo(pos(x+r, y))
	pat.AbsLineTo(pos(x+w-r, y))
	pat.AbsArcTo(pos(x+w, y+r), radius, radius, 0, false, true)
	pat.AbsLineTo(pos(x+w, y+h-r))
	pat.AbsArcTo(pos(x+w-r, y+h), radius, radius, 0, false, true)
	pat.AbsLineTo(pos(x+r, y+h))
	pat.AbsArcTo(pos(x, y+h-r), radius, radius, 0, false, true)
	pat.AbsLineTo(pos(x, y+r))
	pat.AbsArcTo(pos(x+r, y), radius, radius, 0, false, true)
	pat.ClosePath()
	return pat
}

func pos(x, y int) svg.Pos {
	return svg.NewPos(float64(x), float64(y))
}
