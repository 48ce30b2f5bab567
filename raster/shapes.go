package raster

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/midbel/tinychart"
	"golang.org/x/image/vector"
)

// Shapes are traced as vector paths where the center of pixel (x, y) is at
// (x+0.5, y+0.5). Pixels covered at least by half take the color of the shape,
// the others are left untouched: the panels have no antialiasing.
const threshold = 0x80

// distance of the control points of a cubic curve drawing a quarter of circle
// of radius 1.
const kappa = 0.5522848

// pen accumulates the coverage of the paths of one shape over the area of the
// framebuffer the shape can reach.
type pen struct {
	z    vector.Rasterizer
	mask *image.Alpha
	area image.Rectangle
}

// begin prepares the pen for a shape contained in area. It reports false when
// nothing of area is visible.
func (p *pen) begin(area, bounds image.Rectangle) bool {
	p.area = area.Inset(-1).Intersect(bounds)
	if p.area.Empty() {
		return false
	}
	var (
		dx = p.area.Dx()
		dy = p.area.Dy()
		n  = dx * dy
	)
	if p.mask == nil || cap(p.mask.Pix) < n {
		p.mask = image.NewAlpha(image.Rect(0, 0, dx, dy))
	} else {
		p.mask.Pix = p.mask.Pix[:n]
		p.mask.Stride = dx
		p.mask.Rect = image.Rect(0, 0, dx, dy)
		clear(p.mask.Pix)
	}
	p.z.Reset(dx, dy)
	return true
}

// fill adds the current path to the mask and starts a new one.
func (p *pen) fill() {
	p.z.Draw(p.mask, p.mask.Rect, image.Opaque, image.Point{})
	p.z.Reset(p.area.Dx(), p.area.Dy())
}

func (p *pen) moveTo(x, y float32) {
	p.z.MoveTo(x-float32(p.area.Min.X), y-float32(p.area.Min.Y))
}

func (p *pen) lineTo(x, y float32) {
	p.z.LineTo(x-float32(p.area.Min.X), y-float32(p.area.Min.Y))
}

func (p *pen) cubeTo(x1, y1, x2, y2, x, y float32) {
	var (
		ox = float32(p.area.Min.X)
		oy = float32(p.area.Min.Y)
	)
	p.z.CubeTo(x1-ox, y1-oy, x2-ox, y2-oy, x-ox, y-oy)
}

// outline traces a rectangle with corners rounded by rad. Giving x0 > x1 traces
// the same shape in the other direction, which cuts it out of an enclosing
// outline traced the usual way.
func (p *pen) outline(x0, y0, x1, y1, rad float32) {
	var (
		rx = rad
		cx = rad * (1 - kappa)
		cy = rad * (1 - kappa)
	)
	if x1 < x0 {
		rx, cx = -rx, -cx
	}
	p.moveTo(x0+rx, y0)
	p.lineTo(x1-rx, y0)
	if rad > 0 {
		p.cubeTo(x1-cx, y0, x1, y0+cy, x1, y0+rad)
	}
	p.lineTo(x1, y1-rad)
	if rad > 0 {
		p.cubeTo(x1, y1-cy, x1-cx, y1, x1-rx, y1)
	}
	p.lineTo(x0+rx, y1)
	if rad > 0 {
		p.cubeTo(x0+cx, y1, x0, y1-cy, x0, y1-rad)
	}
	p.lineTo(x0, y0+rad)
	if rad > 0 {
		p.cubeTo(x0, y0+cy, x0+cx, y0, x0+rx, y0)
	}
	p.z.ClosePath()
}

// segment traces a stroke of one pixel between the centers of two pixels, both
// included.
func (p *pen) segment(x0, y0, x1, y1 int) {
	var (
		ax, ay = center(x0, y0)
		bx, by = center(x1, y1)
		dx     = bx - ax
		dy     = by - ay
		n      = math32.Hypot(dx, dy)
		ux     = float32(0.5)
		uy     = float32(0)
	)
	if n > 0 {
		ux, uy = dx/n/2, dy/n/2
	}
	p.moveTo(ax-ux-uy, ay-uy+ux)
	p.lineTo(bx+ux-uy, by+uy+ux)
	p.lineTo(bx+ux+uy, by+uy-ux)
	p.lineTo(ax-ux+uy, ay-uy-ux)
	p.z.ClosePath()
}

// paint gives color c to the pixels covered by the shape.
func (f *Framebuffer) paint(c tinychart.Color) {
	p := &f.pen
	for y := 0; y < p.area.Dy(); y++ {
		for x := 0; x < p.area.Dx(); x++ {
			if p.mask.AlphaAt(x, y).A >= threshold {
				f.SetPixel(p.area.Min.X+x, p.area.Min.Y+y, c)
			}
		}
	}
}

func (f *Framebuffer) DrawLine(x0, y0, x1, y1 int, c tinychart.Color) {
	area := image.Rect(min(x0, x1), min(y0, y1), max(x0, x1)+1, max(y0, y1)+1)
	if !f.pen.begin(area, f.Bounds()) {
		return
	}
	f.pen.segment(x0, y0, x1, y1)
	f.pen.fill()
	f.paint(c)
}

func (f *Framebuffer) FillRect(x, y, w, h int, c tinychart.Color) {
	if w <= 0 || h <= 0 || !f.pen.begin(image.Rect(x, y, x+w, y+h), f.Bounds()) {
		return
	}
	f.pen.outline(float32(x), float32(y), float32(x+w), float32(y+h), 0)
	f.pen.fill()
	f.paint(c)
}

func (f *Framebuffer) DrawRect(x, y, w, h int, c tinychart.Color) {
	f.DrawRoundRect(x, y, w, h, 0, c)
}

func (f *Framebuffer) FillRoundRect(x, y, w, h, r int, c tinychart.Color) {
	if w <= 0 || h <= 0 || !f.pen.begin(image.Rect(x, y, x+w, y+h), f.Bounds()) {
		return
	}
	rad := cornerRadius(r, w, h)
	f.pen.outline(float32(x), float32(y), float32(x+w), float32(y+h), rad)
	f.pen.fill()
	f.paint(c)
}

// DrawRoundRect draws a border of one pixel: the rectangle inset by one pixel
// is cut out of the filled one.
func (f *Framebuffer) DrawRoundRect(x, y, w, h, r int, c tinychart.Color) {
	if w <= 0 || h <= 0 || !f.pen.begin(image.Rect(x, y, x+w, y+h), f.Bounds()) {
		return
	}
	rad := cornerRadius(r, w, h)
	f.pen.outline(float32(x), float32(y), float32(x+w), float32(y+h), rad)
	if w > 2 && h > 2 {
		f.pen.outline(float32(x+w-1), float32(y+1), float32(x+1), float32(y+h-1), max(rad-1, 0))
	}
	f.pen.fill()
	f.paint(c)
}

func (f *Framebuffer) DrawCircle(x0, y0, r int, c tinychart.Color) {
	if r < 0 || !f.pen.begin(image.Rect(x0-r, y0-r, x0+r+1, y0+r+1), f.Bounds()) {
		return
	}
	var (
		cx, cy = center(x0, y0)
		outer  = float32(r) + 0.5
		inner  = outer - 1
	)
	f.pen.outline(cx-outer, cy-outer, cx+outer, cy+outer, outer)
	if inner > 0 {
		f.pen.outline(cx+inner, cy-inner, cx-inner, cy+inner, inner)
	}
	f.pen.fill()
	f.paint(c)
}

func (f *Framebuffer) FillCircle(x0, y0, r int, c tinychart.Color) {
	if r < 0 || !f.pen.begin(image.Rect(x0-r, y0-r, x0+r+1, y0+r+1), f.Bounds()) {
		return
	}
	var (
		cx, cy = center(x0, y0)
		rad    = float32(r) + 0.5
	)
	f.pen.outline(cx-rad, cy-rad, cx+rad, cy+rad, rad)
	f.pen.fill()
	f.paint(c)
}

// FillTriangle fills the triangle joining the centers of three pixels. Its
// edges are stroked too so the vertices and the pixels on the edges belong to
// the triangle, and triangles sharing an edge leave no gap between them.
func (f *Framebuffer) FillTriangle(x0, y0, x1, y1, x2, y2 int, c tinychart.Color) {
	area := image.Rect(min(x0, x1, x2), min(y0, y1, y2), max(x0, x1, x2)+1, max(y0, y1, y2)+1)
	if !f.pen.begin(area, f.Bounds()) {
		return
	}
	var (
		ax, ay = center(x0, y0)
		bx, by = center(x1, y1)
		cx, cy = center(x2, y2)
	)
	f.pen.moveTo(ax, ay)
	f.pen.lineTo(bx, by)
	f.pen.lineTo(cx, cy)
	f.pen.z.ClosePath()
	f.pen.fill()

	f.pen.segment(x0, y0, x1, y1)
	f.pen.segment(x1, y1, x2, y2)
	f.pen.segment(x2, y2, x0, y0)
	f.pen.fill()
	f.paint(c)
}

func center(x, y int) (float32, float32) {
	return float32(x) + 0.5, float32(y) + 0.5
}

// cornerRadius is the radius of the corners of a w x h rectangle whose corner
// arcs pass through the centers of the pixels r pixels away from the corner.
func cornerRadius(r, w, h int) float32 {
	r = min(r, w/2, h/2)
	if r <= 0 {
		return 0
	}
	return min(float32(r)+0.5, float32(w)/2, float32(h)/2)
}
