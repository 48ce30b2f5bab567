package tinychart

import (
	"fmt"
)

type call struct {
	Name  string
	Args  []int
	Color Color
	Text  string
}

// recorder keeps track of every primitive called on it.
type recorder struct {
	calls []call
}

func (r *recorder) record(name string, c Color, args ...int) {
	r.calls = append(r.calls, call{Name: name, Args: args, Color: c})
}

func (r *recorder) FillRoundRect(x, y, w, h, rad int, c Color) {
	r.record("FillRoundRect", c, x, y, w, h, rad)
}

func (r *recorder) DrawRoundRect(x, y, w, h, rad int, c Color) {
	r.record("DrawRoundRect", c, x, y, w, h, rad)
}

func (r *recorder) DrawLine(x0, y0, x1, y1 int, c Color) {
	r.record("DrawLine", c, x0, y0, x1, y1)
}

func (r *recorder) FillRect(x, y, w, h int, c Color) {
	r.record("FillRect", c, x, y, w, h)
}

func (r *recorder) DrawRect(x, y, w, h int, c Color) {
	r.record("DrawRect", c, x, y, w, h)
}

func (r *recorder) FillCircle(x, y, rad int, c Color) {
	r.record("FillCircle", c, x, y, rad)
}

func (r *recorder) DrawCircle(x, y, rad int, c Color) {
	r.record("DrawCircle", c, x, y, rad)
}

func (r *recorder) FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	r.record("FillTriangle", c, x0, y0, x1, y1, x2, y2)
}

func (r *recorder) DrawNumber(n, x, y int) {
	r.calls = append(r.calls, call{Name: "DrawNumber", Args: []int{x, y}, Text: fmt.Sprint(n)})
}

func (r *recorder) DrawString(s string, x, y int) {
	r.calls = append(r.calls, call{Name: "DrawString", Args: []int{x, y}, Text: s})
}

func (r *recorder) SetTextColor(fg, bg Color) {
	r.record("SetTextColor", fg, int(bg))
}

func (r *recorder) SetTextSize(size int) {
	r.record("SetTextSize", 0, size)
}

func (r *recorder) reset() {
	r.calls = r.calls[:0]
}

func (r *recorder) filter(names ...string) []call {
	var list []call
	for _, c := range r.calls {
		for _, n := range names {
			if c.Name == n {
				list = append(list, c)
				break
			}
		}
	}
	return list
}

func (r *recorder) count(names ...string) int {
	return len(r.filter(names...))
}

func (r *recorder) names() []string {
	var list []string
	for _, c := range r.calls {
		list = append(list, c.Name)
	}
	return list
}
