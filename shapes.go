package tinychart

import (
	"fmt"
	"strings"
)

// MarkerRadius is the radius of the markers drawn on each point of a line chart.
var MarkerRadius = 2

// Marker draws the mark of one point centred on x, y.
type Marker func(d Display, x, y, r int, c Color, fill bool)

func ParseMarker(str string) (Marker, error) {
	switch strings.ToLower(str) {
	case "", "circle":
		return CircleMarker, nil
	case "square":
		return SquareMarker, nil
	case "diamond":
		return DiamondMarker, nil
	default:
		return nil, fmt.Errorf("%s: unknown marker", str)
	}
}

func CircleMarker(d Display, x, y, r int, c Color, fill bool) {
	if fill {
		d.FillCircle(x, y, r, c)
	} else {
		d.DrawCircle(x, y, r, c)
	}
}

func SquareMarker(d Display, x, y, r int, c Color, fill bool) {
	size := 2*r + 1
	if fill {
		d.FillRect(x-r, y-r, size, size, c)
	} else {
		d.DrawRect(x-r, y-r, size, size, c)
	}
}

func DiamondMarker(d Display, x, y, r int, c Color, fill bool) {
	if fill {
		d.FillTriangle(x-r, y, x, y-r, x+r, y, c)
		d.FillTriangle(x-r, y, x, y+r, x+r, y, c)
		return
	}
	d.DrawLine(x-r, y, x, y-r, c)
	d.DrawLine(x, y-r, x+r, y, c)
	d.DrawLine(x+r, y, x, y+r, c)
	d.DrawLine(x, y+r, x-r, y, c)
}
