package tinychart

import (
	"math"
)

// MaxSamples is the maximum number of samples drawn by one call.
const MaxSamples = 255

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

// Bounds computes the smallest range holding all values. The range of an empty
// list is [0, 0].
func Bounds(values []float64) Range {
	var rg Range
	for i, v := range values {
		if i == 0 || v < rg.F {
			rg.F = v
		}
		if i == 0 || v > rg.T {
			rg.T = v
		}
	}
	return rg
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

// Degenerate reports whether values can not be spread over the range.
func (r Range) Degenerate() bool {
	n := r.Len()
	return n <= 0 || math.IsNaN(n) || math.IsInf(n, 0)
}

// Scaler maps values of a Range to a pixel offset in [0, Size].
type Scaler struct {
	Range
	Size int
}

// NewScaler returns false when the range is degenerate or the size empty. The
// returned Scaler must not be used in that case.
func NewScaler(rg Range, size int) (Scaler, bool) {
	if rg.Degenerate() || size <= 0 {
		return Scaler{}, false
	}
	s := Scaler{
		Range: rg,
		Size:  size,
	}
	return s, true
}

// Space is the number of pixels of one unit.
func (s Scaler) Space() float64 {
	return float64(s.Size) / s.Len()
}

// Scale gives the offset of v from the start of the range, clamped to the size
// of the scaler.
func (s Scaler) Scale(v float64) int {
	px := math.Round(s.Space() * (v - s.F))
	switch {
	case math.IsNaN(px) || px < 0:
		return 0
	case px > float64(s.Size):
		return s.Size
	default:
		return int(px)
	}
}

// SlotWidth splits width in n slots separated and surrounded by a gutter of one
// pixel. It returns 0 when n is not positive or the slots have no room left.
func SlotWidth(width, n int) int {
	if n <= 0 {
		return 0
	}
	w := (width - (n + 1)) / n
	if w < 0 {
		return 0
	}
	return w
}

// slotOffset is the offset of the i-th slot from the start of the region.
func slotOffset(i, slot int) int {
	return 1 + i*(slot+1)
}
