package tinychart

type Point struct {
	X float64
	Y float64
}

func NumberPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// Pair zips xs and ys. The shortest list gives the number of points and never
// more than MaxSamples points are returned.
func Pair(xs, ys []float64) []Point {
	n := min(len(xs), len(ys), MaxSamples)
	list := make([]Point, n)
	for i := 0; i < n; i++ {
		list[i] = NumberPoint(xs[i], ys[i])
	}
	return list
}

func valuesY(points []Point) []float64 {
	vs := make([]float64, len(points))
	for i := range points {
		vs[i] = points[i].Y
	}
	return vs
}
