package tinychart

// SortPoints returns a copy of points ordered by X. The given slice is left
// untouched. Points sharing the same X keep no particular order.
func SortPoints(points []Point) []Point {
	list := make([]Point, len(points))
	copy(list, points)
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && list[j].X < list[j-1].X; j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
	return list
}

// SortXY sorts a copy of the pairs formed by xs and ys and gives back the sorted
// coordinates as two new slices.
func SortXY(xs, ys []float64) ([]float64, []float64) {
	var (
		list = SortPoints(Pair(xs, ys))
		sx   = make([]float64, len(list))
		sy   = make([]float64, len(list))
	)
	for i, p := range list {
		sx[i] = p.X
		sy[i] = p.Y
	}
	return sx, sy
}
