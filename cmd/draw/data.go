package main

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Data holds the columns read from one CSV file.
type Data struct {
	X      []float64
	Y      []float64
	Labels []string
}

func (d Data) Percent() []int {
	list := make([]int, len(d.Y))
	for i := range d.Y {
		list[i] = int(math.Round(d.Y[i]))
	}
	return list
}

// readData reads a CSV file whose first row is a header. label is ignored when
// negative. When xcol is negative, the index of the row is used as x.
func readData(file string, xcol, ycol, label int) (Data, error) {
	r, err := os.Open(file)
	if err != nil {
		return Data{}, errors.Wrapf(err, "open %s", file)
	}
	defer r.Close()

	data, err := decodeData(r, xcol, ycol, label)
	return data, errors.Wrapf(err, "read %s", file)
}

func decodeData(r io.Reader, xcol, ycol, label int) (Data, error) {
	var (
		data Data
		rs   = csv.NewReader(r)
	)
	rs.ReuseRecord = true
	if _, err := rs.Read(); err != nil && !errors.Is(err, io.EOF) {
		return data, err
	}
	for line := 2; ; line++ {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return data, err
		}
		if (xcol >= 0 && !validIndex(xcol, row)) || !validIndex(ycol, row) || (label >= 0 && !validIndex(label, row)) {
			return data, errors.Errorf("line %d: invalid x/y/label column index", line)
		}
		x := float64(len(data.X))
		if xcol >= 0 {
			if x, err = strconv.ParseFloat(row[xcol], 64); err != nil {
				return data, errors.Wrapf(err, "line %d: x", line)
			}
		}
		y, err := strconv.ParseFloat(row[ycol], 64)
		if err != nil {
			return data, errors.Wrapf(err, "line %d: y", line)
		}
		data.X = append(data.X, x)
		data.Y = append(data.Y, y)
		if label >= 0 {
			data.Labels = append(data.Labels, row[label])
		}
	}
	return data, nil
}

func validIndex(ix int, row []string) bool {
	return ix >= 0 && ix < len(row)
}
