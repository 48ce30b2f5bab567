package raster

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"github.com/midbel/tinychart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countColor(f *Framebuffer, c tinychart.Color) int {
	var n int
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			if f.Pixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestPixels(t *testing.T) {
	f := New(4, 3)
	require.Len(t, f.Buf, 24)

	f.SetPixel(1, 2, tinychart.Paper)
	assert.Equal(t, tinychart.Paper, f.Pixel(1, 2))
	assert.Equal(t, byte(0xD5), f.Buf[2*8+2])
	assert.Equal(t, byte(0xD6), f.Buf[2*8+3])

	f.SetPixel(-1, 0, tinychart.White)
	f.SetPixel(4, 0, tinychart.White)
	assert.Equal(t, tinychart.Black, f.Pixel(10, 10))
	assert.Equal(t, 0, countColor(f, tinychart.White))

	f.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	assert.Equal(t, tinychart.RGB(0xff, 0, 0), f.Pixel(0, 0))

	f.Clear(tinychart.White)
	assert.Equal(t, 12, countColor(f, tinychart.White))
}

func TestLines(t *testing.T) {
	f := New(10, 10)
	f.DrawLine(0, 0, 9, 9, tinychart.White)
	for i := 0; i < 10; i++ {
		assert.Equal(t, tinychart.White, f.Pixel(i, i))
	}
	assert.Equal(t, 10, countColor(f, tinychart.White))

	f.Clear(tinychart.Black)
	f.DrawLine(7, 2, 2, 2, tinychart.White)
	assert.Equal(t, 6, countColor(f, tinychart.White))

	f.Clear(tinychart.Black)
	f.DrawLine(3, 3, 3, 3, tinychart.White)
	assert.Equal(t, 1, countColor(f, tinychart.White))
}

func TestRects(t *testing.T) {
	f := New(20, 20)
	f.FillRect(2, 2, 5, 4, tinychart.White)
	assert.Equal(t, 20, countColor(f, tinychart.White))

	f.Clear(tinychart.Black)
	f.DrawRect(2, 2, 5, 4, tinychart.White)
	assert.Equal(t, 14, countColor(f, tinychart.White))

	f.Clear(tinychart.Black)
	f.FillRect(15, 15, 10, 10, tinychart.White)
	assert.Equal(t, 25, countColor(f, tinychart.White))
}

func TestRoundRects(t *testing.T) {
	f := New(30, 30)
	f.FillRoundRect(0, 0, 30, 30, 5, tinychart.White)
	assert.Equal(t, tinychart.Black, f.Pixel(0, 0))
	assert.Equal(t, tinychart.Black, f.Pixel(29, 29))
	assert.Equal(t, tinychart.White, f.Pixel(15, 0))
	assert.Equal(t, tinychart.White, f.Pixel(0, 15))
	assert.Equal(t, tinychart.White, f.Pixel(15, 15))

	f.Clear(tinychart.Black)
	f.DrawRoundRect(0, 0, 30, 30, 5, tinychart.White)
	assert.Equal(t, tinychart.Black, f.Pixel(0, 0))
	assert.Equal(t, tinychart.Black, f.Pixel(15, 15))
	assert.Equal(t, tinychart.White, f.Pixel(15, 0))
	assert.Equal(t, tinychart.White, f.Pixel(29, 15))
	assert.Equal(t, tinychart.White, f.Pixel(15, 29))
}

func TestCircles(t *testing.T) {
	f := New(21, 21)
	f.FillCircle(10, 10, 5, tinychart.White)
	for _, p := range [][2]int{{10, 10}, {10, 5}, {10, 15}, {5, 10}, {15, 10}} {
		assert.Equal(t, tinychart.White, f.Pixel(p[0], p[1]), "point %v", p)
	}
	assert.Equal(t, tinychart.Black, f.Pixel(5, 5))
	assert.InDelta(t, math.Pi*5.5*5.5, countColor(f, tinychart.White), 10)

	f.Clear(tinychart.Black)
	f.DrawCircle(10, 10, 5, tinychart.White)
	assert.Equal(t, tinychart.White, f.Pixel(10, 5))
	assert.Equal(t, tinychart.White, f.Pixel(15, 10))
	assert.Equal(t, tinychart.Black, f.Pixel(10, 10))
}

func TestFillTriangle(t *testing.T) {
	f := New(20, 20)
	f.FillTriangle(0, 0, 10, 0, 0, 10, tinychart.White)
	assert.Equal(t, tinychart.White, f.Pixel(0, 0))
	assert.Equal(t, tinychart.White, f.Pixel(3, 3))
	assert.Equal(t, tinychart.White, f.Pixel(0, 10))
	assert.Equal(t, tinychart.Black, f.Pixel(9, 9))

	f.Clear(tinychart.Black)
	f.FillTriangle(2, 5, 8, 5, 4, 5, tinychart.White)
	assert.Equal(t, 7, countColor(f, tinychart.White))

	f.Clear(tinychart.Black)
	f.FillTriangle(0, 0, 9, 0, 9, 9, tinychart.White)
	f.FillTriangle(9, 9, 0, 9, 0, 0, tinychart.White)
	assert.Equal(t, 100, countColor(f, tinychart.White))
}

func TestShapesClipped(t *testing.T) {
	f := New(10, 10)
	f.FillCircle(-20, -20, 5, tinychart.White)
	f.DrawLine(-5, 20, 30, 20, tinychart.White)
	f.FillTriangle(-10, -10, -5, -10, -10, -5, tinychart.White)
	assert.Equal(t, 0, countColor(f, tinychart.White))

	f.FillCircle(0, 0, 3, tinychart.White)
	assert.Equal(t, tinychart.White, f.Pixel(0, 0))
	assert.Equal(t, tinychart.White, f.Pixel(3, 0))
	assert.Equal(t, tinychart.Black, f.Pixel(4, 4))

	f.Clear(tinychart.Black)
	f.DrawLine(-5, 5, 30, 5, tinychart.White)
	assert.Equal(t, 10, countColor(f, tinychart.White))
}

func TestText(t *testing.T) {
	f := New(40, 20)
	f.SetTextColor(tinychart.White, tinychart.White)
	f.DrawString("8", 0, 0)
	one := countColor(f, tinychart.White)
	assert.Greater(t, one, 0)
	assert.Less(t, one, 7*13)

	f.Clear(tinychart.Black)
	f.SetTextSize(2)
	f.DrawNumber(8, 0, 0)
	assert.Equal(t, 4*one, countColor(f, tinychart.White))

	f.Clear(tinychart.Black)
	f.SetTextSize(1)
	f.SetTextColor(tinychart.White, tinychart.Paper)
	f.DrawString("8", 0, 0)
	assert.Equal(t, 7*13, countColor(f, tinychart.White)+countColor(f, tinychart.Paper))
}

func TestRenderPNG(t *testing.T) {
	f := New(128, 128)
	g := tinychart.New(f, tinychart.WithOrigin(4, 4), tinychart.WithSize(120, 120), tinychart.WithStyle(tinychart.StylePaper))
	g.SetTitle("Pie")
	g.Pie([]int{12, 28, 10, 10, 40}, []string{"Aa", "Bb", "Cc", "Dd", "Ee"})

	cx, cy := g.Region().Center()
	assert.NotEqual(t, tinychart.Paper, f.Pixel(cx+5, cy+5))

	var buf bytes.Buffer
	require.NoError(t, f.EncodePNG(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}
