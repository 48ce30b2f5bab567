// Package raster implements a tinychart.Display on top of an RGB565 framebuffer,
// the pixel format of the small TFT panels. A Framebuffer is also a draw.Image
// and can be encoded as PNG.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/midbel/tinychart"
	"github.com/pkg/errors"
)

// Model converts any color to the nearest tinychart.Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if tc, ok := c.(tinychart.Color); ok {
		return tc
	}
	r, g, b, _ := c.RGBA()
	return tinychart.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
})

type Framebuffer struct {
	Buf    []byte
	Stride int
	W      int
	H      int

	text textStyle
	pen  pen
}

// New allocates a framebuffer of w x h pixels, two bytes per pixel in little
// endian order.
func New(w, h int) *Framebuffer {
	w = max(w, 0)
	h = max(h, 0)
	return &Framebuffer{
		Buf:    make([]byte, w*h*2),
		Stride: w * 2,
		W:      w,
		H:      h,
		text:   defaultTextStyle(),
	}
}

func (f *Framebuffer) Size() (int, int) {
	return f.W, f.H
}

func (f *Framebuffer) ColorModel() color.Model {
	return Model
}

func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.W, f.H)
}

func (f *Framebuffer) At(x, y int) color.Color {
	return f.Pixel(x, y)
}

func (f *Framebuffer) Set(x, y int, c color.Color) {
	f.SetPixel(x, y, Model.Convert(c).(tinychart.Color))
}

func (f *Framebuffer) Pixel(x, y int) tinychart.Color {
	off, ok := f.offset(x, y)
	if !ok {
		return tinychart.Black
	}
	return tinychart.Color(uint16(f.Buf[off]) | uint16(f.Buf[off+1])<<8)
}

func (f *Framebuffer) SetPixel(x, y int, c tinychart.Color) {
	off, ok := f.offset(x, y)
	if !ok {
		return
	}
	v := c.RGB565()
	f.Buf[off] = byte(v)
	f.Buf[off+1] = byte(v >> 8)
}

func (f *Framebuffer) Clear(c tinychart.Color) {
	v := c.RGB565()
	for i := 0; i+1 < len(f.Buf); i += 2 {
		f.Buf[i] = byte(v)
		f.Buf[i+1] = byte(v >> 8)
	}
}

// EncodePNG writes the content of the framebuffer as a PNG image.
func (f *Framebuffer) EncodePNG(w io.Writer) error {
	return errors.Wrap(png.Encode(w, f), "encode png")
}

func (f *Framebuffer) offset(x, y int) (int, bool) {
	if f == nil || x < 0 || y < 0 || x >= f.W || y >= f.H {
		return 0, false
	}
	off := y*f.Stride + x*2
	if off < 0 || off+1 >= len(f.Buf) {
		return 0, false
	}
	return off, true
}
