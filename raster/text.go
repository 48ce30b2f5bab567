package raster

import (
	"image"
	"strconv"

	"github.com/midbel/tinychart"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type textStyle struct {
	fg   tinychart.Color
	bg   tinychart.Color
	size int
	face font.Face
}

func defaultTextStyle() textStyle {
	return textStyle{
		fg:   tinychart.White,
		bg:   tinychart.Black,
		size: 1,
		face: basicfont.Face7x13,
	}
}

// SetFace replaces the bitmap font used to draw text.
func (f *Framebuffer) SetFace(face font.Face) {
	if face != nil {
		f.text.face = face
	}
}

// SetTextColor sets the colors of the glyphs and of the box behind them. As on
// the panels, the box is left transparent when both colors are equal.
func (f *Framebuffer) SetTextColor(fg, bg tinychart.Color) {
	f.text.fg = fg
	f.text.bg = bg
}

func (f *Framebuffer) SetTextSize(size int) {
	f.text.size = max(size, 1)
}

func (f *Framebuffer) DrawNumber(n, x, y int) {
	f.DrawString(strconv.Itoa(n), x, y)
}

// DrawString draws str with its top left corner at x, y. Each pixel of the font
// becomes a square of text size pixels.
func (f *Framebuffer) DrawString(str string, x, y int) {
	if str == "" {
		return
	}
	var (
		face    = f.text.face
		metrics = face.Metrics()
		width   = font.MeasureString(face, str).Ceil()
		height  = metrics.Height.Ceil()
		size    = f.text.size
		opaque  = f.text.fg != f.text.bg
	)
	if width <= 0 || height <= 0 {
		return
	}
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	dr := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	dr.DrawString(str)

	for my := 0; my < height; my++ {
		for mx := 0; mx < width; mx++ {
			if mask.AlphaAt(mx, my).A >= 0x80 {
				f.FillRect(x+mx*size, y+my*size, size, size, f.text.fg)
			} else if opaque {
				f.FillRect(x+mx*size, y+my*size, size, size, f.text.bg)
			}
		}
	}
}
