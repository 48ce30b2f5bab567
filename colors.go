package tinychart

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 16 bits RGB565 value as understood by most TFT controllers.
type Color uint16

const (
	Black    Color = 0x0000
	White    Color = 0xFFFF
	Paper    Color = 0xD6D5
	CakePink Color = 0xFE9F
	CakeBlue Color = 0xD69F
	BlueInk  Color = 0x527F
)

var (
	Category10 []Color
	Tableau10  []Color
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

// RGB packs 8 bits channels into a Color, dropping the low bits.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// ParseColor accepts "#rrggbb", "rrggbb" or a raw RGB565 value written as "0xffff".
func ParseColor(str string) (Color, error) {
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		n, err := strconv.ParseUint(str[2:], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid rgb565 color", str)
		}
		return Color(n), nil
	}
	str = strings.TrimPrefix(str, "#")
	if len(str) != 6 {
		return 0, fmt.Errorf("%s: invalid color", str)
	}
	n, err := strconv.ParseUint(str, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid color", str)
	}
	return RGB(uint8(n>>16), uint8(n>>8), uint8(n)), nil
}

// ParsePalette gives the colors of a named slice palette. The empty name is the
// default palette, Category10.
func ParsePalette(name string) ([]Color, error) {
	switch strings.ToLower(name) {
	case "", "category10":
		return Category10, nil
	case "tableau10":
		return Tableau10, nil
	default:
		return nil, fmt.Errorf("%s: unknown palette", name)
	}
}

// RGB565 returns the packed value.
func (c Color) RGB565() uint16 {
	return uint16(c)
}

// RGBA expands the channels back to 16 bits so that Color satisfies color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	var (
		r5 = uint32(c>>11) & 0x1F
		g6 = uint32(c>>5) & 0x3F
		b5 = uint32(c) & 0x1F
	)
	r = (r5<<3 | r5>>2) * 0x101
	g = (g6<<2 | g6>>4) * 0x101
	b = (b5<<3 | b5>>2) * 0x101
	return r, g, b, 0xFFFF
}

// Hex gives the "#rrggbb" notation of the color.
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func splitColorString(str string) []Color {
	var arr []Color
	for i := 0; i < len(str); i += 6 {
		c, err := ParseColor(str[i : i+6])
		if err != nil {
			continue
		}
		arr = append(arr, c)
	}
	return arr
}
