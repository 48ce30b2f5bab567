package tinychart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		Style Style
		Want  Palette
	}{
		{Style: StyleBlack, Want: Palette{Background: Black, Draw: White, Draw2: White}},
		{Style: StylePaper, Want: Palette{Background: Paper, Draw: BlueInk, Draw2: BlueInk}},
		{Style: StyleCake, Want: Palette{Background: CakePink, Draw: BlueInk, Draw2: CakeBlue, Fill: true}},
		{Style: Style(42), Want: Palette{Background: Black, Draw: White, Draw2: White}},
		{Style: Style(-1), Want: Palette{Background: Black, Draw: White, Draw2: White}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.Want, Resolve(tt.Style), "style %d", tt.Style)
	}
}

func TestParseStyle(t *testing.T) {
	for _, s := range []Style{StyleBlack, StylePaper, StyleCake} {
		got, err := ParseStyle(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStyle("neon")
	assert.Error(t, err)
}

func TestSetStyleRedrawsCanvas(t *testing.T) {
	var rec recorder
	g := New(&rec)
	rec.reset()

	g.SetStyle(StyleCake)
	assert.Equal(t, []string{"SetTextSize", "SetTextColor", "FillRoundRect", "DrawLine", "DrawLine"}, rec.names())
	assert.Equal(t, CakePink, rec.calls[2].Color)
	assert.Equal(t, BlueInk, rec.calls[1].Color)
}

func TestColors(t *testing.T) {
	assert.Equal(t, White, RGB(0xff, 0xff, 0xff))
	assert.Equal(t, Black, RGB(0, 0, 0))
	assert.Equal(t, Color(0xF800), RGB(0xff, 0, 0))
	assert.Equal(t, "#ffffff", White.Hex())
	assert.Equal(t, "#ff0000", RGB(0xff, 0, 0).Hex())

	c, err := ParseColor("#00ff00")
	require.NoError(t, err)
	assert.Equal(t, Color(0x07E0), c)

	c, err = ParseColor("0xD6D5")
	require.NoError(t, err)
	assert.Equal(t, Paper, c)

	_, err = ParseColor("#12")
	assert.Error(t, err)
	_, err = ParseColor("zzzzzz")
	assert.Error(t, err)

	assert.Len(t, Category10, 10)
	assert.Len(t, Tableau10, 10)
	assert.Equal(t, uint16(0xD6D5), Paper.RGB565())
}

func TestParsePalette(t *testing.T) {
	tests := []struct {
		Name string
		Want []Color
	}{
		{Name: "", Want: Category10},
		{Name: "category10", Want: Category10},
		{Name: "Tableau10", Want: Tableau10},
	}
	for _, tt := range tests {
		list, err := ParsePalette(tt.Name)
		require.NoError(t, err)
		assert.Equal(t, tt.Want, list)
	}
	_, err := ParsePalette("rainbow")
	assert.Error(t, err)
}

func TestParseMarker(t *testing.T) {
	for _, name := range []string{"", "circle", "square", "diamond"} {
		m, err := ParseMarker(name)
		require.NoError(t, err)
		assert.NotNil(t, m)
	}
	_, err := ParseMarker("star")
	assert.Error(t, err)
}

func TestDiamondMarker(t *testing.T) {
	var rec recorder
	DiamondMarker(&rec, 10, 10, 2, White, true)
	assert.Equal(t, 2, rec.count("FillTriangle"))
	rec.reset()
	DiamondMarker(&rec, 10, 10, 2, White, false)
	assert.Equal(t, 4, rec.count("DrawLine"))
}
