package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/tinychart/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sample = `x,y,name
3,30,Aa
1,10,Bb
2,20,Cc
`

func TestDecodeData(t *testing.T) {
	data, err := decodeData(strings.NewReader(sample), 0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, data.X)
	assert.Equal(t, []float64{30, 10, 20}, data.Y)
	assert.Equal(t, []string{"Aa", "Bb", "Cc"}, data.Labels)

	data, err = decodeData(strings.NewReader(sample), -1, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, data.X)
	assert.Empty(t, data.Labels)

	_, err = decodeData(strings.NewReader(sample), 0, 5, -1)
	assert.Error(t, err)
	_, err = decodeData(strings.NewReader(sample), 2, 1, -1)
	assert.Error(t, err)

	data, err = decodeData(strings.NewReader(""), 0, 1, -1)
	require.NoError(t, err)
	assert.Empty(t, data.Y)
}

func TestPercent(t *testing.T) {
	d := Data{Y: []float64{12.4, 27.6, 60}}
	assert.Equal(t, []int{12, 28, 60}, d.Percent())
}

func TestParseBounds(t *testing.T) {
	b, err := parseBounds("", "")
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = parseBounds("", "10")
	require.NoError(t, err)
	assert.Equal(t, &Bounds{Max: 10}, b)

	b, err = parseBounds("-5", "5")
	require.NoError(t, err)
	assert.Equal(t, &Bounds{Min: -5, Max: 5}, b)

	_, err = parseBounds("1", "")
	assert.Error(t, err)
	_, err = parseBounds("x", "1")
	assert.Error(t, err)
}

func TestOverride(t *testing.T) {
	cfg := config.Default()
	override(&cfg, "cake", "demo", 0, 90, -1)
	assert.Equal(t, "cake", cfg.Style)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 128, cfg.Width)
	assert.Equal(t, 90, cfg.Height)
	assert.Equal(t, 10, cfg.Padding)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Job{Kind: chartPie, Format: formatPNG}.Validate())
	assert.Error(t, Job{Kind: "radar", Format: formatSVG}.Validate())
	assert.Error(t, Job{Kind: chartBars, Format: "gif"}.Validate())
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a.csv", "b.csv"} {
		file := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(file, []byte(sample), 0o644))
		files = append(files, file)
	}
	for _, kind := range []string{chartBars, chartLines} {
		for _, format := range []string{formatSVG, formatPNG} {
			job := Job{
				Kind:   kind,
				Format: format,
				XCol:   0,
				YCol:   1,
				LabCol: -1,
				Config: config.Default(),
				Logger: zap.NewNop(),
			}
			require.NoError(t, job.RenderAll(context.Background(), files))
			for _, f := range files {
				out, err := os.ReadFile(strings.TrimSuffix(f, ".csv") + "." + format)
				require.NoError(t, err)
				assert.NotEmpty(t, out)
				if format == formatPNG {
					assert.True(t, bytes.HasPrefix(out, []byte("\x89PNG")))
				}
			}
		}
	}
}

func TestRenderPie(t *testing.T) {
	var (
		dir  = t.TempDir()
		file = filepath.Join(dir, "pie.csv")
		out  = filepath.Join(dir, "out.svg")
	)
	content := "name,value\nAa,12\nBb,28\nCc,10\nDd,10\nEe,40\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	job := Job{
		Kind:   chartPie,
		Format: formatSVG,
		Output: out,
		YCol:   1,
		LabCol: 0,
		Config: config.Default(),
	}
	require.NoError(t, job.RenderAll(context.Background(), []string{file}))

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Ee")

	assert.Error(t, job.RenderAll(context.Background(), []string{file, file}))
}
