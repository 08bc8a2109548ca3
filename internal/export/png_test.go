package export

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallmap/internal/geom"
	"wallmap/internal/svg"
)

func squarePlan(t *testing.T) geom.Data {
	t.Helper()
	records := []svg.PathRecord{
		{ID: "room", D: "M 0,0 L 10,0 L 10,10 L 0,10 Z", Style: "stroke-width:2px;"},
	}
	d := geom.Build(records, 1)
	require.Len(t, d.Walls, 1)
	return d
}

func TestRenderDimensions(t *testing.T) {
	img := Render(squarePlan(t), 400)
	// square plan: height equals width, plus the margin on each side
	assert.Equal(t, 400+16, img.Bounds().Dx())
	assert.Equal(t, 400+16, img.Bounds().Dy())
}

func TestRenderStrokesSomething(t *testing.T) {
	img := Render(squarePlan(t), 100)
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	touched := false
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y && !touched; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			if img.RGBAAt(x, y) != white {
				touched = true
				break
			}
		}
	}
	assert.True(t, touched, "expected at least one stroked pixel")
}

func TestRenderEmptyData(t *testing.T) {
	img := Render(geom.Data{}, 50)
	assert.Equal(t, 50+16, img.Bounds().Dx())
}

func TestWritePNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "walls.png")
	require.NoError(t, WritePNG(out, squarePlan(t), 200))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200+16, img.Bounds().Dx())
}
