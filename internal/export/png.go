// Package export renders detected wall geometry to a PNG image, the
// headless counterpart of the terminal viewer.
package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"wallmap/internal/geom"
)

// margin is the pixel border left around the plan on every side.
const margin = 8

var wallColor = color.RGBA{R: 0x1d, G: 0x4e, B: 0xd8, A: 0xff}

// lineWidth is the stroke width in pixels used for every wall outline.
const lineWidth = 2.0

// Render strokes every wall polyline onto a white canvas of the given
// pixel width; the height follows the plan's aspect ratio. Plan origin is
// top-left with y growing downward, matching the SVG source, so no axis
// flip is applied.
func Render(data geom.Data, width int) *image.RGBA {
	if width <= 0 {
		width = 800
	}
	bw, bh := data.BBox.Width(), data.BBox.Height()
	if bw <= 0 {
		bw = 1
	}
	if bh <= 0 {
		bh = 1
	}
	height := int(float64(width) * bh / bw)
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width+2*margin, height+2*margin))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	scanner.SetColor(wallColor)
	dasher.SetStroke(
		fixed.Int26_6(lineWidth*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Bevel,
		nil, 0,
	)

	project := func(p [2]float64) fixed.Point26_6 {
		x := margin + (p[0]-data.BBox.MinX)/bw*float64(width)
		y := margin + (p[1]-data.BBox.MinY)/bh*float64(height)
		return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	}
	for _, wall := range data.Walls {
		if len(wall.Points) == 0 {
			continue
		}
		for i, p := range wall.Points {
			if i == 0 {
				dasher.Start(project(p))
			} else {
				dasher.Line(project(p))
			}
		}
		dasher.Stop(wall.Closed)
	}
	dasher.Draw()
	return img
}

// WritePNG renders data and writes it to the named file.
func WritePNG(path string, data geom.Data, width int) error {
	img := Render(data, width)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
