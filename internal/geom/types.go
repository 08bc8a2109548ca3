// Package geom holds the plan geometry extracted from a floor-plan SVG:
// wall polylines with their source records, and a bounding box used for
// viewport and export scaling.
package geom

// BBox is an axis-aligned bounding box in plan coordinates. Plan
// coordinates follow the SVG convention: origin top-left, y down.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b *BBox) extend(x, y float64) {
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Wall is one detected wall path, interpreted into plan coordinates. The
// raw d and style attributes ride along for reporting and inspection.
type Wall struct {
	ID          string
	StrokeWidth float64
	D           string
	Style       string
	Points      [][2]float64
	Closed      bool
}

// Data is the renderable result of a floor-plan load.
type Data struct {
	Walls []Wall
	BBox  BBox

	vertices int
}

func (d *Data) add(w Wall) {
	d.Walls = append(d.Walls, w)
	for _, p := range w.Points {
		if d.vertices == 0 {
			d.BBox = BBox{MinX: p[0], MinY: p[1], MaxX: p[0], MaxY: p[1]}
		} else {
			d.BBox.extend(p[0], p[1])
		}
		d.vertices++
	}
}

// Polylines returns every wall's point list, walls without geometry
// omitted.
func (d Data) Polylines() [][][2]float64 {
	out := make([][][2]float64, 0, len(d.Walls))
	for _, w := range d.Walls {
		if len(w.Points) > 0 {
			out = append(out, w.Points)
		}
	}
	return out
}

// Sample returns up to n walls for diagnostics output.
func (d Data) Sample(n int) []Wall {
	if n > len(d.Walls) {
		n = len(d.Walls)
	}
	return d.Walls[:n]
}
