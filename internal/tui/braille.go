package tui

// grid is a braille drawing surface: each terminal cell carries a 2x4
// micro-pixel block encoded in the Unicode braille range.
type grid struct {
	w, h int // in cells
	mask [][]uint8
}

func newGrid(w, h int) *grid {
	mask := make([][]uint8, h)
	for i := range mask {
		mask[i] = make([]uint8, w)
	}
	return &grid{w: w, h: h, mask: mask}
}

// braille dot bits by (column, row) within a cell
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// set marks one micro-pixel; out-of-range coordinates are ignored.
func (g *grid) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= g.h || cx >= g.w {
		return
	}
	g.mask[cy][cx] |= dotBits[rx][ry]
}

// line draws a straight segment on the microgrid using Bresenham.
func (g *grid) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		g.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// rows renders the surface as one string per cell row; untouched cells
// are spaces.
func (g *grid) rows() []string {
	out := make([]string, g.h)
	for y := 0; y < g.h; y++ {
		row := make([]rune, g.w)
		for x := 0; x < g.w; x++ {
			if m := g.mask[y][x]; m == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(m))
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
