package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wallmap/internal/geom"
)

// cellToPlanXY converts a canvas cell back to plan coordinates using the
// bbox, zoom, and pan. Plan y grows downward like the cell grid, so the
// mapping carries no axis flip.
func (m Model) cellToPlanXY(cx, cy, w, h int) (float64, float64, bool) {
	if !(m.data.BBox.MaxX > m.data.BBox.MinX && m.data.BBox.MaxY > m.data.BBox.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := float64(cy-m.offsetY) / float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := m.data.BBox.MinX + nx*m.data.BBox.Width()
	y := m.data.BBox.MinY + ny*m.data.BBox.Height()
	return x, y, true
}

// wallVisible applies the closed/open layer toggles.
func (m Model) wallVisible(w geom.Wall) bool {
	if w.Closed {
		return m.showClosed
	}
	return m.showOpen
}

func (m Model) renderPlanCanvas(w, h int) string {
	lines := make([]string, h)
	blank := strings.Repeat(" ", w)
	for y := 0; y < h; y++ {
		lines[y] = blank
	}
	g := newGrid(w, h)

	// Stroke each wall polyline on the microgrid. Closed walls already
	// carry their closing vertex, so no extra edge is added here.
	for _, wall := range m.data.Walls {
		if !m.wallVisible(wall) {
			continue
		}
		var prev *[2]int
		for _, p := range wall.Points {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			if prev != nil {
				g.line(prev[0], prev[1], mx, my)
			}
			prev = &[2]int{mx, my}
		}
	}

	// Composite the braille overlay onto the blank rows
	for y, over := range g.rows() {
		if y >= h || len(over) == 0 {
			continue
		}
		base := []rune(lines[y])
		for x, r := range []rune(over) {
			if x < len(base) && r != ' ' {
				base[x] = r
			}
		}
		lines[y] = string(base)
	}

	// Hover highlight: mark the nearest wall vertex
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				marker := lipgloss.NewStyle().Foreground(hoverCol).Render("◯")
				lines[cy] = string(r[:cx]) + marker + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// screenXYMicro maps a plan coordinate into the 2x4-per-cell microgrid.
// The plan's y axis points down, matching the grid, so y passes through
// unflipped; the SVG source orientation is preserved on screen.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	bb := m.data.BBox
	if !(bb.MaxX > bb.MinX && bb.MaxY > bb.MinY) {
		return 0, 0, false
	}
	nx := (x - bb.MinX) / bb.Width()
	ny := (y - bb.MinY) / bb.Height()
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int(zy*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// nearestVertexMicro finds the wall vertex closest to the given microgrid
// position.
func (m Model) nearestVertexMicro(hx, hy, w, h int) (bx, by int, found bool) {
	best := 1<<31 - 1
	bx, by = hx, hy
	for _, wall := range m.data.Walls {
		if !m.wallVisible(wall) {
			continue
		}
		for _, p := range wall.Points {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			dx := mx - hx
			dy := my - hy
			if d := dx*dx + dy*dy; d < best {
				best = d
				bx, by = mx, my
				found = true
			}
		}
	}
	return bx, by, found
}
