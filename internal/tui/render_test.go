package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallmap/internal/geom"
	"wallmap/internal/svg"
)

func planModel(t *testing.T) Model {
	t.Helper()
	records := []svg.PathRecord{
		{ID: "room", D: "M 0,0 L 10,0 L 10,10 L 0,10 Z", Style: "stroke-width:2px;"},
	}
	m := Model{zoom: 1.0, showClosed: true, showOpen: true}
	m.data = geom.Build(records, 1)
	require.Len(t, m.data.Walls, 1)
	return m
}

func TestScreenXYMicroOrientation(t *testing.T) {
	m := planModel(t)
	// plan y grows downward, so larger y must land lower on the canvas
	_, topY, ok := m.screenXYMicro(0, 0, 40, 20)
	require.True(t, ok)
	_, bottomY, ok := m.screenXYMicro(0, 10, 40, 20)
	require.True(t, ok)
	assert.Less(t, topY, bottomY)
}

func TestScreenXYMicroDegenerateBBox(t *testing.T) {
	m := Model{zoom: 1.0}
	_, _, ok := m.screenXYMicro(0, 0, 40, 20)
	assert.False(t, ok)
}

func TestCellToPlanXYRoundTrip(t *testing.T) {
	m := planModel(t)
	x, y, ok := m.cellToPlanXY(0, 0, 40, 20)
	require.True(t, ok)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)

	x, y, ok = m.cellToPlanXY(39, 19, 40, 20)
	require.True(t, ok)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 10, y, 1e-9)
}

func TestRenderPlanCanvasStrokesWalls(t *testing.T) {
	m := planModel(t)
	out := m.renderPlanCanvas(40, 20)
	nonBlank := false
	for _, r := range out {
		if r != ' ' && r != '\n' {
			nonBlank = true
			break
		}
	}
	assert.True(t, nonBlank, "expected braille output for the wall outline")
}

func TestRenderPlanCanvasRespectsLayerToggle(t *testing.T) {
	m := planModel(t)
	m.showClosed = false // the only wall is closed
	out := m.renderPlanCanvas(40, 20)
	for _, r := range out {
		if r != ' ' && r != '\n' {
			t.Fatalf("expected blank canvas, found %q", r)
		}
	}
}

func TestGridBrailleEncoding(t *testing.T) {
	g := newGrid(2, 1)
	g.set(0, 0)
	rows := g.rows()
	require.Len(t, rows, 1)
	assert.Equal(t, rune(0x2801), []rune(rows[0])[0])
	assert.Equal(t, ' ', []rune(rows[0])[1])

	// out-of-range micro pixels are ignored
	g.set(-1, 0)
	g.set(100, 100)
}
