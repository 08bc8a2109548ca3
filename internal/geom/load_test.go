package geom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallmap/internal/svg"
)

func TestLoadFloorPlan(t *testing.T) {
	d, err := Load("testdata/floorplan.svg", svg.DefaultOptions(), 1)
	require.NoError(t, err)
	require.Len(t, d.Walls, 2)

	outer := d.Walls[0]
	assert.Equal(t, "outer", outer.ID)
	assert.Equal(t, 2.0, outer.StrokeWidth)
	assert.True(t, outer.Closed)
	assert.Equal(t, [][2]float64{{10, 10}, {190, 10}, {190, 140}, {10, 140}, {10, 10}}, outer.Points)

	partition := d.Walls[1]
	assert.Equal(t, "partition", partition.ID)
	assert.Equal(t, 1.5, partition.StrokeWidth)
	assert.False(t, partition.Closed)
	assert.Len(t, partition.Points, 2)

	assert.Equal(t, BBox{MinX: 10, MinY: 10, MaxX: 190, MaxY: 140}, d.BBox)
}

func TestLoadAppliesScale(t *testing.T) {
	d, err := Load("testdata/floorplan.svg", svg.DefaultOptions(), 100)
	require.NoError(t, err)
	require.Len(t, d.Walls, 2)
	assert.Equal(t, [2]float64{1000, 1000}, d.Walls[0].Points[0])
	assert.Equal(t, 19000.0, d.BBox.MaxX)
}

func TestLoadStreamNoWalls(t *testing.T) {
	const markup = `<svg xmlns="http://www.w3.org/2000/svg">
  <path d="M 0 0 L 100 0" style="stroke-width:0.2px;"/>
</svg>`
	d, err := LoadStream(strings.NewReader(markup), svg.DefaultOptions(), 1)
	require.NoError(t, err)
	assert.Empty(t, d.Walls)
}

func TestLoadStreamMalformed(t *testing.T) {
	_, err := LoadStream(strings.NewReader(`<svg><path d="M 0 0`), svg.DefaultOptions(), 1)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/nope.svg", svg.DefaultOptions(), 1)
	assert.Error(t, err)
}

func TestBuildKeepsWallsWithoutGeometry(t *testing.T) {
	records := []svg.PathRecord{
		{ID: "odd", D: "X 0 0 Y 20 0", Style: "stroke-width:2px;"},
		{ID: "ok", D: "M 0 0 L 20 0", Style: "stroke-width:2px;"},
	}
	d := Build(records, 1)
	require.Len(t, d.Walls, 2)
	assert.Empty(t, d.Walls[0].Points)
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 20, MaxY: 0}, d.BBox)
}

func TestSample(t *testing.T) {
	var d Data
	for i := 0; i < 5; i++ {
		d.add(Wall{ID: "w"})
	}
	assert.Len(t, d.Sample(3), 3)
	assert.Len(t, Data{}.Sample(3), 0)
}
