package geom

import (
	"io"

	"wallmap/internal/svg"
)

// Build interprets filtered wall records into plan geometry, accumulating
// the bounding box over every vertex. Records whose path data yields no
// points are kept: they still count as detected walls, they just have
// nothing to draw.
func Build(records []svg.PathRecord, scale float64) Data {
	var d Data
	for _, rec := range records {
		pts := svg.InterpretPath(rec.D, scale)
		width, _ := svg.StrokeWidth(rec.Style)
		closed := len(pts) >= 2 && pts[0] == pts[len(pts)-1]
		d.add(Wall{
			ID:          rec.ID,
			StrokeWidth: width,
			D:           rec.D,
			Style:       rec.Style,
			Points:      pts,
			Closed:      closed,
		})
	}
	return d
}

// Load reads an SVG floor plan and returns the detected wall geometry.
// A plan with no walls above the thresholds yields empty Data, not an
// error; only unreadable or malformed documents fail.
func Load(path string, opts svg.Options, scale float64) (Data, error) {
	doc, err := svg.ReadDocument(path)
	if err != nil {
		return Data{}, err
	}
	return Build(svg.FilterWalls(doc, opts), scale), nil
}

// LoadStream is Load for in-memory markup, used by the viewer's paste
// mode.
func LoadStream(r io.Reader, opts svg.Options, scale float64) (Data, error) {
	doc, err := svg.ReadDocumentStream(r)
	if err != nil {
		return Data{}, err
	}
	return Build(svg.FilterWalls(doc, opts), scale), nil
}
