package svg

import (
	"math"
	"strconv"
	"strings"
)

// Options are the two wall-detection thresholds. Both must be >= 0.
// StrokeWidthMin is a strict lower bound; SegmentLengthMin is inclusive.
type Options struct {
	StrokeWidthMin   float64
	SegmentLengthMin float64
}

// DefaultOptions returns thresholds that work well for typical CAD and
// Inkscape floor-plan exports, where walls carry the thickest strokes.
func DefaultOptions() Options {
	return Options{StrokeWidthMin: 0.5, SegmentLengthMin: 10.0}
}

// PathRecord is one path element that passed the wall filter. The raw d
// and style strings are kept whole for interpretation and reporting.
type PathRecord struct {
	ID    string
	D     string
	Style string
}

// FilterWalls scans doc for path elements that look like walls: a
// stroke-width declaration strictly above the threshold and a first line
// segment of at least the minimum length. Elements with a malformed style
// or path data are skipped, never an error.
func FilterWalls(doc *Document, opts Options) []PathRecord {
	var walls []PathRecord
	for _, el := range doc.Elements {
		if el.Tag != "path" {
			continue
		}
		width, ok := StrokeWidth(el.Style)
		if !ok || width <= opts.StrokeWidthMin {
			continue
		}
		length, ok := firstSegmentLength(el.D)
		if !ok || length < opts.SegmentLengthMin {
			continue
		}
		walls = append(walls, PathRecord{ID: el.ID, D: el.D, Style: el.Style})
	}
	return walls
}

// StrokeWidth extracts the stroke-width declaration from an inline style
// string: the substring after "stroke-width:" up to the next semicolon,
// with a trailing px unit stripped. Absent or unparseable declarations
// report (0, false).
func StrokeWidth(style string) (float64, bool) {
	_, rest, found := strings.Cut(style, "stroke-width:")
	if !found {
		return 0, false
	}
	if i := strings.IndexByte(rest, ';'); i >= 0 {
		rest = rest[:i]
	}
	rest = strings.TrimSuffix(strings.TrimSpace(rest), "px")
	w, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, false
	}
	return w, true
}

// firstSegmentLength probes the first two coordinate pairs of a path data
// string: fields 1,2 and 4,5 of the comma/whitespace split. The probe keys
// on positions, not command letters, assuming the common "M x y L x y"
// opening; paths shaped differently are measured as-is.
func firstSegmentLength(d string) (float64, bool) {
	fields := splitPathData(d)
	if len(fields) < 6 {
		return 0, false
	}
	x1, err1 := strconv.ParseFloat(fields[1], 64)
	y1, err2 := strconv.ParseFloat(fields[2], 64)
	x2, err3 := strconv.ParseFloat(fields[4], 64)
	y2, err4 := strconv.ParseFloat(fields[5], 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return 0, false
	}
	return math.Hypot(x2-x1, y2-y1), true
}
