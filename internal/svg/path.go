package svg

// InterpretPath walks a path data string and returns the traced points,
// each coordinate multiplied by scale. Only the absolute commands M, L, H,
// V and Z are understood: M and L both jump the current point to the given
// pair, H and V move a single axis, Z re-emits the starting point to close
// the shape. Every other token, including curve and arc commands, relative
// lowercase forms and stray numbers, advances the scan by exactly one
// token; guessing argument counts for unsupported commands would only hide
// the desync.
func InterpretPath(d string, scale float64) [][2]float64 {
	toks := tokenize(d)
	var points [][2]float64
	var cur [2]float64

	i := 0
	for i < len(toks) {
		t := toks[i]
		if t.kind != tokCommand {
			i++
			continue
		}
		switch t.cmd {
		case 'M', 'L':
			if i+2 < len(toks) && toks[i+1].kind == tokNumber && toks[i+2].kind == tokNumber {
				cur = [2]float64{toks[i+1].num * scale, toks[i+2].num * scale}
				points = append(points, cur)
				i += 3
				continue
			}
		case 'H':
			if i+1 < len(toks) && toks[i+1].kind == tokNumber {
				cur[0] = toks[i+1].num * scale
				points = append(points, cur)
				i += 2
				continue
			}
		case 'V':
			if i+1 < len(toks) && toks[i+1].kind == tokNumber {
				cur[1] = toks[i+1].num * scale
				points = append(points, cur)
				i += 2
				continue
			}
		case 'Z':
			// closing an empty path is a no-op, not a fault
			if len(points) > 0 {
				points = append(points, points[0])
			}
			i++
			continue
		}
		i++
	}
	return points
}
