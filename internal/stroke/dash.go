package stroke

import "math"

// Dash splits polylines into dash runs following pattern, which
// alternates on and off lengths starting at offset. Odd-length patterns
// repeat twice, as in SVG. A pattern without a positive sum returns lines
// unchanged.
func Dash(lines []Polyline, pattern []float64, offset float64) []Polyline {
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64(nil), pattern...), pattern...)
	}
	var total float64
	for _, v := range pattern {
		total += v
	}
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return lines
	}

	var out []Polyline
	for _, l := range lines {
		out = dashOne(out, l, pattern, total, offset)
	}
	return out
}

func dashOne(out []Polyline, l Polyline, pattern []float64, total, offset float64) []Polyline {
	pts := l.Points
	if l.Closed && len(pts) > 0 && pts[0] != pts[len(pts)-1] {
		pts = append(append([]Point(nil), pts...), pts[0])
	}
	if len(pts) < 2 {
		return out
	}

	// Locate the starting position within the pattern.
	offset = math.Mod(offset, total)
	if offset < 0 {
		offset += total
	}
	idx := 0
	for offset >= pattern[idx] {
		offset -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	remaining := pattern[idx] - offset
	on := idx%2 == 0

	var cur []Point
	if on {
		cur = []Point{pts[0]}
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := b.sub(a).length()
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			p := a.lerp(b, pos/segLen)
			if on {
				cur = append(cur, p)
				out = append(out, Polyline{Points: cur})
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
		remaining -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, Polyline{Points: cur})
	}
	return out
}
