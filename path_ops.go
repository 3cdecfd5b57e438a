package svg

import "math"

// flattenTolerance is the maximum distance between a curve and its
// polyline approximation, in device units.
const flattenTolerance = 0.1

// Bounds returns the control-point bounding box of the path. The box of
// an empty path is the zero Bounds.
func (p *Path) Bounds() Bounds {
	var b Bounds
	first := true
	for _, s := range p.segs {
		n := argCount(s.Op)
		for i := range n {
			if first {
				b = Bounds{Min: s.Args[i], Max: s.Args[i]}
				first = false
				continue
			}
			b = b.extend(s.Args[i])
		}
	}
	return b
}

func argCount(op SegmentOp) int {
	switch op {
	case SegmentOpMoveTo, SegmentOpLineTo:
		return 1
	case SegmentOpQuadTo:
		return 2
	case SegmentOpCubeTo:
		return 3
	}
	return 0
}

// Polygons flattens the path into closed polylines, one per subpath.
// Curves are subdivided until they lie within tolerance of their chords.
// Subpaths with fewer than three vertices are dropped.
func (p *Path) Polygons(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = flattenTolerance
	}
	var (
		polys [][]Point
		cur   []Point
		pos   Point
	)
	flush := func() {
		if len(cur) > 1 && cur[0] == cur[len(cur)-1] {
			cur = cur[:len(cur)-1]
		}
		if len(cur) >= 3 {
			polys = append(polys, cur)
		}
		cur = nil
	}
	emit := func(pt Point) { cur = append(cur, pt) }

	for _, s := range p.segs {
		switch s.Op {
		case SegmentOpMoveTo:
			flush()
			pos = s.Args[0]
			emit(pos)
		case SegmentOpLineTo:
			if cur == nil {
				emit(pos)
			}
			pos = s.Args[0]
			emit(pos)
		case SegmentOpQuadTo:
			if cur == nil {
				emit(pos)
			}
			flattenQuad(pos, s.Args[0], s.Args[1], tolerance*tolerance, emit)
			pos = s.Args[1]
		case SegmentOpCubeTo:
			if cur == nil {
				emit(pos)
			}
			flattenCubic(pos, s.Args[0], s.Args[1], s.Args[2], tolerance*tolerance, emit)
			pos = s.Args[2]
		case SegmentOpClose:
			if len(cur) > 0 {
				pos = cur[0]
			}
			flush()
		}
	}
	flush()
	return polys
}

func flattenQuad(p0, p1, p2 Point, tolSq float64, fn func(Point)) {
	mid := p0.Lerp(p2, 0.5)
	d := p1.Sub(mid)
	if d.X*d.X+d.Y*d.Y <= tolSq {
		fn(p2)
		return
	}
	// de Casteljau split at t = 0.5
	a := p0.Lerp(p1, 0.5)
	b := p1.Lerp(p2, 0.5)
	m := a.Lerp(b, 0.5)
	flattenQuad(p0, a, m, tolSq, fn)
	flattenQuad(m, b, p2, tolSq, fn)
}

func flattenCubic(p0, p1, p2, p3 Point, tolSq float64, fn func(Point)) {
	// Squared flatness bound: max deviation of the control points from
	// the chord's parametric positions, scaled by 9/16.
	ux := 3*p1.X - 2*p0.X - p3.X
	uy := 3*p1.Y - 2*p0.Y - p3.Y
	vx := 3*p2.X - p0.X - 2*p3.X
	vy := 3*p2.Y - p0.Y - 2*p3.Y
	flat := math.Max(ux*ux, vx*vx) + math.Max(uy*uy, vy*vy)
	if flat <= 16*tolSq {
		fn(p3)
		return
	}
	a := p0.Lerp(p1, 0.5)
	b := p1.Lerp(p2, 0.5)
	c := p2.Lerp(p3, 0.5)
	ab := a.Lerp(b, 0.5)
	bc := b.Lerp(c, 0.5)
	m := ab.Lerp(bc, 0.5)
	flattenCubic(p0, a, ab, m, tolSq, fn)
	flattenCubic(m, bc, c, p3, tolSq, fn)
}

// axisRect reports whether the path is a single closed axis-aligned
// rectangle and returns its bounds.
func (p *Path) axisRect() (Bounds, bool) {
	var pts []Point
	closed := false
	for i, s := range p.segs {
		switch s.Op {
		case SegmentOpMoveTo:
			if i != 0 {
				return Bounds{}, false
			}
			pts = append(pts, s.Args[0])
		case SegmentOpLineTo:
			if closed {
				return Bounds{}, false
			}
			pts = append(pts, s.Args[0])
		case SegmentOpClose:
			closed = true
		default:
			return Bounds{}, false
		}
	}
	if len(pts) == 5 && pts[4] == pts[0] {
		pts = pts[:4]
		closed = true
	}
	if !closed || len(pts) != 4 {
		return Bounds{}, false
	}
	for i := range 4 {
		a, b := pts[i], pts[(i+1)%4]
		if a.X != b.X && a.Y != b.Y {
			return Bounds{}, false
		}
	}
	b := Bounds{Min: pts[0], Max: pts[0]}
	for _, pt := range pts[1:] {
		b = b.extend(pt)
	}
	if b.Empty() {
		return b, true
	}
	// Both diagonals must span the box.
	for i := range 2 {
		a, c := pts[i], pts[i+2]
		if a.X == c.X || a.Y == c.Y {
			return Bounds{}, false
		}
	}
	return b, true
}

// signedArea returns the shoelace area; positive for counter-clockwise
// polygons in a y-up frame.
func signedArea(poly []Point) float64 {
	var a float64
	for i := range poly {
		a += poly[i].Cross(poly[(i+1)%len(poly)])
	}
	return a / 2
}

// polygonPath builds a closed path from polygons.
func polygonPath(polys [][]Point) *Path {
	p := NewPath()
	for _, poly := range polys {
		if len(poly) == 0 {
			continue
		}
		p.MoveTo(poly[0].X, poly[0].Y)
		for _, pt := range poly[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		p.Close()
	}
	return p
}
