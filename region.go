package svg

import (
	"cmp"
	"math"
	"slices"
)

// Exact intersection of flattened regions under arbitrary fill rules.
//
// Every edge of both operands is split at each point where it meets
// another edge, so no two pieces cross. A piece lies on the boundary of
// the result when the points just left and just right of its midpoint
// disagree about being inside both operands. Boundary pieces are turned
// so the inside is on their left and chained into loops. The loops wind
// once around every covered point, so the result fills correctly under
// the nonzero rule whatever rules the operands used.

// regionEdge is a directed edge of a flattened region.
type regionEdge struct {
	a, b Point
}

// edgeCut is a split point on an edge at parameter t.
type edgeCut struct {
	t float64
	p Point
}

// intersectPolygons returns the loops bounding the area inside both a
// (under rule ra) and b (under rule rb). The loops use the nonzero rule.
func intersectPolygons(a [][]Point, ra FillRule, b [][]Point, rb FillRule) [][]Point {
	edges := append(polygonEdges(a), polygonEdges(b)...)
	if len(edges) == 0 {
		return nil
	}
	tol := regionTolerance(edges)
	inside := func(p Point) bool {
		return insideRegion(a, ra, p) && insideRegion(b, rb, p)
	}

	var kept []regionEdge
	seen := make(map[regionEdge]bool)
	for _, e := range splitEdges(edges, tol) {
		d := e.b.Sub(e.a)
		l := math.Hypot(d.X, d.Y)
		if l <= tol {
			continue
		}
		mid := e.a.Lerp(e.b, 0.5)
		n := Point{X: -d.Y / l * tol, Y: d.X / l * tol}
		left, right := inside(mid.Add(n)), inside(mid.Sub(n))
		if left == right {
			continue
		}
		if !left {
			e.a, e.b = e.b, e.a
		}
		// Coincident edges of the two operands classify identically.
		if seen[e] {
			continue
		}
		seen[e] = true
		kept = append(kept, e)
	}
	return chainLoops(kept, tol)
}

func polygonEdges(polys [][]Point) []regionEdge {
	var edges []regionEdge
	for _, poly := range polys {
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			if a != b {
				edges = append(edges, regionEdge{a: a, b: b})
			}
		}
	}
	return edges
}

// regionTolerance scales the geometric epsilon to the coordinates in use.
func regionTolerance(edges []regionEdge) float64 {
	extent := 1.0
	for _, e := range edges {
		extent = max(extent, math.Abs(e.a.X), math.Abs(e.a.Y))
	}
	return extent * 1e-9
}

// insideRegion reports whether p is covered by polys under rule.
func insideRegion(polys [][]Point, rule FillRule, p Point) bool {
	w := 0
	for _, poly := range polys {
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			side := b.Sub(a).Cross(p.Sub(a))
			if a.Y <= p.Y {
				if b.Y > p.Y && side > 0 {
					w++
				}
			} else if b.Y <= p.Y && side < 0 {
				w--
			}
		}
	}
	if rule == FillEvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// splitEdges cuts every edge where another edge crosses or touches it.
// Both edges of a crossing receive the same Point value, so the pieces
// can later be chained by exact equality.
func splitEdges(edges []regionEdge, tol float64) []regionEdge {
	cuts := make([][]edgeCut, len(edges))
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			crossEdges(edges, i, j, tol, cuts)
		}
	}

	out := make([]regionEdge, 0, len(edges))
	for i, e := range edges {
		cs := cuts[i]
		slices.SortFunc(cs, func(x, y edgeCut) int { return cmp.Compare(x.t, y.t) })
		prev := e.a
		for _, c := range cs {
			if c.p.Distance(prev) <= tol || c.p.Distance(e.b) <= tol {
				continue
			}
			out = append(out, regionEdge{a: prev, b: c.p})
			prev = c.p
		}
		out = append(out, regionEdge{a: prev, b: e.b})
	}
	return out
}

func crossEdges(edges []regionEdge, i, j int, tol float64, cuts [][]edgeCut) {
	e, f := edges[i], edges[j]
	d, g := e.b.Sub(e.a), f.b.Sub(f.a)
	ld, lg := math.Hypot(d.X, d.Y), math.Hypot(g.X, g.Y)
	w := f.a.Sub(e.a)
	den := d.Cross(g)

	if math.Abs(den) <= 1e-12*ld*lg {
		// Parallel edges only meet when collinear; each is cut at the
		// other's endpoints.
		if math.Abs(w.Cross(d))/ld > tol {
			return
		}
		cutAt(cuts, i, e, f.a, tol)
		cutAt(cuts, i, e, f.b, tol)
		cutAt(cuts, j, f, e.a, tol)
		cutAt(cuts, j, f, e.b, tol)
		return
	}

	t := w.Cross(g) / den
	u := w.Cross(d) / den
	et, gt := tol/ld, tol/lg
	if t < -et || t > 1+et || u < -gt || u > 1+gt {
		return
	}
	var p Point
	switch {
	case u <= gt:
		p = f.a
	case u >= 1-gt:
		p = f.b
	case t <= et:
		p = e.a
	case t >= 1-et:
		p = e.b
	default:
		p = e.a.Add(d.Mul(t))
	}
	cuts[i] = append(cuts[i], edgeCut{t: t, p: p})
	cuts[j] = append(cuts[j], edgeCut{t: u, p: p})
}

// cutAt records p as a cut of edge e when it lies strictly inside it.
func cutAt(cuts [][]edgeCut, i int, e regionEdge, p Point, tol float64) {
	d := e.b.Sub(e.a)
	l2 := d.X*d.X + d.Y*d.Y
	r := p.Sub(e.a)
	t := (r.X*d.X + r.Y*d.Y) / l2
	et := tol / math.Sqrt(l2)
	if t > et && t < 1-et {
		cuts[i] = append(cuts[i], edgeCut{t: t, p: p})
	}
}

// chainLoops links directed edges head to tail. Ends that miss an exact
// match are joined to the nearest free edge within a small snap distance;
// chains that cannot be closed are dropped.
func chainLoops(edges []regionEdge, tol float64) [][]Point {
	starts := make(map[Point][]int, len(edges))
	for i, e := range edges {
		starts[e.a] = append(starts[e.a], i)
	}
	used := make([]bool, len(edges))
	snap := tol * 1e3

	next := func(p Point) int {
		for _, k := range starts[p] {
			if !used[k] {
				return k
			}
		}
		best, bestDist := -1, snap
		for k, e := range edges {
			if used[k] {
				continue
			}
			if dist := e.a.Distance(p); dist <= bestDist {
				best, bestDist = k, dist
			}
		}
		return best
	}

	var loops [][]Point
	for i := range edges {
		if used[i] {
			continue
		}
		used[i] = true
		start := edges[i].a
		loop := []Point{start}
		end := edges[i].b
		closed := false
		for range edges {
			if end.Distance(start) <= snap {
				closed = true
				break
			}
			loop = append(loop, end)
			k := next(end)
			if k < 0 {
				break
			}
			used[k] = true
			end = edges[k].b
		}
		if !closed {
			Logger().Debug("svg: dropped open clip boundary", "points", len(loop))
			continue
		}
		if loop = simplifyLoop(loop, tol); len(loop) >= 3 && math.Abs(signedArea(loop)) > tol {
			loops = append(loops, loop)
		}
	}
	return loops
}

// simplifyLoop removes repeated, collinear and spike vertices.
func simplifyLoop(pts []Point, tol float64) []Point {
	for changed := true; changed && len(pts) >= 3; {
		changed = false
		for i := 0; len(pts) >= 3 && i < len(pts); {
			n := len(pts)
			prev, cur, next := pts[(i+n-1)%n], pts[i], pts[(i+1)%n]
			d := next.Sub(prev)
			l := math.Hypot(d.X, d.Y)
			r, s := cur.Sub(prev), cur.Sub(next)
			if l <= tol || (math.Abs(d.Cross(r))/l <= tol && r.X*s.X+r.Y*s.Y <= 0) {
				pts = slices.Delete(pts, i, i+1)
				changed = true
				if i > 0 {
					i--
				}
				continue
			}
			i++
		}
	}
	if len(pts) < 3 {
		return nil
	}
	return pts
}
