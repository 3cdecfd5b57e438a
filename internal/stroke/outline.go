package stroke

import "math"

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

func (p Point) add(q Point) Point         { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) sub(q Point) Point         { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) scale(s float64) Point     { return Point{p.X * s, p.Y * s} }
func (p Point) dot(q Point) float64       { return p.X*q.X + p.Y*q.Y }
func (p Point) cross(q Point) float64     { return p.X*q.Y - p.Y*q.X }
func (p Point) length() float64           { return math.Hypot(p.X, p.Y) }
func (p Point) perp() Point               { return Point{-p.Y, p.X} }
func (p Point) lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Cap is the shape of an open polyline end.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join is the shape drawn where two segments meet.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Style describes the pen.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// arcSteps is the number of chords used for a full circle.
const arcSteps = 32

// Outline returns polygons covering the stroke of lines. A non-positive
// width yields nothing.
func Outline(lines []Polyline, style Style) [][]Point {
	if style.Width <= 0 || math.IsNaN(style.Width) {
		return nil
	}
	if style.MiterLimit < 1 {
		style.MiterLimit = 1
	}
	o := outliner{style: style, half: style.Width / 2}
	for _, l := range lines {
		o.polyline(l)
	}
	return o.out
}

type outliner struct {
	style Style
	half  float64
	out   [][]Point
}

func (o *outliner) emit(poly []Point) {
	if len(poly) < 3 {
		return
	}
	var area float64
	for i := range poly {
		area += poly[i].cross(poly[(i+1)%len(poly)])
	}
	if area == 0 {
		return
	}
	if area < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	o.out = append(o.out, poly)
}

func (o *outliner) polyline(l Polyline) {
	pts := dedupe(l.Points)
	if l.Closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	switch len(pts) {
	case 0:
		return
	case 1:
		// A zero-length subpath only shows its caps.
		switch o.style.Cap {
		case CapRound:
			o.emit(o.circle(pts[0]))
		case CapSquare:
			h := o.half
			c := pts[0]
			o.emit([]Point{{c.X - h, c.Y - h}, {c.X + h, c.Y - h}, {c.X + h, c.Y + h}, {c.X - h, c.Y + h}})
		}
		return
	}

	n := len(pts)
	segs := n - 1
	if l.Closed {
		segs = n
	}
	for i := range segs {
		a, b := pts[i], pts[(i+1)%n]
		nrm := normal(a, b, o.half)
		o.emit([]Point{a.add(nrm), b.add(nrm), b.sub(nrm), a.sub(nrm)})
	}

	if l.Closed {
		for i := range n {
			o.join(pts[(i+n-1)%n], pts[i], pts[(i+1)%n])
		}
		return
	}
	for i := 1; i < n-1; i++ {
		o.join(pts[i-1], pts[i], pts[i+1])
	}
	o.cap(pts[1], pts[0])
	o.cap(pts[n-2], pts[n-1])
}

// normal returns the unit normal of a->b scaled by h.
func normal(a, b Point, h float64) Point {
	d := b.sub(a)
	return d.perp().scale(h / d.length())
}

func (o *outliner) join(prev, at, next Point) {
	d0 := at.sub(prev)
	d1 := next.sub(at)
	turn := d0.cross(d1)
	if turn == 0 && d0.dot(d1) > 0 {
		return
	}
	if o.style.Join == JoinRound {
		o.emit(o.circle(at))
		return
	}
	n0 := normal(prev, at, o.half)
	n1 := normal(at, next, o.half)
	// The gap opens on the outside of the turn.
	if turn > 0 {
		n0, n1 = n0.scale(-1), n1.scale(-1)
	}
	a := at.add(n0)
	b := at.add(n1)
	if o.style.Join == JoinMiter {
		// Miter length over width is 1/sin(theta/2), theta the join angle.
		cosTheta := -d0.dot(d1) / (d0.length() * d1.length())
		sinHalf := math.Sqrt(math.Max(0, (1-cosTheta)/2))
		if sinHalf > 0 && 1/sinHalf <= o.style.MiterLimit {
			u0 := d0.scale(1 / d0.length())
			u1 := d1.scale(1 / d1.length())
			den := u0.cross(u1)
			if den != 0 {
				t := b.sub(a).cross(u1) / den
				tip := a.add(u0.scale(t))
				o.emit([]Point{at, a, tip, b})
				return
			}
		}
	}
	o.emit([]Point{at, a, b})
}

func (o *outliner) cap(from, end Point) {
	switch o.style.Cap {
	case CapRound:
		o.emit(o.circle(end))
	case CapSquare:
		d := end.sub(from)
		ext := d.scale(o.half / d.length())
		nrm := normal(from, end, o.half)
		o.emit([]Point{end.add(nrm), end.add(nrm).add(ext), end.sub(nrm).add(ext), end.sub(nrm)})
	}
}

func (o *outliner) circle(c Point) []Point {
	poly := make([]Point, arcSteps)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / arcSteps
		poly[i] = Point{c.X + o.half*math.Cos(a), c.Y + o.half*math.Sin(a)}
	}
	return poly
}

func dedupe(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}
