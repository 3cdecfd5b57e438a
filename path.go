package svg

import (
	"iter"
	"math"
)

// SegmentOp is the kind of a path segment.
type SegmentOp uint8

// Segment operations. The number of meaningful Args depends on the op:
// one point for move and line, two for quadratic, three for cubic and
// none for close.
const (
	SegmentOpMoveTo SegmentOp = iota
	SegmentOpLineTo
	SegmentOpQuadTo
	SegmentOpCubeTo
	SegmentOpClose
)

// Segment is a single path command with its control and end points.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// End returns the point the segment finishes at. Close segments have no
// end point of their own and return the zero point.
func (s Segment) End() Point {
	switch s.Op {
	case SegmentOpMoveTo, SegmentOpLineTo:
		return s.Args[0]
	case SegmentOpQuadTo:
		return s.Args[1]
	case SegmentOpCubeTo:
		return s.Args[2]
	}
	return Point{}
}

// FillRule selects how the interior of a self-intersecting path is decided.
type FillRule uint8

const (
	// FillNonZero is the default winding rule.
	FillNonZero FillRule = iota
	// FillEvenOdd emits fill-rule="evenodd".
	FillEvenOdd
)

// Path is a generic multi-segment path. The zero value is an empty path
// using the non-zero winding rule.
type Path struct {
	segs     []Segment
	start    Point // Starting point of current subpath
	current  Point
	FillRule FillRule
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{segs: make([]Segment, 0, 16)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Op: SegmentOpMoveTo, Args: [3]Point{pt}})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Op: SegmentOpLineTo, Args: [3]Point{pt}})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Op: SegmentOpQuadTo, Args: [3]Point{Pt(cx, cy), pt}})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Op: SegmentOpCubeTo, Args: [3]Point{Pt(c1x, c1y), Pt(c2x, c2y), pt}})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.segs = append(p.segs, Segment{Op: SegmentOpClose})
	p.current = p.start
}

// Append adds a segment, keeping the current point in sync.
func (p *Path) Append(s Segment) {
	switch s.Op {
	case SegmentOpMoveTo:
		p.MoveTo(s.Args[0].X, s.Args[0].Y)
	case SegmentOpClose:
		p.Close()
	default:
		p.segs = append(p.segs, s)
		p.current = s.End()
	}
}

// Segments yields the path's segments in order.
func (p *Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, s := range p.segs {
			if !yield(s) {
				return
			}
		}
	}
}

// Len returns the number of segments.
func (p *Path) Len() int { return len(p.segs) }

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool { return len(p.segs) == 0 }

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.segs) > 0
}

// Transform returns a copy of the path with every point mapped by m.
func (p *Path) Transform(m Matrix) *Path {
	result := &Path{segs: make([]Segment, len(p.segs)), FillRule: p.FillRule}
	for i, s := range p.segs {
		for j := range s.Args {
			s.Args[j] = m.TransformPoint(s.Args[j])
		}
		result.segs[i] = s
	}
	result.start = m.TransformPoint(p.start)
	result.current = m.TransformPoint(p.current)
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		segs:     make([]Segment, len(p.segs)),
		start:    p.start,
		current:  p.current,
		FillRule: p.FillRule,
	}
	copy(result.segs, p.segs)
	return result
}

// Rectangle adds a closed rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// kappa is 4/3 * (sqrt(2) - 1), the cubic Bezier quarter-circle constant.
const kappa = 0.5522847498307936

// Ellipse adds a closed ellipse subpath made of four cubic curves.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox := rx * kappa
	oy := ry * kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Arc adds a circular arc from angle1 to angle2 (radians) around (cx, cy).
// If the path already has a current point, a line joins it to the arc start.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	start := Pt(cx+r*math.Cos(angle1), cy+r*math.Sin(angle1))
	if !p.HasCurrentPoint() {
		p.MoveTo(start.X, start.Y)
	} else if p.current.Distance(start) > 1e-9 {
		p.LineTo(start.X, start.Y)
	}

	// At most a quarter turn per cubic.
	n := int(math.Ceil((angle2 - angle1) / (math.Pi / 2)))
	if n == 0 {
		return
	}
	step := (angle2 - angle1) / float64(n)
	for i := range n {
		a1 := angle1 + float64(i)*step
		p.arcSegment(cx, cy, r, a1, a1+step)
	}
}

func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := cx+r*cos1, cy+r*sin1
	x2, y2 := cx+r*cos2, cy+r*sin2

	p.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}

// RoundedRectangle adds a rectangle with rounded corners. The radius is
// clamped to half of the smaller side.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		p.Rectangle(x, y, w, h)
		return
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	p.Close()
}
