package svg

import "iter"

// Shape is anything that can describe its outline as a segment sequence.
//
// Line, Rect, Ellipse and *Path are recognized and get dedicated output
// elements. Any other implementation is normalized into a *Path by
// iterating its segments, unless a shape adapter registered with
// WithShapeAdapter converts it first.
type Shape interface {
	Segments() iter.Seq[Segment]
}

// Line is a straight line from (X1, Y1) to (X2, Y2).
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Segments implements Shape.
func (l Line) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if !yield(Segment{Op: SegmentOpMoveTo, Args: [3]Point{{X: l.X1, Y: l.Y1}}}) {
			return
		}
		yield(Segment{Op: SegmentOpLineTo, Args: [3]Point{{X: l.X2, Y: l.Y2}}})
	}
}

// Rect is an axis-aligned rectangle with its origin at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// Segments implements Shape.
func (r Rect) Segments() iter.Seq[Segment] {
	p := NewPath()
	p.Rectangle(r.X, r.Y, r.W, r.H)
	return p.Segments()
}

// normalized returns the rectangle with non-negative width and height.
func (r Rect) normalized() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.W == 0 || r.H == 0
}

// Ellipse is an axis-aligned ellipse centered on (Cx, Cy).
type Ellipse struct {
	Cx, Cy, Rx, Ry float64
}

// Circle returns an Ellipse with equal radii.
func Circle(cx, cy, r float64) Ellipse {
	return Ellipse{Cx: cx, Cy: cy, Rx: r, Ry: r}
}

// Segments implements Shape.
func (e Ellipse) Segments() iter.Seq[Segment] {
	p := NewPath()
	p.Ellipse(e.Cx, e.Cy, e.Rx, e.Ry)
	return p.Segments()
}

// RoundedRect returns a path for a rectangle with corner radius r.
func RoundedRect(x, y, w, h, r float64) *Path {
	p := NewPath()
	p.RoundedRectangle(x, y, w, h, r)
	return p
}

// ShapeAdapter converts a foreign shape into one of the recognized
// variants. It returns false when it does not handle s.
type ShapeAdapter func(s Shape) (Shape, bool)

// ToPath normalizes any shape into a *Path. A *Path argument is returned
// as is; callers that mutate the result must Clone it first.
func ToPath(s Shape) *Path {
	if p, ok := s.(*Path); ok {
		return p
	}
	p := NewPath()
	if s == nil {
		return p
	}
	if fr, ok := s.(interface{ FillRule() FillRule }); ok {
		p.FillRule = fr.FillRule()
	}
	for seg := range s.Segments() {
		p.Append(seg)
	}
	return p
}
