package svg

import (
	"fmt"
	"math"

	"github.com/gogpu/svg/internal/stroke"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return "butt"
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

func (j LineJoin) String() string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	}
	return "miter"
}

// defaultMiterLimit matches the SVG initial value.
const defaultMiterLimit = 4.0

// Stroke defines the style for stroking paths. These are the strokes
// SVG can express natively through style properties.
type Stroke struct {
	// Width is the line width in user units. Zero requests the thinnest
	// visible line, written as the document's hairline width.
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	// Default: 4.0
	MiterLimit float64

	// Dash is the dash pattern. nil means a solid line.
	Dash *Dash
}

// DefaultStroke returns a solid 1-unit stroke with butt caps and
// miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithDashPattern returns a copy of the Stroke dashed with lengths.
// No lengths removes dashing.
func (s Stroke) WithDashPattern(lengths ...float64) Stroke {
	s.Dash = NewDash(lengths...)
	return s
}

// WithDashOffset returns a copy of the Stroke with the dash offset set.
// If there is no dash pattern, this has no effect.
func (s Stroke) WithDashOffset(offset float64) Stroke {
	if s.Dash != nil {
		s.Dash = s.Dash.WithOffset(offset)
	}
	return s
}

// IsDashed returns true if this stroke has a dash pattern.
func (s Stroke) IsDashed() bool {
	return s.Dash.IsDashed()
}

// Clone creates a deep copy of the Stroke.
func (s Stroke) Clone() Stroke {
	s.Dash = s.Dash.Clone()
	return s
}

// Validate reports whether the stroke can be written. Width must be
// finite and non-negative, the miter limit finite and at least 1, and dash entries
// non-negative with a positive sum.
func (s Stroke) Validate() error {
	if s.Width < 0 || math.IsNaN(s.Width) || math.IsInf(s.Width, 0) {
		return fmt.Errorf("svg: stroke width %v: %w", s.Width, ErrInvalidArgument)
	}
	if s.MiterLimit < 1 || math.IsNaN(s.MiterLimit) || math.IsInf(s.MiterLimit, 0) {
		return fmt.Errorf("svg: miter limit %v: %w", s.MiterLimit, ErrInvalidArgument)
	}
	if s.Cap < LineCapButt || s.Cap > LineCapSquare {
		return fmt.Errorf("svg: line cap %d: %w", s.Cap, ErrInvalidArgument)
	}
	if s.Join < LineJoinMiter || s.Join > LineJoinBevel {
		return fmt.Errorf("svg: line join %d: %w", s.Join, ErrInvalidArgument)
	}
	return s.Dash.validate()
}

// Outliner turns a path into the filled outline of its stroke. It
// covers pens SVG cannot express as a stroke style (calligraphic pens,
// variable width); the Context fills the returned outline with the
// current paint.
type Outliner interface {
	Outline(p *Path) *Path
}

// OutlineStroke is an Outliner that expands a regular Stroke into a
// polygonal outline. It is useful when the outline itself is wanted,
// for example to use a stroked shape as a clip.
type OutlineStroke Stroke

// Outline implements Outliner.
func (o OutlineStroke) Outline(p *Path) *Path {
	s := Stroke(o)
	if s.Width == 0 {
		s.Width = defaultHairline
	}
	if s.MiterLimit == 0 {
		s.MiterLimit = defaultMiterLimit
	}

	lines := p.polylines(flattenTolerance)
	if s.IsDashed() {
		lines = stroke.Dash(lines, s.Dash.Array, s.Dash.Offset)
	}
	polys := stroke.Outline(lines, stroke.Style{
		Width:      s.Width,
		Cap:        stroke.Cap(s.Cap),
		Join:       stroke.Join(s.Join),
		MiterLimit: s.MiterLimit,
	})

	out := NewPath()
	for _, poly := range polys {
		out.MoveTo(poly[0].X, poly[0].Y)
		for _, pt := range poly[1:] {
			out.LineTo(pt.X, pt.Y)
		}
		out.Close()
	}
	return out
}

// polylines flattens the path into open or closed runs for the stroker.
// Unlike Polygons it keeps open subpaths and two-point runs.
func (p *Path) polylines(tolerance float64) []stroke.Polyline {
	var (
		out []stroke.Polyline
		cur []stroke.Point
		pos Point
	)
	sp := func(q Point) stroke.Point { return stroke.Point{X: q.X, Y: q.Y} }
	flush := func(closed bool) {
		if len(cur) > 0 {
			out = append(out, stroke.Polyline{Points: cur, Closed: closed})
		}
		cur = nil
	}
	emit := func(q Point) { cur = append(cur, sp(q)) }
	tolSq := tolerance * tolerance

	for _, s := range p.segs {
		if s.Op != SegmentOpMoveTo && s.Op != SegmentOpClose && cur == nil {
			emit(pos)
		}
		switch s.Op {
		case SegmentOpMoveTo:
			flush(false)
			pos = s.Args[0]
			emit(pos)
		case SegmentOpLineTo:
			pos = s.Args[0]
			emit(pos)
		case SegmentOpQuadTo:
			flattenQuad(pos, s.Args[0], s.Args[1], tolSq, emit)
			pos = s.Args[1]
		case SegmentOpCubeTo:
			flattenCubic(pos, s.Args[0], s.Args[1], s.Args[2], tolSq, emit)
			pos = s.Args[2]
		case SegmentOpClose:
			if len(cur) > 0 {
				pos = Point{X: cur[0].X, Y: cur[0].Y}
			}
			flush(true)
		}
	}
	flush(false)
	return out
}
