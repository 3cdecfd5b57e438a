package svg

import (
	"math"
	"slices"
)

// Paint is the color source for fills and strokes.
//
// Solid, *LinearGradient and *RadialGradient are written natively. Other
// implementations are offered to the paint adapters registered with
// WithPaintAdapter; when none accepts them they are painted solid black.
type Paint interface {
	// ColorAt returns the color at the given user-space point.
	ColorAt(x, y float64) RGBA
}

// PaintAdapter converts a foreign paint into one of the recognized
// variants. It returns false when it does not handle p.
type PaintAdapter func(p Paint) (Paint, bool)

// Solid is a single uniform color.
type Solid struct {
	Color RGBA
}

// SolidColor returns a Solid paint.
func SolidColor(c RGBA) Solid { return Solid{Color: c} }

// ColorAt implements Paint.
func (s Solid) ColorAt(_, _ float64) RGBA { return s.Color }

// ExtendMode defines how gradients extend beyond their defined bounds.
// It maps to the spreadMethod attribute.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

func (m ExtendMode) String() string {
	switch m {
	case ExtendRepeat:
		return "repeat"
	case ExtendReflect:
		return "reflect"
	}
	return "pad"
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA
}

// LinearGradient is a color transition along the line from Start to End.
//
//	g := svg.NewLinearGradient(0, 0, 100, 0).
//	    AddColorStop(0, svg.Red).
//	    AddColorStop(0.5, svg.Yellow).
//	    AddColorStop(1, svg.Blue)
type LinearGradient struct {
	Start  Point
	End    Point
	Stops  []ColorStop
	Extend ExtendMode
}

// NewLinearGradient creates a gradient from (x0, y0) to (x1, y1) with no stops.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		Start: Point{X: x0, Y: y0},
		End:   Point{X: x1, Y: y1},
	}
}

// NewTwoColorGradient creates a pad gradient from c0 at (x0, y0) to c1
// at (x1, y1).
func NewTwoColorGradient(x0, y0 float64, c0 RGBA, x1, y1 float64, c1 RGBA) *LinearGradient {
	return NewLinearGradient(x0, y0, x1, y1).AddColorStop(0, c0).AddColorStop(1, c1)
}

// AddColorStop appends a stop and returns the gradient for chaining.
// Stops must be added in non-decreasing offset order.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode and returns the gradient for chaining.
func (g *LinearGradient) SetExtend(mode ExtendMode) *LinearGradient {
	g.Extend = mode
	return g
}

// isTwoStop reports whether the gradient is the simple two-color form.
func (g *LinearGradient) isTwoStop() bool {
	return len(g.Stops) == 2 && g.Stops[0].Offset == 0 && g.Stops[1].Offset == 1
}

// ColorAt implements Paint.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	d := g.End.Sub(g.Start)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return firstStopColor(g.Stops)
	}
	t := ((x-g.Start.X)*d.X + (y-g.Start.Y)*d.Y) / lenSq
	return colorAtOffset(g.Stops, t, g.Extend)
}

// RadialGradient radiates from Focus to the circle of radius Radius
// around Center. FocusRadius is the radius of the starting circle
// (the fr attribute) and is usually zero.
type RadialGradient struct {
	Center      Point
	Focus       Point
	Radius      float64
	FocusRadius float64
	Stops       []ColorStop
	Extend      ExtendMode
}

// NewRadialGradient creates a gradient centered on (cx, cy) with the
// focus at the center.
func NewRadialGradient(cx, cy, r float64) *RadialGradient {
	c := Point{X: cx, Y: cy}
	return &RadialGradient{Center: c, Focus: c, Radius: r}
}

// SetFocus sets the focal point and returns the gradient for chaining.
func (g *RadialGradient) SetFocus(fx, fy float64) *RadialGradient {
	g.Focus = Point{X: fx, Y: fy}
	return g
}

// AddColorStop appends a stop and returns the gradient for chaining.
func (g *RadialGradient) AddColorStop(offset float64, c RGBA) *RadialGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode and returns the gradient for chaining.
func (g *RadialGradient) SetExtend(mode ExtendMode) *RadialGradient {
	g.Extend = mode
	return g
}

// ColorAt implements Paint. It solves for the largest t where the point
// lies on the circle interpolated between the focal and outer circles.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	dr := g.Radius - g.FocusRadius
	cd := g.Center.Sub(g.Focus)
	pd := Point{X: x - g.Focus.X, Y: y - g.Focus.Y}

	a := cd.X*cd.X + cd.Y*cd.Y - dr*dr
	b := pd.X*cd.X + pd.Y*cd.Y + g.FocusRadius*dr
	c := pd.X*pd.X + pd.Y*pd.Y - g.FocusRadius*g.FocusRadius

	var t float64
	if a == 0 {
		if b == 0 {
			return firstStopColor(g.Stops)
		}
		t = c / (2 * b)
	} else {
		disc := b*b - a*c
		if disc < 0 {
			return Transparent
		}
		s := math.Sqrt(disc)
		t = math.Max((b+s)/a, (b-s)/a)
	}
	return colorAtOffset(g.Stops, t, g.Extend)
}

func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return stops[0].Color
}

func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		return t - math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
		return t
	}
	return math.Max(0, math.Min(1, t))
}

// colorAtOffset interpolates in sRGB, the SVG default color-interpolation.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}
	t = applyExtendMode(t, mode)
	idx, _ := slices.BinarySearchFunc(stops, t, func(s ColorStop, t float64) int {
		switch {
		case s.Offset < t:
			return -1
		case s.Offset > t:
			return 1
		}
		return 0
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}
	s0, s1 := stops[idx-1], stops[idx]
	if s1.Offset == s0.Offset {
		return s0.Color
	}
	return s0.Color.Lerp(s1.Color, (t-s0.Offset)/(s1.Offset-s0.Offset))
}
