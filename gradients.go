package svg

import (
	"math"
	"strconv"
	"strings"
)

// Id namespaces for interned paints.
const (
	twoStopPrefix = "gp"
	linearPrefix  = "lgp"
	radialPrefix  = "rgp"
)

// PaintRegistry interns gradient definitions by value. Two gradients
// with the same geometry, extend mode and ordered stops share one id,
// whichever variable they were built in. Each kind of gradient draws
// ids from its own counter.
type PaintRegistry struct {
	prefix string
	num    NumberFormatter
	ids    map[string]string
	defs   []string
	next   map[string]int
}

// NewPaintRegistry creates an empty registry whose ids start with prefix.
func NewPaintRegistry(prefix string, f NumberFormatter) *PaintRegistry {
	if f == nil {
		f = ShortestFormatter{}
	}
	return &PaintRegistry{
		prefix: prefix,
		num:    f,
		ids:    make(map[string]string),
		next:   make(map[string]int),
	}
}

// Register returns the id of the definition for g, adding the definition
// on first sight. g must be a *LinearGradient or *RadialGradient; other
// paints have no definition and yield "".
func (r *PaintRegistry) Register(g Paint) string {
	var key, ns string
	switch g := g.(type) {
	case *LinearGradient:
		if g == nil {
			return ""
		}
		key = linearKey(g)
		ns = linearPrefix
		if g.isTwoStop() {
			ns = twoStopPrefix
		}
	case *RadialGradient:
		if g == nil {
			return ""
		}
		key = radialKey(g)
		ns = radialPrefix
	default:
		return ""
	}

	if id, ok := r.ids[key]; ok {
		return id
	}
	n := r.next[ns]
	r.next[ns] = n + 1
	id := r.prefix + ns + strconv.Itoa(n)
	r.ids[key] = id
	r.defs = append(r.defs, r.definition(id, g))
	Logger().Debug("svg: gradient registered", "id", id)
	return id
}

// Len returns the number of definitions.
func (r *PaintRegistry) Len() int { return len(r.defs) }

// Definitions returns every definition in first-registration order.
func (r *PaintRegistry) Definitions() string {
	return strings.Join(r.defs, "")
}

func (r *PaintRegistry) definition(id string, p Paint) string {
	var (
		e      *element
		stops  []ColorStop
		extend ExtendMode
	)
	f := r.num.Format
	switch g := p.(type) {
	case *LinearGradient:
		e = newElement("linearGradient").set("id", id).
			set("x1", f(g.Start.X)).set("y1", f(g.Start.Y)).
			set("x2", f(g.End.X)).set("y2", f(g.End.Y))
		stops, extend = g.Stops, g.Extend
	case *RadialGradient:
		e = newElement("radialGradient").set("id", id).
			set("cx", f(g.Center.X)).set("cy", f(g.Center.Y)).
			set("r", f(g.Radius))
		if g.Focus != g.Center {
			e.set("fx", f(g.Focus.X)).set("fy", f(g.Focus.Y))
		}
		if g.FocusRadius != 0 {
			e.set("fr", f(g.FocusRadius))
		}
		stops, extend = g.Stops, g.Extend
	}
	e.set("gradientUnits", "userSpaceOnUse")
	if extend != ExtendPad {
		e.set("spreadMethod", extend.String())
	}

	var sb strings.Builder
	e.open(&sb)
	for _, s := range stops {
		se := newElement("stop").
			set("offset", f(s.Offset*100)+"%").
			set("stop-color", s.Color.css())
		if s.Color.A < 1 {
			se.set("stop-opacity", f(s.Color.A))
		}
		se.empty(&sb)
	}
	closeTag(&sb, e.name)
	return sb.String()
}

// keyWriter builds structural keys from exact float bits.
type keyWriter struct {
	b []byte
}

func (k *keyWriter) float(v float64) {
	k.b = strconv.AppendUint(k.b, math.Float64bits(v), 16)
	k.b = append(k.b, ',')
}

func (k *keyWriter) stops(stops []ColorStop) {
	for _, s := range stops {
		k.float(s.Offset)
		k.float(s.Color.R)
		k.float(s.Color.G)
		k.float(s.Color.B)
		k.float(s.Color.A)
	}
}

func linearKey(g *LinearGradient) string {
	k := keyWriter{b: []byte("L")}
	k.float(g.Start.X)
	k.float(g.Start.Y)
	k.float(g.End.X)
	k.float(g.End.Y)
	k.b = strconv.AppendInt(k.b, int64(g.Extend), 10)
	k.b = append(k.b, '|')
	k.stops(g.Stops)
	return string(k.b)
}

func radialKey(g *RadialGradient) string {
	k := keyWriter{b: []byte("R")}
	k.float(g.Center.X)
	k.float(g.Center.Y)
	k.float(g.Focus.X)
	k.float(g.Focus.Y)
	k.float(g.Radius)
	k.float(g.FocusRadius)
	k.b = strconv.AppendInt(k.b, int64(g.Extend), 10)
	k.b = append(k.b, '|')
	k.stops(g.Stops)
	return string(k.b)
}
