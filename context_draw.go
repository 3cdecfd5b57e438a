package svg

import (
	"fmt"
	"math"
	"strings"
)

// miterEpsilon is how far the miter limit must be from the default
// before it is written.
const miterEpsilon = 0.001

// Draw strokes s with the current stroke and paint.
func (c *Context) Draw(s Shape) error {
	if s == nil {
		return fmt.Errorf("svg: draw nil shape: %w", ErrInvalidArgument)
	}
	s = c.resolveShape(s)
	if c.st.outliner != nil {
		outline := c.st.outliner.Outline(ToPath(s))
		if outline == nil {
			return nil
		}
		return c.fillResolved(outline)
	}
	id, err := c.takeID()
	if err != nil {
		return err
	}
	c.writeShape(s, id, c.strokeStyle())
	return nil
}

// Fill fills s with the current paint.
func (c *Context) Fill(s Shape) error {
	if s == nil {
		return fmt.Errorf("svg: fill nil shape: %w", ErrInvalidArgument)
	}
	return c.fillResolved(c.resolveShape(s))
}

func (c *Context) fillResolved(s Shape) error {
	if r, ok := s.(Rect); ok && r.Empty() {
		return nil
	}
	id, err := c.takeID()
	if err != nil {
		return err
	}
	c.writeShape(s, id, c.fillStyle())
	return nil
}

// DrawLine strokes a line from (x1, y1) to (x2, y2).
func (c *Context) DrawLine(x1, y1, x2, y2 float64) error {
	return c.Draw(Line{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// DrawRectangle strokes a rectangle.
func (c *Context) DrawRectangle(x, y, w, h float64) error {
	return c.Draw(Rect{X: x, Y: y, W: w, H: h})
}

// FillRectangle fills a rectangle.
func (c *Context) FillRectangle(x, y, w, h float64) error {
	return c.Fill(Rect{X: x, Y: y, W: w, H: h})
}

// DrawCircle strokes a circle.
func (c *Context) DrawCircle(x, y, r float64) error {
	return c.Draw(Circle(x, y, r))
}

// FillCircle fills a circle.
func (c *Context) FillCircle(x, y, r float64) error {
	return c.Fill(Circle(x, y, r))
}

// ClearRect fills a rectangle with the background color, ignoring the
// current paint and alpha.
func (c *Context) ClearRect(x, y, w, h float64) error {
	r := Rect{X: x, Y: y, W: w, H: h}
	if r.Empty() {
		return nil
	}
	id, err := c.takeID()
	if err != nil {
		return err
	}
	var st style
	bg := c.st.background
	st.add("fill", bg.css())
	if bg.A < 1 {
		st.add("fill-opacity", c.format(bg.A))
	}
	c.writeShape(r, id, st.String())
	return nil
}

// resolveShape maps s onto one of the recognized variants.
func (c *Context) resolveShape(s Shape) Shape {
	switch s.(type) {
	case Line, Rect, Ellipse, *Path:
		return s
	}
	for _, a := range c.doc.opts.shapeAdapters {
		if r, ok := a(s); ok && r != nil {
			switch r.(type) {
			case Line, Rect, Ellipse, *Path:
				return r
			}
			return ToPath(r)
		}
	}
	return ToPath(s)
}

// writeShape appends the element for a resolved shape.
func (c *Context) writeShape(s Shape, id, styleAttr string) {
	f := c.format
	var e *element
	switch v := s.(type) {
	case Line:
		e = newElement("line").set("id", id).
			set("x1", f(v.X1)).set("y1", f(v.Y1)).
			set("x2", f(v.X2)).set("y2", f(v.Y2))
	case Rect:
		r := v.normalized()
		e = newElement("rect").set("id", id).
			set("x", f(r.X)).set("y", f(r.Y)).
			set("width", f(r.W)).set("height", f(r.H))
	case Ellipse:
		e = newElement("ellipse").set("id", id).
			set("cx", f(v.Cx)).set("cy", f(v.Cy)).
			set("rx", f(math.Abs(v.Rx))).set("ry", f(math.Abs(v.Ry)))
	default:
		p := ToPath(v)
		e = newElement("path").set("id", id).setRequired("d", PathData(p, c.doc.opts.num))
		if p.FillRule == FillEvenOdd {
			e.set("fill-rule", "evenodd")
		}
	}
	c.finishElement(e, styleAttr)
	e.empty(&c.doc.body)
}

// finishElement adds the attributes common to every drawable element.
func (c *Context) finishElement(e *element, styleAttr string) {
	e.set("style", styleAttr)
	e.set("transform", c.transformAttr())
	if ref := c.clipAttr(); ref != "" {
		e.set("clip-path", ref)
	}
}

func (c *Context) transformAttr() string {
	m := c.st.transform
	if m.IsIdentity() {
		return ""
	}
	v := m.svgValues()
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = c.format(x)
	}
	return "matrix(" + strings.Join(parts, ",") + ")"
}

func (c *Context) format(v float64) string {
	return c.doc.opts.num.Format(v)
}

// paintRef resolves the current paint to a color or url(#id) reference
// and the opacity it contributes.
func (c *Context) paintRef() (string, float64) {
	p := c.st.paint
	switch p.(type) {
	case Solid, *LinearGradient, *RadialGradient:
	default:
		p = c.adaptPaint(p)
	}
	switch v := p.(type) {
	case Solid:
		return v.Color.css(), v.Color.A
	case *LinearGradient, *RadialGradient:
		if id := c.doc.paints.Register(v); id != "" {
			return "url(#" + id + ")", 1
		}
	}
	return Black.css(), 1
}

func (c *Context) adaptPaint(p Paint) Paint {
	for _, a := range c.doc.opts.paintAdapters {
		if r, ok := a(p); ok && r != nil {
			return r
		}
	}
	Logger().Warn("svg: unsupported paint, using black", "type", fmt.Sprintf("%T", p))
	return Solid{Color: Black}
}

func (c *Context) strokeStyle() string {
	s := c.st.stroke
	ref, opacity := c.paintRef()
	opacity *= c.st.alpha

	var st style
	w := s.Width
	if w == 0 {
		w = c.doc.opts.hairline
	}
	st.add("stroke-width", c.format(w))
	st.add("stroke", ref)
	if opacity < 1 {
		st.add("stroke-opacity", c.format(opacity))
	}
	if s.Cap != LineCapButt {
		st.add("stroke-linecap", s.Cap.String())
	}
	if s.Join != LineJoinMiter {
		st.add("stroke-linejoin", s.Join.String())
	}
	if math.Abs(s.MiterLimit-defaultMiterLimit) > miterEpsilon {
		st.add("stroke-miterlimit", c.format(s.MiterLimit))
	}
	if s.IsDashed() {
		parts := make([]string, len(s.Dash.Array))
		for i, v := range s.Dash.Array {
			parts[i] = c.format(v)
		}
		st.add("stroke-dasharray", strings.Join(parts, ","))
		if s.Dash.Offset != 0 {
			st.add("stroke-dashoffset", c.format(s.Dash.Offset))
		}
	}
	st.add("fill", "none")
	c.appendCommonStyle(&st, false)
	return st.String()
}

func (c *Context) fillStyle() string {
	ref, opacity := c.paintRef()
	opacity *= c.st.alpha

	var st style
	st.add("fill", ref)
	if opacity < 1 {
		st.add("fill-opacity", c.format(opacity))
	}
	c.appendCommonStyle(&st, false)
	return st.String()
}

func (c *Context) appendCommonStyle(st *style, text bool) {
	if text {
		if c.st.hints.Text != TextRenderingAuto {
			st.add("text-rendering", c.st.hints.Text.String())
		}
	} else if c.st.hints.Shape != ShapeRenderingAuto {
		st.add("shape-rendering", c.st.hints.Shape.String())
	}
	st.append(c.st.extraStyle)
}
