package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// state is the per-context attribute set. It is a plain value: Create
// copies it, and nothing in it is shared between contexts except
// immutable clip regions.
type state struct {
	transform  Matrix
	clip       *Path // device space; nil when unset
	clipRef    clipRef
	paint      Paint
	color      RGBA
	stroke     Stroke
	outliner   Outliner
	font       Font
	alpha      float64
	background RGBA
	hints      RenderingHints
	extraStyle string
}

func (s state) clone() state {
	s.stroke = s.stroke.Clone()
	return s
}

// Context records drawing operations into a Document.
//
// Each context owns its transform, clip, paint, stroke, font and alpha.
// Contexts derived with Create share the document, so their markup is
// interleaved in call order and they intern into the same registries.
type Context struct {
	doc    *Document
	st     state
	nextID string
}

func newContext(d *Document) *Context {
	return &Context{
		doc: d,
		st: state{
			transform:  Identity(),
			paint:      Solid{Color: Black},
			color:      Black,
			stroke:     DefaultStroke(),
			font:       DefaultFont,
			alpha:      1,
			background: White,
		},
	}
}

// Document returns the document the context draws into.
func (c *Context) Document() *Document { return c.doc }

// Create returns a child context with a copy of this context's
// attributes. Changing the child's attributes never affects the parent.
// An id pending from SetNextID moves to the child.
func (c *Context) Create() *Context {
	child := &Context{doc: c.doc, st: c.st.clone(), nextID: c.nextID}
	c.nextID = ""
	return child
}

// SetTransform replaces the current transform.
func (c *Context) SetTransform(m Matrix) {
	c.st.transform = m
	c.st.clipRef.invalidate()
}

// Transform concatenates m onto the current transform, so m applies
// to coordinates before the existing transform does.
func (c *Context) Transform(m Matrix) {
	c.SetTransform(c.st.transform.Multiply(m))
}

// Translate applies a translation.
func (c *Context) Translate(x, y float64) {
	c.Transform(Translate(x, y))
}

// Scale applies a scale.
func (c *Context) Scale(sx, sy float64) {
	c.Transform(Scale(sx, sy))
}

// Rotate applies a rotation (angle in radians).
func (c *Context) Rotate(angle float64) {
	c.Transform(Rotate(angle))
}

// RotateAbout rotates around the point (x, y).
func (c *Context) RotateAbout(angle, x, y float64) {
	c.Translate(x, y)
	c.Rotate(angle)
	c.Translate(-x, -y)
}

// Shear applies a shear.
func (c *Context) Shear(x, y float64) {
	c.Transform(Shear(x, y))
}

// Identity resets the transform.
func (c *Context) Identity() {
	c.SetTransform(Identity())
}

// GetTransform returns the current transform.
func (c *Context) GetTransform() Matrix {
	return c.st.transform
}

// SetPaint sets the fill and stroke paint. A nil paint is ignored. A
// Solid paint also becomes the current color.
func (c *Context) SetPaint(p Paint) {
	if p == nil {
		return
	}
	c.st.paint = p
	if s, ok := p.(Solid); ok {
		c.st.color = s.Color
	}
}

// Paint returns the current paint.
func (c *Context) Paint() Paint { return c.st.paint }

// SetColor sets a solid paint and the current color.
func (c *Context) SetColor(col RGBA) {
	c.st.paint = Solid{Color: col}
	c.st.color = col
}

// Color returns the current color. It is the last solid color set and
// does not change when a gradient is selected.
func (c *Context) Color() RGBA { return c.st.color }

// SetRGB sets an opaque color from components in [0, 1].
func (c *Context) SetRGB(r, g, b float64) { c.SetColor(RGB(r, g, b)) }

// SetRGBA sets a color from components in [0, 1].
func (c *Context) SetRGBA(r, g, b, a float64) { c.SetColor(RGBA2(r, g, b, a)) }

// SetHexColor sets a color from a hex string like "#ff8800".
func (c *Context) SetHexColor(hex string) { c.SetColor(Hex(hex)) }

// SetStroke sets the pen used by Draw. It replaces any custom stroke.
func (c *Context) SetStroke(s Stroke) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.st.stroke = s.Clone()
	c.st.outliner = nil
	return nil
}

// Stroke returns a copy of the current stroke.
func (c *Context) Stroke() Stroke { return c.st.stroke.Clone() }

// SetCustomStroke makes Draw fill the outline o produces instead of
// writing a stroke style. SetStroke switches back to a regular stroke.
func (c *Context) SetCustomStroke(o Outliner) error {
	if o == nil {
		return fmt.Errorf("svg: nil outliner: %w", ErrInvalidArgument)
	}
	c.st.outliner = o
	return nil
}

// SetLineWidth changes the width of the current stroke.
func (c *Context) SetLineWidth(w float64) error {
	return c.SetStroke(c.st.stroke.WithWidth(w))
}

// SetLineCap changes the cap of the current stroke.
func (c *Context) SetLineCap(lineCap LineCap) error {
	return c.SetStroke(c.st.stroke.WithCap(lineCap))
}

// SetLineJoin changes the join of the current stroke.
func (c *Context) SetLineJoin(join LineJoin) error {
	return c.SetStroke(c.st.stroke.WithJoin(join))
}

// SetDash changes the dash pattern of the current stroke. No lengths
// makes the stroke solid.
func (c *Context) SetDash(lengths ...float64) error {
	return c.SetStroke(c.st.stroke.WithDashPattern(lengths...))
}

// SetDashOffset changes the dash offset of the current stroke.
func (c *Context) SetDashOffset(offset float64) error {
	return c.SetStroke(c.st.stroke.WithDashOffset(offset))
}

// SetFont sets the text font. The zero Font is ignored.
func (c *Context) SetFont(f Font) {
	if f.IsZero() {
		return
	}
	c.st.font = f
}

// Font returns the current font.
func (c *Context) Font() Font { return c.st.font }

// SetAlpha sets the composite alpha multiplied into every opacity.
func (c *Context) SetAlpha(a float64) error {
	if a < 0 || a > 1 || math.IsNaN(a) {
		return fmt.Errorf("svg: alpha %v outside [0, 1]: %w", a, ErrInvalidArgument)
	}
	c.st.alpha = a
	return nil
}

// Alpha returns the composite alpha.
func (c *Context) Alpha() float64 { return c.st.alpha }

// SetBackground sets the color used by ClearRect.
func (c *Context) SetBackground(col RGBA) { c.st.background = col }

// Background returns the color used by ClearRect.
func (c *Context) Background() RGBA { return c.st.background }

// SetRenderingHints sets the shape-rendering and text-rendering hints.
func (c *Context) SetRenderingHints(h RenderingHints) { c.st.hints = h }

// RenderingHints returns the current hints.
func (c *Context) RenderingHints() RenderingHints { return c.st.hints }

// SetExtraStyle appends CSS declarations such as "mix-blend-mode:
// multiply" to the style of every following element. The input is
// parsed and normalized; an empty string clears it.
func (c *Context) SetExtraStyle(css string) error {
	css = strings.TrimSpace(css)
	if css == "" {
		c.st.extraStyle = ""
		return nil
	}
	// The parser only completes a declaration at its terminator.
	if !strings.HasSuffix(css, ";") {
		css += ";"
	}
	decls, err := parser.ParseDeclarations(css)
	if err != nil {
		return fmt.Errorf("svg: extra style %q: %v: %w", css, err, ErrInvalidArgument)
	}
	var s style
	for _, d := range decls {
		if d.Property == "" || d.Value == "" {
			return fmt.Errorf("svg: extra style %q: incomplete declaration: %w", css, ErrInvalidArgument)
		}
		v := d.Value
		if d.Important {
			v += " !important"
		}
		s.add(d.Property, v)
	}
	c.st.extraStyle = s.String()
	return nil
}

// SetNextID sets the id of the next element written by this context.
// The id is checked for uniqueness when that element is written.
func (c *Context) SetNextID(id string) {
	c.nextID = id
}

// takeID consumes the pending id, registering it with the document.
func (c *Context) takeID() (string, error) {
	id := c.nextID
	if id == "" {
		return "", nil
	}
	c.nextID = ""
	id = xmlSafe(id)
	if err := c.doc.RegisterID(id); err != nil {
		return "", err
	}
	return id, nil
}

// BeginGroup opens a g element. A non-empty id is registered like an
// element id. Groups nest and are closed with EndGroup.
func (c *Context) BeginGroup(id string) error {
	if id != "" {
		id = xmlSafe(id)
		if err := c.doc.RegisterID(id); err != nil {
			return err
		}
	}
	newElement("g").set("id", id).open(&c.doc.body)
	c.doc.groups++
	return nil
}

// EndGroup closes the innermost open group.
func (c *Context) EndGroup() error {
	if c.doc.groups == 0 {
		return ErrGroupUnderflow
	}
	closeTag(&c.doc.body, "g")
	c.doc.groups--
	return nil
}
