package svg

import (
	"errors"
	"image"
	"image/color"
	"iter"
	"math"
	"strings"
	"testing"
)

func newTestContext(opts ...Option) *Context {
	return NewContext(100, 100, append([]Option{WithIDPrefix("p-")}, opts...)...)
}

func body(c *Context) string {
	s := c.Document().String()
	i := strings.Index(s, ">")
	return strings.TrimSuffix(s[i+1:], "</svg>")
}

func TestFillRectangleSolid(t *testing.T) {
	dc := newTestContext()
	dc.SetRGB(0.2, 0.4, 0.6)
	if err := dc.FillRectangle(10, 20, 30, 40); err != nil {
		t.Fatal(err)
	}

	want := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="100" height="100">` +
		`<rect x="10" y="20" width="30" height="40" style="fill:rgb(51,102,153)"/></svg>`
	if got := dc.Document().String(); got != want {
		t.Errorf("document:\n got %s\nwant %s", got, want)
	}
}

func TestGradientSharedByEqualValues(t *testing.T) {
	dc := newTestContext()
	dc.SetPaint(NewTwoColorGradient(10, 0, Red, 40, 0, Blue))
	if err := dc.FillRectangle(10, 20, 30, 40); err != nil {
		t.Fatal(err)
	}
	dc.SetPaint(NewTwoColorGradient(10, 0, Red, 40, 0, Blue))
	if err := dc.FillRectangle(10, 20, 30, 40); err != nil {
		t.Fatal(err)
	}

	got := dc.Document().String()
	if n := strings.Count(got, "<linearGradient "); n != 1 {
		t.Errorf("got %d linearGradient definitions, want 1", n)
	}
	if n := strings.Count(got, `<rect x="10" y="20" width="30" height="40" style="fill:url(#p-gp0)"/>`); n != 2 {
		t.Errorf("got %d rects referencing p-gp0, want 2\n%s", n, got)
	}
	if dc.Color() != Black {
		t.Errorf("Color() = %v, gradients must not change the current color", dc.Color())
	}
}

func TestClipIsNotAFilter(t *testing.T) {
	dc := newTestContext()
	dc.ClipRect(0, 0, 10, 10)
	if err := dc.DrawLine(50, 50, 60, 60); err != nil {
		t.Fatal(err)
	}

	got := dc.Document().String()
	wantLine := `<line x1="50" y1="50" x2="60" y2="60" style="stroke-width:1;stroke:rgb(0,0,0);fill:none" clip-path="url(#p-clip-0)"/>`
	if !strings.Contains(got, wantLine) {
		t.Errorf("missing clipped line\n%s", got)
	}
	if !strings.Contains(got, `<defs><clipPath id="p-clip-0"><path d="M 0 0 L 10 0 L 10 10 L 0 10 Z"/></clipPath></defs>`) {
		t.Errorf("missing clip definition\n%s", got)
	}
}

func TestClipWithSingularTransform(t *testing.T) {
	dc := newTestContext()
	dc.Scale(0, 0)
	dc.SetClip(Rect{X: 0, Y: 0, W: 10, H: 10})
	if !dc.HasClip() {
		t.Error("HasClip() = false after SetClip")
	}
	if got := dc.GetClip(); got != nil {
		t.Errorf("GetClip() = %s, want nil", PathData(got, nil))
	}
	if err := dc.FillRectangle(0, 0, 5, 5); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(body(dc), "clip-path") {
		t.Error("element under a singular transform must not reference a clip")
	}
}

func TestClipFollowsTransform(t *testing.T) {
	dc := newTestContext()
	dc.ClipRect(0, 0, 10, 10)
	dc.FillRectangle(0, 0, 1, 1)
	dc.Translate(5, 5)

	clip := dc.GetClip()
	if got, want := PathData(clip, nil), "M -5 -5 L 5 -5 L 5 5 L -5 5 Z"; got != want {
		t.Errorf("GetClip() = %q, want %q", got, want)
	}
	dc.FillRectangle(0, 0, 1, 1)
	dc.Translate(-5, -5)
	dc.FillRectangle(0, 0, 1, 1)

	got := body(dc)
	if n := strings.Count(got, "url(#p-clip-0)"); n != 2 {
		t.Errorf("p-clip-0 referenced %d times, want 2\n%s", n, got)
	}
	if n := strings.Count(got, "url(#p-clip-1)"); n != 1 {
		t.Errorf("p-clip-1 referenced %d times, want 1\n%s", n, got)
	}
	if n := dc.Document().Clips().Len(); n != 2 {
		t.Errorf("clip definitions = %d, want 2", n)
	}
}

func TestClipIntersection(t *testing.T) {
	dc := newTestContext()
	dc.ClipRect(0, 0, 10, 10)
	dc.ClipRect(5, 5, 10, 10)
	if got, want := PathData(dc.GetClip(), nil), "M 5 5 L 10 5 L 10 10 L 5 10 Z"; got != want {
		t.Errorf("GetClip() = %q, want %q", got, want)
	}

	dc.ClipRect(50, 50, 1, 1)
	if !dc.HasClip() {
		t.Fatal("disjoint clip must not remove the clip")
	}
	if !dc.GetClip().IsEmpty() {
		t.Error("disjoint clip should be empty")
	}
	if err := dc.FillRectangle(0, 0, 20, 20); err != nil {
		t.Fatal(err)
	}
	got := dc.Document().String()
	if !strings.Contains(got, `<clipPath id="p-clip-0"><path d=""/></clipPath>`) {
		t.Errorf("empty clip region must keep its d attribute\n%s", got)
	}
	if !strings.Contains(got, `clip-path="url(#p-clip-0)"`) {
		t.Errorf("rectangle does not reference the empty clip\n%s", got)
	}

	dc.ResetClip()
	if dc.HasClip() || dc.GetClip() != nil {
		t.Error("ResetClip did not remove the clip")
	}
}

func TestCreateIsolatesState(t *testing.T) {
	dc := newTestContext()
	dc.SetColor(Blue)
	child := dc.Create()
	child.SetColor(Red)
	child.Translate(10, 10)
	child.ClipRect(0, 0, 5, 5)
	if err := child.SetLineWidth(3); err != nil {
		t.Fatal(err)
	}

	if dc.Color() != Blue {
		t.Errorf("parent color = %v, want blue", dc.Color())
	}
	if !dc.GetTransform().IsIdentity() {
		t.Error("parent transform changed")
	}
	if dc.HasClip() {
		t.Error("parent gained a clip")
	}
	if dc.Stroke().Width != 1 {
		t.Errorf("parent stroke width = %v, want 1", dc.Stroke().Width)
	}

	dc.FillRectangle(0, 0, 1, 1)
	child.FillRectangle(0, 0, 1, 1)
	dc.FillRectangle(2, 2, 1, 1)
	got := body(dc)
	first := strings.Index(got, `x="0" y="0" width="1" height="1" style="fill:rgb(0,0,255)"`)
	second := strings.Index(got, `style="fill:rgb(255,0,0)" transform="matrix(1,0,0,1,10,10)"`)
	third := strings.Index(got, `x="2" y="2"`)
	if first < 0 || second < 0 || third < 0 || !(first < second && second < third) {
		t.Errorf("child output not interleaved in call order\n%s", got)
	}
}

func TestCreateDeepCopiesDash(t *testing.T) {
	dc := newTestContext()
	if err := dc.SetDash(4, 2); err != nil {
		t.Fatal(err)
	}
	child := dc.Create()
	child.st.stroke.Dash.Array[0] = 9
	if dc.Stroke().Dash.Array[0] != 4 {
		t.Error("child shares the parent's dash array")
	}
}

func TestCreateTakesPendingID(t *testing.T) {
	dc := newTestContext()
	dc.SetNextID("inner")
	child := dc.Create()
	if err := child.FillRectangle(0, 0, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := dc.FillRectangle(2, 2, 1, 1); err != nil {
		t.Fatal(err)
	}
	got := body(dc)
	if !strings.Contains(got, `<rect id="inner" x="0" y="0"`) {
		t.Errorf("child did not take the pending id\n%s", got)
	}
	if strings.Count(got, `id="inner"`) != 1 {
		t.Errorf("pending id written more than once\n%s", got)
	}
}

func TestTransformAttribute(t *testing.T) {
	dc := newTestContext()
	dc.Translate(10, 20)
	dc.Scale(2, 3)
	dc.FillRectangle(0, 0, 1, 1)
	if got := body(dc); !strings.Contains(got, `transform="matrix(2,0,0,3,10,20)"`) {
		t.Errorf("missing transform attribute\n%s", got)
	}
}

func TestStrokeStyle(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Context) error
		want  string
	}{
		{
			name:  "default",
			setup: func(*Context) error { return nil },
			want:  "stroke-width:1;stroke:rgb(0,0,0);fill:none",
		},
		{
			name:  "hairline",
			setup: func(c *Context) error { return c.SetLineWidth(0) },
			want:  "stroke-width:0.1;stroke:rgb(0,0,0);fill:none",
		},
		{
			name: "caps and joins",
			setup: func(c *Context) error {
				if err := c.SetLineCap(LineCapRound); err != nil {
					return err
				}
				return c.SetLineJoin(LineJoinBevel)
			},
			want: "stroke-width:1;stroke:rgb(0,0,0);stroke-linecap:round;stroke-linejoin:bevel;fill:none",
		},
		{
			name:  "miter near default",
			setup: func(c *Context) error { return c.SetStroke(DefaultStroke().WithMiterLimit(4.0005)) },
			want:  "stroke-width:1;stroke:rgb(0,0,0);fill:none",
		},
		{
			name:  "miter",
			setup: func(c *Context) error { return c.SetStroke(DefaultStroke().WithMiterLimit(10)) },
			want:  "stroke-width:1;stroke:rgb(0,0,0);stroke-miterlimit:10;fill:none",
		},
		{
			name: "dash",
			setup: func(c *Context) error {
				if err := c.SetDash(5, 3.5); err != nil {
					return err
				}
				return c.SetDashOffset(2)
			},
			want: "stroke-width:1;stroke:rgb(0,0,0);stroke-dasharray:5,3.5;stroke-dashoffset:2;fill:none",
		},
		{
			name: "alpha",
			setup: func(c *Context) error {
				c.SetRGBA(1, 0, 0, 0.5)
				return c.SetAlpha(0.5)
			},
			want: "stroke-width:1;stroke:rgb(255,0,0);stroke-opacity:0.25;fill:none",
		},
		{
			name: "hints",
			setup: func(c *Context) error {
				c.SetRenderingHints(RenderingHints{Shape: ShapeRenderingCrispEdges})
				return nil
			},
			want: "stroke-width:1;stroke:rgb(0,0,0);fill:none;shape-rendering:crispEdges",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := newTestContext()
			if err := tt.setup(dc); err != nil {
				t.Fatal(err)
			}
			if err := dc.DrawLine(0, 0, 1, 1); err != nil {
				t.Fatal(err)
			}
			if got := body(dc); !strings.Contains(got, `style="`+tt.want+`"`) {
				t.Errorf("got %s\nwant style %q", got, tt.want)
			}
		})
	}
}

func TestInvalidArguments(t *testing.T) {
	dc := newTestContext()
	checks := []struct {
		name string
		err  error
	}{
		{"negative width", dc.SetLineWidth(-1)},
		{"miter below one", dc.SetStroke(DefaultStroke().WithMiterLimit(0.5))},
		{"infinite miter", dc.SetStroke(DefaultStroke().WithMiterLimit(math.Inf(1)))},
		{"negative dash", dc.SetDash(1, -1)},
		{"zero dash", dc.SetDash(0, 0)},
		{"alpha", dc.SetAlpha(1.5)},
		{"nil outliner", dc.SetCustomStroke(nil)},
		{"nil shape", dc.Fill(nil)},
		{"nil image", dc.DrawImage(nil, 0, 0)},
	}
	for _, c := range checks {
		if !errors.Is(c.err, ErrInvalidArgument) {
			t.Errorf("%s: error = %v, want ErrInvalidArgument", c.name, c.err)
		}
	}
	if dc.Stroke().Width != 1 {
		t.Error("failed setter changed the stroke")
	}
}

func TestElementIDs(t *testing.T) {
	dc := newTestContext()
	dc.SetNextID("box")
	if err := dc.FillRectangle(0, 0, 1, 1); err != nil {
		t.Fatal(err)
	}
	dc.SetNextID("box")
	if err := dc.FillRectangle(0, 0, 2, 2); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate id error = %v, want ErrDuplicateID", err)
	}

	got := body(dc)
	if !strings.Contains(got, `<rect id="box" x="0"`) {
		t.Errorf("missing id attribute\n%s", got)
	}
	if strings.Contains(got, `width="2"`) {
		t.Error("element with duplicate id was written")
	}
	if ids := dc.Document().IDs(); len(ids) != 1 || ids[0] != "box" {
		t.Errorf("IDs() = %v", ids)
	}
}

func TestGroups(t *testing.T) {
	dc := newTestContext()
	if err := dc.BeginGroup("layer"); err != nil {
		t.Fatal(err)
	}
	dc.FillRectangle(0, 0, 1, 1)
	if err := dc.BeginGroup(""); err != nil {
		t.Fatal(err)
	}
	if err := dc.EndGroup(); err != nil {
		t.Fatal(err)
	}

	// The outer group is still open; assembly closes it.
	got := dc.Document().String()
	if !strings.HasSuffix(got, `<g id="layer"><rect x="0" y="0" width="1" height="1" style="fill:rgb(0,0,0)"/><g></g></g></svg>`) {
		t.Errorf("unexpected group markup\n%s", got)
	}

	if err := dc.EndGroup(); err != nil {
		t.Fatal(err)
	}
	if err := dc.EndGroup(); !errors.Is(err, ErrGroupUnderflow) {
		t.Errorf("EndGroup() error = %v, want ErrGroupUnderflow", err)
	}
	if err := dc.BeginGroup("layer"); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("BeginGroup(dup) error = %v, want ErrDuplicateID", err)
	}
}

func TestShapeElements(t *testing.T) {
	dc := newTestContext()
	dc.FillCircle(5, 6, 2)
	dc.Fill(Ellipse{Cx: 1, Cy: 2, Rx: -3, Ry: 4})
	dc.FillRectangle(10, 10, -5, -5)
	dc.FillRectangle(0, 0, 0, 10)

	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(4, 0)
	p.LineTo(0, 4)
	p.Close()
	p.FillRule = FillEvenOdd
	dc.Fill(p)
	dc.Fill(NewPath())

	got := body(dc)
	for _, want := range []string{
		`<ellipse cx="5" cy="6" rx="2" ry="2" `,
		`<ellipse cx="1" cy="2" rx="3" ry="4" `,
		`<rect x="5" y="5" width="5" height="5" `,
		`<path d="M 0 0 L 4 0 L 0 4 Z" fill-rule="evenodd" `,
		`<path d="" `,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q\n%s", want, got)
		}
	}
	if strings.Contains(got, `width="0"`) {
		t.Error("empty rectangle was written")
	}
}

type triangle struct{ x, y, size float64 }

func (tr triangle) Segments() iter.Seq[Segment] {
	p := NewPath()
	p.MoveTo(tr.x, tr.y)
	p.LineTo(tr.x+tr.size, tr.y)
	p.LineTo(tr.x, tr.y+tr.size)
	p.Close()
	return p.Segments()
}

func TestForeignShapes(t *testing.T) {
	dc := newTestContext()
	dc.Fill(triangle{0, 0, 2})
	if got := body(dc); !strings.Contains(got, `<path d="M 0 0 L 2 0 L 0 2 Z"`) {
		t.Errorf("foreign shape not flattened into a path\n%s", got)
	}

	dc = newTestContext(WithShapeAdapter(func(s Shape) (Shape, bool) {
		tr, ok := s.(triangle)
		if !ok {
			return nil, false
		}
		return Rect{X: tr.x, Y: tr.y, W: tr.size, H: tr.size}, true
	}))
	dc.Fill(triangle{1, 1, 3})
	if got := body(dc); !strings.Contains(got, `<rect x="1" y="1" width="3" height="3"`) {
		t.Errorf("shape adapter not applied\n%s", got)
	}
}

func TestPaintAdapter(t *testing.T) {
	dc := newTestContext(WithPaintAdapter(func(p Paint) (Paint, bool) {
		if _, ok := p.(foreignPaint); ok {
			return Solid{Color: Green}, true
		}
		return nil, false
	}))
	dc.SetPaint(foreignPaint{})
	dc.FillRectangle(0, 0, 1, 1)
	if got := body(dc); !strings.Contains(got, "fill:rgb(0,255,0)") {
		t.Errorf("paint adapter not applied\n%s", got)
	}
}

func TestCustomStroke(t *testing.T) {
	dc := newTestContext()
	if err := dc.SetCustomStroke(OutlineStroke(DefaultStroke().WithWidth(2))); err != nil {
		t.Fatal(err)
	}
	dc.DrawLine(0, 0, 10, 0)
	got := body(dc)
	if !strings.HasPrefix(got, `<path d="M `) || !strings.Contains(got, `style="fill:rgb(0,0,0)"`) {
		t.Errorf("custom stroke should fill the outline\n%s", got)
	}
	if strings.Contains(got, "stroke-width") {
		t.Error("custom stroke must not write a stroke style")
	}

	if err := dc.SetStroke(DefaultStroke()); err != nil {
		t.Fatal(err)
	}
	dc.DrawLine(0, 0, 10, 0)
	if got := body(dc); !strings.Contains(got, "<line ") {
		t.Error("SetStroke did not restore the regular stroke")
	}
}

func TestExtraStyle(t *testing.T) {
	dc := newTestContext()
	if err := dc.SetExtraStyle("mix-blend-mode: multiply;  filter : blur(2px)"); err != nil {
		t.Fatal(err)
	}
	dc.FillRectangle(0, 0, 1, 1)
	if got := body(dc); !strings.Contains(got, `style="fill:rgb(0,0,0);mix-blend-mode:multiply;filter:blur(2px)"`) {
		t.Errorf("extra style not appended\n%s", got)
	}

	if err := dc.SetExtraStyle(""); err != nil {
		t.Fatal(err)
	}
	dc.FillRectangle(2, 2, 1, 1)
	if got := body(dc); strings.Count(got, "mix-blend-mode") != 1 {
		t.Error("empty extra style should clear it")
	}
}

func TestDrawString(t *testing.T) {
	dc := newTestContext()
	dc.SetFont(Font{Family: "Serif", Size: 10, Weight: 700, Style: FontStyleItalic})
	if err := dc.DrawString("a<b & c", 10, 20); err != nil {
		t.Fatal(err)
	}
	dc.DrawString("  padded", 0, 0)
	dc.DrawString("", 0, 0)

	got := body(dc)
	want := `<text x="10" y="20" style="fill:rgb(0,0,0);font-family:Serif;font-size:10px;font-weight:700;font-style:italic">a&lt;b &amp; c</text>`
	if !strings.Contains(got, want) {
		t.Errorf("got %s\nwant %s", got, want)
	}
	if !strings.Contains(got, `xml:space="preserve"`) {
		t.Error("leading spaces need xml:space")
	}
	if n := strings.Count(got, "<text"); n != 2 {
		t.Errorf("got %d text elements, want 2", n)
	}
}

func TestDrawStringSanitizesText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"control characters", "a\x00b\x1bc", ">abc</text>"},
		{"invalid utf-8", "a\xffb", ">a\uFFFDb</text>"},
		{"noncharacter", "a\uFFFEb", ">ab</text>"},
		{"tab kept", "a\tb", ">a\tb</text>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := newTestContext()
			if err := dc.DrawString(tt.in, 0, 0); err != nil {
				t.Fatal(err)
			}
			if got := body(dc); !strings.Contains(got, tt.want) {
				t.Errorf("got %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestElementIDSanitized(t *testing.T) {
	dc := newTestContext()
	dc.SetNextID("a\x01b")
	if err := dc.FillRectangle(0, 0, 1, 1); err != nil {
		t.Fatal(err)
	}
	if got := body(dc); !strings.Contains(got, `<rect id="ab"`) {
		t.Errorf("id not sanitized\n%s", got)
	}
	dc.SetNextID("ab")
	if err := dc.FillRectangle(0, 0, 1, 1); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("sanitized ids must collide: error = %v, want ErrDuplicateID", err)
	}
}

func TestFontFamilyMapper(t *testing.T) {
	dc := newTestContext(WithFontFamilyMapper(func(f string) string { return f + ", sans-serif" }))
	dc.SetFont(Font{Family: "Dialog", Size: 12})
	dc.DrawString("x", 0, 0)
	if got := body(dc); !strings.Contains(got, "font-family:Dialog, sans-serif") {
		t.Errorf("family mapper not applied\n%s", got)
	}
}

type boxOutliner struct{}

func (boxOutliner) GlyphPath(f Font, s string, x, y float64) (*Path, error) {
	p := NewPath()
	p.Rectangle(x, y-f.Size, float64(len(s))*f.Size/2, f.Size)
	return p, nil
}

func TestTextAsShapes(t *testing.T) {
	dc := newTestContext(WithTextAsShapes(true), WithGlyphOutliner(boxOutliner{}))
	dc.SetFont(Font{Family: "x", Size: 10})
	dc.DrawString("ab", 0, 20)
	got := body(dc)
	if strings.Contains(got, "<text") {
		t.Error("text written as a text element")
	}
	if !strings.Contains(got, `<path d="M 0 10 L 10 10 L 10 20 L 0 20 Z"`) {
		t.Errorf("glyph outline missing\n%s", got)
	}
}

func TestDrawStringAnchored(t *testing.T) {
	dc := newTestContext()
	w, h := dc.MeasureString("abcd")
	if w <= 0 || h != DefaultFont.Size {
		t.Fatalf("MeasureString = %v, %v", w, h)
	}
	dc.DrawStringAnchored("abcd", 50, 50, 0.5, 0.5)
	got := body(dc)
	want := `x="` + ShortestFormatter{}.Format(50-w/2) + `" y="` + ShortestFormatter{}.Format(50+h/2) + `"`
	if !strings.Contains(got, want) {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := range 4 {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	return img
}

func TestDrawImageEmbedded(t *testing.T) {
	dc := newTestContext()
	if err := dc.SetAlpha(0.5); err != nil {
		t.Fatal(err)
	}
	if err := dc.DrawImage(testImage(), 1, 2); err != nil {
		t.Fatal(err)
	}
	got := body(dc)
	if !strings.HasPrefix(got, `<image x="1" y="2" width="4" height="2" preserveAspectRatio="none" xlink:href="data:image/png;base64,`) {
		t.Errorf("unexpected image element\n%s", got)
	}
	if !strings.Contains(got, `style="opacity:0.5"`) {
		t.Errorf("missing opacity\n%s", got)
	}
}

func TestDrawImageExternal(t *testing.T) {
	dc := newTestContext(WithImageMode(ImageExternal), WithImageEncoder(JPEGEncoder{}))
	img := testImage()
	if err := dc.DrawImageScaled(img, 0, 0, 8, 4); err != nil {
		t.Fatal(err)
	}
	if err := dc.DrawImageRegion(img, image.Rect(0, 0, 2, 2), 0, 0, 2, 2); err != nil {
		t.Fatal(err)
	}

	refs := dc.Document().ImageReferences()
	if len(refs) != 2 {
		t.Fatalf("got %d image references, want 2", len(refs))
	}
	if refs[0].Name != "p-image-0.jpg" || refs[1].Name != "p-image-1.jpg" {
		t.Errorf("names = %q, %q", refs[0].Name, refs[1].Name)
	}
	if b := refs[1].Image.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("cropped image bounds = %v", b)
	}
	if got := body(dc); !strings.Contains(got, `xlink:href="p-image-0.jpg"`) {
		t.Errorf("missing external reference\n%s", got)
	}
}

func TestClearRect(t *testing.T) {
	dc := newTestContext()
	dc.SetColor(Red)
	dc.SetAlpha(0.3)
	dc.SetBackground(RGBA2(0, 0, 1, 0.5))
	dc.ClearRect(0, 0, 10, 10)
	if got := body(dc); !strings.Contains(got, `style="fill:rgb(0,0,255);fill-opacity:0.5"`) {
		t.Errorf("ClearRect must use the background\n%s", got)
	}
}
