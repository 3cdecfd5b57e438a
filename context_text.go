package svg

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DrawString draws s with its baseline origin at (x, y). With text as
// shapes enabled and a GlyphOutliner configured, the glyph outlines are
// filled instead of writing a text element.
func (c *Context) DrawString(s string, x, y float64) error {
	if s == "" {
		return nil
	}
	o := c.doc.opts
	if o.textAsShapes && o.outliner != nil {
		p, err := o.outliner.GlyphPath(c.st.font, s, x, y)
		if err != nil {
			return fmt.Errorf("svg: outline text: %w", err)
		}
		if p == nil || p.IsEmpty() {
			return nil
		}
		return c.fillResolved(p)
	}

	id, err := c.takeID()
	if err != nil {
		return err
	}
	e := newElement("text").set("id", id).set("x", c.format(x)).set("y", c.format(y))
	text := norm.NFC.String(s)
	if needsPreserve(text) {
		e.set("xml:space", "preserve")
	}
	c.finishElement(e, c.textStyle())
	e.open(&c.doc.body)
	c.doc.body.WriteString(escapeXML(text))
	closeTag(&c.doc.body, "text")
	return nil
}

// DrawStringAnchored draws s anchored at (x, y). The anchor point (ax,
// ay) is relative to the text box: (0, 0) is the baseline origin and
// (0.5, 0.5) centers the text.
func (c *Context) DrawStringAnchored(s string, x, y, ax, ay float64) error {
	w, h := c.MeasureString(s)
	return c.DrawString(s, x-ax*w, y+ay*h)
}

// MeasureString returns the advance width and height of s in the
// current font, as reported by the configured FontMetrics.
func (c *Context) MeasureString(s string) (w, h float64) {
	return c.doc.opts.metrics.Measure(c.st.font, s)
}

// FontAscent returns the ascent of the current font.
func (c *Context) FontAscent() float64 {
	return c.doc.opts.metrics.Ascent(c.st.font)
}

// FontDescent returns the descent of the current font.
func (c *Context) FontDescent() float64 {
	return c.doc.opts.metrics.Descent(c.st.font)
}

func (c *Context) textStyle() string {
	f := c.st.font
	ref, opacity := c.paintRef()
	opacity *= c.st.alpha

	var st style
	st.add("fill", ref)
	if opacity < 1 {
		st.add("fill-opacity", c.format(opacity))
	}
	family := f.Family
	if m := c.doc.opts.familyMapper; m != nil {
		family = m(family)
	}
	if family != "" {
		st.add("font-family", family)
	}
	if f.Size > 0 {
		st.add("font-size", c.format(f.Size)+"px")
	}
	if f.Weight != 0 && f.Weight != 400 {
		st.add("font-weight", strconv.Itoa(f.Weight))
	}
	if f.Style != FontStyleNormal {
		st.add("font-style", f.Style.String())
	}
	if f.LetterSpacing != 0 {
		st.add("letter-spacing", c.format(f.LetterSpacing))
	}
	c.appendCommonStyle(&st, true)
	return st.String()
}

// needsPreserve reports whether s has whitespace SVG would collapse.
func needsPreserve(s string) bool {
	return strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") ||
		strings.Contains(s, "  ") || strings.ContainsAny(s, "\t\n")
}
