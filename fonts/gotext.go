package fonts

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/svg"
)

// GoText measures and outlines text shaped by go-text/typesetting.
//
// The parsed font is shared; a fresh font.Face is created per call
// because faces cache glyph data and are not safe for concurrent use.
type GoText struct {
	font *font.Font

	mu     sync.Mutex
	shaper shaping.HarfbuzzShaper
}

var _ interface {
	svg.FontMetrics
	svg.GlyphOutliner
} = (*GoText)(nil)

// ParseGoText parses TrueType or OpenType font data.
func ParseGoText(data []byte) (*GoText, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to parse font: %w", err)
	}
	return &GoText{font: face.Font}, nil
}

func (g *GoText) shape(face *font.Face, f svg.Font, s string) shaping.Output {
	runes := []rune(s)
	script := detectScript(runes)
	dir := di.DirectionLTR
	if script == language.Arabic || script == language.Hebrew {
		dir = di.DirectionRTL
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      toFixed(f.Size),
		Script:    script,
		Language:  language.NewLanguage("en"),
	})
}

// Measure implements svg.FontMetrics. The width is the shaped advance
// plus letter spacing between glyphs; the height is ascent plus descent.
func (g *GoText) Measure(f svg.Font, s string) (w, h float64) {
	if s == "" {
		return 0, g.Ascent(f) + g.Descent(f)
	}
	out := g.shape(font.NewFace(g.font), f, s)
	w = fromFixed(out.Advance) + float64(max(len(out.Glyphs)-1, 0))*f.LetterSpacing
	return w, fromFixed(out.LineBounds.Ascent - out.LineBounds.Descent)
}

// Ascent implements svg.FontMetrics.
func (g *GoText) Ascent(f svg.Font) float64 {
	ext, ok := font.NewFace(g.font).FontHExtents()
	if !ok {
		return f.Size
	}
	return float64(ext.Ascender) * g.scale(f)
}

// Descent implements svg.FontMetrics. The value is positive below the
// baseline.
func (g *GoText) Descent(f svg.Font) float64 {
	ext, ok := font.NewFace(g.font).FontHExtents()
	if !ok {
		return 0
	}
	return -float64(ext.Descender) * g.scale(f)
}

func (g *GoText) scale(f svg.Font) float64 {
	return f.Size / float64(g.font.Upem())
}

// GlyphPath implements svg.GlyphOutliner. Glyphs without vector
// outlines, such as bitmap emoji, advance the pen without drawing.
func (g *GoText) GlyphPath(f svg.Font, s string, x, y float64) (*svg.Path, error) {
	p := svg.NewPath()
	if s == "" {
		return p, nil
	}
	face := font.NewFace(g.font)
	out := g.shape(face, f, s)
	scale := g.scale(f)
	pen := x
	for i, gl := range out.Glyphs {
		if i > 0 {
			pen += f.LetterSpacing
		}
		ox := pen + fromFixed(gl.XOffset)
		oy := y - fromFixed(gl.YOffset)
		if data, ok := face.GlyphData(gl.GlyphID).(font.GlyphOutline); ok {
			appendOutline(p, data, ox, oy, scale)
		}
		pen += fromFixed(gl.Advance)
	}
	return p, nil
}

// appendOutline adds font-unit segments, flipping the y axis so that it
// points down, scaled and moved to (x, y).
func appendOutline(p *svg.Path, o font.GlyphOutline, x, y, scale float64) {
	pt := func(q font.SegmentPoint) (float64, float64) {
		return x + float64(q.X)*scale, y - float64(q.Y)*scale
	}
	open := false
	for _, s := range o.Segments {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(pt(s.Args[0]))
			open = true
		case ot.SegmentOpLineTo:
			p.LineTo(pt(s.Args[0]))
		case ot.SegmentOpQuadTo:
			cx, cy := pt(s.Args[0])
			ex, ey := pt(s.Args[1])
			p.QuadraticTo(cx, cy, ex, ey)
		case ot.SegmentOpCubeTo:
			c1x, c1y := pt(s.Args[0])
			c2x, c2y := pt(s.Args[1])
			ex, ey := pt(s.Args[2])
			p.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
		}
	}
	if open {
		p.Close()
	}
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
