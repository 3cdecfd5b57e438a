package fonts

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/gogpu/svg"
	"github.com/gogpu/svg/internal/cache"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// glyphCacheSize bounds the number of outlines kept per face.
const glyphCacheSize = 512

// glyphKey identifies a glyph outline at a given size.
type glyphKey struct {
	gid  sfnt.GlyphIndex
	ppem fixed.Int26_6
}

// OpenType measures and outlines text with an sfnt font.
type OpenType struct {
	font   *sfnt.Font
	glyphs *cache.Cache[glyphKey, sfnt.Segments]

	mu  sync.Mutex
	buf sfnt.Buffer
}

var _ interface {
	svg.FontMetrics
	svg.GlyphOutliner
} = (*OpenType)(nil)

// ParseOpenType parses TrueType or OpenType font data.
func ParseOpenType(data []byte) (*OpenType, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to parse font: %w", err)
	}
	return &OpenType{font: f, glyphs: cache.New[glyphKey, sfnt.Segments](glyphCacheSize)}, nil
}

var goRegular = sync.OnceValue(func() *OpenType {
	f, err := ParseOpenType(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
})

// GoRegular returns the Go Regular face bundled with x/image.
func GoRegular() *OpenType {
	return goRegular()
}

// Name returns the family name recorded in the font, or "".
func (o *OpenType) Name() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	name, err := o.font.Name(&o.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Measure implements svg.FontMetrics. The width includes kerning and
// letter spacing; the height is the ascent plus the descent.
func (o *OpenType) Measure(f svg.Font, s string) (w, h float64) {
	ppem := toFixed(f.Size)
	o.mu.Lock()
	defer o.mu.Unlock()

	var (
		adv  fixed.Int26_6
		prev sfnt.GlyphIndex
	)
	for i, r := range []rune(s) {
		gid, err := o.font.GlyphIndex(&o.buf, r)
		if err != nil {
			continue
		}
		if i > 0 {
			if k, err := o.font.Kern(&o.buf, prev, gid, ppem, font.HintingNone); err == nil {
				adv += k
			}
		}
		if a, err := o.font.GlyphAdvance(&o.buf, gid, ppem, font.HintingNone); err == nil {
			adv += a
		}
		prev = gid
	}
	w = fromFixed(adv) + float64(max(utf8.RuneCountInString(s)-1, 0))*f.LetterSpacing
	m, err := o.font.Metrics(&o.buf, ppem, font.HintingNone)
	if err != nil {
		return w, f.Size
	}
	return w, fromFixed(m.Ascent + m.Descent)
}

// Ascent implements svg.FontMetrics.
func (o *OpenType) Ascent(f svg.Font) float64 {
	m, err := o.metrics(f)
	if err != nil {
		return 0
	}
	return fromFixed(m.Ascent)
}

// Descent implements svg.FontMetrics.
func (o *OpenType) Descent(f svg.Font) float64 {
	m, err := o.metrics(f)
	if err != nil {
		return 0
	}
	return fromFixed(m.Descent)
}

func (o *OpenType) metrics(f svg.Font) (font.Metrics, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.font.Metrics(&o.buf, toFixed(f.Size), font.HintingNone)
}

// GlyphPath implements svg.GlyphOutliner. Runes missing from the font
// advance the pen without drawing; colored glyphs are skipped.
func (o *OpenType) GlyphPath(f svg.Font, s string, x, y float64) (*svg.Path, error) {
	ppem := toFixed(f.Size)
	o.mu.Lock()
	defer o.mu.Unlock()

	p := svg.NewPath()
	pen := x
	var prev sfnt.GlyphIndex
	for i, r := range []rune(s) {
		gid, err := o.font.GlyphIndex(&o.buf, r)
		if err != nil {
			return nil, fmt.Errorf("fonts: glyph index of %q: %w", r, err)
		}
		if i > 0 {
			if k, err := o.font.Kern(&o.buf, prev, gid, ppem, font.HintingNone); err == nil {
				pen += fromFixed(k)
			}
			pen += f.LetterSpacing
		}
		segs, err := o.outline(gid, ppem)
		switch {
		case errors.Is(err, sfnt.ErrColoredGlyph):
		case err != nil:
			return nil, fmt.Errorf("fonts: load glyph %d: %w", gid, err)
		default:
			appendSegments(p, segs, pen, y)
		}
		if a, err := o.font.GlyphAdvance(&o.buf, gid, ppem, font.HintingNone); err == nil {
			pen += fromFixed(a)
		}
		prev = gid
	}
	return p, nil
}

// outline returns the glyph's segments at ppem. Caller must hold o.mu.
func (o *OpenType) outline(gid sfnt.GlyphIndex, ppem fixed.Int26_6) (sfnt.Segments, error) {
	return o.glyphs.GetOrCreate(glyphKey{gid, ppem}, func() (sfnt.Segments, error) {
		segs, err := o.font.LoadGlyph(&o.buf, gid, ppem, nil)
		// LoadGlyph reuses the buffer's storage.
		return slices.Clone(segs), err
	})
}

// appendSegments adds sfnt segments, whose y axis already points down,
// with the origin moved to (x, y).
func appendSegments(p *svg.Path, segs sfnt.Segments, x, y float64) {
	pt := func(q fixed.Point26_6) (float64, float64) {
		return x + fromFixed(q.X), y + fromFixed(q.Y)
	}
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(pt(s.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(s.Args[0])
			ex, ey := pt(s.Args[1])
			p.QuadraticTo(cx, cy, ex, ey)
		case sfnt.SegmentOpCubeTo:
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

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
