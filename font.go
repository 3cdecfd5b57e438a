package svg

import (
	"unicode/utf8"

	"golang.org/x/image/font/basicfont"
)

// FontStyle is the slant of a font.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

func (s FontStyle) String() string {
	switch s {
	case FontStyleItalic:
		return "italic"
	case FontStyleOblique:
		return "oblique"
	}
	return "normal"
}

// Font describes the text face. The zero Font means "not set" and is
// ignored by SetFont.
type Font struct {
	Family        string
	Size          float64 // in user units
	Weight        int     // CSS weight; 0 means normal (400)
	Style         FontStyle
	LetterSpacing float64
}

// IsZero reports whether f is the zero Font.
func (f Font) IsZero() bool {
	return f == Font{}
}

// DefaultFont is the font of a fresh context.
var DefaultFont = Font{Family: "sans-serif", Size: 12}

// FontMetrics measures text for layout operations such as anchored
// drawing.
type FontMetrics interface {
	// Measure returns the advance width and line height of s.
	Measure(f Font, s string) (w, h float64)
	// Ascent returns the distance from the baseline to the top of the face.
	Ascent(f Font) float64
	// Descent returns the distance from the baseline to the bottom of the face.
	Descent(f Font) float64
}

// GlyphOutliner converts a run of text into outlines with the baseline
// origin at (x, y).
type GlyphOutliner interface {
	GlyphPath(f Font, s string, x, y float64) (*Path, error)
}

// basicMetrics scales the fixed 7x13 bitmap face to the requested size.
// It is the fallback when no FontMetrics is configured: approximate, but
// deterministic and free of font files.
type basicMetrics struct{}

func (basicMetrics) scale(f Font) float64 {
	return f.Size / float64(basicfont.Face7x13.Height)
}

func (m basicMetrics) Measure(f Font, s string) (w, h float64) {
	n := utf8.RuneCountInString(s)
	w = float64(n*basicfont.Face7x13.Advance)*m.scale(f) + float64(max(n-1, 0))*f.LetterSpacing
	return w, f.Size
}

func (m basicMetrics) Ascent(f Font) float64 {
	return float64(basicfont.Face7x13.Ascent) * m.scale(f)
}

func (m basicMetrics) Descent(f Font) float64 {
	return float64(basicfont.Face7x13.Descent) * m.scale(f)
}

// ShapeRendering is the shape-rendering hint.
type ShapeRendering int

const (
	ShapeRenderingAuto ShapeRendering = iota
	ShapeRenderingOptimizeSpeed
	ShapeRenderingCrispEdges
	ShapeRenderingGeometricPrecision
)

func (s ShapeRendering) String() string {
	switch s {
	case ShapeRenderingOptimizeSpeed:
		return "optimizeSpeed"
	case ShapeRenderingCrispEdges:
		return "crispEdges"
	case ShapeRenderingGeometricPrecision:
		return "geometricPrecision"
	}
	return "auto"
}

// TextRendering is the text-rendering hint.
type TextRendering int

const (
	TextRenderingAuto TextRendering = iota
	TextRenderingOptimizeSpeed
	TextRenderingOptimizeLegibility
	TextRenderingGeometricPrecision
)

func (t TextRendering) String() string {
	switch t {
	case TextRenderingOptimizeSpeed:
		return "optimizeSpeed"
	case TextRenderingOptimizeLegibility:
		return "optimizeLegibility"
	case TextRenderingGeometricPrecision:
		return "geometricPrecision"
	}
	return "auto"
}

// RenderingHints are written as style properties when not auto.
type RenderingHints struct {
	Shape ShapeRendering
	Text  TextRendering
}
