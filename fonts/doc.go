// Package fonts provides font metrics and glyph outlines for svg
// documents backed by real font files.
//
// Two implementations are available:
//
//   - OpenType reads TrueType and CFF fonts with golang.org/x/image/font/sfnt.
//     It measures with kerning and converts text into glyph paths.
//   - GoText shapes text with the HarfBuzz port in go-text/typesetting,
//     so ligatures and complex scripts are measured and outlined correctly.
//
// Both implement svg.FontMetrics and svg.GlyphOutliner:
//
//	face := fonts.GoRegular()
//	doc := svg.NewDocument(400, 300,
//	    svg.WithFontMetrics(face),
//	    svg.WithGlyphOutliner(face),
//	    svg.WithTextAsShapes(true))
//
// A face holds a single font file; the family of the requested svg.Font
// is ignored and only its size and letter spacing are used. Both types
// are safe for concurrent use.
package fonts
