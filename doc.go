// Package svg records 2D drawing operations into SVG documents.
//
// # Overview
//
// A Context tracks graphics state (transform, clip, paint, stroke, font
// and alpha) and turns Draw, Fill, DrawString and DrawImage calls into
// SVG elements. Gradients and clip regions are interned into a shared
// defs section, so equal resources are written once no matter how many
// elements or contexts reference them.
//
// # Quick Start
//
//	import "github.com/gogpu/svg"
//
//	doc := svg.NewDocument(512, 512)
//	dc := doc.Context()
//
//	dc.SetRGB(1, 0, 0)
//	dc.FillCircle(256, 256, 100)
//
//	dc.SetPaint(svg.NewTwoColorGradient(0, 0, svg.White, 0, 512, svg.Blue))
//	dc.FillRectangle(0, 400, 512, 112)
//
//	fmt.Println(doc)
//
// # Contexts
//
// Create derives a child context with a copy of the parent's attributes.
// Parent and child write into the same document in call order, but
// changing the child's transform or clip never affects the parent.
//
// # Coordinate System
//
// Uses SVG user coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, positive angles rotate clockwise on screen
//
// Transforms compose like in SVG: Translate then Scale scales first and
// translates second.
//
// # Concurrency
//
// A Document and its contexts are not safe for concurrent use.
package svg

// Version is the current version of the library.
const Version = "0.1.0"
