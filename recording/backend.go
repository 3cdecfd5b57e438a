package recording

import (
	"image"
	"io"

	"github.com/gogpu/svg"
)

// Backend is the interface that all playback targets implement.
// Backends receive the recorded operations in order and translate them
// to their output format.
//
// A Backend manages its own state stack for Save/Restore. Transforms
// arrive as absolute matrices, so a backend never composes them itself.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Manage own state stack for Save/Restore
//  4. Return errors from drawing methods instead of panicking
type Backend interface {
	// Begin prepares the backend for a canvas of the given size in user
	// units. It is called once before any other method.
	Begin(width, height float64) error

	// End finalizes the output. After End, output methods such as
	// WriteTo may be used.
	End() error

	// Save pushes a copy of the current attributes.
	Save()

	// Restore pops the attributes pushed by Save. With an empty stack
	// it is a no-op.
	Restore()

	SetTransform(m svg.Matrix)

	// SetClip replaces the clip; nil removes it.
	SetClip(s svg.Shape)

	// Clip intersects the clip with s.
	Clip(s svg.Shape)

	SetPaint(p svg.Paint)
	SetStroke(s svg.Stroke) error
	SetCustomStroke(o svg.Outliner) error
	SetFont(f svg.Font)
	SetAlpha(a float64) error
	SetBackground(c svg.RGBA)
	SetRenderingHints(h svg.RenderingHints)
	SetExtraStyle(css string) error
	SetNextID(id string)

	BeginGroup(id string) error
	EndGroup() error

	// Draw strokes s with the current stroke and paint.
	Draw(s svg.Shape) error

	// Fill fills s with the current paint.
	Fill(s svg.Shape) error

	// ClearRect fills a rectangle with the background color.
	ClearRect(x, y, w, h float64) error

	// DrawString draws s anchored at (x, y); see svg.Context.DrawStringAnchored.
	DrawString(s string, x, y, ax, ay float64) error

	// DrawImage draws the src part of img stretched to the w x h box at (x, y).
	DrawImage(img image.Image, src image.Rectangle, x, y, w, h float64) error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to w. It is only valid after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile writes the rendered content to path. It is only valid
	// after End.
	SaveToFile(path string) error
}
