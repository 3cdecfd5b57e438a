// Package svgdoc provides the svg document backend for the recording
// system. It plays recordings into an svg.Document.
//
// Save and Restore map to svg.Context.Create: Save derives a child
// context and Restore drops it, which leaves the parent's attributes as
// they were. All contexts share the document, so markup keeps the
// recorded order.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/svg/recording/backends/svgdoc"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("svg", svg.WithIDPrefix("fig-"))
//
//	// Or create directly
//	backend := svgdoc.NewBackend(svg.WithIDPrefix("fig-"))
//
//	if err := rec.Playback(backend); err != nil {
//	    return err
//	}
//	backend.SaveToFile("output.svg")
package svgdoc

import (
	"errors"
	"image"
	"io"
	"os"

	"github.com/gogpu/svg"
	"github.com/gogpu/svg/recording"
)

func init() {
	recording.Register("svg", func(opts ...svg.Option) recording.Backend {
		return NewBackend(opts...)
	})
}

// errNotStarted is returned by output methods called before Begin.
var errNotStarted = errors.New("svgdoc: backend not started")

// Backend plays recordings into an svg.Document.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	opts  []svg.Option
	doc   *svg.Document
	ctx   *svg.Context
	stack []*svg.Context
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a backend whose documents are built with opts.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...svg.Option) *Backend {
	return &Backend{opts: opts}
}

// Document returns the document being built, or nil before Begin.
func (b *Backend) Document() *svg.Document { return b.doc }

// Context returns the context that receives the next operation.
func (b *Backend) Context() *svg.Context { return b.ctx }

// Begin starts a fresh document of the given size. Calling Begin again
// discards the previous document.
func (b *Backend) Begin(width, height float64) error {
	b.doc = svg.NewDocument(width, height, b.opts...)
	b.ctx = b.doc.Context()
	b.stack = b.stack[:0]
	return nil
}

// End drops contexts left open by unbalanced Save calls. Open groups
// are closed by the document when it is assembled.
func (b *Backend) End() error {
	if n := len(b.stack); n > 0 {
		svg.Logger().Warn("svgdoc: unbalanced save at end of playback", "depth", n)
		b.ctx = b.stack[0]
		b.stack = b.stack[:0]
	}
	return nil
}

// Save derives a child context that receives the following operations.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.ctx)
	b.ctx = b.ctx.Create()
}

// Restore returns to the context that was current at the matching Save.
func (b *Backend) Restore() {
	if len(b.stack) == 0 {
		return
	}
	b.ctx = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *Backend) SetTransform(m svg.Matrix) { b.ctx.SetTransform(m) }
func (b *Backend) SetClip(s svg.Shape)       { b.ctx.SetClip(s) }
func (b *Backend) Clip(s svg.Shape)          { b.ctx.Clip(s) }
func (b *Backend) SetPaint(p svg.Paint)      { b.ctx.SetPaint(p) }
func (b *Backend) SetFont(f svg.Font)        { b.ctx.SetFont(f) }
func (b *Backend) SetBackground(c svg.RGBA)  { b.ctx.SetBackground(c) }
func (b *Backend) SetNextID(id string)       { b.ctx.SetNextID(id) }

func (b *Backend) SetStroke(s svg.Stroke) error         { return b.ctx.SetStroke(s) }
func (b *Backend) SetCustomStroke(o svg.Outliner) error { return b.ctx.SetCustomStroke(o) }
func (b *Backend) SetAlpha(a float64) error             { return b.ctx.SetAlpha(a) }
func (b *Backend) SetExtraStyle(css string) error       { return b.ctx.SetExtraStyle(css) }

func (b *Backend) SetRenderingHints(h svg.RenderingHints) { b.ctx.SetRenderingHints(h) }

func (b *Backend) BeginGroup(id string) error { return b.ctx.BeginGroup(id) }
func (b *Backend) EndGroup() error            { return b.ctx.EndGroup() }

func (b *Backend) Draw(s svg.Shape) error { return b.ctx.Draw(s) }
func (b *Backend) Fill(s svg.Shape) error { return b.ctx.Fill(s) }

func (b *Backend) ClearRect(x, y, w, h float64) error { return b.ctx.ClearRect(x, y, w, h) }

func (b *Backend) DrawString(s string, x, y, ax, ay float64) error {
	return b.ctx.DrawStringAnchored(s, x, y, ax, ay)
}

func (b *Backend) DrawImage(img image.Image, src image.Rectangle, x, y, w, h float64) error {
	if img != nil && src == img.Bounds() {
		return b.ctx.DrawImageScaled(img, x, y, w, h)
	}
	return b.ctx.DrawImageRegion(img, src, x, y, w, h)
}

// String returns the assembled document, or "" before Begin. Root
// attributes come from svg.WithRootAttributes.
func (b *Backend) String() string {
	if b.doc == nil {
		return ""
	}
	return b.doc.String()
}

// WriteTo writes the assembled document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.doc == nil {
		return 0, errNotStarted
	}
	return b.doc.WriteTo(w)
}

// SaveToFile writes the assembled document to path.
func (b *Backend) SaveToFile(path string) error {
	if b.doc == nil {
		return errNotStarted
	}
	return os.WriteFile(path, []byte(b.doc.String()), 0o644)
}
