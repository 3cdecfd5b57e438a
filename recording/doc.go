// Package recording captures svg drawing operations as commands that can
// be played back to different backends.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: captures drawing operations as commands
//   - Recording: stores commands and resources for playback
//   - Backend: turns commands into a specific output
//
// Commands are typed structs rather than a byte stream, so recordings can
// be inspected and filtered before playback.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//
//	rec.SetRGB(1, 0, 0)
//	rec.FillRectangle(100, 100, 200, 150)
//
//	rec.Save()
//	rec.Translate(400, 300)
//	rec.SetLineWidth(2)
//	rec.DrawCircle(0, 0, 50)
//	rec.Restore()
//
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/svg/recording/backends/svgdoc"
//
//	backend, _ := recording.NewBackend("svg", svg.WithIDPrefix("fig-"))
//	if err := r.Playback(backend); err != nil {
//	    return err
//	}
//	backend.(recording.FileBackend).SaveToFile("output.svg")
//
// A Recording is immutable, so the same recording can be played into
// several documents, for example once per id prefix when the figures
// are inlined into one page.
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it, or register a
// custom backend from its init function:
//
//	func init() {
//	    recording.Register("myformat", func(opts ...svg.Option) recording.Backend {
//	        return NewMyBackend()
//	    })
//	}
//
// # Resource Management
//
// Shapes, paints and images are stored in a ResourcePool and referenced by
// typed handles (ShapeRef, PaintRef, ImageRef). Paths and gradients are
// cloned when recorded, so later edits by the caller do not change the
// recording.
//
// # Errors
//
// The Recorder rejects arguments it can check alone (nil shapes, invalid
// strokes, alpha outside [0, 1]). Errors that depend on the target
// document, such as duplicate element ids or an unbalanced EndGroup, are
// returned by Playback together with the index of the failing command.
//
// # Thread Safety
//
// Recorder is not safe for concurrent use. A Recording can be played back
// from multiple goroutines, each with its own Backend.
package recording
