package recording

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/svg"
)

// Recorder captures drawing operations as commands.
// It mirrors the svg.Context API but stores commands instead of writing
// markup. Use FinishRecording to obtain an immutable Recording that can
// be replayed to different backends.
//
//	rec := recording.NewRecorder(800, 600)
//	rec.SetRGB(1, 0, 0)
//	rec.FillCircle(100, 100, 50)
//	r := rec.FinishRecording()
//
// Argument checks that need no document (stroke validity, alpha range,
// nil shapes) happen at record time. Errors that depend on the document,
// such as duplicate ids, surface from Playback.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height float64
	commands      []Command
	resources     *ResourcePool

	// Current path being built with MoveTo, LineTo and friends.
	currentPath *svg.Path

	st         recorderState
	stateStack []recorderState
}

// recorderState mirrors the attributes a backend tracks, so that
// relative operations can be recorded as absolute values.
type recorderState struct {
	transform svg.Matrix
	paint     svg.Paint
	stroke    svg.Stroke
	font      svg.Font
	alpha     float64
}

func (s recorderState) clone() recorderState {
	s.stroke = s.stroke.Clone()
	return s
}

// NewRecorder creates a new Recorder for a canvas of the given size in
// user units. It starts with the same defaults as a fresh svg.Context.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		width:       width,
		height:      height,
		commands:    make([]Command, 0, 256),
		resources:   NewResourcePool(),
		currentPath: svg.NewPath(),
		st: recorderState{
			transform: svg.Identity(),
			paint:     svg.SolidColor(svg.Black),
			stroke:    svg.DefaultStroke(),
			font:      svg.DefaultFont,
			alpha:     1,
		},
		stateStack: make([]recorderState, 0, 8),
	}
}

func (r *Recorder) record(cmds ...Command) {
	r.commands = append(r.commands, cmds...)
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. After calling FinishRecording, the Recorder should not be
// used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() float64 { return r.width }

// Height returns the height of the recording canvas.
func (r *Recorder) Height() float64 { return r.height }

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Save pushes the current attributes. Backends that produce svg
// documents map it to svg.Context.Create.
func (r *Recorder) Save() {
	r.stateStack = append(r.stateStack, r.st.clone())
	r.record(SaveCommand{})
}

// Restore pops the attributes pushed by Save. With an empty stack it is
// a no-op.
func (r *Recorder) Restore() {
	if len(r.stateStack) == 0 {
		return
	}
	r.st = r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]
	r.record(RestoreCommand{})
}

// --------------------------------------------------------------------------
// Transform
// --------------------------------------------------------------------------

// SetTransform replaces the current transformation matrix.
func (r *Recorder) SetTransform(m svg.Matrix) {
	r.st.transform = m
	r.record(SetTransformCommand{Matrix: m})
}

// Transform applies m before the current transform.
func (r *Recorder) Transform(m svg.Matrix) {
	r.SetTransform(r.st.transform.Multiply(m))
}

// Identity resets the transformation matrix to identity.
func (r *Recorder) Identity() { r.SetTransform(svg.Identity()) }

// Translate applies a translation.
func (r *Recorder) Translate(x, y float64) { r.Transform(svg.Translate(x, y)) }

// Scale applies a scaling transformation.
func (r *Recorder) Scale(sx, sy float64) { r.Transform(svg.Scale(sx, sy)) }

// Rotate applies a rotation (angle in radians).
func (r *Recorder) Rotate(angle float64) { r.Transform(svg.Rotate(angle)) }

// RotateAbout rotates around (x, y).
func (r *Recorder) RotateAbout(angle, x, y float64) {
	r.Transform(svg.Translate(x, y).Multiply(svg.Rotate(angle)).Multiply(svg.Translate(-x, -y)))
}

// Shear applies a shear transformation.
func (r *Recorder) Shear(x, y float64) { r.Transform(svg.Shear(x, y)) }

// GetTransform returns the current transformation matrix.
func (r *Recorder) GetTransform() svg.Matrix { return r.st.transform }

// InvertY flips the y axis so that the origin is at the bottom left.
func (r *Recorder) InvertY() {
	r.Translate(0, r.height)
	r.Scale(1, -1)
}

// --------------------------------------------------------------------------
// Clipping
// --------------------------------------------------------------------------

// SetClip replaces the clip with s in the current user space. A nil
// shape removes the clip.
func (r *Recorder) SetClip(s svg.Shape) {
	r.record(SetClipCommand{Shape: r.resources.AddShape(s)})
}

// Clip intersects the clip with s.
func (r *Recorder) Clip(s svg.Shape) {
	if s == nil {
		r.SetClip(nil)
		return
	}
	r.record(ClipCommand{Shape: r.resources.AddShape(s)})
}

// ClipRect intersects the clip with a rectangle.
func (r *Recorder) ClipRect(x, y, w, h float64) {
	r.Clip(svg.Rect{X: x, Y: y, W: w, H: h})
}

// ResetClip removes the clip.
func (r *Recorder) ResetClip() { r.SetClip(nil) }

// --------------------------------------------------------------------------
// Paint and Style
// --------------------------------------------------------------------------

// SetPaint sets the fill and stroke paint. A nil paint is ignored.
func (r *Recorder) SetPaint(p svg.Paint) {
	if p == nil {
		return
	}
	r.st.paint = p
	r.record(SetPaintCommand{Paint: r.resources.AddPaint(p)})
}

// Paint returns the current paint.
func (r *Recorder) Paint() svg.Paint { return r.st.paint }

// SetColor sets a solid paint.
func (r *Recorder) SetColor(c svg.RGBA) { r.SetPaint(svg.SolidColor(c)) }

// SetRGB sets an opaque color from components in [0, 1].
func (r *Recorder) SetRGB(red, green, blue float64) { r.SetColor(svg.RGB(red, green, blue)) }

// SetRGBA sets a color from components in [0, 1].
func (r *Recorder) SetRGBA(red, green, blue, alpha float64) {
	r.SetColor(svg.RGBA2(red, green, blue, alpha))
}

// SetHexColor sets a color from a hex string.
func (r *Recorder) SetHexColor(hex string) { r.SetColor(svg.Hex(hex)) }

// SetStroke sets the pen used by Draw.
func (r *Recorder) SetStroke(s svg.Stroke) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.st.stroke = s.Clone()
	r.record(SetStrokeCommand{Stroke: s.Clone()})
	return nil
}

// Stroke returns a copy of the current stroke.
func (r *Recorder) Stroke() svg.Stroke { return r.st.stroke.Clone() }

// SetCustomStroke makes Draw fill the outline o produces.
func (r *Recorder) SetCustomStroke(o svg.Outliner) error {
	if o == nil {
		return fmt.Errorf("recording: nil outliner: %w", svg.ErrInvalidArgument)
	}
	r.record(SetCustomStrokeCommand{Outliner: o})
	return nil
}

// SetLineWidth changes the width of the current stroke.
func (r *Recorder) SetLineWidth(w float64) error {
	return r.SetStroke(r.st.stroke.WithWidth(w))
}

// SetLineCap changes the cap of the current stroke.
func (r *Recorder) SetLineCap(c svg.LineCap) error {
	return r.SetStroke(r.st.stroke.WithCap(c))
}

// SetLineJoin changes the join of the current stroke.
func (r *Recorder) SetLineJoin(j svg.LineJoin) error {
	return r.SetStroke(r.st.stroke.WithJoin(j))
}

// SetMiterLimit changes the miter limit of the current stroke.
func (r *Recorder) SetMiterLimit(limit float64) error {
	return r.SetStroke(r.st.stroke.WithMiterLimit(limit))
}

// SetDash changes the dash pattern. No lengths makes the stroke solid.
func (r *Recorder) SetDash(lengths ...float64) error {
	return r.SetStroke(r.st.stroke.WithDashPattern(lengths...))
}

// SetDashOffset changes the dash offset of the current stroke.
func (r *Recorder) SetDashOffset(offset float64) error {
	return r.SetStroke(r.st.stroke.WithDashOffset(offset))
}

// SetFont sets the text font. The zero Font is ignored.
func (r *Recorder) SetFont(f svg.Font) {
	if f.IsZero() {
		return
	}
	r.st.font = f
	r.record(SetFontCommand{Font: f})
}

// Font returns the current font.
func (r *Recorder) Font() svg.Font { return r.st.font }

// SetAlpha sets the composite alpha.
func (r *Recorder) SetAlpha(a float64) error {
	if a < 0 || a > 1 || math.IsNaN(a) {
		return fmt.Errorf("recording: alpha %v outside [0, 1]: %w", a, svg.ErrInvalidArgument)
	}
	r.st.alpha = a
	r.record(SetAlphaCommand{Alpha: a})
	return nil
}

// Alpha returns the composite alpha.
func (r *Recorder) Alpha() float64 { return r.st.alpha }

// SetBackground sets the color used by ClearRect.
func (r *Recorder) SetBackground(c svg.RGBA) {
	r.record(SetBackgroundCommand{Color: c})
}

// SetRenderingHints sets the rendering hints.
func (r *Recorder) SetRenderingHints(h svg.RenderingHints) {
	r.record(SetRenderingHintsCommand{Hints: h})
}

// SetExtraStyle sets extra CSS declarations. They are parsed when the
// recording is played back.
func (r *Recorder) SetExtraStyle(css string) {
	r.record(SetExtraStyleCommand{CSS: css})
}

// SetNextID names the next element.
func (r *Recorder) SetNextID(id string) {
	r.record(SetNextIDCommand{ID: id})
}

// BeginGroup opens a group.
func (r *Recorder) BeginGroup(id string) {
	r.record(BeginGroupCommand{ID: id})
}

// EndGroup closes the innermost group.
func (r *Recorder) EndGroup() {
	r.record(EndGroupCommand{})
}

// --------------------------------------------------------------------------
// Path Building
// --------------------------------------------------------------------------

// MoveTo starts a new subpath at the given point.
func (r *Recorder) MoveTo(x, y float64) { r.currentPath.MoveTo(x, y) }

// LineTo adds a line to the current path.
func (r *Recorder) LineTo(x, y float64) { r.currentPath.LineTo(x, y) }

// QuadraticTo adds a quadratic Bezier curve to the current path.
func (r *Recorder) QuadraticTo(cx, cy, x, y float64) { r.currentPath.QuadraticTo(cx, cy, x, y) }

// CubicTo adds a cubic Bezier curve to the current path.
func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.currentPath.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (r *Recorder) ClosePath() { r.currentPath.Close() }

// ClearPath discards the current path.
func (r *Recorder) ClearPath() { r.currentPath = svg.NewPath() }

// SetFillRule sets the fill rule of the current path.
func (r *Recorder) SetFillRule(rule svg.FillRule) { r.currentPath.FillRule = rule }

// FillPath fills the current path and clears it.
func (r *Recorder) FillPath() error {
	p := r.currentPath
	r.ClearPath()
	if p.IsEmpty() {
		return nil
	}
	return r.Fill(p)
}

// StrokePath strokes the current path and clears it.
func (r *Recorder) StrokePath() error {
	p := r.currentPath
	r.ClearPath()
	if p.IsEmpty() {
		return nil
	}
	return r.Draw(p)
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// Draw strokes s.
func (r *Recorder) Draw(s svg.Shape) error {
	if s == nil {
		return fmt.Errorf("recording: draw nil shape: %w", svg.ErrInvalidArgument)
	}
	r.record(DrawCommand{Shape: r.resources.AddShape(s)})
	return nil
}

// Fill fills s.
func (r *Recorder) Fill(s svg.Shape) error {
	if s == nil {
		return fmt.Errorf("recording: fill nil shape: %w", svg.ErrInvalidArgument)
	}
	r.record(FillCommand{Shape: r.resources.AddShape(s)})
	return nil
}

// DrawLine strokes a line from (x1, y1) to (x2, y2).
func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) error {
	return r.Draw(svg.Line{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// DrawRectangle strokes a rectangle.
func (r *Recorder) DrawRectangle(x, y, w, h float64) error {
	return r.Draw(svg.Rect{X: x, Y: y, W: w, H: h})
}

// FillRectangle fills a rectangle.
func (r *Recorder) FillRectangle(x, y, w, h float64) error {
	return r.Fill(svg.Rect{X: x, Y: y, W: w, H: h})
}

// DrawCircle strokes a circle.
func (r *Recorder) DrawCircle(x, y, radius float64) error {
	return r.Draw(svg.Circle(x, y, radius))
}

// FillCircle fills a circle.
func (r *Recorder) FillCircle(x, y, radius float64) error {
	return r.Fill(svg.Circle(x, y, radius))
}

// DrawEllipse strokes an ellipse.
func (r *Recorder) DrawEllipse(x, y, rx, ry float64) error {
	return r.Draw(svg.Ellipse{Cx: x, Cy: y, Rx: rx, Ry: ry})
}

// DrawRoundedRectangle strokes a rectangle with rounded corners.
func (r *Recorder) DrawRoundedRectangle(x, y, w, h, radius float64) error {
	return r.Draw(svg.RoundedRect(x, y, w, h, radius))
}

// DrawArc strokes a circular arc from angle1 to angle2 (radians).
func (r *Recorder) DrawArc(x, y, radius, angle1, angle2 float64) error {
	p := svg.NewPath()
	p.Arc(x, y, radius, angle1, angle2)
	return r.Draw(p)
}

// ClearRect fills a rectangle with the background color.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record(ClearRectCommand{Rect: svg.Rect{X: x, Y: y, W: w, H: h}})
}

// DrawString draws s with its baseline origin at (x, y).
func (r *Recorder) DrawString(s string, x, y float64) {
	r.DrawStringAnchored(s, x, y, 0, 0)
}

// DrawStringAnchored draws s anchored at (x, y).
func (r *Recorder) DrawStringAnchored(s string, x, y, ax, ay float64) {
	if s == "" {
		return
	}
	r.record(DrawStringCommand{Text: s, X: x, Y: y, AX: ax, AY: ay})
}

// DrawImage draws img at (x, y) at its natural size.
func (r *Recorder) DrawImage(img image.Image, x, y float64) error {
	if img == nil {
		return fmt.Errorf("recording: draw nil image: %w", svg.ErrInvalidArgument)
	}
	b := img.Bounds()
	return r.DrawImageRegion(img, b, x, y, float64(b.Dx()), float64(b.Dy()))
}

// DrawImageScaled draws img stretched to the w x h box at (x, y).
func (r *Recorder) DrawImageScaled(img image.Image, x, y, w, h float64) error {
	if img == nil {
		return fmt.Errorf("recording: draw nil image: %w", svg.ErrInvalidArgument)
	}
	return r.DrawImageRegion(img, img.Bounds(), x, y, w, h)
}

// DrawImageRegion draws the src part of img stretched to the w x h box
// at (x, y).
func (r *Recorder) DrawImageRegion(img image.Image, src image.Rectangle, x, y, w, h float64) error {
	if img == nil {
		return fmt.Errorf("recording: draw nil image: %w", svg.ErrInvalidArgument)
	}
	r.record(DrawImageCommand{
		Image: r.resources.AddImage(img),
		Src:   src,
		Dst:   svg.Rect{X: x, Y: y, W: w, H: h},
	})
	return nil
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable container for recorded drawing commands.
// It can be played back any number of times, to any Backend, from
// multiple goroutines.
type Recording struct {
	width, height float64
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() float64 { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() float64 { return r.height }

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command { return r.commands }

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// Playback replays the recording to backend. It stops at the first
// failing command and returns its error annotated with the command
// index and type.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}
	for i, cmd := range r.commands {
		if err := r.dispatch(backend, cmd); err != nil {
			return fmt.Errorf("recording: command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	if err := backend.End(); err != nil {
		return fmt.Errorf("recording: end: %w", err)
	}
	return nil
}

func (r *Recording) dispatch(b Backend, cmd Command) error {
	res := r.resources
	switch c := cmd.(type) {
	case SaveCommand:
		b.Save()
	case RestoreCommand:
		b.Restore()
	case SetTransformCommand:
		b.SetTransform(c.Matrix)
	case SetClipCommand:
		b.SetClip(res.Shape(c.Shape))
	case ClipCommand:
		b.Clip(res.Shape(c.Shape))
	case SetPaintCommand:
		b.SetPaint(res.Paint(c.Paint))
	case SetStrokeCommand:
		return b.SetStroke(c.Stroke.Clone())
	case SetCustomStrokeCommand:
		return b.SetCustomStroke(c.Outliner)
	case SetFontCommand:
		b.SetFont(c.Font)
	case SetAlphaCommand:
		return b.SetAlpha(c.Alpha)
	case SetBackgroundCommand:
		b.SetBackground(c.Color)
	case SetRenderingHintsCommand:
		b.SetRenderingHints(c.Hints)
	case SetExtraStyleCommand:
		return b.SetExtraStyle(c.CSS)
	case SetNextIDCommand:
		b.SetNextID(c.ID)
	case BeginGroupCommand:
		return b.BeginGroup(c.ID)
	case EndGroupCommand:
		return b.EndGroup()
	case DrawCommand:
		return b.Draw(res.Shape(c.Shape))
	case FillCommand:
		return b.Fill(res.Shape(c.Shape))
	case ClearRectCommand:
		return b.ClearRect(c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H)
	case DrawStringCommand:
		return b.DrawString(c.Text, c.X, c.Y, c.AX, c.AY)
	case DrawImageCommand:
		d := c.Dst
		return b.DrawImage(res.Image(c.Image), c.Src, d.X, d.Y, d.W, d.H)
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
	return nil
}
