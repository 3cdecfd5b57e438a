package recording

import (
	"image"

	"github.com/gogpu/svg"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave         CommandType = iota // Save current state
	CmdRestore                         // Restore previous state
	CmdSetTransform                    // Set transformation matrix
	CmdSetClip                         // Replace clipping region
	CmdClip                            // Intersect clipping region

	// Style commands
	CmdSetPaint          // Set fill and stroke paint
	CmdSetStroke         // Set stroke style
	CmdSetCustomStroke   // Set stroke outliner
	CmdSetFont           // Set text font
	CmdSetAlpha          // Set composite alpha
	CmdSetBackground     // Set ClearRect color
	CmdSetRenderingHints // Set shape and text rendering hints
	CmdSetExtraStyle     // Set extra CSS declarations
	CmdSetNextID         // Set id of the next element

	// Structure commands
	CmdBeginGroup // Open a group
	CmdEndGroup   // Close a group

	// Drawing commands
	CmdDraw       // Stroke a shape
	CmdFill       // Fill a shape
	CmdClearRect  // Fill a rectangle with the background
	CmdDrawString // Draw text
	CmdDrawImage  // Draw an image
)

var commandTypeNames = [...]string{
	CmdSave:              "Save",
	CmdRestore:           "Restore",
	CmdSetTransform:      "SetTransform",
	CmdSetClip:           "SetClip",
	CmdClip:              "Clip",
	CmdSetPaint:          "SetPaint",
	CmdSetStroke:         "SetStroke",
	CmdSetCustomStroke:   "SetCustomStroke",
	CmdSetFont:           "SetFont",
	CmdSetAlpha:          "SetAlpha",
	CmdSetBackground:     "SetBackground",
	CmdSetRenderingHints: "SetRenderingHints",
	CmdSetExtraStyle:     "SetExtraStyle",
	CmdSetNextID:         "SetNextID",
	CmdBeginGroup:        "BeginGroup",
	CmdEndGroup:          "EndGroup",
	CmdDraw:              "Draw",
	CmdFill:              "Fill",
	CmdClearRect:         "ClearRect",
	CmdDrawString:        "DrawString",
	CmdDrawImage:         "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ShapeRef is a reference to a shape in the resource pool.
type ShapeRef uint32

// PaintRef is a reference to a paint in the resource pool.
type PaintRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid reports whether the reference points to a shape.
func (r ShapeRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid reports whether the reference points to a paint.
func (r PaintRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid reports whether the reference points to an image.
func (r ImageRef) IsValid() bool { return uint32(r) != InvalidRef }

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand saves the current graphics state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved graphics state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// SetTransformCommand sets the current transformation matrix.
// Recorders always store the resulting absolute matrix.
type SetTransformCommand struct {
	Matrix svg.Matrix
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

// SetClipCommand replaces the clipping region. An invalid Shape
// removes the clip.
type SetClipCommand struct {
	Shape ShapeRef
}

// Type implements Command.
func (SetClipCommand) Type() CommandType { return CmdSetClip }

// ClipCommand intersects the clipping region with a shape.
type ClipCommand struct {
	Shape ShapeRef
}

// Type implements Command.
func (ClipCommand) Type() CommandType { return CmdClip }

// --------------------------------------------------------------------------
// Style Commands
// --------------------------------------------------------------------------

// SetPaintCommand sets the fill and stroke paint.
type SetPaintCommand struct {
	Paint PaintRef
}

// Type implements Command.
func (SetPaintCommand) Type() CommandType { return CmdSetPaint }

// SetStrokeCommand sets the complete stroke style.
type SetStrokeCommand struct {
	Stroke svg.Stroke
}

// Type implements Command.
func (SetStrokeCommand) Type() CommandType { return CmdSetStroke }

// SetCustomStrokeCommand replaces the stroke with an outliner.
type SetCustomStrokeCommand struct {
	Outliner svg.Outliner
}

// Type implements Command.
func (SetCustomStrokeCommand) Type() CommandType { return CmdSetCustomStroke }

// SetFontCommand sets the text font.
type SetFontCommand struct {
	Font svg.Font
}

// Type implements Command.
func (SetFontCommand) Type() CommandType { return CmdSetFont }

// SetAlphaCommand sets the composite alpha.
type SetAlphaCommand struct {
	Alpha float64
}

// Type implements Command.
func (SetAlphaCommand) Type() CommandType { return CmdSetAlpha }

// SetBackgroundCommand sets the color used by ClearRect.
type SetBackgroundCommand struct {
	Color svg.RGBA
}

// Type implements Command.
func (SetBackgroundCommand) Type() CommandType { return CmdSetBackground }

// SetRenderingHintsCommand sets the rendering hints.
type SetRenderingHintsCommand struct {
	Hints svg.RenderingHints
}

// Type implements Command.
func (SetRenderingHintsCommand) Type() CommandType { return CmdSetRenderingHints }

// SetExtraStyleCommand sets extra CSS declarations. The text is
// validated by the backend.
type SetExtraStyleCommand struct {
	CSS string
}

// Type implements Command.
func (SetExtraStyleCommand) Type() CommandType { return CmdSetExtraStyle }

// SetNextIDCommand names the next element.
type SetNextIDCommand struct {
	ID string
}

// Type implements Command.
func (SetNextIDCommand) Type() CommandType { return CmdSetNextID }

// --------------------------------------------------------------------------
// Structure Commands
// --------------------------------------------------------------------------

// BeginGroupCommand opens a group with an optional id.
type BeginGroupCommand struct {
	ID string
}

// Type implements Command.
func (BeginGroupCommand) Type() CommandType { return CmdBeginGroup }

// EndGroupCommand closes the innermost group.
type EndGroupCommand struct{}

// Type implements Command.
func (EndGroupCommand) Type() CommandType { return CmdEndGroup }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// DrawCommand strokes a shape.
type DrawCommand struct {
	Shape ShapeRef
}

// Type implements Command.
func (DrawCommand) Type() CommandType { return CmdDraw }

// FillCommand fills a shape.
type FillCommand struct {
	Shape ShapeRef
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// ClearRectCommand fills a rectangle with the background color.
type ClearRectCommand struct {
	Rect svg.Rect
}

// Type implements Command.
func (ClearRectCommand) Type() CommandType { return CmdClearRect }

// DrawStringCommand draws text. The anchor is resolved at playback with
// the backend's font metrics.
type DrawStringCommand struct {
	Text string
	// X and Y locate the anchor point.
	X, Y float64
	// AX and AY place the anchor relative to the text box; zero is the
	// baseline origin.
	AX, AY float64
}

// Type implements Command.
func (DrawStringCommand) Type() CommandType { return CmdDrawString }

// DrawImageCommand draws the Src part of an image into Dst.
type DrawImageCommand struct {
	Image ImageRef
	// Src is in image pixel coordinates.
	Src image.Rectangle
	// Dst is in user space.
	Dst svg.Rect
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }
