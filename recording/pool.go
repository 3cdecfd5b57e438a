package recording

import (
	"image"
	"slices"

	"github.com/gogpu/svg"
)

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
// Mutable resources (paths and gradients) are cloned on Add so that
// later edits by the caller do not leak into the recording.
//
// ResourcePool is not safe for concurrent mutation. A pool owned by a
// finished Recording is only read.
type ResourcePool struct {
	shapes []svg.Shape
	paints []svg.Paint
	images []image.Image
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		shapes: make([]svg.Shape, 0, 64),
		paints: make([]svg.Paint, 0, 16),
		images: make([]image.Image, 0, 4),
	}
}

// AddShape adds a shape to the pool and returns its reference.
// A nil shape yields InvalidRef.
func (p *ResourcePool) AddShape(s svg.Shape) ShapeRef {
	if s == nil {
		return ShapeRef(InvalidRef)
	}
	p.shapes = append(p.shapes, cloneShape(s))
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ShapeRef(uint32(len(p.shapes) - 1))
}

// Shape returns the shape for the given reference, or nil.
func (p *ResourcePool) Shape(ref ShapeRef) svg.Shape {
	if int(ref) >= len(p.shapes) {
		return nil
	}
	return p.shapes[ref]
}

// ShapeCount returns the number of shapes in the pool.
func (p *ResourcePool) ShapeCount() int {
	return len(p.shapes)
}

// AddPaint adds a paint to the pool and returns its reference.
// Consecutive equal solid paints share one entry.
func (p *ResourcePool) AddPaint(paint svg.Paint) PaintRef {
	if paint == nil {
		return PaintRef(InvalidRef)
	}
	if s, ok := paint.(svg.Solid); ok && len(p.paints) > 0 {
		if last, ok := p.paints[len(p.paints)-1].(svg.Solid); ok && last == s {
			// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
			return PaintRef(uint32(len(p.paints) - 1))
		}
	}
	p.paints = append(p.paints, clonePaint(paint))
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PaintRef(uint32(len(p.paints) - 1))
}

// Paint returns the paint for the given reference, or nil.
func (p *ResourcePool) Paint(ref PaintRef) svg.Paint {
	if int(ref) >= len(p.paints) {
		return nil
	}
	return p.paints[ref]
}

// PaintCount returns the number of paints in the pool.
func (p *ResourcePool) PaintCount() int {
	return len(p.paints)
}

// AddImage adds an image to the pool and returns its reference.
// Images are stored by reference; image.Image has no mutation API.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	if img == nil {
		return ImageRef(InvalidRef)
	}
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// Image returns the image for the given reference, or nil.
func (p *ResourcePool) Image(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.shapes = p.shapes[:0]
	p.paints = p.paints[:0]
	p.images = p.images[:0]
}

// Clone creates a deep copy of the resource pool.
func (p *ResourcePool) Clone() *ResourcePool {
	clone := &ResourcePool{
		shapes: make([]svg.Shape, len(p.shapes)),
		paints: make([]svg.Paint, len(p.paints)),
		images: slices.Clone(p.images),
	}
	for i, s := range p.shapes {
		clone.shapes[i] = cloneShape(s)
	}
	for i, paint := range p.paints {
		clone.paints[i] = clonePaint(paint)
	}
	return clone
}

// cloneShape copies paths. Other shapes are kept as given so that shape
// adapters still see them at playback; callers must not mutate them.
func cloneShape(s svg.Shape) svg.Shape {
	if p, ok := s.(*svg.Path); ok {
		return p.Clone()
	}
	return s
}

func clonePaint(paint svg.Paint) svg.Paint {
	switch v := paint.(type) {
	case *svg.LinearGradient:
		g := *v
		g.Stops = slices.Clone(v.Stops)
		return &g
	case *svg.RadialGradient:
		g := *v
		g.Stops = slices.Clone(v.Stops)
		return &g
	default:
		return paint
	}
}
