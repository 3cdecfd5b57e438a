package svg

import (
	"strconv"
	"strings"
)

const clipPrefix = "clip-"

// ClipRegistry interns clip regions by their generated path data.
// Equality is textual: two regions that cover the same area but are
// written differently get separate definitions.
type ClipRegistry struct {
	prefix string
	num    NumberFormatter
	ids    map[string]string
	defs   []string
}

// NewClipRegistry creates an empty registry whose ids start with prefix.
func NewClipRegistry(prefix string, f NumberFormatter) *ClipRegistry {
	if f == nil {
		f = ShortestFormatter{}
	}
	return &ClipRegistry{
		prefix: prefix,
		num:    f,
		ids:    make(map[string]string),
	}
}

// Register returns the id of the clipPath holding region, which must be
// in the user space of the elements that will reference it.
func (r *ClipRegistry) Register(region *Path) string {
	d := PathData(region, r.num)
	key := d
	if region.FillRule == FillEvenOdd {
		key += "|evenodd"
	}
	if id, ok := r.ids[key]; ok {
		return id
	}

	id := r.prefix + clipPrefix + strconv.Itoa(len(r.defs))
	r.ids[key] = id

	var sb strings.Builder
	e := newElement("clipPath").set("id", id)
	e.open(&sb)
	pe := newElement("path").setRequired("d", d)
	if region.FillRule == FillEvenOdd {
		pe.set("clip-rule", "evenodd")
	}
	pe.empty(&sb)
	closeTag(&sb, e.name)
	r.defs = append(r.defs, sb.String())

	Logger().Debug("svg: clip registered", "id", id)
	return id
}

// Len returns the number of definitions.
func (r *ClipRegistry) Len() int { return len(r.defs) }

// Definitions returns every definition in registration order.
func (r *ClipRegistry) Definitions() string {
	return strings.Join(r.defs, "")
}

// clipRef memoizes the clip id of a context. Any transform or clip
// change invalidates it; the next draw that needs a clip-path recomputes
// and re-registers.
type clipRef struct {
	id    string
	valid bool
}

func (c *clipRef) invalidate() {
	c.id = ""
	c.valid = false
}

// intersectRegions returns the area common to two device-space regions.
// Axis-aligned rectangles intersect directly; any other pair is flattened
// and intersected exactly, honoring each operand's fill rule.
func intersectRegions(existing, shape *Path) *Path {
	if a, ok := existing.axisRect(); ok {
		if b, ok := shape.axisRect(); ok {
			r := a.Intersect(b)
			if r.Empty() {
				return NewPath()
			}
			p := NewPath()
			p.Rectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
			return p
		}
	}

	ep := existing.Polygons(flattenTolerance)
	sp := shape.Polygons(flattenTolerance)
	if len(ep) == 0 || len(sp) == 0 {
		return NewPath()
	}
	return polygonPath(intersectPolygons(ep, existing.FillRule, sp, shape.FillRule))
}
