package svg

import (
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"
	"sync/atomic"
)

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
	xmlHeader      = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n"
)

// documentSeq numbers documents for default id prefixes.
var documentSeq atomic.Uint64

// ViewBox is the viewBox attribute of the root element.
type ViewBox struct {
	X, Y, Width, Height float64
}

// RootAttributes controls the root svg element.
type RootAttributes struct {
	// ID is written as the root id when non-empty.
	ID string
	// Width and Height default to the document size when zero.
	Width, Height float64
	// Unit is appended to width and height, for example "px" or "mm".
	Unit string
	// ViewBox is written when non-nil.
	ViewBox *ViewBox
	// PreserveAspectRatio is the alignment keyword ("xMidYMid", "none", ...).
	// Empty omits the attribute.
	PreserveAspectRatio string
	// Slice selects "slice" instead of "meet" for the alignment.
	Slice bool
}

// Document accumulates the markup of every context drawing into it,
// together with the gradient and clip definitions they reference.
//
// A Document and the contexts derived from it are not safe for
// concurrent use. Callers drawing from several goroutines must
// serialize access themselves.
type Document struct {
	width, height float64
	opts          options
	prefix        string

	body   strings.Builder
	paints *PaintRegistry
	clips  *ClipRegistry

	ids     map[string]struct{}
	idOrder []string
	images  []ImageReference
	groups  int

	root *Context
}

// NewDocument creates an empty document of the given size.
func NewDocument(width, height float64, opts ...Option) *Document {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	prefix := o.idPrefix
	if prefix == "" {
		prefix = "svg" + strconv.FormatUint(documentSeq.Add(1), 10) + "-"
	}
	d := &Document{
		width:  width,
		height: height,
		opts:   o,
		prefix: prefix,
		paints: NewPaintRegistry(prefix, o.num),
		clips:  NewClipRegistry(prefix, o.num),
		ids:    make(map[string]struct{}),
	}
	d.root = newContext(d)
	return d
}

// NewContext is shorthand for NewDocument(width, height, opts...).Context().
func NewContext(width, height float64, opts ...Option) *Context {
	return NewDocument(width, height, opts...).Context()
}

// Context returns the root drawing context.
func (d *Document) Context() *Context { return d.root }

// Width returns the document width.
func (d *Document) Width() float64 { return d.width }

// Height returns the document height.
func (d *Document) Height() float64 { return d.height }

// Prefix returns the namespace prefix of generated ids.
func (d *Document) Prefix() string { return d.prefix }

// Paints returns the gradient registry.
func (d *Document) Paints() *PaintRegistry { return d.paints }

// Clips returns the clip registry.
func (d *Document) Clips() *ClipRegistry { return d.clips }

// RegisterID reserves an explicit element id. It fails with
// ErrDuplicateID if the id was already used in this document.
func (d *Document) RegisterID(id string) error {
	if id == "" {
		return fmt.Errorf("svg: empty element id: %w", ErrInvalidArgument)
	}
	if _, ok := d.ids[id]; ok {
		return fmt.Errorf("svg: id %q: %w", id, ErrDuplicateID)
	}
	d.ids[id] = struct{}{}
	d.idOrder = append(d.idOrder, id)
	return nil
}

// IDs returns the explicit element ids in the order they were used.
func (d *Document) IDs() []string {
	return append([]string(nil), d.idOrder...)
}

// ImageReferences returns the external images recorded so far. The
// caller must write each image under its name next to the document.
func (d *Document) ImageReferences() []ImageReference {
	return append([]ImageReference(nil), d.images...)
}

// ImageEncoder returns the encoder used for image data. Callers writing
// external images use it to produce the referenced files.
func (d *Document) ImageEncoder() ImageEncoder { return d.opts.encoder }

// Assemble renders the complete document. It does not modify the
// document, so repeated calls return identical strings. Groups left
// open are closed in the output.
func (d *Document) Assemble(a RootAttributes) string {
	f := d.opts.num.Format
	var sb strings.Builder
	if d.opts.xmlHeader {
		sb.WriteString(xmlHeader)
	}

	w, h := a.Width, a.Height
	if w == 0 {
		w = d.width
	}
	if h == 0 {
		h = d.height
	}
	root := newElement("svg").
		set("xmlns", svgNamespace).
		set("xmlns:xlink", xlinkNamespace).
		set("id", a.ID)
	if w > 0 {
		root.set("width", f(w)+a.Unit)
	}
	if h > 0 {
		root.set("height", f(h)+a.Unit)
	}
	if vb := a.ViewBox; vb != nil {
		root.set("viewBox", f(vb.X)+" "+f(vb.Y)+" "+f(vb.Width)+" "+f(vb.Height))
	}
	if par := a.PreserveAspectRatio; par != "" {
		if par != "none" {
			if a.Slice {
				par += " slice"
			} else {
				par += " meet"
			}
		}
		root.set("preserveAspectRatio", par)
	}
	root.open(&sb)

	if d.paints.Len() > 0 || d.clips.Len() > 0 {
		sb.WriteString("<defs>")
		sb.WriteString(d.paints.Definitions())
		sb.WriteString(d.clips.Definitions())
		sb.WriteString("</defs>")
	}
	sb.WriteString(d.body.String())
	for range d.groups {
		closeTag(&sb, "g")
	}
	closeTag(&sb, "svg")
	return sb.String()
}

// String assembles the document with the root attributes configured by
// WithRootAttributes.
func (d *Document) String() string {
	return d.Assemble(d.opts.root)
}

// WriteTo writes the assembled document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// addExternalImage records img and returns its file name.
func (d *Document) addExternalImage(img image.Image) string {
	name := d.prefix + "image-" + strconv.Itoa(len(d.images)) + "." + d.opts.encoder.Extension()
	d.images = append(d.images, ImageReference{Name: name, Image: img})
	Logger().Debug("svg: external image", "name", name)
	return name
}
