package svg

// Option configures a Document during creation.
//
// Example:
//
//	doc := svg.NewDocument(800, 600,
//	    svg.WithIDPrefix("chart-"),
//	    svg.WithPrecision(2),
//	)
type Option func(*options)

// defaultHairline is the stroke width written for zero-width strokes.
const defaultHairline = 0.1

// options holds the configuration shared by a document and its contexts.
type options struct {
	idPrefix      string
	num           NumberFormatter
	hairline      float64
	imageMode     ImageMode
	encoder       ImageEncoder
	metrics       FontMetrics
	outliner      GlyphOutliner
	textAsShapes  bool
	familyMapper  func(string) string
	paintAdapters []PaintAdapter
	shapeAdapters []ShapeAdapter
	xmlHeader     bool
	root          RootAttributes
}

func defaultOptions() options {
	return options{
		num:       ShortestFormatter{},
		hairline:  defaultHairline,
		imageMode: ImageEmbedded,
		encoder:   PNGEncoder{},
		metrics:   basicMetrics{},
	}
}

// WithIDPrefix sets the namespace prefix of generated resource ids.
// Documents that will be inlined into the same page need distinct
// prefixes. By default each document gets a process-unique prefix.
func WithIDPrefix(prefix string) Option {
	return func(o *options) {
		o.idPrefix = prefix
	}
}

// WithNumberFormatter sets the formatter used for every number written.
func WithNumberFormatter(f NumberFormatter) Option {
	return func(o *options) {
		if f != nil {
			o.num = f
		}
	}
}

// WithPrecision limits numbers to the given count of decimal places.
// It is shorthand for WithNumberFormatter(FixedFormatter{Places: places}).
func WithPrecision(places int) Option {
	return WithNumberFormatter(FixedFormatter{Places: places})
}

// WithHairlineWidth sets the width written for zero-width strokes.
func WithHairlineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.hairline = w
		}
	}
}

// WithImageMode selects between embedded data URIs and external files.
func WithImageMode(m ImageMode) Option {
	return func(o *options) {
		o.imageMode = m
	}
}

// WithImageEncoder sets the raster encoder used for images.
func WithImageEncoder(e ImageEncoder) Option {
	return func(o *options) {
		if e != nil {
			o.encoder = e
		}
	}
}

// WithFontMetrics sets the collaborator used to measure text.
// See the fonts package for implementations backed by real font files.
func WithFontMetrics(m FontMetrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithGlyphOutliner sets the collaborator used to turn text into paths.
func WithGlyphOutliner(g GlyphOutliner) Option {
	return func(o *options) {
		o.outliner = g
	}
}

// WithTextAsShapes writes text as filled glyph outlines instead of text
// elements. It requires a GlyphOutliner; without one text stays text.
func WithTextAsShapes(enabled bool) Option {
	return func(o *options) {
		o.textAsShapes = enabled
	}
}

// WithFontFamilyMapper rewrites font family names before they are
// written, for example to append generic fallbacks.
func WithFontFamilyMapper(fn func(family string) string) Option {
	return func(o *options) {
		o.familyMapper = fn
	}
}

// WithPaintAdapter registers a converter for paints the package does
// not know. Adapters are tried in registration order.
func WithPaintAdapter(a PaintAdapter) Option {
	return func(o *options) {
		if a != nil {
			o.paintAdapters = append(o.paintAdapters, a)
		}
	}
}

// WithShapeAdapter registers a converter for shapes the package does
// not know. Adapters are tried in registration order.
func WithShapeAdapter(a ShapeAdapter) Option {
	return func(o *options) {
		if a != nil {
			o.shapeAdapters = append(o.shapeAdapters, a)
		}
	}
}

// WithXMLHeader prepends an XML declaration to the assembled document.
func WithXMLHeader(enabled bool) Option {
	return func(o *options) {
		o.xmlHeader = enabled
	}
}

// WithRootAttributes sets the root attributes used by String and WriteTo.
// Width and height left at zero take the document size.
func WithRootAttributes(a RootAttributes) Option {
	return func(o *options) {
		o.root = a
	}
}
