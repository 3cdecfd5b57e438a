package svg

import (
	"strings"

	"golang.org/x/net/html"
)

// attr is a single markup attribute. Values are escaped on output.
type attr struct {
	name, value string
}

// element accumulates the attributes of one start tag in insertion order.
type element struct {
	name  string
	attrs []attr
}

func newElement(name string) *element {
	return &element{name: name, attrs: make([]attr, 0, 8)}
}

// set appends an attribute. Empty values are skipped.
func (e *element) set(name, value string) *element {
	if value != "" {
		e.attrs = append(e.attrs, attr{name: name, value: value})
	}
	return e
}

// setRequired appends an attribute even when its value is empty.
func (e *element) setRequired(name, value string) *element {
	e.attrs = append(e.attrs, attr{name: name, value: value})
	return e
}

// open writes the start tag.
func (e *element) open(sb *strings.Builder) {
	e.start(sb)
	sb.WriteByte('>')
}

// empty writes a self-closing tag.
func (e *element) empty(sb *strings.Builder) {
	e.start(sb)
	sb.WriteString("/>")
}

func (e *element) start(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.name)
	for _, a := range e.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.name)
		sb.WriteString(`="`)
		sb.WriteString(escapeXML(a.value))
		sb.WriteByte('"')
	}
}

// escapeXML escapes s for character data and attribute values.
func escapeXML(s string) string {
	return html.EscapeString(xmlSafe(s))
}

// xmlSafe replaces invalid UTF-8 with U+FFFD and drops characters
// outside the XML 1.0 Char production.
func xmlSafe(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	return strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return -1
	}, s)
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r < 0x20:
		return false
	case r >= 0xD800 && r <= 0xDFFF, r == 0xFFFE, r == 0xFFFF:
		return false
	}
	return r <= 0x10FFFF
}

func closeTag(sb *strings.Builder, name string) {
	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteByte('>')
}

// style builds a compact key:value;key:value property list.
type style struct {
	sb strings.Builder
}

func (s *style) add(key, value string) {
	if s.sb.Len() > 0 {
		s.sb.WriteByte(';')
	}
	s.sb.WriteString(key)
	s.sb.WriteByte(':')
	s.sb.WriteString(value)
}

func (s *style) append(raw string) {
	if raw == "" {
		return
	}
	if s.sb.Len() > 0 {
		s.sb.WriteByte(';')
	}
	s.sb.WriteString(raw)
}

func (s *style) String() string { return s.sb.String() }
