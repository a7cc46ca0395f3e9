package dom

import (
	"sort"
	"strings"
)

// selfClosing are elements serialized without a closing tag.
// Mirrors the HTML void-element set.
var selfClosing = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// InnerHTML serializes the element's children to markup.
func (e *Element) InnerHTML() string {
	var buf strings.Builder
	for _, child := range e.children {
		serializeNode(&buf, child)
	}
	return buf.String()
}

// OuterHTML serializes the element including its own tag.
func (e *Element) OuterHTML() string {
	var buf strings.Builder
	serializeNode(&buf, e)
	return buf.String()
}

// InnerHTML serializes the shadow root's children to markup.
func (s *ShadowRoot) InnerHTML() string {
	var buf strings.Builder
	for _, child := range s.children {
		serializeNode(&buf, child)
	}
	return buf.String()
}

// InnerHTML serializes the document's children to markup.
func (d *Document) InnerHTML() string {
	var buf strings.Builder
	for _, child := range d.children {
		serializeNode(&buf, child)
	}
	return buf.String()
}

// TextContent returns the concatenated text of the element's subtree.
func (e *Element) TextContent() string {
	var buf strings.Builder
	collectText(&buf, e)
	return buf.String()
}

func collectText(buf *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Text:
		buf.WriteString(v.Data)
	case *Element:
		for _, child := range v.children {
			collectText(buf, child)
		}
	case *ShadowRoot:
		for _, child := range v.children {
			collectText(buf, child)
		}
	}
}

func serializeNode(buf *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Text:
		buf.WriteString(EscapeText(v.Data))

	case *RawText:
		buf.WriteString(v.Markup)

	case *Comment:
		buf.WriteString("<!--")
		buf.WriteString(v.Data)
		buf.WriteString("-->")

	case *Element:
		buf.WriteByte('<')
		buf.WriteString(v.TagName)
		serializeAttrs(buf, v)
		if selfClosing[v.TagName] {
			buf.WriteByte('>')
			return
		}
		buf.WriteByte('>')
		for _, child := range v.children {
			serializeNode(buf, child)
		}
		buf.WriteString("</")
		buf.WriteString(v.TagName)
		buf.WriteByte('>')

	case *ShadowRoot:
		// Shadow content does not appear in the host's serialized form.
	}
}

// serializeAttrs writes attributes in sorted order for deterministic output.
func serializeAttrs(buf *strings.Builder, e *Element) {
	if len(e.attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(e.attrs))
	for key := range e.attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		buf.WriteByte(' ')
		buf.WriteString(key)
		buf.WriteString(`="`)
		buf.WriteString(EscapeAttr(e.attrs[key]))
		buf.WriteByte('"')
	}
}
