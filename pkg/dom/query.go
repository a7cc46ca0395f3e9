package dom

import "strings"

// Query returns the first element in the document matching the selector,
// or nil. Supported selector forms: "#id", ".class", and a bare tag name.
func (d *Document) Query(selector string) *Element {
	return queryIn(d.children, selector)
}

// Query returns the first descendant of the element matching the selector.
func (e *Element) Query(selector string) *Element {
	return queryIn(e.children, selector)
}

// Query returns the first element in the shadow tree matching the selector.
func (s *ShadowRoot) Query(selector string) *Element {
	return queryIn(s.children, selector)
}

func queryIn(nodes []Node, selector string) *Element {
	match := compileSelector(selector)
	if match == nil {
		return nil
	}
	return walk(nodes, match)
}

func walk(nodes []Node, match func(*Element) bool) *Element {
	for _, n := range nodes {
		el, ok := n.(*Element)
		if !ok {
			continue
		}
		if match(el) {
			return el
		}
		if found := walk(el.children, match); found != nil {
			return found
		}
	}
	return nil
}

// compileSelector turns a selector string into a predicate.
// Unsupported or empty selectors compile to nil.
func compileSelector(selector string) func(*Element) bool {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil
	}

	switch selector[0] {
	case '#':
		id := selector[1:]
		if id == "" {
			return nil
		}
		return func(e *Element) bool { return e.ID() == id }

	case '.':
		class := selector[1:]
		if class == "" {
			return nil
		}
		return func(e *Element) bool { return hasClass(e, class) }

	default:
		tag := selector
		return func(e *Element) bool { return e.TagName == tag }
	}
}

func hasClass(e *Element, class string) bool {
	attr, ok := e.GetAttribute("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(attr) {
		if c == class {
			return true
		}
	}
	return false
}
