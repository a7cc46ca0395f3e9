package dom

// NS identifies the structural namespace an element was created in.
type NS string

const (
	NSHTML   NS = ""       // default markup namespace
	NSSVG    NS = "svg"    // vector graphics
	NSMathML NS = "mathml" // math markup
)

// ShadowMode is the encapsulation mode of a shadow root.
type ShadowMode uint8

const (
	ShadowOpen ShadowMode = iota
	ShadowClosed
)

// String returns the string representation of the ShadowMode.
func (m ShadowMode) String() string {
	if m == ShadowClosed {
		return "closed"
	}
	return "open"
}

// Node is any member of the presentation tree.
type Node interface {
	// ParentNode returns the node's parent, or nil for detached nodes and
	// document roots.
	ParentNode() Node

	setParent(Node)
}

// Container is a node that can hold children: Element, ShadowRoot, Document.
type Container interface {
	Node

	// Children returns the node's current child list.
	Children() []Node

	// AppendChild attaches n as the last child.
	AppendChild(n Node)

	// InsertBefore inserts n before ref. A nil ref appends.
	InsertBefore(n, ref Node)

	// RemoveChild detaches n. Unknown children are ignored.
	RemoveChild(n Node)

	// Clear detaches all children.
	Clear()

	// InnerHTML serializes the node's children to markup.
	InnerHTML() string
}

// childList is the shared child-holding implementation.
type childList struct {
	children []Node
	self     Node // the container the list belongs to, for parent links
}

func (c *childList) Children() []Node {
	return c.children
}

func (c *childList) AppendChild(n Node) {
	if n == nil {
		return
	}
	detach(n)
	n.setParent(c.self)
	c.children = append(c.children, n)
}

func (c *childList) InsertBefore(n, ref Node) {
	if n == nil {
		return
	}
	if ref == nil {
		c.AppendChild(n)
		return
	}
	detach(n)
	n.setParent(c.self)
	for i, child := range c.children {
		if child == ref {
			c.children = append(c.children[:i], append([]Node{n}, c.children[i:]...)...)
			return
		}
	}
	c.children = append(c.children, n)
}

func (c *childList) RemoveChild(n Node) {
	for i, child := range c.children {
		if child == n {
			c.children = append(c.children[:i], c.children[i+1:]...)
			n.setParent(nil)
			return
		}
	}
}

func (c *childList) Clear() {
	for _, child := range c.children {
		child.setParent(nil)
	}
	c.children = nil
}

// detach removes n from its current parent, if any.
func detach(n Node) {
	if parent, ok := n.ParentNode().(Container); ok && parent != nil {
		parent.RemoveChild(n)
	}
}

// Element is a markup element with attributes, children, event listeners,
// and an optional shadow root.
type Element struct {
	childList

	TagName string
	NS      NS

	parent    Node
	attrs     map[string]string
	listeners map[string][]any
	shadow    *ShadowRoot
}

// NewElement creates a detached element in the default namespace.
func NewElement(tag string) *Element {
	return NewElementNS(tag, NSHTML)
}

// NewElementNS creates a detached element in the given namespace.
func NewElementNS(tag string, ns NS) *Element {
	e := &Element{
		TagName: tag,
		NS:      ns,
		attrs:   make(map[string]string),
	}
	e.childList.self = e
	return e
}

// ParentNode implements Node.
func (e *Element) ParentNode() Node { return e.parent }

func (e *Element) setParent(p Node) { e.parent = p }

// SetAttribute sets an attribute value.
func (e *Element) SetAttribute(name, value string) {
	e.attrs[name] = value
}

// GetAttribute returns the attribute value and whether it is present.
func (e *Element) GetAttribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// RemoveAttribute removes the attribute if present.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// AttributeNames returns the names of all present attributes, unordered.
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	return names
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	return e.attrs["id"]
}

// AddEventListener registers an event handler (e.g., "click").
func (e *Element) AddEventListener(event string, handler any) {
	if e.listeners == nil {
		e.listeners = make(map[string][]any)
	}
	e.listeners[event] = append(e.listeners[event], handler)
}

// Listeners returns the handlers registered for the event.
func (e *Element) Listeners(event string) []any {
	return e.listeners[event]
}

// AttachShadow creates (or returns the existing) shadow root.
func (e *Element) AttachShadow(mode ShadowMode) *ShadowRoot {
	if e.shadow == nil {
		sr := &ShadowRoot{Mode: mode, Host: e}
		sr.childList.self = sr
		e.shadow = sr
	}
	return e.shadow
}

// Shadow returns the element's shadow root, or nil.
func (e *Element) Shadow() *ShadowRoot {
	return e.shadow
}

// SetText replaces the element's children with a single text node.
func (e *Element) SetText(text string) {
	e.Clear()
	e.AppendChild(NewText(text))
}

// Text is a text node.
type Text struct {
	Data   string
	parent Node
}

// NewText creates a detached text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

// ParentNode implements Node.
func (t *Text) ParentNode() Node { return t.parent }

func (t *Text) setParent(p Node) { t.parent = p }

// Comment is a comment node.
type Comment struct {
	Data   string
	parent Node
}

// NewComment creates a detached comment node.
func NewComment(data string) *Comment {
	return &Comment{Data: data}
}

// ParentNode implements Node.
func (c *Comment) ParentNode() Node { return c.parent }

func (c *Comment) setParent(p Node) { c.parent = p }

// RawText is an unescaped markup node. Serialized verbatim.
type RawText struct {
	Markup string
	parent Node
}

// NewRawText creates a detached raw markup node.
func NewRawText(markup string) *RawText {
	return &RawText{Markup: markup}
}

// ParentNode implements Node.
func (r *RawText) ParentNode() Node { return r.parent }

func (r *RawText) setParent(p Node) { r.parent = p }

// ShadowRoot is a restricted attachment boundary hosted by an element.
type ShadowRoot struct {
	childList

	Mode ShadowMode
	Host *Element
}

// ParentNode implements Node. A shadow root's parent is its host.
func (s *ShadowRoot) ParentNode() Node { return s.Host }

func (s *ShadowRoot) setParent(Node) {}

// Document is the root of a presentation tree.
type Document struct {
	childList

	mathML bool
}

// NewDocument creates an empty document without MathML support.
func NewDocument() *Document {
	d := &Document{}
	d.childList.self = d
	return d
}

// EnableMathML declares that the environment exposes the math-markup
// element type. Namespace detection reports MathML only when set.
func (d *Document) EnableMathML() {
	d.mathML = true
}

// SupportsMathML reports whether the math-markup capability is present.
func (d *Document) SupportsMathML() bool {
	return d.mathML
}

// ParentNode implements Node.
func (d *Document) ParentNode() Node { return nil }

func (d *Document) setParent(Node) {}

// CreateElement creates a detached element in the default namespace.
func (d *Document) CreateElement(tag string) *Element {
	return NewElement(tag)
}

// CreateElementNS creates a detached element in the given namespace.
func (d *Document) CreateElementNS(tag string, ns NS) *Element {
	return NewElementNS(tag, ns)
}

// CreateText creates a detached text node.
func (d *Document) CreateText(data string) *Text {
	return NewText(data)
}
