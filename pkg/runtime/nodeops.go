package runtime

import "github.com/calyx-ui/calyx/pkg/dom"

// NodeOps is the fixed set of primitive node operations the renderer is
// constructed over. Together with PatchProp it forms the options bag passed
// to renderer construction; swapping it out is how tests observe engine
// behavior without a real document.
type NodeOps struct {
	CreateElement func(tag string, ns Namespace) *dom.Element
	CreateText    func(data string) *dom.Text
	CreateComment func(data string) *dom.Comment
	CreateRaw     func(markup string) *dom.RawText
	Insert        func(parent dom.Container, n dom.Node, anchor dom.Node)
	Remove        func(parent dom.Container, n dom.Node)
	SetText       func(t *dom.Text, data string)
	Parent        func(n dom.Node) dom.Node
}

// DefaultNodeOps binds the primitive operations to a document.
func DefaultNodeOps(doc *dom.Document) NodeOps {
	return NodeOps{
		CreateElement: func(tag string, ns Namespace) *dom.Element {
			return doc.CreateElementNS(tag, ns.domNS())
		},
		CreateText: func(data string) *dom.Text {
			return doc.CreateText(data)
		},
		CreateComment: func(data string) *dom.Comment {
			return dom.NewComment(data)
		},
		CreateRaw: func(markup string) *dom.RawText {
			return dom.NewRawText(markup)
		},
		Insert: func(parent dom.Container, n dom.Node, anchor dom.Node) {
			parent.InsertBefore(n, anchor)
		},
		Remove: func(parent dom.Container, n dom.Node) {
			parent.RemoveChild(n)
		},
		SetText: func(t *dom.Text, data string) {
			t.Data = data
		},
		Parent: func(n dom.Node) dom.Node {
			return n.ParentNode()
		},
	}
}
