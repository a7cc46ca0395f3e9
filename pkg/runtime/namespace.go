package runtime

import "github.com/calyx-ui/calyx/pkg/dom"

// Namespace selects the creation semantics for descendant nodes.
// It is derived from the mount target per call, never stored.
type Namespace uint8

const (
	NamespaceDefault Namespace = iota // general markup
	NamespaceSVG                      // vector graphics
	NamespaceMathML                   // math markup
)

// String returns the string representation of the Namespace.
func (n Namespace) String() string {
	switch n {
	case NamespaceSVG:
		return "svg"
	case NamespaceMathML:
		return "mathml"
	default:
		return "default"
	}
}

// domNS maps the namespace to the presentation-tree constant.
func (n Namespace) domNS() dom.NS {
	switch n {
	case NamespaceSVG:
		return dom.NSSVG
	case NamespaceMathML:
		return dom.NSMathML
	default:
		return dom.NSHTML
	}
}

// ResolveNamespace inspects the resolved attachment node and determines
// which namespace descendants should be created under. MathML is only
// reported when the document exposes that capability at all.
func ResolveNamespace(container dom.Container, doc *dom.Document) Namespace {
	el, ok := container.(*dom.Element)
	if !ok {
		return NamespaceDefault
	}
	if el.NS == dom.NSSVG || el.TagName == "svg" {
		return NamespaceSVG
	}
	if doc != nil && doc.SupportsMathML() {
		if el.NS == dom.NSMathML || el.TagName == "math" {
			return NamespaceMathML
		}
	}
	return NamespaceDefault
}
