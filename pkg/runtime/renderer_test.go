package runtime

import (
	"testing"

	"github.com/calyx-ui/calyx/pkg/dom"
	"github.com/calyx-ui/calyx/pkg/vdom"
)

func TestRenderMountsTree(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.CreateElement("div")
	doc.AppendChild(root)

	r := NewRenderer(DefaultOptions(doc))
	r.Render(vdom.Div(
		vdom.Class("panel"),
		vdom.H1("Title"),
		vdom.Button(vdom.OnClick(func() {}), "go"),
	), root, NamespaceDefault)

	want := `<div class="panel"><h1>Title</h1><button>go</button></div>`
	if got := root.InnerHTML(); got != want {
		t.Fatalf("InnerHTML = %q, want %q", got, want)
	}

	btn := root.Query("button")
	if btn == nil {
		t.Fatal("button not mounted")
	}
	if len(btn.Listeners("click")) != 1 {
		t.Fatal("click handler should be attached at mount")
	}
}

func TestRenderReplacesPreviousContent(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.CreateElement("div")
	doc.AppendChild(root)

	r := NewRenderer(DefaultOptions(doc))
	r.Render(vdom.P("first"), root, NamespaceDefault)
	r.Render(vdom.P("second"), root, NamespaceDefault)

	if got := root.InnerHTML(); got != "<p>second</p>" {
		t.Fatalf("InnerHTML = %q, want only the second tree", got)
	}
}

func TestRenderFragmentAndComponent(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.CreateElement("div")
	doc.AppendChild(root)

	child := vdom.Func(func() *vdom.VNode { return vdom.Em("nested") })
	r := NewRenderer(DefaultOptions(doc))
	r.Render(vdom.Fragment(
		vdom.Span("a"),
		child,
		vdom.Raw("<hr>"),
	), root, NamespaceDefault)

	want := "<span>a</span><em>nested</em><hr>"
	if got := root.InnerHTML(); got != want {
		t.Fatalf("InnerHTML = %q, want %q", got, want)
	}
}

func TestRenderNamespaceSwitching(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.CreateElement("div")
	doc.AppendChild(root)

	r := NewRenderer(DefaultOptions(doc))
	r.Render(vdom.Svg(
		vdom.CustomElement("circle"),
		vdom.CustomElement("foreignObject",
			vdom.Div("back to markup"),
		),
	), root, NamespaceDefault)

	svg := root.Query("svg")
	if svg == nil || svg.NS != dom.NSSVG {
		t.Fatal("svg element should enter the svg namespace")
	}
	circle := svg.Query("circle")
	if circle == nil || circle.NS != dom.NSSVG {
		t.Fatal("svg children inherit the svg namespace")
	}
	div := svg.Query("div")
	if div == nil || div.NS != dom.NSHTML {
		t.Fatal("foreignObject children switch back to the default namespace")
	}
}

func TestRenderMathNamespace(t *testing.T) {
	doc := dom.NewDocument()
	doc.EnableMathML()
	root := doc.CreateElement("div")
	doc.AppendChild(root)

	r := NewRenderer(DefaultOptions(doc))
	r.Render(vdom.Math(vdom.CustomElement("mrow")), root, NamespaceDefault)

	mrow := root.Query("mrow")
	if mrow == nil || mrow.NS != dom.NSMathML {
		t.Fatal("math children should be created in the mathml namespace")
	}
}

func TestHydrateAttachesHandlers(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.CreateElement("div")
	doc.AppendChild(root)

	wrapper := doc.CreateElement("div")
	btn := doc.CreateElement("button")
	btn.SetAttribute("data-hid", "h1")
	input := doc.CreateElement("input")
	input.SetAttribute("data-hid", "h2")
	wrapper.AppendChild(btn)
	wrapper.AppendChild(input)
	root.AppendChild(wrapper)

	h := NewHydrationRenderer(DefaultOptions(doc))
	ok := h.Hydrate(vdom.Div(
		vdom.Button(vdom.OnClick(func() {}), "go"),
		vdom.Input(vdom.OnInput(func() {})),
	), root)

	if !ok {
		t.Fatal("matching markup should hydrate cleanly")
	}
	if len(btn.Listeners("click")) != 1 {
		t.Fatal("button should gain its click handler")
	}
	if len(input.Listeners("input")) != 1 {
		t.Fatal("input should gain its input handler")
	}
	if len(root.Children()) != 1 || root.Children()[0] != dom.Node(wrapper) {
		t.Fatal("hydration must not rebuild the tree")
	}
}

func TestHydrateMismatchReportsFailure(t *testing.T) {
	setModes(t, true, false)
	doc := dom.NewDocument()
	root := doc.CreateElement("div")
	doc.AppendChild(root)

	a := doc.CreateElement("a")
	a.SetAttribute("data-hid", "h1")
	root.AppendChild(a)

	warns := &warnLog{}
	opts := DefaultOptions(doc)
	opts.Warn = warns.fn

	h := NewHydrationRenderer(opts)
	if h.Hydrate(vdom.Div(vdom.Button(vdom.OnClick(func() {}), "go")), root) {
		t.Fatal("tag mismatch should report failure")
	}
	if len(warns.msgs) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warns.msgs), warns.msgs)
	}
}

func TestHydrateMissingElement(t *testing.T) {
	setModes(t, false, false)
	doc := dom.NewDocument()
	root := doc.CreateElement("div")
	doc.AppendChild(root)

	h := NewHydrationRenderer(DefaultOptions(doc))
	if h.Hydrate(vdom.Div(vdom.Button(vdom.OnClick(func() {}), "go")), root) {
		t.Fatal("missing pre-rendered element should report failure")
	}
}
