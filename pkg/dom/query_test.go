package dom

import "testing"

// buildDoc creates a small document:
//
//	<main><div id="app" class="root shell"><span class="msg">hi</span></div></main>
func buildDoc() (*Document, *Element, *Element) {
	doc := NewDocument()
	main := NewElement("main")
	app := NewElement("div")
	app.SetAttribute("id", "app")
	app.SetAttribute("class", "root shell")
	span := NewElement("span")
	span.SetAttribute("class", "msg")
	app.AppendChild(span)
	main.AppendChild(app)
	doc.AppendChild(main)
	return doc, app, span
}

func TestQueryByID(t *testing.T) {
	doc, app, _ := buildDoc()

	if got := doc.Query("#app"); got != app {
		t.Errorf("Query(#app) = %v, want app element", got)
	}
	if got := doc.Query("#missing"); got != nil {
		t.Errorf("Query(#missing) = %v, want nil", got)
	}
}

func TestQueryByClass(t *testing.T) {
	doc, app, span := buildDoc()

	if got := doc.Query(".msg"); got != span {
		t.Errorf("Query(.msg) = %v, want span", got)
	}
	if got := doc.Query(".root"); got != app {
		t.Errorf("Query(.root) = %v, want app (multi-class attr)", got)
	}
	if got := doc.Query(".nope"); got != nil {
		t.Errorf("Query(.nope) = %v, want nil", got)
	}
}

func TestQueryByTag(t *testing.T) {
	doc, _, span := buildDoc()

	if got := doc.Query("span"); got != span {
		t.Errorf("Query(span) = %v, want span", got)
	}
	if got := doc.Query("table"); got != nil {
		t.Errorf("Query(table) = %v, want nil", got)
	}
}

func TestQueryFirstMatchWins(t *testing.T) {
	doc := NewDocument()
	first := NewElement("p")
	second := NewElement("p")
	doc.AppendChild(first)
	doc.AppendChild(second)

	if got := doc.Query("p"); got != first {
		t.Error("Query should return the first match in document order")
	}
}

func TestQueryInvalidSelectors(t *testing.T) {
	doc, _, _ := buildDoc()

	for _, sel := range []string{"", "#", ".", "   "} {
		if got := doc.Query(sel); got != nil {
			t.Errorf("Query(%q) = %v, want nil", sel, got)
		}
	}
}

func TestQueryScopedToElement(t *testing.T) {
	_, app, span := buildDoc()

	if got := app.Query(".msg"); got != span {
		t.Errorf("element Query(.msg) = %v, want span", got)
	}
	if got := span.Query(".msg"); got != nil {
		t.Error("scope should not match the scope element itself")
	}
}

func TestQueryShadowScope(t *testing.T) {
	host := NewElement("div")
	sr := host.AttachShadow(ShadowOpen)
	inner := NewElement("button")
	inner.SetAttribute("id", "go")
	sr.AppendChild(inner)

	if got := sr.Query("#go"); got != inner {
		t.Error("shadow Query did not find element")
	}
	// Shadow content is not reachable from the host's light tree.
	if got := host.Query("#go"); got != nil {
		t.Error("light-tree Query leaked into shadow root")
	}
}
