package runtime

import (
	"testing"

	"github.com/calyx-ui/calyx/pkg/dom"
)

func TestResolveNamespace(t *testing.T) {
	doc := dom.NewDocument()
	mathDoc := dom.NewDocument()
	mathDoc.EnableMathML()

	host := dom.NewElement("x-host")
	shadow := host.AttachShadow(dom.ShadowOpen)

	tests := []struct {
		name      string
		container dom.Container
		doc       *dom.Document
		want      Namespace
	}{
		{"plain div", doc.CreateElement("div"), doc, NamespaceDefault},
		{"svg tag", doc.CreateElement("svg"), doc, NamespaceSVG},
		{"svg namespaced child", doc.CreateElementNS("g", dom.NSSVG), doc, NamespaceSVG},
		{"math without capability", doc.CreateElement("math"), doc, NamespaceDefault},
		{"math with capability", mathDoc.CreateElement("math"), mathDoc, NamespaceMathML},
		{"mathml namespaced child", mathDoc.CreateElementNS("mrow", dom.NSMathML), mathDoc, NamespaceMathML},
		{"shadow root", shadow, doc, NamespaceDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveNamespace(tt.container, tt.doc); got != tt.want {
				t.Fatalf("ResolveNamespace = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNamespaceString(t *testing.T) {
	if NamespaceSVG.String() != "svg" || NamespaceMathML.String() != "mathml" || NamespaceDefault.String() != "default" {
		t.Fatal("unexpected namespace names")
	}
}
