package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("VKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestIsInteractive(t *testing.T) {
	t.Run("element with handler", func(t *testing.T) {
		node := Button(OnClick(func() {}))
		if !node.IsInteractive() {
			t.Error("expected interactive")
		}
	})

	t.Run("element without handler", func(t *testing.T) {
		node := Div(Class("box"))
		if node.IsInteractive() {
			t.Error("expected not interactive")
		}
	})

	t.Run("text node", func(t *testing.T) {
		node := Text("hi")
		if node.IsInteractive() {
			t.Error("text nodes are never interactive")
		}
	})

	t.Run("nil node", func(t *testing.T) {
		var node *VNode
		if node.IsInteractive() {
			t.Error("nil nodes are never interactive")
		}
	})
}

func TestFunc(t *testing.T) {
	comp := Func(func() *VNode {
		return Div(Text("hello"))
	})

	out := comp.Render()
	if out.Kind != KindElement || out.Tag != "div" {
		t.Fatalf("Render() = %v <%s>, want Element <div>", out.Kind, out.Tag)
	}
}

func TestDefRender(t *testing.T) {
	t.Run("render function wins", func(t *testing.T) {
		def := &Def{
			RenderFn: func() *VNode { return Span() },
			Template: "<div>ignored</div>",
		}
		out := def.Render()
		if out.Tag != "span" {
			t.Errorf("Tag = %q, want span", out.Tag)
		}
	})

	t.Run("template renders raw", func(t *testing.T) {
		def := &Def{Template: "<span>Hi</span>"}
		out := def.Render()
		if out.Kind != KindRaw {
			t.Fatalf("Kind = %v, want KindRaw", out.Kind)
		}
		if out.Text != "<span>Hi</span>" {
			t.Errorf("Text = %q", out.Text)
		}
	})

	t.Run("empty def renders nil", func(t *testing.T) {
		def := &Def{Name: "empty"}
		if def.Render() != nil {
			t.Error("expected nil output")
		}
	})
}

func TestDefHasRenderSource(t *testing.T) {
	tests := []struct {
		name string
		def  Def
		want bool
	}{
		{"empty", Def{}, false},
		{"render fn", Def{RenderFn: func() *VNode { return nil }}, true},
		{"template", Def{Template: "<p></p>"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.def.HasRenderSource(); got != tt.want {
				t.Errorf("HasRenderSource() = %v, want %v", got, tt.want)
			}
		})
	}
}
