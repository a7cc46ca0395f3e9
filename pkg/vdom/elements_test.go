package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	t.Run("tag and attrs", func(t *testing.T) {
		node := Div(ID("app"), Class("a", "b"))
		if node.Tag != "div" {
			t.Errorf("Tag = %q, want div", node.Tag)
		}
		if node.Props["id"] != "app" {
			t.Errorf("id = %v, want app", node.Props["id"])
		}
		if node.Props["class"] != "a b" {
			t.Errorf("class = %v, want 'a b'", node.Props["class"])
		}
	})

	t.Run("string child becomes text", func(t *testing.T) {
		node := P("hello")
		if len(node.Children) != 1 || node.Children[0].Kind != KindText {
			t.Fatalf("expected single text child, got %v", node.Children)
		}
	})

	t.Run("nil args ignored", func(t *testing.T) {
		node := Div(nil, Span(), nil)
		if len(node.Children) != 1 {
			t.Errorf("Children len = %d, want 1", len(node.Children))
		}
	})

	t.Run("slice of children", func(t *testing.T) {
		node := Ul([]*VNode{Li(), Li(), nil})
		if len(node.Children) != 2 {
			t.Errorf("Children len = %d, want 2", len(node.Children))
		}
	})

	t.Run("key attr sets Key field", func(t *testing.T) {
		node := Li(Key("row-1"))
		if node.Key != "row-1" {
			t.Errorf("Key = %q, want row-1", node.Key)
		}
	})

	t.Run("event handler stored in props", func(t *testing.T) {
		node := Button(OnClick(func() {}))
		if node.Props["onclick"] == nil {
			t.Error("onclick handler not stored")
		}
	})

	t.Run("embedded component wrapped", func(t *testing.T) {
		comp := Func(func() *VNode { return Span() })
		node := Div(comp)
		if len(node.Children) != 1 || node.Children[0].Kind != KindComponent {
			t.Fatalf("expected component child, got %v", node.Children)
		}
	})

	t.Run("custom element", func(t *testing.T) {
		node := CustomElement("my-widget", ID("w"))
		if node.Tag != "my-widget" {
			t.Errorf("Tag = %q, want my-widget", node.Tag)
		}
	})
}
