package vdom

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// Def declares a component by configuration rather than by a render function.
// A Def with neither a RenderFn nor a Template is allowed: the runtime adopts
// the mount target's current inner content as the template in that case.
type Def struct {
	// Name identifies the component in diagnostics.
	Name string

	// RenderFn produces the component's tree. Takes precedence over Template.
	RenderFn func() *VNode

	// Template is raw markup rendered verbatim when no RenderFn is set.
	Template string
}

// Render implements Component.
func (d *Def) Render() *VNode {
	if d.RenderFn != nil {
		return d.RenderFn()
	}
	if d.Template != "" {
		return &VNode{Kind: KindRaw, Text: d.Template}
	}
	return nil
}

// HasRenderSource reports whether the definition can produce output on its
// own, without a template being supplied from the outside.
func (d *Def) HasRenderSource() bool {
	return d.RenderFn != nil || d.Template != ""
}
