package runtime

import (
	"strings"

	"github.com/calyx-ui/calyx/pkg/dom"
	"github.com/calyx-ui/calyx/pkg/vdom"
)

// Options is the bag a renderer is constructed over: the ambient document,
// the primitive node operations, the prop patcher, and the diagnostics sink.
type Options struct {
	Doc       *dom.Document
	Ops       NodeOps
	PatchProp PatchPropFunc
	Warn      WarnFunc
}

// DefaultOptions binds the default node operations and prop patcher to doc.
func DefaultOptions(doc *dom.Document) Options {
	return Options{
		Doc:       doc,
		Ops:       DefaultNodeOps(doc),
		PatchProp: PatchProp,
		Warn:      defaultWarn,
	}
}

// Renderer is the capability handle produced by the factory: it can render
// a tree into a container and create application instances.
type Renderer interface {
	// Render replaces the container's content with the given tree.
	Render(node *vdom.VNode, container dom.Container, ns Namespace)

	// CreateApp produces a generic application instance for the root
	// component. The instance's Mount is the capability the application
	// lifecycle wraps.
	CreateApp(root vdom.Component, props vdom.Props) AppInstance
}

// HydrationRenderer is a Renderer that can additionally attach behavior to
// markup a server already produced, without rebuilding it.
type HydrationRenderer interface {
	Renderer

	// Hydrate pairs the virtual tree with pre-rendered markup in the
	// container and attaches event handlers. Returns false when the markup
	// does not structurally match.
	Hydrate(node *vdom.VNode, container dom.Container) bool
}

// AppInstance is the generic instance produced by a renderer's CreateApp.
type AppInstance interface {
	Config() *Config
	Mount(container dom.Container, hydrating bool, ns Namespace) *InstanceProxy
}

// InstanceProxy is returned from a successful mount.
type InstanceProxy struct {
	Comp      vdom.Component
	Props     vdom.Props
	Root      *vdom.VNode
	Container dom.Container
}

// engine is the concrete renderer. Construction is the expensive step the
// registry defers; the same engine serves both variants, with hydration
// capability gated by the flag.
type engine struct {
	opts      Options
	hydration bool
}

// NewRenderer constructs a non-hydrating renderer over the options bag.
func NewRenderer(opts Options) Renderer {
	return newEngine(opts, false)
}

// NewHydrationRenderer constructs a hydration-capable renderer.
func NewHydrationRenderer(opts Options) HydrationRenderer {
	return newEngine(opts, true)
}

func newEngine(opts Options, hydration bool) *engine {
	if opts.PatchProp == nil {
		opts.PatchProp = PatchProp
	}
	if opts.Warn == nil {
		opts.Warn = defaultWarn
	}
	return &engine{opts: opts, hydration: hydration}
}

// Render implements Renderer.
func (e *engine) Render(node *vdom.VNode, container dom.Container, ns Namespace) {
	if container == nil {
		return
	}
	container.Clear()
	e.mountNode(node, container, nil, ns)
}

// CreateApp implements Renderer.
func (e *engine) CreateApp(root vdom.Component, props vdom.Props) AppInstance {
	return &appInstance{
		root:   root,
		props:  props,
		engine: e,
		config: newConfig(e.opts.Warn),
	}
}

// Hydrate implements HydrationRenderer.
func (e *engine) Hydrate(node *vdom.VNode, container dom.Container) bool {
	if node == nil || container == nil {
		return false
	}

	// Assign IDs in the same order the server renderer stamped them.
	vdom.AssignHIDs(node, vdom.NewHIDGenerator())

	stamped := make(map[string]*dom.Element)
	collectStamped(container.Children(), stamped)

	ok := true
	for hid, vn := range vdom.CollectHIDs(node) {
		el := stamped[hid]
		if el == nil {
			if DevMode {
				e.opts.Warn("hydration: no pre-rendered element for %s <%s>", hid, vn.Tag)
			}
			ok = false
			continue
		}
		if el.TagName != vn.Tag {
			if DevMode {
				e.opts.Warn("hydration: tag mismatch for %s: rendered <%s>, expected <%s>",
					hid, el.TagName, vn.Tag)
			}
			ok = false
			continue
		}
		attachHandlers(el, vn)
	}
	return ok
}

// collectStamped gathers elements carrying a hydration ID, including those
// nested in open shadow roots.
func collectStamped(nodes []dom.Node, out map[string]*dom.Element) {
	for _, n := range nodes {
		el, isEl := n.(*dom.Element)
		if !isEl {
			continue
		}
		if hid, ok := el.GetAttribute("data-hid"); ok && hid != "" {
			out[hid] = el
		}
		collectStamped(el.Children(), out)
		if sr := el.Shadow(); sr != nil && sr.Mode == dom.ShadowOpen {
			collectStamped(sr.Children(), out)
		}
	}
}

// attachHandlers registers the vnode's event handlers on the live element.
func attachHandlers(el *dom.Element, vn *vdom.VNode) {
	for key, value := range vn.Props {
		if isEventKey(key) {
			el.AddEventListener(strings.ToLower(key[2:]), value)
		}
	}
}

// mountNode creates live nodes for the virtual tree and inserts them.
func (e *engine) mountNode(node *vdom.VNode, parent dom.Container, anchor dom.Node, ns Namespace) {
	if node == nil {
		return
	}

	switch node.Kind {
	case vdom.KindText:
		e.opts.Ops.Insert(parent, e.opts.Ops.CreateText(node.Text), anchor)

	case vdom.KindRaw:
		e.opts.Ops.Insert(parent, e.opts.Ops.CreateRaw(node.Text), anchor)

	case vdom.KindFragment:
		for _, child := range node.Children {
			e.mountNode(child, parent, anchor, ns)
		}

	case vdom.KindComponent:
		if node.Comp != nil {
			e.mountNode(node.Comp.Render(), parent, anchor, ns)
		}

	case vdom.KindElement:
		selfNS, childNS := elementNamespaces(node.Tag, ns)
		el := e.opts.Ops.CreateElement(node.Tag, selfNS)
		for key, value := range node.Props {
			e.opts.PatchProp(el, key, value)
		}
		if node.HID != "" {
			el.SetAttribute("data-hid", node.HID)
		}
		e.opts.Ops.Insert(parent, el, anchor)
		for _, child := range node.Children {
			e.mountNode(child, el, nil, childNS)
		}
	}
}

// elementNamespaces decides which namespace an element and its children are
// created under. Entering <svg> or <math> switches namespaces; an SVG
// foreignObject switches its children back to the default.
func elementNamespaces(tag string, ns Namespace) (self, child Namespace) {
	switch {
	case tag == "svg":
		return NamespaceSVG, NamespaceSVG
	case tag == "math":
		return NamespaceMathML, NamespaceMathML
	case ns == NamespaceSVG && tag == "foreignObject":
		return NamespaceSVG, NamespaceDefault
	default:
		return ns, ns
	}
}

// appInstance is the generic instance a renderer hands to the lifecycle.
type appInstance struct {
	root   vdom.Component
	props  vdom.Props
	engine *engine
	config *Config
}

// Config implements AppInstance.
func (i *appInstance) Config() *Config {
	return i.config
}

// Mount implements AppInstance. A root that renders nothing is a failed
// mount and yields nil.
func (i *appInstance) Mount(container dom.Container, hydrating bool, ns Namespace) *InstanceProxy {
	if i.root == nil || container == nil {
		return nil
	}
	node := i.root.Render()
	if node == nil {
		return nil
	}

	if hydrating && i.engine.hydration {
		i.engine.Hydrate(node, container)
	} else {
		i.engine.Render(node, container, ns)
	}

	return &InstanceProxy{
		Comp:      i.root,
		Props:     i.props,
		Root:      node,
		Container: container,
	}
}
