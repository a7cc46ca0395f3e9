package runtime

import (
	"sync"

	"github.com/calyx-ui/calyx/pkg/dom"
	"github.com/calyx-ui/calyx/pkg/vdom"
)

// RendererFactory constructs a renderer over an options bag. The registry
// holds factories rather than renderers so that construction is paid only
// when an application actually renders.
type RendererFactory func(opts Options) Renderer

// HydrationRendererFactory constructs a hydration-capable renderer.
type HydrationRendererFactory func(opts Options) HydrationRenderer

// Registry owns the lazily constructed renderer for one document. A single
// renderer slot serves both entry points: the hydration-capable renderer
// satisfies plain rendering too, so once it exists everything shares it.
//
// Registries are not safe for concurrent use; like the rest of the runtime
// they belong to the application goroutine.
type Registry struct {
	opts Options

	newRenderer          RendererFactory
	newHydrationRenderer HydrationRendererFactory

	renderer Renderer
	hydrated bool
}

// NewRegistry creates a registry over the given options with the default
// renderer factories.
func NewRegistry(opts Options) *Registry {
	return &Registry{
		opts:                 opts,
		newRenderer:          NewRenderer,
		newHydrationRenderer: NewHydrationRenderer,
	}
}

// SetFactories replaces the construction functions. Passing nil keeps the
// current factory for that slot. Tests use this to count constructions.
func (r *Registry) SetFactories(rf RendererFactory, hf HydrationRendererFactory) {
	if rf != nil {
		r.newRenderer = rf
	}
	if hf != nil {
		r.newHydrationRenderer = hf
	}
}

// EnsureRenderer returns the shared renderer, constructing the plain
// variant on first use. A previously ensured hydration renderer is reused
// as-is rather than being downgraded.
func (r *Registry) EnsureRenderer() Renderer {
	if r.renderer == nil {
		r.renderer = r.newRenderer(r.opts)
	}
	return r.renderer
}

// EnsureHydrationRenderer returns the shared renderer, upgrading the slot
// to the hydration-capable variant on first hydration use. A plain renderer
// already in the slot is replaced; from then on both entry points hand out
// the hydration renderer.
func (r *Registry) EnsureHydrationRenderer() HydrationRenderer {
	if !r.hydrated {
		hr := r.newHydrationRenderer(r.opts)
		r.renderer = hr
		r.hydrated = true
	}
	return r.renderer.(HydrationRenderer)
}

// Render renders a tree into the container using the shared renderer.
func (r *Registry) Render(node *vdom.VNode, container dom.Container, ns Namespace) {
	r.EnsureRenderer().Render(node, container, ns)
}

// Hydrate attaches behavior to pre-rendered markup in the container.
func (r *Registry) Hydrate(node *vdom.VNode, container dom.Container) bool {
	return r.EnsureHydrationRenderer().Hydrate(node, container)
}

// defaultRegistry serves the package-level entry points. The document it is
// bound to is installed by Init; until then the slot is empty and the entry
// points construct a registry over a fresh document.
var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating one over a fresh
// document if none has been installed.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRegistry == nil {
		defaultRegistry = NewRegistry(DefaultOptions(dom.NewDocument()))
	}
	return defaultRegistry
}

// SetDefault installs the process-wide registry. Passing nil resets it so
// the next Default call constructs a fresh one.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// CreateApp creates an application whose mount renders from scratch,
// clearing the target's existing content first.
func CreateApp(root vdom.Component, props vdom.Props) *App {
	return createApp(Default(), root, props, false)
}

// CreateSSRApp creates an application whose mount hydrates server-produced
// markup already present in the target.
func CreateSSRApp(root vdom.Component, props vdom.Props) *App {
	initSSRDirectives()
	return createApp(Default(), root, props, true)
}

// Render renders a tree into the container through the default registry.
func Render(node *vdom.VNode, container dom.Container) {
	Default().Render(node, container, NamespaceDefault)
}

// Hydrate hydrates pre-rendered markup through the default registry.
func Hydrate(node *vdom.VNode, container dom.Container) bool {
	return Default().Hydrate(node, container)
}
