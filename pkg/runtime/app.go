package runtime

import (
	"github.com/calyx-ui/calyx/pkg/dom"
	"github.com/calyx-ui/calyx/pkg/vdom"
)

// Markers the mount lifecycle owns. The cloak attribute hides unstyled
// content until the application is live; the app-root attribute marks a
// container an application mounted into.
const (
	AttrCloak   = "cx-cloak"
	AttrAppRoot = "data-cx-app"
)

// App wraps a renderer-produced application instance with the mount
// lifecycle: target resolution, template adoption, namespace detection,
// content clearing and the post-mount markers. The wrapped instance stays
// reachable through Instance.
type App struct {
	registry *Registry
	root     vdom.Component
	inst     AppInstance
	ssr      bool
	proxy    *InstanceProxy
}

// NewApp creates a from-scratch application over an explicit registry.
func NewApp(reg *Registry, root vdom.Component, props vdom.Props) *App {
	return createApp(reg, root, props, false)
}

// NewSSRApp creates a hydrating application over an explicit registry.
func NewSSRApp(reg *Registry, root vdom.Component, props vdom.Props) *App {
	initSSRDirectives()
	return createApp(reg, root, props, true)
}

func createApp(reg *Registry, root vdom.Component, props vdom.Props, ssr bool) *App {
	var r Renderer
	if ssr {
		r = reg.EnsureHydrationRenderer()
	} else {
		r = reg.EnsureRenderer()
	}
	inst := r.CreateApp(root, props)

	// Dev diagnostics arm at creation, so a deprecated-field access warns
	// even before the first mount.
	injectNativeTagCheck(inst.Config())
	injectCompilerOptionsCheck(inst.Config())

	return &App{
		registry: reg,
		root:     root,
		inst:     inst,
		ssr:      ssr,
	}
}

// Config returns the wrapped instance's configuration handle.
func (a *App) Config() *Config {
	return a.inst.Config()
}

// Instance returns the wrapped renderer-produced instance.
func (a *App) Instance() AppInstance {
	return a.inst
}

// Mounted returns the proxy of the current mount, or nil.
func (a *App) Mounted() *InstanceProxy {
	return a.proxy
}

// Mount resolves the target and mounts the application into it. A target
// that resolves to nothing aborts silently and returns nil.
//
// For a non-hydrating mount the target's content is cleared before the
// instance mounts, so a mount that subsequently fails leaves the target
// empty rather than restoring what was there.
func (a *App) Mount(target Target) *InstanceProxy {
	warn := a.registry.opts.Warn
	if warn == nil {
		warn = defaultWarn
	}

	container := resolveTarget(a.registry.opts.Doc, target, warn)
	if container == nil {
		return nil
	}

	ns := ResolveNamespace(container, a.registry.opts.Doc)

	// The hydrating path leaves the server-produced markup alone: no
	// template adoption, no clearing, no markers.
	if a.ssr {
		proxy := a.inst.Mount(container, true, ns)
		if proxy == nil {
			return nil
		}
		a.proxy = proxy
		return proxy
	}

	// A root declared without a render source adopts the target's current
	// markup as its template. This reads the markup before it is cleared.
	// Directive diagnostics belong to adoption: the attributes only matter
	// when in-DOM markup is being taken as a template.
	if def, ok := a.root.(*vdom.Def); ok && !def.HasRenderSource() {
		def.Template = container.InnerHTML()
		if CompatMode && DevMode {
			if el, ok := container.(*dom.Element); ok {
				warnLegacyDirectives(el, warn)
			}
		}
	}

	container.Clear()

	proxy := a.inst.Mount(container, false, ns)
	if proxy == nil {
		return nil
	}

	// Markers apply to elements only; shadow roots have no attributes.
	if el, ok := container.(*dom.Element); ok {
		el.RemoveAttribute(AttrCloak)
		el.SetAttribute(AttrAppRoot, "")
	}

	a.proxy = proxy
	return proxy
}

// Unmount tears the mounted tree down and removes the app-root marker.
// Unmounting an app that never mounted is a no-op.
func (a *App) Unmount() {
	if a.proxy == nil {
		return
	}
	if el, ok := a.proxy.Container.(*dom.Element); ok {
		el.RemoveAttribute(AttrAppRoot)
	}
	a.proxy.Container.Clear()
	a.proxy = nil
}
