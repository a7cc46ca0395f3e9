// Package calyx provides the public API for the Calyx rendering toolkit.
//
// This is the recommended import for most applications:
//
//	import "github.com/calyx-ui/calyx"
//
// Usage:
//
//	app := calyx.CreateApp(calyx.Func(HomePage), nil)
//	app.Mount(calyx.Selector("#app"))
package calyx

import (
	"github.com/calyx-ui/calyx/pkg/dom"
	"github.com/calyx-ui/calyx/pkg/runtime"
	"github.com/calyx-ui/calyx/pkg/vdom"
)

// =============================================================================
// Application lifecycle (re-export from pkg/runtime)
// =============================================================================

// App is an application wrapped with the mount lifecycle.
type App = runtime.App

// AppInstance is the renderer-produced instance an App wraps.
type AppInstance = runtime.AppInstance

// InstanceProxy is returned from a successful mount.
type InstanceProxy = runtime.InstanceProxy

// Config is the per-application configuration handle.
type Config = runtime.Config

// Registry owns the lazily constructed renderer for one document.
type Registry = runtime.Registry

// CreateApp creates an application whose mount renders from scratch.
var CreateApp = runtime.CreateApp

// CreateSSRApp creates an application whose mount hydrates server-produced
// markup already present in the target.
var CreateSSRApp = runtime.CreateSSRApp

// Render renders a tree into a container through the default registry.
var Render = runtime.Render

// Hydrate attaches behavior to pre-rendered markup through the default
// registry.
var Hydrate = runtime.Hydrate

// =============================================================================
// Mount targets and namespaces
// =============================================================================

// Target is the mount-target union: Selector, ElementTarget or ShadowTarget.
type Target = runtime.Target

// Selector resolves a mount target against the document.
type Selector = runtime.Selector

// ElementTarget mounts directly into a concrete element.
type ElementTarget = runtime.ElementTarget

// ShadowTarget mounts into a shadow-root boundary.
type ShadowTarget = runtime.ShadowTarget

// Namespace selects the creation semantics for descendant nodes.
type Namespace = runtime.Namespace

const (
	NamespaceDefault = runtime.NamespaceDefault
	NamespaceSVG     = runtime.NamespaceSVG
	NamespaceMathML  = runtime.NamespaceMathML
)

// =============================================================================
// Components and virtual nodes (re-export from pkg/vdom)
// =============================================================================

// Component is anything that can render to a VNode.
type Component = vdom.Component

// VNode is a node in the virtual tree.
type VNode = vdom.VNode

// Props holds a node's properties.
type Props = vdom.Props

// Def declares a component by configuration rather than by a render
// function.
type Def = vdom.Def

// Func creates a component from a render function.
var Func = vdom.Func

// Text creates a text node.
var Text = vdom.Text

// Fragment groups children without a wrapper element.
var Fragment = vdom.Fragment

// IsNativeTag reports whether a tag belongs to the built-in HTML, SVG or
// MathML vocabularies.
var IsNativeTag = vdom.IsNativeTag

// =============================================================================
// Documents
// =============================================================================

// Document is an in-memory presentation tree.
type Document = dom.Document

// NewDocument creates an empty document.
var NewDocument = dom.NewDocument
