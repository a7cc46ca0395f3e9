package runtime

import "github.com/calyx-ui/calyx/pkg/dom"

// Target is the mount-target union: a selector string, a concrete element,
// or a shadow-root boundary. Exactly one concrete attachment node results
// from resolution, or nil as a defined (non-error) failure.
type Target interface {
	isMountTarget()
}

// Selector resolves against the ambient document; the first match wins.
type Selector string

func (Selector) isMountTarget() {}

// ElementTarget mounts directly into a concrete element.
type ElementTarget struct {
	Element *dom.Element
}

func (ElementTarget) isMountTarget() {}

// ShadowTarget mounts into a shadow-root boundary.
type ShadowTarget struct {
	Root *dom.ShadowRoot
}

func (ShadowTarget) isMountTarget() {}

// resolveTarget normalizes a Target into a single attachment container.
// A nil result is the expected outcome for unmatched selectors; callers
// must check and abort silently.
func resolveTarget(doc *dom.Document, target Target, warn WarnFunc) dom.Container {
	switch t := target.(type) {
	case Selector:
		if doc == nil {
			return nil
		}
		el := doc.Query(string(t))
		if el == nil {
			if DevMode {
				warn("mount: failed to resolve target selector %q; mount aborted", string(t))
			}
			return nil
		}
		return el

	case ElementTarget:
		if t.Element == nil {
			return nil
		}
		return t.Element

	case ShadowTarget:
		if t.Root == nil {
			return nil
		}
		if t.Root.Mode == dom.ShadowClosed && DevMode {
			warn("mount: mounting into a closed shadow root; the mounted tree may not behave as expected")
		}
		return t.Root

	default:
		return nil
	}
}
