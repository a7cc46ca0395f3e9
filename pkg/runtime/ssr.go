package runtime

import "github.com/calyx-ui/calyx/pkg/dom"

// SSRDirective applies a server-rendered directive prop to a live element
// during mount.
type SSRDirective func(el *dom.Element, value any)

var (
	ssrDirectivesInitialized bool
	ssrDirectives            = map[string]SSRDirective{}
)

// initSSRDirectives registers the built-in server-rendering directives.
// The work happens once per process no matter how many applications are
// created; repeat calls are no-ops.
func initSSRDirectives() {
	if ssrDirectivesInitialized {
		return
	}
	ssrDirectivesInitialized = true

	// cx-show toggles visibility through the style attribute so that the
	// server-produced markup and the client-mounted tree agree.
	ssrDirectives["cx-show"] = func(el *dom.Element, value any) {
		visible, _ := value.(bool)
		if visible {
			el.RemoveAttribute("style")
			return
		}
		el.SetAttribute("style", "display:none")
	}
}

// lookupSSRDirective returns the registered directive for key, or nil.
func lookupSSRDirective(key string) SSRDirective {
	return ssrDirectives[key]
}
