package runtime

import (
	"strings"

	"github.com/calyx-ui/calyx/pkg/dom"
	"github.com/calyx-ui/calyx/pkg/vdom"
)

// injectNativeTagCheck installs the built-in tag classifier on the
// application config so dev-build component resolution can tell native
// elements from components. Development builds only; repeat calls are
// no-ops.
func injectNativeTagCheck(cfg *Config) {
	if !DevMode || cfg.nativeTagInjected {
		return
	}
	cfg.nativeTag = vdom.IsNativeTag
	cfg.nativeTagInjected = true
}

// injectCompilerOptionsCheck arms the deprecation warnings on the config's
// compiler-option accessors. Development builds only; repeat calls are
// no-ops.
func injectCompilerOptionsCheck(cfg *Config) {
	if !DevMode || cfg.compilerInjected {
		return
	}
	cfg.compilerInjected = true
}

// legacyDirectivePrefixes are the attribute shapes an in-DOM template would
// carry. The cloak marker uses the same prefix but is runtime-owned.
var legacyDirectivePrefixes = []string{"cx-", ":", "@"}

// warnLegacyDirectives emits at most one warning when the mount target
// carries template-directive attributes that a runtime-only build cannot
// compile.
func warnLegacyDirectives(el *dom.Element, warn WarnFunc) {
	for _, name := range el.AttributeNames() {
		if name == AttrCloak {
			continue
		}
		for _, prefix := range legacyDirectivePrefixes {
			if strings.HasPrefix(name, prefix) {
				warn("mount: target element carries template directive %q, "+
					"but this build does not include the template compiler; "+
					"the attribute will be ignored", name)
				return
			}
		}
	}
}
