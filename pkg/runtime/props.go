package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calyx-ui/calyx/pkg/dom"
)

// PatchPropFunc applies a single virtual prop onto a live element.
type PatchPropFunc func(el *dom.Element, key string, value any)

// PatchProp is the default prop-patching implementation: event handler keys
// become listeners, boolean attributes toggle by presence, SSR directive
// props go through the directive table, and everything else becomes a plain
// attribute.
func PatchProp(el *dom.Element, key string, value any) {
	switch {
	case key == "key" || strings.HasPrefix(key, "_"):
		// Internal bookkeeping props never reach the tree.

	case isEventKey(key):
		el.AddEventListener(strings.ToLower(key[2:]), value)

	case strings.HasPrefix(key, "cx-"):
		if d := lookupSSRDirective(key); d != nil {
			d(el, value)
			return
		}
		el.SetAttribute(key, propToString(value))

	case key == "className":
		el.SetAttribute("class", propToString(value))

	default:
		if b, ok := value.(bool); ok {
			if b {
				el.SetAttribute(key, "")
			} else {
				el.RemoveAttribute(key)
			}
			return
		}
		el.SetAttribute(key, propToString(value))
	}
}

// isEventKey returns true if the key is an event handler key.
// Case-insensitive on the prefix to catch onclick, onClick, OnLoad, etc.
func isEventKey(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// propToString converts a prop value to its attribute form.
func propToString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
