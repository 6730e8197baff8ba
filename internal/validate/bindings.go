// Package validate implements the second analysis pass: reference
// resolution against a scope.Tree plus the structural checks (rune
// usage, directive targets, binding targets, element nesting,
// accessibility) that a parsed Root must satisfy. Follows
// internal/transform's walk style, with per-concern rule tables grounded
// on the original analyzer's rune/binding/a11y constant tables.
package validate

// BindingProperty describes one bindable DOM property: the event that
// signals an external change, whether the template can write back to
// it, whether it is excluded from server-rendered output, and which
// elements it may be used on.
type BindingProperty struct {
	Event         string
	HasEvent      bool
	Bidirectional bool
	OmitInSSR     bool
	// ValidElements lists the element names the binding may target; a
	// nil/empty slice means any element accepts it.
	ValidElements []string
}

func bp(event string, hasEvent, bidirectional, omitInSSR bool, elements ...string) BindingProperty {
	return BindingProperty{
		Event:         event,
		HasEvent:      hasEvent,
		Bidirectional: bidirectional,
		OmitInSSR:     omitInSSR,
		ValidElements: elements,
	}
}

// bindingProperties is the full table of bind:name targets this
// compiler understands, keyed by binding name.
var bindingProperties = map[string]BindingProperty{
	// Media bindings (audio, video).
	"currentTime":  bp("timeupdate", true, true, true, "audio", "video"),
	"duration":     bp("durationchange", true, false, true, "audio", "video"),
	"focused":      bp("", false, false, true, "audio", "video"),
	"paused":       bp("", false, true, true, "audio", "video"),
	"volume":       bp("volumechange", true, true, true, "audio", "video"),
	"muted":        bp("volumechange", true, true, false, "audio", "video"),
	"playbackRate": bp("ratechange", true, true, true, "audio", "video"),
	"seeking":      bp("", false, false, true, "audio", "video"),
	"ended":        bp("", false, false, true, "audio", "video"),
	"readyState":   bp("", false, false, true, "audio", "video"),
	"buffered":     bp("", false, false, true, "audio", "video"),
	"seekable":     bp("", false, false, true, "audio", "video"),
	"played":       bp("", false, false, true, "audio", "video"),

	// Video-specific.
	"videoHeight": bp("resize", true, false, true, "video"),
	"videoWidth":  bp("resize", true, false, true, "video"),

	// Image.
	"naturalWidth":  bp("load", true, false, true, "img"),
	"naturalHeight": bp("load", true, false, true, "img"),

	// Form.
	"value":         bp("", false, true, false, "input", "textarea", "select"),
	"checked":       bp("", false, true, false, "input"),
	"indeterminate": bp("change", true, true, true, "input"),
	"group":         bp("", false, true, false, "input"),
	"files":         bp("change", true, false, true, "input"),

	// Details.
	"open": bp("toggle", true, true, false, "details"),

	// Dimensions, any element.
	"clientWidth":              bp("", false, false, true),
	"clientHeight":             bp("", false, false, true),
	"offsetWidth":              bp("", false, false, true),
	"offsetHeight":             bp("", false, false, true),
	"contentRect":              bp("", false, false, true),
	"contentBoxSize":           bp("", false, false, true),
	"borderBoxSize":            bp("", false, false, true),
	"devicePixelContentBoxSize": bp("", false, false, true),

	// Content-editable, any element.
	"innerText":   bp("", false, true, true),
	"innerHTML":   bp("", false, true, true),
	"textContent": bp("", false, true, true),

	// Window bindings (svelte:window-equivalent).
	"innerWidth":  bp("", false, false, true),
	"innerHeight": bp("", false, false, true),
	"outerWidth":  bp("", false, false, true),
	"outerHeight": bp("", false, false, true),
	"scrollX":     bp("", false, true, true),
	"scrollY":     bp("", false, true, true),
	"online":      bp("", false, false, true),
	"devicePixelRatio": bp("", false, false, true),

	// Document bindings (svelte:document-equivalent).
	"activeElement":      bp("", false, false, true),
	"fullscreenElement":  bp("", false, false, true),
	"pointerLockElement": bp("", false, false, true),
	"visibilityState":    bp("", false, false, true),
}

// GetBindingProperty looks up a bind:name target by name.
func GetBindingProperty(name string) (BindingProperty, bool) {
	p, ok := bindingProperties[name]
	return p, ok
}

// IsKnownBinding reports whether name is a recognized bind target.
func IsKnownBinding(name string) bool {
	_, ok := bindingProperties[name]
	return ok
}

// IsBindingValidForElement reports whether binding may be used on
// element. A binding with no ValidElements entries is valid anywhere.
func IsBindingValidForElement(binding, element string) bool {
	p, ok := bindingProperties[binding]
	if !ok {
		return false
	}
	if len(p.ValidElements) == 0 {
		return true
	}
	for _, e := range p.ValidElements {
		if e == element {
			return true
		}
	}
	return false
}
