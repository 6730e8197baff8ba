package validate

import (
	"strconv"
	"strings"

	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/loc"
)

func elErr(el *tmpl.Node, code loc.DiagnosticCode, text string) error {
	return &loc.ErrorWithRange{
		Code: code,
		Text: text,
		Range: loc.Range{
			Loc: loc.Loc{Start: el.Span.Start},
			Len: el.Span.End - el.Span.Start,
		},
	}
}

func attrValue(el *tmpl.Node, name string) (string, bool) {
	a, ok := el.Attribute(name)
	if !ok {
		return "", false
	}
	if a.Type == tmpl.BooleanAttribute {
		return "", true
	}
	if a.Type == tmpl.ExpressionAttribute {
		return "", false // dynamic; can't check statically
	}
	return a.Val, true
}

func hasAttribute(el *tmpl.Node, name string) bool {
	_, ok := el.Attribute(name)
	return ok
}

func roleOf(el *tmpl.Node) (string, bool) {
	v, ok := attrValue(el, "role")
	if !ok {
		return "", false
	}
	// a role attribute can list multiple space-separated fallback roles;
	// only the first is used for semantics.
	parts := strings.Fields(v)
	if len(parts) == 0 {
		return "", false
	}
	return parts[0], true
}

// validateA11yElement runs every accessibility check this compiler knows
// against one regular element, appending warnings to sink. Grounded on
// the original analyzer's per-rule a11y visitors, generalized into one
// pass over the constant tables in a11y_constants.go.
func validateA11yElement(el *tmpl.Node, sink RuneSink) {
	if el.Type != tmpl.ElementNode || el.ElementKind != tmpl.RegularElementKind {
		return
	}
	tag := el.Data

	checkDistractingElement(el, tag, sink)
	checkAccesskey(el, sink)
	checkAutofocus(el, sink)
	checkMisplacedScope(el, tag, sink)
	checkPositiveTabindex(el, sink)
	checkUnknownAriaAttributes(el, sink)
	checkHiddenOnHeading(el, tag, sink)
	checkActivedescendant(el, sink)
	checkRole(el, tag, sink)
	checkRequiredAttributes(el, tag, sink)
	checkRedundantAlt(el, tag, sink)
	checkMouseWithoutKeyboard(el, sink)
}

func checkDistractingElement(el *tmpl.Node, tag string, sink RuneSink) {
	if a11yDistractingElements[tag] {
		sink.AppendWarning(elErr(el, loc.WARNING_A11Y_DISTRACTING_ELEMENT, "avoid <"+tag+">, it visually distracts users"))
	}
}

func checkAccesskey(el *tmpl.Node, sink RuneSink) {
	if hasAttribute(el, "accesskey") {
		sink.AppendWarning(elErr(el, loc.WARNING_A11Y_ACCESSKEY, "avoid the accesskey attribute, it conflicts with keyboard commands used by screen readers and browsers"))
	}
}

func checkAutofocus(el *tmpl.Node, sink RuneSink) {
	if hasAttribute(el, "autofocus") {
		sink.AppendWarning(elErr(el, loc.WARNING_A11Y_AUTOFOCUS, "avoid autofocus, it can disorient visually-impaired users"))
	}
}

func checkMisplacedScope(el *tmpl.Node, tag string, sink RuneSink) {
	if tag != "th" && hasAttribute(el, "scope") {
		sink.AppendWarning(elErr(el, loc.WARNING_A11Y_MISPLACED_SCOPE, "the scope attribute should only be used on <th>"))
	}
}

func checkPositiveTabindex(el *tmpl.Node, sink RuneSink) {
	if v, ok := attrValue(el, "tabindex"); ok && v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			sink.AppendWarning(elErr(el, loc.WARNING_A11Y_POSITIVE_TABINDEX, "avoid positive tabindex values, they break the natural tab order"))
		}
	}
}

func checkUnknownAriaAttributes(el *tmpl.Node, sink RuneSink) {
	for _, a := range el.Attr {
		if a.Kind != tmpl.PlainAttribute || !strings.HasPrefix(a.Key, "aria-") {
			continue
		}
		suffix := strings.TrimPrefix(a.Key, "aria-")
		if !ariaAttributes[suffix] {
			suggestion := closestMatch(suffix, ariaAttributes)
			text := "unknown ARIA attribute 'aria-" + suffix + "'"
			if suggestion != "" {
				text += " (did you mean 'aria-" + suggestion + "'?)"
			}
			sink.AppendWarning(elErr(el, loc.WARNING_A11Y_UNKNOWN_ARIA_ATTRIBUTE, text))
		}
	}
}

func checkHiddenOnHeading(el *tmpl.Node, tag string, sink RuneSink) {
	if !a11yRequiredContent[tag] {
		return
	}
	if v, ok := attrValue(el, "aria-hidden"); ok && v != "false" {
		sink.AppendWarning(elErr(el, loc.WARNING_A11Y_HIDDEN_ON_HEADING, "<"+tag+"> should not be hidden from the accessibility tree"))
	}
}

func checkActivedescendant(el *tmpl.Node, sink RuneSink) {
	if hasAttribute(el, "aria-activedescendant") && !hasTabindexOrIsInteractive(el) {
		sink.AppendWarning(elErr(el, loc.WARNING_A11Y_ACTIVEDESCENDANT, "an element with aria-activedescendant must be tabbable (add a tabindex)"))
	}
}

func hasTabindexOrIsInteractive(el *tmpl.Node) bool {
	if hasAttribute(el, "tabindex") {
		return true
	}
	_, interactive := a11yImplicitSemantics[el.Data]
	return interactive
}

func checkRole(el *tmpl.Node, tag string, sink RuneSink) {
	role, ok := roleOf(el)
	if !ok {
		return
	}
	if !ariaRoles[role] {
		sink.AppendWarning(elErr(el, loc.WARNING_A11Y_UNKNOWN_ROLE, "unknown ARIA role '"+role+"'"))
		return
	}
	if abstractRoles[role] {
		sink.AppendWarning(elErr(el, loc.WARNING_A11Y_ABSTRACT_ROLE, "'"+role+"' is an abstract role and must not be used directly"))
	}
	if implicit, ok := a11yImplicitSemantics[tag]; ok && implicit == role {
		sink.AppendWarning(elErr(el, loc.WARNING_A11Y_REDUNDANT_ROLE, "redundant role '"+role+"', <"+tag+"> already implies it"))
	}
}

func checkRequiredAttributes(el *tmpl.Node, tag string, sink RuneSink) {
	required, ok := a11yRequiredAttributes[tag]
	if !ok {
		return
	}
	for _, name := range required {
		if hasAttribute(el, name) {
			return
		}
	}
	sink.AppendWarning(elErr(el, loc.WARNING_A11Y_MISSING_ATTRIBUTE, "<"+tag+"> is missing one of the required attributes: "+strings.Join(required, ", ")))
}

func checkRedundantAlt(el *tmpl.Node, tag string, sink RuneSink) {
	if tag != "img" {
		return
	}
	v, ok := attrValue(el, "alt")
	if !ok {
		return
	}
	lower := strings.ToLower(strings.TrimSpace(v))
	if strings.Contains(lower, "image of") || strings.Contains(lower, "picture of") || strings.Contains(lower, "photo of") {
		sink.AppendWarning(elErr(el, loc.WARNING_A11Y_REDUNDANT_ALT, "redundant alt text, screen readers already announce <img> as an image"))
	}
}

func checkMouseWithoutKeyboard(el *tmpl.Node, sink RuneSink) {
	hasMouse := false
	hasKeyboard := false
	for _, a := range el.Attr {
		if a.Kind != tmpl.DirectiveEntry || a.Directive != tmpl.OnDirective {
			continue
		}
		if a11yRecommendedInteractiveHandlers[a.Key] {
			switch a.Key {
			case "click", "mousedown", "mouseup":
				hasMouse = true
			case "keypress", "keydown", "keyup":
				hasKeyboard = true
			}
		}
	}
	if hasMouse && !hasKeyboard {
		sink.AppendWarning(elErr(el, loc.WARNING_A11Y_MOUSE_WITHOUT_KEYBOARD, "visible, mouse-only event handlers must be accompanied by a keyboard event handler"))
	}
}

// closestMatch returns the key in candidates within edit distance 2 of
// s, or "" if none qualifies — used for "did you mean" suggestions on
// unknown ARIA attributes.
func closestMatch(s string, candidates map[string]bool) string {
	best := ""
	bestDist := 3
	for c := range candidates {
		d := levenshtein(s, c)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

// walkA11y recurses the fragment tree running validateA11yElement on
// every element.
func walkA11y(n *tmpl.Node, sink RuneSink) {
	if n == nil {
		return
	}
	validateA11yElement(n, sink)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkA11y(c, sink)
	}
	if n.IfConsequent != nil {
		walkA11y(n.IfConsequent, sink)
	}
	if n.IfAlternate != nil {
		walkA11y(n.IfAlternate, sink)
	}
	if n.Fallback != nil {
		walkA11y(n.Fallback, sink)
	}
	if n.AwaitPending != nil {
		walkA11y(n.AwaitPending, sink)
	}
	if n.AwaitThen != nil {
		walkA11y(n.AwaitThen, sink)
	}
	if n.AwaitCatch != nil {
		walkA11y(n.AwaitCatch, sink)
	}
}

// ValidateA11y walks a parsed fragment tree reporting accessibility
// warnings.
func ValidateA11y(fragment *tmpl.Node, sink RuneSink) {
	walkA11y(fragment, sink)
}
