package validate

import (
	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/loc"
)

var validEventModifiers = map[string]bool{
	"capture": true, "nonpassive": true, "once": true, "passive": true,
	"preventDefault": true, "self": true, "stopImmediatePropagation": true,
	"stopPropagation": true, "trusted": true,
}

// conflictingEventModifierPairs lists modifier pairs that cannot both be
// present on the same on:directive (addEventListener's own listener
// options, where passive and nonpassive/preventDefault directly
// contradict each other).
var conflictingEventModifierPairs = [][2]string{
	{"passive", "nonpassive"},
	{"passive", "preventDefault"},
}

var validTransitionModifiers = map[string]bool{
	"local": true, "global": true,
}

func attrErr(a tmpl.Attribute, code loc.DiagnosticCode, text string) error {
	return &loc.ErrorWithRange{
		Code: code,
		Text: text,
		Range: loc.Range{
			Loc: loc.Loc{Start: a.Span.Start},
			Len: a.Span.End - a.Span.Start,
		},
	}
}

// validateEventModifiers checks an on:directive's modifier list against
// the known modifier set and the conflicting-pair rule.
func validateEventModifiers(a tmpl.Attribute, sink RuneSink) {
	seen := map[string]bool{}
	for _, m := range a.Modifiers {
		if !validEventModifiers[m] {
			sink.AppendError(attrErr(a, loc.ERROR_EVENT_MODIFIER_INVALID, "unknown event modifier '"+m+"'"))
			continue
		}
		if seen[m] {
			sink.AppendError(attrErr(a, loc.ERROR_EVENT_MODIFIER_CONFLICT, "duplicate event modifier '"+m+"'"))
		}
		seen[m] = true
	}
	for _, pair := range conflictingEventModifierPairs {
		if seen[pair[0]] && seen[pair[1]] {
			sink.AppendError(attrErr(a, loc.ERROR_EVENT_MODIFIER_CONFLICT,
				"modifiers '"+pair[0]+"' and '"+pair[1]+"' cannot be used together"))
		}
	}
}

// validateTransitionModifiers checks an in:/out:/transition: directive's
// modifier list against the known transition modifiers. The
// one-intro/one-outro rule is enforced by validateElementTransitions.
func validateTransitionModifiers(a tmpl.Attribute, sink RuneSink) {
	for _, m := range a.Modifiers {
		if !validTransitionModifiers[m] {
			sink.AppendError(attrErr(a, loc.ERROR_DIRECTIVE_INVALID_MOD, "unknown transition modifier '"+m+"'"))
		}
	}
}

// validateElementTransitions enforces at most one intro and one outro
// directive per element; transition: satisfies (and conflicts with)
// both in: and out:.
func validateElementTransitions(el *tmpl.Node, sink RuneSink) {
	var introSeen, outroSeen *tmpl.Attribute
	for i := range el.Attr {
		a := &el.Attr[i]
		if a.Kind != tmpl.DirectiveEntry {
			continue
		}
		if a.Directive != tmpl.TransitionDirective && a.Directive != tmpl.InDirective && a.Directive != tmpl.OutDirective {
			continue
		}
		validateTransitionModifiers(*a, sink)
		if a.Intro {
			if introSeen != nil {
				sink.AppendError(attrErr(*a, loc.ERROR_TRANSITION_DUPLICATE, "element can only have one intro transition"))
			}
			introSeen = a
		}
		if a.Outro {
			if outroSeen != nil {
				sink.AppendError(attrErr(*a, loc.ERROR_TRANSITION_DUPLICATE, "element can only have one outro transition"))
			}
			outroSeen = a
		}
	}
}

// validateElementAnimations enforces at most one animate: directive per
// element, and that it only appears inside a keyed each-block (the
// caller, which knows the ancestor chain, passes insideKeyedEach).
func validateElementAnimations(el *tmpl.Node, insideKeyedEach bool, sink RuneSink) {
	var seen *tmpl.Attribute
	for i := range el.Attr {
		a := &el.Attr[i]
		if a.Kind != tmpl.DirectiveEntry || a.Directive != tmpl.AnimateDirective {
			continue
		}
		if seen != nil {
			sink.AppendError(attrErr(*a, loc.ERROR_ANIMATE_DUPLICATE, "element can only have one animate directive"))
		}
		seen = a
		if !insideKeyedEach {
			sink.AppendError(attrErr(*a, loc.ERROR_ANIMATE_INVALID_PLACEMENT, "animate directive can only be used on a keyed each-block's direct child"))
		}
	}
}

// validateBindDirective checks a bind:name directive's target against
// the binding-property table: the name must be known and valid for the
// element it appears on.
func validateBindDirective(a tmpl.Attribute, elementTag string, sink RuneSink) {
	name := a.Key
	if name == "group" || name == "this" {
		// `bind:group`/`bind:this` are structural bindings validated by
		// nesting/scope rules elsewhere, not by the DOM-property table.
		return
	}
	prop, ok := GetBindingProperty(name)
	if !ok {
		sink.AppendError(attrErr(a, loc.ERROR_BINDING_INVALID_NAME, "'"+name+"' is not a recognized bindable property"))
		return
	}
	if len(prop.ValidElements) > 0 && !IsBindingValidForElement(name, elementTag) {
		sink.AppendError(attrErr(a, loc.ERROR_BINDING_INVALID_TARGET,
			"'bind:"+name+"' is not valid on <"+elementTag+">"))
	}
	if a.Expr == nil && a.Val == "" && len(a.Sequence) == 0 {
		sink.AppendError(attrErr(a, loc.ERROR_DIRECTIVE_INVALID_VALUE, "'bind:"+name+"' must bind to an expression"))
	}
}

// validateDirectives runs every directive check against one element's
// attribute list. elementTag is the element's tag name (lower-cased for
// regular elements); insideKeyedEach reflects whether el is a direct
// child of a keyed each-block (needed by the animate: check).
func validateDirectives(el *tmpl.Node, elementTag string, insideKeyedEach bool, sink RuneSink) {
	validateElementTransitions(el, sink)
	validateElementAnimations(el, insideKeyedEach, sink)

	for _, a := range el.Attr {
		if a.Kind != tmpl.DirectiveEntry {
			continue
		}
		switch a.Directive {
		case tmpl.OnDirective:
			validateEventModifiers(a, sink)
		case tmpl.BindDirective:
			validateBindDirective(a, elementTag, sink)
		case tmpl.StyleDirective:
			for _, m := range a.Modifiers {
				if m != "important" {
					sink.AppendError(attrErr(a, loc.ERROR_DIRECTIVE_INVALID_MOD, "unknown style modifier '"+m+"'"))
				}
			}
		case tmpl.ClassDirective, tmpl.UseDirective, tmpl.LetDirective:
			// no modifiers are defined for these directives.
			if len(a.Modifiers) > 0 {
				sink.AppendError(attrErr(a, loc.ERROR_DIRECTIVE_INVALID_MOD,
					"directive '"+directiveName(a.Directive)+"' does not accept modifiers"))
			}
		}
	}
}

func directiveName(k tmpl.DirectiveKind) string {
	switch k {
	case tmpl.BindDirective:
		return "bind"
	case tmpl.ClassDirective:
		return "class"
	case tmpl.StyleDirective:
		return "style"
	case tmpl.OnDirective:
		return "on"
	case tmpl.UseDirective:
		return "use"
	case tmpl.AnimateDirective:
		return "animate"
	case tmpl.TransitionDirective:
		return "transition"
	case tmpl.InDirective:
		return "in"
	case tmpl.OutDirective:
		return "out"
	case tmpl.LetDirective:
		return "let"
	default:
		return "unknown"
	}
}
