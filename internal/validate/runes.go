package validate

import (
	"strings"

	"github.com/tmpllang/compiler/internal/hostbridge"
	"github.com/tmpllang/compiler/internal/loc"
)

// rune identifies one of the closed set of `$`-prefixed compiler
// intrinsics. Mirrors the original analyzer's Rune enum, generalized
// from a match over a resolved keypath string to the same over a
// ShiftedNode call_expression's sliced source text.
type rune_ string

const (
	runeState           rune_ = "$state"
	runeStateRaw        rune_ = "$state.raw"
	runeStateSnapshot   rune_ = "$state.snapshot"
	runeDerived         rune_ = "$derived"
	runeDerivedBy       rune_ = "$derived.by"
	runeProps           rune_ = "$props"
	runePropsID         rune_ = "$props.id"
	runeBindable        rune_ = "$bindable"
	runeEffect          rune_ = "$effect"
	runeEffectPre       rune_ = "$effect.pre"
	runeEffectRoot      rune_ = "$effect.root"
	runeEffectTracking  rune_ = "$effect.tracking"
	runeEffectPending   rune_ = "$effect.pending"
	runeInspect         rune_ = "$inspect"
	runeInspectTrace    rune_ = "$inspect.trace"
	runeInspectWith     rune_ = "$inspect().with"
	runeHost            rune_ = "$host"
)

var knownRuneNames = map[rune_]bool{
	runeState: true, runeStateRaw: true, runeStateSnapshot: true,
	runeDerived: true, runeDerivedBy: true,
	runeProps: true, runePropsID: true, runeBindable: true,
	runeEffect: true, runeEffectPre: true, runeEffectRoot: true,
	runeEffectTracking: true, runeEffectPending: true,
	runeInspect: true, runeInspectTrace: true, runeInspectWith: true,
	runeHost: true,
}

// removedRuneNames are Svelte-4-era globals with no rune equivalent,
// worth a dedicated diagnostic rather than an opaque "unknown global".
var removedRuneNames = map[string]string{
	"$$props":    "$props",
	"$$restProps": "$props",
	"$$slots":    "render tags/snippets",
}

// isRuneCall reports whether call (a ShiftedNode of kind
// "call_expression") invokes a rune, and which one, by reading the
// callee's keypath straight from source text the way the original's
// get_global_keypath walks member/call chains before resolving.
func isRuneCall(call *hostbridge.ShiftedNode, source string) (rune_, bool) {
	if call == nil || call.Kind != "call_expression" || len(call.Children) == 0 {
		return "", false
	}
	callee := call.Children[0]
	keypath := calleeKeypath(callee, source)
	if keypath == "" {
		return "", false
	}
	r := rune_(keypath)
	if knownRuneNames[r] {
		return r, true
	}
	return "", false
}

// calleeKeypath renders a callee expression as a dotted path
// ("$state", "$derived.by", "$inspect().with") purely from its kind and
// source slice, without needing named tree-sitter fields.
func calleeKeypath(n *hostbridge.ShiftedNode, source string) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case "identifier":
		return sliceSource(source, n)
	case "member_expression":
		if len(n.Children) < 2 {
			return sliceSource(source, n)
		}
		base := calleeKeypath(n.Children[0], source)
		prop := sliceSource(source, n.Children[len(n.Children)-1])
		if base == "" {
			return ""
		}
		return base + "." + prop
	case "call_expression":
		if len(n.Children) == 0 {
			return ""
		}
		base := calleeKeypath(n.Children[0], source)
		if base == "" {
			return ""
		}
		return base + "()"
	default:
		return ""
	}
}

func sliceSource(source string, n *hostbridge.ShiftedNode) string {
	if n == nil || n.Span.Start < 0 || n.Span.End > len(source) || n.Span.Start > n.Span.End {
		return ""
	}
	return source[n.Span.Start:n.Span.End]
}

// callArguments returns a call_expression's argument-list node's
// children (everything after the callee).
func callArguments(call *hostbridge.ShiftedNode) []*hostbridge.ShiftedNode {
	if call == nil || len(call.Children) < 2 {
		return nil
	}
	args := call.Children[1]
	if args == nil {
		return nil
	}
	return args.Children
}

func hasSpreadArgument(args []*hostbridge.ShiftedNode) bool {
	for _, a := range args {
		if a != nil && a.Kind == "spread_element" {
			return true
		}
	}
	return false
}

func spanErr(n *hostbridge.ShiftedNode, code loc.DiagnosticCode, text string) error {
	return &loc.ErrorWithRange{
		Code: code,
		Text: text,
		Range: loc.Range{
			Loc: loc.Loc{Start: n.Span.Start},
			Len: n.Span.End - n.Span.Start,
		},
	}
}

// astContext is which script body a rune call was found in, needed for
// the rune calls that are only legal at the instance script's top
// level ($props, $props.id, $host).
type astContext int

const (
	instanceContext astContext = iota
	moduleContext
	markupContext
)

// RuneSink receives the errors a rune-call validation pass produces.
type RuneSink interface {
	AppendError(err error)
	AppendWarning(err error)
}

// runeCheckState tracks the module-wide invariants (at most one $props
// call, whether this component targets a custom element) that a single
// call's validation needs but can't derive locally.
type runeCheckState struct {
	hasPropsRune   bool
	isCustomElement bool
}

// validateRuneCall applies the original analyzer's call_expression
// rune-validation switch to one call_expression node, appending any
// diagnostics to sink. context identifies which script the call was
// found in; st carries the handful of component-wide flags the checks
// for $props/$host need.
func validateRuneCall(call *hostbridge.ShiftedNode, source string, context astContext, st *runeCheckState, sink RuneSink) {
	r, ok := isRuneCall(call, source)
	if !ok {
		return
	}
	args := callArguments(call)

	if r != runeInspect && r != runeInspectTrace && r != runeInspectWith && hasSpreadArgument(args) {
		sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_SPREAD,
			"rune '"+string(r)+"' cannot be called with a spread argument"))
	}

	switch r {
	case runeProps:
		if st.hasPropsRune {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_DUPLICATE, "'$props' can only be called once"))
		}
		st.hasPropsRune = true
		if context != instanceContext {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_PLACEMENT, "'$props' can only be used at the top level of the instance script"))
		}
		if len(args) != 0 {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_ARGS, "'$props' does not take any arguments"))
		}

	case runePropsID:
		if context != instanceContext {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_PLACEMENT, "'$props.id' can only be used at the top level of the instance script"))
		}
		if len(args) != 0 {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_ARGS, "'$props.id' does not take any arguments"))
		}

	case runeState, runeStateRaw:
		if len(args) > 1 {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_ARGS, "'"+string(r)+"' expects zero or one arguments"))
		}

	case runeDerived:
		if len(args) != 1 {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_ARGS, "'$derived' expects exactly one argument"))
		}

	case runeDerivedBy:
		if len(args) != 1 {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_ARGS, "'$derived.by' expects exactly one argument"))
		}

	case runeEffect, runeEffectPre:
		if len(args) != 1 {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_ARGS, "'"+string(r)+"' expects exactly one argument"))
		}

	case runeEffectTracking:
		if len(args) != 0 {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_ARGS, "'$effect.tracking' does not take any arguments"))
		}

	case runeEffectRoot:
		if len(args) != 1 {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_ARGS, "'$effect.root' expects exactly one argument"))
		}

	case runeBindable:
		if len(args) > 1 {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_ARGS, "'$bindable' expects zero or one arguments"))
		}

	case runeHost:
		if len(args) != 0 {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_ARGS, "'$host' does not take any arguments"))
		}
		if context == moduleContext || !st.isCustomElement {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_PLACEMENT, "'$host' can only be used inside a custom element's instance script"))
		}

	case runeInspect:
		if len(args) == 0 {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_ARGS, "'$inspect' expects one or more arguments"))
		}

	case runeInspectWith:
		if len(args) != 1 {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_ARGS, "'$inspect(...).with' expects exactly one argument"))
		}

	case runeInspectTrace:
		if len(args) > 1 {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_ARGS, "'$inspect.trace' expects zero or one arguments"))
		}

	case runeStateSnapshot:
		if len(args) != 1 {
			sink.AppendError(spanErr(call, loc.ERROR_RUNE_INVALID_ARGS, "'$state.snapshot' expects exactly one argument"))
		}
	}
}

// validateRemovedGlobal reports use of a Svelte-4-era global ($$props,
// $$restProps, $$slots) that has no rune equivalent in this dialect.
func validateRemovedGlobal(id *hostbridge.ShiftedNode, source string, sink RuneSink) {
	name := sliceSource(source, id)
	if replacement, ok := removedRuneNames[name]; ok {
		sink.AppendError(spanErr(id, loc.ERROR_RUNE_REMOVED, "'"+name+"' has been removed; use "+replacement+" instead"))
	}
}

// isReservedRuneIdentifier reports whether declaring a binding named
// name would violate the "$"-prefix reservation: an exact "$" name, or
// any "$"-prefixed name that is not itself a known rune name.
func isReservedRuneIdentifier(name string) bool {
	if name == "$" {
		return true
	}
	return strings.HasPrefix(name, "$") && !knownRuneNames[rune_(name)]
}
