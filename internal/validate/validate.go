package validate

import (
	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/hostbridge"
	"github.com/tmpllang/compiler/internal/scope"
)

// Root runs the full second-pass analysis over a parsed Root: it builds
// the scope forest, resolves every reference against it (falling back to
// scope.KnownGlobals), validates every rune call in both scripts and the
// markup, and runs the directive/nesting/accessibility checks over the
// fragment. It returns the scope.Tree so a caller (e.g. a later codegen
// pass) can reuse the resolved bindings without rebuilding them.
func Root(root *tmpl.Root, sink RuneSink) *scope.Tree {
	tree := scope.Build(root)
	resolveReferences(tree)

	st := &runeCheckState{isCustomElement: root.Options != nil && root.Options.CustomElement != nil}

	if root.Module != nil {
		validateScriptRunes(root.Module, root.Source, moduleContext, st, sink)
	}
	if root.Instance != nil {
		validateScriptRunes(root.Instance, root.Source, instanceContext, st, sink)
	}
	if root.Fragment != nil {
		walkMarkupRunes(root.Fragment, root.Source, st, sink)
		walkDirectives(root.Fragment, false, sink)
		ValidateNesting(root.Fragment, sink)
		ValidateA11y(root.Fragment, sink)
	}

	return tree
}

// resolveReferences walks every recorded Reference, looking it up against
// its enclosing scope and falling back to scope.KnownGlobals; unresolved
// but non-global references are left with Binding == nil, which is not
// itself an error here — a later diagnostic pass (or a stricter analyzer
// mode) can decide whether to flag them, since many such names are
// ambient host-environment globals never itemized in KnownGlobals.
func resolveReferences(tree *scope.Tree) {
	for _, ref := range tree.References {
		if b, ok := tree.Lookup(ref.Scope, ref.Name); ok {
			ref.Binding = b
			b.ReferencedCount++
			continue
		}
		if scope.KnownGlobals[ref.Name] {
			ref.IsGlobal = true
		}
	}
}

// validateScriptRunes walks one frontmatter script's program tree,
// validating every call_expression that invokes a rune and flagging any
// removed Svelte-4-era global identifier.
func validateScriptRunes(script *tmpl.Node, source string, context astContext, st *runeCheckState, sink RuneSink) {
	if script == nil || script.Expr == nil {
		return
	}
	prog, ok := script.Expr.Tree.(*hostbridge.ShiftedNode)
	if !ok {
		return
	}
	for _, stmt := range prog.Children {
		walkRuneCalls(stmt, source, context, st, sink)
	}
}

// walkMarkupRunes visits every expression-bearing node in the fragment
// (expression tags, attribute expressions, block tests) and validates any
// rune call it contains against markupContext — runes like $props are
// invalid there, which validateRuneCall itself reports.
func walkMarkupRunes(n *tmpl.Node, source string, st *runeCheckState, sink RuneSink) {
	if n == nil {
		return
	}
	if n.Expr != nil {
		if tree, ok := n.Expr.Tree.(*hostbridge.ShiftedNode); ok {
			walkRuneCalls(tree, source, markupContext, st, sink)
		}
	}
	for _, a := range n.Attr {
		if a.Expr != nil {
			if tree, ok := a.Expr.Tree.(*hostbridge.ShiftedNode); ok {
				walkRuneCalls(tree, source, markupContext, st, sink)
			}
		}
		for _, chunk := range a.Sequence {
			if chunk.IsExpression && chunk.Expr != nil {
				if tree, ok := chunk.Expr.Tree.(*hostbridge.ShiftedNode); ok {
					walkRuneCalls(tree, source, markupContext, st, sink)
				}
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkMarkupRunes(c, source, st, sink)
	}
	if n.IfConsequent != nil {
		walkMarkupRunes(n.IfConsequent, source, st, sink)
	}
	if n.IfAlternate != nil {
		walkMarkupRunes(n.IfAlternate, source, st, sink)
	}
	if n.Fallback != nil {
		walkMarkupRunes(n.Fallback, source, st, sink)
	}
	if n.AwaitPending != nil {
		walkMarkupRunes(n.AwaitPending, source, st, sink)
	}
	if n.AwaitThen != nil {
		walkMarkupRunes(n.AwaitThen, source, st, sink)
	}
	if n.AwaitCatch != nil {
		walkMarkupRunes(n.AwaitCatch, source, st, sink)
	}
}

// walkRuneCalls recurses a host-bridge subtree, validating every nested
// call_expression and flagging every removed-global identifier it finds.
func walkRuneCalls(n *hostbridge.ShiftedNode, source string, context astContext, st *runeCheckState, sink RuneSink) {
	if n == nil {
		return
	}
	switch n.Kind {
	case "call_expression":
		validateRuneCall(n, source, context, st, sink)
	case "identifier":
		validateRemovedGlobal(n, source, sink)
	}
	for _, c := range n.Children {
		walkRuneCalls(c, source, context, st, sink)
	}
}

// walkDirectives recurses the fragment tree running validateDirectives on
// every element, tracking whether the current node is a direct child of
// a keyed each-block (the one place animate: is legal).
func walkDirectives(n *tmpl.Node, insideKeyedEach bool, sink RuneSink) {
	if n == nil {
		return
	}
	if n.Type == tmpl.ElementNode {
		validateDirectives(n, n.Data, insideKeyedEach, sink)
	}

	childInsideKeyedEach := n.Type == tmpl.EachBlockNode && n.EachKeyed
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkDirectives(c, childInsideKeyedEach, sink)
	}
	if n.IfConsequent != nil {
		walkDirectives(n.IfConsequent, false, sink)
	}
	if n.IfAlternate != nil {
		walkDirectives(n.IfAlternate, false, sink)
	}
	if n.Fallback != nil {
		walkDirectives(n.Fallback, false, sink)
	}
	if n.AwaitPending != nil {
		walkDirectives(n.AwaitPending, false, sink)
	}
	if n.AwaitThen != nil {
		walkDirectives(n.AwaitThen, false, sink)
	}
	if n.AwaitCatch != nil {
		walkDirectives(n.AwaitCatch, false, sink)
	}
}
