package scope

import (
	"regexp"
	"strings"

	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/hostbridge"
	"github.com/tmpllang/compiler/internal/loc"
)

// Build runs pass 1 (the scope-building walk) over a parsed Root: it
// creates the scope forest, declares every binding introduced by a
// script statement or a block construct (each/await/snippet), and
// records every identifier reference for the validator (pass 2) to
// resolve. Mirrors the single recursive `walk` helper in
// internal/transform/transform.go, generalized from "visit every node
// once" to "visit every node, entering/leaving a scope as block
// constructs are entered/left".
func Build(root *tmpl.Root) *Tree {
	t := NewTree()
	rootScope := t.Root()

	if root.Module != nil {
		buildScript(t, rootScope, root.Module, root.Source)
	}
	if root.Instance != nil {
		buildScript(t, rootScope, root.Instance, root.Source)
	}
	if root.Fragment != nil {
		buildTree(t, rootScope, root.Fragment, root.Source)
	}

	return t
}

func buildScript(t *Tree, s ScopeId, script *tmpl.Node, source string) {
	if script.Expr == nil || script.Expr.Tree == nil {
		return
	}
	prog, ok := script.Expr.Tree.(*hostbridge.ShiftedNode)
	if !ok {
		return
	}
	for _, stmt := range prog.Children {
		declareFromStatement(t, s, stmt, source)
		collectReferences(t, s, stmt, source, false)
	}
}

var runeCallRE = regexp.MustCompile(`\$(state|derived|props|bindable|effect|inspect|host)\b`)

// declareFromStatement recognizes the statement shapes that introduce a
// top-level binding: lexical/var declarations, function declarations,
// and import statements. Rune classification is done by matching the
// declarator's source slice against the closed rune-name set rather than
// walking named tree-sitter fields, since the bridge's ShiftedNode only
// round-trips kind + span, not per-language field names.
func declareFromStatement(t *Tree, s ScopeId, stmt *hostbridge.ShiftedNode, source string) {
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case "lexical_declaration", "variable_declaration":
		for _, child := range stmt.Children {
			if child.Kind != "variable_declarator" || len(child.Children) == 0 {
				continue
			}
			nameNode := child.Children[0]
			name := sliceSource(source, nameNode)
			kind := LetDeclaration
			text := sliceSource(source, child)
			if runeCallRE.MatchString(text) {
				switch {
				case strings.Contains(text, "$state"):
					kind = RuneStateDeclaration
				case strings.Contains(text, "$derived"):
					kind = RuneDerivedDeclaration
				case strings.Contains(text, "$props"):
					kind = RunePropsDeclaration
				case strings.Contains(text, "$bindable"):
					kind = RuneBindableDeclaration
				}
			}
			if nameNode.Kind == "identifier" {
				t.Declare(s, name, kind, toLocSpan(nameNode))
				continue
			}
			// destructuring pattern: declare each identifier leaf.
			declarePatternIdentifiers(t, s, nameNode, source, kind)
		}
	case "function_declaration":
		if len(stmt.Children) > 0 && stmt.Children[0].Kind == "identifier" {
			name := sliceSource(source, stmt.Children[0])
			t.Declare(s, name, FunctionDeclaration, toLocSpan(stmt.Children[0]))
		}
	case "import_statement":
		var declareImport func(n *hostbridge.ShiftedNode)
		declareImport = func(n *hostbridge.ShiftedNode) {
			switch n.Kind {
			case "identifier":
				t.Declare(s, sliceSource(source, n), ImportDeclaration, toLocSpan(n))
			case "import_specifier": // `a as b` binds its last identifier
				declareImport(n.Children[len(n.Children)-1])
			case "import_clause", "named_imports", "namespace_import":
				for _, c := range n.Children {
					declareImport(c)
				}
			}
		}
		for _, child := range stmt.Children {
			declareImport(child)
		}
	}
}

// declarePatternIdentifiers walks an object/array destructuring pattern
// node recursively, declaring every leaf identifier it finds.
func declarePatternIdentifiers(t *Tree, s ScopeId, n *hostbridge.ShiftedNode, source string, kind DeclarationKind) {
	if n == nil {
		return
	}
	if n.Kind == "identifier" || n.Kind == "shorthand_property_identifier_pattern" {
		t.Declare(s, sliceSource(source, n), kind, toLocSpan(n))
		return
	}
	for _, c := range n.Children {
		declarePatternIdentifiers(t, s, c, source, kind)
	}
}

// collectReferences walks a subtree recording every bare identifier as a
// Reference at the given scope. declSite is true when n is a declarator's
// name or a function's own name, so that a declared identifier is not
// also recorded as a reference to itself.
func collectReferences(t *Tree, s ScopeId, n *hostbridge.ShiftedNode, source string, declSite bool) {
	if n == nil {
		return
	}
	if n.Kind == "identifier" {
		if !declSite {
			t.AddReference(s, sliceSource(source, n), toLocSpan(n))
		}
		return
	}
	if n.Kind == "variable_declarator" {
		for i, c := range n.Children {
			// child 0 is the declared name/pattern, already handled by
			// declareFromStatement; child 1+ (the initializer) is a normal
			// reference-bearing expression.
			collectReferences(t, s, c, source, i == 0)
		}
		return
	}
	if n.Kind == "function_declaration" {
		for i, c := range n.Children {
			// child 0 is the function's own name, already declared.
			collectReferences(t, s, c, source, i == 0)
		}
		return
	}
	if n.Kind == "import_statement" {
		// import specifiers are declarations, not references; already
		// handled by declareFromStatement.
		return
	}
	for _, c := range n.Children {
		collectReferences(t, s, c, source, false)
	}
}

func sliceSource(source string, n *hostbridge.ShiftedNode) string {
	if n == nil || n.Span.Start < 0 || n.Span.End > len(source) || n.Span.Start > n.Span.End {
		return ""
	}
	return source[n.Span.Start:n.Span.End]
}

func toLocSpan(n *hostbridge.ShiftedNode) loc.Span {
	return loc.Span{Start: n.Span.Start, End: n.Span.End}
}

// buildTree walks the template fragment, opening a child scope at each
// block construct that introduces bindings (each/await/snippet) and
// recording references inside every expression-bearing node.
func buildTree(t *Tree, s ScopeId, n *tmpl.Node, source string) {
	if n == nil {
		return
	}

	childScope := s

	switch n.Type {
	case tmpl.EachBlockNode:
		childScope = t.Child(s, n)
		if n.EachContext != nil {
			recordExprBinding(t, childScope, n.EachContext, source, EachContextDeclaration)
		}
		if n.EachIndex != "" {
			t.Declare(childScope, n.EachIndex, EachContextDeclaration, n.Span)
		}
		if n.EachCollection != nil {
			recordExprReferences(t, s, n.EachCollection, source)
		}
		if n.EachKey != nil {
			recordExprReferences(t, childScope, n.EachKey, source)
		}

	case tmpl.AwaitBlockNode:
		childScope = t.Child(s, n)
		if n.AwaitValue != nil {
			recordExprBinding(t, childScope, n.AwaitValue, source, AwaitValueDeclaration)
		}
		if n.AwaitError != nil {
			recordExprBinding(t, childScope, n.AwaitError, source, AwaitErrorDeclaration)
		}
		if n.Expr != nil {
			recordExprReferences(t, s, n.Expr, source)
		}

	case tmpl.SnippetBlockNode:
		childScope = t.Child(s, n)
		if n.SnippetParams != nil {
			recordExprBinding(t, childScope, n.SnippetParams, source, SnippetParamDeclaration)
		}
		t.Declare(s, n.SnippetName, SnippetDeclaration, n.Span)

	default:
		if n.Expr != nil {
			recordExprReferences(t, s, n.Expr, source)
		}
	}

	for _, attr := range n.Attr {
		recordAttrReferences(t, s, attr, source)
	}

	if n.AwaitPending != nil {
		buildTree(t, childScope, n.AwaitPending, source)
	}
	if n.AwaitThen != nil {
		buildTree(t, childScope, n.AwaitThen, source)
	}
	if n.AwaitCatch != nil {
		buildTree(t, childScope, n.AwaitCatch, source)
	}
	if n.IfConsequent != nil {
		buildTree(t, s, n.IfConsequent, source)
	}
	if n.IfAlternate != nil {
		buildTree(t, s, n.IfAlternate, source)
	}
	if n.Fallback != nil {
		buildTree(t, s, n.Fallback, source)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		buildTree(t, childScope, c, source)
	}
}

func recordExprReferences(t *Tree, s ScopeId, e *tmpl.ExprNode, source string) {
	if e == nil {
		return
	}
	if tree, ok := e.Tree.(*hostbridge.ShiftedNode); ok {
		collectReferences(t, s, tree, source, false)
	}
}

func recordExprBinding(t *Tree, s ScopeId, e *tmpl.ExprNode, source string, kind DeclarationKind) {
	if e == nil {
		return
	}
	tree, ok := e.Tree.(*hostbridge.ShiftedNode)
	if !ok {
		return
	}
	declarePatternIdentifiers(t, s, tree, source, kind)
}

func recordAttrReferences(t *Tree, s ScopeId, a tmpl.Attribute, source string) {
	if a.Expr != nil {
		recordExprReferences(t, s, a.Expr, source)
	}
	for _, chunk := range a.Sequence {
		if chunk.IsExpression && chunk.Expr != nil {
			recordExprReferences(t, s, chunk.Expr, source)
		}
	}
}
