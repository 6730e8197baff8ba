// Package serializer renders a parsed Root into the JSON interchange
// format: a plain tree of typed nodes editors and other tools can
// consume without linking this module. Grounded on
// internal/printer/print-to-json.go's ASTNode shape, re-expressed with
// github.com/go-json-experiment/json instead of hand-built string
// concatenation, since the new node model (blocks, directives, runes)
// has far more tagged variants than the teacher's HTML-only tree and a
// real encoder keeps key ordering and escaping consistent across them.
package serializer

import (
	"bytes"

	jsonv2 "github.com/go-json-experiment/json"

	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/loc"
)

// Position is the line/column/offset-resolved span of a node, included
// only when the caller asks for positions (they roughly double output
// size and are not needed by every consumer).
type Position struct {
	Start Point `json:"start"`
	End   Point `json:"end,omitempty"`
}

type Point struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// ASTNode is the interchange shape for one tree node. Fields are
// omitted when empty so the common case (a plain element with a few
// attributes) stays compact; the Extra map carries block/rune/directive
// fields that don't apply to every node kind, keyed by name, so the
// shape stays one struct instead of one per node kind.
type ASTNode struct {
	Type       string         `json:"type"`
	Name       string         `json:"name,omitempty"`
	Value      string         `json:"value,omitempty"`
	Kind       string         `json:"kind,omitempty"`
	Attributes []ASTNode      `json:"attributes,omitempty"`
	Directives []ASTNode      `json:"directives,omitempty"`
	Children   []ASTNode      `json:"children,omitempty"`
	Position   *Position      `json:"position,omitempty"`
	Extra      map[string]any `json:"extra,omitempty"`
}

// Options controls what Serialize includes in the rendered tree.
type Options struct {
	// Positions includes line/column/offset spans on every node.
	Positions bool
	Filename  string
}

// Serialize renders root's fragment (plus frontmatter scripts, if
// present) into the JSON interchange format. root.Options is not
// rendered.
func Serialize(root *tmpl.Root, opts Options) ([]byte, error) {
	var locator *loc.Locator
	if opts.Positions {
		locator = loc.NewLocator(opts.Filename, root.Source)
	}

	doc := ASTNode{Type: "document"}
	if root.Module != nil {
		doc.Children = append(doc.Children, renderFrontmatter(root.Module, "module", locator))
	}
	if root.Instance != nil {
		doc.Children = append(doc.Children, renderFrontmatter(root.Instance, "instance", locator))
	}
	if root.Fragment != nil {
		doc.Children = append(doc.Children, renderNode(root.Fragment, locator))
	}

	var buf bytes.Buffer
	if err := jsonv2.MarshalWrite(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderFrontmatter(n *tmpl.Node, kind string, locator *loc.Locator) ASTNode {
	node := ASTNode{Type: "frontmatter", Kind: kind, Value: n.RawText}
	node.Position = positionOf(n.Span, locator)
	return node
}

func positionOf(span loc.Span, locator *loc.Locator) *Position {
	if locator == nil {
		return nil
	}
	start := locator.Locate(loc.Range{Loc: loc.Loc{Start: span.Start}})
	end := locator.Locate(loc.Range{Loc: loc.Loc{Start: span.End}})
	return &Position{
		Start: Point{Line: start.Line, Column: start.Column, Offset: span.Start},
		End:   Point{Line: end.Line, Column: end.Column, Offset: span.End},
	}
}

func renderAttribute(a tmpl.Attribute, locator *loc.Locator) ASTNode {
	node := ASTNode{Type: "attribute", Name: a.Key, Position: positionOf(a.Span, locator)}
	switch a.Kind {
	case tmpl.SpreadAttributeEntry:
		node.Type = "spread-attribute"
		node.Value = a.Val
		return node
	case tmpl.AttachAttributeEntry:
		node.Type = "attach-attribute"
		node.Value = a.Val
		return node
	case tmpl.DirectiveEntry:
		node.Type = "directive"
		node.Kind = directiveKindName(a.Directive)
		node.Value = a.Val
		if len(a.Modifiers) > 0 || a.Intro || a.Outro {
			extra := map[string]any{}
			if len(a.Modifiers) > 0 {
				extra["modifiers"] = a.Modifiers
			}
			if a.Intro {
				extra["intro"] = true
			}
			if a.Outro {
				extra["outro"] = true
			}
			node.Extra = extra
		}
		return node
	}

	switch a.Type {
	case tmpl.BooleanAttribute:
		node.Value = ""
	case tmpl.ExpressionAttribute:
		node.Value = a.Val
	case tmpl.SequenceAttribute:
		for _, chunk := range a.Sequence {
			node.Value += chunk.Text
		}
	}
	return node
}

func directiveKindName(k tmpl.DirectiveKind) string {
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
	}
	return ""
}

func elementKindName(k tmpl.ElementKind) string {
	switch k {
	case tmpl.ComponentKind:
		return "component"
	case tmpl.TitleElementKind:
		return "title"
	case tmpl.SlotElementKind:
		return "slot"
	case tmpl.SvelteHeadKind:
		return "svelte:head"
	case tmpl.SvelteOptionsKind:
		return "svelte:options"
	case tmpl.SvelteWindowKind:
		return "svelte:window"
	case tmpl.SvelteDocumentKind:
		return "svelte:document"
	case tmpl.SvelteBodyKind:
		return "svelte:body"
	case tmpl.SvelteElementKind:
		return "svelte:element"
	case tmpl.SvelteComponentKind:
		return "svelte:component"
	case tmpl.SvelteSelfKind:
		return "svelte:self"
	case tmpl.SvelteFragmentKind:
		return "svelte:fragment"
	case tmpl.SvelteBoundaryKind:
		return "svelte:boundary"
	}
	return "element"
}

// renderNode converts one Node (and its whole subtree) into an ASTNode.
// Block-construct side-slots (IfConsequent, EachBlock's Fallback, the
// Await phases, and so on) are rendered as ordinary children tagged with
// a role in Extra, rather than as separate struct fields per node kind,
// so a consumer walks one uniform Children array regardless of node
// kind.
func renderNode(n *tmpl.Node, locator *loc.Locator) ASTNode {
	node := ASTNode{Position: positionOf(n.Span, locator)}

	switch n.Type {
	case tmpl.FragmentNode:
		node.Type = "fragment"
	case tmpl.TextNode:
		node.Type = "text"
		node.Value = n.Data
	case tmpl.CommentNode:
		node.Type = "comment"
		node.Value = n.Data
	case tmpl.ElementNode:
		node.Name = n.Data
		node.Type = elementKindName(n.ElementKind)
		if n.ElementKind == tmpl.RegularElementKind {
			node.Type = "element"
		}
		for _, a := range n.Attr {
			rendered := renderAttribute(a, locator)
			if rendered.Type == "directive" {
				node.Directives = append(node.Directives, rendered)
			} else {
				node.Attributes = append(node.Attributes, rendered)
			}
		}
	case tmpl.ExpressionNode:
		node.Type = "expression"
		if n.Expr != nil {
			node.Value = n.Expr.Raw
		}
	case tmpl.IfBlockNode:
		node.Type = "if-block"
		if n.Expr != nil {
			node.Value = n.Expr.Raw
		}
		if n.IfConsequent != nil {
			node.Children = append(node.Children, taggedChild(n.IfConsequent, "consequent", locator))
		}
		if n.IfAlternate != nil {
			role := "alternate"
			if n.IsElseIf {
				role = "else-if"
			}
			node.Children = append(node.Children, taggedChild(n.IfAlternate, role, locator))
		}
		return node
	case tmpl.EachBlockNode:
		node.Type = "each-block"
		node.Extra = map[string]any{"keyed": n.EachKeyed}
		if n.EachCollection != nil {
			node.Value = n.EachCollection.Raw
		}
		if n.EachContext != nil {
			node.Extra["context"] = n.EachContext.Raw
		}
		if n.EachIndex != "" {
			node.Extra["index"] = n.EachIndex
		}
		if n.EachKey != nil {
			node.Extra["key"] = n.EachKey.Raw
		}
		renderChildrenInto(&node, n, locator)
		if n.Fallback != nil {
			node.Children = append(node.Children, taggedChild(n.Fallback, "fallback", locator))
		}
		return node
	case tmpl.AwaitBlockNode:
		node.Type = "await-block"
		if n.Expr != nil {
			node.Value = n.Expr.Raw
		}
		if n.AwaitValue != nil {
			node.Extra = mapPut(node.Extra, "value", n.AwaitValue.Raw)
		}
		if n.AwaitError != nil {
			node.Extra = mapPut(node.Extra, "error", n.AwaitError.Raw)
		}
		if n.AwaitPending != nil {
			node.Children = append(node.Children, taggedChild(n.AwaitPending, "pending", locator))
		}
		if n.AwaitThen != nil {
			node.Children = append(node.Children, taggedChild(n.AwaitThen, "then", locator))
		}
		if n.AwaitCatch != nil {
			node.Children = append(node.Children, taggedChild(n.AwaitCatch, "catch", locator))
		}
		return node
	case tmpl.KeyBlockNode:
		node.Type = "key-block"
		if n.Expr != nil {
			node.Value = n.Expr.Raw
		}
	case tmpl.SnippetBlockNode:
		node.Type = "snippet-block"
		node.Name = n.SnippetName
		if n.SnippetParams != nil {
			node.Value = n.SnippetParams.Raw
		}
	case tmpl.HtmlTagNode:
		node.Type = "html-tag"
		if n.Expr != nil {
			node.Value = n.Expr.Raw
		}
	case tmpl.ConstTagNode:
		node.Type = "const-tag"
		if n.Expr != nil {
			node.Value = n.Expr.Raw
		}
	case tmpl.DebugTagNode:
		node.Type = "debug-tag"
		if n.Expr != nil {
			node.Value = n.Expr.Raw
		}
	case tmpl.RenderTagNode:
		node.Type = "render-tag"
		if n.Expr != nil {
			node.Value = n.Expr.Raw
		}
	case tmpl.AttachTagNode:
		node.Type = "attach-tag"
		if n.Expr != nil {
			node.Value = n.Expr.Raw
		}
	default:
		node.Type = n.Type.String()
	}

	renderChildrenInto(&node, n, locator)
	return node
}

func renderChildrenInto(node *ASTNode, n *tmpl.Node, locator *loc.Locator) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		node.Children = append(node.Children, renderNode(c, locator))
	}
}

func taggedChild(n *tmpl.Node, role string, locator *loc.Locator) ASTNode {
	child := renderNode(n, locator)
	child.Extra = mapPut(child.Extra, "role", role)
	return child
}

func mapPut(m map[string]any, key string, value any) map[string]any {
	if m == nil {
		m = map[string]any{}
	}
	m[key] = value
	return m
}
