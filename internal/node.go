// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmpl

import (
	"github.com/tmpllang/compiler/internal/cssparser"
	"github.com/tmpllang/compiler/internal/loc"
	"golang.org/x/net/html/atom"
)

// NodeType discriminates the tagged variants a parsed node can take.
type NodeType uint32

const (
	ErrorNode NodeType = iota
	// DocumentNode is the synthetic root of the whole parse; it owns the
	// frontmatter scripts, the stylesheet and the single top-level fragment.
	DocumentNode
	// FragmentNode is a non-semantic grouping node: its children are the
	// ordered sequence of top-level content in a fragment.
	FragmentNode
	TextNode
	CommentNode
	// ElementNode covers every element-shaped node: regular elements,
	// components, special elements, and the `this`-dynamic forms. Which
	// kind it is is recorded in ElementKind.
	ElementNode
	// ExpressionNode is `{expr}`.
	ExpressionNode
	// Block node kinds.
	IfBlockNode
	EachBlockNode
	AwaitBlockNode
	KeyBlockNode
	SnippetBlockNode
	// Special `{@...}` tag kinds.
	HtmlTagNode
	ConstTagNode
	DebugTagNode
	RenderTagNode
	AttachTagNode
	// FrontmatterNode wraps an instance or module script body.
	FrontmatterNode
	// StyleNode wraps a <style> block's raw text prior to CSS parsing.
	StyleNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "Document"
	case FragmentNode:
		return "Fragment"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case ElementNode:
		return "Element"
	case ExpressionNode:
		return "Expression"
	case IfBlockNode:
		return "IfBlock"
	case EachBlockNode:
		return "EachBlock"
	case AwaitBlockNode:
		return "AwaitBlock"
	case KeyBlockNode:
		return "KeyBlock"
	case SnippetBlockNode:
		return "SnippetBlock"
	case HtmlTagNode:
		return "HtmlTag"
	case ConstTagNode:
		return "ConstTag"
	case DebugTagNode:
		return "DebugTag"
	case RenderTagNode:
		return "RenderTag"
	case AttachTagNode:
		return "AttachTag"
	case FrontmatterNode:
		return "Frontmatter"
	case StyleNode:
		return "Style"
	}
	return "Error"
}

// ElementKind distinguishes the closed set of element variants;
// only meaningful when Node.Type == ElementNode.
type ElementKind uint32

const (
	RegularElementKind ElementKind = iota
	ComponentKind
	TitleElementKind
	SlotElementKind
	SvelteHeadKind
	SvelteOptionsKind
	SvelteWindowKind
	SvelteDocumentKind
	SvelteBodyKind
	SvelteElementKind   // dynamic tag via `this`
	SvelteComponentKind // dynamic component via `this`
	SvelteSelfKind
	SvelteFragmentKind
	SvelteBoundaryKind
)

var specialElementNames = map[string]ElementKind{
	"svelte:head":      SvelteHeadKind,
	"svelte:options":    SvelteOptionsKind,
	"svelte:window":     SvelteWindowKind,
	"svelte:document":   SvelteDocumentKind,
	"svelte:body":       SvelteBodyKind,
	"svelte:element":    SvelteElementKind,
	"svelte:component":  SvelteComponentKind,
	"svelte:self":       SvelteSelfKind,
	"svelte:fragment":   SvelteFragmentKind,
	"svelte:boundary":   SvelteBoundaryKind,
}

// LookupSpecialElement returns the ElementKind for a `svelte:`-prefixed
// name, and whether that name is recognized.
func LookupSpecialElement(name string) (ElementKind, bool) {
	k, ok := specialElementNames[name]
	return k, ok
}

// AttributeType is the shape an attribute's value takes: a bare boolean
// flag, a single expression, an alternating text/expression sequence, or
// a directive.
type AttributeType uint32

const (
	// BooleanAttribute is a name-only attribute: `disabled`.
	BooleanAttribute AttributeType = iota
	// ExpressionAttribute is a single `{expr}` value.
	ExpressionAttribute
	// SequenceAttribute alternates Text and ExpressionTag chunks:
	// `href="/{slug}"`.
	SequenceAttribute
)

// AttrEntryKind discriminates the tagged attribute-entry variants.
type AttrEntryKind uint32

const (
	PlainAttribute AttrEntryKind = iota
	SpreadAttributeEntry
	AttachAttributeEntry
	DirectiveEntry
)

// DirectiveKind is the closed set of directive prefixes.
type DirectiveKind uint32

const (
	NoDirective DirectiveKind = iota
	BindDirective
	ClassDirective
	StyleDirective
	OnDirective
	UseDirective
	AnimateDirective
	TransitionDirective
	InDirective
	OutDirective
	LetDirective
)

var directivePrefixes = map[string]DirectiveKind{
	"bind":       BindDirective,
	"class":      ClassDirective,
	"style":      StyleDirective,
	"on":         OnDirective,
	"use":        UseDirective,
	"animate":    AnimateDirective,
	"transition": TransitionDirective,
	"in":         InDirective,
	"out":        OutDirective,
	"let":        LetDirective,
}

// Attribute is one attribute-entry of an element.
type Attribute struct {
	Kind AttrEntryKind

	// Plain/Directive name (post `:` split for directives).
	Key     string
	KeyLoc  loc.Span
	Type    AttributeType
	// Val is the raw source text of a single-expression value, or unused
	// for SequenceAttribute (see Sequence below).
	Val     string
	ValLoc  loc.Span

	// Sequence holds alternating Text/Expression chunks when Type ==
	// SequenceAttribute. Text chunks carry Text; expression chunks carry
	// Expr.
	Sequence []AttributeChunk

	// Directive fields (Kind == DirectiveEntry).
	Directive DirectiveKind
	Modifiers []string
	Intro     bool
	Outro     bool

	Expr *ExprNode
	Span loc.Span
}

// AttributeChunk is one element of a Sequence attribute value.
type AttributeChunk struct {
	IsExpression bool
	Text         string
	Expr         *ExprNode
	Span         loc.Span
}

// ExprNode wraps a host-language subtree returned by the hostbridge. The
// core never interprets its contents; it only carries the byte span
// (already shifted into the template's frame of reference) and whatever
// opaque tree the bridge produced.
type ExprNode struct {
	Span loc.Span
	Tree interface{}
	// Raw is the exact source slice the bridge consumed, kept for
	// round-trip and diagnostics purposes.
	Raw string
}

// AwaitPhase tracks which slot of an AwaitBlock is being filled.
type AwaitPhase uint32

const (
	AwaitPending AwaitPhase = iota
	AwaitThen
	AwaitCatch
)

// LastAutoClosedTag records an implicit-close event.
type LastAutoClosedTag struct {
	Tag    string
	Reason string
	Depth  int
}

// Node is the single tagged-tree type backing every fragment node, element,
// and block. Child lists are represented as a doubly linked sibling list
// the way golang.org/x/net/html represents HTML nodes, so the template
// tree, the CSS tree's host wrapper, and the scope-builder walk all share
// one traversal idiom.
type Node struct {
	Parent, FirstChild, LastChild, PrevSibling, NextSibling *Node

	Type        NodeType
	ElementKind ElementKind
	DataAtom    atom.Atom
	Data        string // tag/attribute-ish name; Text data for TextNode
	RawText     string // borrowed slice of the original source for this node
	Span        loc.Span

	Attr []Attribute

	// Expression-bearing nodes (ExpressionNode, ConstTagNode, DebugTagNode,
	// HtmlTagNode, RenderTagNode, AttachTagNode, block tests).
	Expr *ExprNode

	// Block-specific fields.
	EachCollection *ExprNode
	EachContext    *ExprNode // pattern
	EachIndex      string
	EachKey        *ExprNode
	EachKeyed      bool
	Fallback       *Node // EachBlock's {:else} fragment (an IfBlock's else is IfAlternate)

	AwaitValue *ExprNode // pattern
	AwaitError *ExprNode // pattern
	AwaitPending *Node
	AwaitThen    *Node
	AwaitCatch   *Node
	Phase        AwaitPhase

	IfConsequent *Node
	IfAlternate  *Node
	IsElseIf     bool

	SnippetName   string
	SnippetParams *ExprNode
	SnippetTypeParams string

	// Self-closing / void marker.
	SelfClosing bool
	Void        bool

	// LastAutoClosedTag is set on an element popped via implicit closing,
	// read back when a later explicit close-tag needs the specific
	// "recently auto-closed" error message.
	AutoClosed *LastAutoClosedTag
}

// InsertBefore inserts newChild as a child of n, immediately before oldChild.
// If oldChild is nil, newChild is appended to the end of n's children.
// Mirrors golang.org/x/net/html.Node.InsertBefore.
func (n *Node) InsertBefore(newChild, oldChild *Node) {
	if newChild.Parent != nil || newChild.PrevSibling != nil || newChild.NextSibling != nil {
		panic("tmpl: InsertBefore called for an attached child Node")
	}
	var prev, next *Node
	if oldChild != nil {
		prev, next = oldChild.PrevSibling, oldChild
	} else {
		prev = n.LastChild
	}
	if prev != nil {
		prev.NextSibling = newChild
	} else {
		n.FirstChild = newChild
	}
	if next != nil {
		next.PrevSibling = newChild
	} else {
		n.LastChild = newChild
	}
	newChild.Parent = n
	newChild.PrevSibling = prev
	newChild.NextSibling = next
}

// AppendChild adds newChild as the last child of n.
func (n *Node) AppendChild(newChild *Node) {
	if newChild.Parent != nil || newChild.PrevSibling != nil || newChild.NextSibling != nil {
		panic("tmpl: AppendChild called for an attached child Node")
	}
	last := n.LastChild
	if last != nil {
		last.NextSibling = newChild
	} else {
		n.FirstChild = newChild
	}
	newChild.Parent = n
	newChild.PrevSibling = last
	n.LastChild = newChild
}

// RemoveChild removes c from n's children.
func (n *Node) RemoveChild(c *Node) {
	if c.Parent != n {
		panic("tmpl: RemoveChild called for a non-child Node")
	}
	if n.FirstChild == c {
		n.FirstChild = c.NextSibling
	}
	if c.NextSibling != nil {
		c.NextSibling.PrevSibling = c.PrevSibling
	}
	if n.LastChild == c {
		n.LastChild = c.PrevSibling
	}
	if c.PrevSibling != nil {
		c.PrevSibling.NextSibling = c.NextSibling
	}
	c.Parent = nil
	c.PrevSibling = nil
	c.NextSibling = nil
}

// RemoveAttribute drops the first attribute whose Key matches name.
func (n *Node) RemoveAttribute(name string) {
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// Attribute looks up a plain attribute by name; ok is false if absent.
func (n *Node) Attribute(name string) (Attribute, bool) {
	for _, a := range n.Attr {
		if a.Kind == PlainAttribute && a.Key == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Directives returns every directive entry matching the given kind.
func (n *Node) Directives(kind DirectiveKind) []Attribute {
	var out []Attribute
	for _, a := range n.Attr {
		if a.Kind == DirectiveEntry && a.Directive == kind {
			out = append(out, a)
		}
	}
	return out
}

// IsComponentName implements the component-name pattern: the
// first rune is upper-case, or the name contains a `.` (member-expression
// component reference, e.g. `Foo.Bar`).
func IsComponentName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			return true
		}
		break
	}
	for _, r := range name {
		if r == '.' {
			return true
		}
	}
	return false
}

// Root is the top-level parse result for a single component file.
type Root struct {
	Instance   *Node // FrontmatterNode, default/instance script
	Module     *Node // FrontmatterNode, module context
	Style      *Node // StyleNode -> parsed stylesheet hangs off Stylesheet
	Stylesheet *cssparser.StyleSheet
	Fragment   *Node // FragmentNode, the single top-level fragment
	Options    *OptionsRecord

	// Comments collected from the host-language bridge across both
	// scripts, each with its byte span already shifted into the
	// template's frame of reference.
	Comments []HostComment

	// TypeScriptDialect is set when any <script> declared `lang="ts"`.
	TypeScriptDialect bool

	Source string
}

// HostComment is a collected host-language comment.
type HostComment struct {
	Text string
	Span loc.Span
	Block bool
}
