// Package hostbridge adapts the embedded host language (JS/TS) inside a
// template's script blocks, attribute expressions, and directive values
// to a real parser: github.com/smacker/go-tree-sitter with the
// TypeScript grammar, the dependency this module carries forward from
// the Svelte tree-sitter parser found in the retrieved pack (the
// tree-sitter-based .svelte file parser). Every call wraps its input
// fragment in the minimal amount of TypeScript syntax needed to parse it
// standalone, then shifts the resulting node spans back into the
// template's original byte frame.
package hostbridge

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/loc"
)

// Bridge owns one tree-sitter parser instance configured for TypeScript.
// It is not safe for concurrent use by multiple goroutines; callers that
// parse scripts concurrently should construct one Bridge per goroutine,
// the way sitter.Parser itself is documented to require.
type Bridge struct {
	parser *sitter.Parser
}

func New() *Bridge {
	p := sitter.NewParser()
	p.SetLanguage(typescript.GetLanguage())
	return &Bridge{parser: p}
}

// fragmentKind selects the syntactic wrapper used to make a bare
// fragment parseable as a standalone TypeScript program.
type fragmentKind int

const (
	// Program parses source as-is: a sequence of statements (the
	// contents of an <script> block).
	Program fragmentKind = iota
	// Expression wraps source as `(<source>)` so a bare expression
	// (an attribute value, a block's test expression) parses as one.
	Expression
	// Pattern wraps source as `let <source> = 0` so a binding pattern
	// (an each-block context, an await-block value/error) parses as
	// the declarator's left-hand side.
	Pattern
	// Params wraps source as `function __tmpl_snippet(<source>) {}` so a
	// comma-separated parameter list (snippet params) parses as one.
	Params
)

// wrap returns src with the literal text added around it for the given
// kind, plus the length of the added prefix, so we know exactly how many
// bytes to subtract from every resulting node's span.
func wrap(kind fragmentKind, src string) (string, int) {
	switch kind {
	case Expression:
		return "(" + src + ")", 1
	case Pattern:
		return "let " + src + " = 0", 4
	case Params:
		return "function __tmpl_snippet(" + src + ") {}", len("function __tmpl_snippet(")
	default:
		return src, 0
	}
}

// Parse parses src as the given fragment kind and returns the resulting
// tree-sitter node that corresponds to the caller's original fragment
// (unwrapping the synthetic wrapper), with offset added to every span so
// the returned tmpl.ExprNode's Span is in the template's byte frame.
func (b *Bridge) Parse(ctx context.Context, src string, offset int, kind fragmentKind) (*tmpl.ExprNode, error) {
	wrapped, prefixLen := wrap(kind, src)

	tree, err := b.parser.ParseCtx(ctx, nil, []byte(wrapped))
	if err != nil {
		return nil, fmt.Errorf("hostbridge: parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("hostbridge: syntax error in embedded expression")
	}

	target := unwrapTarget(root, kind)
	shifted := shiftSpans(target, offset-prefixLen)

	return &tmpl.ExprNode{
		Span: loc.Span{Start: offset, End: offset + len(src)},
		Tree: shifted,
		Raw:  src,
	}, nil
}

// unwrapTarget descends from the synthetic wrapper's root into the node
// that represents the caller's actual fragment.
func unwrapTarget(root *sitter.Node, kind fragmentKind) *sitter.Node {
	switch kind {
	case Expression:
		// program -> expression_statement -> parenthesized_expression -> expr
		if stmt := firstNamedChild(root); stmt != nil {
			if paren := firstNamedChild(stmt); paren != nil {
				if inner := firstNamedChild(paren); inner != nil {
					return inner
				}
				return paren
			}
			return stmt
		}
		return root
	case Pattern:
		// program -> lexical_declaration -> variable_declarator -> pattern (first named child)
		if decl := firstNamedChild(root); decl != nil {
			if declarator := firstNamedChild(decl); declarator != nil {
				if pattern := firstNamedChild(declarator); pattern != nil {
					return pattern
				}
			}
		}
		return root
	case Params:
		// program -> function_declaration -> formal_parameters
		if fn := firstNamedChild(root); fn != nil {
			return fn.ChildByFieldName("parameters")
		}
		return root
	default:
		return root
	}
}

func firstNamedChild(n *sitter.Node) *sitter.Node {
	if n == nil || n.NamedChildCount() == 0 {
		return nil
	}
	return n.NamedChild(0)
}

// ShiftedNode is a byte-span-corrected mirror of a tree-sitter node tree,
// carried opaquely in tmpl.ExprNode.Tree. Only spans and a stable kind
// string are copied, never the tree-sitter node pointers themselves,
// since the source tree-sitter.Tree is closed once Parse returns.
type ShiftedNode struct {
	Kind     string
	Span     loc.Span
	Children []*ShiftedNode
}

func shiftSpans(n *sitter.Node, delta int) *ShiftedNode {
	if n == nil {
		return nil
	}
	out := &ShiftedNode{
		Kind: n.Type(),
		Span: loc.Span{Start: int(n.StartByte()) + delta, End: int(n.EndByte()) + delta},
	}
	count := int(n.NamedChildCount())
	out.Children = make([]*ShiftedNode, 0, count)
	for i := 0; i < count; i++ {
		out.Children = append(out.Children, shiftSpans(n.NamedChild(i), delta))
	}
	return out
}

// ParseExpression parses a single expression fragment (attribute value,
// block test, rune call argument) at byte offset.
func (b *Bridge) ParseExpression(ctx context.Context, src string, offset int) (*tmpl.ExprNode, error) {
	return b.Parse(ctx, src, offset, Expression)
}

// ParsePattern parses a binding-pattern fragment (each-block context,
// await-block value/error, catch-clause parameter) at byte offset.
func (b *Bridge) ParsePattern(ctx context.Context, src string, offset int) (*tmpl.ExprNode, error) {
	return b.Parse(ctx, src, offset, Pattern)
}

// ParseParams parses a comma-separated parameter list (snippet params) at
// byte offset.
func (b *Bridge) ParseParams(ctx context.Context, src string, offset int) (*tmpl.ExprNode, error) {
	return b.Parse(ctx, src, offset, Params)
}

// ParseProgram parses a full script block's statement sequence (instance
// or module context) at byte offset.
func (b *Bridge) ParseProgram(ctx context.Context, src string, offset int) (*tmpl.ExprNode, error) {
	return b.Parse(ctx, src, offset, Program)
}

// CollectComments scans a script block's source for line and block
// comments, string/template-literal-aware the way internal/js_scanner's
// cursor is, and returns each with its span already shifted into the
// template's byte frame.
func CollectComments(src string, offset int) []tmpl.HostComment {
	var out []tmpl.HostComment
	i := 0
	n := len(src)
	var quote byte

	for i < n {
		c := src[i]
		if quote != 0 {
			if c == '\\' {
				i += 2
				continue
			}
			if c == quote {
				quote = 0
			}
			i++
			continue
		}

		switch {
		case c == '\'' || c == '"' || c == '`':
			quote = c
			i++
		case c == '/' && i+1 < n && src[i+1] == '/':
			start := i
			for i < n && src[i] != '\n' {
				i++
			}
			out = append(out, tmpl.HostComment{
				Text:  src[start:i],
				Span:  loc.Span{Start: offset + start, End: offset + i},
				Block: false,
			})
		case c == '/' && i+1 < n && src[i+1] == '*':
			start := i
			i += 2
			for i+1 < n && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			end := i + 2
			if end > n {
				end = n
			}
			out = append(out, tmpl.HostComment{
				Text:  src[start:end],
				Span:  loc.Span{Start: offset + start, End: offset + end},
				Block: true,
			})
			i = end
		default:
			i++
		}
	}

	return out
}
