// Package cssparser builds a full CSS grammar tree (stylesheet, rules,
// at-rules, declarations, and selector lists) from a <style> block's
// source text, using the same tdewolff/parse/v2/css grammar walk that
// internal/transform/scope-css.go's scoping rewrite drives, generalized
// from "rewrite tokens into scoped text" to "build a tree".
package cssparser

import (
	"bytes"
	"strings"

	"github.com/tdewolff/parse/v2/css"
	"github.com/tmpllang/compiler/internal/loc"
)

// NodeKind discriminates a StyleSheet child: a qualified rule or an
// at-rule.
type NodeKind uint32

const (
	RuleNode NodeKind = iota
	AtRuleNode
)

// StyleSheet is the parsed CSS tree of a single <style> block.
type StyleSheet struct {
	Children []*Node
	Span     loc.Span
}

// Node is either a qualified rule (Selectors + Block) or an at-rule
// (AtKeyword + Prelude, optionally a Block for at-rules like @media that
// nest further rules).
type Node struct {
	Kind      NodeKind
	AtKeyword string // e.g. "@media", only set when Kind == AtRuleNode
	Prelude   string // raw text between the rule head and its "{"  or ";"
	Selectors *SelectorList
	Block     *Block // nil for an at-rule with no block, e.g. "@import url(...);"
	Span      loc.Span
}

// Block is the `{ ... }` body of a rule or at-rule: either flat
// declarations (a style rule) or nested rules (an @media/@supports body).
type Block struct {
	Declarations []Declaration
	Children     []*Node
	Span         loc.Span
}

// Declaration is one `property: value[ !important];` pair.
type Declaration struct {
	Property  string
	Value     string
	Important bool
	Span      loc.Span
}

// SelectorList is a comma-separated list of complex selectors.
type SelectorList struct {
	Selectors []ComplexSelector
}

// ComplexSelector is a combinator chain: `a > b + c`.
type ComplexSelector struct {
	Relative []RelativeSelector
}

// RelativeSelector is one link of a complex selector: the combinator that
// precedes it (empty for the first link, meaning descendant/none) plus
// the compound selector's simple selectors.
type RelativeSelector struct {
	Combinator string // "", ">", "+", "~"
	Selectors  []SimpleSelector
}

// SimpleSelector is one atomic selector component.
type SimpleSelector struct {
	// Kind is one of "type", "universal", "class", "id", "attribute",
	// "pseudo-class", "pseudo-element", "global", "nesting".
	Kind string
	Name string
	// Value carries an attribute selector's bracketed text, or a
	// pseudo-class/function's parenthesized argument text.
	Value string
}

// Parse builds a StyleSheet from raw CSS source. Malformed input is
// preserved as best-effort: the grammar walker recovers from errors the
// continuing rather than aborting the whole block.
func Parse(source string) (*StyleSheet, []error) {
	var errs []error
	sheet := &StyleSheet{Span: loc.Span{Start: 0, End: len(source)}}
	p := css.NewParser(bytes.NewBufferString(source), false)

	offset := 0
	var stack []*Node // open at-rules awaiting their block's end

	for {
		gt, _, data := p.Next()
		tokenLen := len(data)

		switch gt {
		case css.ErrorGrammar:
			if tokenLen == 0 {
				goto done
			}
			errs = append(errs, &loc.ErrorWithRange{
				Code:  loc.ERROR_CSS_INVALID_SELECTOR,
				Text:  "unexpected CSS syntax",
				Range: loc.Range{Loc: loc.Loc{Start: offset}, Len: tokenLen},
			})

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			prelude := renderValues(p.Values())
			node := &Node{
				Kind:      RuleNode,
				Prelude:   prelude,
				Selectors: parseSelectorList(prelude),
				Span:      loc.Span{Start: offset},
			}
			if gt == css.BeginRulesetGrammar {
				node.Block = &Block{Span: loc.Span{Start: offset + tokenLen}}
				appendNode(sheet, stack, node)
				stack = append(stack, node)
			} else {
				appendNode(sheet, stack, node)
			}

		case css.BeginAtRuleGrammar, css.AtRuleGrammar:
			node := &Node{
				Kind:      AtRuleNode,
				AtKeyword: string(data),
				Prelude:   renderValues(p.Values()),
				Span:      loc.Span{Start: offset},
			}
			if gt == css.BeginAtRuleGrammar {
				node.Block = &Block{Span: loc.Span{Start: offset + tokenLen}}
				appendNode(sheet, stack, node)
				stack = append(stack, node)
			} else {
				appendNode(sheet, stack, node)
			}

		case css.DeclarationGrammar:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Block != nil {
					prop, val, important := splitDeclaration(string(data), p.Values())
					top.Block.Declarations = append(top.Block.Declarations, Declaration{
						Property:  prop,
						Value:     val,
						Important: important,
						Span:      loc.Span{Start: offset, End: offset + tokenLen},
					})
				}
			}

		case css.EndRulesetGrammar, css.EndAtRuleGrammar:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Block != nil {
					top.Block.Span.End = offset + tokenLen
				}
				top.Span.End = offset + tokenLen
				stack = stack[:len(stack)-1]
			}

		case css.CommentGrammar:
			// preserved only as consumed bytes; no tree node, matching
			// scope-css.go's pass-through-comment behavior.
		}

		offset += tokenLen
	}
done:

	for _, n := range stack {
		n.Span.End = len(source)
		if n.Block != nil {
			n.Block.Span.End = len(source)
		}
	}

	return sheet, errs
}

func appendNode(sheet *StyleSheet, stack []*Node, node *Node) {
	if len(stack) == 0 {
		sheet.Children = append(sheet.Children, node)
		return
	}
	top := stack[len(stack)-1]
	if top.Block != nil {
		top.Block.Children = append(top.Block.Children, node)
	}
}

func renderValues(values []css.Token) string {
	var b strings.Builder
	for _, v := range values {
		b.Write(v.Data)
	}
	return strings.TrimSpace(b.String())
}

func splitDeclaration(property string, values []css.Token) (string, string, bool) {
	val := renderValues(values)
	important := false
	if strings.HasSuffix(strings.ToLower(strings.TrimSpace(val)), "!important") {
		important = true
		val = strings.TrimSpace(val[:strings.LastIndex(strings.ToLower(val), "!important")])
	}
	return strings.TrimSpace(property), val, important
}

// parseSelectorList splits a raw prelude on top-level commas, then each
// complex selector on whitespace/combinator boundaries, then each compound
// selector on its `.`/`#`/`[`/`:` component boundaries. This mirrors the
// character classes scope-css.go switches on, generalized from "emit
// scoped text" to "emit a structured SimpleSelector".
func parseSelectorList(prelude string) *SelectorList {
	list := &SelectorList{}
	for _, part := range splitTopLevel(prelude, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		list.Selectors = append(list.Selectors, parseComplexSelector(part))
	}
	return list
}

func splitTopLevel(s string, sep byte) []string {
	var out []string
	depth := 0
	inBracket := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '[':
			inBracket = true
		case ']':
			inBracket = false
		default:
			if s[i] == sep && depth == 0 && !inBracket {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}

func parseComplexSelector(s string) ComplexSelector {
	cs := ComplexSelector{}
	combinator := ""
	for _, tok := range tokenizeCombinatorChain(s) {
		switch tok {
		case ">", "+", "~":
			combinator = tok
		default:
			cs.Relative = append(cs.Relative, RelativeSelector{
				Combinator: combinator,
				Selectors:  parseCompoundSelector(tok),
			})
			combinator = ""
		}
	}
	return cs
}

// tokenizeCombinatorChain splits "a > b + c" into ["a", ">", "b", "+", "c"].
func tokenizeCombinatorChain(s string) []string {
	var out []string
	var cur strings.Builder
	depth := 0
	flush := func() {
		if t := strings.TrimSpace(cur.String()); t != "" {
			out = append(out, t)
		}
		cur.Reset()
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '(':
			depth++
			cur.WriteByte(c)
		case ')':
			if depth > 0 {
				depth--
			}
			cur.WriteByte(c)
		case '>', '+', '~':
			if depth == 0 {
				flush()
				out = append(out, string(c))
				continue
			}
			cur.WriteByte(c)
		case ' ', '\t', '\n':
			if depth == 0 {
				flush()
				continue
			}
			cur.WriteByte(c)
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return out
}

func parseCompoundSelector(s string) []SimpleSelector {
	var out []SimpleSelector
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '.':
			j := simpleSelectorEnd(s, i+1)
			out = append(out, SimpleSelector{Kind: "class", Name: s[i+1 : j]})
			i = j
		case s[i] == '#':
			j := simpleSelectorEnd(s, i+1)
			out = append(out, SimpleSelector{Kind: "id", Name: s[i+1 : j]})
			i = j
		case s[i] == '*':
			out = append(out, SimpleSelector{Kind: "universal", Name: "*"})
			i++
		case s[i] == '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				out = append(out, SimpleSelector{Kind: "attribute", Value: s[i+1:]})
				return out
			}
			out = append(out, SimpleSelector{Kind: "attribute", Value: s[i+1 : i+j]})
			i += j + 1
		case s[i] == ':':
			kind := "pseudo-class"
			start := i + 1
			if start < len(s) && s[start] == ':' {
				kind = "pseudo-element"
				start++
			}
			j := start
			for j < len(s) && (isIdentChar(s[j])) {
				j++
			}
			name := s[start:j]
			sel := SimpleSelector{Kind: kind, Name: name}
			if name == "global" && j < len(s) && s[j] == '(' {
				close := matchingParen(s, j)
				sel.Kind = "global"
				sel.Value = s[j+1 : close]
				j = close + 1
			} else if j < len(s) && s[j] == '(' {
				close := matchingParen(s, j)
				sel.Value = s[j+1 : close]
				j = close + 1
			}
			out = append(out, sel)
			i = j
		case s[i] == '&':
			out = append(out, SimpleSelector{Kind: "nesting", Name: "&"})
			i++
		default:
			j := simpleSelectorEnd(s, i)
			if j == i {
				i++
				continue
			}
			out = append(out, SimpleSelector{Kind: "type", Name: s[i:j]})
			i = j
		}
	}
	return out
}

func simpleSelectorEnd(s string, i int) int {
	for i < len(s) && isIdentChar(s[i]) {
		i++
	}
	return i
}

func isIdentChar(c byte) bool {
	return c == '-' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func matchingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(s)
}
