package parser

import (
	"strings"

	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/loc"
)

// directivePrefixes mirrors the identically-shaped unexported map in
// internal/node.go; duplicated here rather than exported across the
// package boundary since this is the only other consumer.
var directivePrefixes = map[string]tmpl.DirectiveKind{
	"bind":       tmpl.BindDirective,
	"class":      tmpl.ClassDirective,
	"style":      tmpl.StyleDirective,
	"on":         tmpl.OnDirective,
	"use":        tmpl.UseDirective,
	"animate":    tmpl.AnimateDirective,
	"transition": tmpl.TransitionDirective,
	"in":         tmpl.InDirective,
	"out":        tmpl.OutDirective,
	"let":        tmpl.LetDirective,
}

type attrDedupKey struct {
	directive tmpl.DirectiveKind
	key       string
}

// parseAttributes reads the attribute list of an open tag, stopping at
// `/` (self-close), `>`, or EOF. Each position is one of: `{...expr}`
// spread, `{@attach expr}`, `{name}` shorthand, or `name[=value]`.
func (p *Parser) parseAttributes() []tmpl.Attribute {
	var attrs []tmpl.Attribute
	seen := map[attrDedupKey]bool{}

	for {
		p.cur.allowWhitespace()
		if p.cur.eof() || p.cur.peek() == '/' || p.cur.peek() == '>' {
			return attrs
		}

		start := p.cur.pos
		var attr tmpl.Attribute

		switch {
		case p.cur.matchStr("{..."):
			attr = p.parseSpreadAttribute(start)
		case p.cur.matchStr("{@attach"):
			attr = p.parseAttachAttribute(start)
		case p.cur.peek() == '{':
			attr = p.parseShorthandAttribute(start)
		default:
			attr = p.parseNamedAttribute(start)
		}

		key := attrDedupKey{directive: attr.Directive, key: attr.Key}
		if attr.Kind == tmpl.PlainAttribute || attr.Kind == tmpl.DirectiveEntry {
			if attr.Key != "this" {
				if seen[key] {
					p.appendError(loc.ERROR_DUPLICATE_ATTRIBUTE, "Duplicate attribute '"+attr.Key+"'", attr.Span)
				}
				seen[key] = true
			}
		}

		attrs = append(attrs, attr)

		if p.cur.pos == start {
			// Guard against a stuck cursor on malformed input.
			p.cur.pos++
		}
	}
}

func (p *Parser) parseSpreadAttribute(start int) tmpl.Attribute {
	p.cur.pos += 4 // "{..."
	exprStart := p.cur.pos
	raw := p.readExpressionSliceUntilBrace()
	expr := p.parseExpressionAt(raw, exprStart)
	p.cur.eatRequired("}", p)
	return tmpl.Attribute{
		Kind: tmpl.SpreadAttributeEntry,
		Val:  raw,
		Expr: expr,
		Span: loc.Span{Start: start, End: p.cur.pos},
	}
}

func (p *Parser) parseAttachAttribute(start int) tmpl.Attribute {
	p.cur.pos += len("{@attach")
	p.cur.allowWhitespace()
	exprStart := p.cur.pos
	raw := p.readExpressionSliceUntilBrace()
	expr := p.parseExpressionAt(raw, exprStart)
	p.cur.eatRequired("}", p)
	return tmpl.Attribute{
		Kind: tmpl.AttachAttributeEntry,
		Val:  raw,
		Expr: expr,
		Span: loc.Span{Start: start, End: p.cur.pos},
	}
}

// parseShorthandAttribute reads `{name}`, synthesizing an attribute
// whose name equals the expression text.
func (p *Parser) parseShorthandAttribute(start int) tmpl.Attribute {
	p.cur.pos++ // "{"
	exprStart := p.cur.pos
	raw := p.readExpressionSliceUntilBrace()
	expr := p.parseExpressionAt(raw, exprStart)
	p.cur.eatRequired("}", p)
	return tmpl.Attribute{
		Kind: tmpl.PlainAttribute,
		Key:  strings.TrimSpace(raw),
		Type: tmpl.ExpressionAttribute,
		Val:  raw,
		Expr: expr,
		Span: loc.Span{Start: start, End: p.cur.pos},
	}
}

var attrNameStop = map[byte]bool{
	' ': true, '\t': true, '\n': true, '\r': true,
	'/': true, '>': true, '=': true, '"': true, '\'': true,
}

// parseNamedAttribute reads `name[= value]`, reinterpreting a
// `prefix:name` key whose prefix is a known directive.
func (p *Parser) parseNamedAttribute(start int) tmpl.Attribute {
	keyStart := p.cur.pos
	name := p.cur.readUntil(func(b byte) bool { return attrNameStop[b] })
	keyEnd := p.cur.pos

	p.cur.allowWhitespace()
	hasValue := p.cur.peek() == '='

	if directiveKind, rest, ok := splitDirective(name); ok {
		return p.finishDirectiveAttribute(start, keyStart, keyEnd, directiveKind, rest, hasValue)
	}

	attr := tmpl.Attribute{
		Kind:   tmpl.PlainAttribute,
		Key:    name,
		KeyLoc: loc.Span{Start: keyStart, End: keyEnd},
	}
	if !hasValue {
		attr.Type = tmpl.BooleanAttribute
		attr.Span = loc.Span{Start: start, End: p.cur.pos}
		return attr
	}
	p.cur.pos++ // "="
	p.cur.allowWhitespace()
	p.readAttributeValue(&attr)
	attr.Span = loc.Span{Start: start, End: p.cur.pos}
	return attr
}

// splitDirective recognizes `prefix:rest` against the closed directive
// set, splitting rest's trailing `|modifiers` if present.
func splitDirective(name string) (tmpl.DirectiveKind, string, bool) {
	colon := strings.IndexByte(name, ':')
	if colon < 0 {
		return 0, "", false
	}
	prefix := name[:colon]
	kind, ok := directivePrefixes[prefix]
	if !ok {
		return 0, "", false
	}
	return kind, name[colon+1:], true
}

func (p *Parser) finishDirectiveAttribute(start, keyStart, keyEnd int, kind tmpl.DirectiveKind, rest string, hasValue bool) tmpl.Attribute {
	nameAndMods := strings.Split(rest, "|")
	name := nameAndMods[0]
	modifiers := nameAndMods[1:]

	attr := tmpl.Attribute{
		Kind:      tmpl.DirectiveEntry,
		Key:       name,
		KeyLoc:    loc.Span{Start: keyStart, End: keyEnd},
		Directive: kind,
		Modifiers: modifiers,
	}
	if kind == tmpl.TransitionDirective {
		attr.Intro, attr.Outro = true, true
	} else if kind == tmpl.InDirective {
		attr.Intro = true
	} else if kind == tmpl.OutDirective {
		attr.Outro = true
	}

	if hasValue {
		p.cur.pos++ // "="
		p.cur.allowWhitespace()
		p.readAttributeValue(&attr)
	} else if kind == tmpl.BindDirective || kind == tmpl.ClassDirective {
		// Synthesize an identifier from the name when omitted.
		attr.Type = tmpl.ExpressionAttribute
		attr.Val = name
	} else {
		attr.Type = tmpl.BooleanAttribute
	}
	attr.Span = loc.Span{Start: start, End: p.cur.pos}
	return attr
}

// readAttributeValue reads a quoted/unquoted attribute value into attr,
// populating either Val+Type=ExpressionAttribute (single `{expr}`) or
// Sequence+Type=SequenceAttribute (alternating text/expression chunks).
func (p *Parser) readAttributeValue(attr *tmpl.Attribute) {
	var stop func(byte) bool
	var quote byte

	switch p.cur.peek() {
	case '"', '\'':
		quote = p.cur.peek()
		p.cur.pos++
		stop = func(b byte) bool { return b == quote }
	case '{':
		exprStart := p.cur.pos + 1
		p.cur.pos++
		raw := p.readExpressionSliceUntilBrace()
		attr.Expr = p.parseExpressionAt(raw, exprStart)
		attr.Val = raw
		attr.Type = tmpl.ExpressionAttribute
		attr.ValLoc = loc.Span{Start: exprStart, End: p.cur.pos}
		p.cur.eatRequired("}", p)
		return
	default:
		stop = func(b byte) bool { return attrNameStop[b] }
	}

	valStart := p.cur.pos
	var chunks []tmpl.AttributeChunk
	textStart := p.cur.pos
	for !p.cur.eof() && !stop(p.cur.peek()) {
		if p.cur.peek() == '{' {
			if textStart < p.cur.pos {
				chunks = append(chunks, tmpl.AttributeChunk{Text: p.source[textStart:p.cur.pos], Span: loc.Span{Start: textStart, End: p.cur.pos}})
			}
			exprStart := p.cur.pos + 1
			p.cur.pos++
			raw := p.readExpressionSliceUntilBrace()
			expr := p.parseExpressionAt(raw, exprStart)
			p.cur.eatRequired("}", p)
			chunks = append(chunks, tmpl.AttributeChunk{
				IsExpression: true,
				Text:         raw,
				Expr:         expr,
				Span:         loc.Span{Start: exprStart - 1, End: p.cur.pos},
			})
			textStart = p.cur.pos
			continue
		}
		p.cur.pos++
	}
	if textStart < p.cur.pos {
		chunks = append(chunks, tmpl.AttributeChunk{Text: p.source[textStart:p.cur.pos], Span: loc.Span{Start: textStart, End: p.cur.pos}})
	}
	attr.ValLoc = loc.Span{Start: valStart, End: p.cur.pos}

	if quote != 0 {
		p.cur.eatRequired(string(quote), p)
	}

	if len(chunks) == 1 && !chunks[0].IsExpression {
		attr.Type = tmpl.SequenceAttribute
		attr.Val = chunks[0].Text
		attr.Sequence = chunks
	} else if len(chunks) == 0 {
		attr.Type = tmpl.SequenceAttribute
		attr.Val = ""
	} else {
		attr.Type = tmpl.SequenceAttribute
		attr.Sequence = chunks
	}
}

// readExpressionSliceUntilBrace returns the raw text of an expression
// body up to (but not including) its closing `}`, honoring nested
// brackets and strings so an embedded object/template literal isn't cut
// short.
func (p *Parser) readExpressionSliceUntilBrace() string {
	start := p.cur.pos
	depth := 0
	for !p.cur.eof() {
		switch p.cur.peek() {
		case '{', '(', '[':
			depth++
			p.cur.pos++
		case '}':
			if depth == 0 {
				return p.source[start:p.cur.pos]
			}
			depth--
			p.cur.pos++
		case ')', ']':
			depth--
			p.cur.pos++
		case '\'', '"', '`':
			p.cur.skipStringLiteral()
		default:
			p.cur.pos++
		}
	}
	return p.source[start:p.cur.pos]
}
