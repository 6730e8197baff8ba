package parser

import (
	"strings"

	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/loc"
)

// voidElements never have a body; a bare open tag is their whole node.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// rawTextElements read their body as opaque text up to their specific
// closing tag, without expression-tag interpretation (unlike textarea,
// which still interprets `{expr}`).
var rawTextElements = map[string]bool{
	"script": true, "style": true,
}

// autoCloseRules is a representative subset of the HTML implicit-
// closing table (§4.2.3): opening `trigger` auto-closes an ancestor
// frame whose tag is a key, when that ancestor is the nearest open
// element frame.
var autoCloseRules = map[string]map[string]bool{
	"li":       {"li": true},
	"dt":       {"dt": true, "dd": true},
	"dd":       {"dt": true, "dd": true},
	"tr":       {"tr": true},
	"td":       {"td": true, "th": true},
	"th":       {"td": true, "th": true},
	"option":   {"option": true, "optgroup": true},
	"optgroup": {"optgroup": true},
	"rt":       {"rt": true, "rp": true},
	"rp":       {"rt": true, "rp": true},
}

// pClosingTags auto-close an open <p> the way any "block" element does.
var pClosingTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"details": true, "div": true, "dl": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "main": true, "menu": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true, "ul": true,
}

func isTagNameStop(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '/', '>':
		return true
	}
	return false
}

// parseOpenTag parses `<name ...attrs.../?>`, classifying the element,
// applying implicit-closing, and pushing a new frame (or, for void/
// self-closing elements, appending the finished node directly).
func (p *Parser) parseOpenTag() {
	start := p.cur.pos
	p.cur.pos++ // "<"
	nameStart := p.cur.pos
	name := p.cur.readUntil(isTagNameStop)
	if name == "" {
		p.appendError(loc.ERROR_INVALID_TAG_NAME, "Invalid tag name", loc.Span{Start: start, End: p.cur.pos})
		p.cur.pos = nameStart + 1
		return
	}

	if rawTextElements[name] && len(p.stack) == 0 {
		p.parseTopLevelScriptOrStyle(name, start)
		return
	}

	kind, isComponent := classifyElement(name, p.top())
	attrs := p.parseAttributes()

	selfClosing := p.cur.eat("/")
	p.cur.eatRequired(">", p)

	node := &tmpl.Node{
		Type:        tmpl.ElementNode,
		ElementKind: kind,
		Data:        name,
		Attr:        attrs,
		SelfClosing: selfClosing,
		Void:        voidElements[name],
		Span:        loc.Span{Start: start, End: p.cur.pos},
	}
	_ = isComponent

	p.applyImplicitClosing(name)

	if selfClosing || voidElements[name] {
		p.appendNode(node)
		if kind == tmpl.SvelteOptionsKind {
			p.options = tmpl.ReadOptions(node, p)
		}
		return
	}

	if name == "textarea" {
		p.parseRawTextBody(node, "textarea", true)
		p.appendNode(node)
		return
	}

	if rawTextElements[name] {
		p.parseRawTextBody(node, name, false)
		p.appendNode(node)
		return
	}

	p.stack = append(p.stack, &frame{
		kind:    frameElement,
		node:    node,
		tag:     name,
		open:    node.Span,
		current: node,
	})
}

// classifyElement implements §4.2.3's element-category dispatch.
func classifyElement(name string, parent *frame) (tmpl.ElementKind, bool) {
	if strings.HasPrefix(name, "svelte:") {
		if kind, ok := tmpl.LookupSpecialElement(name); ok {
			return kind, false
		}
		return tmpl.RegularElementKind, false
	}
	if tmpl.IsComponentName(name) {
		return tmpl.ComponentKind, true
	}
	if name == "title" && parent != nil && parent.node.ElementKind == tmpl.SvelteHeadKind {
		return tmpl.TitleElementKind, false
	}
	if name == "slot" {
		return tmpl.SlotElementKind, false
	}
	return tmpl.RegularElementKind, false
}

// applyImplicitClosing pops the current top element frame first when
// its tag is auto-closed by an about-to-open `name`, per the fixed
// table in §4.2.3, recording a LastAutoClosedTag for the specific
// "recently auto-closed" diagnostic a later mismatched explicit close
// can reference.
func (p *Parser) applyImplicitClosing(name string) {
	f := p.top()
	if f == nil || f.kind != frameElement {
		return
	}
	closes := autoCloseRules[f.tag][name]
	if f.tag == "p" && pClosingTags[name] {
		closes = true
	}
	if !closes {
		return
	}
	f.node.AutoClosed = &tmpl.LastAutoClosedTag{Tag: f.tag, Reason: "implicit-close", Depth: len(p.stack)}
	p.stack = p.stack[:len(p.stack)-1]
	p.appendNode(f.node)
}

// parseCloseTag parses `</name>`, unwinding the stack to the nearest open
// element frame of that name and emitting every frame above it on the
// way. A close tag with no open element of that name is an error in
// strict mode (the specific "already implicitly closed" one when an
// element of that name in the current fragment was auto-closed) and is
// ignored in loose mode.
func (p *Parser) parseCloseTag() {
	start := p.cur.pos
	p.cur.pos += 2 // "</"
	name := p.cur.readUntil(isTagNameStop)
	p.cur.allowWhitespace()
	p.cur.eatRequired(">", p)
	span := loc.Span{Start: start, End: p.cur.pos}

	for i := len(p.stack) - 1; i >= 0; i-- {
		f := p.stack[i]
		if f.kind != frameElement || f.tag != name {
			continue
		}
		if f.node.AutoClosed != nil && f.node.AutoClosed.Tag == name {
			p.appendError(loc.ERROR_UNEXPECTED_CLOSE_TAG, "'"+name+"' was already implicitly closed", span)
		}
		// Pop and emit every frame from the top down to (and including) i.
		for len(p.stack) > i {
			p.popAndEmitTop()
		}
		return
	}

	if !p.loose {
		target := p.root
		if f := p.top(); f != nil {
			target = f.current
		}
		for c := target.LastChild; c != nil; c = c.PrevSibling {
			if c.AutoClosed != nil && c.AutoClosed.Tag == name {
				p.appendError(loc.ERROR_UNEXPECTED_CLOSE_TAG, "'"+name+"' was already implicitly closed", span)
				return
			}
		}
		p.appendError(loc.ERROR_UNEXPECTED_CLOSE_TAG, "Unexpected closing tag '"+name+"'", span)
	}
}

// popAndEmitTop pops the innermost open frame, wrapping it into its
// node (already the container it accumulated children into) and
// appending it to the new top fragment.
func (p *Parser) popAndEmitTop() {
	f := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	node := f.node
	p.appendNode(node)
	if f.kind == frameElement && node.ElementKind == tmpl.SvelteOptionsKind {
		p.options = tmpl.ReadOptions(node, p)
	}
}

// closeUnclosedFrames runs at EOF: every still-open frame is popped and
// emitted, reporting (strict mode) an unclosed-element/block error
// against its opening span.
func (p *Parser) closeUnclosedFrames() {
	for len(p.stack) > 0 {
		f := p.top()
		if !p.loose {
			code := loc.ERROR_ELEMENT_UNCLOSED
			if f.kind != frameElement {
				code = loc.ERROR_BLOCK_UNCLOSED
			}
			p.appendError(code, "Unclosed '"+frameLabel(f)+"'", f.open)
		} else {
			p.appendWarning(loc.WARNING_UNCLOSED_HTML_TAG, "Unclosed '"+frameLabel(f)+"'", f.open)
		}
		p.popAndEmitTop()
	}
}

func frameLabel(f *frame) string {
	if f.kind == frameElement {
		return f.tag
	}
	return f.node.Type.String()
}

// parseRawTextBody reads raw text content up to a matching closing tag,
// matched case-insensitively, interpreting `{expr}`
// expression tags when interpretExpr is set.
func (p *Parser) parseRawTextBody(node *tmpl.Node, closeName string, interpretExpr bool) {
	closeTag := "</" + closeName
	for {
		if p.cur.eof() {
			p.appendError(loc.ERROR_ELEMENT_UNCLOSED, "Unclosed '"+closeName+"'", node.Span)
			return
		}
		if p.cur.matchStrFold(closeTag) {
			save := p.cur.pos
			p.cur.pos += len(closeTag)
			p.cur.allowWhitespace()
			if p.cur.eat(">") {
				return
			}
			p.cur.pos = save
		}
		if interpretExpr && p.cur.peek() == '{' {
			p.parseTag()
			continue
		}
		textStart := p.cur.pos
		for !p.cur.eof() && !p.cur.matchStrFold(closeTag) && !(interpretExpr && p.cur.peek() == '{') {
			p.cur.pos++
		}
		text := p.source[textStart:p.cur.pos]
		node.AppendChild(&tmpl.Node{
			Type:    tmpl.TextNode,
			Data:    text,
			RawText: text,
			Span:    loc.Span{Start: textStart, End: p.cur.pos},
		})
	}
}

// parseTopLevelScriptOrStyle handles a top-level <script>/<style> tag:
// reads its attributes, then its raw body up to the matching close tag,
// and builds the frontmatter/style node directly (these never go
// through the ordinary element stack since they are singletons per
// context, validated here rather than via the stack).
func (p *Parser) parseTopLevelScriptOrStyle(name string, start int) {
	attrs := p.parseAttributes()
	p.cur.eat("/")
	p.cur.eatRequired(">", p)

	bodyStart := p.cur.pos
	closeTag := "</" + name
	for !p.cur.eof() && !p.cur.matchStrFold(closeTag) {
		p.cur.pos++
	}
	body := p.source[bodyStart:p.cur.pos]
	if p.cur.eof() {
		p.appendError(loc.ERROR_ELEMENT_UNCLOSED, "Unclosed '"+name+"'", loc.Span{Start: start, End: p.cur.pos})
	} else {
		p.cur.pos += len(closeTag)
		p.cur.allowWhitespace()
		p.cur.eatRequired(">", p)
	}

	if name == "script" {
		p.handleFrontmatterScript(attrs, body, bodyStart, start, p.cur.pos)
		return
	}
	p.handleStyleBlock(attrs, body, bodyStart, start, p.cur.pos)
}
