package parser

import (
	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/loc"
)

// blockCloseKind maps a `{/kind}` close tag's keyword to the frame kind
// it must match.
var blockCloseKind = map[string]frameKind{
	"if":      frameIfBlock,
	"each":    frameEachBlock,
	"await":   frameAwaitBlock,
	"key":     frameKeyBlock,
	"snippet": frameSnippetBlock,
}

// parseTag is the `{` state's dispatcher: `{#` opens a block, `{:`
// continues one, `{/` closes one, `{@` is a special tag, anything else is
// a bare expression tag.
func (p *Parser) parseTag() {
	switch {
	case p.cur.matchStr("{#"):
		p.parseBlockOpen()
	case p.cur.matchStr("{:"):
		p.parseBlockContinuation()
	case p.cur.matchStr("{/"):
		p.parseBlockClose()
	case p.cur.matchStr("{@"):
		p.parseSpecialTag()
	default:
		p.parseExpressionTag()
	}
}

// skipToBrace resyncs on a malformed block/tag by discarding up to and
// including the next depth-zero `}` (loose-mode recovery primitive used
// by every tag handler's error path).
func (p *Parser) skipToBrace() {
	p.cur.readBalancedUntilAny(map[byte]bool{'}': true})
	p.cur.eat("}")
}

func (p *Parser) parseExpressionTag() {
	start := p.cur.pos
	p.cur.pos++ // "{"
	exprStart := p.cur.pos
	raw := p.readExpressionSliceUntilBrace()
	expr := p.parseExpressionAt(raw, exprStart)
	p.cur.eatRequired("}", p)
	p.appendNode(&tmpl.Node{
		Type: tmpl.ExpressionNode,
		Expr: expr,
		Span: loc.Span{Start: start, End: p.cur.pos},
	})
}

func (p *Parser) parseBlockOpen() {
	start := p.cur.pos
	p.cur.pos += 2 // "{#"
	keyword := p.cur.readIdentifier()
	switch keyword {
	case "if":
		p.openIfBlock(start)
	case "each":
		p.openEachBlock(start)
	case "await":
		p.openAwaitBlock(start)
	case "key":
		p.openKeyBlock(start)
	case "snippet":
		p.openSnippetBlock(start)
	default:
		p.appendError(loc.ERROR_EXPECTED_TOKEN, "Unknown block '#"+keyword+"'", loc.Span{Start: start, End: p.cur.pos})
		p.skipToBrace()
	}
}

func (p *Parser) openIfBlock(start int) {
	p.cur.allowWhitespace()
	exprStart := p.cur.pos
	raw := p.readExpressionSliceUntilBrace()
	expr := p.parseExpressionAt(raw, exprStart)
	p.cur.eatRequired("}", p)

	node := &tmpl.Node{Type: tmpl.IfBlockNode, Expr: expr, Span: loc.Span{Start: start, End: p.cur.pos}}
	consequent := &tmpl.Node{Type: tmpl.FragmentNode}
	node.IfConsequent = consequent
	p.appendNode(node)
	p.stack = append(p.stack, &frame{kind: frameIfBlock, node: node, open: node.Span, current: consequent, ifChain: node})
}

var eachBindingStops = map[byte]bool{',': true, '(': true, '}': true}

func (p *Parser) openEachBlock(start int) {
	p.cur.allowWhitespace()
	collectionStart := p.cur.pos
	asPos := p.cur.findKeywordAtDepth0("as")

	var collectionRaw string
	var context *tmpl.ExprNode
	var indexName string
	var keyExpr *tmpl.ExprNode

	if asPos < 0 {
		collectionRaw = p.readExpressionSliceUntilBrace()
	} else {
		collectionRaw = p.source[collectionStart:asPos]
		p.cur.pos = asPos + 2 // "as"
		p.cur.allowWhitespace()

		patStart := p.cur.pos
		patRaw := p.cur.readBalancedUntilAny(eachBindingStops)
		context = p.parsePatternAt(patRaw, patStart)
		p.cur.allowWhitespace()

		if p.cur.eat(",") {
			p.cur.allowWhitespace()
			idxStart := p.cur.pos
			idxRaw := p.cur.readBalancedUntilAny(map[byte]bool{'(': true, '}': true})
			indexName = p.source[idxStart : idxStart+len(idxRaw)]
			indexName = trimSpaceASCII(indexName)
			p.cur.allowWhitespace()
		}

		if p.cur.peek() == '(' {
			p.cur.pos++
			keyStart := p.cur.pos
			keyRaw := p.cur.readBalancedUntilAny(map[byte]bool{')': true})
			keyExpr = p.parseExpressionAt(keyRaw, keyStart)
			p.cur.eatRequired(")", p)
			p.cur.allowWhitespace()
		}
	}

	collectionExpr := p.parseExpressionAt(collectionRaw, collectionStart)
	p.cur.eatRequired("}", p)

	node := &tmpl.Node{
		Type:           tmpl.EachBlockNode,
		EachCollection: collectionExpr,
		EachContext:    context,
		EachIndex:      indexName,
		EachKey:        keyExpr,
		EachKeyed:      keyExpr != nil,
		Span:           loc.Span{Start: start, End: p.cur.pos},
	}
	p.appendNode(node)
	p.stack = append(p.stack, &frame{kind: frameEachBlock, node: node, open: node.Span, current: node})
}

func trimSpaceASCII(s string) string {
	start, end := 0, len(s)
	for start < end && isASCIISpace(s[start]) {
		start++
	}
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func (p *Parser) openAwaitBlock(start int) {
	p.cur.allowWhitespace()
	exprStart := p.cur.pos
	boundary, kind := p.cur.findAwaitBoundary()

	var raw string
	if boundary < 0 {
		raw = p.cur.readUntil(func(b byte) bool { return b == '}' })
	} else {
		raw = p.source[p.cur.pos:boundary]
		p.cur.pos = boundary
	}
	expr := p.parseExpressionAt(raw, exprStart)

	node := &tmpl.Node{Type: tmpl.AwaitBlockNode, Expr: expr, Phase: tmpl.AwaitPending}
	pending := &tmpl.Node{Type: tmpl.FragmentNode}
	node.AwaitPending = pending
	current := pending

	switch kind {
	case "then":
		p.cur.pos += len("then")
		current, node.Phase = p.finishAwaitThen(node)
	case "catch":
		p.cur.pos += len("catch")
		current, node.Phase = p.finishAwaitCatch(node)
	}

	p.cur.allowWhitespace()
	p.cur.eatRequired("}", p)
	node.Span = loc.Span{Start: start, End: p.cur.pos}
	p.appendNode(node)
	p.stack = append(p.stack, &frame{kind: frameAwaitBlock, node: node, open: node.Span, current: current})
}

// finishAwaitThen reads an optional value pattern after `then` and
// returns the fresh then-fragment to use as the frame's current sink.
func (p *Parser) finishAwaitThen(node *tmpl.Node) (*tmpl.Node, tmpl.AwaitPhase) {
	p.cur.allowWhitespace()
	if p.cur.peek() != '}' {
		patStart := p.cur.pos
		patRaw := p.cur.readBalancedUntilAny(map[byte]bool{'}': true})
		node.AwaitValue = p.parsePatternAt(patRaw, patStart)
	}
	thenFrag := &tmpl.Node{Type: tmpl.FragmentNode}
	node.AwaitThen = thenFrag
	return thenFrag, tmpl.AwaitThen
}

func (p *Parser) finishAwaitCatch(node *tmpl.Node) (*tmpl.Node, tmpl.AwaitPhase) {
	p.cur.allowWhitespace()
	if p.cur.peek() != '}' {
		patStart := p.cur.pos
		patRaw := p.cur.readBalancedUntilAny(map[byte]bool{'}': true})
		node.AwaitError = p.parsePatternAt(patRaw, patStart)
	}
	catchFrag := &tmpl.Node{Type: tmpl.FragmentNode}
	node.AwaitCatch = catchFrag
	return catchFrag, tmpl.AwaitCatch
}

func (p *Parser) openKeyBlock(start int) {
	p.cur.allowWhitespace()
	exprStart := p.cur.pos
	raw := p.readExpressionSliceUntilBrace()
	expr := p.parseExpressionAt(raw, exprStart)
	p.cur.eatRequired("}", p)

	node := &tmpl.Node{Type: tmpl.KeyBlockNode, Expr: expr, Span: loc.Span{Start: start, End: p.cur.pos}}
	p.appendNode(node)
	p.stack = append(p.stack, &frame{kind: frameKeyBlock, node: node, open: node.Span, current: node})
}

func (p *Parser) openSnippetBlock(start int) {
	p.cur.allowWhitespace()
	name := p.cur.readIdentifier()
	p.cur.allowWhitespace()

	node := &tmpl.Node{Type: tmpl.SnippetBlockNode, SnippetName: name}

	if p.cur.peek() == '<' {
		p.cur.pos++
		tp := p.cur.readBalancedUntilAny(map[byte]bool{'>': true})
		node.SnippetTypeParams = tp
		p.cur.eatRequired(">", p)
		p.cur.allowWhitespace()
	}

	if p.cur.eat("(") {
		paramStart := p.cur.pos
		raw := p.cur.readBalancedUntilAny(map[byte]bool{')': true})
		node.SnippetParams = p.parseParamsAt(raw, paramStart)
		p.cur.eatRequired(")", p)
		p.cur.allowWhitespace()
	}

	p.cur.eatRequired("}", p)
	node.Span = loc.Span{Start: start, End: p.cur.pos}
	p.appendNode(node)
	p.stack = append(p.stack, &frame{kind: frameSnippetBlock, node: node, open: node.Span, current: node})
}

// parseBlockContinuation handles `{:else}`, `{:else if ...}`, `{:then
// ...}`, and `{:catch ...}`, each of which mutates the top frame in
// place rather than pushing a new one.
func (p *Parser) parseBlockContinuation() {
	start := p.cur.pos
	p.cur.pos += 2 // "{:"
	keyword := p.cur.readIdentifier()
	span := loc.Span{Start: start, End: p.cur.pos}

	f := p.top()
	if f == nil {
		p.appendError(loc.ERROR_UNEXPECTED_BLOCK_CLOSE, "Unexpected '{:"+keyword+"}'", span)
		p.skipToBrace()
		return
	}

	switch keyword {
	case "else":
		p.continueElse(f, span)
	case "then":
		p.continueAwaitThen(f, span)
	case "catch":
		p.continueAwaitCatch(f, span)
	default:
		p.appendError(loc.ERROR_UNEXPECTED_BLOCK_CLOSE, "Unexpected '{:"+keyword+"}'", span)
		p.skipToBrace()
	}
}

func (p *Parser) continueElse(f *frame, span loc.Span) {
	p.cur.allowWhitespace()

	switch f.kind {
	case frameIfBlock:
		if p.matchElseIf() {
			p.cur.pos += 2 // "if"
			p.cur.allowWhitespace()
			exprStart := p.cur.pos
			raw := p.readExpressionSliceUntilBrace()
			expr := p.parseExpressionAt(raw, exprStart)
			p.cur.eatRequired("}", p)

			chainStart := span.Start
			newIf := &tmpl.Node{Type: tmpl.IfBlockNode, Expr: expr, IsElseIf: true, Span: loc.Span{Start: chainStart, End: p.cur.pos}}
			consequent := &tmpl.Node{Type: tmpl.FragmentNode}
			newIf.IfConsequent = consequent
			f.ifChain.IfAlternate = newIf
			f.ifChain = newIf
			f.current = consequent
			return
		}
		p.cur.eatRequired("}", p)
		alt := &tmpl.Node{Type: tmpl.FragmentNode}
		f.ifChain.IfAlternate = alt
		f.current = alt
	case frameEachBlock:
		p.cur.eatRequired("}", p)
		fallback := &tmpl.Node{Type: tmpl.FragmentNode}
		f.node.Fallback = fallback
		f.current = fallback
	default:
		p.appendError(loc.ERROR_UNEXPECTED_BLOCK_CLOSE, "Unexpected '{:else}'", span)
		p.skipToBrace()
	}
}

// matchElseIf reports whether the cursor is at `if` followed by a word
// boundary, distinguishing `{:else if x}` from a stray `{:else}`.
func (p *Parser) matchElseIf() bool {
	if !p.cur.matchStr("if") {
		return false
	}
	after := p.cur.peekAt(2)
	return after == 0 || isASCIISpace(after) || after == '('
}

func (p *Parser) continueAwaitThen(f *frame, span loc.Span) {
	if f.kind != frameAwaitBlock {
		p.appendError(loc.ERROR_UNEXPECTED_BLOCK_CLOSE, "Unexpected '{:then}'", span)
		p.skipToBrace()
		return
	}
	current, phase := p.finishAwaitThen(f.node)
	p.cur.eatRequired("}", p)
	f.node.Phase = phase
	f.current = current
}

func (p *Parser) continueAwaitCatch(f *frame, span loc.Span) {
	if f.kind != frameAwaitBlock {
		p.appendError(loc.ERROR_UNEXPECTED_BLOCK_CLOSE, "Unexpected '{:catch}'", span)
		p.skipToBrace()
		return
	}
	current, phase := p.finishAwaitCatch(f.node)
	p.cur.eatRequired("}", p)
	f.node.Phase = phase
	f.current = current
}

// parseBlockClose handles `{/kind}`, unwinding exactly the matching
// frame. A mismatch is a strict-mode error; in loose mode the parser
// still closes the nearest frame whose kind matches, tolerating
// misnesting the way an unclosed-tag recovery does.
func (p *Parser) parseBlockClose() {
	start := p.cur.pos
	p.cur.pos += 2 // "{/"
	name := p.cur.readIdentifier()
	p.cur.allowWhitespace()
	p.cur.eatRequired("}", p)
	span := loc.Span{Start: start, End: p.cur.pos}

	kind, ok := blockCloseKind[name]
	if !ok {
		p.appendError(loc.ERROR_UNEXPECTED_BLOCK_CLOSE, "Unknown closing tag '{/"+name+"}'", span)
		return
	}

	f := p.top()
	if f != nil && f.kind == kind {
		f.node.Span = loc.Span{Start: f.node.Span.Start, End: p.cur.pos}
		p.stack = p.stack[:len(p.stack)-1]
		return
	}

	if !p.loose {
		p.appendError(loc.ERROR_UNEXPECTED_BLOCK_CLOSE, "Mismatched closing tag '{/"+name+"}'", span)
		return
	}

	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].kind == kind {
			for len(p.stack) > i {
				top := p.stack[len(p.stack)-1]
				top.node.Span = loc.Span{Start: top.node.Span.Start, End: p.cur.pos}
				p.stack = p.stack[:len(p.stack)-1]
			}
			return
		}
	}
}

func (p *Parser) parseSpecialTag() {
	start := p.cur.pos
	p.cur.pos += 2 // "{@"
	name := p.cur.readIdentifier()

	switch name {
	case "html":
		p.parseHtmlTag(start)
	case "debug":
		p.parseDebugTag(start)
	case "const":
		p.parseConstTag(start)
	case "render":
		p.parseRenderTag(start)
	default:
		p.appendError(loc.ERROR_EXPECTED_TOKEN, "Unknown tag '@"+name+"'", loc.Span{Start: start, End: p.cur.pos})
		p.skipToBrace()
	}
}

func (p *Parser) parseHtmlTag(start int) {
	p.cur.allowWhitespace()
	exprStart := p.cur.pos
	raw := p.readExpressionSliceUntilBrace()
	expr := p.parseExpressionAt(raw, exprStart)
	p.cur.eatRequired("}", p)
	p.appendNode(&tmpl.Node{Type: tmpl.HtmlTagNode, Expr: expr, Span: loc.Span{Start: start, End: p.cur.pos}})
}

// parseDebugTag reads zero or more comma-separated identifiers; wrapping
// them through parseExpressionAt's `(...)` expression form parses a
// comma list as a JS sequence expression without any special-casing here.
func (p *Parser) parseDebugTag(start int) {
	p.cur.allowWhitespace()
	exprStart := p.cur.pos
	raw := p.readExpressionSliceUntilBrace()
	expr := p.parseExpressionAt(raw, exprStart)
	p.cur.eatRequired("}", p)
	p.appendNode(&tmpl.Node{Type: tmpl.DebugTagNode, Expr: expr, Span: loc.Span{Start: start, End: p.cur.pos}})
}

func (p *Parser) parseConstTag(start int) {
	p.cur.allowWhitespace()
	declStart := p.cur.pos
	raw := p.readExpressionSliceUntilBrace()
	expr := p.parseDeclarationAt(raw, declStart)
	p.cur.eatRequired("}", p)
	p.appendNode(&tmpl.Node{Type: tmpl.ConstTagNode, Expr: expr, Span: loc.Span{Start: start, End: p.cur.pos}})
}

func (p *Parser) parseRenderTag(start int) {
	p.cur.allowWhitespace()
	exprStart := p.cur.pos
	raw := p.readExpressionSliceUntilBrace()
	expr := p.parseExpressionAt(raw, exprStart)
	p.cur.eatRequired("}", p)
	p.appendNode(&tmpl.Node{Type: tmpl.RenderTagNode, Expr: expr, Span: loc.Span{Start: start, End: p.cur.pos}})
}
