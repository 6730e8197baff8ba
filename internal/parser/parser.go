package parser

import (
	"context"

	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/cssparser"
	"github.com/tmpllang/compiler/internal/entities"
	"github.com/tmpllang/compiler/internal/hostbridge"
	"github.com/tmpllang/compiler/internal/loc"
)

// Options controls parsing mode. Loose parsing tolerates unclosed tags
// and mismatched block closes, downgrading what would otherwise be
// fatal errors into warnings with a best-effort recovery; strict
// parsing reports every violation as an error.
type Options struct {
	Loose bool
}

// frameKind discriminates the open-but-unclosed stack frames the parser
// tracks between an opening tag/block-open and its close.
type frameKind int

const (
	frameElement frameKind = iota
	frameIfBlock
	frameEachBlock
	frameAwaitBlock
	frameKeyBlock
	frameSnippetBlock
)

// frame is one open element or block on the parser's stack.
type frame struct {
	kind frameKind
	node *tmpl.Node // the node under construction
	tag  string      // element frames: the tag name to match on close
	open loc.Span

	// current is where new children are appended right now: the node
	// itself for an element, each/key/snippet-block body, or a fragment
	// sub-node for if/await phases.
	current *tmpl.Node

	// ifChain is the innermost IfBlockNode of an if/else-if chain that a
	// `{:else}`/`{:else if}` continuation mutates next.
	ifChain *tmpl.Node
}

// Parser drives the fragment/element/tag/text/comment/script/style
// state machine described by the template grammar, producing a
// *tmpl.Root. One Parser parses exactly one component's source text and
// is not reused.
type Parser struct {
	source string
	cur    *cursor
	bridge *hostbridge.Bridge
	loose  bool

	stack []*frame
	root  *tmpl.Node // synthetic top-level fragment

	errors   []error
	warnings []error

	sawInstance bool
	sawModule   bool
	sawStyle    bool
	tsDialect   bool

	comments []tmpl.HostComment
	options  *tmpl.OptionsRecord

	instanceNode *tmpl.Node
	moduleNode   *tmpl.Node
	styleNode    *tmpl.Node
	stylesheet   *cssparser.StyleSheet
}

// Parse parses source as one component file and returns the resulting
// Root plus every accumulated error (nil if none). The warnings recorded
// while parsing (loose-mode unclosed tags, unterminated comments,
// bidirectional control characters) are not part of the result and are
// not reachable through Root; Parse only returns hard errors so
// strict-mode callers can
// treat a non-empty return as failure per §6.3's
// `parse(source, options={loose}) → Result<Root, ParseErrors>`.
func Parse(source string, opts Options) (*tmpl.Root, []error) {
	p := &Parser{
		source: source,
		cur:    newCursor(source, opts.Loose),
		bridge: hostbridge.New(),
		loose:  opts.Loose,
		root:   &tmpl.Node{Type: tmpl.FragmentNode},
	}
	p.parseFragment()

	root := &tmpl.Root{
		Fragment:          p.root,
		Comments:          p.comments,
		TypeScriptDialect: p.tsDialect,
		Source:            source,
	}
	p.attachFrontmatterAndStyle(root)
	root.Options = p.options

	return root, p.errors
}

// top returns the innermost open frame, or nil if the parser is at the
// document's top level.
func (p *Parser) top() *frame {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// appendNode appends n to whichever fragment is currently receiving
// children: the top frame's `current` node, or the document's
// synthetic root fragment when the stack is empty.
func (p *Parser) appendNode(n *tmpl.Node) {
	if f := p.top(); f != nil {
		f.current.AppendChild(n)
		return
	}
	p.root.AppendChild(n)
}

// parseFragment is the entry state: dispatch by first byte, looping
// until EOF. `<` enters element handling, `{` enters tag handling,
// everything else accumulates as text until the next `<` or `{`.
func (p *Parser) parseFragment() {
	for !p.cur.eof() {
		switch p.cur.peek() {
		case '<':
			p.parseElementStart()
		case '{':
			p.parseTag()
		default:
			p.parseText()
		}
	}
	p.closeUnclosedFrames()
}

// parseText accumulates raw bytes until the next `<` or `{`, decoding
// HTML character references on append.
func (p *Parser) parseText() {
	start := p.cur.pos
	raw := p.cur.readUntil(func(b byte) bool { return b == '<' || b == '{' })
	if raw == "" {
		// Lone `<`/`{` that didn't start a valid construct upstream;
		// consume one byte so the loop always makes progress.
		p.cur.pos++
		raw = p.cur.src[start:p.cur.pos]
	}
	decoded := entities.Decode(raw, false)
	p.appendNode(&tmpl.Node{
		Type:    tmpl.TextNode,
		Data:    decoded,
		RawText: raw,
		Span:    loc.Span{Start: start, End: p.cur.pos},
	})
	p.checkBidiControlChars(raw, start)
}

// bidiControlChars are the Unicode bidirectional-control code points
// whose presence in text content is a validation warning (§4.7).
var bidiControlChars = map[rune]bool{
	'‪': true, '‫': true, '‬': true, '‭': true, '‮': true,
	'⁦': true, '⁧': true, '⁨': true, '⁩': true,
}

func (p *Parser) checkBidiControlChars(raw string, base int) {
	for i, r := range raw {
		if bidiControlChars[r] {
			p.appendWarning(loc.WARNING_BIDI_CONTROL_CHAR, "Unexpected bidirectional control character", loc.Span{Start: base + i, End: base + i + len(string(r))})
		}
	}
}

// parseElementStart dispatches the `<` state: comment, close-tag, or
// open-tag.
func (p *Parser) parseElementStart() {
	switch {
	case p.cur.matchStr("<!--"):
		p.parseComment()
	case p.cur.matchStr("</"):
		p.parseCloseTag()
	default:
		p.parseOpenTag()
	}
}

func (p *Parser) parseComment() {
	start := p.cur.pos
	p.cur.pos += 4 // "<!--"
	for !p.cur.eof() && !p.cur.matchStr("-->") {
		p.cur.pos++
	}
	text := p.source[start+4 : p.cur.pos]
	if p.cur.eof() {
		p.appendWarning(loc.WARNING_UNTERMINATED_HTML_COMMENT, "Unterminated HTML comment", loc.Span{Start: start, End: p.cur.pos})
	} else {
		p.cur.pos += 3 // "-->"
	}
	p.appendNode(&tmpl.Node{
		Type: tmpl.CommentNode,
		Data: text,
		Span: loc.Span{Start: start, End: p.cur.pos},
	})
}

func (p *Parser) exprCtx(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
