package parser

import (
	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/cssparser"
	"github.com/tmpllang/compiler/internal/hostbridge"
	"github.com/tmpllang/compiler/internal/loc"
)

// attachFrontmatterAndStyle copies whatever top-level script/style blocks
// parseTopLevelScriptOrStyle accumulated onto root. It runs once, after
// parseFragment has consumed the whole source, since a module-context
// script can legally follow the instance script or the markup fragment.
func (p *Parser) attachFrontmatterAndStyle(root *tmpl.Root) {
	root.Instance = p.instanceNode
	root.Module = p.moduleNode
	root.Style = p.styleNode
	root.Stylesheet = p.stylesheet
}

func isModuleScript(attrs []tmpl.Attribute) bool {
	for _, a := range attrs {
		if a.Kind != tmpl.PlainAttribute {
			continue
		}
		if a.Key == "module" && a.Type == tmpl.BooleanAttribute {
			return true
		}
		if a.Key == "context" && a.Val == "module" {
			return true
		}
	}
	return false
}

func scriptLangTS(attrs []tmpl.Attribute) bool {
	for _, a := range attrs {
		if a.Kind == tmpl.PlainAttribute && a.Key == "lang" && a.Val == "ts" {
			return true
		}
	}
	return false
}

// handleFrontmatterScript builds the FrontmatterNode for a top-level
// <script> block: its body is handed to the host bridge as a full
// program, and the result is filed as either the instance or module
// script depending on its `module`/`context="module"` attribute.
func (p *Parser) handleFrontmatterScript(attrs []tmpl.Attribute, body string, bodyStart, start, end int) {
	module := isModuleScript(attrs)
	if scriptLangTS(attrs) {
		p.tsDialect = true
	}

	node := &tmpl.Node{
		Type:    tmpl.FrontmatterNode,
		Data:    "script",
		Attr:    attrs,
		RawText: body,
		Span:    loc.Span{Start: start, End: end},
	}
	node.Expr = p.parseProgramAt(body, bodyStart)
	p.comments = append(p.comments, hostbridge.CollectComments(body, bodyStart)...)

	if module {
		if p.moduleNode != nil {
			p.appendError(loc.ERROR, "A component can only have one top-level module script", node.Span)
		}
		p.moduleNode = node
		return
	}
	if p.instanceNode != nil {
		p.appendError(loc.ERROR, "A component can only have one top-level instance script", node.Span)
	}
	p.instanceNode = node
}

// handleStyleBlock builds the StyleNode for a top-level <style> block,
// handing its raw body to internal/cssparser and folding any CSS parse
// errors into the component's error list.
func (p *Parser) handleStyleBlock(attrs []tmpl.Attribute, body string, bodyStart, start, end int) {
	node := &tmpl.Node{
		Type:    tmpl.StyleNode,
		Data:    "style",
		Attr:    attrs,
		RawText: body,
		Span:    loc.Span{Start: start, End: end},
	}

	sheet, errs := cssparser.Parse(body)
	p.stylesheet = sheet
	for _, e := range errs {
		if r, ok := e.(*loc.ErrorWithRange); ok {
			p.errors = append(p.errors, &loc.ErrorWithRange{
				Code:       r.Code,
				Text:       r.Text,
				Suggestion: r.Suggestion,
				Range:      loc.Range{Loc: loc.Loc{Start: r.Range.Loc.Start + bodyStart}, Len: r.Range.Len},
			})
			continue
		}
		p.errors = append(p.errors, e)
	}

	if p.styleNode != nil {
		p.appendError(loc.ERROR, "A component can only have one top-level style block", node.Span)
	}
	p.styleNode = node
}
