package parser

import (
	"context"
	"strings"

	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/loc"
)

// parseExpressionAt wraps the host bridge's expression parser, reporting
// a syntax error against raw's span and, in loose mode, synthesizing a
// zero-width identifier expression so downstream passes still have a
// non-nil ExprNode to walk (§4.10's loose-mode recovery: "synthesizing
// an empty identifier expression with a zero-width span").
func (p *Parser) parseExpressionAt(raw string, offset int) *tmpl.ExprNode {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return &tmpl.ExprNode{Span: loc.Span{Start: offset, End: offset}, Raw: ""}
	}
	expr, err := p.bridge.ParseExpression(context.Background(), raw, offset)
	if err != nil {
		p.appendError(loc.ERROR_EXPECTED_TOKEN, "Invalid expression: "+err.Error(), loc.Span{Start: offset, End: offset + len(raw)})
		if p.loose {
			return &tmpl.ExprNode{Span: loc.Span{Start: offset, End: offset}, Raw: ""}
		}
		return nil
	}
	return expr
}

func (p *Parser) parsePatternAt(raw string, offset int) *tmpl.ExprNode {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	expr, err := p.bridge.ParsePattern(context.Background(), raw, offset)
	if err != nil {
		p.appendError(loc.ERROR_EXPECTED_TOKEN, "Invalid binding pattern: "+err.Error(), loc.Span{Start: offset, End: offset + len(raw)})
		return nil
	}
	return expr
}

func (p *Parser) parseParamsAt(raw string, offset int) *tmpl.ExprNode {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	expr, err := p.bridge.ParseParams(context.Background(), raw, offset)
	if err != nil {
		p.appendError(loc.ERROR_EXPECTED_TOKEN, "Invalid parameter list: "+err.Error(), loc.Span{Start: offset, End: offset + len(raw)})
		return nil
	}
	return expr
}

func (p *Parser) parseProgramAt(raw string, offset int) *tmpl.ExprNode {
	expr, err := p.bridge.ParseProgram(context.Background(), raw, offset)
	if err != nil {
		p.appendError(loc.ERROR_EXPECTED_TOKEN, "Invalid script: "+err.Error(), loc.Span{Start: offset, End: offset + len(raw)})
		return nil
	}
	return expr
}

// parseDeclarationAt wraps raw as `const <raw>` for @const's variable
// declaration form, per §4.5's VarDecl mode.
func (p *Parser) parseDeclarationAt(raw string, offset int) *tmpl.ExprNode {
	trimmed := strings.TrimSpace(raw)
	hasKeyword := strings.HasPrefix(trimmed, "const ") || strings.HasPrefix(trimmed, "let ") || strings.HasPrefix(trimmed, "var ")
	if hasKeyword {
		return p.parseProgramAt(raw, offset)
	}
	wrapped := "const " + raw
	expr, err := p.bridge.ParseProgram(context.Background(), wrapped, offset-len("const "))
	if err != nil {
		p.appendError(loc.ERROR_EXPECTED_TOKEN, "Invalid declaration: "+err.Error(), loc.Span{Start: offset, End: offset + len(raw)})
		return nil
	}
	return expr
}
