package parser

import "github.com/tmpllang/compiler/internal/loc"

// errorSink is the narrow append-only interface the cursor and parser
// need; satisfied by *Parser so cursor methods stay decoupled from the
// concrete parser type.
type errorSink interface {
	appendError(code loc.DiagnosticCode, text string, span loc.Span)
}

func (p *Parser) appendError(code loc.DiagnosticCode, text string, span loc.Span) {
	p.errors = append(p.errors, &loc.ErrorWithRange{
		Code:  code,
		Text:  text,
		Range: loc.Range{Loc: loc.Loc{Start: span.Start}, Len: span.End - span.Start},
	})
}

func (p *Parser) appendWarning(code loc.DiagnosticCode, text string, span loc.Span) {
	p.warnings = append(p.warnings, &loc.ErrorWithRange{
		Code:  code,
		Text:  text,
		Range: loc.Range{Loc: loc.Loc{Start: span.Start}, Len: span.End - span.Start},
	})
}

// AppendError satisfies tmpl's unexported diagnosticSink interface so
// ReadOptions can report directly into this parser's error list.
func (p *Parser) AppendError(err error) {
	p.errors = append(p.errors, err)
}
