package loc

import "fmt"

// DiagnosticCode is the interchange-stable identifier for a diagnostic.
// Bands group kinds the way a flat const block can: 1000s syntactic
// errors, 1100s rune/semantic, 1200s directive/attribute, 1300s
// options/meta, 1400s css, 2000s warnings (2100s accessibility), 3000s
// info, 4000s hints.
type DiagnosticCode int

const (
	ERROR                             DiagnosticCode = 1000
	ERROR_UNTERMINATED_JS_COMMENT     DiagnosticCode = 1001
	ERROR_FRAGMENT_SHORTHAND_ATTRS    DiagnosticCode = 1002
	ERROR_UNMATCHED_IMPORT            DiagnosticCode = 1003
	ERROR_UNSUPPORTED_SLOT_ATTRIBUTE  DiagnosticCode = 1004

	// Syntactic (parser) errors.
	ERROR_EXPECTED_TOKEN         DiagnosticCode = 1010
	ERROR_UNEXPECTED_EOF         DiagnosticCode = 1011
	ERROR_UNTERMINATED_STRING    DiagnosticCode = 1012
	ERROR_INVALID_TAG_NAME       DiagnosticCode = 1013
	ERROR_ELEMENT_UNCLOSED       DiagnosticCode = 1014
	ERROR_BLOCK_UNCLOSED         DiagnosticCode = 1015
	ERROR_VOID_ELEMENT_CONTENT   DiagnosticCode = 1016
	ERROR_UNEXPECTED_CLOSE_TAG   DiagnosticCode = 1017
	ERROR_DUPLICATE_ATTRIBUTE    DiagnosticCode = 1018
	ERROR_UNEXPECTED_BLOCK_CLOSE DiagnosticCode = 1019
	ERROR_INVALID_SCOPE_ATTR     DiagnosticCode = 1020
	ERROR_NESTING_INVALID_PLACEMENT DiagnosticCode = 1021

	// Semantic rune errors (1100s).
	ERROR_RUNE_INVALID_NAME      DiagnosticCode = 1100
	ERROR_RUNE_INVALID_ARGS      DiagnosticCode = 1101
	ERROR_RUNE_INVALID_SPREAD    DiagnosticCode = 1102
	ERROR_RUNE_INVALID_PLACEMENT DiagnosticCode = 1103
	ERROR_RUNE_DUPLICATE         DiagnosticCode = 1104
	ERROR_RUNE_REMOVED           DiagnosticCode = 1105

	// Directive/attribute errors (1200s).
	ERROR_DIRECTIVE_INVALID_TARGET  DiagnosticCode = 1200
	ERROR_DIRECTIVE_INVALID_VALUE   DiagnosticCode = 1201
	ERROR_DIRECTIVE_INVALID_MOD     DiagnosticCode = 1202
	ERROR_TRANSITION_CONFLICT       DiagnosticCode = 1203
	ERROR_TRANSITION_DUPLICATE      DiagnosticCode = 1204
	ERROR_ANIMATE_DUPLICATE         DiagnosticCode = 1205
	ERROR_ANIMATE_INVALID_PLACEMENT DiagnosticCode = 1206
	ERROR_BINDING_INVALID_TARGET    DiagnosticCode = 1207
	ERROR_BINDING_INVALID_NAME      DiagnosticCode = 1208
	ERROR_BIND_GROUP_MISPLACED      DiagnosticCode = 1209
	ERROR_EVENT_MODIFIER_CONFLICT   DiagnosticCode = 1210
	ERROR_EVENT_MODIFIER_INVALID    DiagnosticCode = 1211

	// Options/meta errors (1300s).
	ERROR_OPTIONS_INVALID_ATTRIBUTE DiagnosticCode = 1300
	ERROR_OPTIONS_INVALID_VALUE     DiagnosticCode = 1301
	ERROR_OPTIONS_DEPRECATED_TAG    DiagnosticCode = 1302
	ERROR_OPTIONS_INVALID_TAG_NAME  DiagnosticCode = 1303
	ERROR_OPTIONS_RESERVED_TAG_NAME DiagnosticCode = 1304
	ERROR_OPTIONS_UNKNOWN_ATTRIBUTE DiagnosticCode = 1305

	// CSS errors (1400s).
	ERROR_CSS_EXPECTED_IDENT    DiagnosticCode = 1400
	ERROR_CSS_EMPTY_DECLARATION DiagnosticCode = 1401
	ERROR_CSS_INVALID_SELECTOR  DiagnosticCode = 1402

	WARNING                           DiagnosticCode = 2000
	WARNING_UNTERMINATED_HTML_COMMENT DiagnosticCode = 2001
	WARNING_UNCLOSED_HTML_TAG         DiagnosticCode = 2002
	WARNING_DEPRECATED_DIRECTIVE      DiagnosticCode = 2003
	WARNING_IGNORED_DIRECTIVE        DiagnosticCode = 2004
	WARNING_UNSUPPORTED_EXPRESSION   DiagnosticCode = 2005
	WARNING_SET_WITH_CHILDREN       DiagnosticCode = 2006
	WARNING_CANNOT_DEFINE_VARS      DiagnosticCode = 2007
	WARNING_INVALID_SPREAD          DiagnosticCode = 2008
	WARNING_BIDI_CONTROL_CHAR       DiagnosticCode = 2009
	WARNING_NODE_INVALID_PLACEMENT  DiagnosticCode = 2010

	// Accessibility warnings (2100s).
	WARNING_A11Y_DISTRACTING_ELEMENT    DiagnosticCode = 2100
	WARNING_A11Y_ACCESSKEY              DiagnosticCode = 2101
	WARNING_A11Y_AUTOFOCUS               DiagnosticCode = 2102
	WARNING_A11Y_MISPLACED_SCOPE         DiagnosticCode = 2103
	WARNING_A11Y_POSITIVE_TABINDEX       DiagnosticCode = 2104
	WARNING_A11Y_UNKNOWN_ARIA_ATTRIBUTE  DiagnosticCode = 2105
	WARNING_A11Y_HIDDEN_ON_HEADING       DiagnosticCode = 2106
	WARNING_A11Y_ACTIVEDESCENDANT        DiagnosticCode = 2107
	WARNING_A11Y_UNKNOWN_ROLE            DiagnosticCode = 2108
	WARNING_A11Y_ABSTRACT_ROLE           DiagnosticCode = 2109
	WARNING_A11Y_REDUNDANT_ROLE          DiagnosticCode = 2110
	WARNING_A11Y_MISSING_ATTRIBUTE       DiagnosticCode = 2111
	WARNING_A11Y_REDUNDANT_ALT           DiagnosticCode = 2112
	WARNING_A11Y_MOUSE_WITHOUT_KEYBOARD  DiagnosticCode = 2113

	INFO DiagnosticCode = 3000
	HINT DiagnosticCode = 4000
)

// DiagnosticSeverity is an int-keyed severity level, dispatched on by
// internal/handler/handler.go's ErrorToMessage.
type DiagnosticSeverity int

const (
	ErrorType       DiagnosticSeverity = 1
	WarningType     DiagnosticSeverity = 2
	InformationType DiagnosticSeverity = 3
	HintType        DiagnosticSeverity = 4
)

// DiagnosticLocation is the line/column-resolved position of a diagnostic,
// computed on demand from a Range via a Locator.
type DiagnosticLocation struct {
	File   string
	Line   int
	Column int
	Length int
}

// DiagnosticMessage is the user-visible shape of a diagnostic: errors and
// warnings are ordered lists carrying a code, message, and span.
type DiagnosticMessage struct {
	Code     DiagnosticCode
	Text     string
	Location *DiagnosticLocation
	Severity DiagnosticSeverity
}

func (m DiagnosticMessage) Error() string {
	if m.Location != nil {
		return fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, m.Text)
	}
	return m.Text
}

// ErrorWithRange is the concrete error shape every diagnostic in this
// package is built from: a byte Range plus a human message, optionally a
// fix-it Suggestion, and a stable Code for the interchange format.
type ErrorWithRange struct {
	Code       DiagnosticCode
	Text       string
	Range      Range
	Suggestion string
}

func (e *ErrorWithRange) Error() string {
	return e.Text
}

// ToMessage renders the error against a resolved location.
func (e *ErrorWithRange) ToMessage(location *DiagnosticLocation) DiagnosticMessage {
	text := e.Text
	if e.Suggestion != "" {
		text = fmt.Sprintf("%s (%s)", text, e.Suggestion)
	}
	return DiagnosticMessage{
		Code:     e.Code,
		Text:     text,
		Location: location,
	}
}
