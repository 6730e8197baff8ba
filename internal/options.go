package tmpl

import (
	"regexp"
	"strings"

	"github.com/tmpllang/compiler/internal/loc"
)

// spanRange converts a byte Span into the Range shape loc.ErrorWithRange
// expects.
func spanRange(s loc.Span) loc.Range {
	return loc.Range{Loc: loc.Loc{Start: s.Start}, Len: s.End - s.Start}
}

// NamespaceRef is the resolved `namespace` option of an OptionsRecord.
type NamespaceRef uint32

const (
	HtmlNamespace NamespaceRef = iota
	SvgNamespace
	MathmlNamespace
)

// CssMode is the resolved `css` option: whether scoped styles are left
// for the consumer to inject themselves.
type CssMode uint32

const (
	CssInjectedNone CssMode = iota
	CssInjected
)

// ShadowMode is the `customElement.shadow` suboption.
type ShadowMode uint32

const (
	ShadowOpen ShadowMode = iota
	ShadowNone
)

// PropType is the `customElement.props.<name>.type` suboption.
type PropType uint32

const (
	PropTypeString PropType = iota
	PropTypeNumber
	PropTypeBoolean
	PropTypeArray
	PropTypeObject
)

// CustomElementProp describes one entry of `customElement.props`.
type CustomElementProp struct {
	Attribute string
	Reflect   *bool
	Type      *PropType
}

// CustomElementOptions is the parsed `customElement` option.
type CustomElementOptions struct {
	Tag    string
	Shadow *ShadowMode
	Props  map[string]CustomElementProp
	Extend *ExprNode
}

// OptionsRecord is the structured form of a `svelte:options`-equivalent
// element, generalizing a raw-attribute element into a typed record the
// way internal/transform/transform.go's AddComponentProps re-interprets a
// raw element's attributes into a typed prop list.
type OptionsRecord struct {
	Span loc.Span

	Runes              *bool
	Immutable          *bool
	Accessors          *bool
	PreserveWhitespace *bool
	Namespace          *NamespaceRef
	Css                *CssMode
	CustomElement      *CustomElementOptions
}

// validTagName matches the WHATWG custom-element-name grammar (a lower-case
// ASCII letter, PCENChar*, a literal hyphen, PCENChar*); the ASCII subset is
// enough for our tag validation, unicode PCENChar ranges are accepted too.
var validTagName = regexp.MustCompile(`^[a-z][a-z0-9_.\x{B7}\x{C0}-\x{D6}\x{D8}-\x{F6}\x{F8}-\x{37D}\x{37F}-\x{1FFF}\x{200C}\x{200D}\x{203F}\x{2040}\x{2070}-\x{218F}\x{2C00}-\x{2FEF}\x{3001}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFFD}-]*-[a-z0-9_.\x{B7}\x{C0}-\x{D6}\x{D8}-\x{F6}\x{F8}-\x{37D}\x{37F}-\x{1FFF}\x{200C}\x{200D}\x{203F}\x{2040}\x{2070}-\x{218F}\x{2C00}-\x{2FEF}\x{3001}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFFD}]*$`)

var reservedTagNames = map[string]bool{
	"annotation-xml":   true,
	"color-profile":    true,
	"font-face":        true,
	"font-face-src":    true,
	"font-face-uri":    true,
	"font-face-format": true,
	"font-face-name":   true,
	"missing-glyph":    true,
}

func validateTagName(tag string, span loc.Span, h diagnosticSink) {
	if tag == "" {
		h.AppendError(&loc.ErrorWithRange{
			Code: loc.ERROR_OPTIONS_INVALID_TAG_NAME,
			Text: "Invalid custom element tag name",
			Range: spanRange(span),
		})
		return
	}
	if !validTagName.MatchString(tag) {
		h.AppendError(&loc.ErrorWithRange{
			Code: loc.ERROR_OPTIONS_INVALID_TAG_NAME,
			Text: "Invalid custom element tag name",
			Range: spanRange(span),
		})
		return
	}
	if reservedTagNames[tag] {
		h.AppendError(&loc.ErrorWithRange{
			Code: loc.ERROR_OPTIONS_RESERVED_TAG_NAME,
			Text: "Reserved custom element tag name",
			Range: spanRange(span),
		})
	}
}

// diagnosticSink is the narrow slice of *handler.Handler that this file
// needs, kept local to avoid an import cycle (internal/handler does not
// depend on this package).
type diagnosticSink interface {
	AppendError(err error)
}

func boolValue(a Attribute) (bool, bool) {
	switch a.Type {
	case BooleanAttribute:
		return true, true
	case ExpressionAttribute:
		if a.Expr != nil {
			switch strings.TrimSpace(a.Expr.Raw) {
			case "true":
				return true, true
			case "false":
				return false, true
			}
		}
	}
	return false, false
}

func staticStringValue(a Attribute) (string, bool) {
	switch a.Type {
	case BooleanAttribute:
		return "", false
	case ExpressionAttribute:
		if a.Expr != nil {
			return stringLiteralValue(a.Expr.Raw)
		}
	case SequenceAttribute:
		if len(a.Sequence) == 1 {
			if a.Sequence[0].IsExpression {
				if a.Sequence[0].Expr != nil {
					return stringLiteralValue(a.Sequence[0].Expr.Raw)
				}
				return "", false
			}
			return a.Sequence[0].Text, true
		}
	}
	return a.Val, a.Val != ""
}

// stringLiteralValue reports whether raw is a single- or double-quoted
// string literal, returning its unquoted contents.
func stringLiteralValue(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'') && raw[len(raw)-1] == raw[0] {
		return raw[1 : len(raw)-1], true
	}
	return "", false
}

// ReadOptions extracts an OptionsRecord from a raw `<svelte:options>`-kind
// element's attributes, reporting any malformed option via h. Mirrors
// original_source's read_options: unknown attribute names, non-boolean
// values for boolean options, and a deprecated `tag` option are all
// reported but do not stop extraction of the remaining attributes.
func ReadOptions(el *Node, h diagnosticSink) *OptionsRecord {
	rec := &OptionsRecord{Span: el.Span}

	for _, attr := range el.Attr {
		if attr.Kind != PlainAttribute {
			h.AppendError(&loc.ErrorWithRange{
				Code:  loc.ERROR_OPTIONS_INVALID_ATTRIBUTE,
				Text:  "Invalid attribute on options element",
				Range: spanRange(attr.Span),
			})
			continue
		}

		switch attr.Key {
		case "runes":
			if v, ok := boolValue(attr); ok {
				rec.Runes = &v
			} else {
				h.AppendError(optionValueError(attr, `Expected true or false`))
			}
		case "immutable":
			if v, ok := boolValue(attr); ok {
				rec.Immutable = &v
			} else {
				h.AppendError(optionValueError(attr, `Expected true or false`))
			}
		case "accessors":
			if v, ok := boolValue(attr); ok {
				rec.Accessors = &v
			} else {
				h.AppendError(optionValueError(attr, `Expected true or false`))
			}
		case "preserveWhitespace":
			if v, ok := boolValue(attr); ok {
				rec.PreserveWhitespace = &v
			} else {
				h.AppendError(optionValueError(attr, `Expected true or false`))
			}
		case "namespace":
			if s, ok := staticStringValue(attr); ok {
				ns, valid := parseNamespace(s)
				if valid {
					rec.Namespace = &ns
				} else {
					h.AppendError(optionValueError(attr, `Expected "html", "mathml" or "svg"`))
				}
			} else {
				h.AppendError(optionValueError(attr, `Expected "html", "mathml" or "svg"`))
			}
		case "css":
			if s, ok := staticStringValue(attr); ok && s == "injected" {
				mode := CssInjected
				rec.Css = &mode
			} else {
				h.AppendError(optionValueError(attr, `Expected "injected"`))
			}
		case "customElement":
			rec.CustomElement = readCustomElement(attr, h)
		case "tag":
			h.AppendError(&loc.ErrorWithRange{
				Code:  loc.ERROR_OPTIONS_DEPRECATED_TAG,
				Text:  "The 'tag' option is deprecated. Use 'customElement' instead.",
				Range: spanRange(attr.Span),
			})
		default:
			h.AppendError(&loc.ErrorWithRange{
				Code:  loc.ERROR_OPTIONS_UNKNOWN_ATTRIBUTE,
				Text:  "Unknown attribute '" + attr.Key + "'",
				Range: spanRange(attr.Span),
			})
		}
	}

	return rec
}

func optionValueError(attr Attribute, text string) error {
	return &loc.ErrorWithRange{
		Code:  loc.ERROR_OPTIONS_INVALID_VALUE,
		Text:  text,
		Range: spanRange(attr.Span),
	}
}

func parseNamespace(s string) (NamespaceRef, bool) {
	switch s {
	case "svg", "http://www.w3.org/2000/svg":
		return SvgNamespace, true
	case "mathml", "http://www.w3.org/1998/Math/MathML":
		return MathmlNamespace, true
	case "html":
		return HtmlNamespace, true
	default:
		return HtmlNamespace, false
	}
}

// readCustomElement handles `customElement="tag-name"` and
// `customElement={{ tag, shadow, props, extend }}` forms. For the object
// form the whole expression is stored in Extend; its tag, shadow and props
// entries are not read, so Tag, Shadow and Props stay unset.
func readCustomElement(attr Attribute, h diagnosticSink) *CustomElementOptions {
	if s, ok := staticStringValue(attr); ok {
		validateTagName(s, attr.Span, h)
		return &CustomElementOptions{Tag: s}
	}
	if attr.Type == ExpressionAttribute && attr.Expr != nil {
		raw := strings.TrimSpace(attr.Expr.Raw)
		if raw == "null" {
			return nil
		}
		if strings.HasPrefix(raw, `"`) || strings.HasPrefix(raw, "'") {
			tag := strings.Trim(raw, `"'`)
			validateTagName(tag, attr.Span, h)
			return &CustomElementOptions{Tag: tag}
		}
		if strings.HasPrefix(raw, "{") {
			return &CustomElementOptions{Extend: attr.Expr}
		}
	}
	h.AppendError(&loc.ErrorWithRange{
		Code:  loc.ERROR_OPTIONS_INVALID_VALUE,
		Text:  "Invalid customElement value",
		Range: spanRange(attr.Span),
	})
	return nil
}
