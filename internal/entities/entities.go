// Package entities decodes HTML character references the way the
// WHATWG HTML tokenizer does: numeric references (decimal and hex),
// named references with or without a trailing semicolon (longest-prefix
// match against the legacy no-semicolon set), and the Windows-1252
// remapping of the C1 control range, following the WHATWG HTML parsing
// spec's named-character-reference table.
package entities

import "strings"

// windows1252 remaps the C1 control block (0x80-0x9F) numeric references
// onto their Windows-1252 code points, per the HTML parsing spec's
// "numeric character reference end state" table.
var windows1252 = [32]rune{
	8364, 129, 8218, 402, 8222, 8230, 8224, 8225, 710, 8240, 352, 8249, 338, 141, 381, 143,
	144, 8216, 8217, 8220, 8221, 8226, 8211, 8212, 732, 8482, 353, 8250, 339, 157, 382, 376,
}

// validateCode applies the spec's remapping/rejection table to a raw
// numeric character reference code point.
func validateCode(code uint32) uint32 {
	switch {
	case code == 10:
		return 32
	case code < 128:
		return code
	case code <= 159:
		return uint32(windows1252[code-128])
	case code < 55296:
		return code
	case code <= 57343:
		return 0
	case code <= 65535:
		return code
	case code >= 65536 && code <= 131071:
		return code
	case code >= 131072 && code <= 196607:
		return code
	case (code >= 917504 && code <= 917631) || (code >= 917760 && code <= 917999):
		return code
	default:
		return 0
	}
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlphanumeric(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || isDigit(b)
}

// Decode decodes every character reference in html. isAttributeValue
// applies the attribute-context ambiguous-ampersand rule: a legacy
// no-semicolon named reference is only honored if the byte immediately
// following it is not alphanumeric, `_`, or `=` (so `&notin=x` inside an
// attribute stays literal rather than becoming "¬in=x").
func Decode(html string, isAttributeValue bool) string {
	if !strings.ContainsRune(html, '&') {
		return html
	}

	var b strings.Builder
	b.Grow(len(html))
	i := 0
	n := len(html)

	for i < n {
		if html[i] != '&' {
			start := i
			for i < n && html[i] != '&' {
				i++
			}
			b.WriteString(html[start:i])
			continue
		}

		ampPos := i
		i++

		if i >= n {
			b.WriteByte('&')
			break
		}

		switch {
		case html[i] == '#':
			i++
			if i < n && (html[i] == 'x' || html[i] == 'X') {
				i++
				start := i
				for i < n && isHexDigit(html[i]) {
					i++
				}
				if start == i {
					b.WriteString(html[ampPos:i])
					continue
				}
				code := parseUint(html[start:i], 16)
				if i < n && html[i] == ';' {
					i++
				}
				writeCode(&b, code, html[ampPos:i])
			} else {
				start := i
				for i < n && isDigit(html[i]) {
					i++
				}
				if start == i {
					b.WriteString(html[ampPos:i])
					continue
				}
				code := parseUint(html[start:i], 10)
				if i < n && html[i] == ';' {
					i++
				}
				writeCode(&b, code, html[ampPos:i])
			}

		case isAlphanumeric(html[i]):
			nameStart := i
			for i < n && isAlphanumeric(html[i]) {
				i++
			}
			hasSemicolon := i < n && html[i] == ';'
			candidateEnd := i
			if hasSemicolon {
				candidateEnd = i + 1
			}
			candidate := html[nameStart:candidateEnd]

			matchedLen := 0
			var matchedCode uint32

			for l := len(candidate); l >= 1; l-- {
				prefix := candidate[:l]
				code, ok := namedEntities[prefix]
				if !ok {
					continue
				}
				if isAttributeValue && !strings.HasSuffix(prefix, ";") {
					afterPos := nameStart + l
					if afterPos < n {
						next := html[afterPos]
						if isAlphanumeric(next) || next == '_' || next == '=' {
							continue
						}
					}
				}
				matchedLen = l
				matchedCode = code
				break
			}

			if matchedLen > 0 {
				validated := validateCode(matchedCode)
				if validated == 0 {
					b.WriteString(html[ampPos : ampPos+1+matchedLen])
				} else {
					b.WriteRune(rune(validated))
				}
				i = nameStart + matchedLen
			} else {
				b.WriteByte('&')
				i = nameStart
			}

		default:
			b.WriteByte('&')
		}
	}

	return b.String()
}

func writeCode(b *strings.Builder, code uint32, raw string) {
	if code == 0 {
		b.WriteString(raw)
		return
	}
	validated := validateCode(code)
	if validated == 0 || !isValidRune(validated) {
		b.WriteString(raw)
		return
	}
	b.WriteRune(rune(validated))
}

func isValidRune(code uint32) bool {
	return code <= 0x10FFFF && !(code >= 0xD800 && code <= 0xDFFF)
}

func parseUint(s string, base int) uint32 {
	var n uint64
	for _, c := range []byte(s) {
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case base == 16 && c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case base == 16 && c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			continue
		}
		n = n*uint64(base) + d
		if n > 0x10FFFF {
			return 0x110000
		}
	}
	return uint32(n)
}
