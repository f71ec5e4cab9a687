// Package chars provides character classification for the JS lexer: ASCII
// digit predicates for the four numeric-literal bases, the JS notion of
// whitespace / identifier-start / identifier-part code points, and a
// UTF-8 decode helper the driver uses when it has to report an invalid
// byte as a single-byte error token.
package chars

import "unicode"

// identifierStart and identifierContinue mirror ECMAScript's ID_Start /
// ID_Continue Unicode property sets.
var identifierStart = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Other_ID_Start,
}

var identifierContinue = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
	unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Start, unicode.Other_ID_Continue,
}

// IsASCIIDigit reports whether c is a base-10 digit.
func IsASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsASCIIDigitBase reports whether c is a digit of the given base. Only
// bases 2, 8, 10 and 16 are meaningful for JS numeric literals; any other
// base always reports false.
func IsASCIIDigitBase(c byte, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 10:
		return c >= '0' && c <= '9'
	case 16:
		return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
	}
	return false
}

// IsJSWhitespace reports whether r is JS "whitespace" per spec section 4.1:
// space, tab, vertical tab, form feed, no-break space (U+00A0), BOM
// (U+FEFF), any Unicode "space separator" code point, or a line terminator
// (LF, CR, U+2028 LINE SEPARATOR, U+2029 PARAGRAPH SEPARATOR).
func IsJSWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\u00A0', '\uFEFF', '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// IsJSIdentifierStart reports whether r may begin a JS identifier: a letter
// covered by ID_Start, or '$' / '_'.
func IsJSIdentifierStart(r rune) bool {
	if r == '$' || r == '_' {
		return true
	}
	return unicode.IsOneOf(identifierStart, r)
}

// IsJSIdentifierPart reports whether r may continue a JS identifier: a
// letter covered by ID_Continue, '$' / '_', or the zero-width joiner/
// non-joiner (U+200C, U+200D), which ECMAScript explicitly allows
// mid-identifier despite neither being ID_Continue.
func IsJSIdentifierPart(r rune) bool {
	if r == '$' || r == '_' || r == '\u200C' || r == '\u200D' {
		return true
	}
	return unicode.IsOneOf(identifierContinue, r)
}
