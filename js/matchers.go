package js

import (
	"github.com/ulight-go/ulight/chars"
)

// The matchers below are pure: each takes a byte slice positioned at the
// current scan offset and returns how many leading bytes it claims, never
// touching driver state.

// matchWhitespace returns the longest prefix of s made of JS-whitespace
// code points.
func matchWhitespace(s []byte) int {
	n := 0
	for n < len(s) {
		r, size, ok := chars.DecodeRune(s[n:])
		if !ok || !chars.IsJSWhitespace(r) {
			break
		}
		n += size
	}
	return n
}

// matchLineTerminatorSequence recognizes \n, \r\n, U+2028, U+2029.
func matchLineTerminatorSequence(s []byte) int {
	if len(s) == 0 {
		return 0
	}
	switch s[0] {
	case '\n':
		return 1
	case '\r':
		if len(s) > 1 && s[1] == '\n' {
			return 2
		}
		return 1
	}
	if r, size, ok := chars.DecodeRune(s); ok && (r == '\u2028' || r == '\u2029') {
		return size
	}
	return 0
}

// matchLineContinuation is '\' immediately followed by a line terminator.
func matchLineContinuation(s []byte) int {
	if len(s) == 0 || s[0] != '\\' {
		return 0
	}
	n := matchLineTerminatorSequence(s[1:])
	if n == 0 {
		return 0
	}
	return 1 + n
}

// matchLineComment requires a "//" prefix and consumes through end-of-line
// exclusive of the terminator.
func matchLineComment(s []byte) int {
	if len(s) < 2 || s[0] != '/' || s[1] != '/' {
		return 0
	}
	n := 2
	for n < len(s) {
		if matchLineTerminatorSequence(s[n:]) > 0 {
			break
		}
		n++
	}
	return n
}

// matchHashbangComment matches "#!" through end-of-line, but only at the
// start of the file.
func matchHashbangComment(s []byte, atStartOfFile bool) int {
	if !atStartOfFile || len(s) < 2 || s[0] != '#' || s[1] != '!' {
		return 0
	}
	n := 2
	for n < len(s) {
		if matchLineTerminatorSequence(s[n:]) > 0 {
			break
		}
		n++
	}
	return n
}

// commentResult is the block-comment match result.
type commentResult struct {
	length      int
	isTerminated bool
}

// matchBlockComment requires a "/*" prefix and scans for "*/".
func matchBlockComment(s []byte) commentResult {
	if len(s) < 2 || s[0] != '/' || s[1] != '*' {
		return commentResult{}
	}
	for i := 2; i < len(s); i++ {
		if s[i] == '*' && i+1 < len(s) && s[i+1] == '/' {
			return commentResult{length: i + 2, isTerminated: true}
		}
	}
	return commentResult{length: len(s), isTerminated: false}
}

// stringResult is the string-literal match result.
type stringResult struct {
	length     int
	terminated bool
}

// matchStringLiteral requires a ' or " prefix and scans with a one-byte
// escape flag.
func matchStringLiteral(s []byte) stringResult {
	if len(s) == 0 || (s[0] != '\'' && s[0] != '"') {
		return stringResult{}
	}
	quote := s[0]
	escaped := false
	i := 1
	for i < len(s) {
		c := s[i]
		if escaped {
			escaped = false
			i++
			continue
		}
		if c == '\\' {
			escaped = true
			i++
			continue
		}
		if c == quote {
			return stringResult{length: i + 1, terminated: true}
		}
		if c == '\n' || c == '\r' {
			return stringResult{length: i, terminated: false}
		}
		i++
	}
	return stringResult{length: i, terminated: false}
}

// digitsResult is the digit-run match result.
type digitsResult struct {
	length     int
	erroneous  bool
}

// matchDigits matches the longest prefix of base-N digits with '_'
// separators, where '_' is only valid strictly between two digits.
func matchDigits(s []byte, base int) digitsResult {
	n := 0
	erroneous := false
	lastWasDigit := false
	lastWasUnderscore := false
	for n < len(s) {
		c := s[n]
		if c == '_' {
			if !lastWasDigit {
				erroneous = true
			}
			lastWasUnderscore = true
			lastWasDigit = false
			n++
			continue
		}
		if !chars.IsASCIIDigitBase(c, base) {
			break
		}
		lastWasDigit = true
		lastWasUnderscore = false
		n++
	}
	if n == 0 {
		return digitsResult{}
	}
	if lastWasUnderscore {
		erroneous = true
	}
	return digitsResult{length: n, erroneous: erroneous}
}

// numericResult is the segmented numeric-literal match result.
type numericResult struct {
	length    int
	erroneous bool
}

// matchNumericLiteral implements the segmented recognizer: an
// optional base prefix, an integer digit run, an optional fractional part,
// an optional exponent, and an optional BigInt suffix.
func matchNumericLiteral(s []byte) numericResult {
	if len(s) == 0 || (!chars.IsASCIIDigit(s[0]) && s[0] != '.') {
		return numericResult{}
	}

	base := 10
	n := 0
	hasNonDecimalPrefix := false
	if s[0] == '0' && len(s) > 1 && (s[1] == 'b' || s[1] == 'B' || s[1] == 'o' || s[1] == 'O' || s[1] == 'x' || s[1] == 'X') {
		switch s[1] {
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		case 'x', 'X':
			base = 16
		}
		hasNonDecimalPrefix = true
		n = 2
	}

	erroneous := false
	hasInteger := false
	if n < len(s) {
		d := matchDigits(s[n:], base)
		if d.length > 0 {
			hasInteger = true
			n += d.length
			if d.erroneous {
				erroneous = true
			}
		}
	}
	if hasNonDecimalPrefix && !hasInteger {
		// "0x" with no digit at all: still a match, but erroneous — the
		// caller needs a length to classify even when the literal is broken.
		erroneous = true
	}

	hasFractional := false
	if n < len(s) && s[n] == '.' {
		d := matchDigits(s[n+1:], 10)
		if d.length > 0 {
			hasFractional = true
			if hasNonDecimalPrefix {
				erroneous = true
			}
			if d.erroneous {
				erroneous = true
			}
			n += 1 + d.length
		} else if hasInteger || hasNonDecimalPrefix {
			// dot belongs to the next token (e.g. "1." before ".foo"); do
			// not consume it.
		} else {
			// bare "." with nothing before or after: not a numeric
			// literal at all.
			return numericResult{}
		}
	}

	hasExponent := false
	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		m := n + 1
		if m < len(s) && (s[m] == '+' || s[m] == '-') {
			m++
		}
		d := matchDigits(s[m:], 10)
		if d.length == 0 {
			if hasNonDecimalPrefix {
				erroneous = true
			}
			// exponent letter could belong to the next token; only
			// consume it if we already have erroneous state to report
			// (a non-decimal-prefixed bad exponent still must be
			// reported), otherwise leave it unconsumed.
			if !hasNonDecimalPrefix {
				goto suffix
			}
			n = m
		} else {
			hasExponent = true
			if hasNonDecimalPrefix {
				erroneous = true
			}
			if d.erroneous {
				erroneous = true
			}
			n = m + d.length
		}
	}

suffix:
	if n < len(s) && s[n] == 'n' {
		if hasFractional || hasExponent {
			erroneous = true
		}
		n++
	}

	if n == 0 {
		return numericResult{}
	}
	// ECMAScript forbids a NumericLiteral from being immediately followed
	// by another decimal digit or an identifier-start code point (no
	// separator) — e.g. "0b12" is "0b1" directly abutting "2". The matcher
	// still stops at the illegal digit, but the driver must know to
	// classify the whole abutting span as erroneous.
	if n < len(s) {
		if chars.IsASCIIDigit(s[n]) {
			erroneous = true
		} else if r, _, ok := chars.DecodeRune(s[n:]); ok && chars.IsJSIdentifierStart(r) {
			erroneous = true
		}
	}
	return numericResult{length: n, erroneous: erroneous}
}

// matchNameVariant selects which extra continuation bytes matchName allows
// beyond the standard JS identifier-part set.
type matchNameVariant uint8

const (
	identifierVariant matchNameVariant = iota
	jsxIdentifierVariant
	jsxAttributeNameVariant
	jsxElementNameVariant
)

// matchName matches a name under the given variant's continuation rules.
// The first code point must be a JS identifier start regardless of variant.
func matchName(s []byte, variant matchNameVariant) int {
	r, size, ok := chars.DecodeRune(s)
	if !ok || !chars.IsJSIdentifierStart(r) {
		return 0
	}
	n := size
	for n < len(s) {
		r, size, ok := chars.DecodeRune(s[n:])
		if !ok {
			break
		}
		if chars.IsJSIdentifierPart(r) {
			n += size
			continue
		}
		extra := false
		switch variant {
		case jsxIdentifierVariant:
			extra = r == '-'
		case jsxAttributeNameVariant:
			extra = r == '-' || r == ':'
		case jsxElementNameVariant:
			extra = r == '-' || r == ':' || r == '.'
		}
		if !extra {
			break
		}
		n += size
	}
	return n
}

// matchPrivateIdentifier is '#' followed immediately by a non-empty
// identifier.
func matchPrivateIdentifier(s []byte) int {
	if len(s) == 0 || s[0] != '#' {
		return 0
	}
	n := matchName(s[1:], identifierVariant)
	if n == 0 {
		return 0
	}
	return 1 + n
}

// matchOperatorOrPunctuation performs the longest-match scan over
// punctuationTable of operators and punctuation, longest match wins.
func matchOperatorOrPunctuation(s []byte) (opInfo, bool) {
	var best opInfo
	bestLen := 0
	for _, op := range punctuationTable {
		if len(op.literal) <= bestLen || len(op.literal) > len(s) {
			continue
		}
		if string(s[:len(op.literal)]) == op.literal {
			best = op
			bestLen = len(op.literal)
		}
	}
	if bestLen == 0 {
		return opInfo{}, false
	}
	return best, true
}
