package chars

import "unicode/utf8"

// DecodeRune decodes the first rune in s, reporting its byte length. ok is
// false when s is empty or starts with invalid UTF-8, in which case the
// caller's error-consume path should advance by exactly one byte rather
// than by size.
func DecodeRune(s []byte) (r rune, size int, ok bool) {
	if len(s) == 0 {
		return utf8.RuneError, 0, false
	}
	r, size = utf8.DecodeRune(s)
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, 1, false
	}
	return r, size, true
}
