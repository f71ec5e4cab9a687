package chars

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestIsASCIIDigitBase(t *testing.T) {
	test.That(t, IsASCIIDigitBase('0', 2), "0 is binary digit")
	test.That(t, IsASCIIDigitBase('1', 2), "1 is binary digit")
	test.That(t, !IsASCIIDigitBase('2', 2), "2 is not binary digit")
	test.That(t, IsASCIIDigitBase('7', 8), "7 is octal digit")
	test.That(t, !IsASCIIDigitBase('8', 8), "8 is not octal digit")
	test.That(t, IsASCIIDigitBase('9', 10), "9 is decimal digit")
	test.That(t, IsASCIIDigitBase('f', 16), "f is hex digit")
	test.That(t, IsASCIIDigitBase('F', 16), "F is hex digit")
	test.That(t, !IsASCIIDigitBase('g', 16), "g is not hex digit")
	test.That(t, !IsASCIIDigitBase('5', 99), "unknown base always false")
}

func TestIsJSWhitespace(t *testing.T) {
	whitespace := []rune{' ', '\t', '\v', '\f', '\u00A0', '\uFEFF', '\n', '\r', '\u2028', '\u2029'}
	for _, r := range whitespace {
		test.That(t, IsJSWhitespace(r), "must be whitespace", r)
	}
	test.That(t, !IsJSWhitespace('a'), "letter is not whitespace")
}

func TestIsJSIdentifier(t *testing.T) {
	test.That(t, IsJSIdentifierStart('$'), "$ starts identifier")
	test.That(t, IsJSIdentifierStart('_'), "_ starts identifier")
	test.That(t, IsJSIdentifierStart('a'), "letter starts identifier")
	test.That(t, !IsJSIdentifierStart('1'), "digit does not start identifier")
	test.That(t, IsJSIdentifierPart('1'), "digit continues identifier")
	test.That(t, IsJSIdentifierPart('\u200C'), "ZWNJ continues identifier")
	test.That(t, IsJSIdentifierPart('\u200D'), "ZWJ continues identifier")
	test.That(t, !IsJSIdentifierPart(' '), "space does not continue identifier")
}
