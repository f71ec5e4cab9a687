package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestMatchWhitespace(t *testing.T) {
	test.T(t, matchWhitespace([]byte(" \t\n x")), 4)
	test.T(t, matchWhitespace([]byte("x")), 0)
}

func TestMatchLineComment(t *testing.T) {
	test.T(t, matchLineComment([]byte("// hi\nx")), 5)
	test.T(t, matchLineComment([]byte("// hi")), 5)
	test.T(t, matchLineComment([]byte("/* not */")), 0)
}

func TestMatchBlockComment(t *testing.T) {
	c := matchBlockComment([]byte("/*a*/x"))
	test.T(t, c.length, 5)
	test.That(t, c.isTerminated)

	c = matchBlockComment([]byte("/*a"))
	test.T(t, c.length, 3)
	test.That(t, !c.isTerminated)
}

func TestMatchHashbangComment(t *testing.T) {
	test.T(t, matchHashbangComment([]byte("#!/usr/bin/env node\nx"), true), 19)
	test.T(t, matchHashbangComment([]byte("#!/usr/bin/env node\nx"), false), 0)
	test.T(t, matchHashbangComment([]byte("x"), true), 0)
}

func TestMatchStringLiteral(t *testing.T) {
	r := matchStringLiteral([]byte(`"abc"x`))
	test.T(t, r.length, 5)
	test.That(t, r.terminated)

	r = matchStringLiteral([]byte(`"abc`))
	test.T(t, r.length, 4)
	test.That(t, !r.terminated)

	r = matchStringLiteral([]byte(`'a\'b'x`))
	test.T(t, r.length, 6)
	test.That(t, r.terminated)

	r = matchStringLiteral([]byte("\"abc\ndef\""))
	test.That(t, !r.terminated, "raw newline ends an unterminated string")
}

func TestMatchDigits(t *testing.T) {
	d := matchDigits([]byte("1_000_000n"), 10)
	test.T(t, d.length, 9)
	test.That(t, !d.erroneous)

	d = matchDigits([]byte("1__2"), 10)
	test.T(t, d.length, 4)
	test.That(t, d.erroneous, "doubled underscore is erroneous")

	d = matchDigits([]byte("_12"), 10)
	test.That(t, d.erroneous, "leading underscore is erroneous")
}

func TestMatchNumericLiteral(t *testing.T) {
	n := matchNumericLiteral([]byte("1_000_000n"))
	test.T(t, n.length, len("1_000_000n"))
	test.That(t, !n.erroneous)

	n = matchNumericLiteral([]byte("0b12"))
	test.T(t, n.length, 3, "matcher stops at the illegal digit 2")
	test.That(t, n.erroneous, "a numeric literal directly abutting another digit is erroneous")

	n = matchNumericLiteral([]byte(".5"))
	test.T(t, n.length, 2)
	test.That(t, !n.erroneous)

	n = matchNumericLiteral([]byte("."))
	test.T(t, n.length, 0, "bare dot is not a numeric literal")

	n = matchNumericLiteral([]byte("0x1A"))
	test.T(t, n.length, 4)
	test.That(t, !n.erroneous)

	n = matchNumericLiteral([]byte("1e10"))
	test.T(t, n.length, 4)
	test.That(t, !n.erroneous)

	n = matchNumericLiteral([]byte("1.5e-3"))
	test.T(t, n.length, 6)
	test.That(t, !n.erroneous)
}

func TestMatchName(t *testing.T) {
	test.T(t, matchName([]byte("foo_bar1 "), identifierVariant), 8)
	test.T(t, matchName([]byte("data-x"), jsxIdentifierVariant), 6)
	test.T(t, matchName([]byte("data-x"), identifierVariant), 4, "identifier variant stops before -")
	test.T(t, matchName([]byte("xml:lang"), jsxAttributeNameVariant), 8)
	test.T(t, matchName([]byte("My.Component"), jsxElementNameVariant), 12)
	test.T(t, matchName([]byte("1abc"), identifierVariant), 0, "identifier cannot start with a digit")
}

func TestMatchPrivateIdentifier(t *testing.T) {
	test.T(t, matchPrivateIdentifier([]byte("#name")), 5)
	test.T(t, matchPrivateIdentifier([]byte("#")), 0)
	test.T(t, matchPrivateIdentifier([]byte("name")), 0)
}

func FuzzMatchNumericLiteral(f *testing.F) {
	seeds := []string{
		"0",
		"0b12",
		"1__2",
		"_12",
		".5",
		".",
		"0x1A",
		"1e10",
		"1.5e-3",
		"1_000_000n",
		"0o17",
		"08",
		"1.2.3",
		"1n",
		"0b",
		"0x",
		"1e",
		"1e+",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		b := []byte(s)
		n := matchNumericLiteral(b)
		if n.length < 0 || n.length > len(b) {
			t.Fatalf("matchNumericLiteral(%q) returned out-of-range length %d", s, n.length)
		}
		if n.length == 0 && n.erroneous {
			t.Fatalf("matchNumericLiteral(%q) claims erroneous with no match", s)
		}
	})
}

func TestMatchOperatorOrPunctuation(t *testing.T) {
	op, ok := matchOperatorOrPunctuation([]byte("===x"))
	test.That(t, ok)
	test.T(t, op.literal, "===")

	op, ok = matchOperatorOrPunctuation([]byte("=>"))
	test.That(t, ok)
	test.T(t, op.literal, "=>")

	op, ok = matchOperatorOrPunctuation([]byte(">>>="))
	test.That(t, ok)
	test.T(t, op.literal, ">>>=")

	_, ok = matchOperatorOrPunctuation([]byte(""))
	test.That(t, !ok)
}
