package js

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/ulight-go/ulight"
)

func TestLookupKeyword(t *testing.T) {
	info, ok := lookupKeyword([]byte("return"))
	test.That(t, ok)
	test.T(t, info.typ, ReturnToken)
	test.T(t, info.kind, ulight.KindKeywordControl)

	info, ok = lookupKeyword([]byte("class"))
	test.That(t, ok)
	test.T(t, info.kind, ulight.KindKeywordOther)

	_, ok = lookupKeyword([]byte("int"))
	test.That(t, !ok, "int is not a JS keyword")

	_, ok = lookupKeyword([]byte(""))
	test.That(t, !ok)
}

func TestTokenTableSorted(t *testing.T) {
	for i := 1; i < len(tokenTable); i++ {
		test.That(t, tokenTable[i-1].literal < tokenTable[i].literal, "table must be sorted by literal bytes")
	}
}

func TestRegexAllowedAfter(t *testing.T) {
	test.That(t, regexAllowedAfter[ReturnToken])
	test.That(t, regexAllowedAfter[TypeofToken])
	test.That(t, !regexAllowedAfter[ThisToken])
}

func TestMatchOperatorOrPunctuationKinds(t *testing.T) {
	op, ok := matchOperatorOrPunctuation([]byte("{"))
	test.That(t, ok)
	test.T(t, op.kind, ulight.KindBrace)

	op, ok = matchOperatorOrPunctuation([]byte(";"))
	test.That(t, ok)
	test.T(t, op.kind, ulight.KindPunctuation)

	op, ok = matchOperatorOrPunctuation([]byte("+"))
	test.That(t, ok)
	test.T(t, op.kind, ulight.KindOperator)
}
