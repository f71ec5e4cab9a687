package charref

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestMatchNamedReference(t *testing.T) {
	test.T(t, MatchCharacterReference([]byte("&amp;")), 5)
	test.T(t, MatchCharacterReference([]byte("&amp; rest")), 5)
	test.T(t, MatchCharacterReference([]byte("&nbsp;")), 6)
	test.T(t, MatchCharacterReference([]byte("&notanentity;")), 0)
	test.T(t, MatchCharacterReference([]byte("&amp")), 0, "no terminating semicolon")
}

func TestMatchNumericReference(t *testing.T) {
	test.T(t, MatchCharacterReference([]byte("&#169;")), 6)
	test.T(t, MatchCharacterReference([]byte("&#x2014;")), 8)
	test.T(t, MatchCharacterReference([]byte("&#X2014;")), 8)
	test.T(t, MatchCharacterReference([]byte("&#;")), 0, "no digits")
	test.T(t, MatchCharacterReference([]byte("&#x;")), 0, "no hex digits")
	test.T(t, MatchCharacterReference([]byte("&#169")), 0, "no terminating semicolon")
}

func TestMatchCharacterReferenceRejects(t *testing.T) {
	test.T(t, MatchCharacterReference(nil), 0)
	test.T(t, MatchCharacterReference([]byte("")), 0)
	test.T(t, MatchCharacterReference([]byte("plain text")), 0)
	test.T(t, MatchCharacterReference([]byte("&")), 0)
}
