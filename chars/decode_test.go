package chars

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestDecodeRune(t *testing.T) {
	r, size, ok := DecodeRune([]byte("a"))
	test.That(t, ok, "ascii decodes ok")
	test.T(t, r, 'a')
	test.T(t, size, 1)

	r, size, ok = DecodeRune([]byte("ébc"))
	test.That(t, ok, "multi-byte decodes ok")
	test.T(t, r, 'é')
	test.T(t, size, 2)

	_, size, ok = DecodeRune([]byte{0xff})
	test.That(t, !ok, "invalid byte reports not ok")
	test.T(t, size, 1, "invalid byte still advances by exactly one")

	_, _, ok = DecodeRune(nil)
	test.That(t, !ok, "empty slice reports not ok")
}
