package js

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/ulight-go/ulight"
)

func TestMatchJSXTagFragment(t *testing.T) {
	c := &countingJSXConsumer{}
	n, tagType, ok, sinkOK := matchJSXTag([]byte("<>rest"), jsxSubsetAll, c)
	test.That(t, ok)
	test.That(t, sinkOK)
	test.T(t, n, 2)
	test.T(t, tagType, jsxFragmentOpening)
	test.T(t, c.length, 2)

	c = &countingJSXConsumer{}
	n, tagType, ok, sinkOK = matchJSXTag([]byte("</>rest"), jsxSubsetAll, c)
	test.That(t, ok)
	test.That(t, sinkOK)
	test.T(t, n, 3)
	test.T(t, tagType, jsxFragmentClosing)
}

func TestMatchJSXTagOpeningAttrs(t *testing.T) {
	c := &countingJSXConsumer{}
	n, tagType, ok, sinkOK := matchJSXTag([]byte(`<div a="1"/>rest`), jsxSubsetAll, c)
	test.That(t, ok)
	test.That(t, sinkOK)
	test.T(t, n, len(`<div a="1"/>`))
	test.T(t, tagType, jsxSelfClosing)
}

func TestMatchJSXTagClosing(t *testing.T) {
	c := &countingJSXConsumer{}
	n, tagType, ok, sinkOK := matchJSXTag([]byte(`</div>rest`), jsxSubsetAll, c)
	test.That(t, ok)
	test.That(t, sinkOK)
	test.T(t, n, len(`</div>`))
	test.T(t, tagType, jsxClosing)
}

func TestMatchJSXTagNonClosingSubsetRejectsClose(t *testing.T) {
	c := &countingJSXConsumer{}
	_, _, ok, sinkOK := matchJSXTag([]byte(`</div>`), jsxSubsetNonClosing, c)
	test.That(t, !ok, "a bare closing tag is not a valid JS-level JSX start")
	test.That(t, sinkOK, "a plain grammar rejection is not a sink failure")
}

func TestMatchJSXTagSpreadAttribute(t *testing.T) {
	c := &countingJSXConsumer{}
	n, tagType, ok, sinkOK := matchJSXTag([]byte(`<div {...props}>rest`), jsxSubsetAll, c)
	test.That(t, ok)
	test.That(t, sinkOK)
	test.T(t, n, len(`<div {...props}>`))
	test.T(t, tagType, jsxOpening)
}

func TestMatchJSXTagRejectsNonTag(t *testing.T) {
	c := &countingJSXConsumer{}
	_, _, ok, sinkOK := matchJSXTag([]byte("< 1"), jsxSubsetAll, c)
	test.That(t, !ok, "a lone '<' followed by an operand is not a JSX tag")
	test.That(t, sinkOK)
}

func TestMatchJSXTagUnterminatedBracedAttributeRejects(t *testing.T) {
	c := &countingJSXConsumer{}
	_, _, ok, sinkOK := matchJSXTag([]byte(`<div a={unterminated`), jsxSubsetAll, c)
	test.That(t, !ok)
	test.That(t, sinkOK)
}

func TestMatchJSXTagEmittingConsumerStopsOnFullSink(t *testing.T) {
	source := []byte(`<div a="1"/>`)
	buf := make([]ulight.Token, 2)
	sink := ulight.NewBoundedTokenSink(buf, false)
	d := &Driver{source: source, sink: sink}
	emitter := &emittingJSXConsumer{d: d, offset: 0}

	_, _, accepted, sinkOK := matchJSXTag(source, jsxSubsetAll, emitter)
	test.That(t, !sinkOK, "the bounded sink fills up before the tag is fully emitted")
	test.That(t, !accepted, "a sink failure is never reported as an accepted parse")
	test.T(t, len(sink.Tokens()), 2, "the sink stops growing past its capacity")
}

func TestHighlightSelfClosingJSXTagBoundedSink(t *testing.T) {
	source := []byte(`<div a="1"/>`)
	buf := make([]ulight.Token, 2)
	sink := ulight.NewBoundedTokenSink(buf, false)

	ok := Highlight(sink, source, ulight.Options{})
	test.That(t, !ok, "Highlight must report failure once the sink stops accepting tokens")
	test.T(t, len(sink.Tokens()), 2)
}
