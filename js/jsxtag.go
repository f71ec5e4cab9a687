package js

import "github.com/ulight-go/ulight"

// jsxTagType identifies which of the five tag shapes a JSX tag grammar
// accepted.
type jsxTagType uint8

const (
	jsxOpening jsxTagType = iota
	jsxClosing
	jsxSelfClosing
	jsxFragmentOpening
	jsxFragmentClosing
)

// jsxTagSubset restricts the grammar to non-closing tags when trial-parsing
// a bare '<' at the JS level: a bare "</…>" at the JS level is not a
// valid JSX start.
type jsxTagSubset uint8

const (
	jsxSubsetAll jsxTagSubset = iota
	jsxSubsetNonClosing
)

// jsxVisitor is the visitor/consumer abstraction matchJSXTag calls
// back into it for every piece of a tag it recognizes. A counting consumer
// only accumulates length for side-effect-free lookahead; an emitting
// consumer pushes tokens to the driver's sink. The grammar is written once
// against this interface and run twice. Every method that may push a token
// reports whether the sink is still accepting emissions, the same way
// Driver.emit does; matchJSXTag stops and propagates false the moment one
// of these returns false.
type jsxVisitor interface {
	openingSymbol(n int) bool
	closingSymbol(n int) bool
	elementName(n int) bool
	attributeName(n int) bool
	attributeEquals(n int) bool
	stringLiteral(r stringResult) bool
	braced(b jsxBracedResult) bool
	whitespace(n int)
	blockComment(c commentResult) bool
	lineComment(n int) bool
	done(tagType jsxTagType)
}

// countingJSXConsumer implements jsxVisitor by only summing consumed
// length, for trial-parsing a tag without committing any tokens. It never
// fails, so every emitting method always returns true.
type countingJSXConsumer struct {
	length int
}

func (c *countingJSXConsumer) openingSymbol(n int) bool  { c.length += n; return true }
func (c *countingJSXConsumer) closingSymbol(n int) bool  { c.length += n; return true }
func (c *countingJSXConsumer) elementName(n int) bool    { c.length += n; return true }
func (c *countingJSXConsumer) attributeName(n int) bool  { c.length += n; return true }
func (c *countingJSXConsumer) attributeEquals(n int) bool { c.length += n; return true }
func (c *countingJSXConsumer) stringLiteral(r stringResult) bool { c.length += r.length; return true }
func (c *countingJSXConsumer) braced(b jsxBracedResult) bool     { c.length += b.length; return true }
func (c *countingJSXConsumer) whitespace(n int)          { c.length += n }
func (c *countingJSXConsumer) blockComment(c2 commentResult) bool { c.length += c2.length; return true }
func (c *countingJSXConsumer) lineComment(n int) bool    { c.length += n; return true }
func (c *countingJSXConsumer) done(jsxTagType)           {}

// emittingJSXConsumer implements jsxVisitor by pushing tokens to the
// driver's sink at increasing absolute offsets, starting at offset.
type emittingJSXConsumer struct {
	d      *Driver
	offset int
	pos    int
}

func (e *emittingJSXConsumer) cur() int { return e.offset + e.pos }

func (e *emittingJSXConsumer) openingSymbol(n int) bool {
	if !e.d.emit(e.cur(), n, ulight.KindPunctuation) {
		return false
	}
	e.pos += n
	return true
}

func (e *emittingJSXConsumer) closingSymbol(n int) bool {
	if !e.d.emit(e.cur(), n, ulight.KindPunctuation) {
		return false
	}
	e.pos += n
	return true
}

func (e *emittingJSXConsumer) elementName(n int) bool {
	if !e.d.emit(e.cur(), n, ulight.KindMarkupTag) {
		return false
	}
	e.pos += n
	return true
}

func (e *emittingJSXConsumer) attributeName(n int) bool {
	if !e.d.emit(e.cur(), n, ulight.KindMarkupTag) {
		return false
	}
	e.pos += n
	return true
}

func (e *emittingJSXConsumer) attributeEquals(n int) bool {
	if !e.d.emit(e.cur(), n, ulight.KindPunctuation) {
		return false
	}
	e.pos += n
	return true
}

func (e *emittingJSXConsumer) stringLiteral(r stringResult) bool {
	if !e.d.emitStringLiteral(e.cur(), r) {
		return false
	}
	e.pos += r.length
	return true
}

func (e *emittingJSXConsumer) braced(b jsxBracedResult) bool {
	e.d.index = e.cur()
	if !e.d.runJSXBraced() {
		return false
	}
	e.pos += b.length
	return true
}

func (e *emittingJSXConsumer) whitespace(n int) {
	e.pos += n
}

func (e *emittingJSXConsumer) blockComment(c commentResult) bool {
	if !e.d.emitBlockComment(e.cur(), c) {
		return false
	}
	e.pos += c.length
	return true
}

func (e *emittingJSXConsumer) lineComment(n int) bool {
	if !e.d.emitLineComment(e.cur(), n) {
		return false
	}
	e.pos += n
	return true
}

func (e *emittingJSXConsumer) done(jsxTagType) {}

// matchJSXTag implements the JSX tag grammar against visitor v, starting at
// s[0] == '<'. It returns the total byte length consumed, the concrete tag
// shape, whether the grammar accepted, and whether the visitor kept
// accepting emissions throughout (always true for a counting consumer;
// false for an emitting consumer the moment its sink fills up). A false
// sinkOK always comes with accepted == false too, since matchJSXTag stops
// the instant a visitor call fails. On a plain grammar rejection the
// visitor may already have been called (callers must discard a counting
// consumer's partial state; re-running against an emitting consumer is
// only ever done after a prior successful counting run, so this is safe in
// practice).
func matchJSXTag(s []byte, subset jsxTagSubset, v jsxVisitor) (length int, tagType jsxTagType, accepted bool, sinkOK bool) {
	if len(s) == 0 || s[0] != '<' {
		return 0, 0, false, true
	}
	if !v.openingSymbol(1) {
		return 0, 0, false, false
	}
	idx := 1

	skipTrivia := func() bool {
		for idx < len(s) {
			if n := matchWhitespace(s[idx:]); n > 0 {
				v.whitespace(n)
				idx += n
				continue
			}
			if n := matchLineComment(s[idx:]); n > 0 {
				if !v.lineComment(n) {
					return false
				}
				idx += n
				continue
			}
			if c := matchBlockComment(s[idx:]); c.length > 0 {
				if !v.blockComment(c) {
					return false
				}
				idx += c.length
				continue
			}
			break
		}
		return true
	}

	if !skipTrivia() {
		return 0, 0, false, false
	}

	if idx < len(s) && s[idx] == '>' {
		if !v.closingSymbol(1) {
			return 0, 0, false, false
		}
		idx++
		v.done(jsxFragmentOpening)
		return idx, jsxFragmentOpening, true, true
	}

	closing := false
	if idx < len(s) && s[idx] == '/' {
		if subset == jsxSubsetNonClosing {
			return 0, 0, false, true
		}
		if !v.closingSymbol(1) {
			return 0, 0, false, false
		}
		idx++
		if !skipTrivia() {
			return 0, 0, false, false
		}
		if idx < len(s) && s[idx] == '>' {
			if !v.closingSymbol(1) {
				return 0, 0, false, false
			}
			idx++
			v.done(jsxFragmentClosing)
			return idx, jsxFragmentClosing, true, true
		}
		closing = true
	}

	if n := matchName(s[idx:], jsxElementNameVariant); n > 0 {
		if !v.elementName(n) {
			return 0, 0, false, false
		}
		idx += n
	}

	for {
		if !skipTrivia() {
			return 0, 0, false, false
		}
		if idx >= len(s) {
			return 0, 0, false, true
		}
		switch {
		case s[idx] == '>':
			if !v.closingSymbol(1) {
				return 0, 0, false, false
			}
			idx++
			tt := jsxOpening
			if closing {
				tt = jsxClosing
			}
			v.done(tt)
			return idx, tt, true, true
		case s[idx] == '/' && idx+1 < len(s) && s[idx+1] == '>':
			if closing {
				return 0, 0, false, true
			}
			if !v.closingSymbol(2) {
				return 0, 0, false, false
			}
			idx += 2
			v.done(jsxSelfClosing)
			return idx, jsxSelfClosing, true, true
		case s[idx] == '{':
			b := matchJSXBraced(s[idx:])
			if !b.isTerminated {
				return 0, 0, false, true
			}
			if !v.braced(b) {
				return 0, 0, false, false
			}
			idx += b.length
		default:
			n := matchName(s[idx:], jsxAttributeNameVariant)
			if n == 0 {
				return 0, 0, false, true
			}
			if !v.attributeName(n) {
				return 0, 0, false, false
			}
			idx += n
			if !skipTrivia() {
				return 0, 0, false, false
			}
			if idx < len(s) && s[idx] == '=' {
				if !v.attributeEquals(1) {
					return 0, 0, false, false
				}
				idx++
				if !skipTrivia() {
					return 0, 0, false, false
				}
				if idx < len(s) && (s[idx] == '\'' || s[idx] == '"') {
					r := matchStringLiteral(s[idx:])
					if !v.stringLiteral(r) {
						return 0, 0, false, false
					}
					idx += r.length
				} else if idx < len(s) && s[idx] == '{' {
					b := matchJSXBraced(s[idx:])
					if !b.isTerminated {
						return 0, 0, false, true
					}
					if !v.braced(b) {
						return 0, 0, false, false
					}
					idx += b.length
				} else {
					return 0, 0, false, true
				}
			}
		}
	}
}
