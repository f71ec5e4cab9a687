package js

import (
	"github.com/ulight-go/ulight"
	"github.com/ulight-go/ulight/chars"
	"github.com/ulight-go/ulight/charref"
)

// Driver is the stateful scanner. It holds the only cross-token state —
// canBeRegex and atStartOfFile — every other piece of "state" lives on the
// Go call stack via recursion (template substitutions, JSX children).
type Driver struct {
	source        []byte
	index         int
	canBeRegex    bool
	atStartOfFile bool
	jsxDepth      int32
	opts          ulight.Options
	sink          ulight.Sink
}

// Highlight runs the driver over source, appending tokens to sink. It
// returns false as soon as the sink stops accepting emissions; the entry
// point returns true iff the sink accepted every emission.
func Highlight(sink ulight.Sink, source []byte, opts ulight.Options) bool {
	d := &Driver{
		source:        source,
		canBeRegex:    true,
		atStartOfFile: true,
		opts:          opts,
		sink:          sink,
	}
	for d.index < len(d.source) {
		if !d.step() {
			return false
		}
	}
	return true
}

// emit appends one token and reports whether the sink accepted it.
func (d *Driver) emit(begin, length int, kind ulight.HighlightKind) bool {
	return d.sink.EmplaceBack(uint32(begin), uint32(length), kind)
}

// emitLineComment emits a "//…" span at offset: the delimiter then the
// remainder. Shared between the main loop and JSX trivia.
func (d *Driver) emitLineComment(offset, length int) bool {
	if !d.emit(offset, 2, ulight.KindCommentDelimiter) {
		return false
	}
	if length > 2 {
		return d.emit(offset+2, length-2, ulight.KindComment)
	}
	return true
}

// emitBlockComment emits a "/*…*/" (or unterminated "/*…") span at offset.
func (d *Driver) emitBlockComment(offset int, c commentResult) bool {
	if !d.emit(offset, 2, ulight.KindCommentDelimiter) {
		return false
	}
	if c.isTerminated {
		if c.length > 4 {
			if !d.emit(offset+2, c.length-4, ulight.KindComment) {
				return false
			}
		}
		return d.emit(offset+c.length-2, 2, ulight.KindCommentDelimiter)
	}
	if c.length > 2 {
		return d.emit(offset+2, c.length-2, ulight.KindComment)
	}
	return true
}

// emitStringLiteral emits a quoted string span at offset: delimiter,
// interior (if any), closing delimiter (if terminated).
func (d *Driver) emitStringLiteral(offset int, r stringResult) bool {
	if !d.emit(offset, 1, ulight.KindStringDelimiter) {
		return false
	}
	end := offset + r.length
	interiorEnd := end
	if r.terminated {
		interiorEnd = end - 1
	}
	if interiorEnd > offset+1 {
		if !d.emit(offset+1, interiorEnd-offset-1, ulight.KindString) {
			return false
		}
	}
	if r.terminated {
		return d.emit(end-1, 1, ulight.KindStringDelimiter)
	}
	return true
}

// runJSXBraced scans a '{…}' span starting at d.index (positioned on '{')
// using the ordinary driver loop, tracking brace depth via the ordinary
// OpenBraceToken/CloseBraceToken emissions, and returns once the matching
// '}' has been consumed. Used for JSX attribute/spread/child braced
// values, all of which highlight the delimiters as sym_brace: embedded JS
// inside braced JSX uses the full driver machinery, including
// nested JSX).
func (d *Driver) runJSXBraced() bool {
	depth := 0
	for d.index < len(d.source) {
		cont, openB, closeB := d.step2()
		if openB {
			depth++
		}
		if closeB {
			depth--
		}
		if !cont {
			return false
		}
		if depth == 0 {
			return true
		}
	}
	return true
}

// runTemplateSubstitution scans a `${…}` span starting just past the "${"
// (already emitted as escape by the caller), running the ordinary driver
// loop for the interior, and intercepts the outer closing '}' to emit it
// as escape rather than letting the ordinary punctuation dispatch emit it
// as sym_brace.
func (d *Driver) runTemplateSubstitution() bool {
	depth := 1
	for d.index < len(d.source) {
		if depth == 1 && d.source[d.index] == '}' {
			ok := d.emit(d.index, 1, ulight.KindEscape)
			d.index++
			return ok
		}
		cont, openB, closeB := d.step2()
		if openB {
			depth++
		}
		if closeB {
			depth--
		}
		if !cont {
			return false
		}
		if depth == 0 {
			return true
		}
	}
	return true
}

// step runs exactly one iteration of the main loop and reports
// whether to keep going (false only once the sink has rejected a token).
func (d *Driver) step() bool {
	cont, _, _ := d.step2()
	return cont
}

// step2 is step's implementation, additionally reporting whether this
// iteration matched a bare '{' or '}' punctuator — used by the brace-depth
// trackers above to know when a nested braced span has closed.
func (d *Driver) step2() (cont bool, openBrace bool, closeBrace bool) {
	s := d.source[d.index:]

	if n := matchWhitespace(s); n > 0 {
		d.index += n
		return true, false, false
	}

	if d.atStartOfFile {
		d.atStartOfFile = false
		if n := matchHashbangComment(s, true); n > 0 {
			ok := d.emitLineComment(d.index, n)
			d.index += n
			d.canBeRegex = true
			return ok, false, false
		}
	}

	if n := matchLineComment(s); n > 0 {
		ok := d.emitLineComment(d.index, n)
		d.index += n
		d.canBeRegex = true
		return ok, false, false
	}

	if c := matchBlockComment(s); c.length > 0 {
		ok := d.emitBlockComment(d.index, c)
		d.index += c.length
		d.canBeRegex = true
		return ok, false, false
	}

	if s[0] == '<' {
		if ok, handled := d.tryJSXInJS(); handled {
			return ok, false, false
		}
	}

	if s[0] == '\'' || s[0] == '"' {
		if r := matchStringLiteral(s); r.length > 0 {
			ok := d.emitStringLiteral(d.index, r)
			d.index += r.length
			d.canBeRegex = false
			return ok, false, false
		}
	}

	if s[0] == '`' {
		ok := d.highlightTemplateLiteral()
		d.canBeRegex = false
		return ok, false, false
	}

	if d.canBeRegex && s[0] == '/' && len(s) > 1 && s[1] != '/' && s[1] != '*' {
		if n, matched := d.matchRegex(s); matched {
			ok := d.emit(d.index, n, ulight.KindString)
			d.index += n
			d.canBeRegex = false
			return ok, false, false
		}
	}

	if n := matchNumericLiteral(s); n.length > 0 {
		kind := ulight.KindNumber
		if n.erroneous {
			kind = ulight.KindError
		}
		ok := d.emit(d.index, n.length, kind)
		d.index += n.length
		d.canBeRegex = false
		return ok, false, false
	}

	if n := matchPrivateIdentifier(s); n > 0 {
		ok := d.emit(d.index, n, ulight.KindIdentifier)
		d.index += n
		d.canBeRegex = false
		return ok, false, false
	}

	if n := matchName(s, identifierVariant); n > 0 {
		info, found := lookupKeyword(s[:n])
		kind := ulight.KindIdentifier
		if found {
			kind = info.kind
			d.canBeRegex = regexAllowedAfter[info.typ]
		} else {
			d.canBeRegex = false
		}
		ok := d.emit(d.index, n, kind)
		d.index += n
		return ok, false, false
	}

	if op, found := matchOperatorOrPunctuation(s); found {
		ok := d.emit(d.index, len(op.literal), op.kind)
		d.index += len(op.literal)
		d.canBeRegex = !regexStateFalseAfter[op.typ]
		return ok, op.typ == OpenBraceToken, op.typ == CloseBraceToken
	}

	// Error-consume path: nothing matched, so consume one code point (or one
	// byte, on invalid UTF-8) as a single error token to guarantee progress.
	r, size, decodeOK := chars.DecodeRune(s)
	_ = r
	if !decodeOK {
		size = 1
	}
	ok := d.emit(d.index, size, ulight.KindError)
	d.index += size
	d.canBeRegex = true
	return ok, false, false
}

// matchRegex scans a regex literal body (escape-tracked, class-aware) plus
// trailing flags. It does not mutate driver state; the
// caller decides whether to commit based on canBeRegex.
func (d *Driver) matchRegex(s []byte) (int, bool) {
	inClass := false
	i := 1
	for i < len(s) {
		c := s[i]
		if !inClass && c == '/' {
			i++
			break
		} else if c == '[' {
			inClass = true
			i++
		} else if c == ']' {
			inClass = false
			i++
		} else if c == '\\' {
			i++
			if i < len(s) && matchLineTerminatorSequence(s[i:]) > 0 {
				return 0, false
			}
			if i < len(s) {
				i++
			}
		} else if matchLineTerminatorSequence(s[i:]) > 0 {
			return 0, false
		} else {
			i++
		}
		if i >= len(s) {
			return 0, false
		}
	}
	if i > len(s) || (i == 1) {
		return 0, false
	}
	if s[i-1] != '/' {
		return 0, false
	}
	// trailing flags: identifier-part code points, decoded as UTF-8 rather
	// than taken as a naive byte cast.
	for i < len(s) {
		r, size, ok := chars.DecodeRune(s[i:])
		if !ok || !chars.IsJSIdentifierPart(r) {
			break
		}
		i += size
	}
	return i, true
}

// highlightTemplateLiteral drives a backtick-delimited template literal,
// recursing into runTemplateSubstitution for every `${…}`.
func (d *Driver) highlightTemplateLiteral() bool {
	start := d.index
	if !d.emit(start, 1, ulight.KindStringDelimiter) {
		return false
	}
	d.index++
	pendingStart := d.index
	flush := func() bool {
		if d.index > pendingStart {
			return d.emit(pendingStart, d.index-pendingStart, ulight.KindString)
		}
		return true
	}
	for d.index < len(d.source) {
		c := d.source[d.index]
		if c == '`' {
			if !flush() {
				return false
			}
			ok := d.emit(d.index, 1, ulight.KindStringDelimiter)
			d.index++
			return ok
		}
		if c == '$' && d.index+1 < len(d.source) && d.source[d.index+1] == '{' {
			if !flush() {
				return false
			}
			if !d.emit(d.index, 2, ulight.KindEscape) {
				return false
			}
			d.index += 2
			if !d.runTemplateSubstitution() {
				return false
			}
			pendingStart = d.index
			continue
		}
		if c == '\\' {
			if n := matchLineContinuation(d.source[d.index:]); n > 0 {
				if !flush() {
					return false
				}
				if !d.emit(d.index, 1, ulight.KindEscape) {
					return false
				}
				d.index++
				end := d.index + (n - 1)
				if !d.emit(d.index, n-1, ulight.KindString) {
					return false
				}
				d.index = end
				pendingStart = d.index
				continue
			}
			d.index++
			if d.index < len(d.source) {
				d.index++
			}
			continue
		}
		if n := matchLineTerminatorSequence(d.source[d.index:]); n > 0 {
			d.index += n
			continue
		}
		d.index++
	}
	// Unterminated: flush whatever remains as string, no closing delimiter.
	return flush()
}

// tryJSXInJS implements the JSX-in-JS disambiguation: a trial
// parse with the counting consumer decides whether the '<' at d.index
// starts a JSX tag; on success the tag is re-parsed with the emitting
// consumer and, if it opens an element, its children are consumed.
// handled reports whether the '<' was consumed as JSX at all (false means
// the caller should fall through to ordinary operator/punctuation
// dispatch).
func (d *Driver) tryJSXInJS() (ok bool, handled bool) {
	s := d.source[d.index:]
	counter := &countingJSXConsumer{}
	_, _, accepted, _ := matchJSXTag(s, jsxSubsetNonClosing, counter)
	if !accepted {
		return true, false
	}
	emitter := &emittingJSXConsumer{d: d, offset: d.index}
	_, tagType, accepted2, sinkOK := matchJSXTag(s, jsxSubsetNonClosing, emitter)
	if !accepted2 {
		// The counting pass already accepted this exact grammar, so a
		// rejection here can only mean the sink stopped accepting tokens.
		return sinkOK, true
	}
	d.index = emitter.cur()
	d.canBeRegex = false
	if tagType == jsxOpening || tagType == jsxFragmentOpening {
		if !d.highlightJSXChildren() {
			return false, true
		}
	}
	return true, true
}

// highlightJSXChildren implements the JSX children scan: plain text
// runs are untagged, and '&', '<', '>', '{', '}' are each handled specially
// until the matching closing tag is found (depth dropping below zero).
func (d *Driver) highlightJSXChildren() bool {
	depth := 0
	for d.index < len(d.source) {
		c := d.source[d.index]
		switch c {
		case '&':
			if n := matchCharacterReference(d.source[d.index:]); n > 0 {
				if !d.emit(d.index, n, ulight.KindEscape) {
					return false
				}
				d.index += n
			} else {
				d.index++
			}
			continue
		case '<':
			s := d.source[d.index:]
			counter := &countingJSXConsumer{}
			_, _, accepted, _ := matchJSXTag(s, jsxSubsetAll, counter)
			if !accepted {
				if !d.emit(d.index, 1, ulight.KindError) {
					return false
				}
				d.index++
				continue
			}
			emitter := &emittingJSXConsumer{d: d, offset: d.index}
			_, tagType, accepted2, sinkOK := matchJSXTag(s, jsxSubsetAll, emitter)
			if !accepted2 {
				// The counting pass already accepted this exact grammar, so
				// a rejection here can only mean the sink stopped accepting
				// tokens.
				return sinkOK
			}
			d.index = emitter.cur()
			switch tagType {
			case jsxOpening, jsxFragmentOpening:
				depth++
			case jsxClosing, jsxFragmentClosing:
				depth--
				if depth < 0 {
					return true
				}
			}
			continue
		case '>', '}':
			if !d.emit(d.index, 1, ulight.KindError) {
				return false
			}
			d.index++
			continue
		case '{':
			b := matchJSXBraced(d.source[d.index:])
			if !b.isTerminated {
				if !d.emit(d.index, 1, ulight.KindError) {
					return false
				}
				d.index++
				continue
			}
			if !d.runJSXBraced() {
				return false
			}
			continue
		default:
			d.index++
		}
	}
	return true
}

// matchCharacterReference is the driver's binding to the charref package's
// HTML character-reference matcher.
func matchCharacterReference(s []byte) int {
	return charref.MatchCharacterReference(s)
}
