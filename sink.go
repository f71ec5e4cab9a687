package ulight

// Sink is the append-only destination a highlighter writes tokens to. It is
// non-owning: a Sink's backing storage is supplied by the caller and may be
// bounded, in which case EmplaceBack stops accepting tokens once full rather
// than growing or panicking — overflow is the sink's business, not the
// highlighter's.
type Sink interface {
	// Empty reports whether any token has been emitted yet.
	Empty() bool
	// Back returns a pointer to the most recently emitted token. Calling it
	// on an empty sink is a programming error in the caller (the driver
	// never does so; it always checks Empty first).
	Back() *Token
	// EmplaceBack appends a token, or extends Back() in place when
	// coalescing applies. It returns false when the sink is full and the
	// token was dropped; the highlighter treats false as "stop emitting",
	// not as an error to propagate.
	EmplaceBack(begin, length uint32, kind HighlightKind) bool
}

// TokenSink is the default Sink implementation: a slice of Token with
// optional coalescing of adjacent same-kind tokens. When constructed
// with a non-nil, non-empty-capacity buf, it never grows past cap(buf) —
// EmplaceBack returns false once full. When buf is nil, it grows like an
// ordinary slice and never reports full.
type TokenSink struct {
	tokens     []Token
	coalescing bool
	bounded    bool
}

// NewTokenSink returns a growable TokenSink. When coalescing is true,
// adjacent tokens of identical HighlightKind that share an edge are merged
// into one.
func NewTokenSink(coalescing bool) *TokenSink {
	return &TokenSink{coalescing: coalescing}
}

// NewBoundedTokenSink returns a TokenSink backed by buf. EmplaceBack never
// grows buf past its capacity; once full it returns false and drops further
// tokens, leaving overflow handling to the caller. A nil buf gives a
// growable sink, like NewTokenSink.
func NewBoundedTokenSink(buf []Token, coalescing bool) *TokenSink {
	return &TokenSink{tokens: buf[:0], coalescing: coalescing, bounded: buf != nil}
}

// Empty reports whether any token has been emitted yet.
func (s *TokenSink) Empty() bool {
	return len(s.tokens) == 0
}

// Back returns a pointer to the most recently emitted token.
func (s *TokenSink) Back() *Token {
	return &s.tokens[len(s.tokens)-1]
}

// EmplaceBack appends a token, coalescing into Back() when enabled and
// applicable.
func (s *TokenSink) EmplaceBack(begin, length uint32, kind HighlightKind) bool {
	if s.coalescing && !s.Empty() {
		back := s.Back()
		if back.Kind == kind && back.End() == begin {
			back.Length += length
			return true
		}
	}
	if s.bounded && len(s.tokens) == cap(s.tokens) {
		return false
	}
	s.tokens = append(s.tokens, Token{Begin: begin, Length: length, Kind: kind})
	return true
}

// Tokens returns the tokens emitted so far, in emission order.
func (s *TokenSink) Tokens() []Token {
	return s.tokens
}
