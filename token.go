package ulight

import "strconv"

// HighlightKind is the closed set of presentational categories a renderer
// maps to CSS classes. It says nothing about language grammar; two very
// different TokenTypes (say, a JS keyword and an HTML element name) can
// legitimately share a HighlightKind.
type HighlightKind uint8

// HighlightKind values.
const (
	KindError HighlightKind = iota
	KindKeywordType
	KindKeywordControl
	KindKeywordOther
	KindIdentifier
	KindNumber
	KindString
	KindStringDelimiter
	KindEscape
	KindComment
	KindCommentDelimiter
	KindPunctuation
	KindBrace
	KindOperator
	KindMarkupTag
)

// String returns a lower_snake_case name matching the renderer's CSS class
// suffix (e.g. "kw_control", "sym_punc").
func (k HighlightKind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindKeywordType:
		return "kw_type"
	case KindKeywordControl:
		return "kw_control"
	case KindKeywordOther:
		return "kw_other"
	case KindIdentifier:
		return "id"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindStringDelimiter:
		return "string_delim"
	case KindEscape:
		return "escape"
	case KindComment:
		return "comment"
	case KindCommentDelimiter:
		return "comment_delimiter"
	case KindPunctuation:
		return "sym_punc"
	case KindBrace:
		return "sym_brace"
	case KindOperator:
		return "sym_op"
	case KindMarkupTag:
		return "markup_tag"
	}
	return "Invalid(" + strconv.Itoa(int(k)) + ")"
}

// Token is one highlighted, non-overlapping span of the source buffer.
// Begin and Length are byte offsets; Begin+Length never exceeds the length
// of the source buffer the highlighter was given, and Length is always at
// least 1.
type Token struct {
	Begin  uint32
	Length uint32
	Kind   HighlightKind
}

// End returns Begin+Length.
func (t Token) End() uint32 {
	return t.Begin + t.Length
}
