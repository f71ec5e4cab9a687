package js

import (
	"sort"
	"strconv"

	"github.com/ulight-go/ulight"
)

// TokenType identifies every keyword, operator and punctuator the driver
// can emit, plus the handful of structural categories (identifier, number,
// string, ...) that aren't looked up in the literal table below.
type TokenType uint16

const (
	NoToken TokenType = iota

	IdentifierToken
	NumberToken
	StringToken
	PrivateIdentifierToken

	// Keywords, highlighted as kw_control.
	BreakToken
	CaseToken
	CatchToken
	ContinueToken
	DebuggerToken
	DefaultToken
	DeleteToken
	DoToken
	ElseToken
	FinallyToken
	ForToken
	IfToken
	InToken
	InstanceofToken
	NewToken
	ReturnToken
	SwitchToken
	ThrowToken
	TryToken
	TypeofToken
	VoidToken
	WhileToken
	WithToken
	YieldToken
	AwaitToken

	// Keywords, highlighted as kw_other.
	AsyncToken
	ClassToken
	ConstToken
	EnumToken
	ExportToken
	ExtendsToken
	FunctionToken
	ImplementsToken
	ImportToken
	InterfaceToken
	LetToken
	PackageToken
	PrivateToken
	ProtectedToken
	PublicToken
	StaticToken
	SuperToken
	ThisToken
	VarToken

	// Literal keywords, highlighted as kw_other.
	FalseToken
	NullToken
	TrueToken

	// Punctuation, highlighted as sym_brace.
	OpenParenToken
	CloseParenToken
	OpenBracketToken
	CloseBracketToken
	OpenBraceToken
	CloseBraceToken

	// Punctuation, highlighted as sym_punc.
	SemicolonToken
	CommaToken
	DotToken
	EllipsisToken
	ColonToken
	ArrowToken
	OptChainToken // ?.

	// Operators, highlighted as sym_op.
	NotToken
	NotEqToken
	NotEqStrictToken
	RemToken
	RemEqToken
	AndToken
	AndAndToken
	AndAndEqToken
	AndEqToken
	MulToken
	PowToken
	PowEqToken
	MulEqToken
	AddToken
	IncrToken
	AddEqToken
	DecrToken
	SubToken
	SubEqToken
	DivToken
	DivEqToken
	LtToken
	LtLtToken
	LtLtEqToken
	LtEqToken
	EqToken
	EqEqToken
	EqEqEqToken
	GtToken
	GtEqToken
	GtGtToken
	GtGtEqToken
	GtGtGtToken
	GtGtGtEqToken
	QuestionToken
	NullishToken
	NullishEqToken
	OrToken
	OrEqToken
	OrOrToken
	OrOrEqToken
	XorToken
	XorEqToken
	NotBitToken
)

func (tt TokenType) String() string {
	if int(tt) < len(tokenTypeNames) {
		return tokenTypeNames[tt]
	}
	return "Invalid(" + strconv.Itoa(int(tt)) + ")"
}

var tokenTypeNames = [...]string{
	NoToken:                "None",
	IdentifierToken:        "Identifier",
	NumberToken:            "Number",
	StringToken:            "String",
	PrivateIdentifierToken: "PrivateIdentifier",
	BreakToken:             "break",
	CaseToken:              "case",
	CatchToken:             "catch",
	ContinueToken:          "continue",
	DebuggerToken:          "debugger",
	DefaultToken:           "default",
	DeleteToken:            "delete",
	DoToken:                "do",
	ElseToken:              "else",
	FinallyToken:           "finally",
	ForToken:               "for",
	IfToken:                "if",
	InToken:                "in",
	InstanceofToken:        "instanceof",
	NewToken:               "new",
	ReturnToken:            "return",
	SwitchToken:            "switch",
	ThrowToken:             "throw",
	TryToken:               "try",
	TypeofToken:            "typeof",
	VoidToken:              "void",
	WhileToken:             "while",
	WithToken:              "with",
	YieldToken:             "yield",
	AwaitToken:             "await",
	AsyncToken:             "async",
	ClassToken:             "class",
	ConstToken:             "const",
	EnumToken:              "enum",
	ExportToken:            "export",
	ExtendsToken:           "extends",
	FunctionToken:          "function",
	ImplementsToken:        "implements",
	ImportToken:            "import",
	InterfaceToken:         "interface",
	LetToken:               "let",
	PackageToken:           "package",
	PrivateToken:           "private",
	ProtectedToken:         "protected",
	PublicToken:            "public",
	StaticToken:            "static",
	SuperToken:             "super",
	ThisToken:              "this",
	VarToken:               "var",
	FalseToken:             "false",
	NullToken:              "null",
	TrueToken:              "true",
}

// FeatureSource tags a TokenType's provenance: the core ECMAScript grammar,
// or a word ECMAScript only reserves (enum, implements, interface, ...).
type FeatureSource uint8

const (
	CoreFeature FeatureSource = iota
	ReservedFeature
)

// tokenInfo is a single row of the token-kind table: the literal bytes
// that spell a keyword, its TokenType, its
// HighlightKind, and its FeatureSource.
type tokenInfo struct {
	literal string
	typ     TokenType
	kind    ulight.HighlightKind
	source  FeatureSource
}

// tokenTable holds the keywords and is sorted by literal bytes so keyword
// lookup can binary-search it. Operators and punctuators are not in it; they
// live in punctuationTable.
var tokenTable = func() []tokenInfo {
	t := []tokenInfo{
		{"async", AsyncToken, ulight.KindKeywordOther, CoreFeature},
		{"await", AwaitToken, ulight.KindKeywordControl, CoreFeature},
		{"break", BreakToken, ulight.KindKeywordControl, CoreFeature},
		{"case", CaseToken, ulight.KindKeywordControl, CoreFeature},
		{"catch", CatchToken, ulight.KindKeywordControl, CoreFeature},
		{"class", ClassToken, ulight.KindKeywordOther, CoreFeature},
		{"const", ConstToken, ulight.KindKeywordOther, CoreFeature},
		{"continue", ContinueToken, ulight.KindKeywordControl, CoreFeature},
		{"debugger", DebuggerToken, ulight.KindKeywordControl, CoreFeature},
		{"default", DefaultToken, ulight.KindKeywordControl, CoreFeature},
		{"delete", DeleteToken, ulight.KindKeywordControl, CoreFeature},
		{"do", DoToken, ulight.KindKeywordControl, CoreFeature},
		{"else", ElseToken, ulight.KindKeywordControl, CoreFeature},
		{"enum", EnumToken, ulight.KindKeywordOther, ReservedFeature},
		{"export", ExportToken, ulight.KindKeywordOther, CoreFeature},
		{"extends", ExtendsToken, ulight.KindKeywordOther, CoreFeature},
		{"false", FalseToken, ulight.KindKeywordOther, CoreFeature},
		{"finally", FinallyToken, ulight.KindKeywordControl, CoreFeature},
		{"for", ForToken, ulight.KindKeywordControl, CoreFeature},
		{"function", FunctionToken, ulight.KindKeywordOther, CoreFeature},
		{"if", IfToken, ulight.KindKeywordControl, CoreFeature},
		{"implements", ImplementsToken, ulight.KindKeywordOther, ReservedFeature},
		{"import", ImportToken, ulight.KindKeywordOther, CoreFeature},
		{"in", InToken, ulight.KindKeywordControl, CoreFeature},
		{"instanceof", InstanceofToken, ulight.KindKeywordControl, CoreFeature},
		{"interface", InterfaceToken, ulight.KindKeywordOther, ReservedFeature},
		{"let", LetToken, ulight.KindKeywordOther, CoreFeature},
		{"new", NewToken, ulight.KindKeywordControl, CoreFeature},
		{"null", NullToken, ulight.KindKeywordOther, CoreFeature},
		{"package", PackageToken, ulight.KindKeywordOther, ReservedFeature},
		{"private", PrivateToken, ulight.KindKeywordOther, ReservedFeature},
		{"protected", ProtectedToken, ulight.KindKeywordOther, ReservedFeature},
		{"public", PublicToken, ulight.KindKeywordOther, ReservedFeature},
		{"return", ReturnToken, ulight.KindKeywordControl, CoreFeature},
		{"static", StaticToken, ulight.KindKeywordOther, CoreFeature},
		{"super", SuperToken, ulight.KindKeywordOther, CoreFeature},
		{"switch", SwitchToken, ulight.KindKeywordControl, CoreFeature},
		{"this", ThisToken, ulight.KindKeywordOther, CoreFeature},
		{"throw", ThrowToken, ulight.KindKeywordControl, CoreFeature},
		{"true", TrueToken, ulight.KindKeywordOther, CoreFeature},
		{"try", TryToken, ulight.KindKeywordControl, CoreFeature},
		{"typeof", TypeofToken, ulight.KindKeywordControl, CoreFeature},
		{"var", VarToken, ulight.KindKeywordOther, CoreFeature},
		{"void", VoidToken, ulight.KindKeywordControl, CoreFeature},
		{"while", WhileToken, ulight.KindKeywordControl, CoreFeature},
		{"with", WithToken, ulight.KindKeywordControl, CoreFeature},
		{"yield", YieldToken, ulight.KindKeywordControl, CoreFeature},
	}
	sort.Slice(t, func(i, j int) bool { return t[i].literal < t[j].literal })
	return t
}()

// lookupKeyword binary-searches tokenTable for name.
func lookupKeyword(name []byte) (tokenInfo, bool) {
	s := string(name)
	i := sort.Search(len(tokenTable), func(i int) bool { return tokenTable[i].literal >= s })
	if i < len(tokenTable) && tokenTable[i].literal == s {
		return tokenTable[i], true
	}
	return tokenInfo{}, false
}

// regexAllowedAfter is the keyword set after which a following
// '/' is a regex literal rather than the divide operator.
var regexAllowedAfter = map[TokenType]bool{
	ReturnToken:     true,
	ThrowToken:      true,
	CaseToken:       true,
	DeleteToken:     true,
	VoidToken:       true,
	TypeofToken:     true,
	YieldToken:      true,
	AwaitToken:      true,
	InstanceofToken: true,
	InToken:         true,
	NewToken:        true,
}

// opInfo is one entry of the operator/punctuation longest-match set.
type opInfo struct {
	literal string
	typ     TokenType
	kind    ulight.HighlightKind
}

var punctuationTable = []opInfo{
	{"(", OpenParenToken, ulight.KindBrace},
	{")", CloseParenToken, ulight.KindBrace},
	{"[", OpenBracketToken, ulight.KindBrace},
	{"]", CloseBracketToken, ulight.KindBrace},
	{"{", OpenBraceToken, ulight.KindBrace},
	{"}", CloseBraceToken, ulight.KindBrace},
	{";", SemicolonToken, ulight.KindPunctuation},
	{",", CommaToken, ulight.KindPunctuation},
	{"...", EllipsisToken, ulight.KindPunctuation},
	{".", DotToken, ulight.KindPunctuation},
	{":", ColonToken, ulight.KindPunctuation},
	{"=>", ArrowToken, ulight.KindPunctuation},
	{"?.", OptChainToken, ulight.KindPunctuation},
	{"?", QuestionToken, ulight.KindOperator},
	{"??=", NullishEqToken, ulight.KindOperator},
	{"??", NullishToken, ulight.KindOperator},
	{"!==", NotEqStrictToken, ulight.KindOperator},
	{"!=", NotEqToken, ulight.KindOperator},
	{"!", NotToken, ulight.KindOperator},
	{"%=", RemEqToken, ulight.KindOperator},
	{"%", RemToken, ulight.KindOperator},
	{"&&=", AndAndEqToken, ulight.KindOperator},
	{"&&", AndAndToken, ulight.KindOperator},
	{"&=", AndEqToken, ulight.KindOperator},
	{"&", AndToken, ulight.KindOperator},
	{"**=", PowEqToken, ulight.KindOperator},
	{"**", PowToken, ulight.KindOperator},
	{"*=", MulEqToken, ulight.KindOperator},
	{"*", MulToken, ulight.KindOperator},
	{"++", IncrToken, ulight.KindOperator},
	{"+=", AddEqToken, ulight.KindOperator},
	{"+", AddToken, ulight.KindOperator},
	{"--", DecrToken, ulight.KindOperator},
	{"-=", SubEqToken, ulight.KindOperator},
	{"-", SubToken, ulight.KindOperator},
	{"/=", DivEqToken, ulight.KindOperator},
	{"/", DivToken, ulight.KindOperator},
	{"<<=", LtLtEqToken, ulight.KindOperator},
	{"<<", LtLtToken, ulight.KindOperator},
	{"<=", LtEqToken, ulight.KindOperator},
	{"<", LtToken, ulight.KindOperator},
	{"===", EqEqEqToken, ulight.KindOperator},
	{"==", EqEqToken, ulight.KindOperator},
	{"=", EqToken, ulight.KindOperator},
	{">>>=", GtGtGtEqToken, ulight.KindOperator},
	{">>>", GtGtGtToken, ulight.KindOperator},
	{">>=", GtGtEqToken, ulight.KindOperator},
	{">>", GtGtToken, ulight.KindOperator},
	{">=", GtEqToken, ulight.KindOperator},
	{">", GtToken, ulight.KindOperator},
	{"^=", XorEqToken, ulight.KindOperator},
	{"^", XorToken, ulight.KindOperator},
	{"|=", OrEqToken, ulight.KindOperator},
	{"||=", OrOrEqToken, ulight.KindOperator},
	{"||", OrOrToken, ulight.KindOperator},
	{"|", OrToken, ulight.KindOperator},
	{"~", NotBitToken, ulight.KindOperator},
}

// regexStateFalseAfter is the punctuation/operator set after which
// can_be_regex is set to false, so a following '/' is the divide operator;
// every other operator or punctuator sets it to true.
var regexStateFalseAfter = map[TokenType]bool{
	IncrToken:        true,
	DecrToken:        true,
	CloseParenToken:  true,
	CloseBracketToken: true,
	CloseBraceToken:  true,
	AddToken:         true,
	SubToken:         true,
}
