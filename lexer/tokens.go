package lexer

import "fmt"

// TokenKind classifies a lexical token. The enumeration is closed: every
// multi-character operator is its own variant, resolved before the token is
// emitted, so downstream consumers never compare operator text at runtime.
type TokenKind int

const (
	// Special tokens
	EOF TokenKind = iota
	INVALID

	// Identifiers and literals
	SYMBOL                // identifiers, including the @"..." spelling
	INTEGER               // 123, 0x1A, 0o17, 0b101
	FLOAT                 // 123.5, 0x1.8p1
	STRING                // "..." contents with escapes decoded
	CHAR                  // 'a', '\n', '\x41'
	MULTILINE_STRING_LINE // one \\ line of a multi-line string literal

	// Comments (first-class tokens: docgen consumes them)
	COMMENT            // //
	DOC_COMMENT        // ///
	MODULE_DOC_COMMENT // //!

	// Punctuation
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LSQUARE   // [
	RSQUARE   // ]
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :
	TILDE     // ~
	QUESTION  // ?
	AT        // @

	// Operators (maximal munch: longest match always wins)
	PLUS               // +
	PLUS_EQ            // +=
	PLUS_PLUS          // ++
	PLUS_PERCENT       // +%
	PLUS_PERCENT_EQ    // +%=
	MINUS              // -
	MINUS_EQ           // -=
	ARROW              // ->
	MINUS_PERCENT      // -%
	MINUS_PERCENT_EQ   // -%=
	STAR               // *
	STAR_EQ            // *=
	STAR_STAR          // **
	STAR_PERCENT       // *%
	STAR_PERCENT_EQ    // *%=
	SLASH              // /
	SLASH_EQ           // /=
	PERCENT            // %
	PERCENT_EQ         // %=
	AMPERSAND          // &
	AMPERSAND_EQ       // &=
	CARET              // ^
	CARET_EQ           // ^=
	PIPE               // |
	PIPE_EQ            // |=
	EQUALS             // =
	EQ_EQ              // ==
	NOT                // !
	NOT_EQ             // !=
	LT                 // <
	LT_EQ              // <=
	LSHIFT             // <<
	LSHIFT_EQ          // <<=
	GT                 // >
	GT_EQ              // >=
	RSHIFT             // >>
	RSHIFT_EQ          // >>=
	DOT                // .
	DOT_DOT            // ..
	DOT_DOT_DOT        // ...

	// Keywords (exact, case-sensitive match; no payload)
	KEYWORD_ALIGN
	KEYWORD_AND
	KEYWORD_ASM
	KEYWORD_BREAK
	KEYWORD_CATCH
	KEYWORD_COMPTIME
	KEYWORD_CONST
	KEYWORD_CONTINUE
	KEYWORD_DEFER
	KEYWORD_ELSE
	KEYWORD_ENUM
	KEYWORD_ERROR
	KEYWORD_EXPORT
	KEYWORD_EXTERN
	KEYWORD_FN
	KEYWORD_FOR
	KEYWORD_IF
	KEYWORD_INLINE
	KEYWORD_NOALIAS
	KEYWORD_OR
	KEYWORD_ORELSE
	KEYWORD_PACKED
	KEYWORD_PUB
	KEYWORD_RETURN
	KEYWORD_STRUCT
	KEYWORD_SWITCH
	KEYWORD_TEST
	KEYWORD_TRY
	KEYWORD_UNION
	KEYWORD_UNREACHABLE
	KEYWORD_VAR
	KEYWORD_VOLATILE
	KEYWORD_WHILE
)

// Span is the extent of a token in the source buffer. EndByte is one past the
// last consumed byte; lines and columns are 1-based and measured at the first
// byte of the token.
type Span struct {
	StartByte   int
	EndByte     int
	StartLine   int
	StartColumn int
}

// Token is a classified, positioned unit of lexical input. Exactly one payload
// field is meaningful, determined by Kind; tokens are built only through the
// constructors below and are immutable once emitted.
type Token struct {
	Kind TokenKind
	Span Span

	Text  []byte    // interned reference: SYMBOL, STRING, MULTILINE_STRING_LINE, comments
	Int   uint64    // INTEGER
	Float float64   // FLOAT
	Char  byte      // CHAR (decoded byte)
	Err   ErrorKind // INVALID
}

// hasTextPayload reports whether kind carries an interned-text payload.
func hasTextPayload(kind TokenKind) bool {
	switch kind {
	case SYMBOL, STRING, MULTILINE_STRING_LINE, COMMENT, DOC_COMMENT, MODULE_DOC_COMMENT:
		return true
	}
	return false
}

// newToken builds a payload-free token (punctuation, operators, keywords, EOF).
func newToken(kind TokenKind, span Span) Token {
	if hasTextPayload(kind) || kind == INTEGER || kind == FLOAT || kind == CHAR || kind == INVALID {
		panic(fmt.Sprintf("lexer: token kind %s requires a payload", kind))
	}
	return Token{Kind: kind, Span: span}
}

// newTextToken builds a token whose payload is an interned byte slice.
func newTextToken(kind TokenKind, span Span, text []byte) Token {
	if !hasTextPayload(kind) {
		panic(fmt.Sprintf("lexer: token kind %s does not carry text", kind))
	}
	return Token{Kind: kind, Span: span, Text: text}
}

func newIntToken(span Span, value uint64) Token {
	return Token{Kind: INTEGER, Span: span, Int: value}
}

func newFloatToken(span Span, value float64) Token {
	return Token{Kind: FLOAT, Span: span, Float: value}
}

func newCharToken(span Span, value byte) Token {
	return Token{Kind: CHAR, Span: span, Char: value}
}

func newInvalidToken(span Span, kind ErrorKind) Token {
	if kind == ErrNone {
		panic("lexer: invalid token requires an error kind")
	}
	return Token{Kind: INVALID, Span: span, Err: kind}
}

// keywords maps reserved-word spellings to their token kinds. Lookup is exact
// and case-sensitive; anything not in this table is a SYMBOL.
var keywords = map[string]TokenKind{
	"align":       KEYWORD_ALIGN,
	"and":         KEYWORD_AND,
	"asm":         KEYWORD_ASM,
	"break":       KEYWORD_BREAK,
	"catch":       KEYWORD_CATCH,
	"comptime":    KEYWORD_COMPTIME,
	"const":       KEYWORD_CONST,
	"continue":    KEYWORD_CONTINUE,
	"defer":       KEYWORD_DEFER,
	"else":        KEYWORD_ELSE,
	"enum":        KEYWORD_ENUM,
	"error":       KEYWORD_ERROR,
	"export":      KEYWORD_EXPORT,
	"extern":      KEYWORD_EXTERN,
	"fn":          KEYWORD_FN,
	"for":         KEYWORD_FOR,
	"if":          KEYWORD_IF,
	"inline":      KEYWORD_INLINE,
	"noalias":     KEYWORD_NOALIAS,
	"or":          KEYWORD_OR,
	"orelse":      KEYWORD_ORELSE,
	"packed":      KEYWORD_PACKED,
	"pub":         KEYWORD_PUB,
	"return":      KEYWORD_RETURN,
	"struct":      KEYWORD_STRUCT,
	"switch":      KEYWORD_SWITCH,
	"test":        KEYWORD_TEST,
	"try":         KEYWORD_TRY,
	"union":       KEYWORD_UNION,
	"unreachable": KEYWORD_UNREACHABLE,
	"var":         KEYWORD_VAR,
	"volatile":    KEYWORD_VOLATILE,
	"while":       KEYWORD_WHILE,
}

// tokenKindNames maps every kind to its display name. Keyed by constant rather
// than indexed by value so reordering the enumeration cannot skew the names.
var tokenKindNames = map[TokenKind]string{
	EOF:     "EOF",
	INVALID: "INVALID",

	SYMBOL:                "SYMBOL",
	INTEGER:               "INTEGER",
	FLOAT:                 "FLOAT",
	STRING:                "STRING",
	CHAR:                  "CHAR",
	MULTILINE_STRING_LINE: "MULTILINE_STRING_LINE",

	COMMENT:            "COMMENT",
	DOC_COMMENT:        "DOC_COMMENT",
	MODULE_DOC_COMMENT: "MODULE_DOC_COMMENT",

	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	LSQUARE:   "LSQUARE",
	RSQUARE:   "RSQUARE",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	COLON:     "COLON",
	TILDE:     "TILDE",
	QUESTION:  "QUESTION",
	AT:        "AT",

	PLUS:             "PLUS",
	PLUS_EQ:          "PLUS_EQ",
	PLUS_PLUS:        "PLUS_PLUS",
	PLUS_PERCENT:     "PLUS_PERCENT",
	PLUS_PERCENT_EQ:  "PLUS_PERCENT_EQ",
	MINUS:            "MINUS",
	MINUS_EQ:         "MINUS_EQ",
	ARROW:            "ARROW",
	MINUS_PERCENT:    "MINUS_PERCENT",
	MINUS_PERCENT_EQ: "MINUS_PERCENT_EQ",
	STAR:             "STAR",
	STAR_EQ:          "STAR_EQ",
	STAR_STAR:        "STAR_STAR",
	STAR_PERCENT:     "STAR_PERCENT",
	STAR_PERCENT_EQ:  "STAR_PERCENT_EQ",
	SLASH:            "SLASH",
	SLASH_EQ:         "SLASH_EQ",
	PERCENT:          "PERCENT",
	PERCENT_EQ:       "PERCENT_EQ",
	AMPERSAND:        "AMPERSAND",
	AMPERSAND_EQ:     "AMPERSAND_EQ",
	CARET:            "CARET",
	CARET_EQ:         "CARET_EQ",
	PIPE:             "PIPE",
	PIPE_EQ:          "PIPE_EQ",
	EQUALS:           "EQUALS",
	EQ_EQ:            "EQ_EQ",
	NOT:              "NOT",
	NOT_EQ:           "NOT_EQ",
	LT:               "LT",
	LT_EQ:            "LT_EQ",
	LSHIFT:           "LSHIFT",
	LSHIFT_EQ:        "LSHIFT_EQ",
	GT:               "GT",
	GT_EQ:            "GT_EQ",
	RSHIFT:           "RSHIFT",
	RSHIFT_EQ:        "RSHIFT_EQ",
	DOT:              "DOT",
	DOT_DOT:          "DOT_DOT",
	DOT_DOT_DOT:      "DOT_DOT_DOT",

	KEYWORD_ALIGN:       "KEYWORD_ALIGN",
	KEYWORD_AND:         "KEYWORD_AND",
	KEYWORD_ASM:         "KEYWORD_ASM",
	KEYWORD_BREAK:       "KEYWORD_BREAK",
	KEYWORD_CATCH:       "KEYWORD_CATCH",
	KEYWORD_COMPTIME:    "KEYWORD_COMPTIME",
	KEYWORD_CONST:       "KEYWORD_CONST",
	KEYWORD_CONTINUE:    "KEYWORD_CONTINUE",
	KEYWORD_DEFER:       "KEYWORD_DEFER",
	KEYWORD_ELSE:        "KEYWORD_ELSE",
	KEYWORD_ENUM:        "KEYWORD_ENUM",
	KEYWORD_ERROR:       "KEYWORD_ERROR",
	KEYWORD_EXPORT:      "KEYWORD_EXPORT",
	KEYWORD_EXTERN:      "KEYWORD_EXTERN",
	KEYWORD_FN:          "KEYWORD_FN",
	KEYWORD_FOR:         "KEYWORD_FOR",
	KEYWORD_IF:          "KEYWORD_IF",
	KEYWORD_INLINE:      "KEYWORD_INLINE",
	KEYWORD_NOALIAS:     "KEYWORD_NOALIAS",
	KEYWORD_OR:          "KEYWORD_OR",
	KEYWORD_ORELSE:      "KEYWORD_ORELSE",
	KEYWORD_PACKED:      "KEYWORD_PACKED",
	KEYWORD_PUB:         "KEYWORD_PUB",
	KEYWORD_RETURN:      "KEYWORD_RETURN",
	KEYWORD_STRUCT:      "KEYWORD_STRUCT",
	KEYWORD_SWITCH:      "KEYWORD_SWITCH",
	KEYWORD_TEST:        "KEYWORD_TEST",
	KEYWORD_TRY:         "KEYWORD_TRY",
	KEYWORD_UNION:       "KEYWORD_UNION",
	KEYWORD_UNREACHABLE: "KEYWORD_UNREACHABLE",
	KEYWORD_VAR:         "KEYWORD_VAR",
	KEYWORD_VOLATILE:    "KEYWORD_VOLATILE",
	KEYWORD_WHILE:       "KEYWORD_WHILE",
}

// tokenKindsByName is the reverse of tokenKindNames, for CLI kind filters.
var tokenKindsByName = func() map[string]TokenKind {
	m := make(map[string]TokenKind, len(tokenKindNames))
	for kind, name := range tokenKindNames {
		m[name] = kind
	}
	return m
}()

// String returns the display name of the token kind.
func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseKind resolves a display name back to its token kind.
func ParseKind(name string) (TokenKind, bool) {
	kind, ok := tokenKindsByName[name]
	return kind, ok
}

// KindNames returns the display names of every token kind, for building
// candidate lists (kind filters, suggestions).
func KindNames() []string {
	names := make([]string, 0, len(tokenKindNames))
	for _, name := range tokenKindNames {
		names = append(names, name)
	}
	return names
}

// String renders the token for debugging: kind, position, and payload.
func (t Token) String() string {
	switch {
	case hasTextPayload(t.Kind):
		return fmt.Sprintf("%s(%q) %d:%d", t.Kind, t.Text, t.Span.StartLine, t.Span.StartColumn)
	case t.Kind == INTEGER:
		return fmt.Sprintf("%s(%d) %d:%d", t.Kind, t.Int, t.Span.StartLine, t.Span.StartColumn)
	case t.Kind == FLOAT:
		return fmt.Sprintf("%s(%g) %d:%d", t.Kind, t.Float, t.Span.StartLine, t.Span.StartColumn)
	case t.Kind == CHAR:
		return fmt.Sprintf("%s(%q) %d:%d", t.Kind, t.Char, t.Span.StartLine, t.Span.StartColumn)
	case t.Kind == INVALID:
		return fmt.Sprintf("%s(%s) %d:%d", t.Kind, t.Err, t.Span.StartLine, t.Span.StartColumn)
	default:
		return fmt.Sprintf("%s %d:%d", t.Kind, t.Span.StartLine, t.Span.StartColumn)
	}
}
