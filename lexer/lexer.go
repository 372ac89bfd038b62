package lexer

import (
	"errors"
	"log/slog"
	"os"
)

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithLogger overrides the debug logger. By default the tokenizer logs at
// debug level only when ZIG_DOCGEN_DEBUG_LEXER is set in the environment.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tokenizer) {
		t.logger = logger
	}
}

// Tokenizer owns the cursor, the intern table, and the token/error streams
// for a single source buffer. It is created once per buffer, driven to
// completion, then queried or closed; it is not safe for concurrent use and
// does not support incremental re-tokenization.
type Tokenizer struct {
	src    []byte // borrowed, not owned; must outlive the tokenizer
	offset int
	line   int // 1-based, of the next unconsumed byte
	column int // 1-based, of the next unconsumed byte

	// Token start, captured by mark() before dispatch.
	startByte   int
	startLine   int
	startColumn int

	interner *Interner
	tokens   []Token
	errs     []Token

	logger *slog.Logger
}

// New creates a tokenizer for src with empty token/error collections and an
// empty intern table.
func New(src []byte, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		src:      src,
		line:     1,
		column:   1,
		interner: newInterner(),
		logger:   defaultLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// defaultLogger builds a stderr text logger with timestamps stripped. Debug
// output is suppressed unless ZIG_DOCGEN_DEBUG_LEXER is set.
func defaultLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("ZIG_DOCGEN_DEBUG_LEXER") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// Process drives the tokenizer over the whole buffer. Tokens land in source
// order in the token stream; recoverable literal failures become INVALID
// tokens in the error stream and scanning resumes from the cursor position.
func (t *Tokenizer) Process() error {
	for {
		tok, err := t.NextToken()
		if err != nil {
			var lexErr *Error
			if errors.As(err, &lexErr) {
				t.logger.Debug("recoverable lexical error",
					"kind", lexErr.Kind,
					"line", lexErr.Span.StartLine,
					"column", lexErr.Span.StartColumn)
				t.errs = append(t.errs, newInvalidToken(lexErr.Span, lexErr.Kind))
				continue
			}
			return err
		}
		t.tokens = append(t.tokens, tok)
		if tok.Kind == EOF {
			return nil
		}
	}
}

// Tokens returns the tokens emitted so far, in source order.
func (t *Tokenizer) Tokens() []Token {
	return t.tokens
}

// Errors returns the INVALID tokens recorded by Process, in source order.
func (t *Tokenizer) Errors() []Token {
	return t.errs
}

// Close releases the owned collections and the intern table. All previously
// returned interned references are invalidated.
func (t *Tokenizer) Close() {
	t.tokens = nil
	t.errs = nil
	t.interner = nil
}

// NextToken produces exactly one token. Literal-scanning failures are
// returned as a typed *Error; the cursor keeps its post-failure position so
// the caller can resume. Once the buffer is exhausted every call returns the
// terminal EOF token.
func (t *Tokenizer) NextToken() (Token, error) {
	for {
		t.mark()

		if t.atEOF() {
			return newToken(EOF, t.span()), nil
		}

		c := t.peek(0)
		if c < 128 && isWhitespace[c] {
			t.advance(1)
			continue
		}
		t.logger.Debug("token dispatch",
			"offset", t.offset, "line", t.line, "column", t.column, "ch", string(c))

		switch c {
		case '"':
			return t.lexStringBody(STRING)

		case '\'':
			return t.lexChar()

		case '@':
			t.advance(1)
			if t.peek(0) == '"' {
				// Alternate identifier spelling: @"..." is a SYMBOL whose
				// contents go through string escape decoding.
				return t.lexStringBody(SYMBOL)
			}
			return newToken(AT, t.span()), nil

		case '/':
			return t.lexSlash()

		case '\\':
			return t.lexBackslash()

		case '(':
			return t.punct(LPAREN), nil
		case ')':
			return t.punct(RPAREN), nil
		case '{':
			return t.punct(LBRACE), nil
		case '}':
			return t.punct(RBRACE), nil
		case '[':
			return t.punct(LSQUARE), nil
		case ']':
			return t.punct(RSQUARE), nil
		case ',':
			return t.punct(COMMA), nil
		case ';':
			return t.punct(SEMICOLON), nil
		case ':':
			return t.punct(COLON), nil
		case '~':
			return t.punct(TILDE), nil
		case '?':
			return t.punct(QUESTION), nil

		case '+':
			return t.lexPlus(), nil
		case '-':
			return t.lexMinus(), nil
		case '*':
			return t.lexStar(), nil
		case '%':
			return t.lexWithEq(PERCENT, PERCENT_EQ), nil
		case '&':
			return t.lexWithEq(AMPERSAND, AMPERSAND_EQ), nil
		case '^':
			return t.lexWithEq(CARET, CARET_EQ), nil
		case '|':
			return t.lexWithEq(PIPE, PIPE_EQ), nil
		case '=':
			return t.lexWithEq(EQUALS, EQ_EQ), nil
		case '!':
			return t.lexWithEq(NOT, NOT_EQ), nil
		case '<':
			return t.lexAngle(LT, LT_EQ, '<', LSHIFT, LSHIFT_EQ), nil
		case '>':
			return t.lexAngle(GT, GT_EQ, '>', RSHIFT, RSHIFT_EQ), nil
		case '.':
			return t.lexDot(), nil

		default:
			if c < 128 && isDigit[c] {
				return t.lexNumber()
			}
			if c < 128 && isIdentStart[c] {
				return t.lexIdentOrKeyword(), nil
			}
			t.advance(1)
			return Token{}, t.lexError(ErrInvalidCharacter)
		}
	}
}

// -----------------------------------------------------------------------------
// Cursor

// peek returns the byte k positions ahead of the cursor, or a zero sentinel
// past the end of the buffer. It never advances.
func (t *Tokenizer) peek(k int) byte {
	if t.offset+k >= len(t.src) {
		return 0
	}
	return t.src[t.offset+k]
}

// advance consumes up to k bytes, clamped to the remaining buffer. A consumed
// newline bumps the line and resets the column to 1.
func (t *Tokenizer) advance(k int) {
	for i := 0; i < k && t.offset < len(t.src); i++ {
		if t.src[t.offset] == '\n' {
			t.line++
			t.column = 1
		} else {
			t.column++
		}
		t.offset++
	}
}

func (t *Tokenizer) atEOF() bool {
	return t.offset >= len(t.src)
}

// mark records the current cursor position as the start of the next token.
func (t *Tokenizer) mark() {
	t.startByte = t.offset
	t.startLine = t.line
	t.startColumn = t.column
}

// span covers the bytes consumed since the last mark.
func (t *Tokenizer) span() Span {
	return Span{
		StartByte:   t.startByte,
		EndByte:     t.offset,
		StartLine:   t.startLine,
		StartColumn: t.startColumn,
	}
}

func (t *Tokenizer) lexError(kind ErrorKind) error {
	return &Error{Kind: kind, Span: t.span()}
}

// -----------------------------------------------------------------------------
// Identifiers, comments, operators

// lexIdentOrKeyword consumes a maximal run of identifier bytes. Reserved
// words become their keyword kind; everything else is an interned SYMBOL.
func (t *Tokenizer) lexIdentOrKeyword() Token {
	t.advance(1)
	for {
		c := t.peek(0)
		if c >= 128 || !isIdentPart[c] {
			break
		}
		t.advance(1)
	}

	spelling := t.src[t.startByte:t.offset]
	if kind, ok := keywords[string(spelling)]; ok {
		return newToken(kind, t.span())
	}

	buf := make([]byte, len(spelling))
	copy(buf, spelling)
	return newTextToken(SYMBOL, t.span(), t.interner.Intern(buf))
}

// lexSlash handles '/', '/=', and the three comment kinds. Comments are
// first-class tokens so documentation tooling can consume them.
func (t *Tokenizer) lexSlash() (Token, error) {
	t.advance(1)
	switch t.peek(0) {
	case '/':
		t.advance(1)
		kind := COMMENT
		switch t.peek(0) {
		case '!':
			t.advance(1)
			kind = MODULE_DOC_COMMENT
		case '/':
			t.advance(1)
			kind = DOC_COMMENT
		}
		body := t.lexLineBody()
		return newTextToken(kind, t.span(), t.interner.Intern(body)), nil
	case '=':
		t.advance(1)
		return newToken(SLASH_EQ, t.span()), nil
	default:
		return newToken(SLASH, t.span()), nil
	}
}

// lexBackslash handles \\ multi-line string segments: one physical line per
// token, captured like a comment body; consecutive segments are concatenated
// by the caller.
func (t *Tokenizer) lexBackslash() (Token, error) {
	t.advance(1)
	if t.peek(0) != '\\' {
		return Token{}, t.lexError(ErrInvalidCharacterAfterBackslash)
	}
	t.advance(1)
	body := t.lexLineBody()
	return newTextToken(MULTILINE_STRING_LINE, t.span(), t.interner.Intern(body)), nil
}

// lexLineBody accumulates bytes verbatim until a newline or end of input.
// The newline itself is not consumed.
func (t *Tokenizer) lexLineBody() []byte {
	buf := []byte{}
	for !t.atEOF() && t.peek(0) != '\n' {
		buf = append(buf, t.peek(0))
		t.advance(1)
	}
	return buf
}

// punct consumes one byte and emits a single-character token.
func (t *Tokenizer) punct(kind TokenKind) Token {
	t.advance(1)
	return newToken(kind, t.span())
}

// lexWithEq handles operators whose only long form is a trailing '='.
func (t *Tokenizer) lexWithEq(plain, withEq TokenKind) Token {
	t.advance(1)
	if t.peek(0) == '=' {
		t.advance(1)
		return newToken(withEq, t.span())
	}
	return newToken(plain, t.span())
}

// lexAngle handles '<'/'>': comparison, shift, and shift-assign forms.
// Maximal munch: '<<=' wins over '<<' wins over '<'.
func (t *Tokenizer) lexAngle(plain, withEq TokenKind, double byte, shift, shiftEq TokenKind) Token {
	t.advance(1)
	switch t.peek(0) {
	case '=':
		t.advance(1)
		return newToken(withEq, t.span())
	case double:
		t.advance(1)
		if t.peek(0) == '=' {
			t.advance(1)
			return newToken(shiftEq, t.span())
		}
		return newToken(shift, t.span())
	default:
		return newToken(plain, t.span())
	}
}

// lexPlus handles '+', '+=', '++', '+%', and '+%='.
func (t *Tokenizer) lexPlus() Token {
	t.advance(1)
	switch t.peek(0) {
	case '=':
		t.advance(1)
		return newToken(PLUS_EQ, t.span())
	case '+':
		t.advance(1)
		return newToken(PLUS_PLUS, t.span())
	case '%':
		t.advance(1)
		if t.peek(0) == '=' {
			t.advance(1)
			return newToken(PLUS_PERCENT_EQ, t.span())
		}
		return newToken(PLUS_PERCENT, t.span())
	default:
		return newToken(PLUS, t.span())
	}
}

// lexMinus handles '-', '-=', '->', '-%', and '-%='.
func (t *Tokenizer) lexMinus() Token {
	t.advance(1)
	switch t.peek(0) {
	case '=':
		t.advance(1)
		return newToken(MINUS_EQ, t.span())
	case '>':
		t.advance(1)
		return newToken(ARROW, t.span())
	case '%':
		t.advance(1)
		if t.peek(0) == '=' {
			t.advance(1)
			return newToken(MINUS_PERCENT_EQ, t.span())
		}
		return newToken(MINUS_PERCENT, t.span())
	default:
		return newToken(MINUS, t.span())
	}
}

// lexStar handles '*', '*=', '**', '*%', and '*%='.
func (t *Tokenizer) lexStar() Token {
	t.advance(1)
	switch t.peek(0) {
	case '=':
		t.advance(1)
		return newToken(STAR_EQ, t.span())
	case '*':
		t.advance(1)
		return newToken(STAR_STAR, t.span())
	case '%':
		t.advance(1)
		if t.peek(0) == '=' {
			t.advance(1)
			return newToken(STAR_PERCENT_EQ, t.span())
		}
		return newToken(STAR_PERCENT, t.span())
	default:
		return newToken(STAR, t.span())
	}
}

// lexDot handles '.', '..', and '...'.
func (t *Tokenizer) lexDot() Token {
	t.advance(1)
	if t.peek(0) == '.' {
		t.advance(1)
		if t.peek(0) == '.' {
			t.advance(1)
			return newToken(DOT_DOT_DOT, t.span())
		}
		return newToken(DOT_DOT, t.span())
	}
	return newToken(DOT, t.span())
}
