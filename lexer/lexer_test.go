package lexer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tokenExpectation is the flattened form of a token used across the test
// suite. Only the payload field matching Kind is ever set.
type tokenExpectation struct {
	Kind   TokenKind
	Text   string
	Int    uint64
	Float  float64
	Char   byte
	Err    ErrorKind
	Line   int
	Column int
}

func flatten(tokens []Token) []tokenExpectation {
	var out []tokenExpectation
	for _, tok := range tokens {
		out = append(out, tokenExpectation{
			Kind:   tok.Kind,
			Text:   string(tok.Text),
			Int:    tok.Int,
			Float:  tok.Float,
			Char:   tok.Char,
			Err:    tok.Err,
			Line:   tok.Span.StartLine,
			Column: tok.Span.StartColumn,
		})
	}
	return out
}

// assertTokens tokenizes input to completion and compares the token stream.
// It fails on any entry in the error stream; use assertErrors for inputs that
// are expected to be malformed.
func assertTokens(t *testing.T, input string, expected []tokenExpectation) {
	t.Helper()

	tz := New([]byte(input))
	if err := tz.Process(); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(tz.Errors()) != 0 {
		t.Fatalf("unexpected lexical errors: %v", tz.Errors())
	}
	if diff := cmp.Diff(expected, flatten(tz.Tokens())); diff != "" {
		t.Errorf("token mismatch (-expected +actual):\n%s", diff)
	}
}

// assertErrors tokenizes input to completion and compares both streams.
func assertErrors(t *testing.T, input string, expectedTokens, expectedErrors []tokenExpectation) {
	t.Helper()

	tz := New([]byte(input))
	if err := tz.Process(); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if diff := cmp.Diff(expectedTokens, flatten(tz.Tokens())); diff != "" {
		t.Errorf("token mismatch (-expected +actual):\n%s", diff)
	}
	if diff := cmp.Diff(expectedErrors, flatten(tz.Errors())); diff != "" {
		t.Errorf("error mismatch (-expected +actual):\n%s", diff)
	}
}

func TestEmptyInput(t *testing.T) {
	assertTokens(t, "", []tokenExpectation{
		{Kind: EOF, Line: 1, Column: 1},
	})
}

func TestWhitespaceOnly(t *testing.T) {
	assertTokens(t, " \t\r\n  ", []tokenExpectation{
		{Kind: EOF, Line: 2, Column: 3},
	})
}

func TestFnMainEndToEnd(t *testing.T) {
	assertTokens(t, "fn main() {}", []tokenExpectation{
		{Kind: KEYWORD_FN, Line: 1, Column: 1},
		{Kind: SYMBOL, Text: "main", Line: 1, Column: 4},
		{Kind: LPAREN, Line: 1, Column: 8},
		{Kind: RPAREN, Line: 1, Column: 9},
		{Kind: LBRACE, Line: 1, Column: 11},
		{Kind: RBRACE, Line: 1, Column: 12},
		{Kind: EOF, Line: 1, Column: 13},
	})

	// Byte spans must be strictly increasing and well-formed.
	tz := New([]byte("fn main() {}"))
	if err := tz.Process(); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	prevEnd := 0
	for _, tok := range tz.Tokens() {
		if tok.Kind != EOF && tok.Span.StartByte >= tok.Span.EndByte {
			t.Errorf("empty span for %s", tok)
		}
		if tok.Span.StartByte < prevEnd {
			t.Errorf("span regressed for %s", tok)
		}
		prevEnd = tok.Span.EndByte
	}
}

func TestErrorRecovery(t *testing.T) {
	// One malformed char literal, then perfectly valid tokens: exactly one
	// entry in the error stream and every subsequent token intact.
	assertErrors(t, "'ab' const x = 1",
		[]tokenExpectation{
			{Kind: KEYWORD_CONST, Line: 1, Column: 6},
			{Kind: SYMBOL, Text: "x", Line: 1, Column: 12},
			{Kind: EQUALS, Line: 1, Column: 14},
			{Kind: INTEGER, Int: 1, Line: 1, Column: 16},
			{Kind: EOF, Line: 1, Column: 17},
		},
		[]tokenExpectation{
			{Kind: INVALID, Err: ErrExtraCharLiteralData, Line: 1, Column: 1},
		})
}

func TestInvalidCharacter(t *testing.T) {
	assertErrors(t, "a $ b",
		[]tokenExpectation{
			{Kind: SYMBOL, Text: "a", Line: 1, Column: 1},
			{Kind: SYMBOL, Text: "b", Line: 1, Column: 5},
			{Kind: EOF, Line: 1, Column: 6},
		},
		[]tokenExpectation{
			{Kind: INVALID, Err: ErrInvalidCharacter, Line: 1, Column: 3},
		})
}

func TestEofIsSticky(t *testing.T) {
	tz := New([]byte("x"))
	tok, err := tz.NextToken()
	if err != nil || tok.Kind != SYMBOL {
		t.Fatalf("expected SYMBOL, got %v (%v)", tok, err)
	}
	for i := 0; i < 3; i++ {
		tok, err = tz.NextToken()
		if err != nil || tok.Kind != EOF {
			t.Fatalf("expected sticky EOF, got %v (%v)", tok, err)
		}
	}
}

func TestNextTokenReturnsTypedError(t *testing.T) {
	tz := New([]byte(`"unterminated`))
	_, err := tz.NextToken()
	lexErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if lexErr.Kind != ErrEofWhileParsingLiteral {
		t.Errorf("expected EOF_WHILE_PARSING_LITERAL, got %s", lexErr.Kind)
	}
}

func BenchmarkTokenizer(b *testing.B) {
	input := []byte(strings.Repeat(
		"//! module docs\nfn add(a: i32, b: i32) -> i32 { return a +% b; }\nconst s = \"hi\\n\";\n", 100))
	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	for i := 0; i < b.N; i++ {
		tz := New(input)
		if err := tz.Process(); err != nil {
			b.Fatal(err)
		}
	}
}
