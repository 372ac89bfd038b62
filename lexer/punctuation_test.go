package lexer

import "testing"

// TestOperators covers the whole operator table, one input per variant.
func TestOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"+", PLUS},
		{"+=", PLUS_EQ},
		{"++", PLUS_PLUS},
		{"+%", PLUS_PERCENT},
		{"+%=", PLUS_PERCENT_EQ},
		{"-", MINUS},
		{"-=", MINUS_EQ},
		{"->", ARROW},
		{"-%", MINUS_PERCENT},
		{"-%=", MINUS_PERCENT_EQ},
		{"*", STAR},
		{"*=", STAR_EQ},
		{"**", STAR_STAR},
		{"*%", STAR_PERCENT},
		{"*%=", STAR_PERCENT_EQ},
		{"/", SLASH},
		{"/=", SLASH_EQ},
		{"%", PERCENT},
		{"%=", PERCENT_EQ},
		{"&", AMPERSAND},
		{"&=", AMPERSAND_EQ},
		{"^", CARET},
		{"^=", CARET_EQ},
		{"|", PIPE},
		{"|=", PIPE_EQ},
		{"=", EQUALS},
		{"==", EQ_EQ},
		{"!", NOT},
		{"!=", NOT_EQ},
		{"<", LT},
		{"<=", LT_EQ},
		{"<<", LSHIFT},
		{"<<=", LSHIFT_EQ},
		{">", GT},
		{">=", GT_EQ},
		{">>", RSHIFT},
		{">>=", RSHIFT_EQ},
		{".", DOT},
		{"..", DOT_DOT},
		{"...", DOT_DOT_DOT},
		{"?", QUESTION},
		{"@", AT},
		{"~", TILDE},
		{"(", LPAREN},
		{")", RPAREN},
		{"{", LBRACE},
		{"}", RBRACE},
		{"[", LSQUARE},
		{"]", RSQUARE},
		{",", COMMA},
		{";", SEMICOLON},
		{":", COLON},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assertTokens(t, tt.input, []tokenExpectation{
				{Kind: tt.kind, Line: 1, Column: 1},
				{Kind: EOF, Line: 1, Column: len(tt.input) + 1},
			})
		})
	}
}

// TestMaximalMunch checks that the longest operator always wins and that
// adjacent shorter forms are never produced.
func TestMaximalMunch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "shift_right_assign_is_one_token",
			input: ">>=",
			expected: []tokenExpectation{
				{Kind: RSHIFT_EQ, Line: 1, Column: 1},
				{Kind: EOF, Line: 1, Column: 4},
			},
		},
		{
			name:  "separated_angles_stay_separate",
			input: "> > =",
			expected: []tokenExpectation{
				{Kind: GT, Line: 1, Column: 1},
				{Kind: GT, Line: 1, Column: 3},
				{Kind: EQUALS, Line: 1, Column: 5},
				{Kind: EOF, Line: 1, Column: 6},
			},
		},
		{
			name:  "four_dots_split_three_one",
			input: "....",
			expected: []tokenExpectation{
				{Kind: DOT_DOT_DOT, Line: 1, Column: 1},
				{Kind: DOT, Line: 1, Column: 4},
				{Kind: EOF, Line: 1, Column: 5},
			},
		},
		{
			name:  "shift_then_shift_assign",
			input: "<<<<=",
			expected: []tokenExpectation{
				{Kind: LSHIFT, Line: 1, Column: 1},
				{Kind: LSHIFT_EQ, Line: 1, Column: 3},
				{Kind: EOF, Line: 1, Column: 6},
			},
		},
		{
			name:  "wrapping_add_assign_then_equals",
			input: "+%==",
			expected: []tokenExpectation{
				{Kind: PLUS_PERCENT_EQ, Line: 1, Column: 1},
				{Kind: EQUALS, Line: 1, Column: 4},
				{Kind: EOF, Line: 1, Column: 5},
			},
		},
		{
			name:  "bang_then_bang_equal",
			input: "!!=",
			expected: []tokenExpectation{
				{Kind: NOT, Line: 1, Column: 1},
				{Kind: NOT_EQ, Line: 1, Column: 2},
				{Kind: EOF, Line: 1, Column: 4},
			},
		},
		{
			name:  "arrow_vs_minus",
			input: "->-",
			expected: []tokenExpectation{
				{Kind: ARROW, Line: 1, Column: 1},
				{Kind: MINUS, Line: 1, Column: 3},
				{Kind: EOF, Line: 1, Column: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

// TestOperatorSequences checks dense expression-like input.
func TestOperatorSequences(t *testing.T) {
	assertTokens(t, "a+=b>>2", []tokenExpectation{
		{Kind: SYMBOL, Text: "a", Line: 1, Column: 1},
		{Kind: PLUS_EQ, Line: 1, Column: 2},
		{Kind: SYMBOL, Text: "b", Line: 1, Column: 4},
		{Kind: RSHIFT, Line: 1, Column: 5},
		{Kind: INTEGER, Int: 2, Line: 1, Column: 7},
		{Kind: EOF, Line: 1, Column: 8},
	})

	assertTokens(t, "x.y..z", []tokenExpectation{
		{Kind: SYMBOL, Text: "x", Line: 1, Column: 1},
		{Kind: DOT, Line: 1, Column: 2},
		{Kind: SYMBOL, Text: "y", Line: 1, Column: 3},
		{Kind: DOT_DOT, Line: 1, Column: 4},
		{Kind: SYMBOL, Text: "z", Line: 1, Column: 6},
		{Kind: EOF, Line: 1, Column: 7},
	})
}
