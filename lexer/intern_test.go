package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternerDeduplicates(t *testing.T) {
	in := newInterner()

	a := in.Intern([]byte("hello"))
	b := in.Intern([]byte("hello"))

	assert.Equal(t, "hello", string(a))
	require.NotEmpty(t, b)
	// Same backing array: the second buffer was discarded in favor of the
	// canonical copy.
	assert.Same(t, &a[0], &b[0])
	assert.Equal(t, 1, in.Size())
}

func TestInternerDistinctSpellings(t *testing.T) {
	in := newInterner()

	a := in.Intern([]byte("foo"))
	b := in.Intern([]byte("bar"))

	assert.Equal(t, "foo", string(a))
	assert.Equal(t, "bar", string(b))
	assert.Equal(t, 2, in.Size())
}

func TestInternerEmptySpelling(t *testing.T) {
	in := newInterner()

	a := in.Intern([]byte{})
	assert.Empty(t, a)
	assert.Equal(t, 1, in.Size())
	assert.Equal(t, 1, in.Size(), "re-checking Size must not mutate the table")
}

// TestTokenizerSharesSpellings checks interning end to end: every occurrence
// of the same identifier points at one canonical byte slice, and spellings
// arriving via different token kinds (bare symbol, quoted symbol, string
// body) still collapse to a single entry.
func TestTokenizerSharesSpellings(t *testing.T) {
	tok := New([]byte(`foo foo @"foo" "foo"`))
	require.NoError(t, tok.Process())
	defer tok.Close()

	require.Empty(t, tok.Errors())
	tokens := tok.Tokens()
	require.Len(t, tokens, 5) // 3 symbols, 1 string, EOF

	first := tokens[0].Text
	require.NotEmpty(t, first)
	for i := 1; i < 4; i++ {
		assert.Equal(t, "foo", string(tokens[i].Text))
		assert.Same(t, &first[0], &tokens[i].Text[0], "token %d not interned", i)
	}
	assert.Equal(t, 1, tok.interner.Size())
}

// TestInternCountsUnderMixedInput checks the at-most-one-entry-per-spelling
// bound over a small program with repeats.
func TestInternCountsUnderMixedInput(t *testing.T) {
	src := `
// top
const x = "x";
const y = "x";
`
	tok := New([]byte(src))
	require.NoError(t, tok.Process())
	defer tok.Close()

	require.Empty(t, tok.Errors())
	// Distinct spellings: " top", "x", "y". The two "x" strings and the x
	// symbol share one entry.
	assert.Equal(t, 3, tok.interner.Size())
}
