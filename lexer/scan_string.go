package lexer

// lexStringBody scans a double-quoted literal starting at the opening quote
// and emits a token of the given kind (STRING, or SYMBOL for the @"..."
// spelling) carrying the interned, escape-decoded contents.
func (t *Tokenizer) lexStringBody(kind TokenKind) (Token, error) {
	t.advance(1) // opening quote
	buf := []byte{}
	for {
		if t.atEOF() {
			return Token{}, t.lexError(ErrEofWhileParsingLiteral)
		}
		switch c := t.peek(0); c {
		case '"':
			t.advance(1)
			return newTextToken(kind, t.span(), t.interner.Intern(buf)), nil
		case '\n':
			return Token{}, t.lexError(ErrNewlineInStringLiteral)
		case '\\':
			t.advance(1)
			decoded, err := t.lexEscape()
			if err != nil {
				t.skipLiteralRemainder('"')
				return Token{}, err
			}
			buf = append(buf, decoded...)
		default:
			buf = append(buf, c)
			t.advance(1)
		}
	}
}

// lexChar scans a char literal starting at the opening quote. The body must
// decode to exactly one byte followed by the closing quote.
func (t *Tokenizer) lexChar() (Token, error) {
	t.advance(1) // opening quote
	if t.atEOF() {
		return Token{}, t.lexError(ErrEofWhileParsingLiteral)
	}

	var value byte
	switch c := t.peek(0); c {
	case '\'':
		t.advance(1)
		return Token{}, t.lexError(ErrMissingCharLiteralData)
	case '\\':
		t.advance(1)
		decoded, err := t.lexEscape()
		if err != nil {
			t.skipLiteralRemainder('\'')
			return Token{}, err
		}
		if len(decoded) != 1 {
			t.skipLiteralRemainder('\'')
			return Token{}, t.lexError(ErrExtraCharLiteralData)
		}
		value = decoded[0]
	default:
		value = c
		t.advance(1)
	}

	if t.atEOF() {
		return Token{}, t.lexError(ErrEofWhileParsingLiteral)
	}
	if t.peek(0) != '\'' {
		t.skipLiteralRemainder('\'')
		return Token{}, t.lexError(ErrExtraCharLiteralData)
	}
	t.advance(1)
	return newCharToken(t.span(), value), nil
}

// skipLiteralRemainder clears the rest of a malformed quoted literal so
// scanning resumes after its closing quote instead of inside the body.
// Bounded by the end of the physical line, which is never consumed.
func (t *Tokenizer) skipLiteralRemainder(quote byte) {
	for !t.atEOF() && t.peek(0) != '\n' {
		c := t.peek(0)
		t.advance(1)
		if c == quote {
			return
		}
	}
}

// lexEscape decodes the sequence after a consumed '\' and returns the bytes
// it stands for. The escape set is fixed: named single-byte escapes, \xHH,
// \uHHHH, and \UHHHHHH. Any other byte aborts the enclosing literal with a
// recoverable error; callers resync past the literal before resuming.
func (t *Tokenizer) lexEscape() ([]byte, error) {
	if t.atEOF() {
		return nil, t.lexError(ErrEofWhileParsingLiteral)
	}
	c := t.peek(0)
	t.advance(1)
	switch c {
	case 'n':
		return []byte{'\n'}, nil
	case 'r':
		return []byte{'\r'}, nil
	case 't':
		return []byte{'\t'}, nil
	case '\\':
		return []byte{'\\'}, nil
	case '\'':
		return []byte{'\''}, nil
	case '"':
		return []byte{'"'}, nil
	case 'x':
		return t.lexCharCode(16, 2, false)
	case 'u':
		return t.lexCharCode(16, 4, true)
	case 'U':
		return t.lexCharCode(16, 6, true)
	default:
		return nil, t.lexError(ErrInvalidCharacterAfterBackslash)
	}
}

// lexCharCode reads exactly digitCount digits under radix to form a code
// point. Unicode escapes are encoded to UTF-8 by the standard range
// boundaries; a raw \x escape emits the single byte unchanged.
func (t *Tokenizer) lexCharCode(radix uint64, digitCount int, isUnicode bool) ([]byte, error) {
	var code uint64
	for i := 0; i < digitCount; i++ {
		if t.atEOF() {
			return nil, t.lexError(ErrEofWhileParsingLiteral)
		}
		d, errKind := digitValue(radix, t.peek(0))
		if errKind != ErrNone {
			return nil, t.lexError(errKind)
		}
		t.advance(1)
		code = code*radix + d
	}

	if !isUnicode {
		return []byte{byte(code)}, nil
	}
	return encodeRune(code, t)
}

// encodeRune encodes a code point to UTF-8 by range boundaries. Values above
// 0x10FFFF are rejected; everything below passes through, matching the
// byte-oriented model (no surrogate filtering on this path).
func encodeRune(code uint64, t *Tokenizer) ([]byte, error) {
	switch {
	case code <= 0x7F:
		return []byte{byte(code)}, nil
	case code <= 0x7FF:
		return []byte{
			0xC0 | byte(code>>6),
			0x80 | byte(code&0x3F),
		}, nil
	case code <= 0xFFFF:
		return []byte{
			0xE0 | byte(code>>12),
			0x80 | byte(code>>6&0x3F),
			0x80 | byte(code&0x3F),
		}, nil
	case code <= 0x10FFFF:
		return []byte{
			0xF0 | byte(code>>18),
			0x80 | byte(code>>12&0x3F),
			0x80 | byte(code>>6&0x3F),
			0x80 | byte(code&0x3F),
		}, nil
	default:
		return nil, t.lexError(ErrUnicodeCharCodeOutOfRange)
	}
}
