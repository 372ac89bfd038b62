package lexer

import "fmt"

// ErrorKind enumerates the recoverable literal-scanning failures. None of
// these are engine-fatal: the cursor has already advanced past the consumed
// bytes when one is raised, so scanning can resume at the current position.
type ErrorKind int

const (
	ErrNone ErrorKind = iota

	ErrInvalidCharacter               // byte matches no dispatch rule
	ErrInvalidCharacterAfterBackslash // \ followed by a byte that starts no \\ segment or escape
	ErrMissingCharLiteralData         // '' empty char literal
	ErrExtraCharLiteralData           // char literal body is not exactly one decoded byte
	ErrEofWhileParsingLiteral         // buffer exhausted inside a string/char literal
	ErrNewlineInStringLiteral         // raw newline inside a double-quoted string
	ErrUnicodeCharCodeOutOfRange      // decoded Unicode escape exceeds 0x10FFFF
	ErrBadValueForRadix               // digit value too large for the requested radix
	ErrValueOutOfRange                // byte is not an alphanumeric ASCII character
)

var errorKindNames = map[ErrorKind]string{
	ErrNone:                           "NONE",
	ErrInvalidCharacter:               "INVALID_CHARACTER",
	ErrInvalidCharacterAfterBackslash: "INVALID_CHARACTER_AFTER_BACKSLASH",
	ErrMissingCharLiteralData:         "MISSING_CHAR_LITERAL_DATA",
	ErrExtraCharLiteralData:           "EXTRA_CHAR_LITERAL_DATA",
	ErrEofWhileParsingLiteral:         "EOF_WHILE_PARSING_LITERAL",
	ErrNewlineInStringLiteral:         "NEWLINE_IN_STRING_LITERAL",
	ErrUnicodeCharCodeOutOfRange:      "UNICODE_CHAR_CODE_OUT_OF_RANGE",
	ErrBadValueForRadix:               "BAD_VALUE_FOR_RADIX",
	ErrValueOutOfRange:                "VALUE_OUT_OF_RANGE",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Error is a typed lexical failure. It aborts the token whose scan raised it;
// the driving loop decides whether to halt or to catalog it and resume.
type Error struct {
	Kind ErrorKind
	Span Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.StartLine, e.Span.StartColumn, e.Kind)
}
