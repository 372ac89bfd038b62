package lexer

// ASCII character lookup tables for fast classification (zero-allocation).
// All source scanning is byte-oriented: the buffer is assumed valid UTF-8 and
// multi-byte sequences pass through untouched, so only ASCII classes matter.
var (
	isWhitespace [128]bool // space, tab, carriage return, newline
	isDigit      [128]bool // 0-9
	isIdentStart [128]bool // a-z, A-Z, _
	isIdentPart  [128]bool // identStart or digit
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)

		isWhitespace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
		isDigit[i] = '0' <= ch && ch <= '9'
		isIdentStart[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
		isIdentPart[i] = isIdentStart[i] || isDigit[i]
	}
}

// digitValue maps a byte to its digit value under radix: '0'-'9' to 0-9 and
// 'a'-'z'/'A'-'Z' to 10-35. It fails with ErrValueOutOfRange for non-ASCII
// alphanumerics and ErrBadValueForRadix for values not representable in radix.
// Used uniformly for binary, octal, decimal, and hex digit recognition.
func digitValue(radix uint64, ch byte) (uint64, ErrorKind) {
	var value uint64
	switch {
	case '0' <= ch && ch <= '9':
		value = uint64(ch - '0')
	case 'a' <= ch && ch <= 'z':
		value = uint64(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		value = uint64(ch-'A') + 10
	default:
		return 0, ErrValueOutOfRange
	}
	if value >= radix {
		return 0, ErrBadValueForRadix
	}
	return value, ErrNone
}
