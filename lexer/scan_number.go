package lexer

import (
	"math"
	"math/bits"
)

// lexNumber handles integer and float literals in all four radixes. The
// radix prefixes 0b/0o/0x are recognized only when the literal begins with an
// ASCII '0'; a leading 1-9 always parses as plain decimal.
func (t *Tokenizer) lexNumber() (Token, error) {
	first := t.peek(0)
	t.advance(1)

	radix := uint64(10)
	seed := uint64(first - '0')
	if first == '0' {
		switch t.peek(0) {
		case 'b':
			t.advance(1)
			radix = 2
		case 'o':
			t.advance(1)
			radix = 8
		case 'x':
			t.advance(1)
			radix = 16
		}
	}

	value, _ := t.scanDigits(radix, seed)

	if t.peek(0) == '.' {
		t.advance(1)
		return t.lexFloatTail(radix, value)
	}
	return newIntToken(t.span(), value), nil
}

// scanDigits accumulates digits under radix into a 64-bit value, starting
// from seed. On multiply or add overflow the overflowed step is discarded and
// the accumulator saturates at its last valid value; subsequent digits are
// still consumed so the cursor clears the full literal. Stops without
// consuming at the first byte that fails digit classification. Returns the
// accumulated value and the number of digits consumed.
func (t *Tokenizer) scanDigits(radix, seed uint64) (uint64, int) {
	acc := seed
	digits := 0
	overflowed := false
	for {
		d, errKind := digitValue(radix, t.peek(0))
		if errKind != ErrNone {
			return acc, digits
		}
		t.advance(1)
		digits++
		if overflowed {
			continue
		}
		hi, lo := bits.Mul64(acc, radix)
		sum, carry := bits.Add64(lo, d, 0)
		if hi != 0 || carry != 0 {
			overflowed = true
			continue
		}
		acc = sum
	}
}

// lexFloatTail parses the fractional digits and optional exponent after the
// consumed '.', combining them with the already-accumulated whole part.
// Fractional digits are scaled by radix^-digitCount; the exponent marker is
// 'e'/'E' (base-10 exponent) for decimal literals and 'p'/'P' (base-2
// exponent, hex-float semantics) for hexadecimal ones. All arithmetic is
// double precision; there is no arbitrary-precision fallback.
func (t *Tokenizer) lexFloatTail(radix, whole uint64) (Token, error) {
	frac, digits := t.scanDigits(radix, 0)

	value := float64(whole)
	if digits > 0 {
		value += float64(frac) / math.Pow(float64(radix), float64(digits))
	}

	var expBase float64
	switch {
	case radix == 10 && (t.peek(0) == 'e' || t.peek(0) == 'E'):
		expBase = 10
	case radix == 16 && (t.peek(0) == 'p' || t.peek(0) == 'P'):
		expBase = 2
	default:
		return newFloatToken(t.span(), value), nil
	}
	t.advance(1)

	negative := false
	switch t.peek(0) {
	case '+':
		t.advance(1)
	case '-':
		t.advance(1)
		negative = true
	}

	// The exponent itself is always a decimal integer.
	exp, _ := t.scanDigits(10, 0)
	scale := math.Pow(expBase, float64(exp))
	if negative {
		value /= scale
	} else {
		value *= scale
	}
	return newFloatToken(t.span(), value), nil
}
