// Package tokfmt defines a serializable interchange form for token streams.
//
// The in-memory lexer.Token carries interned byte slices and a union payload;
// this package flattens it into a Record suitable for deterministic CBOR
// encoding, JSON output, and content hashing, so downstream documentation
// tooling can cache and diff tokenized files byte-for-byte.
package tokfmt

import (
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/emekoi/zig-docgen/lexer"
)

// FormatVersion is bumped whenever the encoded shape of Stream changes in a
// way that invalidates previously computed hashes.
const FormatVersion uint8 = 1

// Record is one token in interchange form. Payload fields are populated
// according to Kind and zero otherwise, mirroring the union in lexer.Token.
type Record struct {
	Kind        string  `json:"kind"`
	StartByte   int     `json:"start_byte"`
	EndByte     int     `json:"end_byte"`
	StartLine   int     `json:"start_line"`
	StartColumn int     `json:"start_column"`
	Text        string  `json:"text,omitempty"`
	Int         uint64  `json:"int,omitempty"`
	Float       float64 `json:"float,omitempty"`
	Char        byte    `json:"char,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// Stream is a tokenized file in interchange form: the good tokens in source
// order plus the recovered errors, under a format version and a source label.
type Stream struct {
	Version uint8    `json:"version"`
	Source  string   `json:"source"`
	Tokens  []Record `json:"tokens"`
	Errors  []Record `json:"errors,omitempty"`
}

// FromToken flattens one token into interchange form.
func FromToken(tok lexer.Token) Record {
	r := Record{
		Kind:        tok.Kind.String(),
		StartByte:   tok.Span.StartByte,
		EndByte:     tok.Span.EndByte,
		StartLine:   tok.Span.StartLine,
		StartColumn: tok.Span.StartColumn,
	}
	switch tok.Kind {
	case lexer.INTEGER:
		r.Int = tok.Int
	case lexer.FLOAT:
		r.Float = tok.Float
	case lexer.CHAR:
		r.Char = tok.Char
	case lexer.INVALID:
		r.Error = tok.Err.String()
	default:
		if tok.Text != nil {
			r.Text = string(tok.Text)
		}
	}
	return r
}

// NewStream builds the interchange form for a fully processed tokenizer.
// The source label is informational (a file path or "<stdin>") and is part
// of the hashed content, so identical token streams from different files
// hash differently.
func NewStream(source string, tokens, errors []lexer.Token) *Stream {
	s := &Stream{
		Version: FormatVersion,
		Source:  source,
		Tokens:  make([]Record, len(tokens)),
	}
	for i, tok := range tokens {
		s.Tokens[i] = FromToken(tok)
	}
	for _, tok := range errors {
		s.Errors = append(s.Errors, FromToken(tok))
	}
	return s
}

// MarshalBinary produces a deterministic CBOR encoding of the stream,
// byte-for-byte stable across runs.
func (s *Stream) MarshalBinary() ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}

	// Type alias so CBOR does not recurse back into MarshalBinary.
	type streamAlias Stream
	alias := (*streamAlias)(s)

	data, err := encMode.Marshal(alias)
	if err != nil {
		return nil, fmt.Errorf("CBOR encoding failed: %w", err)
	}
	return data, nil
}

// Hash computes the SHA-256 digest of the canonical encoding, used as a
// cache key for tokenized files.
func (s *Stream) Hash() ([32]byte, error) {
	data, err := s.MarshalBinary()
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(data), nil
}
