package lexer

// Interner deduplicates textual token payloads. Equal content always yields
// the same canonical slice after the first insertion, so at most one live
// allocation exists per distinct spelling across a tokenization run and
// downstream symbol tables can compare references instead of bytes.
type Interner struct {
	entries map[string][]byte
}

func newInterner() *Interner {
	return &Interner{entries: make(map[string][]byte)}
}

// Intern takes ownership of buf. On a content hit the incoming buffer is
// discarded and the existing canonical slice returned; on a miss buf itself
// becomes the canonical entry. Callers must not mutate buf after the call.
func (in *Interner) Intern(buf []byte) []byte {
	if canonical, ok := in.entries[string(buf)]; ok {
		return canonical
	}
	in.entries[string(buf)] = buf
	return buf
}

// Size returns the number of distinct entries.
func (in *Interner) Size() int {
	return len(in.entries)
}
