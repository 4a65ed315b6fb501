package naming

import (
	"io"
	"sync/atomic"
)

// Symbol is the canonical handle for one interned byte sequence.
// Two symbols from the same Table are equal iff they are the same pointer.
type Symbol struct {
	table  *Table
	index  int
	length int
	next   *Symbol
	text   atomic.Pointer[string]
}

// Index returns the arena offset of the symbol's bytes. It is stable for
// the lifetime of the table.
func (s *Symbol) Index() int {
	return s.index
}

// Len returns the UTF-8 length of the symbol in bytes.
func (s *Symbol) Len() int {
	return s.length
}

// Bytes returns the UTF-8 content. The returned slice must not be modified.
func (s *Symbol) Bytes() []byte {
	return s.table.arena[s.index : s.index+s.length]
}

// AppendRunes appends the symbol's characters to dst.
func (s *Symbol) AppendRunes(dst []rune) []rune {
	return decodeRunes(dst, s.Bytes())
}

// WriteTo writes the symbol's characters to w as standard UTF-8.
func (s *Symbol) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// String materializes the symbol text once and keeps it.
func (s *Symbol) String() string {
	if p := s.text.Load(); p != nil {
		return *p
	}
	str := string(s.AppendRunes(make([]rune, 0, s.length)))
	s.text.Store(&str)
	return str
}

// Compare orders symbols by byte length, then by the first differing byte.
// Symbols from different tables with equal content compare equal.
func (s *Symbol) Compare(o *Symbol) int {
	if s == o {
		return 0
	}
	if s.length != o.length {
		return s.length - o.length
	}
	a, b := s.Bytes(), o.Bytes()
	for i := range a {
		if d := int(a[i]) - int(b[i]); d != 0 {
			return d
		}
	}
	return 0
}
