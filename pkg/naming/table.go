// Package naming interns identifier text into small stable handles.
//
// A Table owns an append-only byte arena holding the UTF-8 form of every
// symbol it has seen. Symbols from the same table are compared by
// identity; the byte arena offset doubles as the symbol's index, which
// callers use as a key into dense side tables.
package naming

import (
	"errors"
	"fmt"
)

// Default sizing for NewTable.
const (
	DefaultBuckets   = 0x8000
	DefaultArenaSize = 0x20000
)

// ErrNotFound is returned by Table.ByIndex when no symbol starts at the
// requested index.
var ErrNotFound = errors.New("symbol not found")

// Table is a hash-bucketed symbol interner.
//
// A Table is single-writer: concurrent Intern calls need external locking.
type Table struct {
	buckets []*Symbol
	mask    int
	arena   []byte
	used    int
	count   int
}

// NewTable creates a table with the default bucket count and arena size.
func NewTable() *Table {
	return NewTableSize(DefaultBuckets, DefaultArenaSize)
}

// NewTableSize creates a table with the given bucket count, which must be
// a power of two, and initial arena size in bytes.
func NewTableSize(buckets, arenaSize int) *Table {
	if buckets <= 0 || buckets&(buckets-1) != 0 {
		panic(fmt.Sprintf("naming: bucket count %d is not a power of two", buckets))
	}
	if arenaSize < 1 {
		arenaSize = 1
	}
	return &Table{
		buckets: make([]*Symbol, buckets),
		mask:    buckets - 1,
		arena:   make([]byte, arenaSize),
	}
}

// Len returns the number of distinct symbols in the table.
func (t *Table) Len() int {
	return t.count
}

// Intern returns the canonical symbol for s.
func (t *Table) Intern(s string) *Symbol {
	r := []rune(s)
	return t.InternRunes(r, 0, len(r))
}

// InternRunes returns the canonical symbol for buf[start:start+length].
func (t *Table) InternRunes(buf []rune, start, length int) *Symbol {
	used := t.used
	for used+length*utfMax >= len(t.arena) {
		grown := make([]byte, len(t.arena)*2)
		copy(grown, t.arena)
		t.arena = grown
	}

	n := encodeRunes(t.arena[used:], buf[start:start+length])
	h := hashBytes(t.arena[used:used+n]) & t.mask

	sym := t.buckets[h]
	for sym != nil && (sym.length != n || !t.equalAt(sym.index, used, n)) {
		sym = sym.next
	}
	if sym != nil {
		return sym
	}

	sym = &Symbol{table: t, index: used, length: n, next: t.buckets[h]}
	t.buckets[h] = sym
	t.used = used + n
	if n == 0 {
		// keep offsets distinct from the next symbol
		t.used++
	}
	t.count++
	return sym
}

// ByIndex returns the symbol whose bytes start at arena offset index.
// It walks every bucket and is meant for debugging.
func (t *Table) ByIndex(index int) (*Symbol, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: index #%d can not be negative", ErrNotFound, index)
	}
	for _, head := range t.buckets {
		for s := head; s != nil; s = s.next {
			if s.index == index {
				return s, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: no symbol with index #%d", ErrNotFound, index)
}

func (t *Table) equalAt(a, b, n int) bool {
	for i := 0; i < n; i++ {
		if t.arena[a+i] != t.arena[b+i] {
			return false
		}
	}
	return true
}

func hashBytes(b []byte) int {
	var h int32
	for _, c := range b {
		h = h*31 + int32(c)
	}
	return int(h)
}
