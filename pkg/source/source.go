// Package source supplies the character buffers the lexer reads and
// translates buffer offsets back into lines and columns.
package source

import (
	"fmt"
	"io"
	"os"
)

// Layout characters the lexer treats specially.
const (
	TabInc = 8
	TAB    = '\t'
	LF     = '\n'
	FF     = '\f'
	CR     = '\r'
	// EOI marks the end of input inside a padded buffer.
	EOI = 0x1A
)

// NOPOS is the offset of something that has no position.
const NOPOS = -1

// Source provides a rune buffer with room for lookahead past its logical
// length.
type Source interface {
	// Name identifies the source in diagnostics.
	Name() string
	// Len is the logical number of runes.
	Len() int
	// Runes returns a buffer holding the content followed by at least
	// overflow spare slots.
	Runes(overflow int) []rune
}

// StringName is the name given to sources built from in-memory text when
// the caller does not supply one.
const StringName = "<string>"

// Buffer is an in-memory Source.
type Buffer struct {
	name  string
	runes []rune
	n     int
}

// FromString builds a Buffer from text.
func FromString(name, text string) *Buffer {
	if name == "" {
		name = StringName
	}
	r := []rune(text)
	return &Buffer{name: name, runes: r, n: len(r)}
}

// FromReader reads all of r into a Buffer.
func FromReader(name string, r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %s: %w", name, err)
	}
	return FromString(name, string(data)), nil
}

// ReadFile loads a file into a Buffer named after its path.
func ReadFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	defer f.Close()
	return FromReader(path, f)
}

// Name implements Source.
func (b *Buffer) Name() string { return b.name }

// Len implements Source.
func (b *Buffer) Len() int { return b.n }

// Runes implements Source. The buffer is grown in place when the
// requested overflow does not fit.
func (b *Buffer) Runes(overflow int) []rune {
	if overflow < 0 {
		overflow = 0
	}
	if len(b.runes) < b.n+overflow {
		grown := make([]rune, b.n+overflow)
		copy(grown, b.runes[:b.n])
		b.runes = grown
	}
	return b.runes
}

// Text returns the logical content as a string.
func (b *Buffer) Text() string {
	return string(b.runes[:b.n])
}
