package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chazu/jnova/pkg/source"
)

// UnspecifiedSource names diagnostics reported before a source is set.
const UnspecifiedSource = "<unspecified>"

// Log renders diagnostics as text:
//
//	Name.java:[3,9]: error:
//	Integer number 1263546546574987987 is too large
//	int a = 1263546546574987987;
//	        ^
//
// Rows and columns are one-based. Diagnostics without a position omit the
// bracket and the source excerpt.
type Log struct {
	w        io.Writer
	catalog  Catalog
	src      source.Source
	errors   int
	warnings int
	err      error
}

// NewLog creates a Log writing to w with the default catalog. A nil
// writer means os.Stderr.
func NewLog(w io.Writer) *Log {
	if w == nil {
		w = os.Stderr
	}
	return &Log{w: w, catalog: DefaultCatalog()}
}

// WithCatalog replaces the message catalog.
func (l *Log) WithCatalog(c Catalog) *Log {
	l.catalog = c
	return l
}

// SetSource sets the source used to resolve offsets.
func (l *Log) SetSource(src source.Source) {
	l.src = src
}

// Errors returns the number of errors reported so far.
func (l *Log) Errors() int { return l.errors }

// Warnings returns the number of warnings reported so far.
func (l *Log) Warnings() int { return l.warnings }

// Err returns the first error writing a diagnostic. Diagnostics are still
// counted after a write fails but are no longer written.
func (l *Log) Err() error { return l.err }

// Report implements Sink.
func (l *Log) Report(sev Severity, key string, pos int, args ...any) {
	switch sev {
	case Error:
		l.errors++
	case Warning:
		l.warnings++
	}

	var sb strings.Builder
	name := UnspecifiedSource
	if l.src != nil {
		name = l.src.Name()
	}
	sb.WriteString(name)
	sb.WriteByte(':')

	var p source.Position
	havePos := false
	if pos != source.NOPOS && l.src != nil {
		p, havePos = source.Translate(l.src, pos)
		if havePos {
			fmt.Fprintf(&sb, "[%d,%d]:", p.Row+1, p.Column+1)
		}
	}
	fmt.Fprintf(&sb, " %s:\n", sev)
	sb.WriteString(l.catalog.Format(key, args...))
	sb.WriteByte('\n')

	if havePos {
		line, _ := source.Line(l.src, p.Row)
		sb.WriteString(line)
		sb.WriteByte('\n')
		sb.WriteString(caretIndent(line, p.Column))
		sb.WriteByte('^')
	}
	sb.WriteByte('\n')

	if l.err != nil {
		return
	}
	if _, err := io.WriteString(l.w, sb.String()); err != nil {
		l.err = fmt.Errorf("failed to write diagnostic: %w", err)
	}
}

// caretIndent keeps tabs and other layout characters from the source line
// so the caret lines up under the offending column.
func caretIndent(line string, col int) string {
	var sb strings.Builder
	i := 0
	for _, ch := range line {
		if i == col {
			break
		}
		if ch <= ' ' {
			sb.WriteRune(ch)
		} else {
			sb.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		sb.WriteByte(' ')
	}
	return sb.String()
}
