// Package diag carries diagnostics from the lexer and parser to whoever
// renders them.
//
// The front end only reports a message key, a rune offset and positional
// arguments through a Sink. Turning that into text is the job of a Sink
// implementation: Log renders compiler-style messages with a source line
// and caret, LoggerSink forwards to commonlog, Collector just records.
package diag

import "fmt"

// Severity of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Sink receives diagnostics. pos is a zero-based rune offset into the
// source, or source.NOPOS when there is none.
type Sink interface {
	Report(sev Severity, key string, pos int, args ...any)
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	Severity Severity
	Key      string
	Pos      int
	Args     []any
}

// Collector is a Sink that keeps every diagnostic in order.
type Collector struct {
	Diagnostics []Diagnostic
}

// Report implements Sink.
func (c *Collector) Report(sev Severity, key string, pos int, args ...any) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Severity: sev, Key: key, Pos: pos, Args: args})
}

// Count returns the number of collected diagnostics with the given severity.
func (c *Collector) Count(sev Severity) int {
	n := 0
	for _, d := range c.Diagnostics {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// Keys returns the message keys in report order.
func (c *Collector) Keys() []string {
	keys := make([]string, len(c.Diagnostics))
	for i, d := range c.Diagnostics {
		keys[i] = d.Key
	}
	return keys
}

// Tee fans every diagnostic out to each sink in order.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

type tee []Sink

func (t tee) Report(sev Severity, key string, pos int, args ...any) {
	for _, s := range t {
		s.Report(sev, key, pos, args...)
	}
}
