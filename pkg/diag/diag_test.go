package diag

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/chazu/jnova/pkg/source"
)

func TestLogFormat(t *testing.T) {
	src := source.FromString("<unnamed>", "class MyDaoImpl {\nvoid foo() {\nint a = 1263546546574987987;\n}\n}")
	var buf bytes.Buffer
	log := NewLog(&buf)
	log.SetSource(src)

	log.Report(Error, "int.number.too.large", 39, "1263546546574987987")

	want := "<unnamed>:[3,9]: error:\n" +
		"Integer number 1263546546574987987 is too large\n" +
		"int a = 1263546546574987987;\n" +
		"        ^\n"
	if buf.String() != want {
		t.Errorf("got:\n%q\nwant:\n%q", buf.String(), want)
	}
	if log.Errors() != 1 || log.Warnings() != 0 {
		t.Errorf("counts = %d/%d, want 1/0", log.Errors(), log.Warnings())
	}
}

func TestLogKeepsTabsInCaretLine(t *testing.T) {
	src := source.FromString("T.java", "\tx = ;")
	var buf bytes.Buffer
	log := NewLog(&buf)
	log.SetSource(src)

	log.Report(Warning, "illegal.start.of.expr", 5)

	want := "T.java:[1,6]: warning:\n" +
		"illegal start of expression\n" +
		"\tx = ;\n" +
		"\t    ^\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
	if log.Warnings() != 1 {
		t.Errorf("Warnings() = %d", log.Warnings())
	}
}

func TestLogWithoutPosition(t *testing.T) {
	tests := []struct {
		name string
		src  source.Source
		want string
	}{
		{"no source", nil, "<unspecified>: error:\nreached end of file while parsing\n\n"},
		{"nopos", source.FromString("A.java", "class"), "A.java: error:\nreached end of file while parsing\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewLog(&buf)
			if tt.src != nil {
				log.SetSource(tt.src)
			}
			log.Report(Error, "premature.eof", source.NOPOS)
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

// failingWriter accepts a fixed number of writes.
type failingWriter struct {
	left   int
	writes int
}

func (w *failingWriter) Write(b []byte) (int, error) {
	if w.left == 0 {
		return 0, errors.New("disk full")
	}
	w.left--
	w.writes++
	return len(b), nil
}

func TestLogWriteError(t *testing.T) {
	w := &failingWriter{left: 1}
	log := NewLog(w)
	log.Report(Error, "premature.eof", source.NOPOS)
	if log.Err() != nil {
		t.Fatalf("Err() = %v after a successful write", log.Err())
	}
	log.Report(Error, "premature.eof", source.NOPOS)
	log.Report(Warning, "premature.eof", source.NOPOS)

	if err := log.Err(); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Err() = %v", err)
	}
	if w.writes != 1 {
		t.Errorf("writes = %d, want 1", w.writes)
	}
	if log.Errors() != 2 || log.Warnings() != 1 {
		t.Errorf("counts = %d/%d, want 2/1", log.Errors(), log.Warnings())
	}
}

func TestCatalogFormat(t *testing.T) {
	c := DefaultCatalog()
	tests := []struct {
		key  string
		args []any
		want string
	}{
		{"expected1", []any{"';'"}, "';' expected"},
		{"expected3", []any{"class", "interface", "enum"}, "class, interface, or enum expected"},
		{"mod.not.allowed.here", []any{"private"}, "modifier private not allowed here"},
		{"expected2", []any{"("}, "( or {1} expected"},
		{"no.such.key", nil, "no.such.key"},
		{"no.such.key", []any{1}, "no.such.key: 1"},
	}
	for _, tt := range tests {
		if got := c.Format(tt.key, tt.args...); got != tt.want {
			t.Errorf("Format(%q, %v) = %q, want %q", tt.key, tt.args, got, tt.want)
		}
	}
}

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog(`"greeting" = "hello {0}"`)
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	if got := c.Format("greeting", "world"); got != "hello world" {
		t.Errorf("Format = %q", got)
	}
	if _, err := ParseCatalog(`= broken`); err == nil {
		t.Errorf("ParseCatalog accepted malformed input")
	}
}

func TestCollectorAndTee(t *testing.T) {
	var a, b Collector
	sink := Tee(&a, &b)
	sink.Report(Error, "not.stmt", 3)
	sink.Report(Warning, "orphaned", 7, "case")

	for _, c := range []*Collector{&a, &b} {
		if len(c.Diagnostics) != 2 {
			t.Fatalf("collected %d diagnostics, want 2", len(c.Diagnostics))
		}
		if c.Count(Error) != 1 || c.Count(Warning) != 1 {
			t.Errorf("counts wrong: %+v", c.Diagnostics)
		}
		if keys := c.Keys(); keys[0] != "not.stmt" || keys[1] != "orphaned" {
			t.Errorf("Keys() = %v", keys)
		}
	}
	if a.Diagnostics[1].Pos != 7 || a.Diagnostics[1].Args[0] != "case" {
		t.Errorf("diagnostic = %+v", a.Diagnostics[1])
	}
}
