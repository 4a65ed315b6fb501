package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/jnova/pkg/naming"
	"github.com/chazu/jnova/pkg/source"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Level() != source.DefaultLevel {
		t.Errorf("Level() = %v, want %v", c.Level(), source.DefaultLevel)
	}
	if c.Interner.Buckets != naming.DefaultBuckets || c.Interner.Arena != naming.DefaultArenaSize {
		t.Errorf("interner = %+v", c.Interner)
	}
	if c.Log.Verbosity != 0 || c.Log.File != "" {
		t.Errorf("log = %+v", c.Log)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		level   source.Level
		buckets int
		wantErr string
	}{
		{name: "empty", input: "", level: source.JDK1_5, buckets: naming.DefaultBuckets},
		{name: "level", input: `source = "1.4"`, level: source.JDK1_4, buckets: naming.DefaultBuckets},
		{name: "level alias", input: `source = "6"`, level: source.JDK1_6, buckets: naming.DefaultBuckets},
		{
			name:    "interner",
			input:   "[interner]\nbuckets = 1024\narena = 4096\n",
			level:   source.JDK1_5,
			buckets: 1024,
		},
		{name: "bad level", input: `source = "1.9"`, wantErr: "unknown source level"},
		{name: "buckets not power of two", input: "[interner]\nbuckets = 1000\n", wantErr: "not a power of two"},
		{name: "negative arena", input: "[interner]\narena = -1\n", wantErr: "negative"},
		{name: "verbosity", input: "[log]\nverbosity = 9\n", wantErr: "outside"},
		{name: "unknown key", input: "sauce = \"1.5\"\n", wantErr: "unknown config key sauce"},
		{name: "syntax", input: "source = \n", wantErr: "failed to parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("err = %v, want one containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if c.Level() != tt.level {
				t.Errorf("Level() = %v, want %v", c.Level(), tt.level)
			}
			if c.Interner.Buckets != tt.buckets {
				t.Errorf("buckets = %d, want %d", c.Interner.Buckets, tt.buckets)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jnova.toml")
	text := "source = \"1.6\"\ndoc-comments = true\n[log]\nverbosity = 2\nfile = \"jnova.log\"\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Level() != source.JDK1_6 || !c.DocComments || c.Log.Verbosity != 2 || c.Log.File != "jnova.log" {
		t.Errorf("config = %+v", c)
	}

	pc := c.ParserConfig()
	if pc.Table == nil || pc.Level != source.JDK1_6 || !pc.KeepDocComments {
		t.Errorf("parser config = %+v", pc)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil || !strings.Contains(err.Error(), "cannot read") {
		t.Errorf("missing file err = %v", err)
	}
}

func TestSetLevel(t *testing.T) {
	c := Default()
	if err := c.SetLevel("1.3"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	if c.Level() != source.JDK1_3 || c.Source != "1.3" {
		t.Errorf("level = %v %q", c.Level(), c.Source)
	}
	if err := c.SetLevel("7"); err == nil {
		t.Error("SetLevel(7) should fail")
	}
	if c.Level() != source.JDK1_3 {
		t.Error("failed SetLevel changed the level")
	}
}
