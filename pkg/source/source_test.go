package source

import (
	"strings"
	"testing"
)

func TestBufferOverflow(t *testing.T) {
	b := FromString("", "abc")
	if b.Name() != StringName {
		t.Errorf("Name() = %q, want %q", b.Name(), StringName)
	}
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	buf := b.Runes(2)
	if len(buf) < 5 {
		t.Fatalf("len(Runes(2)) = %d, want >= 5", len(buf))
	}
	if string(buf[:3]) != "abc" {
		t.Errorf("content = %q", string(buf[:3]))
	}
	if b.Text() != "abc" {
		t.Errorf("Text() = %q", b.Text())
	}
}

func TestFromReader(t *testing.T) {
	b, err := FromReader("x.java", strings.NewReader("class X {}"))
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if b.Name() != "x.java" || b.Text() != "class X {}" {
		t.Errorf("got %q %q", b.Name(), b.Text())
	}
}

func TestTranslate(t *testing.T) {
	src := FromString("t", "ab\ncd\n\nefg")
	tests := []struct {
		offset int
		want   Position
		ok     bool
	}{
		{0, Position{0, 0}, true},
		{1, Position{0, 1}, true},
		{3, Position{1, 0}, true},
		{4, Position{1, 1}, true},
		{6, Position{2, 0}, true},
		{9, Position{3, 2}, true},
		{10, Position{3, 3}, true},
		{11, Position{}, false},
		{-1, Position{}, false},
	}
	for _, tt := range tests {
		got, ok := Translate(src, tt.offset)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Translate(%d) = %v, %v; want %v, %v", tt.offset, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLine(t *testing.T) {
	src := FromString("t", "first\nsecond\n\nlast")
	tests := []struct {
		row  int
		want string
		ok   bool
	}{
		{0, "first", true},
		{1, "second", true},
		{2, "", true},
		{3, "last", true},
		{4, "", false},
	}
	for _, tt := range tests {
		got, ok := Line(src, tt.row)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Line(%d) = %q, %v; want %q, %v", tt.row, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLookupLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    Level
		wantErr bool
	}{
		{"1.4", JDK1_4, false},
		{"5", JDK1_5, false},
		{"1.6", JDK1_6, false},
		{"1.9", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookupLevel(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LookupLevel(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("LookupLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
	if JDK1_4.AllowGenerics() || !JDK1_4.AllowAsserts() || JDK1_3.AllowAsserts() {
		t.Errorf("level gates are wrong")
	}
	if JDK1_5.String() != "1.5" {
		t.Errorf("String() = %q", JDK1_5.String())
	}
}
