package code

import (
	"errors"
	"testing"
)

func TestFlagsString(t *testing.T) {
	tests := []struct {
		flags int64
		want  string
	}{
		{0, ""},
		{PUBLIC, "public "},
		{PUBLIC | FINAL, "public final "},
		{STATIC | PRIVATE, "private static "},
		{DEPRECATED | ABSTRACT, "abstract deprecated "},
		{PARAMETER | VARARGS | FINAL, "final parameter varargs "},
		{BLOCK, ""},
	}
	for _, tt := range tests {
		if got := FlagsString(tt.flags); got != tt.want {
			t.Errorf("FlagsString(%#x) = %q, want %q", tt.flags, got, tt.want)
		}
	}
	if got := FlagNames(PUBLIC | STATIC | DEPRECATED); got != "public static" {
		t.Errorf("FlagNames = %q", got)
	}
}

func TestFlagValues(t *testing.T) {
	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"STRICTFP", STRICTFP, 1 << 11},
		{"ENUM", ENUM, 1 << 14},
		{"StandardFlags", StandardFlags, PUBLIC | PRIVATE | PROTECTED | STATIC | FINAL | SYNCHRONIZED | VOLATILE | TRANSIENT | NATIVE | INTERFACE | ABSTRACT | STRICTFP},
		{"LocalVarFlags", LocalVarFlags, 1<<4 | 1<<33},
		{"ConstructorFlags", ConstructorFlags, 7},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}

func TestTypeTags(t *testing.T) {
	if BYTE != 1 || BOOLEAN != 8 || TypeTagCount != 22 {
		t.Errorf("tag numbering shifted: BYTE=%d BOOLEAN=%d count=%d", BYTE, BOOLEAN, TypeTagCount)
	}
	for tag := BYTE; tag < TypeTagCount; tag++ {
		back, ok := LookupTypeTag(tag.String())
		if !ok || back != tag {
			t.Errorf("LookupTypeTag(%q) = %v, %v", tag.String(), back, ok)
		}
	}
	if !INT.IsBase() || VOID.IsBase() || CLASS.IsBase() {
		t.Errorf("IsBase wrong")
	}
	if TypeTag(99).String() != "TypeTag(99)" {
		t.Errorf("String() of unknown tag = %q", TypeTag(99).String())
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		s     string
		radix int
		want  int32
		err   bool
	}{
		{"0", 8, 0, false},
		{"017", 8, 15, false},
		{"2147483647", 10, 2147483647, false},
		{"2147483648", 10, 0, true},
		{"1263546546574987987", 10, 0, true},
		{"7fffffff", 16, 0x7fffffff, false},
		{"FFFFFFFF", 16, -1, false},
		{"80000000", 16, -2147483648, false},
		{"100000000", 16, 0, true},
		{"37777777777", 8, -1, false},
		{"09", 8, 0, true},
	}
	for _, tt := range tests {
		got, err := ParseInt(tt.s, tt.radix)
		if (err != nil) != tt.err {
			t.Errorf("ParseInt(%q, %d) error = %v, want error %v", tt.s, tt.radix, err, tt.err)
			continue
		}
		if err != nil && !errors.Is(err, ErrRange) {
			t.Errorf("ParseInt(%q) error %v is not ErrRange", tt.s, err)
		}
		if got != tt.want {
			t.Errorf("ParseInt(%q, %d) = %d, want %d", tt.s, tt.radix, got, tt.want)
		}
	}
}

func TestParseLong(t *testing.T) {
	tests := []struct {
		s     string
		radix int
		want  int64
		err   bool
	}{
		{"1263546546574987987", 10, 1263546546574987987, false},
		{"9223372036854775808", 10, 0, true},
		{"FFFFFFFFFFFFFFFF", 16, -1, false},
		{"10000000000000000", 16, 0, true},
		{"0777", 8, 511, false},
	}
	for _, tt := range tests {
		got, err := ParseLong(tt.s, tt.radix)
		if (err != nil) != tt.err || got != tt.want {
			t.Errorf("ParseLong(%q, %d) = %d, %v; want %d, error %v", tt.s, tt.radix, got, err, tt.want, tt.err)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a\tb\n", `a\tb\n`},
		{`"q" 'c' \`, `\"q\" \'c\' \\`},
		{"\x00\x7f", `\u0000\u007f`},
		{"é", `\u00e9`},
		{"\U0001F600", `\ud83d\ude00`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeUnicode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc", "abc"},
		{"café", "café"},
		{"π = 3", `\u03c0 = 3`},
		{"x中y", `x\u4e2dy`},
	}
	for _, tt := range tests {
		if got := EscapeUnicode(tt.in); got != tt.want {
			t.Errorf("EscapeUnicode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
