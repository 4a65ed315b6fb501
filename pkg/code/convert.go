package code

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrRange is returned when a literal does not fit its type.
var ErrRange = errors.New("number out of range")

func digit(r rune, radix int) int {
	var d int
	switch {
	case '0' <= r && r <= '9':
		d = int(r - '0')
	case 'a' <= r && r <= 'z':
		d = int(r-'a') + 10
	case 'A' <= r && r <= 'Z':
		d = int(r-'A') + 10
	default:
		return -1
	}
	if d >= radix {
		return -1
	}
	return d
}

// ParseInt converts the digits of an int literal. Decimal literals must
// fit in int32. Octal and hexadecimal literals may use the full 32 bits,
// so 0xFFFFFFFF is -1.
func ParseInt(s string, radix int) (int32, error) {
	if radix == 10 {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("parse int %q: %w", s, ErrRange)
		}
		return int32(v), nil
	}
	limit := int32(math.MaxInt32 / (radix / 2))
	var n int32
	for _, r := range s {
		d := int32(digit(r, radix))
		if d < 0 || n < 0 || n > limit || n*int32(radix) > math.MaxInt32-d {
			return 0, fmt.Errorf("parse int %q: %w", s, ErrRange)
		}
		n = n*int32(radix) + d
	}
	return n, nil
}

// ParseLong is ParseInt for long literals.
func ParseLong(s string, radix int) (int64, error) {
	if radix == 10 {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse long %q: %w", s, ErrRange)
		}
		return v, nil
	}
	limit := int64(math.MaxInt64 / (radix / 2))
	var n int64
	for _, r := range s {
		d := int64(digit(r, radix))
		if d < 0 || n < 0 || n > limit || n*int64(radix) > math.MaxInt64-d {
			return 0, fmt.Errorf("parse long %q: %w", s, ErrRange)
		}
		n = n*int64(radix) + d
	}
	return n, nil
}

// Quote escapes s for use inside a string or char literal.
func Quote(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(QuoteRune(r))
	}
	return b.String()
}

// QuoteRune escapes one character. Characters outside printable ASCII
// become \uXXXX.
func QuoteRune(r rune) string {
	switch r {
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case '\'':
		return `\'`
	case '"':
		return `\"`
	case '\\':
		return `\\`
	}
	if r >= ' ' && r <= '~' {
		return string(r)
	}
	if r > 0xFFFF {
		hi, lo := surrogates(r)
		return fmt.Sprintf(`\u%04x\u%04x`, hi, lo)
	}
	return fmt.Sprintf(`\u%04x`, r)
}

// EscapeUnicode replaces every character above U+00FF with a \uXXXX
// escape and leaves the rest alone.
func EscapeUnicode(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return r > 0xFF }) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r <= 0xFF:
			b.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := surrogates(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return b.String()
}

func surrogates(r rune) (rune, rune) {
	r -= 0x10000
	return 0xD800 + (r>>10)&0x3FF, 0xDC00 + r&0x3FF
}
