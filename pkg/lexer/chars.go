package lexer

import "unicode"

// isIdentifierStart reports whether a non-ASCII code point may begin a
// Java identifier.
func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Sc, r) ||
		unicode.Is(unicode.Pc, r)
}

// isIdentifierPart reports whether a non-ASCII code point may continue a
// Java identifier.
func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		isIdentifierIgnorable(r)
}

func isIdentifierIgnorable(r rune) bool {
	return (r >= 0 && r <= 8) ||
		(r >= 0x0E && r <= 0x1B) ||
		(r >= 0x7F && r <= 0x9F) ||
		unicode.Is(unicode.Cf, r)
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0x1C, 0x1D, 0x1E, 0x1F:
		return true
	case 0x00A0, 0x2007, 0x202F:
		return false
	}
	return unicode.Is(unicode.Zs, r) || unicode.Is(unicode.Zl, r) || unicode.Is(unicode.Zp, r)
}

// digitValue returns the value of r as a digit in base, or -1. Decimal
// digits from any script count; letters only count in ASCII.
func digitValue(r rune, base int) int {
	v := -1
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'z':
		v = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		v = int(r-'A') + 10
	case r > 0x7F && unicode.Is(unicode.Nd, r):
		start := r
		for unicode.Is(unicode.Nd, start-1) {
			start--
		}
		v = int(r-start) % 10
	}
	if v >= base {
		return -1
	}
	return v
}

func isSpecial(r rune) bool {
	switch r {
	case '!', '%', '&', '*', '?', '+', '-', ':', '<', '=', '>', '^', '|', '~', '@':
		return true
	}
	return false
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

func toCodePoint(high, low rune) rune {
	return (high-0xD800)<<10 + (low - 0xDC00) + 0x10000
}
