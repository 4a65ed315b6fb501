package naming

// The arena uses generalized UTF-8: every code point in 0..0x10FFFF gets
// its shortest encoding, including lone surrogates, so that text coming
// out of \u escapes survives a round trip. Anything outside that range is
// stored as U+FFFD.

const (
	utfMax   = 4
	runeSelf = 0x80
	maxRune  = 0x10FFFF
	badRune  = 0xFFFD
)

func encodeRunes(dst []byte, src []rune) int {
	n := 0
	for _, r := range src {
		if r < 0 || r > maxRune {
			r = badRune
		}
		switch {
		case r < runeSelf:
			dst[n] = byte(r)
			n++
		case r < 0x800:
			dst[n] = byte(0xC0 | r>>6)
			dst[n+1] = byte(0x80 | r&0x3F)
			n += 2
		case r < 0x10000:
			dst[n] = byte(0xE0 | r>>12)
			dst[n+1] = byte(0x80 | (r>>6)&0x3F)
			dst[n+2] = byte(0x80 | r&0x3F)
			n += 3
		default:
			dst[n] = byte(0xF0 | r>>18)
			dst[n+1] = byte(0x80 | (r>>12)&0x3F)
			dst[n+2] = byte(0x80 | (r>>6)&0x3F)
			dst[n+3] = byte(0x80 | r&0x3F)
			n += 4
		}
	}
	return n
}

// decodeRunes appends the code points of src to dst. src is always
// arena content written by encodeRunes.
func decodeRunes(dst []rune, src []byte) []rune {
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c < runeSelf:
			dst = append(dst, rune(c))
			i++
		case c < 0xE0:
			dst = append(dst, rune(c&0x1F)<<6|rune(src[i+1]&0x3F))
			i += 2
		case c < 0xF0:
			dst = append(dst, rune(c&0x0F)<<12|rune(src[i+1]&0x3F)<<6|rune(src[i+2]&0x3F))
			i += 3
		default:
			dst = append(dst, rune(c&0x07)<<18|rune(src[i+1]&0x3F)<<12|rune(src[i+2]&0x3F)<<6|rune(src[i+3]&0x3F))
			i += 4
		}
	}
	return dst
}
