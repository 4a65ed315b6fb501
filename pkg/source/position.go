package source

// Position is a zero-based row and column in a source.
type Position struct {
	Row    int `json:"row" yaml:"row" cbor:"row"`
	Column int `json:"column" yaml:"column" cbor:"column"`
}

// Translate converts a rune offset into a row and column. Only LF starts
// a new row. The offset just past the content is valid; anything else
// outside the content returns false.
func Translate(src Source, offset int) (Position, bool) {
	if offset < 0 || offset > src.Len() {
		return Position{}, false
	}
	buf := src.Runes(0)
	var p Position
	for i := 0; i < offset; i++ {
		if buf[i] == LF {
			p.Row++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	return p, true
}

// Line returns the text of the given zero-based row without its line
// terminator.
func Line(src Source, row int) (string, bool) {
	buf := src.Runes(0)[:src.Len()]
	cur := 0
	start := 0
	for i, ch := range buf {
		if ch != LF {
			continue
		}
		if cur == row {
			return string(buf[start:i]), true
		}
		cur++
		start = i + 1
	}
	if cur == row && start < len(buf) {
		return string(buf[start:]), true
	}
	return "", false
}
