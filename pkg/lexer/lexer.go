// Package lexer turns Java source text into tokens.
//
// The Lexer reads a padded rune buffer one character at a time and
// produces one token per NextToken call. Unicode escapes (\uXXXX) are
// translated as characters are read, so every other rule sees the
// translated character, including inside comments and literals.
//
// Per-token data (name, literal text, radix, positions) is only valid
// until the next call to NextToken.
package lexer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/chazu/jnova/pkg/diag"
	"github.com/chazu/jnova/pkg/naming"
	"github.com/chazu/jnova/pkg/source"
)

var log = commonlog.GetLogger("jnova.lexer")

// CommentStyle distinguishes the comment kinds passed to Hooks.Comment.
type CommentStyle int

const (
	LineComment CommentStyle = iota
	BlockComment
	DocComment
)

func (s CommentStyle) String() string {
	switch s {
	case LineComment:
		return "LINE"
	case BlockComment:
		return "BLOCK"
	}
	return "JAVADOC"
}

// Hooks observe the parts of the input that do not become tokens. Any
// field may be nil. Offsets are [pos, end).
type Hooks struct {
	Whitespace     func(pos, end int)
	LineTerminator func(pos, end int)
	Comment        func(style CommentStyle, pos, end int)
}

// Config assembles a Lexer's collaborators.
type Config struct {
	// Table interns identifiers. Required.
	Table *naming.Table
	// Keywords classifies names; built from Table when nil.
	Keywords *Keywords
	// Names supplies predefined symbols; built from Table when nil.
	Names *naming.Names
	// Sink receives lexical errors; they are dropped when nil.
	Sink diag.Sink
	// Level gates hexadecimal floating point literals.
	Level source.Level
}

// Lexer is a hand-written scanner for Java source.
type Lexer struct {
	table    *naming.Table
	keywords *Keywords
	names    *naming.Names
	sink     diag.Sink
	hooks    Hooks

	allowHexFloats bool

	token          Token
	pos            int
	endPos         int
	prevEndPos     int
	errPos         int
	name           *naming.Symbol
	radix          int
	deprecatedFlag bool
	docComment     string

	sbuf []rune

	buf                 []rune
	bp                  int
	buflen              int
	eofPos              int
	ch                  rune
	unicodeConversionBp int
}

// New creates a Lexer. Call SetSource before NextToken.
func New(cfg Config) *Lexer {
	if cfg.Table == nil {
		panic("lexer: Config.Table is required")
	}
	if cfg.Keywords == nil {
		cfg.Keywords = NewKeywords(cfg.Table)
	}
	if cfg.Names == nil {
		cfg.Names = naming.NewNames(cfg.Table)
	}
	if cfg.Level == 0 {
		cfg.Level = source.DefaultLevel
	}
	return &Lexer{
		table:               cfg.Table,
		keywords:            cfg.Keywords,
		names:               cfg.Names,
		sink:                cfg.Sink,
		allowHexFloats:      cfg.Level.AllowHexFloats(),
		errPos:              source.NOPOS,
		sbuf:                make([]rune, 0, 128),
		unicodeConversionBp: -1,
	}
}

// SetHooks installs observers for whitespace, line terminators and
// comments.
func (l *Lexer) SetHooks(h Hooks) {
	l.hooks = h
}

// SetSource installs input[:length] as the text to scan. input should
// have at least one spare slot past length; the lexer writes its
// end-of-input sentinel there. When it has none, a trailing whitespace
// character is sacrificed for the sentinel or the buffer is copied.
func (l *Lexer) SetSource(input []rune, length int) {
	l.eofPos = length
	if length == len(input) {
		if length > 0 && isWhitespace(input[length-1]) {
			length--
		} else {
			grown := make([]rune, length+1)
			copy(grown, input)
			input = grown
		}
	}
	l.buf = input
	l.buflen = length
	l.buf[l.buflen] = source.EOI
	l.bp = -1
	l.unicodeConversionBp = -1
	l.scanChar()
}

// SetSourceFrom reads the buffer of src with one rune of padding.
func (l *Lexer) SetSourceFrom(src source.Source) {
	l.SetSource(src.Runes(1), src.Len())
}

// Token returns the current token.
func (l *Lexer) Token() Token { return l.token }

// SetToken replaces the current token. The parser uses it to split
// compound '>' tokens when closing type argument lists.
func (l *Lexer) SetToken(t Token) { l.token = t }

// Pos returns the offset of the current token's first character.
func (l *Lexer) Pos() int { return l.pos }

// EndPos returns the offset just past the current token.
func (l *Lexer) EndPos() int { return l.endPos }

// PrevEndPos returns the offset just past the previous token.
func (l *Lexer) PrevEndPos() int { return l.prevEndPos }

// ErrPos returns the offset of the last reported error.
func (l *Lexer) ErrPos() int { return l.errPos }

// SetErrPos records the offset of the last reported error.
func (l *Lexer) SetErrPos(pos int) { l.errPos = pos }

// Name returns the interned name of the current identifier, keyword or
// operator.
func (l *Lexer) Name() *naming.Symbol { return l.name }

// Radix returns the radix of the current numeric literal.
func (l *Lexer) Radix() int { return l.radix }

// StringVal returns the decoded text of the current literal.
func (l *Lexer) StringVal() string {
	return string(combineSurrogates(l.sbuf))
}

// DocComment returns the raw text of the documentation comment directly
// preceding the current token, or "".
func (l *Lexer) DocComment() string { return l.docComment }

// DeprecatedFlag reports whether a doc comment carrying @deprecated was
// seen since the flag was last reset.
func (l *Lexer) DeprecatedFlag() bool { return l.deprecatedFlag }

// ResetDeprecatedFlag clears DeprecatedFlag.
func (l *Lexer) ResetDeprecatedFlag() { l.deprecatedFlag = false }

func (l *Lexer) lexErrorAt(pos int, key string, args ...any) {
	if l.sink != nil {
		l.sink.Report(diag.Error, key, pos, args...)
	}
	l.token = ERROR
	l.errPos = pos
}

func (l *Lexer) lexError(key string, args ...any) {
	l.lexErrorAt(l.pos, key, args...)
}

func (l *Lexer) at(i int) rune {
	if i < len(l.buf) {
		return l.buf[i]
	}
	return source.EOI
}

// digit returns the value of the current character in base, replacing a
// non-ASCII digit with its ASCII form after reporting it.
func (l *Lexer) digit(base int) int {
	c := l.ch
	result := digitValue(c, base)
	if result >= 0 && c > 0x7F {
		l.lexErrorAt(l.pos+1, "illegal.nonascii.digit")
		l.ch = rune("0123456789abcdef"[result])
	}
	return result
}

func (l *Lexer) convertUnicode() {
	if l.ch != '\\' || l.unicodeConversionBp == l.bp {
		return
	}
	l.bp++
	l.ch = l.at(l.bp)
	if l.ch != 'u' {
		l.bp--
		l.ch = '\\'
		return
	}
	for l.ch == 'u' {
		l.bp++
		l.ch = l.at(l.bp)
	}
	limit := l.bp + 3
	if limit < l.buflen {
		d := l.digit(16)
		code := d
		for l.bp < limit && d >= 0 {
			l.bp++
			l.ch = l.at(l.bp)
			d = l.digit(16)
			code = code<<4 + d
		}
		if d >= 0 {
			l.ch = rune(code)
			l.unicodeConversionBp = l.bp
			return
		}
	}
	l.lexErrorAt(l.bp, "illegal.unicode.esc")
}

func (l *Lexer) scanChar() {
	l.bp++
	l.ch = l.at(l.bp)
	if l.ch == '\\' {
		l.convertUnicode()
	}
}

// scanCommentChar is scanChar except that an escaped backslash is skipped
// whole so that "\\u" inside a comment is not an escape.
func (l *Lexer) scanCommentChar() {
	l.scanChar()
	if l.ch == '\\' {
		if l.at(l.bp+1) == '\\' && l.unicodeConversionBp != l.bp {
			l.bp++
		} else {
			l.convertUnicode()
		}
	}
}

func (l *Lexer) putChar(ch rune) {
	l.sbuf = append(l.sbuf, ch)
}

func (l *Lexer) scanLitChar() {
	if l.ch != '\\' {
		if l.bp != l.buflen {
			l.putChar(l.ch)
			l.scanChar()
		}
		return
	}
	if l.at(l.bp+1) == '\\' && l.unicodeConversionBp != l.bp {
		l.bp++
		l.putChar('\\')
		l.scanChar()
		return
	}
	l.scanChar()
	switch l.ch {
	case '0', '1', '2', '3', '4', '5', '6', '7':
		lead := l.ch
		oct := l.digit(8)
		l.scanChar()
		if '0' <= l.ch && l.ch <= '7' {
			oct = oct*8 + l.digit(8)
			l.scanChar()
			if lead <= '3' && '0' <= l.ch && l.ch <= '7' {
				oct = oct*8 + l.digit(8)
				l.scanChar()
			}
		}
		l.putChar(rune(oct))
	case 'b':
		l.putChar('\b')
		l.scanChar()
	case 't':
		l.putChar('\t')
		l.scanChar()
	case 'n':
		l.putChar('\n')
		l.scanChar()
	case 'f':
		l.putChar('\f')
		l.scanChar()
	case 'r':
		l.putChar('\r')
		l.scanChar()
	case '\'', '"', '\\':
		l.putChar(l.ch)
		l.scanChar()
	default:
		l.lexErrorAt(l.bp, "illegal.esc.char")
	}
}

// ============================================================================
// Numbers
// ============================================================================

func (l *Lexer) scanDigits(ok func(rune) bool) bool {
	if !ok(l.ch) {
		return false
	}
	for ok(l.ch) {
		l.putChar(l.ch)
		l.scanChar()
	}
	return true
}

func isDecimal(r rune) bool { return '0' <= r && r <= '9' }

func (l *Lexer) scanExponentSign() {
	if l.ch == '+' || l.ch == '-' {
		l.putChar(l.ch)
		l.scanChar()
	}
}

func (l *Lexer) scanFloatSuffix() {
	if l.ch == 'f' || l.ch == 'F' {
		l.putChar(l.ch)
		l.scanChar()
		l.token = FLOATLITERAL
		return
	}
	if l.ch == 'd' || l.ch == 'D' {
		l.putChar(l.ch)
		l.scanChar()
	}
	l.token = DOUBLELITERAL
}

func (l *Lexer) scanHexExponentAndSuffix() {
	if l.ch == 'p' || l.ch == 'P' {
		l.putChar(l.ch)
		l.scanChar()
		l.scanExponentSign()
		if l.scanDigits(isDecimal) {
			if !l.allowHexFloats {
				l.lexError("unsupported.fp.lit")
				l.allowHexFloats = true
			}
		} else {
			l.lexError("malformed.fp.lit")
		}
	} else {
		l.lexError("malformed.fp.lit")
	}
	l.scanFloatSuffix()
}

func (l *Lexer) scanFraction() {
	for l.digit(10) >= 0 {
		l.putChar(l.ch)
		l.scanChar()
	}
	mark := len(l.sbuf)
	if l.ch == 'e' || l.ch == 'E' {
		l.putChar(l.ch)
		l.scanChar()
		l.scanExponentSign()
		if l.scanDigits(isDecimal) {
			return
		}
		l.lexError("malformed.fp.lit")
		l.sbuf = l.sbuf[:mark]
	}
}

func (l *Lexer) scanFractionAndSuffix() {
	l.radix = 10
	l.scanFraction()
	l.scanFloatSuffix()
}

func (l *Lexer) scanHexFractionAndSuffix(seenDigit bool) {
	l.radix = 16
	l.putChar(l.ch)
	l.scanChar()
	for l.digit(16) >= 0 {
		seenDigit = true
		l.putChar(l.ch)
		l.scanChar()
	}
	if !seenDigit {
		l.lexError("invalid.hex.number")
	} else {
		l.scanHexExponentAndSuffix()
	}
}

func (l *Lexer) scanNumber(radix int) {
	l.radix = radix
	// octal literals accept decimal digits in case they turn out to be
	// floating point
	digitRadix := 16
	if radix <= 10 {
		digitRadix = 10
	}
	seenDigit := false
	for l.digit(digitRadix) >= 0 {
		seenDigit = true
		l.putChar(l.ch)
		l.scanChar()
	}
	switch {
	case radix == 16 && l.ch == '.':
		l.scanHexFractionAndSuffix(seenDigit)
	case seenDigit && radix == 16 && (l.ch == 'p' || l.ch == 'P'):
		l.scanHexExponentAndSuffix()
	case radix <= 10 && l.ch == '.':
		l.putChar(l.ch)
		l.scanChar()
		l.scanFractionAndSuffix()
	case radix <= 10 && strings.ContainsRune("eEfFdD", l.ch):
		l.scanFractionAndSuffix()
	case l.ch == 'l' || l.ch == 'L':
		l.scanChar()
		l.token = LONGLITERAL
	default:
		l.token = INTLITERAL
	}
}

// ============================================================================
// Identifiers and operators
// ============================================================================

func isASCIIIdentPart(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return true
	case r == '$', r == '_':
		return true
	case r <= 0x08, 0x0E <= r && r <= 0x19, r == 0x1B, r == 0x7F:
		return true
	}
	return false
}

func (l *Lexer) finishIdent() {
	l.name = l.table.InternRunes(l.sbuf, 0, len(l.sbuf))
	l.token = l.keywords.Key(l.name)
}

func (l *Lexer) scanIdent() {
	for {
		l.putChar(l.ch)
		l.scanChar()
		switch {
		case isASCIIIdentPart(l.ch):
			continue
		case l.ch == source.EOI:
			// EOI is an identifier part unless it ends the input
			if l.bp >= l.buflen {
				l.finishIdent()
				return
			}
			continue
		case l.ch < 0x80:
			l.finishIdent()
			return
		}
		l.scanSurrogates()
		if !isIdentifierPart(l.ch) {
			l.finishIdent()
			return
		}
	}
}

// scanSurrogates combines a high and low surrogate that came out of two
// consecutive unicode escapes into one code point in l.ch.
func (l *Lexer) scanSurrogates() bool {
	if !isHighSurrogate(l.ch) {
		return false
	}
	high, bp := l.ch, l.bp
	l.scanChar()
	if isLowSurrogate(l.ch) {
		l.ch = toCodePoint(high, l.ch)
		return true
	}
	l.bp = bp
	l.ch = high
	return false
}

func (l *Lexer) scanOperator() {
	for {
		l.putChar(l.ch)
		name := l.table.InternRunes(l.sbuf, 0, len(l.sbuf))
		if l.keywords.Key(name) == IDENTIFIER {
			l.sbuf = l.sbuf[:len(l.sbuf)-1]
			return
		}
		l.name = name
		l.token = l.keywords.Key(name)
		l.scanChar()
		if !isSpecial(l.ch) {
			return
		}
	}
}

// ============================================================================
// Comments
// ============================================================================

func (l *Lexer) skipCommentSpace() {
	for l.bp < l.buflen && (l.ch == ' ' || l.ch == '\t' || l.ch == source.FF) {
		l.scanCommentChar()
	}
}

// scanDocComment scans the body of a /** comment, setting the deprecated
// flag when a line starts with @deprecated. It stops on the closing '/'.
func (l *Lexer) scanDocComment() {
	const tag = "@deprecated"
lines:
	for l.bp < l.buflen {
		l.skipCommentSpace()
		for l.bp < l.buflen && l.ch == '*' {
			l.scanCommentChar()
			if l.ch == '/' {
				return
			}
		}
		l.skipCommentSpace()

		deprecated := false
		if l.bp < l.buflen && l.ch == '@' && !l.deprecatedFlag {
			i := 0
			for i < len(tag) && l.bp < l.buflen && l.ch == rune(tag[i]) {
				l.scanCommentChar()
				i++
			}
			deprecated = i == len(tag)
		}
		if deprecated && l.bp < l.buflen {
			if isWhitespace(l.ch) {
				l.deprecatedFlag = true
			} else if l.ch == '*' {
				l.scanCommentChar()
				if l.ch == '/' {
					l.deprecatedFlag = true
					return
				}
			}
		}

		for l.bp < l.buflen {
			switch l.ch {
			case '*':
				l.scanCommentChar()
				if l.ch == '/' {
					return
				}
			case source.CR:
				l.scanCommentChar()
				if l.ch == source.LF {
					l.scanCommentChar()
				}
				continue lines
			case source.LF:
				l.scanCommentChar()
				continue lines
			default:
				l.scanCommentChar()
			}
		}
	}
}

// ============================================================================
// Tokens
// ============================================================================

// NextToken advances to the next token.
func (l *Lexer) NextToken() {
	l.prevEndPos = l.endPos
	l.sbuf = l.sbuf[:0]
	l.docComment = ""
	l.scan()
	l.endPos = l.bp
	if log.AllowLevel(commonlog.Debug) {
		log.Debugf("nextToken(%d,%d)=|%s| %s", l.pos, l.endPos, l.raw(l.pos, l.endPos), l.token)
	}
}

func (l *Lexer) raw(begin, end int) string {
	if begin < 0 || end > l.buflen || begin > end {
		return ""
	}
	return string(l.buf[begin:end])
}

func (l *Lexer) scan() {
	for {
		l.pos = l.bp
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == source.FF:
			for {
				l.scanChar()
				if l.ch != ' ' && l.ch != '\t' && l.ch != source.FF {
					break
				}
			}
			if l.hooks.Whitespace != nil {
				l.hooks.Whitespace(l.pos, l.bp)
			}
		case l.ch == source.LF:
			l.scanChar()
			l.lineTerminator()
		case l.ch == source.CR:
			l.scanChar()
			if l.ch == source.LF {
				l.scanChar()
			}
			l.lineTerminator()
		case 'a' <= l.ch && l.ch <= 'z', 'A' <= l.ch && l.ch <= 'Z', l.ch == '$', l.ch == '_':
			l.scanIdent()
			return
		case l.ch == '0':
			l.scanChar()
			if l.ch == 'x' || l.ch == 'X' {
				l.scanChar()
				switch {
				case l.ch == '.':
					l.scanHexFractionAndSuffix(false)
				case l.digit(16) < 0:
					l.lexError("invalid.hex.number")
				default:
					l.scanNumber(16)
				}
			} else {
				l.putChar('0')
				l.scanNumber(8)
			}
			return
		case '1' <= l.ch && l.ch <= '9':
			l.scanNumber(10)
			return
		case l.ch == '.':
			l.scanChar()
			switch {
			case '0' <= l.ch && l.ch <= '9':
				l.putChar('.')
				l.scanFractionAndSuffix()
			case l.ch == '.':
				l.putChar('.')
				l.putChar('.')
				l.scanChar()
				if l.ch == '.' {
					l.scanChar()
					l.putChar('.')
					l.token = ELLIPSIS
				} else {
					l.lexError("malformed.fp.lit")
				}
			default:
				l.token = DOT
			}
			return
		case l.ch == ',':
			l.punct(COMMA)
			return
		case l.ch == ';':
			l.punct(SEMI)
			return
		case l.ch == '(':
			l.punct(LPAREN)
			return
		case l.ch == ')':
			l.punct(RPAREN)
			return
		case l.ch == '[':
			l.punct(LBRACKET)
			return
		case l.ch == ']':
			l.punct(RBRACKET)
			return
		case l.ch == '{':
			l.punct(LBRACE)
			return
		case l.ch == '}':
			l.punct(RBRACE)
			return
		case l.ch == '/':
			if l.scanSlash() {
				return
			}
		case l.ch == '\'':
			l.scanCharLiteral()
			return
		case l.ch == '"':
			l.scanStringLiteral()
			return
		default:
			l.scanOther()
			return
		}
	}
}

func (l *Lexer) punct(t Token) {
	l.scanChar()
	l.token = t
}

func (l *Lexer) lineTerminator() {
	if l.hooks.LineTerminator != nil {
		l.hooks.LineTerminator(l.pos, l.bp)
	}
}

func (l *Lexer) comment(style CommentStyle) {
	if l.hooks.Comment != nil {
		l.hooks.Comment(style, l.pos, l.bp)
	}
}

// scanSlash handles comments and the division operators. It returns false
// when a complete comment was skipped and scanning should continue.
func (l *Lexer) scanSlash() bool {
	l.scanChar()
	switch l.ch {
	case '/':
		for {
			l.scanCommentChar()
			if l.ch == source.CR || l.ch == source.LF || l.bp >= l.buflen {
				break
			}
		}
		if l.bp < l.buflen {
			l.comment(LineComment)
		}
		return false
	case '*':
		l.scanChar()
		style := BlockComment
		if l.ch == '*' {
			style = DocComment
			l.scanDocComment()
		} else {
			for l.bp < l.buflen {
				if l.ch == '*' {
					l.scanChar()
					if l.ch == '/' {
						break
					}
				} else {
					l.scanCommentChar()
				}
			}
		}
		if l.ch != '/' {
			l.lexError("unclosed.comment")
			return true
		}
		l.scanChar()
		if style == DocComment {
			l.docComment = l.raw(l.pos, l.bp)
		}
		l.comment(style)
		return false
	case '=':
		l.name = l.names.SlashEquals
		l.token = SLASHEQ
		l.scanChar()
	default:
		l.name = l.names.Slash
		l.token = SLASH
	}
	return true
}

func (l *Lexer) scanCharLiteral() {
	l.scanChar()
	if l.ch == '\'' {
		l.lexError("empty.char.lit")
		return
	}
	if l.ch == source.CR || l.ch == source.LF {
		l.lexErrorAt(l.pos, "illegal.line.end.in.char.lit")
	}
	l.scanLitChar()
	if l.ch == '\'' {
		l.scanChar()
		l.token = CHARLITERAL
	} else {
		l.lexErrorAt(l.pos, "unclosed.char.lit")
	}
}

func (l *Lexer) scanStringLiteral() {
	l.scanChar()
	for l.ch != '"' && l.ch != source.CR && l.ch != source.LF && l.bp < l.buflen {
		l.scanLitChar()
	}
	if l.ch == '"' {
		l.token = STRINGLITERAL
		l.scanChar()
	} else {
		l.lexErrorAt(l.pos, "unclosed.str.lit")
	}
}

func (l *Lexer) scanOther() {
	if isSpecial(l.ch) {
		l.scanOperator()
		return
	}
	start := false
	if l.ch >= 0x80 {
		l.scanSurrogates()
		start = isIdentifierStart(l.ch)
	}
	switch {
	case start:
		l.scanIdent()
	case l.bp >= l.buflen || l.ch == source.EOI && l.bp+1 == l.buflen:
		l.token = EOF
		l.pos = l.eofPos
		l.bp = l.eofPos
	default:
		l.lexError("illegal.char", strconv.Itoa(int(l.ch)))
		l.scanChar()
	}
}

// combineSurrogates folds surrogate pairs produced by unicode escapes in
// literals into single code points.
func combineSurrogates(rs []rune) []rune {
	out := rs
	for i := 0; i+1 < len(rs); i++ {
		if isHighSurrogate(rs[i]) && isLowSurrogate(rs[i+1]) {
			out = make([]rune, 0, len(rs))
			for j := 0; j < len(rs); j++ {
				if j+1 < len(rs) && isHighSurrogate(rs[j]) && isLowSurrogate(rs[j+1]) {
					out = append(out, toCodePoint(rs[j], rs[j+1]))
					j++
				} else {
					out = append(out, rs[j])
				}
			}
			break
		}
	}
	return out
}

// ============================================================================
// Whole-input helpers
// ============================================================================

// Item is one scanned token with its text, as returned by Tokenize.
type Item struct {
	Token Token  `json:"token"`
	Pos   int    `json:"pos"`
	End   int    `json:"end"`
	Text  string `json:"text,omitempty"`
}

// MarshalJSON renders the token kind by name.
func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Tokenize scans the rest of the input and returns every token up to and
// including EOF.
func (l *Lexer) Tokenize() []Item {
	var items []Item
	for {
		l.NextToken()
		items = append(items, Item{Token: l.token, Pos: l.pos, End: l.endPos, Text: l.text()})
		if l.token == EOF {
			return items
		}
	}
}

// TokenizeJSON is Tokenize rendered as a JSON array.
func (l *Lexer) TokenizeJSON() (string, error) {
	data, err := json.Marshal(l.Tokenize())
	if err != nil {
		return "", fmt.Errorf("failed to marshal tokens: %w", err)
	}
	return string(data), nil
}

// text is the name for identifiers, keywords and operators, or the
// decoded literal text.
func (l *Lexer) text() string {
	switch {
	case l.token == IDENTIFIER:
		return l.name.String()
	case l.token.IsLiteral():
		return l.StringVal()
	}
	return ""
}

// String describes the lexer state for debugging.
func (l *Lexer) String() string {
	return fmt.Sprintf("Lexer{token=%s, pos=%d, end=%d, errPos=%d}", l.token, l.pos, l.endPos, l.errPos)
}
