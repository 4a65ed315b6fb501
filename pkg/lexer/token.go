package lexer

//go:generate go run ../../cmd/jnova-tokengen --in tokens.toml --out token_gen.go

import "fmt"

// Token is a lexical category. The constants are generated from
// tokens.toml.
type Token int

// Count returns the number of token kinds.
func Count() int {
	return len(tokenNames)
}

// String returns the token's constant name, e.g. "LPAREN".
func (t Token) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("Token(%d)", int(t))
}

// Spelling returns the canonical source text of keywords and operators,
// or "" for tokens that have none.
func (t Token) Spelling() string {
	if t >= 0 && int(t) < len(tokenSpellings) {
		return tokenSpellings[t]
	}
	return ""
}

// Display renders the token the way diagnostics show it: the spelling
// when there is one, else the constant name.
func (t Token) Display() string {
	if s := t.Spelling(); s != "" {
		return s
	}
	return t.String()
}

// IsLiteral reports whether t is a numeric, character or string literal.
func (t Token) IsLiteral() bool {
	switch t {
	case INTLITERAL, LONGLITERAL, FLOATLITERAL, DOUBLELITERAL, CHARLITERAL, STRINGLITERAL:
		return true
	}
	return false
}

// IsPrimitive reports whether t names a primitive type.
func (t Token) IsPrimitive() bool {
	switch t {
	case BYTE, SHORT, CHAR, INT, LONG, FLOAT, DOUBLE, BOOLEAN:
		return true
	}
	return false
}
