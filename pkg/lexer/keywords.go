package lexer

import "github.com/chazu/jnova/pkg/naming"

// Keywords classifies interned names as keywords, operators or plain
// identifiers.
//
// Every token spelling is interned up front and the classification table
// is indexed by symbol index. Slots that do not belong to a spelling hold
// IDENTIFIER, and any index past the last spelling is an identifier too.
type Keywords struct {
	key    []Token
	maxKey int
	names  []*naming.Symbol
}

// NewKeywords interns every token spelling into table.
func NewKeywords(table *naming.Table) *Keywords {
	k := &Keywords{names: make([]*naming.Symbol, Count())}
	for i := range k.names {
		t := Token(i)
		if t.Spelling() == "" {
			continue
		}
		sym := table.Intern(t.Spelling())
		k.names[i] = sym
		if sym.Index() > k.maxKey {
			k.maxKey = sym.Index()
		}
	}

	k.key = make([]Token, k.maxKey+1)
	for i := range k.key {
		k.key[i] = IDENTIFIER
	}
	for i, sym := range k.names {
		if sym != nil {
			k.key[sym.Index()] = Token(i)
		}
	}
	return k
}

// Key returns the token for name, IDENTIFIER for ordinary names.
func (k *Keywords) Key(name *naming.Symbol) Token {
	if name.Index() > k.maxKey {
		return IDENTIFIER
	}
	return k.key[name.Index()]
}

// Name returns the interned spelling of t, or nil if t has none.
func (k *Keywords) Name(t Token) *naming.Symbol {
	if t < 0 || int(t) >= len(k.names) {
		return nil
	}
	return k.names[t]
}
