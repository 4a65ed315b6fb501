// Package codegen generates the Go source of the lexer's token table from
// its TOML description.
package codegen

import (
	"bytes"
	"fmt"
	"go/token"
	"os"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/dave/jennifer/jen"
)

// TokenDef describes one token kind. Spelling is empty for tokens that
// have no fixed text, such as identifiers and literals.
type TokenDef struct {
	Name     string `toml:"name"`
	Spelling string `toml:"spelling"`
}

// TokenSet is the decoded tokens.toml, in declaration order.
type TokenSet struct {
	Tokens []TokenDef `toml:"token"`
}

// Options control the generated file.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// Type is the name of the token kind type.
	Type string
	// Source names the input in the header comment.
	Source string
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = "lexer"
	}
	if o.Type == "" {
		o.Type = "Token"
	}
	if o.Source == "" {
		o.Source = "tokens.toml"
	}
	return o
}

// Result contains the generated code and any warnings.
type Result struct {
	Code     string
	Warnings []string
}

// LoadTokens reads and validates a token description file.
func LoadTokens(path string) (*TokenSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	set, err := ParseTokens(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// ParseTokens decodes and validates a token description. Unknown keys are
// rejected so that a misspelled "spelling" does not silently drop a
// keyword.
func ParseTokens(data []byte) (*TokenSet, error) {
	var set TokenSet
	md, err := toml.Decode(string(data), &set)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %s", undecoded[0])
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// Validate checks that the set is non-empty and that names are distinct Go
// identifiers and spellings are distinct.
func (s *TokenSet) Validate() error {
	if len(s.Tokens) == 0 {
		return fmt.Errorf("no tokens defined")
	}
	names := map[string]int{}
	spellings := map[string]string{}
	for i, t := range s.Tokens {
		if !token.IsIdentifier(t.Name) {
			return fmt.Errorf("token %d: %q is not a valid identifier", i, t.Name)
		}
		if j, dup := names[t.Name]; dup {
			return fmt.Errorf("token %d: %s already defined as token %d", i, t.Name, j)
		}
		names[t.Name] = i
		if t.Spelling == "" {
			continue
		}
		if other, dup := spellings[t.Spelling]; dup {
			return fmt.Errorf("token %s: spelling %q already used by %s", t.Name, t.Spelling, other)
		}
		spellings[t.Spelling] = t.Name
	}
	return nil
}

// Keywords returns the tokens whose spelling is a word.
func (s *TokenSet) Keywords() []TokenDef {
	var out []TokenDef
	for _, t := range s.Tokens {
		if isWord(t.Spelling) {
			out = append(out, t)
		}
	}
	return out
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// GenerateTokens produces the token kind constants, in declaration order
// starting at zero, and two lookup tables indexed by kind: tokenNames and
// tokenSpellings.
func GenerateTokens(set *TokenSet, opts Options) (*Result, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	g := &generator{set: set, opts: opts}
	return g.generate()
}

type generator struct {
	set      *TokenSet
	opts     Options
	warnings []string
}

func (g *generator) warnf(format string, args ...any) {
	g.warnings = append(g.warnings, fmt.Sprintf(format, args...))
}

func (g *generator) generate() (*Result, error) {
	f := jen.NewFile(g.opts.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by jnova-tokengen from %s. DO NOT EDIT.", g.opts.Source))

	g.checkConventions()

	defs := make([]jen.Code, len(g.set.Tokens))
	for i, t := range g.set.Tokens {
		if i == 0 {
			defs[i] = jen.Id(t.Name).Id(g.opts.Type).Op("=").Iota()
		} else {
			defs[i] = jen.Id(t.Name)
		}
	}
	f.Const().Defs(defs...)
	f.Line()

	f.Var().Id("tokenNames").Op("=").Index(jen.Op("...")).String().Values(jen.DictFunc(func(d jen.Dict) {
		for _, t := range g.set.Tokens {
			d[jen.Id(t.Name)] = jen.Lit(t.Name)
		}
	}))
	f.Line()

	f.Var().Id("tokenSpellings").Op("=").Index(jen.Op("...")).String().Values(jen.DictFunc(func(d jen.Dict) {
		for _, t := range g.set.Tokens {
			if t.Spelling != "" {
				d[jen.Id(t.Name)] = jen.Lit(t.Spelling)
			}
		}
	}))

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return &Result{Code: buf.String(), Warnings: g.warnings}, nil
}

// checkConventions warns about token sets the lexer cannot use as is.
// They still generate.
func (g *generator) checkConventions() {
	if first := g.set.Tokens[0].Name; first != "EOF" {
		g.warnf("first token is %s; the lexer expects EOF to be the zero kind", first)
	}
	for _, t := range g.set.Keywords() {
		if t.Name != strings.ToUpper(t.Spelling) {
			g.warnf("keyword %q is named %s, not %s", t.Spelling, t.Name, strings.ToUpper(t.Spelling))
		}
	}
}
