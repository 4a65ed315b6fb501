// Package parser builds a syntax tree from Java source.
//
// The parser is recursive descent with one token of lookahead, taken from
// a lexer.Lexer. Binary operators are parsed by precedence climbing.
// Syntax errors never stop a parse: they are reported to the configured
// diag.Sink, the offending fragment becomes an ast.Erroneous node, and
// the parser skips ahead to a token where it can resume.
//
// Expressions and types share one grammar ("terms"). A mode word records
// whether the term being parsed may still turn out to be an expression, a
// type, or both; see term.
package parser

import (
	"strings"

	"github.com/tliron/commonlog"

	"github.com/chazu/jnova/pkg/ast"
	"github.com/chazu/jnova/pkg/code"
	"github.com/chazu/jnova/pkg/diag"
	"github.com/chazu/jnova/pkg/immlist"
	"github.com/chazu/jnova/pkg/lexer"
	"github.com/chazu/jnova/pkg/naming"
	"github.com/chazu/jnova/pkg/source"
)

var log = commonlog.GetLogger("jnova.parser")

// Term modes.
const (
	modeExpr     = 1 << iota // an expression is acceptable
	modeType                 // a type is acceptable
	modeNoParams             // type arguments are not allowed
	modeTypeArg              // a wildcard is acceptable
)

// infixPrecedenceLevels is the number of distinct binary operator
// precedences, from || up to the multiplicative operators.
const infixPrecedenceLevels = 10

// Config assembles a Parser's collaborators.
type Config struct {
	// Table interns names. Required.
	Table *naming.Table
	// Keywords classifies names; built from Table when nil.
	Keywords *lexer.Keywords
	// Names supplies predefined symbols; built from Table when nil.
	Names *naming.Names
	// Sink receives lexical and syntax errors; they are dropped when nil.
	Sink diag.Sink
	// Level is the language level accepted without complaint.
	Level source.Level
	// Factory builds the tree; a fresh one is used when nil.
	Factory *ast.Factory
	// KeepDocComments retains the doc comment of every declaration.
	KeepDocComments bool
}

// Parser is a Java parser for a single source. It is not safe for
// concurrent use.
type Parser struct {
	lex   *lexer.Lexer
	f     *ast.Factory
	names *naming.Names
	sink  diag.Sink
	level source.Level

	// errorPos is the lexer position after the last reported syntax
	// error. A second error there forces the lexer forward.
	errorPos int
	// errorEndPos is the furthest position covered by an error. Tokens
	// up to it are skipped during recovery.
	errorEndPos int

	mode     int
	lastmode int

	allowAsserts      bool
	allowEnums        bool
	allowGenerics     bool
	allowVarargs      bool
	allowForeach      bool
	allowStaticImport bool
	allowAnnotations  bool

	docComments map[ast.Node]string
}

// New creates a Parser reading src. Nothing is scanned until one of the
// Parse methods is called.
func New(cfg Config, src source.Source) *Parser {
	if cfg.Table == nil {
		panic("parser: Config.Table is required")
	}
	if cfg.Names == nil {
		cfg.Names = naming.NewNames(cfg.Table)
	}
	if cfg.Level == 0 {
		cfg.Level = source.DefaultLevel
	}
	if cfg.Factory == nil {
		cfg.Factory = ast.NewFactory(cfg.Names)
	}
	lex := lexer.New(lexer.Config{
		Table:    cfg.Table,
		Keywords: cfg.Keywords,
		Names:    cfg.Names,
		Sink:     cfg.Sink,
		Level:    cfg.Level,
	})
	lex.SetSourceFrom(src)

	p := &Parser{
		lex:         lex,
		f:           cfg.Factory,
		names:       cfg.Names,
		sink:        cfg.Sink,
		level:       cfg.Level,
		errorPos:    source.NOPOS,
		errorEndPos: -1,

		allowAsserts:      cfg.Level.AllowAsserts(),
		allowEnums:        cfg.Level.AllowEnums(),
		allowGenerics:     cfg.Level.AllowGenerics(),
		allowVarargs:      cfg.Level.AllowVarargs(),
		allowForeach:      cfg.Level.AllowForeach(),
		allowStaticImport: cfg.Level.AllowStaticImport(),
		allowAnnotations:  cfg.Level.AllowAnnotations(),
	}
	if cfg.KeepDocComments {
		p.docComments = make(map[ast.Node]string)
	}
	return p
}

// Lexer returns the lexer the parser reads from, so that callers can
// install hooks before parsing.
func (p *Parser) Lexer() *lexer.Lexer {
	return p.lex
}

// DocComments maps declarations to the doc comment that preceded them.
// It is nil unless Config.KeepDocComments was set.
func (p *Parser) DocComments() map[ast.Node]string {
	return p.docComments
}

// ParseCompilationUnit parses the whole source as a compilation unit.
func (p *Parser) ParseCompilationUnit() *ast.CompilationUnit {
	p.next()
	return p.compilationUnit()
}

// ParseSingleConstruct parses one import declaration or one annotation
// from the start of the source. Anything else yields an empty statement.
func (p *Parser) ParseSingleConstruct() ast.Node {
	p.next()
	switch p.tok() {
	case lexer.IMPORT:
		return p.importDeclaration()
	case lexer.MONKEYS_AT:
		pos := p.pos()
		p.next()
		return p.annotation(pos)
	default:
		return p.f.At(p.pos()).EmptyStatement()
	}
}

// ============================================================================
// Token access
// ============================================================================

func (p *Parser) tok() lexer.Token { return p.lex.Token() }
func (p *Parser) pos() int         { return p.lex.Pos() }
func (p *Parser) next()            { p.lex.NextToken() }

// tokenText renders a token for an "expected" message.
func tokenText(t lexer.Token) string {
	if t == lexer.IDENTIFIER {
		return "<identifier>"
	}
	if s := t.Spelling(); s != "" {
		return "'" + s + "'"
	}
	return strings.ToLower(t.String())
}

func (p *Parser) attach(n ast.Node, dc string) {
	if p.docComments != nil && dc != "" {
		p.docComments[n] = dc
	}
}

// ============================================================================
// Error reporting and recovery
// ============================================================================

func (p *Parser) report(sev diag.Severity, key string, pos int, args ...any) {
	if p.sink != nil {
		p.sink.Report(sev, key, pos, args...)
	}
}

func (p *Parser) logError(key string, args ...any) {
	p.report(diag.Error, key, p.pos(), args...)
}

func (p *Parser) logWarning(key string, args ...any) {
	p.report(diag.Warning, key, p.pos(), args...)
}

func (p *Parser) setErrorEndPos(pos int) {
	if pos > p.errorEndPos {
		p.errorEndPos = pos
	}
}

// reportSyntaxError reports key at pos unless an error was already
// reported at or after pos, and makes sure the parser moves forward.
func (p *Parser) reportSyntaxError(pos int, key string, args ...any) {
	if pos > p.lex.ErrPos() || pos == source.NOPOS {
		if p.tok() == lexer.EOF {
			p.report(diag.Error, "premature.eof", source.NOPOS)
		} else {
			p.report(diag.Error, key, pos, args...)
		}
	}
	p.lex.SetErrPos(pos)
	if p.pos() == p.errorPos {
		log.Debugf("forcing progress past %s at %d", p.tok(), p.pos())
		p.next()
	}
	p.errorPos = p.pos()
}

func (p *Parser) syntaxError(pos int, errs *immlist.List[ast.Node], key string, args ...any) *ast.Erroneous {
	p.setErrorEndPos(pos)
	p.reportSyntaxError(pos, key, args...)
	return p.f.At(pos).Erroneous(errs)
}

// illegalAt reports an illegal start of expression or type, depending on
// the current mode.
func (p *Parser) illegalAt(pos int) ast.Expr {
	p.setErrorEndPos(p.pos())
	if p.mode&modeExpr != 0 {
		return p.syntaxError(pos, nil, "illegal.start.of.expr")
	}
	return p.syntaxError(pos, nil, "illegal.start.of.type")
}

func (p *Parser) illegal() ast.Expr {
	return p.illegalAt(p.pos())
}

// checkNoMods reports the lowest flag in mods, if any.
func (p *Parser) checkNoMods(mods int64) {
	if mods != 0 {
		lowest := mods & -mods
		p.logError("mod.not.allowed.here", strings.TrimSpace(code.FlagsString(lowest)))
	}
}

// accept consumes t, or reports it as expected at the end of the previous
// token.
func (p *Parser) accept(t lexer.Token) {
	if p.tok() == t {
		p.next()
		return
	}
	p.setErrorEndPos(p.pos())
	p.reportSyntaxError(p.lex.PrevEndPos(), "expected1", tokenText(t))
}

// skip advances to a token where parsing can resume. A semicolon is
// consumed; the other stop tokens are left in place.
func (p *Parser) skip(stopAtImport, stopAtMemberDecl, stopAtIdentifier, stopAtStatement bool) {
	from := p.pos()
	defer func() {
		log.Debugf("skipped from %d to %s at %d", from, p.tok(), p.pos())
	}()
	for {
		switch p.tok() {
		case lexer.SEMI:
			p.next()
			return
		case lexer.PUBLIC, lexer.FINAL, lexer.ABSTRACT, lexer.MONKEYS_AT, lexer.EOF,
			lexer.CLASS, lexer.INTERFACE, lexer.ENUM:
			return
		case lexer.IMPORT:
			if stopAtImport {
				return
			}
		case lexer.LBRACE, lexer.RBRACE, lexer.PRIVATE, lexer.PROTECTED, lexer.STATIC,
			lexer.TRANSIENT, lexer.NATIVE, lexer.VOLATILE, lexer.SYNCHRONIZED, lexer.STRICTFP,
			lexer.LT, lexer.BYTE, lexer.SHORT, lexer.CHAR, lexer.INT, lexer.LONG,
			lexer.FLOAT, lexer.DOUBLE, lexer.BOOLEAN, lexer.VOID:
			if stopAtMemberDecl {
				return
			}
		case lexer.IDENTIFIER:
			if stopAtIdentifier {
				return
			}
		case lexer.CASE, lexer.DEFAULT, lexer.IF, lexer.FOR, lexer.WHILE, lexer.DO,
			lexer.TRY, lexer.SWITCH, lexer.RETURN, lexer.THROW, lexer.BREAK, lexer.CONTINUE,
			lexer.ELSE, lexer.FINALLY, lexer.CATCH:
			if stopAtStatement {
				return
			}
		}
		p.next()
	}
}

// ============================================================================
// Language level gates
// ============================================================================

// Each gate reports once, then lets the construct through.

func (p *Parser) checkGenerics() {
	if !p.allowGenerics {
		p.logError("generics.not.supported.in.source", p.level.String())
		p.allowGenerics = true
	}
}

func (p *Parser) checkVarargs() {
	if !p.allowVarargs {
		p.logError("varargs.not.supported.in.source", p.level.String())
		p.allowVarargs = true
	}
}

func (p *Parser) checkForeach() {
	if !p.allowForeach {
		p.logError("foreach.not.supported.in.source", p.level.String())
		p.allowForeach = true
	}
}

func (p *Parser) checkStaticImports() {
	if !p.allowStaticImport {
		p.logError("static.import.not.supported.in.source", p.level.String())
		p.allowStaticImport = true
	}
}

func (p *Parser) checkAnnotations() {
	if !p.allowAnnotations {
		p.logError("annotations.not.supported.in.source", p.level.String())
		p.allowAnnotations = true
	}
}

// ============================================================================
// Token classification
// ============================================================================

// optag maps a binary or compound assignment operator token to its kind.
func optag(t lexer.Token) (ast.Kind, bool) {
	switch t {
	case lexer.BARBAR:
		return ast.OR, true
	case lexer.AMPAMP:
		return ast.AND, true
	case lexer.BAR:
		return ast.BITOR, true
	case lexer.BAREQ:
		return ast.BITOR_ASG, true
	case lexer.CARET:
		return ast.BITXOR, true
	case lexer.CARETEQ:
		return ast.BITXOR_ASG, true
	case lexer.AMP:
		return ast.BITAND, true
	case lexer.AMPEQ:
		return ast.BITAND_ASG, true
	case lexer.EQEQ:
		return ast.EQ, true
	case lexer.BANGEQ:
		return ast.NE, true
	case lexer.LT:
		return ast.LT, true
	case lexer.GT:
		return ast.GT, true
	case lexer.LTEQ:
		return ast.LE, true
	case lexer.GTEQ:
		return ast.GE, true
	case lexer.LTLT:
		return ast.SL, true
	case lexer.LTLTEQ:
		return ast.SL_ASG, true
	case lexer.GTGT:
		return ast.SR, true
	case lexer.GTGTEQ:
		return ast.SR_ASG, true
	case lexer.GTGTGT:
		return ast.USR, true
	case lexer.GTGTGTEQ:
		return ast.USR_ASG, true
	case lexer.PLUS:
		return ast.PLUS, true
	case lexer.PLUSEQ:
		return ast.PLUS_ASG, true
	case lexer.SUB:
		return ast.MINUS, true
	case lexer.SUBEQ:
		return ast.MINUS_ASG, true
	case lexer.STAR:
		return ast.MUL, true
	case lexer.STAREQ:
		return ast.MUL_ASG, true
	case lexer.SLASH:
		return ast.DIV, true
	case lexer.SLASHEQ:
		return ast.DIV_ASG, true
	case lexer.PERCENT:
		return ast.MOD, true
	case lexer.PERCENTEQ:
		return ast.MOD_ASG, true
	case lexer.INSTANCEOF:
		return ast.TYPETEST, true
	}
	return 0, false
}

// prec is the precedence of a binary operator token, or -1.
func prec(t lexer.Token) int {
	if k, ok := optag(t); ok {
		return ast.OpPrec(k)
	}
	return -1
}

func unoptag(t lexer.Token) (ast.Kind, bool) {
	switch t {
	case lexer.PLUS:
		return ast.POS, true
	case lexer.SUB:
		return ast.NEG, true
	case lexer.BANG:
		return ast.NOT, true
	case lexer.TILDE:
		return ast.COMPL, true
	case lexer.PLUSPLUS:
		return ast.PREINC, true
	case lexer.SUBSUB:
		return ast.PREDEC, true
	}
	return 0, false
}

func typetag(t lexer.Token) (code.TypeTag, bool) {
	switch t {
	case lexer.BYTE:
		return code.BYTE, true
	case lexer.CHAR:
		return code.CHAR, true
	case lexer.SHORT:
		return code.SHORT, true
	case lexer.INT:
		return code.INT, true
	case lexer.LONG:
		return code.LONG, true
	case lexer.FLOAT:
		return code.FLOAT, true
	case lexer.DOUBLE:
		return code.DOUBLE, true
	case lexer.BOOLEAN:
		return code.BOOLEAN, true
	}
	return code.ERROR, false
}

// checkExprStat wraps t in an Erroneous node, with an error, unless it
// may stand as a statement.
func (p *Parser) checkExprStat(t ast.Expr) ast.Expr {
	switch t.Kind() {
	case ast.PREINC, ast.PREDEC, ast.POSTINC, ast.POSTDEC, ast.ASSIGN,
		ast.BITOR_ASG, ast.BITXOR_ASG, ast.BITAND_ASG,
		ast.SL_ASG, ast.SR_ASG, ast.USR_ASG,
		ast.PLUS_ASG, ast.MINUS_ASG, ast.MUL_ASG, ast.DIV_ASG, ast.MOD_ASG,
		ast.APPLY, ast.NEWCLASS, ast.ERRONEOUS:
		return t
	}
	p.report(diag.Error, "not.stmt", t.Pos())
	return p.f.At(t.Pos()).Erroneous(immlist.Of[ast.Node](t))
}
