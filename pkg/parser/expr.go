package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/chazu/jnova/pkg/ast"
	"github.com/chazu/jnova/pkg/code"
	"github.com/chazu/jnova/pkg/immlist"
	"github.com/chazu/jnova/pkg/lexer"
	"github.com/chazu/jnova/pkg/naming"
	"github.com/chazu/jnova/pkg/source"
)

// ident consumes an identifier. assert and enum are accepted with a
// warning below the level that made them keywords, and rejected with an
// error from it on. Anything else yields the error name.
func (p *Parser) ident() *naming.Symbol {
	switch p.tok() {
	case lexer.IDENTIFIER:
		name := p.lex.Name()
		p.next()
		return name
	case lexer.ASSERT:
		return p.keywordAsIdent(p.allowAsserts, "assert.as.identifier")
	case lexer.ENUM:
		return p.keywordAsIdent(p.allowEnums, "enum.as.identifier")
	}
	p.accept(lexer.IDENTIFIER)
	return p.names.Error
}

func (p *Parser) keywordAsIdent(reserved bool, key string) *naming.Symbol {
	if reserved {
		p.logError(key)
		p.next()
		return p.names.Error
	}
	p.logWarning(key)
	name := p.lex.Name()
	p.next()
	return name
}

// qualident parses Ident { "." Ident }.
func (p *Parser) qualident() ast.Expr {
	var t ast.Expr = p.f.At(p.pos()).Ident(p.ident())
	for p.tok() == lexer.DOT {
		pos := p.pos()
		p.next()
		t = p.f.At(pos).FieldAccess(t, p.ident())
	}
	return t
}

// ============================================================================
// Literals
// ============================================================================

// literal converts the current literal token. prefix is "-" when a minus
// sign was folded into a decimal integer literal.
func (p *Parser) literal(prefix *naming.Symbol) ast.Expr {
	pos := p.pos()
	var t ast.Expr
	switch p.tok() {
	case lexer.INTLITERAL:
		s := p.strval(prefix)
		if v, err := code.ParseInt(s, p.lex.Radix()); err == nil {
			t = p.f.At(pos).Literal(code.INT, v)
		} else {
			p.logError("int.number.too.large", s)
		}
	case lexer.LONGLITERAL:
		s := p.strval(prefix)
		if v, err := code.ParseLong(s, p.lex.Radix()); err == nil {
			t = p.f.At(pos).Literal(code.LONG, v)
		} else {
			p.logError("int.number.too.large", s)
		}
	case lexer.FLOATLITERAL:
		if v, ok := p.floatValue(32); ok {
			t = p.f.At(pos).Literal(code.FLOAT, float32(v))
		}
	case lexer.DOUBLELITERAL:
		if v, ok := p.floatValue(64); ok {
			t = p.f.At(pos).Literal(code.DOUBLE, v)
		}
	case lexer.CHARLITERAL:
		var r rune
		for _, c := range p.lex.StringVal() {
			r = c
			break
		}
		t = p.f.At(pos).Literal(code.CHAR, r)
	case lexer.STRINGLITERAL:
		t = p.f.At(pos).Literal(code.CLASS, p.lex.StringVal())
	case lexer.TRUE, lexer.FALSE:
		t = p.f.At(pos).Literal(code.BOOLEAN, p.tok() == lexer.TRUE)
	case lexer.NULL:
		t = p.f.At(pos).Literal(code.BOT, nil)
	default:
		return p.illegal()
	}
	if t == nil {
		t = p.f.At(pos).Erroneous(nil)
	}
	p.next()
	return t
}

func (p *Parser) strval(prefix *naming.Symbol) string {
	s := p.lex.StringVal()
	if prefix.Len() == 0 {
		return s
	}
	return prefix.String() + s
}

// floatValue converts the current floating point literal. Out of range
// values are reported and yield false. Malformed text was already
// reported by the lexer and yields NaN.
func (p *Parser) floatValue(bitSize int) (float64, bool) {
	proper := p.lex.StringVal()
	if p.lex.Radix() == 16 {
		proper = "0x" + proper
	}
	v, err := strconv.ParseFloat(strings.TrimRight(proper, "fFdD"), bitSize)
	if err != nil && !math.IsInf(v, 0) {
		v = math.NaN()
	}
	switch {
	case v == 0 && !isZero(proper):
		p.logError("fp.number.too.small")
		return 0, false
	case math.IsInf(v, 1):
		p.logError("fp.number.too.large")
		return 0, false
	}
	return v, true
}

// isZero reports whether the digits of a floating point literal are all
// zero, ignoring any exponent.
func isZero(s string) bool {
	base := 10
	i := 0
	if len(s) > 1 && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		i = 2
	}
	for i < len(s) && (s[i] == '0' || s[i] == '.') {
		i++
	}
	return !(i < len(s) && digitValue(s[i], base) > 0)
}

func digitValue(c byte, base int) int {
	var d int
	switch {
	case '0' <= c && c <= '9':
		d = int(c - '0')
	case 'a' <= c && c <= 'f':
		d = int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		d = int(c-'A') + 10
	default:
		return -1
	}
	if d >= base {
		return -1
	}
	return d
}

// ============================================================================
// Terms
// ============================================================================

func (p *Parser) expression() ast.Expr { return p.termMode(modeExpr) }
func (p *Parser) typ() ast.Expr        { return p.termMode(modeType) }

func (p *Parser) termMode(newmode int) ast.Expr {
	prevmode := p.mode
	p.mode = newmode
	t := p.term()
	p.lastmode = p.mode
	p.mode = prevmode
	return t
}

// term parses
//
//	Expression = Expression1 [ExpressionRest]
//	ExpressionRest = [AssignmentOperator Expression1]
//	Type = Type1
//
// On return lastmode holds the mode in which the term was recognized.
func (p *Parser) term() ast.Expr {
	t := p.term1()
	if p.mode&modeExpr != 0 && (p.tok() == lexer.EQ || lexer.PLUSEQ <= p.tok() && p.tok() <= lexer.GTGTGTEQ) {
		return p.termRest(t)
	}
	return t
}

func (p *Parser) termRest(t ast.Expr) ast.Expr {
	switch p.tok() {
	case lexer.EQ:
		pos := p.pos()
		p.next()
		p.mode = modeExpr
		t1 := p.term()
		return p.f.At(pos).Assignment(t, t1)
	case lexer.PLUSEQ, lexer.SUBEQ, lexer.STAREQ, lexer.SLASHEQ, lexer.PERCENTEQ,
		lexer.AMPEQ, lexer.BAREQ, lexer.CARETEQ, lexer.LTLTEQ, lexer.GTGTEQ, lexer.GTGTGTEQ:
		pos := p.pos()
		op, _ := optag(p.tok())
		p.next()
		p.mode = modeExpr
		t1 := p.term()
		return p.f.At(pos).CompoundAssignment(op, t, t1)
	}
	return t
}

// term1 parses Expression1 = Expression2 [Expression1Rest].
func (p *Parser) term1() ast.Expr {
	t := p.term2()
	if p.mode&modeExpr != 0 && p.tok() == lexer.QUES {
		p.mode = modeExpr
		return p.term1Rest(t)
	}
	return t
}

// term1Rest parses Expression1Rest = ["?" Expression ":" Expression1].
func (p *Parser) term1Rest(t ast.Expr) ast.Expr {
	if p.tok() != lexer.QUES {
		return t
	}
	pos := p.pos()
	p.next()
	t1 := p.term()
	p.accept(lexer.COLON)
	t2 := p.term1()
	return p.f.At(pos).Conditional(t, t1, t2)
}

// term2 parses Expression2 = Expression3 [Expression2Rest].
func (p *Parser) term2() ast.Expr {
	t := p.term3()
	if p.mode&modeExpr != 0 && prec(p.tok()) >= ast.OrPrec {
		p.mode = modeExpr
		return p.term2Rest(t, ast.OrPrec)
	}
	return t
}

// term2Rest parses Expression2Rest = {infixop Expression3} by operator
// precedence, and folds a chain of string literal concatenations into a
// single literal.
func (p *Parser) term2Rest(t ast.Expr, minprec int) ast.Expr {
	var (
		odStack  [infixPrecedenceLevels + 1]ast.Expr
		opStack  [infixPrecedenceLevels + 1]lexer.Token
		posStack [infixPrecedenceLevels + 1]int
	)
	top := 0
	odStack[0] = t
	startPos := p.pos()
	topOp, topPos := lexer.ERROR, source.NOPOS
	for prec(p.tok()) >= minprec {
		opStack[top], posStack[top] = topOp, topPos
		top++
		topOp, topPos = p.tok(), p.pos()
		p.next()
		if topOp == lexer.INSTANCEOF {
			odStack[top] = p.typ()
		} else {
			odStack[top] = p.term3()
		}
		for top > 0 && prec(topOp) >= prec(p.tok()) {
			odStack[top-1] = p.makeOp(topPos, topOp, odStack[top-1], odStack[top])
			top--
			topOp, topPos = opStack[top], posStack[top]
		}
	}
	t = odStack[0]
	if t.Kind() == ast.PLUS {
		if s, ok := foldStrings(t); ok {
			t = p.f.At(startPos).Literal(code.CLASS, s)
		}
	}
	return t
}

func (p *Parser) makeOp(pos int, op lexer.Token, od1, od2 ast.Expr) ast.Expr {
	if op == lexer.INSTANCEOF {
		return p.f.At(pos).InstanceOf(od1, od2)
	}
	k, _ := optag(op)
	return p.f.At(pos).Binary(k, od1, od2)
}

// foldStrings returns the concatenation of n when n is a left-leaning
// chain of + whose operands are all string literals.
func foldStrings(n ast.Expr) (string, bool) {
	var tail []string
	for {
		switch t := n.(type) {
		case *ast.Literal:
			if t.TypeTag() != code.CLASS {
				return "", false
			}
			var b strings.Builder
			b.WriteString(t.Value().(string))
			for i := len(tail) - 1; i >= 0; i-- {
				b.WriteString(tail[i])
			}
			return b.String(), true
		case *ast.Binary:
			r, ok := t.Right().(*ast.Literal)
			if t.Kind() != ast.PLUS || !ok || r.TypeTag() != code.CLASS {
				return "", false
			}
			tail = append(tail, r.Value().(string))
			n = t.Left()
		default:
			return "", false
		}
	}
}

// term3 parses
//
//	Expression3 = PrefixOp Expression3
//	            | "(" Expr | TypeNoParams ")" Expression3
//	            | Primary {Selector} {PostfixOp}
//	Primary     = "(" Expression ")"
//	            | Literal
//	            | [TypeArguments] THIS [Arguments]
//	            | [TypeArguments] SUPER SuperSuffix
//	            | NEW [TypeArguments] Creator
//	            | Ident { "." Ident }
//	              [ "[" ( "]" BracketsOpt "." CLASS | Expression "]" )
//	              | Arguments
//	              | "." ( CLASS | THIS | [TypeArguments] SUPER Arguments | NEW [TypeArguments] InnerCreator )
//	              ]
//	            | BasicType BracketsOpt "." CLASS
func (p *Parser) term3() ast.Expr {
	pos := p.pos()
	var t ast.Expr
	typeArgs := p.typeArgumentsOptMode(modeExpr)
	switch p.tok() {
	case lexer.QUES:
		if p.mode&modeType != 0 && p.mode&(modeTypeArg|modeNoParams) == modeTypeArg {
			p.mode = modeType
			return p.typeArgument()
		}
		return p.illegal()

	case lexer.PLUSPLUS, lexer.SUBSUB, lexer.BANG, lexer.TILDE, lexer.PLUS, lexer.SUB:
		if typeArgs != nil || p.mode&modeExpr == 0 {
			return p.illegal()
		}
		op := p.tok()
		p.next()
		p.mode = modeExpr
		if op == lexer.SUB && (p.tok() == lexer.INTLITERAL || p.tok() == lexer.LONGLITERAL) && p.lex.Radix() == 10 {
			p.mode = modeExpr
			t = p.literal(p.names.Hyphen)
		} else {
			t = p.term3()
			k, _ := unoptag(op)
			return p.f.At(pos).Unary(k, t)
		}

	case lexer.LPAREN:
		if typeArgs != nil || p.mode&modeExpr == 0 {
			return p.illegal()
		}
		p.next()
		p.mode = modeExpr | modeType | modeNoParams
		t = p.term3()
		if p.mode&modeType != 0 && p.tok() == lexer.LT {
			// could be a cast to a parameterized type
			pos1 := p.pos()
			p.next()
			p.mode &= modeExpr | modeType
			p.mode |= modeTypeArg
			t1 := p.term3()
			switch {
			case p.mode&modeType != 0 && (p.tok() == lexer.COMMA || p.tok() == lexer.GT):
				p.mode = modeType
				var args immlist.Buffer[ast.Expr]
				args.Append(t1)
				for p.tok() == lexer.COMMA {
					p.next()
					args.Append(p.typeArgument())
				}
				p.accept(lexer.GT)
				t = p.f.At(pos1).ParameterizedType(t, args.List())
				p.checkGenerics()
				t = p.bracketsOpt(t)
			case p.mode&modeExpr != 0:
				p.mode = modeExpr
				rhs := p.term2Rest(t1, ast.ShiftPrec)
				t = p.f.At(pos1).Binary(ast.LT, t, rhs)
				t = p.termRest(p.term1Rest(p.term2Rest(t, ast.OrPrec)))
			default:
				p.accept(lexer.GT)
			}
		} else {
			t = p.termRest(p.term1Rest(p.term2Rest(t, ast.OrPrec)))
		}
		p.accept(lexer.RPAREN)
		p.lastmode = p.mode
		p.mode = modeExpr
		if p.lastmode&modeExpr == 0 {
			t1 := p.term3()
			return p.f.At(pos).TypeCast(t, t1)
		}
		if p.lastmode&modeType != 0 {
			switch p.tok() {
			case lexer.BANG, lexer.TILDE, lexer.LPAREN, lexer.THIS, lexer.SUPER,
				lexer.INTLITERAL, lexer.LONGLITERAL, lexer.FLOATLITERAL, lexer.DOUBLELITERAL,
				lexer.CHARLITERAL, lexer.STRINGLITERAL, lexer.TRUE, lexer.FALSE, lexer.NULL,
				lexer.NEW, lexer.IDENTIFIER, lexer.ASSERT, lexer.ENUM,
				lexer.BYTE, lexer.SHORT, lexer.CHAR, lexer.INT, lexer.LONG, lexer.FLOAT,
				lexer.DOUBLE, lexer.BOOLEAN, lexer.VOID:
				t1 := p.term3()
				return p.f.At(pos).TypeCast(t, t1)
			}
		}
		t = p.f.At(pos).Parens(t)

	case lexer.THIS:
		if p.mode&modeExpr == 0 {
			return p.illegal()
		}
		p.mode = modeExpr
		t = p.f.At(pos).Ident(p.names.This)
		p.next()
		if typeArgs == nil {
			t = p.argumentsOpt(nil, t)
		} else {
			t = p.methodInvocation(typeArgs, t)
		}
		typeArgs = nil

	case lexer.SUPER:
		if p.mode&modeExpr == 0 {
			return p.illegal()
		}
		p.mode = modeExpr
		t = p.superSuffix(typeArgs, p.f.At(pos).Ident(p.names.Super))
		typeArgs = nil

	case lexer.INTLITERAL, lexer.LONGLITERAL, lexer.FLOATLITERAL, lexer.DOUBLELITERAL,
		lexer.CHARLITERAL, lexer.STRINGLITERAL, lexer.TRUE, lexer.FALSE, lexer.NULL:
		if typeArgs != nil || p.mode&modeExpr == 0 {
			return p.illegal()
		}
		p.mode = modeExpr
		t = p.literal(p.names.Empty)

	case lexer.NEW:
		if typeArgs != nil || p.mode&modeExpr == 0 {
			return p.illegal()
		}
		p.mode = modeExpr
		p.next()
		if p.tok() == lexer.LT {
			typeArgs = p.typeArguments()
		}
		t = p.creator(pos, typeArgs)
		typeArgs = nil

	case lexer.IDENTIFIER, lexer.ASSERT, lexer.ENUM:
		if typeArgs != nil {
			return p.illegal()
		}
		t = p.f.At(p.pos()).Ident(p.ident())
	loop:
		for {
			pos = p.pos()
			switch p.tok() {
			case lexer.LBRACKET:
				p.next()
				if p.tok() == lexer.RBRACKET {
					p.next()
					t = p.bracketsOpt(t)
					t = p.f.At(pos).ArrayType(t)
					t = p.bracketsSuffix(t)
				} else {
					if p.mode&modeExpr != 0 {
						p.mode = modeExpr
						t1 := p.term()
						t = p.f.At(pos).ArrayAccess(t, t1)
					}
					p.accept(lexer.RBRACKET)
				}
				break loop
			case lexer.LPAREN:
				if p.mode&modeExpr != 0 {
					p.mode = modeExpr
					t = p.methodInvocation(typeArgs, t)
					typeArgs = nil
				}
				break loop
			case lexer.DOT:
				p.next()
				typeArgs = p.typeArgumentsOptMode(modeExpr)
				if p.mode&modeExpr != 0 {
					switch p.tok() {
					case lexer.CLASS:
						if typeArgs != nil {
							return p.illegal()
						}
						p.mode = modeExpr
						t = p.f.At(pos).FieldAccess(t, p.names.Class)
						p.next()
						break loop
					case lexer.THIS:
						if typeArgs != nil {
							return p.illegal()
						}
						p.mode = modeExpr
						t = p.f.At(pos).FieldAccess(t, p.names.This)
						p.next()
						break loop
					case lexer.SUPER:
						p.mode = modeExpr
						t = p.f.At(pos).FieldAccess(t, p.names.Super)
						t = p.superSuffix(typeArgs, t)
						typeArgs = nil
						break loop
					case lexer.NEW:
						if typeArgs != nil {
							return p.illegal()
						}
						p.mode = modeExpr
						pos1 := p.pos()
						p.next()
						if p.tok() == lexer.LT {
							typeArgs = p.typeArguments()
						}
						t = p.innerCreator(pos1, typeArgs, t)
						typeArgs = nil
						break loop
					}
				}
				// typeArgs carry over to the next selector
				t = p.f.At(pos).FieldAccess(t, p.ident())
			default:
				break loop
			}
		}
		if typeArgs != nil {
			p.illegal()
		}
		t = p.typeArgumentsOptOn(t)

	case lexer.BYTE, lexer.SHORT, lexer.CHAR, lexer.INT, lexer.LONG, lexer.FLOAT,
		lexer.DOUBLE, lexer.BOOLEAN:
		if typeArgs != nil {
			// recovery may have moved past the type
			if e := p.illegal(); !p.tok().IsPrimitive() {
				return e
			}
		}
		t = p.bracketsSuffix(p.bracketsOpt(p.basicType()))

	case lexer.VOID:
		if typeArgs != nil {
			if e := p.illegal(); p.tok() != lexer.VOID {
				return e
			}
		}
		if p.mode&modeExpr == 0 {
			return p.illegal()
		}
		p.next()
		if p.tok() != lexer.DOT {
			return p.illegalAt(pos)
		}
		t = p.bracketsSuffix(p.f.At(pos).PrimitiveType(code.VOID))

	default:
		return p.illegal()
	}
	if typeArgs != nil {
		p.illegal()
	}

	// selectors
	for {
		pos1 := p.pos()
		if p.tok() == lexer.LBRACKET {
			p.next()
			if p.mode&modeType != 0 {
				oldmode := p.mode
				p.mode = modeType
				if p.tok() == lexer.RBRACKET {
					p.next()
					t = p.bracketsOpt(t)
					return p.f.At(pos1).ArrayType(t)
				}
				p.mode = oldmode
			}
			if p.mode&modeExpr != 0 {
				p.mode = modeExpr
				t1 := p.term()
				t = p.f.At(pos1).ArrayAccess(t, t1)
			}
			p.accept(lexer.RBRACKET)
		} else if p.tok() == lexer.DOT {
			p.next()
			typeArgs = p.typeArgumentsOptMode(modeExpr)
			switch {
			case p.tok() == lexer.SUPER && p.mode&modeExpr != 0:
				p.mode = modeExpr
				t = p.f.At(pos1).FieldAccess(t, p.names.Super)
				p.next()
				t = p.methodInvocation(typeArgs, t)
			case p.tok() == lexer.NEW && p.mode&modeExpr != 0:
				if typeArgs != nil {
					return p.illegal()
				}
				p.mode = modeExpr
				pos2 := p.pos()
				p.next()
				if p.tok() == lexer.LT {
					typeArgs = p.typeArguments()
				}
				t = p.innerCreator(pos2, typeArgs, t)
			default:
				t = p.f.At(pos1).FieldAccess(t, p.ident())
				t = p.argumentsOpt(typeArgs, p.typeArgumentsOptOn(t))
			}
			typeArgs = nil
		} else {
			break
		}
	}

	// postfix operators
	for (p.tok() == lexer.PLUSPLUS || p.tok() == lexer.SUBSUB) && p.mode&modeExpr != 0 {
		p.mode = modeExpr
		op := ast.POSTINC
		if p.tok() == lexer.SUBSUB {
			op = ast.POSTDEC
		}
		t = p.f.At(p.pos()).Unary(op, t)
		p.next()
	}
	return t
}

// superSuffix parses SuperSuffix = Arguments | "." [TypeArguments] Ident [Arguments].
func (p *Parser) superSuffix(typeArgs *immlist.List[ast.Expr], t ast.Expr) ast.Expr {
	p.next()
	if p.tok() == lexer.LPAREN || typeArgs != nil {
		return p.methodInvocation(typeArgs, t)
	}
	pos := p.pos()
	p.accept(lexer.DOT)
	typeArgs = nil
	if p.tok() == lexer.LT {
		typeArgs = p.typeArguments()
	}
	t = p.f.At(pos).FieldAccess(t, p.ident())
	return p.argumentsOpt(typeArgs, t)
}

// basicType parses BasicType = BYTE | SHORT | CHAR | INT | LONG | FLOAT | DOUBLE | BOOLEAN.
func (p *Parser) basicType() ast.Expr {
	tag, ok := typetag(p.tok())
	if !ok {
		return p.illegal()
	}
	t := p.f.At(p.pos()).PrimitiveType(tag)
	p.next()
	return t
}

// argumentsOpt parses ArgumentsOpt = [Arguments].
func (p *Parser) argumentsOpt(typeArgs *immlist.List[ast.Expr], t ast.Expr) ast.Expr {
	if p.mode&modeExpr != 0 && p.tok() == lexer.LPAREN || typeArgs != nil {
		p.mode = modeExpr
		return p.methodInvocation(typeArgs, t)
	}
	return t
}

// arguments parses Arguments = "(" [Expression { "," Expression }] ")".
func (p *Parser) arguments() *immlist.List[ast.Expr] {
	var args immlist.Buffer[ast.Expr]
	if p.tok() != lexer.LPAREN {
		p.syntaxError(p.pos(), nil, "expected", tokenText(lexer.LPAREN))
		return args.List()
	}
	p.next()
	if p.tok() != lexer.RPAREN {
		args.Append(p.expression())
		for p.tok() == lexer.COMMA {
			p.next()
			args.Append(p.expression())
		}
	}
	p.accept(lexer.RPAREN)
	return args.List()
}

func (p *Parser) methodInvocation(typeArgs *immlist.List[ast.Expr], t ast.Expr) *ast.MethodInvocation {
	pos := p.pos()
	args := p.arguments()
	return p.f.At(pos).MethodInvocation(typeArgs, t, args)
}

// typeArgumentsOptOn parses TypeArgumentsOpt = [TypeArguments] after the
// type t, where type arguments are allowed.
func (p *Parser) typeArgumentsOptOn(t ast.Expr) ast.Expr {
	if p.tok() == lexer.LT && p.mode&modeType != 0 && p.mode&modeNoParams == 0 {
		p.mode = modeType
		p.checkGenerics()
		return p.typeArgumentsOn(t)
	}
	return t
}

func (p *Parser) typeArgumentsOpt() *immlist.List[ast.Expr] {
	return p.typeArgumentsOptMode(modeType)
}

// typeArgumentsOptMode parses type arguments if present, switching to
// useMode. A nil result means there were none.
func (p *Parser) typeArgumentsOptMode(useMode int) *immlist.List[ast.Expr] {
	if p.tok() != lexer.LT {
		return nil
	}
	p.checkGenerics()
	if p.mode&useMode == 0 || p.mode&modeNoParams != 0 {
		p.illegal()
	}
	p.mode = useMode
	return p.typeArguments()
}

// typeArguments parses TypeArguments = "<" TypeArgument {"," TypeArgument} ">".
// A closing shift or shift-assign operator gives up one '>' and stays
// current.
func (p *Parser) typeArguments() *immlist.List[ast.Expr] {
	var args immlist.Buffer[ast.Expr]
	if p.tok() != lexer.LT {
		p.syntaxError(p.pos(), nil, "expected", tokenText(lexer.LT))
		return args.List()
	}
	p.next()
	args.Append(p.typeArgumentOrType())
	for p.tok() == lexer.COMMA {
		p.next()
		args.Append(p.typeArgumentOrType())
	}
	switch p.tok() {
	case lexer.GTGTGTEQ:
		p.lex.SetToken(lexer.GTGTEQ)
	case lexer.GTGTEQ:
		p.lex.SetToken(lexer.GTEQ)
	case lexer.GTEQ:
		p.lex.SetToken(lexer.EQ)
	case lexer.GTGTGT:
		p.lex.SetToken(lexer.GTGT)
	case lexer.GTGT:
		p.lex.SetToken(lexer.GT)
	default:
		p.accept(lexer.GT)
	}
	return args.List()
}

func (p *Parser) typeArgumentOrType() ast.Expr {
	if p.mode&modeExpr == 0 {
		return p.typeArgument()
	}
	return p.typ()
}

// typeArgument parses
//
//	TypeArgument = Type
//	             | "?"
//	             | "?" EXTENDS Type
//	             | "?" SUPER Type
func (p *Parser) typeArgument() ast.Expr {
	if p.tok() != lexer.QUES {
		return p.typ()
	}
	pos := p.pos()
	p.next()
	switch p.tok() {
	case lexer.EXTENDS, lexer.SUPER:
		kind := ast.BoundExtends
		if p.tok() == lexer.SUPER {
			kind = ast.BoundSuper
		}
		k := p.f.At(p.pos()).TypeBoundKind(kind)
		p.next()
		bound := p.typ()
		return p.f.At(pos).Wildcard(k, bound)
	case lexer.IDENTIFIER:
		p.reportSyntaxError(p.lex.PrevEndPos(), "expected3",
			tokenText(lexer.GT), tokenText(lexer.EXTENDS), tokenText(lexer.SUPER))
		k := p.f.At(source.NOPOS).TypeBoundKind(ast.BoundUnbound)
		wc := p.f.At(pos).Wildcard(k, nil)
		id := p.f.At(p.pos()).Ident(p.ident())
		return p.f.At(pos).Erroneous(immlist.Of[ast.Node](wc, id))
	}
	k := p.f.At(source.NOPOS).TypeBoundKind(ast.BoundUnbound)
	return p.f.At(pos).Wildcard(k, nil)
}

func (p *Parser) typeArgumentsOn(t ast.Expr) *ast.ParameterizedType {
	pos := p.pos()
	args := p.typeArguments()
	return p.f.At(pos).ParameterizedType(t, args)
}

// bracketsOpt parses BracketsOpt = {"[" "]"}.
func (p *Parser) bracketsOpt(t ast.Expr) ast.Expr {
	if p.tok() == lexer.LBRACKET {
		pos := p.pos()
		p.next()
		t = p.bracketsOptCont(t, pos)
	}
	return t
}

func (p *Parser) bracketsOptCont(t ast.Expr, pos int) *ast.ArrayType {
	p.accept(lexer.RBRACKET)
	t = p.bracketsOpt(t)
	return p.f.At(pos).ArrayType(t)
}

// bracketsSuffix parses
//
//	BracketsSuffixExpr = "." CLASS
//	BracketsSuffixType =
func (p *Parser) bracketsSuffix(t ast.Expr) ast.Expr {
	switch {
	case p.mode&modeExpr != 0 && p.tok() == lexer.DOT:
		p.mode = modeExpr
		pos := p.pos()
		p.next()
		p.accept(lexer.CLASS)
		if p.pos() == p.errorEndPos {
			// recover from a missing "class"
			name := p.names.Error
			if p.tok() == lexer.IDENTIFIER {
				name = p.lex.Name()
				p.next()
			}
			sel := p.f.At(pos).FieldAccess(t, name)
			t = p.f.At(pos).Erroneous(immlist.Of[ast.Node](sel))
		} else {
			t = p.f.At(pos).FieldAccess(t, p.names.Class)
		}
	case p.mode&modeType != 0:
		p.mode = modeType
	default:
		p.syntaxError(p.pos(), nil, "dot.class.expected")
	}
	return t
}

// ============================================================================
// Creators
// ============================================================================

// creator parses Creator = Qualident [TypeArguments] ( ArrayCreatorRest | ClassCreatorRest ).
func (p *Parser) creator(newpos int, typeArgs *immlist.List[ast.Expr]) ast.Expr {
	if p.tok().IsPrimitive() && typeArgs == nil {
		return p.arrayCreatorRest(newpos, p.basicType())
	}
	t := p.qualident()
	oldmode := p.mode
	p.mode = modeType
	if p.tok() == lexer.LT {
		p.checkGenerics()
		t = p.typeArgumentsOn(t)
	}
	for p.tok() == lexer.DOT {
		pos := p.pos()
		p.next()
		t = p.f.At(pos).FieldAccess(t, p.ident())
		if p.tok() == lexer.LT {
			p.checkGenerics()
			t = p.typeArgumentsOn(t)
		}
	}
	p.mode = oldmode
	switch p.tok() {
	case lexer.LBRACKET:
		e := p.arrayCreatorRest(newpos, t)
		if typeArgs == nil {
			return e
		}
		pos := newpos
		if typeArgs.NonEmpty() && typeArgs.Head().Pos() != source.NOPOS {
			pos = typeArgs.Head().Pos()
		}
		p.setErrorEndPos(p.lex.PrevEndPos())
		p.reportSyntaxError(pos, "cannot.create.array.with.type.arguments")
		errs := immlist.Map(typeArgs, func(a ast.Expr) ast.Node { return a })
		return p.f.At(newpos).Erroneous(errs.Prepend(e))
	case lexer.LPAREN:
		return p.classCreatorRest(newpos, nil, typeArgs, t)
	}
	p.reportSyntaxError(p.pos(), "expected2", tokenText(lexer.LPAREN), tokenText(lexer.LBRACKET))
	nc := p.f.At(newpos).NewClass(nil, typeArgs, t, nil, nil)
	return p.f.At(newpos).Erroneous(immlist.Of[ast.Node](nc))
}

// innerCreator parses InnerCreator = Ident [TypeArguments] ClassCreatorRest.
func (p *Parser) innerCreator(newpos int, typeArgs *immlist.List[ast.Expr], encl ast.Expr) ast.Expr {
	var t ast.Expr = p.f.At(p.pos()).Ident(p.ident())
	if p.tok() == lexer.LT {
		p.checkGenerics()
		t = p.typeArgumentsOn(t)
	}
	return p.classCreatorRest(newpos, encl, typeArgs, t)
}

// arrayCreatorRest parses
//
//	ArrayCreatorRest = "[" ( "]" BracketsOpt ArrayInitializer
//	                       | Expression "]" {"[" Expression "]"} BracketsOpt )
func (p *Parser) arrayCreatorRest(newpos int, elemtype ast.Expr) ast.Expr {
	p.accept(lexer.LBRACKET)
	if p.tok() == lexer.RBRACKET {
		p.accept(lexer.RBRACKET)
		elemtype = p.bracketsOpt(elemtype)
		if p.tok() == lexer.LBRACE {
			return p.arrayInitializer(newpos, elemtype)
		}
		return p.syntaxError(p.pos(), nil, "array.dimension.missing")
	}
	var dims immlist.Buffer[ast.Expr]
	dims.Append(p.expression())
	p.accept(lexer.RBRACKET)
	for p.tok() == lexer.LBRACKET {
		pos := p.pos()
		p.next()
		if p.tok() == lexer.RBRACKET {
			elemtype = p.bracketsOptCont(elemtype, pos)
		} else {
			dims.Append(p.expression())
			p.accept(lexer.RBRACKET)
		}
	}
	return p.f.At(newpos).NewArray(elemtype, dims.List(), nil)
}

// classCreatorRest parses ClassCreatorRest = Arguments [ClassBody].
func (p *Parser) classCreatorRest(newpos int, encl ast.Expr, typeArgs *immlist.List[ast.Expr], t ast.Expr) ast.Expr {
	args := p.arguments()
	var body *ast.ClassDecl
	if p.tok() == lexer.LBRACE {
		pos := p.pos()
		defs := p.classOrInterfaceBody(p.names.Empty, false)
		mods := p.f.At(source.NOPOS).Modifiers(0, nil)
		body = p.f.At(pos).AnonymousClassDecl(mods, defs)
	}
	return p.f.At(newpos).NewClass(encl, typeArgs, t, args, body)
}

// arrayInitializer parses
//
//	ArrayInitializer = "{" [VariableInitializer {"," VariableInitializer}] [","] "}"
func (p *Parser) arrayInitializer(newpos int, t ast.Expr) ast.Expr {
	p.accept(lexer.LBRACE)
	var elems immlist.Buffer[ast.Expr]
	if p.tok() == lexer.COMMA {
		p.next()
	} else if p.tok() != lexer.RBRACE {
		elems.Append(p.variableInitializer())
		for p.tok() == lexer.COMMA {
			p.next()
			if p.tok() == lexer.RBRACE {
				break
			}
			elems.Append(p.variableInitializer())
		}
	}
	p.accept(lexer.RBRACE)
	return p.f.At(newpos).NewArray(t, nil, elems.List())
}

// variableInitializer parses VariableInitializer = ArrayInitializer | Expression.
func (p *Parser) variableInitializer() ast.Expr {
	if p.tok() == lexer.LBRACE {
		return p.arrayInitializer(p.pos(), nil)
	}
	return p.expression()
}

// parExpression parses ParExpression = "(" Expression ")".
func (p *Parser) parExpression() ast.Expr {
	p.accept(lexer.LPAREN)
	t := p.expression()
	p.accept(lexer.RPAREN)
	return t
}
