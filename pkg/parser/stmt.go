package parser

import (
	"github.com/chazu/jnova/pkg/ast"
	"github.com/chazu/jnova/pkg/code"
	"github.com/chazu/jnova/pkg/immlist"
	"github.com/chazu/jnova/pkg/lexer"
	"github.com/chazu/jnova/pkg/naming"
	"github.com/chazu/jnova/pkg/source"
)

// blockAt parses Block = "{" BlockStatements "}". Stray case and default
// labels inside the block are reported as orphaned and skipped.
func (p *Parser) blockAt(pos int, flags int64) *ast.Block {
	p.accept(lexer.LBRACE)
	stats := p.blockStatements()
	t := p.f.At(pos).Block(flags, stats)
	for p.tok() == lexer.CASE || p.tok() == lexer.DEFAULT {
		p.syntaxError(p.pos(), nil, "orphaned", tokenText(p.tok()))
		p.switchBlockStatementGroups()
	}
	p.accept(lexer.RBRACE)
	return t
}

func (p *Parser) block() *ast.Block {
	return p.blockAt(p.pos(), 0)
}

func varStats(vars *immlist.List[*ast.VariableDecl]) *immlist.List[ast.Stmt] {
	return immlist.Map(vars, func(v *ast.VariableDecl) ast.Stmt { return v })
}

// blockStatements parses
//
//	BlockStatements = { BlockStatement }
//	BlockStatement  = LocalVariableDeclarationStatement
//	                | ClassOrInterfaceOrEnumDeclaration
//	                | [Ident ":"] Statement
func (p *Parser) blockStatements() *immlist.List[ast.Stmt] {
	lastErrPos := -1
	var stats immlist.Buffer[ast.Stmt]
	for {
		pos := p.pos()
		switch p.tok() {
		case lexer.RBRACE, lexer.CASE, lexer.DEFAULT, lexer.EOF:
			return stats.List()

		case lexer.LBRACE, lexer.IF, lexer.FOR, lexer.WHILE, lexer.DO, lexer.TRY,
			lexer.SWITCH, lexer.SYNCHRONIZED, lexer.RETURN, lexer.THROW, lexer.BREAK,
			lexer.CONTINUE, lexer.SEMI, lexer.ELSE, lexer.FINALLY, lexer.CATCH:
			stats.Append(p.statement())

		case lexer.MONKEYS_AT, lexer.FINAL:
			dc := p.lex.DocComment()
			mods := p.modifiersOpt(nil)
			if p.tok() == lexer.INTERFACE || p.tok() == lexer.CLASS || p.allowEnums && p.tok() == lexer.ENUM {
				stats.Append(p.classOrInterfaceOrEnumDeclaration(mods, dc))
			} else {
				t := p.typ()
				stats.AppendList(varStats(p.variableDeclarators(mods, t)))
				// the declaration statement owns its semicolon
				p.accept(lexer.SEMI)
			}

		case lexer.ABSTRACT, lexer.STRICTFP:
			dc := p.lex.DocComment()
			mods := p.modifiersOpt(nil)
			stats.Append(p.classOrInterfaceOrEnumDeclaration(mods, dc))

		case lexer.INTERFACE, lexer.CLASS:
			mods := p.modifiersOpt(nil)
			stats.Append(p.classOrInterfaceOrEnumDeclaration(mods, p.lex.DocComment()))

		default:
			if p.allowEnums && p.tok() == lexer.ENUM {
				p.logError("local.enum")
				mods := p.modifiersOpt(nil)
				stats.Append(p.classOrInterfaceOrEnumDeclaration(mods, p.lex.DocComment()))
				break
			}
			if p.allowAsserts && p.tok() == lexer.ASSERT {
				stats.Append(p.statement())
				break
			}
			name := p.lex.Name()
			t := p.termMode(modeExpr | modeType)
			switch {
			case p.tok() == lexer.COLON && t.Kind() == ast.IDENT:
				p.next()
				stat := p.statement()
				stats.Append(p.f.At(pos).LabeledStatement(name, stat))
			case p.lastmode&modeType != 0 && isIdentLike(p.tok()):
				mods := p.f.At(source.NOPOS).Modifiers(0, nil)
				stats.AppendList(varStats(p.variableDeclarators(mods, t)))
				p.accept(lexer.SEMI)
			default:
				e := p.checkExprStat(t)
				stats.Append(p.f.At(pos).ExpressionStatement(e))
				p.accept(lexer.SEMI)
			}
		}

		// error recovery
		if p.pos() == lastErrPos {
			return stats.List()
		}
		if p.pos() <= p.errorEndPos {
			p.skip(false, true, true, true)
			lastErrPos = p.pos()
		}

		// no dangling deprecation marker
		p.lex.ResetDeprecatedFlag()
	}
}

func isIdentLike(t lexer.Token) bool {
	return t == lexer.IDENTIFIER || t == lexer.ASSERT || t == lexer.ENUM
}

// statement parses
//
//	Statement = Block
//	          | IF ParExpression Statement [ELSE Statement]
//	          | FOR "(" ForInitOpt ";" [Expression] ";" ForUpdateOpt ")" Statement
//	          | FOR "(" FormalParameter ":" Expression ")" Statement
//	          | WHILE ParExpression Statement
//	          | DO Statement WHILE ParExpression ";"
//	          | TRY Block ( Catches | [Catches] FinallyPart )
//	          | SWITCH ParExpression "{" SwitchBlockStatementGroups "}"
//	          | SYNCHRONIZED ParExpression Block
//	          | RETURN [Expression] ";"
//	          | THROW Expression ";"
//	          | BREAK [Ident] ";"
//	          | CONTINUE [Ident] ";"
//	          | ASSERT Expression [ ":" Expression ] ";"
//	          | ";"
//	          | ExpressionStatement
//	          | Ident ":" Statement
func (p *Parser) statement() ast.Stmt {
	pos := p.pos()
	switch p.tok() {
	case lexer.LBRACE:
		return p.block()

	case lexer.IF:
		p.next()
		cond := p.parExpression()
		thenpart := p.statement()
		var elsepart ast.Stmt
		if p.tok() == lexer.ELSE {
			p.next()
			elsepart = p.statement()
		}
		return p.f.At(pos).If(cond, thenpart, elsepart)

	case lexer.FOR:
		p.next()
		p.accept(lexer.LPAREN)
		var inits *immlist.List[ast.Stmt]
		if p.tok() != lexer.SEMI {
			inits = p.forInit()
		}
		if v, ok := inits.Head().(*ast.VariableDecl); ok && inits.Len() == 1 && v.Initializer() == nil && p.tok() == lexer.COLON {
			p.checkForeach()
			p.accept(lexer.COLON)
			e := p.expression()
			p.accept(lexer.RPAREN)
			body := p.statement()
			return p.f.At(pos).ForEachLoop(v, e, body)
		}
		p.accept(lexer.SEMI)
		var cond ast.Expr
		if p.tok() != lexer.SEMI {
			cond = p.expression()
		}
		p.accept(lexer.SEMI)
		var steps *immlist.List[*ast.ExpressionStatement]
		if p.tok() != lexer.RPAREN {
			steps = p.forUpdate()
		}
		p.accept(lexer.RPAREN)
		body := p.statement()
		return p.f.At(pos).ForLoop(inits, cond, steps, body)

	case lexer.WHILE:
		p.next()
		cond := p.parExpression()
		body := p.statement()
		return p.f.At(pos).WhileLoop(cond, body)

	case lexer.DO:
		p.next()
		body := p.statement()
		p.accept(lexer.WHILE)
		cond := p.parExpression()
		t := p.f.At(pos).DoWhileLoop(body, cond)
		p.accept(lexer.SEMI)
		return t

	case lexer.TRY:
		p.next()
		body := p.block()
		var catchers immlist.Buffer[*ast.Catch]
		var finalizer *ast.Block
		if p.tok() == lexer.CATCH || p.tok() == lexer.FINALLY {
			for p.tok() == lexer.CATCH {
				catchers.Append(p.catchClause())
			}
			if p.tok() == lexer.FINALLY {
				p.next()
				finalizer = p.block()
			}
		} else {
			p.logError("try.without.catch.or.finally")
		}
		return p.f.At(pos).Try(body, catchers.List(), finalizer)

	case lexer.SWITCH:
		p.next()
		selector := p.parExpression()
		p.accept(lexer.LBRACE)
		cases := p.switchBlockStatementGroups()
		t := p.f.At(pos).Switch(selector, cases)
		p.accept(lexer.RBRACE)
		return t

	case lexer.SYNCHRONIZED:
		p.next()
		lock := p.parExpression()
		body := p.block()
		return p.f.At(pos).Synchronized(lock, body)

	case lexer.RETURN:
		p.next()
		var result ast.Expr
		if p.tok() != lexer.SEMI {
			result = p.expression()
		}
		t := p.f.At(pos).Return(result)
		p.accept(lexer.SEMI)
		return t

	case lexer.THROW:
		p.next()
		exc := p.expression()
		t := p.f.At(pos).Throw(exc)
		p.accept(lexer.SEMI)
		return t

	case lexer.BREAK:
		p.next()
		label := p.labelOpt()
		t := p.f.At(pos).Break(label)
		p.accept(lexer.SEMI)
		return t

	case lexer.CONTINUE:
		p.next()
		label := p.labelOpt()
		t := p.f.At(pos).Continue(label)
		p.accept(lexer.SEMI)
		return t

	case lexer.SEMI:
		p.next()
		return p.f.At(pos).EmptyStatement()

	case lexer.ELSE:
		return p.misplaced("else.without.if")
	case lexer.FINALLY:
		return p.misplaced("finally.without.try")
	case lexer.CATCH:
		return p.misplaced("catch.without.try")
	}

	if p.allowAsserts && p.tok() == lexer.ASSERT {
		p.next()
		assertion := p.expression()
		var message ast.Expr
		if p.tok() == lexer.COLON {
			p.next()
			message = p.expression()
		}
		t := p.f.At(pos).Assert(assertion, message)
		p.accept(lexer.SEMI)
		return t
	}

	name := p.lex.Name()
	e := p.expression()
	if p.tok() == lexer.COLON && e.Kind() == ast.IDENT {
		p.next()
		stat := p.statement()
		return p.f.At(pos).LabeledStatement(name, stat)
	}
	e = p.checkExprStat(e)
	stat := p.f.At(pos).ExpressionStatement(e)
	p.accept(lexer.SEMI)
	return stat
}

// labelOpt parses the optional label of break and continue.
func (p *Parser) labelOpt() *naming.Symbol {
	if isIdentLike(p.tok()) {
		return p.ident()
	}
	return nil
}

// misplaced reports a clause keyword found where a statement should
// start.
func (p *Parser) misplaced(key string) ast.Stmt {
	err := p.syntaxError(p.pos(), nil, key)
	return p.f.ExpressionStatement(err)
}

// catchClause parses CatchClause = CATCH "(" FormalParameter ")" Block.
func (p *Parser) catchClause() *ast.Catch {
	pos := p.pos()
	p.accept(lexer.CATCH)
	p.accept(lexer.LPAREN)
	mods := p.optFinal(code.PARAMETER)
	formal := p.variableDeclaratorID(mods, p.qualident())
	p.accept(lexer.RPAREN)
	body := p.block()
	return p.f.At(pos).Catch(formal, body)
}

// switchBlockStatementGroups parses
//
//	SwitchBlockStatementGroups = { SwitchBlockStatementGroup }
//	SwitchBlockStatementGroup  = SwitchLabel BlockStatements
//	SwitchLabel                = CASE ConstantExpression ":" | DEFAULT ":"
func (p *Parser) switchBlockStatementGroups() *immlist.List[*ast.Case] {
	var cases immlist.Buffer[*ast.Case]
	for {
		pos := p.pos()
		switch p.tok() {
		case lexer.CASE:
			p.next()
			pat := p.expression()
			p.accept(lexer.COLON)
			stats := p.blockStatements()
			cases.Append(p.f.At(pos).Case(pat, stats))
		case lexer.DEFAULT:
			p.next()
			p.accept(lexer.COLON)
			stats := p.blockStatements()
			cases.Append(p.f.At(pos).Case(nil, stats))
		case lexer.RBRACE, lexer.EOF:
			return cases.List()
		default:
			p.next()
			p.syntaxError(pos, nil, "expected3",
				tokenText(lexer.CASE), tokenText(lexer.DEFAULT), tokenText(lexer.RBRACE))
		}
	}
}

// moreStatementExpressions parses MoreStatementExpressions = { "," StatementExpression }
// after first.
func (p *Parser) moreStatementExpressions(pos int, first ast.Expr) *immlist.List[*ast.ExpressionStatement] {
	first = p.checkExprStat(first)
	var stats immlist.Buffer[*ast.ExpressionStatement]
	stats.Append(p.f.At(pos).ExpressionStatement(first))
	for p.tok() == lexer.COMMA {
		p.next()
		pos = p.pos()
		t := p.checkExprStat(p.expression())
		stats.Append(p.f.At(pos).ExpressionStatement(t))
	}
	return stats.List()
}

// forInit parses
//
//	ForInit = StatementExpression MoreStatementExpressions
//	        | { FINAL | '@' Annotation } Type VariableDeclarators
func (p *Parser) forInit() *immlist.List[ast.Stmt] {
	pos := p.pos()
	if p.tok() == lexer.FINAL || p.tok() == lexer.MONKEYS_AT {
		mods := p.optFinal(0)
		return varStats(p.variableDeclarators(mods, p.typ()))
	}
	t := p.termMode(modeExpr | modeType)
	if p.lastmode&modeType != 0 && isIdentLike(p.tok()) {
		return varStats(p.variableDeclarators(p.modifiersOpt(nil), t))
	}
	return immlist.Map(p.moreStatementExpressions(pos, t), func(s *ast.ExpressionStatement) ast.Stmt { return s })
}

// forUpdate parses ForUpdate = StatementExpression MoreStatementExpressions.
func (p *Parser) forUpdate() *immlist.List[*ast.ExpressionStatement] {
	pos := p.pos()
	return p.moreStatementExpressions(pos, p.expression())
}
