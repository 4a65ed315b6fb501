package parser

import (
	"github.com/chazu/jnova/pkg/ast"
	"github.com/chazu/jnova/pkg/code"
	"github.com/chazu/jnova/pkg/immlist"
	"github.com/chazu/jnova/pkg/lexer"
	"github.com/chazu/jnova/pkg/naming"
	"github.com/chazu/jnova/pkg/source"
)

// compilationUnit parses
//
//	CompilationUnit = [ { "@" Annotation } PACKAGE Qualident ";" ]
//	                  { ImportDeclaration } { TypeDeclaration }
func (p *Parser) compilationUnit() *ast.CompilationUnit {
	pos := p.pos()
	dc := p.lex.DocComment()
	var pid ast.Expr
	var mods *ast.Modifiers
	var packageAnnotations *immlist.List[*ast.Annotation]
	if p.tok() == lexer.MONKEYS_AT {
		mods = p.modifiersOpt(nil)
	}
	if p.tok() == lexer.PACKAGE {
		if mods != nil {
			p.checkNoMods(mods.Flags())
			packageAnnotations = mods.Annotations()
			mods = nil
		}
		p.next()
		pid = p.qualident()
		p.accept(lexer.SEMI)
	}

	var defs immlist.Buffer[ast.Node]
	checkForImports := true
	for p.tok() != lexer.EOF {
		if p.pos() <= p.errorEndPos {
			p.skip(checkForImports, false, false, false)
			if p.tok() == lexer.EOF {
				break
			}
		}
		if checkForImports && mods == nil && p.tok() == lexer.IMPORT {
			defs.Append(p.importDeclaration())
			continue
		}
		var def ast.Node = p.typeDeclaration(mods)
		if es, ok := def.(*ast.ExpressionStatement); ok {
			def = es.Expression()
		}
		defs.Append(def)
		if _, ok := def.(*ast.ClassDecl); ok {
			checkForImports = false
		}
		mods = nil
	}
	unit := p.f.At(pos).CompilationUnit(packageAnnotations, pid, defs.List())
	p.attach(unit, dc)
	return unit
}

// importDeclaration parses ImportDeclaration = IMPORT [STATIC] Ident { "." Ident } [ "." "*" ] ";".
func (p *Parser) importDeclaration() *ast.Import {
	pos := p.pos()
	p.next()
	static := false
	if p.tok() == lexer.STATIC {
		p.checkStaticImports()
		static = true
		p.next()
	}
	var pid ast.Expr = p.f.At(p.pos()).Ident(p.ident())
	for {
		pos1 := p.pos()
		p.accept(lexer.DOT)
		if p.tok() == lexer.STAR {
			pid = p.f.At(pos1).FieldAccess(pid, p.names.Asterisk)
			p.next()
			break
		}
		pid = p.f.At(pos1).FieldAccess(pid, p.ident())
		if p.tok() != lexer.DOT {
			break
		}
	}
	p.accept(lexer.SEMI)
	return p.f.At(pos).Import(pid, static)
}

// typeDeclaration parses TypeDeclaration = ClassOrInterfaceOrEnumDeclaration | ";".
func (p *Parser) typeDeclaration(mods *ast.Modifiers) ast.Stmt {
	pos := p.pos()
	if mods == nil && p.tok() == lexer.SEMI {
		p.next()
		return p.f.At(pos).EmptyStatement()
	}
	dc := p.lex.DocComment()
	return p.classOrInterfaceOrEnumDeclaration(p.modifiersOpt(mods), dc)
}

// classOrInterfaceOrEnumDeclaration parses
//
//	ClassOrInterfaceOrEnumDeclaration = ModifiersOpt
//	    ( ClassDeclaration | InterfaceDeclaration | EnumDeclaration )
//
// Anything else is an error, returned as an expression statement around
// the Erroneous node.
func (p *Parser) classOrInterfaceOrEnumDeclaration(mods *ast.Modifiers, dc string) ast.Stmt {
	switch p.tok() {
	case lexer.CLASS:
		return p.classDeclaration(mods, dc)
	case lexer.INTERFACE:
		return p.interfaceDeclaration(mods, dc)
	case lexer.ENUM:
		if !p.allowEnums {
			p.logError("enums.not.supported.in.source", p.level.String())
			p.allowEnums = true
		}
		return p.enumDeclaration(mods, dc)
	}
	pos := p.pos()
	errs := immlist.Of[ast.Node](mods)
	if p.tok() == lexer.IDENTIFIER {
		errs = errs.Append(p.f.At(pos).Ident(p.ident()))
		p.setErrorEndPos(p.pos())
	}
	var err *ast.Erroneous
	if p.allowEnums {
		err = p.syntaxError(pos, errs, "expected3",
			tokenText(lexer.CLASS), tokenText(lexer.INTERFACE), tokenText(lexer.ENUM))
	} else {
		err = p.syntaxError(pos, errs, "expected2",
			tokenText(lexer.CLASS), tokenText(lexer.INTERFACE))
	}
	return p.f.ExpressionStatement(err)
}

// classDeclaration parses
//
//	ClassDeclaration = CLASS Ident TypeParametersOpt [EXTENDS Type]
//	                   [IMPLEMENTS TypeList] ClassBody
func (p *Parser) classDeclaration(mods *ast.Modifiers, dc string) *ast.ClassDecl {
	pos := p.pos()
	p.accept(lexer.CLASS)
	name := p.ident()
	typarams := p.typeParametersOpt()
	var extending ast.Expr
	if p.tok() == lexer.EXTENDS {
		p.next()
		extending = p.typ()
	}
	var implementing *immlist.List[ast.Expr]
	if p.tok() == lexer.IMPLEMENTS {
		p.next()
		implementing = p.typeList()
	}
	defs := p.classOrInterfaceBody(name, false)
	result := p.f.At(pos).ClassDecl(mods, name, typarams, extending, implementing, defs)
	p.attach(result, dc)
	return result
}

// interfaceDeclaration parses
//
//	InterfaceDeclaration = INTERFACE Ident TypeParametersOpt
//	                       [EXTENDS TypeList] InterfaceBody
func (p *Parser) interfaceDeclaration(mods *ast.Modifiers, dc string) *ast.ClassDecl {
	pos := p.pos()
	p.accept(lexer.INTERFACE)
	name := p.ident()
	typarams := p.typeParametersOpt()
	var extending *immlist.List[ast.Expr]
	if p.tok() == lexer.EXTENDS {
		p.next()
		extending = p.typeList()
	}
	defs := p.classOrInterfaceBody(name, true)
	result := p.f.At(pos).ClassDecl(mods, name, typarams, nil, extending, defs)
	p.attach(result, dc)
	return result
}

// enumDeclaration parses EnumDeclaration = ENUM Ident [IMPLEMENTS TypeList] EnumBody.
func (p *Parser) enumDeclaration(mods *ast.Modifiers, dc string) *ast.ClassDecl {
	pos := p.pos()
	p.accept(lexer.ENUM)
	name := p.ident()
	var implementing *immlist.List[ast.Expr]
	if p.tok() == lexer.IMPLEMENTS {
		p.next()
		implementing = p.typeList()
	}
	defs := p.enumBody(name)
	newMods := p.f.At(mods.Pos()).Modifiers(mods.Flags()|code.ENUM, mods.Annotations())
	result := p.f.At(pos).ClassDecl(newMods, name, nil, nil, implementing, defs)
	p.attach(result, dc)
	return result
}

// enumBody parses
//
//	EnumBody = "{" { EnumeratorDeclarationList } [","]
//	           [ ";" {ClassBodyDeclaration} ] "}"
func (p *Parser) enumBody(enumName *naming.Symbol) *immlist.List[ast.Node] {
	p.accept(lexer.LBRACE)
	var defs immlist.Buffer[ast.Node]
	if p.tok() == lexer.COMMA {
		p.next()
	} else if p.tok() != lexer.RBRACE && p.tok() != lexer.SEMI {
		defs.Append(p.enumeratorDeclaration(enumName))
		for p.tok() == lexer.COMMA {
			p.next()
			if p.tok() == lexer.RBRACE || p.tok() == lexer.SEMI {
				break
			}
			defs.Append(p.enumeratorDeclaration(enumName))
		}
		if p.tok() != lexer.SEMI && p.tok() != lexer.RBRACE {
			defs.Append(p.syntaxError(p.pos(), nil, "expected3",
				tokenText(lexer.COMMA), tokenText(lexer.RBRACE), tokenText(lexer.SEMI)))
			p.next()
		}
	}
	if p.tok() == lexer.SEMI {
		p.next()
		for p.tok() != lexer.RBRACE && p.tok() != lexer.EOF {
			defs.AppendList(p.classOrInterfaceBodyDeclaration(enumName, false))
			if p.pos() <= p.errorEndPos {
				p.skip(false, true, true, false)
			}
		}
	}
	p.accept(lexer.RBRACE)
	return defs.List()
}

// enumeratorDeclaration parses
//
//	EnumeratorDeclaration = AnnotationsOpt [TypeArguments] IDENTIFIER [ Arguments ] [ "{" ClassBody "}" ]
//
// The constant becomes a field of the enum type initialized by an
// instance creation.
func (p *Parser) enumeratorDeclaration(enumName *naming.Symbol) ast.Node {
	dc := p.lex.DocComment()
	flags := code.PUBLIC | code.STATIC | code.FINAL | code.ENUM
	if p.lex.DeprecatedFlag() {
		flags |= code.DEPRECATED
		p.lex.ResetDeprecatedFlag()
	}
	pos := p.pos()
	annotations := p.annotationsOpt()
	modsPos := source.NOPOS
	if annotations.NonEmpty() {
		modsPos = pos
	}
	mods := p.f.At(modsPos).Modifiers(flags, annotations)
	typeArgs := p.typeArgumentsOpt()
	identPos := p.pos()
	name := p.ident()
	createPos := p.pos()
	var args *immlist.List[ast.Expr]
	if p.tok() == lexer.LPAREN {
		args = p.arguments()
	}
	var body *ast.ClassDecl
	if p.tok() == lexer.LBRACE {
		mods1 := p.f.At(source.NOPOS).Modifiers(code.ENUM|code.STATIC, nil)
		defs := p.classOrInterfaceBody(p.names.Empty, false)
		body = p.f.At(identPos).AnonymousClassDecl(mods1, defs)
	}
	if args.IsEmpty() && body == nil {
		createPos = source.NOPOS
	}
	clazz := p.f.At(source.NOPOS).Ident(enumName)
	create := p.f.At(createPos).NewClass(nil, typeArgs, clazz, args, body)
	varType := p.f.At(source.NOPOS).Ident(enumName)
	result := p.f.At(pos).VariableDecl(mods, name, varType, create)
	p.attach(result, dc)
	return result
}

// typeList parses TypeList = Type {"," Type}.
func (p *Parser) typeList() *immlist.List[ast.Expr] {
	var ts immlist.Buffer[ast.Expr]
	ts.Append(p.typ())
	for p.tok() == lexer.COMMA {
		p.next()
		ts.Append(p.typ())
	}
	return ts.List()
}

// qualidentList parses QualidentList = Qualident {"," Qualident}.
func (p *Parser) qualidentList() *immlist.List[ast.Expr] {
	var ts immlist.Buffer[ast.Expr]
	ts.Append(p.qualident())
	for p.tok() == lexer.COMMA {
		p.next()
		ts.Append(p.qualident())
	}
	return ts.List()
}

// typeParametersOpt parses TypeParametersOpt = ["<" TypeParameter {"," TypeParameter} ">"].
func (p *Parser) typeParametersOpt() *immlist.List[*ast.TypeParameter] {
	if p.tok() != lexer.LT {
		return nil
	}
	p.checkGenerics()
	p.next()
	var typarams immlist.Buffer[*ast.TypeParameter]
	typarams.Append(p.typeParameter())
	for p.tok() == lexer.COMMA {
		p.next()
		typarams.Append(p.typeParameter())
	}
	p.accept(lexer.GT)
	return typarams.List()
}

// typeParameter parses
//
//	TypeParameter = TypeVariable [TypeParameterBound]
//	TypeParameterBound = EXTENDS Type {"&" Type}
func (p *Parser) typeParameter() *ast.TypeParameter {
	pos := p.pos()
	name := p.ident()
	var bounds immlist.Buffer[ast.Expr]
	if p.tok() == lexer.EXTENDS {
		p.next()
		bounds.Append(p.typ())
		for p.tok() == lexer.AMP {
			p.next()
			bounds.Append(p.typ())
		}
	}
	return p.f.At(pos).TypeParameter(name, bounds.List())
}

// formalParameters parses FormalParameters = "(" [ FormalParameterList ] ")".
// Nothing may follow a variable arity parameter.
func (p *Parser) formalParameters() *immlist.List[*ast.VariableDecl] {
	var params immlist.Buffer[*ast.VariableDecl]
	p.accept(lexer.LPAREN)
	if p.tok() != lexer.RPAREN {
		last := p.formalParameter()
		params.Append(last)
		for last.Modifiers().Flags()&code.VARARGS == 0 && p.tok() == lexer.COMMA {
			p.next()
			last = p.formalParameter()
			params.Append(last)
		}
	}
	p.accept(lexer.RPAREN)
	return params.List()
}

// optFinal parses the modifiers of a parameter, where only final and
// annotations are allowed, and adds flags.
func (p *Parser) optFinal(flags int64) *ast.Modifiers {
	mods := p.modifiersOpt(nil)
	p.checkNoMods(mods.Flags() &^ (code.FINAL | code.DEPRECATED))
	if mods.Flags()&flags != flags {
		mods = p.f.At(mods.Pos()).Modifiers(mods.Flags()|flags, mods.Annotations())
	}
	return mods
}

// formalParameter parses FormalParameter = { FINAL | '@' Annotation } Type ["..."] VariableDeclaratorId.
func (p *Parser) formalParameter() *ast.VariableDecl {
	mods := p.optFinal(code.PARAMETER)
	t := p.typ()
	if p.tok() == lexer.ELLIPSIS {
		p.checkVarargs()
		mods = p.f.At(mods.Pos()).Modifiers(mods.Flags()|code.VARARGS, mods.Annotations())
		t = p.f.At(p.pos()).ArrayType(t)
		p.next()
	}
	return p.variableDeclaratorID(mods, t)
}

// ============================================================================
// Variables
// ============================================================================

// variableDeclarators parses VariableDeclarators = VariableDeclarator { "," VariableDeclarator }.
func (p *Parser) variableDeclarators(mods *ast.Modifiers, t ast.Expr) *immlist.List[*ast.VariableDecl] {
	pos := p.pos()
	return p.variableDeclaratorsRest(pos, mods, t, p.ident(), false, "")
}

// variableDeclaratorsRest parses VariableDeclaratorRest { "," VariableDeclarator }
// once the first name has been read.
func (p *Parser) variableDeclaratorsRest(pos int, mods *ast.Modifiers, t ast.Expr, name *naming.Symbol,
	reqInit bool, dc string) *immlist.List[*ast.VariableDecl] {
	var vars immlist.Buffer[*ast.VariableDecl]
	vars.Append(p.variableDeclaratorRest(pos, mods, t, name, reqInit, dc))
	for p.tok() == lexer.COMMA {
		p.next()
		vars.Append(p.variableDeclarator(mods, t, reqInit, dc))
	}
	return vars.List()
}

// variableDeclarator parses VariableDeclarator = Ident VariableDeclaratorRest.
func (p *Parser) variableDeclarator(mods *ast.Modifiers, t ast.Expr, reqInit bool, dc string) *ast.VariableDecl {
	pos := p.pos()
	return p.variableDeclaratorRest(pos, mods, t, p.ident(), reqInit, dc)
}

// variableDeclaratorRest parses VariableDeclaratorRest = BracketsOpt ["=" VariableInitializer].
// reqInit is set for interface fields, which must be initialized.
func (p *Parser) variableDeclaratorRest(pos int, mods *ast.Modifiers, t ast.Expr, name *naming.Symbol,
	reqInit bool, dc string) *ast.VariableDecl {
	t = p.bracketsOpt(t)
	var init ast.Expr
	if p.tok() == lexer.EQ {
		p.next()
		init = p.variableInitializer()
	} else if reqInit {
		p.syntaxError(p.pos(), nil, "expected", tokenText(lexer.EQ))
	}
	result := p.f.At(pos).VariableDecl(mods, name, t, init)
	p.attach(result, dc)
	return result
}

// variableDeclaratorID parses VariableDeclaratorId = Ident BracketsOpt.
func (p *Parser) variableDeclaratorID(mods *ast.Modifiers, t ast.Expr) *ast.VariableDecl {
	pos := p.pos()
	name := p.ident()
	if mods.Flags()&code.VARARGS == 0 {
		t = p.bracketsOpt(t)
	}
	return p.f.At(pos).VariableDecl(mods, name, t, nil)
}

// ============================================================================
// Modifiers and annotations
// ============================================================================

// modifiersOpt parses ModifiersOpt = { Modifier }, extending partial when
// it is not nil. A pending deprecation marker becomes the DEPRECATED
// flag. When no written modifier or annotation is present the result has
// no position.
func (p *Parser) modifiersOpt(partial *ast.Modifiers) *ast.Modifiers {
	var flags int64
	var annotations immlist.Buffer[*ast.Annotation]
	pos := p.pos()
	if partial != nil {
		flags = partial.Flags()
		annotations.AppendList(partial.Annotations())
		pos = partial.Pos()
	}
	if p.lex.DeprecatedFlag() {
		flags |= code.DEPRECATED
		p.lex.ResetDeprecatedFlag()
	}
loop:
	for {
		var flag int64
		switch p.tok() {
		case lexer.PRIVATE:
			flag = code.PRIVATE
		case lexer.PROTECTED:
			flag = code.PROTECTED
		case lexer.PUBLIC:
			flag = code.PUBLIC
		case lexer.STATIC:
			flag = code.STATIC
		case lexer.TRANSIENT:
			flag = code.TRANSIENT
		case lexer.FINAL:
			flag = code.FINAL
		case lexer.ABSTRACT:
			flag = code.ABSTRACT
		case lexer.NATIVE:
			flag = code.NATIVE
		case lexer.VOLATILE:
			flag = code.VOLATILE
		case lexer.SYNCHRONIZED:
			flag = code.SYNCHRONIZED
		case lexer.STRICTFP:
			flag = code.STRICTFP
		case lexer.MONKEYS_AT:
			flag = code.ANNOTATION
		default:
			break loop
		}
		if flags&flag != 0 {
			p.logError("repeated.modifier")
		}
		lastPos := p.pos()
		p.next()
		if flag == code.ANNOTATION {
			p.checkAnnotations()
			// "@interface" declares an annotation type and stays a flag
			if p.tok() != lexer.INTERFACE {
				annotations.Append(p.annotation(lastPos))
				flag = 0
			}
		}
		flags |= flag
	}
	switch p.tok() {
	case lexer.ENUM:
		flags |= code.ENUM
	case lexer.INTERFACE:
		flags |= code.INTERFACE
	}
	if flags&(code.ModifierFlags|code.ANNOTATION) == 0 && annotations.IsEmpty() {
		pos = source.NOPOS
	}
	return p.f.At(pos).Modifiers(flags, annotations.List())
}

// annotationsOpt parses AnnotationsOpt = { '@' Annotation }.
func (p *Parser) annotationsOpt() *immlist.List[*ast.Annotation] {
	var anns immlist.Buffer[*ast.Annotation]
	for p.tok() == lexer.MONKEYS_AT {
		pos := p.pos()
		p.next()
		anns.Append(p.annotation(pos))
	}
	return anns.List()
}

// annotation parses Annotation = "@" Qualident [ "(" AnnotationFieldValues ")" ].
// The "@" was consumed by the caller at pos.
func (p *Parser) annotation(pos int) *ast.Annotation {
	p.checkAnnotations()
	ident := p.qualident()
	var values *immlist.List[ast.Expr]
	if p.tok() == lexer.LPAREN {
		values = p.annotationFieldValues()
	}
	return p.f.At(pos).Annotation(ident, values)
}

// annotationFieldValues parses
//
//	AnnotationFieldValues = "(" [ AnnotationFieldValue { "," AnnotationFieldValue } ] ")"
func (p *Parser) annotationFieldValues() *immlist.List[ast.Expr] {
	p.accept(lexer.LPAREN)
	var values immlist.Buffer[ast.Expr]
	if p.tok() != lexer.RPAREN {
		values.Append(p.annotationFieldValue())
		for p.tok() == lexer.COMMA {
			p.next()
			values.Append(p.annotationFieldValue())
		}
	}
	p.accept(lexer.RPAREN)
	return values.List()
}

// annotationFieldValue parses AnnotationFieldValue = AnnotationValue | Identifier "=" AnnotationValue.
func (p *Parser) annotationFieldValue() ast.Expr {
	if p.tok() != lexer.IDENTIFIER {
		return p.annotationValue()
	}
	p.mode = modeExpr
	t1 := p.term1()
	if t1.Kind() == ast.IDENT && p.tok() == lexer.EQ {
		pos := p.pos()
		p.accept(lexer.EQ)
		v := p.annotationValue()
		return p.f.At(pos).Assignment(t1, v)
	}
	return t1
}

// annotationValue parses
//
//	AnnotationValue = ConditionalExpression
//	                | Annotation
//	                | "{" [ AnnotationValue { "," AnnotationValue } ] [","] "}"
func (p *Parser) annotationValue() ast.Expr {
	switch p.tok() {
	case lexer.MONKEYS_AT:
		pos := p.pos()
		p.next()
		return p.annotation(pos)
	case lexer.LBRACE:
		pos := p.pos()
		p.accept(lexer.LBRACE)
		var elems immlist.Buffer[ast.Expr]
		if p.tok() != lexer.RBRACE {
			elems.Append(p.annotationValue())
			for p.tok() == lexer.COMMA {
				p.next()
				if p.tok() == lexer.RBRACE {
					break
				}
				elems.Append(p.annotationValue())
			}
		}
		p.accept(lexer.RBRACE)
		return p.f.At(pos).NewArray(nil, nil, elems.List())
	}
	p.mode = modeExpr
	return p.term1()
}

// ============================================================================
// Class bodies
// ============================================================================

// methodDeclaratorRest parses
//
//	MethodDeclaratorRest = FormalParameters BracketsOpt [THROWS TypeList]
//	                       ( MethodBody | [DEFAULT AnnotationValue] ";" )
//
// A nil type declares a constructor.
func (p *Parser) methodDeclaratorRest(pos int, mods *ast.Modifiers, t ast.Expr, name *naming.Symbol,
	typarams *immlist.List[*ast.TypeParameter], isVoid bool, dc string) *ast.MethodDecl {
	params := p.formalParameters()
	if !isVoid {
		t = p.bracketsOpt(t)
	}
	var thrown *immlist.List[ast.Expr]
	if p.tok() == lexer.THROWS {
		p.next()
		thrown = p.qualidentList()
	}
	var body *ast.Block
	var defaultValue ast.Expr
	if p.tok() == lexer.LBRACE {
		body = p.block()
	} else {
		if p.tok() == lexer.DEFAULT {
			p.accept(lexer.DEFAULT)
			defaultValue = p.annotationValue()
		}
		p.accept(lexer.SEMI)
		if p.pos() <= p.errorEndPos {
			p.skip(false, true, false, false)
			if p.tok() == lexer.LBRACE {
				body = p.block()
			}
		}
	}
	result := p.f.At(pos).MethodDecl(mods, name, t, typarams, params, thrown, body, defaultValue)
	p.attach(result, dc)
	return result
}

// classOrInterfaceBody parses
//
//	ClassBody     = "{" {ClassBodyDeclaration} "}"
//	InterfaceBody = "{" {InterfaceBodyDeclaration} "}"
func (p *Parser) classOrInterfaceBody(className *naming.Symbol, isInterface bool) *immlist.List[ast.Node] {
	p.accept(lexer.LBRACE)
	if p.pos() <= p.errorEndPos {
		p.skip(false, true, false, false)
		if p.tok() == lexer.LBRACE {
			p.next()
		}
	}
	var defs immlist.Buffer[ast.Node]
	for p.tok() != lexer.RBRACE && p.tok() != lexer.EOF {
		defs.AppendList(p.classOrInterfaceBodyDeclaration(className, isInterface))
		if p.pos() <= p.errorEndPos {
			p.skip(false, true, true, false)
		}
	}
	p.accept(lexer.RBRACE)
	return defs.List()
}

// classOrInterfaceBodyDeclaration parses
//
//	ClassBodyDeclaration = ";"
//	                     | [STATIC] Block
//	                     | ModifiersOpt
//	                       ( ClassOrInterfaceOrEnumDeclaration
//	                       | VOID Ident MethodDeclaratorRest
//	                       | TypeParameters (Type | VOID) Ident MethodDeclaratorRest
//	                       | Ident ConstructorDeclaratorRest
//	                       | TypeParameters Ident ConstructorDeclaratorRest
//	                       | Type Ident ( VariableDeclaratorsRest ";" | MethodDeclaratorRest )
//	                       )
func (p *Parser) classOrInterfaceBodyDeclaration(className *naming.Symbol, isInterface bool) *immlist.List[ast.Node] {
	if p.tok() == lexer.SEMI {
		p.next()
		return immlist.Of[ast.Node](p.f.At(source.NOPOS).Block(0, nil))
	}
	dc := p.lex.DocComment()
	pos := p.pos()
	mods := p.modifiersOpt(nil)
	switch {
	case p.tok() == lexer.CLASS || p.tok() == lexer.INTERFACE || p.allowEnums && p.tok() == lexer.ENUM:
		return immlist.Of[ast.Node](p.classOrInterfaceOrEnumDeclaration(mods, dc))
	case p.tok() == lexer.LBRACE && !isInterface &&
		mods.Flags()&code.StandardFlags&^code.STATIC == 0 && mods.Annotations().IsEmpty():
		return immlist.Of[ast.Node](p.blockAt(pos, mods.Flags()))
	}

	pos = p.pos()
	typarams := p.typeParametersOpt()
	// without modifiers the declaration would otherwise lose its start
	if typarams.NonEmpty() && mods.Pos() == source.NOPOS {
		mods = p.f.At(pos).Modifiers(mods.Flags(), mods.Annotations())
	}
	name := p.lex.Name()
	pos = p.pos()
	var t ast.Expr
	isVoid := p.tok() == lexer.VOID
	if isVoid {
		t = p.f.At(pos).PrimitiveType(code.VOID)
		p.next()
	} else {
		t = p.typ()
	}
	if p.tok() == lexer.LPAREN && !isInterface && t.Kind() == ast.IDENT {
		if name != className {
			p.logError("invalid.meth.decl.ret.type.req")
		}
		return immlist.Of[ast.Node](p.methodDeclaratorRest(pos, mods, nil, p.names.Init, typarams, true, dc))
	}

	pos = p.pos()
	name = p.ident()
	switch {
	case p.tok() == lexer.LPAREN:
		return immlist.Of[ast.Node](p.methodDeclaratorRest(pos, mods, t, name, typarams, isVoid, dc))
	case !isVoid && typarams.IsEmpty():
		vars := p.variableDeclaratorsRest(pos, mods, t, name, isInterface, dc)
		p.accept(lexer.SEMI)
		return immlist.Map(vars, func(v *ast.VariableDecl) ast.Node { return v })
	}
	pos = p.pos()
	var errs *immlist.List[ast.Node]
	if isVoid {
		errs = immlist.Of[ast.Node](p.f.At(pos).MethodDecl(mods, name, t, typarams, nil, nil, nil, nil))
	}
	return immlist.Of[ast.Node](p.syntaxError(p.pos(), errs, "expected", tokenText(lexer.LPAREN)))
}
