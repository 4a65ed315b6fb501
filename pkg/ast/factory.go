package ast

import (
	"fmt"

	"github.com/chazu/jnova/pkg/code"
	"github.com/chazu/jnova/pkg/immlist"
	"github.com/chazu/jnova/pkg/naming"
	"github.com/chazu/jnova/pkg/source"
)

// Factory is the only way to build nodes. Every node gets the position
// last set with At, and is passed to the creation hook, if any, before it
// is returned.
//
// A Factory is not safe for concurrent use.
type Factory struct {
	pos   int
	names *naming.Names
	hook  func(Node)
}

// NewFactory returns a Factory positioned at source.NOPOS. names supplies
// the empty name given to anonymous classes.
func NewFactory(names *naming.Names) *Factory {
	return &Factory{pos: source.NOPOS, names: names}
}

// OnCreate installs a hook that sees every node built from now on.
func (f *Factory) OnCreate(hook func(Node)) {
	f.hook = hook
}

// At sets the position of the nodes built next.
func (f *Factory) At(pos int) *Factory {
	f.pos = pos
	return f
}

// Pos returns the position the next node will get.
func (f *Factory) Pos() int {
	return f.pos
}

func (f *Factory) base(k Kind) base {
	return base{kind: k, pos: f.pos}
}

func (f *Factory) done(n Node) {
	if f.hook != nil {
		f.hook(n)
	}
}

// CompilationUnit builds the root of a source file. packageID is nil in the unnamed package.
func (f *Factory) CompilationUnit(packageAnnotations *immlist.List[*Annotation], packageID Expr, definitions *immlist.List[Node]) *CompilationUnit {
	n := &CompilationUnit{
		base:               f.base(COMPILATION_UNIT),
		packageAnnotations: packageAnnotations,
		packageID:          packageID,
		definitions:        definitions,
	}
	f.done(n)
	return n
}

// Import builds an import declaration; static marks "import static".
func (f *Factory) Import(qualifier Expr, static bool) *Import {
	n := &Import{base: f.base(IMPORT), qualifier: qualifier, static: static}
	f.done(n)
	return n
}

// ClassDecl builds a class, interface, enum or annotation type declaration.
// The kind of type is carried by the flags of mods.
func (f *Factory) ClassDecl(mods *Modifiers, name *naming.Symbol, typarams *immlist.List[*TypeParameter],
	extending Expr, implementing *immlist.List[Expr], defs *immlist.List[Node]) *ClassDecl {
	n := &ClassDecl{
		stmt:           stmt{f.base(CLASS_DECL)},
		modifiers:      mods,
		name:           name,
		typeParameters: typarams,
		extending:      extending,
		implementing:   implementing,
		definitions:    defs,
	}
	f.done(n)
	return n
}

// AnonymousClassDecl builds the class body of an instance creation
// expression: an unnamed class with no type parameters or supertypes.
func (f *Factory) AnonymousClassDecl(mods *Modifiers, defs *immlist.List[Node]) *ClassDecl {
	return f.ClassDecl(mods, f.names.Empty, nil, nil, nil, defs)
}

// MethodDecl builds a method or constructor. body is nil for abstract and
// interface methods; defaultValue is set only for annotation type elements.
func (f *Factory) MethodDecl(mods *Modifiers, name *naming.Symbol, returnType Expr, typarams *immlist.List[*TypeParameter],
	params *immlist.List[*VariableDecl], thrown *immlist.List[Expr], body *Block, defaultValue Expr) *MethodDecl {
	n := &MethodDecl{
		base:           f.base(METHOD_DECL),
		modifiers:      mods,
		name:           name,
		returnType:     returnType,
		typeParameters: typarams,
		parameters:     params,
		thrown:         thrown,
		body:           body,
		defaultValue:   defaultValue,
	}
	f.done(n)
	return n
}

// VariableDecl builds a field, local variable or parameter. init may be nil.
func (f *Factory) VariableDecl(mods *Modifiers, name *naming.Symbol, varType Expr, init Expr) *VariableDecl {
	n := &VariableDecl{stmt: stmt{f.base(VARIABLE_DECL)}, modifiers: mods, name: name, varType: varType, initializer: init}
	f.done(n)
	return n
}

// Modifiers builds a modifier list.
func (f *Factory) Modifiers(flags int64, annotations *immlist.List[*Annotation]) *Modifiers {
	n := &Modifiers{base: f.base(MODIFIERS), flags: flags, annotations: annotations}
	f.done(n)
	return n
}

// Annotation builds an annotation with its element values.
func (f *Factory) Annotation(annotationType Expr, args *immlist.List[Expr]) *Annotation {
	n := &Annotation{expr: expr{f.base(ANNOTATION)}, annotationType: annotationType, arguments: args}
	f.done(n)
	return n
}

// TypeParameter builds a type variable with its bounds.
func (f *Factory) TypeParameter(name *naming.Symbol, bounds *immlist.List[Expr]) *TypeParameter {
	n := &TypeParameter{base: f.base(TYPE_PARAMETER), name: name, bounds: bounds}
	f.done(n)
	return n
}

// Erroneous builds a placeholder for text that failed to parse. errs holds
// whatever partial nodes were recovered.
func (f *Factory) Erroneous(errs *immlist.List[Node]) *Erroneous {
	n := &Erroneous{expr: expr{f.base(ERRONEOUS)}, errorNodes: errs}
	f.done(n)
	return n
}

// ============================================================================
// Statements
// ============================================================================

// Block builds a block; flags is code.STATIC for a static initializer.
func (f *Factory) Block(flags int64, stats *immlist.List[Stmt]) *Block {
	n := &Block{stmt: stmt{f.base(BLOCK)}, flags: flags, statements: stats}
	f.done(n)
	return n
}

// EmptyStatement builds a lone ";".
func (f *Factory) EmptyStatement() *EmptyStatement {
	n := &EmptyStatement{stmt{f.base(EMPTY_STATEMENT)}}
	f.done(n)
	return n
}

// ExpressionStatement builds an expression used as a statement.
func (f *Factory) ExpressionStatement(e Expr) *ExpressionStatement {
	n := &ExpressionStatement{stmt: stmt{f.base(EXEC)}, expression: e}
	f.done(n)
	return n
}

// If builds an if statement. elsePart may be nil.
func (f *Factory) If(cond Expr, thenPart, elsePart Stmt) *If {
	n := &If{stmt: stmt{f.base(IF)}, condition: cond, thenPart: thenPart, elsePart: elsePart}
	f.done(n)
	return n
}

// WhileLoop builds a while loop.
func (f *Factory) WhileLoop(cond Expr, body Stmt) *WhileLoop {
	n := &WhileLoop{stmt: stmt{f.base(WHILELOOP)}, condition: cond, body: body}
	f.done(n)
	return n
}

// DoWhileLoop builds a do-while loop.
func (f *Factory) DoWhileLoop(body Stmt, cond Expr) *DoWhileLoop {
	n := &DoWhileLoop{stmt: stmt{f.base(DOLOOP)}, body: body, condition: cond}
	f.done(n)
	return n
}

// ForLoop builds a basic for loop. Any of its parts may be absent.
func (f *Factory) ForLoop(init *immlist.List[Stmt], cond Expr, step *immlist.List[*ExpressionStatement], body Stmt) *ForLoop {
	n := &ForLoop{stmt: stmt{f.base(FORLOOP)}, initializers: init, condition: cond, step: step, body: body}
	f.done(n)
	return n
}

// ForEachLoop builds an enhanced for loop over e.
func (f *Factory) ForEachLoop(v *VariableDecl, e Expr, body Stmt) *ForEachLoop {
	n := &ForEachLoop{stmt: stmt{f.base(FOREACHLOOP)}, variable: v, expression: e, body: body}
	f.done(n)
	return n
}

// LabeledStatement builds a statement with a label.
func (f *Factory) LabeledStatement(label *naming.Symbol, body Stmt) *LabeledStatement {
	n := &LabeledStatement{stmt: stmt{f.base(LABELLED)}, label: label, body: body}
	f.done(n)
	return n
}

// Switch builds a switch statement.
func (f *Factory) Switch(selector Expr, cases *immlist.List[*Case]) *Switch {
	n := &Switch{stmt: stmt{f.base(SWITCH)}, selector: selector, cases: cases}
	f.done(n)
	return n
}

// Case builds a switch label with its statements. e is nil for default.
func (f *Factory) Case(e Expr, stats *immlist.List[Stmt]) *Case {
	n := &Case{stmt: stmt{f.base(CASE)}, expression: e, statements: stats}
	f.done(n)
	return n
}

// Synchronized builds a synchronized statement.
func (f *Factory) Synchronized(lock Expr, body *Block) *Synchronized {
	n := &Synchronized{stmt: stmt{f.base(SYNCHRONIZED)}, lock: lock, body: body}
	f.done(n)
	return n
}

// Try builds a try statement. finalizer may be nil.
func (f *Factory) Try(body *Block, catchers *immlist.List[*Catch], finalizer *Block) *Try {
	n := &Try{stmt: stmt{f.base(TRY)}, body: body, catchers: catchers, finalizer: finalizer}
	f.done(n)
	return n
}

// Catch builds a catch clause.
func (f *Factory) Catch(param *VariableDecl, body *Block) *Catch {
	n := &Catch{stmt: stmt{f.base(CATCH)}, parameter: param, body: body}
	f.done(n)
	return n
}

// Break builds a break statement. label may be nil.
func (f *Factory) Break(label *naming.Symbol) *Break {
	n := &Break{stmt: stmt{f.base(BREAK)}, label: label}
	f.done(n)
	return n
}

// Continue builds a continue statement. label may be nil.
func (f *Factory) Continue(label *naming.Symbol) *Continue {
	n := &Continue{stmt: stmt{f.base(CONTINUE)}, label: label}
	f.done(n)
	return n
}

// Return builds a return statement. e may be nil.
func (f *Factory) Return(e Expr) *Return {
	n := &Return{stmt: stmt{f.base(RETURN)}, expression: e}
	f.done(n)
	return n
}

// Throw builds a throw statement.
func (f *Factory) Throw(e Expr) *Throw {
	n := &Throw{stmt: stmt{f.base(THROW)}, expression: e}
	f.done(n)
	return n
}

// Assert builds an assert statement. detail may be nil.
func (f *Factory) Assert(cond, detail Expr) *Assert {
	n := &Assert{stmt: stmt{f.base(ASSERT)}, condition: cond, detail: detail}
	f.done(n)
	return n
}

// ============================================================================
// Expressions
// ============================================================================

// Ident builds a simple name.
func (f *Factory) Ident(name *naming.Symbol) *Ident {
	n := &Ident{expr: expr{f.base(IDENT)}, name: name}
	f.done(n)
	return n
}

// FieldAccess builds a qualified name or field selection, e.name.
func (f *Factory) FieldAccess(e Expr, name *naming.Symbol) *FieldAccess {
	n := &FieldAccess{expr: expr{f.base(SELECT)}, expression: e, name: name}
	f.done(n)
	return n
}

// Literal builds a constant. value has the Go type that matches tag.
func (f *Factory) Literal(tag code.TypeTag, value any) *Literal {
	n := &Literal{expr: expr{f.base(LITERAL)}, typeTag: tag, value: value}
	f.done(n)
	return n
}

// Parens builds a parenthesized expression.
func (f *Factory) Parens(e Expr) *Parens {
	n := &Parens{expr: expr{f.base(PARENS)}, expression: e}
	f.done(n)
	return n
}

// Assignment builds a simple assignment.
func (f *Factory) Assignment(variable, e Expr) *Assignment {
	n := &Assignment{expr: expr{f.base(ASSIGN)}, variable: variable, expression: e}
	f.done(n)
	return n
}

// CompoundAssignment panics unless op is a compound assignment operator.
func (f *Factory) CompoundAssignment(op Kind, variable, e Expr) *CompoundAssignment {
	if !op.IsCompoundAssign() {
		panic(fmt.Sprintf("ast: %v is not a compound assignment operator", op))
	}
	n := &CompoundAssignment{expr: expr{f.base(op)}, variable: variable, expression: e}
	f.done(n)
	return n
}

// Unary panics unless op is a unary operator.
func (f *Factory) Unary(op Kind, e Expr) *Unary {
	if !op.IsUnary() {
		panic(fmt.Sprintf("ast: %v is not a unary operator", op))
	}
	n := &Unary{expr: expr{f.base(op)}, expression: e}
	f.done(n)
	return n
}

// Binary panics unless op is a binary operator.
func (f *Factory) Binary(op Kind, left, right Expr) *Binary {
	if !op.IsBinary() {
		panic(fmt.Sprintf("ast: %v is not a binary operator", op))
	}
	n := &Binary{expr: expr{f.base(op)}, left: left, right: right}
	f.done(n)
	return n
}

// Conditional builds cond ? truePart : falsePart.
func (f *Factory) Conditional(cond, truePart, falsePart Expr) *Conditional {
	n := &Conditional{expr: expr{f.base(CONDEXPR)}, condition: cond, truePart: truePart, falsePart: falsePart}
	f.done(n)
	return n
}

// TypeCast builds a cast of e to castType.
func (f *Factory) TypeCast(castType, e Expr) *TypeCast {
	n := &TypeCast{expr: expr{f.base(TYPECAST)}, castType: castType, expression: e}
	f.done(n)
	return n
}

// InstanceOf builds an instanceof test.
func (f *Factory) InstanceOf(e, testedClass Expr) *InstanceOf {
	n := &InstanceOf{expr: expr{f.base(TYPETEST)}, expression: e, testedClass: testedClass}
	f.done(n)
	return n
}

// ArrayAccess builds e[index].
func (f *Factory) ArrayAccess(e, index Expr) *ArrayAccess {
	n := &ArrayAccess{expr: expr{f.base(INDEXED)}, expression: e, index: index}
	f.done(n)
	return n
}

// MethodInvocation builds a call. typeArgs holds explicit type arguments.
func (f *Factory) MethodInvocation(typeArgs *immlist.List[Expr], methodSelect Expr, args *immlist.List[Expr]) *MethodInvocation {
	n := &MethodInvocation{expr: expr{f.base(APPLY)}, typeArguments: typeArgs, methodSelect: methodSelect, arguments: args}
	f.done(n)
	return n
}

// NewClass builds an instance creation. encl is the qualifying outer
// instance and body the anonymous class, both possibly nil.
func (f *Factory) NewClass(encl Expr, typeArgs *immlist.List[Expr], clazz Expr, args *immlist.List[Expr], body *ClassDecl) *NewClass {
	n := &NewClass{
		expr:                expr{f.base(NEWCLASS)},
		enclosingExpression: encl,
		typeArguments:       typeArgs,
		classIdentifier:     clazz,
		arguments:           args,
		classBody:           body,
	}
	f.done(n)
	return n
}

// NewArray builds an array creation from dimension expressions or an
// initializer. elemType is nil for an initializer that stands alone.
func (f *Factory) NewArray(elemType Expr, dims, elems *immlist.List[Expr]) *NewArray {
	n := &NewArray{expr: expr{f.base(NEWARRAY)}, elementType: elemType, dimensions: dims, initializers: elems}
	f.done(n)
	return n
}

// PrimitiveType builds a primitive type or void.
func (f *Factory) PrimitiveType(tag code.TypeTag) *PrimitiveType {
	n := &PrimitiveType{expr: expr{f.base(TYPEIDENT)}, typeTag: tag}
	f.done(n)
	return n
}

// ArrayType builds elemType[].
func (f *Factory) ArrayType(elemType Expr) *ArrayType {
	n := &ArrayType{expr: expr{f.base(TYPEARRAY)}, elementType: elemType}
	f.done(n)
	return n
}

// ParameterizedType builds a generic type applied to args.
func (f *Factory) ParameterizedType(clazz Expr, args *immlist.List[Expr]) *ParameterizedType {
	n := &ParameterizedType{expr: expr{f.base(TYPEAPPLY)}, parameterizedClass: clazz, arguments: args}
	f.done(n)
	return n
}

// TypeBoundKind builds the bound marker of a wildcard.
func (f *Factory) TypeBoundKind(k BoundKind) *TypeBoundKind {
	n := &TypeBoundKind{base: f.base(TYPEBOUNDKIND), boundKind: k}
	f.done(n)
	return n
}

// Wildcard builds a wildcard type argument. bound is nil for "?".
func (f *Factory) Wildcard(kind *TypeBoundKind, bound Expr) *Wildcard {
	n := &Wildcard{expr: expr{f.base(WILDCARD)}, typeBoundKind: kind, bound: bound}
	f.done(n)
	return n
}
