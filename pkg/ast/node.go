// Package ast declares the syntax tree produced by the parser.
//
// Every node is built through a Factory, which stamps the node's source
// position at construction. Nodes have no exported fields and no setters,
// so a tree never changes once built. Child sequences are persistent
// immlist.Lists; a nil list is the empty list.
//
// The node types form a closed set. Code that needs per-type behaviour
// switches on the concrete type (see Children and Walk) or on Kind.
package ast

import (
	"github.com/chazu/jnova/pkg/immlist"
	"github.com/chazu/jnova/pkg/naming"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	// Pos is the rune offset of the node in its source, or source.NOPOS.
	Pos() int
	node()
}

// Expr is implemented by expression and type nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

type base struct {
	kind Kind
	pos  int
}

func (b *base) Kind() Kind { return b.kind }
func (b *base) Pos() int   { return b.pos }
func (b *base) node()      {}

type expr struct{ base }

func (expr) exprNode() {}

type stmt struct{ base }

func (stmt) stmtNode() {}

// ============================================================================
// Declarations
// ============================================================================

// CompilationUnit is one source file.
type CompilationUnit struct {
	base
	packageAnnotations *immlist.List[*Annotation]
	packageID          Expr
	definitions        *immlist.List[Node]
}

func (n *CompilationUnit) PackageAnnotations() *immlist.List[*Annotation] {
	return n.packageAnnotations
}

// PackageID is the package name, nil for the unnamed package.
func (n *CompilationUnit) PackageID() Expr { return n.packageID }

// Definitions holds the imports followed by the type declarations.
func (n *CompilationUnit) Definitions() *immlist.List[Node] { return n.definitions }

// Import is a single-type, on-demand or static import.
type Import struct {
	base
	qualifier Expr
	static    bool
}

// Qualifier is the imported name; on-demand imports end in a "*" select.
func (n *Import) Qualifier() Expr { return n.qualifier }
func (n *Import) Static() bool    { return n.static }

// ClassDecl declares a class, interface, enum or annotation type. An
// anonymous class body has an empty name.
type ClassDecl struct {
	stmt
	modifiers      *Modifiers
	name           *naming.Symbol
	typeParameters *immlist.List[*TypeParameter]
	extending      Expr
	implementing   *immlist.List[Expr]
	definitions    *immlist.List[Node]
}

func (n *ClassDecl) Modifiers() *Modifiers                         { return n.modifiers }
func (n *ClassDecl) Name() *naming.Symbol                          { return n.name }
func (n *ClassDecl) TypeParameters() *immlist.List[*TypeParameter] { return n.typeParameters }
func (n *ClassDecl) Extending() Expr                               { return n.extending }
func (n *ClassDecl) Implementing() *immlist.List[Expr]             { return n.implementing }
func (n *ClassDecl) Definitions() *immlist.List[Node]              { return n.definitions }

// MethodDecl declares a method or constructor. Constructors are named
// <init> and have a nil return type.
type MethodDecl struct {
	base
	modifiers      *Modifiers
	name           *naming.Symbol
	returnType     Expr
	typeParameters *immlist.List[*TypeParameter]
	parameters     *immlist.List[*VariableDecl]
	thrown         *immlist.List[Expr]
	body           *Block
	defaultValue   Expr
}

func (n *MethodDecl) Modifiers() *Modifiers                         { return n.modifiers }
func (n *MethodDecl) Name() *naming.Symbol                          { return n.name }
func (n *MethodDecl) ReturnType() Expr                              { return n.returnType }
func (n *MethodDecl) TypeParameters() *immlist.List[*TypeParameter] { return n.typeParameters }
func (n *MethodDecl) Parameters() *immlist.List[*VariableDecl]      { return n.parameters }
func (n *MethodDecl) Thrown() *immlist.List[Expr]                   { return n.thrown }

// Body is nil for abstract and native methods.
func (n *MethodDecl) Body() *Block { return n.body }

// DefaultValue is the default of an annotation type element.
func (n *MethodDecl) DefaultValue() Expr { return n.defaultValue }

// VariableDecl declares a field, local variable or parameter.
type VariableDecl struct {
	stmt
	modifiers   *Modifiers
	name        *naming.Symbol
	varType     Expr
	initializer Expr
}

func (n *VariableDecl) Modifiers() *Modifiers { return n.modifiers }
func (n *VariableDecl) Name() *naming.Symbol  { return n.name }
func (n *VariableDecl) Type() Expr            { return n.varType }
func (n *VariableDecl) Initializer() Expr     { return n.initializer }

// Modifiers holds a declaration's flags (see package code) and
// annotations.
type Modifiers struct {
	base
	flags       int64
	annotations *immlist.List[*Annotation]
}

func (n *Modifiers) Flags() int64                            { return n.flags }
func (n *Modifiers) Annotations() *immlist.List[*Annotation] { return n.annotations }

// Annotation is an annotation use. Arguments are Assignment nodes for
// named elements, or a single bare value.
type Annotation struct {
	expr
	annotationType Expr
	arguments      *immlist.List[Expr]
}

func (n *Annotation) AnnotationType() Expr           { return n.annotationType }
func (n *Annotation) Arguments() *immlist.List[Expr] { return n.arguments }

// TypeParameter declares a type variable with its bounds.
type TypeParameter struct {
	base
	name   *naming.Symbol
	bounds *immlist.List[Expr]
}

func (n *TypeParameter) Name() *naming.Symbol        { return n.name }
func (n *TypeParameter) Bounds() *immlist.List[Expr] { return n.bounds }

// Erroneous stands in for a fragment that could not be parsed. It keeps
// whatever partial nodes were recovered.
type Erroneous struct {
	expr
	errorNodes *immlist.List[Node]
}

func (n *Erroneous) ErrorNodes() *immlist.List[Node] { return n.errorNodes }
