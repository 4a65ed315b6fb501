package ast

import (
	"github.com/chazu/jnova/pkg/code"
	"github.com/chazu/jnova/pkg/immlist"
	"github.com/chazu/jnova/pkg/naming"
)

type Ident struct {
	expr
	name *naming.Symbol
}

func (n *Ident) Name() *naming.Symbol { return n.name }

// FieldAccess is a qualified name or member select, expression.name.
type FieldAccess struct {
	expr
	expression Expr
	name       *naming.Symbol
}

func (n *FieldAccess) Expression() Expr     { return n.expression }
func (n *FieldAccess) Name() *naming.Symbol { return n.name }

// Literal is a constant. The Go type of Value follows the tag: int32 for
// INT, int64 for LONG, float32 for FLOAT, float64 for DOUBLE, rune for
// CHAR, bool for BOOLEAN, string for CLASS (string literals) and nil for
// BOT (null).
type Literal struct {
	expr
	typeTag code.TypeTag
	value   any
}

func (n *Literal) TypeTag() code.TypeTag { return n.typeTag }
func (n *Literal) Value() any            { return n.value }

type Parens struct {
	expr
	expression Expr
}

func (n *Parens) Expression() Expr { return n.expression }

type Assignment struct {
	expr
	variable   Expr
	expression Expr
}

func (n *Assignment) Variable() Expr   { return n.variable }
func (n *Assignment) Expression() Expr { return n.expression }

// CompoundAssignment is an assignment such as a += b. Its Kind is the
// operator (PLUS_ASG ...).
type CompoundAssignment struct {
	expr
	variable   Expr
	expression Expr
}

func (n *CompoundAssignment) Variable() Expr   { return n.variable }
func (n *CompoundAssignment) Expression() Expr { return n.expression }

// Unary is a prefix or postfix operation. Its Kind is the operator.
type Unary struct {
	expr
	expression Expr
}

func (n *Unary) Expression() Expr { return n.expression }

// Binary is an infix operation. Its Kind is the operator.
type Binary struct {
	expr
	left  Expr
	right Expr
}

func (n *Binary) Left() Expr  { return n.left }
func (n *Binary) Right() Expr { return n.right }

type Conditional struct {
	expr
	condition Expr
	truePart  Expr
	falsePart Expr
}

func (n *Conditional) Condition() Expr { return n.condition }
func (n *Conditional) TruePart() Expr  { return n.truePart }
func (n *Conditional) FalsePart() Expr { return n.falsePart }

type TypeCast struct {
	expr
	castType   Expr
	expression Expr
}

func (n *TypeCast) Type() Expr       { return n.castType }
func (n *TypeCast) Expression() Expr { return n.expression }

type InstanceOf struct {
	expr
	expression  Expr
	testedClass Expr
}

func (n *InstanceOf) Expression() Expr  { return n.expression }
func (n *InstanceOf) TestedClass() Expr { return n.testedClass }

type ArrayAccess struct {
	expr
	expression Expr
	index      Expr
}

func (n *ArrayAccess) Expression() Expr { return n.expression }
func (n *ArrayAccess) Index() Expr      { return n.index }

type MethodInvocation struct {
	expr
	typeArguments *immlist.List[Expr]
	methodSelect  Expr
	arguments     *immlist.List[Expr]
}

func (n *MethodInvocation) TypeArguments() *immlist.List[Expr] { return n.typeArguments }
func (n *MethodInvocation) MethodSelect() Expr                 { return n.methodSelect }
func (n *MethodInvocation) Arguments() *immlist.List[Expr]     { return n.arguments }

// NewClass is an instance creation expression, optionally qualified by
// an enclosing instance and optionally with an anonymous class body.
type NewClass struct {
	expr
	enclosingExpression Expr
	typeArguments       *immlist.List[Expr]
	classIdentifier     Expr
	arguments           *immlist.List[Expr]
	classBody           *ClassDecl
}

func (n *NewClass) EnclosingExpression() Expr          { return n.enclosingExpression }
func (n *NewClass) TypeArguments() *immlist.List[Expr] { return n.typeArguments }
func (n *NewClass) ClassIdentifier() Expr              { return n.classIdentifier }
func (n *NewClass) Arguments() *immlist.List[Expr]     { return n.arguments }
func (n *NewClass) ClassBody() *ClassDecl              { return n.classBody }

// NewArray is an array creation expression or a bare array initializer,
// in which case the element type is nil.
type NewArray struct {
	expr
	elementType  Expr
	dimensions   *immlist.List[Expr]
	initializers *immlist.List[Expr]
}

func (n *NewArray) ElementType() Expr                 { return n.elementType }
func (n *NewArray) Dimensions() *immlist.List[Expr]   { return n.dimensions }
func (n *NewArray) Initializers() *immlist.List[Expr] { return n.initializers }

// ============================================================================
// Types
// ============================================================================

type PrimitiveType struct {
	expr
	typeTag code.TypeTag
}

func (n *PrimitiveType) TypeTag() code.TypeTag { return n.typeTag }

type ArrayType struct {
	expr
	elementType Expr
}

func (n *ArrayType) ElementType() Expr { return n.elementType }

// ParameterizedType is a generic type applied to type arguments.
type ParameterizedType struct {
	expr
	parameterizedClass Expr
	arguments          *immlist.List[Expr]
}

func (n *ParameterizedType) ParameterizedClass() Expr       { return n.parameterizedClass }
func (n *ParameterizedType) Arguments() *immlist.List[Expr] { return n.arguments }

// BoundKind is the bound of a wildcard type argument.
type BoundKind int

const (
	BoundExtends BoundKind = iota
	BoundSuper
	BoundUnbound
)

func (k BoundKind) String() string {
	switch k {
	case BoundExtends:
		return "? extends "
	case BoundSuper:
		return "? super "
	}
	return "?"
}

// Name is the lower-case bound name, "extends", "super" or "unbound".
func (k BoundKind) Name() string {
	switch k {
	case BoundExtends:
		return "extends"
	case BoundSuper:
		return "super"
	}
	return "unbound"
}

type TypeBoundKind struct {
	base
	boundKind BoundKind
}

func (n *TypeBoundKind) BoundKind() BoundKind { return n.boundKind }

// Wildcard is a ? type argument; Bound is nil when unbounded.
type Wildcard struct {
	expr
	typeBoundKind *TypeBoundKind
	bound         Expr
}

func (n *Wildcard) TypeBoundKind() *TypeBoundKind { return n.typeBoundKind }
func (n *Wildcard) Bound() Expr                   { return n.bound }
