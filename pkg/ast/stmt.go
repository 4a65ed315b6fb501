package ast

import (
	"github.com/chazu/jnova/pkg/immlist"
	"github.com/chazu/jnova/pkg/naming"
)

// Block is a brace-delimited statement list. Initializer blocks carry the
// STATIC flag.
type Block struct {
	stmt
	flags      int64
	statements *immlist.List[Stmt]
}

func (n *Block) Flags() int64                    { return n.flags }
func (n *Block) Statements() *immlist.List[Stmt] { return n.statements }

type EmptyStatement struct {
	stmt
}

type ExpressionStatement struct {
	stmt
	expression Expr
}

func (n *ExpressionStatement) Expression() Expr { return n.expression }

type If struct {
	stmt
	condition Expr
	thenPart  Stmt
	elsePart  Stmt
}

func (n *If) Condition() Expr { return n.condition }
func (n *If) ThenPart() Stmt  { return n.thenPart }
func (n *If) ElsePart() Stmt  { return n.elsePart }

type WhileLoop struct {
	stmt
	condition Expr
	body      Stmt
}

func (n *WhileLoop) Condition() Expr { return n.condition }
func (n *WhileLoop) Body() Stmt      { return n.body }

type DoWhileLoop struct {
	stmt
	body      Stmt
	condition Expr
}

func (n *DoWhileLoop) Body() Stmt      { return n.body }
func (n *DoWhileLoop) Condition() Expr { return n.condition }

// ForLoop is the classic three-part for statement. Initializers are
// variable declarations or expression statements.
type ForLoop struct {
	stmt
	initializers *immlist.List[Stmt]
	condition    Expr
	step         *immlist.List[*ExpressionStatement]
	body         Stmt
}

func (n *ForLoop) Initializers() *immlist.List[Stmt]         { return n.initializers }
func (n *ForLoop) Condition() Expr                           { return n.condition }
func (n *ForLoop) Step() *immlist.List[*ExpressionStatement] { return n.step }
func (n *ForLoop) Body() Stmt                                { return n.body }

// ForEachLoop is the enhanced for statement.
type ForEachLoop struct {
	stmt
	variable   *VariableDecl
	expression Expr
	body       Stmt
}

func (n *ForEachLoop) Variable() *VariableDecl { return n.variable }
func (n *ForEachLoop) Expression() Expr        { return n.expression }
func (n *ForEachLoop) Body() Stmt              { return n.body }

type LabeledStatement struct {
	stmt
	label *naming.Symbol
	body  Stmt
}

func (n *LabeledStatement) Label() *naming.Symbol { return n.label }
func (n *LabeledStatement) Body() Stmt            { return n.body }

type Switch struct {
	stmt
	selector Expr
	cases    *immlist.List[*Case]
}

func (n *Switch) Selector() Expr              { return n.selector }
func (n *Switch) Cases() *immlist.List[*Case] { return n.cases }

// Case is one switch arm. The default arm has a nil expression.
type Case struct {
	stmt
	expression Expr
	statements *immlist.List[Stmt]
}

func (n *Case) Expression() Expr                { return n.expression }
func (n *Case) Statements() *immlist.List[Stmt] { return n.statements }

type Synchronized struct {
	stmt
	lock Expr
	body *Block
}

func (n *Synchronized) Lock() Expr   { return n.lock }
func (n *Synchronized) Body() *Block { return n.body }

type Try struct {
	stmt
	body      *Block
	catchers  *immlist.List[*Catch]
	finalizer *Block
}

func (n *Try) Body() *Block                    { return n.body }
func (n *Try) Catchers() *immlist.List[*Catch] { return n.catchers }
func (n *Try) Finalizer() *Block               { return n.finalizer }

type Catch struct {
	stmt
	parameter *VariableDecl
	body      *Block
}

func (n *Catch) Parameter() *VariableDecl { return n.parameter }
func (n *Catch) Body() *Block             { return n.body }

type Break struct {
	stmt
	label *naming.Symbol
}

// Label is nil for an unlabeled break.
func (n *Break) Label() *naming.Symbol { return n.label }

type Continue struct {
	stmt
	label *naming.Symbol
}

func (n *Continue) Label() *naming.Symbol { return n.label }

type Return struct {
	stmt
	expression Expr
}

func (n *Return) Expression() Expr { return n.expression }

type Throw struct {
	stmt
	expression Expr
}

func (n *Throw) Expression() Expr { return n.expression }

type Assert struct {
	stmt
	condition Expr
	detail    Expr
}

func (n *Assert) Condition() Expr { return n.condition }
func (n *Assert) Detail() Expr    { return n.detail }
