package ast

import (
	"fmt"

	"github.com/chazu/jnova/pkg/code"
	"github.com/chazu/jnova/pkg/naming"
)

// Operator precedences. Higher binds tighter.
const (
	NotExpression = -1 // not an expression
	NoPrec        = 0  // no enclosing expression
	AssignPrec    = 1
	AssignopPrec  = 2
	CondPrec      = 3
	OrPrec        = 4
	AndPrec       = 5
	BitorPrec     = 6
	BitxorPrec    = 7
	BitandPrec    = 8
	EqPrec        = 9
	OrdPrec       = 10
	ShiftPrec     = 11
	AddPrec       = 12
	MulPrec       = 13
	PrefixPrec    = 14
	PostfixPrec   = 15
	PrecCount     = 16
)

// OpPrec returns the precedence of an operator kind. It panics for kinds
// that are not operators.
func OpPrec(op Kind) int {
	switch op {
	case POS, NEG, NOT, COMPL, PREINC, PREDEC:
		return PrefixPrec
	case POSTINC, POSTDEC, NULLCHK:
		return PostfixPrec
	case ASSIGN:
		return AssignPrec
	case OR:
		return OrPrec
	case AND:
		return AndPrec
	case EQ, NE:
		return EqPrec
	case LT, GT, LE, GE, TYPETEST:
		return OrdPrec
	case BITOR:
		return BitorPrec
	case BITXOR:
		return BitxorPrec
	case BITAND:
		return BitandPrec
	case SL, SR, USR:
		return ShiftPrec
	case PLUS, MINUS:
		return AddPrec
	case MUL, DIV, MOD:
		return MulPrec
	}
	if op.IsCompoundAssign() {
		return AssignopPrec
	}
	panic(fmt.Sprintf("ast: no precedence for %v", op))
}

var operatorNames = map[Kind]string{
	POS:     "+",
	NEG:     "-",
	NOT:     "!",
	COMPL:   "~",
	PREINC:  "++",
	PREDEC:  "--",
	POSTINC: "++",
	POSTDEC: "--",
	NULLCHK: "<*nullchk*>",
	OR:      "||",
	AND:     "&&",
	EQ:      "==",
	NE:      "!=",
	LT:      "<",
	GT:      ">",
	LE:      "<=",
	GE:      ">=",
	BITOR:   "|",
	BITXOR:  "^",
	BITAND:  "&",
	SL:      "<<",
	SR:      ">>",
	USR:     ">>>",
	PLUS:    "+",
	MINUS:   "-",
	MUL:     "*",
	DIV:     "/",
	MOD:     "%",
}

// OperatorName returns the source spelling of a unary, binary or compound
// assignment operator ("+=" for PLUS_ASG), or "" for other kinds.
func OperatorName(op Kind) string {
	if op.IsCompoundAssign() {
		return operatorNames[op-ASG_OFFSET] + "="
	}
	return operatorNames[op]
}

// IsPrefix reports whether a unary operator is written before its operand.
func IsPrefix(op Kind) bool { return op >= POS && op <= PREDEC }

// Name returns the name of an identifier, a field access or a parameterized
// type, and nil for anything else.
func Name(n Node) *naming.Symbol {
	switch n := n.(type) {
	case *Ident:
		return n.Name()
	case *FieldAccess:
		return n.Name()
	case *ParameterizedType:
		return Name(n.ParameterizedClass())
	}
	return nil
}

// FlagNames renders the standard modifier flags of m, space separated.
func FlagNames(m *Modifiers) string {
	if m == nil {
		return ""
	}
	return code.FlagNames(m.Flags())
}
