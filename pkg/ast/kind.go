package ast

import "fmt"

// Kind tags a node. Unary, binary and compound assignment nodes use the
// operator kinds (POS ... MOD_ASG) rather than a kind of their own.
type Kind int

const (
	COMPILATION_UNIT Kind = iota + 1
	IMPORT
	CLASS_DECL
	METHOD_DECL
	VARIABLE_DECL
	EMPTY_STATEMENT
	BLOCK
	DOLOOP
	WHILELOOP
	FORLOOP
	FOREACHLOOP
	LABELLED
	SWITCH
	CASE
	SYNCHRONIZED
	TRY
	CATCH
	CONDEXPR
	IF
	EXEC
	BREAK
	CONTINUE
	RETURN
	THROW
	ASSERT
	APPLY
	NEWCLASS
	NEWARRAY
	PARENS
	ASSIGN
	TYPECAST
	TYPETEST
	INDEXED
	SELECT
	IDENT
	LITERAL
	TYPEIDENT
	TYPEARRAY
	TYPEAPPLY
	TYPE_PARAMETER
	WILDCARD
	TYPEBOUNDKIND
	ANNOTATION
	MODIFIERS
	ERRONEOUS

	// unary operators
	POS
	NEG
	NOT
	COMPL
	PREINC
	PREDEC
	POSTINC
	POSTDEC
	NULLCHK

	// binary operators
	OR
	AND
	BITOR
	BITXOR
	BITAND
	EQ
	NE
	LT
	GT
	LE
	GE
	SL
	SR
	USR
	PLUS
	MINUS
	MUL
	DIV
	MOD

	// compound assignment operators
	BITOR_ASG
	BITXOR_ASG
	BITAND_ASG
)

// ASG_OFFSET is the distance from a binary operator to its compound
// assignment form. The comparison operators have no assignment form, so
// their slots are left unused.
const ASG_OFFSET = BITOR_ASG - BITOR

const (
	SL_ASG Kind = SL + ASG_OFFSET + iota
	SR_ASG
	USR_ASG
	PLUS_ASG
	MINUS_ASG
	MUL_ASG
	DIV_ASG
	MOD_ASG

	kindCount
)

var kindNames = [...]string{
	COMPILATION_UNIT: "COMPILATION_UNIT",
	IMPORT:           "IMPORT",
	CLASS_DECL:       "CLASS_DECL",
	METHOD_DECL:      "METHOD_DECL",
	VARIABLE_DECL:    "VARIABLE_DECL",
	EMPTY_STATEMENT:  "EMPTY_STATEMENT",
	BLOCK:            "BLOCK",
	DOLOOP:           "DOLOOP",
	WHILELOOP:        "WHILELOOP",
	FORLOOP:          "FORLOOP",
	FOREACHLOOP:      "FOREACHLOOP",
	LABELLED:         "LABELLED",
	SWITCH:           "SWITCH",
	CASE:             "CASE",
	SYNCHRONIZED:     "SYNCHRONIZED",
	TRY:              "TRY",
	CATCH:            "CATCH",
	CONDEXPR:         "CONDEXPR",
	IF:               "IF",
	EXEC:             "EXEC",
	BREAK:            "BREAK",
	CONTINUE:         "CONTINUE",
	RETURN:           "RETURN",
	THROW:            "THROW",
	ASSERT:           "ASSERT",
	APPLY:            "APPLY",
	NEWCLASS:         "NEWCLASS",
	NEWARRAY:         "NEWARRAY",
	PARENS:           "PARENS",
	ASSIGN:           "ASSIGN",
	TYPECAST:         "TYPECAST",
	TYPETEST:         "TYPETEST",
	INDEXED:          "INDEXED",
	SELECT:           "SELECT",
	IDENT:            "IDENT",
	LITERAL:          "LITERAL",
	TYPEIDENT:        "TYPEIDENT",
	TYPEARRAY:        "TYPEARRAY",
	TYPEAPPLY:        "TYPEAPPLY",
	TYPE_PARAMETER:   "TYPE_PARAMETER",
	WILDCARD:         "WILDCARD",
	TYPEBOUNDKIND:    "TYPEBOUNDKIND",
	ANNOTATION:       "ANNOTATION",
	MODIFIERS:        "MODIFIERS",
	ERRONEOUS:        "ERRONEOUS",
	POS:              "POS",
	NEG:              "NEG",
	NOT:              "NOT",
	COMPL:            "COMPL",
	PREINC:           "PREINC",
	PREDEC:           "PREDEC",
	POSTINC:          "POSTINC",
	POSTDEC:          "POSTDEC",
	NULLCHK:          "NULLCHK",
	OR:               "OR",
	AND:              "AND",
	BITOR:            "BITOR",
	BITXOR:           "BITXOR",
	BITAND:           "BITAND",
	EQ:               "EQ",
	NE:               "NE",
	LT:               "LT",
	GT:               "GT",
	LE:               "LE",
	GE:               "GE",
	SL:               "SL",
	SR:               "SR",
	USR:              "USR",
	PLUS:             "PLUS",
	MINUS:            "MINUS",
	MUL:              "MUL",
	DIV:              "DIV",
	MOD:              "MOD",
	BITOR_ASG:        "BITOR_ASG",
	BITXOR_ASG:       "BITXOR_ASG",
	BITAND_ASG:       "BITAND_ASG",
	SL_ASG:           "SL_ASG",
	SR_ASG:           "SR_ASG",
	USR_ASG:          "USR_ASG",
	PLUS_ASG:         "PLUS_ASG",
	MINUS_ASG:        "MINUS_ASG",
	MUL_ASG:          "MUL_ASG",
	DIV_ASG:          "DIV_ASG",
	MOD_ASG:          "MOD_ASG",
}

func (k Kind) String() string {
	if k > 0 && k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// LookupKind is the inverse of String.
func LookupKind(name string) (Kind, bool) {
	for k := COMPILATION_UNIT; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return 0, false
}

// IsUnary reports whether k is a unary operator.
func (k Kind) IsUnary() bool { return k >= POS && k <= NULLCHK }

// IsBinary reports whether k is a binary operator.
func (k Kind) IsBinary() bool { return k >= OR && k <= MOD }

// IsCompoundAssign reports whether k is a compound assignment operator.
func (k Kind) IsCompoundAssign() bool {
	return k >= BITOR_ASG && k <= BITAND_ASG || k >= SL_ASG && k <= MOD_ASG
}
