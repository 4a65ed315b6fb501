package code

import "fmt"

// TypeTag classifies types. Literal and primitive type nodes carry one.
type TypeTag int

const (
	BYTE TypeTag = iota + 1
	CHAR
	SHORT
	INT
	LONG
	FLOAT
	DOUBLE
	BOOLEAN
	VOID
	CLASS
	ARRAY
	METHOD
	PACKAGE
	TYPEVAR
	WILDCARD
	FORALL
	BOT
	NONE
	ERROR
	UNKNOWN
	UNDETVAR

	TypeTagCount = UNDETVAR + 1

	// LastBaseTag is the last primitive tag; tags up to it are base types.
	LastBaseTag = BOOLEAN
	// FirstPartialTag is the first tag of a type that is not fully known.
	FirstPartialTag = ERROR
)

var typeTagNames = [...]string{
	BYTE:     "byte",
	CHAR:     "char",
	SHORT:    "short",
	INT:      "int",
	LONG:     "long",
	FLOAT:    "float",
	DOUBLE:   "double",
	BOOLEAN:  "boolean",
	VOID:     "void",
	CLASS:    "class",
	ARRAY:    "array",
	METHOD:   "method",
	PACKAGE:  "package",
	TYPEVAR:  "typevar",
	WILDCARD: "wildcard",
	FORALL:   "forall",
	BOT:      "bot",
	NONE:     "none",
	ERROR:    "error",
	UNKNOWN:  "unknown",
	UNDETVAR: "undetvar",
}

func (t TypeTag) String() string {
	if t > 0 && int(t) < len(typeTagNames) {
		return typeTagNames[t]
	}
	return fmt.Sprintf("TypeTag(%d)", int(t))
}

// IsBase reports whether t is a primitive type other than void.
func (t TypeTag) IsBase() bool {
	return t >= BYTE && t <= LastBaseTag
}

// LookupTypeTag is the inverse of String.
func LookupTypeTag(name string) (TypeTag, bool) {
	for i, n := range typeTagNames {
		if n == name && i > 0 {
			return TypeTag(i), true
		}
	}
	return 0, false
}
