// Package code holds the language-level constants shared by the parser and
// its consumers: modifier flags, type tags and literal conversion.
package code

import "strings"

// Standard access flags. These occupy the same bits as in class files.
const (
	PUBLIC int64 = 1 << iota
	PRIVATE
	PROTECTED
	STATIC
	FINAL
	SYNCHRONIZED
	VOLATILE
	TRANSIENT
	NATIVE
	INTERFACE
	ABSTRACT
	STRICTFP
	SYNTHETIC
	ANNOTATION
	ENUM
)

const StandardFlags int64 = 0x0fff

// ModifierFlags are the standard flags that can be written as modifiers.
const ModifierFlags = StandardFlags &^ INTERFACE

// Flags with no class file equivalent.
const (
	DEPRECATED   int64 = 1 << 17
	HASINIT      int64 = 1 << 18
	BLOCK        int64 = 1 << 20
	IPROXY       int64 = 1 << 21
	NOOUTERTHIS  int64 = 1 << 22
	EXISTS       int64 = 1 << 23
	COMPOUND     int64 = 1 << 24
	CLASS_SEEN   int64 = 1 << 25
	SOURCE_SEEN  int64 = 1 << 26
	LOCKED       int64 = 1 << 27
	UNATTRIBUTED int64 = 1 << 28
	ANONCONSTR   int64 = 1 << 29
	ACYCLIC      int64 = 1 << 30

	BRIDGE          int64 = 1 << 31
	PARAMETER       int64 = 1 << 33
	VARARGS         int64 = 1 << 34
	ACYCLIC_ANN     int64 = 1 << 35
	GENERATEDCONSTR int64 = 1 << 36
	HYPOTHETICAL    int64 = 1 << 37
	PROPRIETARY     int64 = 1 << 38
)

// Masks of the modifiers permitted on each kind of declaration.
const (
	AccessFlags          = PUBLIC | PROTECTED | PRIVATE
	LocalClassFlags      = FINAL | ABSTRACT | STRICTFP | ENUM | SYNTHETIC
	MemberClassFlags     = LocalClassFlags | INTERFACE | AccessFlags
	ClassFlags           = LocalClassFlags | INTERFACE | PUBLIC | ANNOTATION
	InterfaceVarFlags    = FINAL | STATIC | PUBLIC
	VarFlags             = AccessFlags | FINAL | STATIC | VOLATILE | TRANSIENT | ENUM
	ConstructorFlags     = AccessFlags
	InterfaceMethodFlags = ABSTRACT | PUBLIC
	MethodFlags          = AccessFlags | ABSTRACT | STATIC | NATIVE | SYNCHRONIZED | FINAL | STRICTFP
	LocalVarFlags        = FINAL | PARAMETER
)

var flagWords = []struct {
	flag int64
	word string
}{
	{PUBLIC, "public"},
	{PRIVATE, "private"},
	{PROTECTED, "protected"},
	{STATIC, "static"},
	{FINAL, "final"},
	{SYNCHRONIZED, "synchronized"},
	{VOLATILE, "volatile"},
	{TRANSIENT, "transient"},
	{NATIVE, "native"},
	{INTERFACE, "interface"},
	{ABSTRACT, "abstract"},
	{STRICTFP, "strictfp"},
	{BRIDGE, "bridge"},
	{SYNTHETIC, "synthetic"},
	{DEPRECATED, "deprecated"},
	{HASINIT, "hasinit"},
	{ENUM, "enum"},
	{IPROXY, "iproxy"},
	{NOOUTERTHIS, "noouterthis"},
	{EXISTS, "exists"},
	{COMPOUND, "compound"},
	{CLASS_SEEN, "class_seen"},
	{SOURCE_SEEN, "source_seen"},
	{LOCKED, "locked"},
	{UNATTRIBUTED, "unattributed"},
	{ANONCONSTR, "anonconstr"},
	{ACYCLIC, "acyclic"},
	{PARAMETER, "parameter"},
	{VARARGS, "varargs"},
}

// FlagsString renders every named flag in flags as a lower-case word
// followed by a space, e.g. "public static ".
func FlagsString(flags int64) string {
	var b strings.Builder
	for _, fw := range flagWords {
		if flags&fw.flag != 0 {
			b.WriteString(fw.word)
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// FlagNames renders the standard flags only, without the trailing space.
func FlagNames(flags int64) string {
	return strings.TrimSpace(FlagsString(flags & StandardFlags))
}
