package source

import "fmt"

// Level is a language source level. Later levels accept more syntax.
type Level int

const (
	JDK1_2 Level = iota + 2
	JDK1_3
	JDK1_4
	JDK1_5
	JDK1_6
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = JDK1_5

var levelNames = map[string]Level{
	"1.2": JDK1_2,
	"1.3": JDK1_3,
	"1.4": JDK1_4,
	"1.5": JDK1_5,
	"1.6": JDK1_6,
	"5":   JDK1_5,
	"6":   JDK1_6,
}

// LookupLevel resolves a level name such as "1.5" or "6".
func LookupLevel(name string) (Level, error) {
	l, ok := levelNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown source level %q", name)
	}
	return l, nil
}

func (l Level) String() string {
	return fmt.Sprintf("1.%d", int(l))
}

func (l Level) AllowAsserts() bool      { return l >= JDK1_4 }
func (l Level) AllowGenerics() bool     { return l >= JDK1_5 }
func (l Level) AllowEnums() bool        { return l >= JDK1_5 }
func (l Level) AllowForeach() bool      { return l >= JDK1_5 }
func (l Level) AllowStaticImport() bool { return l >= JDK1_5 }
func (l Level) AllowVarargs() bool      { return l >= JDK1_5 }
func (l Level) AllowAnnotations() bool  { return l >= JDK1_5 }
func (l Level) AllowHexFloats() bool    { return l >= JDK1_5 }
