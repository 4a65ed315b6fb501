package naming

// Spellings of names that the parser synthesizes.
const (
	Asterisk = "*"
	Init     = "<init>"
	Error    = "<error>"
)

// Names holds symbols every parse needs, interned once per table.
type Names struct {
	Empty       *Symbol
	Asterisk    *Symbol
	Slash       *Symbol
	SlashEquals *Symbol
	Hyphen      *Symbol
	Error       *Symbol
	Init        *Symbol
	This        *Symbol
	Super       *Symbol
	Default     *Symbol
	Class       *Symbol
}

// NewNames interns the predefined names into t.
func NewNames(t *Table) *Names {
	return &Names{
		Empty:       t.Intern(""),
		Asterisk:    t.Intern(Asterisk),
		Slash:       t.Intern("/"),
		SlashEquals: t.Intern("/="),
		Hyphen:      t.Intern("-"),
		Error:       t.Intern(Error),
		Init:        t.Intern(Init),
		This:        t.Intern("this"),
		Super:       t.Intern("super"),
		Default:     t.Intern("default"),
		Class:       t.Intern("class"),
	}
}
