package ast

import (
	"strings"
	"testing"

	"github.com/chazu/jnova/pkg/code"
	"github.com/chazu/jnova/pkg/immlist"
	"github.com/chazu/jnova/pkg/naming"
	"github.com/chazu/jnova/pkg/source"
)

func newFactory() (*Factory, *naming.Table) {
	t := naming.NewTable()
	return NewFactory(naming.NewNames(t)), t
}

func TestKind(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
	}{
		{COMPILATION_UNIT, "COMPILATION_UNIT"},
		{ERRONEOUS, "ERRONEOUS"},
		{NULLCHK, "NULLCHK"},
		{MOD, "MOD"},
		{BITAND_ASG, "BITAND_ASG"},
		{SL_ASG, "SL_ASG"},
		{MOD_ASG, "MOD_ASG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			k, ok := LookupKind(tt.name)
			if !ok || k != tt.kind {
				t.Errorf("LookupKind(%q) = %v, %v", tt.name, k, ok)
			}
		})
	}

	t.Run("assignment offset", func(t *testing.T) {
		pairs := [][2]Kind{
			{BITOR, BITOR_ASG}, {BITXOR, BITXOR_ASG}, {BITAND, BITAND_ASG},
			{SL, SL_ASG}, {SR, SR_ASG}, {USR, USR_ASG},
			{PLUS, PLUS_ASG}, {MINUS, MINUS_ASG},
			{MUL, MUL_ASG}, {DIV, DIV_ASG}, {MOD, MOD_ASG},
		}
		for _, p := range pairs {
			if p[0]+ASG_OFFSET != p[1] {
				t.Errorf("%v + ASG_OFFSET = %v, want %v", p[0], p[0]+ASG_OFFSET, p[1])
			}
			if !p[1].IsCompoundAssign() || p[0].IsCompoundAssign() {
				t.Errorf("IsCompoundAssign wrong for %v/%v", p[0], p[1])
			}
		}
	})

	t.Run("unused slots", func(t *testing.T) {
		gap := BITAND_ASG + 1
		if gap.IsCompoundAssign() || gap.IsBinary() {
			t.Errorf("%v should not be an operator", gap)
		}
		if !strings.HasPrefix(gap.String(), "Kind(") {
			t.Errorf("unused slot has name %q", gap.String())
		}
	})
}

func TestOpPrec(t *testing.T) {
	tests := []struct {
		op   Kind
		prec int
	}{
		{NEG, PrefixPrec},
		{POSTINC, PostfixPrec},
		{ASSIGN, AssignPrec},
		{PLUS_ASG, AssignopPrec},
		{BITOR_ASG, AssignopPrec},
		{OR, OrPrec},
		{AND, AndPrec},
		{BITOR, BitorPrec},
		{BITXOR, BitxorPrec},
		{BITAND, BitandPrec},
		{NE, EqPrec},
		{GE, OrdPrec},
		{TYPETEST, OrdPrec},
		{USR, ShiftPrec},
		{MINUS, AddPrec},
		{MOD, MulPrec},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if got := OpPrec(tt.op); got != tt.prec {
				t.Errorf("OpPrec(%v) = %d, want %d", tt.op, got, tt.prec)
			}
		})
	}

	t.Run("panics on non-operator", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		OpPrec(IDENT)
	})
}

func TestOperatorName(t *testing.T) {
	tests := map[Kind]string{
		NOT:      "!",
		POSTDEC:  "--",
		USR:      ">>>",
		AND:      "&&",
		USR_ASG:  ">>>=",
		PLUS_ASG: "+=",
		IDENT:    "",
	}
	for k, want := range tests {
		if got := OperatorName(k); got != want {
			t.Errorf("OperatorName(%v) = %q, want %q", k, got, want)
		}
	}
	if !IsPrefix(PREDEC) || IsPrefix(POSTINC) {
		t.Error("IsPrefix misclassifies increments")
	}
}

func TestFactory_Positions(t *testing.T) {
	f, tbl := newFactory()
	if f.Pos() != source.NOPOS {
		t.Fatalf("initial pos = %d, want NOPOS", f.Pos())
	}

	id := f.At(3).Ident(tbl.Intern("a"))
	lit := f.At(7).Literal(code.INT, int32(1))
	bin := f.At(5).Binary(PLUS, id, lit)

	for _, tt := range []struct {
		n    Node
		kind Kind
		pos  int
	}{
		{id, IDENT, 3},
		{lit, LITERAL, 7},
		{bin, PLUS, 5},
	} {
		if tt.n.Kind() != tt.kind || tt.n.Pos() != tt.pos {
			t.Errorf("%T: got %v@%d, want %v@%d", tt.n, tt.n.Kind(), tt.n.Pos(), tt.kind, tt.pos)
		}
	}
	if bin.Left() != Expr(id) || bin.Right() != Expr(lit) {
		t.Error("binary operands not kept")
	}
}

func TestFactory_OnCreate(t *testing.T) {
	f, tbl := newFactory()
	var seen []Kind
	f.OnCreate(func(n Node) { seen = append(seen, n.Kind()) })

	f.Modifiers(code.PUBLIC, nil)
	f.AnonymousClassDecl(f.Modifiers(0, nil), nil)
	f.Ident(tbl.Intern("x"))

	want := []Kind{MODIFIERS, MODIFIERS, CLASS_DECL, IDENT}
	if len(seen) != len(want) {
		t.Fatalf("seen %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestFactory_AnonymousClassHasEmptyName(t *testing.T) {
	f, tbl := newFactory()
	c := f.AnonymousClassDecl(f.Modifiers(0, nil), nil)
	if c.Name() != tbl.Intern("") {
		t.Errorf("anonymous class name = %q", c.Name())
	}
	if c.Extending() != nil || c.TypeParameters().NonEmpty() {
		t.Error("anonymous class should have no supertypes or type parameters")
	}
}

func TestFactory_RejectsWrongOperator(t *testing.T) {
	f, _ := newFactory()
	lit := f.Literal(code.INT, int32(0))
	for name, build := range map[string]func(){
		"unary":    func() { f.Unary(PLUS, lit) },
		"binary":   func() { f.Binary(NEG, lit, lit) },
		"compound": func() { f.CompoundAssignment(PLUS, lit, lit) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			build()
		})
	}
}

func TestName(t *testing.T) {
	f, tbl := newFactory()
	list := tbl.Intern("List")
	sel := f.FieldAccess(f.Ident(tbl.Intern("java")), list)
	app := f.ParameterizedType(sel, immlist.Of[Expr](f.Ident(tbl.Intern("T"))))

	if Name(f.Ident(list)) != list {
		t.Error("Name(Ident)")
	}
	if Name(sel) != list {
		t.Error("Name(FieldAccess)")
	}
	if Name(app) != list {
		t.Error("Name(ParameterizedType)")
	}
	if Name(f.Literal(code.BOT, nil)) != nil {
		t.Error("Name(Literal) should be nil")
	}
}

func TestChildren_Order(t *testing.T) {
	f, tbl := newFactory()
	nm := tbl.Intern

	mods := f.Modifiers(0, nil)
	ret := f.PrimitiveType(code.VOID)
	tp := f.TypeParameter(nm("T"), nil)
	param := f.VariableDecl(f.Modifiers(code.PARAMETER, nil), nm("p"), f.Ident(nm("T")), nil)
	thrown := f.Ident(nm("E"))
	body := f.Block(0, nil)
	m := f.MethodDecl(mods, nm("m"), ret, immlist.Of(tp), immlist.Of(param), immlist.Of[Expr](thrown), body, nil)

	got := Children(m)
	want := []Node{mods, ret, tp, param, thrown, body}
	if len(got) != len(want) {
		t.Fatalf("got %d children, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d = %v, want %v", i, got[i].Kind(), want[i].Kind())
		}
	}

	t.Run("typed nil is skipped", func(t *testing.T) {
		var noBody *Block
		abstract := f.MethodDecl(mods, nm("n"), ret, nil, nil, nil, noBody, nil)
		if n := len(Children(abstract)); n != 2 {
			t.Errorf("got %d children, want 2", n)
		}
	})

	t.Run("new class", func(t *testing.T) {
		encl := f.Ident(nm("outer"))
		clazz := f.Ident(nm("Inner"))
		arg := f.Literal(code.INT, int32(1))
		targ := f.Ident(nm("S"))
		cb := f.AnonymousClassDecl(f.Modifiers(0, nil), nil)
		nc := f.NewClass(encl, immlist.Of[Expr](targ), clazz, immlist.Of[Expr](arg), cb)

		want := []Node{encl, clazz, arg, targ, cb}
		got := Children(nc)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("child %d = %v, want %v", i, got[i].Kind(), want[i].Kind())
			}
		}
	})
}

func TestDelegate_ScansChildren(t *testing.T) {
	f, tbl := newFactory()
	counter := 0
	next := func() *Factory {
		counter++
		return f.At(counter)
	}

	// children are built before their parents, so the root gets the
	// highest position and every other node one of 1..n
	id1 := next().Ident(tbl.Intern("id1"))
	id2 := next().Ident(tbl.Intern("id2"))
	lit1 := next().Literal(code.INT, int32(12))
	asg1 := next().Assignment(id2, lit1)
	id3 := next().Ident(tbl.Intern("id3"))
	lit2 := next().Literal(code.CLASS, "Literal")
	asg2 := next().Assignment(id3, lit2)
	root := next().Annotation(id1, immlist.Of[Expr](asg1, asg2))

	sum := 0
	scanner := &Scanner{Leave: func(n Node) { sum += n.Pos() }}
	Accept(root, &Delegate{Target: scanner})

	n := counter - 1
	if want := n * (n + 1) / 2; sum != want {
		t.Errorf("sum = %d, want %d", sum, want)
	}
}

func TestDelegate_Hooks(t *testing.T) {
	f, tbl := newFactory()
	var idents []string
	target := &Handlers{
		ByKind: map[Kind]func(Node){
			IDENT: func(n Node) { idents = append(idents, n.(*Ident).Name().String()) },
		},
	}
	d := &Delegate{
		Target: target,
		Hooks: map[Kind]func(Node, Visitor){
			LITERAL: func(Node, Visitor) { idents = append(idents, "<lit>") },
		},
	}

	Accept(f.Ident(tbl.Intern("a")), d)
	Accept(f.Literal(code.INT, int32(1)), d)
	Accept(f.Parens(nil), d)
	Accept(nil, d)

	want := []string{"a", "<lit>"}
	if len(idents) != len(want) || idents[0] != want[0] || idents[1] != want[1] {
		t.Errorf("got %v, want %v", idents, want)
	}
}

func TestScanner_EnterPrunes(t *testing.T) {
	f, tbl := newFactory()
	nm := tbl.Intern
	inner := f.Parens(f.Ident(nm("hidden")))
	tree := f.Binary(PLUS, f.Ident(nm("a")), inner)

	var kinds []Kind
	s := &Scanner{Enter: func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != PARENS
	}}
	s.Scan(tree)

	want := []Kind{PLUS, IDENT, PARENS}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestInspect_CountsNodes(t *testing.T) {
	f, tbl := newFactory()
	nm := tbl.Intern
	cu := f.CompilationUnit(nil, f.FieldAccess(f.Ident(nm("a")), nm("b")), immlist.Of[Node](
		f.Import(f.FieldAccess(f.Ident(nm("x")), nm("Y")), false),
		f.ClassDecl(f.Modifiers(code.PUBLIC|code.FINAL, nil), nm("C"), nil, f.Ident(nm("D")),
			immlist.Of[Expr](f.Ident(nm("E"))), nil),
	))

	count := 0
	Inspect(cu, func(Node) bool { count++; return true })
	// unit, package select + ident, import + select + ident,
	// class + modifiers + extends + implements
	if count != 10 {
		t.Errorf("count = %d, want 10", count)
	}
}
