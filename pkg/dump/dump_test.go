package dump

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/chazu/jnova/pkg/ast"
	"github.com/chazu/jnova/pkg/code"
	"github.com/chazu/jnova/pkg/immlist"
	"github.com/chazu/jnova/pkg/naming"
	"github.com/chazu/jnova/pkg/parser"
	"github.com/chazu/jnova/pkg/source"
)

func parse(t *testing.T, text string) *ast.CompilationUnit {
	t.Helper()
	p := parser.New(parser.Config{Table: naming.NewTable()}, source.FromString("Test.java", text))
	return p.ParseCompilationUnit()
}

func leaf(field, kind string, attrs map[string]string) *Tree {
	return &Tree{Kind: kind, Field: field, Attrs: attrs}
}

func TestBuild(t *testing.T) {
	got := Build(parse(t, "class A { int x = 1 + y; }"))
	want := &Tree{Kind: "COMPILATION_UNIT", Children: []*Tree{
		{Kind: "CLASS_DECL", Field: "definitions", Attrs: map[string]string{"name": "A"}, Children: []*Tree{
			leaf("modifiers", "MODIFIERS", nil),
			{Kind: "VARIABLE_DECL", Field: "definitions", Attrs: map[string]string{"name": "x"}, Children: []*Tree{
				leaf("modifiers", "MODIFIERS", nil),
				leaf("type", "TYPEIDENT", map[string]string{"type": "int"}),
				{Kind: "PLUS", Field: "initializer", Attrs: map[string]string{"op": "+"}, Children: []*Tree{
					leaf("left", "LITERAL", map[string]string{"type": "int", "value": "1"}),
					leaf("right", "IDENT", map[string]string{"name": "y"}),
				}},
			}},
		}},
	}}
	if diffs := Compare(want, got, true); diffs != nil {
		for _, d := range diffs {
			t.Error(d)
		}
	}
}

func TestBuild_MatchesFactoryTree(t *testing.T) {
	text := "package a.b; import x.Y; public final class C extends D implements E { void m() {} }"
	got := Build(parse(t, text))

	table := naming.NewTable()
	f := ast.NewFactory(naming.NewNames(table))
	id := func(s string) *ast.Ident { return f.Ident(table.Intern(s)) }
	method := f.MethodDecl(f.Modifiers(0, nil), table.Intern("m"), f.PrimitiveType(code.VOID),
		nil, nil, nil, f.Block(0, nil), nil)
	class := f.ClassDecl(f.Modifiers(code.PUBLIC|code.FINAL, nil), table.Intern("C"), nil,
		id("D"), immlist.Of[ast.Expr](id("E")), immlist.Of[ast.Node](method))
	unit := f.CompilationUnit(nil, f.FieldAccess(id("a"), table.Intern("b")), immlist.Of[ast.Node](
		f.Import(f.FieldAccess(id("x"), table.Intern("Y")), false),
		class,
	))
	want := Build(unit)

	if diffs := Compare(want, got, true); diffs != nil {
		for _, d := range diffs {
			t.Error(d)
		}
	}
	if n := Count(got); n != 14 {
		t.Errorf("got %d nodes, want 14", n)
	}
}

func TestBuild_Attributes(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind string
		want map[string]string
	}{
		{"static import", "import static a.B.*;", "IMPORT", map[string]string{"static": "true"}},
		{"modifiers", "public final class A {}", "MODIFIERS", map[string]string{"flags": "public final"}},
		{"static block", "class A { static {} }", "BLOCK", map[string]string{"flags": "static"}},
		{"long literal", "class A { long v = 7L; }", "LITERAL", map[string]string{"type": "long", "value": "7L"}},
		{"char literal", `class A { char c = '\n'; }`, "LITERAL", map[string]string{"type": "char", "value": `'\n'`}},
		{"string literal", `class A { String s = "hi"; }`, "LITERAL", map[string]string{"type": "class", "value": `"hi"`}},
		{"null literal", "class A { Object o = null; }", "LITERAL", map[string]string{"type": "bot", "value": "null"}},
		{"float literal", "class A { float f = 1.5f; }", "LITERAL", map[string]string{"type": "float", "value": "1.5f"}},
		{"wildcard", "class A { java.util.List<? super T> l; }", "TYPEBOUNDKIND", map[string]string{"bound": "super"}},
		{"compound assignment", "class A { void m() { x <<= 2; } }", "SL_ASG", map[string]string{"op": "<<="}},
		{"labelled break", "class A { void m() { l: while (true) break l; } }", "BREAK", map[string]string{"label": "l"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var found *Tree
			var walk func(*Tree)
			walk = func(n *Tree) {
				if found == nil && n.Kind == tt.kind {
					found = n
				}
				for _, c := range n.Children {
					walk(c)
				}
			}
			walk(Build(parse(t, tt.text)))
			if found == nil {
				t.Fatalf("no %s node", tt.kind)
			}
			if len(found.Attrs) != len(tt.want) {
				t.Errorf("attrs = %v, want %v", found.Attrs, tt.want)
			}
			for k, v := range tt.want {
				if found.Attrs[k] != v {
					t.Errorf("%s = %q, want %q", k, found.Attrs[k], v)
				}
			}
		})
	}
}

func TestBuildWithDocs(t *testing.T) {
	text := "/** The class. */\nclass A {\n /** The field. */\n int x;\n int y;\n}"
	p := parser.New(parser.Config{Table: naming.NewTable(), KeepDocComments: true}, source.FromString("A.java", text))
	tree := BuildWithDocs(p.ParseCompilationUnit(), p.DocComments())
	class := tree.Children[0]
	if !strings.Contains(class.Attrs["doc"], "The class.") {
		t.Errorf("class doc = %q", class.Attrs["doc"])
	}
	x, y := class.Children[1], class.Children[2]
	if !strings.Contains(x.Attrs["doc"], "The field.") {
		t.Errorf("x doc = %q", x.Attrs["doc"])
	}
	if _, ok := y.Attrs["doc"]; ok {
		t.Errorf("y doc = %q", y.Attrs["doc"])
	}
}

func TestBuild_Nil(t *testing.T) {
	if Build(nil) != nil {
		t.Error("Build(nil) should be nil")
	}
}

func TestEncodeDecode(t *testing.T) {
	tree := Build(parse(t, `package p;
import java.util.List;
@Deprecated
public class A<T> extends B implements C {
	private List<? extends T> items = null;
	public int size(final int[] a, String... rest) { return a.length + rest.length; }
	enum E { X, Y(1) }
}`))
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, tree, f); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(&buf, f)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diffs := Compare(tree, got, false); diffs != nil {
				t.Errorf("round trip differs: %v", diffs)
			}
		})
	}
}

func TestEncode_CBORIsDeterministic(t *testing.T) {
	tree := Build(parse(t, "class A { int a = 1, b = 2; }"))
	var first, second bytes.Buffer
	if err := Encode(&first, tree, CBOR); err != nil {
		t.Fatal(err)
	}
	if err := Encode(&second, tree, CBOR); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two encodings of the same tree differ")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"json", JSON, false},
		{"YAML", YAML, false},
		{"Cbor", CBOR, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("err = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("got %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, &Tree{Kind: "IDENT"}, "xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode err = %v", err)
	}
	if _, err := Decode(&buf, "xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Decode err = %v", err)
	}
}

func TestCompare(t *testing.T) {
	base := func() *Tree {
		return &Tree{Kind: "PLUS", Pos: 3, Attrs: map[string]string{"op": "+"}, Children: []*Tree{
			{Kind: "IDENT", Field: "left", Pos: 1, Attrs: map[string]string{"name": "a"}},
			{Kind: "IDENT", Field: "right", Pos: 5, Attrs: map[string]string{"name": "b"}},
		}}
	}
	tests := []struct {
		name      string
		change    func(*Tree)
		ignorePos bool
		want      []string
	}{
		{"equal", func(*Tree) {}, false, nil},
		{"position", func(t *Tree) { t.Children[1].Pos = 6 }, false,
			[]string{"/PLUS[1]/right:IDENT: pos 5, got 6"}},
		{"position ignored", func(t *Tree) { t.Children[1].Pos = 6 }, true, nil},
		{"attribute", func(t *Tree) { t.Children[0].Attrs["name"] = "c" }, true,
			[]string{`/PLUS[0]/left:IDENT: name = "a", got "c"`}},
		{"extra attribute", func(t *Tree) { t.Attrs["x"] = "y" }, true,
			[]string{`/PLUS: unexpected x = "y"`}},
		{"kind", func(t *Tree) { t.Kind = "MINUS" }, true,
			[]string{"/PLUS: kind PLUS, got MINUS"}},
		{"children", func(t *Tree) { t.Children = t.Children[:1] }, true,
			[]string{"/PLUS: 2 children, got 1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base()
			tt.change(got)
			diffs := Compare(base(), got, tt.ignorePos)
			if len(diffs) != len(tt.want) {
				t.Fatalf("diffs = %q, want %q", diffs, tt.want)
			}
			for i := range diffs {
				if diffs[i] != tt.want[i] {
					t.Errorf("diff %d = %q, want %q", i, diffs[i], tt.want[i])
				}
			}
		})
	}
}

func TestCount(t *testing.T) {
	tree := Build(parse(t, "class A { int x = 1 + y; }"))
	// unit, class, class modifiers, var, var modifiers, int, +, 1, y
	if got := Count(tree); got != 9 {
		t.Errorf("Count = %d, want 9", got)
	}
	if Count(nil) != 0 {
		t.Error("Count(nil) != 0")
	}
}
