// Package dump converts syntax trees into a plain, serializable form.
//
// A Tree mirrors an ast.Node: its kind, position, the name of the parent
// field holding it, a few scalar attributes and its children. Trees can be
// written and read back as JSON, YAML or CBOR, and compared structurally,
// which is what the command line tool and the parser tests use them for.
package dump

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/chazu/jnova/pkg/ast"
	"github.com/chazu/jnova/pkg/code"
)

// Tree is the serializable form of one node.
type Tree struct {
	Kind     string            `json:"kind" yaml:"kind" cbor:"kind"`
	Pos      int               `json:"pos" yaml:"pos" cbor:"pos"`
	Field    string            `json:"field,omitempty" yaml:"field,omitempty" cbor:"field,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty" cbor:"attrs,omitempty"`
	Children []*Tree           `json:"children,omitempty" yaml:"children,omitempty" cbor:"children,omitempty"`
}

// Build converts the tree rooted at n. It returns nil for an absent node.
func Build(n ast.Node) *Tree {
	return BuildWithDocs(n, nil)
}

// BuildWithDocs is Build with the doc comment of each declaration in docs
// recorded as its "doc" attribute.
func BuildWithDocs(n ast.Node, docs map[ast.Node]string) *Tree {
	if n == nil {
		return nil
	}
	b := builder{docs: docs}
	return b.build(n, "")
}

type builder struct {
	docs map[ast.Node]string
}

func (b *builder) build(n ast.Node, field string) *Tree {
	t := &Tree{
		Kind:  n.Kind().String(),
		Pos:   n.Pos(),
		Field: field,
		Attrs: attrs(n),
	}
	if dc, ok := b.docs[n]; ok {
		if t.Attrs == nil {
			t.Attrs = map[string]string{}
		}
		t.Attrs["doc"] = dc
	}
	for _, f := range ast.Fields(n) {
		t.Children = append(t.Children, b.build(f.Node, f.Name))
	}
	return t
}

func attrs(n ast.Node) map[string]string {
	a := map[string]string{}
	if name := ast.Name(n); name != nil {
		a["name"] = name.String()
	}
	switch n := n.(type) {
	case *ast.ClassDecl:
		a["name"] = n.Name().String()
	case *ast.MethodDecl:
		a["name"] = n.Name().String()
	case *ast.VariableDecl:
		a["name"] = n.Name().String()
	case *ast.TypeParameter:
		a["name"] = n.Name().String()
	case *ast.LabeledStatement:
		a["label"] = n.Label().String()
	case *ast.Break:
		if n.Label() != nil {
			a["label"] = n.Label().String()
		}
	case *ast.Continue:
		if n.Label() != nil {
			a["label"] = n.Label().String()
		}
	case *ast.Import:
		if n.Static() {
			a["static"] = "true"
		}
	case *ast.Modifiers:
		if s := ast.FlagNames(n); s != "" {
			a["flags"] = s
		}
	case *ast.Block:
		if s := code.FlagNames(n.Flags()); s != "" {
			a["flags"] = s
		}
	case *ast.Literal:
		a["type"] = n.TypeTag().String()
		a["value"] = literalText(n)
	case *ast.PrimitiveType:
		a["type"] = n.TypeTag().String()
	case *ast.TypeBoundKind:
		a["bound"] = n.BoundKind().Name()
	case *ast.Binary, *ast.Unary, *ast.CompoundAssignment:
		a["op"] = ast.OperatorName(n.Kind())
	}
	if len(a) == 0 {
		return nil
	}
	return a
}

// literalText renders a literal value the way it would be written in
// source.
func literalText(n *ast.Literal) string {
	switch v := n.Value().(type) {
	case nil:
		return "null"
	case string:
		return `"` + code.Quote(v) + `"`
	case int32:
		if n.TypeTag() == code.CHAR {
			return "'" + code.QuoteRune(v) + "'"
		}
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10) + "L"
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32) + "f"
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Format names an encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CBOR Format = "cbor"
)

// Formats lists the supported encodings.
var Formats = []Format{JSON, YAML, CBOR}

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown dump format")

// ParseFormat resolves a format name, ignoring case.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(name))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("dump: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Encode writes t to w in format f.
func Encode(w io.Writer, t *Tree, f Format) error {
	var err error
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(t)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(t); err == nil {
			err = enc.Close()
		}
	case CBOR:
		err = cborEncMode.NewEncoder(w).Encode(t)
	default:
		return fmt.Errorf("encode: %q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// Decode reads a tree written by Encode.
func Decode(r io.Reader, f Format) (*Tree, error) {
	var t Tree
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&t)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&t)
	case CBOR:
		err = cbor.NewDecoder(r).Decode(&t)
	default:
		return nil, fmt.Errorf("decode: %q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}
	return &t, nil
}

// Compare reports the differences between want and got, one line per
// difference, each prefixed by the path of the node. Positions are not
// compared when ignorePos is set. A nil result means the trees match.
func Compare(want, got *Tree, ignorePos bool) []string {
	var diffs []string
	compare(&diffs, "", want, got, ignorePos)
	return diffs
}

func compare(diffs *[]string, path string, want, got *Tree, ignorePos bool) {
	if want == nil || got == nil {
		if want != got {
			*diffs = append(*diffs, fmt.Sprintf("%s: want %s, got %s", path, describe(want), describe(got)))
		}
		return
	}
	here := path + "/" + want.Kind
	if want.Field != "" {
		here = path + "/" + want.Field + ":" + want.Kind
	}
	if want.Kind != got.Kind {
		*diffs = append(*diffs, fmt.Sprintf("%s: kind %s, got %s", here, want.Kind, got.Kind))
		return
	}
	if want.Field != got.Field {
		*diffs = append(*diffs, fmt.Sprintf("%s: field %q, got %q", here, want.Field, got.Field))
	}
	if !ignorePos && want.Pos != got.Pos {
		*diffs = append(*diffs, fmt.Sprintf("%s: pos %d, got %d", here, want.Pos, got.Pos))
	}
	for _, k := range slices.Sorted(maps.Keys(want.Attrs)) {
		if g, ok := got.Attrs[k]; !ok || g != want.Attrs[k] {
			*diffs = append(*diffs, fmt.Sprintf("%s: %s = %q, got %q", here, k, want.Attrs[k], g))
		}
	}
	for _, k := range slices.Sorted(maps.Keys(got.Attrs)) {
		if _, ok := want.Attrs[k]; !ok {
			*diffs = append(*diffs, fmt.Sprintf("%s: unexpected %s = %q", here, k, got.Attrs[k]))
		}
	}
	if len(want.Children) != len(got.Children) {
		*diffs = append(*diffs, fmt.Sprintf("%s: %d children, got %d", here, len(want.Children), len(got.Children)))
		return
	}
	for i := range want.Children {
		compare(diffs, fmt.Sprintf("%s[%d]", here, i), want.Children[i], got.Children[i], ignorePos)
	}
}

func describe(t *Tree) string {
	if t == nil {
		return "nothing"
	}
	return t.Kind
}

// Count returns the number of nodes in t.
func Count(t *Tree) int {
	if t == nil {
		return 0
	}
	n := 1
	for _, c := range t.Children {
		n += Count(c)
	}
	return n
}
