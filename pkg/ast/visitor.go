package ast

import (
	"fmt"
	"reflect"

	"github.com/chazu/jnova/pkg/immlist"
)

// Visitor is applied to nodes by Accept. Implementations usually switch on
// the concrete node type.
type Visitor interface {
	Visit(n Node)
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(Node)

// Visit calls f(n).
func (f VisitorFunc) Visit(n Node) { f(n) }

// Accept applies v to n. Absent nodes are skipped.
func Accept(n Node, v Visitor) {
	if isNil(n) {
		return
	}
	v.Visit(n)
}

// isNil reports whether n is absent, either a nil interface or a typed nil
// pointer stored in one.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Field is a child node together with the name of the node field that
// holds it. Elements of a list field share the list's name.
type Field struct {
	Name string
	Node Node
}

type fields []Field

func (c *fields) add(name string, n Node) {
	if !isNil(n) {
		*c = append(*c, Field{name, n})
	}
}

func addAll[T Node](c *fields, name string, l *immlist.List[T]) {
	for n := range l.All() {
		c.add(name, n)
	}
}

// Children returns the direct children of n in scanning order. Absent
// optional children are left out. Erroneous nodes report no children.
func Children(n Node) []Node {
	fs := Fields(n)
	out := make([]Node, len(fs))
	for i, f := range fs {
		out[i] = f.Node
	}
	return out
}

// Fields is Children with field names.
func Fields(n Node) []Field {
	var c fields
	switch n := n.(type) {
	case *CompilationUnit:
		addAll(&c, "packageAnnotations", n.packageAnnotations)
		addAll(&c, "definitions", n.definitions)
		c.add("packageID", n.packageID)
	case *Import:
		c.add("qualifier", n.qualifier)
	case *ClassDecl:
		c.add("modifiers", n.modifiers)
		addAll(&c, "typeParameters", n.typeParameters)
		c.add("extending", n.extending)
		addAll(&c, "implementing", n.implementing)
		addAll(&c, "definitions", n.definitions)
	case *MethodDecl:
		c.add("modifiers", n.modifiers)
		c.add("returnType", n.returnType)
		addAll(&c, "typeParameters", n.typeParameters)
		addAll(&c, "parameters", n.parameters)
		addAll(&c, "thrown", n.thrown)
		c.add("defaultValue", n.defaultValue)
		c.add("body", n.body)
	case *VariableDecl:
		c.add("modifiers", n.modifiers)
		c.add("type", n.varType)
		c.add("initializer", n.initializer)
	case *EmptyStatement, *Break, *Continue, *Ident, *Literal, *PrimitiveType, *TypeBoundKind, *Erroneous:
	case *Block:
		addAll(&c, "statements", n.statements)
	case *DoWhileLoop:
		c.add("body", n.body)
		c.add("condition", n.condition)
	case *WhileLoop:
		c.add("condition", n.condition)
		c.add("body", n.body)
	case *ForLoop:
		addAll(&c, "initializers", n.initializers)
		c.add("condition", n.condition)
		addAll(&c, "step", n.step)
		c.add("body", n.body)
	case *ForEachLoop:
		c.add("variable", n.variable)
		c.add("expression", n.expression)
		c.add("body", n.body)
	case *LabeledStatement:
		c.add("body", n.body)
	case *Switch:
		c.add("selector", n.selector)
		addAll(&c, "cases", n.cases)
	case *Case:
		c.add("expression", n.expression)
		addAll(&c, "statements", n.statements)
	case *Synchronized:
		c.add("lock", n.lock)
		c.add("body", n.body)
	case *Try:
		c.add("body", n.body)
		addAll(&c, "catchers", n.catchers)
		c.add("finalizer", n.finalizer)
	case *Catch:
		c.add("parameter", n.parameter)
		c.add("body", n.body)
	case *Conditional:
		c.add("condition", n.condition)
		c.add("truePart", n.truePart)
		c.add("falsePart", n.falsePart)
	case *If:
		c.add("condition", n.condition)
		c.add("thenPart", n.thenPart)
		c.add("elsePart", n.elsePart)
	case *ExpressionStatement:
		c.add("expression", n.expression)
	case *Return:
		c.add("expression", n.expression)
	case *Throw:
		c.add("expression", n.expression)
	case *Assert:
		c.add("condition", n.condition)
		c.add("detail", n.detail)
	case *MethodInvocation:
		c.add("methodSelect", n.methodSelect)
		addAll(&c, "typeArguments", n.typeArguments)
		addAll(&c, "arguments", n.arguments)
	case *NewClass:
		c.add("enclosingExpression", n.enclosingExpression)
		c.add("classIdentifier", n.classIdentifier)
		addAll(&c, "arguments", n.arguments)
		addAll(&c, "typeArguments", n.typeArguments)
		c.add("classBody", n.classBody)
	case *NewArray:
		c.add("elementType", n.elementType)
		addAll(&c, "dimensions", n.dimensions)
		addAll(&c, "initializers", n.initializers)
	case *Parens:
		c.add("expression", n.expression)
	case *Assignment:
		c.add("variable", n.variable)
		c.add("expression", n.expression)
	case *CompoundAssignment:
		c.add("variable", n.variable)
		c.add("expression", n.expression)
	case *Unary:
		c.add("expression", n.expression)
	case *Binary:
		c.add("left", n.left)
		c.add("right", n.right)
	case *TypeCast:
		c.add("type", n.castType)
		c.add("expression", n.expression)
	case *InstanceOf:
		c.add("expression", n.expression)
		c.add("testedClass", n.testedClass)
	case *ArrayAccess:
		c.add("expression", n.expression)
		c.add("index", n.index)
	case *FieldAccess:
		c.add("expression", n.expression)
	case *ArrayType:
		c.add("elementType", n.elementType)
	case *ParameterizedType:
		c.add("parameterizedClass", n.parameterizedClass)
		addAll(&c, "arguments", n.arguments)
	case *TypeParameter:
		addAll(&c, "bounds", n.bounds)
	case *Wildcard:
		c.add("typeBoundKind", n.typeBoundKind)
		c.add("bound", n.bound)
	case *Modifiers:
		addAll(&c, "annotations", n.annotations)
	case *Annotation:
		c.add("annotationType", n.annotationType)
		addAll(&c, "arguments", n.arguments)
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", n))
	}
	return c
}

// Inspect traverses the tree rooted at n depth first, calling f for every
// node. If f returns false the node's children are skipped.
func Inspect(n Node, f func(Node) bool) {
	if isNil(n) || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// Scanner is the scanning traversal. Visit descends into the children of
// the node it is given; Scan does the same for the node itself, calling
// Enter before and Leave after. Both hooks are optional. An Enter that
// returns false prunes the node's subtree, and Leave is not called for it.
type Scanner struct {
	Enter func(Node) bool
	Leave func(Node)
}

// Scan scans n and its subtree.
func (s *Scanner) Scan(n Node) {
	if isNil(n) {
		return
	}
	if s.Enter != nil && !s.Enter(n) {
		return
	}
	s.Visit(n)
	if s.Leave != nil {
		s.Leave(n)
	}
}

// Visit scans every child of n, but not n itself.
func (s *Scanner) Visit(n Node) {
	for _, c := range Children(n) {
		s.Scan(c)
	}
}

// Delegate forwards every node to Target, except for kinds that have a
// hook. A hook receives the node and Target, and decides itself whether
// to pass the node on.
type Delegate struct {
	Target Visitor
	Hooks  map[Kind]func(n Node, target Visitor)
}

// Visit runs the hook for the kind of n, or forwards n to Target.
func (d *Delegate) Visit(n Node) {
	if h, ok := d.Hooks[n.Kind()]; ok {
		h(n, d.Target)
		return
	}
	if d.Target != nil {
		d.Target.Visit(n)
	}
}

// Handlers is a visitor that dispatches on node kind. Kinds without a
// handler go to Default, or are ignored when Default is nil.
type Handlers struct {
	ByKind  map[Kind]func(Node)
	Default func(Node)
}

// Visit calls the handler for the kind of n.
func (h *Handlers) Visit(n Node) {
	if f, ok := h.ByKind[n.Kind()]; ok {
		f(n)
		return
	}
	if h.Default != nil {
		h.Default(n)
	}
}
