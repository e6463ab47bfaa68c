/*
File    : goripl/forms/forms.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package forms defines the tagged value tree the reader produces and the
// evaluator consumes: integers, floats, complex numbers, booleans, strings,
// symbols, keywords, the empty list, lists, vectors, maps, tuples, and the
// two callable shapes (user Procedures and host Builtins).
package forms

import (
	"fmt"
	"io"
	"math/big"
	"strings"
)

// FormType names a concrete Form variant for type checks and error messages.
type FormType string

const (
	IntegerType   FormType = "integer"
	FloatType     FormType = "float"
	ComplexType   FormType = "complex"
	BoolType      FormType = "bool"
	StringType    FormType = "string"
	SymbolType    FormType = "symbol"
	KeywordType   FormType = "keyword"
	NullType      FormType = "null"
	ListType      FormType = "list"
	VectorType    FormType = "vector"
	MapType       FormType = "map"
	TupleType     FormType = "tuple"
	ProcedureType FormType = "procedure"
	BuiltinType   FormType = "builtin"
)

// Form is the universal data type of the language: anything the reader can
// produce or the evaluator can consume.
type Form interface {
	Type() FormType
	String() string
}

// Integer is an arbitrary-width signed integer, accepted in base 2/8/10/16.
type Integer struct{ Value *big.Int }

func NewInt(v int64) *Integer { return &Integer{Value: big.NewInt(v)} }

func (i *Integer) Type() FormType { return IntegerType }
func (i *Integer) String() string { return i.Value.String() }

// Float is an IEEE-754 double.
type Float struct{ Value float64 }

func (f *Float) Type() FormType { return FloatType }
func (f *Float) String() string { return strconvFloat(f.Value) }

func strconvFloat(v float64) string {
	s := fmt.Sprintf("%g", v)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Complex is a flat (real, imag) pair, printed "a+bj" or "bj" when real is zero.
type Complex struct {
	Real, Imag float64
}

func (c *Complex) Type() FormType { return ComplexType }
func (c *Complex) String() string {
	if c.Real == 0 {
		return fmt.Sprintf("%gj", c.Imag)
	}
	if c.Imag < 0 {
		return fmt.Sprintf("%g%gj", c.Real, c.Imag)
	}
	return fmt.Sprintf("%g+%gj", c.Real, c.Imag)
}

// Bool is a boolean, printed #t / #f.
type Bool struct{ Value bool }

var (
	True  = &Bool{Value: true}
	False = &Bool{Value: false}
)

func MakeBool(v bool) *Bool {
	if v {
		return True
	}
	return False
}

func (b *Bool) Type() FormType { return BoolType }
func (b *Bool) String() string {
	if b.Value {
		return "#t"
	}
	return "#f"
}

// Truthy reports whether a form is a truthy value: everything except #f.
// The empty list is deliberately truthy (distinct from Scheme's nil-as-false);
// only explicit #f is false.
func Truthy(f Form) bool {
	if b, ok := f.(*Bool); ok {
		return b.Value
	}
	return true
}

// String is text. String() returns the text bare, without surrounding
// quotes or escapes, so a printed String does not read back as a String.
type String struct{ Value string }

func (s *String) Type() FormType { return StringType }
func (s *String) String() string { return s.Value }

// Symbol is a text identifier, compared by text; never equal to a String or
// Keyword of the same text.
type Symbol struct{ Name string }

func (s *Symbol) Type() FormType { return SymbolType }
func (s *Symbol) String() string { return s.Name }

// Keyword is a self-evaluating text identifier, printed with a leading ':'.
type Keyword struct{ Name string }

func (k *Keyword) Type() FormType { return KeywordType }
func (k *Keyword) String() string { return ":" + k.Name }

// Null is the empty list / nil singleton; both "()" and the bare token
// "None" read as this value.
type Null struct{}

var Nil = &Null{}

func (n *Null) Type() FormType { return NullType }
func (n *Null) String() string { return "()" }

// List is the canonical ordered compound form, printed "(e1 e2 ... en)".
type List struct{ Elements []Form }

func NewList(elements ...Form) Form {
	if len(elements) == 0 {
		return Nil
	}
	return &List{Elements: elements}
}

func (l *List) Type() FormType { return ListType }
func (l *List) String() string { return "(" + joinForms(l.Elements, " ") + ")" }

// Head returns the first element (car). Caller must ensure the list is non-empty.
func (l *List) Head() Form { return l.Elements[0] }

// Tail returns a Form for all but the first element (cdr).
func (l *List) Tail() Form { return NewList(l.Elements[1:]...) }

// Vector is an ordered sequence distinct from List only in how it prints
// and in the type tag; sequence builtins treat it like a List.
type Vector struct{ Elements []Form }

func (v *Vector) Type() FormType { return VectorType }
func (v *Vector) String() string { return "[" + joinForms(v.Elements, " ") + "]" }

// MapEntry is one key/value pair of a Map, kept alongside the lookup index
// so that insertion order is preserved for printing.
type MapEntry struct {
	Key   Form
	Value Form
}

// Map is a mapping from form to form with unique keys, printed
// "{k1 v1, k2 v2, ...}". Keys are compared by HashKey: the key's type tag
// plus its printed text.
type Map struct {
	entries []MapEntry
	index   map[string]int
}

func NewMap() *Map {
	return &Map{index: make(map[string]int)}
}

func (m *Map) Type() FormType { return MapType }

func (m *Map) String() string {
	parts := make([]string, len(m.entries))
	for i, e := range m.entries {
		parts[i] = e.Key.String() + " " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Set inserts or overwrites the binding for key.
func (m *Map) Set(key, value Form) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	k := HashKey(key)
	if i, ok := m.index[k]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[k] = len(m.entries)
	m.entries = append(m.entries, MapEntry{Key: key, Value: value})
}

// Get looks up a key, reporting whether it was present.
func (m *Map) Get(key Form) (Form, bool) {
	if m.index == nil {
		return nil, false
	}
	i, ok := m.index[HashKey(key)]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Delete removes a key if present, reporting whether it was.
func (m *Map) Delete(key Form) bool {
	if m.index == nil {
		return false
	}
	i, ok := m.index[HashKey(key)]
	if !ok {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, HashKey(key))
	for k, idx := range m.index {
		if idx > i {
			m.index[k] = idx - 1
		}
	}
	return true
}

// Entries returns the map's entries in insertion order.
func (m *Map) Entries() []MapEntry { return m.entries }

func (m *Map) Len() int { return len(m.entries) }

// HashKey produces a textual key for use as a Map index. Symbol, String and
// Keyword of the same text map to distinct keys because the tag is included.
func HashKey(f Form) string {
	return string(f.Type()) + ":" + f.String()
}

// Tuple is an immutable ordered sequence, printed "(, e1 ... en)".
type Tuple struct{ Elements []Form }

func (t *Tuple) Type() FormType { return TupleType }
func (t *Tuple) String() string {
	if len(t.Elements) == 0 {
		return "(,)"
	}
	return "(, " + joinForms(t.Elements, " ") + ")"
}

// Procedure is a user-defined closure: a parameter list, an optional
// docstring, a body form, and the environment captured at definition time.
//
// Env is typed as interface{} (rather than *env.Env) so that this package,
// which env imports, never needs to import env back — the eval package is
// the only place that type-asserts it back to *env.Env.
type Procedure struct {
	Name     string // empty for anonymous lambdas
	Params   []string
	Variadic string // name of the rest parameter, or "" if not variadic
	Doc      string
	Body     Form
	Env      interface{}
}

func (p *Procedure) Type() FormType { return ProcedureType }

func (p *Procedure) String() string {
	if p.Doc != "" {
		return "Procedure: " + p.Doc
	}
	return "Anonymous Procedure (λ)"
}

// Runtime is the narrow callback surface a Builtin needs into the
// evaluator: calling a procedure value (for higher-order builtins like
// curry) and the REPL/CLI's output writer (for print-family builtins and
// the dump builtin's spew.Sdump output).
type Runtime interface {
	Call(proc Form, args []Form) (Form, error)
	Writer() io.Writer
}

// Builtin is an opaque host-provided callable.
type Builtin struct {
	Name string
	Fn   func(rt Runtime, args []Form) (Form, error)
}

func (b *Builtin) Type() FormType { return BuiltinType }
func (b *Builtin) String() string { return "Procedure: builtin " + b.Name }

func joinForms(fs []Form, sep string) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return strings.Join(parts, sep)
}

// Elements returns the ordered elements of any sequence-like form (List,
// Vector, Tuple, or the empty Null), or false if f is not sequence-like.
func Elements(f Form) ([]Form, bool) {
	switch v := f.(type) {
	case *Null:
		return nil, true
	case *List:
		return v.Elements, true
	case *Vector:
		return v.Elements, true
	case *Tuple:
		return v.Elements, true
	default:
		return nil, false
	}
}

// Equal reports structural equality: same type and, recursively, same
// contents. Two Procedures or Builtins are equal only by identity.
func Equal(a, b Form) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case *Integer:
		return x.Value.Cmp(b.(*Integer).Value) == 0
	case *Float:
		return x.Value == b.(*Float).Value
	case *Complex:
		y := b.(*Complex)
		return x.Real == y.Real && x.Imag == y.Imag
	case *Bool:
		return x.Value == b.(*Bool).Value
	case *String:
		return x.Value == b.(*String).Value
	case *Symbol:
		return x.Name == b.(*Symbol).Name
	case *Keyword:
		return x.Name == b.(*Keyword).Name
	case *Null:
		return true
	case *List:
		return equalSeq(x.Elements, b.(*List).Elements)
	case *Vector:
		return equalSeq(x.Elements, b.(*Vector).Elements)
	case *Tuple:
		return equalSeq(x.Elements, b.(*Tuple).Elements)
	case *Map:
		y := b.(*Map)
		if x.Len() != y.Len() {
			return false
		}
		for _, e := range x.entries {
			v, ok := y.Get(e.Key)
			if !ok || !Equal(e.Value, v) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func equalSeq(a, b []Form) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
