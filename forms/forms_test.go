package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegerString(t *testing.T) {
	assert.Equal(t, "42", NewInt(42).String())
	assert.Equal(t, "-7", NewInt(-7).String())
}

func TestFloatString(t *testing.T) {
	assert.Equal(t, "3.14", (&Float{Value: 3.14}).String())
	assert.Equal(t, "2.0", (&Float{Value: 2}).String())
}

func TestBoolPrinting(t *testing.T) {
	assert.Equal(t, "#t", True.String())
	assert.Equal(t, "#f", False.String())
	assert.True(t, Truthy(True))
	assert.False(t, Truthy(False))
	assert.True(t, Truthy(Nil), "empty list is truthy, unlike Scheme's nil")
}

func TestSymbolKeywordStringDistinctTypes(t *testing.T) {
	sym := &Symbol{Name: "x"}
	kw := &Keyword{Name: "x"}
	str := &String{Value: "x"}

	assert.NotEqual(t, sym.Type(), kw.Type())
	assert.NotEqual(t, sym.Type(), str.Type())
	assert.False(t, Equal(sym, kw))
	assert.False(t, Equal(sym, str))
	assert.Equal(t, ":x", kw.String())
	assert.Equal(t, "x", sym.String())
}

func TestListVectorTuplePrinting(t *testing.T) {
	l := NewList(NewInt(1), NewInt(2), NewInt(3))
	assert.Equal(t, "(1 2 3)", l.String())

	v := &Vector{Elements: []Form{NewInt(1), NewInt(2)}}
	assert.Equal(t, "[1 2]", v.String())

	tup := &Tuple{Elements: []Form{NewInt(1), &String{Value: "a"}}}
	assert.Equal(t, "(, 1 a)", tup.String())

	assert.Equal(t, Nil, NewList())
}

func TestMapOrderedPrinting(t *testing.T) {
	m := NewMap()
	m.Set(&Keyword{Name: "a"}, NewInt(1))
	m.Set(&Keyword{Name: "b"}, NewInt(2))
	assert.Equal(t, "{:a 1, :b 2}", m.String())

	v, ok := m.Get(&Keyword{Name: "a"})
	assert.True(t, ok)
	assert.True(t, Equal(v, NewInt(1)))

	assert.True(t, m.Delete(&Keyword{Name: "a"}))
	assert.Equal(t, 1, m.Len())
}

func TestEqualStructural(t *testing.T) {
	a := NewList(NewInt(1), &Vector{Elements: []Form{NewInt(2)}})
	b := NewList(NewInt(1), &Vector{Elements: []Form{NewInt(2)}})
	assert.True(t, Equal(a, b))

	c := NewList(NewInt(1), &Vector{Elements: []Form{NewInt(3)}})
	assert.False(t, Equal(a, c))
}

func TestProcedurePrinting(t *testing.T) {
	withDoc := &Procedure{Doc: "squares a number"}
	assert.Equal(t, "Procedure: squares a number", withDoc.String())

	anon := &Procedure{}
	assert.Equal(t, "Anonymous Procedure (λ)", anon.String())
}
