package builtins

import (
	"bytes"
	"io"
	"testing"

	"github.com/akashmaji946/goripl/forms"
	"github.com/stretchr/testify/require"
)

type fakeRuntime struct {
	buf bytes.Buffer
}

func (f *fakeRuntime) Call(proc forms.Form, args []forms.Form) (forms.Form, error) {
	fn, ok := proc.(*forms.Builtin)
	if !ok {
		return nil, nil
	}
	return fn.Fn(f, args)
}
func (f *fakeRuntime) Writer() io.Writer { return &f.buf }

func lookup(t *testing.T, name string) *forms.Builtin {
	t.Helper()
	for _, fn := range coreFns {
		if fn.Name == name {
			return fn
		}
	}
	t.Fatalf("no core builtin named %s", name)
	return nil
}

func TestArithmeticVariadic(t *testing.T) {
	rt := &fakeRuntime{}
	v, err := lookup(t, "+").Fn(rt, []forms.Form{forms.NewInt(1), forms.NewInt(2), forms.NewInt(3)})
	require.NoError(t, err)
	require.True(t, forms.Equal(v, forms.NewInt(6)))
}

func TestDivisionExactIntegerSucceeds(t *testing.T) {
	rt := &fakeRuntime{}
	v, err := lookup(t, "/").Fn(rt, []forms.Form{forms.NewInt(10), forms.NewInt(2)})
	require.NoError(t, err)
	require.True(t, forms.Equal(v, forms.NewInt(5)))
}

func TestDivisionInexactIntegerErrors(t *testing.T) {
	rt := &fakeRuntime{}
	_, err := lookup(t, "/").Fn(rt, []forms.Form{forms.NewInt(7), forms.NewInt(2)})
	require.Error(t, err)
}

func TestDivisionWithFloatProducesFloat(t *testing.T) {
	rt := &fakeRuntime{}
	v, err := lookup(t, "/").Fn(rt, []forms.Form{forms.NewInt(7), &forms.Float{Value: 2}})
	require.NoError(t, err)
	require.Equal(t, forms.FloatType, v.Type())
}

func TestComparisonChain(t *testing.T) {
	rt := &fakeRuntime{}
	v, err := lookup(t, "<").Fn(rt, []forms.Form{forms.NewInt(1), forms.NewInt(2), forms.NewInt(3)})
	require.NoError(t, err)
	require.Equal(t, forms.True, v)

	v, err = lookup(t, "<").Fn(rt, []forms.Form{forms.NewInt(1), forms.NewInt(3), forms.NewInt(2)})
	require.NoError(t, err)
	require.Equal(t, forms.False, v)
}

func TestEqVsEqualDistinguishesIdentityFromStructure(t *testing.T) {
	rt := &fakeRuntime{}
	a := forms.NewList(forms.NewInt(1), forms.NewInt(2))
	bv := forms.NewList(forms.NewInt(1), forms.NewInt(2))

	v, err := lookup(t, "eq?").Fn(rt, []forms.Form{a, bv})
	require.NoError(t, err)
	require.Equal(t, forms.False, v)

	v, err = lookup(t, "equal?").Fn(rt, []forms.Form{a, bv})
	require.NoError(t, err)
	require.Equal(t, forms.True, v)
}

func TestConsCarCdr(t *testing.T) {
	rt := &fakeRuntime{}
	lst, err := lookup(t, "cons").Fn(rt, []forms.Form{forms.NewInt(1), forms.NewList(forms.NewInt(2), forms.NewInt(3))})
	require.NoError(t, err)

	head, err := lookup(t, "car").Fn(rt, []forms.Form{lst})
	require.NoError(t, err)
	require.True(t, forms.Equal(head, forms.NewInt(1)))

	tail, err := lookup(t, "cdr").Fn(rt, []forms.Form{lst})
	require.NoError(t, err)
	require.True(t, forms.Equal(tail, forms.NewList(forms.NewInt(2), forms.NewInt(3))))
}

func TestNotEqualComparison(t *testing.T) {
	rt := &fakeRuntime{}
	v, err := lookup(t, "!=").Fn(rt, []forms.Form{forms.NewInt(1), forms.NewInt(2)})
	require.NoError(t, err)
	require.Equal(t, forms.True, v)

	v, err = lookup(t, "!=").Fn(rt, []forms.Form{forms.NewInt(1), forms.NewInt(1)})
	require.NoError(t, err)
	require.Equal(t, forms.False, v)
}

func TestSpecNamedAliasesForModCallableLen(t *testing.T) {
	rt := &fakeRuntime{}

	v, err := lookup(t, "%").Fn(rt, []forms.Form{forms.NewInt(7), forms.NewInt(2)})
	require.NoError(t, err)
	require.True(t, forms.Equal(v, forms.NewInt(1)))

	v, err = lookup(t, "callable?").Fn(rt, []forms.Form{lookup(t, "+")})
	require.NoError(t, err)
	require.Equal(t, forms.True, v)

	v, err = lookup(t, "len").Fn(rt, []forms.Form{forms.NewList(forms.NewInt(1), forms.NewInt(2))})
	require.NoError(t, err)
	require.True(t, forms.Equal(v, forms.NewInt(2)))
}

func TestNumberPredicateCoversAllNumericTypes(t *testing.T) {
	rt := &fakeRuntime{}
	for _, v := range []forms.Form{forms.NewInt(1), &forms.Float{Value: 1}, &forms.Complex{Real: 1}} {
		got, err := lookup(t, "number?").Fn(rt, []forms.Form{v})
		require.NoError(t, err)
		require.Equal(t, forms.True, got)
	}
	got, err := lookup(t, "number?").Fn(rt, []forms.Form{&forms.String{Value: "x"}})
	require.NoError(t, err)
	require.Equal(t, forms.False, got)
}

func TestTypeConstructors(t *testing.T) {
	rt := &fakeRuntime{}

	s, err := lookup(t, "str").Fn(rt, []forms.Form{forms.NewInt(42)})
	require.NoError(t, err)
	require.True(t, forms.Equal(s, &forms.String{Value: "42"}))

	i, err := lookup(t, "int").Fn(rt, []forms.Form{&forms.Float{Value: 3.9}})
	require.NoError(t, err)
	require.True(t, forms.Equal(i, forms.NewInt(3)))

	f, err := lookup(t, "float").Fn(rt, []forms.Form{forms.NewInt(2)})
	require.NoError(t, err)
	require.True(t, forms.Equal(f, &forms.Float{Value: 2}))

	c, err := lookup(t, "complex").Fn(rt, []forms.Form{forms.NewInt(1), forms.NewInt(2)})
	require.NoError(t, err)
	require.True(t, forms.Equal(c, &forms.Complex{Real: 1, Imag: 2}))

	d, err := lookup(t, "dict").Fn(rt, []forms.Form{&forms.Keyword{Name: "a"}, forms.NewInt(1)})
	require.NoError(t, err)
	m, ok := d.(*forms.Map)
	require.True(t, ok)
	got, ok := m.Get(&forms.Keyword{Name: "a"})
	require.True(t, ok)
	require.True(t, forms.Equal(got, forms.NewInt(1)))
}

func TestReadBuiltinWrapsReaderRead(t *testing.T) {
	rt := &fakeRuntime{}
	v, err := lookup(t, "read").Fn(rt, []forms.Form{&forms.String{Value: "(+ 1 2)"}})
	require.NoError(t, err)
	require.True(t, forms.Equal(v, forms.NewList(&forms.Symbol{Name: "+"}, forms.NewInt(1), forms.NewInt(2))))
}

func TestMapFilterReduce(t *testing.T) {
	rt := &fakeRuntime{}
	double := &forms.Builtin{Name: "double", Fn: func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		return addTwo(args[0], args[0])
	}}
	v, err := lookup(t, "map").Fn(rt, []forms.Form{double, forms.NewList(forms.NewInt(1), forms.NewInt(2), forms.NewInt(3))})
	require.NoError(t, err)
	require.True(t, forms.Equal(v, forms.NewList(forms.NewInt(2), forms.NewInt(4), forms.NewInt(6))))

	nums, err := lookup(t, "filter").Fn(rt, []forms.Form{lookup(t, "number?"), forms.NewList(forms.NewInt(1), &forms.String{Value: "x"}, forms.NewInt(2))})
	require.NoError(t, err)
	require.True(t, forms.Equal(nums, forms.NewList(forms.NewInt(1), forms.NewInt(2))))

	sum, err := lookup(t, "reduce").Fn(rt, []forms.Form{
		&forms.Builtin{Name: "+", Fn: lookup(t, "+").Fn},
		forms.NewInt(0),
		forms.NewList(forms.NewInt(1), forms.NewInt(2), forms.NewInt(3)),
	})
	require.NoError(t, err)
	require.True(t, forms.Equal(sum, forms.NewInt(6)))
}
