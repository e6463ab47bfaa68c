package eval

import (
	"testing"

	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalSpecialFormReEvaluatesInCurrentEnv(t *testing.T) {
	ev, e := newTestEvaluator()

	v, err := evalSource(t, ev, e, "(let ((x 2)) (eval (quote (+ x 1))))")
	require.NoError(t, err)
	assert.True(t, forms.Equal(v, forms.NewInt(3)))
}

func TestApplySpreadsArgumentList(t *testing.T) {
	ev, e := newTestEvaluator()

	v, err := evalSource(t, ev, e, "(apply + (list 1 2 3))")
	require.NoError(t, err)
	assert.True(t, forms.Equal(v, forms.NewInt(6)))
}

func TestBeginEvaluatesSequentiallyAndReturnsLast(t *testing.T) {
	ev, e := newTestEvaluator()

	v, err := evalSource(t, ev, e, "(begin (define x 1) (set! x (+ x 1)) x)")
	require.NoError(t, err)
	assert.True(t, forms.Equal(v, forms.NewInt(2)))
}

func TestDefnBindsNamedProcedure(t *testing.T) {
	ev, e := newTestEvaluator()

	v, err := evalSource(t, ev, e, "(defn square (n) (* n n)) (square 5)")
	require.NoError(t, err)
	assert.True(t, forms.Equal(v, forms.NewInt(25)))
}

func TestSetOnUndefinedSymbolErrors(t *testing.T) {
	ev, e := newTestEvaluator()

	_, err := evalSource(t, ev, e, "(set! ghost 1)")
	var unk *rerr.UnknownSymbol
	assert.ErrorAs(t, err, &unk)
}

func TestDefmacroRedefinitionErrors(t *testing.T) {
	ev, e := newTestEvaluator()

	_, err := evalSource(t, ev, e, "(defmacro dup (x) x)")
	require.NoError(t, err)

	_, err = evalSource(t, ev, e, "(defmacro dup (x) x)")
	var redef *rerr.Redefinition
	assert.ErrorAs(t, err, &redef)
}

func TestImportBindsPrefixedNames(t *testing.T) {
	ev, e := newTestEvaluator()

	_, err := evalSource(t, ev, e, `(import "math")`)
	require.NoError(t, err)

	_, err = e.Lookup("math.sqrt")
	require.NoError(t, err)
}

func TestImportFromSelectsUnprefixedSubset(t *testing.T) {
	ev, e := newTestEvaluator()

	_, err := evalSource(t, ev, e, `(import "math" :from (sqrt))`)
	require.NoError(t, err)

	_, err = e.Lookup("sqrt")
	require.NoError(t, err)
}
