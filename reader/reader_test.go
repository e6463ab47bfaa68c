package reader

import (
	"testing"

	"github.com/akashmaji946/goripl/forms"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustRead(t *testing.T, text string) forms.Form {
	t.Helper()
	f, err := Read(text)
	require.NoError(t, err)
	return f
}

// diff compares two forms structurally via forms.Equal, which already
// implements the type-and-contents comparison this package's Form values
// need (it understands Map's unexported index, which a literal go-cmp
// diff cannot see into).
func diff(t *testing.T, got, want forms.Form) {
	t.Helper()
	if !forms.Equal(got, want) {
		t.Fatalf("not structurally equal: got %s, want %s", got, want)
	}
}

// TestReadListElementsMatchGoCmp checks the exported Elements slice produced
// by the reader element by element, diffing each element's printed text
// with go-cmp's cmp.Diff.
func TestReadListElementsMatchGoCmp(t *testing.T) {
	got := mustRead(t, "[1 2 3]").(*forms.Vector).Elements
	want := []forms.Form{forms.NewInt(1), forms.NewInt(2), forms.NewInt(3)}

	less := func(a, b forms.Form) bool { return a.String() < b.String() }
	_ = less
	for i := range got {
		if cmp.Diff(got[i].String(), want[i].String()) != "" {
			t.Fatalf("element %d mismatch: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestReadIntegerBases(t *testing.T) {
	diff(t, mustRead(t, "42"), forms.NewInt(42))
	diff(t, mustRead(t, "-7"), forms.NewInt(-7))
	diff(t, mustRead(t, "0b101"), forms.NewInt(5))
	diff(t, mustRead(t, "0o17"), forms.NewInt(15))
	diff(t, mustRead(t, "0x1F"), forms.NewInt(31))
}

func TestReadFloat(t *testing.T) {
	diff(t, mustRead(t, "3.14"), &forms.Float{Value: 3.14})
}

func TestReadComplex(t *testing.T) {
	diff(t, mustRead(t, "1+2j"), &forms.Complex{Real: 1, Imag: 2})
	diff(t, mustRead(t, "3j"), &forms.Complex{Real: 0, Imag: 3})
}

func TestReadStringAndDocstring(t *testing.T) {
	diff(t, mustRead(t, `"hello\nworld"`), &forms.String{Value: "hello\nworld"})
	diff(t, mustRead(t, `"""a doc"""`), &forms.String{Value: "a doc"})
}

func TestReadSymbolKeywordBool(t *testing.T) {
	diff(t, mustRead(t, "foo"), &forms.Symbol{Name: "foo"})
	diff(t, mustRead(t, ":foo"), &forms.Keyword{Name: "foo"})
	diff(t, mustRead(t, "#t"), forms.True)
	diff(t, mustRead(t, "#f"), forms.False)
}

func TestReadEmptyListAndNone(t *testing.T) {
	diff(t, mustRead(t, "()"), forms.Nil)
	diff(t, mustRead(t, "None"), forms.Nil)
}

func TestReadListNestedAndQuoting(t *testing.T) {
	diff(t, mustRead(t, "(+ 1 2)"), forms.NewList(&forms.Symbol{Name: "+"}, forms.NewInt(1), forms.NewInt(2)))

	diff(t, mustRead(t, "'x"), forms.NewList(&forms.Symbol{Name: "quote"}, &forms.Symbol{Name: "x"}))
	diff(t, mustRead(t, "`x"), forms.NewList(&forms.Symbol{Name: "quasiquote"}, &forms.Symbol{Name: "x"}))
	diff(t, mustRead(t, "~x"), forms.NewList(&forms.Symbol{Name: "unquote"}, &forms.Symbol{Name: "x"}))
	diff(t, mustRead(t, "~@x"), forms.NewList(&forms.Symbol{Name: "unquote-splicing"}, &forms.Symbol{Name: "x"}))
}

func TestReadTuple(t *testing.T) {
	diff(t, mustRead(t, "(, 1 2 3)"), &forms.Tuple{Elements: []forms.Form{forms.NewInt(1), forms.NewInt(2), forms.NewInt(3)}})
	diff(t, mustRead(t, "(,)"), &forms.Tuple{})
}

// TestTupleRoundTrips exercises read(format(read(x))) == x for a Tuple, the
// case the reader's printed form "(, e1 ... en)" must parse back as-is.
func TestTupleRoundTrips(t *testing.T) {
	original := mustRead(t, "(, 1 2 3)")
	again := mustRead(t, original.String())
	diff(t, again, original)
}

func TestReadVector(t *testing.T) {
	diff(t, mustRead(t, "[1 2 3]"), &forms.Vector{Elements: []forms.Form{forms.NewInt(1), forms.NewInt(2), forms.NewInt(3)}})
}

func TestReadMapEvenPairs(t *testing.T) {
	m := mustRead(t, "{:a 1, :b 2}").(*forms.Map)
	v, ok := m.Get(&forms.Keyword{Name: "a"})
	require.True(t, ok)
	require.True(t, forms.Equal(v, forms.NewInt(1)))
}

func TestReadMapOddArityFails(t *testing.T) {
	_, err := Read("{:a}")
	require.Error(t, err)
}

func TestReadAllMultipleTopLevelForms(t *testing.T) {
	fs, err := ReadAll("(define x 10) (define y 20) (+ x y)")
	require.NoError(t, err)
	require.Len(t, fs, 3)
}

func TestReadUnterminatedListFails(t *testing.T) {
	_, err := Read("(+ 1 2")
	require.Error(t, err)
}
