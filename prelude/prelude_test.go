package prelude

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akashmaji946/goripl/builtins"
	"github.com/akashmaji946/goripl/eval"
	"github.com/akashmaji946/goripl/forms"
	"github.com/stretchr/testify/require"
)

func TestSlurpRejectsNonRplSuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "core.lisp")
	require.NoError(t, os.WriteFile(path, []byte("(define x 1)"), 0o644))

	ev := eval.New()
	e := ev.Global
	err := Slurp(ev, e, path)
	require.Error(t, err)
	require.ErrorContains(t, err, ".rpl")
}

func TestSlurpEvaluatesFormsInOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "core.rpl")
	src := "(define a 1)\n(define b (+ a 1))\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	ev := eval.New()
	e := ev.Global
	builtins.InstallCore(e)
	require.NoError(t, Slurp(ev, e, path))

	v, err := e.Lookup("b")
	require.NoError(t, err)
	require.True(t, forms.Equal(v, forms.NewInt(2)))
}

func TestLoadAppliesOrderManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_second.rpl"), []byte("(define total (+ seed 1))"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b_first.rpl"), []byte("(define seed 10)"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, orderFile), []byte("- b_first.rpl\n- a_second.rpl\n"), 0o644))

	ev := eval.New()
	e := ev.Global
	builtins.InstallCore(e)
	require.NoError(t, Load(ev, e, dir, ""))

	v, err := e.Lookup("total")
	require.NoError(t, err)
	require.True(t, forms.Equal(v, forms.NewInt(11)))
}

func TestLoadWithoutOrderManifestUsesLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.rpl"), []byte("(define x 1)"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.rpl"), []byte("(define y (+ x 1))"), 0o644))

	ev := eval.New()
	e := ev.Global
	builtins.InstallCore(e)
	require.NoError(t, Load(ev, e, dir, ""))

	v, err := e.Lookup("y")
	require.NoError(t, err)
	require.True(t, forms.Equal(v, forms.NewInt(2)))
}
