package repl

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/goripl/builtins"
	"github.com/akashmaji946/goripl/eval"
	"github.com/stretchr/testify/require"
)

// newTestEvaluator builds an Evaluator whose own Global frame carries the
// core builtins. Tests use ev.Global rather than a separately constructed
// env.Env, since macro expansion in eval.go re-evaluates expanded bodies
// in ev.Global specifically.
func newTestEvaluator() *eval.Evaluator {
	ev := eval.New()
	builtins.InstallCore(ev.Global)
	return ev
}

func TestNewReplTagsUniqueSessions(t *testing.T) {
	a := NewRepl("banner", "v1", "author", "----", "MIT", "> ")
	b := NewRepl("banner", "v1", "author", "----", "MIT", "> ")
	require.NotEmpty(t, a.SessionID)
	require.NotEqual(t, a.SessionID, b.SessionID)
}

func TestEvalAndPrintReportsResult(t *testing.T) {
	r := NewRepl("banner", "v1", "author", "----", "MIT", "> ")
	var out bytes.Buffer
	ev := newTestEvaluator()

	r.evalAndPrint(&out, "(+ 1 2)", ev, ev.Global)
	require.Contains(t, out.String(), "3")
}

func TestEvalAndPrintReportsErrorWithoutPanicking(t *testing.T) {
	r := NewRepl("banner", "v1", "author", "----", "MIT", "> ")
	var out bytes.Buffer
	ev := newTestEvaluator()

	r.evalAndPrint(&out, "(undefined-name)", ev, ev.Global)
	require.Contains(t, out.String(), "unknown symbol")
}

func TestEvalAndPrintEvaluatesDefineAcrossCalls(t *testing.T) {
	r := NewRepl("banner", "v1", "author", "----", "MIT", "> ")
	var out bytes.Buffer
	ev := newTestEvaluator()

	r.evalAndPrint(&out, "(define x 10)", ev, ev.Global)
	out.Reset()
	r.evalAndPrint(&out, "(* x 2)", ev, ev.Global)
	require.Contains(t, out.String(), "20")
}
