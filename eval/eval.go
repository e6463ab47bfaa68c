/*
File    : goripl/eval/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the trampoline evaluator: special-form dispatch,
// the macro table, quasiquote expansion, and procedure application. It
// follows the tail-rewrite loop of the original Evaluator.eval (eval.py)
// instead of recursing through Go's call stack, so tail-recursive RIPL
// programs run in constant host-stack space.
package eval

import (
	"io"
	"log"
	"os"

	"github.com/akashmaji946/goripl/env"
	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
)

// Evaluator owns the global environment, the macro table (disjoint from
// the value environment, per the language's macro invariant), and the
// output stream builtins print to.
type Evaluator struct {
	Global *env.Env
	Macros map[string]*forms.Procedure
	writer io.Writer

	Trace  bool
	Logger *log.Logger
}

// New constructs an Evaluator with an empty global environment. Builtins
// are installed separately by the builtins package via Global.DefineForce.
func New() *Evaluator {
	return &Evaluator{
		Global: env.NewGlobal(),
		Macros: make(map[string]*forms.Procedure),
		writer: os.Stdout,
		Logger: log.New(os.Stderr, "goripl: ", 0),
	}
}

// SetWriter directs print-family builtin output to w.
func (ev *Evaluator) SetWriter(w io.Writer) { ev.writer = w }

// Writer implements forms.Runtime.
func (ev *Evaluator) Writer() io.Writer { return ev.writer }

// Call implements forms.Runtime: invoke a Procedure or Builtin value with
// already-evaluated arguments. Used by higher-order builtins (curry).
func (ev *Evaluator) Call(proc forms.Form, args []forms.Form) (forms.Form, error) {
	return ev.apply(proc, args)
}

func (ev *Evaluator) trace(format string, a ...interface{}) {
	if ev.Trace {
		ev.Logger.Printf(format, a...)
	}
}

// Eval evaluates form in e, dispatching special forms and trampolining
// through tail positions: if/cond branches, let/begin/eval's final
// expression, and the body of a Procedure call all rewrite (form, env) in
// place rather than recursing.
func (ev *Evaluator) Eval(form forms.Form, e *env.Env) (forms.Form, error) {
	for {
		ev.trace("eval %s", form)
		switch f := form.(type) {
		case *forms.Symbol:
			return e.Lookup(f.Name)

		case *forms.Integer, *forms.Float, *forms.Complex, *forms.Bool,
			*forms.String, *forms.Keyword, *forms.Map, *forms.Procedure,
			*forms.Builtin, *forms.Null, *forms.Vector, *forms.Tuple:
			return form, nil

		case *forms.List:
			if len(f.Elements) == 0 {
				return forms.Nil, nil
			}

			if sym, ok := f.Head().(*forms.Symbol); ok {
				if macro, ok := ev.Macros[sym.Name]; ok {
					ev.trace("expanding macro %s", sym.Name)
					expanded, err := ev.applyProcedure(macro, f.Elements[1:])
					if err != nil {
						return nil, err
					}
					form = expanded
					e = ev.Global
					continue
				}

				if handled, nextForm, nextEnv, result, err, isTail := ev.specialForm(sym.Name, f.Elements[1:], e); handled {
					if err != nil {
						return nil, err
					}
					if isTail {
						form, e = nextForm, nextEnv
						continue
					}
					return result, nil
				}
			}

			// Application: evaluate head and args left-to-right.
			headVal, err := ev.Eval(f.Head(), e)
			if err != nil {
				return nil, err
			}
			argv := make([]forms.Form, len(f.Elements)-1)
			for i, a := range f.Elements[1:] {
				v, err := ev.Eval(a, e)
				if err != nil {
					return nil, err
				}
				argv[i] = v
			}

			switch proc := headVal.(type) {
			case *forms.Procedure:
				childEnv, body, err := ev.bindCall(proc, argv)
				if err != nil {
					return nil, err
				}
				form, e = body, childEnv
				continue
			case *forms.Builtin:
				return proc.Fn(ev, argv)
			default:
				return nil, rerr.NewTypeError("apply", "%s is not callable", headVal.Type())
			}

		default:
			return form, nil
		}
	}
}

// apply is the non-tail-rewriting entry point used by Runtime.Call (for
// curry and other higher-order builtins) where a full Go-recursive Eval of
// the body is acceptable because the caller isn't in tail position anyway.
func (ev *Evaluator) apply(proc forms.Form, argv []forms.Form) (forms.Form, error) {
	switch p := proc.(type) {
	case *forms.Procedure:
		childEnv, body, err := ev.bindCall(p, argv)
		if err != nil {
			return nil, err
		}
		return ev.Eval(body, childEnv)
	case *forms.Builtin:
		return p.Fn(ev, argv)
	default:
		return nil, rerr.NewTypeError("apply", "%s is not callable", proc.Type())
	}
}

// bindCall zips a Procedure's parameters against evaluated arguments,
// producing the child environment and body form the trampoline should
// continue with. Handles a trailing variadic parameter if the Procedure
// declares one.
func (ev *Evaluator) bindCall(proc *forms.Procedure, argv []forms.Form) (*env.Env, forms.Form, error) {
	capturedEnv, ok := proc.Env.(*env.Env)
	if !ok {
		return nil, nil, rerr.NewEvalError(nil, "procedure %s has no captured environment", proc.Name)
	}

	if proc.Variadic == "" {
		if len(argv) != len(proc.Params) {
			return nil, nil, &rerr.ArityError{Callee: calleeName(proc), Want: itoa(len(proc.Params)), Got: len(argv)}
		}
		child, err := capturedEnv.ExtendFrame(proc.Params, argv)
		if err != nil {
			return nil, nil, err
		}
		return child, proc.Body, nil
	}

	if len(argv) < len(proc.Params) {
		return nil, nil, &rerr.ArityError{Callee: calleeName(proc), Want: "at least " + itoa(len(proc.Params)), Got: len(argv)}
	}
	names := append(append([]string{}, proc.Params...), proc.Variadic)
	rest := forms.NewList(argv[len(proc.Params):]...)
	values := append(append([]forms.Form{}, argv[:len(proc.Params)]...), rest)
	child, err := capturedEnv.ExtendFrame(names, values)
	if err != nil {
		return nil, nil, err
	}
	return child, proc.Body, nil
}

func calleeName(p *forms.Procedure) string {
	if p.Name == "" {
		return "<anonymous procedure>"
	}
	return p.Name
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// applyProcedure is the non-trampolining helper used by macro expansion:
// the macro body is evaluated with full Go recursion because its result
// is then handed back to the trampoline loop as the new form to evaluate,
// not executed itself.
func (ev *Evaluator) applyProcedure(proc *forms.Procedure, rawArgs []forms.Form) (forms.Form, error) {
	childEnv, body, err := ev.bindCall(proc, rawArgs)
	if err != nil {
		return nil, err
	}
	return ev.Eval(body, childEnv)
}
