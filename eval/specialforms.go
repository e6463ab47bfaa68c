/*
File    : goripl/eval/specialforms.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/goripl/builtins"
	"github.com/akashmaji946/goripl/env"
	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
)

// specialForm dispatches a list's head Symbol against the fixed set of
// special forms. handled is false when name names neither a special form
// nor (by construction, checked by the caller) a macro, meaning the list
// should be evaluated as an ordinary application.
//
// When handled is true and isTail is true, the trampoline in Eval should
// continue with (nextForm, nextEnv) rather than recursing — this is the
// sole place outside of procedure application where tail position is
// preserved.
func (ev *Evaluator) specialForm(name string, rest []forms.Form, e *env.Env) (handled bool, nextForm forms.Form, nextEnv *env.Env, result forms.Form, err error, isTail bool) {
	switch name {
	case "quote":
		if len(rest) != 1 {
			return true, nil, nil, nil, rerr.NewMalformed("quote", "expected exactly 1 argument, got %d", len(rest)), false
		}
		return true, nil, nil, rest[0], nil, false

	case "quasiquote":
		if len(rest) != 1 {
			return true, nil, nil, nil, rerr.NewMalformed("quasiquote", "expected exactly 1 argument, got %d", len(rest)), false
		}
		v, err := ev.quasiquote(rest[0], e)
		return true, nil, nil, v, err, false

	case "unquote":
		return true, nil, nil, nil, &rerr.UnquoteContext{Form: "unquote"}, false
	case "unquote-splicing":
		return true, nil, nil, nil, &rerr.UnquoteContext{Form: "unquote-splicing"}, false

	case "if":
		return ev.evalIf(rest, e)

	case "and":
		return ev.evalAnd(rest, e)

	case "or":
		return ev.evalOr(rest, e)

	case "cond":
		return ev.evalCond(rest, e)

	case "set!":
		v, err := ev.evalSet(rest, e)
		return true, nil, nil, v, err, false

	case "define":
		v, err := ev.evalDefine(rest, e)
		return true, nil, nil, v, err, false

	case "lambda", "fn", "λ":
		v, err := ev.evalLambda("", rest, e)
		return true, nil, nil, v, err, false

	case "defn":
		v, err := ev.evalDefn(rest, e)
		return true, nil, nil, v, err, false

	case "defmacro":
		v, err := ev.evalDefmacro(rest, e)
		return true, nil, nil, v, err, false

	case "let":
		return ev.evalLet(rest, e)

	case "begin":
		return ev.evalBegin(rest, e)

	case "eval":
		return ev.evalEval(rest, e)

	case "apply":
		return ev.evalApply(rest, e)

	case "import":
		v, err := ev.evalImport(rest, e)
		return true, nil, nil, v, err, false

	default:
		return false, nil, nil, nil, nil, false
	}
}

func (ev *Evaluator) evalIf(rest []forms.Form, e *env.Env) (bool, forms.Form, *env.Env, forms.Form, error, bool) {
	if len(rest) < 2 || len(rest) > 3 {
		return true, nil, nil, nil, rerr.NewMalformed("if", "expected (if cond then [else]), got %d operands", len(rest)), false
	}
	cond, err := ev.Eval(rest[0], e)
	if err != nil {
		return true, nil, nil, nil, err, false
	}
	if forms.Truthy(cond) {
		return true, rest[1], e, nil, nil, true
	}
	if len(rest) == 3 {
		return true, rest[2], e, nil, nil, true
	}
	return true, nil, nil, forms.Nil, nil, false
}

// evalAnd evaluates operands left to right, short-circuiting on the first
// falsy result without evaluating the rest. The last operand is
// tail-rewritten rather than eagerly evaluated, same as evalIf's branches.
func (ev *Evaluator) evalAnd(rest []forms.Form, e *env.Env) (bool, forms.Form, *env.Env, forms.Form, error, bool) {
	if len(rest) == 0 {
		return true, nil, nil, forms.True, nil, false
	}
	for _, f := range rest[:len(rest)-1] {
		v, err := ev.Eval(f, e)
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		if !forms.Truthy(v) {
			return true, nil, nil, v, nil, false
		}
	}
	return true, rest[len(rest)-1], e, nil, nil, true
}

// evalOr evaluates operands left to right, short-circuiting on the first
// truthy result without evaluating the rest.
func (ev *Evaluator) evalOr(rest []forms.Form, e *env.Env) (bool, forms.Form, *env.Env, forms.Form, error, bool) {
	if len(rest) == 0 {
		return true, nil, nil, forms.False, nil, false
	}
	for _, f := range rest[:len(rest)-1] {
		v, err := ev.Eval(f, e)
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		if forms.Truthy(v) {
			return true, nil, nil, v, nil, false
		}
	}
	return true, rest[len(rest)-1], e, nil, nil, true
}

func (ev *Evaluator) evalCond(rest []forms.Form, e *env.Env) (bool, forms.Form, *env.Env, forms.Form, error, bool) {
	for _, branch := range rest {
		elems, ok := forms.Elements(branch)
		if !ok || len(elems) != 2 {
			return true, nil, nil, nil, rerr.NewMalformed("cond", "each branch must be a 2-element list, got %s", branch), false
		}
		test := elems[0]
		if kw, ok := test.(*forms.Keyword); ok && kw.Name == "else" {
			return true, elems[1], e, nil, nil, true
		}
		v, err := ev.Eval(test, e)
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		if forms.Truthy(v) {
			return true, elems[1], e, nil, nil, true
		}
	}
	return true, nil, nil, forms.Nil, nil, false
}

func (ev *Evaluator) evalSet(rest []forms.Form, e *env.Env) (forms.Form, error) {
	if len(rest) != 2 {
		return nil, rerr.NewMalformed("set!", "expected (set! symbol value), got %d operands", len(rest))
	}
	sym, ok := rest[0].(*forms.Symbol)
	if !ok {
		return nil, &rerr.NotASymbol{Got: string(rest[0].Type())}
	}
	v, err := ev.Eval(rest[1], e)
	if err != nil {
		return nil, err
	}
	if err := e.Set(sym.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (ev *Evaluator) evalDefine(rest []forms.Form, e *env.Env) (forms.Form, error) {
	if len(rest) != 2 {
		return nil, rerr.NewMalformed("define", "expected (define symbol value), got %d operands", len(rest))
	}
	sym, ok := rest[0].(*forms.Symbol)
	if !ok {
		return nil, &rerr.NotASymbol{Got: string(rest[0].Type())}
	}
	v, err := ev.Eval(rest[1], e)
	if err != nil {
		return nil, err
	}
	if proc, ok := v.(*forms.Procedure); ok && proc.Name == "" {
		proc.Name = sym.Name
	}
	if err := e.Define(sym.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (ev *Evaluator) evalLambda(name string, rest []forms.Form, e *env.Env) (forms.Form, error) {
	if len(rest) != 2 {
		return nil, rerr.NewMalformed("lambda", "expected (lambda params body), got %d operands", len(rest))
	}
	return buildLambda(name, "", rest[0], rest[1], e)
}

func buildLambda(name, doc string, paramsForm, body forms.Form, e *env.Env) (forms.Form, error) {
	params, variadic, err := parseParams(paramsForm)
	if err != nil {
		return nil, err
	}
	return &forms.Procedure{Name: name, Params: params, Variadic: variadic, Doc: doc, Body: body, Env: e}, nil
}

// parseParams reads a parameter list, recognizing a trailing "&rest name"
// pair as the variadic tail.
func parseParams(paramsForm forms.Form) (params []string, variadic string, err error) {
	elems, ok := forms.Elements(paramsForm)
	if !ok {
		return nil, "", rerr.NewMalformed("lambda", "parameter list must be a list, got %s", paramsForm.Type())
	}
	for i := 0; i < len(elems); i++ {
		sym, ok := elems[i].(*forms.Symbol)
		if !ok {
			return nil, "", &rerr.NotASymbol{Got: string(elems[i].Type())}
		}
		if sym.Name == "&rest" {
			if i+2 != len(elems) {
				return nil, "", rerr.NewMalformed("lambda", "&rest must be followed by exactly one name")
			}
			restSym, ok := elems[i+1].(*forms.Symbol)
			if !ok {
				return nil, "", &rerr.NotASymbol{Got: string(elems[i+1].Type())}
			}
			variadic = restSym.Name
			return params, variadic, nil
		}
		params = append(params, sym.Name)
	}
	return params, "", nil
}

func (ev *Evaluator) evalDefn(rest []forms.Form, e *env.Env) (forms.Form, error) {
	var nameForm, docForm, paramsForm, body forms.Form
	switch len(rest) {
	case 3:
		nameForm, paramsForm, body = rest[0], rest[1], rest[2]
	case 4:
		nameForm, docForm, paramsForm, body = rest[0], rest[1], rest[2], rest[3]
	default:
		return nil, rerr.NewMalformed("defn", "expected (defn name [docstring] params body), got %d operands", len(rest))
	}
	sym, ok := nameForm.(*forms.Symbol)
	if !ok {
		return nil, &rerr.NotASymbol{Got: string(nameForm.Type())}
	}
	doc := ""
	if docForm != nil {
		str, ok := docForm.(*forms.String)
		if !ok {
			return nil, rerr.NewMalformed("defn", "docstring must be a string, got %s", docForm.Type())
		}
		doc = str.Value
	}
	proc, err := buildLambda(sym.Name, doc, paramsForm, body, e)
	if err != nil {
		return nil, err
	}
	if err := e.Define(sym.Name, proc); err != nil {
		return nil, err
	}
	return proc, nil
}

func (ev *Evaluator) evalDefmacro(rest []forms.Form, e *env.Env) (forms.Form, error) {
	if !e.IsGlobal() {
		name := "<anonymous>"
		if len(rest) > 0 {
			if sym, ok := rest[0].(*forms.Symbol); ok {
				name = sym.Name
			}
		}
		return nil, &rerr.MacroNotAtTopLevel{Name: name}
	}
	var nameForm, docForm, paramsForm, body forms.Form
	switch len(rest) {
	case 3:
		nameForm, paramsForm, body = rest[0], rest[1], rest[2]
	case 4:
		nameForm, docForm, paramsForm, body = rest[0], rest[1], rest[2], rest[3]
	default:
		return nil, rerr.NewMalformed("defmacro", "expected (defmacro name [docstring] params body), got %d operands", len(rest))
	}
	sym, ok := nameForm.(*forms.Symbol)
	if !ok {
		return nil, &rerr.NotASymbol{Got: string(nameForm.Type())}
	}
	if _, exists := ev.Macros[sym.Name]; exists {
		return nil, &rerr.Redefinition{Name: sym.Name}
	}
	doc := ""
	if docForm != nil {
		str, ok := docForm.(*forms.String)
		if !ok {
			return nil, rerr.NewMalformed("defmacro", "docstring must be a string, got %s", docForm.Type())
		}
		doc = str.Value
	}
	procForm, err := buildLambda(sym.Name, doc, paramsForm, body, e)
	if err != nil {
		return nil, err
	}
	proc := procForm.(*forms.Procedure)
	ev.Macros[sym.Name] = proc
	return proc, nil
}

func (ev *Evaluator) evalLet(rest []forms.Form, e *env.Env) (bool, forms.Form, *env.Env, forms.Form, error, bool) {
	if len(rest) != 2 {
		return true, nil, nil, nil, rerr.NewMalformed("let", "expected (let bindings body), got %d operands", len(rest)), false
	}
	bindingElems, ok := forms.Elements(rest[0])
	if !ok {
		return true, nil, nil, nil, rerr.NewMalformed("let", "bindings must be a list, got %s", rest[0].Type()), false
	}
	var names []string
	var values []forms.Form
	for _, b := range bindingElems {
		pair, ok := forms.Elements(b)
		if !ok || len(pair) != 2 {
			return true, nil, nil, nil, rerr.NewMalformed("let", "each binding must be a 2-element list, got %s", b), false
		}
		sym, ok := pair[0].(*forms.Symbol)
		if !ok {
			return true, nil, nil, nil, &rerr.NotASymbol{Got: string(pair[0].Type())}, false
		}
		v, err := ev.Eval(pair[1], e)
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		names = append(names, sym.Name)
		values = append(values, v)
	}
	child, err := e.ExtendFrame(names, values)
	if err != nil {
		return true, nil, nil, nil, err, false
	}
	return true, rest[1], child, nil, nil, true
}

func (ev *Evaluator) evalBegin(rest []forms.Form, e *env.Env) (bool, forms.Form, *env.Env, forms.Form, error, bool) {
	if len(rest) == 0 {
		return true, nil, nil, forms.Nil, nil, false
	}
	for _, f := range rest[:len(rest)-1] {
		if _, err := ev.Eval(f, e); err != nil {
			return true, nil, nil, nil, err, false
		}
	}
	return true, rest[len(rest)-1], e, nil, nil, true
}

// evalEval uniformly evaluates its operand to obtain a form, then
// tail-rewrites to re-evaluate that form in the current environment — this
// is the spec's resolution of the open question over the source's
// type-testing eval implementation.
func (ev *Evaluator) evalEval(rest []forms.Form, e *env.Env) (bool, forms.Form, *env.Env, forms.Form, error, bool) {
	if len(rest) != 1 {
		return true, nil, nil, nil, rerr.NewMalformed("eval", "expected exactly 1 argument, got %d", len(rest)), false
	}
	f, err := ev.Eval(rest[0], e)
	if err != nil {
		return true, nil, nil, nil, err, false
	}
	return true, f, e, nil, nil, true
}

// evalApply tail-rewrites into the callee's body (for a Procedure) rather
// than also invoking it directly — the spec's resolution of the open
// question over the source's double-path apply implementation.
func (ev *Evaluator) evalApply(rest []forms.Form, e *env.Env) (bool, forms.Form, *env.Env, forms.Form, error, bool) {
	if len(rest) != 2 {
		return true, nil, nil, nil, rerr.NewMalformed("apply", "expected (apply fn args), got %d operands", len(rest)), false
	}
	fnVal, err := ev.Eval(rest[0], e)
	if err != nil {
		return true, nil, nil, nil, err, false
	}
	argsVal, err := ev.Eval(rest[1], e)
	if err != nil {
		return true, nil, nil, nil, err, false
	}
	argv, ok := forms.Elements(argsVal)
	if !ok {
		return true, nil, nil, nil, rerr.NewTypeError("apply", "second argument must be a sequence, got %s", argsVal.Type()), false
	}

	switch proc := fnVal.(type) {
	case *forms.Procedure:
		childEnv, body, err := ev.bindCall(proc, argv)
		if err != nil {
			return true, nil, nil, nil, err, false
		}
		return true, body, childEnv, nil, nil, true
	case *forms.Builtin:
		v, err := proc.Fn(ev, argv)
		return true, nil, nil, v, err, false
	default:
		return true, nil, nil, nil, rerr.NewTypeError("apply", "%s is not callable", fnVal.Type()), false
	}
}

// evalImport implements the supplemented import special form over the
// builtins package registry. Plain (import "math") binds every member as
// "math.name"; :as renames that prefix; :from selects a subset and binds
// each selected name bare, unprefixed.
func (ev *Evaluator) evalImport(rest []forms.Form, e *env.Env) (forms.Form, error) {
	if len(rest) == 0 {
		return nil, rerr.NewMalformed("import", "expected (import name [:as alias] [:from (names...)])")
	}

	pkgName, err := nameOf(rest[0])
	if err != nil {
		return nil, err
	}
	pkg, ok := builtins.Lookup(pkgName)
	if !ok {
		return nil, rerr.NewEvalError(nil, "no such package: %s", pkgName)
	}

	alias := pkgName
	var subset []string

	for i := 1; i < len(rest); {
		kw, ok := rest[i].(*forms.Keyword)
		if !ok {
			return nil, rerr.NewMalformed("import", "expected a keyword option, got %s", rest[i].Type())
		}
		if i+1 >= len(rest) {
			return nil, rerr.NewMalformed("import", ":%s requires an argument", kw.Name)
		}
		switch kw.Name {
		case "as":
			alias, err = nameOf(rest[i+1])
			if err != nil {
				return nil, err
			}
		case "from":
			elems, ok := forms.Elements(rest[i+1])
			if !ok {
				return nil, rerr.NewMalformed("import", ":from argument must be a list of symbols")
			}
			for _, el := range elems {
				sym, ok := el.(*forms.Symbol)
				if !ok {
					return nil, &rerr.NotASymbol{Got: string(el.Type())}
				}
				subset = append(subset, sym.Name)
			}
		default:
			return nil, rerr.NewMalformed("import", "unknown option :%s", kw.Name)
		}
		i += 2
	}

	if subset != nil {
		for _, n := range subset {
			fn, ok := pkg.Functions[n]
			if !ok {
				return nil, rerr.NewEvalError(nil, "package %s has no member %s", pkgName, n)
			}
			e.DefineForce(n, fn)
		}
		return forms.Nil, nil
	}

	for n, fn := range pkg.Functions {
		e.DefineForce(alias+"."+n, fn)
	}
	return forms.Nil, nil
}

func nameOf(f forms.Form) (string, error) {
	switch v := f.(type) {
	case *forms.String:
		return v.Value, nil
	case *forms.Symbol:
		return v.Name, nil
	default:
		return "", rerr.NewMalformed("import", "expected a string or symbol name, got %s", f.Type())
	}
}
