/*
File    : goripl/builtins/core.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/akashmaji946/goripl/env"
	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/reader"
	"github.com/akashmaji946/goripl/rerr"
)

func b(name string, fn func(rt forms.Runtime, args []forms.Form) (forms.Form, error)) *forms.Builtin {
	return &forms.Builtin{Name: name, Fn: fn}
}

func arityCheck(name string, args []forms.Form, want int) error {
	if len(args) != want {
		return &rerr.ArityError{Callee: name, Want: fmt.Sprintf("%d", want), Got: len(args)}
	}
	return nil
}

var coreFns = []*forms.Builtin{
	b("+", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		acc := forms.Form(forms.NewInt(0))
		for _, a := range args {
			if !isNumber(a) {
				return nil, rerr.NewTypeError("+", "argument must be a number, got %s", a.Type())
			}
			var err error
			acc, err = addTwo(acc, a)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	}),
	b("-", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if len(args) == 0 {
			return nil, &rerr.ArityError{Callee: "-", Want: "at least 1", Got: 0}
		}
		if len(args) == 1 {
			return subTwo(forms.NewInt(0), args[0])
		}
		acc := args[0]
		var err error
		for _, a := range args[1:] {
			acc, err = subTwo(acc, a)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	}),
	b("*", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		acc := forms.Form(forms.NewInt(1))
		for _, a := range args {
			if !isNumber(a) {
				return nil, rerr.NewTypeError("*", "argument must be a number, got %s", a.Type())
			}
			var err error
			acc, err = mulTwo(acc, a)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	}),
	b("/", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if len(args) < 1 {
			return nil, &rerr.ArityError{Callee: "/", Want: "at least 1", Got: 0}
		}
		if len(args) == 1 {
			return divTwo(forms.NewInt(1), args[0])
		}
		acc := args[0]
		var err error
		for _, a := range args[1:] {
			acc, err = divTwo(acc, a)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	}),
	b("%", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("%", args, 2); err != nil {
			return nil, err
		}
		ai, ok := args[0].(*forms.Integer)
		bi, ok2 := args[1].(*forms.Integer)
		if !ok || !ok2 {
			return nil, rerr.NewTypeError("%", "arguments must be integers")
		}
		if bi.Value.Sign() == 0 {
			return nil, rerr.NewTypeError("%", "division by zero")
		}
		return &forms.Integer{Value: new(big.Int).Mod(ai.Value, bi.Value)}, nil
	}),

	cmpBuiltin("=", func(c int) bool { return c == 0 }),
	cmpBuiltin("!=", func(c int) bool { return c != 0 }),
	cmpBuiltin("<", func(c int) bool { return c < 0 }),
	cmpBuiltin(">", func(c int) bool { return c > 0 }),
	cmpBuiltin("<=", func(c int) bool { return c <= 0 }),
	cmpBuiltin(">=", func(c int) bool { return c >= 0 }),

	b("eq?", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("eq?", args, 2); err != nil {
			return nil, err
		}
		return forms.MakeBool(args[0] == args[1]), nil
	}),
	b("equal?", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("equal?", args, 2); err != nil {
			return nil, err
		}
		return forms.MakeBool(forms.Equal(args[0], args[1])), nil
	}),
	b("not", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("not", args, 1); err != nil {
			return nil, err
		}
		return forms.MakeBool(!forms.Truthy(args[0])), nil
	}),

	typePredicate("integer?", forms.IntegerType),
	typePredicate("int?", forms.IntegerType),
	typePredicate("float?", forms.FloatType),
	typePredicate("complex?", forms.ComplexType),
	typePredicate("bool?", forms.BoolType),
	typePredicate("string?", forms.StringType),
	typePredicate("symbol?", forms.SymbolType),
	typePredicate("keyword?", forms.KeywordType),
	typePredicate("null?", forms.NullType),
	typePredicate("list?", forms.ListType),
	typePredicate("vector?", forms.VectorType),
	typePredicate("map?", forms.MapType),
	typePredicate("dict?", forms.MapType),
	typePredicate("tuple?", forms.TupleType),
	b("number?", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("number?", args, 1); err != nil {
			return nil, err
		}
		return forms.MakeBool(isNumber(args[0])), nil
	}),
	b("callable?", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("callable?", args, 1); err != nil {
			return nil, err
		}
		t := args[0].Type()
		return forms.MakeBool(t == forms.ProcedureType || t == forms.BuiltinType), nil
	}),

	b("cons", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("cons", args, 2); err != nil {
			return nil, err
		}
		tail, ok := forms.Elements(args[1])
		if !ok {
			return nil, rerr.NewTypeError("cons", "second argument must be a list, got %s", args[1].Type())
		}
		return forms.NewList(append([]forms.Form{args[0]}, tail...)...), nil
	}),
	b("car", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("car", args, 1); err != nil {
			return nil, err
		}
		elems, ok := forms.Elements(args[0])
		if !ok || len(elems) == 0 {
			return nil, rerr.NewTypeError("car", "expected a non-empty list")
		}
		return elems[0], nil
	}),
	b("cdr", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("cdr", args, 1); err != nil {
			return nil, err
		}
		elems, ok := forms.Elements(args[0])
		if !ok || len(elems) == 0 {
			return nil, rerr.NewTypeError("cdr", "expected a non-empty list")
		}
		return forms.NewList(elems[1:]...), nil
	}),
	b("list", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		return forms.NewList(args...), nil
	}),
	b("vector", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		return &forms.Vector{Elements: append([]forms.Form{}, args...)}, nil
	}),
	b("tuple", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		return &forms.Tuple{Elements: append([]forms.Form{}, args...)}, nil
	}),
	b("str", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("str", args, 1); err != nil {
			return nil, err
		}
		return &forms.String{Value: args[0].String()}, nil
	}),
	b("int", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("int", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case *forms.Integer:
			return &forms.Integer{Value: new(big.Int).Set(v.Value)}, nil
		case *forms.Float:
			bi, _ := big.NewFloat(v.Value).Int(nil)
			return &forms.Integer{Value: bi}, nil
		case *forms.String:
			bi, ok := new(big.Int).SetString(v.Value, 10)
			if !ok {
				return nil, rerr.NewTypeError("int", "cannot parse %q as an integer", v.Value)
			}
			return &forms.Integer{Value: bi}, nil
		default:
			return nil, rerr.NewTypeError("int", "cannot convert %s to int", args[0].Type())
		}
	}),
	b("float", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("float", args, 1); err != nil {
			return nil, err
		}
		f, ok := toFloat(args[0])
		if ok {
			return &forms.Float{Value: f}, nil
		}
		if s, ok := args[0].(*forms.String); ok {
			parsed, err := strconv.ParseFloat(s.Value, 64)
			if err != nil {
				return nil, rerr.NewTypeError("float", "cannot parse %q as a float", s.Value)
			}
			return &forms.Float{Value: parsed}, nil
		}
		return nil, rerr.NewTypeError("float", "cannot convert %s to float", args[0].Type())
	}),
	b("complex", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		switch len(args) {
		case 1:
			re, im, ok := toComplex(args[0])
			if !ok {
				return nil, rerr.NewTypeError("complex", "cannot convert %s to complex", args[0].Type())
			}
			return &forms.Complex{Real: re, Imag: im}, nil
		case 2:
			re, ok1 := toFloat(args[0])
			im, ok2 := toFloat(args[1])
			if !ok1 || !ok2 {
				return nil, rerr.NewTypeError("complex", "arguments must be numbers")
			}
			return &forms.Complex{Real: re, Imag: im}, nil
		default:
			return nil, &rerr.ArityError{Callee: "complex", Want: "1 or 2", Got: len(args)}
		}
	}),
	b("dict", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		m := forms.NewMap()
		if len(args) == 1 {
			src, ok := args[0].(*forms.Map)
			if !ok {
				return nil, rerr.NewTypeError("dict", "single-argument form requires a map, got %s", args[0].Type())
			}
			for _, entry := range src.Entries() {
				m.Set(entry.Key, entry.Value)
			}
			return m, nil
		}
		if len(args)%2 != 0 {
			return nil, rerr.NewTypeError("dict", "expected a single map or an even number of key/value arguments")
		}
		for i := 0; i < len(args); i += 2 {
			m.Set(args[i], args[i+1])
		}
		return m, nil
	}),
	b("len", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("len", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case *forms.String:
			return forms.NewInt(int64(len([]rune(v.Value)))), nil
		case *forms.Map:
			return forms.NewInt(int64(v.Len())), nil
		default:
			elems, ok := forms.Elements(args[0])
			if !ok {
				return nil, rerr.NewTypeError("len", "%s has no length", args[0].Type())
			}
			return forms.NewInt(int64(len(elems))), nil
		}
	}),
	b("append", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		var out []forms.Form
		for _, a := range args {
			elems, ok := forms.Elements(a)
			if !ok {
				return nil, rerr.NewTypeError("append", "argument must be a list, got %s", a.Type())
			}
			out = append(out, elems...)
		}
		return forms.NewList(out...), nil
	}),
	b("reverse", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("reverse", args, 1); err != nil {
			return nil, err
		}
		elems, ok := forms.Elements(args[0])
		if !ok {
			return nil, rerr.NewTypeError("reverse", "argument must be a list, got %s", args[0].Type())
		}
		out := make([]forms.Form, len(elems))
		for i, e := range elems {
			out[len(elems)-1-i] = e
		}
		return forms.NewList(out...), nil
	}),
	b("nth", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("nth", args, 2); err != nil {
			return nil, err
		}
		elems, ok := forms.Elements(args[0])
		if !ok {
			return nil, rerr.NewTypeError("nth", "first argument must be a sequence, got %s", args[0].Type())
		}
		idx, ok := args[1].(*forms.Integer)
		if !ok {
			return nil, rerr.NewTypeError("nth", "index must be an integer")
		}
		i := int(idx.Value.Int64())
		if i < 0 || i >= len(elems) {
			return nil, rerr.NewTypeError("nth", "index %d out of bounds (length %d)", i, len(elems))
		}
		return elems[i], nil
	}),

	b("map", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("map", args, 2); err != nil {
			return nil, err
		}
		elems, ok := forms.Elements(args[1])
		if !ok {
			return nil, rerr.NewTypeError("map", "second argument must be a sequence, got %s", args[1].Type())
		}
		out := make([]forms.Form, len(elems))
		for i, el := range elems {
			v, err := rt.Call(args[0], []forms.Form{el})
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return forms.NewList(out...), nil
	}),
	b("filter", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("filter", args, 2); err != nil {
			return nil, err
		}
		elems, ok := forms.Elements(args[1])
		if !ok {
			return nil, rerr.NewTypeError("filter", "second argument must be a sequence, got %s", args[1].Type())
		}
		var out []forms.Form
		for _, el := range elems {
			v, err := rt.Call(args[0], []forms.Form{el})
			if err != nil {
				return nil, err
			}
			if forms.Truthy(v) {
				out = append(out, el)
			}
		}
		return forms.NewList(out...), nil
	}),
	b("reduce", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if len(args) != 3 {
			return nil, &rerr.ArityError{Callee: "reduce", Want: "3", Got: len(args)}
		}
		elems, ok := forms.Elements(args[2])
		if !ok {
			return nil, rerr.NewTypeError("reduce", "third argument must be a sequence, got %s", args[2].Type())
		}
		acc := args[1]
		var err error
		for _, el := range elems {
			acc, err = rt.Call(args[0], []forms.Form{acc, el})
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	}),

	b("print", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		for _, a := range args {
			fmt.Fprint(rt.Writer(), a.String())
		}
		return forms.Nil, nil
	}),
	b("println", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		for _, a := range args {
			fmt.Fprint(rt.Writer(), a.String())
		}
		fmt.Fprintln(rt.Writer())
		return forms.Nil, nil
	}),
	b("curry", curry),
	b("dump", dump),

	b("read", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("read", args, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(*forms.String)
		if !ok {
			return nil, rerr.NewTypeError("read", "argument must be a string, got %s", args[0].Type())
		}
		form, err := reader.Read(s.Value)
		if err != nil {
			return nil, err
		}
		return form, nil
	}),

	b("map-get", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("map-get", args, 2); err != nil {
			return nil, err
		}
		m, ok := args[0].(*forms.Map)
		if !ok {
			return nil, rerr.NewTypeError("map-get", "first argument must be a map, got %s", args[0].Type())
		}
		v, ok := m.Get(args[1])
		if !ok {
			return forms.Nil, nil
		}
		return v, nil
	}),
	b("map-set", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("map-set", args, 3); err != nil {
			return nil, err
		}
		m, ok := args[0].(*forms.Map)
		if !ok {
			return nil, rerr.NewTypeError("map-set", "first argument must be a map, got %s", args[0].Type())
		}
		m.Set(args[1], args[2])
		return m, nil
	}),
	b("map-keys", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("map-keys", args, 1); err != nil {
			return nil, err
		}
		m, ok := args[0].(*forms.Map)
		if !ok {
			return nil, rerr.NewTypeError("map-keys", "argument must be a map, got %s", args[0].Type())
		}
		entries := m.Entries()
		out := make([]forms.Form, len(entries))
		for i, e := range entries {
			out[i] = e.Key
		}
		return forms.NewList(out...), nil
	}),
}

func cmpBuiltin(name string, ok func(int) bool) *forms.Builtin {
	return b(name, func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if len(args) < 2 {
			return nil, &rerr.ArityError{Callee: name, Want: "at least 2", Got: len(args)}
		}
		for i := 0; i < len(args)-1; i++ {
			c, err := compareTwo(args[i], args[i+1])
			if err != nil {
				return nil, err
			}
			if !ok(c) {
				return forms.False, nil
			}
		}
		return forms.True, nil
	})
}

func typePredicate(name string, t forms.FormType) *forms.Builtin {
	return b(name, func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck(name, args, 1); err != nil {
			return nil, err
		}
		return forms.MakeBool(args[0].Type() == t), nil
	})
}

// InstallCore binds every always-available builtin into the global
// environment via DefineForce, the way the teacher's interpreter seeds its
// global scope with its common/builtin methods (std/common.go) before any
// user or prelude code runs.
func InstallCore(e *env.Env) {
	for _, fn := range coreFns {
		e.DefineForce(fn.Name, fn)
	}
}
