/*
File    : goripl/builtins/math.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"math"
	"math/rand"

	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
)

// mathFns mirrors the teacher's std/math.go method set, adapted to the
// forms value tree and the arbitrary-width Integer type.
var mathFns = []*forms.Builtin{
	b("abs", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("abs", args, 1); err != nil {
			return nil, err
		}
		f, ok := toFloat(args[0])
		if !ok {
			return nil, rerr.NewTypeError("abs", "argument must be a number, got %s", args[0].Type())
		}
		if _, isInt := args[0].(*forms.Integer); isInt {
			return &forms.Float{Value: math.Abs(f)}, nil
		}
		return &forms.Float{Value: math.Abs(f)}, nil
	}),
	b("sqrt", unary1("sqrt", math.Sqrt)),
	b("pow", binary2("pow", math.Pow)),
	b("floor", unary1("floor", math.Floor)),
	b("ceil", unary1("ceil", math.Ceil)),
	b("round", unary1("round", math.Round)),
	b("sin", unary1("sin", math.Sin)),
	b("cos", unary1("cos", math.Cos)),
	b("tan", unary1("tan", math.Tan)),
	b("asin", unary1("asin", math.Asin)),
	b("acos", unary1("acos", math.Acos)),
	b("atan", unary1("atan", math.Atan)),
	b("atan2", binary2("atan2", math.Atan2)),
	b("log", unary1("log", math.Log)),
	b("log10", unary1("log10", math.Log10)),
	b("exp", unary1("exp", math.Exp)),
	b("rand", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("rand", args, 0); err != nil {
			return nil, err
		}
		return &forms.Float{Value: rand.Float64()}, nil
	}),
	b("rand_int", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("rand_int", args, 2); err != nil {
			return nil, err
		}
		lo, ok1 := args[0].(*forms.Integer)
		hi, ok2 := args[1].(*forms.Integer)
		if !ok1 || !ok2 {
			return nil, rerr.NewTypeError("rand_int", "arguments must be integers")
		}
		l, h := lo.Value.Int64(), hi.Value.Int64()
		if l > h {
			return nil, rerr.NewTypeError("rand_int", "min cannot be greater than max")
		}
		return forms.NewInt(l + rand.Int63n(h-l+1)), nil
	}),
}

func unary1(name string, fn func(float64) float64) func(forms.Runtime, []forms.Form) (forms.Form, error) {
	return func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck(name, args, 1); err != nil {
			return nil, err
		}
		v, ok := toFloat(args[0])
		if !ok {
			return nil, rerr.NewTypeError(name, "argument must be a number, got %s", args[0].Type())
		}
		return &forms.Float{Value: fn(v)}, nil
	}
}

func binary2(name string, fn func(float64, float64) float64) func(forms.Runtime, []forms.Form) (forms.Form, error) {
	return func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck(name, args, 2); err != nil {
			return nil, err
		}
		a, ok1 := toFloat(args[0])
		c, ok2 := toFloat(args[1])
		if !ok1 || !ok2 {
			return nil, rerr.NewTypeError(name, "arguments must be numbers")
		}
		return &forms.Float{Value: fn(a, c)}, nil
	}
}

func init() {
	RegisterPackage(newPackage("math", mathFns...))
}
