/*
File    : goripl/builtins/numeric.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"math/big"

	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
)

func isNumber(f forms.Form) bool {
	switch f.(type) {
	case *forms.Integer, *forms.Float, *forms.Complex:
		return true
	default:
		return false
	}
}

func toFloat(f forms.Form) (float64, bool) {
	switch v := f.(type) {
	case *forms.Integer:
		r, _ := new(big.Float).SetInt(v.Value).Float64()
		return r, true
	case *forms.Float:
		return v.Value, true
	default:
		return 0, false
	}
}

func toComplex(f forms.Form) (float64, float64, bool) {
	switch v := f.(type) {
	case *forms.Complex:
		return v.Real, v.Imag, true
	case *forms.Integer, *forms.Float:
		r, _ := toFloat(f)
		return r, 0, true
	default:
		return 0, 0, false
	}
}

func addTwo(a, b forms.Form) (forms.Form, error) {
	if ac, ok := a.(*forms.Complex); ok {
		br, bi, _ := toComplex(b)
		return &forms.Complex{Real: ac.Real + br, Imag: ac.Imag + bi}, nil
	}
	if bc, ok := b.(*forms.Complex); ok {
		ar, ai, _ := toComplex(a)
		return &forms.Complex{Real: ar + bc.Real, Imag: ai + bc.Imag}, nil
	}
	if ai, ok := a.(*forms.Integer); ok {
		if bi, ok := b.(*forms.Integer); ok {
			return &forms.Integer{Value: new(big.Int).Add(ai.Value, bi.Value)}, nil
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return nil, rerr.NewTypeError("+", "arguments must be numbers, got %s and %s", a.Type(), b.Type())
	}
	return &forms.Float{Value: af + bf}, nil
}

func subTwo(a, b forms.Form) (forms.Form, error) {
	if ac, ok := a.(*forms.Complex); ok {
		br, bi, _ := toComplex(b)
		return &forms.Complex{Real: ac.Real - br, Imag: ac.Imag - bi}, nil
	}
	if bc, ok := b.(*forms.Complex); ok {
		ar, ai, _ := toComplex(a)
		return &forms.Complex{Real: ar - bc.Real, Imag: ai - bc.Imag}, nil
	}
	if ai, ok := a.(*forms.Integer); ok {
		if bi, ok := b.(*forms.Integer); ok {
			return &forms.Integer{Value: new(big.Int).Sub(ai.Value, bi.Value)}, nil
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return nil, rerr.NewTypeError("-", "arguments must be numbers, got %s and %s", a.Type(), b.Type())
	}
	return &forms.Float{Value: af - bf}, nil
}

func mulTwo(a, b forms.Form) (forms.Form, error) {
	if ac, ok := a.(*forms.Complex); ok {
		br, bi, _ := toComplex(b)
		return &forms.Complex{Real: ac.Real*br - ac.Imag*bi, Imag: ac.Real*bi + ac.Imag*br}, nil
	}
	if bc, ok := b.(*forms.Complex); ok {
		ar, ai, _ := toComplex(a)
		return &forms.Complex{Real: ar*bc.Real - ai*bc.Imag, Imag: ar*bc.Imag + ai*bc.Real}, nil
	}
	if ai, ok := a.(*forms.Integer); ok {
		if bi, ok := b.(*forms.Integer); ok {
			return &forms.Integer{Value: new(big.Int).Mul(ai.Value, bi.Value)}, nil
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return nil, rerr.NewTypeError("*", "arguments must be numbers, got %s and %s", a.Type(), b.Type())
	}
	return &forms.Float{Value: af * bf}, nil
}

// divTwo implements the spec's resolution of the / operand-type open
// question: Float if either operand is Float, else exact big.Int division,
// raising a TypeError rather than silently truncating when it isn't exact.
func divTwo(a, b forms.Form) (forms.Form, error) {
	if _, ok := a.(*forms.Complex); ok {
		return nil, rerr.NewTypeError("/", "complex division is not supported")
	}
	if _, ok := b.(*forms.Complex); ok {
		return nil, rerr.NewTypeError("/", "complex division is not supported")
	}
	ai, aIsInt := a.(*forms.Integer)
	bi, bIsInt := b.(*forms.Integer)
	if aIsInt && bIsInt {
		if bi.Value.Sign() == 0 {
			return nil, rerr.NewTypeError("/", "division by zero")
		}
		q, r := new(big.Int).QuoRem(ai.Value, bi.Value, new(big.Int))
		if r.Sign() != 0 {
			return nil, rerr.NewTypeError("/", "%s / %s is not exact; coerce an operand to float", ai.Value, bi.Value)
		}
		return &forms.Integer{Value: q}, nil
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return nil, rerr.NewTypeError("/", "arguments must be numbers, got %s and %s", a.Type(), b.Type())
	}
	if bf == 0 {
		return nil, rerr.NewTypeError("/", "division by zero")
	}
	return &forms.Float{Value: af / bf}, nil
}

func compareTwo(a, b forms.Form) (int, error) {
	if ai, ok := a.(*forms.Integer); ok {
		if bi, ok := b.(*forms.Integer); ok {
			return ai.Value.Cmp(bi.Value), nil
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return 0, rerr.NewTypeError("compare", "arguments must be numbers, got %s and %s", a.Type(), b.Type())
	}
	switch {
	case af < bf:
		return -1, nil
	case af > bf:
		return 1, nil
	default:
		return 0, nil
	}
}
