/*
File    : goripl/builtins/curry.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
)

// curry partially applies a procedure, grounded on the original source's
// curry/functools.partial builtin (env.py): (curry f a b) returns a new
// callable that, invoked with the remaining arguments, calls f with
// a, b, followed by those arguments.
func curry(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
	if len(args) < 1 {
		return nil, &rerr.ArityError{Callee: "curry", Want: "at least 1", Got: 0}
	}
	target := args[0]
	switch target.(type) {
	case *forms.Procedure, *forms.Builtin:
	default:
		return nil, rerr.NewTypeError("curry", "first argument must be callable, got %s", target.Type())
	}
	fixed := append([]forms.Form{}, args[1:]...)

	return &forms.Builtin{
		Name: "curried",
		Fn: func(rt forms.Runtime, rest []forms.Form) (forms.Form, error) {
			all := append(append([]forms.Form{}, fixed...), rest...)
			return rt.Call(target, all)
		},
	}, nil
}
