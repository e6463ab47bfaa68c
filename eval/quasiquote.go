/*
File    : goripl/eval/quasiquote.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/goripl/env"
	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
)

// quasiquote expands a quasiquoted form one level deep: unquote evaluates
// its operand in e and splices the value in directly; unquote-splicing
// evaluates its operand and splices the resulting sequence's elements in
// place; everything else recurses structurally and otherwise quotes as-is.
//
// This is the spec-corrected expansion: the original source's
// splice-in-a-list-of-one bug (see original_source/ripl/ripl/eval.py's
// handling of unquote-splicing) is fixed here by appending the spliced
// elements directly into the surrounding list rather than wrapping them.
func (ev *Evaluator) quasiquote(form forms.Form, e *env.Env) (forms.Form, error) {
	lst, ok := form.(*forms.List)
	if !ok {
		return form, nil
	}
	if len(lst.Elements) == 2 {
		if sym, ok := lst.Elements[0].(*forms.Symbol); ok {
			switch sym.Name {
			case "unquote":
				return ev.Eval(lst.Elements[1], e)
			case "unquote-splicing":
				return nil, &rerr.UnquoteContext{Form: "unquote-splicing"}
			}
		}
	}

	var out []forms.Form
	for _, el := range lst.Elements {
		if sub, ok := el.(*forms.List); ok && len(sub.Elements) == 2 {
			if sym, ok := sub.Elements[0].(*forms.Symbol); ok && sym.Name == "unquote-splicing" {
				v, err := ev.Eval(sub.Elements[1], e)
				if err != nil {
					return nil, err
				}
				elems, ok := forms.Elements(v)
				if !ok {
					return nil, rerr.NewTypeError("unquote-splicing", "expected a sequence, got %s", v.Type())
				}
				out = append(out, elems...)
				continue
			}
		}
		qel, err := ev.quasiquote(el, e)
		if err != nil {
			return nil, err
		}
		out = append(out, qel)
	}
	return forms.NewList(out...), nil
}
