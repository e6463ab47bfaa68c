/*
File    : goripl/builtins/strings.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"strings"
	"unicode"

	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
)

func asString(name string, f forms.Form) (string, error) {
	s, ok := f.(*forms.String)
	if !ok {
		return "", rerr.NewTypeError(name, "argument must be a string, got %s", f.Type())
	}
	return s.Value, nil
}

// stringFns mirrors the teacher's std/strings.go method set.
var stringFns = []*forms.Builtin{
	b("upper", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("upper", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("upper", args[0])
		if err != nil {
			return nil, err
		}
		return &forms.String{Value: strings.ToUpper(s)}, nil
	}),
	b("lower", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("lower", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("lower", args[0])
		if err != nil {
			return nil, err
		}
		return &forms.String{Value: strings.ToLower(s)}, nil
	}),
	b("trim", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("trim", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("trim", args[0])
		if err != nil {
			return nil, err
		}
		return &forms.String{Value: strings.TrimSpace(s)}, nil
	}),
	b("split", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("split", args, 2); err != nil {
			return nil, err
		}
		s, err := asString("split", args[0])
		if err != nil {
			return nil, err
		}
		sep, err := asString("split", args[1])
		if err != nil {
			return nil, err
		}
		parts := strings.Split(s, sep)
		out := make([]forms.Form, len(parts))
		for i, p := range parts {
			out[i] = &forms.String{Value: p}
		}
		return &forms.Vector{Elements: out}, nil
	}),
	b("join", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("join", args, 2); err != nil {
			return nil, err
		}
		elems, ok := forms.Elements(args[0])
		if !ok {
			return nil, rerr.NewTypeError("join", "first argument must be a sequence, got %s", args[0].Type())
		}
		sep, err := asString("join", args[1])
		if err != nil {
			return nil, err
		}
		parts := make([]string, len(elems))
		for i, el := range elems {
			s, ok := el.(*forms.String)
			if !ok {
				return nil, rerr.NewTypeError("join", "element %d is not a string, got %s", i, el.Type())
			}
			parts[i] = s.Value
		}
		return &forms.String{Value: strings.Join(parts, sep)}, nil
	}),
	b("replace", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("replace", args, 3); err != nil {
			return nil, err
		}
		s, err := asString("replace", args[0])
		if err != nil {
			return nil, err
		}
		old, err := asString("replace", args[1])
		if err != nil {
			return nil, err
		}
		neu, err := asString("replace", args[2])
		if err != nil {
			return nil, err
		}
		return &forms.String{Value: strings.ReplaceAll(s, old, neu)}, nil
	}),
	b("contains", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("contains", args, 2); err != nil {
			return nil, err
		}
		s, err := asString("contains", args[0])
		if err != nil {
			return nil, err
		}
		sub, err := asString("contains", args[1])
		if err != nil {
			return nil, err
		}
		return forms.MakeBool(strings.Contains(s, sub)), nil
	}),
	b("starts_with", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("starts_with", args, 2); err != nil {
			return nil, err
		}
		s, _ := asString("starts_with", args[0])
		p, _ := asString("starts_with", args[1])
		return forms.MakeBool(strings.HasPrefix(s, p)), nil
	}),
	b("ends_with", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("ends_with", args, 2); err != nil {
			return nil, err
		}
		s, _ := asString("ends_with", args[0])
		p, _ := asString("ends_with", args[1])
		return forms.MakeBool(strings.HasSuffix(s, p)), nil
	}),
	b("capitalize", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("capitalize", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("capitalize", args[0])
		if err != nil {
			return nil, err
		}
		if s == "" {
			return &forms.String{Value: ""}, nil
		}
		r := []rune(s)
		return &forms.String{Value: strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))}, nil
	}),
	b("is_digit", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("is_digit", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("is_digit", args[0])
		if err != nil {
			return nil, err
		}
		if s == "" {
			return forms.False, nil
		}
		for _, r := range s {
			if !unicode.IsDigit(r) {
				return forms.False, nil
			}
		}
		return forms.True, nil
	}),
	b("is_alpha", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("is_alpha", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("is_alpha", args[0])
		if err != nil {
			return nil, err
		}
		if s == "" {
			return forms.False, nil
		}
		for _, r := range s {
			if !unicode.IsLetter(r) {
				return forms.False, nil
			}
		}
		return forms.True, nil
	}),
}

func init() {
	RegisterPackage(newPackage("strings", stringFns...))
}
