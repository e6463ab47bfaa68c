/*
File    : goripl/builtins/regex.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"regexp"

	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
)

var regexFns = []*forms.Builtin{
	b("match_regex", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("match_regex", args, 2); err != nil {
			return nil, err
		}
		pattern, _ := asString("match_regex", args[0])
		s, _ := asString("match_regex", args[1])
		matched, err := regexp.MatchString(pattern, s)
		if err != nil {
			return nil, rerr.NewEvalError(err, "invalid regex pattern")
		}
		return forms.MakeBool(matched), nil
	}),
	b("find_regex", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("find_regex", args, 2); err != nil {
			return nil, err
		}
		pattern, _ := asString("find_regex", args[0])
		s, _ := asString("find_regex", args[1])
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, rerr.NewEvalError(err, "invalid regex pattern")
		}
		return &forms.String{Value: re.FindString(s)}, nil
	}),
	b("findall_regex", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if len(args) < 2 || len(args) > 3 {
			return nil, &rerr.ArityError{Callee: "findall_regex", Want: "2 or 3", Got: len(args)}
		}
		pattern, _ := asString("findall_regex", args[0])
		s, _ := asString("findall_regex", args[1])
		n := -1
		if len(args) == 3 {
			iv, ok := args[2].(*forms.Integer)
			if !ok {
				return nil, rerr.NewTypeError("findall_regex", "third argument must be an integer")
			}
			n = int(iv.Value.Int64())
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, rerr.NewEvalError(err, "invalid regex pattern")
		}
		matches := re.FindAllString(s, n)
		out := make([]forms.Form, len(matches))
		for i, m := range matches {
			out[i] = &forms.String{Value: m}
		}
		return &forms.Vector{Elements: out}, nil
	}),
	b("replace_regex", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("replace_regex", args, 3); err != nil {
			return nil, err
		}
		pattern, _ := asString("replace_regex", args[0])
		s, _ := asString("replace_regex", args[1])
		repl, _ := asString("replace_regex", args[2])
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, rerr.NewEvalError(err, "invalid regex pattern")
		}
		return &forms.String{Value: re.ReplaceAllString(s, repl)}, nil
	}),
	b("split_regex", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if len(args) < 2 || len(args) > 3 {
			return nil, &rerr.ArityError{Callee: "split_regex", Want: "2 or 3", Got: len(args)}
		}
		pattern, _ := asString("split_regex", args[0])
		s, _ := asString("split_regex", args[1])
		n := -1
		if len(args) == 3 {
			iv, ok := args[2].(*forms.Integer)
			if !ok {
				return nil, rerr.NewTypeError("split_regex", "third argument must be an integer")
			}
			n = int(iv.Value.Int64())
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, rerr.NewEvalError(err, "invalid regex pattern")
		}
		parts := re.Split(s, n)
		out := make([]forms.Form, len(parts))
		for i, p := range parts {
			out[i] = &forms.String{Value: p}
		}
		return &forms.Vector{Elements: out}, nil
	}),
}

func init() {
	RegisterPackage(newPackage("regex", regexFns...))
}
