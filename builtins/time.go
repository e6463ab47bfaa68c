/*
File    : goripl/builtins/time.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	stdtime "time"

	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
)

var timeFns = []*forms.Builtin{
	b("now", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("now", args, 0); err != nil {
			return nil, err
		}
		return forms.NewInt(stdtime.Now().Unix()), nil
	}),
	b("now_ms", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("now_ms", args, 0); err != nil {
			return nil, err
		}
		return forms.NewInt(stdtime.Now().UnixMilli()), nil
	}),
	b("utc_now", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("utc_now", args, 0); err != nil {
			return nil, err
		}
		return forms.NewInt(stdtime.Now().UTC().Unix()), nil
	}),
	b("format_time", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("format_time", args, 2); err != nil {
			return nil, err
		}
		ts, ok := args[0].(*forms.Integer)
		if !ok {
			return nil, rerr.NewTypeError("format_time", "first argument must be an integer timestamp")
		}
		layout, err := asString("format_time", args[1])
		if err != nil {
			return nil, err
		}
		t := stdtime.Unix(ts.Value.Int64(), 0)
		return &forms.String{Value: t.Format(layout)}, nil
	}),
	b("parse_time", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("parse_time", args, 2); err != nil {
			return nil, err
		}
		val, err := asString("parse_time", args[0])
		if err != nil {
			return nil, err
		}
		layout, err := asString("parse_time", args[1])
		if err != nil {
			return nil, err
		}
		t, err := stdtime.ParseInLocation(layout, val, stdtime.Local)
		if err != nil {
			return nil, rerr.NewEvalError(err, "failed to parse time")
		}
		return forms.NewInt(t.Unix()), nil
	}),
	b("timezone", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("timezone", args, 0); err != nil {
			return nil, err
		}
		name, _ := stdtime.Now().Zone()
		return &forms.String{Value: name}, nil
	}),
}

func init() {
	RegisterPackage(newPackage("time", timeFns...))
}
