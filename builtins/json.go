/*
File    : goripl/builtins/json.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"encoding/json"
	"math/big"

	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
)

var jsonFns = []*forms.Builtin{
	b("parse_json", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("parse_json", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("parse_json", args[0])
		if err != nil {
			return nil, err
		}
		var data interface{}
		if err := json.Unmarshal([]byte(s), &data); err != nil {
			return nil, rerr.NewEvalError(err, "failed to decode JSON")
		}
		return jsonToForm(data), nil
	}),
	b("stringify_json", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("stringify_json", args, 1); err != nil {
			return nil, err
		}
		bytes, err := json.Marshal(formToJSON(args[0]))
		if err != nil {
			return nil, rerr.NewEvalError(err, "failed to encode JSON")
		}
		return &forms.String{Value: string(bytes)}, nil
	}),
}

func formToJSON(f forms.Form) interface{} {
	switch v := f.(type) {
	case *forms.Integer:
		return v.Value
	case *forms.Float:
		return v.Value
	case *forms.Bool:
		return v.Value
	case *forms.String:
		return v.Value
	case *forms.Null:
		return nil
	case *forms.List:
		out := make([]interface{}, len(v.Elements))
		for i, e := range v.Elements {
			out[i] = formToJSON(e)
		}
		return out
	case *forms.Vector:
		out := make([]interface{}, len(v.Elements))
		for i, e := range v.Elements {
			out[i] = formToJSON(e)
		}
		return out
	case *forms.Map:
		out := make(map[string]interface{})
		for _, e := range v.Entries() {
			out[e.Key.String()] = formToJSON(e.Value)
		}
		return out
	default:
		return f.String()
	}
}

func jsonToForm(val interface{}) forms.Form {
	switch v := val.(type) {
	case map[string]interface{}:
		m := forms.NewMap()
		for k, raw := range v {
			m.Set(&forms.String{Value: k}, jsonToForm(raw))
		}
		return m
	case []interface{}:
		out := make([]forms.Form, len(v))
		for i, raw := range v {
			out[i] = jsonToForm(raw)
		}
		return &forms.Vector{Elements: out}
	case string:
		return &forms.String{Value: v}
	case bool:
		return forms.MakeBool(v)
	case float64:
		if v == float64(int64(v)) {
			return &forms.Integer{Value: big.NewInt(int64(v))}
		}
		return &forms.Float{Value: v}
	case nil:
		return forms.Nil
	default:
		return forms.Nil
	}
}

func init() {
	RegisterPackage(newPackage("json", jsonFns...))
}
