/*
File    : goripl/builtins/os.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"fmt"
	"os"
	"runtime"
	stdtime "time"

	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
)

// osFns mirrors the teacher's std/os.go method set. Where the teacher's
// assert family calls os.Exit(1) on failure, these instead raise an
// EvalError: an embedded interpreter's host process should not be killed by
// a failed assertion in guest code, only the evaluation should fail.
var osFns = []*forms.Builtin{
	b("getenv", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("getenv", args, 1); err != nil {
			return nil, err
		}
		key, err := asString("getenv", args[0])
		if err != nil {
			return nil, err
		}
		return &forms.String{Value: os.Getenv(key)}, nil
	}),
	b("setenv", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("setenv", args, 2); err != nil {
			return nil, err
		}
		key, err := asString("setenv", args[0])
		if err != nil {
			return nil, err
		}
		val, err := asString("setenv", args[1])
		if err != nil {
			return nil, err
		}
		if err := os.Setenv(key, val); err != nil {
			return nil, rerr.NewEvalError(err, "setenv failed")
		}
		return forms.Nil, nil
	}),
	b("args", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("args", args, 0); err != nil {
			return nil, err
		}
		out := make([]forms.Form, len(os.Args))
		for i, a := range os.Args {
			out[i] = &forms.String{Value: a}
		}
		return &forms.Vector{Elements: out}, nil
	}),
	b("sleep", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("sleep", args, 1); err != nil {
			return nil, err
		}
		ms, ok := args[0].(*forms.Integer)
		if !ok {
			return nil, rerr.NewTypeError("sleep", "argument must be an integer")
		}
		stdtime.Sleep(stdtime.Duration(ms.Value.Int64()) * stdtime.Millisecond)
		return forms.Nil, nil
	}),
	b("getcwd", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("getcwd", args, 0); err != nil {
			return nil, err
		}
		dir, err := os.Getwd()
		if err != nil {
			return nil, rerr.NewEvalError(err, "could not get current working directory")
		}
		return &forms.String{Value: dir}, nil
	}),
	b("getpid", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("getpid", args, 0); err != nil {
			return nil, err
		}
		return forms.NewInt(int64(os.Getpid())), nil
	}),
	b("hostname", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("hostname", args, 0); err != nil {
			return nil, err
		}
		name, err := os.Hostname()
		if err != nil {
			return nil, rerr.NewEvalError(err, "could not get hostname")
		}
		return &forms.String{Value: name}, nil
	}),
	b("platform", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("platform", args, 0); err != nil {
			return nil, err
		}
		return &forms.String{Value: runtime.GOOS}, nil
	}),
	b("arch", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("arch", args, 0); err != nil {
			return nil, err
		}
		return &forms.String{Value: runtime.GOARCH}, nil
	}),

	b("assert", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("assert", args, 2); err != nil {
			return nil, err
		}
		msg, err := asString("assert", args[1])
		if err != nil {
			return nil, err
		}
		if !forms.Truthy(args[0]) {
			return nil, rerr.NewEvalError(nil, "assertion failed: %s", msg)
		}
		fmt.Fprintf(rt.Writer(), "[PASS] %s\n", msg)
		return forms.Nil, nil
	}),
	b("assert_equal", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("assert_equal", args, 3); err != nil {
			return nil, err
		}
		msg, err := asString("assert_equal", args[2])
		if err != nil {
			return nil, err
		}
		if !forms.Equal(args[0], args[1]) {
			return nil, rerr.NewEvalError(nil, "assertion failed: %s (%s != %s)", msg, args[0], args[1])
		}
		fmt.Fprintf(rt.Writer(), "[PASS] %s\n", msg)
		return forms.Nil, nil
	}),
	b("assert_true", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("assert_true", args, 2); err != nil {
			return nil, err
		}
		msg, err := asString("assert_true", args[1])
		if err != nil {
			return nil, err
		}
		if !forms.Truthy(args[0]) {
			return nil, rerr.NewEvalError(nil, "assertion failed: %s", msg)
		}
		fmt.Fprintf(rt.Writer(), "[PASS] %s\n", msg)
		return forms.Nil, nil
	}),
	b("assert_false", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("assert_false", args, 2); err != nil {
			return nil, err
		}
		msg, err := asString("assert_false", args[1])
		if err != nil {
			return nil, err
		}
		if forms.Truthy(args[0]) {
			return nil, rerr.NewEvalError(nil, "assertion failed: %s", msg)
		}
		fmt.Fprintf(rt.Writer(), "[PASS] %s\n", msg)
		return forms.Nil, nil
	}),
}

func init() {
	RegisterPackage(newPackage("os", osFns...))
}
