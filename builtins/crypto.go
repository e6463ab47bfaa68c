/*
File    : goripl/builtins/crypto.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
	"github.com/google/uuid"
)

var cryptoFns = []*forms.Builtin{
	b("md5", hashFn("md5", func(data []byte) string { sum := md5.Sum(data); return fmt.Sprintf("%x", sum) })),
	b("sha1", hashFn("sha1", func(data []byte) string { sum := sha1.Sum(data); return fmt.Sprintf("%x", sum) })),
	b("sha256", hashFn("sha256", func(data []byte) string { sum := sha256.Sum256(data); return fmt.Sprintf("%x", sum) })),
	b("base64_encode", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("base64_encode", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("base64_encode", args[0])
		if err != nil {
			return nil, err
		}
		return &forms.String{Value: base64.StdEncoding.EncodeToString([]byte(s))}, nil
	}),
	b("base64_decode", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("base64_decode", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("base64_decode", args[0])
		if err != nil {
			return nil, err
		}
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, rerr.NewEvalError(err, "failed to decode base64")
		}
		return &forms.String{Value: string(decoded)}, nil
	}),
	b("hex_encode", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("hex_encode", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("hex_encode", args[0])
		if err != nil {
			return nil, err
		}
		return &forms.String{Value: hex.EncodeToString([]byte(s))}, nil
	}),
	b("hex_decode", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("hex_decode", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("hex_decode", args[0])
		if err != nil {
			return nil, err
		}
		decoded, err := hex.DecodeString(s)
		if err != nil {
			return nil, rerr.NewEvalError(err, "failed to decode hex")
		}
		return &forms.String{Value: string(decoded)}, nil
	}),
	// uuid is grounded on google/uuid rather than the teacher's hand-rolled
	// crypto/rand byte-twiddling (std/crypto.go's uuidFunc) — the same
	// library the REPL uses to tag sessions.
	b("uuid", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("uuid", args, 0); err != nil {
			return nil, err
		}
		return &forms.String{Value: uuid.NewString()}, nil
	}),
	b("random", func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck("random", args, 1); err != nil {
			return nil, err
		}
		n, ok := args[0].(*forms.Integer)
		if !ok {
			return nil, rerr.NewTypeError("random", "argument must be an integer")
		}
		count := n.Value.Int64()
		if count < 0 {
			return nil, rerr.NewTypeError("random", "number of bytes must be non-negative")
		}
		buf := make([]byte, count)
		if _, err := rand.Read(buf); err != nil {
			return nil, rerr.NewEvalError(err, "failed to generate random bytes")
		}
		return &forms.String{Value: string(buf)}, nil
	}),
}

func hashFn(name string, sum func([]byte) string) func(forms.Runtime, []forms.Form) (forms.Form, error) {
	return func(rt forms.Runtime, args []forms.Form) (forms.Form, error) {
		if err := arityCheck(name, args, 1); err != nil {
			return nil, err
		}
		s, err := asString(name, args[0])
		if err != nil {
			return nil, err
		}
		return &forms.String{Value: sum([]byte(s))}, nil
	}
}

func init() {
	RegisterPackage(newPackage("crypto", cryptoFns...))
}
