/*
File    : goripl/env/env.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package env implements the lexical environment: a non-empty stack of
// frames mapping Symbol names to forms. The bottom frame is always the
// global frame, populated with builtins and later with top-level defines
// and prelude bindings.
package env

import (
	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
)

// Frame is one lexical scope: a mapping from name to bound form, plus a
// link to the enclosing frame. nil Parent marks the global frame.
type Frame struct {
	Bindings map[string]forms.Form
	Parent   *Frame
}

// Env is a pointer to the innermost frame of the chain; the chain itself
// is the stack described by the language's environment model.
type Env struct {
	inner *Frame
}

// NewGlobal creates a fresh global environment with no bindings.
func NewGlobal() *Env {
	return &Env{inner: &Frame{Bindings: make(map[string]forms.Form)}}
}

// Global returns the outermost frame of this environment's chain.
func (e *Env) Global() *Env {
	f := e.inner
	for f.Parent != nil {
		f = f.Parent
	}
	return &Env{inner: f}
}

// IsGlobal reports whether this environment's innermost frame is the
// global frame — the condition defmacro requires.
func (e *Env) IsGlobal() bool {
	return e.inner.Parent == nil
}

// Lookup searches frames from innermost outward, returning the first hit.
func (e *Env) Lookup(name string) (forms.Form, error) {
	for f := e.inner; f != nil; f = f.Parent {
		if v, ok := f.Bindings[name]; ok {
			return v, nil
		}
	}
	return nil, &rerr.UnknownSymbol{Name: name}
}

// Define binds name in the innermost frame. It fails with Redefinition if
// the name is already bound anywhere in the chain — define never shadows.
func (e *Env) Define(name string, value forms.Form) error {
	for f := e.inner; f != nil; f = f.Parent {
		if _, ok := f.Bindings[name]; ok {
			return &rerr.Redefinition{Name: name}
		}
	}
	e.inner.Bindings[name] = value
	return nil
}

// DefineForce binds name in the innermost frame unconditionally, overwriting
// any existing binding there. Used internally to seed builtins and to load
// prelude files, where re-running a file should not trip Redefinition.
func (e *Env) DefineForce(name string, value forms.Form) {
	e.inner.Bindings[name] = value
}

// Set mutates the existing binding for name, found by walking outward from
// the innermost frame. Fails with UnknownSymbol if name is unbound.
func (e *Env) Set(name string, value forms.Form) error {
	for f := e.inner; f != nil; f = f.Parent {
		if _, ok := f.Bindings[name]; ok {
			f.Bindings[name] = value
			return nil
		}
	}
	return &rerr.UnknownSymbol{Name: name}
}

// ExtendFrame returns a new *Env with an additional innermost frame
// containing the given zipped bindings. O(1) beyond the allocation of the
// new frame and its bindings map, since no copying of outer frames occurs.
func (e *Env) ExtendFrame(names []string, values []forms.Form) (*Env, error) {
	if len(names) != len(values) {
		return nil, rerr.NewTypeError("extend", "expected %d bindings, got %d", len(names), len(values))
	}
	bindings := make(map[string]forms.Form, len(names))
	for i, n := range names {
		bindings[n] = values[i]
	}
	return &Env{inner: &Frame{Bindings: bindings, Parent: e.inner}}, nil
}

// Names returns every name bound anywhere in the chain, innermost first,
// deduplicated — used to seed REPL tab-completion.
func (e *Env) Names() []string {
	seen := make(map[string]bool)
	var out []string
	for f := e.inner; f != nil; f = f.Parent {
		for n := range f.Bindings {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}
