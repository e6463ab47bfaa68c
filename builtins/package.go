/*
File    : goripl/builtins/package.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtins implements the host-provided procedures: the always-bound
// core (arithmetic, comparison, sequence and map operations, predicates,
// printing) plus a set of named Packages (math, strings, json, regex, time,
// os, crypto, http) reachable only through the import special form.
//
// The Package/Lookup registry is this language's equivalent of the
// teacher's std.Package/RegisterPackage pair (see std/math.go, std/builtins.go
// and sibling std/*.go files) — that pattern is referenced throughout the
// teacher's std package but its own definition was never part of this
// retrieval, so it is reconstructed here against forms.Builtin instead of
// the teacher's GoMixObject.
package builtins

import "github.com/akashmaji946/goripl/forms"

// Package is a named bundle of builtins reachable only via import.
type Package struct {
	Name      string
	Functions map[string]*forms.Builtin
}

var registry = make(map[string]*Package)

// RegisterPackage makes pkg available to the import special form under its
// own Name. Called from each domain file's init().
func RegisterPackage(pkg *Package) {
	registry[pkg.Name] = pkg
}

// Lookup returns the package registered under name, if any.
func Lookup(name string) (*Package, bool) {
	pkg, ok := registry[name]
	return pkg, ok
}

func newPackage(name string, fns ...*forms.Builtin) *Package {
	pkg := &Package{Name: name, Functions: make(map[string]*forms.Builtin, len(fns))}
	for _, fn := range fns {
		pkg.Functions[fn.Name] = fn
	}
	return pkg
}
