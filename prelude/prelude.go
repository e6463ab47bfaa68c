/*
File    : goripl/prelude/prelude.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package prelude loads a directory of .rpl source files into an
// environment at interpreter startup. It generalizes the teacher's
// file-backed Interpretor.load_prelude/slurp pair (original_source's
// Python Interpretor class): os.listdir becomes a doublestar glob so a
// prelude can be organized into subdirectories, and an optional
// _order.yaml pins explicit load order ahead of lexical order.
package prelude

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/akashmaji946/goripl/env"
	"github.com/akashmaji946/goripl/eval"
	"github.com/akashmaji946/goripl/reader"
	"github.com/akashmaji946/goripl/rerr"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultGlob matches every .rpl file under a prelude directory, at any depth.
const DefaultGlob = "**/*.rpl"

// orderFile names the optional manifest pinning explicit load order.
const orderFile = "_order.yaml"

// Load walks dir matching glob (DefaultGlob if empty), orders the
// resulting files per _order.yaml when present else lexically, and
// Slurps each one in turn into e using ev.
func Load(ev *eval.Evaluator, e *env.Env, dir string, glob string) error {
	if glob == "" {
		glob = DefaultGlob
	}
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, glob)
	if err != nil {
		return rerr.NewEvalError(err, "prelude: bad glob %q", glob)
	}

	order, err := loadOrder(dir)
	if err != nil {
		return err
	}
	matches = applyOrder(matches, order)

	for _, rel := range matches {
		if err := Slurp(ev, e, filepath.Join(dir, rel)); err != nil {
			return err
		}
	}
	return nil
}

// loadOrder reads dir/_order.yaml if present: a plain YAML list of
// relative paths pinning explicit load order. Absence is not an error.
func loadOrder(dir string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(dir, orderFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, rerr.NewEvalError(err, "prelude: failed to read %s", orderFile)
	}
	var order []string
	if err := yaml.Unmarshal(data, &order); err != nil {
		return nil, rerr.NewEvalError(err, "prelude: malformed %s", orderFile)
	}
	return order, nil
}

// applyOrder stable-sorts matches so entries named in order come first,
// in the order given, followed by the remaining matches in lexical order.
func applyOrder(matches []string, order []string) []string {
	sort.Strings(matches)
	if len(order) == 0 {
		return matches
	}
	rank := make(map[string]int, len(order))
	for i, name := range order {
		rank[name] = i
	}
	sort.SliceStable(matches, func(i, j int) bool {
		ri, iok := rank[matches[i]]
		rj, jok := rank[matches[j]]
		if iok && jok {
			return ri < rj
		}
		if iok != jok {
			return iok
		}
		return matches[i] < matches[j]
	})
	return matches
}

// Slurp reads the contents of a single .rpl file and evaluates every
// top-level form in it against e, in order. Non-.rpl paths are rejected
// with BadPreludeFile, matching the source's NameError on a non-.rpl
// slurp target.
func Slurp(ev *eval.Evaluator, e *env.Env, path string) error {
	if filepath.Ext(path) != ".rpl" {
		return &rerr.BadPreludeFile{Path: path}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return rerr.NewEvalError(err, "prelude: failed to read %s", path)
	}
	forms, err := reader.ReadAll(string(data))
	if err != nil {
		return rerr.NewEvalError(err, "prelude: failed to parse %s", path)
	}
	for _, form := range forms {
		if _, err := ev.Eval(form, e); err != nil {
			return rerr.NewEvalError(err, "prelude: failed to evaluate %s", path)
		}
	}
	return nil
}
