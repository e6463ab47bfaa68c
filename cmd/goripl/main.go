/*
File    : goripl/cmd/goripl/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Command goripl is the entry point for the GoRIPL interpreter. It
provides three modes of operation, chosen the way the source's cli.py
does (filename XOR script XOR REPL, in that precedence):
1. File mode: evaluate a source file given with -f/--filename
2. Script mode: evaluate a one-shot string given with -s/--script
3. REPL mode (default): interactive read-eval-print loop
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/goripl/builtins"
	"github.com/akashmaji946/goripl/env"
	"github.com/akashmaji946/goripl/eval"
	"github.com/akashmaji946/goripl/prelude"
	"github.com/akashmaji946/goripl/reader"
	"github.com/akashmaji946/goripl/repl"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// VERSION is the current version of the GoRIPL interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "goripl> "

// LINE is a separator line used for visual formatting.
var LINE = "----------------------------------------------------------------"

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   ____       ____  ___ ____  _
  / ___| ___ |  _ \|_ _|  _ \| |
 | |  _ / _ \| |_) || || |_) | |
 | |_| | (_) |  _ < | ||  __/| |___
  \____|\___/|_| \_\___|_|   |_____|
`

// exitPreludeFailure is the exit status raised when the prelude fails
// to load, matching the source's sys.exit(42) on a prelude load exception.
const exitPreludeFailure = 42

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	var (
		filename   string
		script     string
		noPrelude  bool
		trace      bool
		preludeDir string
	)

	root := &cobra.Command{
		Use:     "goripl",
		Short:   "GoRIPL - a small Lisp dialect interpreter",
		Version: VERSION,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(filename, script, preludeDir, noPrelude, trace)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&filename, "filename", "f", "", "path to a source file to evaluate")
	flags.StringVarP(&script, "script", "s", "", "a one-shot script string to evaluate")
	flags.BoolVar(&noPrelude, "no-prelude", false, "skip loading the prelude")
	flags.BoolVar(&trace, "trace", false, "log each evaluator trampoline step to stderr")
	flags.StringVar(&preludeDir, "prelude-dir", defaultPreludeDir(), "directory to load the prelude from")
	root.SetVersionTemplate(fmt.Sprintf("GoRIPL %s | License: %s | Author: %s\n", VERSION, LICENCE, AUTHOR))

	if err := root.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func defaultPreludeDir() string {
	if exe, err := os.Executable(); err == nil {
		return exe + ".prelude"
	}
	return "prelude"
}

func run(filename, script, preludeDir string, noPrelude, trace bool) error {
	ev := eval.New()
	ev.Trace = trace
	ev.SetWriter(os.Stdout)

	// Use the evaluator's own global frame rather than a freshly
	// constructed one: macro expansion (eval.go) re-evaluates expanded
	// bodies in ev.Global specifically, so the program's top-level
	// bindings must live there for defmacro to work correctly.
	e := ev.Global
	builtins.InstallCore(e)

	if !noPrelude {
		if info, err := os.Stat(preludeDir); err == nil && info.IsDir() {
			if err := prelude.Load(ev, e, preludeDir, ""); err != nil {
				redColor.Fprintf(os.Stderr, "[PRELUDE ERROR] %s\n", err)
				os.Exit(exitPreludeFailure)
			}
		}
	}

	switch {
	case filename != "":
		return runFile(ev, e, filename)
	case script != "":
		return evalAndReport(ev, e, script)
	default:
		r := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		r.Start(os.Stdin, os.Stdout, ev, e)
		return nil
	}
}

func runFile(ev *eval.Evaluator, e *env.Env, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", filename, err)
		os.Exit(1)
	}
	return evalAndReport(ev, e, string(data))
}

// evalAndReport reads every top-level form out of source and evaluates
// each against e in turn, exiting 1 on the first parse or evaluation
// error, matching file/script mode's fail-fast behavior.
func evalAndReport(ev *eval.Evaluator, e *env.Env, source string) error {
	forms, err := reader.ReadAll(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	for _, form := range forms {
		result, err := ev.Eval(form, e)
		if err != nil {
			redColor.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		if result != nil {
			yellowColor.Fprintf(os.Stdout, "%s\n", result.String())
		}
	}
	return nil
}
