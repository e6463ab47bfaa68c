/*
File    : goripl/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for GoRIPL. The REPL
provides an interactive environment where users can:
- Enter forms line by line, with unbalanced input accumulated across
  lines until the delimiters close
- See immediate results of their evaluation
- Navigate command history and tab-complete bound names
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing and
integrates with the reader and evaluator to execute user input.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/goripl/env"
	"github.com/akashmaji946/goripl/eval"
	"github.com/akashmaji946/goripl/lexer"
	"github.com/akashmaji946/goripl/reader"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// specialFormNames seeds tab-completion alongside bound environment
// names, since special forms are never themselves Env bindings.
var specialFormNames = []string{
	"quote", "quasiquote", "unquote", "unquote-splicing",
	"if", "and", "or", "cond", "set!", "define", "lambda", "fn", "λ", "defn",
	"defmacro", "let", "begin", "eval", "apply", "import",
}

// Repl represents the Read-Eval-Print Loop instance.
type Repl struct {
	Banner     string // ASCII art banner displayed at startup
	Version    string // Version string of the interpreter
	Author     string // Author contact information
	Line       string // Separator line for visual formatting
	License    string // Software license information
	Prompt     string // Command prompt shown to the user at a fresh form
	ContPrompt string // Continuation prompt shown mid unbalanced form
	SessionID  string // Session UUID, shown in the banner
}

// NewRepl creates and initializes a new REPL instance, tagging it with
// a fresh session UUID that is shown in the banner. The evaluator's
// --trace lines do not carry it.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{
		Banner:     banner,
		Version:    version,
		Author:     author,
		Line:       line,
		License:    license,
		Prompt:     prompt,
		ContPrompt: strings.Repeat(" ", len(prompt)-2) + ".. ",
		SessionID:  uuid.NewString(),
	}
}

// PrintBannerInfo displays the welcome banner, version/author/session
// info, and basic usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License+" | Session: "+r.SessionID)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to GoRIPL!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history, Tab to complete a name")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// completer offers completions drawn from the environment's bound
// names plus the fixed set of special forms.
type completer struct {
	e *env.Env
}

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	word := string(line[:pos])
	cut := strings.LastIndexAny(word, " \t()[]{}")
	prefix := word[cut+1:]
	if prefix == "" {
		return nil, 0
	}
	var out [][]rune
	for _, name := range append(append([]string{}, specialFormNames...), c.e.Names()...) {
		if strings.HasPrefix(name, prefix) {
			out = append(out, []rune(name[len(prefix):]))
		}
	}
	return out, len(prefix)
}

// Start begins the REPL main loop against the given environment,
// reading from reader and writing to writer until '.exit' or EOF.
// Unbalanced input is accumulated across lines (lexer.HasBalancedDelimiters)
// under a continuation prompt before being read and evaluated as a whole,
// mirroring the source's in_prompt/out_prompt two-prompt scheme.
func (r *Repl) Start(rd io.Reader, writer io.Writer, ev *eval.Evaluator, e *env.Env) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:       r.Prompt,
		AutoComplete: &completer{e: e},
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	ev.SetWriter(writer)

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		trimmed := strings.TrimSpace(line)
		if buf.Len() == 0 {
			if trimmed == "" {
				continue
			}
			if trimmed == ".exit" {
				writer.Write([]byte("Good Bye!\n"))
				return
			}
		}

		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)

		if !lexer.HasBalancedDelimiters(buf.String()) {
			rl.SetPrompt(r.ContPrompt)
			continue
		}
		rl.SetPrompt(r.Prompt)

		src := buf.String()
		buf.Reset()
		rl.SaveHistory(strings.ReplaceAll(src, "\n", " "))

		r.evalAndPrint(writer, src, ev, e)
	}
}

// evalAndPrint reads every top-level form out of src and evaluates each
// against e in turn, printing a colored result or error per form.
// Panics escaping the evaluator (a host-level bug, not a guest error)
// are recovered and reported rather than killing the session.
func (r *Repl) evalAndPrint(writer io.Writer, src string, ev *eval.Evaluator, e *env.Env) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	parsed, err := reader.ReadAll(src)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	for _, form := range parsed {
		result, err := ev.Eval(form, e)
		if err != nil {
			redColor.Fprintf(writer, "%s\n", err)
			return
		}
		if result != nil {
			yellowColor.Fprintf(writer, "%s\n", result.String())
		}
	}
}
