/*
File    : goripl/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"regexp"
	"strings"

	"github.com/akashmaji946/goripl/rerr"
)

// tagOrder lists the named capture groups in priority order. Go's regexp
// engine (like the source's Python re, in non-POSIX mode) matches
// leftmost-first: when more than one alternative could match at the same
// position, the one listed earliest in the pattern wins. This table is the
// single source of truth for that priority.
var tagOrder = []string{
	"COMMENT_SEXP",
	"COMMENT",
	"UNQUOTE_SPLICE",
	"QUOTE",
	"QUASI_QUOTE",
	"UNQUOTE",
	"NULL",
	"LPAREN",
	"RPAREN",
	"LBRACKET",
	"RBRACKET",
	"LBRACE",
	"RBRACE",
	"COMPLEX",
	"COMPLEX_PURE",
	"FLOAT",
	"INT_BIN",
	"INT_OCT",
	"INT_HEX",
	"INT",
	"BOOL",
	"COMMA",
	"DOCSTRING",
	"STRING",
	"KEYWORD",
	"SYMBOL",
	"NEWLINE",
	"SPACE",
	"MISMATCH",
}

// patterns maps each tag to its sub-pattern. Keywords/symbols exclude
// delimiter and whitespace characters so a symbol never swallows the '('
// that follows it.
var patterns = map[string]string{
	"COMMENT_SEXP":   `;#\([^)]*\)`,
	"COMMENT":        `;[^\n]*`,
	"UNQUOTE_SPLICE": `~@`,
	"QUOTE":          `'`,
	"QUASI_QUOTE":    "`",
	"UNQUOTE":        `~`,
	"NULL":           `\(\)|None\b`,
	"LPAREN":         `\(`,
	"RPAREN":         `\)`,
	"LBRACKET":       `\[`,
	"RBRACKET":       `\]`,
	"LBRACE":         `\{`,
	"RBRACE":         `\}`,
	"COMPLEX":        `-?\d+(\.\d*)?[+-]\d+(\.\d*)?j`,
	"COMPLEX_PURE":   `-?\d+(\.\d*)?j`,
	"FLOAT":          `-?\d+\.\d+`,
	"INT_BIN":        `-?0b[01]+`,
	"INT_OCT":        `-?0o[0-7]+`,
	"INT_HEX":        `-?0x[0-9a-fA-F]+`,
	"INT":            `-?\d+`,
	"BOOL":           `#t\b|#f\b`,
	"COMMA":          `,`,
	"DOCSTRING":      `"""([^"\\]|\\.)*"""`,
	"STRING":         `"([^"\\]|\\.)*"`,
	"KEYWORD":        `:[^\s()\[\]{}#,.]+`,
	"SYMBOL":         `[^\s()\[\]{}#,]+`,
	"NEWLINE":        `\n`,
	"SPACE":          `[ \t\r]+`,
	"MISMATCH":       `.`,
}

var master = buildMaster()

func buildMaster() *regexp.Regexp {
	var b strings.Builder
	for i, tag := range tagOrder {
		if i > 0 {
			b.WriteString("|")
		}
		b.WriteString("(?P<")
		b.WriteString(tag)
		b.WriteString(">")
		b.WriteString(patterns[tag])
		b.WriteString(")")
	}
	return regexp.MustCompile(b.String())
}

// Tokenize scans text into a flat token stream, discarding comments and
// whitespace, tracking line/column for diagnostics. A character matching
// none of the named alternatives (MISMATCH) is reported as a ParseError.
func Tokenize(text string) ([]Token, error) {
	var tokens []Token
	line, col := 1, 1
	names := master.SubexpNames()

	pos := 0
	for pos < len(text) {
		loc := master.FindStringSubmatchIndex(text[pos:])
		if loc == nil || loc[0] != 0 {
			return nil, rerr.NewParseError(rerr.Position{Line: line, Column: col}, "unrecognized input near %q", snippet(text[pos:]))
		}
		matched := text[pos : pos+loc[1]]

		tag := ""
		for gi := 1; gi < len(names); gi++ {
			if names[gi] == "" {
				continue
			}
			s, e := loc[2*gi], loc[2*gi+1]
			if s >= 0 && e >= 0 {
				tag = names[gi]
				break
			}
		}

		switch tag {
		case "COMMENT_SEXP", "COMMENT", "SPACE":
			// discarded
		case "NEWLINE":
			line++
			col = 1
			pos += len(matched)
			continue
		case "MISMATCH":
			return nil, rerr.NewParseError(rerr.Position{Line: line, Column: col}, "unrecognized character %q", matched)
		default:
			tokens = append(tokens, Token{
				Type:    TokenType(tag),
				Literal: matched,
				Line:    line,
				Column:  col,
			})
		}

		col += len(matched)
		pos += len(matched)
	}

	tokens = append(tokens, Token{Type: EOF, Line: line, Column: col})
	return tokens, nil
}

func snippet(s string) string {
	if len(s) > 20 {
		return s[:20] + "..."
	}
	return s
}

// HasBalancedDelimiters reports whether text has matched parens, brackets,
// and braces — a cheap structural check, not a full parse. It does not
// account for delimiters inside string literals, mirroring the original
// REPL's own known limitation (has_matching_parens in repl.py).
func HasBalancedDelimiters(text string) bool {
	depth := 0
	for _, r := range text {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// LooksLikeOpenForm reports whether text's first non-space character is '('
// with no later ')' anywhere in text — a cheap guard to distinguish
// "still typing" from a real parse error. The REPL does not call it; it
// uses HasBalancedDelimiters instead.
func LooksLikeOpenForm(text string) bool {
	trimmed := strings.TrimLeft(text, " \t\r\n")
	if trimmed == "" || trimmed[0] != '(' {
		return false
	}
	return !strings.Contains(trimmed, ")")
}
