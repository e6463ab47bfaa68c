/*
File    : goripl/reader/reader.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package reader implements the recursive-descent parser that turns a
// lexer.Token stream into forms.Form values. Read returns the first
// complete form in the text; ReadAll returns every top-level form.
package reader

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/lexer"
	"github.com/akashmaji946/goripl/rerr"
)

// Reader consumes a token stream one form at a time.
type Reader struct {
	tokens []lexer.Token
	pos    int
}

// New constructs a Reader over already-tokenized input.
func New(tokens []lexer.Token) *Reader {
	return &Reader{tokens: tokens}
}

// Read tokenizes and parses text, returning the first complete form.
func Read(text string) (forms.Form, error) {
	tokens, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	r := New(tokens)
	return r.ReadForm()
}

// ReadAll tokenizes and parses text, returning every top-level form in order.
func ReadAll(text string) ([]forms.Form, error) {
	tokens, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	r := New(tokens)
	var out []forms.Form
	for !r.atEOF() {
		f, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (r *Reader) peek() lexer.Token { return r.tokens[r.pos] }

func (r *Reader) atEOF() bool { return r.peek().Type == lexer.EOF }

func (r *Reader) advance() lexer.Token {
	t := r.tokens[r.pos]
	if t.Type != lexer.EOF {
		r.pos++
	}
	return t
}

func (r *Reader) pos2(t lexer.Token) rerr.Position {
	return rerr.Position{Line: t.Line, Column: t.Column}
}

// ReadForm reads exactly one form, advancing past it.
func (r *Reader) ReadForm() (forms.Form, error) {
	tok := r.advance()

	switch tok.Type {
	case lexer.EOF:
		return nil, rerr.NewParseError(r.pos2(tok), "unexpected end of input")

	case lexer.QUOTE:
		return r.readWrapped("quote", tok)
	case lexer.QUASI_QUOTE:
		return r.readWrapped("quasiquote", tok)
	case lexer.UNQUOTE:
		return r.readWrapped("unquote", tok)
	case lexer.UNQUOTE_SPLICE:
		return r.readWrapped("unquote-splicing", tok)

	case lexer.NULL:
		return forms.Nil, nil

	case lexer.LPAREN:
		return r.readList(tok)
	case lexer.LBRACKET:
		return r.readVector(tok)
	case lexer.LBRACE:
		return r.readMap(tok)

	case lexer.RPAREN, lexer.RBRACKET, lexer.RBRACE:
		return nil, rerr.NewParseError(r.pos2(tok), "unexpected %s", tok.Literal)

	case lexer.COMMA:
		return nil, rerr.NewParseError(r.pos2(tok), "unexpected ','")

	case lexer.INT:
		v := new(big.Int)
		v.SetString(tok.Literal, 10)
		return &forms.Integer{Value: v}, nil
	case lexer.INT_BIN:
		v := new(big.Int)
		v.SetString(strings.Replace(strings.TrimPrefix(tok.Literal, "-"), "0b", "", 1), 2)
		if strings.HasPrefix(tok.Literal, "-") {
			v.Neg(v)
		}
		return &forms.Integer{Value: v}, nil
	case lexer.INT_OCT:
		v := new(big.Int)
		v.SetString(strings.Replace(strings.TrimPrefix(tok.Literal, "-"), "0o", "", 1), 8)
		if strings.HasPrefix(tok.Literal, "-") {
			v.Neg(v)
		}
		return &forms.Integer{Value: v}, nil
	case lexer.INT_HEX:
		v := new(big.Int)
		v.SetString(strings.Replace(strings.TrimPrefix(tok.Literal, "-"), "0x", "", 1), 16)
		if strings.HasPrefix(tok.Literal, "-") {
			v.Neg(v)
		}
		return &forms.Integer{Value: v}, nil

	case lexer.FLOAT:
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, rerr.NewParseError(r.pos2(tok), "bad float literal %q", tok.Literal)
		}
		return &forms.Float{Value: f}, nil

	case lexer.COMPLEX:
		return parseComplex(tok.Literal, r.pos2(tok))
	case lexer.COMPLEX_PURE:
		return parsePureComplex(tok.Literal, r.pos2(tok))

	case lexer.BOOL:
		return forms.MakeBool(tok.Literal == "#t"), nil

	case lexer.DOCSTRING:
		return &forms.String{Value: unquoteBody(tok.Literal, 3)}, nil
	case lexer.STRING:
		return &forms.String{Value: unescapeString(unquoteBody(tok.Literal, 1))}, nil

	case lexer.KEYWORD:
		return &forms.Keyword{Name: strings.TrimPrefix(tok.Literal, ":")}, nil

	case lexer.SYMBOL:
		return &forms.Symbol{Name: tok.Literal}, nil

	default:
		return nil, rerr.NewParseError(r.pos2(tok), "unexpected token %s", tok)
	}
}

func (r *Reader) readWrapped(head string, quoteTok lexer.Token) (forms.Form, error) {
	if r.atEOF() {
		return nil, rerr.NewParseError(r.pos2(quoteTok), "%s: missing form", head)
	}
	inner, err := r.ReadForm()
	if err != nil {
		return nil, err
	}
	return forms.NewList(&forms.Symbol{Name: head}, inner), nil
}

// readList reads the body of a parenthesized form. A leading comma marks
// a tuple literal, printed by forms.Tuple.String as "(, e1 e2 ... en)" -
// recognizing it here lets read(format(x)) round-trip a Tuple.
func (r *Reader) readList(open lexer.Token) (forms.Form, error) {
	isTuple := false
	if r.peek().Type == lexer.COMMA {
		r.advance()
		isTuple = true
	}

	var elements []forms.Form
	for {
		if r.atEOF() {
			return nil, rerr.NewParseError(r.pos2(open), "unterminated list")
		}
		if r.peek().Type == lexer.RPAREN {
			r.advance()
			if isTuple {
				return &forms.Tuple{Elements: elements}, nil
			}
			return forms.NewList(elements...), nil
		}
		f, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		elements = append(elements, f)
	}
}

func (r *Reader) readVector(open lexer.Token) (forms.Form, error) {
	var elements []forms.Form
	for {
		if r.atEOF() {
			return nil, rerr.NewParseError(r.pos2(open), "unterminated vector")
		}
		if r.peek().Type == lexer.RBRACKET {
			r.advance()
			return &forms.Vector{Elements: elements}, nil
		}
		f, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		elements = append(elements, f)
	}
}

func (r *Reader) readMap(open lexer.Token) (forms.Form, error) {
	var elements []forms.Form
	for {
		if r.atEOF() {
			return nil, rerr.NewParseError(r.pos2(open), "unterminated map")
		}
		if r.peek().Type == lexer.RBRACE {
			r.advance()
			break
		}
		if r.peek().Type == lexer.COMMA {
			r.advance()
			continue
		}
		f, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		elements = append(elements, f)
	}
	if len(elements)%2 != 0 {
		return nil, rerr.NewParseError(r.pos2(open), "map literal must have an even number of forms")
	}
	m := forms.NewMap()
	for i := 0; i < len(elements); i += 2 {
		m.Set(elements[i], elements[i+1])
	}
	return m, nil
}

func unquoteBody(lit string, quoteLen int) string {
	if len(lit) < 2*quoteLen {
		return ""
	}
	return lit[quoteLen : len(lit)-quoteLen]
}

func unescapeString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func parseComplex(lit string, pos rerr.Position) (forms.Form, error) {
	// lit: -?d+(.d*)?[+-]d+(.d*)?j ; find the split sign (not the leading sign).
	body := strings.TrimSuffix(lit, "j")
	start := 1 // skip a possible leading '-'
	if body[0] != '-' {
		start = 0
	}
	splitAt := -1
	for i := len(body) - 1; i > start; i-- {
		if body[i] == '+' || body[i] == '-' {
			splitAt = i
			break
		}
	}
	if splitAt < 0 {
		return nil, rerr.NewParseError(pos, "bad complex literal %q", lit)
	}
	realPart, imagPart := body[:splitAt], body[splitAt:]
	re, err := strconv.ParseFloat(realPart, 64)
	if err != nil {
		return nil, rerr.NewParseError(pos, "bad complex literal %q", lit)
	}
	im, err := strconv.ParseFloat(imagPart, 64)
	if err != nil {
		return nil, rerr.NewParseError(pos, "bad complex literal %q", lit)
	}
	return &forms.Complex{Real: re, Imag: im}, nil
}

func parsePureComplex(lit string, pos rerr.Position) (forms.Form, error) {
	body := strings.TrimSuffix(lit, "j")
	im, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return nil, rerr.NewParseError(pos, "bad complex literal %q", lit)
	}
	return &forms.Complex{Real: 0, Imag: im}, nil
}
