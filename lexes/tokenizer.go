package lexes

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

func Tokenize(r io.Reader) ([]Token, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return TokenizeString(string(content))
}

func TokenizeString(src string) ([]Token, error) {
	t := &tokenizer{
		src:     src,
		line:    1,
		indents: []int{0},
		bol:     true,
	}
	if err := t.run(); err != nil {
		return nil, err
	}
	return t.tokens, nil
}

type tokenizer struct {
	src       string
	pos       int
	line      int
	lineStart int
	indents   []int
	closers   []byte
	bol       bool // at the beginning of a logical line
	prefix    strings.Builder
	tokens    []Token
}

func (t *tokenizer) run() error {
	for t.pos < len(t.src) {
		if t.bol && len(t.closers) == 0 {
			if err := t.indentation(); err != nil {
				return err
			}
			continue
		}
		if err := t.next(); err != nil {
			return err
		}
	}
	return t.finish()
}

func (t *tokenizer) position() Position {
	return Position{
		Line: t.line,
		Col:  t.pos - t.lineStart,
	}
}

func (t *tokenizer) errorf(pos Position, format string, args ...any) error {
	return &Error{
		Pos: pos,
		Msg: fmt.Sprintf(format, args...),
	}
}

func (t *tokenizer) emit(kind Kind, text string, pos Position) {
	t.tokens = append(t.tokens, Token{
		Kind:   kind,
		Prefix: t.prefix.String(),
		Text:   text,
		Pos:    pos,
	})
	t.prefix.Reset()
}

// indentation measures the leading blanks of a physical line. Blank and
// comment-only lines never change the indentation level.
func (t *tokenizer) indentation() error {
	start := t.pos
	col := 0
measure:
	for t.pos < len(t.src) {
		switch t.src[t.pos] {
		case ' ':
			col++
		case '\t':
			col = (col/8 + 1) * 8
		case '\f':
			col = 0
		default:
			break measure
		}
		t.pos++
	}
	t.prefix.WriteString(t.src[start:t.pos])
	if t.pos >= len(t.src) {
		return nil
	}

	switch c := t.src[t.pos]; c {
	case '#':
		t.comment()
		return nil
	case '\n', '\r':
		t.newline(NL)
		return nil
	}

	pos := t.position()
	top := t.indents[len(t.indents)-1]
	switch {
	case col > top:
		t.indents = append(t.indents, col)
		t.emit(Indent, "", pos)
	case col < top:
		for col < t.indents[len(t.indents)-1] {
			t.indents = t.indents[:len(t.indents)-1]
			t.emit(Dedent, "", pos)
		}
		if col != t.indents[len(t.indents)-1] {
			return t.errorf(pos, "unindent does not match any outer indentation level")
		}
	}
	t.bol = false
	return nil
}

func (t *tokenizer) next() error {
	c := t.src[t.pos]
	switch {

	case c == ' ' || c == '\t' || c == '\f':
		t.prefix.WriteByte(c)
		t.pos++

	case c == '\\':
		n := newlineLen(t.src, t.pos+1)
		if n == 0 {
			return t.errorf(t.position(), "unexpected character after line continuation character")
		}
		t.prefix.WriteString(t.src[t.pos : t.pos+1+n])
		t.pos += 1 + n
		t.line++
		t.lineStart = t.pos

	case c == '\n' || c == '\r':
		if len(t.closers) > 0 {
			t.newline(NL)
		} else {
			t.newline(Newline)
			t.bol = true
		}

	case c == '#':
		t.comment()

	case c == '"' || c == '\'':
		return t.str(0)

	case isDigit(c) || c == '.' && t.pos+1 < len(t.src) && isDigit(t.src[t.pos+1]):
		t.number()

	default:
		r, _ := utf8.DecodeRuneInString(t.src[t.pos:])
		if r == '_' || unicode.IsLetter(r) {
			if n := stringPrefixLen(t.src[t.pos:]); n > 0 {
				return t.str(n)
			}
			t.name()
			return nil
		}
		return t.operator()

	}
	return nil
}

func (t *tokenizer) newline(kind Kind) {
	pos := t.position()
	n := newlineLen(t.src, t.pos)
	t.emit(kind, t.src[t.pos:t.pos+n], pos)
	t.pos += n
	t.line++
	t.lineStart = t.pos
}

func (t *tokenizer) comment() {
	pos := t.position()
	start := t.pos
	for t.pos < len(t.src) && t.src[t.pos] != '\n' && t.src[t.pos] != '\r' {
		t.pos++
	}
	t.emit(Comment, t.src[start:t.pos], pos)
}

func (t *tokenizer) name() {
	pos := t.position()
	start := t.pos
	for t.pos < len(t.src) {
		r, size := utf8.DecodeRuneInString(t.src[t.pos:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		t.pos += size
	}
	t.emit(Name, t.src[start:t.pos], pos)
}

func (t *tokenizer) number() {
	pos := t.position()
	start := t.pos
	hex := strings.HasPrefix(t.src[t.pos:], "0x") || strings.HasPrefix(t.src[t.pos:], "0X")
	for t.pos < len(t.src) {
		c := t.src[t.pos]
		if isDigit(c) || isASCIILetter(c) || c == '_' || c == '.' {
			t.pos++
			continue
		}
		if (c == '+' || c == '-') && !hex {
			if prev := t.src[t.pos-1]; prev == 'e' || prev == 'E' {
				t.pos++
				continue
			}
		}
		break
	}
	t.emit(Number, t.src[start:t.pos], pos)
}

func (t *tokenizer) str(prefixLen int) error {
	pos := t.position()
	start := t.pos
	t.pos += prefixLen
	quote := t.src[t.pos : t.pos+1]
	if strings.HasPrefix(t.src[t.pos:], strings.Repeat(quote, 3)) {
		quote = strings.Repeat(quote, 3)
	}
	triple := len(quote) == 3
	t.pos += len(quote)

	for {
		if t.pos >= len(t.src) {
			return t.errorf(pos, "unterminated string literal")
		}
		c := t.src[t.pos]
		switch {

		case c == '\\':
			if n := newlineLen(t.src, t.pos+1); n > 0 {
				t.pos += 1 + n
				t.line++
				t.lineStart = t.pos
				continue
			}
			t.pos += 2

		case strings.HasPrefix(t.src[t.pos:], quote):
			t.pos += len(quote)
			t.emit(String, t.src[start:t.pos], pos)
			return nil

		case c == '\n' || c == '\r':
			if !triple {
				return t.errorf(pos, "unterminated string literal")
			}
			t.pos += newlineLen(t.src, t.pos)
			t.line++
			t.lineStart = t.pos

		default:
			t.pos++

		}
	}
}

// longest first
var operators = []string{
	"**=", "//=", ">>=", "<<=", "...",
	"->", "**", "//", "<<", ">>", "<=", ">=", "==", "!=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "@=", ":=",
	"+", "-", "*", "/", "%", "&", "|", "^", "~", "<", ">",
	"(", ")", "[", "]", "{", "}", ",", ":", ".", ";", "=", "@", "!",
}

var closerOf = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
}

func (t *tokenizer) operator() error {
	pos := t.position()
	for _, op := range operators {
		if !strings.HasPrefix(t.src[t.pos:], op) {
			continue
		}
		switch c := op[0]; c {
		case '(', '[', '{':
			t.closers = append(t.closers, closerOf[c])
		case ')', ']', '}':
			if len(t.closers) == 0 {
				return t.errorf(pos, "unmatched '%c'", c)
			}
			if expected := t.closers[len(t.closers)-1]; expected != c {
				return t.errorf(pos, "closing parenthesis '%c' does not match, expecting '%c'", c, expected)
			}
			t.closers = t.closers[:len(t.closers)-1]
		}
		t.pos += len(op)
		t.emit(Op, op, pos)
		return nil
	}
	r, _ := utf8.DecodeRuneInString(t.src[t.pos:])
	return t.errorf(pos, "unexpected character %q", r)
}

func (t *tokenizer) finish() error {
	pos := t.position()
	if len(t.closers) > 0 {
		return t.errorf(pos, "unexpected EOF in multi-line statement")
	}
	if !t.bol {
		t.emit(Newline, "", pos)
		t.bol = true
	}
	for len(t.indents) > 1 {
		t.indents = t.indents[:len(t.indents)-1]
		t.emit(Dedent, "", pos)
	}
	t.emit(EndMarker, "", pos)
	return nil
}

func newlineLen(src string, pos int) int {
	switch {
	case strings.HasPrefix(src[min(pos, len(src)):], "\r\n"):
		return 2
	case pos < len(src) && (src[pos] == '\n' || src[pos] == '\r'):
		return 1
	}
	return 0
}

// stringPrefixLen returns the length of a string prefix such as r or rb
// when it is directly followed by a quote.
func stringPrefixLen(s string) int {
	for n := 1; n <= 2 && n < len(s); n++ {
		if !strings.ContainsRune("rRbBuUfF", rune(s[n-1])) {
			return 0
		}
		if s[n] == '"' || s[n] == '\'' {
			return n
		}
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
