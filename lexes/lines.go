package lexes

import (
	"io"
	"strings"
)

// Line is one logical line: the tokens of a statement across all its
// physical lines, ending with a Newline token. Blank and comment-only
// physical lines before the statement belong to it.
type Line []Token

// Split cuts tokens at Newline tokens. Tokens after the last Newline
// (trailing comments, dedents, the end marker) form a final line without
// significant tokens.
func Split(tokens []Token) []Line {
	var lines []Line
	var current Line
	for _, token := range tokens {
		current = append(current, token)
		if token.Kind == Newline {
			lines = append(lines, current)
			current = nil
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

func Read(r io.Reader) ([]Line, error) {
	tokens, err := Tokenize(r)
	if err != nil {
		return nil, err
	}
	return Split(tokens), nil
}

// Depth is the indentation change contributed by the line.
func (l Line) Depth() (ret int) {
	for _, token := range l {
		switch token.Kind {
		case Indent:
			ret++
		case Dedent:
			ret--
		}
	}
	return
}

func (l Line) First() (Token, bool) {
	for _, token := range l {
		if !token.Kind.Trivia() {
			return token, true
		}
	}
	return Token{}, false
}

func (l Line) Last() (Token, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if !l[i].Kind.Trivia() {
			return l[i], true
		}
	}
	return Token{}, false
}

func (l Line) Significant() bool {
	_, ok := l.First()
	return ok
}

func (l Line) Source() string {
	var b strings.Builder
	for _, token := range l {
		b.WriteString(token.Prefix)
		b.WriteString(token.Text)
	}
	return b.String()
}
