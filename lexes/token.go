package lexes

import "fmt"

type Kind uint8

const (
	EndMarker Kind = iota
	Name
	Number
	String
	Op
	Comment
	Newline // ends a logical line
	NL      // ends a physical line only
	Indent
	Dedent
)

var kindNames = [...]string{
	EndMarker: "ENDMARKER",
	Name:      "NAME",
	Number:    "NUMBER",
	String:    "STRING",
	Op:        "OP",
	Comment:   "COMMENT",
	Newline:   "NEWLINE",
	NL:        "NL",
	Indent:    "INDENT",
	Dedent:    "DEDENT",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Trivia reports whether tokens of this kind carry no statement content.
func (k Kind) Trivia() bool {
	switch k {
	case Indent, Dedent, Comment, Newline, NL, EndMarker:
		return true
	}
	return false
}

type Position struct {
	Line int // 1-based
	Col  int // 0-based byte offset in the line
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a lexical unit. Prefix holds the blanks and backslash
// continuations that precede Text, so Prefix+Text of every token, in
// order, is the source.
type Token struct {
	Kind   Kind
	Prefix string
	Text   string
	Pos    Position
}

func (t Token) Literal() string {
	return t.Prefix + t.Text
}

func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at %s", t.Kind, t.Text, t.Pos)
}
