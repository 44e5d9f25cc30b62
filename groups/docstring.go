package groups

import (
	"strings"

	"github.com/reusee/literate/lexes"
	"go.starlark.net/syntax"
)

var literalOptions = &syntax.FileOptions{}

// Docstring returns the text of tokens that form an isolated string
// statement. Adjacent literals are concatenated. It returns "" for
// anything else, or when the text is empty.
func Docstring(tokens []lexes.Token) string {
	var b strings.Builder
	for _, token := range tokens {
		if token.Kind.Trivia() {
			continue
		}
		if token.Kind != lexes.String {
			return ""
		}
		text, ok := evalString(token.Text)
		if !ok {
			return ""
		}
		b.WriteString(text)
	}
	return b.String()
}

func evalString(literal string) (string, bool) {
	expr, err := literalOptions.ParseExpr("", literal, 0)
	if err != nil {
		return "", false
	}
	lit, ok := expr.(*syntax.Literal)
	if !ok || lit.Token != syntax.STRING {
		// bytes
		return "", false
	}
	str, ok := lit.Value.(string)
	return str, ok
}

// IsBlockStart reports whether the line opens an indented block.
func IsBlockStart(line lexes.Line) bool {
	last, ok := line.Last()
	return ok && last.Is(lexes.Op, ":")
}

// Equalize keeps the first line and strips the smallest common run of
// leading blanks from the following non-blank lines.
func Equalize(doc string) string {
	lines := splitLines(doc)
	if len(lines) <= 1 {
		return doc
	}

	indent := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	if indent > 0 {
		for i := 1; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == "" {
				continue
			}
			lines[i] = lines[i][indent:]
		}
	}

	return strings.Join(lines, "\n")
}

// splitLines splits at \n, \r\n and \r without a trailing empty element.
func splitLines(s string) []string {
	var ret []string
	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			ret = append(ret, s)
			break
		}
		ret = append(ret, s[:i])
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		s = s[i+1:]
	}
	return ret
}
