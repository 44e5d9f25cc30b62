package groups

import (
	"strings"
)

// Note is prose placed as the first statement of an inner block.
type Note struct {
	// Header is the block opening line, verbatim, without blank lines.
	Header string
	Body   string
}

func (g *Group) Notes() []Note {
	docs := make([]string, len(g.Lines))
	for i, line := range g.Lines {
		docs[i] = Docstring(line)
	}

	var ret []Note
	for i := 1; i < len(g.Lines); i++ {
		if docs[i] == "" || docs[i-1] != "" {
			continue
		}
		if !IsBlockStart(g.Lines[i-1]) {
			continue
		}
		ret = append(ret, Note{
			Header: dropBlankLines(g.Lines[i-1].Source()),
			Body:   Equalize(docs[i]),
		})
	}
	return ret
}

func dropBlankLines(s string) string {
	var lines []string
	for _, line := range splitLines(s) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
