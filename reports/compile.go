package reports

import (
	"fmt"
	"strings"

	"github.com/reusee/literate/groups"
)

type Figure struct {
	Name string
	Data []byte
}

type Stats struct {
	Groups   int
	Prose    int
	Code     int
	Figures  int
	Warnings int
}

type Document struct {
	Markdown string
	Figures  []Figure
	Stats    Stats
}

func FigureName(groupIndex int, ordinal int) string {
	return fmt.Sprintf("figure_%d_%d.png", groupIndex, ordinal)
}

// Compile renders groups in order. Fragments are separated by blank lines.
func Compile(gs []*groups.Group) *Document {
	doc := &Document{
		Stats: Stats{
			Groups: len(gs),
		},
	}
	fragments := make([]string, 0, len(gs))
	for _, g := range gs {
		fragment, figures := CompileGroup(g)
		fragments = append(fragments, fragment)
		doc.Figures = append(doc.Figures, figures...)

		if g.IsDocstring() {
			doc.Stats.Prose++
			continue
		}
		doc.Stats.Code++
		doc.Stats.Figures += len(figures)
		if r := g.Results; r != nil && (r.Stderr != "" || r.Error != nil) {
			doc.Stats.Warnings++
		}
	}
	doc.Markdown = strings.Join(fragments, "\n")
	return doc
}

// CompileGroup renders one group. Prose is emitted as is. Code is fenced,
// followed by its notes and, once executed, by its output.
func CompileGroup(g *groups.Group) (string, []Figure) {
	if doc := g.Docstring(); doc != "" {
		return doc + "\n", nil
	}

	var b strings.Builder
	b.WriteString(fence("python", g.Display()))

	for _, note := range g.Notes() {
		b.WriteString("\n")
		b.WriteString(admonition("Note",
			fence("python", note.Header)+
				"\n"+
				note.Body+"\n",
		))
	}

	r := g.Results
	if r == nil {
		return b.String(), nil
	}

	if r.Stderr != "" {
		b.WriteString("\n")
		b.WriteString(admonition("Warning", fence("text", strings.TrimSuffix(r.Stderr, "\n"))))
	}
	if r.Error != nil {
		b.WriteString("\n")
		b.WriteString(admonition("Warning: Exception Raised", fence("text", r.Error.Error())))
	}
	if r.Stdout != "" {
		b.WriteString("\n")
		b.WriteString(fence("text", strings.TrimSuffix(r.Stdout, "\n")))
	}

	var figures []Figure
	for i, data := range r.Figures {
		name := FigureName(g.Index, i)
		figures = append(figures, Figure{
			Name: name,
			Data: data,
		})
		fmt.Fprintf(&b, "\n![%s](./%s)\n", name, name)
	}

	return b.String(), figures
}

// fence wraps body in a code fence longer than any backtick run inside.
func fence(lang string, body string) string {
	longest, run := 0, 0
	for _, c := range body {
		if c == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	marker := strings.Repeat("`", max(3, longest+1))
	return marker + lang + "\n" + body + "\n" + marker + "\n"
}

// admonition renders a titled block quote.
func admonition(title string, body string) string {
	var b strings.Builder
	b.WriteString("> **" + title + "**\n>\n")
	for _, line := range strings.SplitAfter(strings.TrimSuffix(body, "\n"), "\n") {
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			b.WriteString(">\n")
			continue
		}
		b.WriteString("> " + line + "\n")
	}
	return b.String()
}
