package reports

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { max-width: 52em; margin: 2em auto; padding: 0 1em; font-family: sans-serif; line-height: 1.5; }
pre { background: #f6f8fa; padding: 0.8em; overflow-x: auto; }
blockquote { border-left: 4px solid #d0d7de; margin: 0; padding: 0 1em; color: #444; }
img { max-width: 100%; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// RenderHTML renders markdown to a standalone page. The title is the text
// of the first top level heading, or fallbackTitle.
func RenderHTML(src string, fallbackTitle string) (string, error) {
	body := new(bytes.Buffer)
	if err := markdown.Convert([]byte(src), body); err != nil {
		return "", err
	}

	title, err := firstHeading(body.String())
	if err != nil {
		return "", err
	}
	if title == "" {
		title = fallbackTitle
	}

	out := new(strings.Builder)
	if err := page.Execute(out, map[string]any{
		"Title": title,
		"Body":  template.HTML(body.String()),
	}); err != nil {
		return "", err
	}
	return out.String(), nil
}

func firstHeading(fragment string) (string, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}
	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.DataAtom == atom.H1 {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := find(c); found != nil {
				return found
			}
		}
		return nil
	}
	h1 := find(doc)
	if h1 == nil {
		return "", nil
	}
	var b strings.Builder
	var text func(*html.Node)
	text = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			text(c)
		}
	}
	text(h1)
	return strings.TrimSpace(b.String()), nil
}
