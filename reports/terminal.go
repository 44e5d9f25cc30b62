package reports

import "github.com/charmbracelet/glamour"

// RenderTerminal renders markdown for a terminal of the given width.
func RenderTerminal(src string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(src)
}
