package groups

import (
	"io"

	"github.com/reusee/literate/lexes"
)

var continuations = map[string]bool{
	"elif":    true,
	"else":    true,
	"except":  true,
	"finally": true,
}

// Split partitions logical lines into groups. A line at indentation depth
// zero seals the pending lines into a group, unless the pending lines end
// with a decorator or the line continues a compound statement.
func Split(lines []lexes.Line) []*Group {
	var ret []*Group
	var pending []lexes.Line

	seal := func() {
		ret = append(ret, &Group{
			Index: len(ret),
			Lines: pending,
		})
		pending = nil
	}

	depth := 0
	for _, line := range lines {
		depth += line.Depth()
		if depth == 0 &&
			line.Significant() &&
			len(pending) > 0 &&
			!isDecorator(pending[len(pending)-1]) &&
			!isContinuation(line) {
			seal()
		}
		pending = append(pending, line)
	}

	if hasContent(pending) {
		seal()
	}

	return ret
}

func Parse(r io.Reader) ([]*Group, error) {
	lines, err := lexes.Read(r)
	if err != nil {
		return nil, err
	}
	return Split(lines), nil
}

func isDecorator(line lexes.Line) bool {
	first, ok := line.First()
	return ok && first.Is(lexes.Op, "@")
}

func isContinuation(line lexes.Line) bool {
	first, ok := line.First()
	return ok && first.Kind == lexes.Name && continuations[first.Text]
}

func hasContent(lines []lexes.Line) bool {
	for _, line := range lines {
		if line.Source() != "" {
			return true
		}
	}
	return false
}
