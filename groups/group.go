package groups

import (
	"errors"
	"strings"

	"github.com/reusee/literate/cages"
	"github.com/reusee/literate/lexes"
)

// Group is a minimal top-level unit of source: one simple statement, or a
// compound statement with its body and chained clauses.
type Group struct {
	// Index is the position in the script, fixed at creation.
	Index int
	Lines []lexes.Line
	// Results is nil until the group is executed.
	Results *cages.Result
}

var ErrRecorded = errors.New("results already recorded")

func (g *Group) Record(result *cages.Result) error {
	if g.Results != nil {
		return ErrRecorded
	}
	g.Results = result
	return nil
}

func (g *Group) Tokens() []lexes.Token {
	var ret []lexes.Token
	for _, line := range g.Lines {
		ret = append(ret, line...)
	}
	return ret
}

// Source returns the exact text of the group.
func (g *Group) Source() string {
	var b strings.Builder
	for _, line := range g.Lines {
		b.WriteString(line.Source())
	}
	return b.String()
}

// Display returns the source without surrounding blank lines.
func (g *Group) Display() string {
	src := g.Source()
	for {
		i := strings.IndexByte(src, '\n')
		if i < 0 || strings.TrimSpace(src[:i]) != "" {
			break
		}
		src = src[i+1:]
	}
	return strings.TrimRight(src, " \t\f\r\n")
}

func (g *Group) Docstring() string {
	return Docstring(g.Tokens())
}

func (g *Group) IsDocstring() bool {
	return g.Docstring() != ""
}
