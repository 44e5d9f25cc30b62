package cages

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/reusee/literate/plots"
	"github.com/reusee/literate/scripts"
)

// Cage captures the output of groups run one after another against one
// namespace. Sinks persist across groups; each result holds only what
// was written since the previous one.
type Cage struct {
	stdout     strings.Builder
	stderr     strings.Builder
	stdoutRead int
	stderrRead int
	shown      map[int]bool
	pending    [][]byte
}

func New() *Cage {
	return &Cage{
		shown: make(map[int]bool),
	}
}

func (c *Cage) Execute(ctx context.Context, ns *scripts.Namespace, index int, source string) (*Result, error) {
	err := c.capture(ns, func() error {
		return ns.Evaluate(ctx, fmt.Sprintf("<group %d>", index), source)
	})

	result := &Result{
		Stdout:  c.unread(&c.stdout, &c.stdoutRead),
		Stderr:  c.unread(&c.stderr, &c.stderrRead),
		Figures: c.drain(),
	}

	switch {
	case err == nil:
	case scripts.IsTermination(ctx, err):
		result.Interrupted = true
	default:
		return result, &GroupError{
			Index:  index,
			Source: source,
			Err:    err,
		}
	}
	return result, nil
}

// capture runs fn with the namespace streams and show hooks pointed at
// the cage. Originals are restored on every exit path.
func (c *Cage) capture(ns *scripts.Namespace, fn func() error) error {
	restoreStreams := ns.Redirect(&c.stdout, &c.stderr)
	defer restoreStreams()
	if ns.Plots != nil {
		restoreShow := ns.Plots.ReplaceShow(
			func() error {
				return c.showAll(ns.Plots)
			},
			c.showOne,
		)
		defer restoreShow()
	}
	return fn()
}

func (c *Cage) showAll(backend plots.Backend) error {
	for _, fig := range backend.Figures() {
		if c.shown[fig.Num()] {
			continue
		}
		c.shown[fig.Num()] = true
		if err := c.showOne(fig); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cage) showOne(fig plots.Handle) error {
	buf := new(bytes.Buffer)
	if err := fig.EncodePNG(buf); err != nil {
		return fmt.Errorf("encode figure %d: %w", fig.Num(), err)
	}
	c.pending = append(c.pending, buf.Bytes())
	return nil
}

func (c *Cage) unread(sink *strings.Builder, cursor *int) string {
	s := sink.String()
	diff := s[*cursor:]
	*cursor = len(s)
	return diff
}

func (c *Cage) drain() [][]byte {
	ret := c.pending
	c.pending = nil
	return ret
}
