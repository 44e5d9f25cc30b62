package executes

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/reusee/literate/cages"
	"github.com/reusee/literate/groups"
	"github.com/reusee/literate/logs"
	"github.com/reusee/literate/scripts"
)

type Summary struct {
	Groups   int
	Executed int
	// Interrupted is set when a group stopped the run cooperatively.
	Interrupted   bool
	InterruptedAt int
	Failed        int
}

// Executor runs groups in order against one namespace.
type Executor struct {
	Cage   *cages.Cage
	Policy ErrorPolicy
	Logger logs.Logger
}

// Steps runs groups lazily, yielding each executed group. Execution stops
// after an interrupted group, or at the first error under Raise.
func (e *Executor) Steps(ctx context.Context, gs []*groups.Group, ns *scripts.Namespace) iter.Seq2[*groups.Group, error] {
	return func(yield func(*groups.Group, error) bool) {
		for _, g := range gs {
			groupCtx := logs.WithGroup(ctx, g.Index)
			result, err := e.Cage.Execute(groupCtx, ns, g.Index, g.Source())

			var groupErr *cages.GroupError
			if errors.As(err, &groupErr) && e.Policy == Record {
				result.Error = groupErr.Err
				err = nil
			}
			if err != nil {
				yield(g, err)
				return
			}

			if err := g.Record(result); err != nil {
				yield(g, fmt.Errorf("group %d: %w", g.Index, err))
				return
			}
			if e.Logger != nil {
				e.Logger.DebugContext(groupCtx, "group executed",
					"stdout", len(result.Stdout),
					"stderr", len(result.Stderr),
					"figures", len(result.Figures),
					"interrupted", result.Interrupted,
					"failed", result.Error != nil,
				)
			}
			if !yield(g, nil) {
				return
			}
			if result.Interrupted {
				return
			}
		}
	}
}

func (e *Executor) Run(ctx context.Context, gs []*groups.Group, ns *scripts.Namespace) (Summary, error) {
	summary := Summary{
		Groups: len(gs),
	}
	for g, err := range e.Steps(ctx, gs, ns) {
		if err != nil {
			return summary, err
		}
		summary.Executed++
		if g.Results.Error != nil {
			summary.Failed++
			if e.Logger != nil {
				e.Logger.WarnContext(logs.WithGroup(ctx, g.Index), "group failed",
					"error", g.Results.Error,
				)
			}
		}
		if g.Results.Interrupted {
			summary.Interrupted = true
			summary.InterruptedAt = g.Index
			if e.Logger != nil {
				e.Logger.InfoContext(logs.WithGroup(ctx, g.Index), "execution interrupted",
					"skipped", len(gs)-g.Index-1,
				)
			}
		}
	}
	return summary, nil
}
