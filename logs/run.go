package logs

import (
	"context"
	"crypto/rand"
)

// Run identifies one compilation of a script.
type Run string

type runKey struct{}

var RunKey runKey

type groupKey struct{}

var GroupKey groupKey

// WithGroup tags log records emitted under ctx with the group index.
func WithGroup(ctx context.Context, index int) context.Context {
	return context.WithValue(ctx, GroupKey, index)
}

func RunOf(ctx context.Context) Run {
	if v := ctx.Value(RunKey); v != nil {
		return v.(Run)
	}
	return ""
}

type NewRun func(ctx context.Context, name string) (context.Context, Run)

func (Module) NewRun(
	logger Logger,
) NewRun {
	return func(ctx context.Context, name string) (context.Context, Run) {

		// outer run, if any
		parent := RunOf(ctx)

		run := Run(rand.Text())
		ctx = context.WithValue(ctx, RunKey, run)

		args := []any{"name", name}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, "new run", args...)

		return ctx, run
	}
}
