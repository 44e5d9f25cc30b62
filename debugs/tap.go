package debugs

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/literate/logs"
	"github.com/reusee/literate/scripts"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens an interactive session over the namespace of a finished run.
// Statements entered there change the namespace.
type Tap func(ctx context.Context, what string, ns *scripts.Namespace)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, ns *scripts.Namespace) {
		names := slices.Sorted(maps.Keys(ns.Globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(ns.Stdout, msg)
			},
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
			Recursion:       true,
		}, thread, ns.Globals)
	}
}
