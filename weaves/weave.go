package weaves

import (
	"context"
	"fmt"
	"io"
	"maps"

	"github.com/reusee/literate/executes"
	"github.com/reusee/literate/groups"
	"github.com/reusee/literate/logs"
	"github.com/reusee/literate/plots"
	"github.com/reusee/literate/reports"
	"github.com/reusee/literate/scripts"
	"go.starlark.net/starlark"
)

// Woven is a compiled script.
type Woven struct {
	Name      string
	Run       logs.Run
	Argv      []string
	Groups    []*groups.Group
	Summary   executes.Summary
	Document  *reports.Document
	Namespace *scripts.Namespace
}

// Weave parses, runs and compiles a script. Lexical errors and raised group
// errors abort with no document.
type Weave func(ctx context.Context, name string, src io.Reader, argv []string) (*Woven, error)

func (Module) Weave(
	execute executes.Execute,
	size plots.Size,
	extra scripts.ExtraGlobals,
	logger logs.Logger,
	newRun logs.NewRun,
) Weave {
	return func(ctx context.Context, name string, src io.Reader, argv []string) (_ *Woven, err error) {
		ctx, run := newRun(ctx, name)
		defer func() {
			err = logs.WrapRun(ctx, err)
		}()

		gs, err := groups.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		logger.InfoContext(ctx, "parsed", "groups", len(gs))

		registry := plots.NewRegistry(size)
		// figures of one compilation never leak into the next
		defer registry.CloseAll()
		ns := scripts.NewNamespace(argv, registry, maps.Clone(starlark.StringDict(extra)))

		summary, err := execute(ctx, gs, ns)
		if err != nil {
			return nil, fmt.Errorf("execute %s: %w", name, err)
		}

		doc := reports.Compile(gs)
		logger.InfoContext(ctx, "compiled",
			"executed", summary.Executed,
			"interrupted", summary.Interrupted,
			"figures", len(doc.Figures),
		)

		return &Woven{
			Name:      name,
			Run:       run,
			Argv:      argv,
			Groups:    gs,
			Summary:   summary,
			Document:  doc,
			Namespace: ns,
		}, nil
	}
}
