package executes

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/literate/cages"
	"github.com/reusee/literate/configs"
	"github.com/reusee/literate/groups"
	"github.com/reusee/literate/logs"
	"github.com/reusee/literate/scripts"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

// Execute runs all groups of one compilation with a fresh cage.
type Execute func(ctx context.Context, gs []*groups.Group, ns *scripts.Namespace) (Summary, error)

func (Module) Execute(
	policy ErrorPolicy,
	logger logs.Logger,
) Execute {
	return func(ctx context.Context, gs []*groups.Group, ns *scripts.Namespace) (Summary, error) {
		executor := &Executor{
			Cage:   cages.New(),
			Policy: policy,
			Logger: logger,
		}
		return executor.Run(ctx, gs, ns)
	}
}
