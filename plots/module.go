package plots

import (
	"github.com/reusee/dscope"
	"github.com/reusee/literate/cmds"
	"github.com/reusee/literate/configs"
	"github.com/reusee/literate/vars"
)

type Module struct {
	dscope.Module
}

var (
	widthFlag  = cmds.Var[int]("-figure-width")
	heightFlag = cmds.Var[int]("-figure-height")
)

// Size is the default figure size, from flags, then config.
func (Module) Size(
	loader configs.Loader,
) Size {
	return Size{
		Width: vars.FirstNonZero(
			*widthFlag,
			configs.First[int](loader, "figure.width"),
			DefaultSize.Width,
		),
		Height: vars.FirstNonZero(
			*heightFlag,
			configs.First[int](loader, "figure.height"),
			DefaultSize.Height,
		),
	}
}
