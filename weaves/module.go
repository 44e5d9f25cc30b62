package weaves

import (
	"github.com/reusee/dscope"
	"github.com/reusee/literate/executes"
	"github.com/reusee/literate/logs"
	"github.com/reusee/literate/plots"
	"github.com/reusee/literate/scripts"
)

type Module struct {
	dscope.Module
	Executes executes.Module
	Plots    plots.Module
	Scripts  scripts.Module
	Logs     logs.Module
}
