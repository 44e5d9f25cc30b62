package outputs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/literate/configs"
	"github.com/reusee/literate/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
