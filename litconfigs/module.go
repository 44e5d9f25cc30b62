package litconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/literate/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
