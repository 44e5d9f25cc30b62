package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/literate/configs"
	"github.com/reusee/literate/logs"
)

// Module provides the HTTP client and dialers for fetching remote scripts.
// The mode is supplied by the caller.
type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
