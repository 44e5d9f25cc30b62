package executes

import (
	"fmt"

	"github.com/reusee/literate/cmds"
	"github.com/reusee/literate/configs"
)

// ErrorPolicy decides what a failing group does to the run.
type ErrorPolicy string

const (
	// Raise aborts the run with the group error.
	Raise ErrorPolicy = "raise"
	// Record keeps the error in the group result and goes on.
	Record ErrorPolicy = "record"
)

var keepGoing = cmds.Switch("-keep-going")

func (Module) ErrorPolicy(
	loader configs.Loader,
) ErrorPolicy {
	if *keepGoing {
		return Record
	}
	switch policy := ErrorPolicy(configs.First[string](loader, "error_policy")); policy {
	case "":
		return Raise
	case Raise, Record:
		return policy
	default:
		panic(fmt.Errorf("unknown error policy: %s", policy))
	}
}
