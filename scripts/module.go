package scripts

import (
	"github.com/reusee/dscope"
	"github.com/reusee/literate/configs"
	"go.starlark.net/starlark"
)

type Module struct {
	dscope.Module
}

// ExtraGlobals are added to every namespace.
type ExtraGlobals starlark.StringDict

func (Module) ExtraGlobals(
	loader configs.Loader,
) ExtraGlobals {
	// earlier config files take precedence
	m := make(map[string]any)
	for values := range configs.All[map[string]any](loader, "globals") {
		for name, value := range values {
			if _, ok := m[name]; !ok {
				m[name] = value
			}
		}
	}
	if len(m) == 0 {
		return nil
	}
	globals, err := ToGlobals(m)
	if err != nil {
		panic(err)
	}
	// shared by every compilation
	globals.Freeze()
	return ExtraGlobals(globals)
}
