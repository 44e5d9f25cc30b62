package litconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/literate/cmds"
	"github.com/reusee/literate/configs"
	"github.com/reusee/literate/logs"
)

//go:embed schema.cue
var Schema string

var configFlag = cmds.Collect[string]("-config")

var filenames = []string{
	"literate.cue",
	".literate.cue",
}

// ConfigsLoader loads -config files first, then the ones found in the
// working directory, the user config directory and /etc. Earlier files
// take precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := append([]string(nil), *configFlag...)
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")
	paths = append(paths, Search(dirs...)...)

	return configs.NewLoader(paths, Schema)
}

// Search returns the existing config files under dirs, in order.
func Search(dirs ...string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
