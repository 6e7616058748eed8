package lexconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/mangrove/cmds"
	"github.com/reusee/mangrove/configs"
	"github.com/reusee/mangrove/logs"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config", "load a config file before the default ones")

// Dirs lists the directories searched for config files, in precedence order.
type Dirs []string

func (Module) Dirs() Dirs {
	var dirs Dirs
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")
	return dirs
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	dirs Dirs,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	paths = append(paths, *configFiles...)

	filenames := []string{
		"mangrove.cue",
		".mangrove.cue",
	}
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}
