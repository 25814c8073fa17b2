package fileconf

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/appconf/internal/config"
	"github.com/vk/appconf/internal/ctxlog"
	"github.com/vk/appconf/internal/fsutil"
)

// Loader reads a configuration file, located by filename plus an optional
// search path, and translates it into the config model. The file format is
// chosen by extension: .hcl, .yaml, or .yml.
type Loader struct {
	filename   string
	searchPath []string
}

// NewLoader creates a file configuration loader for filename, resolved
// against the given search directories in order.
func NewLoader(filename string, searchPath ...string) *Loader {
	return &Loader{filename: filename, searchPath: searchPath}
}

// Load implements config.Loader. A missing file surfaces as an error
// wrapping fs.ErrNotExist.
func (l *Loader) Load(ctx context.Context) (config.Config, error) {
	logger := ctxlog.FromContext(ctx)

	path, err := fsutil.Resolve(l.filename, l.searchPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("loading config file", "path", path)

	switch ext := filepath.Ext(path); ext {
	case ".hcl":
		return loadHCL(path)
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q in %s", ext, path)
	}
}
