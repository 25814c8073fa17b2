// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Resolve locates filename against the given search path. Relative names are
// tried under each search directory in order, then as given; the first
// existing regular file wins. If nothing matches, the returned error wraps
// fs.ErrNotExist.
func Resolve(filename string, searchPath []string) (string, error) {
	var candidates []string
	if filepath.IsAbs(filename) {
		candidates = []string{filename}
	} else {
		for _, dir := range searchPath {
			candidates = append(candidates, filepath.Join(dir, filename))
		}
		candidates = append(candidates, filename)
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("config file %q not found in search path: %w", filename, fs.ErrNotExist)
}
