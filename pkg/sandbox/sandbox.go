// Package sandbox restricts which paths the applet may read.
// It is disabled by default for native builds; when enabled, only paths under
// the configured roots can be opened.
package sandbox

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrAccessDenied is returned for paths outside every allowed root.
var ErrAccessDenied = errors.New("access denied: path not in sandbox")

// Config holds sandbox configuration.
type Config struct {
	// Roots whose contents may be read.
	Roots []string
	// Allow reads under the current working directory.
	AllowCwd bool
}

type sandbox struct {
	mu      sync.RWMutex
	roots   []string
	enabled bool
}

var global = &sandbox{}

// Init enables the sandbox with the given configuration, replacing any
// previous roots.
func Init(cfg *Config) error {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.roots = nil
	if cfg.AllowCwd {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		global.roots = append(global.roots, filepath.Clean(cwd))
	}
	for _, root := range cfg.Roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return err
		}
		global.roots = append(global.roots, abs)
	}
	global.enabled = true
	return nil
}

// Disable disables the sandbox (allows all reads).
func Disable() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.enabled = false
}

// IsEnabled returns whether the sandbox is enabled.
func IsEnabled() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.enabled
}

func checkAccess(op, path string) error {
	global.mu.RLock()
	defer global.mu.RUnlock()

	if !global.enabled {
		return nil
	}

	// Abs cleans the path, so ".." cannot escape a root.
	abs, err := filepath.Abs(path)
	if err != nil {
		return &fs.PathError{Op: op, Path: path, Err: ErrAccessDenied}
	}
	for _, root := range global.roots {
		if root == string(filepath.Separator) {
			return nil
		}
		rest, ok := strings.CutPrefix(abs, root)
		if ok && (rest == "" || strings.HasPrefix(rest, string(filepath.Separator))) {
			return nil
		}
	}
	return &fs.PathError{Op: op, Path: path, Err: ErrAccessDenied}
}

// Open opens a file for reading within the sandbox.
func Open(path string) (*os.File, error) {
	if err := checkAccess("open", path); err != nil {
		return nil, err
	}
	return os.Open(path) // #nosec G304 -- checkAccess enforces allowed roots
}

