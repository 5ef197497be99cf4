// Package fs provides filesystem operations that respect sandbox boundaries.
// Applets should use this package instead of direct os calls.
package fs

import (
	"os"

	"github.com/rcarmo/go-head/pkg/sandbox"
)

// Open opens a file for reading.
func Open(path string) (*os.File, error) {
	return sandbox.Open(path)
}

