package testutil

import (
	"os"
	"testing"
)

// chdir is a Go 1.21-compatible equivalent of testing.T.Chdir (Go 1.24+):
// it changes the working directory for the duration of the test, sets PWD,
// and restores the previous directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("testutil: chdir: " + err.Error())
		}
	})
}
