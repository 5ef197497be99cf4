package sandbox_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcarmo/go-head/pkg/sandbox"
)

func TestSandboxDisabled(t *testing.T) {
	sandbox.Disable()

	// Should allow all reads when disabled
	path := filepath.Join(t.TempDir(), "any.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := sandbox.Open(path)
	if err != nil {
		t.Fatalf("expected no error when sandbox disabled, got %v", err)
	}
	f.Close()
}

func TestSandboxEnabled(t *testing.T) {
	dir := t.TempDir()
	inside := filepath.Join(dir, "inside.txt")
	if err := os.WriteFile(inside, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	other := t.TempDir()
	outside := filepath.Join(other, "outside.txt")
	if err := os.WriteFile(outside, []byte("nope"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := sandbox.Init(&sandbox.Config{Roots: []string{dir}}); err != nil {
		t.Fatal(err)
	}
	defer sandbox.Disable()

	if !sandbox.IsEnabled() {
		t.Fatal("expected sandbox to be enabled")
	}

	f, err := sandbox.Open(inside)
	if err != nil {
		t.Errorf("expected open to succeed in allowed root, got %v", err)
	} else {
		f.Close()
	}

	_, err = sandbox.Open(outside)
	if !errors.Is(err, sandbox.ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied for %s, got %v", outside, err)
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) || pathErr.Path != outside {
		t.Errorf("expected *fs.PathError for %s, got %#v", outside, err)
	}
}

func TestSandboxCwd(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if err := sandbox.Init(&sandbox.Config{AllowCwd: true}); err != nil {
		t.Fatal(err)
	}
	defer sandbox.Disable()

	// Should allow reads in cwd
	f, err := sandbox.Open(cwd)
	if err != nil {
		t.Errorf("expected Open to succeed in cwd, got %v", err)
	} else {
		f.Close()
	}

	// Should deny access outside cwd
	_, err = sandbox.Open(t.TempDir())
	if !errors.Is(err, sandbox.ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied outside cwd, got %v", err)
	}
}

func TestSandboxPathTraversal(t *testing.T) {
	dir := t.TempDir()

	if err := sandbox.Init(&sandbox.Config{Roots: []string{dir}}); err != nil {
		t.Fatal(err)
	}
	defer sandbox.Disable()

	traversalPath := filepath.Join(dir, "..", "..", "etc", "passwd")
	_, err := sandbox.Open(traversalPath)
	if !errors.Is(err, sandbox.ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied for traversal path, got %v", err)
	}
}

func TestSandboxSiblingPrefix(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "data")
	sibling := filepath.Join(base, "data-other")
	for _, d := range []string{root, sibling} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatal(err)
		}
	}

	if err := sandbox.Init(&sandbox.Config{Roots: []string{root}}); err != nil {
		t.Fatal(err)
	}
	defer sandbox.Disable()

	// A shared name prefix is not containment
	_, err := sandbox.Open(sibling)
	if !errors.Is(err, sandbox.ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied for %s, got %v", sibling, err)
	}
}
