// Package testutil provides shared testing utilities and fixtures.
package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcarmo/go-head/pkg/core"
)

// TempFile creates a temp file with content, returns path.
func TempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TempDirWithFiles creates a temp directory populated with files.
// The files map keys are relative paths, values are file contents.
func TempDirWithFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

// CaptureStdio creates a Stdio with captured output buffers.
// Returns the Stdio, stdout buffer, and stderr buffer.
func CaptureStdio(input string) (*core.Stdio, *bytes.Buffer, *bytes.Buffer) {
	return CaptureStdioFrom(strings.NewReader(input))
}

// CaptureStdioFrom is CaptureStdio with an arbitrary stdin reader, for
// simulating short or failing input streams.
func CaptureStdioFrom(in io.Reader) (*core.Stdio, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	return &core.Stdio{
		In:  in,
		Out: out,
		Err: errBuf,
	}, out, errBuf
}

// RunApplet is a helper type for running applet tests.
type RunApplet func(stdio *core.Stdio, args []string) int

// AppletTestCase defines a parameterized test case for applets.
type AppletTestCase struct {
	Name       string                         // Test name
	Args       []string                       // Command line arguments
	Input      string                         // Stdin input
	Stdin      io.Reader                      // Stdin reader; overrides Input
	WantCode   int                            // Expected exit code
	WantOut    string                         // Expected stdout (exact match)
	WantNoOut  bool                           // Stdout must be empty
	WantOutSub string                         // Expected stdout substring
	WantErr    string                         // Expected stderr substring
	WantNoErr  bool                           // Stderr must be empty
	Files      map[string]string              // Files to create in temp dir
	Setup      func(t *testing.T, dir string) // Optional setup function
}

// CaptureAndRun runs an applet with captured stdio and returns the output buffers.
func CaptureAndRun(t *testing.T, run RunApplet, args []string, input string) (*bytes.Buffer, *bytes.Buffer, int) {
	t.Helper()
	stdio, out, errBuf := CaptureStdio(input)
	code := run(stdio, args)
	return out, errBuf, code
}

// RunAppletTests runs a slice of parameterized applet test cases. Each case
// runs inside its own temp directory so relative file names resolve there.
func RunAppletTests(t *testing.T, run RunApplet, tests []AppletTestCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			dir := TempDirWithFiles(t, tt.Files)
			chdir(t, dir)

			if tt.Setup != nil {
				tt.Setup(t, dir)
			}

			stdin := tt.Stdin
			if stdin == nil {
				stdin = strings.NewReader(tt.Input)
			}
			stdio, out, errBuf := CaptureStdioFrom(stdin)

			code := run(stdio, tt.Args)

			assert.Equal(t, tt.WantCode, code, "exit code (stderr: %q)", errBuf.String())
			if tt.WantOut != "" {
				assert.Equal(t, tt.WantOut, out.String(), "stdout")
			}
			if tt.WantNoOut {
				assert.Empty(t, out.String(), "stdout")
			}
			if tt.WantOutSub != "" {
				assert.Contains(t, out.String(), tt.WantOutSub, "stdout")
			}
			if tt.WantErr != "" {
				assert.Contains(t, errBuf.String(), tt.WantErr, "stderr")
			}
			if tt.WantNoErr {
				assert.Empty(t, errBuf.String(), "stderr")
			}
		})
	}
}
