// Package core provides shared functionality for the head applet and its entry points.
package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fatih/color"
)

// Exit codes following POSIX conventions
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Stdio holds the standard I/O streams for an applet.
// This allows for easy testing by injecting mock streams.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStdio returns Stdio configured with os.Stdin, os.Stdout, os.Stderr.
func DefaultStdio() *Stdio {
	return &Stdio{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Errorf writes a formatted error message to stderr.
func (s *Stdio) Errorf(format string, args ...any) {
	fmt.Fprintf(s.Err, format, args...)
}

// Printf writes a formatted message to stdout.
func (s *Stdio) Printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

// Println writes a message to stdout with a newline.
func (s *Stdio) Println(args ...any) {
	fmt.Fprintln(s.Out, args...)
}

// FileError reports a per-file failure as "<path>: <reason>".
// The path is highlighted when stderr is a terminal.
func (s *Stdio) FileError(path string, err error) {
	name := color.New(color.FgRed, color.Bold)
	if IsTerminal(s.Err) {
		name.EnableColor()
	} else {
		name.DisableColor()
	}
	s.Errorf("%s: %s\n", name.Sprint(path), Describe(err))
}

// Describe strips the operation and path that os errors carry, leaving the
// underlying reason ("no such file or directory").
func Describe(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

// UsageError prints a usage error and returns ExitUsage.
func UsageError(stdio *Stdio, applet, message string) int {
	stdio.Errorf("%s: %s\n", applet, message)
	return ExitUsage
}
