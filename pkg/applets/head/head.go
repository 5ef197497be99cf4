// Package head implements the head command.
package head

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/rcarmo/go-head/pkg/core"
)

// Run executes the head command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	opts, code := ParseArgs(stdio, args)
	if opts == nil {
		return code
	}
	logger := core.NewLogger(stdio.Err, "head", opts.Debug)
	return Head(stdio, logger, opts)
}

// Head prints the requested prefix of every source in opts.Files. Sources
// that cannot be opened are reported and skipped; a failure while reading or
// writing stops the run.
func Head(stdio *core.Stdio, logger *log.Logger, opts *Options) int {
	showHeaders := len(opts.Files) > 1
	exitCode := core.ExitSuccess

	for i, name := range opts.Files {
		src, err := Open(stdio, name)
		if err != nil {
			logger.Debug("open failed", "source", name, "err", err)
			stdio.FileError(name, err)
			exitCode = core.ExitFailure
			continue
		}

		if showHeaders {
			if i > 0 {
				stdio.Println()
			}
			stdio.Printf("==> %s <==\n", name)
		}

		err = headSource(stdio.Out, src, opts, logger)
		_ = src.Close()
		if err != nil {
			logger.Error(err.Error())
			return core.ExitFailure
		}
	}

	return exitCode
}

func headSource(w io.Writer, src Source, opts *Options, logger *log.Logger) error {
	if opts.Bytes != nil {
		n, err := headBytes(w, src, *opts.Bytes)
		logger.Debug("bytes", "source", src.Name(), "read", n, "limit", *opts.Bytes)
		return err
	}
	n, err := headLines(w, src, opts.Lines)
	logger.Debug("lines", "source", src.Name(), "read", n, "limit", opts.Lines)
	return err
}

// headBytes copies at most limit bytes of src to w. Invalid UTF-8 is
// replaced with U+FFFD on the way out.
func headBytes(w io.Writer, src Source, limit uint64) (int64, error) {
	if limit > math.MaxInt64 {
		limit = math.MaxInt64
	}
	out := transform.NewWriter(w, unicode.UTF8.NewDecoder())
	n, err := io.Copy(out, io.LimitReader(src, int64(limit)))
	if err != nil {
		return n, fmt.Errorf("%s: %w", src.Name(), err)
	}
	if err := out.Close(); err != nil {
		return n, fmt.Errorf("%s: %w", src.Name(), err)
	}
	return n, nil
}

// headLines writes up to count lines of src to w exactly as read.
func headLines(w io.Writer, src Source, count uint64) (uint64, error) {
	var line []byte
	var n uint64
	for n < count {
		var err error
		line, err = src.ReadLine(line[:0])
		if len(line) > 0 {
			if _, werr := w.Write(line); werr != nil {
				return n, fmt.Errorf("%s: %w", src.Name(), werr)
			}
			n++
		}
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("%s: %w", src.Name(), err)
		}
	}
	return n, nil
}
