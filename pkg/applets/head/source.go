package head

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/rcarmo/go-head/pkg/core"
	"github.com/rcarmo/go-head/pkg/core/fs"
)

// StdinName is the source identifier that selects standard input.
const StdinName = "-"

// Source is one opened input. It serves raw reads for byte mode and whole
// lines for line mode.
type Source interface {
	io.Reader
	// ReadLine appends the next line, including its '\n' when present, to
	// line. At end of input it returns io.EOF along with any trailing
	// partial line.
	ReadLine(line []byte) ([]byte, error)
	Name() string
	Close() error
}

type bufferedSource struct {
	name string
	r    *bufio.Reader
}

func (s *bufferedSource) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func (s *bufferedSource) ReadLine(line []byte) ([]byte, error) {
	for {
		chunk, err := s.r.ReadSlice('\n')
		line = append(line, chunk...)
		if !errors.Is(err, bufio.ErrBufferFull) {
			return line, err
		}
	}
}

func (s *bufferedSource) Name() string {
	return s.name
}

// stdinSource reads the applet's standard input. Closing it leaves the
// underlying stream open.
type stdinSource struct {
	bufferedSource
}

func (s *stdinSource) Close() error {
	return nil
}

type fileSource struct {
	bufferedSource
	f *os.File
}

func (s *fileSource) Close() error {
	return s.f.Close()
}

// Open acquires the named source: standard input for "-", otherwise the file
// at that path.
func Open(stdio *core.Stdio, name string) (Source, error) {
	if name == StdinName {
		return &stdinSource{bufferedSource{name: name, r: bufio.NewReader(stdio.In)}}, nil
	}
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	return &fileSource{bufferedSource: bufferedSource{name: name, r: bufio.NewReader(f)}, f: f}, nil
}
