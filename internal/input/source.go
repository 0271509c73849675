package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// StdinName is the display name used for standard input.
const StdinName = "(standard input)"

const (
	initialLineBuf = 64 * 1024
	maxLineSize    = 16 * 1024 * 1024
)

// Line is a single line of text from a source, without its trailing newline.
// Text is only valid until the next call to Source.Next.
type Line struct {
	Text   []byte
	Num    int // 1-based, restarts at every source
	Source string
}

// SourceError reports a source that could not be opened or read.
type SourceError struct {
	Op     string // "open" or "read"
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Source yields the lines of one named input in order.
type Source struct {
	name    string
	scanner *bufio.Scanner
	closer  io.Closer
	num     int
	err     error
}

// NewSource reads lines from r under the given display name.
func NewSource(name string, r io.Reader) *Source {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuf), maxLineSize)
	scanner.Split(scanLines)
	s := &Source{name: name, scanner: scanner}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// Open opens path as a Source. The path "-" reads standard input, which is
// never closed by the Source.
func Open(path string) (*Source, error) {
	if path == "-" {
		return NewSource(StdinName, io.NopCloser(os.Stdin)), nil
	}
	fd, err := openFile(path)
	if err != nil {
		return nil, &SourceError{Op: "open", Source: path, Err: err}
	}
	return NewSource(path, os.NewFile(uintptr(fd), path)), nil
}

// Name returns the display name of the source.
func (s *Source) Name() string { return s.name }

// Next returns the next line, or false at end of input or on a read error.
func (s *Source) Next() (Line, bool) {
	if s.err != nil || !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil && s.err == nil {
			s.err = &SourceError{Op: "read", Source: s.name, Err: err}
		}
		return Line{}, false
	}
	s.num++
	return Line{Text: s.scanner.Bytes(), Num: s.num, Source: s.name}, true
}

// Err returns the read error that ended the source, if any.
func (s *Source) Err() error { return s.err }

// Close releases the underlying file.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	c := s.closer
	s.closer = nil
	return c.Close()
}

// scanLines is bufio.ScanLines without the carriage-return stripping: only
// the '\n' terminator is removed from a line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// openFile opens path read-only, skipping atime updates where permitted.
func openFile(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOATIME|unix.O_CLOEXEC, 0)
	if err != nil {
		fd, err = unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	}
	return fd, err
}
