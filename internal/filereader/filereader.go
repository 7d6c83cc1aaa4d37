package filereader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/IgorBayerl/fdiff/internal/filesystem"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrIsDirectory is returned by Open when the path names a directory.
var ErrIsDirectory = errors.New("is a directory")

// LineStream reads a text file one line at a time.
//
// Once the underlying file is exhausted, Next keeps returning an empty line
// instead of io.EOF. Two streams that run out together therefore look like two
// blank lines to the caller.
type LineStream struct {
	name      string
	closer    io.Closer
	reader    *bufio.Reader
	exhausted bool
	closed    bool
}

// Open opens filePath on fsys for line-at-a-time reading.
func Open(fsys filesystem.Filesystem, filePath string) (*LineStream, error) {
	info, err := fsys.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", filePath, ErrIsDirectory)
	}
	file, err := fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	return NewLineStream(filePath, file), nil
}

// NewLineStream wraps rc. The name is only used in error messages.
func NewLineStream(name string, rc io.ReadCloser) *LineStream {
	// A UTF-8 BOM is dropped and UTF-16 with a BOM is decoded to UTF-8.
	// Without a BOM the bytes pass through untouched.
	decoded := transform.NewReader(rc, unicode.BOMOverride(transform.Nop))
	return &LineStream{
		name:   name,
		closer: rc,
		reader: bufio.NewReader(decoded),
	}
}

// Name returns the name the stream was opened with.
func (s *LineStream) Name() string {
	return s.name
}

// Next returns the next line without its line terminator.
// After the end of the file it returns "" and a nil error on every call.
func (s *LineStream) Next() (string, error) {
	if s.exhausted || s.closed {
		return "", nil
	}
	line, err := s.reader.ReadString('\n')
	if err == io.EOF {
		s.exhausted = true
	} else if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", s.name, err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Close releases the underlying file. Calling it more than once is harmless.
func (s *LineStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.closer.Close()
}
