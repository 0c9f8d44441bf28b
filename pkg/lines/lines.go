// Package lines turns a file into a lazy sequence of text lines.
//
// A file that cannot be opened is logged and yields nothing, so a missing
// dataset behaves like an empty one. A failure after some lines were read
// is kept on the Source and returned by Err.
package lines

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single line; the default bufio limit (64 KiB) is too
// small for some exported spreadsheets.
const maxLineSize = 1024 * 1024

// Encoding is the character encoding of a dataset file.
type Encoding int

const (
	UTF8 Encoding = iota
	Latin1
)

func (e Encoding) String() string {
	switch e {
	case Latin1:
		return "latin1"
	default:
		return "utf-8"
	}
}

// ParseEncoding resolves a CLI encoding name.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return Latin1, nil
	default:
		return UTF8, fmt.Errorf("unknown encoding %q (want utf-8 or latin1)", name)
	}
}

type options struct {
	logger   *slog.Logger
	encoding Encoding
}

// Option configures Open.
type Option func(*options)

// WithLogger sets the logger used to report I/O failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithEncoding sets the file encoding. Latin-1 input is decoded to UTF-8.
func WithEncoding(e Encoding) Option {
	return func(o *options) {
		o.encoding = e
	}
}

// Source is a dataset file read line by line. Like bufio.Scanner, a read
// failure stops iteration and is reported by Err once the range ends.
type Source struct {
	path string
	opts options
	err  error
}

// Open prepares path for reading. Nothing is opened until Lines is ranged.
func Open(path string, opts ...Option) *Source {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Source{path: path, opts: o}
}

// Err returns the read failure of the last range over Lines, or nil. Not
// being able to open the file is not an error.
func (s *Source) Err() error {
	return s.err
}

// Lines returns a single-pass sequence over the lines of the file, in file
// order. The file is opened when iteration starts and closed when it stops,
// for any reason. Each range reopens the file and resets Err.
func (s *Source) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		s.err = nil

		f, err := os.Open(s.path)
		if err != nil {
			s.opts.logger.Error("failed to open dataset", "path", s.path, "error", err)
			return
		}
		defer f.Close()

		var r io.Reader = f
		if s.opts.encoding == Latin1 {
			r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
		}

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			if !yield(strings.TrimSuffix(scanner.Text(), "\r")) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			s.opts.logger.Error("failed to read dataset", "path", s.path, "after_line", lineNo, "error", err)
			s.err = fmt.Errorf("read %s after line %d: %w", s.path, lineNo, err)
		}
	}
}
