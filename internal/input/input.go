// Package input reads line-oriented puzzle inputs once per pass.
package input

import (
	"bufio"
	"io"
	"io/fs"
	"os"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/tanadeau/advent-of-code-2021/internal/log"
)

// Mode selects how repeated passes over one input are served.
type Mode string

const (
	// ModeRewind seeks back to the start of the file for every pass.
	ModeRewind Mode = "rewind"
	// ModeBuffered reads the file once and serves passes from memory.
	ModeBuffered Mode = "buffered"
)

// Line is a single raw line of input.
type Line struct {
	Number int // 1-based
	Text   string
}

// Source yields the lines of one input. Every call to Each starts a new pass
// from the first line.
type Source interface {
	Name() string
	Each(fn func(line Line) error) error
	Close() error
}

// Open opens name from fsys as a Source using the given mode.
func Open(fsys fs.FS, name string, mode Mode) (Source, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Annotatef(err, "could not open %s", name)
	}
	return fromFile(name, file, mode)
}

// OpenFile opens a path on the local file system as a Source.
func OpenFile(path string, mode Mode) (Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "could not open %s", path)
	}
	return fromFile(path, file, mode)
}

func fromFile(name string, file fs.File, mode Mode) (Source, error) {
	log.Logger().Debug("open input", zap.String("input", name), zap.String("mode", string(mode)))

	switch mode {
	case ModeBuffered:
		defer file.Close()
		return NewBuffered(name, file)
	case ModeRewind, "":
		seeker, ok := file.(io.ReadSeeker)
		if !ok {
			file.Close()
			return nil, errors.Errorf("%s: input does not support seeking", name)
		}
		return &rewinder{name: name, rs: seeker, closer: file}, nil
	default:
		file.Close()
		return nil, errors.NotValidf("read mode %q", mode)
	}
}

// NewRewinder wraps rs so that each pass seeks back to the start.
func NewRewinder(name string, rs io.ReadSeeker) Source {
	return &rewinder{name: name, rs: rs}
}

type rewinder struct {
	name   string
	rs     io.ReadSeeker
	closer io.Closer
	passes int
}

func (r *rewinder) Name() string { return r.name }

func (r *rewinder) Each(fn func(line Line) error) error {
	if _, err := r.rs.Seek(0, io.SeekStart); err != nil {
		return errors.Annotatef(err, "could not rewind %s", r.name)
	}
	r.passes++
	log.Logger().Debug("start pass", zap.String("input", r.name), zap.Int("pass", r.passes))

	scanner := bufio.NewScanner(r.rs)
	number := 0
	for scanner.Scan() {
		number++
		if err := fn(Line{Number: number, Text: scanner.Text()}); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Annotatef(err, "line could not be read from %s", r.name)
	}
	return nil
}

func (r *rewinder) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// NewBuffered reads all of r into memory.
func NewBuffered(name string, r io.Reader) (Source, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Annotatef(err, "line could not be read from %s", name)
	}
	log.Logger().Debug("buffered input", zap.String("input", name), zap.Int("lines", len(lines)))
	return &buffered{name: name, lines: lines}, nil
}

type buffered struct {
	name  string
	lines []string
}

func (b *buffered) Name() string { return b.name }

func (b *buffered) Each(fn func(line Line) error) error {
	for i, text := range b.lines {
		if err := fn(Line{Number: i + 1, Text: text}); err != nil {
			return err
		}
	}
	return nil
}

func (b *buffered) Close() error { return nil }
