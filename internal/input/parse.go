package input

import (
	"fmt"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/tanadeau/advent-of-code-2021/internal/log"
)

// Policy decides what happens to a line that fails to parse.
type Policy string

const (
	// PolicyStrict aborts the pass on the first unparsable line.
	PolicyStrict Policy = "strict"
	// PolicySkip drops unparsable lines and keeps going.
	PolicySkip Policy = "skip"
)

// LineError ties a failure to the line that caused it.
type LineError struct {
	Source string
	Line   Line
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line.Number, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Parse runs one pass over src, parsing every line and handing the result to
// fn. Errors returned by fn are always fatal and get the same line context.
func Parse[T any](src Source, parse func(text string) (T, error), policy Policy, fn func(line Line, value T) error) error {
	skipped := 0
	err := src.Each(func(line Line) error {
		value, err := parse(line.Text)
		if err != nil {
			if policy == PolicySkip {
				skipped++
				log.Logger().Debug("skip line",
					zap.String("input", src.Name()),
					zap.Int("line", line.Number),
					zap.String("text", line.Text),
					zap.Error(err))
				return nil
			}
			return &LineError{Source: src.Name(), Line: line, Err: err}
		}
		if err := fn(line, value); err != nil {
			return &LineError{Source: src.Name(), Line: line, Err: err}
		}
		return nil
	})
	if skipped > 0 {
		log.Logger().Info("skipped unparsable lines", zap.String("input", src.Name()), zap.Int("count", skipped))
	}
	return errors.Trace(err)
}
