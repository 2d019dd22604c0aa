// Package sonar counts depth increases in a sonar sweep report.
package sonar

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/tanadeau/advent-of-code-2021/internal/input"
	"github.com/tanadeau/advent-of-code-2021/internal/log"
)

// DefaultWindow is the width of the sliding window used by the second pass.
const DefaultWindow = 3

// ErrNoLines is returned when the first pass has nothing to compare.
var ErrNoLines = errors.New("no lines")

// Measurement is a single depth reading.
type Measurement uint32

// ParseError reports a line that is not a valid measurement.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("'%s' is not a valid number", e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseMeasurement parses one trimmed line as an unsigned integer. A single
// leading plus sign is allowed.
func ParseMeasurement(text string) (Measurement, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(text), "+"), 10, 32)
	if err != nil {
		return 0, &ParseError{Text: text, Err: err}
	}
	return Measurement(n), nil
}

// SingleIncreases counts readings larger than the one before, streaming
// through src without keeping the readings.
func SingleIncreases(src input.Source, policy input.Policy) (int, error) {
	var (
		last    Measurement
		seen    bool
		counter int
	)
	err := input.Parse(src, ParseMeasurement, policy, func(_ input.Line, current Measurement) error {
		if seen && current > last {
			counter++
		}
		last, seen = current, true
		return nil
	})
	if err != nil {
		return 0, errors.Trace(err)
	}
	if !seen {
		return 0, errors.Annotatef(ErrNoLines, "%s", src.Name())
	}
	return counter, nil
}

// CountIncreases counts values[i] > values[i-1] for i > 0.
func CountIncreases(values []Measurement) (int, error) {
	if len(values) == 0 {
		return 0, ErrNoLines
	}
	return countIncreases(values), nil
}

func countIncreases[T uint64 | Measurement](values []T) int {
	if len(values) < 2 {
		return 0
	}
	return lo.CountBy(lo.Range(len(values)-1), func(i int) bool {
		return values[i+1] > values[i]
	})
}

// WindowSums returns the sum of every contiguous window of the given width.
func WindowSums(values []Measurement, width int) []uint64 {
	if width <= 0 || len(values) < width {
		return nil
	}
	return lo.Times(len(values)-width+1, func(i int) uint64 {
		return lo.SumBy(values[i:i+width], func(v Measurement) uint64 { return uint64(v) })
	})
}

// WindowedIncreases reads every reading from src, sums each sliding window
// and counts sums larger than the previous one. Inputs too short to yield
// two windows count zero.
func WindowedIncreases(src input.Source, policy input.Policy, width int) (int, error) {
	var values []Measurement
	err := input.Parse(src, ParseMeasurement, policy, func(_ input.Line, v Measurement) error {
		values = append(values, v)
		return nil
	})
	if err != nil {
		return 0, errors.Trace(err)
	}
	return countIncreases(WindowSums(values, width)), nil
}

// SlidingIncreases gives the same count as WindowedIncreases without
// materializing the sums: adjacent windows share width-1 readings, so the
// later sum is larger exactly when its new reading beats the dropped one.
func SlidingIncreases(values []Measurement, width int) int {
	if width <= 0 {
		return 0
	}
	counter := 0
	for i := width; i < len(values); i++ {
		if values[i] > values[i-width] {
			counter++
		}
	}
	return counter
}

// Options configures Solution.
type Options struct {
	Policy input.Policy
	Window int
}

// Solution runs both passes over src and writes the two counts to writer.
func Solution(src input.Source, writer io.Writer, opts Options) error {
	if opts.Window == 0 {
		opts.Window = DefaultWindow
	}

	single, err := SingleIncreases(src, opts.Policy)
	if err != nil {
		return err
	}
	log.Logger().Debug("single increases", zap.String("input", src.Name()), zap.Int("count", single))
	if _, err := fmt.Fprintf(writer, "Number of single increases: %d\n", single); err != nil {
		return errors.Trace(err)
	}

	windowed, err := WindowedIncreases(src, opts.Policy, opts.Window)
	if err != nil {
		return err
	}
	log.Logger().Debug("windowed increases", zap.String("input", src.Name()), zap.Int("count", windowed))
	if _, err := fmt.Fprintf(writer, "Number of windowed increases: %d\n", windowed); err != nil {
		return errors.Trace(err)
	}
	return nil
}
