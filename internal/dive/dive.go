// Package dive follows a list of submarine commands to a final position.
package dive

import (
	"fmt"
	"io"
	"math"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/tanadeau/advent-of-code-2021/internal/input"
	"github.com/tanadeau/advent-of-code-2021/internal/log"
)

var (
	// ErrNoCommands is returned for an input without a single command.
	ErrNoCommands = errors.New("no commands")
	// ErrNegativeDepth is returned when a command takes the submarine above the surface.
	ErrNegativeDepth = errors.New("depth below zero")
	// ErrNegativeAim is returned when up commands outweigh down commands.
	ErrNegativeAim = errors.New("aim below zero")
	// ErrOverflow is returned when a value no longer fits in an int64.
	ErrOverflow = errors.New("integer overflow")
)

// Position is where the submarine ends up.
type Position struct {
	Horizontal int64
	Depth      int64
}

// Product multiplies the horizontal position by the depth.
func (p Position) Product() (int64, error) {
	product, ok := mul(p.Horizontal, p.Depth)
	if !ok {
		return 0, errors.Annotatef(ErrOverflow, "product of %s", p)
	}
	return product, nil
}

func (p Position) String() string {
	return fmt.Sprintf("{horizontal: %d, depth: %d}", p.Horizontal, p.Depth)
}

func add(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product := a * b
	if product/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return product, true
}

// Navigator folds commands into a position.
type Navigator interface {
	Apply(cmd Command) error
	Position() Position
}

// Simple moves depth directly with up and down.
type Simple struct {
	pos Position
}

func (s *Simple) Apply(cmd Command) error {
	n := int64(cmd.Magnitude)
	ok := true
	switch cmd.Direction {
	case Forward:
		s.pos.Horizontal, ok = add(s.pos.Horizontal, n)
	case Up:
		s.pos.Depth, ok = add(s.pos.Depth, -n)
	case Down:
		s.pos.Depth, ok = add(s.pos.Depth, n)
	default:
		return errors.NotValidf("direction %v", cmd.Direction)
	}
	if !ok {
		return errors.Annotatef(ErrOverflow, "after %s", cmd)
	}
	if s.pos.Depth < 0 {
		return errors.Annotatef(ErrNegativeDepth, "after %s", cmd)
	}
	return nil
}

func (s *Simple) Position() Position { return s.pos }

// Aimed turns up and down into aim, and forward dives by magnitude times aim.
type Aimed struct {
	pos Position
	aim int64
}

func (a *Aimed) Apply(cmd Command) error {
	n := int64(cmd.Magnitude)
	ok := true
	switch cmd.Direction {
	case Forward:
		var dive int64
		if a.pos.Horizontal, ok = add(a.pos.Horizontal, n); ok {
			if dive, ok = mul(n, a.aim); ok {
				a.pos.Depth, ok = add(a.pos.Depth, dive)
			}
		}
	case Up:
		a.aim, ok = add(a.aim, -n)
	case Down:
		a.aim, ok = add(a.aim, n)
	default:
		return errors.NotValidf("direction %v", cmd.Direction)
	}
	if !ok {
		return errors.Annotatef(ErrOverflow, "after %s", cmd)
	}
	if a.aim < 0 {
		return errors.Annotatef(ErrNegativeAim, "after %s", cmd)
	}
	if a.pos.Depth < 0 {
		return errors.Annotatef(ErrNegativeDepth, "after %s", cmd)
	}
	return nil
}

func (a *Aimed) Position() Position { return a.pos }

// Aim returns the current aim.
func (a *Aimed) Aim() int64 { return a.aim }

// Navigate runs one pass over src, applying every command to nav.
func Navigate(src input.Source, policy input.Policy, nav Navigator) (Position, error) {
	count := 0
	err := input.Parse(src, ParseCommand, policy, func(_ input.Line, cmd Command) error {
		count++
		return nav.Apply(cmd)
	})
	if err != nil {
		return Position{}, errors.Trace(err)
	}
	if count == 0 {
		return Position{}, errors.Annotatef(ErrNoCommands, "%s", src.Name())
	}
	return nav.Position(), nil
}

// Options configures Solution.
type Options struct {
	Policy input.Policy
}

// Solution follows the commands in src twice, without and with aim, and
// writes both final positions to writer.
func Solution(src input.Source, writer io.Writer, opts Options) error {
	passes := []struct {
		label string
		nav   Navigator
	}{
		{label: "Without aim", nav: &Simple{}},
		{label: "With aim", nav: &Aimed{}},
	}

	for _, pass := range passes {
		pos, err := Navigate(src, opts.Policy, pass.nav)
		if err != nil {
			return err
		}
		product, err := pos.Product()
		if err != nil {
			return errors.Annotatef(err, "%s: %s", src.Name(), pass.label)
		}
		log.Logger().Debug("navigated",
			zap.String("input", src.Name()),
			zap.String("pass", pass.label),
			zap.Int64("horizontal", pos.Horizontal),
			zap.Int64("depth", pos.Depth))
		if _, err := fmt.Fprintf(writer, "%s: {horizontal: %d, depth: %d, product: %d}\n",
			pass.label, pos.Horizontal, pos.Depth, product); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}
