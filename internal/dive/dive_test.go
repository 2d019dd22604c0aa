package dive

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanadeau/advent-of-code-2021/internal/input"
)

const example = "forward 5\ndown 5\nforward 8\nup 3\ndown 8\nforward 2\n"

func newSource(t *testing.T, text string) input.Source {
	t.Helper()
	return input.NewRewinder("input.txt", strings.NewReader(text))
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{line: "forward 5", want: Command{Direction: Forward, Magnitude: 5}},
		{line: "up 0", want: Command{Direction: Up, Magnitude: 0}},
		{line: "down 4294967295", want: Command{Direction: Down, Magnitude: 4294967295}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.line, got.String())
		})
	}
}

func TestParseCommandInvalid(t *testing.T) {
	tests := []struct {
		line string
		msg  string
	}{
		{line: "up", msg: "line does not follow correct format: 'up'"},
		{line: "left 3", msg: "line does not follow correct format: 'left 3'"},
		{line: "Forward 3", msg: "line does not follow correct format: 'Forward 3'"},
		{line: "forward  3", msg: "line does not follow correct format: 'forward  3'"},
		{line: "forward 3 ", msg: "line does not follow correct format: 'forward 3 '"},
		{line: " down 3", msg: "line does not follow correct format: ' down 3'"},
		{line: "down -3", msg: "line does not follow correct format: 'down -3'"},
		{line: "down x", msg: "line does not follow correct format: 'down x'"},
		{line: "", msg: "line does not follow correct format: ''"},
		{line: "forward 4294967296", msg: "could not parse number from line 'forward 4294967296'"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseCommand(tt.line)
			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, tt.line, formatErr.Line)
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "Direction(7)", Direction(7).String())
}

func TestSimple(t *testing.T) {
	pos, err := Navigate(newSource(t, example), input.PolicyStrict, &Simple{})
	require.NoError(t, err)
	assert.Equal(t, Position{Horizontal: 15, Depth: 10}, pos)
	product, err := pos.Product()
	require.NoError(t, err)
	assert.EqualValues(t, 150, product)
}

func TestAimed(t *testing.T) {
	nav := &Aimed{}
	pos, err := Navigate(newSource(t, example), input.PolicyStrict, nav)
	require.NoError(t, err)
	assert.Equal(t, Position{Horizontal: 15, Depth: 60}, pos)
	product, err := pos.Product()
	require.NoError(t, err)
	assert.EqualValues(t, 900, product)
	assert.EqualValues(t, 10, nav.Aim())
}

func TestNegativeDepth(t *testing.T) {
	_, err := Navigate(newSource(t, "down 2\nup 3\n"), input.PolicyStrict, &Simple{})
	assert.True(t, errors.Is(err, ErrNegativeDepth))
	assert.EqualError(t, err, "input.txt:2: after up 3: depth below zero")

	_, err = Navigate(newSource(t, "down 2\nup 3\nforward 1\n"), input.PolicyStrict, &Aimed{})
	assert.True(t, errors.Is(err, ErrNegativeAim))

	pos, err := Navigate(newSource(t, "down 2\nup 2\n"), input.PolicyStrict, &Simple{})
	require.NoError(t, err)
	assert.Zero(t, pos.Depth)
}

func TestInvalidDirection(t *testing.T) {
	cmd := Command{Direction: Direction(9), Magnitude: 1}
	assert.True(t, errors.Is((&Simple{}).Apply(cmd), errors.NotValid))
	assert.True(t, errors.Is((&Aimed{}).Apply(cmd), errors.NotValid))
}

func TestNavigateEmpty(t *testing.T) {
	_, err := Navigate(newSource(t, ""), input.PolicyStrict, &Simple{})
	assert.True(t, errors.Is(err, ErrNoCommands))
	assert.EqualError(t, err, "input.txt: no commands")

	_, err = Navigate(newSource(t, "sideways 1\n"), input.PolicySkip, &Simple{})
	assert.True(t, errors.Is(err, ErrNoCommands))
}

func TestNavigateMalformed(t *testing.T) {
	src := newSource(t, "forward 5\nleft 3\ndown 5\n")

	_, err := Navigate(src, input.PolicyStrict, &Simple{})
	var lineErr *input.LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Line.Number)
	assert.Equal(t, "left 3", lineErr.Line.Text)
	assert.EqualError(t, err, "input.txt:2: line does not follow correct format: 'left 3'")

	pos, err := Navigate(src, input.PolicySkip, &Simple{})
	require.NoError(t, err)
	assert.Equal(t, Position{Horizontal: 5, Depth: 5}, pos)
}

func TestSolution(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Solution(newSource(t, example), &buf, Options{Policy: input.PolicyStrict}))
	assert.Equal(t,
		"Without aim: {horizontal: 15, depth: 10, product: 150}\n"+
			"With aim: {horizontal: 15, depth: 60, product: 900}\n",
		buf.String())
}

func TestSolutionPassesMatchFreshSources(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Solution(newSource(t, example), &buf, Options{Policy: input.PolicyStrict}))

	var want bytes.Buffer
	for _, pass := range []struct {
		label string
		nav   Navigator
	}{
		{label: "Without aim", nav: &Simple{}},
		{label: "With aim", nav: &Aimed{}},
	} {
		pos, err := Navigate(newSource(t, example), input.PolicyStrict, pass.nav)
		require.NoError(t, err)
		product, err := pos.Product()
		require.NoError(t, err)
		fmt.Fprintf(&want, "%s: {horizontal: %d, depth: %d, product: %d}\n", pass.label, pos.Horizontal, pos.Depth, product)
	}

	assert.Equal(t, want.String(), buf.String())
}

func TestOverflow(t *testing.T) {
	tests := []struct {
		name string
		text string
		msg  string
	}{
		{
			name: "forward times aim",
			text: "down 4294967295\nforward 4294967295\n",
			msg:  "input.txt:2: after forward 4294967295: integer overflow",
		},
		{
			name: "depth sum",
			text: "down 2147483648\nforward 2147483647\nforward 2147483647\nforward 2147483647\n",
			msg:  "input.txt:4: after forward 2147483647: integer overflow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Navigate(newSource(t, tt.text), input.PolicyStrict, &Aimed{})
			assert.True(t, errors.Is(err, ErrOverflow))
			assert.False(t, errors.Is(err, ErrNegativeDepth))
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestCheckedArithmetic(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b int64) (int64, bool)
		a, b int64
		want int64
		ok   bool
	}{
		{name: "add", fn: add, a: 2, b: 3, want: 5, ok: true},
		{name: "add negative", fn: add, a: 2, b: -3, want: -1, ok: true},
		{name: "add max", fn: add, a: math.MaxInt64, b: 1},
		{name: "add min", fn: add, a: math.MinInt64, b: -1},
		{name: "mul", fn: mul, a: 4294967295, b: 2147483647, want: 9223372030412324865, ok: true},
		{name: "mul zero", fn: mul, a: 0, b: math.MaxInt64, want: 0, ok: true},
		{name: "mul max", fn: mul, a: 4294967295, b: 4294967295},
		{name: "mul min", fn: mul, a: -1, b: math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fn(tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProductOverflow(t *testing.T) {
	text := "down 3000000000\nforward 3000000000\n"

	pos, err := Navigate(newSource(t, text), input.PolicyStrict, &Aimed{})
	require.NoError(t, err)
	assert.Equal(t, Position{Horizontal: 3000000000, Depth: 9000000000000000000}, pos)
	_, err = pos.Product()
	assert.True(t, errors.Is(err, ErrOverflow))

	var buf bytes.Buffer
	err = Solution(newSource(t, text), &buf, Options{Policy: input.PolicyStrict})
	assert.EqualError(t, err,
		"input.txt: With aim: product of {horizontal: 3000000000, depth: 9000000000000000000}: integer overflow")
	assert.Equal(t, "Without aim: {horizontal: 3000000000, depth: 3000000000, product: 9000000000000000000}\n", buf.String())
}
