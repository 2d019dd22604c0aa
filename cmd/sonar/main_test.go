package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanadeau/advent-of-code-2021/internal/cli/clitest"
)

func Test(t *testing.T) {
	clitest.TestSamples(t, program, "samples")
}

func TestMalformed(t *testing.T) {
	path := clitest.WriteInput(t, "199\n200\nbad\n208\n210\n200\n207\n240\n269\n260\n263\n")

	_, _, err := clitest.Execute(t, program, path)
	assert.EqualError(t, err, path+":3: 'bad' is not a valid number")

	stdout, _, err := clitest.Execute(t, program, path, "--policy", "skip")
	require.NoError(t, err)
	assert.Equal(t, "Number of single increases: 7\nNumber of windowed increases: 5\n", stdout)
}

func TestEmpty(t *testing.T) {
	path := clitest.WriteInput(t, "")

	_, _, err := clitest.Execute(t, program, path)
	assert.EqualError(t, err, path+": no lines")
}

func TestWindowFlag(t *testing.T) {
	stdout, _, err := clitest.Execute(t, program, "samples/example.txt", "--window", "1")
	require.NoError(t, err)
	assert.Equal(t, "Number of single increases: 7\nNumber of windowed increases: 7\n", stdout)
}

func TestPlusSign(t *testing.T) {
	path := clitest.WriteInput(t, "+1\n2\n+3\n")

	stdout, _, err := clitest.Execute(t, program, path)
	require.NoError(t, err)
	assert.Equal(t, "Number of single increases: 2\nNumber of windowed increases: 0\n", stdout)
}
