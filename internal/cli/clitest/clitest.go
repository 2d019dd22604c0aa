// Package clitest runs cli programs against golden sample files.
package clitest

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanadeau/advent-of-code-2021/internal/cli"
	"github.com/tanadeau/advent-of-code-2021/internal/config"
	"github.com/tanadeau/advent-of-code-2021/internal/input"
)

// Modes lists every read mode a sample is checked with.
var Modes = []input.Mode{input.ModeRewind, input.ModeBuffered}

// Execute runs p with args and returns what it wrote to stdout and stderr.
func Execute(t testing.TB, p cli.Program, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	cmd := cli.NewCommand(p)
	cmd.SetArgs(args)
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// WriteInput writes text to a fresh input file and returns its path.
func WriteInput(t testing.TB, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

// TestSamples runs p on every <name>.txt in dir, once per read mode, and
// compares stdout with <name>.out.
func TestSamples(t *testing.T, p cli.Program, dir string) {
	forEachSample(t, dir, func(t *testing.T, txtFilename, outFilename string) {
		outFileBytes, err := os.ReadFile(outFilename)
		require.NoError(t, err)

		for _, mode := range Modes {
			t.Run(string(mode), func(t *testing.T) {
				stdout, _, err := Execute(t, p, txtFilename, "--mode", string(mode))
				require.NoError(t, err)
				assert.Equal(t, string(outFileBytes), stdout)
			})
		}
	})
}

// BenchmarkSamples benchmarks p on every sample in dir against a baseline
// that only reads the file twice.
func BenchmarkSamples(b *testing.B, p cli.Program, dir string) {
	forEachSample(b, dir, func(b *testing.B, txtFilename, _ string) {
		b.Run("baseline", func(b *testing.B) {
			benchmarkFileBaseline(b, txtFilename)
		})

		for _, mode := range Modes {
			b.Run(string(mode), func(b *testing.B) {
				benchmarkFileSolution(b, p, txtFilename, mode)
			})
		}
	})
}

func forEachSample[T interface {
	testing.TB
	Run(name string, f func(T)) bool
}](t T, dir string, fn func(t T, txtFilename, outFilename string)) {
	files, err := os.ReadDir(dir)
	require.NoError(t, err)

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".txt") {
			continue
		}

		name := strings.TrimSuffix(file.Name(), ".txt")

		t.Run(name, func(t T) {
			fn(t, filepath.Join(dir, name+".txt"), filepath.Join(dir, name+".out"))
		})
	}
}

func benchmarkFileSolution(b *testing.B, p cli.Program, txtFilename string, mode input.Mode) {
	conf := config.Default()
	conf.Mode = mode

	for n := 0; n < b.N; n++ {
		src, err := input.OpenFile(txtFilename, mode)
		if err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
		if err := p.Solve(src, io.Discard, conf); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
		src.Close()
	}
}

func benchmarkFileBaseline(b *testing.B, txtFilename string) {
	f, err := os.Open(txtFilename)
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}

	defer f.Close()

	for n := 0; n < b.N; n++ {
		for pass := 0; pass < 2; pass++ {
			if _, err := io.Copy(io.Discard, f); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}

			if _, err := f.Seek(0, io.SeekStart); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
		}
	}
}
