package main

import (
	"testing"

	"github.com/tanadeau/advent-of-code-2021/internal/cli/clitest"
)

func Benchmark(b *testing.B) {
	clitest.BenchmarkSamples(b, program, "samples")
}
