// sonar counts how often the depth increases in a sonar sweep report, both
// reading by reading and over a sliding window.
package main

import (
	"io"

	"github.com/tanadeau/advent-of-code-2021/internal/cli"
	"github.com/tanadeau/advent-of-code-2021/internal/config"
	"github.com/tanadeau/advent-of-code-2021/internal/input"
	"github.com/tanadeau/advent-of-code-2021/internal/sonar"
)

var program = cli.Program{
	Use:    "sonar",
	Short:  "Count depth increases in a sonar sweep report.",
	Window: true,
	Solve: func(src input.Source, writer io.Writer, conf *config.Config) error {
		return sonar.Solution(src, writer, sonar.Options{Policy: conf.Policy, Window: conf.Window})
	},
}

func main() {
	cli.Execute(program)
}
