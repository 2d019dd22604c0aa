// dive follows submarine commands and prints the final position, once
// moving depth directly and once through aim.
package main

import (
	"io"

	"github.com/tanadeau/advent-of-code-2021/internal/cli"
	"github.com/tanadeau/advent-of-code-2021/internal/config"
	"github.com/tanadeau/advent-of-code-2021/internal/dive"
	"github.com/tanadeau/advent-of-code-2021/internal/input"
)

var program = cli.Program{
	Use:   "dive",
	Short: "Follow submarine commands to a final position.",
	Solve: func(src input.Source, writer io.Writer, conf *config.Config) error {
		return dive.Solution(src, writer, dive.Options{Policy: conf.Policy})
	},
}

func main() {
	cli.Execute(program)
}
