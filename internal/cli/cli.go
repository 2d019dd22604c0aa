// Package cli wires a puzzle solver into a cobra command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tanadeau/advent-of-code-2021/internal/config"
	"github.com/tanadeau/advent-of-code-2021/internal/input"
	"github.com/tanadeau/advent-of-code-2021/internal/log"
	"github.com/tanadeau/advent-of-code-2021/internal/profile"
)

// Solver computes and prints the results for one input.
type Solver func(src input.Source, writer io.Writer, conf *config.Config) error

// Program describes one command line tool.
type Program struct {
	Use   string
	Short string
	Solve Solver
	// Window exposes the --window flag.
	Window bool
}

// NewCommand builds the cobra command for p.
func NewCommand(p Program) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           p.Use + " <input>",
		Short:         p.Short,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 0:
				return errors.New("expected path to input as first arg")
			case len(args) > 1:
				return errors.Errorf("unexpected arguments %q", args[1:])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, p, args[0])
		},
	}
	addFlags(cmd.Flags(), p)
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

func addFlags(flagSet *pflag.FlagSet, p Program) {
	d := config.Default()
	flagSet.StringP("config", "c", "", "configuration file path")
	flagSet.String("mode", string(d.Mode), "how passes re-read the input (rewind, buffered)")
	flagSet.String("policy", string(d.Policy), "what to do with unparsable lines (strict, skip)")
	flagSet.Bool("debug", false, "use debug log mode")
	flagSet.String("cpuprofile", "", "write a cpu profile to this file")
	flagSet.String("memprofile", "", "write a heap profile to this file")
	if p.Window {
		flagSet.Int("window", d.Window, "width of the sliding window")
	}
}

func run(cmd *cobra.Command, v *viper.Viper, p Program, path string) (err error) {
	var except []string
	if !p.Window {
		except = append(except, "Window")
	}
	conf, err := config.Load(v, except...)
	if err != nil {
		return err
	}

	log.SetLogger(conf.Debug, zapcore.AddSync(cmd.ErrOrStderr()))
	defer func() {
		if err != nil {
			log.Logger().Debug("failed", zap.String("trace", errors.ErrorStack(err)))
		}
		log.CloseLogger()
	}()

	stop, err := profile.Start(conf.CPUProfile)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := stop(); err == nil {
			err = stopErr
		}
	}()

	src, err := input.OpenFile(path, conf.Mode)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := src.Close(); err == nil {
			err = errors.Annotatef(closeErr, "could not close %s", path)
		}
	}()

	if err := p.Solve(src, cmd.OutOrStdout(), conf); err != nil {
		return err
	}

	return profile.WriteHeap(conf.MemProfile)
}

// Execute runs p with the process arguments and exits non-zero on failure.
func Execute(p Program) {
	if err := NewCommand(p).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", p.Use, err)
		os.Exit(1)
	}
}
