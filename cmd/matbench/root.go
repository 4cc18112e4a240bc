package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/matrix"
	"github.com/katalvlaran/matbench/report"
)

// app carries state from the persistent pre-run into the subcommands.
type app struct {
	v          *viper.Viper
	configFile string
	s          settings
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper()}

	root := &cobra.Command{
		Use:   "matbench",
		Short: "Benchmark dense matrix multiplication kernels",
		Long: "matbench times the six loop orders of C = A×B, their parallel\n" +
			"variants and three cache-blocked kernels, validates every output\n" +
			"against a serial reference and appends speedups to CSV tables.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Arguments are valid by now; later failures are not usage errors.
			cmd.SilenceUsage = true

			s, err := load(a.v, a.configFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.s = s
			if s.clear {
				return a.writer().Clear()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "sweep config file (yaml, toml or json)")
	pf.String("out", "data", "directory receiving the CSV tables")
	pf.Int64("seed", bench.DefaultSeed, "seed for the random operands")
	pf.Float64("epsilon", matrix.DefaultEpsilon, "absolute tolerance for output validation")
	pf.String("metric", report.MetricSpeedup.String(), "cell value: speedup or seconds")
	pf.Bool("clear", false, "remove existing tables before running")
	pf.String("log-level", "info", "debug, info, warn or error")
	cobra.CheckErr(bindFlags(a.v, pf))

	root.AddCommand(
		a.serialCmd(),
		a.parallelCmd(),
		a.scalingCmd(),
		a.tiledCmd(),
		a.sweepCmd(),
		kernelsCmd(),
	)
	return root
}

func (a *app) writer() report.Writer {
	return report.NewWriter(a.s.out, a.s.metric)
}

// runner builds a Runner over cfg that writes to the configured tables.
func (a *app) runner(cfg bench.Config) (*bench.Runner, error) {
	return bench.New(cfg, a.writer(), bench.WithLogger(a.s.logger))
}
