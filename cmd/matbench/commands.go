package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/kernel"
)

// positiveArgs parses args as positive integers named by names.
func positiveArgs(names []string, args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%s must be a positive integer, got %q", names[i], s)
		}
		out[i] = v
	}
	return out, nil
}

// single builds a "<name> <size> <threads> <third>" command that measures one
// configuration per listed category.
func (a *app) single(use, short, third string, cats []bench.Category, params func(threads, third int) kernel.Params) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <size> <threads> <%s>", use, third),
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := positiveArgs([]string{"size", "threads", third}, args)
			if err != nil {
				return err
			}
			size, threads, k := v[0], v[1], v[2]

			cfg := a.s.cfg
			cfg.Sizes = []int{size}
			r, err := a.runner(cfg)
			if err != nil {
				return err
			}

			for _, cat := range cats {
				row, err := r.RunOne(cat, size, params(threads, k))
				if err != nil {
					return err
				}
				if !row.Valid() {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: validation failed for %v\n", cat, row.Failed())
				}
			}
			return nil
		},
	}
}

func (a *app) serialCmd() *cobra.Command {
	return a.single("serial", "Time the six serial loop orders", "chunk",
		[]bench.Category{bench.SerialPermutations},
		func(_, _ int) kernel.Params { return kernel.Params{} })
}

func (a *app) parallelCmd() *cobra.Command {
	return a.single("parallel", "Time the six parallel loop orders", "chunk",
		[]bench.Category{bench.ParallelPermutations},
		func(threads, chunk int) kernel.Params { return kernel.Params{Threads: threads, Chunk: chunk} })
}

func (a *app) scalingCmd() *cobra.Command {
	return a.single("scaling", "Compare serial IJK/IKJ with their parallel versions", "chunk",
		[]bench.Category{bench.ScalingClassic, bench.ScalingImproved},
		func(threads, chunk int) kernel.Params { return kernel.Params{Threads: threads, Chunk: chunk} })
}

func (a *app) tiledCmd() *cobra.Command {
	return a.single("tiled", "Compare IKJ with the cache-blocked kernels", "block",
		[]bench.Category{bench.Tiled},
		func(threads, block int) kernel.Params { return kernel.Params{Threads: threads, Block: block} })
}

func (a *app) sweepCmd() *cobra.Command {
	var only []string
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the configured Cartesian sweep over every category",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r, err := a.runner(a.s.cfg)
			if err != nil {
				return err
			}
			if len(only) == 0 {
				return r.RunAll()
			}
			for _, name := range only {
				cat, err := bench.ParseCategory(name)
				if err != nil {
					return err
				}
				if err = r.RunCategory(cat); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&only, "category", nil, "restrict the sweep to these tables, e.g. tiled,serial_permutations")
	return cmd
}

func kernelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List the registered kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ALGORITHM\tMODE\tNAME")
			for _, k := range kernel.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", k.Algorithm(), k.Mode(), kernel.Name(k))
			}
			return tw.Flush()
		},
	}
}
