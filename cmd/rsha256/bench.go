package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/zeebo/rsha256/internal/bench"
)

func (a *app) benchCmd() *cobra.Command {
	cfg := bench.DefaultConfig()
	var (
		iters string
		ghz   float64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure the recursive SHA-256 drivers against recorded values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if cfg.Iters, err = bench.ParseIters(iters); err != nil {
				return err
			}
			if cmd.Flags().Changed("ghz") {
				if cfg.GHz, err = bench.ParseGHz(ghz); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), bench.Header())

			r := &bench.Runner{Config: cfg, Out: cmd.OutOrStdout(), Log: a.log}
			results, err := r.Run(cmd.Context())
			a.log.Debug("benchmark finished", zap.Int("results", len(results)), zap.Error(err))
			return err
		},
	}

	registerBenchFlags(cmd.Flags(), &cfg, &iters, &ghz)

	return cmd
}

var _ pflag.Value = (*bench.Unit)(nil)

func registerBenchFlags(flags *pflag.FlagSet, cfg *bench.Config, iters *string, ghz *float64) {
	flags.StringVarP(iters, "iters", "i", "10M", "iterations per lane: 10M, 50M, 100M, 200M or 500M")
	flags.Float64VarP(ghz, "ghz", "s", 0, "cpu speed in GHz (0.1 to 999.9), enables per clock figures")
	flags.VarP(&cfg.Unit, "unit", "m", "report unit: MH, MB, MiB or cpb")
	flags.IntVarP(&cfg.Threads, "threads", "t", cfg.Threads, "concurrent runs per driver (1 to 256)")
	flags.IntSliceVarP(&cfg.Widths, "widths", "w", cfg.Widths, "lane widths to run")
	flags.BoolVar(&cfg.Reference, "reference", false, "also run the generic reference driver")
}
