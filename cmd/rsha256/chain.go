package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/zeebo/rsha256/checkpoint"
)

func (a *app) chainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Create and verify checkpointed hash chains",
	}
	cmd.AddCommand(a.chainCreateCmd(), a.chainVerifyCmd())
	return cmd
}

func (a *app) chainCreateCmd() *cobra.Command {
	var (
		seedText string
		seedHex  string
		interval uint64
		count    int
		output   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Run a chain from a seed, recording a checkpoint every interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var seed checkpoint.Hash
			if cmd.Flags().Changed("seed") {
				if err := seed.UnmarshalText([]byte(seedHex)); err != nil {
					return err
				}
			} else {
				seed = checkpoint.SeedFrom([]byte(seedText))
			}

			start := time.Now()
			c, err := checkpoint.Create(cmd.Context(), seed, interval, count, checkpoint.Options{Log: a.log})
			if err != nil {
				return err
			}
			a.log.Info("chain created",
				zap.Stringer("seed", c.Seed),
				zap.Uint64("iterations", c.Iterations()),
				zap.Stringer("output", c.Output()),
				zap.Duration("elapsed", time.Since(start)))

			if output == "" {
				return checkpoint.Encode(cmd.OutOrStdout(), c)
			}

			fh, err := os.Create(output)
			if err != nil {
				return err
			}
			defer func() { err = errs.Combine(err, fh.Close()) }()

			return checkpoint.Encode(fh, c)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&seedText, "seed-text", "", "derive the seed from the SHA-256 of this text")
	flags.StringVar(&seedHex, "seed", "", "seed as 64 hex digits")
	flags.Uint64Var(&interval, "interval", 0, "iterations between checkpoints")
	flags.IntVar(&count, "count", 0, "number of checkpoints")
	flags.StringVarP(&output, "output", "o", "", "write the chain to this file instead of stdout")

	cmd.MarkFlagsOneRequired("seed", "seed-text")
	cmd.MarkFlagsMutuallyExclusive("seed", "seed-text")
	_ = cmd.MarkFlagRequired("interval")
	_ = cmd.MarkFlagRequired("count")

	return cmd
}

func (a *app) chainVerifyCmd() *cobra.Command {
	var (
		input   string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every checkpoint of a chain, segments in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if input != "" {
				fh, err := os.Open(input)
				if err != nil {
					return err
				}
				defer func() { _ = fh.Close() }()
				r = fh
			}

			c, err := checkpoint.Decode(r)
			if err != nil {
				return err
			}

			start := time.Now()
			err = checkpoint.Verify(cmd.Context(), c, checkpoint.Options{Workers: workers, Log: a.log})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d segments, %d iterations, output %v\n",
				len(c.Checkpoints), c.Iterations(), c.Output())
			a.log.Debug("chain verified", zap.Duration("elapsed", time.Since(start)))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&input, "file", "f", "", "read the chain from this file instead of stdin")
	flags.IntVar(&workers, "workers", 0, "concurrent segment pairs (0 means GOMAXPROCS)")

	return cmd
}
