// Command rsha256 benchmarks the recursive SHA-256 drivers and creates or
// verifies checkpointed hash chains.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	verbose bool
	log     *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	a := new(app)
	err := a.root().ExecuteContext(ctx)
	stop()

	if a.log != nil {
		_ = a.log.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

func (a *app) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rsha256",
		Short:        "Recursive SHA-256 benchmark and hash chain tool",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			a.log, err = newLogger(a.verbose)
			return err
		},
	}
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(
		a.benchCmd(),
		a.chainCmd(),
		a.cpuCmd(),
	)
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
