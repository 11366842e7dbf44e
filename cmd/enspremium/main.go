// Command enspremium computes the temporary premium of released .eth names
// and converts and formats prices between the supported currencies.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/namehash/price/internal/config"
	"github.com/namehash/price/internal/logger"
)

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "enspremium:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
	}
	if cerr := logger.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "closing log file")
	}
	return err
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout}
	var configPath string

	root := &cobra.Command{
		Use:           "enspremium",
		Short:         "temporary premium and price tools for .eth names",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "invalid config")
			}
			if err := logger.Init("enspremium", cfg.Log.Level, cfg.Log.File); err != nil {
				return errors.Wrap(err, "initializing logger")
			}
			if err := a.configure(cfg); err != nil {
				return err
			}

			ctx := logger.WithCommand(cmd.Context(), cmd.Name())
			cmd.SetContext(ctx)
			logger.Debug(ctx, "configuration loaded",
				zap.String("rates", a.rates.String()),
				zap.Stringer("schedule", a.schedule),
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return errors.Wrap(errUsage, "missing command")
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(errUsage, err.Error())
	})
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: ./enspremium.yaml if present)")

	root.AddCommand(
		a.premiumCmd(),
		a.scheduleCmd(),
		a.convertCmd(),
		a.formatCmd(),
	)
	return root
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.Wrapf(errUsage, "unexpected arguments %v", args)
	}
	return nil
}
