package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/marcodamonte/langtour/background"
	"github.com/marcodamonte/langtour/config"
	"github.com/marcodamonte/langtour/tour"
)

type flags struct {
	configPath string
	verbose    bool
	wait       bool
	banners    bool
	only       []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "langtour",
		Short: "A guided tour of Go language features",
		Long: `langtour runs a fixed sequence of small demos (types, control flow,
collections, closures, panic recovery, enums, a fire-and-forget goroutine)
and prints what each one produces. One section reads a line from stdin.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTour(cmd, f)
		},
	}

	root.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML file overriding the tour inputs")
	root.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "debug logging on stderr")
	root.Flags().BoolVar(&f.wait, "wait", false, "wait for the background goroutine before exiting")
	root.Flags().BoolVar(&f.banners, "banners", false, "print a heading before each section")
	root.Flags().StringSliceVar(&f.only, "only", nil, "run only these sections (see 'langtour sections')")

	root.AddCommand(&cobra.Command{
		Use:   "sections",
		Short: "List the tour's sections in run order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range tour.Sections() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", s.Name, s.Title)
			}
		},
	})
	return root
}

// buildLogger is swapped in tests to observe what the command logs.
var buildLogger = newLogger

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func runTour(cmd *cobra.Command, f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("banners") {
		cfg.Runtime.Banners = f.banners
	}
	if cmd.Flags().Changed("wait") {
		cfg.Runtime.Wait = f.wait
	}

	logger, err := buildLogger(f.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ex := background.New(background.Config{
		Workers:         cfg.Runtime.Workers,
		QueueSize:       cfg.Runtime.QueueSize,
		ShutdownTimeout: cfg.Runtime.ShutdownTimeout,
		Logger:          logger,
	})

	r, err := tour.New(cfg, tour.Options{
		Out:      cmd.OutOrStdout(),
		In:       cmd.InOrStdin(),
		Logger:   logger,
		Executor: ex,
		Only:     f.only,
		Banners:  cfg.Runtime.Banners,
	})
	if err != nil {
		return err
	}

	// The returned error is printed once by main; the log only ties it to
	// the run id.
	runErr := r.Run(cmd.Context())
	if runErr != nil {
		logger.Debug("tour failed", zap.String("run_id", r.RunID()), zap.Error(runErr))
	}

	// Without --wait the background task is left to race process exit.
	if cfg.Runtime.Wait {
		if err := ex.Shutdown(); err != nil {
			logger.Warn("background shutdown", zap.Error(err))
		}
	}
	return runErr
}
