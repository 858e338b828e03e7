// Package main provides the entry point for the dex CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ersonp/dex/internal/infrastructure/config"
)

var (
	version    = "0.1.0-dev"
	globalData string
	verbose    bool

	// Set up in PersistentPreRunE for every command.
	appConfig *config.Config
	logger    = zap.NewNop()
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dex",
		Short: "Look up and compare creature records from a flat-file catalog",
		Long: `dex loads a comma-separated catalog of creature records once and answers
lookups by name or number. Run without a subcommand for an interactive session.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: runInteractive,
	}

	rootCmd.PersistentFlags().StringVarP(&globalData, "data", "d", "", "Catalog source file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInteractiveCmd(),
		newShowCmd(),
		newCompareCmd(),
		newListCmd(),
		newExportCmd(),
		newInitCmd(),
	)

	return rootCmd
}

// setup loads configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	l, err := newLogger(cfg.Log, verbose)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	appConfig = cfg
	logger = l
	return nil
}

// newLogger builds a zap logger writing to stderr.
func newLogger(cfg config.LogConfig, debug bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.DisableStacktrace = true
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	if debug {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
