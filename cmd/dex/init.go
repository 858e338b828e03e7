package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration",
		Long: `Creates a .dex directory with a default config.yaml in the current directory.
With --data the given source path is recorded as data.path.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	result, err := handlers.NewInitHandler(logger).Handle(cwd, globalData)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", result.ConfigPath)
	if _, err := os.Stat(result.DataPath); err != nil {
		fmt.Fprintf(out, "Place the catalog source at %s or set data.path\n", result.DataPath)
	}
	fmt.Fprintln(out, "dex initialized successfully!")

	return nil
}
