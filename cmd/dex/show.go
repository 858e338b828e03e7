package main

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|number>",
		Short: "Show one record",
		Long:  "Looks a record up by name (case-insensitive) or by number and prints its details.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}
}

func runShow(cmd *cobra.Command, input string) error {
	return withDeps(cmd, func(d *Deps) error {
		displayLookup(cmd.OutOrStdout(), d.Lookup.Handle(input))
		return nil
	})
}
