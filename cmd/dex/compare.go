package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex/internal/application/handlers"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <name|number> <name|number>",
		Short: "Compare two records by stat total",
		Long: `Shows both records and whether the first is lesser than, equal to or greater
than the second. Records are ordered by the sum of their stats only, so two
different records with the same total compare as equal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args[0], args[1])
		},
	}
}

func runCompare(cmd *cobra.Command, first, second string) error {
	return withDeps(cmd, func(d *Deps) error {
		out := cmd.OutOrStdout()

		result := d.Lookup.Compare(first, second)
		displayLookup(out, result.First)
		displayLookup(out, result.Second)

		if result.Complete() {
			displayOutcome(out, result.First.Record, result.Second.Record)
		}
		return nil
	})
}

// displayLookup prints a hit's details or the not-found line.
func displayLookup(w io.Writer, result handlers.LookupResult) {
	if !result.Found {
		displayNotFound(w)
		return
	}
	displayRecord(w, result.Record)
}
