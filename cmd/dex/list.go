package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex/internal/application/handlers"
	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/services"
)

func newListCmd() *cobra.Command {
	var (
		limit    int
		category string
		sortBy   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records",
		Long:  "Lists catalog records with optional type filtering and sorting.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, handlers.ListOptions{
				Category: category,
				SortBy:   services.SortKey(sortBy),
				Limit:    limit,
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultListLimit, "Maximum number of records to display (0 for all)")
	cmd.Flags().StringVarP(&category, "type", "t", "", "Only records with this type")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", string(services.SortByID), "Sort order (id, name, total)")

	return cmd
}

func runList(cmd *cobra.Command, opts handlers.ListOptions) error {
	return withDeps(cmd, func(d *Deps) error {
		records, err := d.Lookup.List(opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No records found.")
			return nil
		}

		return displayRecords(out, records, d.Load.Records)
	})
}

// displayRecords prints a compact table of records.
func displayRecords(w io.Writer, records []*entities.Record, totalCount int) error {
	if totalCount > len(records) {
		fmt.Fprintf(w, "Showing %d of %d records:\n\n", len(records), totalCount)
	} else {
		fmt.Fprintf(w, "Showing %d records:\n\n", len(records))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Pokémon\tTypes\tTotal")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", r, r.CategoryLabel(), r.Total())
	}
	return tw.Flush()
}
