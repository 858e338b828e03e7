package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex/internal/application/handlers"
	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/infrastructure/config"
	"github.com/ersonp/dex/internal/infrastructure/parsers"
)

type exportFlags struct {
	format   string
	output   string
	category string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the loaded catalog",
		Long: `Exports records to JSON, CSV, markdown, or a SQLite snapshot.
CSV output uses the source column layout, so it can be loaded again with --data.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown, sqlite)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout; sqlite defaults to the configured path)")
	cmd.Flags().StringVarP(&flags.category, "type", "t", "", "Only records with this type")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !slices.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	return withDeps(cmd, func(d *Deps) error {
		records, err := d.Lookup.List(handlers.ListOptions{Category: flags.category})
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return errors.New("no records found to export")
		}

		if flags.format == "sqlite" {
			return exportSnapshot(cmd, d, flags.output, records)
		}
		return exportFile(cmd, flags, records)
	})
}

func exportSnapshot(cmd *cobra.Command, d *Deps, output string, records []*entities.Record) error {
	path := output
	if path == "" {
		path = config.ResolvePath(d.BasePath, d.Config.SQLite.Path)
	}

	return withSnapshotHandler(path, func(h *handlers.SnapshotHandler) error {
		result, err := h.Handle(cmd.Context(), d.Load.Path, records)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s (snapshot %s)\n", result.Records, path, result.ID)
		return nil
	})
}

func exportFile(cmd *cobra.Command, flags exportFlags, records []*entities.Record) (err error) {
	w := cmd.OutOrStdout()
	var f *os.File

	if flags.output != "" {
		f, err = os.OpenFile(flags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	}

	if err := formatRecords(w, flags.format, records); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if flags.output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", len(records), flags.output)
	}

	return nil
}

func formatRecords(w io.Writer, format string, records []*entities.Record) error {
	switch format {
	case "json":
		return formatJSON(w, records)
	case "csv":
		return formatCSV(w, records)
	case "markdown":
		return formatMarkdown(w, records)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func formatJSON(w io.Writer, records []*entities.Record) error {
	type exportRecord struct {
		ID    int            `json:"id"`
		Name  string         `json:"name"`
		Types []string       `json:"types"`
		Stats map[string]int `json:"stats"`
		Total int            `json:"total"`
	}

	exportRecords := make([]exportRecord, 0, len(records))
	for _, r := range records {
		stats := make(map[string]int, entities.StatCount)
		for _, s := range entities.AllStats {
			stats[s.String()] = r.Stat(s)
		}
		exportRecords = append(exportRecords, exportRecord{
			ID:    r.ID(),
			Name:  r.Name(),
			Types: r.Categories(),
			Stats: stats,
			Total: r.Total(),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportRecords)
}

// formatCSV writes the source layout: one record per line, fields joined
// by commas with no quoting, so the output loads back with --data.
func formatCSV(w io.Writer, records []*entities.Record) error {
	if _, err := fmt.Fprintln(w, strings.Join(parsers.SourceHeader, ",")); err != nil {
		return err
	}

	for _, r := range records {
		categories := r.Categories()
		type2 := ""
		if len(categories) > 1 {
			type2 = categories[1]
		}

		row := []string{strconv.Itoa(r.ID()), r.Name(), categories[0], type2}
		for _, v := range r.Stats() {
			row = append(row, strconv.Itoa(v))
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, ",")); err != nil {
			return err
		}
	}

	return nil
}

func formatMarkdown(w io.Writer, records []*entities.Record) error {
	if _, err := fmt.Fprintf(w, "# Exported Pokémon\n\nTotal: %d records\n\n", len(records)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| # | Name | Types | HP | Atk | Def | SpA | SpD | Spe | Total |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|---|------|-------|----|-----|-----|-----|-----|-----|-------|\n"); err != nil {
		return err
	}

	for _, r := range records {
		cells := []string{
			strconv.Itoa(r.ID()),
			escapeMarkdown(r.Name()),
			escapeMarkdown(r.CategoryLabel()),
		}
		for _, v := range r.Stats() {
			cells = append(cells, strconv.Itoa(v))
		}
		cells = append(cells, strconv.Itoa(r.Total()))

		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
