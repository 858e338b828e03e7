package main

import (
	"fmt"
	"io"

	"github.com/ersonp/dex/internal/domain/entities"
)

const notFoundMessage = "Pokémon not found!"

var statDisplayNames = map[entities.Stat]string{
	entities.StatHealth:         "HP",
	entities.StatAttack:         "Attack",
	entities.StatDefense:        "Defense",
	entities.StatSpecialAttack:  "Special Attack",
	entities.StatSpecialDefense: "Special Defense",
	entities.StatSpeed:          "Speed",
}

// displayRecord prints the full detail block for a record.
func displayRecord(w io.Writer, r *entities.Record) {
	fmt.Fprintf(w, "\n%-20s%s\n", "Pokémon:", r)
	fmt.Fprintf(w, "%-20s%s\n", "Types:", r.CategoryLabel())
	fmt.Fprintln(w, "Stats:")
	for _, s := range entities.AllStats {
		fmt.Fprintf(w, "  %-18s%3d\n", statDisplayNames[s]+":", r.Stat(s))
	}
	fmt.Fprintf(w, "  %-18s%3d\n\n", "Total:", r.Total())
}

// displayComparison prints the relational line between two records.
func displayComparison(w io.Writer, a, b *entities.Record) {
	fmt.Fprintf(w, "%s %s %s\n\n", a, a.Compare(b).Symbol(), b)
}

// displayOutcome prints the relational line followed by the outcome in words
// and both totals.
func displayOutcome(w io.Writer, a, b *entities.Record) {
	ordering := a.Compare(b)
	fmt.Fprintf(w, "%s %s %s\n", a, ordering.Symbol(), b)
	fmt.Fprintf(w, "Outcome: %s (%d vs %d)\n\n", ordering, a.Total(), b.Total())
}

func displayNotFound(w io.Writer) {
	fmt.Fprintln(w, notFoundMessage)
}
