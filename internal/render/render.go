package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/EpicMandM/passgen/internal/models"
	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	FormatPlain = "plain"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Write prints generations to w in the given format.
func Write(w io.Writer, format string, gens []models.Generation) error {
	switch format {
	case FormatPlain, "":
		return writePlain(w, gens)
	case FormatTable:
		writeTable(w, gens)
		return nil
	case FormatJSON:
		return writeJSON(w, gens)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writePlain(w io.Writer, gens []models.Generation) error {
	for _, g := range gens {
		if _, err := fmt.Fprintln(w, g.Password); err != nil {
			return fmt.Errorf("failed to write password: %w", err)
		}
	}
	return nil
}

func writeTable(w io.Writer, gens []models.Generation) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Password", "Length", "Advisory"})
	for i, g := range gens {
		advisory := ""
		if g.Advisory {
			advisory = "unusually long"
		}
		tw.AppendRow(table.Row{i + 1, g.Password, g.Length, advisory})
	}
	tw.Render()
}

func writeJSON(w io.Writer, gens []models.Generation) error {
	if gens == nil {
		gens = []models.Generation{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(gens); err != nil {
		return fmt.Errorf("failed to encode generations: %w", err)
	}
	return nil
}
