package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/x/ansi"
)

var jsonOutput bool

const maxCellWidth = 60

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7AA2F7")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565F89"))
)

// wantsJSON reports whether results on w should be JSON: when forced with
// --json or when w is not a terminal.
func wantsJSON(w io.Writer) bool {
	if jsonOutput {
		return true
	}
	f, ok := w.(*os.File)
	return !ok || !isTerminal(f.Fd())
}

// printResult writes v as indented JSON or as a table of headers and rows.
func printResult(w io.Writer, v any, headers []string, rows [][]string) error {
	if wantsJSON(w) {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, renderTable(headers, rows))
	return err
}

func renderTable(headers []string, rows [][]string) string {
	for i, row := range rows {
		for j, cell := range row {
			rows[i][j] = ansi.Truncate(cell, maxCellWidth, "…")
		}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}
