package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cybertec-postgresql/vb6scan/internal/inventory"
)

// columnNames are the short table headings for inventory.Categories, in the
// same order.
var columnNames = []string{"CONT", "DATE", "GUID", "FILENUM", "CALL", "LABEL"}

// TextReporter formats the inventory as an aligned plain-text table
type TextReporter struct{}

// NewTextReporter creates a new text reporter
func NewTextReporter() *TextReporter {
	return &TextReporter{}
}

// Format writes one row per file followed by a totals row
func (r *TextReporter) Format(inv *inventory.Inventory, writer io.Writer) error {
	categories := inventory.Categories()

	generated := ""
	if !inv.Timestamp.IsZero() {
		generated = ", generated " + inv.Timestamp.Format(time.RFC3339)
	}
	if _, err := fmt.Fprintf(writer, "Token inventory (version %s%s)\n\n", inv.Version, generated); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	header := append([]string{"FILE", "KIND", "LINES"}, columnNames...)
	header = append(header, "TOTAL")
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	totalLines := 0
	for _, file := range inv.GetFiles() {
		entry := inv.Files[file]
		totalLines += entry.Lines
		row := []string{file, entry.Type.String(), fmt.Sprint(entry.Lines)}
		row = append(row, countCells(entry.Counts, categories)...)
		row = append(row, fmt.Sprint(entry.Total()))
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}

	totals := []string{"TOTAL", "", fmt.Sprint(totalLines)}
	totals = append(totals, countCells(inv.TotalCounts(), categories)...)
	totals = append(totals, fmt.Sprint(inv.TotalTokens()))
	fmt.Fprintln(tw, strings.Join(totals, "\t")+"\t")

	if err := tw.Flush(); err != nil {
		return err
	}

	for _, file := range inv.GetFiles() {
		for _, d := range inv.Files[file].Diagnostics {
			if _, err := fmt.Fprintf(writer, "warning: %s\n", d); err != nil {
				return err
			}
		}
	}
	return nil
}

func countCells(counts map[string]int, categories []string) []string {
	cells := make([]string, len(categories))
	for i, c := range categories {
		cells[i] = fmt.Sprint(counts[c])
	}
	return cells
}

// FormatString returns the inventory as a text table
func (r *TextReporter) FormatString(inv *inventory.Inventory) (string, error) {
	var buf strings.Builder
	if err := r.Format(inv, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this reporter
func (r *TextReporter) Name() string {
	return "text"
}
