package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cybertec-postgresql/vb6scan/internal/inventory"
	"github.com/cybertec-postgresql/vb6scan/internal/report"
)

// Report generates a report from a saved inventory. An output path of "-"
// or "" writes to stdout.
func Report(inventoryFile string, format string, outputPath string) error {
	// Step 1: Load inventory
	store := inventory.NewStore(inventoryFile)
	if !store.Exists() {
		return fmt.Errorf("inventory file not found: %s (run 'vb6scan scan' first)", inventoryFile)
	}

	inv, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	// Step 2: Validate format
	if !report.ValidFormat(format) {
		return fmt.Errorf("unsupported format: %s (supported: %v)", format, report.SupportedFormats())
	}

	formatter, err := report.GetFormatter(report.FormatType(format))
	if err != nil {
		return err
	}

	// Step 3: Format and output
	var writer io.Writer = os.Stdout
	if outputPath != "-" && outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	if err := formatter.Format(inv, writer); err != nil {
		return fmt.Errorf("failed to format inventory: %w", err)
	}

	// Print success message to stderr (so it doesn't interfere with stdout output)
	if outputPath != "-" && outputPath != "" {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", outputPath)
	}

	return nil
}

// ReportSummary prints per-file token totals of a saved inventory
func ReportSummary(inventoryFile string, out io.Writer) error {
	store := inventory.NewStore(inventoryFile)
	if !store.Exists() {
		return fmt.Errorf("inventory file not found: %s", inventoryFile)
	}

	inv, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	fmt.Fprintf(out, "Total tokens: %d\n\n", inv.TotalTokens())
	fmt.Fprintln(out, "Files:")
	for _, file := range inv.GetFiles() {
		entry := inv.Files[file]
		fmt.Fprintf(out, "  %s: %d tokens (%d lines)\n", file, entry.Total(), entry.Lines)
	}

	return nil
}
