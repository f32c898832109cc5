package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cybertec-postgresql/vb6scan/internal/inventory"
)

// JSONReporter formats the inventory as JSON
type JSONReporter struct{}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// Format formats the inventory as JSON and writes to the writer
func (r *JSONReporter) Format(inv *inventory.Inventory, writer io.Writer) error {
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal inventory to JSON: %w", err)
	}

	if _, err = writer.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	_, err = writer.Write([]byte("\n"))
	return err
}

// FormatString returns the inventory as a JSON string
func (r *JSONReporter) FormatString(inv *inventory.Inventory) (string, error) {
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal inventory to JSON: %w", err)
	}
	return string(data), nil
}

// FormatSummary formats per-file and total counts without the token lists
func (r *JSONReporter) FormatSummary(inv *inventory.Inventory) (string, error) {
	summary := make(map[string]interface{})
	summary["version"] = inv.Version
	summary["timestamp"] = inv.Timestamp
	summary["total_tokens"] = inv.TotalTokens()
	summary["totals"] = inv.TotalCounts()

	files := make(map[string]interface{})
	for path, entry := range inv.Files {
		files[path] = map[string]interface{}{
			"type":   entry.Type,
			"lines":  entry.Lines,
			"tokens": entry.Total(),
			"counts": entry.Counts,
		}
	}
	summary["files"] = files

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary to JSON: %w", err)
	}

	return string(data), nil
}

// Name returns the name of this reporter
func (r *JSONReporter) Name() string {
	return "json"
}
