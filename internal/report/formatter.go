package report

import (
	"fmt"
	"io"

	"github.com/cybertec-postgresql/vb6scan/internal/inventory"
)

// Formatter is an interface for inventory report formatters
type Formatter interface {
	// Format formats the inventory and writes to the writer
	Format(inv *inventory.Inventory, writer io.Writer) error

	// FormatString returns the inventory as a string
	FormatString(inv *inventory.Inventory) (string, error)

	// Name returns the name of this formatter
	Name() string
}

// FormatType represents supported report formats
type FormatType string

const (
	FormatJSON FormatType = "json"
	FormatText FormatType = "text"
	FormatHTML FormatType = "html"
)

// GetFormatter returns a formatter for the specified format type
func GetFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONReporter(), nil
	case FormatText:
		return NewTextReporter(), nil
	case FormatHTML:
		return NewHTMLReporter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, text, html)", format)
	}
}

// FormatToWriter formats the inventory to a writer using the specified format
func FormatToWriter(inv *inventory.Inventory, format FormatType, writer io.Writer) error {
	formatter, err := GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(inv, writer)
}

// FormatToString formats the inventory to a string using the specified format
func FormatToString(inv *inventory.Inventory, format FormatType) (string, error) {
	formatter, err := GetFormatter(format)
	if err != nil {
		return "", err
	}
	return formatter.FormatString(inv)
}

// ValidFormat checks if a format string is valid
func ValidFormat(format string) bool {
	switch FormatType(format) {
	case FormatJSON, FormatText, FormatHTML:
		return true
	default:
		return false
	}
}

// SupportedFormats returns a list of supported format names
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatText), string(FormatHTML)}
}
