package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybertec-postgresql/vb6scan/internal/inventory"
)

func TestTextReporter_Format(t *testing.T) {
	reporter := NewTextReporter()
	require.Equal(t, "text", reporter.Name())

	out, err := reporter.FormatString(sampleInventory())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, "Token inventory (version 1.0, generated 2024-01-02T03:04:05Z)", lines[0])
	require.Equal(t, "", lines[1])

	require.Equal(t, []string{"FILE", "KIND", "LINES", "CONT", "DATE", "GUID", "FILENUM", "CALL", "LABEL", "TOTAL"},
		strings.Fields(lines[2]))
	// Files are sorted; '<' sorts before 'M'.
	require.Equal(t, []string{"<Class1>.cls", "class", "2", "0", "1", "1", "0", "0", "0", "2"},
		strings.Fields(lines[3]))
	require.Equal(t, []string{"Module1.bas", "module", "4", "1", "0", "0", "1", "1", "1", "4"},
		strings.Fields(lines[4]))
	require.Equal(t, []string{"TOTAL", "6", "1", "1", "1", "1", "1", "1", "6"},
		strings.Fields(lines[5]))
	require.Equal(t, "warning: Module1.bas:4:5: unterminated string literal", lines[6])
	require.Len(t, lines, 7)
}

func TestTextReporter_Empty(t *testing.T) {
	inv := inventory.NewInventory()
	out, err := NewTextReporter().FormatString(inv)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, []string{"TOTAL", "0", "0", "0", "0", "0", "0", "0", "0"}, strings.Fields(lines[3]))
}

func TestColumnNamesMatchCategories(t *testing.T) {
	require.Len(t, columnNames, len(inventory.Categories()))
}
