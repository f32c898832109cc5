package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybertec-postgresql/vb6scan/internal/inventory"
)

func TestHTMLReporter_Format(t *testing.T) {
	reporter := NewHTMLReporter()
	require.Equal(t, "html", reporter.Name())

	var buf bytes.Buffer
	require.NoError(t, reporter.Format(sampleInventory(), &buf))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.True(t, strings.HasSuffix(out, "</html>\n"))
	require.Contains(t, out, "<title>vb6scan Token Report</title>")
	require.Contains(t, out, "Tue, 02 Jan 2024 03:04:05 UTC")
	require.Contains(t, out, "width: 100%;")

	// File names and diagnostics are escaped.
	require.Contains(t, out, "&lt;Class1&gt;.cls")
	require.NotContains(t, out, "<Class1>")

	// Line breaks inside tokens are shown as escapes.
	require.Contains(t, out, `<td class="text">_\r\n</td>`)
	require.Contains(t, out, `<td class="text">#1/1/2024#</td>`)
	require.Contains(t, out, "unterminated string literal")

	// Module1.bas comes after <Class1>.cls.
	require.Less(t, strings.Index(out, "&lt;Class1&gt;.cls"), strings.Index(out, "<h3>Module1.bas"))
}

func TestHTMLReporter_SummaryCards(t *testing.T) {
	out, err := NewHTMLReporter().FormatString(sampleInventory())
	require.NoError(t, err)

	for _, category := range inventory.Categories() {
		require.Contains(t, out, `<div class="label">`+category+`</div>`)
	}
	require.Contains(t, out, `<div class="label">Tokens</div>
                    <div class="value">6</div>`)
}

func TestHTMLReporter_Empty(t *testing.T) {
	out, err := NewHTMLReporter().FormatString(inventory.NewInventory())
	require.NoError(t, err)
	require.Contains(t, out, `<div class="label">Files</div>
                    <div class="value">0</div>`)
	require.NotContains(t, out, "file-detail\">")
}
