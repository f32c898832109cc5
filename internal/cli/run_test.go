package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybertec-postgresql/vb6scan/internal/inventory"
	"github.com/cybertec-postgresql/vb6scan/internal/source"
)

const module1 = "Attribute VB_Name = \"Module1\"\r\n" +
	"Public Sub Main()\r\n" +
	"    Open \"log.txt\" For Append As #1\r\n" +
	"    Print #1, #1/1/2024#\r\n" +
	"    Close #1\r\n" +
	"Retry:\r\n" +
	"    DoWork 1, _\r\n" +
	"        2\r\n" +
	"End Sub\r\n"

const class1 = "VERSION 1.0 CLASS\r\n" +
	"Attribute VB_Name = \"Class1\"\r\n" +
	"Private Const CLSID = \"x\"\r\n" +
	"Private id\r\n" +
	"Private Sub Class_Initialize()\r\n" +
	"    id = {550e8400-e29b-41d4-a716-446655440000}\r\n" +
	"End Sub\r\n"

// writeProject lays out a small VB6 project and returns its root.
func writeProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "Module1.bas"), []byte(module1), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "Class1.cls"), []byte(class1), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.txt"), []byte("not vb"), 0644))
	return root
}

func TestScan_Project(t *testing.T) {
	root := writeProject(t)
	cfg := DefaultConfig()
	cfg.Parallelism = 2
	cfg.OutputFile = filepath.Join(t.TempDir(), "inv.json")

	var out bytes.Buffer
	code, err := Scan(context.Background(), cfg, root, &out)
	require.NoError(t, err)
	require.Equal(t, 0, code)

	text := out.String()
	require.Contains(t, text, "Files:    2 scanned, 0 failed, 0 cancelled, 2 total")
	require.Contains(t, text, "Tokens:   8 external")
	require.Contains(t, text, "Inventory written to "+cfg.OutputFile)

	inv, err := inventory.NewStore(cfg.OutputFile).Load()
	require.NoError(t, err)
	require.Equal(t, []string{"src/Class1.cls", "src/Module1.bas"}, inv.GetFiles())
	require.Equal(t, map[string]int{
		"FileNumber":         3,
		"DateLiteral":        1,
		"LabelIdentifier":    1,
		"CallableIdentifier": 1,
		"LineContinuation":   1,
		"GuidLiteral":        1,
	}, inv.TotalCounts())
}

func TestScan_NoFiles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extensions = []string{".bas"}
	cfg.OutputFile = filepath.Join(t.TempDir(), "inv.json")

	var out bytes.Buffer
	code, err := Scan(context.Background(), cfg, t.TempDir(), &out)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "No VB6 source files found (.bas)")
	require.False(t, inventory.NewStore(cfg.OutputFile).Exists())
}

func TestScan_MissingPath(t *testing.T) {
	cfg := DefaultConfig()
	code, err := Scan(context.Background(), cfg, filepath.Join(t.TempDir(), "nope"), &bytes.Buffer{})
	require.Error(t, err)
	require.Equal(t, 1, code)
}

func TestScan_Cancelled(t *testing.T) {
	root := writeProject(t)
	cfg := DefaultConfig()
	cfg.OutputFile = filepath.Join(t.TempDir(), "inv.json")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	code, err := Scan(ctx, cfg, root, &out)
	require.NoError(t, err)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "Files:    0 scanned, 0 failed, 2 cancelled, 2 total")
}

func TestReport_Formats(t *testing.T) {
	root := writeProject(t)
	cfg := DefaultConfig()
	cfg.OutputFile = filepath.Join(t.TempDir(), "inv.json")
	_, err := Scan(context.Background(), cfg, root, &bytes.Buffer{})
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range []string{"json", "text", "html"} {
		path := filepath.Join(dir, "report."+format)
		require.NoError(t, Report(cfg.OutputFile, format, path))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), "src/Module1.bas")
	}

	require.ErrorContains(t, Report(cfg.OutputFile, "lcov", filepath.Join(dir, "x")), "unsupported format")
	require.ErrorContains(t, Report(filepath.Join(dir, "missing.json"), "json", "-"), "inventory file not found")
}

func TestReportSummary(t *testing.T) {
	root := writeProject(t)
	cfg := DefaultConfig()
	cfg.OutputFile = filepath.Join(t.TempDir(), "inv.json")
	_, err := Scan(context.Background(), cfg, root, &bytes.Buffer{})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, ReportSummary(cfg.OutputFile, &out))
	require.Contains(t, out.String(), "Total tokens: 8")
	require.Contains(t, out.String(), "src/Module1.bas: 7 tokens (8 lines)")
	require.Contains(t, out.String(), "src/Class1.cls: 1 tokens (7 lines)")
}

func TestTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Module1.bas")
	require.NoError(t, os.WriteFile(path, []byte("Close #1\r\nx = \"open\r\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, Tokens(path, source.Unknown, false, &out))
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Equal(t, []string{
		"1:0\tKeyword\t\"Close\"",
		"1:6\tFileNumber\t\"#1\"",
		"1:8\tNewline\t\"\\r\\n\"",
		"2:10\tIdent\t\"x\"",
		"2:12\t'='\t\"=\"",
		"2:14\tString\t\"\\\"open\"",
		"2:19\tNewline\t\"\\r\\n\"",
	}, lines[:7])
	require.True(t, strings.HasPrefix(lines[7], "warning: "))
	require.Contains(t, lines[7], "unterminated string literal")

	out.Reset()
	require.NoError(t, Tokens(path, source.Unknown, true, &out))
	require.Equal(t, "1:6\tFileNumber\t\"#1\"\n", strings.SplitAfter(out.String(), "\n")[0])
	require.Equal(t, 2, strings.Count(out.String(), "\n"))
}

func TestTokens_MissingFile(t *testing.T) {
	err := Tokens(filepath.Join(t.TempDir(), "nope.bas"), source.Unknown, false, &bytes.Buffer{})
	require.Error(t, err)
}
