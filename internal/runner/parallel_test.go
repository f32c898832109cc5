package runner_test

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybertec-postgresql/vb6scan/internal/discovery"
	"github.com/cybertec-postgresql/vb6scan/internal/errors"
	"github.com/cybertec-postgresql/vb6scan/internal/runner"
	"github.com/cybertec-postgresql/vb6scan/internal/source"
)

// writeModules creates n modules; module i calls Proc<i> i+1 times.
func writeModules(t *testing.T, n int) []discovery.DiscoveredFile {
	t.Helper()
	dir := t.TempDir()
	for i := 0; i < n; i++ {
		var body string
		for j := 0; j <= i; j++ {
			body += fmt.Sprintf("Proc%d %d\r\n", i, j)
		}
		name := filepath.Join(dir, fmt.Sprintf("Module%02d.bas", i))
		require.NoError(t, os.WriteFile(name, []byte(body), 0644))
	}
	files, err := discovery.Discover(dir)
	require.NoError(t, err)
	require.Len(t, files, n)
	return files
}

func TestScanFiles_PreservesOrder(t *testing.T) {
	files := writeModules(t, 12)

	pool := runner.NewWorkerPool(runner.NewExecutor(source.Unknown), 4)
	runs, err := pool.ScanFiles(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, runs, len(files))

	for i, run := range runs {
		require.Equal(t, files[i].Path, run.File.Path)
		require.Equal(t, runner.ScanDone, run.Status, "run %d: %v", i, run.Error)
		require.NoError(t, run.Error)
		require.Len(t, run.Parsed.Lines, i+1)
		require.False(t, run.EndTime.Before(run.StartTime))
	}

	summary := runner.SummarizeRuns(runs)
	require.Equal(t, 12, summary.TotalFiles)
	require.Equal(t, 12, summary.ScannedFiles)
	require.Equal(t, 78, summary.TotalLines)
	require.True(t, summary.AllScanned())
	require.Equal(t, 0, summary.ExitCode())
}

func TestScanFiles_SequentialMatchesParallel(t *testing.T) {
	files := writeModules(t, 6)
	ctx := context.Background()

	seq, err := runner.NewWorkerPool(runner.NewExecutor(source.Unknown), 1).ScanFiles(ctx, files)
	require.NoError(t, err)
	par, err := runner.NewWorkerPool(runner.NewExecutor(source.Unknown), 3).ScanFiles(ctx, files)
	require.NoError(t, err)

	require.Len(t, par, len(seq))
	for i := range seq {
		require.Equal(t, seq[i].Parsed.Tokens(), par[i].Parsed.Tokens())
	}
}

func TestScanFiles_Failure(t *testing.T) {
	files := writeModules(t, 3)
	files = append(files, discovery.DiscoveredFile{
		Path:         filepath.Join(t.TempDir(), "Gone.bas"),
		RelativePath: "Gone.bas",
		Type:         discovery.FileTypeModule,
	})

	runs, err := runner.NewWorkerPool(runner.NewExecutor(source.Unknown), 2).ScanFiles(context.Background(), files)
	require.NoError(t, err)

	failed := runs[3]
	require.Equal(t, runner.ScanFailed, failed.Status)
	require.Nil(t, failed.Parsed)
	var scanErr *errors.ScanError
	require.ErrorAs(t, failed.Error, &scanErr)
	require.Equal(t, "Gone.bas", scanErr.File)
	require.ErrorIs(t, failed.Error, fs.ErrNotExist)

	summary := runner.SummarizeRuns(runs)
	require.Equal(t, 3, summary.ScannedFiles)
	require.Equal(t, 1, summary.FailedFiles)
	require.Equal(t, 1, summary.ExitCode())
}

func TestScanFiles_Cancelled(t *testing.T) {
	files := writeModules(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 3} {
		runs, err := runner.NewWorkerPool(runner.NewExecutor(source.Unknown), workers).ScanFiles(ctx, files)
		require.NoError(t, err)
		require.Len(t, runs, len(files))
		for _, run := range runs {
			require.Equal(t, runner.ScanCancelled, run.Status)
			require.ErrorIs(t, run.Error, context.Canceled)
		}

		summary := runner.SummarizeRuns(runs)
		require.Equal(t, 5, summary.CancelledFiles)
		require.Equal(t, 1, summary.ExitCode())
	}
}

func TestScanFiles_Empty(t *testing.T) {
	runs, err := runner.NewWorkerPool(runner.NewExecutor(source.Unknown), 4).ScanFiles(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, runs)
}

func TestExecutor_FixedEncoding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Form1.frm")
	require.NoError(t, os.WriteFile(path, []byte("s = \"\xe9\"\r\n"), 0644))

	file := &discovery.DiscoveredFile{Path: path, RelativePath: "Form1.frm", Type: discovery.FileTypeForm}
	run := runner.NewExecutor(source.Windows1252).Execute(context.Background(), file)
	require.Equal(t, runner.ScanDone, run.Status)
	require.Equal(t, source.Windows1252, run.Parsed.Encoding)
	require.Equal(t, `"é"`, run.Parsed.Lines[0].Tokens[2].Text)
}

func TestScanStatus_String(t *testing.T) {
	require.Equal(t, "done", runner.ScanDone.String())
	require.Equal(t, "cancelled", runner.ScanCancelled.String())
	require.Equal(t, "unknown", runner.ScanStatus(42).String())
}
