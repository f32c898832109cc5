package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cybertec-postgresql/vb6scan/internal/discovery"
	"github.com/cybertec-postgresql/vb6scan/internal/inventory"
	"github.com/cybertec-postgresql/vb6scan/internal/logger"
	"github.com/cybertec-postgresql/vb6scan/internal/parser"
	"github.com/cybertec-postgresql/vb6scan/internal/runner"
)

// Scan executes the scan workflow and writes a summary to out. The returned
// exit code is 1 when any file failed to scan.
func Scan(ctx context.Context, config *Config, searchPath string, out io.Writer) (int, error) {
	startTime := time.Now()
	logger.SetVerbose(config.Verbose)

	logger.Debug("vb6scan: discovering sources in %s", searchPath)

	// Step 1: Discover source files
	files, err := discovery.DiscoverWithExtensions(searchPath, config.Extensions)
	if err != nil {
		return 1, fmt.Errorf("failed to discover source files: %w", err)
	}

	if len(files) == 0 {
		fmt.Fprintf(out, "No VB6 source files found (%s)\n", strings.Join(config.Extensions, ", "))
		return 0, nil
	}

	logger.Debug("Found %d source file(s)", len(files))

	// Step 2: Scan files (parallel or sequential based on config)
	executor := runner.NewExecutor(config.SourceEncoding())
	pool := runner.NewWorkerPool(executor, config.Parallelism)
	runs, err := pool.ScanFiles(ctx, files)
	if err != nil {
		return 1, fmt.Errorf("scan failed: %w", err)
	}

	var parsed []*parser.ParsedSource
	for _, run := range runs {
		if run.Status != runner.ScanDone {
			logger.Error("%s: %v", run.File.RelativePath, run.Error)
			continue
		}
		for _, d := range run.Parsed.Diagnostics {
			logger.Debug("%v", d)
		}
		parsed = append(parsed, run.Parsed)
	}

	// Step 3: Collect external tokens
	collector := inventory.NewCollector()
	collector.CollectFromSources(parsed)

	// Step 4: Save inventory
	store := inventory.NewStore(config.OutputFile)
	if err := store.Save(collector.Inventory()); err != nil {
		return 1, fmt.Errorf("failed to save inventory: %w", err)
	}

	// Step 5: Display summary
	summary := runner.SummarizeRuns(runs)
	totals := collector.TotalCounts()

	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "Files:    %d scanned, %d failed, %d cancelled, %d total\n",
		summary.ScannedFiles, summary.FailedFiles, summary.CancelledFiles, summary.TotalFiles)
	fmt.Fprintf(out, "Lines:    %d logical\n", summary.TotalLines)
	fmt.Fprintf(out, "Tokens:   %d external\n", collector.Inventory().TotalTokens())
	for _, category := range inventory.Categories() {
		if n := totals[category]; n > 0 {
			fmt.Fprintf(out, "  %-20s %d\n", category, n)
		}
	}
	if summary.Diagnostics > 0 {
		fmt.Fprintf(out, "Warnings: %d\n", summary.Diagnostics)
	}
	fmt.Fprintf(out, "Time:     %v\n", time.Since(startTime).Round(time.Millisecond))
	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "Inventory written to %s\n", config.OutputFile)

	return summary.ExitCode(), nil
}
