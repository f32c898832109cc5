package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cybertec-postgresql/vb6scan/internal/discovery"
	"github.com/cybertec-postgresql/vb6scan/internal/inventory"
	"github.com/cybertec-postgresql/vb6scan/internal/parser"
	"github.com/cybertec-postgresql/vb6scan/internal/report"
	"github.com/cybertec-postgresql/vb6scan/internal/runner"
	"github.com/cybertec-postgresql/vb6scan/internal/source"
)

// Renders the sample project's token inventory to
// testdata/html_demo/report.html. Run from the repository root.
func main() {
	files, err := discovery.Discover("testdata/project")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error discovering sources: %v\n", err)
		os.Exit(1)
	}

	pool := runner.NewWorkerPool(runner.NewExecutor(source.Unknown), 4)
	runs, err := pool.ScanFiles(context.Background(), files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning sources: %v\n", err)
		os.Exit(1)
	}

	var parsed []*parser.ParsedSource
	for _, run := range runs {
		if run.Error != nil {
			fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", run.File.RelativePath, run.Error)
			os.Exit(1)
		}
		parsed = append(parsed, run.Parsed)
	}

	collector := inventory.NewCollector()
	collector.CollectFromSources(parsed)

	reporter := report.NewHTMLReporter()
	file, err := os.Create("testdata/html_demo/report.html")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating report file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := reporter.Format(collector.Inventory(), file); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("HTML report generated: testdata/html_demo/report.html")
	fmt.Printf("  Files: %d, external tokens: %d\n", len(files), collector.Inventory().TotalTokens())
}
