package runner

import (
	"context"
	"time"

	"github.com/cybertec-postgresql/vb6scan/internal/discovery"
	"github.com/cybertec-postgresql/vb6scan/internal/errors"
	"github.com/cybertec-postgresql/vb6scan/internal/logger"
	"github.com/cybertec-postgresql/vb6scan/internal/parser"
	"github.com/cybertec-postgresql/vb6scan/internal/source"
)

// Executor scans individual source files
type Executor struct {
	encoding source.Encoding
}

// NewExecutor creates a new executor decoding files with enc (source.Unknown
// detects per file)
func NewExecutor(enc source.Encoding) *Executor {
	return &Executor{
		encoding: enc,
	}
}

// Execute reads, decodes and tokenizes one file. Failures are recorded in
// the returned run rather than returned.
func (e *Executor) Execute(ctx context.Context, file *discovery.DiscoveredFile) *ScanRun {
	run := &ScanRun{
		File:      file,
		StartTime: time.Now(),
		Status:    ScanPending,
	}

	if err := ctx.Err(); err != nil {
		run.Status = ScanCancelled
		run.Error = err
		run.EndTime = run.StartTime
		return run
	}

	run.Status = ScanRunning
	parsed, err := parser.Parse(file, e.encoding)
	run.EndTime = time.Now()
	if err != nil {
		run.Status = ScanFailed
		run.Error = errors.NewScanError(file.RelativePath, err)
		logger.Debug("Scan failed: %s: %v", file.RelativePath, err)
		return run
	}

	run.Parsed = parsed
	run.Status = ScanDone
	logger.Debug("Scanned %s: %d lines, %d diagnostics", file.RelativePath, len(parsed.Lines), len(parsed.Diagnostics))
	return run
}

// ExecuteBatch scans files sequentially; once ctx is cancelled the
// remaining files are recorded as cancelled
func (e *Executor) ExecuteBatch(ctx context.Context, files []discovery.DiscoveredFile) []*ScanRun {
	runs := make([]*ScanRun, 0, len(files))
	for i := range files {
		runs = append(runs, e.Execute(ctx, &files[i]))
	}
	return runs
}

// SummarizeRuns creates a summary of scan results
func SummarizeRuns(runs []*ScanRun) *Summary {
	summary := &Summary{
		TotalFiles: len(runs),
	}

	for _, run := range runs {
		summary.TotalDuration += run.Duration()

		switch run.Status {
		case ScanDone:
			summary.ScannedFiles++
			if run.Parsed != nil {
				summary.TotalLines += len(run.Parsed.Lines)
				summary.Diagnostics += len(run.Parsed.Diagnostics)
			}
		case ScanFailed:
			summary.FailedFiles++
		case ScanCancelled:
			summary.CancelledFiles++
		}
	}

	return summary
}
