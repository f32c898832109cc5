package runner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cybertec-postgresql/vb6scan/internal/discovery"
	"github.com/cybertec-postgresql/vb6scan/internal/logger"
)

// WorkerPool manages parallel file scanning
type WorkerPool struct {
	executor   *Executor
	maxWorkers int
}

// NewWorkerPool creates a new worker pool for parallel scanning
func NewWorkerPool(executor *Executor, maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		executor:   executor,
		maxWorkers: maxWorkers,
	}
}

// ScanFiles scans files with at most maxWorkers in flight. Runs are returned
// in input order. Per-file failures and cancellation are recorded in each
// run; the error return is always nil.
func (wp *WorkerPool) ScanFiles(ctx context.Context, files []discovery.DiscoveredFile) ([]*ScanRun, error) {
	if len(files) == 0 {
		return nil, nil
	}

	if wp.maxWorkers == 1 || len(files) == 1 {
		return wp.executor.ExecuteBatch(ctx, files), nil
	}

	logger.Debug("Starting parallel scan with %d workers for %d files", wp.maxWorkers, len(files))

	runs := make([]*ScanRun, len(files))
	var g errgroup.Group
	g.SetLimit(wp.maxWorkers)

	for i := range files {
		i := i
		g.Go(func() error {
			runs[i] = wp.executor.Execute(ctx, &files[i])
			logger.Debug("[%s] %s", runs[i].Status, files[i].RelativePath)
			return nil
		})
	}

	// Workers never return an error.
	_ = g.Wait()
	return runs, nil
}
