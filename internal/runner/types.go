package runner

import (
	"time"

	"github.com/cybertec-postgresql/vb6scan/internal/discovery"
	"github.com/cybertec-postgresql/vb6scan/internal/parser"
)

// ScanRun represents the scan of a single source file
type ScanRun struct {
	File      *discovery.DiscoveredFile
	Parsed    *parser.ParsedSource // Nil unless Status is ScanDone
	StartTime time.Time
	EndTime   time.Time
	Status    ScanStatus
	Error     error // Non-nil if the scan failed
}

// ScanStatus represents the current state of a file scan
type ScanStatus int

const (
	ScanPending ScanStatus = iota
	ScanRunning
	ScanDone
	ScanFailed
	ScanCancelled
)

// String returns a string representation of ScanStatus
func (s ScanStatus) String() string {
	switch s {
	case ScanPending:
		return "pending"
	case ScanRunning:
		return "running"
	case ScanDone:
		return "done"
	case ScanFailed:
		return "failed"
	case ScanCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Duration returns the scan duration
func (r *ScanRun) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}

// Summary summarizes all file scans
type Summary struct {
	TotalFiles     int
	ScannedFiles   int
	FailedFiles    int
	CancelledFiles int
	TotalLines     int // Logical lines across scanned files
	Diagnostics    int // Lexer diagnostics across scanned files
	TotalDuration  time.Duration
}

// AllScanned returns true if every file was scanned
func (s *Summary) AllScanned() bool {
	return s.FailedFiles == 0 && s.CancelledFiles == 0
}

// ExitCode returns the appropriate exit code based on scan results
func (s *Summary) ExitCode() int {
	if s.AllScanned() {
		return 0
	}
	return 1
}
