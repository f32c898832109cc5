package inventory

import (
	"sort"
	"time"

	"github.com/cybertec-postgresql/vb6scan/internal/discovery"
	"github.com/cybertec-postgresql/vb6scan/internal/scanner"
	"github.com/cybertec-postgresql/vb6scan/internal/source"
)

// Inventory holds the external tokens found across all scanned files
type Inventory struct {
	Version   string                 `json:"version"`   // Schema version (e.g., "1.0")
	Timestamp time.Time              `json:"timestamp"` // When the scan ran
	Files     map[string]*FileTokens `json:"files"`     // Key: relative file path
}

// FileTokens is the inventory of a single file
type FileTokens struct {
	Type        discovery.FileType `json:"type"`
	Encoding    source.Encoding    `json:"encoding"`
	Lines       int                `json:"lines"`                 // Logical lines
	Counts      map[string]int     `json:"counts"`                // Key: token type name
	Statements  map[string]int     `json:"statements,omitempty"`  // Key: statement type name
	Tokens      []TokenRecord      `json:"tokens"`                // External tokens in source order
	Diagnostics []string           `json:"diagnostics,omitempty"` // Lexer problems
}

// TokenRecord is one external token occurrence
type TokenRecord struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Line int    `json:"line"` // 1-indexed
	Pos  int    `json:"pos"`  // Byte offset in the decoded text
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{
		Version:   "1.0",
		Timestamp: time.Now(),
		Files:     make(map[string]*FileTokens),
	}
}

// NewFileTokens creates an empty file entry
func NewFileTokens(fileType discovery.FileType, enc source.Encoding) *FileTokens {
	return &FileTokens{
		Type:       fileType,
		Encoding:   enc,
		Counts:     make(map[string]int),
		Statements: make(map[string]int),
	}
}

// AddToken records one external token and bumps its count
func (f *FileTokens) AddToken(rec TokenRecord) {
	if f.Counts == nil {
		f.Counts = make(map[string]int)
	}
	f.Tokens = append(f.Tokens, rec)
	f.Counts[rec.Type]++
}

// Total returns the number of external tokens in the file
func (f *FileTokens) Total() int {
	return len(f.Tokens)
}

// GetFiles returns all file keys in sorted order
func (inv *Inventory) GetFiles() []string {
	files := make([]string, 0, len(inv.Files))
	for file := range inv.Files {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// TotalCounts sums the per-type counts across all files
func (inv *Inventory) TotalCounts() map[string]int {
	totals := make(map[string]int)
	for _, f := range inv.Files {
		for typ, n := range f.Counts {
			totals[typ] += n
		}
	}
	return totals
}

// TotalTokens returns the number of external tokens across all files
func (inv *Inventory) TotalTokens() int {
	total := 0
	for _, f := range inv.Files {
		total += f.Total()
	}
	return total
}

// Categories returns the external token type names in declaration order.
// Count maps are keyed by these names.
func Categories() []string {
	types := scanner.TokenTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}
