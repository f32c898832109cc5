package inventory

import (
	"path/filepath"

	"github.com/cybertec-postgresql/vb6scan/internal/parser"
)

// Collector aggregates external tokens from parsed sources
type Collector struct {
	inventory *Inventory
}

// NewCollector creates a new token collector
func NewCollector() *Collector {
	return &Collector{
		inventory: NewInventory(),
	}
}

// CollectFromSource records the external tokens of one parsed file.
// Collecting the same file twice replaces the earlier entry.
func (c *Collector) CollectFromSource(ps *parser.ParsedSource) {
	if ps == nil || ps.File == nil {
		return
	}

	entry := NewFileTokens(ps.File.Type, ps.Encoding)
	entry.Lines = len(ps.Lines)

	for _, line := range ps.Lines {
		entry.Statements[line.Type.String()]++
		for _, tok := range line.Tokens {
			if !tok.IsExternal() {
				continue
			}
			entry.AddToken(TokenRecord{
				Type: tok.Type.String(),
				Text: tok.Text,
				Line: tok.Line,
				Pos:  tok.Pos,
			})
		}
	}
	for _, d := range ps.Diagnostics {
		entry.Diagnostics = append(entry.Diagnostics, d.Error())
	}

	c.inventory.Files[fileKey(ps)] = entry
}

// CollectFromSources records every parsed file
func (c *Collector) CollectFromSources(sources []*parser.ParsedSource) {
	for _, ps := range sources {
		c.CollectFromSource(ps)
	}
}

// Inventory returns the aggregated inventory
func (c *Collector) Inventory() *Inventory {
	return c.inventory
}

// Reset clears all collected data
func (c *Collector) Reset() {
	c.inventory = NewInventory()
}

// Merge copies the files of another collector into this one; entries of
// other win on conflict.
func (c *Collector) Merge(other *Collector) {
	for file, entry := range other.inventory.Files {
		c.inventory.Files[file] = entry
	}
}

// GetFileTokens returns the entry for a specific file
func (c *Collector) GetFileTokens(file string) *FileTokens {
	return c.inventory.Files[file]
}

// GetFileList returns the collected files in sorted order
func (c *Collector) GetFileList() []string {
	return c.inventory.GetFiles()
}

// TotalCounts returns per-type totals across all files
func (c *Collector) TotalCounts() map[string]int {
	return c.inventory.TotalCounts()
}

func fileKey(ps *parser.ParsedSource) string {
	if ps.File.RelativePath != "" {
		return filepath.ToSlash(ps.File.RelativePath)
	}
	return filepath.ToSlash(ps.File.Path)
}
