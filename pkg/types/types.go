package types

import (
	"fmt"

	"github.com/cybertec-postgresql/vb6scan/internal/errors"
	"github.com/cybertec-postgresql/vb6scan/internal/source"
)

// Config holds runtime configuration combining the config file, flags, and defaults
type Config struct {
	// Discovery
	Extensions []string `yaml:"extensions"` // Source file extensions (".bas", "cls", ...)
	Encoding   string   `yaml:"encoding"`   // auto, utf-8 or windows-1252

	// Execution
	Parallelism int `yaml:"parallelism"` // Max concurrent file scans (1 = sequential)

	// Output
	OutputFile string `yaml:"output_file"` // Inventory output path
	Verbose    bool   `yaml:"verbose"`     // Enable debug logging
}

// Validate checks the configuration for values the scan cannot run with
func (c *Config) Validate() error {
	if c.Parallelism < 1 {
		return errors.NewConfigError("parallelism", fmt.Sprintf("must be at least 1, got %d", c.Parallelism))
	}
	if c.OutputFile == "" {
		return errors.NewConfigError("output_file", "must not be empty")
	}
	if len(c.Extensions) == 0 {
		return errors.NewConfigError("extensions", "at least one extension is required")
	}
	if _, err := source.ParseEncoding(c.Encoding); err != nil {
		return errors.NewConfigError("encoding", err.Error())
	}
	return nil
}

// SourceEncoding returns the parsed Encoding; Validate must have passed
func (c *Config) SourceEncoding() source.Encoding {
	enc, _ := source.ParseEncoding(c.Encoding)
	return enc
}
