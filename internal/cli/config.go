package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cybertec-postgresql/vb6scan/internal/discovery"
	"github.com/cybertec-postgresql/vb6scan/internal/errors"
	"github.com/cybertec-postgresql/vb6scan/pkg/types"
)

// Config is an alias for the shared Config type
type Config = types.Config

// ConfigError is an alias for the shared ConfigError type
type ConfigError = errors.ConfigError

// DefaultInventoryFile is where scan writes and report reads by default
const DefaultInventoryFile = ".vb6scan/inventory.json"

// DefaultConfig provides default configuration values
func DefaultConfig() *Config {
	return &Config{
		Extensions:  discovery.DefaultExtensions(),
		Encoding:    "auto",
		Parallelism: 1,
		OutputFile:  DefaultInventoryFile,
		Verbose:     false,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults. Keys missing from the file keep their default value;
// unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.NewConfigError("file", fmt.Sprintf("%s: %v", path, err))
	}

	return cfg, nil
}

// ApplyFlagsToConfig applies command-line flag values to configuration.
// Zero values leave the config untouched.
func ApplyFlagsToConfig(c *Config, extensions []string, encoding string,
	parallel int, outputFile string, verbose bool) {

	if len(extensions) > 0 {
		c.Extensions = extensions
	}
	if encoding != "" {
		c.Encoding = encoding
	}
	if parallel != 0 {
		c.Parallelism = parallel
	}
	if outputFile != "" {
		c.OutputFile = outputFile
	}
	if verbose {
		c.Verbose = true
	}
}
