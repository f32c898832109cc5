package types

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybertec-postgresql/vb6scan/internal/errors"
	"github.com/cybertec-postgresql/vb6scan/internal/source"
)

func validConfig() Config {
	return Config{
		Extensions:  []string{".bas"},
		Encoding:    "auto",
		Parallelism: 1,
		OutputFile:  "out.json",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero parallelism", func(c *Config) { c.Parallelism = 0 }, "parallelism"},
		{"negative parallelism", func(c *Config) { c.Parallelism = -2 }, "parallelism"},
		{"empty output", func(c *Config) { c.OutputFile = "" }, "output_file"},
		{"no extensions", func(c *Config) { c.Extensions = nil }, "extensions"},
		{"bad encoding", func(c *Config) { c.Encoding = "ebcdic" }, "encoding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var cfgErr *errors.ConfigError
			require.True(t, stderrors.As(err, &cfgErr), "got %T", err)
			require.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestConfig_SourceEncoding(t *testing.T) {
	cfg := validConfig()
	require.Equal(t, source.Unknown, cfg.SourceEncoding())
	cfg.Encoding = "cp1252"
	require.Equal(t, source.Windows1252, cfg.SourceEncoding())
	cfg.Encoding = "UTF-8"
	require.Equal(t, source.UTF8, cfg.SourceEncoding())
}
