package errors

import (
	"fmt"
)

// ParseError represents a source file that could not be tokenized
type ParseError struct {
	File    string
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
}

// NewParseError creates a new ParseError
func NewParseError(file string, line, column int, message string) *ParseError {
	return &ParseError{
		File:    file,
		Line:    line,
		Column:  column,
		Message: message,
	}
}

// DecodeError represents a source file that could not be read or decoded
type DecodeError struct {
	File     string
	Encoding string
	Message  string
	Err      error // underlying read error, if any
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to decode %s as %s: %s: %v", e.File, e.Encoding, e.Message, e.Err)
	}
	return fmt.Sprintf("failed to decode %s as %s: %s", e.File, e.Encoding, e.Message)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// NewDecodeError creates a new DecodeError
func NewDecodeError(file, encoding, message string) *DecodeError {
	return &DecodeError{
		File:     file,
		Encoding: encoding,
		Message:  message,
	}
}

// NewReadError creates a DecodeError for a file that could not be read
func NewReadError(file, encoding string, err error) *DecodeError {
	return &DecodeError{
		File:     file,
		Encoding: encoding,
		Message:  "failed to read file",
		Err:      err,
	}
}

// ScanError represents a failure while scanning one file of a batch
type ScanError struct {
	File string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.File, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// NewScanError creates a new ScanError
func NewScanError(file string, err error) *ScanError {
	return &ScanError{
		File: file,
		Err:  err,
	}
}

// ConfigError represents an invalid configuration value
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Message)
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}
