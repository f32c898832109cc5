package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	require.Equal(t, "Module1.bas:3:7: unterminated string", NewParseError("Module1.bas", 3, 7, "unterminated string").Error())
	require.Equal(t, "failed to decode a.frm as UTF-8: bad bytes", NewDecodeError("a.frm", "UTF-8", "bad bytes").Error())
	require.Equal(t, "invalid config parallelism: must be at least 1", NewConfigError("parallelism", "must be at least 1").Error())
}

func TestScanErrorUnwrap(t *testing.T) {
	err := NewScanError("Class1.cls", fs.ErrNotExist)
	require.True(t, stderrors.Is(err, fs.ErrNotExist))
	require.Contains(t, err.Error(), "Class1.cls")

	var scanErr *ScanError
	require.True(t, stderrors.As(error(err), &scanErr))
}

func TestReadErrorUnwrap(t *testing.T) {
	err := NewReadError("Form1.frm", "unknown", fs.ErrNotExist)
	require.True(t, stderrors.Is(err, fs.ErrNotExist))
	require.Equal(t, "failed to decode Form1.frm as unknown: failed to read file: file does not exist", err.Error())
	require.Nil(t, NewDecodeError("a.frm", "UTF-8", "bad bytes").Unwrap())
}
