// Package source reads Visual Basic 6 source files into UTF-8 text.
//
// Files written by the VB6 IDE are Windows-1252; files touched by modern
// editors are usually UTF-8. Decode tries UTF-8 first and falls back to
// Windows-1252 when the bytes are not valid UTF-8.
package source

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/cybertec-postgresql/vb6scan/internal/errors"
)

// Encoding is the detected or forced encoding of a source file.
type Encoding int

const (
	Unknown     Encoding = iota // not yet detected
	UTF8                        // UTF-8, with or without BOM
	Windows1252                 // CP1252, the VB6 IDE default
)

// String returns the display name of the encoding.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case Windows1252:
		return "Windows-1252"
	default:
		return "unknown"
	}
}

// MarshalText lets Encoding serialize by name in JSON and YAML.
func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText accepts every name ParseEncoding does.
func (e *Encoding) UnmarshalText(text []byte) error {
	enc, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = enc
	return nil
}

// ParseEncoding maps a configuration value to an Encoding. "auto" and the
// empty string map to Unknown, meaning detect per file.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto", "unknown":
		return Unknown, nil
	case "utf-8", "utf8":
		return UTF8, nil
	case "windows-1252", "cp1252", "latin1":
		return Windows1252, nil
	default:
		return Unknown, fmt.Errorf("unsupported encoding %q (supported: auto, utf-8, windows-1252)", name)
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Content is decoded source text together with the encoding it was read in.
type Content struct {
	Text      string
	Encoding  Encoding
	HadErrors bool // invalid sequences were replaced with U+FFFD
}

// Decode detects the encoding of data and returns it as UTF-8 text.
func Decode(data []byte) *Content {
	if bytes.HasPrefix(data, utf8BOM) || utf8.Valid(data) {
		return DecodeAs(data, UTF8)
	}
	return DecodeAs(data, Windows1252)
}

// DecodeAs decodes data with a fixed encoding. Unknown detects.
func DecodeAs(data []byte, enc Encoding) *Content {
	switch enc {
	case UTF8:
		data = bytes.TrimPrefix(data, utf8BOM)
		if utf8.Valid(data) {
			return &Content{Text: string(data), Encoding: UTF8}
		}
		return &Content{Text: strings.ToValidUTF8(string(data), "�"), Encoding: UTF8, HadErrors: true}
	case Windows1252:
		// Every byte has a mapping in the decoder (undefined ones become
		// U+FFFD), so the error return is never set.
		text, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return &Content{Text: strings.ToValidUTF8(string(data), "�"), Encoding: Windows1252, HadErrors: true}
		}
		return &Content{Text: string(text), Encoding: Windows1252, HadErrors: bytes.ContainsRune(text, utf8.RuneError)}
	default:
		return Decode(data)
	}
}

// ReadFile reads and decodes the file at path. Unknown detects the
// encoding.
func ReadFile(path string, enc Encoding) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewReadError(path, enc.String(), err)
	}
	return DecodeAs(data, enc), nil
}
