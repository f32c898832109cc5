package discovery

import (
	"path/filepath"
	"strings"
)

// extensionTypes maps lowercase extensions (with the dot) to file types
var extensionTypes = map[string]FileType{
	".bas": FileTypeModule,
	".cls": FileTypeClass,
	".frm": FileTypeForm,
	".ctl": FileTypeUserControl,
	".dsr": FileTypeDesigner,
	".pag": FileTypePropertyPage,
	".dob": FileTypeUserDocument,
}

// DefaultExtensions returns the extensions scanned when none are configured
func DefaultExtensions() []string {
	return []string{".bas", ".cls", ".frm", ".ctl", ".dsr", ".pag", ".dob"}
}

// ClassifyFile determines the component kind from the file name's extension
func ClassifyFile(filename string) FileType {
	// Normalize to lowercase for case-insensitive comparison
	ext := strings.ToLower(filepath.Ext(filename))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	return FileTypeUnknown
}

// ClassifyPath determines file type from a full path
func ClassifyPath(path string) FileType {
	return ClassifyFile(filepath.Base(path))
}

// IsSourceFile returns true if the file has a VB6 source extension
func IsSourceFile(filename string) bool {
	return ClassifyFile(filename) != FileTypeUnknown
}

// NormalizeExtensions lowercases extensions and adds a leading dot where missing
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
