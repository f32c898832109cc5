package discovery

import "time"

// DiscoveredFile represents a VB6 source file discovered during filesystem traversal
type DiscoveredFile struct {
	Path         string    // Absolute path to file
	RelativePath string    // Path relative to search root
	Type         FileType  // Module kind derived from the extension
	ModTime      time.Time // Last modification time
}

// FileType indicates which kind of VB6 component a file holds
type FileType int

const (
	FileTypeUnknown      FileType = iota
	FileTypeModule                // .bas
	FileTypeClass                 // .cls
	FileTypeForm                  // .frm
	FileTypeUserControl           // .ctl
	FileTypeDesigner              // .dsr
	FileTypePropertyPage          // .pag
	FileTypeUserDocument          // .dob
)

// String returns a string representation of FileType
func (ft FileType) String() string {
	switch ft {
	case FileTypeModule:
		return "module"
	case FileTypeClass:
		return "class"
	case FileTypeForm:
		return "form"
	case FileTypeUserControl:
		return "usercontrol"
	case FileTypeDesigner:
		return "designer"
	case FileTypePropertyPage:
		return "propertypage"
	case FileTypeUserDocument:
		return "userdocument"
	default:
		return "unknown"
	}
}

// MarshalText serializes FileType by name
func (ft FileType) MarshalText() ([]byte, error) {
	return []byte(ft.String()), nil
}

// UnmarshalText parses a name produced by MarshalText
func (ft *FileType) UnmarshalText(text []byte) error {
	for t := FileTypeModule; t <= FileTypeUserDocument; t++ {
		if t.String() == string(text) {
			*ft = t
			return nil
		}
	}
	*ft = FileTypeUnknown
	return nil
}
