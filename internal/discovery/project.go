package discovery

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/cybertec-postgresql/vb6scan/internal/errors"
	"github.com/cybertec-postgresql/vb6scan/internal/source"
)

// ProjectExtension is the extension of VB6 project files
const ProjectExtension = ".vbp"

// memberKeys maps .vbp member keys to the component kind they declare
var memberKeys = map[string]FileType{
	"module":       FileTypeModule,
	"class":        FileTypeClass,
	"form":         FileTypeForm,
	"usercontrol":  FileTypeUserControl,
	"propertypage": FileTypePropertyPage,
	"userdocument": FileTypeUserDocument,
	"designer":     FileTypeDesigner,
}

// Project is the part of a .vbp project file needed to find its sources
type Project struct {
	Path       string // Absolute path to the .vbp file
	Name       string
	Type       string // Exe, OleDll, OleExe or Control
	Members    []ProjectMember
	References []Reference
}

// ProjectMember is one source component listed in a project
type ProjectMember struct {
	Name         string   // Logical name, e.g. "Module1"
	Type         FileType // Kind declared by the member key
	RelativePath string   // Path relative to the project directory
	Path         string   // Absolute path
}

// Reference is a Reference= entry: a compiled type library (GUID set) or a
// sub-project (SubProject set)
type Reference struct {
	GUID        uuid.UUID
	Version     string
	Description string
	SubProject  string
}

// IsProjectFile reports whether filename has the .vbp extension
func IsProjectFile(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ProjectExtension)
}

// ParseProject reads and parses the .vbp file at path. Project files are
// decoded like sources (UTF-8, else Windows-1252).
func ParseProject(path string) (*Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	content, err := source.ReadFile(absPath, source.Unknown)
	if err != nil {
		return nil, err
	}
	return ParseProjectContent(absPath, content.Text)
}

/*
 * ParseProjectContent parses project text as if read from path. The format
 * is INI-like key=value lines; member entries are "Name; File.bas" or just
 * "File.frm", with paths relative to the project directory and written with
 * backslashes. Keys after the first [Section] header belong to add-ins and
 * are ignored.
 */
func ParseProjectContent(path, text string) (*Project, error) {
	dir := filepath.Dir(path)
	p := &Project{
		Path: path,
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Type: "Exe",
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			break
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		if ft, ok := memberKeys[key]; ok {
			m, err := parseMember(value, dir, ft)
			if err != nil {
				return nil, errors.NewParseError(path, lineNo, 1, err.Error())
			}
			p.Members = append(p.Members, m)
			continue
		}

		switch key {
		case "type":
			p.Type = value
		case "name":
			p.Name = unquote(value)
		case "reference":
			if ref, ok := parseReference(value, dir); ok {
				p.References = append(p.References, ref)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read project %s: %w", path, err)
	}
	return p, nil
}

func parseMember(value, dir string, ft FileType) (ProjectMember, error) {
	name, rel, hasName := strings.Cut(value, ";")
	if !hasName {
		rel = name
	}
	rel = filepath.Clean(filepath.FromSlash(strings.ReplaceAll(strings.TrimSpace(rel), `\`, "/")))
	if rel == "." {
		return ProjectMember{}, fmt.Errorf("empty member path in %q", value)
	}
	if filepath.Ext(rel) == "" {
		rel += memberExtension(ft)
	}
	name = strings.TrimSpace(name)
	if !hasName {
		name = strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	}

	abs := rel
	if !filepath.IsAbs(rel) {
		abs = filepath.Join(dir, rel)
	}
	return ProjectMember{Name: name, Type: ft, RelativePath: rel, Path: abs}, nil
}

func memberExtension(ft FileType) string {
	for ext, t := range extensionTypes {
		if t == ft {
			return ext
		}
	}
	return ""
}

// parseReference handles *\G{guid}#ver#lcid#path#desc and *\Apath entries.
// Entries with a malformed GUID are skipped.
func parseReference(value, dir string) (Reference, bool) {
	if sub, ok := strings.CutPrefix(value, `*\A`); ok {
		sub = filepath.FromSlash(strings.ReplaceAll(strings.TrimSpace(sub), `\`, "/"))
		if !filepath.IsAbs(sub) {
			sub = filepath.Join(dir, sub)
		}
		return Reference{SubProject: sub}, true
	}

	parts := strings.Split(strings.TrimPrefix(value, `*\G`), "#")
	if len(parts) < 5 {
		return Reference{}, false
	}
	id, err := uuid.Parse(strings.Trim(parts[0], "{}"))
	if err != nil {
		return Reference{}, false
	}
	return Reference{GUID: id, Version: parts[1], Description: parts[4]}, true
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// DiscoverProject returns the source members of the .vbp project at
// vbpPath in project order. Members missing on disk are still returned
// (with a zero ModTime) so that scanning reports them as failures.
func DiscoverProject(vbpPath string) ([]DiscoveredFile, error) {
	p, err := ParseProject(vbpPath)
	if err != nil {
		return nil, err
	}
	return p.Files(), nil
}

// Files converts the project's members to DiscoveredFiles, dropping
// duplicate entries for the same file
func (p *Project) Files() []DiscoveredFile {
	seen := make(map[string]bool)
	files := make([]DiscoveredFile, 0, len(p.Members))
	for _, m := range p.Members {
		if seen[m.Path] {
			continue
		}
		seen[m.Path] = true

		f := DiscoveredFile{Path: m.Path, RelativePath: m.RelativePath, Type: m.Type}
		if info, err := os.Stat(m.Path); err == nil {
			f.ModTime = info.ModTime()
		}
		files = append(files, f)
	}
	return files
}
