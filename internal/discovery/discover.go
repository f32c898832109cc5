package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover recursively finds all VB6 source files under rootPath
func Discover(rootPath string) ([]DiscoveredFile, error) {
	return DiscoverWithExtensions(rootPath, DefaultExtensions())
}

// DiscoverWithExtensions recursively finds files whose extension is in exts.
// If rootPath names a .vbp project file its members are returned instead;
// any other single file is returned on its own, whatever its extension.
func DiscoverWithExtensions(rootPath string, exts []string) ([]DiscoveredFile, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	// Check if path exists
	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("path not found: %s", absRoot)
		}
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		if IsProjectFile(absRoot) {
			return DiscoverProject(absRoot)
		}
		return []DiscoveredFile{{
			Path:         absRoot,
			RelativePath: filepath.Base(absRoot),
			Type:         ClassifyPath(absRoot),
			ModTime:      info.ModTime(),
		}}, nil
	}

	wanted := make(map[string]bool)
	for _, ext := range NormalizeExtensions(exts) {
		wanted[ext] = true
	}

	var files []DiscoveredFile

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip directories we can't access
			if os.IsPermission(err) {
				return nil
			}
			return err
		}

		// Skip directories
		if info.IsDir() {
			return nil
		}

		if !wanted[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}

		files = append(files, DiscoveredFile{
			Path:         path,
			RelativePath: relPath,
			Type:         ClassifyFile(filepath.Base(path)),
			ModTime:      info.ModTime(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})

	return files, nil
}

// DiscoverByType finds only files of the given type
func DiscoverByType(rootPath string, fileType FileType) ([]DiscoveredFile, error) {
	allFiles, err := Discover(rootPath)
	if err != nil {
		return nil, err
	}

	var matched []DiscoveredFile
	for _, file := range allFiles {
		if file.Type == fileType {
			matched = append(matched, file)
		}
	}

	return matched, nil
}
