package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// sourceExtensions lists the component source file extensions picked up from directories
var sourceExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs"}

// IsSourceFile checks if a file is a script or component source file
func IsSourceFile(filename string) bool {
	if strings.HasSuffix(filename, ".d.ts") {
		return false
	}
	ext := filepath.Ext(filename)
	for _, want := range sourceExtensions {
		if ext == want {
			return true
		}
	}
	return false
}

// FindSourceFiles recursively finds all source files in a directory
func FindSourceFiles(root string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip dependency and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if name == "node_modules" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && IsSourceFile(filepath.Base(path)) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// ReadLines reads a file and splits it on "\n". An empty file yields a
// single empty line and a trailing newline yields a trailing empty line, so
// WriteLines restores the exact bytes.
func ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(content), "\n"), nil
}

// WriteLines joins lines with "\n" and overwrites the file
func WriteLines(path string, lines []string) error {
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644)
}
