package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsSourceFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected bool
	}{
		{name: "tsx component", filename: "Hero.tsx", expected: true},
		{name: "ts module", filename: "components/hero/index.ts", expected: true},
		{name: "jsx component", filename: "Hero.jsx", expected: true},
		{name: "js module", filename: "config.js", expected: true},
		{name: "esm script", filename: "build.mjs", expected: true},
		{name: "commonjs script", filename: "build.cjs", expected: true},
		{name: "declaration file", filename: "types.d.ts", expected: false},
		{name: "stylesheet", filename: "Hero.module.css", expected: false},
		{name: "markdown", filename: "README.md", expected: false},
		{name: "extension in middle", filename: "file.tsx.bak", expected: false},
		{name: "empty string", filename: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result := IsSourceFile(tt.filename)
			req.Equal(tt.expected, result, "IsSourceFile(%q) = %v, want %v", tt.filename, result, tt.expected)
		})
	}
}

func TestIsDirectory(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	tempFile := filepath.Join(tempDir, "test.txt")
	err := os.WriteFile(tempFile, []byte("test"), 0644)
	req.NoError(err, "Failed to create temp file: %v", err)

	tests := []struct {
		name      string
		path      string
		expected  bool
		expectErr bool
	}{
		{name: "existing directory", path: tempDir, expected: true},
		{name: "existing file", path: tempFile, expected: false},
		{name: "non-existent path", path: "/non/existent/path", expectErr: true},
		{name: "current directory", path: ".", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result, err := IsDirectory(tt.path)

			if tt.expectErr {
				req.Error(err, "IsDirectory(%q) expected error, got nil", tt.path)
			} else {
				req.NoError(err, "IsDirectory(%q) unexpected error: %v", tt.path, err)
				req.Equal(tt.expected, result, "IsDirectory(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestFindSourceFiles(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	files := map[string]string{
		"App.tsx":                          "export {}",
		"components/Hero.tsx":              "export {}",
		"components/sections/Card.jsx":     "export {}",
		"scripts/build.mjs":                "export {}",
		"types.d.ts":                       "export {}", // declaration file
		"node_modules/react/index.js":      "module.exports = {}",
		".netlify/functions/handler.ts":    "export {}",
		"components/Hero.module.css":       ".hero {}",
		"components/sections/README.md":    "# Sections",
		"components/sections/.hidden/x.ts": "export {}",
	}

	for filePath, content := range files {
		fullPath := filepath.Join(tempDir, filePath)
		req.NoError(os.MkdirAll(filepath.Dir(fullPath), 0755))
		req.NoError(os.WriteFile(fullPath, []byte(content), 0644), "Failed to create file %s", filePath)
	}

	result, err := FindSourceFiles(tempDir)
	req.NoError(err)
	req.ElementsMatch([]string{
		filepath.Join(tempDir, "App.tsx"),
		filepath.Join(tempDir, "components/Hero.tsx"),
		filepath.Join(tempDir, "components/sections/Card.jsx"),
		filepath.Join(tempDir, "scripts/build.mjs"),
	}, result)

	_, err = FindSourceFiles("/non/existent/path")
	req.Error(err)
}

func TestReadWriteLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty file", content: "", want: []string{""}},
		{name: "no trailing newline", content: "a\nb", want: []string{"a", "b"}},
		{name: "trailing newline", content: "a\nb\n", want: []string{"a", "b", ""}},
		{name: "blank lines", content: "\n\n", want: []string{"", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			path := filepath.Join(t.TempDir(), "file.ts")
			req.NoError(os.WriteFile(path, []byte(tt.content), 0644))

			lines, err := ReadLines(path)
			req.NoError(err)
			req.Equal(tt.want, lines)

			req.NoError(WriteLines(path, lines))
			content, err := os.ReadFile(path)
			req.NoError(err)
			req.Equal(tt.content, string(content), "round trip must keep bytes")
		})
	}

	_, err := ReadLines("/non/existent/file.ts")
	require.Error(t, err)
}
