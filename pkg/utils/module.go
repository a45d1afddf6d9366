package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/siyuan-infoblox/visual-editor-imports/pkg/errors"
)

// ModuleSpecifier returns the import specifier that reaches module from
// fromDir. Both paths are resolved against the working directory, the result
// always uses forward slashes and starts with a dot.
func ModuleSpecifier(fromDir, module string) (string, error) {
	base, err := filepath.Abs(fromDir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToGetWorkingDir, err)
	}
	target, err := filepath.Abs(module)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToGetWorkingDir, err)
	}

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", err
	}
	return NormalizeSpecifier(rel), nil
}

// NormalizeSpecifier converts a relative path into a relative import specifier
func NormalizeSpecifier(rel string) string {
	rel = strings.ReplaceAll(filepath.ToSlash(rel), `\`, "/")
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel
}
