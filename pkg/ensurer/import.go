package ensurer

import (
	"fmt"
	"strings"
)

// Structural markers recognized in component sources.
const (
	ImportMarker     = "import "
	TypeImportMarker = "import type "
	TypeBlockOpener  = "import type {"
	TypeBlockCloser  = "} from '../types';"

	DefaultHelper         = "getVisualEditorAttributes"
	DefaultBindingsModule = "utils/stackbitBindings"
)

// LineKind classifies a single source line
type LineKind int

const (
	OtherLine LineKind = iota
	ImportLine
	TypeImportLine
)

func (k LineKind) String() string {
	switch k {
	case ImportLine:
		return "import"
	case TypeImportLine:
		return "type-import"
	default:
		return "other"
	}
}

// IsImport reports whether the kind is any import statement
func (k LineKind) IsImport() bool {
	return k == ImportLine || k == TypeImportLine
}

// ClassifyLine classifies a line by its untrimmed prefix. Indented lines are
// never imports here, which keeps statements nested inside blocks out of the
// top-level import run.
func ClassifyLine(line string) LineKind {
	switch {
	case strings.HasPrefix(line, TypeImportMarker):
		return TypeImportLine
	case strings.HasPrefix(line, ImportMarker):
		return ImportLine
	default:
		return OtherLine
	}
}

// ClassifyLines classifies every line in one pass
func ClassifyLines(lines []string) []LineKind {
	kinds := make([]LineKind, len(lines))
	for i, line := range lines {
		kinds[i] = ClassifyLine(line)
	}
	return kinds
}

// isHelperImport matches an import of the helper. Unlike ClassifyLine it
// trims the line first, so an indented import still counts as present.
func isHelperImport(line, helper string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), ImportMarker) && strings.Contains(line, helper)
}

// findHelperImport returns the index of the first helper import, or -1
func findHelperImport(lines []string, helper string) int {
	for i, line := range lines {
		if isHelperImport(line, helper) {
			return i
		}
	}
	return -1
}

// usesHelper reports whether any line mentions the helper at all
func usesHelper(lines []string, helper string) bool {
	for _, line := range lines {
		if strings.Contains(line, helper) {
			return true
		}
	}
	return false
}

// importRunEnd returns the index of the first line that does not start with
// the import marker.
func importRunEnd(lines []string) int {
	i := 0
	for i < len(lines) && ClassifyLine(lines[i]).IsImport() {
		i++
	}
	return i
}

// BuildImportLine renders the named import statement for helper
func BuildImportLine(helper, specifier string) string {
	return fmt.Sprintf("import { %s } from '%s';", helper, specifier)
}
