package ensurer

import (
	"slices"
	"strings"
)

// NormalizeImportPosition moves the helper import to just after the last
// regular import, then in front of the grouped type import block if that
// placement landed inside it. The input slice is not modified.
func NormalizeImportPosition(lines []string, helper string) []string {
	out := slices.Clone(lines)

	current := findHelperImport(out, helper)
	if current < 0 {
		return out
	}

	if last := lastRegularImport(out); last >= 0 {
		target := last + 1
		if current < target {
			target--
		}
		out = moveLine(out, current, target)
		current = target
	}

	start, end, ok := typeBlockRange(out)
	if !ok {
		return out
	}
	if start <= current && current <= end {
		out = moveLine(out, current, start)
	}

	return out
}

// InsertImport inserts line at the end of the leading run of import lines
func InsertImport(lines []string, line string) []string {
	return slices.Insert(slices.Clone(lines), importRunEnd(lines), line)
}

// lastRegularImport returns the index of the last non-type import, or -1
func lastRegularImport(lines []string) int {
	last := -1
	for i, kind := range ClassifyLines(lines) {
		if kind == ImportLine {
			last = i
		}
	}
	return last
}

// typeBlockRange locates the first grouped type import. end is inclusive and
// equals len(lines) when the closing line is missing.
func typeBlockRange(lines []string) (start, end int, ok bool) {
	start = slices.IndexFunc(lines, func(line string) bool {
		return strings.HasPrefix(line, TypeBlockOpener)
	})
	if start < 0 {
		return 0, 0, false
	}

	end = start
	for end < len(lines) && !strings.HasSuffix(strings.TrimSpace(lines[end]), TypeBlockCloser) {
		end++
	}
	return start, end, true
}

// moveLine detaches the line at from and inserts it at to, where to is an
// index into the sequence after the detach.
func moveLine(lines []string, from, to int) []string {
	line := lines[from]
	lines = slices.Delete(lines, from, from+1)
	return slices.Insert(lines, to, line)
}
